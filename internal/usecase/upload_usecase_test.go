package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/model"
	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/service"
)

type uploadFixture struct {
	queue      *fakeQueue
	storage    *fakeStorage
	documents  *fakeDocuments
	candidates *fakeCandidates
	uc         *UploadUsecase

	candidateID uuid.UUID
}

func newUploadFixture(t *testing.T) *uploadFixture {
	t.Helper()

	candidateID := uuid.New()
	f := &uploadFixture{
		queue:   &fakeQueue{},
		storage: &fakeStorage{},
		candidates: &fakeCandidates{byID: map[string]*model.Candidate{
			candidateID.String(): {ID: candidateID, Name: "Maria Souza"},
		}},
		documents:   &fakeDocuments{byID: map[string]*model.CandidateDocument{}},
		candidateID: candidateID,
	}
	processing := NewProcessingUsecase(f.queue, f.storage,
		&fakeClassifier{result: service.ClassifyResult{Kind: service.ClassifyAccepted}},
		&fakeNotify{}, f.candidates, f.documents, &fakeRequirements{}, 30*time.Second)
	f.uc = NewUploadUsecase(f.storage, f.queue, f.candidates, f.documents, processing)
	return f
}

func TestSubmit(t *testing.T) {
	f := newUploadFixture(t)

	doc, err := f.uc.Submit(context.Background(), f.candidateID.String(),
		"cert.pdf", "application/pdf", []byte("pdf bytes"))
	require.NoError(t, err)

	assert.Equal(t, model.DocumentStatusPending, doc.Status)
	assert.Equal(t, "cert", doc.Name)
	assert.Equal(t, "cert.pdf", doc.FileName)
	assert.Contains(t, doc.FilePath, "candidates/"+f.candidateID.String()+"/")

	// bytes landed in storage under the document's path
	assert.Equal(t, []byte("pdf bytes"), f.storage.files[doc.FilePath])

	// pending record persisted before the job was published
	stored, err := f.documents.FindByID(doc.ID.String())
	require.NoError(t, err)
	assert.Equal(t, model.DocumentStatusPending, stored.Status)

	require.Len(t, f.queue.published, 1)
	job := f.queue.published[0]
	assert.Equal(t, f.candidateID.String(), job.CandidateID)
	assert.Equal(t, doc.ID.String(), job.DocumentID)
	assert.Equal(t, doc.FilePath, job.StoragePath)
	assert.Equal(t, "cert.pdf", job.FileName)
}

func TestSubmitPublishFailure(t *testing.T) {
	f := newUploadFixture(t)
	f.queue.publishErr = errors.New("management api unavailable")

	_, err := f.uc.Submit(context.Background(), f.candidateID.String(),
		"cert.pdf", "application/pdf", []byte("pdf bytes"))
	require.Error(t, err)

	// the stranded document is visible as a terminal error, not stuck pending
	require.Len(t, f.documents.byID, 1)
	for _, doc := range f.documents.byID {
		assert.Equal(t, model.DocumentStatusError, doc.Status)
		assert.Equal(t, "failed to enqueue processing job", doc.StatusDetail)
	}
	assert.Equal(t, 1, f.documents.statusWrite)
}

func TestSubmitUnknownCandidate(t *testing.T) {
	f := newUploadFixture(t)

	_, err := f.uc.Submit(context.Background(), uuid.NewString(),
		"cert.pdf", "application/pdf", []byte("pdf bytes"))
	require.Error(t, err)

	assert.Empty(t, f.documents.byID)
	assert.Empty(t, f.queue.published)
	assert.Empty(t, f.storage.files)
}

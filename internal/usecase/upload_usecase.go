package usecase

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/dto"
	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/model"
	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/service"
)

type UploadUsecase struct {
	storage       service.StorageServiceInterface
	queue         service.QueueServiceInterface
	candidateRepo CandidateFinder
	docRepo       DocumentStore
	processing    *ProcessingUsecase
}

func NewUploadUsecase(storage service.StorageServiceInterface, queue service.QueueServiceInterface, candidateRepo CandidateFinder, docRepo DocumentStore, processing *ProcessingUsecase) *UploadUsecase {
	return &UploadUsecase{storage: storage, queue: queue, candidateRepo: candidateRepo, docRepo: docRepo, processing: processing}
}

// Submit stores the uploaded bytes, creates the pending document record,
// publishes the processing job, and fires an immediate follow-up worker
// trigger so the upload does not wait for the next poll.
func (uc *UploadUsecase) Submit(ctx context.Context, candidateID, fileName, contentType string, data []byte) (*model.CandidateDocument, error) {
	candidate, err := uc.candidateRepo.FindByID(candidateID)
	if err != nil {
		return nil, fmt.Errorf("candidate %s: %w", candidateID, err)
	}

	doc := model.CandidateDocument{
		ID:          uuid.New(),
		CandidateID: candidate.ID,
		Name:        strings.TrimSuffix(fileName, filepath.Ext(fileName)),
		FileName:    fileName,
		FileType:    contentType,
		Status:      model.DocumentStatusPending,
	}
	doc.FilePath = fmt.Sprintf("candidates/%s/%s_%s", candidateID, doc.ID, fileName)

	if err := uc.storage.Upload(ctx, doc.FilePath, data, contentType); err != nil {
		return nil, err
	}
	if err := uc.docRepo.Create(&doc); err != nil {
		return nil, err
	}

	job := dto.QueueJob{
		CandidateID: candidateID,
		DocumentID:  doc.ID.String(),
		StoragePath: doc.FilePath,
		FileName:    fileName,
		FileType:    contentType,
	}
	if err := uc.queue.Publish(ctx, job); err != nil {
		if uerr := uc.docRepo.UpdateProcessingStatus(doc.ID.String(), model.DocumentStatusError, "failed to enqueue processing job"); uerr != nil {
			log.Printf("mark enqueue failure for %s: %v", doc.ID, uerr)
		}
		return nil, err
	}

	go func() {
		if _, err := uc.processing.ProcessNext(context.Background()); err != nil {
			log.Printf("follow-up processing trigger: %v", err)
		}
	}()

	return &doc, nil
}

package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/dto"
	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/model"
	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/service"
)

// ProcessResult reports the outcome of one worker invocation.
type ProcessResult struct {
	Processed  int    `json:"processed"`
	TimedOut   bool   `json:"timed_out"`
	Busy       bool   `json:"busy"`
	DocumentID string `json:"document_id,omitempty"`
	Status     string `json:"status,omitempty"`
}

// ProcessingUsecase drains the document queue one job at a time. Delivery
// is at-least-once, so every write is an idempotent overwrite keyed by
// document id; failed jobs are not retried here.
type ProcessingUsecase struct {
	queue         service.QueueServiceInterface
	storage       service.StorageServiceInterface
	classifier    service.ClassifierServiceInterface
	notify        service.NotifyServiceInterface
	candidateRepo CandidateFinder
	docRepo       DocumentStore
	matrixRepo    RequirementSource
	budget        time.Duration
	inFlight      atomic.Bool
}

func NewProcessingUsecase(
	queue service.QueueServiceInterface,
	storage service.StorageServiceInterface,
	classifier service.ClassifierServiceInterface,
	notify service.NotifyServiceInterface,
	candidateRepo CandidateFinder,
	docRepo DocumentStore,
	matrixRepo RequirementSource,
	budget time.Duration,
) *ProcessingUsecase {
	if budget <= 0 {
		budget = 45 * time.Second
	}
	return &ProcessingUsecase{
		queue:         queue,
		storage:       storage,
		classifier:    classifier,
		notify:        notify,
		candidateRepo: candidateRepo,
		docRepo:       docRepo,
		matrixRepo:    matrixRepo,
		budget:        budget,
	}
}

// ProcessNext fetches at most one job and drives it to a terminal document
// status. A second concurrent invocation returns busy without touching the
// queue; an exhausted wall-clock budget before any job was fetched returns
// zero progress, not an error.
func (uc *ProcessingUsecase) ProcessNext(ctx context.Context) (*ProcessResult, error) {
	if !uc.inFlight.CompareAndSwap(false, true) {
		return &ProcessResult{Busy: true}, nil
	}
	defer uc.inFlight.Store(false)

	ctx, cancel := context.WithTimeout(ctx, uc.budget)
	defer cancel()

	job, ok, err := uc.queue.Get(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			return &ProcessResult{TimedOut: true}, nil
		}
		return nil, err
	}
	if !ok {
		return &ProcessResult{}, nil
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}

	status, detail := uc.processJob(ctx, *job)
	if err := uc.docRepo.UpdateProcessingStatus(job.DocumentID, status, detail); err != nil {
		return nil, fmt.Errorf("record status for document %s: %w", job.DocumentID, err)
	}
	// the persisted status is the source of truth; the notification only
	// tells subscribers to re-fetch, so failures are logged and dropped
	if err := uc.notify.DocumentChanged(context.Background(), job.CandidateID, job.DocumentID, status); err != nil {
		log.Printf("document notify failed for %s: %v", job.DocumentID, err)
	}
	return &ProcessResult{Processed: 1, DocumentID: job.DocumentID, Status: status}, nil
}

// processJob resolves one job to a terminal (status, detail) pair. Every
// failure lands on the document as a visible status instead of an error
// return: redelivery is the transport's decision, not ours.
func (uc *ProcessingUsecase) processJob(ctx context.Context, job dto.QueueJob) (string, string) {
	candidate, err := uc.candidateRepo.FindByID(job.CandidateID)
	if err != nil {
		return model.DocumentStatusError, fmt.Sprintf("candidate %s not found: %v", job.CandidateID, err)
	}

	data, err := uc.storage.Download(ctx, job.StoragePath)
	if err != nil {
		return model.DocumentStatusError, fmt.Sprintf("file download failed: %v", err)
	}

	var matrixDocs []service.MatrixDocumentContext
	matrixID := ""
	if candidate.MatrixID != nil {
		matrixID = candidate.MatrixID.String()
		reqs, err := uc.matrixRepo.RequirementsByMatrix(matrixID)
		if err != nil {
			return model.DocumentStatusError, fmt.Sprintf("matrix context load failed: %v", err)
		}
		matrixDocs = make([]service.MatrixDocumentContext, 0, len(reqs))
		for _, req := range reqs {
			matrixDocs = append(matrixDocs, service.MatrixDocumentContext{
				MatrixItemID:  req.ID.String(),
				DocumentID:    req.DocumentID.String(),
				Obligation:    req.Obligation,
				Modality:      req.Modality,
				RequiredHours: req.RequiredHours,
				ValidityRule:  req.ValidityRule,
				Document: service.DocumentContext{
					ID:           req.Document.ID.String(),
					Name:         req.Document.Name,
					Code:         req.Document.Code,
					Abbreviation: req.Document.Abbreviation,
				},
			})
		}
	}

	payload := service.ClassifierPayload{
		CandidateID:     job.CandidateID,
		CandidateName:   candidate.Name,
		MatrixID:        matrixID,
		DocumentID:      job.DocumentID,
		FileStoragePath: job.StoragePath,
		Files: []service.ClassifierFile{{
			Name:        job.FileName,
			Type:        job.FileType,
			Size:        len(data),
			Base64:      base64.StdEncoding.EncodeToString(data),
			StoragePath: job.StoragePath,
			DocumentID:  job.DocumentID,
		}},
		MatrixDocuments: matrixDocs,
		Timestamp:       time.Now().Format(time.RFC3339),
		Status:          "processing",
	}

	result := uc.classifier.Classify(ctx, payload)
	switch result.Kind {
	case service.ClassifyAccepted:
		return model.DocumentStatusProcessed, result.Message
	case service.ClassifyRejected:
		return model.DocumentStatusRejected, result.Message
	default:
		return model.DocumentStatusError, result.Err.Error()
	}
}

package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/matching"
	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/model"
	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/service"
)

type ComparisonUsecase struct {
	matrixRepo     RequirementSource
	docRepo        DocumentStore
	comparisonRepo ComparisonStore
	notify         service.NotifyServiceInterface
}

func NewComparisonUsecase(matrixRepo RequirementSource, docRepo DocumentStore, comparisonRepo ComparisonStore, notify service.NotifyServiceInterface) *ComparisonUsecase {
	return &ComparisonUsecase{matrixRepo: matrixRepo, docRepo: docRepo, comparisonRepo: comparisonRepo, notify: notify}
}

// Compare recomputes every requirement of the matrix against the
// candidate's current document set, persists the result set (replacing the
// previous one) and publishes a change notification.
func (uc *ComparisonUsecase) Compare(ctx context.Context, candidateID, matrixID string) (*matching.Summary, error) {
	if _, err := uc.matrixRepo.FindByID(matrixID); err != nil {
		return nil, fmt.Errorf("matrix %s: %w", matrixID, err)
	}
	reqs, err := uc.matrixRepo.RequirementsByMatrix(matrixID)
	if err != nil {
		return nil, err
	}
	docs, err := uc.docRepo.ListByCandidate(candidateID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	results := make([]matching.RequirementResult, 0, len(reqs))
	for _, req := range reqs {
		outcome := matching.MatchRequirement(req, docs)
		results = append(results, matching.ResolveStatus(outcome, req, now))
	}
	summary := matching.Aggregate(results, docs)

	candUUID, err := uuid.Parse(candidateID)
	if err != nil {
		return nil, err
	}
	rows := make([]model.ComparisonResult, 0, len(results))
	for _, res := range results {
		row := model.ComparisonResult{
			CandidateID:      candUUID,
			MatrixDocumentID: res.RequirementID,
			Status:           string(res.Status),
			Validity:         string(res.Validity),
			MatchType:        string(res.MatchType),
			Score:            res.Score,
			Observation:      res.Observation,
			CreatedAt:        now,
		}
		if res.Document != nil {
			docID := res.Document.ID
			row.CandidateDocumentID = &docID
		}
		rows = append(rows, row)
	}
	if err := uc.comparisonRepo.ReplaceForCandidate(candidateID, rows); err != nil {
		return nil, err
	}

	if err := uc.notify.ComparisonChanged(ctx, candidateID); err != nil {
		// notification is best effort; readers fall back to re-polling
		log.Printf("comparison notify failed for candidate %s: %v", candidateID, err)
	}
	return &summary, nil
}

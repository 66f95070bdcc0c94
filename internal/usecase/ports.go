package usecase

import "github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/model"

// Narrow views over the repositories, satisfied by the concrete gorm
// implementations in internal/repository.

type CandidateFinder interface {
	FindByID(id string) (*model.Candidate, error)
}

type DocumentStore interface {
	Create(doc *model.CandidateDocument) error
	FindByID(id string) (*model.CandidateDocument, error)
	ListByCandidate(candidateID string) ([]model.CandidateDocument, error)
	UpdateProcessingStatus(id, status, detail string) error
}

type RequirementSource interface {
	FindByID(id string) (*model.Matrix, error)
	RequirementsByMatrix(matrixID string) ([]model.MatrixDocument, error)
}

type ComparisonStore interface {
	ReplaceForCandidate(candidateID string, results []model.ComparisonResult) error
}

package repository

import (
	"time"

	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/model"
	"gorm.io/gorm"
)

type CandidateDocumentRepository struct {
	db *gorm.DB
}

func NewCandidateDocumentRepository(db *gorm.DB) *CandidateDocumentRepository {
	return &CandidateDocumentRepository{db}
}

func (r *CandidateDocumentRepository) Create(doc *model.CandidateDocument) error {
	return r.db.Create(doc).Error
}

func (r *CandidateDocumentRepository) FindByID(id string) (*model.CandidateDocument, error) {
	var doc model.CandidateDocument
	err := r.db.First(&doc, "id = ?", id).Error
	return &doc, err
}

func (r *CandidateDocumentRepository) ListByCandidate(candidateID string) ([]model.CandidateDocument, error) {
	var docs []model.CandidateDocument
	err := r.db.Where("candidate_id = ?", candidateID).Order("created_at").Find(&docs).Error
	return docs, err
}

// UpdateProcessingStatus overwrites the status fields keyed by document id.
// The overwrite is what makes duplicate queue delivery safe: processing the
// same job twice writes the same terminal state.
func (r *CandidateDocumentRepository) UpdateProcessingStatus(id, status, detail string) error {
	return r.db.Model(&model.CandidateDocument{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":        status,
			"status_detail": detail,
			"updated_at":    time.Now(),
		}).Error
}

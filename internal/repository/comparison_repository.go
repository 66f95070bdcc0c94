package repository

import (
	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/model"
	"gorm.io/gorm"
)

type ComparisonRepository struct {
	db *gorm.DB
}

func NewComparisonRepository(db *gorm.DB) *ComparisonRepository {
	return &ComparisonRepository{db}
}

// ReplaceForCandidate swaps the candidate's current comparison rows for a
// freshly computed set in one transaction. At most one current row exists
// per (candidate, requirement) pair.
func (r *ComparisonRepository) ReplaceForCandidate(candidateID string, results []model.ComparisonResult) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("candidate_id = ?", candidateID).
			Delete(&model.ComparisonResult{}).Error; err != nil {
			return err
		}
		if len(results) == 0 {
			return nil
		}
		return tx.Create(&results).Error
	})
}

func (r *ComparisonRepository) ListByCandidate(candidateID string) ([]model.ComparisonResult, error) {
	var rows []model.ComparisonResult
	err := r.db.Where("candidate_id = ?", candidateID).Order("created_at desc").Find(&rows).Error
	return rows, err
}

package repository

import (
	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/model"
	"gorm.io/gorm"
)

type MatrixRepository struct {
	db *gorm.DB
}

func NewMatrixRepository(db *gorm.DB) *MatrixRepository {
	return &MatrixRepository{db}
}

func (r *MatrixRepository) FindByID(id string) (*model.Matrix, error) {
	var m model.Matrix
	err := r.db.First(&m, "id = ?", id).Error
	return &m, err
}

// RequirementsByMatrix loads all requirement rows of one matrix with their
// catalog entries joined.
func (r *MatrixRepository) RequirementsByMatrix(matrixID string) ([]model.MatrixDocument, error) {
	var reqs []model.MatrixDocument
	err := r.db.Preload("Document").Where("matrix_id = ?", matrixID).Find(&reqs).Error
	return reqs, err
}

package repository

import (
	"github.com/adavio-tittoni/job-flow-suite-00-sub001/internal/model"
	"gorm.io/gorm"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db}
}

func (r *CatalogRepository) List() ([]model.CatalogDocument, error) {
	var entries []model.CatalogDocument
	err := r.db.Order("name").Find(&entries).Error
	return entries, err
}

func (r *CatalogRepository) FindByID(id string) (*model.CatalogDocument, error) {
	var entry model.CatalogDocument
	err := r.db.First(&entry, "id = ?", id).Error
	return &entry, err
}

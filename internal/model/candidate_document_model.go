package model

import (
	"time"

	"github.com/google/uuid"
)

// Candidate document processing statuses written by the queue worker.
const (
	DocumentStatusPending   = "pending"
	DocumentStatusProcessed = "processed"
	DocumentStatusRejected  = "rejected"
	DocumentStatusError     = "error"
)

// CandidateDocument is an uploaded artifact belonging to one candidate.
// Created on upload with status pending; the processing worker overwrites
// the status fields keyed by id as classifier results arrive.
type CandidateDocument struct {
	ID                uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CandidateID       uuid.UUID  `gorm:"type:uuid;index" json:"candidate_id"`
	CatalogDocumentID *uuid.UUID `gorm:"type:uuid" json:"catalog_document_id"`
	Name              string     `gorm:"type:text" json:"name"`
	Code              string     `gorm:"type:varchar(50)" json:"code"`
	Abbreviation      string     `gorm:"type:varchar(50)" json:"abbreviation"`
	IssueDate         *time.Time `json:"issue_date"`
	ExpiryDate        *time.Time `json:"expiry_date"`
	TotalHours        float64    `gorm:"type:float" json:"total_hours"`
	TheoreticalHours  float64    `gorm:"type:float" json:"theoretical_hours"`
	PracticalHours    float64    `gorm:"type:float" json:"practical_hours"`
	Modality          string     `gorm:"type:varchar(50)" json:"modality"`
	Status            string     `gorm:"type:varchar(50)" json:"status"`
	StatusDetail      string     `gorm:"type:text" json:"status_detail"`
	FilePath          string     `gorm:"type:text" json:"file_path"`
	FileName          string     `gorm:"type:text" json:"file_name"`
	FileType          string     `gorm:"type:varchar(100)" json:"file_type"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

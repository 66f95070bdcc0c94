package model

import (
	"time"

	"github.com/google/uuid"
)

// ComparisonResult is the persisted outcome for one (candidate, matrix
// requirement) pair. Recomputation replaces the candidate's current set;
// readers take the most recent rows as authoritative.
type ComparisonResult struct {
	ID                  uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CandidateID         uuid.UUID  `gorm:"type:uuid;index" json:"candidate_id"`
	MatrixDocumentID    uuid.UUID  `gorm:"type:uuid" json:"matrix_document_id"`
	CandidateDocumentID *uuid.UUID `gorm:"type:uuid" json:"candidate_document_id"`
	Status              string     `gorm:"type:varchar(50)" json:"status"`
	Validity            string     `gorm:"type:varchar(50)" json:"validity"`
	MatchType           string     `gorm:"type:varchar(50)" json:"match_type"`
	Score               float64    `gorm:"type:float" json:"score"`
	Observation         string     `gorm:"type:text" json:"observation"`
	CreatedAt           time.Time  `json:"created_at"`
}

package dto

import (
	"time"

	"github.com/google/uuid"
)

type DocumentStatusDTO struct {
	ID           uuid.UUID `json:"id"`
	CandidateID  uuid.UUID `json:"candidate_id"`
	Name         string    `json:"name"`
	FileName     string    `json:"file_name"`
	Status       string    `json:"status"` // pending, processed, rejected, error
	StatusDetail string    `json:"status_detail"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

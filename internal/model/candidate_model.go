package model

import (
	"time"

	"github.com/google/uuid"
)

type Candidate struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string     `gorm:"type:varchar(150)" json:"name"`
	Email     string     `gorm:"type:varchar(150)" json:"email"`
	MatrixID  *uuid.UUID `gorm:"type:uuid" json:"matrix_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

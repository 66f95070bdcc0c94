package model

import (
	"time"

	"github.com/google/uuid"
)

// CatalogDocument is a reusable document-type definition referenced by
// matrix requirements and candidate documents. Reference data maintained by
// administrators.
type CatalogDocument struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name         string    `gorm:"type:text" json:"name"`
	Code         string    `gorm:"type:varchar(50)" json:"code"`
	Abbreviation string    `gorm:"type:varchar(50)" json:"abbreviation"`
	Category     string    `gorm:"type:varchar(100)" json:"category"`
	Modality     string    `gorm:"type:varchar(50)" json:"modality"`
	DefaultHours float64   `gorm:"type:float" json:"default_hours"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

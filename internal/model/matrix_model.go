package model

import (
	"time"

	"github.com/google/uuid"
)

// Matrix is a named, versioned set of document requirements for a
// company+role combination.
type Matrix struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string    `gorm:"type:text" json:"name"`
	Company   string    `gorm:"type:varchar(150)" json:"company"`
	Role      string    `gorm:"type:varchar(150)" json:"role"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MatrixDocument is one requirement row in a Matrix: which catalog document
// is required, how strictly (obligation tier), at what hours/modality, and
// under which validity rule.
type MatrixDocument struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	MatrixID      uuid.UUID       `gorm:"type:uuid;index" json:"matrix_id"`
	DocumentID    uuid.UUID       `gorm:"type:uuid" json:"document_id"`
	Obligation    string          `gorm:"type:varchar(50)" json:"obrigatoriedade"`
	Modality      string          `gorm:"type:varchar(50)" json:"modalidade"`
	RequiredHours float64         `gorm:"type:float" json:"carga_horaria"`
	ValidityRule  string          `gorm:"type:varchar(100)" json:"regra_validade"`
	Document      CatalogDocument `gorm:"foreignKey:DocumentID" json:"document"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

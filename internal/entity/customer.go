package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/adeolu-martins/docextract/constants"
)

// Customer represents a customer for data transfer between layers.
type Customer struct {
	ID                 uuid.UUID          `json:"id"`
	Name               string             `json:"name"`
	IdentifierPatterns []DetectionPattern `json:"identifier_patterns"`
	IsActive           bool               `json:"is_active"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// DetectionPattern is one customer-identification pattern. Patterns are
// loaded at detector initialization and mutated only by explicit
// pattern-learning calls.
type DetectionPattern struct {
	Kind          constants.PatternKind `json:"type"`
	Pattern       string                `json:"pattern"`
	Weight        float64               `json:"weight"`
	CaseSensitive bool                  `json:"case_sensitive"`
}

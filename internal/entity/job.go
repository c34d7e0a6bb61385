package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ProcessingJob is the lifecycle record of one processing attempt.
// Reprocessing creates a new job, never mutates a prior one.
type ProcessingJob struct {
	ID            uuid.UUID       `json:"id"`
	DocumentID    uuid.UUID       `json:"document_id"`
	CustomerID    *uuid.UUID      `json:"customer_id,omitempty"`
	TemplateID    *uuid.UUID      `json:"template_id,omitempty"`
	Format        string          `json:"format"`
	StartedAt     time.Time       `json:"started_at"`
	FinishedAt    *time.Time      `json:"finished_at,omitempty"`
	Status        string          `json:"status"`
	ErrorMessage  *string         `json:"error_message,omitempty"`
	Confidence    *float64        `json:"confidence,omitempty"`
	ExtractionLog json.RawMessage `json:"extraction_log,omitempty"`
}

// ExtractionLog is the snapshot persisted on a finished job.
type ExtractionLog struct {
	DetectionMethod     string   `json:"detection_method,omitempty"`
	DetectionConfidence float64  `json:"detection_confidence"`
	MatchedPatterns     []string `json:"matched_patterns,omitempty"`
	ExtractionMethod    string   `json:"extraction_method,omitempty"`
	Confidence          float64  `json:"confidence"`
	Errors              []string `json:"errors,omitempty"`
	Warnings            []string `json:"warnings,omitempty"`
}

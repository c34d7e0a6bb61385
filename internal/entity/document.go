package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Document represents an ingested document for data transfer between layers.
// ArtifactPath always references the CSV of the most recent COMPLETED job;
// failed runs never touch it.
type Document struct {
	ID           uuid.UUID       `json:"id"`
	CustomerID   *uuid.UUID      `json:"customer_id,omitempty"`
	SourcePath   string          `json:"source_path"`
	Filename     string          `json:"filename"`
	FileExt      string          `json:"file_ext"`
	FileSize     int             `json:"file_size"`
	ContentHash  []byte          `json:"content_hash"`
	Status       string          `json:"status"`
	ArtifactPath *string         `json:"artifact_path,omitempty"`
	Confidence   *float64        `json:"confidence,omitempty"`
	DetectionLog json.RawMessage `json:"detection_log,omitempty"`
	UploadedAt   time.Time       `json:"uploaded_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

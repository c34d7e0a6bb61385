package pipeline

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/adeolu-martins/docextract/constants"
	"github.com/adeolu-martins/docextract/internal/detect"
	"github.com/adeolu-martins/docextract/internal/engine"
	"github.com/adeolu-martins/docextract/internal/entity"
	"github.com/adeolu-martins/docextract/internal/extract"
)

// Extractor turns raw document bytes into text plus page/table structure.
type Extractor interface {
	Extract(ctx context.Context, data []byte, filename string) (extract.Document, error)
}

// Detector identifies the customer a document belongs to.
type Detector interface {
	DetectCustomer(text, filename string) detect.Result
}

// Engine selects and executes extraction templates.
type Engine interface {
	SelectTemplate(customerID uuid.UUID, text string) *entity.Template
	Process(tpl *entity.Template, doc *extract.Document) engine.Result
	TemplateByID(ctx context.Context, id uuid.UUID) (*entity.Template, error)
}

// DocumentUpdate carries everything a finished run writes back to the
// document row in one call.
type DocumentUpdate struct {
	ID           uuid.UUID
	Status       constants.DocumentStatus
	CustomerID   *uuid.UUID
	ArtifactPath *string
	Confidence   *float64
	DetectionLog json.RawMessage
}

// DocumentStore is the slice of the data layer the orchestrator needs for
// documents.
type DocumentStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status constants.DocumentStatus) error
	SaveResult(ctx context.Context, upd DocumentUpdate) error
}

// JobStore persists processing-job lifecycle records.
type JobStore interface {
	Create(ctx context.Context, job *entity.ProcessingJob) error
	Update(ctx context.Context, job *entity.ProcessingJob) error
	Stats(ctx context.Context) (*entity.ProcessingStats, error)
}

// HistoryStore is the append-only reprocessing audit trail.
type HistoryStore interface {
	MaxVersion(ctx context.Context, documentID uuid.UUID) (int, error)
	Append(ctx context.Context, entry *entity.ReprocessingEntry) error
}

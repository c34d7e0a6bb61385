package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReprocessingEntry is one append-only audit row recording an explicit rerun.
// Version is monotonically increasing per document (max existing + 1).
type ReprocessingEntry struct {
	ID          uuid.UUID `json:"id"`
	DocumentID  uuid.UUID `json:"document_id"`
	Version     int       `json:"version"`
	ChangesMade string    `json:"changes_made"`
	TriggeredBy string    `json:"triggered_by"`
	CreatedAt   time.Time `json:"created_at"`
}

package async

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrQueueClosed is returned by Enqueue once Shutdown has started.
var ErrQueueClosed = errors.New("queue closed")

// Job is one queued processing request. Reprocess jobs carry the audit
// fields; plain jobs leave them zero.
type Job struct {
	DocumentID  uuid.UUID
	Reprocess   bool
	TemplateID  *uuid.UUID // optional override, only meaningful with Reprocess
	TriggeredBy string
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

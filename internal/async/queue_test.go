package async

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adeolu-martins/docextract/internal/pipeline"
)

type countingProcessor struct {
	mu          sync.Mutex
	processed   []uuid.UUID
	reprocessed []uuid.UUID
}

func (p *countingProcessor) ProcessDocument(_ context.Context, id uuid.UUID) (*pipeline.Outcome, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.processed = append(p.processed, id)
	return &pipeline.Outcome{DocumentID: id}, nil
}

func (p *countingProcessor) ReprocessDocument(_ context.Context, id uuid.UUID, _ string, _ *uuid.UUID) (*pipeline.Outcome, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reprocessed = append(p.reprocessed, id)
	return &pipeline.Outcome{DocumentID: id}, nil
}

func (p *countingProcessor) counts() (int, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.processed), len(p.reprocessed)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestQueueProcessesAllJobs(t *testing.T) {
	proc := &countingProcessor{}
	q := NewProcessorQueue(proc, quietLogger(), WithWorkers(3), WithQueueSize(8))

	for i := 0; i < 20; i++ {
		require.NoError(t, q.Enqueue(context.Background(), Job{DocumentID: uuid.New()}))
	}
	tplID := uuid.New()
	require.NoError(t, q.Enqueue(context.Background(), Job{
		DocumentID: uuid.New(), Reprocess: true, TemplateID: &tplID, TriggeredBy: "ops",
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	processed, reprocessed := proc.counts()
	assert.Equal(t, 20, processed)
	assert.Equal(t, 1, reprocessed)
}

func TestQueueEnqueueAfterShutdown(t *testing.T) {
	proc := &countingProcessor{}
	q := NewProcessorQueue(proc, quietLogger(), WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)
	// second shutdown is a no-op
	q.Shutdown(ctx)

	err := q.Enqueue(context.Background(), Job{DocumentID: uuid.New()})
	require.ErrorIs(t, err, ErrQueueClosed)
	processed, _ := proc.counts()
	assert.Zero(t, processed)
}

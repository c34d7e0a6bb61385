package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adeolu-martins/docextract/constants"
	"github.com/adeolu-martins/docextract/internal/detect"
	"github.com/adeolu-martins/docextract/internal/engine"
	"github.com/adeolu-martins/docextract/internal/entity"
	"github.com/adeolu-martins/docextract/internal/extract"
)

type fakeExtractor struct {
	doc   extract.Document
	err   error
	delay time.Duration
}

func (f *fakeExtractor) Extract(_ context.Context, _ []byte, _ string) (extract.Document, error) {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return f.doc, f.err
}

type fakeDetector struct {
	res detect.Result
}

func (f *fakeDetector) DetectCustomer(_, _ string) detect.Result { return f.res }

type fakeEngine struct {
	selected *entity.Template
	res      engine.Result
	byID     map[uuid.UUID]*entity.Template
}

func (f *fakeEngine) SelectTemplate(_ uuid.UUID, _ string) *entity.Template { return f.selected }

func (f *fakeEngine) Process(_ *entity.Template, _ *extract.Document) engine.Result { return f.res }

func (f *fakeEngine) TemplateByID(_ context.Context, id uuid.UUID) (*entity.Template, error) {
	tpl, ok := f.byID[id]
	if !ok {
		return nil, fmt.Errorf("template %s not found", id)
	}
	return tpl, nil
}

type fakeDocStore struct {
	mu       sync.Mutex
	doc      *entity.Document
	statuses []constants.DocumentStatus
	saved    []DocumentUpdate
}

func (s *fakeDocStore) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	if s.doc == nil || s.doc.ID != id {
		return nil, fmt.Errorf("document %s not found", id)
	}
	return s.doc, nil
}

func (s *fakeDocStore) UpdateStatus(_ context.Context, _ uuid.UUID, status constants.DocumentStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses = append(s.statuses, status)
	return nil
}

func (s *fakeDocStore) SaveResult(_ context.Context, upd DocumentUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = append(s.saved, upd)
	return nil
}

type fakeJobStore struct {
	mu      sync.Mutex
	created []*entity.ProcessingJob
	updated []entity.ProcessingJob
	stats   *entity.ProcessingStats
}

func (s *fakeJobStore) Create(_ context.Context, job *entity.ProcessingJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = append(s.created, job)
	return nil
}

func (s *fakeJobStore) Update(_ context.Context, job *entity.ProcessingJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updated = append(s.updated, *job)
	return nil
}

func (s *fakeJobStore) Stats(_ context.Context) (*entity.ProcessingStats, error) {
	return s.stats, nil
}

type fakeHistoryStore struct {
	maxVersion int
	entries    []*entity.ReprocessingEntry
}

func (s *fakeHistoryStore) MaxVersion(_ context.Context, _ uuid.UUID) (int, error) {
	return s.maxVersion, nil
}

func (s *fakeHistoryStore) Append(_ context.Context, entry *entity.ReprocessingEntry) error {
	s.entries = append(s.entries, entry)
	return nil
}

type fixture struct {
	processor *Processor
	docs      *fakeDocStore
	jobs      *fakeJobStore
	history   *fakeHistoryStore
	document  *entity.Document
}

func newFixture(t *testing.T, ext *fakeExtractor, det *fakeDetector, eng *fakeEngine) *fixture {
	t.Helper()
	doc := &entity.Document{
		ID:         uuid.New(),
		SourcePath: "/nonexistent/input.pdf",
		Filename:   "input.pdf",
		FileExt:    "pdf",
		Status:     string(constants.DocStatusUploaded),
	}
	docs := &fakeDocStore{doc: doc}
	jobs := &fakeJobStore{}
	history := &fakeHistoryStore{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	p := NewProcessor(Config{ArtifactDir: t.TempDir()}, ext, det, eng, docs, jobs, history, logger)
	p.readFile = func(string) ([]byte, error) { return []byte("raw bytes"), nil }
	return &fixture{processor: p, docs: docs, jobs: jobs, history: history, document: doc}
}

func customerResult(conf float64) detect.Result {
	id := uuid.New()
	return detect.Result{CustomerID: &id, Confidence: conf, Method: constants.MethodExactMatch}
}

func TestProcessDocumentFullPath(t *testing.T) {
	tpl := &entity.Template{ID: uuid.New(), Name: "invoice"}
	ext := &fakeExtractor{doc: extract.Document{Text: "Invoice", Method: "pdf-text", Confidence: 0.95}}
	det := &fakeDetector{res: customerResult(0.9)}
	eng := &fakeEngine{
		selected: tpl,
		res: engine.Result{
			ExtractedData: map[string]string{"invoice_number": "INV-1001", "total_amount": "$250.00"},
			FieldOrder:    []string{"invoice_number", "total_amount"},
			Confidence:    0.7,
			Success:       true,
		},
	}
	fx := newFixture(t, ext, det, eng)

	out, err := fx.processor.ProcessDocument(context.Background(), fx.document.ID)
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.InDelta(t, 0.8, out.Confidence, 1e-9) // mean of 0.9 and 0.7
	require.NotNil(t, out.TemplateID)
	assert.Equal(t, tpl.ID, *out.TemplateID)
	assert.Equal(t, det.res.CustomerID, out.CustomerID)

	// artifact on disk
	data, err := os.ReadFile(out.ArtifactPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "invoice_number,INV-1001,string")
	assert.Contains(t, string(data), "total_amount,$250.00,currency")

	// job lifecycle: created RUNNING, finalized COMPLETED with confidence
	require.Len(t, fx.jobs.created, 1)
	require.Len(t, fx.jobs.updated, 1)
	final := fx.jobs.updated[0]
	assert.Equal(t, string(constants.JobStatusCompleted), final.Status)
	require.NotNil(t, final.Confidence)
	assert.InDelta(t, 0.8, *final.Confidence, 1e-9)
	assert.NotNil(t, final.FinishedAt)
	assert.NotEmpty(t, final.ExtractionLog)
	assert.Equal(t, "PDF", final.Format)

	// document: PROCESSING then the completed result with the fresh artifact
	assert.Equal(t, []constants.DocumentStatus{constants.DocStatusProcessing}, fx.docs.statuses)
	require.Len(t, fx.docs.saved, 1)
	saved := fx.docs.saved[0]
	assert.Equal(t, constants.DocStatusCompleted, saved.Status)
	require.NotNil(t, saved.ArtifactPath)
	assert.Equal(t, out.ArtifactPath, *saved.ArtifactPath)
	assert.NotEmpty(t, saved.DetectionLog)
}

func TestProcessDocumentNoCustomerBasicOutput(t *testing.T) {
	ext := &fakeExtractor{doc: extract.Document{
		Text:   "Order Ref: ABC-77\nDate: 2024-03-03\nTotal: $99.00",
		Method: "pdf-ocr",
	}}
	fx := newFixture(t, ext, &fakeDetector{}, &fakeEngine{})

	out, err := fx.processor.ProcessDocument(context.Background(), fx.document.ID)
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.InDelta(t, 0.3, out.Confidence, 1e-9)
	assert.Nil(t, out.CustomerID)
	assert.Nil(t, out.TemplateID)
	assert.NotEmpty(t, out.Warnings)

	data, err := os.ReadFile(out.ArtifactPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "order_ref,ABC-77,string")
	assert.Contains(t, string(data), "date,2024-03-03,date")

	require.Len(t, fx.docs.saved, 1)
	assert.Equal(t, constants.DocStatusCompleted, fx.docs.saved[0].Status)
}

func TestProcessDocumentNoTemplateScalesConfidence(t *testing.T) {
	ext := &fakeExtractor{doc: extract.Document{Text: "Total: $5.00", Method: "pdf-text"}}
	det := &fakeDetector{res: customerResult(0.8)}
	fx := newFixture(t, ext, det, &fakeEngine{selected: nil})

	out, err := fx.processor.ProcessDocument(context.Background(), fx.document.ID)
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.InDelta(t, 0.4, out.Confidence, 1e-9) // 0.8 x 0.5
	assert.Equal(t, det.res.CustomerID, out.CustomerID)
	assert.Nil(t, out.TemplateID)
	assert.NotEmpty(t, out.Warnings)
}

func TestProcessDocumentExtractionFailure(t *testing.T) {
	ext := &fakeExtractor{err: &extract.NoTextError{Filename: "input.pdf", Reasons: []string{"direct: empty", "ocr: empty"}}}
	fx := newFixture(t, ext, &fakeDetector{}, &fakeEngine{})

	_, err := fx.processor.ProcessDocument(context.Background(), fx.document.ID)
	require.Error(t, err)
	var noText *extract.NoTextError
	assert.ErrorAs(t, err, &noText)

	require.Len(t, fx.jobs.updated, 1)
	failed := fx.jobs.updated[0]
	assert.Equal(t, string(constants.JobStatusFailed), failed.Status)
	require.NotNil(t, failed.ErrorMessage)
	assert.Contains(t, *failed.ErrorMessage, "no text extracted")

	// document FAILED; the artifact reference is never touched
	assert.Equal(t, []constants.DocumentStatus{
		constants.DocStatusProcessing,
		constants.DocStatusFailed,
	}, fx.docs.statuses)
	assert.Empty(t, fx.docs.saved)
}

func TestProcessDocumentUnknownDocument(t *testing.T) {
	fx := newFixture(t, &fakeExtractor{}, &fakeDetector{}, &fakeEngine{})

	_, err := fx.processor.ProcessDocument(context.Background(), uuid.New())
	assert.Error(t, err)
	assert.Empty(t, fx.jobs.created)
}

func TestProcessDocumentTimeout(t *testing.T) {
	ext := &fakeExtractor{doc: extract.Document{Text: "slow"}, delay: 20 * time.Millisecond}
	fx := newFixture(t, ext, &fakeDetector{}, &fakeEngine{})
	fx.processor.cfg.Timeout = time.Millisecond

	_, err := fx.processor.ProcessDocument(context.Background(), fx.document.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	require.Len(t, fx.jobs.updated, 1)
	assert.Equal(t, string(constants.JobStatusFailed), fx.jobs.updated[0].Status)
}

func TestReprocessDocumentForcedTemplate(t *testing.T) {
	tpl := &entity.Template{ID: uuid.New(), Name: "override"}
	ext := &fakeExtractor{doc: extract.Document{Text: "Invoice", Method: "pdf-text"}}
	det := &fakeDetector{res: customerResult(0.6)}
	eng := &fakeEngine{
		byID: map[uuid.UUID]*entity.Template{tpl.ID: tpl},
		res: engine.Result{
			ExtractedData: map[string]string{"total": "$1.00"},
			FieldOrder:    []string{"total"},
			Confidence:    1.0,
			Success:       true,
		},
	}
	fx := newFixture(t, ext, det, eng)
	fx.history.maxVersion = 2

	out, err := fx.processor.ReprocessDocument(context.Background(), fx.document.ID, "ops@example.com", &tpl.ID)
	require.NoError(t, err)

	require.NotNil(t, out.TemplateID)
	assert.Equal(t, tpl.ID, *out.TemplateID)
	assert.InDelta(t, 0.8, out.Confidence, 1e-9)

	require.Len(t, fx.history.entries, 1)
	entry := fx.history.entries[0]
	assert.Equal(t, 3, entry.Version)
	assert.Equal(t, fx.document.ID, entry.DocumentID)
	assert.Equal(t, "ops@example.com", entry.TriggeredBy)
	assert.Contains(t, entry.ChangesMade, tpl.ID.String())
}

func TestReprocessDocumentWithoutOverride(t *testing.T) {
	ext := &fakeExtractor{doc: extract.Document{Text: "plain"}}
	fx := newFixture(t, ext, &fakeDetector{}, &fakeEngine{})

	_, err := fx.processor.ReprocessDocument(context.Background(), fx.document.ID, "ops@example.com", nil)
	require.NoError(t, err)
	assert.Empty(t, fx.history.entries)
}

func TestReprocessDocumentIdempotentData(t *testing.T) {
	tpl := &entity.Template{ID: uuid.New(), Name: "stable"}
	ext := &fakeExtractor{doc: extract.Document{Text: "Invoice", Method: "pdf-text"}}
	det := &fakeDetector{res: customerResult(0.9)}
	eng := &fakeEngine{
		byID: map[uuid.UUID]*entity.Template{tpl.ID: tpl},
		res: engine.Result{
			ExtractedData: map[string]string{"total": "$9.00"},
			FieldOrder:    []string{"total"},
			Confidence:    1.0,
			Success:       true,
		},
	}
	fx := newFixture(t, ext, det, eng)

	first, err := fx.processor.ReprocessDocument(context.Background(), fx.document.ID, "u", &tpl.ID)
	require.NoError(t, err)
	second, err := fx.processor.ReprocessDocument(context.Background(), fx.document.ID, "u", &tpl.ID)
	require.NoError(t, err)

	firstData, err := os.ReadFile(first.ArtifactPath)
	require.NoError(t, err)
	secondData, err := os.ReadFile(second.ArtifactPath)
	require.NoError(t, err)
	assert.Equal(t, string(firstData), string(secondData))
	// separate artifacts per job; a rerun never clobbers the previous file
	assert.NotEqual(t, first.ArtifactPath, second.ArtifactPath)
	assert.Equal(t, filepath.Dir(first.ArtifactPath), filepath.Dir(second.ArtifactPath))
}

func TestGetProcessingStats(t *testing.T) {
	fx := newFixture(t, &fakeExtractor{}, &fakeDetector{}, &fakeEngine{})
	fx.jobs.stats = &entity.ProcessingStats{TotalJobs: 10, Completed: 8, Failed: 2, SuccessRate: 0.8}

	stats, err := fx.processor.GetProcessingStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, stats.TotalJobs)
	assert.InDelta(t, 0.8, stats.SuccessRate, 1e-9)
}

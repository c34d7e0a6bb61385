package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/adeolu-martins/docextract/constants"
	"github.com/adeolu-martins/docextract/internal/entity"
	"github.com/adeolu-martins/docextract/internal/extract"
)

const (
	// noCustomerConfidence is reported when no customer matched and the run
	// degraded to basic output.
	noCustomerConfidence = 0.3
	// noTemplateFactor scales the detection confidence when a customer
	// matched but has no usable template.
	noTemplateFactor = 0.5
)

type Config struct {
	ArtifactDir string
	Timeout     time.Duration // 0 = no deadline
}

// Outcome is the payload handed back to the host application after one run.
type Outcome struct {
	JobID        uuid.UUID     `json:"job_id"`
	DocumentID   uuid.UUID     `json:"document_id"`
	Success      bool          `json:"success"`
	CustomerID   *uuid.UUID    `json:"customer_id,omitempty"`
	TemplateID   *uuid.UUID    `json:"template_id,omitempty"`
	Confidence   float64       `json:"confidence"`
	ArtifactPath string        `json:"artifact_path"`
	Errors       []string      `json:"errors,omitempty"`
	Warnings     []string      `json:"warnings,omitempty"`
	Duration     time.Duration `json:"duration"`
}

// Processor drives one document through extract -> detect -> template ->
// CSV. Stages run strictly sequentially; the processor itself is safe to
// invoke concurrently for different documents because all mutable state is
// per-run.
type Processor struct {
	cfg       Config
	extractor Extractor
	detector  Detector
	engine    Engine
	documents DocumentStore
	jobs      JobStore
	history   HistoryStore
	logger    *slog.Logger

	readFile func(string) ([]byte, error)
}

func NewProcessor(
	cfg Config,
	extractor Extractor,
	detector Detector,
	eng Engine,
	documents DocumentStore,
	jobs JobStore,
	history HistoryStore,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		cfg:       cfg,
		extractor: extractor,
		detector:  detector,
		engine:    eng,
		documents: documents,
		jobs:      jobs,
		history:   history,
		logger:    logger,
		readFile:  os.ReadFile,
	}
}

// ProcessDocument runs the full pipeline for a stored document.
func (p *Processor) ProcessDocument(ctx context.Context, documentID uuid.UUID) (*Outcome, error) {
	return p.run(ctx, documentID, nil)
}

// ReprocessDocument re-reads the original stored file and re-runs the full
// pipeline. When a template override is forced, an audit row with the next
// version number is appended first; the run itself does not otherwise know it
// is a rerun.
func (p *Processor) ReprocessDocument(ctx context.Context, documentID uuid.UUID, triggeredBy string, templateID *uuid.UUID) (*Outcome, error) {
	if templateID != nil {
		maxVersion, err := p.history.MaxVersion(ctx, documentID)
		if err != nil {
			return nil, fmt.Errorf("reprocessing history: %w", err)
		}
		entry := &entity.ReprocessingEntry{
			ID:          uuid.New(),
			DocumentID:  documentID,
			Version:     maxVersion + 1,
			ChangesMade: fmt.Sprintf("forced template %s", templateID),
			TriggeredBy: triggeredBy,
			CreatedAt:   time.Now().UTC(),
		}
		if err := p.history.Append(ctx, entry); err != nil {
			return nil, fmt.Errorf("append reprocessing history: %w", err)
		}
		p.logger.Info("reprocessing with forced template",
			"document_id", documentID, "template_id", templateID, "version", entry.Version)
	}
	return p.run(ctx, documentID, templateID)
}

// GetProcessingStats aggregates job outcomes for reporting.
func (p *Processor) GetProcessingStats(ctx context.Context) (*entity.ProcessingStats, error) {
	return p.jobs.Stats(ctx)
}

func (p *Processor) run(ctx context.Context, documentID uuid.UUID, forced *uuid.UUID) (*Outcome, error) {
	if p.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.Timeout)
		defer cancel()
	}

	doc, err := p.documents.GetByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	job := &entity.ProcessingJob{
		ID:         uuid.New(),
		DocumentID: doc.ID,
		Format:     constants.MapExtToFormat(doc.FileExt),
		StartedAt:  time.Now().UTC(),
		Status:     string(constants.JobStatusRunning),
	}
	if err := p.jobs.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	if err := p.documents.UpdateStatus(ctx, doc.ID, constants.DocStatusProcessing); err != nil {
		p.fail(ctx, job, doc.ID, err)
		return nil, fmt.Errorf("mark processing: %w", err)
	}

	outcome, detectionLog, err := p.execute(ctx, doc, job, forced)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = fmt.Errorf("processing timed out after %s: %w", p.cfg.Timeout, err)
		}
		p.fail(ctx, job, doc.ID, err)
		return nil, err
	}

	p.complete(ctx, job, doc.ID, outcome, detectionLog)
	return outcome, nil
}

// execute runs the pipeline stages and writes the CSV artifact. Any returned
// error is fatal to the job; degraded branches return a low-confidence
// outcome instead of an error.
func (p *Processor) execute(ctx context.Context, doc *entity.Document, job *entity.ProcessingJob, forced *uuid.UUID) (*Outcome, json.RawMessage, error) {
	start := time.Now()

	data, err := p.readFile(doc.SourcePath)
	if err != nil {
		return nil, nil, fmt.Errorf("read source file: %w", err)
	}

	extracted, err := p.extractor.Extract(ctx, data, doc.Filename)
	if err != nil {
		return nil, nil, fmt.Errorf("extract text: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	det := p.detector.DetectCustomer(extracted.Text, doc.Filename)

	out := &Outcome{
		JobID:      job.ID,
		DocumentID: doc.ID,
		CustomerID: det.CustomerID,
	}
	var fields map[string]string
	var order []string

	switch {
	case forced != nil:
		tpl, err := p.engine.TemplateByID(ctx, *forced)
		if err != nil {
			return nil, nil, fmt.Errorf("forced template: %w", err)
		}
		fields, order = p.runTemplate(tpl, det.Confidence, &extracted, out)

	case det.CustomerID == nil:
		fields, order = basicFields(&extracted)
		out.Confidence = noCustomerConfidence
		out.Success = true
		out.Warnings = append(out.Warnings, "no customer matched; produced basic output")
		p.logger.Warn("no customer matched", "document_id", doc.ID, "job_id", job.ID)

	default:
		tpl := p.engine.SelectTemplate(*det.CustomerID, extracted.Text)
		if tpl == nil {
			fields, order = basicFields(&extracted)
			out.Confidence = det.Confidence * noTemplateFactor
			out.Success = true
			out.Warnings = append(out.Warnings,
				fmt.Sprintf("customer %s has no usable template; produced basic output", det.CustomerID))
			p.logger.Warn("no template for customer",
				"document_id", doc.ID, "customer_id", det.CustomerID)
		} else {
			fields, order = p.runTemplate(tpl, det.Confidence, &extracted, out)
		}
	}

	artifact := filepath.Join(p.cfg.ArtifactDir, fmt.Sprintf("%s-%s.csv", doc.ID, job.ID))
	if err := writeArtifact(artifact, fields, order); err != nil {
		return nil, nil, fmt.Errorf("write artifact: %w", err)
	}
	out.ArtifactPath = artifact
	out.Duration = time.Since(start)

	logSnapshot := entity.ExtractionLog{
		DetectionMethod:     string(det.Method),
		DetectionConfidence: det.Confidence,
		MatchedPatterns:     det.MatchedPatterns,
		ExtractionMethod:    extracted.Method,
		Confidence:          out.Confidence,
		Errors:              out.Errors,
		Warnings:            out.Warnings,
	}
	job.ExtractionLog, _ = json.Marshal(logSnapshot)
	job.CustomerID = det.CustomerID
	job.TemplateID = out.TemplateID

	detectionLog, _ := json.Marshal(det)

	p.logger.Info("document processed",
		"document_id", doc.ID, "job_id", job.ID,
		"customer_id", out.CustomerID, "template_id", out.TemplateID,
		"confidence", out.Confidence, "fields", len(fields),
		"errors", len(out.Errors), "warnings", len(out.Warnings))
	return out, detectionLog, nil
}

// runTemplate executes the full template path and folds the detection and
// engine confidences into their mean.
func (p *Processor) runTemplate(tpl *entity.Template, detConfidence float64, doc *extract.Document, out *Outcome) (map[string]string, []string) {
	res := p.engine.Process(tpl, doc)
	id := tpl.ID
	out.TemplateID = &id
	out.Confidence = (detConfidence + res.Confidence) / 2
	out.Success = res.Success
	out.Errors = append(out.Errors, res.Errors...)
	out.Warnings = append(out.Warnings, res.Warnings...)
	return res.ExtractedData, res.FieldOrder
}

// fail finalizes the job and document as FAILED. The document's artifact
// reference stays untouched so a prior successful output remains current.
func (p *Processor) fail(ctx context.Context, job *entity.ProcessingJob, documentID uuid.UUID, cause error) {
	ctx = context.WithoutCancel(ctx)
	now := time.Now().UTC()
	msg := cause.Error()
	job.Status = string(constants.JobStatusFailed)
	job.ErrorMessage = &msg
	job.FinishedAt = &now

	if err := p.jobs.Update(ctx, job); err != nil {
		p.logger.Error("failed to finalize job", "job_id", job.ID, "error", err)
	}
	if err := p.documents.UpdateStatus(ctx, documentID, constants.DocStatusFailed); err != nil {
		p.logger.Error("failed to mark document failed", "document_id", documentID, "error", err)
	}
	p.logger.Error("processing failed", "document_id", documentID, "job_id", job.ID, "error", cause)
}

// complete finalizes the job and document as COMPLETED and advertises the
// fresh artifact as the document's current output.
func (p *Processor) complete(ctx context.Context, job *entity.ProcessingJob, documentID uuid.UUID, out *Outcome, detectionLog json.RawMessage) {
	ctx = context.WithoutCancel(ctx)
	now := time.Now().UTC()
	conf := out.Confidence
	job.Status = string(constants.JobStatusCompleted)
	job.FinishedAt = &now
	job.Confidence = &conf

	if err := p.jobs.Update(ctx, job); err != nil {
		p.logger.Error("failed to finalize job", "job_id", job.ID, "error", err)
	}

	artifact := out.ArtifactPath
	upd := DocumentUpdate{
		ID:           documentID,
		Status:       constants.DocStatusCompleted,
		CustomerID:   out.CustomerID,
		ArtifactPath: &artifact,
		Confidence:   &conf,
		DetectionLog: detectionLog,
	}
	if err := p.documents.SaveResult(ctx, upd); err != nil {
		p.logger.Error("failed to save document result", "document_id", documentID, "error", err)
	}
}

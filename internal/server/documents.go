package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/adeolu-martins/docextract/constants"
	v1 "github.com/adeolu-martins/docextract/gen/proto/docextract/v1"
	"github.com/adeolu-martins/docextract/internal/async"
	"github.com/adeolu-martins/docextract/internal/common"
	"github.com/adeolu-martins/docextract/internal/pipeline"
	"github.com/adeolu-martins/docextract/internal/repository"
)

type DocumentsService struct {
	v1.UnimplementedDocumentsServiceServer
	documents repository.DocumentRepository
	processor *pipeline.Processor
	queue     async.Queue
	logger    *slog.Logger
}

func NewDocumentsService(documents repository.DocumentRepository, proc *pipeline.Processor, queue async.Queue, logger *slog.Logger) *DocumentsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentsService{
		documents: documents,
		processor: proc,
		queue:     queue,
		logger:    logger,
	}
}

// IngestDocument registers a file on the server's filesystem. Content is
// deduplicated by SHA-256; re-ingesting the same bytes returns the existing
// document.
func (s *DocumentsService) IngestDocument(ctx context.Context, req *v1.IngestDocumentRequest) (*v1.IngestDocumentResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("ingest request missing path")
		return nil, common.InvalidArgumentError("path is required")
	}

	ext := constants.NormalizeExt(filepath.Ext(path))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		s.logger.Error("unsupported file extension for ingest", "path", path, "ext", ext)
		return nil, common.InvalidArgumentErrorf("unsupported file extension %q", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Error("failed to read file for ingest", "path", path, "error", err)
		return nil, common.InvalidArgumentErrorf("reading %s: %v", path, err)
	}
	sum := sha256.Sum256(data)
	uploadedAt := time.Now().UTC()

	doc, dedup, err := s.documents.UpsertByHash(ctx, path, filepath.Base(path), ext, len(data), sum[:], uploadedAt)
	if err != nil {
		s.logger.Error("failed to register document", "path", path, "error", err)
		return nil, common.InternalError("register document failed")
	}
	s.logger.Info("document ingested",
		"document_id", doc.ID, "path", path, "deduplicated", dedup, "size", len(data))

	resp := &v1.IngestDocumentResponse{
		DocumentId:     doc.ID.String(),
		Deduplicated:   dedup,
		ContentHashHex: hex.EncodeToString(sum[:]),
		FileExt:        doc.FileExt,
		UploadedAt:     doc.UploadedAt.UTC().Format(time.RFC3339),
	}

	if req.GetProcess() {
		err := s.queue.Enqueue(ctx, async.Job{
			DocumentID:  doc.ID,
			SubmittedAt: time.Now(),
		})
		if err != nil {
			s.logger.Warn("failed to enqueue ingested document", "document_id", doc.ID, "error", err)
		} else {
			resp.Queued = true
		}
	}
	return resp, nil
}

// ProcessDocument runs the extraction pipeline for a registered document,
// either inline or through the worker queue.
func (s *DocumentsService) ProcessDocument(ctx context.Context, req *v1.ProcessDocumentRequest) (*v1.ProcessDocumentResponse, error) {
	documentID, err := parseDocumentID(req.GetDocumentId())
	if err != nil {
		s.logger.Error("invalid document_id for process", "document_id", req.GetDocumentId(), "error", err)
		return nil, err
	}

	if req.GetAsync() {
		err := s.queue.Enqueue(ctx, async.Job{
			DocumentID:  documentID,
			SubmittedAt: time.Now(),
		})
		if err != nil {
			s.logger.Error("failed to enqueue document", "document_id", documentID, "error", err)
			return nil, common.InternalError("processing queue unavailable")
		}
		return &v1.ProcessDocumentResponse{
			DocumentId: documentID.String(),
			Queued:     true,
		}, nil
	}

	out, err := s.processor.ProcessDocument(ctx, documentID)
	if err != nil {
		s.logger.Error("processing failed", "document_id", documentID, "error", err)
		return nil, common.InternalErrorf("process document: %v", err)
	}
	return toPBOutcome(out), nil
}

// ReprocessDocument reruns a document, optionally forcing a template. Forced
// reruns are recorded in the reprocessing history.
func (s *DocumentsService) ReprocessDocument(ctx context.Context, req *v1.ReprocessDocumentRequest) (*v1.ProcessDocumentResponse, error) {
	documentID, err := parseDocumentID(req.GetDocumentId())
	if err != nil {
		s.logger.Error("invalid document_id for reprocess", "document_id", req.GetDocumentId(), "error", err)
		return nil, err
	}
	triggeredBy := strings.TrimSpace(req.GetTriggeredBy())
	if triggeredBy == "" {
		return nil, common.InvalidArgumentError("triggered_by is required")
	}

	var templateID *uuid.UUID
	if tid := strings.TrimSpace(req.GetTemplateId()); tid != "" {
		parsed, err := uuid.Parse(tid)
		if err != nil {
			s.logger.Error("invalid template_id for reprocess", "template_id", tid, "error", err)
			return nil, common.InvalidArgumentError("template_id must be a UUID")
		}
		templateID = &parsed
	}

	if req.GetAsync() {
		err := s.queue.Enqueue(ctx, async.Job{
			DocumentID:  documentID,
			Reprocess:   true,
			TemplateID:  templateID,
			TriggeredBy: triggeredBy,
			SubmittedAt: time.Now(),
		})
		if err != nil {
			s.logger.Error("failed to enqueue reprocess", "document_id", documentID, "error", err)
			return nil, common.InternalError("processing queue unavailable")
		}
		return &v1.ProcessDocumentResponse{
			DocumentId: documentID.String(),
			Queued:     true,
		}, nil
	}

	out, err := s.processor.ReprocessDocument(ctx, documentID, triggeredBy, templateID)
	if err != nil {
		s.logger.Error("reprocessing failed", "document_id", documentID, "error", err)
		return nil, common.InternalErrorf("reprocess document: %v", err)
	}
	return toPBOutcome(out), nil
}

func (s *DocumentsService) GetProcessingStats(ctx context.Context, _ *v1.GetProcessingStatsRequest) (*v1.GetProcessingStatsResponse, error) {
	stats, err := s.processor.GetProcessingStats(ctx)
	if err != nil {
		s.logger.Error("failed to compute processing stats", "error", err)
		return nil, common.InternalError("processing stats failed")
	}
	resp := &v1.GetProcessingStatsResponse{
		TotalJobs:     int32(stats.TotalJobs),
		Completed:     int32(stats.Completed),
		Failed:        int32(stats.Failed),
		SuccessRate:   stats.SuccessRate,
		AvgConfidence: stats.AvgConfidence,
	}
	for _, e := range stats.TopErrors {
		resp.TopErrors = append(resp.TopErrors, &v1.ErrorCount{
			Message: e.Message,
			Count:   int32(e.Count),
		})
	}
	return resp, nil
}

func parseDocumentID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, common.InvalidArgumentError("document_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError("document_id must be a UUID")
	}
	return id, nil
}

func toPBOutcome(out *pipeline.Outcome) *v1.ProcessDocumentResponse {
	resp := &v1.ProcessDocumentResponse{
		JobId:        out.JobID.String(),
		DocumentId:   out.DocumentID.String(),
		Success:      out.Success,
		Confidence:   out.Confidence,
		ArtifactPath: out.ArtifactPath,
		Errors:       out.Errors,
		Warnings:     out.Warnings,
		DurationMs:   out.Duration.Milliseconds(),
	}
	if out.CustomerID != nil {
		resp.CustomerId = out.CustomerID.String()
	}
	if out.TemplateID != nil {
		resp.TemplateId = out.TemplateID.String()
	}
	return resp
}

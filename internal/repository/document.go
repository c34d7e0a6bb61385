package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/adeolu-martins/docextract/constants"
	"github.com/adeolu-martins/docextract/gen/ent"
	entdocument "github.com/adeolu-martins/docextract/gen/ent/document"
	"github.com/adeolu-martins/docextract/internal/entity"
	"github.com/adeolu-martins/docextract/internal/pipeline"
)

// DocumentRepository covers ingestion, orchestrator writes and export reads.
type DocumentRepository interface {
	Create(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*entity.Document, error)
	UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*entity.Document, bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status constants.DocumentStatus) error
	SaveResult(ctx context.Context, upd pipeline.DocumentUpdate) error
	ListCompleted(ctx context.Context, customerID uuid.UUID, from, to *time.Time) ([]*entity.Document, error)
}

type documentRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepo{ent: entc, logger: logger}
}

func (r *documentRepo) Create(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*entity.Document, error) {
	row, err := r.ent.Document.Create().
		SetSourcePath(sourcePath).
		SetFilename(filename).
		SetFileExt(ext).
		SetFileSize(size).
		SetContentHash(hash).
		SetStatus(string(constants.DocStatusUploaded)).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document",
			"source_path", sourcePath, "filename", filename, "error", err)
		return nil, err
	}
	return toDocument(row), nil
}

// UpsertByHash returns the existing document when the same content was
// ingested before; the bool reports whether it was deduplicated.
func (r *documentRepo) UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*entity.Document, bool, error) {
	row, err := r.ent.Document.Query().
		Where(entdocument.ContentHash(hash)).
		First(ctx)
	if err == nil {
		return toDocument(row), true, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, err
	}
	doc, err := r.Create(ctx, sourcePath, filename, ext, size, hash, uploadedAt)
	if err != nil {
		return nil, false, err
	}
	return doc, false, nil
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row, err := r.ent.Document.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDocument(row), nil
}

func (r *documentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status constants.DocumentStatus) error {
	_, err := r.ent.Document.UpdateOneID(id).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to update document status",
			"document_id", id, "status", status, "error", err)
	}
	return err
}

func (r *documentRepo) SaveResult(ctx context.Context, upd pipeline.DocumentUpdate) error {
	q := r.ent.Document.UpdateOneID(upd.ID).
		SetStatus(string(upd.Status))
	if upd.CustomerID != nil {
		q.SetCustomerID(*upd.CustomerID)
	}
	if upd.ArtifactPath != nil {
		q.SetArtifactPath(*upd.ArtifactPath)
	}
	if upd.Confidence != nil {
		q.SetConfidence(*upd.Confidence)
	}
	if len(upd.DetectionLog) > 0 {
		q.SetDetectionLog(upd.DetectionLog)
	}
	_, err := q.Save(ctx)
	if err != nil {
		r.logger.Error("failed to save document result", "document_id", upd.ID, "error", err)
	}
	return err
}

func (r *documentRepo) ListCompleted(ctx context.Context, customerID uuid.UUID, from, to *time.Time) ([]*entity.Document, error) {
	q := r.ent.Document.Query().
		Where(
			entdocument.CustomerIDEQ(customerID),
			entdocument.Status(string(constants.DocStatusCompleted)),
		)
	if from != nil {
		q = q.Where(entdocument.UploadedAtGTE(*from))
	}
	if to != nil {
		// inclusive end of day
		q = q.Where(entdocument.UploadedAtLT(to.AddDate(0, 0, 1)))
	}
	rows, err := q.Order(ent.Asc(entdocument.FieldUploadedAt)).All(ctx)
	if err != nil {
		r.logger.Error("failed to list completed documents", "customer_id", customerID, "error", err)
		return nil, err
	}
	out := make([]*entity.Document, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDocument(row))
	}
	return out, nil
}

func toDocument(row *ent.Document) *entity.Document {
	return &entity.Document{
		ID:           row.ID,
		CustomerID:   row.CustomerID,
		SourcePath:   row.SourcePath,
		Filename:     row.Filename,
		FileExt:      row.FileExt,
		FileSize:     row.FileSize,
		ContentHash:  row.ContentHash,
		Status:       row.Status,
		ArtifactPath: row.ArtifactPath,
		Confidence:   row.Confidence,
		DetectionLog: row.DetectionLog,
		UploadedAt:   row.UploadedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

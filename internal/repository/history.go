package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/adeolu-martins/docextract/gen/ent"
	enthistory "github.com/adeolu-martins/docextract/gen/ent/reprocessinghistory"
	"github.com/adeolu-martins/docextract/internal/entity"
)

// HistoryRepository is the append-only reprocessing audit trail.
type HistoryRepository interface {
	MaxVersion(ctx context.Context, documentID uuid.UUID) (int, error)
	Append(ctx context.Context, entry *entity.ReprocessingEntry) error
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.ReprocessingEntry, error)
}

type historyRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewHistoryRepository(entc *ent.Client, logger *slog.Logger) HistoryRepository {
	return &historyRepo{ent: entc, logger: logger}
}

func (r *historyRepo) MaxVersion(ctx context.Context, documentID uuid.UUID) (int, error) {
	row, err := r.ent.ReprocessingHistory.Query().
		Where(enthistory.DocumentID(documentID)).
		Order(ent.Desc(enthistory.FieldVersion)).
		First(ctx)
	if ent.IsNotFound(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return row.Version, nil
}

func (r *historyRepo) Append(ctx context.Context, entry *entity.ReprocessingEntry) error {
	_, err := r.ent.ReprocessingHistory.Create().
		SetID(entry.ID).
		SetDocumentID(entry.DocumentID).
		SetVersion(entry.Version).
		SetChangesMade(entry.ChangesMade).
		SetTriggeredBy(entry.TriggeredBy).
		SetCreatedAt(entry.CreatedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to append reprocessing history",
			"document_id", entry.DocumentID, "version", entry.Version, "error", err)
		return err
	}
	r.logger.Info("reprocessing recorded",
		"document_id", entry.DocumentID, "version", entry.Version, "triggered_by", entry.TriggeredBy)
	return nil
}

func (r *historyRepo) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.ReprocessingEntry, error) {
	rows, err := r.ent.ReprocessingHistory.Query().
		Where(enthistory.DocumentID(documentID)).
		Order(ent.Asc(enthistory.FieldVersion)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.ReprocessingEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, &entity.ReprocessingEntry{
			ID:          row.ID,
			DocumentID:  row.DocumentID,
			Version:     row.Version,
			ChangesMade: row.ChangesMade,
			TriggeredBy: row.TriggeredBy,
			CreatedAt:   row.CreatedAt,
		})
	}
	return out, nil
}

package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/adeolu-martins/docextract/gen/ent"
	enttemplate "github.com/adeolu-martins/docextract/gen/ent/template"
	"github.com/adeolu-martins/docextract/internal/engine"
	"github.com/adeolu-martins/docextract/internal/entity"
)

// TemplateRepository backs the template engine. Stored definitions are
// schema-validated on the way out so the engine only ever sees well-formed
// rules.
type TemplateRepository interface {
	ListActive(ctx context.Context) ([]*entity.Template, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Template, error)
}

type templateRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewTemplateRepository(entc *ent.Client, logger *slog.Logger) TemplateRepository {
	return &templateRepo{ent: entc, logger: logger}
}

func (r *templateRepo) ListActive(ctx context.Context) ([]*entity.Template, error) {
	rows, err := r.ent.Template.Query().
		Where(enttemplate.IsActive(true)).
		Order(ent.Asc(enttemplate.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list active templates", "error", err)
		return nil, err
	}
	out := make([]*entity.Template, 0, len(rows))
	for _, row := range rows {
		tpl, err := toTemplate(row)
		if err != nil {
			r.logger.Warn("skipping malformed template",
				"template_id", row.ID, "customer_id", row.CustomerID, "error", err)
			continue
		}
		out = append(out, tpl)
	}
	return out, nil
}

func (r *templateRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Template, error) {
	row, err := r.ent.Template.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTemplate(row)
}

func toTemplate(row *ent.Template) (*entity.Template, error) {
	if err := engine.ValidateDefinition(row.Rules, row.HardcodedMappings); err != nil {
		return nil, err
	}
	tpl := &entity.Template{
		ID:         row.ID,
		CustomerID: row.CustomerID,
		Name:       row.Name,
		Version:    row.Version,
		IsActive:   row.IsActive,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
	if len(row.Rules) > 0 {
		if err := json.Unmarshal(row.Rules, &tpl.Rules); err != nil {
			return nil, fmt.Errorf("rules: %w", err)
		}
	}
	if len(row.HardcodedMappings) > 0 {
		if err := json.Unmarshal(row.HardcodedMappings, &tpl.HardcodedMappings); err != nil {
			return nil, fmt.Errorf("hardcoded mappings: %w", err)
		}
	}
	return tpl, nil
}

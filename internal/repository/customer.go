package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/adeolu-martins/docextract/gen/ent"
	entcustomer "github.com/adeolu-martins/docextract/gen/ent/customer"
	"github.com/adeolu-martins/docextract/internal/detect"
	"github.com/adeolu-martins/docextract/internal/entity"
)

// CustomerRepository backs the customer detector: the active set plus
// pattern-learning writes.
type CustomerRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	ListActive(ctx context.Context) ([]*entity.Customer, error)
	AppendIdentifierPattern(ctx context.Context, customerID uuid.UUID, p entity.DetectionPattern) error
}

type customerRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewCustomerRepository(entc *ent.Client, logger *slog.Logger) CustomerRepository {
	return &customerRepo{ent: entc, logger: logger}
}

func (r *customerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	row, err := r.ent.Customer.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.toCustomer(row), nil
}

func (r *customerRepo) ListActive(ctx context.Context) ([]*entity.Customer, error) {
	rows, err := r.ent.Customer.Query().
		Where(entcustomer.IsActive(true)).
		Order(ent.Asc(entcustomer.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list active customers", "error", err)
		return nil, err
	}
	out := make([]*entity.Customer, 0, len(rows))
	for _, row := range rows {
		out = append(out, r.toCustomer(row))
	}
	return out, nil
}

func (r *customerRepo) AppendIdentifierPattern(ctx context.Context, customerID uuid.UUID, p entity.DetectionPattern) error {
	row, err := r.ent.Customer.Get(ctx, customerID)
	if err != nil {
		return err
	}
	patterns, err := detect.ParseIdentifierPatterns(row.IdentifierPatterns)
	if err != nil {
		// legacy data we cannot parse gets replaced by the normalized form
		r.logger.Warn("resetting unparseable identifier patterns",
			"customer_id", customerID, "error", err)
		patterns = nil
	}
	patterns = append(patterns, p)

	raw, err := json.Marshal(patterns)
	if err != nil {
		return err
	}
	_, err = r.ent.Customer.UpdateOneID(customerID).
		SetIdentifierPatterns(raw).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to append identifier pattern",
			"customer_id", customerID, "pattern", p.Pattern, "error", err)
		return err
	}
	r.logger.Info("identifier pattern added",
		"customer_id", customerID, "pattern", p.Pattern, "kind", p.Kind)
	return nil
}

// toCustomer maps an ent row to the transfer type. Unparseable patterns are
// dropped with a warning so one bad record cannot block detection.
func (r *customerRepo) toCustomer(row *ent.Customer) *entity.Customer {
	patterns, err := detect.ParseIdentifierPatterns(row.IdentifierPatterns)
	if err != nil {
		r.logger.Warn("skipping invalid identifier patterns",
			"customer_id", row.ID, "error", err)
		patterns = nil
	}
	return &entity.Customer{
		ID:                 row.ID,
		Name:               row.Name,
		IdentifierPatterns: patterns,
		IsActive:           row.IsActive,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adeolu-martins/docextract/gen/ent/predicate"
	"github.com/adeolu-martins/docextract/gen/ent/reprocessinghistory"
)

// ReprocessingHistoryDelete is the builder for deleting a ReprocessingHistory entity.
type ReprocessingHistoryDelete struct {
	config
	hooks    []Hook
	mutation *ReprocessingHistoryMutation
}

// Where appends a list predicates to the ReprocessingHistoryDelete builder.
func (_d *ReprocessingHistoryDelete) Where(ps ...predicate.ReprocessingHistory) *ReprocessingHistoryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ReprocessingHistoryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ReprocessingHistoryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ReprocessingHistoryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(reprocessinghistory.Table, sqlgraph.NewFieldSpec(reprocessinghistory.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ReprocessingHistoryDeleteOne is the builder for deleting a single ReprocessingHistory entity.
type ReprocessingHistoryDeleteOne struct {
	_d *ReprocessingHistoryDelete
}

// Where appends a list predicates to the ReprocessingHistoryDelete builder.
func (_d *ReprocessingHistoryDeleteOne) Where(ps ...predicate.ReprocessingHistory) *ReprocessingHistoryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ReprocessingHistoryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{reprocessinghistory.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ReprocessingHistoryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adeolu-martins/docextract/gen/ent/document"
	"github.com/adeolu-martins/docextract/gen/ent/reprocessinghistory"
	"github.com/google/uuid"
)

// ReprocessingHistoryCreate is the builder for creating a ReprocessingHistory entity.
type ReprocessingHistoryCreate struct {
	config
	mutation *ReprocessingHistoryMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *ReprocessingHistoryCreate) SetDocumentID(v uuid.UUID) *ReprocessingHistoryCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *ReprocessingHistoryCreate) SetVersion(v int) *ReprocessingHistoryCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetChangesMade sets the "changes_made" field.
func (_c *ReprocessingHistoryCreate) SetChangesMade(v string) *ReprocessingHistoryCreate {
	_c.mutation.SetChangesMade(v)
	return _c
}

// SetTriggeredBy sets the "triggered_by" field.
func (_c *ReprocessingHistoryCreate) SetTriggeredBy(v string) *ReprocessingHistoryCreate {
	_c.mutation.SetTriggeredBy(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReprocessingHistoryCreate) SetCreatedAt(v time.Time) *ReprocessingHistoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReprocessingHistoryCreate) SetNillableCreatedAt(v *time.Time) *ReprocessingHistoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReprocessingHistoryCreate) SetID(v uuid.UUID) *ReprocessingHistoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReprocessingHistoryCreate) SetNillableID(v *uuid.UUID) *ReprocessingHistoryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *ReprocessingHistoryCreate) SetDocument(v *Document) *ReprocessingHistoryCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the ReprocessingHistoryMutation object of the builder.
func (_c *ReprocessingHistoryCreate) Mutation() *ReprocessingHistoryMutation {
	return _c.mutation
}

// Save creates the ReprocessingHistory in the database.
func (_c *ReprocessingHistoryCreate) Save(ctx context.Context) (*ReprocessingHistory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReprocessingHistoryCreate) SaveX(ctx context.Context) *ReprocessingHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReprocessingHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReprocessingHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReprocessingHistoryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reprocessinghistory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := reprocessinghistory.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReprocessingHistoryCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ReprocessingHistory.document_id"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "ReprocessingHistory.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := reprocessinghistory.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "ReprocessingHistory.version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChangesMade(); !ok {
		return &ValidationError{Name: "changes_made", err: errors.New(`ent: missing required field "ReprocessingHistory.changes_made"`)}
	}
	if v, ok := _c.mutation.ChangesMade(); ok {
		if err := reprocessinghistory.ChangesMadeValidator(v); err != nil {
			return &ValidationError{Name: "changes_made", err: fmt.Errorf(`ent: validator failed for field "ReprocessingHistory.changes_made": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TriggeredBy(); !ok {
		return &ValidationError{Name: "triggered_by", err: errors.New(`ent: missing required field "ReprocessingHistory.triggered_by"`)}
	}
	if v, ok := _c.mutation.TriggeredBy(); ok {
		if err := reprocessinghistory.TriggeredByValidator(v); err != nil {
			return &ValidationError{Name: "triggered_by", err: fmt.Errorf(`ent: validator failed for field "ReprocessingHistory.triggered_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReprocessingHistory.created_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "ReprocessingHistory.document"`)}
	}
	return nil
}

func (_c *ReprocessingHistoryCreate) sqlSave(ctx context.Context) (*ReprocessingHistory, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReprocessingHistoryCreate) createSpec() (*ReprocessingHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &ReprocessingHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reprocessinghistory.Table, sqlgraph.NewFieldSpec(reprocessinghistory.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(reprocessinghistory.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.ChangesMade(); ok {
		_spec.SetField(reprocessinghistory.FieldChangesMade, field.TypeString, value)
		_node.ChangesMade = value
	}
	if value, ok := _c.mutation.TriggeredBy(); ok {
		_spec.SetField(reprocessinghistory.FieldTriggeredBy, field.TypeString, value)
		_node.TriggeredBy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reprocessinghistory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reprocessinghistory.DocumentTable,
			Columns: []string{reprocessinghistory.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReprocessingHistoryCreateBulk is the builder for creating many ReprocessingHistory entities in bulk.
type ReprocessingHistoryCreateBulk struct {
	config
	err      error
	builders []*ReprocessingHistoryCreate
}

// Save creates the ReprocessingHistory entities in the database.
func (_c *ReprocessingHistoryCreateBulk) Save(ctx context.Context) ([]*ReprocessingHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReprocessingHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReprocessingHistoryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ReprocessingHistoryCreateBulk) SaveX(ctx context.Context) []*ReprocessingHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReprocessingHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReprocessingHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

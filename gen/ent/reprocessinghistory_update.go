// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adeolu-martins/docextract/gen/ent/document"
	"github.com/adeolu-martins/docextract/gen/ent/predicate"
	"github.com/adeolu-martins/docextract/gen/ent/reprocessinghistory"
	"github.com/google/uuid"
)

// ReprocessingHistoryUpdate is the builder for updating ReprocessingHistory entities.
type ReprocessingHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *ReprocessingHistoryMutation
}

// Where appends a list predicates to the ReprocessingHistoryUpdate builder.
func (_u *ReprocessingHistoryUpdate) Where(ps ...predicate.ReprocessingHistory) *ReprocessingHistoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ReprocessingHistoryUpdate) SetDocumentID(v uuid.UUID) *ReprocessingHistoryUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ReprocessingHistoryUpdate) SetNillableDocumentID(v *uuid.UUID) *ReprocessingHistoryUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ReprocessingHistoryUpdate) SetVersion(v int) *ReprocessingHistoryUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ReprocessingHistoryUpdate) SetNillableVersion(v *int) *ReprocessingHistoryUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ReprocessingHistoryUpdate) AddVersion(v int) *ReprocessingHistoryUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetChangesMade sets the "changes_made" field.
func (_u *ReprocessingHistoryUpdate) SetChangesMade(v string) *ReprocessingHistoryUpdate {
	_u.mutation.SetChangesMade(v)
	return _u
}

// SetNillableChangesMade sets the "changes_made" field if the given value is not nil.
func (_u *ReprocessingHistoryUpdate) SetNillableChangesMade(v *string) *ReprocessingHistoryUpdate {
	if v != nil {
		_u.SetChangesMade(*v)
	}
	return _u
}

// SetTriggeredBy sets the "triggered_by" field.
func (_u *ReprocessingHistoryUpdate) SetTriggeredBy(v string) *ReprocessingHistoryUpdate {
	_u.mutation.SetTriggeredBy(v)
	return _u
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (_u *ReprocessingHistoryUpdate) SetNillableTriggeredBy(v *string) *ReprocessingHistoryUpdate {
	if v != nil {
		_u.SetTriggeredBy(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReprocessingHistoryUpdate) SetCreatedAt(v time.Time) *ReprocessingHistoryUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReprocessingHistoryUpdate) SetNillableCreatedAt(v *time.Time) *ReprocessingHistoryUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ReprocessingHistoryUpdate) SetDocument(v *Document) *ReprocessingHistoryUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ReprocessingHistoryMutation object of the builder.
func (_u *ReprocessingHistoryUpdate) Mutation() *ReprocessingHistoryMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ReprocessingHistoryUpdate) ClearDocument() *ReprocessingHistoryUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReprocessingHistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReprocessingHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReprocessingHistoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReprocessingHistoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReprocessingHistoryUpdate) check() error {
	if v, ok := _u.mutation.Version(); ok {
		if err := reprocessinghistory.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "ReprocessingHistory.version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChangesMade(); ok {
		if err := reprocessinghistory.ChangesMadeValidator(v); err != nil {
			return &ValidationError{Name: "changes_made", err: fmt.Errorf(`ent: validator failed for field "ReprocessingHistory.changes_made": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TriggeredBy(); ok {
		if err := reprocessinghistory.TriggeredByValidator(v); err != nil {
			return &ValidationError{Name: "triggered_by", err: fmt.Errorf(`ent: validator failed for field "ReprocessingHistory.triggered_by": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReprocessingHistory.document"`)
	}
	return nil
}

func (_u *ReprocessingHistoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reprocessinghistory.Table, reprocessinghistory.Columns, sqlgraph.NewFieldSpec(reprocessinghistory.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(reprocessinghistory.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(reprocessinghistory.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChangesMade(); ok {
		_spec.SetField(reprocessinghistory.FieldChangesMade, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggeredBy(); ok {
		_spec.SetField(reprocessinghistory.FieldTriggeredBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(reprocessinghistory.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reprocessinghistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReprocessingHistoryUpdateOne is the builder for updating a single ReprocessingHistory entity.
type ReprocessingHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReprocessingHistoryMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ReprocessingHistoryUpdateOne) SetDocumentID(v uuid.UUID) *ReprocessingHistoryUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ReprocessingHistoryUpdateOne) SetNillableDocumentID(v *uuid.UUID) *ReprocessingHistoryUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ReprocessingHistoryUpdateOne) SetVersion(v int) *ReprocessingHistoryUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ReprocessingHistoryUpdateOne) SetNillableVersion(v *int) *ReprocessingHistoryUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ReprocessingHistoryUpdateOne) AddVersion(v int) *ReprocessingHistoryUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetChangesMade sets the "changes_made" field.
func (_u *ReprocessingHistoryUpdateOne) SetChangesMade(v string) *ReprocessingHistoryUpdateOne {
	_u.mutation.SetChangesMade(v)
	return _u
}

// SetNillableChangesMade sets the "changes_made" field if the given value is not nil.
func (_u *ReprocessingHistoryUpdateOne) SetNillableChangesMade(v *string) *ReprocessingHistoryUpdateOne {
	if v != nil {
		_u.SetChangesMade(*v)
	}
	return _u
}

// SetTriggeredBy sets the "triggered_by" field.
func (_u *ReprocessingHistoryUpdateOne) SetTriggeredBy(v string) *ReprocessingHistoryUpdateOne {
	_u.mutation.SetTriggeredBy(v)
	return _u
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (_u *ReprocessingHistoryUpdateOne) SetNillableTriggeredBy(v *string) *ReprocessingHistoryUpdateOne {
	if v != nil {
		_u.SetTriggeredBy(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReprocessingHistoryUpdateOne) SetCreatedAt(v time.Time) *ReprocessingHistoryUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReprocessingHistoryUpdateOne) SetNillableCreatedAt(v *time.Time) *ReprocessingHistoryUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ReprocessingHistoryUpdateOne) SetDocument(v *Document) *ReprocessingHistoryUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ReprocessingHistoryMutation object of the builder.
func (_u *ReprocessingHistoryUpdateOne) Mutation() *ReprocessingHistoryMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ReprocessingHistoryUpdateOne) ClearDocument() *ReprocessingHistoryUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the ReprocessingHistoryUpdate builder.
func (_u *ReprocessingHistoryUpdateOne) Where(ps ...predicate.ReprocessingHistory) *ReprocessingHistoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReprocessingHistoryUpdateOne) Select(field string, fields ...string) *ReprocessingHistoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReprocessingHistory entity.
func (_u *ReprocessingHistoryUpdateOne) Save(ctx context.Context) (*ReprocessingHistory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReprocessingHistoryUpdateOne) SaveX(ctx context.Context) *ReprocessingHistory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReprocessingHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReprocessingHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReprocessingHistoryUpdateOne) check() error {
	if v, ok := _u.mutation.Version(); ok {
		if err := reprocessinghistory.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "ReprocessingHistory.version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChangesMade(); ok {
		if err := reprocessinghistory.ChangesMadeValidator(v); err != nil {
			return &ValidationError{Name: "changes_made", err: fmt.Errorf(`ent: validator failed for field "ReprocessingHistory.changes_made": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TriggeredBy(); ok {
		if err := reprocessinghistory.TriggeredByValidator(v); err != nil {
			return &ValidationError{Name: "triggered_by", err: fmt.Errorf(`ent: validator failed for field "ReprocessingHistory.triggered_by": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReprocessingHistory.document"`)
	}
	return nil
}

func (_u *ReprocessingHistoryUpdateOne) sqlSave(ctx context.Context) (_node *ReprocessingHistory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reprocessinghistory.Table, reprocessinghistory.Columns, sqlgraph.NewFieldSpec(reprocessinghistory.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReprocessingHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reprocessinghistory.FieldID)
		for _, f := range fields {
			if !reprocessinghistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reprocessinghistory.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(reprocessinghistory.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(reprocessinghistory.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChangesMade(); ok {
		_spec.SetField(reprocessinghistory.FieldChangesMade, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggeredBy(); ok {
		_spec.SetField(reprocessinghistory.FieldTriggeredBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(reprocessinghistory.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ReprocessingHistory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reprocessinghistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/adeolu-martins/docextract/gen/ent/document"
	"github.com/adeolu-martins/docextract/gen/ent/predicate"
	"github.com/adeolu-martins/docextract/gen/ent/processingjob"
	"github.com/google/uuid"
)

// ProcessingJobUpdate is the builder for updating ProcessingJob entities.
type ProcessingJobUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessingJobMutation
}

// Where appends a list predicates to the ProcessingJobUpdate builder.
func (_u *ProcessingJobUpdate) Where(ps ...predicate.ProcessingJob) *ProcessingJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ProcessingJobUpdate) SetDocumentID(v uuid.UUID) *ProcessingJobUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableDocumentID(v *uuid.UUID) *ProcessingJobUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetCustomerID sets the "customer_id" field.
func (_u *ProcessingJobUpdate) SetCustomerID(v uuid.UUID) *ProcessingJobUpdate {
	_u.mutation.SetCustomerID(v)
	return _u
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableCustomerID(v *uuid.UUID) *ProcessingJobUpdate {
	if v != nil {
		_u.SetCustomerID(*v)
	}
	return _u
}

// ClearCustomerID clears the value of the "customer_id" field.
func (_u *ProcessingJobUpdate) ClearCustomerID() *ProcessingJobUpdate {
	_u.mutation.ClearCustomerID()
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *ProcessingJobUpdate) SetTemplateID(v uuid.UUID) *ProcessingJobUpdate {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableTemplateID(v *uuid.UUID) *ProcessingJobUpdate {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// ClearTemplateID clears the value of the "template_id" field.
func (_u *ProcessingJobUpdate) ClearTemplateID() *ProcessingJobUpdate {
	_u.mutation.ClearTemplateID()
	return _u
}

// SetFormat sets the "format" field.
func (_u *ProcessingJobUpdate) SetFormat(v string) *ProcessingJobUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableFormat(v *string) *ProcessingJobUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ProcessingJobUpdate) SetStartedAt(v time.Time) *ProcessingJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableStartedAt(v *time.Time) *ProcessingJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ProcessingJobUpdate) SetFinishedAt(v time.Time) *ProcessingJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableFinishedAt(v *time.Time) *ProcessingJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ProcessingJobUpdate) ClearFinishedAt() *ProcessingJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessingJobUpdate) SetStatus(v string) *ProcessingJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableStatus(v *string) *ProcessingJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ProcessingJobUpdate) SetErrorMessage(v string) *ProcessingJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableErrorMessage(v *string) *ProcessingJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ProcessingJobUpdate) ClearErrorMessage() *ProcessingJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ProcessingJobUpdate) SetConfidence(v float64) *ProcessingJobUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ProcessingJobUpdate) SetNillableConfidence(v *float64) *ProcessingJobUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ProcessingJobUpdate) AddConfidence(v float64) *ProcessingJobUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *ProcessingJobUpdate) ClearConfidence() *ProcessingJobUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetExtractionLog sets the "extraction_log" field.
func (_u *ProcessingJobUpdate) SetExtractionLog(v json.RawMessage) *ProcessingJobUpdate {
	_u.mutation.SetExtractionLog(v)
	return _u
}

// AppendExtractionLog appends value to the "extraction_log" field.
func (_u *ProcessingJobUpdate) AppendExtractionLog(v json.RawMessage) *ProcessingJobUpdate {
	_u.mutation.AppendExtractionLog(v)
	return _u
}

// ClearExtractionLog clears the value of the "extraction_log" field.
func (_u *ProcessingJobUpdate) ClearExtractionLog() *ProcessingJobUpdate {
	_u.mutation.ClearExtractionLog()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ProcessingJobUpdate) SetDocument(v *Document) *ProcessingJobUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ProcessingJobMutation object of the builder.
func (_u *ProcessingJobUpdate) Mutation() *ProcessingJobMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ProcessingJobUpdate) ClearDocument() *ProcessingJobUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessingJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessingJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessingJobUpdate) check() error {
	if v, ok := _u.mutation.Format(); ok {
		if err := processingjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := processingjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.status": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProcessingJob.document"`)
	}
	return nil
}

func (_u *ProcessingJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processingjob.Table, processingjob.Columns, sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CustomerID(); ok {
		_spec.SetField(processingjob.FieldCustomerID, field.TypeUUID, value)
	}
	if _u.mutation.CustomerIDCleared() {
		_spec.ClearField(processingjob.FieldCustomerID, field.TypeUUID)
	}
	if value, ok := _u.mutation.TemplateID(); ok {
		_spec.SetField(processingjob.FieldTemplateID, field.TypeUUID, value)
	}
	if _u.mutation.TemplateIDCleared() {
		_spec.ClearField(processingjob.FieldTemplateID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(processingjob.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(processingjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(processingjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(processingjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processingjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(processingjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(processingjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(processingjob.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(processingjob.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(processingjob.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExtractionLog(); ok {
		_spec.SetField(processingjob.FieldExtractionLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractionLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processingjob.FieldExtractionLog, value)
		})
	}
	if _u.mutation.ExtractionLogCleared() {
		_spec.ClearField(processingjob.FieldExtractionLog, field.TypeJSON)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processingjob.DocumentTable,
			Columns: []string{processingjob.DocumentColumn},
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
			Table:   processingjob.DocumentTable,
			Columns: []string{processingjob.DocumentColumn},
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
			err = &NotFoundError{processingjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessingJobUpdateOne is the builder for updating a single ProcessingJob entity.
type ProcessingJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessingJobMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ProcessingJobUpdateOne) SetDocumentID(v uuid.UUID) *ProcessingJobUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableDocumentID(v *uuid.UUID) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetCustomerID sets the "customer_id" field.
func (_u *ProcessingJobUpdateOne) SetCustomerID(v uuid.UUID) *ProcessingJobUpdateOne {
	_u.mutation.SetCustomerID(v)
	return _u
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableCustomerID(v *uuid.UUID) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetCustomerID(*v)
	}
	return _u
}

// ClearCustomerID clears the value of the "customer_id" field.
func (_u *ProcessingJobUpdateOne) ClearCustomerID() *ProcessingJobUpdateOne {
	_u.mutation.ClearCustomerID()
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *ProcessingJobUpdateOne) SetTemplateID(v uuid.UUID) *ProcessingJobUpdateOne {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableTemplateID(v *uuid.UUID) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// ClearTemplateID clears the value of the "template_id" field.
func (_u *ProcessingJobUpdateOne) ClearTemplateID() *ProcessingJobUpdateOne {
	_u.mutation.ClearTemplateID()
	return _u
}

// SetFormat sets the "format" field.
func (_u *ProcessingJobUpdateOne) SetFormat(v string) *ProcessingJobUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableFormat(v *string) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ProcessingJobUpdateOne) SetStartedAt(v time.Time) *ProcessingJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableStartedAt(v *time.Time) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ProcessingJobUpdateOne) SetFinishedAt(v time.Time) *ProcessingJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableFinishedAt(v *time.Time) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ProcessingJobUpdateOne) ClearFinishedAt() *ProcessingJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessingJobUpdateOne) SetStatus(v string) *ProcessingJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableStatus(v *string) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ProcessingJobUpdateOne) SetErrorMessage(v string) *ProcessingJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableErrorMessage(v *string) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ProcessingJobUpdateOne) ClearErrorMessage() *ProcessingJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ProcessingJobUpdateOne) SetConfidence(v float64) *ProcessingJobUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ProcessingJobUpdateOne) SetNillableConfidence(v *float64) *ProcessingJobUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ProcessingJobUpdateOne) AddConfidence(v float64) *ProcessingJobUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *ProcessingJobUpdateOne) ClearConfidence() *ProcessingJobUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetExtractionLog sets the "extraction_log" field.
func (_u *ProcessingJobUpdateOne) SetExtractionLog(v json.RawMessage) *ProcessingJobUpdateOne {
	_u.mutation.SetExtractionLog(v)
	return _u
}

// AppendExtractionLog appends value to the "extraction_log" field.
func (_u *ProcessingJobUpdateOne) AppendExtractionLog(v json.RawMessage) *ProcessingJobUpdateOne {
	_u.mutation.AppendExtractionLog(v)
	return _u
}

// ClearExtractionLog clears the value of the "extraction_log" field.
func (_u *ProcessingJobUpdateOne) ClearExtractionLog() *ProcessingJobUpdateOne {
	_u.mutation.ClearExtractionLog()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ProcessingJobUpdateOne) SetDocument(v *Document) *ProcessingJobUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ProcessingJobMutation object of the builder.
func (_u *ProcessingJobUpdateOne) Mutation() *ProcessingJobMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ProcessingJobUpdateOne) ClearDocument() *ProcessingJobUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the ProcessingJobUpdate builder.
func (_u *ProcessingJobUpdateOne) Where(ps ...predicate.ProcessingJob) *ProcessingJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessingJobUpdateOne) Select(field string, fields ...string) *ProcessingJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcessingJob entity.
func (_u *ProcessingJobUpdateOne) Save(ctx context.Context) (*ProcessingJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingJobUpdateOne) SaveX(ctx context.Context) *ProcessingJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessingJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessingJobUpdateOne) check() error {
	if v, ok := _u.mutation.Format(); ok {
		if err := processingjob.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := processingjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessingJob.status": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProcessingJob.document"`)
	}
	return nil
}

func (_u *ProcessingJobUpdateOne) sqlSave(ctx context.Context) (_node *ProcessingJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processingjob.Table, processingjob.Columns, sqlgraph.NewFieldSpec(processingjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcessingJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processingjob.FieldID)
		for _, f := range fields {
			if !processingjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processingjob.FieldID {
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
	if value, ok := _u.mutation.CustomerID(); ok {
		_spec.SetField(processingjob.FieldCustomerID, field.TypeUUID, value)
	}
	if _u.mutation.CustomerIDCleared() {
		_spec.ClearField(processingjob.FieldCustomerID, field.TypeUUID)
	}
	if value, ok := _u.mutation.TemplateID(); ok {
		_spec.SetField(processingjob.FieldTemplateID, field.TypeUUID, value)
	}
	if _u.mutation.TemplateIDCleared() {
		_spec.ClearField(processingjob.FieldTemplateID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(processingjob.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(processingjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(processingjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(processingjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processingjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(processingjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(processingjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(processingjob.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(processingjob.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(processingjob.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExtractionLog(); ok {
		_spec.SetField(processingjob.FieldExtractionLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExtractionLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, processingjob.FieldExtractionLog, value)
		})
	}
	if _u.mutation.ExtractionLogCleared() {
		_spec.ClearField(processingjob.FieldExtractionLog, field.TypeJSON)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processingjob.DocumentTable,
			Columns: []string{processingjob.DocumentColumn},
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
			Table:   processingjob.DocumentTable,
			Columns: []string{processingjob.DocumentColumn},
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
	_node = &ProcessingJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processingjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

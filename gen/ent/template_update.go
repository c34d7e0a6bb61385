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
	"github.com/adeolu-martins/docextract/gen/ent/customer"
	"github.com/adeolu-martins/docextract/gen/ent/predicate"
	"github.com/adeolu-martins/docextract/gen/ent/template"
	"github.com/google/uuid"
)

// TemplateUpdate is the builder for updating Template entities.
type TemplateUpdate struct {
	config
	hooks    []Hook
	mutation *TemplateMutation
}

// Where appends a list predicates to the TemplateUpdate builder.
func (_u *TemplateUpdate) Where(ps ...predicate.Template) *TemplateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCustomerID sets the "customer_id" field.
func (_u *TemplateUpdate) SetCustomerID(v uuid.UUID) *TemplateUpdate {
	_u.mutation.SetCustomerID(v)
	return _u
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_u *TemplateUpdate) SetNillableCustomerID(v *uuid.UUID) *TemplateUpdate {
	if v != nil {
		_u.SetCustomerID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *TemplateUpdate) SetName(v string) *TemplateUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TemplateUpdate) SetNillableName(v *string) *TemplateUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *TemplateUpdate) SetVersion(v int) *TemplateUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *TemplateUpdate) SetNillableVersion(v *int) *TemplateUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *TemplateUpdate) AddVersion(v int) *TemplateUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetRules sets the "rules" field.
func (_u *TemplateUpdate) SetRules(v json.RawMessage) *TemplateUpdate {
	_u.mutation.SetRules(v)
	return _u
}

// AppendRules appends value to the "rules" field.
func (_u *TemplateUpdate) AppendRules(v json.RawMessage) *TemplateUpdate {
	_u.mutation.AppendRules(v)
	return _u
}

// ClearRules clears the value of the "rules" field.
func (_u *TemplateUpdate) ClearRules() *TemplateUpdate {
	_u.mutation.ClearRules()
	return _u
}

// SetHardcodedMappings sets the "hardcoded_mappings" field.
func (_u *TemplateUpdate) SetHardcodedMappings(v json.RawMessage) *TemplateUpdate {
	_u.mutation.SetHardcodedMappings(v)
	return _u
}

// AppendHardcodedMappings appends value to the "hardcoded_mappings" field.
func (_u *TemplateUpdate) AppendHardcodedMappings(v json.RawMessage) *TemplateUpdate {
	_u.mutation.AppendHardcodedMappings(v)
	return _u
}

// ClearHardcodedMappings clears the value of the "hardcoded_mappings" field.
func (_u *TemplateUpdate) ClearHardcodedMappings() *TemplateUpdate {
	_u.mutation.ClearHardcodedMappings()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *TemplateUpdate) SetIsActive(v bool) *TemplateUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *TemplateUpdate) SetNillableIsActive(v *bool) *TemplateUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TemplateUpdate) SetCreatedAt(v time.Time) *TemplateUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TemplateUpdate) SetNillableCreatedAt(v *time.Time) *TemplateUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TemplateUpdate) SetUpdatedAt(v time.Time) *TemplateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCustomer sets the "customer" edge to the Customer entity.
func (_u *TemplateUpdate) SetCustomer(v *Customer) *TemplateUpdate {
	return _u.SetCustomerID(v.ID)
}

// Mutation returns the TemplateMutation object of the builder.
func (_u *TemplateUpdate) Mutation() *TemplateMutation {
	return _u.mutation
}

// ClearCustomer clears the "customer" edge to the Customer entity.
func (_u *TemplateUpdate) ClearCustomer() *TemplateUpdate {
	_u.mutation.ClearCustomer()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TemplateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TemplateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TemplateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TemplateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TemplateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := template.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TemplateUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := template.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Template.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := template.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Template.version": %w`, err)}
		}
	}
	if _u.mutation.CustomerCleared() && len(_u.mutation.CustomerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Template.customer"`)
	}
	return nil
}

func (_u *TemplateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(template.Table, template.Columns, sqlgraph.NewFieldSpec(template.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(template.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(template.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(template.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Rules(); ok {
		_spec.SetField(template.FieldRules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRules(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, template.FieldRules, value)
		})
	}
	if _u.mutation.RulesCleared() {
		_spec.ClearField(template.FieldRules, field.TypeJSON)
	}
	if value, ok := _u.mutation.HardcodedMappings(); ok {
		_spec.SetField(template.FieldHardcodedMappings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHardcodedMappings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, template.FieldHardcodedMappings, value)
		})
	}
	if _u.mutation.HardcodedMappingsCleared() {
		_spec.ClearField(template.FieldHardcodedMappings, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(template.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(template.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(template.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CustomerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   template.CustomerTable,
			Columns: []string{template.CustomerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customer.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CustomerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   template.CustomerTable,
			Columns: []string{template.CustomerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{template.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TemplateUpdateOne is the builder for updating a single Template entity.
type TemplateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TemplateMutation
}

// SetCustomerID sets the "customer_id" field.
func (_u *TemplateUpdateOne) SetCustomerID(v uuid.UUID) *TemplateUpdateOne {
	_u.mutation.SetCustomerID(v)
	return _u
}

// SetNillableCustomerID sets the "customer_id" field if the given value is not nil.
func (_u *TemplateUpdateOne) SetNillableCustomerID(v *uuid.UUID) *TemplateUpdateOne {
	if v != nil {
		_u.SetCustomerID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *TemplateUpdateOne) SetName(v string) *TemplateUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TemplateUpdateOne) SetNillableName(v *string) *TemplateUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *TemplateUpdateOne) SetVersion(v int) *TemplateUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *TemplateUpdateOne) SetNillableVersion(v *int) *TemplateUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *TemplateUpdateOne) AddVersion(v int) *TemplateUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetRules sets the "rules" field.
func (_u *TemplateUpdateOne) SetRules(v json.RawMessage) *TemplateUpdateOne {
	_u.mutation.SetRules(v)
	return _u
}

// AppendRules appends value to the "rules" field.
func (_u *TemplateUpdateOne) AppendRules(v json.RawMessage) *TemplateUpdateOne {
	_u.mutation.AppendRules(v)
	return _u
}

// ClearRules clears the value of the "rules" field.
func (_u *TemplateUpdateOne) ClearRules() *TemplateUpdateOne {
	_u.mutation.ClearRules()
	return _u
}

// SetHardcodedMappings sets the "hardcoded_mappings" field.
func (_u *TemplateUpdateOne) SetHardcodedMappings(v json.RawMessage) *TemplateUpdateOne {
	_u.mutation.SetHardcodedMappings(v)
	return _u
}

// AppendHardcodedMappings appends value to the "hardcoded_mappings" field.
func (_u *TemplateUpdateOne) AppendHardcodedMappings(v json.RawMessage) *TemplateUpdateOne {
	_u.mutation.AppendHardcodedMappings(v)
	return _u
}

// ClearHardcodedMappings clears the value of the "hardcoded_mappings" field.
func (_u *TemplateUpdateOne) ClearHardcodedMappings() *TemplateUpdateOne {
	_u.mutation.ClearHardcodedMappings()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *TemplateUpdateOne) SetIsActive(v bool) *TemplateUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *TemplateUpdateOne) SetNillableIsActive(v *bool) *TemplateUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TemplateUpdateOne) SetCreatedAt(v time.Time) *TemplateUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TemplateUpdateOne) SetNillableCreatedAt(v *time.Time) *TemplateUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TemplateUpdateOne) SetUpdatedAt(v time.Time) *TemplateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCustomer sets the "customer" edge to the Customer entity.
func (_u *TemplateUpdateOne) SetCustomer(v *Customer) *TemplateUpdateOne {
	return _u.SetCustomerID(v.ID)
}

// Mutation returns the TemplateMutation object of the builder.
func (_u *TemplateUpdateOne) Mutation() *TemplateMutation {
	return _u.mutation
}

// ClearCustomer clears the "customer" edge to the Customer entity.
func (_u *TemplateUpdateOne) ClearCustomer() *TemplateUpdateOne {
	_u.mutation.ClearCustomer()
	return _u
}

// Where appends a list predicates to the TemplateUpdate builder.
func (_u *TemplateUpdateOne) Where(ps ...predicate.Template) *TemplateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TemplateUpdateOne) Select(field string, fields ...string) *TemplateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Template entity.
func (_u *TemplateUpdateOne) Save(ctx context.Context) (*Template, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TemplateUpdateOne) SaveX(ctx context.Context) *Template {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TemplateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TemplateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TemplateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := template.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TemplateUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := template.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Template.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := template.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Template.version": %w`, err)}
		}
	}
	if _u.mutation.CustomerCleared() && len(_u.mutation.CustomerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Template.customer"`)
	}
	return nil
}

func (_u *TemplateUpdateOne) sqlSave(ctx context.Context) (_node *Template, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(template.Table, template.Columns, sqlgraph.NewFieldSpec(template.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Template.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, template.FieldID)
		for _, f := range fields {
			if !template.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != template.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(template.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(template.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(template.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Rules(); ok {
		_spec.SetField(template.FieldRules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRules(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, template.FieldRules, value)
		})
	}
	if _u.mutation.RulesCleared() {
		_spec.ClearField(template.FieldRules, field.TypeJSON)
	}
	if value, ok := _u.mutation.HardcodedMappings(); ok {
		_spec.SetField(template.FieldHardcodedMappings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHardcodedMappings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, template.FieldHardcodedMappings, value)
		})
	}
	if _u.mutation.HardcodedMappingsCleared() {
		_spec.ClearField(template.FieldHardcodedMappings, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(template.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(template.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(template.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CustomerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   template.CustomerTable,
			Columns: []string{template.CustomerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customer.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CustomerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   template.CustomerTable,
			Columns: []string{template.CustomerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customer.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Template{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{template.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

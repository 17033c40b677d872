// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docufield/docufield/gen/ent/predicate"
	"github.com/docufield/docufield/gen/ent/prompttemplate"
)

// PromptTemplateUpdate is the builder for updating PromptTemplate entities.
type PromptTemplateUpdate struct {
	config
	hooks    []Hook
	mutation *PromptTemplateMutation
}

// Where appends a list predicates to the PromptTemplateUpdate builder.
func (_u *PromptTemplateUpdate) Where(ps ...predicate.PromptTemplate) *PromptTemplateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *PromptTemplateUpdate) SetName(v string) *PromptTemplateUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PromptTemplateUpdate) SetNillableName(v *string) *PromptTemplateUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *PromptTemplateUpdate) SetVersion(v int) *PromptTemplateUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *PromptTemplateUpdate) SetNillableVersion(v *int) *PromptTemplateUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *PromptTemplateUpdate) AddVersion(v int) *PromptTemplateUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *PromptTemplateUpdate) SetSystemPrompt(v string) *PromptTemplateUpdate {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *PromptTemplateUpdate) SetNillableSystemPrompt(v *string) *PromptTemplateUpdate {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// SetFieldPrompts sets the "field_prompts" field.
func (_u *PromptTemplateUpdate) SetFieldPrompts(v map[string]string) *PromptTemplateUpdate {
	_u.mutation.SetFieldPrompts(v)
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *PromptTemplateUpdate) SetModelName(v string) *PromptTemplateUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *PromptTemplateUpdate) SetNillableModelName(v *string) *PromptTemplateUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PromptTemplateUpdate) SetIsActive(v bool) *PromptTemplateUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PromptTemplateUpdate) SetNillableIsActive(v *bool) *PromptTemplateUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *PromptTemplateUpdate) SetCreatedBy(v string) *PromptTemplateUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *PromptTemplateUpdate) SetNillableCreatedBy(v *string) *PromptTemplateUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *PromptTemplateUpdate) ClearCreatedBy() *PromptTemplateUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// Mutation returns the PromptTemplateMutation object of the builder.
func (_u *PromptTemplateUpdate) Mutation() *PromptTemplateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PromptTemplateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptTemplateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PromptTemplateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptTemplateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptTemplateUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := prompttemplate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "PromptTemplate.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := prompttemplate.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "PromptTemplate.version": %w`, err)}
		}
	}
	return nil
}

func (_u *PromptTemplateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prompttemplate.Table, prompttemplate.Columns, sqlgraph.NewFieldSpec(prompttemplate.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(prompttemplate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(prompttemplate.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(prompttemplate.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(prompttemplate.FieldSystemPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldPrompts(); ok {
		_spec.SetField(prompttemplate.FieldFieldPrompts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(prompttemplate.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(prompttemplate.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(prompttemplate.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(prompttemplate.FieldCreatedBy, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prompttemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PromptTemplateUpdateOne is the builder for updating a single PromptTemplate entity.
type PromptTemplateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PromptTemplateMutation
}

// SetName sets the "name" field.
func (_u *PromptTemplateUpdateOne) SetName(v string) *PromptTemplateUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PromptTemplateUpdateOne) SetNillableName(v *string) *PromptTemplateUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *PromptTemplateUpdateOne) SetVersion(v int) *PromptTemplateUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *PromptTemplateUpdateOne) SetNillableVersion(v *int) *PromptTemplateUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *PromptTemplateUpdateOne) AddVersion(v int) *PromptTemplateUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetSystemPrompt sets the "system_prompt" field.
func (_u *PromptTemplateUpdateOne) SetSystemPrompt(v string) *PromptTemplateUpdateOne {
	_u.mutation.SetSystemPrompt(v)
	return _u
}

// SetNillableSystemPrompt sets the "system_prompt" field if the given value is not nil.
func (_u *PromptTemplateUpdateOne) SetNillableSystemPrompt(v *string) *PromptTemplateUpdateOne {
	if v != nil {
		_u.SetSystemPrompt(*v)
	}
	return _u
}

// SetFieldPrompts sets the "field_prompts" field.
func (_u *PromptTemplateUpdateOne) SetFieldPrompts(v map[string]string) *PromptTemplateUpdateOne {
	_u.mutation.SetFieldPrompts(v)
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *PromptTemplateUpdateOne) SetModelName(v string) *PromptTemplateUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *PromptTemplateUpdateOne) SetNillableModelName(v *string) *PromptTemplateUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PromptTemplateUpdateOne) SetIsActive(v bool) *PromptTemplateUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PromptTemplateUpdateOne) SetNillableIsActive(v *bool) *PromptTemplateUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *PromptTemplateUpdateOne) SetCreatedBy(v string) *PromptTemplateUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *PromptTemplateUpdateOne) SetNillableCreatedBy(v *string) *PromptTemplateUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *PromptTemplateUpdateOne) ClearCreatedBy() *PromptTemplateUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// Mutation returns the PromptTemplateMutation object of the builder.
func (_u *PromptTemplateUpdateOne) Mutation() *PromptTemplateMutation {
	return _u.mutation
}

// Where appends a list predicates to the PromptTemplateUpdate builder.
func (_u *PromptTemplateUpdateOne) Where(ps ...predicate.PromptTemplate) *PromptTemplateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PromptTemplateUpdateOne) Select(field string, fields ...string) *PromptTemplateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PromptTemplate entity.
func (_u *PromptTemplateUpdateOne) Save(ctx context.Context) (*PromptTemplate, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromptTemplateUpdateOne) SaveX(ctx context.Context) *PromptTemplate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PromptTemplateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromptTemplateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromptTemplateUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := prompttemplate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "PromptTemplate.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := prompttemplate.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "PromptTemplate.version": %w`, err)}
		}
	}
	return nil
}

func (_u *PromptTemplateUpdateOne) sqlSave(ctx context.Context) (_node *PromptTemplate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prompttemplate.Table, prompttemplate.Columns, sqlgraph.NewFieldSpec(prompttemplate.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PromptTemplate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, prompttemplate.FieldID)
		for _, f := range fields {
			if !prompttemplate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != prompttemplate.FieldID {
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
		_spec.SetField(prompttemplate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(prompttemplate.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(prompttemplate.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SystemPrompt(); ok {
		_spec.SetField(prompttemplate.FieldSystemPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.FieldPrompts(); ok {
		_spec.SetField(prompttemplate.FieldFieldPrompts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(prompttemplate.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(prompttemplate.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(prompttemplate.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(prompttemplate.FieldCreatedBy, field.TypeString)
	}
	_node = &PromptTemplate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prompttemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

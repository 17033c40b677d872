// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docufield/docufield/gen/ent/prompttemplate"
	"github.com/google/uuid"
)

// PromptTemplateCreate is the builder for creating a PromptTemplate entity.
type PromptTemplateCreate struct {
	config
	mutation *PromptTemplateMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *PromptTemplateCreate) SetName(v string) *PromptTemplateCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *PromptTemplateCreate) SetVersion(v int) *PromptTemplateCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *PromptTemplateCreate) SetNillableVersion(v *int) *PromptTemplateCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetSystemPrompt sets the "system_prompt" field.
func (_c *PromptTemplateCreate) SetSystemPrompt(v string) *PromptTemplateCreate {
	_c.mutation.SetSystemPrompt(v)
	return _c
}

// SetFieldPrompts sets the "field_prompts" field.
func (_c *PromptTemplateCreate) SetFieldPrompts(v map[string]string) *PromptTemplateCreate {
	_c.mutation.SetFieldPrompts(v)
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *PromptTemplateCreate) SetModelName(v string) *PromptTemplateCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_c *PromptTemplateCreate) SetNillableModelName(v *string) *PromptTemplateCreate {
	if v != nil {
		_c.SetModelName(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *PromptTemplateCreate) SetIsActive(v bool) *PromptTemplateCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *PromptTemplateCreate) SetNillableIsActive(v *bool) *PromptTemplateCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *PromptTemplateCreate) SetCreatedBy(v string) *PromptTemplateCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *PromptTemplateCreate) SetNillableCreatedBy(v *string) *PromptTemplateCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PromptTemplateCreate) SetCreatedAt(v time.Time) *PromptTemplateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PromptTemplateCreate) SetNillableCreatedAt(v *time.Time) *PromptTemplateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PromptTemplateCreate) SetID(v uuid.UUID) *PromptTemplateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PromptTemplateCreate) SetNillableID(v *uuid.UUID) *PromptTemplateCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PromptTemplateMutation object of the builder.
func (_c *PromptTemplateCreate) Mutation() *PromptTemplateMutation {
	return _c.mutation
}

// Save creates the PromptTemplate in the database.
func (_c *PromptTemplateCreate) Save(ctx context.Context) (*PromptTemplate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PromptTemplateCreate) SaveX(ctx context.Context) *PromptTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptTemplateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptTemplateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PromptTemplateCreate) defaults() {
	if _, ok := _c.mutation.Version(); !ok {
		v := prompttemplate.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.ModelName(); !ok {
		v := prompttemplate.DefaultModelName
		_c.mutation.SetModelName(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := prompttemplate.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := prompttemplate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := prompttemplate.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PromptTemplateCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "PromptTemplate.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := prompttemplate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "PromptTemplate.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "PromptTemplate.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := prompttemplate.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "PromptTemplate.version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SystemPrompt(); !ok {
		return &ValidationError{Name: "system_prompt", err: errors.New(`ent: missing required field "PromptTemplate.system_prompt"`)}
	}
	if _, ok := _c.mutation.FieldPrompts(); !ok {
		return &ValidationError{Name: "field_prompts", err: errors.New(`ent: missing required field "PromptTemplate.field_prompts"`)}
	}
	if _, ok := _c.mutation.ModelName(); !ok {
		return &ValidationError{Name: "model_name", err: errors.New(`ent: missing required field "PromptTemplate.model_name"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "PromptTemplate.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PromptTemplate.created_at"`)}
	}
	return nil
}

func (_c *PromptTemplateCreate) sqlSave(ctx context.Context) (*PromptTemplate, error) {
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

func (_c *PromptTemplateCreate) createSpec() (*PromptTemplate, *sqlgraph.CreateSpec) {
	var (
		_node = &PromptTemplate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(prompttemplate.Table, sqlgraph.NewFieldSpec(prompttemplate.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(prompttemplate.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(prompttemplate.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.SystemPrompt(); ok {
		_spec.SetField(prompttemplate.FieldSystemPrompt, field.TypeString, value)
		_node.SystemPrompt = value
	}
	if value, ok := _c.mutation.FieldPrompts(); ok {
		_spec.SetField(prompttemplate.FieldFieldPrompts, field.TypeJSON, value)
		_node.FieldPrompts = value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(prompttemplate.FieldModelName, field.TypeString, value)
		_node.ModelName = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(prompttemplate.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(prompttemplate.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(prompttemplate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// PromptTemplateCreateBulk is the builder for creating many PromptTemplate entities in bulk.
type PromptTemplateCreateBulk struct {
	config
	err      error
	builders []*PromptTemplateCreate
}

// Save creates the PromptTemplate entities in the database.
func (_c *PromptTemplateCreateBulk) Save(ctx context.Context) ([]*PromptTemplate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PromptTemplate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PromptTemplateMutation)
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
func (_c *PromptTemplateCreateBulk) SaveX(ctx context.Context) []*PromptTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromptTemplateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromptTemplateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

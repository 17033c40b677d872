// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docufield/docufield/gen/ent/extractionresult"
	"github.com/docufield/docufield/gen/ent/fielddefinition"
	"github.com/google/uuid"
)

// FieldDefinitionCreate is the builder for creating a FieldDefinition entity.
type FieldDefinitionCreate struct {
	config
	mutation *FieldDefinitionMutation
	hooks    []Hook
}

// SetKey sets the "key" field.
func (_c *FieldDefinitionCreate) SetKey(v string) *FieldDefinitionCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetLabel sets the "label" field.
func (_c *FieldDefinitionCreate) SetLabel(v string) *FieldDefinitionCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetDataType sets the "data_type" field.
func (_c *FieldDefinitionCreate) SetDataType(v string) *FieldDefinitionCreate {
	_c.mutation.SetDataType(v)
	return _c
}

// SetNillableDataType sets the "data_type" field if the given value is not nil.
func (_c *FieldDefinitionCreate) SetNillableDataType(v *string) *FieldDefinitionCreate {
	if v != nil {
		_c.SetDataType(*v)
	}
	return _c
}

// SetEnumValues sets the "enum_values" field.
func (_c *FieldDefinitionCreate) SetEnumValues(v []string) *FieldDefinitionCreate {
	_c.mutation.SetEnumValues(v)
	return _c
}

// SetRequired sets the "required" field.
func (_c *FieldDefinitionCreate) SetRequired(v bool) *FieldDefinitionCreate {
	_c.mutation.SetRequired(v)
	return _c
}

// SetNillableRequired sets the "required" field if the given value is not nil.
func (_c *FieldDefinitionCreate) SetNillableRequired(v *bool) *FieldDefinitionCreate {
	if v != nil {
		_c.SetRequired(*v)
	}
	return _c
}

// SetUIOrder sets the "ui_order" field.
func (_c *FieldDefinitionCreate) SetUIOrder(v int) *FieldDefinitionCreate {
	_c.mutation.SetUIOrder(v)
	return _c
}

// SetNillableUIOrder sets the "ui_order" field if the given value is not nil.
func (_c *FieldDefinitionCreate) SetNillableUIOrder(v *int) *FieldDefinitionCreate {
	if v != nil {
		_c.SetUIOrder(*v)
	}
	return _c
}

// SetCustomPrompt sets the "custom_prompt" field.
func (_c *FieldDefinitionCreate) SetCustomPrompt(v string) *FieldDefinitionCreate {
	_c.mutation.SetCustomPrompt(v)
	return _c
}

// SetNillableCustomPrompt sets the "custom_prompt" field if the given value is not nil.
func (_c *FieldDefinitionCreate) SetNillableCustomPrompt(v *string) *FieldDefinitionCreate {
	if v != nil {
		_c.SetCustomPrompt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FieldDefinitionCreate) SetCreatedAt(v time.Time) *FieldDefinitionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FieldDefinitionCreate) SetNillableCreatedAt(v *time.Time) *FieldDefinitionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FieldDefinitionCreate) SetUpdatedAt(v time.Time) *FieldDefinitionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FieldDefinitionCreate) SetNillableUpdatedAt(v *time.Time) *FieldDefinitionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddResultIDs adds the "results" edge to the ExtractionResult entity by IDs.
func (_c *FieldDefinitionCreate) AddResultIDs(ids ...uuid.UUID) *FieldDefinitionCreate {
	_c.mutation.AddResultIDs(ids...)
	return _c
}

// AddResults adds the "results" edges to the ExtractionResult entity.
func (_c *FieldDefinitionCreate) AddResults(v ...*ExtractionResult) *FieldDefinitionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddResultIDs(ids...)
}

// Mutation returns the FieldDefinitionMutation object of the builder.
func (_c *FieldDefinitionCreate) Mutation() *FieldDefinitionMutation {
	return _c.mutation
}

// Save creates the FieldDefinition in the database.
func (_c *FieldDefinitionCreate) Save(ctx context.Context) (*FieldDefinition, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FieldDefinitionCreate) SaveX(ctx context.Context) *FieldDefinition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FieldDefinitionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FieldDefinitionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FieldDefinitionCreate) defaults() {
	if _, ok := _c.mutation.DataType(); !ok {
		v := fielddefinition.DefaultDataType
		_c.mutation.SetDataType(v)
	}
	if _, ok := _c.mutation.Required(); !ok {
		v := fielddefinition.DefaultRequired
		_c.mutation.SetRequired(v)
	}
	if _, ok := _c.mutation.UIOrder(); !ok {
		v := fielddefinition.DefaultUIOrder
		_c.mutation.SetUIOrder(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := fielddefinition.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := fielddefinition.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FieldDefinitionCreate) check() error {
	if _, ok := _c.mutation.Key(); !ok {
		return &ValidationError{Name: "key", err: errors.New(`ent: missing required field "FieldDefinition.key"`)}
	}
	if v, ok := _c.mutation.Key(); ok {
		if err := fielddefinition.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "FieldDefinition.key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Label(); !ok {
		return &ValidationError{Name: "label", err: errors.New(`ent: missing required field "FieldDefinition.label"`)}
	}
	if v, ok := _c.mutation.Label(); ok {
		if err := fielddefinition.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "FieldDefinition.label": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DataType(); !ok {
		return &ValidationError{Name: "data_type", err: errors.New(`ent: missing required field "FieldDefinition.data_type"`)}
	}
	if v, ok := _c.mutation.DataType(); ok {
		if err := fielddefinition.DataTypeValidator(v); err != nil {
			return &ValidationError{Name: "data_type", err: fmt.Errorf(`ent: validator failed for field "FieldDefinition.data_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Required(); !ok {
		return &ValidationError{Name: "required", err: errors.New(`ent: missing required field "FieldDefinition.required"`)}
	}
	if _, ok := _c.mutation.UIOrder(); !ok {
		return &ValidationError{Name: "ui_order", err: errors.New(`ent: missing required field "FieldDefinition.ui_order"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FieldDefinition.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "FieldDefinition.updated_at"`)}
	}
	return nil
}

func (_c *FieldDefinitionCreate) sqlSave(ctx context.Context) (*FieldDefinition, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FieldDefinitionCreate) createSpec() (*FieldDefinition, *sqlgraph.CreateSpec) {
	var (
		_node = &FieldDefinition{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fielddefinition.Table, sqlgraph.NewFieldSpec(fielddefinition.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(fielddefinition.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(fielddefinition.FieldLabel, field.TypeString, value)
		_node.Label = value
	}
	if value, ok := _c.mutation.DataType(); ok {
		_spec.SetField(fielddefinition.FieldDataType, field.TypeString, value)
		_node.DataType = value
	}
	if value, ok := _c.mutation.EnumValues(); ok {
		_spec.SetField(fielddefinition.FieldEnumValues, field.TypeJSON, value)
		_node.EnumValues = value
	}
	if value, ok := _c.mutation.Required(); ok {
		_spec.SetField(fielddefinition.FieldRequired, field.TypeBool, value)
		_node.Required = value
	}
	if value, ok := _c.mutation.UIOrder(); ok {
		_spec.SetField(fielddefinition.FieldUIOrder, field.TypeInt, value)
		_node.UIOrder = value
	}
	if value, ok := _c.mutation.CustomPrompt(); ok {
		_spec.SetField(fielddefinition.FieldCustomPrompt, field.TypeString, value)
		_node.CustomPrompt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(fielddefinition.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(fielddefinition.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   fielddefinition.ResultsTable,
			Columns: []string{fielddefinition.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FieldDefinitionCreateBulk is the builder for creating many FieldDefinition entities in bulk.
type FieldDefinitionCreateBulk struct {
	config
	err      error
	builders []*FieldDefinitionCreate
}

// Save creates the FieldDefinition entities in the database.
func (_c *FieldDefinitionCreateBulk) Save(ctx context.Context) ([]*FieldDefinition, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FieldDefinition, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FieldDefinitionMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *FieldDefinitionCreateBulk) SaveX(ctx context.Context) []*FieldDefinition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FieldDefinitionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FieldDefinitionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

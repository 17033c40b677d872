// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docufield/docufield/gen/ent/systemlog"
)

// SystemLogCreate is the builder for creating a SystemLog entity.
type SystemLogCreate struct {
	config
	mutation *SystemLogMutation
	hooks    []Hook
}

// SetLevel sets the "level" field.
func (_c *SystemLogCreate) SetLevel(v string) *SystemLogCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *SystemLogCreate) SetNillableLevel(v *string) *SystemLogCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetMessage sets the "message" field.
func (_c *SystemLogCreate) SetMessage(v string) *SystemLogCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *SystemLogCreate) SetSource(v string) *SystemLogCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *SystemLogCreate) SetNillableSource(v *string) *SystemLogCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetContext sets the "context" field.
func (_c *SystemLogCreate) SetContext(v json.RawMessage) *SystemLogCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SystemLogCreate) SetCreatedAt(v time.Time) *SystemLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SystemLogCreate) SetNillableCreatedAt(v *time.Time) *SystemLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the SystemLogMutation object of the builder.
func (_c *SystemLogCreate) Mutation() *SystemLogMutation {
	return _c.mutation
}

// Save creates the SystemLog in the database.
func (_c *SystemLogCreate) Save(ctx context.Context) (*SystemLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SystemLogCreate) SaveX(ctx context.Context) *SystemLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SystemLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SystemLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SystemLogCreate) defaults() {
	if _, ok := _c.mutation.Level(); !ok {
		v := systemlog.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := systemlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SystemLogCreate) check() error {
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "SystemLog.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := systemlog.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "SystemLog.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "SystemLog.message"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SystemLog.created_at"`)}
	}
	return nil
}

func (_c *SystemLogCreate) sqlSave(ctx context.Context) (*SystemLog, error) {
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

func (_c *SystemLogCreate) createSpec() (*SystemLog, *sqlgraph.CreateSpec) {
	var (
		_node = &SystemLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(systemlog.Table, sqlgraph.NewFieldSpec(systemlog.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(systemlog.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(systemlog.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(systemlog.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(systemlog.FieldContext, field.TypeJSON, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(systemlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// SystemLogCreateBulk is the builder for creating many SystemLog entities in bulk.
type SystemLogCreateBulk struct {
	config
	err      error
	builders []*SystemLogCreate
}

// Save creates the SystemLog entities in the database.
func (_c *SystemLogCreateBulk) Save(ctx context.Context) ([]*SystemLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SystemLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SystemLogMutation)
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
func (_c *SystemLogCreateBulk) SaveX(ctx context.Context) []*SystemLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SystemLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SystemLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

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
	"github.com/docufield/docufield/gen/ent/verificationrecord"
	"github.com/google/uuid"
)

// VerificationRecordCreate is the builder for creating a VerificationRecord entity.
type VerificationRecordCreate struct {
	config
	mutation *VerificationRecordMutation
	hooks    []Hook
}

// SetResultID sets the "result_id" field.
func (_c *VerificationRecordCreate) SetResultID(v uuid.UUID) *VerificationRecordCreate {
	_c.mutation.SetResultID(v)
	return _c
}

// SetVerifier sets the "verifier" field.
func (_c *VerificationRecordCreate) SetVerifier(v string) *VerificationRecordCreate {
	_c.mutation.SetVerifier(v)
	return _c
}

// SetNillableVerifier sets the "verifier" field if the given value is not nil.
func (_c *VerificationRecordCreate) SetNillableVerifier(v *string) *VerificationRecordCreate {
	if v != nil {
		_c.SetVerifier(*v)
	}
	return _c
}

// SetAction sets the "action" field.
func (_c *VerificationRecordCreate) SetAction(v string) *VerificationRecordCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetCorrectedValue sets the "corrected_value" field.
func (_c *VerificationRecordCreate) SetCorrectedValue(v string) *VerificationRecordCreate {
	_c.mutation.SetCorrectedValue(v)
	return _c
}

// SetNillableCorrectedValue sets the "corrected_value" field if the given value is not nil.
func (_c *VerificationRecordCreate) SetNillableCorrectedValue(v *string) *VerificationRecordCreate {
	if v != nil {
		_c.SetCorrectedValue(*v)
	}
	return _c
}

// SetComment sets the "comment" field.
func (_c *VerificationRecordCreate) SetComment(v string) *VerificationRecordCreate {
	_c.mutation.SetComment(v)
	return _c
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_c *VerificationRecordCreate) SetNillableComment(v *string) *VerificationRecordCreate {
	if v != nil {
		_c.SetComment(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VerificationRecordCreate) SetCreatedAt(v time.Time) *VerificationRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VerificationRecordCreate) SetNillableCreatedAt(v *time.Time) *VerificationRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VerificationRecordCreate) SetID(v uuid.UUID) *VerificationRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VerificationRecordCreate) SetNillableID(v *uuid.UUID) *VerificationRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetResult sets the "result" edge to the ExtractionResult entity.
func (_c *VerificationRecordCreate) SetResult(v *ExtractionResult) *VerificationRecordCreate {
	return _c.SetResultID(v.ID)
}

// Mutation returns the VerificationRecordMutation object of the builder.
func (_c *VerificationRecordCreate) Mutation() *VerificationRecordMutation {
	return _c.mutation
}

// Save creates the VerificationRecord in the database.
func (_c *VerificationRecordCreate) Save(ctx context.Context) (*VerificationRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VerificationRecordCreate) SaveX(ctx context.Context) *VerificationRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VerificationRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := verificationrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := verificationrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VerificationRecordCreate) check() error {
	if _, ok := _c.mutation.ResultID(); !ok {
		return &ValidationError{Name: "result_id", err: errors.New(`ent: missing required field "VerificationRecord.result_id"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "VerificationRecord.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := verificationrecord.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "VerificationRecord.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "VerificationRecord.created_at"`)}
	}
	if len(_c.mutation.ResultIDs()) == 0 {
		return &ValidationError{Name: "result", err: errors.New(`ent: missing required edge "VerificationRecord.result"`)}
	}
	return nil
}

func (_c *VerificationRecordCreate) sqlSave(ctx context.Context) (*VerificationRecord, error) {
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

func (_c *VerificationRecordCreate) createSpec() (*VerificationRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &VerificationRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(verificationrecord.Table, sqlgraph.NewFieldSpec(verificationrecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Verifier(); ok {
		_spec.SetField(verificationrecord.FieldVerifier, field.TypeString, value)
		_node.Verifier = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(verificationrecord.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.CorrectedValue(); ok {
		_spec.SetField(verificationrecord.FieldCorrectedValue, field.TypeString, value)
		_node.CorrectedValue = value
	}
	if value, ok := _c.mutation.Comment(); ok {
		_spec.SetField(verificationrecord.FieldComment, field.TypeString, value)
		_node.Comment = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(verificationrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ResultIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   verificationrecord.ResultTable,
			Columns: []string{verificationrecord.ResultColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ResultID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// VerificationRecordCreateBulk is the builder for creating many VerificationRecord entities in bulk.
type VerificationRecordCreateBulk struct {
	config
	err      error
	builders []*VerificationRecordCreate
}

// Save creates the VerificationRecord entities in the database.
func (_c *VerificationRecordCreateBulk) Save(ctx context.Context) ([]*VerificationRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VerificationRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VerificationRecordMutation)
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
func (_c *VerificationRecordCreateBulk) SaveX(ctx context.Context) []*VerificationRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerificationRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerificationRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

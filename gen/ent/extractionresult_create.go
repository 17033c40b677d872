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
	"github.com/docufield/docufield/gen/ent/document"
	"github.com/docufield/docufield/gen/ent/extractionresult"
	"github.com/docufield/docufield/gen/ent/fielddefinition"
	"github.com/docufield/docufield/gen/ent/verificationrecord"
	"github.com/google/uuid"
)

// ExtractionResultCreate is the builder for creating a ExtractionResult entity.
type ExtractionResultCreate struct {
	config
	mutation *ExtractionResultMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *ExtractionResultCreate) SetDocumentID(v uuid.UUID) *ExtractionResultCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetFieldDefID sets the "field_def_id" field.
func (_c *ExtractionResultCreate) SetFieldDefID(v int) *ExtractionResultCreate {
	_c.mutation.SetFieldDefID(v)
	return _c
}

// SetValueRaw sets the "value_raw" field.
func (_c *ExtractionResultCreate) SetValueRaw(v string) *ExtractionResultCreate {
	_c.mutation.SetValueRaw(v)
	return _c
}

// SetNormalizedValue sets the "normalized_value" field.
func (_c *ExtractionResultCreate) SetNormalizedValue(v string) *ExtractionResultCreate {
	_c.mutation.SetNormalizedValue(v)
	return _c
}

// SetNillableNormalizedValue sets the "normalized_value" field if the given value is not nil.
func (_c *ExtractionResultCreate) SetNillableNormalizedValue(v *string) *ExtractionResultCreate {
	if v != nil {
		_c.SetNormalizedValue(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ExtractionResultCreate) SetConfidence(v float64) *ExtractionResultCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *ExtractionResultCreate) SetNillableConfidence(v *float64) *ExtractionResultCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetPageNum sets the "page_num" field.
func (_c *ExtractionResultCreate) SetPageNum(v int) *ExtractionResultCreate {
	_c.mutation.SetPageNum(v)
	return _c
}

// SetNillablePageNum sets the "page_num" field if the given value is not nil.
func (_c *ExtractionResultCreate) SetNillablePageNum(v *int) *ExtractionResultCreate {
	if v != nil {
		_c.SetPageNum(*v)
	}
	return _c
}

// SetBbox sets the "bbox" field.
func (_c *ExtractionResultCreate) SetBbox(v json.RawMessage) *ExtractionResultCreate {
	_c.mutation.SetBbox(v)
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *ExtractionResultCreate) SetModelName(v string) *ExtractionResultCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetModelVersion sets the "model_version" field.
func (_c *ExtractionResultCreate) SetModelVersion(v string) *ExtractionResultCreate {
	_c.mutation.SetModelVersion(v)
	return _c
}

// SetPromptVersion sets the "prompt_version" field.
func (_c *ExtractionResultCreate) SetPromptVersion(v int) *ExtractionResultCreate {
	_c.mutation.SetPromptVersion(v)
	return _c
}

// SetVerified sets the "verified" field.
func (_c *ExtractionResultCreate) SetVerified(v bool) *ExtractionResultCreate {
	_c.mutation.SetVerified(v)
	return _c
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_c *ExtractionResultCreate) SetNillableVerified(v *bool) *ExtractionResultCreate {
	if v != nil {
		_c.SetVerified(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractionResultCreate) SetCreatedAt(v time.Time) *ExtractionResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractionResultCreate) SetNillableCreatedAt(v *time.Time) *ExtractionResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionResultCreate) SetID(v uuid.UUID) *ExtractionResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractionResultCreate) SetNillableID(v *uuid.UUID) *ExtractionResultCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *ExtractionResultCreate) SetDocument(v *Document) *ExtractionResultCreate {
	return _c.SetDocumentID(v.ID)
}

// SetFieldDef sets the "field_def" edge to the FieldDefinition entity.
func (_c *ExtractionResultCreate) SetFieldDef(v *FieldDefinition) *ExtractionResultCreate {
	return _c.SetFieldDefID(v.ID)
}

// AddVerificationIDs adds the "verifications" edge to the VerificationRecord entity by IDs.
func (_c *ExtractionResultCreate) AddVerificationIDs(ids ...uuid.UUID) *ExtractionResultCreate {
	_c.mutation.AddVerificationIDs(ids...)
	return _c
}

// AddVerifications adds the "verifications" edges to the VerificationRecord entity.
func (_c *ExtractionResultCreate) AddVerifications(v ...*VerificationRecord) *ExtractionResultCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVerificationIDs(ids...)
}

// Mutation returns the ExtractionResultMutation object of the builder.
func (_c *ExtractionResultCreate) Mutation() *ExtractionResultMutation {
	return _c.mutation
}

// Save creates the ExtractionResult in the database.
func (_c *ExtractionResultCreate) Save(ctx context.Context) (*ExtractionResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionResultCreate) SaveX(ctx context.Context) *ExtractionResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionResultCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := extractionresult.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.Verified(); !ok {
		v := extractionresult.DefaultVerified
		_c.mutation.SetVerified(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractionresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractionresult.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionResultCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ExtractionResult.document_id"`)}
	}
	if _, ok := _c.mutation.FieldDefID(); !ok {
		return &ValidationError{Name: "field_def_id", err: errors.New(`ent: missing required field "ExtractionResult.field_def_id"`)}
	}
	if _, ok := _c.mutation.ValueRaw(); !ok {
		return &ValidationError{Name: "value_raw", err: errors.New(`ent: missing required field "ExtractionResult.value_raw"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "ExtractionResult.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := extractionresult.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "ExtractionResult.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModelName(); !ok {
		return &ValidationError{Name: "model_name", err: errors.New(`ent: missing required field "ExtractionResult.model_name"`)}
	}
	if _, ok := _c.mutation.ModelVersion(); !ok {
		return &ValidationError{Name: "model_version", err: errors.New(`ent: missing required field "ExtractionResult.model_version"`)}
	}
	if _, ok := _c.mutation.PromptVersion(); !ok {
		return &ValidationError{Name: "prompt_version", err: errors.New(`ent: missing required field "ExtractionResult.prompt_version"`)}
	}
	if _, ok := _c.mutation.Verified(); !ok {
		return &ValidationError{Name: "verified", err: errors.New(`ent: missing required field "ExtractionResult.verified"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractionResult.created_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "ExtractionResult.document"`)}
	}
	if len(_c.mutation.FieldDefIDs()) == 0 {
		return &ValidationError{Name: "field_def", err: errors.New(`ent: missing required edge "ExtractionResult.field_def"`)}
	}
	return nil
}

func (_c *ExtractionResultCreate) sqlSave(ctx context.Context) (*ExtractionResult, error) {
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

func (_c *ExtractionResultCreate) createSpec() (*ExtractionResult, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractionResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractionresult.Table, sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ValueRaw(); ok {
		_spec.SetField(extractionresult.FieldValueRaw, field.TypeString, value)
		_node.ValueRaw = value
	}
	if value, ok := _c.mutation.NormalizedValue(); ok {
		_spec.SetField(extractionresult.FieldNormalizedValue, field.TypeString, value)
		_node.NormalizedValue = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(extractionresult.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.PageNum(); ok {
		_spec.SetField(extractionresult.FieldPageNum, field.TypeInt, value)
		_node.PageNum = &value
	}
	if value, ok := _c.mutation.Bbox(); ok {
		_spec.SetField(extractionresult.FieldBbox, field.TypeJSON, value)
		_node.Bbox = value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(extractionresult.FieldModelName, field.TypeString, value)
		_node.ModelName = value
	}
	if value, ok := _c.mutation.ModelVersion(); ok {
		_spec.SetField(extractionresult.FieldModelVersion, field.TypeString, value)
		_node.ModelVersion = value
	}
	if value, ok := _c.mutation.PromptVersion(); ok {
		_spec.SetField(extractionresult.FieldPromptVersion, field.TypeInt, value)
		_node.PromptVersion = value
	}
	if value, ok := _c.mutation.Verified(); ok {
		_spec.SetField(extractionresult.FieldVerified, field.TypeBool, value)
		_node.Verified = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractionresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionresult.DocumentTable,
			Columns: []string{extractionresult.DocumentColumn},
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
	if nodes := _c.mutation.FieldDefIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionresult.FieldDefTable,
			Columns: []string{extractionresult.FieldDefColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fielddefinition.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FieldDefID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.VerificationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionresult.VerificationsTable,
			Columns: []string{extractionresult.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractionResultCreateBulk is the builder for creating many ExtractionResult entities in bulk.
type ExtractionResultCreateBulk struct {
	config
	err      error
	builders []*ExtractionResultCreate
}

// Save creates the ExtractionResult entities in the database.
func (_c *ExtractionResultCreateBulk) Save(ctx context.Context) ([]*ExtractionResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractionResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionResultMutation)
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
func (_c *ExtractionResultCreateBulk) SaveX(ctx context.Context) []*ExtractionResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

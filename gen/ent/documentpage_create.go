// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docufield/docufield/gen/ent/document"
	"github.com/docufield/docufield/gen/ent/documentpage"
	"github.com/google/uuid"
)

// DocumentPageCreate is the builder for creating a DocumentPage entity.
type DocumentPageCreate struct {
	config
	mutation *DocumentPageMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *DocumentPageCreate) SetDocumentID(v uuid.UUID) *DocumentPageCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetPageNum sets the "page_num" field.
func (_c *DocumentPageCreate) SetPageNum(v int) *DocumentPageCreate {
	_c.mutation.SetPageNum(v)
	return _c
}

// SetText sets the "text" field.
func (_c *DocumentPageCreate) SetText(v string) *DocumentPageCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetImagePath sets the "image_path" field.
func (_c *DocumentPageCreate) SetImagePath(v string) *DocumentPageCreate {
	_c.mutation.SetImagePath(v)
	return _c
}

// SetNillableImagePath sets the "image_path" field if the given value is not nil.
func (_c *DocumentPageCreate) SetNillableImagePath(v *string) *DocumentPageCreate {
	if v != nil {
		_c.SetImagePath(*v)
	}
	return _c
}

// SetLayout sets the "layout" field.
func (_c *DocumentPageCreate) SetLayout(v json.RawMessage) *DocumentPageCreate {
	_c.mutation.SetLayout(v)
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *DocumentPageCreate) SetDocument(v *Document) *DocumentPageCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the DocumentPageMutation object of the builder.
func (_c *DocumentPageCreate) Mutation() *DocumentPageMutation {
	return _c.mutation
}

// Save creates the DocumentPage in the database.
func (_c *DocumentPageCreate) Save(ctx context.Context) (*DocumentPage, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentPageCreate) SaveX(ctx context.Context) *DocumentPage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentPageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentPageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentPageCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "DocumentPage.document_id"`)}
	}
	if _, ok := _c.mutation.PageNum(); !ok {
		return &ValidationError{Name: "page_num", err: errors.New(`ent: missing required field "DocumentPage.page_num"`)}
	}
	if v, ok := _c.mutation.PageNum(); ok {
		if err := documentpage.PageNumValidator(v); err != nil {
			return &ValidationError{Name: "page_num", err: fmt.Errorf(`ent: validator failed for field "DocumentPage.page_num": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "DocumentPage.text"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "DocumentPage.document"`)}
	}
	return nil
}

func (_c *DocumentPageCreate) sqlSave(ctx context.Context) (*DocumentPage, error) {
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

func (_c *DocumentPageCreate) createSpec() (*DocumentPage, *sqlgraph.CreateSpec) {
	var (
		_node = &DocumentPage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(documentpage.Table, sqlgraph.NewFieldSpec(documentpage.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PageNum(); ok {
		_spec.SetField(documentpage.FieldPageNum, field.TypeInt, value)
		_node.PageNum = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(documentpage.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.ImagePath(); ok {
		_spec.SetField(documentpage.FieldImagePath, field.TypeString, value)
		_node.ImagePath = value
	}
	if value, ok := _c.mutation.Layout(); ok {
		_spec.SetField(documentpage.FieldLayout, field.TypeJSON, value)
		_node.Layout = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   documentpage.DocumentTable,
			Columns: []string{documentpage.DocumentColumn},
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

// DocumentPageCreateBulk is the builder for creating many DocumentPage entities in bulk.
type DocumentPageCreateBulk struct {
	config
	err      error
	builders []*DocumentPageCreate
}

// Save creates the DocumentPage entities in the database.
func (_c *DocumentPageCreateBulk) Save(ctx context.Context) ([]*DocumentPage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DocumentPage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentPageMutation)
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
func (_c *DocumentPageCreateBulk) SaveX(ctx context.Context) []*DocumentPage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentPageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentPageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

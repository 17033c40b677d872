// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/docufield/docufield/gen/ent/document"
	"github.com/docufield/docufield/gen/ent/documentpage"
	"github.com/docufield/docufield/gen/ent/predicate"
	"github.com/google/uuid"
)

// DocumentPageUpdate is the builder for updating DocumentPage entities.
type DocumentPageUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentPageMutation
}

// Where appends a list predicates to the DocumentPageUpdate builder.
func (_u *DocumentPageUpdate) Where(ps ...predicate.DocumentPage) *DocumentPageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *DocumentPageUpdate) SetDocumentID(v uuid.UUID) *DocumentPageUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *DocumentPageUpdate) SetNillableDocumentID(v *uuid.UUID) *DocumentPageUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetPageNum sets the "page_num" field.
func (_u *DocumentPageUpdate) SetPageNum(v int) *DocumentPageUpdate {
	_u.mutation.ResetPageNum()
	_u.mutation.SetPageNum(v)
	return _u
}

// SetNillablePageNum sets the "page_num" field if the given value is not nil.
func (_u *DocumentPageUpdate) SetNillablePageNum(v *int) *DocumentPageUpdate {
	if v != nil {
		_u.SetPageNum(*v)
	}
	return _u
}

// AddPageNum adds value to the "page_num" field.
func (_u *DocumentPageUpdate) AddPageNum(v int) *DocumentPageUpdate {
	_u.mutation.AddPageNum(v)
	return _u
}

// SetText sets the "text" field.
func (_u *DocumentPageUpdate) SetText(v string) *DocumentPageUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *DocumentPageUpdate) SetNillableText(v *string) *DocumentPageUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetImagePath sets the "image_path" field.
func (_u *DocumentPageUpdate) SetImagePath(v string) *DocumentPageUpdate {
	_u.mutation.SetImagePath(v)
	return _u
}

// SetNillableImagePath sets the "image_path" field if the given value is not nil.
func (_u *DocumentPageUpdate) SetNillableImagePath(v *string) *DocumentPageUpdate {
	if v != nil {
		_u.SetImagePath(*v)
	}
	return _u
}

// ClearImagePath clears the value of the "image_path" field.
func (_u *DocumentPageUpdate) ClearImagePath() *DocumentPageUpdate {
	_u.mutation.ClearImagePath()
	return _u
}

// SetLayout sets the "layout" field.
func (_u *DocumentPageUpdate) SetLayout(v json.RawMessage) *DocumentPageUpdate {
	_u.mutation.SetLayout(v)
	return _u
}

// AppendLayout appends value to the "layout" field.
func (_u *DocumentPageUpdate) AppendLayout(v json.RawMessage) *DocumentPageUpdate {
	_u.mutation.AppendLayout(v)
	return _u
}

// ClearLayout clears the value of the "layout" field.
func (_u *DocumentPageUpdate) ClearLayout() *DocumentPageUpdate {
	_u.mutation.ClearLayout()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *DocumentPageUpdate) SetDocument(v *Document) *DocumentPageUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the DocumentPageMutation object of the builder.
func (_u *DocumentPageUpdate) Mutation() *DocumentPageMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *DocumentPageUpdate) ClearDocument() *DocumentPageUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentPageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentPageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentPageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentPageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentPageUpdate) check() error {
	if v, ok := _u.mutation.PageNum(); ok {
		if err := documentpage.PageNumValidator(v); err != nil {
			return &ValidationError{Name: "page_num", err: fmt.Errorf(`ent: validator failed for field "DocumentPage.page_num": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocumentPage.document"`)
	}
	return nil
}

func (_u *DocumentPageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentpage.Table, documentpage.Columns, sqlgraph.NewFieldSpec(documentpage.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PageNum(); ok {
		_spec.SetField(documentpage.FieldPageNum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageNum(); ok {
		_spec.AddField(documentpage.FieldPageNum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(documentpage.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImagePath(); ok {
		_spec.SetField(documentpage.FieldImagePath, field.TypeString, value)
	}
	if _u.mutation.ImagePathCleared() {
		_spec.ClearField(documentpage.FieldImagePath, field.TypeString)
	}
	if value, ok := _u.mutation.Layout(); ok {
		_spec.SetField(documentpage.FieldLayout, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLayout(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, documentpage.FieldLayout, value)
		})
	}
	if _u.mutation.LayoutCleared() {
		_spec.ClearField(documentpage.FieldLayout, field.TypeJSON)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentpage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentPageUpdateOne is the builder for updating a single DocumentPage entity.
type DocumentPageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentPageMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *DocumentPageUpdateOne) SetDocumentID(v uuid.UUID) *DocumentPageUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *DocumentPageUpdateOne) SetNillableDocumentID(v *uuid.UUID) *DocumentPageUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetPageNum sets the "page_num" field.
func (_u *DocumentPageUpdateOne) SetPageNum(v int) *DocumentPageUpdateOne {
	_u.mutation.ResetPageNum()
	_u.mutation.SetPageNum(v)
	return _u
}

// SetNillablePageNum sets the "page_num" field if the given value is not nil.
func (_u *DocumentPageUpdateOne) SetNillablePageNum(v *int) *DocumentPageUpdateOne {
	if v != nil {
		_u.SetPageNum(*v)
	}
	return _u
}

// AddPageNum adds value to the "page_num" field.
func (_u *DocumentPageUpdateOne) AddPageNum(v int) *DocumentPageUpdateOne {
	_u.mutation.AddPageNum(v)
	return _u
}

// SetText sets the "text" field.
func (_u *DocumentPageUpdateOne) SetText(v string) *DocumentPageUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *DocumentPageUpdateOne) SetNillableText(v *string) *DocumentPageUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetImagePath sets the "image_path" field.
func (_u *DocumentPageUpdateOne) SetImagePath(v string) *DocumentPageUpdateOne {
	_u.mutation.SetImagePath(v)
	return _u
}

// SetNillableImagePath sets the "image_path" field if the given value is not nil.
func (_u *DocumentPageUpdateOne) SetNillableImagePath(v *string) *DocumentPageUpdateOne {
	if v != nil {
		_u.SetImagePath(*v)
	}
	return _u
}

// ClearImagePath clears the value of the "image_path" field.
func (_u *DocumentPageUpdateOne) ClearImagePath() *DocumentPageUpdateOne {
	_u.mutation.ClearImagePath()
	return _u
}

// SetLayout sets the "layout" field.
func (_u *DocumentPageUpdateOne) SetLayout(v json.RawMessage) *DocumentPageUpdateOne {
	_u.mutation.SetLayout(v)
	return _u
}

// AppendLayout appends value to the "layout" field.
func (_u *DocumentPageUpdateOne) AppendLayout(v json.RawMessage) *DocumentPageUpdateOne {
	_u.mutation.AppendLayout(v)
	return _u
}

// ClearLayout clears the value of the "layout" field.
func (_u *DocumentPageUpdateOne) ClearLayout() *DocumentPageUpdateOne {
	_u.mutation.ClearLayout()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *DocumentPageUpdateOne) SetDocument(v *Document) *DocumentPageUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the DocumentPageMutation object of the builder.
func (_u *DocumentPageUpdateOne) Mutation() *DocumentPageMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *DocumentPageUpdateOne) ClearDocument() *DocumentPageUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the DocumentPageUpdate builder.
func (_u *DocumentPageUpdateOne) Where(ps ...predicate.DocumentPage) *DocumentPageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentPageUpdateOne) Select(field string, fields ...string) *DocumentPageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DocumentPage entity.
func (_u *DocumentPageUpdateOne) Save(ctx context.Context) (*DocumentPage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentPageUpdateOne) SaveX(ctx context.Context) *DocumentPage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentPageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentPageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentPageUpdateOne) check() error {
	if v, ok := _u.mutation.PageNum(); ok {
		if err := documentpage.PageNumValidator(v); err != nil {
			return &ValidationError{Name: "page_num", err: fmt.Errorf(`ent: validator failed for field "DocumentPage.page_num": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocumentPage.document"`)
	}
	return nil
}

func (_u *DocumentPageUpdateOne) sqlSave(ctx context.Context) (_node *DocumentPage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentpage.Table, documentpage.Columns, sqlgraph.NewFieldSpec(documentpage.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DocumentPage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, documentpage.FieldID)
		for _, f := range fields {
			if !documentpage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != documentpage.FieldID {
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
	if value, ok := _u.mutation.PageNum(); ok {
		_spec.SetField(documentpage.FieldPageNum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageNum(); ok {
		_spec.AddField(documentpage.FieldPageNum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(documentpage.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImagePath(); ok {
		_spec.SetField(documentpage.FieldImagePath, field.TypeString, value)
	}
	if _u.mutation.ImagePathCleared() {
		_spec.ClearField(documentpage.FieldImagePath, field.TypeString)
	}
	if value, ok := _u.mutation.Layout(); ok {
		_spec.SetField(documentpage.FieldLayout, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLayout(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, documentpage.FieldLayout, value)
		})
	}
	if _u.mutation.LayoutCleared() {
		_spec.ClearField(documentpage.FieldLayout, field.TypeJSON)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DocumentPage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentpage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

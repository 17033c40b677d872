// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docufield/docufield/gen/ent/document"
	"github.com/docufield/docufield/gen/ent/documentpage"
	"github.com/docufield/docufield/gen/ent/extractionresult"
	"github.com/docufield/docufield/gen/ent/predicate"
	"github.com/google/uuid"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *DocumentUpdate) SetFilename(v string) *DocumentUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFilename(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *DocumentUpdate) SetSourceType(v string) *DocumentUpdate {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSourceType(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdate) SetStatus(v string) *DocumentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableStatus(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *DocumentUpdate) SetContentHash(v []byte) *DocumentUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// ClearContentHash clears the value of the "content_hash" field.
func (_u *DocumentUpdate) ClearContentHash() *DocumentUpdate {
	_u.mutation.ClearContentHash()
	return _u
}

// SetUploadedBy sets the "uploaded_by" field.
func (_u *DocumentUpdate) SetUploadedBy(v string) *DocumentUpdate {
	_u.mutation.SetUploadedBy(v)
	return _u
}

// SetNillableUploadedBy sets the "uploaded_by" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableUploadedBy(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetUploadedBy(*v)
	}
	return _u
}

// ClearUploadedBy clears the value of the "uploaded_by" field.
func (_u *DocumentUpdate) ClearUploadedBy() *DocumentUpdate {
	_u.mutation.ClearUploadedBy()
	return _u
}

// AddPageIDs adds the "pages" edge to the DocumentPage entity by IDs.
func (_u *DocumentUpdate) AddPageIDs(ids ...int) *DocumentUpdate {
	_u.mutation.AddPageIDs(ids...)
	return _u
}

// AddPages adds the "pages" edges to the DocumentPage entity.
func (_u *DocumentUpdate) AddPages(v ...*DocumentPage) *DocumentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPageIDs(ids...)
}

// AddResultIDs adds the "results" edge to the ExtractionResult entity by IDs.
func (_u *DocumentUpdate) AddResultIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the ExtractionResult entity.
func (_u *DocumentUpdate) AddResults(v ...*ExtractionResult) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearPages clears all "pages" edges to the DocumentPage entity.
func (_u *DocumentUpdate) ClearPages() *DocumentUpdate {
	_u.mutation.ClearPages()
	return _u
}

// RemovePageIDs removes the "pages" edge to DocumentPage entities by IDs.
func (_u *DocumentUpdate) RemovePageIDs(ids ...int) *DocumentUpdate {
	_u.mutation.RemovePageIDs(ids...)
	return _u
}

// RemovePages removes "pages" edges to DocumentPage entities.
func (_u *DocumentUpdate) RemovePages(v ...*DocumentPage) *DocumentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePageIDs(ids...)
}

// ClearResults clears all "results" edges to the ExtractionResult entity.
func (_u *DocumentUpdate) ClearResults() *DocumentUpdate {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to ExtractionResult entities by IDs.
func (_u *DocumentUpdate) RemoveResultIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to ExtractionResult entities.
func (_u *DocumentUpdate) RemoveResults(v ...*ExtractionResult) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceType(); ok {
		if err := document.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Document.source_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(document.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeBytes, value)
	}
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(document.FieldContentHash, field.TypeBytes)
	}
	if value, ok := _u.mutation.UploadedBy(); ok {
		_spec.SetField(document.FieldUploadedBy, field.TypeString, value)
	}
	if _u.mutation.UploadedByCleared() {
		_spec.ClearField(document.FieldUploadedBy, field.TypeString)
	}
	if _u.mutation.PagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.PagesTable,
			Columns: []string{document.PagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentpage.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPagesIDs(); len(nodes) > 0 && !_u.mutation.PagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.PagesTable,
			Columns: []string{document.PagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentpage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.PagesTable,
			Columns: []string{document.PagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentpage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ResultsTable,
			Columns: []string{document.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ResultsTable,
			Columns: []string{document.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ResultsTable,
			Columns: []string{document.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetFilename sets the "filename" field.
func (_u *DocumentUpdateOne) SetFilename(v string) *DocumentUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFilename(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *DocumentUpdateOne) SetSourceType(v string) *DocumentUpdateOne {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSourceType(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdateOne) SetStatus(v string) *DocumentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableStatus(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *DocumentUpdateOne) SetContentHash(v []byte) *DocumentUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// ClearContentHash clears the value of the "content_hash" field.
func (_u *DocumentUpdateOne) ClearContentHash() *DocumentUpdateOne {
	_u.mutation.ClearContentHash()
	return _u
}

// SetUploadedBy sets the "uploaded_by" field.
func (_u *DocumentUpdateOne) SetUploadedBy(v string) *DocumentUpdateOne {
	_u.mutation.SetUploadedBy(v)
	return _u
}

// SetNillableUploadedBy sets the "uploaded_by" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableUploadedBy(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetUploadedBy(*v)
	}
	return _u
}

// ClearUploadedBy clears the value of the "uploaded_by" field.
func (_u *DocumentUpdateOne) ClearUploadedBy() *DocumentUpdateOne {
	_u.mutation.ClearUploadedBy()
	return _u
}

// AddPageIDs adds the "pages" edge to the DocumentPage entity by IDs.
func (_u *DocumentUpdateOne) AddPageIDs(ids ...int) *DocumentUpdateOne {
	_u.mutation.AddPageIDs(ids...)
	return _u
}

// AddPages adds the "pages" edges to the DocumentPage entity.
func (_u *DocumentUpdateOne) AddPages(v ...*DocumentPage) *DocumentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPageIDs(ids...)
}

// AddResultIDs adds the "results" edge to the ExtractionResult entity by IDs.
func (_u *DocumentUpdateOne) AddResultIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the ExtractionResult entity.
func (_u *DocumentUpdateOne) AddResults(v ...*ExtractionResult) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearPages clears all "pages" edges to the DocumentPage entity.
func (_u *DocumentUpdateOne) ClearPages() *DocumentUpdateOne {
	_u.mutation.ClearPages()
	return _u
}

// RemovePageIDs removes the "pages" edge to DocumentPage entities by IDs.
func (_u *DocumentUpdateOne) RemovePageIDs(ids ...int) *DocumentUpdateOne {
	_u.mutation.RemovePageIDs(ids...)
	return _u
}

// RemovePages removes "pages" edges to DocumentPage entities.
func (_u *DocumentUpdateOne) RemovePages(v ...*DocumentPage) *DocumentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePageIDs(ids...)
}

// ClearResults clears all "results" edges to the ExtractionResult entity.
func (_u *DocumentUpdateOne) ClearResults() *DocumentUpdateOne {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to ExtractionResult entities by IDs.
func (_u *DocumentUpdateOne) RemoveResultIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to ExtractionResult entities.
func (_u *DocumentUpdateOne) RemoveResults(v ...*ExtractionResult) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceType(); ok {
		if err := document.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "Document.source_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(document.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeBytes, value)
	}
	if _u.mutation.ContentHashCleared() {
		_spec.ClearField(document.FieldContentHash, field.TypeBytes)
	}
	if value, ok := _u.mutation.UploadedBy(); ok {
		_spec.SetField(document.FieldUploadedBy, field.TypeString, value)
	}
	if _u.mutation.UploadedByCleared() {
		_spec.ClearField(document.FieldUploadedBy, field.TypeString)
	}
	if _u.mutation.PagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.PagesTable,
			Columns: []string{document.PagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentpage.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPagesIDs(); len(nodes) > 0 && !_u.mutation.PagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.PagesTable,
			Columns: []string{document.PagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentpage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.PagesTable,
			Columns: []string{document.PagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentpage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ResultsTable,
			Columns: []string{document.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ResultsTable,
			Columns: []string{document.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ResultsTable,
			Columns: []string{document.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/docufield/docufield/gen/ent/extractionresult"
	"github.com/docufield/docufield/gen/ent/fielddefinition"
	"github.com/docufield/docufield/gen/ent/predicate"
	"github.com/google/uuid"
)

// FieldDefinitionUpdate is the builder for updating FieldDefinition entities.
type FieldDefinitionUpdate struct {
	config
	hooks    []Hook
	mutation *FieldDefinitionMutation
}

// Where appends a list predicates to the FieldDefinitionUpdate builder.
func (_u *FieldDefinitionUpdate) Where(ps ...predicate.FieldDefinition) *FieldDefinitionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKey sets the "key" field.
func (_u *FieldDefinitionUpdate) SetKey(v string) *FieldDefinitionUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *FieldDefinitionUpdate) SetNillableKey(v *string) *FieldDefinitionUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetLabel sets the "label" field.
func (_u *FieldDefinitionUpdate) SetLabel(v string) *FieldDefinitionUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *FieldDefinitionUpdate) SetNillableLabel(v *string) *FieldDefinitionUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetDataType sets the "data_type" field.
func (_u *FieldDefinitionUpdate) SetDataType(v string) *FieldDefinitionUpdate {
	_u.mutation.SetDataType(v)
	return _u
}

// SetNillableDataType sets the "data_type" field if the given value is not nil.
func (_u *FieldDefinitionUpdate) SetNillableDataType(v *string) *FieldDefinitionUpdate {
	if v != nil {
		_u.SetDataType(*v)
	}
	return _u
}

// SetEnumValues sets the "enum_values" field.
func (_u *FieldDefinitionUpdate) SetEnumValues(v []string) *FieldDefinitionUpdate {
	_u.mutation.SetEnumValues(v)
	return _u
}

// AppendEnumValues appends value to the "enum_values" field.
func (_u *FieldDefinitionUpdate) AppendEnumValues(v []string) *FieldDefinitionUpdate {
	_u.mutation.AppendEnumValues(v)
	return _u
}

// ClearEnumValues clears the value of the "enum_values" field.
func (_u *FieldDefinitionUpdate) ClearEnumValues() *FieldDefinitionUpdate {
	_u.mutation.ClearEnumValues()
	return _u
}

// SetRequired sets the "required" field.
func (_u *FieldDefinitionUpdate) SetRequired(v bool) *FieldDefinitionUpdate {
	_u.mutation.SetRequired(v)
	return _u
}

// SetNillableRequired sets the "required" field if the given value is not nil.
func (_u *FieldDefinitionUpdate) SetNillableRequired(v *bool) *FieldDefinitionUpdate {
	if v != nil {
		_u.SetRequired(*v)
	}
	return _u
}

// SetUIOrder sets the "ui_order" field.
func (_u *FieldDefinitionUpdate) SetUIOrder(v int) *FieldDefinitionUpdate {
	_u.mutation.ResetUIOrder()
	_u.mutation.SetUIOrder(v)
	return _u
}

// SetNillableUIOrder sets the "ui_order" field if the given value is not nil.
func (_u *FieldDefinitionUpdate) SetNillableUIOrder(v *int) *FieldDefinitionUpdate {
	if v != nil {
		_u.SetUIOrder(*v)
	}
	return _u
}

// AddUIOrder adds value to the "ui_order" field.
func (_u *FieldDefinitionUpdate) AddUIOrder(v int) *FieldDefinitionUpdate {
	_u.mutation.AddUIOrder(v)
	return _u
}

// SetCustomPrompt sets the "custom_prompt" field.
func (_u *FieldDefinitionUpdate) SetCustomPrompt(v string) *FieldDefinitionUpdate {
	_u.mutation.SetCustomPrompt(v)
	return _u
}

// SetNillableCustomPrompt sets the "custom_prompt" field if the given value is not nil.
func (_u *FieldDefinitionUpdate) SetNillableCustomPrompt(v *string) *FieldDefinitionUpdate {
	if v != nil {
		_u.SetCustomPrompt(*v)
	}
	return _u
}

// ClearCustomPrompt clears the value of the "custom_prompt" field.
func (_u *FieldDefinitionUpdate) ClearCustomPrompt() *FieldDefinitionUpdate {
	_u.mutation.ClearCustomPrompt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FieldDefinitionUpdate) SetUpdatedAt(v time.Time) *FieldDefinitionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddResultIDs adds the "results" edge to the ExtractionResult entity by IDs.
func (_u *FieldDefinitionUpdate) AddResultIDs(ids ...uuid.UUID) *FieldDefinitionUpdate {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the ExtractionResult entity.
func (_u *FieldDefinitionUpdate) AddResults(v ...*ExtractionResult) *FieldDefinitionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// Mutation returns the FieldDefinitionMutation object of the builder.
func (_u *FieldDefinitionUpdate) Mutation() *FieldDefinitionMutation {
	return _u.mutation
}

// ClearResults clears all "results" edges to the ExtractionResult entity.
func (_u *FieldDefinitionUpdate) ClearResults() *FieldDefinitionUpdate {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to ExtractionResult entities by IDs.
func (_u *FieldDefinitionUpdate) RemoveResultIDs(ids ...uuid.UUID) *FieldDefinitionUpdate {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to ExtractionResult entities.
func (_u *FieldDefinitionUpdate) RemoveResults(v ...*ExtractionResult) *FieldDefinitionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FieldDefinitionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FieldDefinitionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FieldDefinitionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FieldDefinitionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FieldDefinitionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := fielddefinition.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FieldDefinitionUpdate) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := fielddefinition.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "FieldDefinition.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Label(); ok {
		if err := fielddefinition.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "FieldDefinition.label": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DataType(); ok {
		if err := fielddefinition.DataTypeValidator(v); err != nil {
			return &ValidationError{Name: "data_type", err: fmt.Errorf(`ent: validator failed for field "FieldDefinition.data_type": %w`, err)}
		}
	}
	return nil
}

func (_u *FieldDefinitionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fielddefinition.Table, fielddefinition.Columns, sqlgraph.NewFieldSpec(fielddefinition.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(fielddefinition.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(fielddefinition.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.DataType(); ok {
		_spec.SetField(fielddefinition.FieldDataType, field.TypeString, value)
	}
	if value, ok := _u.mutation.EnumValues(); ok {
		_spec.SetField(fielddefinition.FieldEnumValues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEnumValues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, fielddefinition.FieldEnumValues, value)
		})
	}
	if _u.mutation.EnumValuesCleared() {
		_spec.ClearField(fielddefinition.FieldEnumValues, field.TypeJSON)
	}
	if value, ok := _u.mutation.Required(); ok {
		_spec.SetField(fielddefinition.FieldRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UIOrder(); ok {
		_spec.SetField(fielddefinition.FieldUIOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUIOrder(); ok {
		_spec.AddField(fielddefinition.FieldUIOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CustomPrompt(); ok {
		_spec.SetField(fielddefinition.FieldCustomPrompt, field.TypeString, value)
	}
	if _u.mutation.CustomPromptCleared() {
		_spec.ClearField(fielddefinition.FieldCustomPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(fielddefinition.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fielddefinition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FieldDefinitionUpdateOne is the builder for updating a single FieldDefinition entity.
type FieldDefinitionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FieldDefinitionMutation
}

// SetKey sets the "key" field.
func (_u *FieldDefinitionUpdateOne) SetKey(v string) *FieldDefinitionUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *FieldDefinitionUpdateOne) SetNillableKey(v *string) *FieldDefinitionUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// SetLabel sets the "label" field.
func (_u *FieldDefinitionUpdateOne) SetLabel(v string) *FieldDefinitionUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *FieldDefinitionUpdateOne) SetNillableLabel(v *string) *FieldDefinitionUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetDataType sets the "data_type" field.
func (_u *FieldDefinitionUpdateOne) SetDataType(v string) *FieldDefinitionUpdateOne {
	_u.mutation.SetDataType(v)
	return _u
}

// SetNillableDataType sets the "data_type" field if the given value is not nil.
func (_u *FieldDefinitionUpdateOne) SetNillableDataType(v *string) *FieldDefinitionUpdateOne {
	if v != nil {
		_u.SetDataType(*v)
	}
	return _u
}

// SetEnumValues sets the "enum_values" field.
func (_u *FieldDefinitionUpdateOne) SetEnumValues(v []string) *FieldDefinitionUpdateOne {
	_u.mutation.SetEnumValues(v)
	return _u
}

// AppendEnumValues appends value to the "enum_values" field.
func (_u *FieldDefinitionUpdateOne) AppendEnumValues(v []string) *FieldDefinitionUpdateOne {
	_u.mutation.AppendEnumValues(v)
	return _u
}

// ClearEnumValues clears the value of the "enum_values" field.
func (_u *FieldDefinitionUpdateOne) ClearEnumValues() *FieldDefinitionUpdateOne {
	_u.mutation.ClearEnumValues()
	return _u
}

// SetRequired sets the "required" field.
func (_u *FieldDefinitionUpdateOne) SetRequired(v bool) *FieldDefinitionUpdateOne {
	_u.mutation.SetRequired(v)
	return _u
}

// SetNillableRequired sets the "required" field if the given value is not nil.
func (_u *FieldDefinitionUpdateOne) SetNillableRequired(v *bool) *FieldDefinitionUpdateOne {
	if v != nil {
		_u.SetRequired(*v)
	}
	return _u
}

// SetUIOrder sets the "ui_order" field.
func (_u *FieldDefinitionUpdateOne) SetUIOrder(v int) *FieldDefinitionUpdateOne {
	_u.mutation.ResetUIOrder()
	_u.mutation.SetUIOrder(v)
	return _u
}

// SetNillableUIOrder sets the "ui_order" field if the given value is not nil.
func (_u *FieldDefinitionUpdateOne) SetNillableUIOrder(v *int) *FieldDefinitionUpdateOne {
	if v != nil {
		_u.SetUIOrder(*v)
	}
	return _u
}

// AddUIOrder adds value to the "ui_order" field.
func (_u *FieldDefinitionUpdateOne) AddUIOrder(v int) *FieldDefinitionUpdateOne {
	_u.mutation.AddUIOrder(v)
	return _u
}

// SetCustomPrompt sets the "custom_prompt" field.
func (_u *FieldDefinitionUpdateOne) SetCustomPrompt(v string) *FieldDefinitionUpdateOne {
	_u.mutation.SetCustomPrompt(v)
	return _u
}

// SetNillableCustomPrompt sets the "custom_prompt" field if the given value is not nil.
func (_u *FieldDefinitionUpdateOne) SetNillableCustomPrompt(v *string) *FieldDefinitionUpdateOne {
	if v != nil {
		_u.SetCustomPrompt(*v)
	}
	return _u
}

// ClearCustomPrompt clears the value of the "custom_prompt" field.
func (_u *FieldDefinitionUpdateOne) ClearCustomPrompt() *FieldDefinitionUpdateOne {
	_u.mutation.ClearCustomPrompt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FieldDefinitionUpdateOne) SetUpdatedAt(v time.Time) *FieldDefinitionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddResultIDs adds the "results" edge to the ExtractionResult entity by IDs.
func (_u *FieldDefinitionUpdateOne) AddResultIDs(ids ...uuid.UUID) *FieldDefinitionUpdateOne {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the ExtractionResult entity.
func (_u *FieldDefinitionUpdateOne) AddResults(v ...*ExtractionResult) *FieldDefinitionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// Mutation returns the FieldDefinitionMutation object of the builder.
func (_u *FieldDefinitionUpdateOne) Mutation() *FieldDefinitionMutation {
	return _u.mutation
}

// ClearResults clears all "results" edges to the ExtractionResult entity.
func (_u *FieldDefinitionUpdateOne) ClearResults() *FieldDefinitionUpdateOne {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to ExtractionResult entities by IDs.
func (_u *FieldDefinitionUpdateOne) RemoveResultIDs(ids ...uuid.UUID) *FieldDefinitionUpdateOne {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to ExtractionResult entities.
func (_u *FieldDefinitionUpdateOne) RemoveResults(v ...*ExtractionResult) *FieldDefinitionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// Where appends a list predicates to the FieldDefinitionUpdate builder.
func (_u *FieldDefinitionUpdateOne) Where(ps ...predicate.FieldDefinition) *FieldDefinitionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FieldDefinitionUpdateOne) Select(field string, fields ...string) *FieldDefinitionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FieldDefinition entity.
func (_u *FieldDefinitionUpdateOne) Save(ctx context.Context) (*FieldDefinition, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FieldDefinitionUpdateOne) SaveX(ctx context.Context) *FieldDefinition {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FieldDefinitionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FieldDefinitionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FieldDefinitionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := fielddefinition.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FieldDefinitionUpdateOne) check() error {
	if v, ok := _u.mutation.Key(); ok {
		if err := fielddefinition.KeyValidator(v); err != nil {
			return &ValidationError{Name: "key", err: fmt.Errorf(`ent: validator failed for field "FieldDefinition.key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Label(); ok {
		if err := fielddefinition.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "FieldDefinition.label": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DataType(); ok {
		if err := fielddefinition.DataTypeValidator(v); err != nil {
			return &ValidationError{Name: "data_type", err: fmt.Errorf(`ent: validator failed for field "FieldDefinition.data_type": %w`, err)}
		}
	}
	return nil
}

func (_u *FieldDefinitionUpdateOne) sqlSave(ctx context.Context) (_node *FieldDefinition, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fielddefinition.Table, fielddefinition.Columns, sqlgraph.NewFieldSpec(fielddefinition.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FieldDefinition.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fielddefinition.FieldID)
		for _, f := range fields {
			if !fielddefinition.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fielddefinition.FieldID {
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
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(fielddefinition.FieldKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(fielddefinition.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.DataType(); ok {
		_spec.SetField(fielddefinition.FieldDataType, field.TypeString, value)
	}
	if value, ok := _u.mutation.EnumValues(); ok {
		_spec.SetField(fielddefinition.FieldEnumValues, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEnumValues(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, fielddefinition.FieldEnumValues, value)
		})
	}
	if _u.mutation.EnumValuesCleared() {
		_spec.ClearField(fielddefinition.FieldEnumValues, field.TypeJSON)
	}
	if value, ok := _u.mutation.Required(); ok {
		_spec.SetField(fielddefinition.FieldRequired, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UIOrder(); ok {
		_spec.SetField(fielddefinition.FieldUIOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUIOrder(); ok {
		_spec.AddField(fielddefinition.FieldUIOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CustomPrompt(); ok {
		_spec.SetField(fielddefinition.FieldCustomPrompt, field.TypeString, value)
	}
	if _u.mutation.CustomPromptCleared() {
		_spec.ClearField(fielddefinition.FieldCustomPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(fielddefinition.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FieldDefinition{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fielddefinition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

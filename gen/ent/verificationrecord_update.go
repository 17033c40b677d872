// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docufield/docufield/gen/ent/extractionresult"
	"github.com/docufield/docufield/gen/ent/predicate"
	"github.com/docufield/docufield/gen/ent/verificationrecord"
	"github.com/google/uuid"
)

// VerificationRecordUpdate is the builder for updating VerificationRecord entities.
type VerificationRecordUpdate struct {
	config
	hooks    []Hook
	mutation *VerificationRecordMutation
}

// Where appends a list predicates to the VerificationRecordUpdate builder.
func (_u *VerificationRecordUpdate) Where(ps ...predicate.VerificationRecord) *VerificationRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetResultID sets the "result_id" field.
func (_u *VerificationRecordUpdate) SetResultID(v uuid.UUID) *VerificationRecordUpdate {
	_u.mutation.SetResultID(v)
	return _u
}

// SetNillableResultID sets the "result_id" field if the given value is not nil.
func (_u *VerificationRecordUpdate) SetNillableResultID(v *uuid.UUID) *VerificationRecordUpdate {
	if v != nil {
		_u.SetResultID(*v)
	}
	return _u
}

// SetVerifier sets the "verifier" field.
func (_u *VerificationRecordUpdate) SetVerifier(v string) *VerificationRecordUpdate {
	_u.mutation.SetVerifier(v)
	return _u
}

// SetNillableVerifier sets the "verifier" field if the given value is not nil.
func (_u *VerificationRecordUpdate) SetNillableVerifier(v *string) *VerificationRecordUpdate {
	if v != nil {
		_u.SetVerifier(*v)
	}
	return _u
}

// ClearVerifier clears the value of the "verifier" field.
func (_u *VerificationRecordUpdate) ClearVerifier() *VerificationRecordUpdate {
	_u.mutation.ClearVerifier()
	return _u
}

// SetAction sets the "action" field.
func (_u *VerificationRecordUpdate) SetAction(v string) *VerificationRecordUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *VerificationRecordUpdate) SetNillableAction(v *string) *VerificationRecordUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetCorrectedValue sets the "corrected_value" field.
func (_u *VerificationRecordUpdate) SetCorrectedValue(v string) *VerificationRecordUpdate {
	_u.mutation.SetCorrectedValue(v)
	return _u
}

// SetNillableCorrectedValue sets the "corrected_value" field if the given value is not nil.
func (_u *VerificationRecordUpdate) SetNillableCorrectedValue(v *string) *VerificationRecordUpdate {
	if v != nil {
		_u.SetCorrectedValue(*v)
	}
	return _u
}

// ClearCorrectedValue clears the value of the "corrected_value" field.
func (_u *VerificationRecordUpdate) ClearCorrectedValue() *VerificationRecordUpdate {
	_u.mutation.ClearCorrectedValue()
	return _u
}

// SetComment sets the "comment" field.
func (_u *VerificationRecordUpdate) SetComment(v string) *VerificationRecordUpdate {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *VerificationRecordUpdate) SetNillableComment(v *string) *VerificationRecordUpdate {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// ClearComment clears the value of the "comment" field.
func (_u *VerificationRecordUpdate) ClearComment() *VerificationRecordUpdate {
	_u.mutation.ClearComment()
	return _u
}

// SetResult sets the "result" edge to the ExtractionResult entity.
func (_u *VerificationRecordUpdate) SetResult(v *ExtractionResult) *VerificationRecordUpdate {
	return _u.SetResultID(v.ID)
}

// Mutation returns the VerificationRecordMutation object of the builder.
func (_u *VerificationRecordUpdate) Mutation() *VerificationRecordMutation {
	return _u.mutation
}

// ClearResult clears the "result" edge to the ExtractionResult entity.
func (_u *VerificationRecordUpdate) ClearResult() *VerificationRecordUpdate {
	_u.mutation.ClearResult()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VerificationRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VerificationRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerificationRecordUpdate) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := verificationrecord.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "VerificationRecord.action": %w`, err)}
		}
	}
	if _u.mutation.ResultCleared() && len(_u.mutation.ResultIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VerificationRecord.result"`)
	}
	return nil
}

func (_u *VerificationRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verificationrecord.Table, verificationrecord.Columns, sqlgraph.NewFieldSpec(verificationrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Verifier(); ok {
		_spec.SetField(verificationrecord.FieldVerifier, field.TypeString, value)
	}
	if _u.mutation.VerifierCleared() {
		_spec.ClearField(verificationrecord.FieldVerifier, field.TypeString)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(verificationrecord.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectedValue(); ok {
		_spec.SetField(verificationrecord.FieldCorrectedValue, field.TypeString, value)
	}
	if _u.mutation.CorrectedValueCleared() {
		_spec.ClearField(verificationrecord.FieldCorrectedValue, field.TypeString)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(verificationrecord.FieldComment, field.TypeString, value)
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(verificationrecord.FieldComment, field.TypeString)
	}
	if _u.mutation.ResultCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VerificationRecordUpdateOne is the builder for updating a single VerificationRecord entity.
type VerificationRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VerificationRecordMutation
}

// SetResultID sets the "result_id" field.
func (_u *VerificationRecordUpdateOne) SetResultID(v uuid.UUID) *VerificationRecordUpdateOne {
	_u.mutation.SetResultID(v)
	return _u
}

// SetNillableResultID sets the "result_id" field if the given value is not nil.
func (_u *VerificationRecordUpdateOne) SetNillableResultID(v *uuid.UUID) *VerificationRecordUpdateOne {
	if v != nil {
		_u.SetResultID(*v)
	}
	return _u
}

// SetVerifier sets the "verifier" field.
func (_u *VerificationRecordUpdateOne) SetVerifier(v string) *VerificationRecordUpdateOne {
	_u.mutation.SetVerifier(v)
	return _u
}

// SetNillableVerifier sets the "verifier" field if the given value is not nil.
func (_u *VerificationRecordUpdateOne) SetNillableVerifier(v *string) *VerificationRecordUpdateOne {
	if v != nil {
		_u.SetVerifier(*v)
	}
	return _u
}

// ClearVerifier clears the value of the "verifier" field.
func (_u *VerificationRecordUpdateOne) ClearVerifier() *VerificationRecordUpdateOne {
	_u.mutation.ClearVerifier()
	return _u
}

// SetAction sets the "action" field.
func (_u *VerificationRecordUpdateOne) SetAction(v string) *VerificationRecordUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *VerificationRecordUpdateOne) SetNillableAction(v *string) *VerificationRecordUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetCorrectedValue sets the "corrected_value" field.
func (_u *VerificationRecordUpdateOne) SetCorrectedValue(v string) *VerificationRecordUpdateOne {
	_u.mutation.SetCorrectedValue(v)
	return _u
}

// SetNillableCorrectedValue sets the "corrected_value" field if the given value is not nil.
func (_u *VerificationRecordUpdateOne) SetNillableCorrectedValue(v *string) *VerificationRecordUpdateOne {
	if v != nil {
		_u.SetCorrectedValue(*v)
	}
	return _u
}

// ClearCorrectedValue clears the value of the "corrected_value" field.
func (_u *VerificationRecordUpdateOne) ClearCorrectedValue() *VerificationRecordUpdateOne {
	_u.mutation.ClearCorrectedValue()
	return _u
}

// SetComment sets the "comment" field.
func (_u *VerificationRecordUpdateOne) SetComment(v string) *VerificationRecordUpdateOne {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *VerificationRecordUpdateOne) SetNillableComment(v *string) *VerificationRecordUpdateOne {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// ClearComment clears the value of the "comment" field.
func (_u *VerificationRecordUpdateOne) ClearComment() *VerificationRecordUpdateOne {
	_u.mutation.ClearComment()
	return _u
}

// SetResult sets the "result" edge to the ExtractionResult entity.
func (_u *VerificationRecordUpdateOne) SetResult(v *ExtractionResult) *VerificationRecordUpdateOne {
	return _u.SetResultID(v.ID)
}

// Mutation returns the VerificationRecordMutation object of the builder.
func (_u *VerificationRecordUpdateOne) Mutation() *VerificationRecordMutation {
	return _u.mutation
}

// ClearResult clears the "result" edge to the ExtractionResult entity.
func (_u *VerificationRecordUpdateOne) ClearResult() *VerificationRecordUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// Where appends a list predicates to the VerificationRecordUpdate builder.
func (_u *VerificationRecordUpdateOne) Where(ps ...predicate.VerificationRecord) *VerificationRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VerificationRecordUpdateOne) Select(field string, fields ...string) *VerificationRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VerificationRecord entity.
func (_u *VerificationRecordUpdateOne) Save(ctx context.Context) (*VerificationRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerificationRecordUpdateOne) SaveX(ctx context.Context) *VerificationRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VerificationRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerificationRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerificationRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := verificationrecord.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "VerificationRecord.action": %w`, err)}
		}
	}
	if _u.mutation.ResultCleared() && len(_u.mutation.ResultIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VerificationRecord.result"`)
	}
	return nil
}

func (_u *VerificationRecordUpdateOne) sqlSave(ctx context.Context) (_node *VerificationRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verificationrecord.Table, verificationrecord.Columns, sqlgraph.NewFieldSpec(verificationrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VerificationRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, verificationrecord.FieldID)
		for _, f := range fields {
			if !verificationrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != verificationrecord.FieldID {
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
	if value, ok := _u.mutation.Verifier(); ok {
		_spec.SetField(verificationrecord.FieldVerifier, field.TypeString, value)
	}
	if _u.mutation.VerifierCleared() {
		_spec.ClearField(verificationrecord.FieldVerifier, field.TypeString)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(verificationrecord.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectedValue(); ok {
		_spec.SetField(verificationrecord.FieldCorrectedValue, field.TypeString, value)
	}
	if _u.mutation.CorrectedValueCleared() {
		_spec.ClearField(verificationrecord.FieldCorrectedValue, field.TypeString)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(verificationrecord.FieldComment, field.TypeString, value)
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(verificationrecord.FieldComment, field.TypeString)
	}
	if _u.mutation.ResultCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &VerificationRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verificationrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

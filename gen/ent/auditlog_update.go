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
	"github.com/docufield/docufield/gen/ent/auditlog"
	"github.com/docufield/docufield/gen/ent/predicate"
)

// AuditLogUpdate is the builder for updating AuditLog entities.
type AuditLogUpdate struct {
	config
	hooks    []Hook
	mutation *AuditLogMutation
}

// Where appends a list predicates to the AuditLogUpdate builder.
func (_u *AuditLogUpdate) Where(ps ...predicate.AuditLog) *AuditLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetActor sets the "actor" field.
func (_u *AuditLogUpdate) SetActor(v string) *AuditLogUpdate {
	_u.mutation.SetActor(v)
	return _u
}

// SetNillableActor sets the "actor" field if the given value is not nil.
func (_u *AuditLogUpdate) SetNillableActor(v *string) *AuditLogUpdate {
	if v != nil {
		_u.SetActor(*v)
	}
	return _u
}

// ClearActor clears the value of the "actor" field.
func (_u *AuditLogUpdate) ClearActor() *AuditLogUpdate {
	_u.mutation.ClearActor()
	return _u
}

// SetAction sets the "action" field.
func (_u *AuditLogUpdate) SetAction(v string) *AuditLogUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *AuditLogUpdate) SetNillableAction(v *string) *AuditLogUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetEntityKind sets the "entity_kind" field.
func (_u *AuditLogUpdate) SetEntityKind(v string) *AuditLogUpdate {
	_u.mutation.SetEntityKind(v)
	return _u
}

// SetNillableEntityKind sets the "entity_kind" field if the given value is not nil.
func (_u *AuditLogUpdate) SetNillableEntityKind(v *string) *AuditLogUpdate {
	if v != nil {
		_u.SetEntityKind(*v)
	}
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *AuditLogUpdate) SetEntityID(v string) *AuditLogUpdate {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *AuditLogUpdate) SetNillableEntityID(v *string) *AuditLogUpdate {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// ClearEntityID clears the value of the "entity_id" field.
func (_u *AuditLogUpdate) ClearEntityID() *AuditLogUpdate {
	_u.mutation.ClearEntityID()
	return _u
}

// SetDetails sets the "details" field.
func (_u *AuditLogUpdate) SetDetails(v json.RawMessage) *AuditLogUpdate {
	_u.mutation.SetDetails(v)
	return _u
}

// AppendDetails appends value to the "details" field.
func (_u *AuditLogUpdate) AppendDetails(v json.RawMessage) *AuditLogUpdate {
	_u.mutation.AppendDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *AuditLogUpdate) ClearDetails() *AuditLogUpdate {
	_u.mutation.ClearDetails()
	return _u
}

// SetPromptText sets the "prompt_text" field.
func (_u *AuditLogUpdate) SetPromptText(v string) *AuditLogUpdate {
	_u.mutation.SetPromptText(v)
	return _u
}

// SetNillablePromptText sets the "prompt_text" field if the given value is not nil.
func (_u *AuditLogUpdate) SetNillablePromptText(v *string) *AuditLogUpdate {
	if v != nil {
		_u.SetPromptText(*v)
	}
	return _u
}

// ClearPromptText clears the value of the "prompt_text" field.
func (_u *AuditLogUpdate) ClearPromptText() *AuditLogUpdate {
	_u.mutation.ClearPromptText()
	return _u
}

// SetModelResponse sets the "model_response" field.
func (_u *AuditLogUpdate) SetModelResponse(v string) *AuditLogUpdate {
	_u.mutation.SetModelResponse(v)
	return _u
}

// SetNillableModelResponse sets the "model_response" field if the given value is not nil.
func (_u *AuditLogUpdate) SetNillableModelResponse(v *string) *AuditLogUpdate {
	if v != nil {
		_u.SetModelResponse(*v)
	}
	return _u
}

// ClearModelResponse clears the value of the "model_response" field.
func (_u *AuditLogUpdate) ClearModelResponse() *AuditLogUpdate {
	_u.mutation.ClearModelResponse()
	return _u
}

// Mutation returns the AuditLogMutation object of the builder.
func (_u *AuditLogUpdate) Mutation() *AuditLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuditLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuditLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditLogUpdate) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := auditlog.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AuditLog.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EntityKind(); ok {
		if err := auditlog.EntityKindValidator(v); err != nil {
			return &ValidationError{Name: "entity_kind", err: fmt.Errorf(`ent: validator failed for field "AuditLog.entity_kind": %w`, err)}
		}
	}
	return nil
}

func (_u *AuditLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditlog.Table, auditlog.Columns, sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Actor(); ok {
		_spec.SetField(auditlog.FieldActor, field.TypeString, value)
	}
	if _u.mutation.ActorCleared() {
		_spec.ClearField(auditlog.FieldActor, field.TypeString)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(auditlog.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntityKind(); ok {
		_spec.SetField(auditlog.FieldEntityKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntityID(); ok {
		_spec.SetField(auditlog.FieldEntityID, field.TypeString, value)
	}
	if _u.mutation.EntityIDCleared() {
		_spec.ClearField(auditlog.FieldEntityID, field.TypeString)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(auditlog.FieldDetails, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDetails(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditlog.FieldDetails, value)
		})
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(auditlog.FieldDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.PromptText(); ok {
		_spec.SetField(auditlog.FieldPromptText, field.TypeString, value)
	}
	if _u.mutation.PromptTextCleared() {
		_spec.ClearField(auditlog.FieldPromptText, field.TypeString)
	}
	if value, ok := _u.mutation.ModelResponse(); ok {
		_spec.SetField(auditlog.FieldModelResponse, field.TypeString, value)
	}
	if _u.mutation.ModelResponseCleared() {
		_spec.ClearField(auditlog.FieldModelResponse, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuditLogUpdateOne is the builder for updating a single AuditLog entity.
type AuditLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditLogMutation
}

// SetActor sets the "actor" field.
func (_u *AuditLogUpdateOne) SetActor(v string) *AuditLogUpdateOne {
	_u.mutation.SetActor(v)
	return _u
}

// SetNillableActor sets the "actor" field if the given value is not nil.
func (_u *AuditLogUpdateOne) SetNillableActor(v *string) *AuditLogUpdateOne {
	if v != nil {
		_u.SetActor(*v)
	}
	return _u
}

// ClearActor clears the value of the "actor" field.
func (_u *AuditLogUpdateOne) ClearActor() *AuditLogUpdateOne {
	_u.mutation.ClearActor()
	return _u
}

// SetAction sets the "action" field.
func (_u *AuditLogUpdateOne) SetAction(v string) *AuditLogUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *AuditLogUpdateOne) SetNillableAction(v *string) *AuditLogUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetEntityKind sets the "entity_kind" field.
func (_u *AuditLogUpdateOne) SetEntityKind(v string) *AuditLogUpdateOne {
	_u.mutation.SetEntityKind(v)
	return _u
}

// SetNillableEntityKind sets the "entity_kind" field if the given value is not nil.
func (_u *AuditLogUpdateOne) SetNillableEntityKind(v *string) *AuditLogUpdateOne {
	if v != nil {
		_u.SetEntityKind(*v)
	}
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *AuditLogUpdateOne) SetEntityID(v string) *AuditLogUpdateOne {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *AuditLogUpdateOne) SetNillableEntityID(v *string) *AuditLogUpdateOne {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// ClearEntityID clears the value of the "entity_id" field.
func (_u *AuditLogUpdateOne) ClearEntityID() *AuditLogUpdateOne {
	_u.mutation.ClearEntityID()
	return _u
}

// SetDetails sets the "details" field.
func (_u *AuditLogUpdateOne) SetDetails(v json.RawMessage) *AuditLogUpdateOne {
	_u.mutation.SetDetails(v)
	return _u
}

// AppendDetails appends value to the "details" field.
func (_u *AuditLogUpdateOne) AppendDetails(v json.RawMessage) *AuditLogUpdateOne {
	_u.mutation.AppendDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *AuditLogUpdateOne) ClearDetails() *AuditLogUpdateOne {
	_u.mutation.ClearDetails()
	return _u
}

// SetPromptText sets the "prompt_text" field.
func (_u *AuditLogUpdateOne) SetPromptText(v string) *AuditLogUpdateOne {
	_u.mutation.SetPromptText(v)
	return _u
}

// SetNillablePromptText sets the "prompt_text" field if the given value is not nil.
func (_u *AuditLogUpdateOne) SetNillablePromptText(v *string) *AuditLogUpdateOne {
	if v != nil {
		_u.SetPromptText(*v)
	}
	return _u
}

// ClearPromptText clears the value of the "prompt_text" field.
func (_u *AuditLogUpdateOne) ClearPromptText() *AuditLogUpdateOne {
	_u.mutation.ClearPromptText()
	return _u
}

// SetModelResponse sets the "model_response" field.
func (_u *AuditLogUpdateOne) SetModelResponse(v string) *AuditLogUpdateOne {
	_u.mutation.SetModelResponse(v)
	return _u
}

// SetNillableModelResponse sets the "model_response" field if the given value is not nil.
func (_u *AuditLogUpdateOne) SetNillableModelResponse(v *string) *AuditLogUpdateOne {
	if v != nil {
		_u.SetModelResponse(*v)
	}
	return _u
}

// ClearModelResponse clears the value of the "model_response" field.
func (_u *AuditLogUpdateOne) ClearModelResponse() *AuditLogUpdateOne {
	_u.mutation.ClearModelResponse()
	return _u
}

// Mutation returns the AuditLogMutation object of the builder.
func (_u *AuditLogUpdateOne) Mutation() *AuditLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the AuditLogUpdate builder.
func (_u *AuditLogUpdateOne) Where(ps ...predicate.AuditLog) *AuditLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuditLogUpdateOne) Select(field string, fields ...string) *AuditLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AuditLog entity.
func (_u *AuditLogUpdateOne) Save(ctx context.Context) (*AuditLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditLogUpdateOne) SaveX(ctx context.Context) *AuditLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuditLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditLogUpdateOne) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := auditlog.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AuditLog.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EntityKind(); ok {
		if err := auditlog.EntityKindValidator(v); err != nil {
			return &ValidationError{Name: "entity_kind", err: fmt.Errorf(`ent: validator failed for field "AuditLog.entity_kind": %w`, err)}
		}
	}
	return nil
}

func (_u *AuditLogUpdateOne) sqlSave(ctx context.Context) (_node *AuditLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditlog.Table, auditlog.Columns, sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuditLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, auditlog.FieldID)
		for _, f := range fields {
			if !auditlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != auditlog.FieldID {
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
	if value, ok := _u.mutation.Actor(); ok {
		_spec.SetField(auditlog.FieldActor, field.TypeString, value)
	}
	if _u.mutation.ActorCleared() {
		_spec.ClearField(auditlog.FieldActor, field.TypeString)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(auditlog.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntityKind(); ok {
		_spec.SetField(auditlog.FieldEntityKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntityID(); ok {
		_spec.SetField(auditlog.FieldEntityID, field.TypeString, value)
	}
	if _u.mutation.EntityIDCleared() {
		_spec.ClearField(auditlog.FieldEntityID, field.TypeString)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(auditlog.FieldDetails, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDetails(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditlog.FieldDetails, value)
		})
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(auditlog.FieldDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.PromptText(); ok {
		_spec.SetField(auditlog.FieldPromptText, field.TypeString, value)
	}
	if _u.mutation.PromptTextCleared() {
		_spec.ClearField(auditlog.FieldPromptText, field.TypeString)
	}
	if value, ok := _u.mutation.ModelResponse(); ok {
		_spec.SetField(auditlog.FieldModelResponse, field.TypeString, value)
	}
	if _u.mutation.ModelResponseCleared() {
		_spec.ClearField(auditlog.FieldModelResponse, field.TypeString)
	}
	_node = &AuditLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

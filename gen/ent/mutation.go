// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docufield/docufield/gen/ent/auditlog"
	"github.com/docufield/docufield/gen/ent/document"
	"github.com/docufield/docufield/gen/ent/documentpage"
	"github.com/docufield/docufield/gen/ent/extractionresult"
	"github.com/docufield/docufield/gen/ent/fielddefinition"
	"github.com/docufield/docufield/gen/ent/predicate"
	"github.com/docufield/docufield/gen/ent/prompttemplate"
	"github.com/docufield/docufield/gen/ent/systemlog"
	"github.com/docufield/docufield/gen/ent/verificationrecord"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAuditLog           = "AuditLog"
	TypeDocument           = "Document"
	TypeDocumentPage       = "DocumentPage"
	TypeExtractionResult   = "ExtractionResult"
	TypeFieldDefinition    = "FieldDefinition"
	TypePromptTemplate     = "PromptTemplate"
	TypeSystemLog          = "SystemLog"
	TypeVerificationRecord = "VerificationRecord"
)

// AuditLogMutation represents an operation that mutates the AuditLog nodes in the graph.
type AuditLogMutation struct {
	config
	op             Op
	typ            string
	id             *int
	actor          *string
	action         *string
	entity_kind    *string
	entity_id      *string
	details        *json.RawMessage
	appenddetails  json.RawMessage
	prompt_text    *string
	model_response *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*AuditLog, error)
	predicates     []predicate.AuditLog
}

var _ ent.Mutation = (*AuditLogMutation)(nil)

// auditlogOption allows management of the mutation configuration using functional options.
type auditlogOption func(*AuditLogMutation)

// newAuditLogMutation creates new mutation for the AuditLog entity.
func newAuditLogMutation(c config, op Op, opts ...auditlogOption) *AuditLogMutation {
	m := &AuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditLogID sets the ID field of the mutation.
func withAuditLogID(id int) auditlogOption {
	return func(m *AuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditLog
		)
		m.oldValue = func(ctx context.Context) (*AuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditLog sets the old AuditLog of the mutation.
func withAuditLog(node *AuditLog) auditlogOption {
	return func(m *AuditLogMutation) {
		m.oldValue = func(context.Context) (*AuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetActor sets the "actor" field.
func (m *AuditLogMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *AuditLogMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ClearActor clears the value of the "actor" field.
func (m *AuditLogMutation) ClearActor() {
	m.actor = nil
	m.clearedFields[auditlog.FieldActor] = struct{}{}
}

// ActorCleared returns if the "actor" field was cleared in this mutation.
func (m *AuditLogMutation) ActorCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldActor]
	return ok
}

// ResetActor resets all changes to the "actor" field.
func (m *AuditLogMutation) ResetActor() {
	m.actor = nil
	delete(m.clearedFields, auditlog.FieldActor)
}

// SetAction sets the "action" field.
func (m *AuditLogMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditLogMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AuditLogMutation) ResetAction() {
	m.action = nil
}

// SetEntityKind sets the "entity_kind" field.
func (m *AuditLogMutation) SetEntityKind(s string) {
	m.entity_kind = &s
}

// EntityKind returns the value of the "entity_kind" field in the mutation.
func (m *AuditLogMutation) EntityKind() (r string, exists bool) {
	v := m.entity_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityKind returns the old "entity_kind" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldEntityKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityKind: %w", err)
	}
	return oldValue.EntityKind, nil
}

// ResetEntityKind resets all changes to the "entity_kind" field.
func (m *AuditLogMutation) ResetEntityKind() {
	m.entity_kind = nil
}

// SetEntityID sets the "entity_id" field.
func (m *AuditLogMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *AuditLogMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ClearEntityID clears the value of the "entity_id" field.
func (m *AuditLogMutation) ClearEntityID() {
	m.entity_id = nil
	m.clearedFields[auditlog.FieldEntityID] = struct{}{}
}

// EntityIDCleared returns if the "entity_id" field was cleared in this mutation.
func (m *AuditLogMutation) EntityIDCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldEntityID]
	return ok
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *AuditLogMutation) ResetEntityID() {
	m.entity_id = nil
	delete(m.clearedFields, auditlog.FieldEntityID)
}

// SetDetails sets the "details" field.
func (m *AuditLogMutation) SetDetails(jm json.RawMessage) {
	m.details = &jm
	m.appenddetails = nil
}

// Details returns the value of the "details" field in the mutation.
func (m *AuditLogMutation) Details() (r json.RawMessage, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldDetails(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// AppendDetails adds jm to the "details" field.
func (m *AuditLogMutation) AppendDetails(jm json.RawMessage) {
	m.appenddetails = append(m.appenddetails, jm...)
}

// AppendedDetails returns the list of values that were appended to the "details" field in this mutation.
func (m *AuditLogMutation) AppendedDetails() (json.RawMessage, bool) {
	if len(m.appenddetails) == 0 {
		return nil, false
	}
	return m.appenddetails, true
}

// ClearDetails clears the value of the "details" field.
func (m *AuditLogMutation) ClearDetails() {
	m.details = nil
	m.appenddetails = nil
	m.clearedFields[auditlog.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *AuditLogMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *AuditLogMutation) ResetDetails() {
	m.details = nil
	m.appenddetails = nil
	delete(m.clearedFields, auditlog.FieldDetails)
}

// SetPromptText sets the "prompt_text" field.
func (m *AuditLogMutation) SetPromptText(s string) {
	m.prompt_text = &s
}

// PromptText returns the value of the "prompt_text" field in the mutation.
func (m *AuditLogMutation) PromptText() (r string, exists bool) {
	v := m.prompt_text
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptText returns the old "prompt_text" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldPromptText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptText: %w", err)
	}
	return oldValue.PromptText, nil
}

// ClearPromptText clears the value of the "prompt_text" field.
func (m *AuditLogMutation) ClearPromptText() {
	m.prompt_text = nil
	m.clearedFields[auditlog.FieldPromptText] = struct{}{}
}

// PromptTextCleared returns if the "prompt_text" field was cleared in this mutation.
func (m *AuditLogMutation) PromptTextCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldPromptText]
	return ok
}

// ResetPromptText resets all changes to the "prompt_text" field.
func (m *AuditLogMutation) ResetPromptText() {
	m.prompt_text = nil
	delete(m.clearedFields, auditlog.FieldPromptText)
}

// SetModelResponse sets the "model_response" field.
func (m *AuditLogMutation) SetModelResponse(s string) {
	m.model_response = &s
}

// ModelResponse returns the value of the "model_response" field in the mutation.
func (m *AuditLogMutation) ModelResponse() (r string, exists bool) {
	v := m.model_response
	if v == nil {
		return
	}
	return *v, true
}

// OldModelResponse returns the old "model_response" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldModelResponse(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelResponse: %w", err)
	}
	return oldValue.ModelResponse, nil
}

// ClearModelResponse clears the value of the "model_response" field.
func (m *AuditLogMutation) ClearModelResponse() {
	m.model_response = nil
	m.clearedFields[auditlog.FieldModelResponse] = struct{}{}
}

// ModelResponseCleared returns if the "model_response" field was cleared in this mutation.
func (m *AuditLogMutation) ModelResponseCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldModelResponse]
	return ok
}

// ResetModelResponse resets all changes to the "model_response" field.
func (m *AuditLogMutation) ResetModelResponse() {
	m.model_response = nil
	delete(m.clearedFields, auditlog.FieldModelResponse)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AuditLogMutation builder.
func (m *AuditLogMutation) Where(ps ...predicate.AuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditLog).
func (m *AuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditLogMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.actor != nil {
		fields = append(fields, auditlog.FieldActor)
	}
	if m.action != nil {
		fields = append(fields, auditlog.FieldAction)
	}
	if m.entity_kind != nil {
		fields = append(fields, auditlog.FieldEntityKind)
	}
	if m.entity_id != nil {
		fields = append(fields, auditlog.FieldEntityID)
	}
	if m.details != nil {
		fields = append(fields, auditlog.FieldDetails)
	}
	if m.prompt_text != nil {
		fields = append(fields, auditlog.FieldPromptText)
	}
	if m.model_response != nil {
		fields = append(fields, auditlog.FieldModelResponse)
	}
	if m.created_at != nil {
		fields = append(fields, auditlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditlog.FieldActor:
		return m.Actor()
	case auditlog.FieldAction:
		return m.Action()
	case auditlog.FieldEntityKind:
		return m.EntityKind()
	case auditlog.FieldEntityID:
		return m.EntityID()
	case auditlog.FieldDetails:
		return m.Details()
	case auditlog.FieldPromptText:
		return m.PromptText()
	case auditlog.FieldModelResponse:
		return m.ModelResponse()
	case auditlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditlog.FieldActor:
		return m.OldActor(ctx)
	case auditlog.FieldAction:
		return m.OldAction(ctx)
	case auditlog.FieldEntityKind:
		return m.OldEntityKind(ctx)
	case auditlog.FieldEntityID:
		return m.OldEntityID(ctx)
	case auditlog.FieldDetails:
		return m.OldDetails(ctx)
	case auditlog.FieldPromptText:
		return m.OldPromptText(ctx)
	case auditlog.FieldModelResponse:
		return m.OldModelResponse(ctx)
	case auditlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditlog.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case auditlog.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditlog.FieldEntityKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityKind(v)
		return nil
	case auditlog.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case auditlog.FieldDetails:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case auditlog.FieldPromptText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptText(v)
		return nil
	case auditlog.FieldModelResponse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelResponse(v)
		return nil
	case auditlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditlog.FieldActor) {
		fields = append(fields, auditlog.FieldActor)
	}
	if m.FieldCleared(auditlog.FieldEntityID) {
		fields = append(fields, auditlog.FieldEntityID)
	}
	if m.FieldCleared(auditlog.FieldDetails) {
		fields = append(fields, auditlog.FieldDetails)
	}
	if m.FieldCleared(auditlog.FieldPromptText) {
		fields = append(fields, auditlog.FieldPromptText)
	}
	if m.FieldCleared(auditlog.FieldModelResponse) {
		fields = append(fields, auditlog.FieldModelResponse)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditLogMutation) ClearField(name string) error {
	switch name {
	case auditlog.FieldActor:
		m.ClearActor()
		return nil
	case auditlog.FieldEntityID:
		m.ClearEntityID()
		return nil
	case auditlog.FieldDetails:
		m.ClearDetails()
		return nil
	case auditlog.FieldPromptText:
		m.ClearPromptText()
		return nil
	case auditlog.FieldModelResponse:
		m.ClearModelResponse()
		return nil
	}
	return fmt.Errorf("unknown AuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditLogMutation) ResetField(name string) error {
	switch name {
	case auditlog.FieldActor:
		m.ResetActor()
		return nil
	case auditlog.FieldAction:
		m.ResetAction()
		return nil
	case auditlog.FieldEntityKind:
		m.ResetEntityKind()
		return nil
	case auditlog.FieldEntityID:
		m.ResetEntityID()
		return nil
	case auditlog.FieldDetails:
		m.ResetDetails()
		return nil
	case auditlog.FieldPromptText:
		m.ResetPromptText()
		return nil
	case auditlog.FieldModelResponse:
		m.ResetModelResponse()
		return nil
	case auditlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditLog edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	filename       *string
	source_type    *string
	status         *string
	storage_path   *string
	content_hash   *[]byte
	uploaded_by    *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	pages          map[int]struct{}
	removedpages   map[int]struct{}
	clearedpages   bool
	results        map[uuid.UUID]struct{}
	removedresults map[uuid.UUID]struct{}
	clearedresults bool
	done           bool
	oldValue       func(context.Context) (*Document, error)
	predicates     []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFilename sets the "filename" field.
func (m *DocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *DocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetSourceType sets the "source_type" field.
func (m *DocumentMutation) SetSourceType(s string) {
	m.source_type = &s
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *DocumentMutation) SourceType() (r string, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *DocumentMutation) ResetSourceType() {
	m.source_type = nil
}

// SetStatus sets the "status" field.
func (m *DocumentMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *DocumentMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DocumentMutation) ResetStatus() {
	m.status = nil
}

// SetStoragePath sets the "storage_path" field.
func (m *DocumentMutation) SetStoragePath(s string) {
	m.storage_path = &s
}

// StoragePath returns the value of the "storage_path" field in the mutation.
func (m *DocumentMutation) StoragePath() (r string, exists bool) {
	v := m.storage_path
	if v == nil {
		return
	}
	return *v, true
}

// OldStoragePath returns the old "storage_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStoragePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoragePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoragePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoragePath: %w", err)
	}
	return oldValue.StoragePath, nil
}

// ResetStoragePath resets all changes to the "storage_path" field.
func (m *DocumentMutation) ResetStoragePath() {
	m.storage_path = nil
}

// SetContentHash sets the "content_hash" field.
func (m *DocumentMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *DocumentMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ClearContentHash clears the value of the "content_hash" field.
func (m *DocumentMutation) ClearContentHash() {
	m.content_hash = nil
	m.clearedFields[document.FieldContentHash] = struct{}{}
}

// ContentHashCleared returns if the "content_hash" field was cleared in this mutation.
func (m *DocumentMutation) ContentHashCleared() bool {
	_, ok := m.clearedFields[document.FieldContentHash]
	return ok
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *DocumentMutation) ResetContentHash() {
	m.content_hash = nil
	delete(m.clearedFields, document.FieldContentHash)
}

// SetUploadedBy sets the "uploaded_by" field.
func (m *DocumentMutation) SetUploadedBy(s string) {
	m.uploaded_by = &s
}

// UploadedBy returns the value of the "uploaded_by" field in the mutation.
func (m *DocumentMutation) UploadedBy() (r string, exists bool) {
	v := m.uploaded_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedBy returns the old "uploaded_by" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUploadedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedBy: %w", err)
	}
	return oldValue.UploadedBy, nil
}

// ClearUploadedBy clears the value of the "uploaded_by" field.
func (m *DocumentMutation) ClearUploadedBy() {
	m.uploaded_by = nil
	m.clearedFields[document.FieldUploadedBy] = struct{}{}
}

// UploadedByCleared returns if the "uploaded_by" field was cleared in this mutation.
func (m *DocumentMutation) UploadedByCleared() bool {
	_, ok := m.clearedFields[document.FieldUploadedBy]
	return ok
}

// ResetUploadedBy resets all changes to the "uploaded_by" field.
func (m *DocumentMutation) ResetUploadedBy() {
	m.uploaded_by = nil
	delete(m.clearedFields, document.FieldUploadedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddPageIDs adds the "pages" edge to the DocumentPage entity by ids.
func (m *DocumentMutation) AddPageIDs(ids ...int) {
	if m.pages == nil {
		m.pages = make(map[int]struct{})
	}
	for i := range ids {
		m.pages[ids[i]] = struct{}{}
	}
}

// ClearPages clears the "pages" edge to the DocumentPage entity.
func (m *DocumentMutation) ClearPages() {
	m.clearedpages = true
}

// PagesCleared reports if the "pages" edge to the DocumentPage entity was cleared.
func (m *DocumentMutation) PagesCleared() bool {
	return m.clearedpages
}

// RemovePageIDs removes the "pages" edge to the DocumentPage entity by IDs.
func (m *DocumentMutation) RemovePageIDs(ids ...int) {
	if m.removedpages == nil {
		m.removedpages = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.pages, ids[i])
		m.removedpages[ids[i]] = struct{}{}
	}
}

// RemovedPages returns the removed IDs of the "pages" edge to the DocumentPage entity.
func (m *DocumentMutation) RemovedPagesIDs() (ids []int) {
	for id := range m.removedpages {
		ids = append(ids, id)
	}
	return
}

// PagesIDs returns the "pages" edge IDs in the mutation.
func (m *DocumentMutation) PagesIDs() (ids []int) {
	for id := range m.pages {
		ids = append(ids, id)
	}
	return
}

// ResetPages resets all changes to the "pages" edge.
func (m *DocumentMutation) ResetPages() {
	m.pages = nil
	m.clearedpages = false
	m.removedpages = nil
}

// AddResultIDs adds the "results" edge to the ExtractionResult entity by ids.
func (m *DocumentMutation) AddResultIDs(ids ...uuid.UUID) {
	if m.results == nil {
		m.results = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.results[ids[i]] = struct{}{}
	}
}

// ClearResults clears the "results" edge to the ExtractionResult entity.
func (m *DocumentMutation) ClearResults() {
	m.clearedresults = true
}

// ResultsCleared reports if the "results" edge to the ExtractionResult entity was cleared.
func (m *DocumentMutation) ResultsCleared() bool {
	return m.clearedresults
}

// RemoveResultIDs removes the "results" edge to the ExtractionResult entity by IDs.
func (m *DocumentMutation) RemoveResultIDs(ids ...uuid.UUID) {
	if m.removedresults == nil {
		m.removedresults = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.results, ids[i])
		m.removedresults[ids[i]] = struct{}{}
	}
}

// RemovedResults returns the removed IDs of the "results" edge to the ExtractionResult entity.
func (m *DocumentMutation) RemovedResultsIDs() (ids []uuid.UUID) {
	for id := range m.removedresults {
		ids = append(ids, id)
	}
	return
}

// ResultsIDs returns the "results" edge IDs in the mutation.
func (m *DocumentMutation) ResultsIDs() (ids []uuid.UUID) {
	for id := range m.results {
		ids = append(ids, id)
	}
	return
}

// ResetResults resets all changes to the "results" edge.
func (m *DocumentMutation) ResetResults() {
	m.results = nil
	m.clearedresults = false
	m.removedresults = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.filename != nil {
		fields = append(fields, document.FieldFilename)
	}
	if m.source_type != nil {
		fields = append(fields, document.FieldSourceType)
	}
	if m.status != nil {
		fields = append(fields, document.FieldStatus)
	}
	if m.storage_path != nil {
		fields = append(fields, document.FieldStoragePath)
	}
	if m.content_hash != nil {
		fields = append(fields, document.FieldContentHash)
	}
	if m.uploaded_by != nil {
		fields = append(fields, document.FieldUploadedBy)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldFilename:
		return m.Filename()
	case document.FieldSourceType:
		return m.SourceType()
	case document.FieldStatus:
		return m.Status()
	case document.FieldStoragePath:
		return m.StoragePath()
	case document.FieldContentHash:
		return m.ContentHash()
	case document.FieldUploadedBy:
		return m.UploadedBy()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldFilename:
		return m.OldFilename(ctx)
	case document.FieldSourceType:
		return m.OldSourceType(ctx)
	case document.FieldStatus:
		return m.OldStatus(ctx)
	case document.FieldStoragePath:
		return m.OldStoragePath(ctx)
	case document.FieldContentHash:
		return m.OldContentHash(ctx)
	case document.FieldUploadedBy:
		return m.OldUploadedBy(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case document.FieldSourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case document.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case document.FieldStoragePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoragePath(v)
		return nil
	case document.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case document.FieldUploadedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedBy(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldContentHash) {
		fields = append(fields, document.FieldContentHash)
	}
	if m.FieldCleared(document.FieldUploadedBy) {
		fields = append(fields, document.FieldUploadedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldContentHash:
		m.ClearContentHash()
		return nil
	case document.FieldUploadedBy:
		m.ClearUploadedBy()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldFilename:
		m.ResetFilename()
		return nil
	case document.FieldSourceType:
		m.ResetSourceType()
		return nil
	case document.FieldStatus:
		m.ResetStatus()
		return nil
	case document.FieldStoragePath:
		m.ResetStoragePath()
		return nil
	case document.FieldContentHash:
		m.ResetContentHash()
		return nil
	case document.FieldUploadedBy:
		m.ResetUploadedBy()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.pages != nil {
		edges = append(edges, document.EdgePages)
	}
	if m.results != nil {
		edges = append(edges, document.EdgeResults)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgePages:
		ids := make([]ent.Value, 0, len(m.pages))
		for id := range m.pages {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeResults:
		ids := make([]ent.Value, 0, len(m.results))
		for id := range m.results {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedpages != nil {
		edges = append(edges, document.EdgePages)
	}
	if m.removedresults != nil {
		edges = append(edges, document.EdgeResults)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgePages:
		ids := make([]ent.Value, 0, len(m.removedpages))
		for id := range m.removedpages {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeResults:
		ids := make([]ent.Value, 0, len(m.removedresults))
		for id := range m.removedresults {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedpages {
		edges = append(edges, document.EdgePages)
	}
	if m.clearedresults {
		edges = append(edges, document.EdgeResults)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgePages:
		return m.clearedpages
	case document.EdgeResults:
		return m.clearedresults
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgePages:
		m.ResetPages()
		return nil
	case document.EdgeResults:
		m.ResetResults()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// DocumentPageMutation represents an operation that mutates the DocumentPage nodes in the graph.
type DocumentPageMutation struct {
	config
	op              Op
	typ             string
	id              *int
	page_num        *int
	addpage_num     *int
	text            *string
	image_path      *string
	layout          *json.RawMessage
	appendlayout    json.RawMessage
	clearedFields   map[string]struct{}
	document        *uuid.UUID
	cleareddocument bool
	done            bool
	oldValue        func(context.Context) (*DocumentPage, error)
	predicates      []predicate.DocumentPage
}

var _ ent.Mutation = (*DocumentPageMutation)(nil)

// documentpageOption allows management of the mutation configuration using functional options.
type documentpageOption func(*DocumentPageMutation)

// newDocumentPageMutation creates new mutation for the DocumentPage entity.
func newDocumentPageMutation(c config, op Op, opts ...documentpageOption) *DocumentPageMutation {
	m := &DocumentPageMutation{
		config:        c,
		op:            op,
		typ:           TypeDocumentPage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentPageID sets the ID field of the mutation.
func withDocumentPageID(id int) documentpageOption {
	return func(m *DocumentPageMutation) {
		var (
			err   error
			once  sync.Once
			value *DocumentPage
		)
		m.oldValue = func(ctx context.Context) (*DocumentPage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DocumentPage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocumentPage sets the old DocumentPage of the mutation.
func withDocumentPage(node *DocumentPage) documentpageOption {
	return func(m *DocumentPageMutation) {
		m.oldValue = func(context.Context) (*DocumentPage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentPageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentPageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentPageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentPageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DocumentPage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *DocumentPageMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *DocumentPageMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the DocumentPage entity.
// If the DocumentPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentPageMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *DocumentPageMutation) ResetDocumentID() {
	m.document = nil
}

// SetPageNum sets the "page_num" field.
func (m *DocumentPageMutation) SetPageNum(i int) {
	m.page_num = &i
	m.addpage_num = nil
}

// PageNum returns the value of the "page_num" field in the mutation.
func (m *DocumentPageMutation) PageNum() (r int, exists bool) {
	v := m.page_num
	if v == nil {
		return
	}
	return *v, true
}

// OldPageNum returns the old "page_num" field's value of the DocumentPage entity.
// If the DocumentPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentPageMutation) OldPageNum(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageNum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageNum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageNum: %w", err)
	}
	return oldValue.PageNum, nil
}

// AddPageNum adds i to the "page_num" field.
func (m *DocumentPageMutation) AddPageNum(i int) {
	if m.addpage_num != nil {
		*m.addpage_num += i
	} else {
		m.addpage_num = &i
	}
}

// AddedPageNum returns the value that was added to the "page_num" field in this mutation.
func (m *DocumentPageMutation) AddedPageNum() (r int, exists bool) {
	v := m.addpage_num
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageNum resets all changes to the "page_num" field.
func (m *DocumentPageMutation) ResetPageNum() {
	m.page_num = nil
	m.addpage_num = nil
}

// SetText sets the "text" field.
func (m *DocumentPageMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *DocumentPageMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the DocumentPage entity.
// If the DocumentPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentPageMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *DocumentPageMutation) ResetText() {
	m.text = nil
}

// SetImagePath sets the "image_path" field.
func (m *DocumentPageMutation) SetImagePath(s string) {
	m.image_path = &s
}

// ImagePath returns the value of the "image_path" field in the mutation.
func (m *DocumentPageMutation) ImagePath() (r string, exists bool) {
	v := m.image_path
	if v == nil {
		return
	}
	return *v, true
}

// OldImagePath returns the old "image_path" field's value of the DocumentPage entity.
// If the DocumentPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentPageMutation) OldImagePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImagePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImagePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImagePath: %w", err)
	}
	return oldValue.ImagePath, nil
}

// ClearImagePath clears the value of the "image_path" field.
func (m *DocumentPageMutation) ClearImagePath() {
	m.image_path = nil
	m.clearedFields[documentpage.FieldImagePath] = struct{}{}
}

// ImagePathCleared returns if the "image_path" field was cleared in this mutation.
func (m *DocumentPageMutation) ImagePathCleared() bool {
	_, ok := m.clearedFields[documentpage.FieldImagePath]
	return ok
}

// ResetImagePath resets all changes to the "image_path" field.
func (m *DocumentPageMutation) ResetImagePath() {
	m.image_path = nil
	delete(m.clearedFields, documentpage.FieldImagePath)
}

// SetLayout sets the "layout" field.
func (m *DocumentPageMutation) SetLayout(jm json.RawMessage) {
	m.layout = &jm
	m.appendlayout = nil
}

// Layout returns the value of the "layout" field in the mutation.
func (m *DocumentPageMutation) Layout() (r json.RawMessage, exists bool) {
	v := m.layout
	if v == nil {
		return
	}
	return *v, true
}

// OldLayout returns the old "layout" field's value of the DocumentPage entity.
// If the DocumentPage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentPageMutation) OldLayout(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLayout is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLayout requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLayout: %w", err)
	}
	return oldValue.Layout, nil
}

// AppendLayout adds jm to the "layout" field.
func (m *DocumentPageMutation) AppendLayout(jm json.RawMessage) {
	m.appendlayout = append(m.appendlayout, jm...)
}

// AppendedLayout returns the list of values that were appended to the "layout" field in this mutation.
func (m *DocumentPageMutation) AppendedLayout() (json.RawMessage, bool) {
	if len(m.appendlayout) == 0 {
		return nil, false
	}
	return m.appendlayout, true
}

// ClearLayout clears the value of the "layout" field.
func (m *DocumentPageMutation) ClearLayout() {
	m.layout = nil
	m.appendlayout = nil
	m.clearedFields[documentpage.FieldLayout] = struct{}{}
}

// LayoutCleared returns if the "layout" field was cleared in this mutation.
func (m *DocumentPageMutation) LayoutCleared() bool {
	_, ok := m.clearedFields[documentpage.FieldLayout]
	return ok
}

// ResetLayout resets all changes to the "layout" field.
func (m *DocumentPageMutation) ResetLayout() {
	m.layout = nil
	m.appendlayout = nil
	delete(m.clearedFields, documentpage.FieldLayout)
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *DocumentPageMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[documentpage.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *DocumentPageMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *DocumentPageMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *DocumentPageMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the DocumentPageMutation builder.
func (m *DocumentPageMutation) Where(ps ...predicate.DocumentPage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentPageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentPageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DocumentPage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentPageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentPageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DocumentPage).
func (m *DocumentPageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentPageMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.document != nil {
		fields = append(fields, documentpage.FieldDocumentID)
	}
	if m.page_num != nil {
		fields = append(fields, documentpage.FieldPageNum)
	}
	if m.text != nil {
		fields = append(fields, documentpage.FieldText)
	}
	if m.image_path != nil {
		fields = append(fields, documentpage.FieldImagePath)
	}
	if m.layout != nil {
		fields = append(fields, documentpage.FieldLayout)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentPageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case documentpage.FieldDocumentID:
		return m.DocumentID()
	case documentpage.FieldPageNum:
		return m.PageNum()
	case documentpage.FieldText:
		return m.Text()
	case documentpage.FieldImagePath:
		return m.ImagePath()
	case documentpage.FieldLayout:
		return m.Layout()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentPageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case documentpage.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case documentpage.FieldPageNum:
		return m.OldPageNum(ctx)
	case documentpage.FieldText:
		return m.OldText(ctx)
	case documentpage.FieldImagePath:
		return m.OldImagePath(ctx)
	case documentpage.FieldLayout:
		return m.OldLayout(ctx)
	}
	return nil, fmt.Errorf("unknown DocumentPage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentPageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case documentpage.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case documentpage.FieldPageNum:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageNum(v)
		return nil
	case documentpage.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case documentpage.FieldImagePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImagePath(v)
		return nil
	case documentpage.FieldLayout:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLayout(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentPage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentPageMutation) AddedFields() []string {
	var fields []string
	if m.addpage_num != nil {
		fields = append(fields, documentpage.FieldPageNum)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentPageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case documentpage.FieldPageNum:
		return m.AddedPageNum()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentPageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case documentpage.FieldPageNum:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageNum(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentPage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentPageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(documentpage.FieldImagePath) {
		fields = append(fields, documentpage.FieldImagePath)
	}
	if m.FieldCleared(documentpage.FieldLayout) {
		fields = append(fields, documentpage.FieldLayout)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentPageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentPageMutation) ClearField(name string) error {
	switch name {
	case documentpage.FieldImagePath:
		m.ClearImagePath()
		return nil
	case documentpage.FieldLayout:
		m.ClearLayout()
		return nil
	}
	return fmt.Errorf("unknown DocumentPage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentPageMutation) ResetField(name string) error {
	switch name {
	case documentpage.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case documentpage.FieldPageNum:
		m.ResetPageNum()
		return nil
	case documentpage.FieldText:
		m.ResetText()
		return nil
	case documentpage.FieldImagePath:
		m.ResetImagePath()
		return nil
	case documentpage.FieldLayout:
		m.ResetLayout()
		return nil
	}
	return fmt.Errorf("unknown DocumentPage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentPageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, documentpage.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentPageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case documentpage.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentPageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentPageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentPageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, documentpage.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentPageMutation) EdgeCleared(name string) bool {
	switch name {
	case documentpage.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentPageMutation) ClearEdge(name string) error {
	switch name {
	case documentpage.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown DocumentPage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentPageMutation) ResetEdge(name string) error {
	switch name {
	case documentpage.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown DocumentPage edge %s", name)
}

// ExtractionResultMutation represents an operation that mutates the ExtractionResult nodes in the graph.
type ExtractionResultMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	value_raw            *string
	normalized_value     *string
	confidence           *float64
	addconfidence        *float64
	page_num             *int
	addpage_num          *int
	bbox                 *json.RawMessage
	appendbbox           json.RawMessage
	model_name           *string
	model_version        *string
	prompt_version       *int
	addprompt_version    *int
	verified             *bool
	created_at           *time.Time
	clearedFields        map[string]struct{}
	document             *uuid.UUID
	cleareddocument      bool
	field_def            *int
	clearedfield_def     bool
	verifications        map[uuid.UUID]struct{}
	removedverifications map[uuid.UUID]struct{}
	clearedverifications bool
	done                 bool
	oldValue             func(context.Context) (*ExtractionResult, error)
	predicates           []predicate.ExtractionResult
}

var _ ent.Mutation = (*ExtractionResultMutation)(nil)

// extractionresultOption allows management of the mutation configuration using functional options.
type extractionresultOption func(*ExtractionResultMutation)

// newExtractionResultMutation creates new mutation for the ExtractionResult entity.
func newExtractionResultMutation(c config, op Op, opts ...extractionresultOption) *ExtractionResultMutation {
	m := &ExtractionResultMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionResultID sets the ID field of the mutation.
func withExtractionResultID(id uuid.UUID) extractionresultOption {
	return func(m *ExtractionResultMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionResult
		)
		m.oldValue = func(ctx context.Context) (*ExtractionResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionResult sets the old ExtractionResult of the mutation.
func withExtractionResult(node *ExtractionResult) extractionresultOption {
	return func(m *ExtractionResultMutation) {
		m.oldValue = func(context.Context) (*ExtractionResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractionResult entities.
func (m *ExtractionResultMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionResultMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionResultMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ExtractionResultMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ExtractionResultMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ExtractionResultMutation) ResetDocumentID() {
	m.document = nil
}

// SetFieldDefID sets the "field_def_id" field.
func (m *ExtractionResultMutation) SetFieldDefID(i int) {
	m.field_def = &i
}

// FieldDefID returns the value of the "field_def_id" field in the mutation.
func (m *ExtractionResultMutation) FieldDefID() (r int, exists bool) {
	v := m.field_def
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldDefID returns the old "field_def_id" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldFieldDefID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldDefID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldDefID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldDefID: %w", err)
	}
	return oldValue.FieldDefID, nil
}

// ResetFieldDefID resets all changes to the "field_def_id" field.
func (m *ExtractionResultMutation) ResetFieldDefID() {
	m.field_def = nil
}

// SetValueRaw sets the "value_raw" field.
func (m *ExtractionResultMutation) SetValueRaw(s string) {
	m.value_raw = &s
}

// ValueRaw returns the value of the "value_raw" field in the mutation.
func (m *ExtractionResultMutation) ValueRaw() (r string, exists bool) {
	v := m.value_raw
	if v == nil {
		return
	}
	return *v, true
}

// OldValueRaw returns the old "value_raw" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldValueRaw(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValueRaw is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValueRaw requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValueRaw: %w", err)
	}
	return oldValue.ValueRaw, nil
}

// ResetValueRaw resets all changes to the "value_raw" field.
func (m *ExtractionResultMutation) ResetValueRaw() {
	m.value_raw = nil
}

// SetNormalizedValue sets the "normalized_value" field.
func (m *ExtractionResultMutation) SetNormalizedValue(s string) {
	m.normalized_value = &s
}

// NormalizedValue returns the value of the "normalized_value" field in the mutation.
func (m *ExtractionResultMutation) NormalizedValue() (r string, exists bool) {
	v := m.normalized_value
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedValue returns the old "normalized_value" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldNormalizedValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedValue: %w", err)
	}
	return oldValue.NormalizedValue, nil
}

// ClearNormalizedValue clears the value of the "normalized_value" field.
func (m *ExtractionResultMutation) ClearNormalizedValue() {
	m.normalized_value = nil
	m.clearedFields[extractionresult.FieldNormalizedValue] = struct{}{}
}

// NormalizedValueCleared returns if the "normalized_value" field was cleared in this mutation.
func (m *ExtractionResultMutation) NormalizedValueCleared() bool {
	_, ok := m.clearedFields[extractionresult.FieldNormalizedValue]
	return ok
}

// ResetNormalizedValue resets all changes to the "normalized_value" field.
func (m *ExtractionResultMutation) ResetNormalizedValue() {
	m.normalized_value = nil
	delete(m.clearedFields, extractionresult.FieldNormalizedValue)
}

// SetConfidence sets the "confidence" field.
func (m *ExtractionResultMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ExtractionResultMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ExtractionResultMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ExtractionResultMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ExtractionResultMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetPageNum sets the "page_num" field.
func (m *ExtractionResultMutation) SetPageNum(i int) {
	m.page_num = &i
	m.addpage_num = nil
}

// PageNum returns the value of the "page_num" field in the mutation.
func (m *ExtractionResultMutation) PageNum() (r int, exists bool) {
	v := m.page_num
	if v == nil {
		return
	}
	return *v, true
}

// OldPageNum returns the old "page_num" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldPageNum(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageNum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageNum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageNum: %w", err)
	}
	return oldValue.PageNum, nil
}

// AddPageNum adds i to the "page_num" field.
func (m *ExtractionResultMutation) AddPageNum(i int) {
	if m.addpage_num != nil {
		*m.addpage_num += i
	} else {
		m.addpage_num = &i
	}
}

// AddedPageNum returns the value that was added to the "page_num" field in this mutation.
func (m *ExtractionResultMutation) AddedPageNum() (r int, exists bool) {
	v := m.addpage_num
	if v == nil {
		return
	}
	return *v, true
}

// ClearPageNum clears the value of the "page_num" field.
func (m *ExtractionResultMutation) ClearPageNum() {
	m.page_num = nil
	m.addpage_num = nil
	m.clearedFields[extractionresult.FieldPageNum] = struct{}{}
}

// PageNumCleared returns if the "page_num" field was cleared in this mutation.
func (m *ExtractionResultMutation) PageNumCleared() bool {
	_, ok := m.clearedFields[extractionresult.FieldPageNum]
	return ok
}

// ResetPageNum resets all changes to the "page_num" field.
func (m *ExtractionResultMutation) ResetPageNum() {
	m.page_num = nil
	m.addpage_num = nil
	delete(m.clearedFields, extractionresult.FieldPageNum)
}

// SetBbox sets the "bbox" field.
func (m *ExtractionResultMutation) SetBbox(jm json.RawMessage) {
	m.bbox = &jm
	m.appendbbox = nil
}

// Bbox returns the value of the "bbox" field in the mutation.
func (m *ExtractionResultMutation) Bbox() (r json.RawMessage, exists bool) {
	v := m.bbox
	if v == nil {
		return
	}
	return *v, true
}

// OldBbox returns the old "bbox" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldBbox(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBbox is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBbox requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBbox: %w", err)
	}
	return oldValue.Bbox, nil
}

// AppendBbox adds jm to the "bbox" field.
func (m *ExtractionResultMutation) AppendBbox(jm json.RawMessage) {
	m.appendbbox = append(m.appendbbox, jm...)
}

// AppendedBbox returns the list of values that were appended to the "bbox" field in this mutation.
func (m *ExtractionResultMutation) AppendedBbox() (json.RawMessage, bool) {
	if len(m.appendbbox) == 0 {
		return nil, false
	}
	return m.appendbbox, true
}

// ClearBbox clears the value of the "bbox" field.
func (m *ExtractionResultMutation) ClearBbox() {
	m.bbox = nil
	m.appendbbox = nil
	m.clearedFields[extractionresult.FieldBbox] = struct{}{}
}

// BboxCleared returns if the "bbox" field was cleared in this mutation.
func (m *ExtractionResultMutation) BboxCleared() bool {
	_, ok := m.clearedFields[extractionresult.FieldBbox]
	return ok
}

// ResetBbox resets all changes to the "bbox" field.
func (m *ExtractionResultMutation) ResetBbox() {
	m.bbox = nil
	m.appendbbox = nil
	delete(m.clearedFields, extractionresult.FieldBbox)
}

// SetModelName sets the "model_name" field.
func (m *ExtractionResultMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *ExtractionResultMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldModelName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ResetModelName resets all changes to the "model_name" field.
func (m *ExtractionResultMutation) ResetModelName() {
	m.model_name = nil
}

// SetModelVersion sets the "model_version" field.
func (m *ExtractionResultMutation) SetModelVersion(s string) {
	m.model_version = &s
}

// ModelVersion returns the value of the "model_version" field in the mutation.
func (m *ExtractionResultMutation) ModelVersion() (r string, exists bool) {
	v := m.model_version
	if v == nil {
		return
	}
	return *v, true
}

// OldModelVersion returns the old "model_version" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldModelVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelVersion: %w", err)
	}
	return oldValue.ModelVersion, nil
}

// ResetModelVersion resets all changes to the "model_version" field.
func (m *ExtractionResultMutation) ResetModelVersion() {
	m.model_version = nil
}

// SetPromptVersion sets the "prompt_version" field.
func (m *ExtractionResultMutation) SetPromptVersion(i int) {
	m.prompt_version = &i
	m.addprompt_version = nil
}

// PromptVersion returns the value of the "prompt_version" field in the mutation.
func (m *ExtractionResultMutation) PromptVersion() (r int, exists bool) {
	v := m.prompt_version
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptVersion returns the old "prompt_version" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldPromptVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptVersion: %w", err)
	}
	return oldValue.PromptVersion, nil
}

// AddPromptVersion adds i to the "prompt_version" field.
func (m *ExtractionResultMutation) AddPromptVersion(i int) {
	if m.addprompt_version != nil {
		*m.addprompt_version += i
	} else {
		m.addprompt_version = &i
	}
}

// AddedPromptVersion returns the value that was added to the "prompt_version" field in this mutation.
func (m *ExtractionResultMutation) AddedPromptVersion() (r int, exists bool) {
	v := m.addprompt_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetPromptVersion resets all changes to the "prompt_version" field.
func (m *ExtractionResultMutation) ResetPromptVersion() {
	m.prompt_version = nil
	m.addprompt_version = nil
}

// SetVerified sets the "verified" field.
func (m *ExtractionResultMutation) SetVerified(b bool) {
	m.verified = &b
}

// Verified returns the value of the "verified" field in the mutation.
func (m *ExtractionResultMutation) Verified() (r bool, exists bool) {
	v := m.verified
	if v == nil {
		return
	}
	return *v, true
}

// OldVerified returns the old "verified" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerified: %w", err)
	}
	return oldValue.Verified, nil
}

// ResetVerified resets all changes to the "verified" field.
func (m *ExtractionResultMutation) ResetVerified() {
	m.verified = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractionResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractionResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractionResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *ExtractionResultMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[extractionresult.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *ExtractionResultMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *ExtractionResultMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *ExtractionResultMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// ClearFieldDef clears the "field_def" edge to the FieldDefinition entity.
func (m *ExtractionResultMutation) ClearFieldDef() {
	m.clearedfield_def = true
	m.clearedFields[extractionresult.FieldFieldDefID] = struct{}{}
}

// FieldDefCleared reports if the "field_def" edge to the FieldDefinition entity was cleared.
func (m *ExtractionResultMutation) FieldDefCleared() bool {
	return m.clearedfield_def
}

// FieldDefIDs returns the "field_def" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FieldDefID instead. It exists only for internal usage by the builders.
func (m *ExtractionResultMutation) FieldDefIDs() (ids []int) {
	if id := m.field_def; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFieldDef resets all changes to the "field_def" edge.
func (m *ExtractionResultMutation) ResetFieldDef() {
	m.field_def = nil
	m.clearedfield_def = false
}

// AddVerificationIDs adds the "verifications" edge to the VerificationRecord entity by ids.
func (m *ExtractionResultMutation) AddVerificationIDs(ids ...uuid.UUID) {
	if m.verifications == nil {
		m.verifications = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.verifications[ids[i]] = struct{}{}
	}
}

// ClearVerifications clears the "verifications" edge to the VerificationRecord entity.
func (m *ExtractionResultMutation) ClearVerifications() {
	m.clearedverifications = true
}

// VerificationsCleared reports if the "verifications" edge to the VerificationRecord entity was cleared.
func (m *ExtractionResultMutation) VerificationsCleared() bool {
	return m.clearedverifications
}

// RemoveVerificationIDs removes the "verifications" edge to the VerificationRecord entity by IDs.
func (m *ExtractionResultMutation) RemoveVerificationIDs(ids ...uuid.UUID) {
	if m.removedverifications == nil {
		m.removedverifications = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.verifications, ids[i])
		m.removedverifications[ids[i]] = struct{}{}
	}
}

// RemovedVerifications returns the removed IDs of the "verifications" edge to the VerificationRecord entity.
func (m *ExtractionResultMutation) RemovedVerificationsIDs() (ids []uuid.UUID) {
	for id := range m.removedverifications {
		ids = append(ids, id)
	}
	return
}

// VerificationsIDs returns the "verifications" edge IDs in the mutation.
func (m *ExtractionResultMutation) VerificationsIDs() (ids []uuid.UUID) {
	for id := range m.verifications {
		ids = append(ids, id)
	}
	return
}

// ResetVerifications resets all changes to the "verifications" edge.
func (m *ExtractionResultMutation) ResetVerifications() {
	m.verifications = nil
	m.clearedverifications = false
	m.removedverifications = nil
}

// Where appends a list predicates to the ExtractionResultMutation builder.
func (m *ExtractionResultMutation) Where(ps ...predicate.ExtractionResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionResult).
func (m *ExtractionResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionResultMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.document != nil {
		fields = append(fields, extractionresult.FieldDocumentID)
	}
	if m.field_def != nil {
		fields = append(fields, extractionresult.FieldFieldDefID)
	}
	if m.value_raw != nil {
		fields = append(fields, extractionresult.FieldValueRaw)
	}
	if m.normalized_value != nil {
		fields = append(fields, extractionresult.FieldNormalizedValue)
	}
	if m.confidence != nil {
		fields = append(fields, extractionresult.FieldConfidence)
	}
	if m.page_num != nil {
		fields = append(fields, extractionresult.FieldPageNum)
	}
	if m.bbox != nil {
		fields = append(fields, extractionresult.FieldBbox)
	}
	if m.model_name != nil {
		fields = append(fields, extractionresult.FieldModelName)
	}
	if m.model_version != nil {
		fields = append(fields, extractionresult.FieldModelVersion)
	}
	if m.prompt_version != nil {
		fields = append(fields, extractionresult.FieldPromptVersion)
	}
	if m.verified != nil {
		fields = append(fields, extractionresult.FieldVerified)
	}
	if m.created_at != nil {
		fields = append(fields, extractionresult.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractionresult.FieldDocumentID:
		return m.DocumentID()
	case extractionresult.FieldFieldDefID:
		return m.FieldDefID()
	case extractionresult.FieldValueRaw:
		return m.ValueRaw()
	case extractionresult.FieldNormalizedValue:
		return m.NormalizedValue()
	case extractionresult.FieldConfidence:
		return m.Confidence()
	case extractionresult.FieldPageNum:
		return m.PageNum()
	case extractionresult.FieldBbox:
		return m.Bbox()
	case extractionresult.FieldModelName:
		return m.ModelName()
	case extractionresult.FieldModelVersion:
		return m.ModelVersion()
	case extractionresult.FieldPromptVersion:
		return m.PromptVersion()
	case extractionresult.FieldVerified:
		return m.Verified()
	case extractionresult.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractionresult.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case extractionresult.FieldFieldDefID:
		return m.OldFieldDefID(ctx)
	case extractionresult.FieldValueRaw:
		return m.OldValueRaw(ctx)
	case extractionresult.FieldNormalizedValue:
		return m.OldNormalizedValue(ctx)
	case extractionresult.FieldConfidence:
		return m.OldConfidence(ctx)
	case extractionresult.FieldPageNum:
		return m.OldPageNum(ctx)
	case extractionresult.FieldBbox:
		return m.OldBbox(ctx)
	case extractionresult.FieldModelName:
		return m.OldModelName(ctx)
	case extractionresult.FieldModelVersion:
		return m.OldModelVersion(ctx)
	case extractionresult.FieldPromptVersion:
		return m.OldPromptVersion(ctx)
	case extractionresult.FieldVerified:
		return m.OldVerified(ctx)
	case extractionresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractionresult.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case extractionresult.FieldFieldDefID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldDefID(v)
		return nil
	case extractionresult.FieldValueRaw:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValueRaw(v)
		return nil
	case extractionresult.FieldNormalizedValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedValue(v)
		return nil
	case extractionresult.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case extractionresult.FieldPageNum:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageNum(v)
		return nil
	case extractionresult.FieldBbox:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBbox(v)
		return nil
	case extractionresult.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case extractionresult.FieldModelVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelVersion(v)
		return nil
	case extractionresult.FieldPromptVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptVersion(v)
		return nil
	case extractionresult.FieldVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerified(v)
		return nil
	case extractionresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionResultMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, extractionresult.FieldConfidence)
	}
	if m.addpage_num != nil {
		fields = append(fields, extractionresult.FieldPageNum)
	}
	if m.addprompt_version != nil {
		fields = append(fields, extractionresult.FieldPromptVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractionresult.FieldConfidence:
		return m.AddedConfidence()
	case extractionresult.FieldPageNum:
		return m.AddedPageNum()
	case extractionresult.FieldPromptVersion:
		return m.AddedPromptVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractionresult.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case extractionresult.FieldPageNum:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageNum(v)
		return nil
	case extractionresult.FieldPromptVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPromptVersion(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractionresult.FieldNormalizedValue) {
		fields = append(fields, extractionresult.FieldNormalizedValue)
	}
	if m.FieldCleared(extractionresult.FieldPageNum) {
		fields = append(fields, extractionresult.FieldPageNum)
	}
	if m.FieldCleared(extractionresult.FieldBbox) {
		fields = append(fields, extractionresult.FieldBbox)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionResultMutation) ClearField(name string) error {
	switch name {
	case extractionresult.FieldNormalizedValue:
		m.ClearNormalizedValue()
		return nil
	case extractionresult.FieldPageNum:
		m.ClearPageNum()
		return nil
	case extractionresult.FieldBbox:
		m.ClearBbox()
		return nil
	}
	return fmt.Errorf("unknown ExtractionResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionResultMutation) ResetField(name string) error {
	switch name {
	case extractionresult.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case extractionresult.FieldFieldDefID:
		m.ResetFieldDefID()
		return nil
	case extractionresult.FieldValueRaw:
		m.ResetValueRaw()
		return nil
	case extractionresult.FieldNormalizedValue:
		m.ResetNormalizedValue()
		return nil
	case extractionresult.FieldConfidence:
		m.ResetConfidence()
		return nil
	case extractionresult.FieldPageNum:
		m.ResetPageNum()
		return nil
	case extractionresult.FieldBbox:
		m.ResetBbox()
		return nil
	case extractionresult.FieldModelName:
		m.ResetModelName()
		return nil
	case extractionresult.FieldModelVersion:
		m.ResetModelVersion()
		return nil
	case extractionresult.FieldPromptVersion:
		m.ResetPromptVersion()
		return nil
	case extractionresult.FieldVerified:
		m.ResetVerified()
		return nil
	case extractionresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.document != nil {
		edges = append(edges, extractionresult.EdgeDocument)
	}
	if m.field_def != nil {
		edges = append(edges, extractionresult.EdgeFieldDef)
	}
	if m.verifications != nil {
		edges = append(edges, extractionresult.EdgeVerifications)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractionresult.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	case extractionresult.EdgeFieldDef:
		if id := m.field_def; id != nil {
			return []ent.Value{*id}
		}
	case extractionresult.EdgeVerifications:
		ids := make([]ent.Value, 0, len(m.verifications))
		for id := range m.verifications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedverifications != nil {
		edges = append(edges, extractionresult.EdgeVerifications)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionResultMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case extractionresult.EdgeVerifications:
		ids := make([]ent.Value, 0, len(m.removedverifications))
		for id := range m.removedverifications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.cleareddocument {
		edges = append(edges, extractionresult.EdgeDocument)
	}
	if m.clearedfield_def {
		edges = append(edges, extractionresult.EdgeFieldDef)
	}
	if m.clearedverifications {
		edges = append(edges, extractionresult.EdgeVerifications)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionResultMutation) EdgeCleared(name string) bool {
	switch name {
	case extractionresult.EdgeDocument:
		return m.cleareddocument
	case extractionresult.EdgeFieldDef:
		return m.clearedfield_def
	case extractionresult.EdgeVerifications:
		return m.clearedverifications
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionResultMutation) ClearEdge(name string) error {
	switch name {
	case extractionresult.EdgeDocument:
		m.ClearDocument()
		return nil
	case extractionresult.EdgeFieldDef:
		m.ClearFieldDef()
		return nil
	}
	return fmt.Errorf("unknown ExtractionResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionResultMutation) ResetEdge(name string) error {
	switch name {
	case extractionresult.EdgeDocument:
		m.ResetDocument()
		return nil
	case extractionresult.EdgeFieldDef:
		m.ResetFieldDef()
		return nil
	case extractionresult.EdgeVerifications:
		m.ResetVerifications()
		return nil
	}
	return fmt.Errorf("unknown ExtractionResult edge %s", name)
}

// FieldDefinitionMutation represents an operation that mutates the FieldDefinition nodes in the graph.
type FieldDefinitionMutation struct {
	config
	op                Op
	typ               string
	id                *int
	key               *string
	label             *string
	data_type         *string
	enum_values       *[]string
	appendenum_values []string
	required          *bool
	ui_order          *int
	addui_order       *int
	custom_prompt     *string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	results           map[uuid.UUID]struct{}
	removedresults    map[uuid.UUID]struct{}
	clearedresults    bool
	done              bool
	oldValue          func(context.Context) (*FieldDefinition, error)
	predicates        []predicate.FieldDefinition
}

var _ ent.Mutation = (*FieldDefinitionMutation)(nil)

// fielddefinitionOption allows management of the mutation configuration using functional options.
type fielddefinitionOption func(*FieldDefinitionMutation)

// newFieldDefinitionMutation creates new mutation for the FieldDefinition entity.
func newFieldDefinitionMutation(c config, op Op, opts ...fielddefinitionOption) *FieldDefinitionMutation {
	m := &FieldDefinitionMutation{
		config:        c,
		op:            op,
		typ:           TypeFieldDefinition,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFieldDefinitionID sets the ID field of the mutation.
func withFieldDefinitionID(id int) fielddefinitionOption {
	return func(m *FieldDefinitionMutation) {
		var (
			err   error
			once  sync.Once
			value *FieldDefinition
		)
		m.oldValue = func(ctx context.Context) (*FieldDefinition, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FieldDefinition.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFieldDefinition sets the old FieldDefinition of the mutation.
func withFieldDefinition(node *FieldDefinition) fielddefinitionOption {
	return func(m *FieldDefinitionMutation) {
		m.oldValue = func(context.Context) (*FieldDefinition, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FieldDefinitionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FieldDefinitionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FieldDefinitionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FieldDefinitionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FieldDefinition.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKey sets the "key" field.
func (m *FieldDefinitionMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *FieldDefinitionMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the FieldDefinition entity.
// If the FieldDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldDefinitionMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *FieldDefinitionMutation) ResetKey() {
	m.key = nil
}

// SetLabel sets the "label" field.
func (m *FieldDefinitionMutation) SetLabel(s string) {
	m.label = &s
}

// Label returns the value of the "label" field in the mutation.
func (m *FieldDefinitionMutation) Label() (r string, exists bool) {
	v := m.label
	if v == nil {
		return
	}
	return *v, true
}

// OldLabel returns the old "label" field's value of the FieldDefinition entity.
// If the FieldDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldDefinitionMutation) OldLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabel: %w", err)
	}
	return oldValue.Label, nil
}

// ResetLabel resets all changes to the "label" field.
func (m *FieldDefinitionMutation) ResetLabel() {
	m.label = nil
}

// SetDataType sets the "data_type" field.
func (m *FieldDefinitionMutation) SetDataType(s string) {
	m.data_type = &s
}

// DataType returns the value of the "data_type" field in the mutation.
func (m *FieldDefinitionMutation) DataType() (r string, exists bool) {
	v := m.data_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDataType returns the old "data_type" field's value of the FieldDefinition entity.
// If the FieldDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldDefinitionMutation) OldDataType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataType: %w", err)
	}
	return oldValue.DataType, nil
}

// ResetDataType resets all changes to the "data_type" field.
func (m *FieldDefinitionMutation) ResetDataType() {
	m.data_type = nil
}

// SetEnumValues sets the "enum_values" field.
func (m *FieldDefinitionMutation) SetEnumValues(s []string) {
	m.enum_values = &s
	m.appendenum_values = nil
}

// EnumValues returns the value of the "enum_values" field in the mutation.
func (m *FieldDefinitionMutation) EnumValues() (r []string, exists bool) {
	v := m.enum_values
	if v == nil {
		return
	}
	return *v, true
}

// OldEnumValues returns the old "enum_values" field's value of the FieldDefinition entity.
// If the FieldDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldDefinitionMutation) OldEnumValues(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnumValues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnumValues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnumValues: %w", err)
	}
	return oldValue.EnumValues, nil
}

// AppendEnumValues adds s to the "enum_values" field.
func (m *FieldDefinitionMutation) AppendEnumValues(s []string) {
	m.appendenum_values = append(m.appendenum_values, s...)
}

// AppendedEnumValues returns the list of values that were appended to the "enum_values" field in this mutation.
func (m *FieldDefinitionMutation) AppendedEnumValues() ([]string, bool) {
	if len(m.appendenum_values) == 0 {
		return nil, false
	}
	return m.appendenum_values, true
}

// ClearEnumValues clears the value of the "enum_values" field.
func (m *FieldDefinitionMutation) ClearEnumValues() {
	m.enum_values = nil
	m.appendenum_values = nil
	m.clearedFields[fielddefinition.FieldEnumValues] = struct{}{}
}

// EnumValuesCleared returns if the "enum_values" field was cleared in this mutation.
func (m *FieldDefinitionMutation) EnumValuesCleared() bool {
	_, ok := m.clearedFields[fielddefinition.FieldEnumValues]
	return ok
}

// ResetEnumValues resets all changes to the "enum_values" field.
func (m *FieldDefinitionMutation) ResetEnumValues() {
	m.enum_values = nil
	m.appendenum_values = nil
	delete(m.clearedFields, fielddefinition.FieldEnumValues)
}

// SetRequired sets the "required" field.
func (m *FieldDefinitionMutation) SetRequired(b bool) {
	m.required = &b
}

// Required returns the value of the "required" field in the mutation.
func (m *FieldDefinitionMutation) Required() (r bool, exists bool) {
	v := m.required
	if v == nil {
		return
	}
	return *v, true
}

// OldRequired returns the old "required" field's value of the FieldDefinition entity.
// If the FieldDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldDefinitionMutation) OldRequired(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequired is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequired requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequired: %w", err)
	}
	return oldValue.Required, nil
}

// ResetRequired resets all changes to the "required" field.
func (m *FieldDefinitionMutation) ResetRequired() {
	m.required = nil
}

// SetUIOrder sets the "ui_order" field.
func (m *FieldDefinitionMutation) SetUIOrder(i int) {
	m.ui_order = &i
	m.addui_order = nil
}

// UIOrder returns the value of the "ui_order" field in the mutation.
func (m *FieldDefinitionMutation) UIOrder() (r int, exists bool) {
	v := m.ui_order
	if v == nil {
		return
	}
	return *v, true
}

// OldUIOrder returns the old "ui_order" field's value of the FieldDefinition entity.
// If the FieldDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldDefinitionMutation) OldUIOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUIOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUIOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUIOrder: %w", err)
	}
	return oldValue.UIOrder, nil
}

// AddUIOrder adds i to the "ui_order" field.
func (m *FieldDefinitionMutation) AddUIOrder(i int) {
	if m.addui_order != nil {
		*m.addui_order += i
	} else {
		m.addui_order = &i
	}
}

// AddedUIOrder returns the value that was added to the "ui_order" field in this mutation.
func (m *FieldDefinitionMutation) AddedUIOrder() (r int, exists bool) {
	v := m.addui_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetUIOrder resets all changes to the "ui_order" field.
func (m *FieldDefinitionMutation) ResetUIOrder() {
	m.ui_order = nil
	m.addui_order = nil
}

// SetCustomPrompt sets the "custom_prompt" field.
func (m *FieldDefinitionMutation) SetCustomPrompt(s string) {
	m.custom_prompt = &s
}

// CustomPrompt returns the value of the "custom_prompt" field in the mutation.
func (m *FieldDefinitionMutation) CustomPrompt() (r string, exists bool) {
	v := m.custom_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomPrompt returns the old "custom_prompt" field's value of the FieldDefinition entity.
// If the FieldDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldDefinitionMutation) OldCustomPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomPrompt: %w", err)
	}
	return oldValue.CustomPrompt, nil
}

// ClearCustomPrompt clears the value of the "custom_prompt" field.
func (m *FieldDefinitionMutation) ClearCustomPrompt() {
	m.custom_prompt = nil
	m.clearedFields[fielddefinition.FieldCustomPrompt] = struct{}{}
}

// CustomPromptCleared returns if the "custom_prompt" field was cleared in this mutation.
func (m *FieldDefinitionMutation) CustomPromptCleared() bool {
	_, ok := m.clearedFields[fielddefinition.FieldCustomPrompt]
	return ok
}

// ResetCustomPrompt resets all changes to the "custom_prompt" field.
func (m *FieldDefinitionMutation) ResetCustomPrompt() {
	m.custom_prompt = nil
	delete(m.clearedFields, fielddefinition.FieldCustomPrompt)
}

// SetCreatedAt sets the "created_at" field.
func (m *FieldDefinitionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FieldDefinitionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FieldDefinition entity.
// If the FieldDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldDefinitionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FieldDefinitionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FieldDefinitionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FieldDefinitionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the FieldDefinition entity.
// If the FieldDefinition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FieldDefinitionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FieldDefinitionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddResultIDs adds the "results" edge to the ExtractionResult entity by ids.
func (m *FieldDefinitionMutation) AddResultIDs(ids ...uuid.UUID) {
	if m.results == nil {
		m.results = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.results[ids[i]] = struct{}{}
	}
}

// ClearResults clears the "results" edge to the ExtractionResult entity.
func (m *FieldDefinitionMutation) ClearResults() {
	m.clearedresults = true
}

// ResultsCleared reports if the "results" edge to the ExtractionResult entity was cleared.
func (m *FieldDefinitionMutation) ResultsCleared() bool {
	return m.clearedresults
}

// RemoveResultIDs removes the "results" edge to the ExtractionResult entity by IDs.
func (m *FieldDefinitionMutation) RemoveResultIDs(ids ...uuid.UUID) {
	if m.removedresults == nil {
		m.removedresults = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.results, ids[i])
		m.removedresults[ids[i]] = struct{}{}
	}
}

// RemovedResults returns the removed IDs of the "results" edge to the ExtractionResult entity.
func (m *FieldDefinitionMutation) RemovedResultsIDs() (ids []uuid.UUID) {
	for id := range m.removedresults {
		ids = append(ids, id)
	}
	return
}

// ResultsIDs returns the "results" edge IDs in the mutation.
func (m *FieldDefinitionMutation) ResultsIDs() (ids []uuid.UUID) {
	for id := range m.results {
		ids = append(ids, id)
	}
	return
}

// ResetResults resets all changes to the "results" edge.
func (m *FieldDefinitionMutation) ResetResults() {
	m.results = nil
	m.clearedresults = false
	m.removedresults = nil
}

// Where appends a list predicates to the FieldDefinitionMutation builder.
func (m *FieldDefinitionMutation) Where(ps ...predicate.FieldDefinition) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FieldDefinitionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FieldDefinitionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FieldDefinition, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FieldDefinitionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FieldDefinitionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FieldDefinition).
func (m *FieldDefinitionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FieldDefinitionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.key != nil {
		fields = append(fields, fielddefinition.FieldKey)
	}
	if m.label != nil {
		fields = append(fields, fielddefinition.FieldLabel)
	}
	if m.data_type != nil {
		fields = append(fields, fielddefinition.FieldDataType)
	}
	if m.enum_values != nil {
		fields = append(fields, fielddefinition.FieldEnumValues)
	}
	if m.required != nil {
		fields = append(fields, fielddefinition.FieldRequired)
	}
	if m.ui_order != nil {
		fields = append(fields, fielddefinition.FieldUIOrder)
	}
	if m.custom_prompt != nil {
		fields = append(fields, fielddefinition.FieldCustomPrompt)
	}
	if m.created_at != nil {
		fields = append(fields, fielddefinition.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, fielddefinition.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FieldDefinitionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case fielddefinition.FieldKey:
		return m.Key()
	case fielddefinition.FieldLabel:
		return m.Label()
	case fielddefinition.FieldDataType:
		return m.DataType()
	case fielddefinition.FieldEnumValues:
		return m.EnumValues()
	case fielddefinition.FieldRequired:
		return m.Required()
	case fielddefinition.FieldUIOrder:
		return m.UIOrder()
	case fielddefinition.FieldCustomPrompt:
		return m.CustomPrompt()
	case fielddefinition.FieldCreatedAt:
		return m.CreatedAt()
	case fielddefinition.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FieldDefinitionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case fielddefinition.FieldKey:
		return m.OldKey(ctx)
	case fielddefinition.FieldLabel:
		return m.OldLabel(ctx)
	case fielddefinition.FieldDataType:
		return m.OldDataType(ctx)
	case fielddefinition.FieldEnumValues:
		return m.OldEnumValues(ctx)
	case fielddefinition.FieldRequired:
		return m.OldRequired(ctx)
	case fielddefinition.FieldUIOrder:
		return m.OldUIOrder(ctx)
	case fielddefinition.FieldCustomPrompt:
		return m.OldCustomPrompt(ctx)
	case fielddefinition.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case fielddefinition.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FieldDefinition field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FieldDefinitionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case fielddefinition.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case fielddefinition.FieldLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabel(v)
		return nil
	case fielddefinition.FieldDataType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataType(v)
		return nil
	case fielddefinition.FieldEnumValues:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnumValues(v)
		return nil
	case fielddefinition.FieldRequired:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequired(v)
		return nil
	case fielddefinition.FieldUIOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUIOrder(v)
		return nil
	case fielddefinition.FieldCustomPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomPrompt(v)
		return nil
	case fielddefinition.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case fielddefinition.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FieldDefinition field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FieldDefinitionMutation) AddedFields() []string {
	var fields []string
	if m.addui_order != nil {
		fields = append(fields, fielddefinition.FieldUIOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FieldDefinitionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case fielddefinition.FieldUIOrder:
		return m.AddedUIOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FieldDefinitionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case fielddefinition.FieldUIOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUIOrder(v)
		return nil
	}
	return fmt.Errorf("unknown FieldDefinition numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FieldDefinitionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(fielddefinition.FieldEnumValues) {
		fields = append(fields, fielddefinition.FieldEnumValues)
	}
	if m.FieldCleared(fielddefinition.FieldCustomPrompt) {
		fields = append(fields, fielddefinition.FieldCustomPrompt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FieldDefinitionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FieldDefinitionMutation) ClearField(name string) error {
	switch name {
	case fielddefinition.FieldEnumValues:
		m.ClearEnumValues()
		return nil
	case fielddefinition.FieldCustomPrompt:
		m.ClearCustomPrompt()
		return nil
	}
	return fmt.Errorf("unknown FieldDefinition nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FieldDefinitionMutation) ResetField(name string) error {
	switch name {
	case fielddefinition.FieldKey:
		m.ResetKey()
		return nil
	case fielddefinition.FieldLabel:
		m.ResetLabel()
		return nil
	case fielddefinition.FieldDataType:
		m.ResetDataType()
		return nil
	case fielddefinition.FieldEnumValues:
		m.ResetEnumValues()
		return nil
	case fielddefinition.FieldRequired:
		m.ResetRequired()
		return nil
	case fielddefinition.FieldUIOrder:
		m.ResetUIOrder()
		return nil
	case fielddefinition.FieldCustomPrompt:
		m.ResetCustomPrompt()
		return nil
	case fielddefinition.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case fielddefinition.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown FieldDefinition field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FieldDefinitionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.results != nil {
		edges = append(edges, fielddefinition.EdgeResults)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FieldDefinitionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case fielddefinition.EdgeResults:
		ids := make([]ent.Value, 0, len(m.results))
		for id := range m.results {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FieldDefinitionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedresults != nil {
		edges = append(edges, fielddefinition.EdgeResults)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FieldDefinitionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case fielddefinition.EdgeResults:
		ids := make([]ent.Value, 0, len(m.removedresults))
		for id := range m.removedresults {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FieldDefinitionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedresults {
		edges = append(edges, fielddefinition.EdgeResults)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FieldDefinitionMutation) EdgeCleared(name string) bool {
	switch name {
	case fielddefinition.EdgeResults:
		return m.clearedresults
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FieldDefinitionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown FieldDefinition unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FieldDefinitionMutation) ResetEdge(name string) error {
	switch name {
	case fielddefinition.EdgeResults:
		m.ResetResults()
		return nil
	}
	return fmt.Errorf("unknown FieldDefinition edge %s", name)
}

// PromptTemplateMutation represents an operation that mutates the PromptTemplate nodes in the graph.
type PromptTemplateMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	version       *int
	addversion    *int
	system_prompt *string
	field_prompts *map[string]string
	model_name    *string
	is_active     *bool
	created_by    *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*PromptTemplate, error)
	predicates    []predicate.PromptTemplate
}

var _ ent.Mutation = (*PromptTemplateMutation)(nil)

// prompttemplateOption allows management of the mutation configuration using functional options.
type prompttemplateOption func(*PromptTemplateMutation)

// newPromptTemplateMutation creates new mutation for the PromptTemplate entity.
func newPromptTemplateMutation(c config, op Op, opts ...prompttemplateOption) *PromptTemplateMutation {
	m := &PromptTemplateMutation{
		config:        c,
		op:            op,
		typ:           TypePromptTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPromptTemplateID sets the ID field of the mutation.
func withPromptTemplateID(id uuid.UUID) prompttemplateOption {
	return func(m *PromptTemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *PromptTemplate
		)
		m.oldValue = func(ctx context.Context) (*PromptTemplate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PromptTemplate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPromptTemplate sets the old PromptTemplate of the mutation.
func withPromptTemplate(node *PromptTemplate) prompttemplateOption {
	return func(m *PromptTemplateMutation) {
		m.oldValue = func(context.Context) (*PromptTemplate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PromptTemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PromptTemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PromptTemplate entities.
func (m *PromptTemplateMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PromptTemplateMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PromptTemplateMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PromptTemplate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *PromptTemplateMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PromptTemplateMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PromptTemplateMutation) ResetName() {
	m.name = nil
}

// SetVersion sets the "version" field.
func (m *PromptTemplateMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *PromptTemplateMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *PromptTemplateMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *PromptTemplateMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *PromptTemplateMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetSystemPrompt sets the "system_prompt" field.
func (m *PromptTemplateMutation) SetSystemPrompt(s string) {
	m.system_prompt = &s
}

// SystemPrompt returns the value of the "system_prompt" field in the mutation.
func (m *PromptTemplateMutation) SystemPrompt() (r string, exists bool) {
	v := m.system_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldSystemPrompt returns the old "system_prompt" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldSystemPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystemPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystemPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystemPrompt: %w", err)
	}
	return oldValue.SystemPrompt, nil
}

// ResetSystemPrompt resets all changes to the "system_prompt" field.
func (m *PromptTemplateMutation) ResetSystemPrompt() {
	m.system_prompt = nil
}

// SetFieldPrompts sets the "field_prompts" field.
func (m *PromptTemplateMutation) SetFieldPrompts(value map[string]string) {
	m.field_prompts = &value
}

// FieldPrompts returns the value of the "field_prompts" field in the mutation.
func (m *PromptTemplateMutation) FieldPrompts() (r map[string]string, exists bool) {
	v := m.field_prompts
	if v == nil {
		return
	}
	return *v, true
}

// OldFieldPrompts returns the old "field_prompts" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldFieldPrompts(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFieldPrompts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFieldPrompts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFieldPrompts: %w", err)
	}
	return oldValue.FieldPrompts, nil
}

// ResetFieldPrompts resets all changes to the "field_prompts" field.
func (m *PromptTemplateMutation) ResetFieldPrompts() {
	m.field_prompts = nil
}

// SetModelName sets the "model_name" field.
func (m *PromptTemplateMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *PromptTemplateMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldModelName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ResetModelName resets all changes to the "model_name" field.
func (m *PromptTemplateMutation) ResetModelName() {
	m.model_name = nil
}

// SetIsActive sets the "is_active" field.
func (m *PromptTemplateMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *PromptTemplateMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *PromptTemplateMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *PromptTemplateMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *PromptTemplateMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *PromptTemplateMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[prompttemplate.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *PromptTemplateMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[prompttemplate.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *PromptTemplateMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, prompttemplate.FieldCreatedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *PromptTemplateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PromptTemplateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PromptTemplate entity.
// If the PromptTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptTemplateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PromptTemplateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the PromptTemplateMutation builder.
func (m *PromptTemplateMutation) Where(ps ...predicate.PromptTemplate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PromptTemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PromptTemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PromptTemplate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PromptTemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PromptTemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PromptTemplate).
func (m *PromptTemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PromptTemplateMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.name != nil {
		fields = append(fields, prompttemplate.FieldName)
	}
	if m.version != nil {
		fields = append(fields, prompttemplate.FieldVersion)
	}
	if m.system_prompt != nil {
		fields = append(fields, prompttemplate.FieldSystemPrompt)
	}
	if m.field_prompts != nil {
		fields = append(fields, prompttemplate.FieldFieldPrompts)
	}
	if m.model_name != nil {
		fields = append(fields, prompttemplate.FieldModelName)
	}
	if m.is_active != nil {
		fields = append(fields, prompttemplate.FieldIsActive)
	}
	if m.created_by != nil {
		fields = append(fields, prompttemplate.FieldCreatedBy)
	}
	if m.created_at != nil {
		fields = append(fields, prompttemplate.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PromptTemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case prompttemplate.FieldName:
		return m.Name()
	case prompttemplate.FieldVersion:
		return m.Version()
	case prompttemplate.FieldSystemPrompt:
		return m.SystemPrompt()
	case prompttemplate.FieldFieldPrompts:
		return m.FieldPrompts()
	case prompttemplate.FieldModelName:
		return m.ModelName()
	case prompttemplate.FieldIsActive:
		return m.IsActive()
	case prompttemplate.FieldCreatedBy:
		return m.CreatedBy()
	case prompttemplate.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PromptTemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case prompttemplate.FieldName:
		return m.OldName(ctx)
	case prompttemplate.FieldVersion:
		return m.OldVersion(ctx)
	case prompttemplate.FieldSystemPrompt:
		return m.OldSystemPrompt(ctx)
	case prompttemplate.FieldFieldPrompts:
		return m.OldFieldPrompts(ctx)
	case prompttemplate.FieldModelName:
		return m.OldModelName(ctx)
	case prompttemplate.FieldIsActive:
		return m.OldIsActive(ctx)
	case prompttemplate.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case prompttemplate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PromptTemplate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptTemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case prompttemplate.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case prompttemplate.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case prompttemplate.FieldSystemPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystemPrompt(v)
		return nil
	case prompttemplate.FieldFieldPrompts:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldPrompts(v)
		return nil
	case prompttemplate.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case prompttemplate.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case prompttemplate.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case prompttemplate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PromptTemplate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PromptTemplateMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, prompttemplate.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PromptTemplateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case prompttemplate.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptTemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case prompttemplate.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown PromptTemplate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PromptTemplateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(prompttemplate.FieldCreatedBy) {
		fields = append(fields, prompttemplate.FieldCreatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PromptTemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PromptTemplateMutation) ClearField(name string) error {
	switch name {
	case prompttemplate.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	}
	return fmt.Errorf("unknown PromptTemplate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PromptTemplateMutation) ResetField(name string) error {
	switch name {
	case prompttemplate.FieldName:
		m.ResetName()
		return nil
	case prompttemplate.FieldVersion:
		m.ResetVersion()
		return nil
	case prompttemplate.FieldSystemPrompt:
		m.ResetSystemPrompt()
		return nil
	case prompttemplate.FieldFieldPrompts:
		m.ResetFieldPrompts()
		return nil
	case prompttemplate.FieldModelName:
		m.ResetModelName()
		return nil
	case prompttemplate.FieldIsActive:
		m.ResetIsActive()
		return nil
	case prompttemplate.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case prompttemplate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PromptTemplate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PromptTemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PromptTemplateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PromptTemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PromptTemplateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PromptTemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PromptTemplateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PromptTemplateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PromptTemplate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PromptTemplateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PromptTemplate edge %s", name)
}

// SystemLogMutation represents an operation that mutates the SystemLog nodes in the graph.
type SystemLogMutation struct {
	config
	op            Op
	typ           string
	id            *int
	level         *string
	message       *string
	source        *string
	context       *json.RawMessage
	appendcontext json.RawMessage
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SystemLog, error)
	predicates    []predicate.SystemLog
}

var _ ent.Mutation = (*SystemLogMutation)(nil)

// systemlogOption allows management of the mutation configuration using functional options.
type systemlogOption func(*SystemLogMutation)

// newSystemLogMutation creates new mutation for the SystemLog entity.
func newSystemLogMutation(c config, op Op, opts ...systemlogOption) *SystemLogMutation {
	m := &SystemLogMutation{
		config:        c,
		op:            op,
		typ:           TypeSystemLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSystemLogID sets the ID field of the mutation.
func withSystemLogID(id int) systemlogOption {
	return func(m *SystemLogMutation) {
		var (
			err   error
			once  sync.Once
			value *SystemLog
		)
		m.oldValue = func(ctx context.Context) (*SystemLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SystemLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSystemLog sets the old SystemLog of the mutation.
func withSystemLog(node *SystemLog) systemlogOption {
	return func(m *SystemLogMutation) {
		m.oldValue = func(context.Context) (*SystemLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SystemLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SystemLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SystemLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SystemLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SystemLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLevel sets the "level" field.
func (m *SystemLogMutation) SetLevel(s string) {
	m.level = &s
}

// Level returns the value of the "level" field in the mutation.
func (m *SystemLogMutation) Level() (r string, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the SystemLog entity.
// If the SystemLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemLogMutation) OldLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *SystemLogMutation) ResetLevel() {
	m.level = nil
}

// SetMessage sets the "message" field.
func (m *SystemLogMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *SystemLogMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the SystemLog entity.
// If the SystemLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemLogMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *SystemLogMutation) ResetMessage() {
	m.message = nil
}

// SetSource sets the "source" field.
func (m *SystemLogMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *SystemLogMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the SystemLog entity.
// If the SystemLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemLogMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ClearSource clears the value of the "source" field.
func (m *SystemLogMutation) ClearSource() {
	m.source = nil
	m.clearedFields[systemlog.FieldSource] = struct{}{}
}

// SourceCleared returns if the "source" field was cleared in this mutation.
func (m *SystemLogMutation) SourceCleared() bool {
	_, ok := m.clearedFields[systemlog.FieldSource]
	return ok
}

// ResetSource resets all changes to the "source" field.
func (m *SystemLogMutation) ResetSource() {
	m.source = nil
	delete(m.clearedFields, systemlog.FieldSource)
}

// SetContext sets the "context" field.
func (m *SystemLogMutation) SetContext(jm json.RawMessage) {
	m.context = &jm
	m.appendcontext = nil
}

// Context returns the value of the "context" field in the mutation.
func (m *SystemLogMutation) Context() (r json.RawMessage, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the SystemLog entity.
// If the SystemLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemLogMutation) OldContext(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// AppendContext adds jm to the "context" field.
func (m *SystemLogMutation) AppendContext(jm json.RawMessage) {
	m.appendcontext = append(m.appendcontext, jm...)
}

// AppendedContext returns the list of values that were appended to the "context" field in this mutation.
func (m *SystemLogMutation) AppendedContext() (json.RawMessage, bool) {
	if len(m.appendcontext) == 0 {
		return nil, false
	}
	return m.appendcontext, true
}

// ClearContext clears the value of the "context" field.
func (m *SystemLogMutation) ClearContext() {
	m.context = nil
	m.appendcontext = nil
	m.clearedFields[systemlog.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *SystemLogMutation) ContextCleared() bool {
	_, ok := m.clearedFields[systemlog.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *SystemLogMutation) ResetContext() {
	m.context = nil
	m.appendcontext = nil
	delete(m.clearedFields, systemlog.FieldContext)
}

// SetCreatedAt sets the "created_at" field.
func (m *SystemLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SystemLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SystemLog entity.
// If the SystemLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SystemLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SystemLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the SystemLogMutation builder.
func (m *SystemLogMutation) Where(ps ...predicate.SystemLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SystemLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SystemLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SystemLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SystemLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SystemLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SystemLog).
func (m *SystemLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SystemLogMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.level != nil {
		fields = append(fields, systemlog.FieldLevel)
	}
	if m.message != nil {
		fields = append(fields, systemlog.FieldMessage)
	}
	if m.source != nil {
		fields = append(fields, systemlog.FieldSource)
	}
	if m.context != nil {
		fields = append(fields, systemlog.FieldContext)
	}
	if m.created_at != nil {
		fields = append(fields, systemlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SystemLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case systemlog.FieldLevel:
		return m.Level()
	case systemlog.FieldMessage:
		return m.Message()
	case systemlog.FieldSource:
		return m.Source()
	case systemlog.FieldContext:
		return m.Context()
	case systemlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SystemLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case systemlog.FieldLevel:
		return m.OldLevel(ctx)
	case systemlog.FieldMessage:
		return m.OldMessage(ctx)
	case systemlog.FieldSource:
		return m.OldSource(ctx)
	case systemlog.FieldContext:
		return m.OldContext(ctx)
	case systemlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SystemLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SystemLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case systemlog.FieldLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case systemlog.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case systemlog.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case systemlog.FieldContext:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case systemlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SystemLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SystemLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SystemLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SystemLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SystemLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SystemLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(systemlog.FieldSource) {
		fields = append(fields, systemlog.FieldSource)
	}
	if m.FieldCleared(systemlog.FieldContext) {
		fields = append(fields, systemlog.FieldContext)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SystemLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SystemLogMutation) ClearField(name string) error {
	switch name {
	case systemlog.FieldSource:
		m.ClearSource()
		return nil
	case systemlog.FieldContext:
		m.ClearContext()
		return nil
	}
	return fmt.Errorf("unknown SystemLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SystemLogMutation) ResetField(name string) error {
	switch name {
	case systemlog.FieldLevel:
		m.ResetLevel()
		return nil
	case systemlog.FieldMessage:
		m.ResetMessage()
		return nil
	case systemlog.FieldSource:
		m.ResetSource()
		return nil
	case systemlog.FieldContext:
		m.ResetContext()
		return nil
	case systemlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SystemLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SystemLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SystemLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SystemLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SystemLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SystemLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SystemLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SystemLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SystemLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SystemLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SystemLog edge %s", name)
}

// VerificationRecordMutation represents an operation that mutates the VerificationRecord nodes in the graph.
type VerificationRecordMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	verifier        *string
	action          *string
	corrected_value *string
	comment         *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	result          *uuid.UUID
	clearedresult   bool
	done            bool
	oldValue        func(context.Context) (*VerificationRecord, error)
	predicates      []predicate.VerificationRecord
}

var _ ent.Mutation = (*VerificationRecordMutation)(nil)

// verificationrecordOption allows management of the mutation configuration using functional options.
type verificationrecordOption func(*VerificationRecordMutation)

// newVerificationRecordMutation creates new mutation for the VerificationRecord entity.
func newVerificationRecordMutation(c config, op Op, opts ...verificationrecordOption) *VerificationRecordMutation {
	m := &VerificationRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeVerificationRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVerificationRecordID sets the ID field of the mutation.
func withVerificationRecordID(id uuid.UUID) verificationrecordOption {
	return func(m *VerificationRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *VerificationRecord
		)
		m.oldValue = func(ctx context.Context) (*VerificationRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VerificationRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVerificationRecord sets the old VerificationRecord of the mutation.
func withVerificationRecord(node *VerificationRecord) verificationrecordOption {
	return func(m *VerificationRecordMutation) {
		m.oldValue = func(context.Context) (*VerificationRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VerificationRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VerificationRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VerificationRecord entities.
func (m *VerificationRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VerificationRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VerificationRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VerificationRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetResultID sets the "result_id" field.
func (m *VerificationRecordMutation) SetResultID(u uuid.UUID) {
	m.result = &u
}

// ResultID returns the value of the "result_id" field in the mutation.
func (m *VerificationRecordMutation) ResultID() (r uuid.UUID, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResultID returns the old "result_id" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldResultID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultID: %w", err)
	}
	return oldValue.ResultID, nil
}

// ResetResultID resets all changes to the "result_id" field.
func (m *VerificationRecordMutation) ResetResultID() {
	m.result = nil
}

// SetVerifier sets the "verifier" field.
func (m *VerificationRecordMutation) SetVerifier(s string) {
	m.verifier = &s
}

// Verifier returns the value of the "verifier" field in the mutation.
func (m *VerificationRecordMutation) Verifier() (r string, exists bool) {
	v := m.verifier
	if v == nil {
		return
	}
	return *v, true
}

// OldVerifier returns the old "verifier" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldVerifier(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerifier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerifier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerifier: %w", err)
	}
	return oldValue.Verifier, nil
}

// ClearVerifier clears the value of the "verifier" field.
func (m *VerificationRecordMutation) ClearVerifier() {
	m.verifier = nil
	m.clearedFields[verificationrecord.FieldVerifier] = struct{}{}
}

// VerifierCleared returns if the "verifier" field was cleared in this mutation.
func (m *VerificationRecordMutation) VerifierCleared() bool {
	_, ok := m.clearedFields[verificationrecord.FieldVerifier]
	return ok
}

// ResetVerifier resets all changes to the "verifier" field.
func (m *VerificationRecordMutation) ResetVerifier() {
	m.verifier = nil
	delete(m.clearedFields, verificationrecord.FieldVerifier)
}

// SetAction sets the "action" field.
func (m *VerificationRecordMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *VerificationRecordMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *VerificationRecordMutation) ResetAction() {
	m.action = nil
}

// SetCorrectedValue sets the "corrected_value" field.
func (m *VerificationRecordMutation) SetCorrectedValue(s string) {
	m.corrected_value = &s
}

// CorrectedValue returns the value of the "corrected_value" field in the mutation.
func (m *VerificationRecordMutation) CorrectedValue() (r string, exists bool) {
	v := m.corrected_value
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectedValue returns the old "corrected_value" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldCorrectedValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectedValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectedValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectedValue: %w", err)
	}
	return oldValue.CorrectedValue, nil
}

// ClearCorrectedValue clears the value of the "corrected_value" field.
func (m *VerificationRecordMutation) ClearCorrectedValue() {
	m.corrected_value = nil
	m.clearedFields[verificationrecord.FieldCorrectedValue] = struct{}{}
}

// CorrectedValueCleared returns if the "corrected_value" field was cleared in this mutation.
func (m *VerificationRecordMutation) CorrectedValueCleared() bool {
	_, ok := m.clearedFields[verificationrecord.FieldCorrectedValue]
	return ok
}

// ResetCorrectedValue resets all changes to the "corrected_value" field.
func (m *VerificationRecordMutation) ResetCorrectedValue() {
	m.corrected_value = nil
	delete(m.clearedFields, verificationrecord.FieldCorrectedValue)
}

// SetComment sets the "comment" field.
func (m *VerificationRecordMutation) SetComment(s string) {
	m.comment = &s
}

// Comment returns the value of the "comment" field in the mutation.
func (m *VerificationRecordMutation) Comment() (r string, exists bool) {
	v := m.comment
	if v == nil {
		return
	}
	return *v, true
}

// OldComment returns the old "comment" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldComment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldComment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldComment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldComment: %w", err)
	}
	return oldValue.Comment, nil
}

// ClearComment clears the value of the "comment" field.
func (m *VerificationRecordMutation) ClearComment() {
	m.comment = nil
	m.clearedFields[verificationrecord.FieldComment] = struct{}{}
}

// CommentCleared returns if the "comment" field was cleared in this mutation.
func (m *VerificationRecordMutation) CommentCleared() bool {
	_, ok := m.clearedFields[verificationrecord.FieldComment]
	return ok
}

// ResetComment resets all changes to the "comment" field.
func (m *VerificationRecordMutation) ResetComment() {
	m.comment = nil
	delete(m.clearedFields, verificationrecord.FieldComment)
}

// SetCreatedAt sets the "created_at" field.
func (m *VerificationRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VerificationRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the VerificationRecord entity.
// If the VerificationRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VerificationRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearResult clears the "result" edge to the ExtractionResult entity.
func (m *VerificationRecordMutation) ClearResult() {
	m.clearedresult = true
	m.clearedFields[verificationrecord.FieldResultID] = struct{}{}
}

// ResultCleared reports if the "result" edge to the ExtractionResult entity was cleared.
func (m *VerificationRecordMutation) ResultCleared() bool {
	return m.clearedresult
}

// ResultIDs returns the "result" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ResultID instead. It exists only for internal usage by the builders.
func (m *VerificationRecordMutation) ResultIDs() (ids []uuid.UUID) {
	if id := m.result; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetResult resets all changes to the "result" edge.
func (m *VerificationRecordMutation) ResetResult() {
	m.result = nil
	m.clearedresult = false
}

// Where appends a list predicates to the VerificationRecordMutation builder.
func (m *VerificationRecordMutation) Where(ps ...predicate.VerificationRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VerificationRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VerificationRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VerificationRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VerificationRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VerificationRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VerificationRecord).
func (m *VerificationRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VerificationRecordMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.result != nil {
		fields = append(fields, verificationrecord.FieldResultID)
	}
	if m.verifier != nil {
		fields = append(fields, verificationrecord.FieldVerifier)
	}
	if m.action != nil {
		fields = append(fields, verificationrecord.FieldAction)
	}
	if m.corrected_value != nil {
		fields = append(fields, verificationrecord.FieldCorrectedValue)
	}
	if m.comment != nil {
		fields = append(fields, verificationrecord.FieldComment)
	}
	if m.created_at != nil {
		fields = append(fields, verificationrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VerificationRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case verificationrecord.FieldResultID:
		return m.ResultID()
	case verificationrecord.FieldVerifier:
		return m.Verifier()
	case verificationrecord.FieldAction:
		return m.Action()
	case verificationrecord.FieldCorrectedValue:
		return m.CorrectedValue()
	case verificationrecord.FieldComment:
		return m.Comment()
	case verificationrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VerificationRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case verificationrecord.FieldResultID:
		return m.OldResultID(ctx)
	case verificationrecord.FieldVerifier:
		return m.OldVerifier(ctx)
	case verificationrecord.FieldAction:
		return m.OldAction(ctx)
	case verificationrecord.FieldCorrectedValue:
		return m.OldCorrectedValue(ctx)
	case verificationrecord.FieldComment:
		return m.OldComment(ctx)
	case verificationrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown VerificationRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case verificationrecord.FieldResultID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultID(v)
		return nil
	case verificationrecord.FieldVerifier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerifier(v)
		return nil
	case verificationrecord.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case verificationrecord.FieldCorrectedValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectedValue(v)
		return nil
	case verificationrecord.FieldComment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetComment(v)
		return nil
	case verificationrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown VerificationRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VerificationRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VerificationRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown VerificationRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VerificationRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(verificationrecord.FieldVerifier) {
		fields = append(fields, verificationrecord.FieldVerifier)
	}
	if m.FieldCleared(verificationrecord.FieldCorrectedValue) {
		fields = append(fields, verificationrecord.FieldCorrectedValue)
	}
	if m.FieldCleared(verificationrecord.FieldComment) {
		fields = append(fields, verificationrecord.FieldComment)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VerificationRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VerificationRecordMutation) ClearField(name string) error {
	switch name {
	case verificationrecord.FieldVerifier:
		m.ClearVerifier()
		return nil
	case verificationrecord.FieldCorrectedValue:
		m.ClearCorrectedValue()
		return nil
	case verificationrecord.FieldComment:
		m.ClearComment()
		return nil
	}
	return fmt.Errorf("unknown VerificationRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VerificationRecordMutation) ResetField(name string) error {
	switch name {
	case verificationrecord.FieldResultID:
		m.ResetResultID()
		return nil
	case verificationrecord.FieldVerifier:
		m.ResetVerifier()
		return nil
	case verificationrecord.FieldAction:
		m.ResetAction()
		return nil
	case verificationrecord.FieldCorrectedValue:
		m.ResetCorrectedValue()
		return nil
	case verificationrecord.FieldComment:
		m.ResetComment()
		return nil
	case verificationrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown VerificationRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VerificationRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.result != nil {
		edges = append(edges, verificationrecord.EdgeResult)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VerificationRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case verificationrecord.EdgeResult:
		if id := m.result; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VerificationRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VerificationRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VerificationRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedresult {
		edges = append(edges, verificationrecord.EdgeResult)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VerificationRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case verificationrecord.EdgeResult:
		return m.clearedresult
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VerificationRecordMutation) ClearEdge(name string) error {
	switch name {
	case verificationrecord.EdgeResult:
		m.ClearResult()
		return nil
	}
	return fmt.Errorf("unknown VerificationRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VerificationRecordMutation) ResetEdge(name string) error {
	switch name {
	case verificationrecord.EdgeResult:
		m.ResetResult()
		return nil
	}
	return fmt.Errorf("unknown VerificationRecord edge %s", name)
}

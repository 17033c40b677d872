// Code generated by ent, DO NOT EDIT.

package auditlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the auditlog type in the database.
	Label = "audit_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldActor holds the string denoting the actor field in the database.
	FieldActor = "actor"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldEntityKind holds the string denoting the entity_kind field in the database.
	FieldEntityKind = "entity_kind"
	// FieldEntityID holds the string denoting the entity_id field in the database.
	FieldEntityID = "entity_id"
	// FieldDetails holds the string denoting the details field in the database.
	FieldDetails = "details"
	// FieldPromptText holds the string denoting the prompt_text field in the database.
	FieldPromptText = "prompt_text"
	// FieldModelResponse holds the string denoting the model_response field in the database.
	FieldModelResponse = "model_response"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the auditlog in the database.
	Table = "audit_logs"
)

// Columns holds all SQL columns for auditlog fields.
var Columns = []string{
	FieldID,
	FieldActor,
	FieldAction,
	FieldEntityKind,
	FieldEntityID,
	FieldDetails,
	FieldPromptText,
	FieldModelResponse,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// EntityKindValidator is a validator for the "entity_kind" field. It is called by the builders before save.
	EntityKindValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the AuditLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByActor orders the results by the actor field.
func ByActor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActor, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByEntityKind orders the results by the entity_kind field.
func ByEntityKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityKind, opts...).ToFunc()
}

// ByEntityID orders the results by the entity_id field.
func ByEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityID, opts...).ToFunc()
}

// ByPromptText orders the results by the prompt_text field.
func ByPromptText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptText, opts...).ToFunc()
}

// ByModelResponse orders the results by the model_response field.
func ByModelResponse(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelResponse, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

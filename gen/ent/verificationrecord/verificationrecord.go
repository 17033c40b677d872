// Code generated by ent, DO NOT EDIT.

package verificationrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the verificationrecord type in the database.
	Label = "verification_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldResultID holds the string denoting the result_id field in the database.
	FieldResultID = "result_id"
	// FieldVerifier holds the string denoting the verifier field in the database.
	FieldVerifier = "verifier"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldCorrectedValue holds the string denoting the corrected_value field in the database.
	FieldCorrectedValue = "corrected_value"
	// FieldComment holds the string denoting the comment field in the database.
	FieldComment = "comment"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeResult holds the string denoting the result edge name in mutations.
	EdgeResult = "result"
	// Table holds the table name of the verificationrecord in the database.
	Table = "verification_records"
	// ResultTable is the table that holds the result relation/edge.
	ResultTable = "verification_records"
	// ResultInverseTable is the table name for the ExtractionResult entity.
	// It exists in this package in order to avoid circular dependency with the "extractionresult" package.
	ResultInverseTable = "extraction_results"
	// ResultColumn is the table column denoting the result relation/edge.
	ResultColumn = "result_id"
)

// Columns holds all SQL columns for verificationrecord fields.
var Columns = []string{
	FieldID,
	FieldResultID,
	FieldVerifier,
	FieldAction,
	FieldCorrectedValue,
	FieldComment,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the VerificationRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByResultID orders the results by the result_id field.
func ByResultID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultID, opts...).ToFunc()
}

// ByVerifier orders the results by the verifier field.
func ByVerifier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerifier, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByCorrectedValue orders the results by the corrected_value field.
func ByCorrectedValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectedValue, opts...).ToFunc()
}

// ByComment orders the results by the comment field.
func ByComment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldComment, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByResultField orders the results by result field.
func ByResultField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newResultStep(), sql.OrderByField(field, opts...))
	}
}
func newResultStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ResultInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ResultTable, ResultColumn),
	)
}

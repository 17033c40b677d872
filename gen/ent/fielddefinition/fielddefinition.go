// Code generated by ent, DO NOT EDIT.

package fielddefinition

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the fielddefinition type in the database.
	Label = "field_definition"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldKey holds the string denoting the key field in the database.
	FieldKey = "key"
	// FieldLabel holds the string denoting the label field in the database.
	FieldLabel = "label"
	// FieldDataType holds the string denoting the data_type field in the database.
	FieldDataType = "data_type"
	// FieldEnumValues holds the string denoting the enum_values field in the database.
	FieldEnumValues = "enum_values"
	// FieldRequired holds the string denoting the required field in the database.
	FieldRequired = "required"
	// FieldUIOrder holds the string denoting the ui_order field in the database.
	FieldUIOrder = "ui_order"
	// FieldCustomPrompt holds the string denoting the custom_prompt field in the database.
	FieldCustomPrompt = "custom_prompt"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeResults holds the string denoting the results edge name in mutations.
	EdgeResults = "results"
	// Table holds the table name of the fielddefinition in the database.
	Table = "field_definitions"
	// ResultsTable is the table that holds the results relation/edge.
	ResultsTable = "extraction_results"
	// ResultsInverseTable is the table name for the ExtractionResult entity.
	// It exists in this package in order to avoid circular dependency with the "extractionresult" package.
	ResultsInverseTable = "extraction_results"
	// ResultsColumn is the table column denoting the results relation/edge.
	ResultsColumn = "field_def_id"
)

// Columns holds all SQL columns for fielddefinition fields.
var Columns = []string{
	FieldID,
	FieldKey,
	FieldLabel,
	FieldDataType,
	FieldEnumValues,
	FieldRequired,
	FieldUIOrder,
	FieldCustomPrompt,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// KeyValidator is a validator for the "key" field. It is called by the builders before save.
	KeyValidator func(string) error
	// LabelValidator is a validator for the "label" field. It is called by the builders before save.
	LabelValidator func(string) error
	// DefaultDataType holds the default value on creation for the "data_type" field.
	DefaultDataType string
	// DataTypeValidator is a validator for the "data_type" field. It is called by the builders before save.
	DataTypeValidator func(string) error
	// DefaultRequired holds the default value on creation for the "required" field.
	DefaultRequired bool
	// DefaultUIOrder holds the default value on creation for the "ui_order" field.
	DefaultUIOrder int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the FieldDefinition queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByKey orders the results by the key field.
func ByKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKey, opts...).ToFunc()
}

// ByLabel orders the results by the label field.
func ByLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabel, opts...).ToFunc()
}

// ByDataType orders the results by the data_type field.
func ByDataType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDataType, opts...).ToFunc()
}

// ByRequired orders the results by the required field.
func ByRequired(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequired, opts...).ToFunc()
}

// ByUIOrder orders the results by the ui_order field.
func ByUIOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUIOrder, opts...).ToFunc()
}

// ByCustomPrompt orders the results by the custom_prompt field.
func ByCustomPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomPrompt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByResultsCount orders the results by results count.
func ByResultsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newResultsStep(), opts...)
	}
}

// ByResults orders the results by results terms.
func ByResults(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newResultsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newResultsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ResultsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ResultsTable, ResultsColumn),
	)
}

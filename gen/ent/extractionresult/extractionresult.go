// Code generated by ent, DO NOT EDIT.

package extractionresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the extractionresult type in the database.
	Label = "extraction_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldFieldDefID holds the string denoting the field_def_id field in the database.
	FieldFieldDefID = "field_def_id"
	// FieldValueRaw holds the string denoting the value_raw field in the database.
	FieldValueRaw = "value_raw"
	// FieldNormalizedValue holds the string denoting the normalized_value field in the database.
	FieldNormalizedValue = "normalized_value"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldPageNum holds the string denoting the page_num field in the database.
	FieldPageNum = "page_num"
	// FieldBbox holds the string denoting the bbox field in the database.
	FieldBbox = "bbox"
	// FieldModelName holds the string denoting the model_name field in the database.
	FieldModelName = "model_name"
	// FieldModelVersion holds the string denoting the model_version field in the database.
	FieldModelVersion = "model_version"
	// FieldPromptVersion holds the string denoting the prompt_version field in the database.
	FieldPromptVersion = "prompt_version"
	// FieldVerified holds the string denoting the verified field in the database.
	FieldVerified = "verified"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeDocument holds the string denoting the document edge name in mutations.
	EdgeDocument = "document"
	// EdgeFieldDef holds the string denoting the field_def edge name in mutations.
	EdgeFieldDef = "field_def"
	// EdgeVerifications holds the string denoting the verifications edge name in mutations.
	EdgeVerifications = "verifications"
	// Table holds the table name of the extractionresult in the database.
	Table = "extraction_results"
	// DocumentTable is the table that holds the document relation/edge.
	DocumentTable = "extraction_results"
	// DocumentInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentInverseTable = "documents"
	// DocumentColumn is the table column denoting the document relation/edge.
	DocumentColumn = "document_id"
	// FieldDefTable is the table that holds the field_def relation/edge.
	FieldDefTable = "extraction_results"
	// FieldDefInverseTable is the table name for the FieldDefinition entity.
	// It exists in this package in order to avoid circular dependency with the "fielddefinition" package.
	FieldDefInverseTable = "field_definitions"
	// FieldDefColumn is the table column denoting the field_def relation/edge.
	FieldDefColumn = "field_def_id"
	// VerificationsTable is the table that holds the verifications relation/edge.
	VerificationsTable = "verification_records"
	// VerificationsInverseTable is the table name for the VerificationRecord entity.
	// It exists in this package in order to avoid circular dependency with the "verificationrecord" package.
	VerificationsInverseTable = "verification_records"
	// VerificationsColumn is the table column denoting the verifications relation/edge.
	VerificationsColumn = "result_id"
)

// Columns holds all SQL columns for extractionresult fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldFieldDefID,
	FieldValueRaw,
	FieldNormalizedValue,
	FieldConfidence,
	FieldPageNum,
	FieldBbox,
	FieldModelName,
	FieldModelVersion,
	FieldPromptVersion,
	FieldVerified,
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
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	ConfidenceValidator func(float64) error
	// DefaultVerified holds the default value on creation for the "verified" field.
	DefaultVerified bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ExtractionResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByFieldDefID orders the results by the field_def_id field.
func ByFieldDefID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFieldDefID, opts...).ToFunc()
}

// ByValueRaw orders the results by the value_raw field.
func ByValueRaw(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValueRaw, opts...).ToFunc()
}

// ByNormalizedValue orders the results by the normalized_value field.
func ByNormalizedValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNormalizedValue, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByPageNum orders the results by the page_num field.
func ByPageNum(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageNum, opts...).ToFunc()
}

// ByModelName orders the results by the model_name field.
func ByModelName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelName, opts...).ToFunc()
}

// ByModelVersion orders the results by the model_version field.
func ByModelVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelVersion, opts...).ToFunc()
}

// ByPromptVersion orders the results by the prompt_version field.
func ByPromptVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptVersion, opts...).ToFunc()
}

// ByVerified orders the results by the verified field.
func ByVerified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerified, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDocumentField orders the results by document field.
func ByDocumentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentStep(), sql.OrderByField(field, opts...))
	}
}

// ByFieldDefField orders the results by field_def field.
func ByFieldDefField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFieldDefStep(), sql.OrderByField(field, opts...))
	}
}

// ByVerificationsCount orders the results by verifications count.
func ByVerificationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newVerificationsStep(), opts...)
	}
}

// ByVerifications orders the results by verifications terms.
func ByVerifications(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVerificationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDocumentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
	)
}
func newFieldDefStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FieldDefInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FieldDefTable, FieldDefColumn),
	)
}
func newVerificationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VerificationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, VerificationsTable, VerificationsColumn),
	)
}

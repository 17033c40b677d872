// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docufield/docufield/gen/ent/document"
	"github.com/docufield/docufield/gen/ent/extractionresult"
	"github.com/docufield/docufield/gen/ent/fielddefinition"
	"github.com/google/uuid"
)

// ExtractionResult is the model entity for the ExtractionResult schema.
type ExtractionResult struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// FieldDefID holds the value of the "field_def_id" field.
	FieldDefID int `json:"field_def_id,omitempty"`
	// ValueRaw holds the value of the "value_raw" field.
	ValueRaw string `json:"value_raw,omitempty"`
	// NormalizedValue holds the value of the "normalized_value" field.
	NormalizedValue string `json:"normalized_value,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// PageNum holds the value of the "page_num" field.
	PageNum *int `json:"page_num,omitempty"`
	// Bbox holds the value of the "bbox" field.
	Bbox json.RawMessage `json:"bbox,omitempty"`
	// ModelName holds the value of the "model_name" field.
	ModelName string `json:"model_name,omitempty"`
	// ModelVersion holds the value of the "model_version" field.
	ModelVersion string `json:"model_version,omitempty"`
	// PromptVersion holds the value of the "prompt_version" field.
	PromptVersion int `json:"prompt_version,omitempty"`
	// Verified holds the value of the "verified" field.
	Verified bool `json:"verified,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractionResultQuery when eager-loading is set.
	Edges        ExtractionResultEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractionResultEdges holds the relations/edges for other nodes in the graph.
type ExtractionResultEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// FieldDef holds the value of the field_def edge.
	FieldDef *FieldDefinition `json:"field_def,omitempty"`
	// Verifications holds the value of the verifications edge.
	Verifications []*VerificationRecord `json:"verifications,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractionResultEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// FieldDefOrErr returns the FieldDef value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractionResultEdges) FieldDefOrErr() (*FieldDefinition, error) {
	if e.FieldDef != nil {
		return e.FieldDef, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: fielddefinition.Label}
	}
	return nil, &NotLoadedError{edge: "field_def"}
}

// VerificationsOrErr returns the Verifications value or an error if the edge
// was not loaded in eager-loading.
func (e ExtractionResultEdges) VerificationsOrErr() ([]*VerificationRecord, error) {
	if e.loadedTypes[2] {
		return e.Verifications, nil
	}
	return nil, &NotLoadedError{edge: "verifications"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractionResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractionresult.FieldBbox:
			values[i] = new([]byte)
		case extractionresult.FieldVerified:
			values[i] = new(sql.NullBool)
		case extractionresult.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case extractionresult.FieldFieldDefID, extractionresult.FieldPageNum, extractionresult.FieldPromptVersion:
			values[i] = new(sql.NullInt64)
		case extractionresult.FieldValueRaw, extractionresult.FieldNormalizedValue, extractionresult.FieldModelName, extractionresult.FieldModelVersion:
			values[i] = new(sql.NullString)
		case extractionresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case extractionresult.FieldID, extractionresult.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractionResult fields.
func (_m *ExtractionResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractionresult.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extractionresult.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case extractionresult.FieldFieldDefID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field field_def_id", values[i])
			} else if value.Valid {
				_m.FieldDefID = int(value.Int64)
			}
		case extractionresult.FieldValueRaw:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value_raw", values[i])
			} else if value.Valid {
				_m.ValueRaw = value.String
			}
		case extractionresult.FieldNormalizedValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field normalized_value", values[i])
			} else if value.Valid {
				_m.NormalizedValue = value.String
			}
		case extractionresult.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case extractionresult.FieldPageNum:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_num", values[i])
			} else if value.Valid {
				_m.PageNum = new(int)
				*_m.PageNum = int(value.Int64)
			}
		case extractionresult.FieldBbox:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field bbox", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Bbox); err != nil {
					return fmt.Errorf("unmarshal field bbox: %w", err)
				}
			}
		case extractionresult.FieldModelName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_name", values[i])
			} else if value.Valid {
				_m.ModelName = value.String
			}
		case extractionresult.FieldModelVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model_version", values[i])
			} else if value.Valid {
				_m.ModelVersion = value.String
			}
		case extractionresult.FieldPromptVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_version", values[i])
			} else if value.Valid {
				_m.PromptVersion = int(value.Int64)
			}
		case extractionresult.FieldVerified:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field verified", values[i])
			} else if value.Valid {
				_m.Verified = value.Bool
			}
		case extractionresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractionResult.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractionResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the ExtractionResult entity.
func (_m *ExtractionResult) QueryDocument() *DocumentQuery {
	return NewExtractionResultClient(_m.config).QueryDocument(_m)
}

// QueryFieldDef queries the "field_def" edge of the ExtractionResult entity.
func (_m *ExtractionResult) QueryFieldDef() *FieldDefinitionQuery {
	return NewExtractionResultClient(_m.config).QueryFieldDef(_m)
}

// QueryVerifications queries the "verifications" edge of the ExtractionResult entity.
func (_m *ExtractionResult) QueryVerifications() *VerificationRecordQuery {
	return NewExtractionResultClient(_m.config).QueryVerifications(_m)
}

// Update returns a builder for updating this ExtractionResult.
// Note that you need to call ExtractionResult.Unwrap() before calling this method if this ExtractionResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractionResult) Update() *ExtractionResultUpdateOne {
	return NewExtractionResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractionResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractionResult) Unwrap() *ExtractionResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractionResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractionResult) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractionResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("field_def_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FieldDefID))
	builder.WriteString(", ")
	builder.WriteString("value_raw=")
	builder.WriteString(_m.ValueRaw)
	builder.WriteString(", ")
	builder.WriteString("normalized_value=")
	builder.WriteString(_m.NormalizedValue)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	if v := _m.PageNum; v != nil {
		builder.WriteString("page_num=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("bbox=")
	builder.WriteString(fmt.Sprintf("%v", _m.Bbox))
	builder.WriteString(", ")
	builder.WriteString("model_name=")
	builder.WriteString(_m.ModelName)
	builder.WriteString(", ")
	builder.WriteString("model_version=")
	builder.WriteString(_m.ModelVersion)
	builder.WriteString(", ")
	builder.WriteString("prompt_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.PromptVersion))
	builder.WriteString(", ")
	builder.WriteString("verified=")
	builder.WriteString(fmt.Sprintf("%v", _m.Verified))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractionResults is a parsable slice of ExtractionResult.
type ExtractionResults []*ExtractionResult

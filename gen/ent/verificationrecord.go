// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docufield/docufield/gen/ent/extractionresult"
	"github.com/docufield/docufield/gen/ent/verificationrecord"
	"github.com/google/uuid"
)

// VerificationRecord is the model entity for the VerificationRecord schema.
type VerificationRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ResultID holds the value of the "result_id" field.
	ResultID uuid.UUID `json:"result_id,omitempty"`
	// Verifier holds the value of the "verifier" field.
	Verifier string `json:"verifier,omitempty"`
	// Action holds the value of the "action" field.
	Action string `json:"action,omitempty"`
	// CorrectedValue holds the value of the "corrected_value" field.
	CorrectedValue string `json:"corrected_value,omitempty"`
	// Comment holds the value of the "comment" field.
	Comment string `json:"comment,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VerificationRecordQuery when eager-loading is set.
	Edges        VerificationRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VerificationRecordEdges holds the relations/edges for other nodes in the graph.
type VerificationRecordEdges struct {
	// Result holds the value of the result edge.
	Result *ExtractionResult `json:"result,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ResultOrErr returns the Result value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VerificationRecordEdges) ResultOrErr() (*ExtractionResult, error) {
	if e.Result != nil {
		return e.Result, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: extractionresult.Label}
	}
	return nil, &NotLoadedError{edge: "result"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VerificationRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case verificationrecord.FieldVerifier, verificationrecord.FieldAction, verificationrecord.FieldCorrectedValue, verificationrecord.FieldComment:
			values[i] = new(sql.NullString)
		case verificationrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case verificationrecord.FieldID, verificationrecord.FieldResultID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VerificationRecord fields.
func (_m *VerificationRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case verificationrecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case verificationrecord.FieldResultID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field result_id", values[i])
			} else if value != nil {
				_m.ResultID = *value
			}
		case verificationrecord.FieldVerifier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verifier", values[i])
			} else if value.Valid {
				_m.Verifier = value.String
			}
		case verificationrecord.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = value.String
			}
		case verificationrecord.FieldCorrectedValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field corrected_value", values[i])
			} else if value.Valid {
				_m.CorrectedValue = value.String
			}
		case verificationrecord.FieldComment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field comment", values[i])
			} else if value.Valid {
				_m.Comment = value.String
			}
		case verificationrecord.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the VerificationRecord.
// This includes values selected through modifiers, order, etc.
func (_m *VerificationRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryResult queries the "result" edge of the VerificationRecord entity.
func (_m *VerificationRecord) QueryResult() *ExtractionResultQuery {
	return NewVerificationRecordClient(_m.config).QueryResult(_m)
}

// Update returns a builder for updating this VerificationRecord.
// Note that you need to call VerificationRecord.Unwrap() before calling this method if this VerificationRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VerificationRecord) Update() *VerificationRecordUpdateOne {
	return NewVerificationRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VerificationRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VerificationRecord) Unwrap() *VerificationRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VerificationRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VerificationRecord) String() string {
	var builder strings.Builder
	builder.WriteString("VerificationRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("result_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResultID))
	builder.WriteString(", ")
	builder.WriteString("verifier=")
	builder.WriteString(_m.Verifier)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(_m.Action)
	builder.WriteString(", ")
	builder.WriteString("corrected_value=")
	builder.WriteString(_m.CorrectedValue)
	builder.WriteString(", ")
	builder.WriteString("comment=")
	builder.WriteString(_m.Comment)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// VerificationRecords is a parsable slice of VerificationRecord.
type VerificationRecords []*VerificationRecord

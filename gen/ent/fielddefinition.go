// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docufield/docufield/gen/ent/fielddefinition"
)

// FieldDefinition is the model entity for the FieldDefinition schema.
type FieldDefinition struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Key holds the value of the "key" field.
	Key string `json:"key,omitempty"`
	// Label holds the value of the "label" field.
	Label string `json:"label,omitempty"`
	// DataType holds the value of the "data_type" field.
	DataType string `json:"data_type,omitempty"`
	// EnumValues holds the value of the "enum_values" field.
	EnumValues []string `json:"enum_values,omitempty"`
	// Required holds the value of the "required" field.
	Required bool `json:"required,omitempty"`
	// UIOrder holds the value of the "ui_order" field.
	UIOrder int `json:"ui_order,omitempty"`
	// CustomPrompt holds the value of the "custom_prompt" field.
	CustomPrompt string `json:"custom_prompt,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FieldDefinitionQuery when eager-loading is set.
	Edges        FieldDefinitionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FieldDefinitionEdges holds the relations/edges for other nodes in the graph.
type FieldDefinitionEdges struct {
	// Results holds the value of the results edge.
	Results []*ExtractionResult `json:"results,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ResultsOrErr returns the Results value or an error if the edge
// was not loaded in eager-loading.
func (e FieldDefinitionEdges) ResultsOrErr() ([]*ExtractionResult, error) {
	if e.loadedTypes[0] {
		return e.Results, nil
	}
	return nil, &NotLoadedError{edge: "results"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FieldDefinition) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case fielddefinition.FieldEnumValues:
			values[i] = new([]byte)
		case fielddefinition.FieldRequired:
			values[i] = new(sql.NullBool)
		case fielddefinition.FieldID, fielddefinition.FieldUIOrder:
			values[i] = new(sql.NullInt64)
		case fielddefinition.FieldKey, fielddefinition.FieldLabel, fielddefinition.FieldDataType, fielddefinition.FieldCustomPrompt:
			values[i] = new(sql.NullString)
		case fielddefinition.FieldCreatedAt, fielddefinition.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FieldDefinition fields.
func (_m *FieldDefinition) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case fielddefinition.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case fielddefinition.FieldKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field key", values[i])
			} else if value.Valid {
				_m.Key = value.String
			}
		case fielddefinition.FieldLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field label", values[i])
			} else if value.Valid {
				_m.Label = value.String
			}
		case fielddefinition.FieldDataType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field data_type", values[i])
			} else if value.Valid {
				_m.DataType = value.String
			}
		case fielddefinition.FieldEnumValues:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field enum_values", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EnumValues); err != nil {
					return fmt.Errorf("unmarshal field enum_values: %w", err)
				}
			}
		case fielddefinition.FieldRequired:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field required", values[i])
			} else if value.Valid {
				_m.Required = value.Bool
			}
		case fielddefinition.FieldUIOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ui_order", values[i])
			} else if value.Valid {
				_m.UIOrder = int(value.Int64)
			}
		case fielddefinition.FieldCustomPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field custom_prompt", values[i])
			} else if value.Valid {
				_m.CustomPrompt = value.String
			}
		case fielddefinition.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case fielddefinition.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FieldDefinition.
// This includes values selected through modifiers, order, etc.
func (_m *FieldDefinition) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryResults queries the "results" edge of the FieldDefinition entity.
func (_m *FieldDefinition) QueryResults() *ExtractionResultQuery {
	return NewFieldDefinitionClient(_m.config).QueryResults(_m)
}

// Update returns a builder for updating this FieldDefinition.
// Note that you need to call FieldDefinition.Unwrap() before calling this method if this FieldDefinition
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FieldDefinition) Update() *FieldDefinitionUpdateOne {
	return NewFieldDefinitionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FieldDefinition entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FieldDefinition) Unwrap() *FieldDefinition {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FieldDefinition is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FieldDefinition) String() string {
	var builder strings.Builder
	builder.WriteString("FieldDefinition(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("key=")
	builder.WriteString(_m.Key)
	builder.WriteString(", ")
	builder.WriteString("label=")
	builder.WriteString(_m.Label)
	builder.WriteString(", ")
	builder.WriteString("data_type=")
	builder.WriteString(_m.DataType)
	builder.WriteString(", ")
	builder.WriteString("enum_values=")
	builder.WriteString(fmt.Sprintf("%v", _m.EnumValues))
	builder.WriteString(", ")
	builder.WriteString("required=")
	builder.WriteString(fmt.Sprintf("%v", _m.Required))
	builder.WriteString(", ")
	builder.WriteString("ui_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.UIOrder))
	builder.WriteString(", ")
	builder.WriteString("custom_prompt=")
	builder.WriteString(_m.CustomPrompt)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FieldDefinitions is a parsable slice of FieldDefinition.
type FieldDefinitions []*FieldDefinition

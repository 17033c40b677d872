// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docufield/docufield/gen/ent/document"
	"github.com/docufield/docufield/gen/ent/documentpage"
	"github.com/google/uuid"
)

// DocumentPage is the model entity for the DocumentPage schema.
type DocumentPage struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// PageNum holds the value of the "page_num" field.
	PageNum int `json:"page_num,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// ImagePath holds the value of the "image_path" field.
	ImagePath string `json:"image_path,omitempty"`
	// Layout holds the value of the "layout" field.
	Layout json.RawMessage `json:"layout,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentPageQuery when eager-loading is set.
	Edges        DocumentPageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocumentPageEdges holds the relations/edges for other nodes in the graph.
type DocumentPageEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocumentPageEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DocumentPage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case documentpage.FieldLayout:
			values[i] = new([]byte)
		case documentpage.FieldID, documentpage.FieldPageNum:
			values[i] = new(sql.NullInt64)
		case documentpage.FieldText, documentpage.FieldImagePath:
			values[i] = new(sql.NullString)
		case documentpage.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DocumentPage fields.
func (_m *DocumentPage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case documentpage.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case documentpage.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case documentpage.FieldPageNum:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_num", values[i])
			} else if value.Valid {
				_m.PageNum = int(value.Int64)
			}
		case documentpage.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case documentpage.FieldImagePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_path", values[i])
			} else if value.Valid {
				_m.ImagePath = value.String
			}
		case documentpage.FieldLayout:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field layout", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Layout); err != nil {
					return fmt.Errorf("unmarshal field layout: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DocumentPage.
// This includes values selected through modifiers, order, etc.
func (_m *DocumentPage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the DocumentPage entity.
func (_m *DocumentPage) QueryDocument() *DocumentQuery {
	return NewDocumentPageClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this DocumentPage.
// Note that you need to call DocumentPage.Unwrap() before calling this method if this DocumentPage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DocumentPage) Update() *DocumentPageUpdateOne {
	return NewDocumentPageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DocumentPage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DocumentPage) Unwrap() *DocumentPage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DocumentPage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DocumentPage) String() string {
	var builder strings.Builder
	builder.WriteString("DocumentPage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("page_num=")
	builder.WriteString(fmt.Sprintf("%v", _m.PageNum))
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("image_path=")
	builder.WriteString(_m.ImagePath)
	builder.WriteString(", ")
	builder.WriteString("layout=")
	builder.WriteString(fmt.Sprintf("%v", _m.Layout))
	builder.WriteByte(')')
	return builder.String()
}

// DocumentPages is a parsable slice of DocumentPage.
type DocumentPages []*DocumentPage

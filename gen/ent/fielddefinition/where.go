// Code generated by ent, DO NOT EDIT.

package fielddefinition

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docufield/docufield/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldLTE(FieldID, id))
}

// Key applies equality check predicate on the "key" field. It's identical to KeyEQ.
func Key(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldKey, v))
}

// DataType applies equality check predicate on the "data_type" field. It's identical to DataTypeEQ.
func DataType(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldDataType, v))
}

// Required applies equality check predicate on the "required" field. It's identical to RequiredEQ.
func Required(v bool) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldRequired, v))
}

// UIOrder applies equality check predicate on the "ui_order" field. It's identical to UIOrderEQ.
func UIOrder(v int) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldUIOrder, v))
}

// CustomPrompt applies equality check predicate on the "custom_prompt" field. It's identical to CustomPromptEQ.
func CustomPrompt(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldCustomPrompt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldUpdatedAt, v))
}

// KeyEQ applies the EQ predicate on the "key" field.
func KeyEQ(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldKey, v))
}

// KeyNEQ applies the NEQ predicate on the "key" field.
func KeyNEQ(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNEQ(FieldKey, v))
}

// KeyIn applies the In predicate on the "key" field.
func KeyIn(vs ...string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldIn(FieldKey, vs...))
}

// KeyNotIn applies the NotIn predicate on the "key" field.
func KeyNotIn(vs ...string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNotIn(FieldKey, vs...))
}

// KeyGT applies the GT predicate on the "key" field.
func KeyGT(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldGT(FieldKey, v))
}

// KeyGTE applies the GTE predicate on the "key" field.
func KeyGTE(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldGTE(FieldKey, v))
}

// KeyLT applies the LT predicate on the "key" field.
func KeyLT(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldLT(FieldKey, v))
}

// KeyLTE applies the LTE predicate on the "key" field.
func KeyLTE(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldLTE(FieldKey, v))
}

// KeyContains applies the Contains predicate on the "key" field.
func KeyContains(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldContains(FieldKey, v))
}

// KeyHasPrefix applies the HasPrefix predicate on the "key" field.
func KeyHasPrefix(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldHasPrefix(FieldKey, v))
}

// KeyHasSuffix applies the HasSuffix predicate on the "key" field.
func KeyHasSuffix(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldHasSuffix(FieldKey, v))
}

// KeyEqualFold applies the EqualFold predicate on the "key" field.
func KeyEqualFold(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEqualFold(FieldKey, v))
}

// KeyContainsFold applies the ContainsFold predicate on the "key" field.
func KeyContainsFold(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldContainsFold(FieldKey, v))
}

// LabelEQ applies the EQ predicate on the "label" field.
func LabelEQ(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldLabel, v))
}

// LabelNEQ applies the NEQ predicate on the "label" field.
func LabelNEQ(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNEQ(FieldLabel, v))
}

// LabelIn applies the In predicate on the "label" field.
func LabelIn(vs ...string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldIn(FieldLabel, vs...))
}

// LabelNotIn applies the NotIn predicate on the "label" field.
func LabelNotIn(vs ...string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNotIn(FieldLabel, vs...))
}

// LabelGT applies the GT predicate on the "label" field.
func LabelGT(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldGT(FieldLabel, v))
}

// LabelGTE applies the GTE predicate on the "label" field.
func LabelGTE(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldGTE(FieldLabel, v))
}

// LabelLT applies the LT predicate on the "label" field.
func LabelLT(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldLT(FieldLabel, v))
}

// LabelLTE applies the LTE predicate on the "label" field.
func LabelLTE(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldLTE(FieldLabel, v))
}

// LabelContains applies the Contains predicate on the "label" field.
func LabelContains(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldContains(FieldLabel, v))
}

// LabelHasPrefix applies the HasPrefix predicate on the "label" field.
func LabelHasPrefix(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldHasPrefix(FieldLabel, v))
}

// LabelHasSuffix applies the HasSuffix predicate on the "label" field.
func LabelHasSuffix(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldHasSuffix(FieldLabel, v))
}

// LabelEqualFold applies the EqualFold predicate on the "label" field.
func LabelEqualFold(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEqualFold(FieldLabel, v))
}

// LabelContainsFold applies the ContainsFold predicate on the "label" field.
func LabelContainsFold(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldContainsFold(FieldLabel, v))
}

// DataTypeEQ applies the EQ predicate on the "data_type" field.
func DataTypeEQ(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldDataType, v))
}

// DataTypeNEQ applies the NEQ predicate on the "data_type" field.
func DataTypeNEQ(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNEQ(FieldDataType, v))
}

// DataTypeIn applies the In predicate on the "data_type" field.
func DataTypeIn(vs ...string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldIn(FieldDataType, vs...))
}

// DataTypeNotIn applies the NotIn predicate on the "data_type" field.
func DataTypeNotIn(vs ...string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNotIn(FieldDataType, vs...))
}

// DataTypeGT applies the GT predicate on the "data_type" field.
func DataTypeGT(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldGT(FieldDataType, v))
}

// DataTypeGTE applies the GTE predicate on the "data_type" field.
func DataTypeGTE(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldGTE(FieldDataType, v))
}

// DataTypeLT applies the LT predicate on the "data_type" field.
func DataTypeLT(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldLT(FieldDataType, v))
}

// DataTypeLTE applies the LTE predicate on the "data_type" field.
func DataTypeLTE(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldLTE(FieldDataType, v))
}

// DataTypeContains applies the Contains predicate on the "data_type" field.
func DataTypeContains(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldContains(FieldDataType, v))
}

// DataTypeHasPrefix applies the HasPrefix predicate on the "data_type" field.
func DataTypeHasPrefix(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldHasPrefix(FieldDataType, v))
}

// DataTypeHasSuffix applies the HasSuffix predicate on the "data_type" field.
func DataTypeHasSuffix(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldHasSuffix(FieldDataType, v))
}

// DataTypeEqualFold applies the EqualFold predicate on the "data_type" field.
func DataTypeEqualFold(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEqualFold(FieldDataType, v))
}

// DataTypeContainsFold applies the ContainsFold predicate on the "data_type" field.
func DataTypeContainsFold(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldContainsFold(FieldDataType, v))
}

// EnumValuesIsNil applies the IsNil predicate on the "enum_values" field.
func EnumValuesIsNil() predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldIsNull(FieldEnumValues))
}

// EnumValuesNotNil applies the NotNil predicate on the "enum_values" field.
func EnumValuesNotNil() predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNotNull(FieldEnumValues))
}

// RequiredEQ applies the EQ predicate on the "required" field.
func RequiredEQ(v bool) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldRequired, v))
}

// RequiredNEQ applies the NEQ predicate on the "required" field.
func RequiredNEQ(v bool) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNEQ(FieldRequired, v))
}

// UIOrderEQ applies the EQ predicate on the "ui_order" field.
func UIOrderEQ(v int) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldUIOrder, v))
}

// UIOrderNEQ applies the NEQ predicate on the "ui_order" field.
func UIOrderNEQ(v int) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNEQ(FieldUIOrder, v))
}

// UIOrderIn applies the In predicate on the "ui_order" field.
func UIOrderIn(vs ...int) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldIn(FieldUIOrder, vs...))
}

// UIOrderNotIn applies the NotIn predicate on the "ui_order" field.
func UIOrderNotIn(vs ...int) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNotIn(FieldUIOrder, vs...))
}

// UIOrderGT applies the GT predicate on the "ui_order" field.
func UIOrderGT(v int) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldGT(FieldUIOrder, v))
}

// UIOrderGTE applies the GTE predicate on the "ui_order" field.
func UIOrderGTE(v int) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldGTE(FieldUIOrder, v))
}

// UIOrderLT applies the LT predicate on the "ui_order" field.
func UIOrderLT(v int) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldLT(FieldUIOrder, v))
}

// UIOrderLTE applies the LTE predicate on the "ui_order" field.
func UIOrderLTE(v int) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldLTE(FieldUIOrder, v))
}

// CustomPromptEQ applies the EQ predicate on the "custom_prompt" field.
func CustomPromptEQ(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldCustomPrompt, v))
}

// CustomPromptNEQ applies the NEQ predicate on the "custom_prompt" field.
func CustomPromptNEQ(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNEQ(FieldCustomPrompt, v))
}

// CustomPromptIn applies the In predicate on the "custom_prompt" field.
func CustomPromptIn(vs ...string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldIn(FieldCustomPrompt, vs...))
}

// CustomPromptNotIn applies the NotIn predicate on the "custom_prompt" field.
func CustomPromptNotIn(vs ...string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNotIn(FieldCustomPrompt, vs...))
}

// CustomPromptGT applies the GT predicate on the "custom_prompt" field.
func CustomPromptGT(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldGT(FieldCustomPrompt, v))
}

// CustomPromptGTE applies the GTE predicate on the "custom_prompt" field.
func CustomPromptGTE(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldGTE(FieldCustomPrompt, v))
}

// CustomPromptLT applies the LT predicate on the "custom_prompt" field.
func CustomPromptLT(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldLT(FieldCustomPrompt, v))
}

// CustomPromptLTE applies the LTE predicate on the "custom_prompt" field.
func CustomPromptLTE(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldLTE(FieldCustomPrompt, v))
}

// CustomPromptContains applies the Contains predicate on the "custom_prompt" field.
func CustomPromptContains(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldContains(FieldCustomPrompt, v))
}

// CustomPromptHasPrefix applies the HasPrefix predicate on the "custom_prompt" field.
func CustomPromptHasPrefix(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldHasPrefix(FieldCustomPrompt, v))
}

// CustomPromptHasSuffix applies the HasSuffix predicate on the "custom_prompt" field.
func CustomPromptHasSuffix(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldHasSuffix(FieldCustomPrompt, v))
}

// CustomPromptIsNil applies the IsNil predicate on the "custom_prompt" field.
func CustomPromptIsNil() predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldIsNull(FieldCustomPrompt))
}

// CustomPromptNotNil applies the NotNil predicate on the "custom_prompt" field.
func CustomPromptNotNil() predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNotNull(FieldCustomPrompt))
}

// CustomPromptEqualFold applies the EqualFold predicate on the "custom_prompt" field.
func CustomPromptEqualFold(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEqualFold(FieldCustomPrompt, v))
}

// CustomPromptContainsFold applies the ContainsFold predicate on the "custom_prompt" field.
func CustomPromptContainsFold(v string) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldContainsFold(FieldCustomPrompt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasResults applies the HasEdge predicate on the "results" edge.
func HasResults() predicate.FieldDefinition {
	return predicate.FieldDefinition(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ResultsTable, ResultsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResultsWith applies the HasEdge predicate on the "results" edge with a given conditions (other predicates).
func HasResultsWith(preds ...predicate.ExtractionResult) predicate.FieldDefinition {
	return predicate.FieldDefinition(func(s *sql.Selector) {
		step := newResultsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FieldDefinition) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FieldDefinition) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FieldDefinition) predicate.FieldDefinition {
	return predicate.FieldDefinition(sql.NotPredicates(p))
}

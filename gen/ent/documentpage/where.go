// Code generated by ent, DO NOT EDIT.

package documentpage

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docufield/docufield/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldEQ(FieldDocumentID, v))
}

// PageNum applies equality check predicate on the "page_num" field. It's identical to PageNumEQ.
func PageNum(v int) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldEQ(FieldPageNum, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldEQ(FieldText, v))
}

// ImagePath applies equality check predicate on the "image_path" field. It's identical to ImagePathEQ.
func ImagePath(v string) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldEQ(FieldImagePath, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldNotIn(FieldDocumentID, vs...))
}

// PageNumEQ applies the EQ predicate on the "page_num" field.
func PageNumEQ(v int) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldEQ(FieldPageNum, v))
}

// PageNumNEQ applies the NEQ predicate on the "page_num" field.
func PageNumNEQ(v int) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldNEQ(FieldPageNum, v))
}

// PageNumIn applies the In predicate on the "page_num" field.
func PageNumIn(vs ...int) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldIn(FieldPageNum, vs...))
}

// PageNumNotIn applies the NotIn predicate on the "page_num" field.
func PageNumNotIn(vs ...int) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldNotIn(FieldPageNum, vs...))
}

// PageNumGT applies the GT predicate on the "page_num" field.
func PageNumGT(v int) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldGT(FieldPageNum, v))
}

// PageNumGTE applies the GTE predicate on the "page_num" field.
func PageNumGTE(v int) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldGTE(FieldPageNum, v))
}

// PageNumLT applies the LT predicate on the "page_num" field.
func PageNumLT(v int) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldLT(FieldPageNum, v))
}

// PageNumLTE applies the LTE predicate on the "page_num" field.
func PageNumLTE(v int) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldLTE(FieldPageNum, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldContainsFold(FieldText, v))
}

// ImagePathEQ applies the EQ predicate on the "image_path" field.
func ImagePathEQ(v string) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldEQ(FieldImagePath, v))
}

// ImagePathNEQ applies the NEQ predicate on the "image_path" field.
func ImagePathNEQ(v string) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldNEQ(FieldImagePath, v))
}

// ImagePathIn applies the In predicate on the "image_path" field.
func ImagePathIn(vs ...string) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldIn(FieldImagePath, vs...))
}

// ImagePathNotIn applies the NotIn predicate on the "image_path" field.
func ImagePathNotIn(vs ...string) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldNotIn(FieldImagePath, vs...))
}

// ImagePathGT applies the GT predicate on the "image_path" field.
func ImagePathGT(v string) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldGT(FieldImagePath, v))
}

// ImagePathGTE applies the GTE predicate on the "image_path" field.
func ImagePathGTE(v string) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldGTE(FieldImagePath, v))
}

// ImagePathLT applies the LT predicate on the "image_path" field.
func ImagePathLT(v string) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldLT(FieldImagePath, v))
}

// ImagePathLTE applies the LTE predicate on the "image_path" field.
func ImagePathLTE(v string) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldLTE(FieldImagePath, v))
}

// ImagePathContains applies the Contains predicate on the "image_path" field.
func ImagePathContains(v string) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldContains(FieldImagePath, v))
}

// ImagePathHasPrefix applies the HasPrefix predicate on the "image_path" field.
func ImagePathHasPrefix(v string) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldHasPrefix(FieldImagePath, v))
}

// ImagePathHasSuffix applies the HasSuffix predicate on the "image_path" field.
func ImagePathHasSuffix(v string) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldHasSuffix(FieldImagePath, v))
}

// ImagePathIsNil applies the IsNil predicate on the "image_path" field.
func ImagePathIsNil() predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldIsNull(FieldImagePath))
}

// ImagePathNotNil applies the NotNil predicate on the "image_path" field.
func ImagePathNotNil() predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldNotNull(FieldImagePath))
}

// ImagePathEqualFold applies the EqualFold predicate on the "image_path" field.
func ImagePathEqualFold(v string) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldEqualFold(FieldImagePath, v))
}

// ImagePathContainsFold applies the ContainsFold predicate on the "image_path" field.
func ImagePathContainsFold(v string) predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldContainsFold(FieldImagePath, v))
}

// LayoutIsNil applies the IsNil predicate on the "layout" field.
func LayoutIsNil() predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldIsNull(FieldLayout))
}

// LayoutNotNil applies the NotNil predicate on the "layout" field.
func LayoutNotNil() predicate.DocumentPage {
	return predicate.DocumentPage(sql.FieldNotNull(FieldLayout))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.DocumentPage {
	return predicate.DocumentPage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.DocumentPage {
	return predicate.DocumentPage(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DocumentPage) predicate.DocumentPage {
	return predicate.DocumentPage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DocumentPage) predicate.DocumentPage {
	return predicate.DocumentPage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DocumentPage) predicate.DocumentPage {
	return predicate.DocumentPage(sql.NotPredicates(p))
}

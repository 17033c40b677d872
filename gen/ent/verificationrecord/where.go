// Code generated by ent, DO NOT EDIT.

package verificationrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docufield/docufield/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLTE(FieldID, id))
}

// ResultID applies equality check predicate on the "result_id" field. It's identical to ResultIDEQ.
func ResultID(v uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldResultID, v))
}

// Verifier applies equality check predicate on the "verifier" field. It's identical to VerifierEQ.
func Verifier(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldVerifier, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldAction, v))
}

// CorrectedValue applies equality check predicate on the "corrected_value" field. It's identical to CorrectedValueEQ.
func CorrectedValue(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldCorrectedValue, v))
}

// Comment applies equality check predicate on the "comment" field. It's identical to CommentEQ.
func Comment(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldComment, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// ResultIDEQ applies the EQ predicate on the "result_id" field.
func ResultIDEQ(v uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldResultID, v))
}

// ResultIDNEQ applies the NEQ predicate on the "result_id" field.
func ResultIDNEQ(v uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNEQ(FieldResultID, v))
}

// ResultIDIn applies the In predicate on the "result_id" field.
func ResultIDIn(vs ...uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIn(FieldResultID, vs...))
}

// ResultIDNotIn applies the NotIn predicate on the "result_id" field.
func ResultIDNotIn(vs ...uuid.UUID) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotIn(FieldResultID, vs...))
}

// VerifierEQ applies the EQ predicate on the "verifier" field.
func VerifierEQ(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldVerifier, v))
}

// VerifierNEQ applies the NEQ predicate on the "verifier" field.
func VerifierNEQ(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNEQ(FieldVerifier, v))
}

// VerifierIn applies the In predicate on the "verifier" field.
func VerifierIn(vs ...string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIn(FieldVerifier, vs...))
}

// VerifierNotIn applies the NotIn predicate on the "verifier" field.
func VerifierNotIn(vs ...string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotIn(FieldVerifier, vs...))
}

// VerifierGT applies the GT predicate on the "verifier" field.
func VerifierGT(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGT(FieldVerifier, v))
}

// VerifierGTE applies the GTE predicate on the "verifier" field.
func VerifierGTE(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGTE(FieldVerifier, v))
}

// VerifierLT applies the LT predicate on the "verifier" field.
func VerifierLT(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLT(FieldVerifier, v))
}

// VerifierLTE applies the LTE predicate on the "verifier" field.
func VerifierLTE(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLTE(FieldVerifier, v))
}

// VerifierContains applies the Contains predicate on the "verifier" field.
func VerifierContains(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldContains(FieldVerifier, v))
}

// VerifierHasPrefix applies the HasPrefix predicate on the "verifier" field.
func VerifierHasPrefix(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldHasPrefix(FieldVerifier, v))
}

// VerifierHasSuffix applies the HasSuffix predicate on the "verifier" field.
func VerifierHasSuffix(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldHasSuffix(FieldVerifier, v))
}

// VerifierIsNil applies the IsNil predicate on the "verifier" field.
func VerifierIsNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIsNull(FieldVerifier))
}

// VerifierNotNil applies the NotNil predicate on the "verifier" field.
func VerifierNotNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotNull(FieldVerifier))
}

// VerifierEqualFold applies the EqualFold predicate on the "verifier" field.
func VerifierEqualFold(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEqualFold(FieldVerifier, v))
}

// VerifierContainsFold applies the ContainsFold predicate on the "verifier" field.
func VerifierContainsFold(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldContainsFold(FieldVerifier, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldContainsFold(FieldAction, v))
}

// CorrectedValueEQ applies the EQ predicate on the "corrected_value" field.
func CorrectedValueEQ(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldCorrectedValue, v))
}

// CorrectedValueNEQ applies the NEQ predicate on the "corrected_value" field.
func CorrectedValueNEQ(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNEQ(FieldCorrectedValue, v))
}

// CorrectedValueIn applies the In predicate on the "corrected_value" field.
func CorrectedValueIn(vs ...string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIn(FieldCorrectedValue, vs...))
}

// CorrectedValueNotIn applies the NotIn predicate on the "corrected_value" field.
func CorrectedValueNotIn(vs ...string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotIn(FieldCorrectedValue, vs...))
}

// CorrectedValueGT applies the GT predicate on the "corrected_value" field.
func CorrectedValueGT(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGT(FieldCorrectedValue, v))
}

// CorrectedValueGTE applies the GTE predicate on the "corrected_value" field.
func CorrectedValueGTE(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGTE(FieldCorrectedValue, v))
}

// CorrectedValueLT applies the LT predicate on the "corrected_value" field.
func CorrectedValueLT(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLT(FieldCorrectedValue, v))
}

// CorrectedValueLTE applies the LTE predicate on the "corrected_value" field.
func CorrectedValueLTE(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLTE(FieldCorrectedValue, v))
}

// CorrectedValueContains applies the Contains predicate on the "corrected_value" field.
func CorrectedValueContains(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldContains(FieldCorrectedValue, v))
}

// CorrectedValueHasPrefix applies the HasPrefix predicate on the "corrected_value" field.
func CorrectedValueHasPrefix(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldHasPrefix(FieldCorrectedValue, v))
}

// CorrectedValueHasSuffix applies the HasSuffix predicate on the "corrected_value" field.
func CorrectedValueHasSuffix(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldHasSuffix(FieldCorrectedValue, v))
}

// CorrectedValueIsNil applies the IsNil predicate on the "corrected_value" field.
func CorrectedValueIsNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIsNull(FieldCorrectedValue))
}

// CorrectedValueNotNil applies the NotNil predicate on the "corrected_value" field.
func CorrectedValueNotNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotNull(FieldCorrectedValue))
}

// CorrectedValueEqualFold applies the EqualFold predicate on the "corrected_value" field.
func CorrectedValueEqualFold(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEqualFold(FieldCorrectedValue, v))
}

// CorrectedValueContainsFold applies the ContainsFold predicate on the "corrected_value" field.
func CorrectedValueContainsFold(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldContainsFold(FieldCorrectedValue, v))
}

// CommentEQ applies the EQ predicate on the "comment" field.
func CommentEQ(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldComment, v))
}

// CommentNEQ applies the NEQ predicate on the "comment" field.
func CommentNEQ(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNEQ(FieldComment, v))
}

// CommentIn applies the In predicate on the "comment" field.
func CommentIn(vs ...string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIn(FieldComment, vs...))
}

// CommentNotIn applies the NotIn predicate on the "comment" field.
func CommentNotIn(vs ...string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotIn(FieldComment, vs...))
}

// CommentGT applies the GT predicate on the "comment" field.
func CommentGT(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGT(FieldComment, v))
}

// CommentGTE applies the GTE predicate on the "comment" field.
func CommentGTE(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGTE(FieldComment, v))
}

// CommentLT applies the LT predicate on the "comment" field.
func CommentLT(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLT(FieldComment, v))
}

// CommentLTE applies the LTE predicate on the "comment" field.
func CommentLTE(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLTE(FieldComment, v))
}

// CommentContains applies the Contains predicate on the "comment" field.
func CommentContains(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldContains(FieldComment, v))
}

// CommentHasPrefix applies the HasPrefix predicate on the "comment" field.
func CommentHasPrefix(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldHasPrefix(FieldComment, v))
}

// CommentHasSuffix applies the HasSuffix predicate on the "comment" field.
func CommentHasSuffix(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldHasSuffix(FieldComment, v))
}

// CommentIsNil applies the IsNil predicate on the "comment" field.
func CommentIsNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIsNull(FieldComment))
}

// CommentNotNil applies the NotNil predicate on the "comment" field.
func CommentNotNil() predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotNull(FieldComment))
}

// CommentEqualFold applies the EqualFold predicate on the "comment" field.
func CommentEqualFold(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEqualFold(FieldComment, v))
}

// CommentContainsFold applies the ContainsFold predicate on the "comment" field.
func CommentContainsFold(v string) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldContainsFold(FieldComment, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// HasResult applies the HasEdge predicate on the "result" edge.
func HasResult() predicate.VerificationRecord {
	return predicate.VerificationRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ResultTable, ResultColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResultWith applies the HasEdge predicate on the "result" edge with a given conditions (other predicates).
func HasResultWith(preds ...predicate.ExtractionResult) predicate.VerificationRecord {
	return predicate.VerificationRecord(func(s *sql.Selector) {
		step := newResultStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VerificationRecord) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VerificationRecord) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VerificationRecord) predicate.VerificationRecord {
	return predicate.VerificationRecord(sql.NotPredicates(p))
}

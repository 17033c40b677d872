// Code generated by ent, DO NOT EDIT.

package extractionresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/docufield/docufield/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldDocumentID, v))
}

// FieldDefID applies equality check predicate on the "field_def_id" field. It's identical to FieldDefIDEQ.
func FieldDefID(v int) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldFieldDefID, v))
}

// ValueRaw applies equality check predicate on the "value_raw" field. It's identical to ValueRawEQ.
func ValueRaw(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldValueRaw, v))
}

// NormalizedValue applies equality check predicate on the "normalized_value" field. It's identical to NormalizedValueEQ.
func NormalizedValue(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldNormalizedValue, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldConfidence, v))
}

// PageNum applies equality check predicate on the "page_num" field. It's identical to PageNumEQ.
func PageNum(v int) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldPageNum, v))
}

// ModelName applies equality check predicate on the "model_name" field. It's identical to ModelNameEQ.
func ModelName(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldModelName, v))
}

// ModelVersion applies equality check predicate on the "model_version" field. It's identical to ModelVersionEQ.
func ModelVersion(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldModelVersion, v))
}

// PromptVersion applies equality check predicate on the "prompt_version" field. It's identical to PromptVersionEQ.
func PromptVersion(v int) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldPromptVersion, v))
}

// Verified applies equality check predicate on the "verified" field. It's identical to VerifiedEQ.
func Verified(v bool) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldVerified, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldCreatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotIn(FieldDocumentID, vs...))
}

// FieldDefIDEQ applies the EQ predicate on the "field_def_id" field.
func FieldDefIDEQ(v int) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldFieldDefID, v))
}

// FieldDefIDNEQ applies the NEQ predicate on the "field_def_id" field.
func FieldDefIDNEQ(v int) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNEQ(FieldFieldDefID, v))
}

// FieldDefIDIn applies the In predicate on the "field_def_id" field.
func FieldDefIDIn(vs ...int) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIn(FieldFieldDefID, vs...))
}

// FieldDefIDNotIn applies the NotIn predicate on the "field_def_id" field.
func FieldDefIDNotIn(vs ...int) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotIn(FieldFieldDefID, vs...))
}

// ValueRawEQ applies the EQ predicate on the "value_raw" field.
func ValueRawEQ(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldValueRaw, v))
}

// ValueRawNEQ applies the NEQ predicate on the "value_raw" field.
func ValueRawNEQ(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNEQ(FieldValueRaw, v))
}

// ValueRawIn applies the In predicate on the "value_raw" field.
func ValueRawIn(vs ...string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIn(FieldValueRaw, vs...))
}

// ValueRawNotIn applies the NotIn predicate on the "value_raw" field.
func ValueRawNotIn(vs ...string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotIn(FieldValueRaw, vs...))
}

// ValueRawGT applies the GT predicate on the "value_raw" field.
func ValueRawGT(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGT(FieldValueRaw, v))
}

// ValueRawGTE applies the GTE predicate on the "value_raw" field.
func ValueRawGTE(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGTE(FieldValueRaw, v))
}

// ValueRawLT applies the LT predicate on the "value_raw" field.
func ValueRawLT(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLT(FieldValueRaw, v))
}

// ValueRawLTE applies the LTE predicate on the "value_raw" field.
func ValueRawLTE(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLTE(FieldValueRaw, v))
}

// ValueRawContains applies the Contains predicate on the "value_raw" field.
func ValueRawContains(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldContains(FieldValueRaw, v))
}

// ValueRawHasPrefix applies the HasPrefix predicate on the "value_raw" field.
func ValueRawHasPrefix(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldHasPrefix(FieldValueRaw, v))
}

// ValueRawHasSuffix applies the HasSuffix predicate on the "value_raw" field.
func ValueRawHasSuffix(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldHasSuffix(FieldValueRaw, v))
}

// ValueRawEqualFold applies the EqualFold predicate on the "value_raw" field.
func ValueRawEqualFold(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEqualFold(FieldValueRaw, v))
}

// ValueRawContainsFold applies the ContainsFold predicate on the "value_raw" field.
func ValueRawContainsFold(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldContainsFold(FieldValueRaw, v))
}

// NormalizedValueEQ applies the EQ predicate on the "normalized_value" field.
func NormalizedValueEQ(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldNormalizedValue, v))
}

// NormalizedValueNEQ applies the NEQ predicate on the "normalized_value" field.
func NormalizedValueNEQ(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNEQ(FieldNormalizedValue, v))
}

// NormalizedValueIn applies the In predicate on the "normalized_value" field.
func NormalizedValueIn(vs ...string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIn(FieldNormalizedValue, vs...))
}

// NormalizedValueNotIn applies the NotIn predicate on the "normalized_value" field.
func NormalizedValueNotIn(vs ...string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotIn(FieldNormalizedValue, vs...))
}

// NormalizedValueGT applies the GT predicate on the "normalized_value" field.
func NormalizedValueGT(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGT(FieldNormalizedValue, v))
}

// NormalizedValueGTE applies the GTE predicate on the "normalized_value" field.
func NormalizedValueGTE(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGTE(FieldNormalizedValue, v))
}

// NormalizedValueLT applies the LT predicate on the "normalized_value" field.
func NormalizedValueLT(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLT(FieldNormalizedValue, v))
}

// NormalizedValueLTE applies the LTE predicate on the "normalized_value" field.
func NormalizedValueLTE(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLTE(FieldNormalizedValue, v))
}

// NormalizedValueContains applies the Contains predicate on the "normalized_value" field.
func NormalizedValueContains(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldContains(FieldNormalizedValue, v))
}

// NormalizedValueHasPrefix applies the HasPrefix predicate on the "normalized_value" field.
func NormalizedValueHasPrefix(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldHasPrefix(FieldNormalizedValue, v))
}

// NormalizedValueHasSuffix applies the HasSuffix predicate on the "normalized_value" field.
func NormalizedValueHasSuffix(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldHasSuffix(FieldNormalizedValue, v))
}

// NormalizedValueIsNil applies the IsNil predicate on the "normalized_value" field.
func NormalizedValueIsNil() predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIsNull(FieldNormalizedValue))
}

// NormalizedValueNotNil applies the NotNil predicate on the "normalized_value" field.
func NormalizedValueNotNil() predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotNull(FieldNormalizedValue))
}

// NormalizedValueEqualFold applies the EqualFold predicate on the "normalized_value" field.
func NormalizedValueEqualFold(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEqualFold(FieldNormalizedValue, v))
}

// NormalizedValueContainsFold applies the ContainsFold predicate on the "normalized_value" field.
func NormalizedValueContainsFold(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldContainsFold(FieldNormalizedValue, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLTE(FieldConfidence, v))
}

// PageNumEQ applies the EQ predicate on the "page_num" field.
func PageNumEQ(v int) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldPageNum, v))
}

// PageNumNEQ applies the NEQ predicate on the "page_num" field.
func PageNumNEQ(v int) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNEQ(FieldPageNum, v))
}

// PageNumIn applies the In predicate on the "page_num" field.
func PageNumIn(vs ...int) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIn(FieldPageNum, vs...))
}

// PageNumNotIn applies the NotIn predicate on the "page_num" field.
func PageNumNotIn(vs ...int) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotIn(FieldPageNum, vs...))
}

// PageNumGT applies the GT predicate on the "page_num" field.
func PageNumGT(v int) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGT(FieldPageNum, v))
}

// PageNumGTE applies the GTE predicate on the "page_num" field.
func PageNumGTE(v int) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGTE(FieldPageNum, v))
}

// PageNumLT applies the LT predicate on the "page_num" field.
func PageNumLT(v int) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLT(FieldPageNum, v))
}

// PageNumLTE applies the LTE predicate on the "page_num" field.
func PageNumLTE(v int) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLTE(FieldPageNum, v))
}

// PageNumIsNil applies the IsNil predicate on the "page_num" field.
func PageNumIsNil() predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIsNull(FieldPageNum))
}

// PageNumNotNil applies the NotNil predicate on the "page_num" field.
func PageNumNotNil() predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotNull(FieldPageNum))
}

// BboxIsNil applies the IsNil predicate on the "bbox" field.
func BboxIsNil() predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIsNull(FieldBbox))
}

// BboxNotNil applies the NotNil predicate on the "bbox" field.
func BboxNotNil() predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotNull(FieldBbox))
}

// ModelNameEQ applies the EQ predicate on the "model_name" field.
func ModelNameEQ(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldModelName, v))
}

// ModelNameNEQ applies the NEQ predicate on the "model_name" field.
func ModelNameNEQ(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNEQ(FieldModelName, v))
}

// ModelNameIn applies the In predicate on the "model_name" field.
func ModelNameIn(vs ...string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIn(FieldModelName, vs...))
}

// ModelNameNotIn applies the NotIn predicate on the "model_name" field.
func ModelNameNotIn(vs ...string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotIn(FieldModelName, vs...))
}

// ModelNameGT applies the GT predicate on the "model_name" field.
func ModelNameGT(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGT(FieldModelName, v))
}

// ModelNameGTE applies the GTE predicate on the "model_name" field.
func ModelNameGTE(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGTE(FieldModelName, v))
}

// ModelNameLT applies the LT predicate on the "model_name" field.
func ModelNameLT(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLT(FieldModelName, v))
}

// ModelNameLTE applies the LTE predicate on the "model_name" field.
func ModelNameLTE(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLTE(FieldModelName, v))
}

// ModelNameContains applies the Contains predicate on the "model_name" field.
func ModelNameContains(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldContains(FieldModelName, v))
}

// ModelNameHasPrefix applies the HasPrefix predicate on the "model_name" field.
func ModelNameHasPrefix(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldHasPrefix(FieldModelName, v))
}

// ModelNameHasSuffix applies the HasSuffix predicate on the "model_name" field.
func ModelNameHasSuffix(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldHasSuffix(FieldModelName, v))
}

// ModelNameEqualFold applies the EqualFold predicate on the "model_name" field.
func ModelNameEqualFold(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEqualFold(FieldModelName, v))
}

// ModelNameContainsFold applies the ContainsFold predicate on the "model_name" field.
func ModelNameContainsFold(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldContainsFold(FieldModelName, v))
}

// ModelVersionEQ applies the EQ predicate on the "model_version" field.
func ModelVersionEQ(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldModelVersion, v))
}

// ModelVersionNEQ applies the NEQ predicate on the "model_version" field.
func ModelVersionNEQ(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNEQ(FieldModelVersion, v))
}

// ModelVersionIn applies the In predicate on the "model_version" field.
func ModelVersionIn(vs ...string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIn(FieldModelVersion, vs...))
}

// ModelVersionNotIn applies the NotIn predicate on the "model_version" field.
func ModelVersionNotIn(vs ...string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotIn(FieldModelVersion, vs...))
}

// ModelVersionGT applies the GT predicate on the "model_version" field.
func ModelVersionGT(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGT(FieldModelVersion, v))
}

// ModelVersionGTE applies the GTE predicate on the "model_version" field.
func ModelVersionGTE(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGTE(FieldModelVersion, v))
}

// ModelVersionLT applies the LT predicate on the "model_version" field.
func ModelVersionLT(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLT(FieldModelVersion, v))
}

// ModelVersionLTE applies the LTE predicate on the "model_version" field.
func ModelVersionLTE(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLTE(FieldModelVersion, v))
}

// ModelVersionContains applies the Contains predicate on the "model_version" field.
func ModelVersionContains(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldContains(FieldModelVersion, v))
}

// ModelVersionHasPrefix applies the HasPrefix predicate on the "model_version" field.
func ModelVersionHasPrefix(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldHasPrefix(FieldModelVersion, v))
}

// ModelVersionHasSuffix applies the HasSuffix predicate on the "model_version" field.
func ModelVersionHasSuffix(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldHasSuffix(FieldModelVersion, v))
}

// ModelVersionEqualFold applies the EqualFold predicate on the "model_version" field.
func ModelVersionEqualFold(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEqualFold(FieldModelVersion, v))
}

// ModelVersionContainsFold applies the ContainsFold predicate on the "model_version" field.
func ModelVersionContainsFold(v string) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldContainsFold(FieldModelVersion, v))
}

// PromptVersionEQ applies the EQ predicate on the "prompt_version" field.
func PromptVersionEQ(v int) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldPromptVersion, v))
}

// PromptVersionNEQ applies the NEQ predicate on the "prompt_version" field.
func PromptVersionNEQ(v int) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNEQ(FieldPromptVersion, v))
}

// PromptVersionIn applies the In predicate on the "prompt_version" field.
func PromptVersionIn(vs ...int) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIn(FieldPromptVersion, vs...))
}

// PromptVersionNotIn applies the NotIn predicate on the "prompt_version" field.
func PromptVersionNotIn(vs ...int) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotIn(FieldPromptVersion, vs...))
}

// PromptVersionGT applies the GT predicate on the "prompt_version" field.
func PromptVersionGT(v int) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGT(FieldPromptVersion, v))
}

// PromptVersionGTE applies the GTE predicate on the "prompt_version" field.
func PromptVersionGTE(v int) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGTE(FieldPromptVersion, v))
}

// PromptVersionLT applies the LT predicate on the "prompt_version" field.
func PromptVersionLT(v int) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLT(FieldPromptVersion, v))
}

// PromptVersionLTE applies the LTE predicate on the "prompt_version" field.
func PromptVersionLTE(v int) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLTE(FieldPromptVersion, v))
}

// VerifiedEQ applies the EQ predicate on the "verified" field.
func VerifiedEQ(v bool) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldVerified, v))
}

// VerifiedNEQ applies the NEQ predicate on the "verified" field.
func VerifiedNEQ(v bool) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNEQ(FieldVerified, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.ExtractionResult {
	return predicate.ExtractionResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.ExtractionResult {
	return predicate.ExtractionResult(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFieldDef applies the HasEdge predicate on the "field_def" edge.
func HasFieldDef() predicate.ExtractionResult {
	return predicate.ExtractionResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FieldDefTable, FieldDefColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFieldDefWith applies the HasEdge predicate on the "field_def" edge with a given conditions (other predicates).
func HasFieldDefWith(preds ...predicate.FieldDefinition) predicate.ExtractionResult {
	return predicate.ExtractionResult(func(s *sql.Selector) {
		step := newFieldDefStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasVerifications applies the HasEdge predicate on the "verifications" edge.
func HasVerifications() predicate.ExtractionResult {
	return predicate.ExtractionResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VerificationsTable, VerificationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVerificationsWith applies the HasEdge predicate on the "verifications" edge with a given conditions (other predicates).
func HasVerificationsWith(preds ...predicate.VerificationRecord) predicate.ExtractionResult {
	return predicate.ExtractionResult(func(s *sql.Selector) {
		step := newVerificationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractionResult) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractionResult) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractionResult) predicate.ExtractionResult {
	return predicate.ExtractionResult(sql.NotPredicates(p))
}

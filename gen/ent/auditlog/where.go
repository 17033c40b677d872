// Code generated by ent, DO NOT EDIT.

package auditlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/docufield/docufield/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldLTE(FieldID, id))
}

// Actor applies equality check predicate on the "actor" field. It's identical to ActorEQ.
func Actor(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldActor, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldAction, v))
}

// EntityKind applies equality check predicate on the "entity_kind" field. It's identical to EntityKindEQ.
func EntityKind(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldEntityKind, v))
}

// EntityID applies equality check predicate on the "entity_id" field. It's identical to EntityIDEQ.
func EntityID(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldEntityID, v))
}

// PromptText applies equality check predicate on the "prompt_text" field. It's identical to PromptTextEQ.
func PromptText(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldPromptText, v))
}

// ModelResponse applies equality check predicate on the "model_response" field. It's identical to ModelResponseEQ.
func ModelResponse(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldModelResponse, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldCreatedAt, v))
}

// ActorEQ applies the EQ predicate on the "actor" field.
func ActorEQ(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldActor, v))
}

// ActorNEQ applies the NEQ predicate on the "actor" field.
func ActorNEQ(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNEQ(FieldActor, v))
}

// ActorIn applies the In predicate on the "actor" field.
func ActorIn(vs ...string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldIn(FieldActor, vs...))
}

// ActorNotIn applies the NotIn predicate on the "actor" field.
func ActorNotIn(vs ...string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNotIn(FieldActor, vs...))
}

// ActorGT applies the GT predicate on the "actor" field.
func ActorGT(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldGT(FieldActor, v))
}

// ActorGTE applies the GTE predicate on the "actor" field.
func ActorGTE(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldGTE(FieldActor, v))
}

// ActorLT applies the LT predicate on the "actor" field.
func ActorLT(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldLT(FieldActor, v))
}

// ActorLTE applies the LTE predicate on the "actor" field.
func ActorLTE(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldLTE(FieldActor, v))
}

// ActorContains applies the Contains predicate on the "actor" field.
func ActorContains(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldContains(FieldActor, v))
}

// ActorHasPrefix applies the HasPrefix predicate on the "actor" field.
func ActorHasPrefix(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldHasPrefix(FieldActor, v))
}

// ActorHasSuffix applies the HasSuffix predicate on the "actor" field.
func ActorHasSuffix(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldHasSuffix(FieldActor, v))
}

// ActorIsNil applies the IsNil predicate on the "actor" field.
func ActorIsNil() predicate.AuditLog {
	return predicate.AuditLog(sql.FieldIsNull(FieldActor))
}

// ActorNotNil applies the NotNil predicate on the "actor" field.
func ActorNotNil() predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNotNull(FieldActor))
}

// ActorEqualFold applies the EqualFold predicate on the "actor" field.
func ActorEqualFold(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEqualFold(FieldActor, v))
}

// ActorContainsFold applies the ContainsFold predicate on the "actor" field.
func ActorContainsFold(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldContainsFold(FieldActor, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldContainsFold(FieldAction, v))
}

// EntityKindEQ applies the EQ predicate on the "entity_kind" field.
func EntityKindEQ(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldEntityKind, v))
}

// EntityKindNEQ applies the NEQ predicate on the "entity_kind" field.
func EntityKindNEQ(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNEQ(FieldEntityKind, v))
}

// EntityKindIn applies the In predicate on the "entity_kind" field.
func EntityKindIn(vs ...string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldIn(FieldEntityKind, vs...))
}

// EntityKindNotIn applies the NotIn predicate on the "entity_kind" field.
func EntityKindNotIn(vs ...string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNotIn(FieldEntityKind, vs...))
}

// EntityKindGT applies the GT predicate on the "entity_kind" field.
func EntityKindGT(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldGT(FieldEntityKind, v))
}

// EntityKindGTE applies the GTE predicate on the "entity_kind" field.
func EntityKindGTE(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldGTE(FieldEntityKind, v))
}

// EntityKindLT applies the LT predicate on the "entity_kind" field.
func EntityKindLT(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldLT(FieldEntityKind, v))
}

// EntityKindLTE applies the LTE predicate on the "entity_kind" field.
func EntityKindLTE(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldLTE(FieldEntityKind, v))
}

// EntityKindContains applies the Contains predicate on the "entity_kind" field.
func EntityKindContains(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldContains(FieldEntityKind, v))
}

// EntityKindHasPrefix applies the HasPrefix predicate on the "entity_kind" field.
func EntityKindHasPrefix(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldHasPrefix(FieldEntityKind, v))
}

// EntityKindHasSuffix applies the HasSuffix predicate on the "entity_kind" field.
func EntityKindHasSuffix(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldHasSuffix(FieldEntityKind, v))
}

// EntityKindEqualFold applies the EqualFold predicate on the "entity_kind" field.
func EntityKindEqualFold(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEqualFold(FieldEntityKind, v))
}

// EntityKindContainsFold applies the ContainsFold predicate on the "entity_kind" field.
func EntityKindContainsFold(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldContainsFold(FieldEntityKind, v))
}

// EntityIDEQ applies the EQ predicate on the "entity_id" field.
func EntityIDEQ(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldEntityID, v))
}

// EntityIDNEQ applies the NEQ predicate on the "entity_id" field.
func EntityIDNEQ(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNEQ(FieldEntityID, v))
}

// EntityIDIn applies the In predicate on the "entity_id" field.
func EntityIDIn(vs ...string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldIn(FieldEntityID, vs...))
}

// EntityIDNotIn applies the NotIn predicate on the "entity_id" field.
func EntityIDNotIn(vs ...string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNotIn(FieldEntityID, vs...))
}

// EntityIDGT applies the GT predicate on the "entity_id" field.
func EntityIDGT(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldGT(FieldEntityID, v))
}

// EntityIDGTE applies the GTE predicate on the "entity_id" field.
func EntityIDGTE(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldGTE(FieldEntityID, v))
}

// EntityIDLT applies the LT predicate on the "entity_id" field.
func EntityIDLT(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldLT(FieldEntityID, v))
}

// EntityIDLTE applies the LTE predicate on the "entity_id" field.
func EntityIDLTE(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldLTE(FieldEntityID, v))
}

// EntityIDContains applies the Contains predicate on the "entity_id" field.
func EntityIDContains(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldContains(FieldEntityID, v))
}

// EntityIDHasPrefix applies the HasPrefix predicate on the "entity_id" field.
func EntityIDHasPrefix(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldHasPrefix(FieldEntityID, v))
}

// EntityIDHasSuffix applies the HasSuffix predicate on the "entity_id" field.
func EntityIDHasSuffix(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldHasSuffix(FieldEntityID, v))
}

// EntityIDIsNil applies the IsNil predicate on the "entity_id" field.
func EntityIDIsNil() predicate.AuditLog {
	return predicate.AuditLog(sql.FieldIsNull(FieldEntityID))
}

// EntityIDNotNil applies the NotNil predicate on the "entity_id" field.
func EntityIDNotNil() predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNotNull(FieldEntityID))
}

// EntityIDEqualFold applies the EqualFold predicate on the "entity_id" field.
func EntityIDEqualFold(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEqualFold(FieldEntityID, v))
}

// EntityIDContainsFold applies the ContainsFold predicate on the "entity_id" field.
func EntityIDContainsFold(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldContainsFold(FieldEntityID, v))
}

// DetailsIsNil applies the IsNil predicate on the "details" field.
func DetailsIsNil() predicate.AuditLog {
	return predicate.AuditLog(sql.FieldIsNull(FieldDetails))
}

// DetailsNotNil applies the NotNil predicate on the "details" field.
func DetailsNotNil() predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNotNull(FieldDetails))
}

// PromptTextEQ applies the EQ predicate on the "prompt_text" field.
func PromptTextEQ(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldPromptText, v))
}

// PromptTextNEQ applies the NEQ predicate on the "prompt_text" field.
func PromptTextNEQ(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNEQ(FieldPromptText, v))
}

// PromptTextIn applies the In predicate on the "prompt_text" field.
func PromptTextIn(vs ...string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldIn(FieldPromptText, vs...))
}

// PromptTextNotIn applies the NotIn predicate on the "prompt_text" field.
func PromptTextNotIn(vs ...string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNotIn(FieldPromptText, vs...))
}

// PromptTextGT applies the GT predicate on the "prompt_text" field.
func PromptTextGT(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldGT(FieldPromptText, v))
}

// PromptTextGTE applies the GTE predicate on the "prompt_text" field.
func PromptTextGTE(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldGTE(FieldPromptText, v))
}

// PromptTextLT applies the LT predicate on the "prompt_text" field.
func PromptTextLT(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldLT(FieldPromptText, v))
}

// PromptTextLTE applies the LTE predicate on the "prompt_text" field.
func PromptTextLTE(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldLTE(FieldPromptText, v))
}

// PromptTextContains applies the Contains predicate on the "prompt_text" field.
func PromptTextContains(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldContains(FieldPromptText, v))
}

// PromptTextHasPrefix applies the HasPrefix predicate on the "prompt_text" field.
func PromptTextHasPrefix(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldHasPrefix(FieldPromptText, v))
}

// PromptTextHasSuffix applies the HasSuffix predicate on the "prompt_text" field.
func PromptTextHasSuffix(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldHasSuffix(FieldPromptText, v))
}

// PromptTextIsNil applies the IsNil predicate on the "prompt_text" field.
func PromptTextIsNil() predicate.AuditLog {
	return predicate.AuditLog(sql.FieldIsNull(FieldPromptText))
}

// PromptTextNotNil applies the NotNil predicate on the "prompt_text" field.
func PromptTextNotNil() predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNotNull(FieldPromptText))
}

// PromptTextEqualFold applies the EqualFold predicate on the "prompt_text" field.
func PromptTextEqualFold(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEqualFold(FieldPromptText, v))
}

// PromptTextContainsFold applies the ContainsFold predicate on the "prompt_text" field.
func PromptTextContainsFold(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldContainsFold(FieldPromptText, v))
}

// ModelResponseEQ applies the EQ predicate on the "model_response" field.
func ModelResponseEQ(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldModelResponse, v))
}

// ModelResponseNEQ applies the NEQ predicate on the "model_response" field.
func ModelResponseNEQ(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNEQ(FieldModelResponse, v))
}

// ModelResponseIn applies the In predicate on the "model_response" field.
func ModelResponseIn(vs ...string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldIn(FieldModelResponse, vs...))
}

// ModelResponseNotIn applies the NotIn predicate on the "model_response" field.
func ModelResponseNotIn(vs ...string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNotIn(FieldModelResponse, vs...))
}

// ModelResponseGT applies the GT predicate on the "model_response" field.
func ModelResponseGT(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldGT(FieldModelResponse, v))
}

// ModelResponseGTE applies the GTE predicate on the "model_response" field.
func ModelResponseGTE(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldGTE(FieldModelResponse, v))
}

// ModelResponseLT applies the LT predicate on the "model_response" field.
func ModelResponseLT(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldLT(FieldModelResponse, v))
}

// ModelResponseLTE applies the LTE predicate on the "model_response" field.
func ModelResponseLTE(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldLTE(FieldModelResponse, v))
}

// ModelResponseContains applies the Contains predicate on the "model_response" field.
func ModelResponseContains(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldContains(FieldModelResponse, v))
}

// ModelResponseHasPrefix applies the HasPrefix predicate on the "model_response" field.
func ModelResponseHasPrefix(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldHasPrefix(FieldModelResponse, v))
}

// ModelResponseHasSuffix applies the HasSuffix predicate on the "model_response" field.
func ModelResponseHasSuffix(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldHasSuffix(FieldModelResponse, v))
}

// ModelResponseIsNil applies the IsNil predicate on the "model_response" field.
func ModelResponseIsNil() predicate.AuditLog {
	return predicate.AuditLog(sql.FieldIsNull(FieldModelResponse))
}

// ModelResponseNotNil applies the NotNil predicate on the "model_response" field.
func ModelResponseNotNil() predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNotNull(FieldModelResponse))
}

// ModelResponseEqualFold applies the EqualFold predicate on the "model_response" field.
func ModelResponseEqualFold(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEqualFold(FieldModelResponse, v))
}

// ModelResponseContainsFold applies the ContainsFold predicate on the "model_response" field.
func ModelResponseContainsFold(v string) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldContainsFold(FieldModelResponse, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AuditLog {
	return predicate.AuditLog(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AuditLog) predicate.AuditLog {
	return predicate.AuditLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AuditLog) predicate.AuditLog {
	return predicate.AuditLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AuditLog) predicate.AuditLog {
	return predicate.AuditLog(sql.NotPredicates(p))
}

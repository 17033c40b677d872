// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/docufield/docufield/gen/ent/document"
	"github.com/docufield/docufield/gen/ent/extractionresult"
	"github.com/docufield/docufield/gen/ent/fielddefinition"
	"github.com/docufield/docufield/gen/ent/predicate"
	"github.com/docufield/docufield/gen/ent/verificationrecord"
	"github.com/google/uuid"
)

// ExtractionResultUpdate is the builder for updating ExtractionResult entities.
type ExtractionResultUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionResultMutation
}

// Where appends a list predicates to the ExtractionResultUpdate builder.
func (_u *ExtractionResultUpdate) Where(ps ...predicate.ExtractionResult) *ExtractionResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractionResultUpdate) SetDocumentID(v uuid.UUID) *ExtractionResultUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableDocumentID(v *uuid.UUID) *ExtractionResultUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetFieldDefID sets the "field_def_id" field.
func (_u *ExtractionResultUpdate) SetFieldDefID(v int) *ExtractionResultUpdate {
	_u.mutation.SetFieldDefID(v)
	return _u
}

// SetNillableFieldDefID sets the "field_def_id" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableFieldDefID(v *int) *ExtractionResultUpdate {
	if v != nil {
		_u.SetFieldDefID(*v)
	}
	return _u
}

// SetValueRaw sets the "value_raw" field.
func (_u *ExtractionResultUpdate) SetValueRaw(v string) *ExtractionResultUpdate {
	_u.mutation.SetValueRaw(v)
	return _u
}

// SetNillableValueRaw sets the "value_raw" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableValueRaw(v *string) *ExtractionResultUpdate {
	if v != nil {
		_u.SetValueRaw(*v)
	}
	return _u
}

// SetNormalizedValue sets the "normalized_value" field.
func (_u *ExtractionResultUpdate) SetNormalizedValue(v string) *ExtractionResultUpdate {
	_u.mutation.SetNormalizedValue(v)
	return _u
}

// SetNillableNormalizedValue sets the "normalized_value" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableNormalizedValue(v *string) *ExtractionResultUpdate {
	if v != nil {
		_u.SetNormalizedValue(*v)
	}
	return _u
}

// ClearNormalizedValue clears the value of the "normalized_value" field.
func (_u *ExtractionResultUpdate) ClearNormalizedValue() *ExtractionResultUpdate {
	_u.mutation.ClearNormalizedValue()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ExtractionResultUpdate) SetConfidence(v float64) *ExtractionResultUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableConfidence(v *float64) *ExtractionResultUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ExtractionResultUpdate) AddConfidence(v float64) *ExtractionResultUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetPageNum sets the "page_num" field.
func (_u *ExtractionResultUpdate) SetPageNum(v int) *ExtractionResultUpdate {
	_u.mutation.ResetPageNum()
	_u.mutation.SetPageNum(v)
	return _u
}

// SetNillablePageNum sets the "page_num" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillablePageNum(v *int) *ExtractionResultUpdate {
	if v != nil {
		_u.SetPageNum(*v)
	}
	return _u
}

// AddPageNum adds value to the "page_num" field.
func (_u *ExtractionResultUpdate) AddPageNum(v int) *ExtractionResultUpdate {
	_u.mutation.AddPageNum(v)
	return _u
}

// ClearPageNum clears the value of the "page_num" field.
func (_u *ExtractionResultUpdate) ClearPageNum() *ExtractionResultUpdate {
	_u.mutation.ClearPageNum()
	return _u
}

// SetBbox sets the "bbox" field.
func (_u *ExtractionResultUpdate) SetBbox(v json.RawMessage) *ExtractionResultUpdate {
	_u.mutation.SetBbox(v)
	return _u
}

// AppendBbox appends value to the "bbox" field.
func (_u *ExtractionResultUpdate) AppendBbox(v json.RawMessage) *ExtractionResultUpdate {
	_u.mutation.AppendBbox(v)
	return _u
}

// ClearBbox clears the value of the "bbox" field.
func (_u *ExtractionResultUpdate) ClearBbox() *ExtractionResultUpdate {
	_u.mutation.ClearBbox()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *ExtractionResultUpdate) SetModelName(v string) *ExtractionResultUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableModelName(v *string) *ExtractionResultUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetModelVersion sets the "model_version" field.
func (_u *ExtractionResultUpdate) SetModelVersion(v string) *ExtractionResultUpdate {
	_u.mutation.SetModelVersion(v)
	return _u
}

// SetNillableModelVersion sets the "model_version" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableModelVersion(v *string) *ExtractionResultUpdate {
	if v != nil {
		_u.SetModelVersion(*v)
	}
	return _u
}

// SetPromptVersion sets the "prompt_version" field.
func (_u *ExtractionResultUpdate) SetPromptVersion(v int) *ExtractionResultUpdate {
	_u.mutation.ResetPromptVersion()
	_u.mutation.SetPromptVersion(v)
	return _u
}

// SetNillablePromptVersion sets the "prompt_version" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillablePromptVersion(v *int) *ExtractionResultUpdate {
	if v != nil {
		_u.SetPromptVersion(*v)
	}
	return _u
}

// AddPromptVersion adds value to the "prompt_version" field.
func (_u *ExtractionResultUpdate) AddPromptVersion(v int) *ExtractionResultUpdate {
	_u.mutation.AddPromptVersion(v)
	return _u
}

// SetVerified sets the "verified" field.
func (_u *ExtractionResultUpdate) SetVerified(v bool) *ExtractionResultUpdate {
	_u.mutation.SetVerified(v)
	return _u
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableVerified(v *bool) *ExtractionResultUpdate {
	if v != nil {
		_u.SetVerified(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ExtractionResultUpdate) SetDocument(v *Document) *ExtractionResultUpdate {
	return _u.SetDocumentID(v.ID)
}

// SetFieldDef sets the "field_def" edge to the FieldDefinition entity.
func (_u *ExtractionResultUpdate) SetFieldDef(v *FieldDefinition) *ExtractionResultUpdate {
	return _u.SetFieldDefID(v.ID)
}

// AddVerificationIDs adds the "verifications" edge to the VerificationRecord entity by IDs.
func (_u *ExtractionResultUpdate) AddVerificationIDs(ids ...uuid.UUID) *ExtractionResultUpdate {
	_u.mutation.AddVerificationIDs(ids...)
	return _u
}

// AddVerifications adds the "verifications" edges to the VerificationRecord entity.
func (_u *ExtractionResultUpdate) AddVerifications(v ...*VerificationRecord) *ExtractionResultUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVerificationIDs(ids...)
}

// Mutation returns the ExtractionResultMutation object of the builder.
func (_u *ExtractionResultUpdate) Mutation() *ExtractionResultMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ExtractionResultUpdate) ClearDocument() *ExtractionResultUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// ClearFieldDef clears the "field_def" edge to the FieldDefinition entity.
func (_u *ExtractionResultUpdate) ClearFieldDef() *ExtractionResultUpdate {
	_u.mutation.ClearFieldDef()
	return _u
}

// ClearVerifications clears all "verifications" edges to the VerificationRecord entity.
func (_u *ExtractionResultUpdate) ClearVerifications() *ExtractionResultUpdate {
	_u.mutation.ClearVerifications()
	return _u
}

// RemoveVerificationIDs removes the "verifications" edge to VerificationRecord entities by IDs.
func (_u *ExtractionResultUpdate) RemoveVerificationIDs(ids ...uuid.UUID) *ExtractionResultUpdate {
	_u.mutation.RemoveVerificationIDs(ids...)
	return _u
}

// RemoveVerifications removes "verifications" edges to VerificationRecord entities.
func (_u *ExtractionResultUpdate) RemoveVerifications(v ...*VerificationRecord) *ExtractionResultUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVerificationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionResultUpdate) check() error {
	if v, ok := _u.mutation.Confidence(); ok {
		if err := extractionresult.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "ExtractionResult.confidence": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionResult.document"`)
	}
	if _u.mutation.FieldDefCleared() && len(_u.mutation.FieldDefIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionResult.field_def"`)
	}
	return nil
}

func (_u *ExtractionResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionresult.Table, extractionresult.Columns, sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ValueRaw(); ok {
		_spec.SetField(extractionresult.FieldValueRaw, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedValue(); ok {
		_spec.SetField(extractionresult.FieldNormalizedValue, field.TypeString, value)
	}
	if _u.mutation.NormalizedValueCleared() {
		_spec.ClearField(extractionresult.FieldNormalizedValue, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(extractionresult.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(extractionresult.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PageNum(); ok {
		_spec.SetField(extractionresult.FieldPageNum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageNum(); ok {
		_spec.AddField(extractionresult.FieldPageNum, field.TypeInt, value)
	}
	if _u.mutation.PageNumCleared() {
		_spec.ClearField(extractionresult.FieldPageNum, field.TypeInt)
	}
	if value, ok := _u.mutation.Bbox(); ok {
		_spec.SetField(extractionresult.FieldBbox, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBbox(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionresult.FieldBbox, value)
		})
	}
	if _u.mutation.BboxCleared() {
		_spec.ClearField(extractionresult.FieldBbox, field.TypeJSON)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(extractionresult.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelVersion(); ok {
		_spec.SetField(extractionresult.FieldModelVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptVersion(); ok {
		_spec.SetField(extractionresult.FieldPromptVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptVersion(); ok {
		_spec.AddField(extractionresult.FieldPromptVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Verified(); ok {
		_spec.SetField(extractionresult.FieldVerified, field.TypeBool, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionresult.DocumentTable,
			Columns: []string{extractionresult.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionresult.DocumentTable,
			Columns: []string{extractionresult.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FieldDefCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionresult.FieldDefTable,
			Columns: []string{extractionresult.FieldDefColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fielddefinition.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldDefIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionresult.FieldDefTable,
			Columns: []string{extractionresult.FieldDefColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fielddefinition.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VerificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionresult.VerificationsTable,
			Columns: []string{extractionresult.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationrecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVerificationsIDs(); len(nodes) > 0 && !_u.mutation.VerificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionresult.VerificationsTable,
			Columns: []string{extractionresult.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VerificationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionresult.VerificationsTable,
			Columns: []string{extractionresult.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionResultUpdateOne is the builder for updating a single ExtractionResult entity.
type ExtractionResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionResultMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractionResultUpdateOne) SetDocumentID(v uuid.UUID) *ExtractionResultUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableDocumentID(v *uuid.UUID) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetFieldDefID sets the "field_def_id" field.
func (_u *ExtractionResultUpdateOne) SetFieldDefID(v int) *ExtractionResultUpdateOne {
	_u.mutation.SetFieldDefID(v)
	return _u
}

// SetNillableFieldDefID sets the "field_def_id" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableFieldDefID(v *int) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetFieldDefID(*v)
	}
	return _u
}

// SetValueRaw sets the "value_raw" field.
func (_u *ExtractionResultUpdateOne) SetValueRaw(v string) *ExtractionResultUpdateOne {
	_u.mutation.SetValueRaw(v)
	return _u
}

// SetNillableValueRaw sets the "value_raw" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableValueRaw(v *string) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetValueRaw(*v)
	}
	return _u
}

// SetNormalizedValue sets the "normalized_value" field.
func (_u *ExtractionResultUpdateOne) SetNormalizedValue(v string) *ExtractionResultUpdateOne {
	_u.mutation.SetNormalizedValue(v)
	return _u
}

// SetNillableNormalizedValue sets the "normalized_value" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableNormalizedValue(v *string) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetNormalizedValue(*v)
	}
	return _u
}

// ClearNormalizedValue clears the value of the "normalized_value" field.
func (_u *ExtractionResultUpdateOne) ClearNormalizedValue() *ExtractionResultUpdateOne {
	_u.mutation.ClearNormalizedValue()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ExtractionResultUpdateOne) SetConfidence(v float64) *ExtractionResultUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableConfidence(v *float64) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ExtractionResultUpdateOne) AddConfidence(v float64) *ExtractionResultUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetPageNum sets the "page_num" field.
func (_u *ExtractionResultUpdateOne) SetPageNum(v int) *ExtractionResultUpdateOne {
	_u.mutation.ResetPageNum()
	_u.mutation.SetPageNum(v)
	return _u
}

// SetNillablePageNum sets the "page_num" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillablePageNum(v *int) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetPageNum(*v)
	}
	return _u
}

// AddPageNum adds value to the "page_num" field.
func (_u *ExtractionResultUpdateOne) AddPageNum(v int) *ExtractionResultUpdateOne {
	_u.mutation.AddPageNum(v)
	return _u
}

// ClearPageNum clears the value of the "page_num" field.
func (_u *ExtractionResultUpdateOne) ClearPageNum() *ExtractionResultUpdateOne {
	_u.mutation.ClearPageNum()
	return _u
}

// SetBbox sets the "bbox" field.
func (_u *ExtractionResultUpdateOne) SetBbox(v json.RawMessage) *ExtractionResultUpdateOne {
	_u.mutation.SetBbox(v)
	return _u
}

// AppendBbox appends value to the "bbox" field.
func (_u *ExtractionResultUpdateOne) AppendBbox(v json.RawMessage) *ExtractionResultUpdateOne {
	_u.mutation.AppendBbox(v)
	return _u
}

// ClearBbox clears the value of the "bbox" field.
func (_u *ExtractionResultUpdateOne) ClearBbox() *ExtractionResultUpdateOne {
	_u.mutation.ClearBbox()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *ExtractionResultUpdateOne) SetModelName(v string) *ExtractionResultUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableModelName(v *string) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetModelVersion sets the "model_version" field.
func (_u *ExtractionResultUpdateOne) SetModelVersion(v string) *ExtractionResultUpdateOne {
	_u.mutation.SetModelVersion(v)
	return _u
}

// SetNillableModelVersion sets the "model_version" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableModelVersion(v *string) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetModelVersion(*v)
	}
	return _u
}

// SetPromptVersion sets the "prompt_version" field.
func (_u *ExtractionResultUpdateOne) SetPromptVersion(v int) *ExtractionResultUpdateOne {
	_u.mutation.ResetPromptVersion()
	_u.mutation.SetPromptVersion(v)
	return _u
}

// SetNillablePromptVersion sets the "prompt_version" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillablePromptVersion(v *int) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetPromptVersion(*v)
	}
	return _u
}

// AddPromptVersion adds value to the "prompt_version" field.
func (_u *ExtractionResultUpdateOne) AddPromptVersion(v int) *ExtractionResultUpdateOne {
	_u.mutation.AddPromptVersion(v)
	return _u
}

// SetVerified sets the "verified" field.
func (_u *ExtractionResultUpdateOne) SetVerified(v bool) *ExtractionResultUpdateOne {
	_u.mutation.SetVerified(v)
	return _u
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableVerified(v *bool) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetVerified(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ExtractionResultUpdateOne) SetDocument(v *Document) *ExtractionResultUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// SetFieldDef sets the "field_def" edge to the FieldDefinition entity.
func (_u *ExtractionResultUpdateOne) SetFieldDef(v *FieldDefinition) *ExtractionResultUpdateOne {
	return _u.SetFieldDefID(v.ID)
}

// AddVerificationIDs adds the "verifications" edge to the VerificationRecord entity by IDs.
func (_u *ExtractionResultUpdateOne) AddVerificationIDs(ids ...uuid.UUID) *ExtractionResultUpdateOne {
	_u.mutation.AddVerificationIDs(ids...)
	return _u
}

// AddVerifications adds the "verifications" edges to the VerificationRecord entity.
func (_u *ExtractionResultUpdateOne) AddVerifications(v ...*VerificationRecord) *ExtractionResultUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVerificationIDs(ids...)
}

// Mutation returns the ExtractionResultMutation object of the builder.
func (_u *ExtractionResultUpdateOne) Mutation() *ExtractionResultMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ExtractionResultUpdateOne) ClearDocument() *ExtractionResultUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// ClearFieldDef clears the "field_def" edge to the FieldDefinition entity.
func (_u *ExtractionResultUpdateOne) ClearFieldDef() *ExtractionResultUpdateOne {
	_u.mutation.ClearFieldDef()
	return _u
}

// ClearVerifications clears all "verifications" edges to the VerificationRecord entity.
func (_u *ExtractionResultUpdateOne) ClearVerifications() *ExtractionResultUpdateOne {
	_u.mutation.ClearVerifications()
	return _u
}

// RemoveVerificationIDs removes the "verifications" edge to VerificationRecord entities by IDs.
func (_u *ExtractionResultUpdateOne) RemoveVerificationIDs(ids ...uuid.UUID) *ExtractionResultUpdateOne {
	_u.mutation.RemoveVerificationIDs(ids...)
	return _u
}

// RemoveVerifications removes "verifications" edges to VerificationRecord entities.
func (_u *ExtractionResultUpdateOne) RemoveVerifications(v ...*VerificationRecord) *ExtractionResultUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVerificationIDs(ids...)
}

// Where appends a list predicates to the ExtractionResultUpdate builder.
func (_u *ExtractionResultUpdateOne) Where(ps ...predicate.ExtractionResult) *ExtractionResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionResultUpdateOne) Select(field string, fields ...string) *ExtractionResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionResult entity.
func (_u *ExtractionResultUpdateOne) Save(ctx context.Context) (*ExtractionResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionResultUpdateOne) SaveX(ctx context.Context) *ExtractionResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionResultUpdateOne) check() error {
	if v, ok := _u.mutation.Confidence(); ok {
		if err := extractionresult.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "ExtractionResult.confidence": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionResult.document"`)
	}
	if _u.mutation.FieldDefCleared() && len(_u.mutation.FieldDefIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionResult.field_def"`)
	}
	return nil
}

func (_u *ExtractionResultUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionresult.Table, extractionresult.Columns, sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractionresult.FieldID)
		for _, f := range fields {
			if !extractionresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractionresult.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ValueRaw(); ok {
		_spec.SetField(extractionresult.FieldValueRaw, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedValue(); ok {
		_spec.SetField(extractionresult.FieldNormalizedValue, field.TypeString, value)
	}
	if _u.mutation.NormalizedValueCleared() {
		_spec.ClearField(extractionresult.FieldNormalizedValue, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(extractionresult.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(extractionresult.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PageNum(); ok {
		_spec.SetField(extractionresult.FieldPageNum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageNum(); ok {
		_spec.AddField(extractionresult.FieldPageNum, field.TypeInt, value)
	}
	if _u.mutation.PageNumCleared() {
		_spec.ClearField(extractionresult.FieldPageNum, field.TypeInt)
	}
	if value, ok := _u.mutation.Bbox(); ok {
		_spec.SetField(extractionresult.FieldBbox, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBbox(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionresult.FieldBbox, value)
		})
	}
	if _u.mutation.BboxCleared() {
		_spec.ClearField(extractionresult.FieldBbox, field.TypeJSON)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(extractionresult.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelVersion(); ok {
		_spec.SetField(extractionresult.FieldModelVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptVersion(); ok {
		_spec.SetField(extractionresult.FieldPromptVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptVersion(); ok {
		_spec.AddField(extractionresult.FieldPromptVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Verified(); ok {
		_spec.SetField(extractionresult.FieldVerified, field.TypeBool, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionresult.DocumentTable,
			Columns: []string{extractionresult.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionresult.DocumentTable,
			Columns: []string{extractionresult.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FieldDefCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionresult.FieldDefTable,
			Columns: []string{extractionresult.FieldDefColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fielddefinition.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldDefIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionresult.FieldDefTable,
			Columns: []string{extractionresult.FieldDefColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(fielddefinition.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VerificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionresult.VerificationsTable,
			Columns: []string{extractionresult.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationrecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVerificationsIDs(); len(nodes) > 0 && !_u.mutation.VerificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionresult.VerificationsTable,
			Columns: []string{extractionresult.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VerificationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extractionresult.VerificationsTable,
			Columns: []string{extractionresult.VerificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(verificationrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractionResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

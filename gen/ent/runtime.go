// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/docufield/docufield/db/ent/schema"
	"github.com/docufield/docufield/gen/ent/auditlog"
	"github.com/docufield/docufield/gen/ent/document"
	"github.com/docufield/docufield/gen/ent/documentpage"
	"github.com/docufield/docufield/gen/ent/extractionresult"
	"github.com/docufield/docufield/gen/ent/fielddefinition"
	"github.com/docufield/docufield/gen/ent/prompttemplate"
	"github.com/docufield/docufield/gen/ent/systemlog"
	"github.com/docufield/docufield/gen/ent/verificationrecord"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[1].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = auditlogDescAction.Validators[0].(func(string) error)
	// auditlogDescEntityKind is the schema descriptor for entity_kind field.
	auditlogDescEntityKind := auditlogFields[2].Descriptor()
	// auditlog.EntityKindValidator is a validator for the "entity_kind" field. It is called by the builders before save.
	auditlog.EntityKindValidator = auditlogDescEntityKind.Validators[0].(func(string) error)
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogFields[7].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[1].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescSourceType is the schema descriptor for source_type field.
	documentDescSourceType := documentFields[2].Descriptor()
	// document.SourceTypeValidator is a validator for the "source_type" field. It is called by the builders before save.
	document.SourceTypeValidator = documentDescSourceType.Validators[0].(func(string) error)
	// documentDescStatus is the schema descriptor for status field.
	documentDescStatus := documentFields[3].Descriptor()
	// document.DefaultStatus holds the default value on creation for the status field.
	document.DefaultStatus = documentDescStatus.Default.(string)
	// document.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	document.StatusValidator = documentDescStatus.Validators[0].(func(string) error)
	// documentDescStoragePath is the schema descriptor for storage_path field.
	documentDescStoragePath := documentFields[4].Descriptor()
	// document.StoragePathValidator is a validator for the "storage_path" field. It is called by the builders before save.
	document.StoragePathValidator = documentDescStoragePath.Validators[0].(func(string) error)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[7].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	documentpageFields := schema.DocumentPage{}.Fields()
	_ = documentpageFields
	// documentpageDescPageNum is the schema descriptor for page_num field.
	documentpageDescPageNum := documentpageFields[1].Descriptor()
	// documentpage.PageNumValidator is a validator for the "page_num" field. It is called by the builders before save.
	documentpage.PageNumValidator = documentpageDescPageNum.Validators[0].(func(int) error)
	extractionresultFields := schema.ExtractionResult{}.Fields()
	_ = extractionresultFields
	// extractionresultDescConfidence is the schema descriptor for confidence field.
	extractionresultDescConfidence := extractionresultFields[5].Descriptor()
	// extractionresult.DefaultConfidence holds the default value on creation for the confidence field.
	extractionresult.DefaultConfidence = extractionresultDescConfidence.Default.(float64)
	// extractionresult.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	extractionresult.ConfidenceValidator = func() func(float64) error {
		validators := extractionresultDescConfidence.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(confidence float64) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractionresultDescVerified is the schema descriptor for verified field.
	extractionresultDescVerified := extractionresultFields[11].Descriptor()
	// extractionresult.DefaultVerified holds the default value on creation for the verified field.
	extractionresult.DefaultVerified = extractionresultDescVerified.Default.(bool)
	// extractionresultDescCreatedAt is the schema descriptor for created_at field.
	extractionresultDescCreatedAt := extractionresultFields[12].Descriptor()
	// extractionresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractionresult.DefaultCreatedAt = extractionresultDescCreatedAt.Default.(func() time.Time)
	// extractionresultDescID is the schema descriptor for id field.
	extractionresultDescID := extractionresultFields[0].Descriptor()
	// extractionresult.DefaultID holds the default value on creation for the id field.
	extractionresult.DefaultID = extractionresultDescID.Default.(func() uuid.UUID)
	fielddefinitionFields := schema.FieldDefinition{}.Fields()
	_ = fielddefinitionFields
	// fielddefinitionDescKey is the schema descriptor for key field.
	fielddefinitionDescKey := fielddefinitionFields[0].Descriptor()
	// fielddefinition.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	fielddefinition.KeyValidator = fielddefinitionDescKey.Validators[0].(func(string) error)
	// fielddefinitionDescLabel is the schema descriptor for label field.
	fielddefinitionDescLabel := fielddefinitionFields[1].Descriptor()
	// fielddefinition.LabelValidator is a validator for the "label" field. It is called by the builders before save.
	fielddefinition.LabelValidator = fielddefinitionDescLabel.Validators[0].(func(string) error)
	// fielddefinitionDescDataType is the schema descriptor for data_type field.
	fielddefinitionDescDataType := fielddefinitionFields[2].Descriptor()
	// fielddefinition.DefaultDataType holds the default value on creation for the data_type field.
	fielddefinition.DefaultDataType = fielddefinitionDescDataType.Default.(string)
	// fielddefinition.DataTypeValidator is a validator for the "data_type" field. It is called by the builders before save.
	fielddefinition.DataTypeValidator = fielddefinitionDescDataType.Validators[0].(func(string) error)
	// fielddefinitionDescRequired is the schema descriptor for required field.
	fielddefinitionDescRequired := fielddefinitionFields[4].Descriptor()
	// fielddefinition.DefaultRequired holds the default value on creation for the required field.
	fielddefinition.DefaultRequired = fielddefinitionDescRequired.Default.(bool)
	// fielddefinitionDescUIOrder is the schema descriptor for ui_order field.
	fielddefinitionDescUIOrder := fielddefinitionFields[5].Descriptor()
	// fielddefinition.DefaultUIOrder holds the default value on creation for the ui_order field.
	fielddefinition.DefaultUIOrder = fielddefinitionDescUIOrder.Default.(int)
	// fielddefinitionDescCreatedAt is the schema descriptor for created_at field.
	fielddefinitionDescCreatedAt := fielddefinitionFields[7].Descriptor()
	// fielddefinition.DefaultCreatedAt holds the default value on creation for the created_at field.
	fielddefinition.DefaultCreatedAt = fielddefinitionDescCreatedAt.Default.(func() time.Time)
	// fielddefinitionDescUpdatedAt is the schema descriptor for updated_at field.
	fielddefinitionDescUpdatedAt := fielddefinitionFields[8].Descriptor()
	// fielddefinition.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	fielddefinition.DefaultUpdatedAt = fielddefinitionDescUpdatedAt.Default.(func() time.Time)
	// fielddefinition.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	fielddefinition.UpdateDefaultUpdatedAt = fielddefinitionDescUpdatedAt.UpdateDefault.(func() time.Time)
	prompttemplateFields := schema.PromptTemplate{}.Fields()
	_ = prompttemplateFields
	// prompttemplateDescName is the schema descriptor for name field.
	prompttemplateDescName := prompttemplateFields[1].Descriptor()
	// prompttemplate.NameValidator is a validator for the "name" field. It is called by the builders before save.
	prompttemplate.NameValidator = prompttemplateDescName.Validators[0].(func(string) error)
	// prompttemplateDescVersion is the schema descriptor for version field.
	prompttemplateDescVersion := prompttemplateFields[2].Descriptor()
	// prompttemplate.DefaultVersion holds the default value on creation for the version field.
	prompttemplate.DefaultVersion = prompttemplateDescVersion.Default.(int)
	// prompttemplate.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	prompttemplate.VersionValidator = prompttemplateDescVersion.Validators[0].(func(int) error)
	// prompttemplateDescModelName is the schema descriptor for model_name field.
	prompttemplateDescModelName := prompttemplateFields[5].Descriptor()
	// prompttemplate.DefaultModelName holds the default value on creation for the model_name field.
	prompttemplate.DefaultModelName = prompttemplateDescModelName.Default.(string)
	// prompttemplateDescIsActive is the schema descriptor for is_active field.
	prompttemplateDescIsActive := prompttemplateFields[6].Descriptor()
	// prompttemplate.DefaultIsActive holds the default value on creation for the is_active field.
	prompttemplate.DefaultIsActive = prompttemplateDescIsActive.Default.(bool)
	// prompttemplateDescCreatedAt is the schema descriptor for created_at field.
	prompttemplateDescCreatedAt := prompttemplateFields[8].Descriptor()
	// prompttemplate.DefaultCreatedAt holds the default value on creation for the created_at field.
	prompttemplate.DefaultCreatedAt = prompttemplateDescCreatedAt.Default.(func() time.Time)
	// prompttemplateDescID is the schema descriptor for id field.
	prompttemplateDescID := prompttemplateFields[0].Descriptor()
	// prompttemplate.DefaultID holds the default value on creation for the id field.
	prompttemplate.DefaultID = prompttemplateDescID.Default.(func() uuid.UUID)
	systemlogFields := schema.SystemLog{}.Fields()
	_ = systemlogFields
	// systemlogDescLevel is the schema descriptor for level field.
	systemlogDescLevel := systemlogFields[0].Descriptor()
	// systemlog.DefaultLevel holds the default value on creation for the level field.
	systemlog.DefaultLevel = systemlogDescLevel.Default.(string)
	// systemlog.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	systemlog.LevelValidator = systemlogDescLevel.Validators[0].(func(string) error)
	// systemlogDescCreatedAt is the schema descriptor for created_at field.
	systemlogDescCreatedAt := systemlogFields[4].Descriptor()
	// systemlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	systemlog.DefaultCreatedAt = systemlogDescCreatedAt.Default.(func() time.Time)
	verificationrecordFields := schema.VerificationRecord{}.Fields()
	_ = verificationrecordFields
	// verificationrecordDescAction is the schema descriptor for action field.
	verificationrecordDescAction := verificationrecordFields[3].Descriptor()
	// verificationrecord.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	verificationrecord.ActionValidator = verificationrecordDescAction.Validators[0].(func(string) error)
	// verificationrecordDescCreatedAt is the schema descriptor for created_at field.
	verificationrecordDescCreatedAt := verificationrecordFields[6].Descriptor()
	// verificationrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	verificationrecord.DefaultCreatedAt = verificationrecordDescCreatedAt.Default.(func() time.Time)
	// verificationrecordDescID is the schema descriptor for id field.
	verificationrecordDescID := verificationrecordFields[0].Descriptor()
	// verificationrecord.DefaultID holds the default value on creation for the id field.
	verificationrecord.DefaultID = verificationrecordDescID.Default.(func() uuid.UUID)
}

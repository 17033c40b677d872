// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// DocumentPage is the predicate function for documentpage builders.
type DocumentPage func(*sql.Selector)

// ExtractionResult is the predicate function for extractionresult builders.
type ExtractionResult func(*sql.Selector)

// FieldDefinition is the predicate function for fielddefinition builders.
type FieldDefinition func(*sql.Selector)

// PromptTemplate is the predicate function for prompttemplate builders.
type PromptTemplate func(*sql.Selector)

// SystemLog is the predicate function for systemlog builders.
type SystemLog func(*sql.Selector)

// VerificationRecord is the predicate function for verificationrecord builders.
type VerificationRecord func(*sql.Selector)

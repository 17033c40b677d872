package constants

// AuditAction is the kind of operation recorded in the audit log.
type AuditAction string

const (
	AuditCreate  AuditAction = "create"
	AuditUpdate  AuditAction = "update"
	AuditDelete  AuditAction = "delete"
	AuditUpload  AuditAction = "upload"
	AuditExtract AuditAction = "extract"
	AuditVerify  AuditAction = "verify"
	AuditTest    AuditAction = "test"
)

// EntityKind tags which entity an audit row points at. Polymorphic references
// are an explicit enum plus a typed id, never an open-ended string.
type EntityKind string

const (
	EntityDocument       EntityKind = "document"
	EntityPage           EntityKind = "document_page"
	EntityFieldDef       EntityKind = "field_definition"
	EntityPromptTemplate EntityKind = "prompt_template"
	EntityResult         EntityKind = "extraction_result"
	EntityVerification   EntityKind = "verification_record"
)

// LogLevel is the system log severity.
type LogLevel string

const (
	LevelDebug    LogLevel = "debug"
	LevelInfo     LogLevel = "info"
	LevelWarning  LogLevel = "warning"
	LevelError    LogLevel = "error"
	LevelCritical LogLevel = "critical"
)

// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "actor", Type: field.TypeString, Nullable: true},
		{Name: "action", Type: field.TypeString},
		{Name: "entity_kind", Type: field.TypeString},
		{Name: "entity_id", Type: field.TypeString, Nullable: true},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
		{Name: "prompt_text", Type: field.TypeString, Nullable: true, Size: 2147483647, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "model_response", Type: field.TypeString, Nullable: true, Size: 2147483647, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_action",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[2]},
			},
			{
				Name:    "auditlog_entity_kind_entity_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[3], AuditLogsColumns[4]},
			},
			{
				Name:    "auditlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[8]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "source_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "uploaded"},
		{Name: "storage_path", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "content_hash", Type: field.TypeBytes, Nullable: true, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "uploaded_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[3]},
			},
			{
				Name:    "document_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[7]},
			},
		},
	}
	// DocumentPagesColumns holds the columns for the "document_pages" table.
	DocumentPagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "page_num", Type: field.TypeInt},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "image_path", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "layout", Type: field.TypeJSON, Nullable: true},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// DocumentPagesTable holds the schema information for the "document_pages" table.
	DocumentPagesTable = &schema.Table{
		Name:       "document_pages",
		Columns:    DocumentPagesColumns,
		PrimaryKey: []*schema.Column{DocumentPagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "document_pages_documents_pages",
				Columns:    []*schema.Column{DocumentPagesColumns[5]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "documentpage_document_id_page_num",
				Unique:  true,
				Columns: []*schema.Column{DocumentPagesColumns[5], DocumentPagesColumns[1]},
			},
		},
	}
	// ExtractionResultsColumns holds the columns for the "extraction_results" table.
	ExtractionResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "value_raw", Type: field.TypeString, Size: 2147483647},
		{Name: "normalized_value", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "page_num", Type: field.TypeInt, Nullable: true},
		{Name: "bbox", Type: field.TypeJSON, Nullable: true},
		{Name: "model_name", Type: field.TypeString},
		{Name: "model_version", Type: field.TypeString},
		{Name: "prompt_version", Type: field.TypeInt},
		{Name: "verified", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
		{Name: "field_def_id", Type: field.TypeInt},
	}
	// ExtractionResultsTable holds the schema information for the "extraction_results" table.
	ExtractionResultsTable = &schema.Table{
		Name:       "extraction_results",
		Columns:    ExtractionResultsColumns,
		PrimaryKey: []*schema.Column{ExtractionResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extraction_results_documents_results",
				Columns:    []*schema.Column{ExtractionResultsColumns[11]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "extraction_results_field_definitions_results",
				Columns:    []*schema.Column{ExtractionResultsColumns[12]},
				RefColumns: []*schema.Column{FieldDefinitionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractionresult_document_id_field_def_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionResultsColumns[11], ExtractionResultsColumns[12], ExtractionResultsColumns[10]},
			},
			{
				Name:    "extractionresult_verified",
				Unique:  false,
				Columns: []*schema.Column{ExtractionResultsColumns[9]},
			},
		},
	}
	// FieldDefinitionsColumns holds the columns for the "field_definitions" table.
	FieldDefinitionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "label", Type: field.TypeString},
		{Name: "data_type", Type: field.TypeString, Default: "string"},
		{Name: "enum_values", Type: field.TypeJSON, Nullable: true},
		{Name: "required", Type: field.TypeBool, Default: false},
		{Name: "ui_order", Type: field.TypeInt, Default: 0},
		{Name: "custom_prompt", Type: field.TypeString, Nullable: true, Size: 2147483647, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// FieldDefinitionsTable holds the schema information for the "field_definitions" table.
	FieldDefinitionsTable = &schema.Table{
		Name:       "field_definitions",
		Columns:    FieldDefinitionsColumns,
		PrimaryKey: []*schema.Column{FieldDefinitionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "fielddefinition_ui_order",
				Unique:  false,
				Columns: []*schema.Column{FieldDefinitionsColumns[6]},
			},
		},
	}
	// PromptTemplatesColumns holds the columns for the "prompt_templates" table.
	PromptTemplatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "system_prompt", Type: field.TypeString, Size: 2147483647, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "field_prompts", Type: field.TypeJSON},
		{Name: "model_name", Type: field.TypeString, Default: "gpt-4o-mini"},
		{Name: "is_active", Type: field.TypeBool, Default: false},
		{Name: "created_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PromptTemplatesTable holds the schema information for the "prompt_templates" table.
	PromptTemplatesTable = &schema.Table{
		Name:       "prompt_templates",
		Columns:    PromptTemplatesColumns,
		PrimaryKey: []*schema.Column{PromptTemplatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "prompttemplate_name_version",
				Unique:  true,
				Columns: []*schema.Column{PromptTemplatesColumns[1], PromptTemplatesColumns[2]},
			},
			{
				Name:    "prompttemplate_is_active",
				Unique:  false,
				Columns: []*schema.Column{PromptTemplatesColumns[6]},
			},
			{
				Name:    "prompttemplate_created_at",
				Unique:  false,
				Columns: []*schema.Column{PromptTemplatesColumns[8]},
			},
		},
	}
	// SystemLogsColumns holds the columns for the "system_logs" table.
	SystemLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "level", Type: field.TypeString, Default: "info"},
		{Name: "message", Type: field.TypeString, Size: 2147483647, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "source", Type: field.TypeString, Nullable: true},
		{Name: "context", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SystemLogsTable holds the schema information for the "system_logs" table.
	SystemLogsTable = &schema.Table{
		Name:       "system_logs",
		Columns:    SystemLogsColumns,
		PrimaryKey: []*schema.Column{SystemLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "systemlog_level",
				Unique:  false,
				Columns: []*schema.Column{SystemLogsColumns[1]},
			},
			{
				Name:    "systemlog_source",
				Unique:  false,
				Columns: []*schema.Column{SystemLogsColumns[3]},
			},
			{
				Name:    "systemlog_created_at",
				Unique:  false,
				Columns: []*schema.Column{SystemLogsColumns[5]},
			},
		},
	}
	// VerificationRecordsColumns holds the columns for the "verification_records" table.
	VerificationRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "verifier", Type: field.TypeString, Nullable: true},
		{Name: "action", Type: field.TypeString},
		{Name: "corrected_value", Type: field.TypeString, Nullable: true, Size: 2147483647, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "comment", Type: field.TypeString, Nullable: true, Size: 2147483647, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "result_id", Type: field.TypeUUID},
	}
	// VerificationRecordsTable holds the schema information for the "verification_records" table.
	VerificationRecordsTable = &schema.Table{
		Name:       "verification_records",
		Columns:    VerificationRecordsColumns,
		PrimaryKey: []*schema.Column{VerificationRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "verification_records_extraction_results_verifications",
				Columns:    []*schema.Column{VerificationRecordsColumns[6]},
				RefColumns: []*schema.Column{ExtractionResultsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "verificationrecord_result_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{VerificationRecordsColumns[6], VerificationRecordsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditLogsTable,
		DocumentsTable,
		DocumentPagesTable,
		ExtractionResultsTable,
		FieldDefinitionsTable,
		PromptTemplatesTable,
		SystemLogsTable,
		VerificationRecordsTable,
	}
)

func init() {
	AuditLogsTable.Annotation = &entsql.Annotation{
		Table: "audit_logs",
	}
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	DocumentPagesTable.ForeignKeys[0].RefTable = DocumentsTable
	DocumentPagesTable.Annotation = &entsql.Annotation{
		Table: "document_pages",
	}
	ExtractionResultsTable.ForeignKeys[0].RefTable = DocumentsTable
	ExtractionResultsTable.ForeignKeys[1].RefTable = FieldDefinitionsTable
	ExtractionResultsTable.Annotation = &entsql.Annotation{
		Table: "extraction_results",
	}
	FieldDefinitionsTable.Annotation = &entsql.Annotation{
		Table: "field_definitions",
	}
	PromptTemplatesTable.Annotation = &entsql.Annotation{
		Table: "prompt_templates",
	}
	SystemLogsTable.Annotation = &entsql.Annotation{
		Table: "system_logs",
	}
	VerificationRecordsTable.ForeignKeys[0].RefTable = ExtractionResultsTable
	VerificationRecordsTable.Annotation = &entsql.Annotation{
		Table: "verification_records",
	}
}

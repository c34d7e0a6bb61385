// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CustomersColumns holds the columns for the "customers" table.
	CustomersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "identifier_patterns", Type: field.TypeJSON, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CustomersTable holds the schema information for the "customers" table.
	CustomersTable = &schema.Table{
		Name:       "customers",
		Columns:    CustomersColumns,
		PrimaryKey: []*schema.Column{CustomersColumns[0]},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "status", Type: field.TypeString, Default: "UPLOADED"},
		{Name: "artifact_path", Type: field.TypeString, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "detection_log", Type: field.TypeJSON, Nullable: true},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "customer_id", Type: field.TypeUUID, Nullable: true},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_customers_documents",
				Columns:    []*schema.Column{DocumentsColumns[12]},
				RefColumns: []*schema.Column{CustomersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_customer_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[12], DocumentsColumns[10]},
			},
			{
				Name:    "document_status_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[6], DocumentsColumns[10]},
			},
			{
				Name:    "document_content_hash",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[5]},
			},
		},
	}
	// ProcessingJobColumns holds the columns for the "processing_job" table.
	ProcessingJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "customer_id", Type: field.TypeUUID, Nullable: true},
		{Name: "template_id", Type: field.TypeUUID, Nullable: true},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "extraction_log", Type: field.TypeJSON, Nullable: true},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// ProcessingJobTable holds the schema information for the "processing_job" table.
	ProcessingJobTable = &schema.Table{
		Name:       "processing_job",
		Columns:    ProcessingJobColumns,
		PrimaryKey: []*schema.Column{ProcessingJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "processing_job_documents_jobs",
				Columns:    []*schema.Column{ProcessingJobColumns[10]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "processingjob_document_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessingJobColumns[10], ProcessingJobColumns[4]},
			},
			{
				Name:    "processingjob_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessingJobColumns[6], ProcessingJobColumns[4]},
			},
		},
	}
	// ReprocessingHistoryColumns holds the columns for the "reprocessing_history" table.
	ReprocessingHistoryColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "version", Type: field.TypeInt},
		{Name: "changes_made", Type: field.TypeString},
		{Name: "triggered_by", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// ReprocessingHistoryTable holds the schema information for the "reprocessing_history" table.
	ReprocessingHistoryTable = &schema.Table{
		Name:       "reprocessing_history",
		Columns:    ReprocessingHistoryColumns,
		PrimaryKey: []*schema.Column{ReprocessingHistoryColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "reprocessing_history_documents_history",
				Columns:    []*schema.Column{ReprocessingHistoryColumns[5]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "reprocessinghistory_document_id_version",
				Unique:  true,
				Columns: []*schema.Column{ReprocessingHistoryColumns[5], ReprocessingHistoryColumns[1]},
			},
		},
	}
	// TemplatesColumns holds the columns for the "templates" table.
	TemplatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "rules", Type: field.TypeJSON, Nullable: true},
		{Name: "hardcoded_mappings", Type: field.TypeJSON, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "customer_id", Type: field.TypeUUID},
	}
	// TemplatesTable holds the schema information for the "templates" table.
	TemplatesTable = &schema.Table{
		Name:       "templates",
		Columns:    TemplatesColumns,
		PrimaryKey: []*schema.Column{TemplatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "templates_customers_templates",
				Columns:    []*schema.Column{TemplatesColumns[8]},
				RefColumns: []*schema.Column{CustomersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "template_customer_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{TemplatesColumns[8], TemplatesColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CustomersTable,
		DocumentsTable,
		ProcessingJobTable,
		ReprocessingHistoryTable,
		TemplatesTable,
	}
)

func init() {
	CustomersTable.Annotation = &entsql.Annotation{
		Table: "customers",
	}
	DocumentsTable.ForeignKeys[0].RefTable = CustomersTable
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	ProcessingJobTable.ForeignKeys[0].RefTable = DocumentsTable
	ProcessingJobTable.Annotation = &entsql.Annotation{
		Table: "processing_job",
	}
	ReprocessingHistoryTable.ForeignKeys[0].RefTable = DocumentsTable
	ReprocessingHistoryTable.Annotation = &entsql.Annotation{
		Table: "reprocessing_history",
	}
	TemplatesTable.ForeignKeys[0].RefTable = CustomersTable
	TemplatesTable.Annotation = &entsql.Annotation{
		Table: "templates",
	}
}

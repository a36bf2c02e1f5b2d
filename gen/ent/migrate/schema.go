// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "filename", Type: field.TypeString},
		{Name: "source_url", Type: field.TypeString, Nullable: true},
		{Name: "source_path", Type: field.TypeString, Nullable: true},
		{Name: "content_type", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "artifacts", Type: field.TypeJSON, Nullable: true},
		{Name: "scores", Type: field.TypeJSON, Nullable: true},
		{Name: "issues", Type: field.TypeJSON, Nullable: true},
		{Name: "step_plan", Type: field.TypeJSON, Nullable: true},
		{Name: "cancelled", Type: field.TypeBool, Default: false},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_owner_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[1], DocumentsColumns[2], DocumentsColumns[14]},
			},
			{
				Name:    "document_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[2], DocumentsColumns[15]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "step", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "priority", Type: field.TypeInt, Default: 10},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 3},
		{Name: "input", Type: field.TypeJSON, Nullable: true},
		{Name: "output", Type: field.TypeJSON, Nullable: true},
		{Name: "error_kind", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "retry_enabled", Type: field.TypeBool, Default: true},
		{Name: "backoff_multiplier", Type: field.TypeFloat64, Default: 2},
		{Name: "initial_delay_seconds", Type: field.TypeInt, Default: 5},
		{Name: "max_delay_seconds", Type: field.TypeInt, Default: 300},
		{Name: "retry_at", Type: field.TypeTime, Nullable: true},
		{Name: "execution_timeout_seconds", Type: field.TypeInt, Default: 600},
		{Name: "heartbeat_interval_seconds", Type: field.TypeInt, Default: 15},
		{Name: "worker_id", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_heartbeat", Type: field.TypeTime, Nullable: true},
		{Name: "logs", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "jobs_documents_jobs",
				Columns:    []*schema.Column{JobsColumns[24]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "job_document_id_step_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[24], JobsColumns[1], JobsColumns[2]},
			},
			{
				Name:    "job_status_priority_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[2], JobsColumns[3], JobsColumns[21]},
			},
			{
				Name:    "job_status_retry_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[2], JobsColumns[14]},
			},
			{
				Name:    "job_status_last_heartbeat",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[2], JobsColumns[19]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		JobsTable,
	}
)

func init() {
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	JobsTable.ForeignKeys[0].RefTable = DocumentsTable
	JobsTable.Annotation = &entsql.Annotation{
		Table: "jobs",
	}
}

// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EvidenceEventsColumns holds the columns for the "evidence_events" table.
	EvidenceEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "batch_id", Type: field.TypeString},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "trait", Type: field.TypeString},
		{Name: "combined", Type: field.TypeFloat64},
		{Name: "correctness", Type: field.TypeFloat64},
		{Name: "calibration", Type: field.TypeFloat64},
		{Name: "reasoning", Type: field.TypeFloat64},
		{Name: "misconception", Type: field.TypeFloat64},
		{Name: "markers", Type: field.TypeJSON, Nullable: true},
	}
	// EvidenceEventsTable holds the schema information for the "evidence_events" table.
	EvidenceEventsTable = &schema.Table{
		Name:       "evidence_events",
		Columns:    EvidenceEventsColumns,
		PrimaryKey: []*schema.Column{EvidenceEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "evidenceevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{EvidenceEventsColumns[1]},
			},
			{
				Name:    "evidenceevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{EvidenceEventsColumns[2]},
			},
			{
				Name:    "evidenceevent_batch_id",
				Unique:  false,
				Columns: []*schema.Column{EvidenceEventsColumns[3]},
			},
			{
				Name:    "evidenceevent_learner_id",
				Unique:  false,
				Columns: []*schema.Column{EvidenceEventsColumns[4]},
			},
			{
				Name:    "evidenceevent_learner_id_topic",
				Unique:  false,
				Columns: []*schema.Column{EvidenceEventsColumns[4], EvidenceEventsColumns[5]},
			},
			{
				Name:    "evidenceevent_trait",
				Unique:  false,
				Columns: []*schema.Column{EvidenceEventsColumns[7]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// TraitProfilesColumns holds the columns for the "trait_profiles" table.
	TraitProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString, Default: ""},
		{Name: "traits", Type: field.TypeJSON},
		{Name: "question_count", Type: field.TypeInt, Default: 0},
		{Name: "last_updated", Type: field.TypeTime},
	}
	// TraitProfilesTable holds the schema information for the "trait_profiles" table.
	TraitProfilesTable = &schema.Table{
		Name:       "trait_profiles",
		Columns:    TraitProfilesColumns,
		PrimaryKey: []*schema.Column{TraitProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "traitprofile_learner_id_topic",
				Unique:  true,
				Columns: []*schema.Column{TraitProfilesColumns[1], TraitProfilesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EvidenceEventsTable,
		LlmRequestEventsTable,
		TraitProfilesTable,
	}
)

func init() {
}

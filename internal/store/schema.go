package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table declarations for the auto-migration. Column order matters for the
// primary keys and foreign keys wired up in init.
var (
	llmEventsColumns = []*schema.Column{
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
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	llmEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    llmEventsColumns,
		PrimaryKey: []*schema.Column{llmEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "llmrequestevent_purpose", Columns: []*schema.Column{llmEventsColumns[5]}},
		},
	}

	assessmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "catalog_version", Type: field.TypeString},
		{Name: "responses", Type: field.TypeJSON},
		{Name: "recommendations", Type: field.TypeJSON},
		{Name: "insights", Type: field.TypeJSON},
	}
	assessmentsTable = &schema.Table{
		Name:       "assessments",
		Columns:    assessmentsColumns,
		PrimaryKey: []*schema.Column{assessmentsColumns[0]},
	}

	questionSetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString},
		{Name: "source", Type: field.TypeString, Default: ""},
		{Name: "payload", Type: field.TypeJSON},
	}
	questionSetsTable = &schema.Table{
		Name:       "question_sets",
		Columns:    questionSetsColumns,
		PrimaryKey: []*schema.Column{questionSetsColumns[0]},
	}

	quizResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "question_set_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "score", Type: field.TypeInt},
		{Name: "total", Type: field.TypeInt},
		{Name: "percentage", Type: field.TypeFloat64},
		{Name: "result", Type: field.TypeJSON},
	}
	quizResultsTable = &schema.Table{
		Name:       "quiz_results",
		Columns:    quizResultsColumns,
		PrimaryKey: []*schema.Column{quizResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "quiz_results_question_sets_results",
				Columns:    []*schema.Column{quizResultsColumns[1]},
				RefColumns: []*schema.Column{questionSetsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{Name: "quizresult_question_set_id", Columns: []*schema.Column{quizResultsColumns[1]}},
		},
	}

	achievementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "points", Type: field.TypeInt},
		{Name: "reference", Type: field.TypeString, Default: ""},
		{Name: "awarded_at", Type: field.TypeTime},
	}
	achievementsTable = &schema.Table{
		Name:       "achievements",
		Columns:    achievementsColumns,
		PrimaryKey: []*schema.Column{achievementsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "achievement_kind_reference", Unique: true, Columns: []*schema.Column{achievementsColumns[1], achievementsColumns[4]}},
		},
	}

	sequenceColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt},
		{Name: "next_val", Type: field.TypeInt64, Default: 1},
	}
	sequenceTable = &schema.Table{
		Name:       "global_sequence",
		Columns:    sequenceColumns,
		PrimaryKey: []*schema.Column{sequenceColumns[0]},
	}

	tables = []*schema.Table{
		sequenceTable,
		llmEventsTable,
		assessmentsTable,
		questionSetsTable,
		quizResultsTable,
		achievementsTable,
	}
)

func init() {
	quizResultsTable.ForeignKeys[0].RefTable = questionSetsTable
}

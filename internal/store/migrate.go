package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// eventColumns returns the columns every event table starts with: the row
// id, the global sequence number and the UTC timestamp.
func eventColumns(extra ...*schema.Column) []*schema.Column {
	return append([]*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
	}, extra...)
}

func eventTable(name string, columns []*schema.Column, indexed ...string) *schema.Table {
	t := &schema.Table{
		Name:       name,
		Columns:    columns,
		PrimaryKey: []*schema.Column{columns[0]},
	}
	for _, col := range indexed {
		for _, c := range columns {
			if c.Name == col {
				t.Indexes = append(t.Indexes, &schema.Index{
					Name:    name + "_" + col,
					Columns: []*schema.Column{c},
				})
			}
		}
	}
	return t
}

var (
	globalSequenceColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt},
		{Name: "next_val", Type: field.TypeInt64, Default: 1},
	}
	// GlobalSequenceTable holds the single row backing sequenceCounter.
	GlobalSequenceTable = &schema.Table{
		Name:       "global_sequence",
		Columns:    globalSequenceColumns,
		PrimaryKey: []*schema.Column{globalSequenceColumns[0]},
	}

	SessionEventsTable = eventTable("session_events", eventColumns(
		&schema.Column{Name: "session_id", Type: field.TypeString},
		&schema.Column{Name: "mode", Type: field.TypeString},
		&schema.Column{Name: "action", Type: field.TypeString},
	), "session_id")

	StudyEventsTable = eventTable("study_events", eventColumns(
		&schema.Column{Name: "session_id", Type: field.TypeString},
		&schema.Column{Name: "topic_id", Type: field.TypeString},
		&schema.Column{Name: "subtopic_id", Type: field.TypeString},
	), "session_id", "topic_id")

	RevealEventsTable = eventTable("reveal_events", eventColumns(
		&schema.Column{Name: "session_id", Type: field.TypeString},
		&schema.Column{Name: "question_id", Type: field.TypeInt},
		&schema.Column{Name: "category", Type: field.TypeString},
	), "session_id", "category")

	LLMRequestEventsTable = eventTable("llm_request_events", eventColumns(
		&schema.Column{Name: "provider", Type: field.TypeString},
		&schema.Column{Name: "model", Type: field.TypeString},
		&schema.Column{Name: "purpose", Type: field.TypeString},
		&schema.Column{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		&schema.Column{Name: "success", Type: field.TypeBool},
		&schema.Column{Name: "error_message", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		&schema.Column{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	), "provider", "purpose", "success")

	// Tables lists every table netprep manages.
	Tables = []*schema.Table{
		GlobalSequenceTable,
		SessionEventsTable,
		StudyEventsTable,
		RevealEventsTable,
		LLMRequestEventsTable,
	}
)

// migrate creates or updates every table in Tables. It only ever adds
// tables, columns and indexes.
func migrate(ctx context.Context, drv *entsql.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	if err := m.Create(ctx, Tables...); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}

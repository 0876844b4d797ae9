package store

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	entschema "github.com/abhisek/bokibattle/ent/schema"
)

// Table names.
const (
	tableScoreRuns   = "score_runs"
	tableBestScores  = "best_scores"
	tableLLMRequests = "llm_request_events"
)

// tables derives the migration tables from the ent schema definitions.
func tables() []*schema.Table {
	return []*schema.Table{
		tableFor(tableScoreRuns, entschema.ScoreRun{}),
		tableFor(tableBestScores, entschema.BestScore{}),
		tableFor(tableLLMRequests, entschema.LLMRequestEvent{}),
	}
}

// tableFor builds a table with an auto-increment "id" primary key
// followed by the mixin fields and then the schema's own fields.
// Constant defaults become column defaults. Function defaults such as
// time.Now are not representable in DDL and are left to the
// repositories, which always write every column.
func tableFor(name string, s ent.Interface) *schema.Table {
	id := &schema.Column{Name: "id", Type: field.TypeInt, Increment: true}
	t := &schema.Table{
		Name:       name,
		Columns:    []*schema.Column{id},
		PrimaryKey: []*schema.Column{id},
	}

	var fields []ent.Field
	var indexes []ent.Index
	for _, m := range s.Mixin() {
		fields = append(fields, m.Fields()...)
		indexes = append(indexes, m.Indexes()...)
	}
	fields = append(fields, s.Fields()...)
	indexes = append(indexes, s.Indexes()...)

	byName := make(map[string]*schema.Column, len(fields))
	for _, f := range fields {
		d := f.Descriptor()
		c := &schema.Column{
			Name:     d.Name,
			Type:     d.Info.Type,
			Unique:   d.Unique,
			Nullable: d.Optional || d.Nillable,
			Size:     int64(d.Size),
			Comment:  d.Comment,
		}
		switch v := d.Default.(type) {
		case int, int64, string, bool, float64:
			c.Default = v
		}
		t.Columns = append(t.Columns, c)
		byName[d.Name] = c
	}

	for _, idx := range indexes {
		d := idx.Descriptor()
		ix := &schema.Index{
			Name:   strings.ToLower(name + "_" + strings.Join(d.Fields, "_")),
			Unique: d.Unique,
		}
		for _, fn := range d.Fields {
			if c, ok := byName[fn]; ok {
				ix.Columns = append(ix.Columns, c)
			}
		}
		t.Indexes = append(t.Indexes, ix)
	}
	return t
}

// migrate creates or updates every table.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("new migrate: %w", err)
	}
	if err := m.Create(ctx, tables()...); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}

// builder returns a SQL builder for the SQLite dialect.
func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

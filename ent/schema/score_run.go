package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScoreRun is one finished battle run. Only the most recent runs are
// retained; see BestScore for the per-difficulty high score.
type ScoreRun struct {
	ent.Schema
}

func (ScoreRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Unique().
			Immutable(),
		field.Time("played_at").
			Immutable(),
		field.Int("score"),
		field.String("difficulty").
			Comment("easy, hard or practice"),
		field.Int("questions_answered"),
		field.Int("monsters_defeated").
			Default(0).
			Comment("Monsters beaten during the run"),
		field.String("player_name"),
		field.String("prefecture"),
		field.String("outcome").
			Comment("cleared or defeated"),
	}
}

func (ScoreRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("difficulty"),
		index.Fields("played_at"),
	}
}

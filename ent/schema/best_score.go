package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// BestScore holds the high score per difficulty. It survives history
// pruning.
type BestScore struct {
	ent.Schema
}

func (BestScore) Fields() []ent.Field {
	return []ent.Field{
		field.String("difficulty").
			Unique(),
		field.Int("score"),
		field.String("run_id"),
		field.Time("updated_at"),
	}
}

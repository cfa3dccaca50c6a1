package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressEvent records one applied learning event and its outcome,
// forming the append-only progression log.
type ProgressEvent struct {
	ent.Schema
}

func (ProgressEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ProgressEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("event_id").
			Unique().
			Immutable().
			NotEmpty().
			Comment("Caller-assigned UUID for idempotent replay"),
		field.String("kind").NotEmpty(),
		field.String("unit_id").NotEmpty(),
		field.Float("score_pct").Default(0),
		field.Int("attempt").Min(1),
		field.Int("xp_earned").Min(0),
		field.Int("level_after").Min(1),
		field.Int("streak_after").Min(0),
	}
}

func (ProgressEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("unit_id"),
		index.Fields("kind"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// AuthorStats holds the schema definition for the AuthorStats entity.
//
// One row per author, recomputed from scratch on every stats pass. Each
// dimension is a (rate, sample size) pair; denominators exclude claims
// still pending or expired, so a nil rate means "nothing decidable yet",
// not zero. The overall score renormalizes weights over available
// dimensions only.
type AuthorStats struct {
	ent.Schema
}

// Fields of the AuthorStats.
func (AuthorStats) Fields() []ent.Field {
	return []ent.Field{
		field.Int("author_id").
			Unique(),

		field.Float("fact_accuracy_rate").
			Optional().
			Nillable(),
		field.Int("fact_accuracy_sample").
			Default(0),

		field.Float("conclusion_accuracy_rate").
			Optional().
			Nillable(),
		field.Int("conclusion_accuracy_sample").
			Default(0),

		field.Float("prediction_accuracy_rate").
			Optional().
			Nillable(),
		field.Int("prediction_accuracy_sample").
			Default(0),

		field.Float("logic_rigor_score").
			Optional().
			Nillable(),
		field.Int("logic_rigor_sample").
			Default(0),

		field.Float("recommendation_reliability_rate").
			Optional().
			Nillable(),
		field.Int("recommendation_reliability_sample").
			Default(0),

		field.Float("content_uniqueness_score").
			Optional().
			Nillable(),
		field.Int("content_uniqueness_sample").
			Default(0),

		field.Float("content_effectiveness_score").
			Optional().
			Nillable(),
		field.Int("content_effectiveness_sample").
			Default(0),

		field.Float("overall_credibility_score").
			Optional().
			Nillable().
			Comment("Weighted blend on a 0-100 scale"),
		field.Int("total_posts_analyzed").
			Default(0),
		field.Time("last_updated").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the AuthorStats.
func (AuthorStats) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("author", Author.Type).
			Ref("stats").
			Field("author_id").
			Unique().
			Required(),
	}
}

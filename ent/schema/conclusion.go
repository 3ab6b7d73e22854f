package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Conclusion holds the schema definition for the Conclusion entity.
//
// An author's judgment. Retrospective conclusions assess past or current
// events and can be verdicted immediately; predictive ones carry a monitoring
// window (set by the conclusion monitor) and are verdicted only after it ends.
type Conclusion struct {
	ent.Schema
}

// Fields of the Conclusion.
func (Conclusion) Fields() []ent.Field {
	return []ent.Field{
		field.Int("topic_id"),
		field.Int("author_id"),
		field.Text("claim"),
		field.Text("canonical_claim").
			Optional().
			Nillable(),
		field.Enum("conclusion_type").
			Values("retrospective", "predictive").
			Default("retrospective"),
		field.Text("time_horizon_note").
			Optional().
			Nillable(),
		field.Time("valid_from").
			Optional().
			Nillable(),
		field.Time("valid_until").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("pending", "confirmed", "refuted", "unverifiable").
			Default("pending"),

		// Monitoring block, predictive conclusions only
		field.Text("monitoring_source_org").
			Optional().
			Nillable(),
		field.Text("monitoring_source_url").
			Optional().
			Nillable(),
		field.Text("monitoring_period_note").
			Optional().
			Nillable(),
		field.Time("monitoring_start").
			Optional().
			Nillable(),
		field.Time("monitoring_end").
			Optional().
			Nillable(),

		field.String("source_url"),
		field.String("source_platform"),
		field.Time("posted_at"),
		field.Time("collected_at").
			Default(time.Now),
		field.Text("raw_extraction").
			Optional().
			Nillable().
			Comment("LLM output for this node, verbatim JSON"),
	}
}

// Edges of the Conclusion.
func (Conclusion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("topic", Topic.Type).
			Ref("conclusions").
			Field("topic_id").
			Unique().
			Required(),
		edge.From("author", Author.Type).
			Ref("conclusions").
			Field("author_id").
			Unique().
			Required(),
		edge.To("logics", Logic.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("verdicts", ConclusionVerdict.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Conclusion.
func (Conclusion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("author_id"),
		index.Fields("topic_id"),
		index.Fields("canonical_claim"),
		index.Fields("conclusion_type", "status"),
	}
}

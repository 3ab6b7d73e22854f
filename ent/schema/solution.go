package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Solution holds the schema definition for the Solution entity.
//
// A concrete actionable recommendation the author derived from one or more
// conclusions (via a derivation Logic). The simulator records a hypothetical
// execution note and a monitoring window; the verdict deriver maps source
// conclusions' verdicts onto the solution after the window ends.
type Solution struct {
	ent.Schema
}

// Fields of the Solution.
func (Solution) Fields() []ent.Field {
	return []ent.Field{
		field.Int("topic_id").
			Optional().
			Nillable(),
		field.Int("author_id"),
		field.Text("claim"),
		field.Text("canonical_claim").
			Optional().
			Nillable(),
		field.Enum("action_type").
			Values("buy", "sell", "hold", "short", "diversify", "hedge", "reduce").
			Optional().
			Nillable(),
		field.String("action_target").
			Optional().
			Nillable().
			Comment("e.g., 'gold ETF', '10Y US Treasury'"),
		field.Text("action_rationale").
			Optional().
			Nillable(),
		field.Text("simulated_action_note").
			Optional().
			Nillable().
			Comment("'If executed today ...', written by the simulator"),

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

		field.Enum("status").
			Values("pending", "validated", "invalidated", "unverifiable").
			Default("pending"),

		field.String("source_url").
			Optional().
			Nillable(),
		field.String("source_platform").
			Optional().
			Nillable(),
		field.Time("posted_at").
			Optional().
			Nillable(),
		field.Time("collected_at").
			Default(time.Now),
		field.Text("raw_extraction").
			Optional().
			Nillable(),
	}
}

// Edges of the Solution.
func (Solution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("topic", Topic.Type).
			Ref("solutions").
			Field("topic_id").
			Unique(),
		edge.From("author", Author.Type).
			Ref("solutions").
			Field("author_id").
			Unique().
			Required(),
		edge.To("logics", Logic.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("assessments", SolutionAssessment.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Solution.
func (Solution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("author_id"),
		index.Fields("status"),
	}
}

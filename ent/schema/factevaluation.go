package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FactEvaluation holds the schema definition for the FactEvaluation entity.
//
// One verification attempt against a fact. Facts keep their latest status
// inline; evaluations preserve the attempt history, including the evidence
// the verifier relied on and how authoritative it was.
type FactEvaluation struct {
	ent.Schema
}

// Fields of the FactEvaluation.
func (FactEvaluation) Fields() []ent.Field {
	return []ent.Field{
		field.Int("fact_id"),
		field.Enum("result").
			Values("true", "false", "uncertain", "unavailable"),
		field.Text("evidence_text").
			Optional().
			Nillable(),
		field.Int("evidence_tier").
			Optional().
			Nillable().
			Comment("1 = authoritative institution, 2 = market data, 3 = credible secondary"),
		field.Text("data_period").
			Optional().
			Nillable().
			Comment("Period covered by the data the result rests on"),
		field.Text("evaluator_notes").
			Optional().
			Nillable(),
		field.Time("evaluated_at").
			Default(time.Now),
	}
}

// Edges of the FactEvaluation.
func (FactEvaluation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("fact", Fact.Type).
			Ref("evaluations").
			Field("fact_id").
			Unique().
			Required(),
	}
}

// Indexes of the FactEvaluation.
func (FactEvaluation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("fact_id"),
		index.Fields("result"),
	}
}

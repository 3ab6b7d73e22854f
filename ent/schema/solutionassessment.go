package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SolutionAssessment holds the schema definition for the SolutionAssessment entity.
//
// A dated assessment of a solution, aggregated from the verdicts of the
// conclusions its derivation chain draws on. Role-fit annotations are
// written separately by the role evaluator.
type SolutionAssessment struct {
	ent.Schema
}

// Fields of the SolutionAssessment.
func (SolutionAssessment) Fields() []ent.Field {
	return []ent.Field{
		field.Int("solution_id"),
		field.Enum("verdict").
			Values("confirmed", "refuted", "partial", "pending", "expired", "unverifiable"),
		field.Text("evidence_text").
			Optional().
			Nillable(),
		field.Int("evidence_tier").
			Optional().
			Nillable(),
		field.Text("notes").
			Optional().
			Nillable(),
		field.Enum("role_fit").
			Values("appropriate", "questionable", "mismatched").
			Optional().
			Nillable(),
		field.Text("role_fit_note").
			Optional().
			Nillable(),
		field.Time("assessed_at").
			Default(time.Now),
	}
}

// Edges of the SolutionAssessment.
func (SolutionAssessment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("solution", Solution.Type).
			Ref("assessments").
			Field("solution_id").
			Unique().
			Required(),
	}
}

// Indexes of the SolutionAssessment.
func (SolutionAssessment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("solution_id"),
		index.Fields("verdict"),
	}
}

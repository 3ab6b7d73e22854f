package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConclusionVerdict holds the schema definition for the ConclusionVerdict entity.
//
// A dated verdict on a conclusion, derived mechanically from the verification
// results of the facts in its inference chain. logic_trace records which
// fact produced which result so the verdict can be audited. The role
// evaluator annotates each verdict with how well the claim fits the
// author's background.
type ConclusionVerdict struct {
	ent.Schema
}

// Fields of the ConclusionVerdict.
func (ConclusionVerdict) Fields() []ent.Field {
	return []ent.Field{
		field.Int("conclusion_id"),
		field.Enum("verdict").
			Values("confirmed", "refuted", "partial", "pending", "expired", "unverifiable"),
		field.JSON("logic_trace", map[string]interface{}{}).
			Optional().
			Comment("fact id -> evaluation result at derivation time"),
		field.Enum("role_fit").
			Values("appropriate", "questionable", "mismatched").
			Optional().
			Nillable(),
		field.Text("role_fit_note").
			Optional().
			Nillable(),
		field.Time("derived_at").
			Default(time.Now),
	}
}

// Edges of the ConclusionVerdict.
func (ConclusionVerdict) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conclusion", Conclusion.Type).
			Ref("verdicts").
			Field("conclusion_id").
			Unique().
			Required(),
	}
}

// Indexes of the ConclusionVerdict.
func (ConclusionVerdict) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("conclusion_id"),
		index.Fields("verdict"),
	}
}

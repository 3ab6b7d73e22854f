package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Logic holds the schema definition for the Logic entity.
//
// A reasoning chain connecting facts to a conclusion (inference) or
// conclusions to a solution (derivation). supporting_fact_ids and
// assumption_fact_ids reference Fact rows; source_conclusion_ids is used
// by derivation chains. Exactly one of conclusion_id / solution_id is set.
// The logic evaluator fills the completeness block after extraction.
type Logic struct {
	ent.Schema
}

// Fields of the Logic.
func (Logic) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("logic_type").
			Values("inference", "derivation").
			Default("inference"),
		field.Int("conclusion_id").
			Optional().
			Nillable(),
		field.Int("solution_id").
			Optional().
			Nillable(),
		field.Int("raw_post_id").
			Optional().
			Nillable(),
		field.JSON("supporting_fact_ids", []int{}).
			Optional(),
		field.JSON("assumption_fact_ids", []int{}).
			Optional(),
		field.JSON("source_conclusion_ids", []int{}).
			Optional(),

		// Filled by the logic evaluator
		field.Enum("logic_completeness").
			Values("complete", "partial", "weak", "invalid").
			Optional().
			Nillable(),
		field.Text("logic_note").
			Optional().
			Nillable(),
		field.Text("one_sentence_summary").
			Optional().
			Nillable(),
		field.Time("assessed_at").
			Optional().
			Nillable(),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Logic.
func (Logic) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conclusion", Conclusion.Type).
			Ref("logics").
			Field("conclusion_id").
			Unique(),
		edge.From("solution", Solution.Type).
			Ref("logics").
			Field("solution_id").
			Unique(),
		edge.From("raw_post", RawPost.Type).
			Ref("logics").
			Field("raw_post_id").
			Unique(),
		edge.To("outgoing_relations", LogicRelation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("incoming_relations", LogicRelation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Logic.
func (Logic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("conclusion_id"),
		index.Fields("solution_id"),
		index.Fields("raw_post_id"),
		index.Fields("logic_type", "logic_completeness"),
	}
}

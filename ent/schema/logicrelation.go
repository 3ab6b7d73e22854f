package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LogicRelation holds the schema definition for the LogicRelation entity.
//
// A typed directed edge between two reasoning chains within the same post.
// "from supports to" means from's conclusion is a direct premise of to;
// contextualizes marks a background framing rather than a strict premise;
// contradicts marks a direct conflict between the two chains.
type LogicRelation struct {
	ent.Schema
}

// Fields of the LogicRelation.
func (LogicRelation) Fields() []ent.Field {
	return []ent.Field{
		field.Int("from_logic_id"),
		field.Int("to_logic_id"),
		field.Enum("relation_type").
			Values("supports", "contextualizes", "contradicts"),
		field.Text("note").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the LogicRelation.
func (LogicRelation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("from_logic", Logic.Type).
			Ref("outgoing_relations").
			Field("from_logic_id").
			Unique().
			Required(),
		edge.From("to_logic", Logic.Type).
			Ref("incoming_relations").
			Field("to_logic_id").
			Unique().
			Required(),
	}
}

// Indexes of the LogicRelation.
func (LogicRelation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("from_logic_id", "to_logic_id", "relation_type").
			Unique(),
	}
}

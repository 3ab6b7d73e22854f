package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Topic holds the schema definition for the Topic entity.
// String-keyed label lazily created during extraction.
type Topic struct {
	ent.Schema
}

// Fields of the Topic.
func (Topic) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique(),
		field.Text("description").
			Optional().
			Nillable(),
		field.String("tags").
			Optional().
			Nillable().
			Comment("Comma-separated free-form tags"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Topic.
func (Topic) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("conclusions", Conclusion.Type),
		edge.To("solutions", Solution.Type),
	}
}

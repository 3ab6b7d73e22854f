package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// VerificationReference holds the schema definition for the
// VerificationReference entity: an authoritative source suggested at
// extraction time for checking one fact.
type VerificationReference struct {
	ent.Schema
}

// Fields of the VerificationReference.
func (VerificationReference) Fields() []ent.Field {
	return []ent.Field{
		field.Int("fact_id"),
		field.String("organization").
			Comment("Full name of a recognized authority"),
		field.Text("data_description").
			Comment("The specific dataset or report to consult"),
		field.String("url").
			Optional().
			Nillable(),
		field.Text("url_note").
			Optional().
			Nillable(),
	}
}

// Edges of the VerificationReference.
func (VerificationReference) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("fact", Fact.Type).
			Ref("references").
			Field("fact_id").
			Unique().
			Required(),
	}
}

// Indexes of the VerificationReference.
func (VerificationReference) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("fact_id"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Fact holds the schema definition for the Fact entity.
//
// An atomic, independently verifiable assertion extracted from a post.
// Decoupled from conclusions and solutions; argumentation is expressed
// through Logic edges. The verifier appends FactEvaluations and keeps
// status in sync with the latest result.
type Fact struct {
	ent.Schema
}

// Fields of the Fact.
func (Fact) Fields() []ent.Field {
	return []ent.Field{
		field.Text("claim").
			Comment("Original wording, or a compact paraphrase"),
		field.Text("canonical_claim").
			Optional().
			Nillable().
			Comment("Normalized form used for cross-post matching"),
		field.Text("verifiable_expression").
			Optional().
			Nillable().
			Comment("Quantified, time-bounded restatement suitable for checking"),
		field.Bool("is_verifiable").
			Default(false),
		field.Text("verification_method").
			Optional().
			Nillable().
			Comment("Which data over which period, and the decision threshold"),

		// Validity window (free-text notes plus parsed bounds)
		field.Text("validity_start_note").
			Optional().
			Nillable(),
		field.Text("validity_end_note").
			Optional().
			Nillable(),
		field.Time("validity_start").
			Optional().
			Nillable(),
		field.Time("validity_end").
			Optional().
			Nillable(),

		field.Enum("status").
			Values("pending", "verified_true", "verified_false", "unverifiable").
			Default("pending"),
		field.Time("verified_at").
			Optional().
			Nillable(),
		field.Text("verification_evidence").
			Optional().
			Nillable(),

		// Provenance of the winning verification
		field.Text("verified_source_org").
			Optional().
			Nillable(),
		field.Text("verified_source_url").
			Optional().
			Nillable(),
		field.Text("verified_source_data").
			Optional().
			Nillable().
			Comment("Authoritative links, verbatim JSON"),

		field.Int("raw_post_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Fact.
func (Fact) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("raw_post", RawPost.Type).
			Ref("facts").
			Field("raw_post_id").
			Unique(),
		edge.To("references", VerificationReference.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("evaluations", FactEvaluation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Fact.
func (Fact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("raw_post_id"),
		index.Fields("canonical_claim"),
		// Verifier eligibility scan
		index.Fields("is_verifiable", "status"),
	}
}

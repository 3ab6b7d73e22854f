package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PostQualityAssessment holds the schema definition for the
// PostQualityAssessment entity.
//
// Per-post quality signals feeding author statistics: how unique the post's
// claims are versus other authors, whether the author said it first, how much
// of the text is information versus noise.
type PostQualityAssessment struct {
	ent.Schema
}

// Fields of the PostQualityAssessment.
func (PostQualityAssessment) Fields() []ent.Field {
	return []ent.Field{
		field.Int("raw_post_id").
			Unique(),
		field.Int("author_id"),

		// Uniqueness
		field.Float("uniqueness_score").
			Optional().
			Nillable(),
		field.Text("uniqueness_note").
			Optional().
			Nillable(),
		field.Bool("is_first_mover").
			Optional().
			Nillable(),
		field.Int("similar_claim_count").
			Default(0).
			Comment("Matching claims elsewhere, excluding this post"),
		field.Int("similar_author_count").
			Default(0),

		// Effectiveness
		field.Float("effectiveness_score").
			Optional().
			Nillable(),
		field.Text("effectiveness_note").
			Optional().
			Nillable(),
		field.Float("noise_ratio").
			Optional().
			Nillable(),
		field.JSON("noise_types", []string{}).
			Optional().
			Comment("Subset of emotional_rhetoric, entertainment, filler"),

		field.Time("assessed_at").
			Default(time.Now),
	}
}

// Edges of the PostQualityAssessment.
func (PostQualityAssessment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("raw_post", RawPost.Type).
			Ref("quality_assessment").
			Field("raw_post_id").
			Unique().
			Required(),
		edge.From("author", Author.Type).
			Ref("quality_assessments").
			Field("author_id").
			Unique().
			Required(),
	}
}

// Indexes of the PostQualityAssessment.
func (PostQualityAssessment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("author_id"),
	}
}

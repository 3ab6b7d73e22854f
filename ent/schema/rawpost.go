package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RawPost holds the schema definition for the RawPost entity.
// Ingested content as produced by the platform scrapers. Dedup identity is
// (source, external_id). The enricher fills enriched_content; the extractor
// flips is_processed exactly once, atomically with the claim-graph write.
type RawPost struct {
	ent.Schema
}

// Fields of the RawPost.
func (RawPost) Fields() []ent.Field {
	return []ent.Field{
		field.String("source").
			Comment("Originating platform, e.g. 'twitter'"),
		field.String("external_id"),
		field.Text("content"),
		field.Text("enriched_content").
			Optional().
			Nillable().
			Comment("Content plus quoted/thread/reply context, assembled by the enricher"),
		field.Bool("context_fetched").
			Default(false),
		field.Bool("has_context").
			Default(false),
		field.String("author_name"),
		field.String("author_platform_id").
			Optional().
			Nillable(),
		field.String("url"),
		field.Time("posted_at"),
		field.Time("collected_at").
			Default(time.Now),
		field.Text("raw_metadata").
			Optional().
			Nillable().
			Comment("Platform payload, verbatim JSON"),
		field.Text("media_json").
			Optional().
			Nillable().
			Comment(`JSON array: [{"type":"photo"|"video"|"gif","url":"..."}]`),
		field.Bool("is_processed").
			Default(false),
		field.Time("processed_at").
			Optional().
			Nillable(),
		field.Int("monitored_source_id").
			Optional().
			Nillable(),
	}
}

// Edges of the RawPost.
func (RawPost) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("monitored_source", MonitoredSource.Type).
			Ref("raw_posts").
			Field("monitored_source_id").
			Unique(),
		edge.To("facts", Fact.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("logics", Logic.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("quality_assessment", PostQualityAssessment.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the RawPost.
func (RawPost) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source", "external_id").
			Unique(),
		index.Fields("is_processed"),
		index.Fields("author_platform_id"),
		index.Fields("posted_at"),
	}
}

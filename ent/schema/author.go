package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Author holds the schema definition for the Author entity.
// A tracked commentator, identified by (platform, platform_id). The profiler
// fills the role fields once; credibility_tier is never rewritten after that.
type Author struct {
	ent.Schema
}

// Fields of the Author.
func (Author) Fields() []ent.Field {
	return []ent.Field{
		field.String("name"),
		field.String("platform").
			Comment("e.g., 'twitter', 'weibo', 'youtube'"),
		field.String("platform_id").
			Optional().
			Nillable().
			Comment("Platform-native user identifier"),
		field.String("profile_url").
			Optional().
			Nillable(),
		field.Text("description").
			Optional().
			Nillable().
			Comment("Platform bio, as collected"),

		// Profiler-owned fields (written once, see profile_fetched)
		field.Text("role").
			Optional().
			Nillable().
			Comment("e.g., 'hedge fund founder', 'academic researcher'"),
		field.Text("expertise_areas").
			Optional().
			Nillable(),
		field.Text("known_biases").
			Optional().
			Nillable(),
		field.Int("credibility_tier").
			Optional().
			Nillable().
			Comment("1=top authority .. 5=unknown"),
		field.Text("profile_note").
			Optional().
			Nillable(),
		field.Bool("profile_fetched").
			Default(false),
		field.Time("profile_fetched_at").
			Optional().
			Nillable(),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Author.
func (Author) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("conclusions", Conclusion.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("solutions", Solution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("monitored_sources", MonitoredSource.Type),
		edge.To("quality_assessments", PostQualityAssessment.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("stats", AuthorStats.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Author.
func (Author) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
		// Identity tuple; NULL platform_id rows are treated as distinct
		index.Fields("platform", "platform_id").
			Unique(),
		index.Fields("profile_fetched"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MonitoredSource holds the schema definition for the MonitoredSource entity.
// A registered URL (single post or author profile) the system re-polls.
type MonitoredSource struct {
	ent.Schema
}

// Fields of the MonitoredSource.
func (MonitoredSource) Fields() []ent.Field {
	return []ent.Field{
		field.String("url"),
		field.Enum("source_type").
			Values("post", "profile"),
		field.String("platform"),
		field.String("platform_id").
			Comment("Post ID or user ID, platform-native"),
		field.Int("author_id").
			Optional().
			Nillable(),
		field.Bool("is_active").
			Default(true),
		field.Int("fetch_interval_minutes").
			Default(60),
		field.Time("last_fetched_at").
			Optional().
			Nillable(),
		field.Bool("history_fetched").
			Default(false).
			Comment("Profile sources: the one-year backfill already ran"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the MonitoredSource.
func (MonitoredSource) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("author", Author.Type).
			Ref("monitored_sources").
			Field("author_id").
			Unique(),
		edge.To("raw_posts", RawPost.Type),
	}
}

// Indexes of the MonitoredSource.
func (MonitoredSource) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("platform", "platform_id", "source_type").
			Unique(),
		index.Fields("is_active", "last_fetched_at"),
	}
}

// Code generated by ent, DO NOT EDIT.

package monitoredsource

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the monitoredsource type in the database.
	Label = "monitored_source"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldSourceType holds the string denoting the source_type field in the database.
	FieldSourceType = "source_type"
	// FieldPlatform holds the string denoting the platform field in the database.
	FieldPlatform = "platform"
	// FieldPlatformID holds the string denoting the platform_id field in the database.
	FieldPlatformID = "platform_id"
	// FieldAuthorID holds the string denoting the author_id field in the database.
	FieldAuthorID = "author_id"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldFetchIntervalMinutes holds the string denoting the fetch_interval_minutes field in the database.
	FieldFetchIntervalMinutes = "fetch_interval_minutes"
	// FieldLastFetchedAt holds the string denoting the last_fetched_at field in the database.
	FieldLastFetchedAt = "last_fetched_at"
	// FieldHistoryFetched holds the string denoting the history_fetched field in the database.
	FieldHistoryFetched = "history_fetched"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeAuthor holds the string denoting the author edge name in mutations.
	EdgeAuthor = "author"
	// EdgeRawPosts holds the string denoting the raw_posts edge name in mutations.
	EdgeRawPosts = "raw_posts"
	// Table holds the table name of the monitoredsource in the database.
	Table = "monitored_sources"
	// AuthorTable is the table that holds the author relation/edge.
	AuthorTable = "monitored_sources"
	// AuthorInverseTable is the table name for the Author entity.
	// It exists in this package in order to avoid circular dependency with the "author" package.
	AuthorInverseTable = "authors"
	// AuthorColumn is the table column denoting the author relation/edge.
	AuthorColumn = "author_id"
	// RawPostsTable is the table that holds the raw_posts relation/edge.
	RawPostsTable = "raw_posts"
	// RawPostsInverseTable is the table name for the RawPost entity.
	// It exists in this package in order to avoid circular dependency with the "rawpost" package.
	RawPostsInverseTable = "raw_posts"
	// RawPostsColumn is the table column denoting the raw_posts relation/edge.
	RawPostsColumn = "monitored_source_id"
)

// Columns holds all SQL columns for monitoredsource fields.
var Columns = []string{
	FieldID,
	FieldURL,
	FieldSourceType,
	FieldPlatform,
	FieldPlatformID,
	FieldAuthorID,
	FieldIsActive,
	FieldFetchIntervalMinutes,
	FieldLastFetchedAt,
	FieldHistoryFetched,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultFetchIntervalMinutes holds the default value on creation for the "fetch_interval_minutes" field.
	DefaultFetchIntervalMinutes int
	// DefaultHistoryFetched holds the default value on creation for the "history_fetched" field.
	DefaultHistoryFetched bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// SourceType defines the type for the "source_type" enum field.
type SourceType string

// SourceType values.
const (
	SourceTypePost    SourceType = "post"
	SourceTypeProfile SourceType = "profile"
)

func (st SourceType) String() string {
	return string(st)
}

// SourceTypeValidator is a validator for the "source_type" field enum values. It is called by the builders before save.
func SourceTypeValidator(st SourceType) error {
	switch st {
	case SourceTypePost, SourceTypeProfile:
		return nil
	default:
		return fmt.Errorf("monitoredsource: invalid enum value for source_type field: %q", st)
	}
}

// OrderOption defines the ordering options for the MonitoredSource queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// BySourceType orders the results by the source_type field.
func BySourceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceType, opts...).ToFunc()
}

// ByPlatform orders the results by the platform field.
func ByPlatform(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlatform, opts...).ToFunc()
}

// ByPlatformID orders the results by the platform_id field.
func ByPlatformID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlatformID, opts...).ToFunc()
}

// ByAuthorID orders the results by the author_id field.
func ByAuthorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthorID, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByFetchIntervalMinutes orders the results by the fetch_interval_minutes field.
func ByFetchIntervalMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFetchIntervalMinutes, opts...).ToFunc()
}

// ByLastFetchedAt orders the results by the last_fetched_at field.
func ByLastFetchedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastFetchedAt, opts...).ToFunc()
}

// ByHistoryFetched orders the results by the history_fetched field.
func ByHistoryFetched(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHistoryFetched, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAuthorField orders the results by author field.
func ByAuthorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuthorStep(), sql.OrderByField(field, opts...))
	}
}

// ByRawPostsCount orders the results by raw_posts count.
func ByRawPostsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRawPostsStep(), opts...)
	}
}

// ByRawPosts orders the results by raw_posts terms.
func ByRawPosts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRawPostsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAuthorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuthorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AuthorTable, AuthorColumn),
	)
}
func newRawPostsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RawPostsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RawPostsTable, RawPostsColumn),
	)
}

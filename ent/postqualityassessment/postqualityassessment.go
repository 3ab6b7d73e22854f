// Code generated by ent, DO NOT EDIT.

package postqualityassessment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the postqualityassessment type in the database.
	Label = "post_quality_assessment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRawPostID holds the string denoting the raw_post_id field in the database.
	FieldRawPostID = "raw_post_id"
	// FieldAuthorID holds the string denoting the author_id field in the database.
	FieldAuthorID = "author_id"
	// FieldUniquenessScore holds the string denoting the uniqueness_score field in the database.
	FieldUniquenessScore = "uniqueness_score"
	// FieldUniquenessNote holds the string denoting the uniqueness_note field in the database.
	FieldUniquenessNote = "uniqueness_note"
	// FieldIsFirstMover holds the string denoting the is_first_mover field in the database.
	FieldIsFirstMover = "is_first_mover"
	// FieldSimilarClaimCount holds the string denoting the similar_claim_count field in the database.
	FieldSimilarClaimCount = "similar_claim_count"
	// FieldSimilarAuthorCount holds the string denoting the similar_author_count field in the database.
	FieldSimilarAuthorCount = "similar_author_count"
	// FieldEffectivenessScore holds the string denoting the effectiveness_score field in the database.
	FieldEffectivenessScore = "effectiveness_score"
	// FieldEffectivenessNote holds the string denoting the effectiveness_note field in the database.
	FieldEffectivenessNote = "effectiveness_note"
	// FieldNoiseRatio holds the string denoting the noise_ratio field in the database.
	FieldNoiseRatio = "noise_ratio"
	// FieldNoiseTypes holds the string denoting the noise_types field in the database.
	FieldNoiseTypes = "noise_types"
	// FieldAssessedAt holds the string denoting the assessed_at field in the database.
	FieldAssessedAt = "assessed_at"
	// EdgeRawPost holds the string denoting the raw_post edge name in mutations.
	EdgeRawPost = "raw_post"
	// EdgeAuthor holds the string denoting the author edge name in mutations.
	EdgeAuthor = "author"
	// Table holds the table name of the postqualityassessment in the database.
	Table = "post_quality_assessments"
	// RawPostTable is the table that holds the raw_post relation/edge.
	RawPostTable = "post_quality_assessments"
	// RawPostInverseTable is the table name for the RawPost entity.
	// It exists in this package in order to avoid circular dependency with the "rawpost" package.
	RawPostInverseTable = "raw_posts"
	// RawPostColumn is the table column denoting the raw_post relation/edge.
	RawPostColumn = "raw_post_id"
	// AuthorTable is the table that holds the author relation/edge.
	AuthorTable = "post_quality_assessments"
	// AuthorInverseTable is the table name for the Author entity.
	// It exists in this package in order to avoid circular dependency with the "author" package.
	AuthorInverseTable = "authors"
	// AuthorColumn is the table column denoting the author relation/edge.
	AuthorColumn = "author_id"
)

// Columns holds all SQL columns for postqualityassessment fields.
var Columns = []string{
	FieldID,
	FieldRawPostID,
	FieldAuthorID,
	FieldUniquenessScore,
	FieldUniquenessNote,
	FieldIsFirstMover,
	FieldSimilarClaimCount,
	FieldSimilarAuthorCount,
	FieldEffectivenessScore,
	FieldEffectivenessNote,
	FieldNoiseRatio,
	FieldNoiseTypes,
	FieldAssessedAt,
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
	// DefaultSimilarClaimCount holds the default value on creation for the "similar_claim_count" field.
	DefaultSimilarClaimCount int
	// DefaultSimilarAuthorCount holds the default value on creation for the "similar_author_count" field.
	DefaultSimilarAuthorCount int
	// DefaultAssessedAt holds the default value on creation for the "assessed_at" field.
	DefaultAssessedAt func() time.Time
)

// OrderOption defines the ordering options for the PostQualityAssessment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRawPostID orders the results by the raw_post_id field.
func ByRawPostID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawPostID, opts...).ToFunc()
}

// ByAuthorID orders the results by the author_id field.
func ByAuthorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthorID, opts...).ToFunc()
}

// ByUniquenessScore orders the results by the uniqueness_score field.
func ByUniquenessScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUniquenessScore, opts...).ToFunc()
}

// ByUniquenessNote orders the results by the uniqueness_note field.
func ByUniquenessNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUniquenessNote, opts...).ToFunc()
}

// ByIsFirstMover orders the results by the is_first_mover field.
func ByIsFirstMover(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsFirstMover, opts...).ToFunc()
}

// BySimilarClaimCount orders the results by the similar_claim_count field.
func BySimilarClaimCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSimilarClaimCount, opts...).ToFunc()
}

// BySimilarAuthorCount orders the results by the similar_author_count field.
func BySimilarAuthorCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSimilarAuthorCount, opts...).ToFunc()
}

// ByEffectivenessScore orders the results by the effectiveness_score field.
func ByEffectivenessScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEffectivenessScore, opts...).ToFunc()
}

// ByEffectivenessNote orders the results by the effectiveness_note field.
func ByEffectivenessNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEffectivenessNote, opts...).ToFunc()
}

// ByNoiseRatio orders the results by the noise_ratio field.
func ByNoiseRatio(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNoiseRatio, opts...).ToFunc()
}

// ByAssessedAt orders the results by the assessed_at field.
func ByAssessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssessedAt, opts...).ToFunc()
}

// ByRawPostField orders the results by raw_post field.
func ByRawPostField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRawPostStep(), sql.OrderByField(field, opts...))
	}
}

// ByAuthorField orders the results by author field.
func ByAuthorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuthorStep(), sql.OrderByField(field, opts...))
	}
}
func newRawPostStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RawPostInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, RawPostTable, RawPostColumn),
	)
}
func newAuthorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuthorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AuthorTable, AuthorColumn),
	)
}

// Code generated by ent, DO NOT EDIT.

package authorstats

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the authorstats type in the database.
	Label = "author_stats"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAuthorID holds the string denoting the author_id field in the database.
	FieldAuthorID = "author_id"
	// FieldFactAccuracyRate holds the string denoting the fact_accuracy_rate field in the database.
	FieldFactAccuracyRate = "fact_accuracy_rate"
	// FieldFactAccuracySample holds the string denoting the fact_accuracy_sample field in the database.
	FieldFactAccuracySample = "fact_accuracy_sample"
	// FieldConclusionAccuracyRate holds the string denoting the conclusion_accuracy_rate field in the database.
	FieldConclusionAccuracyRate = "conclusion_accuracy_rate"
	// FieldConclusionAccuracySample holds the string denoting the conclusion_accuracy_sample field in the database.
	FieldConclusionAccuracySample = "conclusion_accuracy_sample"
	// FieldPredictionAccuracyRate holds the string denoting the prediction_accuracy_rate field in the database.
	FieldPredictionAccuracyRate = "prediction_accuracy_rate"
	// FieldPredictionAccuracySample holds the string denoting the prediction_accuracy_sample field in the database.
	FieldPredictionAccuracySample = "prediction_accuracy_sample"
	// FieldLogicRigorScore holds the string denoting the logic_rigor_score field in the database.
	FieldLogicRigorScore = "logic_rigor_score"
	// FieldLogicRigorSample holds the string denoting the logic_rigor_sample field in the database.
	FieldLogicRigorSample = "logic_rigor_sample"
	// FieldRecommendationReliabilityRate holds the string denoting the recommendation_reliability_rate field in the database.
	FieldRecommendationReliabilityRate = "recommendation_reliability_rate"
	// FieldRecommendationReliabilitySample holds the string denoting the recommendation_reliability_sample field in the database.
	FieldRecommendationReliabilitySample = "recommendation_reliability_sample"
	// FieldContentUniquenessScore holds the string denoting the content_uniqueness_score field in the database.
	FieldContentUniquenessScore = "content_uniqueness_score"
	// FieldContentUniquenessSample holds the string denoting the content_uniqueness_sample field in the database.
	FieldContentUniquenessSample = "content_uniqueness_sample"
	// FieldContentEffectivenessScore holds the string denoting the content_effectiveness_score field in the database.
	FieldContentEffectivenessScore = "content_effectiveness_score"
	// FieldContentEffectivenessSample holds the string denoting the content_effectiveness_sample field in the database.
	FieldContentEffectivenessSample = "content_effectiveness_sample"
	// FieldOverallCredibilityScore holds the string denoting the overall_credibility_score field in the database.
	FieldOverallCredibilityScore = "overall_credibility_score"
	// FieldTotalPostsAnalyzed holds the string denoting the total_posts_analyzed field in the database.
	FieldTotalPostsAnalyzed = "total_posts_analyzed"
	// FieldLastUpdated holds the string denoting the last_updated field in the database.
	FieldLastUpdated = "last_updated"
	// EdgeAuthor holds the string denoting the author edge name in mutations.
	EdgeAuthor = "author"
	// Table holds the table name of the authorstats in the database.
	Table = "author_stats"
	// AuthorTable is the table that holds the author relation/edge.
	AuthorTable = "author_stats"
	// AuthorInverseTable is the table name for the Author entity.
	// It exists in this package in order to avoid circular dependency with the "author" package.
	AuthorInverseTable = "authors"
	// AuthorColumn is the table column denoting the author relation/edge.
	AuthorColumn = "author_id"
)

// Columns holds all SQL columns for authorstats fields.
var Columns = []string{
	FieldID,
	FieldAuthorID,
	FieldFactAccuracyRate,
	FieldFactAccuracySample,
	FieldConclusionAccuracyRate,
	FieldConclusionAccuracySample,
	FieldPredictionAccuracyRate,
	FieldPredictionAccuracySample,
	FieldLogicRigorScore,
	FieldLogicRigorSample,
	FieldRecommendationReliabilityRate,
	FieldRecommendationReliabilitySample,
	FieldContentUniquenessScore,
	FieldContentUniquenessSample,
	FieldContentEffectivenessScore,
	FieldContentEffectivenessSample,
	FieldOverallCredibilityScore,
	FieldTotalPostsAnalyzed,
	FieldLastUpdated,
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
	// DefaultFactAccuracySample holds the default value on creation for the "fact_accuracy_sample" field.
	DefaultFactAccuracySample int
	// DefaultConclusionAccuracySample holds the default value on creation for the "conclusion_accuracy_sample" field.
	DefaultConclusionAccuracySample int
	// DefaultPredictionAccuracySample holds the default value on creation for the "prediction_accuracy_sample" field.
	DefaultPredictionAccuracySample int
	// DefaultLogicRigorSample holds the default value on creation for the "logic_rigor_sample" field.
	DefaultLogicRigorSample int
	// DefaultRecommendationReliabilitySample holds the default value on creation for the "recommendation_reliability_sample" field.
	DefaultRecommendationReliabilitySample int
	// DefaultContentUniquenessSample holds the default value on creation for the "content_uniqueness_sample" field.
	DefaultContentUniquenessSample int
	// DefaultContentEffectivenessSample holds the default value on creation for the "content_effectiveness_sample" field.
	DefaultContentEffectivenessSample int
	// DefaultTotalPostsAnalyzed holds the default value on creation for the "total_posts_analyzed" field.
	DefaultTotalPostsAnalyzed int
	// DefaultLastUpdated holds the default value on creation for the "last_updated" field.
	DefaultLastUpdated func() time.Time
	// UpdateDefaultLastUpdated holds the default value on update for the "last_updated" field.
	UpdateDefaultLastUpdated func() time.Time
)

// OrderOption defines the ordering options for the AuthorStats queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAuthorID orders the results by the author_id field.
func ByAuthorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthorID, opts...).ToFunc()
}

// ByFactAccuracyRate orders the results by the fact_accuracy_rate field.
func ByFactAccuracyRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFactAccuracyRate, opts...).ToFunc()
}

// ByFactAccuracySample orders the results by the fact_accuracy_sample field.
func ByFactAccuracySample(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFactAccuracySample, opts...).ToFunc()
}

// ByConclusionAccuracyRate orders the results by the conclusion_accuracy_rate field.
func ByConclusionAccuracyRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConclusionAccuracyRate, opts...).ToFunc()
}

// ByConclusionAccuracySample orders the results by the conclusion_accuracy_sample field.
func ByConclusionAccuracySample(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConclusionAccuracySample, opts...).ToFunc()
}

// ByPredictionAccuracyRate orders the results by the prediction_accuracy_rate field.
func ByPredictionAccuracyRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPredictionAccuracyRate, opts...).ToFunc()
}

// ByPredictionAccuracySample orders the results by the prediction_accuracy_sample field.
func ByPredictionAccuracySample(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPredictionAccuracySample, opts...).ToFunc()
}

// ByLogicRigorScore orders the results by the logic_rigor_score field.
func ByLogicRigorScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLogicRigorScore, opts...).ToFunc()
}

// ByLogicRigorSample orders the results by the logic_rigor_sample field.
func ByLogicRigorSample(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLogicRigorSample, opts...).ToFunc()
}

// ByRecommendationReliabilityRate orders the results by the recommendation_reliability_rate field.
func ByRecommendationReliabilityRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecommendationReliabilityRate, opts...).ToFunc()
}

// ByRecommendationReliabilitySample orders the results by the recommendation_reliability_sample field.
func ByRecommendationReliabilitySample(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecommendationReliabilitySample, opts...).ToFunc()
}

// ByContentUniquenessScore orders the results by the content_uniqueness_score field.
func ByContentUniquenessScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentUniquenessScore, opts...).ToFunc()
}

// ByContentUniquenessSample orders the results by the content_uniqueness_sample field.
func ByContentUniquenessSample(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentUniquenessSample, opts...).ToFunc()
}

// ByContentEffectivenessScore orders the results by the content_effectiveness_score field.
func ByContentEffectivenessScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentEffectivenessScore, opts...).ToFunc()
}

// ByContentEffectivenessSample orders the results by the content_effectiveness_sample field.
func ByContentEffectivenessSample(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentEffectivenessSample, opts...).ToFunc()
}

// ByOverallCredibilityScore orders the results by the overall_credibility_score field.
func ByOverallCredibilityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallCredibilityScore, opts...).ToFunc()
}

// ByTotalPostsAnalyzed orders the results by the total_posts_analyzed field.
func ByTotalPostsAnalyzed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalPostsAnalyzed, opts...).ToFunc()
}

// ByLastUpdated orders the results by the last_updated field.
func ByLastUpdated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUpdated, opts...).ToFunc()
}

// ByAuthorField orders the results by author field.
func ByAuthorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuthorStep(), sql.OrderByField(field, opts...))
	}
}
func newAuthorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuthorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, AuthorTable, AuthorColumn),
	)
}

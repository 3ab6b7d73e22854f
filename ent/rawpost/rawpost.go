// Code generated by ent, DO NOT EDIT.

package rawpost

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the rawpost type in the database.
	Label = "raw_post"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldExternalID holds the string denoting the external_id field in the database.
	FieldExternalID = "external_id"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldEnrichedContent holds the string denoting the enriched_content field in the database.
	FieldEnrichedContent = "enriched_content"
	// FieldContextFetched holds the string denoting the context_fetched field in the database.
	FieldContextFetched = "context_fetched"
	// FieldHasContext holds the string denoting the has_context field in the database.
	FieldHasContext = "has_context"
	// FieldAuthorName holds the string denoting the author_name field in the database.
	FieldAuthorName = "author_name"
	// FieldAuthorPlatformID holds the string denoting the author_platform_id field in the database.
	FieldAuthorPlatformID = "author_platform_id"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldPostedAt holds the string denoting the posted_at field in the database.
	FieldPostedAt = "posted_at"
	// FieldCollectedAt holds the string denoting the collected_at field in the database.
	FieldCollectedAt = "collected_at"
	// FieldRawMetadata holds the string denoting the raw_metadata field in the database.
	FieldRawMetadata = "raw_metadata"
	// FieldMediaJSON holds the string denoting the media_json field in the database.
	FieldMediaJSON = "media_json"
	// FieldIsProcessed holds the string denoting the is_processed field in the database.
	FieldIsProcessed = "is_processed"
	// FieldProcessedAt holds the string denoting the processed_at field in the database.
	FieldProcessedAt = "processed_at"
	// FieldMonitoredSourceID holds the string denoting the monitored_source_id field in the database.
	FieldMonitoredSourceID = "monitored_source_id"
	// EdgeMonitoredSource holds the string denoting the monitored_source edge name in mutations.
	EdgeMonitoredSource = "monitored_source"
	// EdgeFacts holds the string denoting the facts edge name in mutations.
	EdgeFacts = "facts"
	// EdgeLogics holds the string denoting the logics edge name in mutations.
	EdgeLogics = "logics"
	// EdgeQualityAssessment holds the string denoting the quality_assessment edge name in mutations.
	EdgeQualityAssessment = "quality_assessment"
	// Table holds the table name of the rawpost in the database.
	Table = "raw_posts"
	// MonitoredSourceTable is the table that holds the monitored_source relation/edge.
	MonitoredSourceTable = "raw_posts"
	// MonitoredSourceInverseTable is the table name for the MonitoredSource entity.
	// It exists in this package in order to avoid circular dependency with the "monitoredsource" package.
	MonitoredSourceInverseTable = "monitored_sources"
	// MonitoredSourceColumn is the table column denoting the monitored_source relation/edge.
	MonitoredSourceColumn = "monitored_source_id"
	// FactsTable is the table that holds the facts relation/edge.
	FactsTable = "facts"
	// FactsInverseTable is the table name for the Fact entity.
	// It exists in this package in order to avoid circular dependency with the "fact" package.
	FactsInverseTable = "facts"
	// FactsColumn is the table column denoting the facts relation/edge.
	FactsColumn = "raw_post_id"
	// LogicsTable is the table that holds the logics relation/edge.
	LogicsTable = "logics"
	// LogicsInverseTable is the table name for the Logic entity.
	// It exists in this package in order to avoid circular dependency with the "logic" package.
	LogicsInverseTable = "logics"
	// LogicsColumn is the table column denoting the logics relation/edge.
	LogicsColumn = "raw_post_id"
	// QualityAssessmentTable is the table that holds the quality_assessment relation/edge.
	QualityAssessmentTable = "post_quality_assessments"
	// QualityAssessmentInverseTable is the table name for the PostQualityAssessment entity.
	// It exists in this package in order to avoid circular dependency with the "postqualityassessment" package.
	QualityAssessmentInverseTable = "post_quality_assessments"
	// QualityAssessmentColumn is the table column denoting the quality_assessment relation/edge.
	QualityAssessmentColumn = "raw_post_id"
)

// Columns holds all SQL columns for rawpost fields.
var Columns = []string{
	FieldID,
	FieldSource,
	FieldExternalID,
	FieldContent,
	FieldEnrichedContent,
	FieldContextFetched,
	FieldHasContext,
	FieldAuthorName,
	FieldAuthorPlatformID,
	FieldURL,
	FieldPostedAt,
	FieldCollectedAt,
	FieldRawMetadata,
	FieldMediaJSON,
	FieldIsProcessed,
	FieldProcessedAt,
	FieldMonitoredSourceID,
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
	// DefaultContextFetched holds the default value on creation for the "context_fetched" field.
	DefaultContextFetched bool
	// DefaultHasContext holds the default value on creation for the "has_context" field.
	DefaultHasContext bool
	// DefaultCollectedAt holds the default value on creation for the "collected_at" field.
	DefaultCollectedAt func() time.Time
	// DefaultIsProcessed holds the default value on creation for the "is_processed" field.
	DefaultIsProcessed bool
)

// OrderOption defines the ordering options for the RawPost queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByExternalID orders the results by the external_id field.
func ByExternalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalID, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByEnrichedContent orders the results by the enriched_content field.
func ByEnrichedContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnrichedContent, opts...).ToFunc()
}

// ByContextFetched orders the results by the context_fetched field.
func ByContextFetched(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContextFetched, opts...).ToFunc()
}

// ByHasContext orders the results by the has_context field.
func ByHasContext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasContext, opts...).ToFunc()
}

// ByAuthorName orders the results by the author_name field.
func ByAuthorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthorName, opts...).ToFunc()
}

// ByAuthorPlatformID orders the results by the author_platform_id field.
func ByAuthorPlatformID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthorPlatformID, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByPostedAt orders the results by the posted_at field.
func ByPostedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPostedAt, opts...).ToFunc()
}

// ByCollectedAt orders the results by the collected_at field.
func ByCollectedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCollectedAt, opts...).ToFunc()
}

// ByRawMetadata orders the results by the raw_metadata field.
func ByRawMetadata(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawMetadata, opts...).ToFunc()
}

// ByMediaJSON orders the results by the media_json field.
func ByMediaJSON(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMediaJSON, opts...).ToFunc()
}

// ByIsProcessed orders the results by the is_processed field.
func ByIsProcessed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsProcessed, opts...).ToFunc()
}

// ByProcessedAt orders the results by the processed_at field.
func ByProcessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedAt, opts...).ToFunc()
}

// ByMonitoredSourceID orders the results by the monitored_source_id field.
func ByMonitoredSourceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonitoredSourceID, opts...).ToFunc()
}

// ByMonitoredSourceField orders the results by monitored_source field.
func ByMonitoredSourceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMonitoredSourceStep(), sql.OrderByField(field, opts...))
	}
}

// ByFactsCount orders the results by facts count.
func ByFactsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFactsStep(), opts...)
	}
}

// ByFacts orders the results by facts terms.
func ByFacts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFactsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByLogicsCount orders the results by logics count.
func ByLogicsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLogicsStep(), opts...)
	}
}

// ByLogics orders the results by logics terms.
func ByLogics(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLogicsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByQualityAssessmentField orders the results by quality_assessment field.
func ByQualityAssessmentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQualityAssessmentStep(), sql.OrderByField(field, opts...))
	}
}
func newMonitoredSourceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MonitoredSourceInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, MonitoredSourceTable, MonitoredSourceColumn),
	)
}
func newFactsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FactsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FactsTable, FactsColumn),
	)
}
func newLogicsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LogicsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LogicsTable, LogicsColumn),
	)
}
func newQualityAssessmentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QualityAssessmentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, QualityAssessmentTable, QualityAssessmentColumn),
	)
}

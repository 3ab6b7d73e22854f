// Code generated by ent, DO NOT EDIT.

package author

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the author type in the database.
	Label = "author"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldPlatform holds the string denoting the platform field in the database.
	FieldPlatform = "platform"
	// FieldPlatformID holds the string denoting the platform_id field in the database.
	FieldPlatformID = "platform_id"
	// FieldProfileURL holds the string denoting the profile_url field in the database.
	FieldProfileURL = "profile_url"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldExpertiseAreas holds the string denoting the expertise_areas field in the database.
	FieldExpertiseAreas = "expertise_areas"
	// FieldKnownBiases holds the string denoting the known_biases field in the database.
	FieldKnownBiases = "known_biases"
	// FieldCredibilityTier holds the string denoting the credibility_tier field in the database.
	FieldCredibilityTier = "credibility_tier"
	// FieldProfileNote holds the string denoting the profile_note field in the database.
	FieldProfileNote = "profile_note"
	// FieldProfileFetched holds the string denoting the profile_fetched field in the database.
	FieldProfileFetched = "profile_fetched"
	// FieldProfileFetchedAt holds the string denoting the profile_fetched_at field in the database.
	FieldProfileFetchedAt = "profile_fetched_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeConclusions holds the string denoting the conclusions edge name in mutations.
	EdgeConclusions = "conclusions"
	// EdgeSolutions holds the string denoting the solutions edge name in mutations.
	EdgeSolutions = "solutions"
	// EdgeMonitoredSources holds the string denoting the monitored_sources edge name in mutations.
	EdgeMonitoredSources = "monitored_sources"
	// EdgeQualityAssessments holds the string denoting the quality_assessments edge name in mutations.
	EdgeQualityAssessments = "quality_assessments"
	// EdgeStats holds the string denoting the stats edge name in mutations.
	EdgeStats = "stats"
	// Table holds the table name of the author in the database.
	Table = "authors"
	// ConclusionsTable is the table that holds the conclusions relation/edge.
	ConclusionsTable = "conclusions"
	// ConclusionsInverseTable is the table name for the Conclusion entity.
	// It exists in this package in order to avoid circular dependency with the "conclusion" package.
	ConclusionsInverseTable = "conclusions"
	// ConclusionsColumn is the table column denoting the conclusions relation/edge.
	ConclusionsColumn = "author_id"
	// SolutionsTable is the table that holds the solutions relation/edge.
	SolutionsTable = "solutions"
	// SolutionsInverseTable is the table name for the Solution entity.
	// It exists in this package in order to avoid circular dependency with the "solution" package.
	SolutionsInverseTable = "solutions"
	// SolutionsColumn is the table column denoting the solutions relation/edge.
	SolutionsColumn = "author_id"
	// MonitoredSourcesTable is the table that holds the monitored_sources relation/edge.
	MonitoredSourcesTable = "monitored_sources"
	// MonitoredSourcesInverseTable is the table name for the MonitoredSource entity.
	// It exists in this package in order to avoid circular dependency with the "monitoredsource" package.
	MonitoredSourcesInverseTable = "monitored_sources"
	// MonitoredSourcesColumn is the table column denoting the monitored_sources relation/edge.
	MonitoredSourcesColumn = "author_id"
	// QualityAssessmentsTable is the table that holds the quality_assessments relation/edge.
	QualityAssessmentsTable = "post_quality_assessments"
	// QualityAssessmentsInverseTable is the table name for the PostQualityAssessment entity.
	// It exists in this package in order to avoid circular dependency with the "postqualityassessment" package.
	QualityAssessmentsInverseTable = "post_quality_assessments"
	// QualityAssessmentsColumn is the table column denoting the quality_assessments relation/edge.
	QualityAssessmentsColumn = "author_id"
	// StatsTable is the table that holds the stats relation/edge.
	StatsTable = "author_stats"
	// StatsInverseTable is the table name for the AuthorStats entity.
	// It exists in this package in order to avoid circular dependency with the "authorstats" package.
	StatsInverseTable = "author_stats"
	// StatsColumn is the table column denoting the stats relation/edge.
	StatsColumn = "author_id"
)

// Columns holds all SQL columns for author fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldPlatform,
	FieldPlatformID,
	FieldProfileURL,
	FieldDescription,
	FieldRole,
	FieldExpertiseAreas,
	FieldKnownBiases,
	FieldCredibilityTier,
	FieldProfileNote,
	FieldProfileFetched,
	FieldProfileFetchedAt,
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
	// DefaultProfileFetched holds the default value on creation for the "profile_fetched" field.
	DefaultProfileFetched bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Author queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByPlatform orders the results by the platform field.
func ByPlatform(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlatform, opts...).ToFunc()
}

// ByPlatformID orders the results by the platform_id field.
func ByPlatformID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlatformID, opts...).ToFunc()
}

// ByProfileURL orders the results by the profile_url field.
func ByProfileURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfileURL, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByExpertiseAreas orders the results by the expertise_areas field.
func ByExpertiseAreas(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpertiseAreas, opts...).ToFunc()
}

// ByKnownBiases orders the results by the known_biases field.
func ByKnownBiases(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKnownBiases, opts...).ToFunc()
}

// ByCredibilityTier orders the results by the credibility_tier field.
func ByCredibilityTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCredibilityTier, opts...).ToFunc()
}

// ByProfileNote orders the results by the profile_note field.
func ByProfileNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfileNote, opts...).ToFunc()
}

// ByProfileFetched orders the results by the profile_fetched field.
func ByProfileFetched(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfileFetched, opts...).ToFunc()
}

// ByProfileFetchedAt orders the results by the profile_fetched_at field.
func ByProfileFetchedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfileFetchedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByConclusionsCount orders the results by conclusions count.
func ByConclusionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newConclusionsStep(), opts...)
	}
}

// ByConclusions orders the results by conclusions terms.
func ByConclusions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConclusionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySolutionsCount orders the results by solutions count.
func BySolutionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSolutionsStep(), opts...)
	}
}

// BySolutions orders the results by solutions terms.
func BySolutions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSolutionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMonitoredSourcesCount orders the results by monitored_sources count.
func ByMonitoredSourcesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMonitoredSourcesStep(), opts...)
	}
}

// ByMonitoredSources orders the results by monitored_sources terms.
func ByMonitoredSources(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMonitoredSourcesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByQualityAssessmentsCount orders the results by quality_assessments count.
func ByQualityAssessmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newQualityAssessmentsStep(), opts...)
	}
}

// ByQualityAssessments orders the results by quality_assessments terms.
func ByQualityAssessments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQualityAssessmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByStatsField orders the results by stats field.
func ByStatsField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStatsStep(), sql.OrderByField(field, opts...))
	}
}
func newConclusionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConclusionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ConclusionsTable, ConclusionsColumn),
	)
}
func newSolutionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SolutionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SolutionsTable, SolutionsColumn),
	)
}
func newMonitoredSourcesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MonitoredSourcesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MonitoredSourcesTable, MonitoredSourcesColumn),
	)
}
func newQualityAssessmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QualityAssessmentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, QualityAssessmentsTable, QualityAssessmentsColumn),
	)
}
func newStatsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StatsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, StatsTable, StatsColumn),
	)
}

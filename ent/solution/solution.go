// Code generated by ent, DO NOT EDIT.

package solution

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the solution type in the database.
	Label = "solution"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTopicID holds the string denoting the topic_id field in the database.
	FieldTopicID = "topic_id"
	// FieldAuthorID holds the string denoting the author_id field in the database.
	FieldAuthorID = "author_id"
	// FieldClaim holds the string denoting the claim field in the database.
	FieldClaim = "claim"
	// FieldCanonicalClaim holds the string denoting the canonical_claim field in the database.
	FieldCanonicalClaim = "canonical_claim"
	// FieldActionType holds the string denoting the action_type field in the database.
	FieldActionType = "action_type"
	// FieldActionTarget holds the string denoting the action_target field in the database.
	FieldActionTarget = "action_target"
	// FieldActionRationale holds the string denoting the action_rationale field in the database.
	FieldActionRationale = "action_rationale"
	// FieldSimulatedActionNote holds the string denoting the simulated_action_note field in the database.
	FieldSimulatedActionNote = "simulated_action_note"
	// FieldMonitoringSourceOrg holds the string denoting the monitoring_source_org field in the database.
	FieldMonitoringSourceOrg = "monitoring_source_org"
	// FieldMonitoringSourceURL holds the string denoting the monitoring_source_url field in the database.
	FieldMonitoringSourceURL = "monitoring_source_url"
	// FieldMonitoringPeriodNote holds the string denoting the monitoring_period_note field in the database.
	FieldMonitoringPeriodNote = "monitoring_period_note"
	// FieldMonitoringStart holds the string denoting the monitoring_start field in the database.
	FieldMonitoringStart = "monitoring_start"
	// FieldMonitoringEnd holds the string denoting the monitoring_end field in the database.
	FieldMonitoringEnd = "monitoring_end"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSourceURL holds the string denoting the source_url field in the database.
	FieldSourceURL = "source_url"
	// FieldSourcePlatform holds the string denoting the source_platform field in the database.
	FieldSourcePlatform = "source_platform"
	// FieldPostedAt holds the string denoting the posted_at field in the database.
	FieldPostedAt = "posted_at"
	// FieldCollectedAt holds the string denoting the collected_at field in the database.
	FieldCollectedAt = "collected_at"
	// FieldRawExtraction holds the string denoting the raw_extraction field in the database.
	FieldRawExtraction = "raw_extraction"
	// EdgeTopic holds the string denoting the topic edge name in mutations.
	EdgeTopic = "topic"
	// EdgeAuthor holds the string denoting the author edge name in mutations.
	EdgeAuthor = "author"
	// EdgeLogics holds the string denoting the logics edge name in mutations.
	EdgeLogics = "logics"
	// EdgeAssessments holds the string denoting the assessments edge name in mutations.
	EdgeAssessments = "assessments"
	// Table holds the table name of the solution in the database.
	Table = "solutions"
	// TopicTable is the table that holds the topic relation/edge.
	TopicTable = "solutions"
	// TopicInverseTable is the table name for the Topic entity.
	// It exists in this package in order to avoid circular dependency with the "topic" package.
	TopicInverseTable = "topics"
	// TopicColumn is the table column denoting the topic relation/edge.
	TopicColumn = "topic_id"
	// AuthorTable is the table that holds the author relation/edge.
	AuthorTable = "solutions"
	// AuthorInverseTable is the table name for the Author entity.
	// It exists in this package in order to avoid circular dependency with the "author" package.
	AuthorInverseTable = "authors"
	// AuthorColumn is the table column denoting the author relation/edge.
	AuthorColumn = "author_id"
	// LogicsTable is the table that holds the logics relation/edge.
	LogicsTable = "logics"
	// LogicsInverseTable is the table name for the Logic entity.
	// It exists in this package in order to avoid circular dependency with the "logic" package.
	LogicsInverseTable = "logics"
	// LogicsColumn is the table column denoting the logics relation/edge.
	LogicsColumn = "solution_id"
	// AssessmentsTable is the table that holds the assessments relation/edge.
	AssessmentsTable = "solution_assessments"
	// AssessmentsInverseTable is the table name for the SolutionAssessment entity.
	// It exists in this package in order to avoid circular dependency with the "solutionassessment" package.
	AssessmentsInverseTable = "solution_assessments"
	// AssessmentsColumn is the table column denoting the assessments relation/edge.
	AssessmentsColumn = "solution_id"
)

// Columns holds all SQL columns for solution fields.
var Columns = []string{
	FieldID,
	FieldTopicID,
	FieldAuthorID,
	FieldClaim,
	FieldCanonicalClaim,
	FieldActionType,
	FieldActionTarget,
	FieldActionRationale,
	FieldSimulatedActionNote,
	FieldMonitoringSourceOrg,
	FieldMonitoringSourceURL,
	FieldMonitoringPeriodNote,
	FieldMonitoringStart,
	FieldMonitoringEnd,
	FieldStatus,
	FieldSourceURL,
	FieldSourcePlatform,
	FieldPostedAt,
	FieldCollectedAt,
	FieldRawExtraction,
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
	// DefaultCollectedAt holds the default value on creation for the "collected_at" field.
	DefaultCollectedAt func() time.Time
)

// ActionType defines the type for the "action_type" enum field.
type ActionType string

// ActionType values.
const (
	ActionTypeBuy       ActionType = "buy"
	ActionTypeSell      ActionType = "sell"
	ActionTypeHold      ActionType = "hold"
	ActionTypeShort     ActionType = "short"
	ActionTypeDiversify ActionType = "diversify"
	ActionTypeHedge     ActionType = "hedge"
	ActionTypeReduce    ActionType = "reduce"
)

func (at ActionType) String() string {
	return string(at)
}

// ActionTypeValidator is a validator for the "action_type" field enum values. It is called by the builders before save.
func ActionTypeValidator(at ActionType) error {
	switch at {
	case ActionTypeBuy, ActionTypeSell, ActionTypeHold, ActionTypeShort, ActionTypeDiversify, ActionTypeHedge, ActionTypeReduce:
		return nil
	default:
		return fmt.Errorf("solution: invalid enum value for action_type field: %q", at)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending      Status = "pending"
	StatusValidated    Status = "validated"
	StatusInvalidated  Status = "invalidated"
	StatusUnverifiable Status = "unverifiable"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusValidated, StatusInvalidated, StatusUnverifiable:
		return nil
	default:
		return fmt.Errorf("solution: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Solution queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTopicID orders the results by the topic_id field.
func ByTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicID, opts...).ToFunc()
}

// ByAuthorID orders the results by the author_id field.
func ByAuthorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthorID, opts...).ToFunc()
}

// ByClaim orders the results by the claim field.
func ByClaim(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaim, opts...).ToFunc()
}

// ByCanonicalClaim orders the results by the canonical_claim field.
func ByCanonicalClaim(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanonicalClaim, opts...).ToFunc()
}

// ByActionType orders the results by the action_type field.
func ByActionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionType, opts...).ToFunc()
}

// ByActionTarget orders the results by the action_target field.
func ByActionTarget(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionTarget, opts...).ToFunc()
}

// ByActionRationale orders the results by the action_rationale field.
func ByActionRationale(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionRationale, opts...).ToFunc()
}

// BySimulatedActionNote orders the results by the simulated_action_note field.
func BySimulatedActionNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSimulatedActionNote, opts...).ToFunc()
}

// ByMonitoringSourceOrg orders the results by the monitoring_source_org field.
func ByMonitoringSourceOrg(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonitoringSourceOrg, opts...).ToFunc()
}

// ByMonitoringSourceURL orders the results by the monitoring_source_url field.
func ByMonitoringSourceURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonitoringSourceURL, opts...).ToFunc()
}

// ByMonitoringPeriodNote orders the results by the monitoring_period_note field.
func ByMonitoringPeriodNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonitoringPeriodNote, opts...).ToFunc()
}

// ByMonitoringStart orders the results by the monitoring_start field.
func ByMonitoringStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonitoringStart, opts...).ToFunc()
}

// ByMonitoringEnd orders the results by the monitoring_end field.
func ByMonitoringEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonitoringEnd, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySourceURL orders the results by the source_url field.
func BySourceURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceURL, opts...).ToFunc()
}

// BySourcePlatform orders the results by the source_platform field.
func BySourcePlatform(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourcePlatform, opts...).ToFunc()
}

// ByPostedAt orders the results by the posted_at field.
func ByPostedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPostedAt, opts...).ToFunc()
}

// ByCollectedAt orders the results by the collected_at field.
func ByCollectedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCollectedAt, opts...).ToFunc()
}

// ByRawExtraction orders the results by the raw_extraction field.
func ByRawExtraction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawExtraction, opts...).ToFunc()
}

// ByTopicField orders the results by topic field.
func ByTopicField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTopicStep(), sql.OrderByField(field, opts...))
	}
}

// ByAuthorField orders the results by author field.
func ByAuthorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuthorStep(), sql.OrderByField(field, opts...))
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

// ByAssessmentsCount orders the results by assessments count.
func ByAssessmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAssessmentsStep(), opts...)
	}
}

// ByAssessments orders the results by assessments terms.
func ByAssessments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAssessmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTopicStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TopicInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TopicTable, TopicColumn),
	)
}
func newAuthorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuthorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AuthorTable, AuthorColumn),
	)
}
func newLogicsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LogicsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LogicsTable, LogicsColumn),
	)
}
func newAssessmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AssessmentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AssessmentsTable, AssessmentsColumn),
	)
}

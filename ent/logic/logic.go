// Code generated by ent, DO NOT EDIT.

package logic

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the logic type in the database.
	Label = "logic"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLogicType holds the string denoting the logic_type field in the database.
	FieldLogicType = "logic_type"
	// FieldConclusionID holds the string denoting the conclusion_id field in the database.
	FieldConclusionID = "conclusion_id"
	// FieldSolutionID holds the string denoting the solution_id field in the database.
	FieldSolutionID = "solution_id"
	// FieldRawPostID holds the string denoting the raw_post_id field in the database.
	FieldRawPostID = "raw_post_id"
	// FieldSupportingFactIds holds the string denoting the supporting_fact_ids field in the database.
	FieldSupportingFactIds = "supporting_fact_ids"
	// FieldAssumptionFactIds holds the string denoting the assumption_fact_ids field in the database.
	FieldAssumptionFactIds = "assumption_fact_ids"
	// FieldSourceConclusionIds holds the string denoting the source_conclusion_ids field in the database.
	FieldSourceConclusionIds = "source_conclusion_ids"
	// FieldLogicCompleteness holds the string denoting the logic_completeness field in the database.
	FieldLogicCompleteness = "logic_completeness"
	// FieldLogicNote holds the string denoting the logic_note field in the database.
	FieldLogicNote = "logic_note"
	// FieldOneSentenceSummary holds the string denoting the one_sentence_summary field in the database.
	FieldOneSentenceSummary = "one_sentence_summary"
	// FieldAssessedAt holds the string denoting the assessed_at field in the database.
	FieldAssessedAt = "assessed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeConclusion holds the string denoting the conclusion edge name in mutations.
	EdgeConclusion = "conclusion"
	// EdgeSolution holds the string denoting the solution edge name in mutations.
	EdgeSolution = "solution"
	// EdgeRawPost holds the string denoting the raw_post edge name in mutations.
	EdgeRawPost = "raw_post"
	// EdgeOutgoingRelations holds the string denoting the outgoing_relations edge name in mutations.
	EdgeOutgoingRelations = "outgoing_relations"
	// EdgeIncomingRelations holds the string denoting the incoming_relations edge name in mutations.
	EdgeIncomingRelations = "incoming_relations"
	// Table holds the table name of the logic in the database.
	Table = "logics"
	// ConclusionTable is the table that holds the conclusion relation/edge.
	ConclusionTable = "logics"
	// ConclusionInverseTable is the table name for the Conclusion entity.
	// It exists in this package in order to avoid circular dependency with the "conclusion" package.
	ConclusionInverseTable = "conclusions"
	// ConclusionColumn is the table column denoting the conclusion relation/edge.
	ConclusionColumn = "conclusion_id"
	// SolutionTable is the table that holds the solution relation/edge.
	SolutionTable = "logics"
	// SolutionInverseTable is the table name for the Solution entity.
	// It exists in this package in order to avoid circular dependency with the "solution" package.
	SolutionInverseTable = "solutions"
	// SolutionColumn is the table column denoting the solution relation/edge.
	SolutionColumn = "solution_id"
	// RawPostTable is the table that holds the raw_post relation/edge.
	RawPostTable = "logics"
	// RawPostInverseTable is the table name for the RawPost entity.
	// It exists in this package in order to avoid circular dependency with the "rawpost" package.
	RawPostInverseTable = "raw_posts"
	// RawPostColumn is the table column denoting the raw_post relation/edge.
	RawPostColumn = "raw_post_id"
	// OutgoingRelationsTable is the table that holds the outgoing_relations relation/edge.
	OutgoingRelationsTable = "logic_relations"
	// OutgoingRelationsInverseTable is the table name for the LogicRelation entity.
	// It exists in this package in order to avoid circular dependency with the "logicrelation" package.
	OutgoingRelationsInverseTable = "logic_relations"
	// OutgoingRelationsColumn is the table column denoting the outgoing_relations relation/edge.
	OutgoingRelationsColumn = "from_logic_id"
	// IncomingRelationsTable is the table that holds the incoming_relations relation/edge.
	IncomingRelationsTable = "logic_relations"
	// IncomingRelationsInverseTable is the table name for the LogicRelation entity.
	// It exists in this package in order to avoid circular dependency with the "logicrelation" package.
	IncomingRelationsInverseTable = "logic_relations"
	// IncomingRelationsColumn is the table column denoting the incoming_relations relation/edge.
	IncomingRelationsColumn = "to_logic_id"
)

// Columns holds all SQL columns for logic fields.
var Columns = []string{
	FieldID,
	FieldLogicType,
	FieldConclusionID,
	FieldSolutionID,
	FieldRawPostID,
	FieldSupportingFactIds,
	FieldAssumptionFactIds,
	FieldSourceConclusionIds,
	FieldLogicCompleteness,
	FieldLogicNote,
	FieldOneSentenceSummary,
	FieldAssessedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// LogicType defines the type for the "logic_type" enum field.
type LogicType string

// LogicTypeInference is the default value of the LogicType enum.
const DefaultLogicType = LogicTypeInference

// LogicType values.
const (
	LogicTypeInference  LogicType = "inference"
	LogicTypeDerivation LogicType = "derivation"
)

func (lt LogicType) String() string {
	return string(lt)
}

// LogicTypeValidator is a validator for the "logic_type" field enum values. It is called by the builders before save.
func LogicTypeValidator(lt LogicType) error {
	switch lt {
	case LogicTypeInference, LogicTypeDerivation:
		return nil
	default:
		return fmt.Errorf("logic: invalid enum value for logic_type field: %q", lt)
	}
}

// LogicCompleteness defines the type for the "logic_completeness" enum field.
type LogicCompleteness string

// LogicCompleteness values.
const (
	LogicCompletenessComplete LogicCompleteness = "complete"
	LogicCompletenessPartial  LogicCompleteness = "partial"
	LogicCompletenessWeak     LogicCompleteness = "weak"
	LogicCompletenessInvalid  LogicCompleteness = "invalid"
)

func (lc LogicCompleteness) String() string {
	return string(lc)
}

// LogicCompletenessValidator is a validator for the "logic_completeness" field enum values. It is called by the builders before save.
func LogicCompletenessValidator(lc LogicCompleteness) error {
	switch lc {
	case LogicCompletenessComplete, LogicCompletenessPartial, LogicCompletenessWeak, LogicCompletenessInvalid:
		return nil
	default:
		return fmt.Errorf("logic: invalid enum value for logic_completeness field: %q", lc)
	}
}

// OrderOption defines the ordering options for the Logic queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLogicType orders the results by the logic_type field.
func ByLogicType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLogicType, opts...).ToFunc()
}

// ByConclusionID orders the results by the conclusion_id field.
func ByConclusionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConclusionID, opts...).ToFunc()
}

// BySolutionID orders the results by the solution_id field.
func BySolutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSolutionID, opts...).ToFunc()
}

// ByRawPostID orders the results by the raw_post_id field.
func ByRawPostID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawPostID, opts...).ToFunc()
}

// ByLogicCompleteness orders the results by the logic_completeness field.
func ByLogicCompleteness(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLogicCompleteness, opts...).ToFunc()
}

// ByLogicNote orders the results by the logic_note field.
func ByLogicNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLogicNote, opts...).ToFunc()
}

// ByOneSentenceSummary orders the results by the one_sentence_summary field.
func ByOneSentenceSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOneSentenceSummary, opts...).ToFunc()
}

// ByAssessedAt orders the results by the assessed_at field.
func ByAssessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssessedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByConclusionField orders the results by conclusion field.
func ByConclusionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConclusionStep(), sql.OrderByField(field, opts...))
	}
}

// BySolutionField orders the results by solution field.
func BySolutionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSolutionStep(), sql.OrderByField(field, opts...))
	}
}

// ByRawPostField orders the results by raw_post field.
func ByRawPostField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRawPostStep(), sql.OrderByField(field, opts...))
	}
}

// ByOutgoingRelationsCount orders the results by outgoing_relations count.
func ByOutgoingRelationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newOutgoingRelationsStep(), opts...)
	}
}

// ByOutgoingRelations orders the results by outgoing_relations terms.
func ByOutgoingRelations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOutgoingRelationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByIncomingRelationsCount orders the results by incoming_relations count.
func ByIncomingRelationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newIncomingRelationsStep(), opts...)
	}
}

// ByIncomingRelations orders the results by incoming_relations terms.
func ByIncomingRelations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newIncomingRelationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newConclusionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConclusionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ConclusionTable, ConclusionColumn),
	)
}
func newSolutionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SolutionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SolutionTable, SolutionColumn),
	)
}
func newRawPostStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RawPostInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RawPostTable, RawPostColumn),
	)
}
func newOutgoingRelationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OutgoingRelationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, OutgoingRelationsTable, OutgoingRelationsColumn),
	)
}
func newIncomingRelationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(IncomingRelationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, IncomingRelationsTable, IncomingRelationsColumn),
	)
}

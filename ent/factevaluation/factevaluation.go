// Code generated by ent, DO NOT EDIT.

package factevaluation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the factevaluation type in the database.
	Label = "fact_evaluation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFactID holds the string denoting the fact_id field in the database.
	FieldFactID = "fact_id"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldEvidenceText holds the string denoting the evidence_text field in the database.
	FieldEvidenceText = "evidence_text"
	// FieldEvidenceTier holds the string denoting the evidence_tier field in the database.
	FieldEvidenceTier = "evidence_tier"
	// FieldDataPeriod holds the string denoting the data_period field in the database.
	FieldDataPeriod = "data_period"
	// FieldEvaluatorNotes holds the string denoting the evaluator_notes field in the database.
	FieldEvaluatorNotes = "evaluator_notes"
	// FieldEvaluatedAt holds the string denoting the evaluated_at field in the database.
	FieldEvaluatedAt = "evaluated_at"
	// EdgeFact holds the string denoting the fact edge name in mutations.
	EdgeFact = "fact"
	// Table holds the table name of the factevaluation in the database.
	Table = "fact_evaluations"
	// FactTable is the table that holds the fact relation/edge.
	FactTable = "fact_evaluations"
	// FactInverseTable is the table name for the Fact entity.
	// It exists in this package in order to avoid circular dependency with the "fact" package.
	FactInverseTable = "facts"
	// FactColumn is the table column denoting the fact relation/edge.
	FactColumn = "fact_id"
)

// Columns holds all SQL columns for factevaluation fields.
var Columns = []string{
	FieldID,
	FieldFactID,
	FieldResult,
	FieldEvidenceText,
	FieldEvidenceTier,
	FieldDataPeriod,
	FieldEvaluatorNotes,
	FieldEvaluatedAt,
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
	// DefaultEvaluatedAt holds the default value on creation for the "evaluated_at" field.
	DefaultEvaluatedAt func() time.Time
)

// Result defines the type for the "result" enum field.
type Result string

// Result values.
const (
	ResultTrue        Result = "true"
	ResultFalse       Result = "false"
	ResultUncertain   Result = "uncertain"
	ResultUnavailable Result = "unavailable"
)

func (r Result) String() string {
	return string(r)
}

// ResultValidator is a validator for the "result" field enum values. It is called by the builders before save.
func ResultValidator(r Result) error {
	switch r {
	case ResultTrue, ResultFalse, ResultUncertain, ResultUnavailable:
		return nil
	default:
		return fmt.Errorf("factevaluation: invalid enum value for result field: %q", r)
	}
}

// OrderOption defines the ordering options for the FactEvaluation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFactID orders the results by the fact_id field.
func ByFactID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFactID, opts...).ToFunc()
}

// ByResult orders the results by the result field.
func ByResult(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResult, opts...).ToFunc()
}

// ByEvidenceText orders the results by the evidence_text field.
func ByEvidenceText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvidenceText, opts...).ToFunc()
}

// ByEvidenceTier orders the results by the evidence_tier field.
func ByEvidenceTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvidenceTier, opts...).ToFunc()
}

// ByDataPeriod orders the results by the data_period field.
func ByDataPeriod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDataPeriod, opts...).ToFunc()
}

// ByEvaluatorNotes orders the results by the evaluator_notes field.
func ByEvaluatorNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvaluatorNotes, opts...).ToFunc()
}

// ByEvaluatedAt orders the results by the evaluated_at field.
func ByEvaluatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvaluatedAt, opts...).ToFunc()
}

// ByFactField orders the results by fact field.
func ByFactField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFactStep(), sql.OrderByField(field, opts...))
	}
}
func newFactStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FactInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FactTable, FactColumn),
	)
}

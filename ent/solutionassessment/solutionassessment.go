// Code generated by ent, DO NOT EDIT.

package solutionassessment

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the solutionassessment type in the database.
	Label = "solution_assessment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSolutionID holds the string denoting the solution_id field in the database.
	FieldSolutionID = "solution_id"
	// FieldVerdict holds the string denoting the verdict field in the database.
	FieldVerdict = "verdict"
	// FieldEvidenceText holds the string denoting the evidence_text field in the database.
	FieldEvidenceText = "evidence_text"
	// FieldEvidenceTier holds the string denoting the evidence_tier field in the database.
	FieldEvidenceTier = "evidence_tier"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldRoleFit holds the string denoting the role_fit field in the database.
	FieldRoleFit = "role_fit"
	// FieldRoleFitNote holds the string denoting the role_fit_note field in the database.
	FieldRoleFitNote = "role_fit_note"
	// FieldAssessedAt holds the string denoting the assessed_at field in the database.
	FieldAssessedAt = "assessed_at"
	// EdgeSolution holds the string denoting the solution edge name in mutations.
	EdgeSolution = "solution"
	// Table holds the table name of the solutionassessment in the database.
	Table = "solution_assessments"
	// SolutionTable is the table that holds the solution relation/edge.
	SolutionTable = "solution_assessments"
	// SolutionInverseTable is the table name for the Solution entity.
	// It exists in this package in order to avoid circular dependency with the "solution" package.
	SolutionInverseTable = "solutions"
	// SolutionColumn is the table column denoting the solution relation/edge.
	SolutionColumn = "solution_id"
)

// Columns holds all SQL columns for solutionassessment fields.
var Columns = []string{
	FieldID,
	FieldSolutionID,
	FieldVerdict,
	FieldEvidenceText,
	FieldEvidenceTier,
	FieldNotes,
	FieldRoleFit,
	FieldRoleFitNote,
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
	// DefaultAssessedAt holds the default value on creation for the "assessed_at" field.
	DefaultAssessedAt func() time.Time
)

// Verdict defines the type for the "verdict" enum field.
type Verdict string

// Verdict values.
const (
	VerdictConfirmed    Verdict = "confirmed"
	VerdictRefuted      Verdict = "refuted"
	VerdictPartial      Verdict = "partial"
	VerdictPending      Verdict = "pending"
	VerdictExpired      Verdict = "expired"
	VerdictUnverifiable Verdict = "unverifiable"
)

func (v Verdict) String() string {
	return string(v)
}

// VerdictValidator is a validator for the "verdict" field enum values. It is called by the builders before save.
func VerdictValidator(v Verdict) error {
	switch v {
	case VerdictConfirmed, VerdictRefuted, VerdictPartial, VerdictPending, VerdictExpired, VerdictUnverifiable:
		return nil
	default:
		return fmt.Errorf("solutionassessment: invalid enum value for verdict field: %q", v)
	}
}

// RoleFit defines the type for the "role_fit" enum field.
type RoleFit string

// RoleFit values.
const (
	RoleFitAppropriate  RoleFit = "appropriate"
	RoleFitQuestionable RoleFit = "questionable"
	RoleFitMismatched   RoleFit = "mismatched"
)

func (rf RoleFit) String() string {
	return string(rf)
}

// RoleFitValidator is a validator for the "role_fit" field enum values. It is called by the builders before save.
func RoleFitValidator(rf RoleFit) error {
	switch rf {
	case RoleFitAppropriate, RoleFitQuestionable, RoleFitMismatched:
		return nil
	default:
		return fmt.Errorf("solutionassessment: invalid enum value for role_fit field: %q", rf)
	}
}

// OrderOption defines the ordering options for the SolutionAssessment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySolutionID orders the results by the solution_id field.
func BySolutionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSolutionID, opts...).ToFunc()
}

// ByVerdict orders the results by the verdict field.
func ByVerdict(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerdict, opts...).ToFunc()
}

// ByEvidenceText orders the results by the evidence_text field.
func ByEvidenceText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvidenceText, opts...).ToFunc()
}

// ByEvidenceTier orders the results by the evidence_tier field.
func ByEvidenceTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvidenceTier, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByRoleFit orders the results by the role_fit field.
func ByRoleFit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoleFit, opts...).ToFunc()
}

// ByRoleFitNote orders the results by the role_fit_note field.
func ByRoleFitNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoleFitNote, opts...).ToFunc()
}

// ByAssessedAt orders the results by the assessed_at field.
func ByAssessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssessedAt, opts...).ToFunc()
}

// BySolutionField orders the results by solution field.
func BySolutionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSolutionStep(), sql.OrderByField(field, opts...))
	}
}
func newSolutionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SolutionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SolutionTable, SolutionColumn),
	)
}

// Code generated by ent, DO NOT EDIT.

package conclusionverdict

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the conclusionverdict type in the database.
	Label = "conclusion_verdict"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldConclusionID holds the string denoting the conclusion_id field in the database.
	FieldConclusionID = "conclusion_id"
	// FieldVerdict holds the string denoting the verdict field in the database.
	FieldVerdict = "verdict"
	// FieldLogicTrace holds the string denoting the logic_trace field in the database.
	FieldLogicTrace = "logic_trace"
	// FieldRoleFit holds the string denoting the role_fit field in the database.
	FieldRoleFit = "role_fit"
	// FieldRoleFitNote holds the string denoting the role_fit_note field in the database.
	FieldRoleFitNote = "role_fit_note"
	// FieldDerivedAt holds the string denoting the derived_at field in the database.
	FieldDerivedAt = "derived_at"
	// EdgeConclusion holds the string denoting the conclusion edge name in mutations.
	EdgeConclusion = "conclusion"
	// Table holds the table name of the conclusionverdict in the database.
	Table = "conclusion_verdicts"
	// ConclusionTable is the table that holds the conclusion relation/edge.
	ConclusionTable = "conclusion_verdicts"
	// ConclusionInverseTable is the table name for the Conclusion entity.
	// It exists in this package in order to avoid circular dependency with the "conclusion" package.
	ConclusionInverseTable = "conclusions"
	// ConclusionColumn is the table column denoting the conclusion relation/edge.
	ConclusionColumn = "conclusion_id"
)

// Columns holds all SQL columns for conclusionverdict fields.
var Columns = []string{
	FieldID,
	FieldConclusionID,
	FieldVerdict,
	FieldLogicTrace,
	FieldRoleFit,
	FieldRoleFitNote,
	FieldDerivedAt,
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
	// DefaultDerivedAt holds the default value on creation for the "derived_at" field.
	DefaultDerivedAt func() time.Time
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
		return fmt.Errorf("conclusionverdict: invalid enum value for verdict field: %q", v)
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
		return fmt.Errorf("conclusionverdict: invalid enum value for role_fit field: %q", rf)
	}
}

// OrderOption defines the ordering options for the ConclusionVerdict queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByConclusionID orders the results by the conclusion_id field.
func ByConclusionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConclusionID, opts...).ToFunc()
}

// ByVerdict orders the results by the verdict field.
func ByVerdict(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerdict, opts...).ToFunc()
}

// ByRoleFit orders the results by the role_fit field.
func ByRoleFit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoleFit, opts...).ToFunc()
}

// ByRoleFitNote orders the results by the role_fit_note field.
func ByRoleFitNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoleFitNote, opts...).ToFunc()
}

// ByDerivedAt orders the results by the derived_at field.
func ByDerivedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDerivedAt, opts...).ToFunc()
}

// ByConclusionField orders the results by conclusion field.
func ByConclusionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConclusionStep(), sql.OrderByField(field, opts...))
	}
}
func newConclusionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConclusionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ConclusionTable, ConclusionColumn),
	)
}

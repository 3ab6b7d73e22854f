// Code generated by ent, DO NOT EDIT.

package fact

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the fact type in the database.
	Label = "fact"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldClaim holds the string denoting the claim field in the database.
	FieldClaim = "claim"
	// FieldCanonicalClaim holds the string denoting the canonical_claim field in the database.
	FieldCanonicalClaim = "canonical_claim"
	// FieldVerifiableExpression holds the string denoting the verifiable_expression field in the database.
	FieldVerifiableExpression = "verifiable_expression"
	// FieldIsVerifiable holds the string denoting the is_verifiable field in the database.
	FieldIsVerifiable = "is_verifiable"
	// FieldVerificationMethod holds the string denoting the verification_method field in the database.
	FieldVerificationMethod = "verification_method"
	// FieldValidityStartNote holds the string denoting the validity_start_note field in the database.
	FieldValidityStartNote = "validity_start_note"
	// FieldValidityEndNote holds the string denoting the validity_end_note field in the database.
	FieldValidityEndNote = "validity_end_note"
	// FieldValidityStart holds the string denoting the validity_start field in the database.
	FieldValidityStart = "validity_start"
	// FieldValidityEnd holds the string denoting the validity_end field in the database.
	FieldValidityEnd = "validity_end"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldVerifiedAt holds the string denoting the verified_at field in the database.
	FieldVerifiedAt = "verified_at"
	// FieldVerificationEvidence holds the string denoting the verification_evidence field in the database.
	FieldVerificationEvidence = "verification_evidence"
	// FieldVerifiedSourceOrg holds the string denoting the verified_source_org field in the database.
	FieldVerifiedSourceOrg = "verified_source_org"
	// FieldVerifiedSourceURL holds the string denoting the verified_source_url field in the database.
	FieldVerifiedSourceURL = "verified_source_url"
	// FieldVerifiedSourceData holds the string denoting the verified_source_data field in the database.
	FieldVerifiedSourceData = "verified_source_data"
	// FieldRawPostID holds the string denoting the raw_post_id field in the database.
	FieldRawPostID = "raw_post_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRawPost holds the string denoting the raw_post edge name in mutations.
	EdgeRawPost = "raw_post"
	// EdgeReferences holds the string denoting the references edge name in mutations.
	EdgeReferences = "references"
	// EdgeEvaluations holds the string denoting the evaluations edge name in mutations.
	EdgeEvaluations = "evaluations"
	// Table holds the table name of the fact in the database.
	Table = "facts"
	// RawPostTable is the table that holds the raw_post relation/edge.
	RawPostTable = "facts"
	// RawPostInverseTable is the table name for the RawPost entity.
	// It exists in this package in order to avoid circular dependency with the "rawpost" package.
	RawPostInverseTable = "raw_posts"
	// RawPostColumn is the table column denoting the raw_post relation/edge.
	RawPostColumn = "raw_post_id"
	// ReferencesTable is the table that holds the references relation/edge.
	ReferencesTable = "verification_references"
	// ReferencesInverseTable is the table name for the VerificationReference entity.
	// It exists in this package in order to avoid circular dependency with the "verificationreference" package.
	ReferencesInverseTable = "verification_references"
	// ReferencesColumn is the table column denoting the references relation/edge.
	ReferencesColumn = "fact_id"
	// EvaluationsTable is the table that holds the evaluations relation/edge.
	EvaluationsTable = "fact_evaluations"
	// EvaluationsInverseTable is the table name for the FactEvaluation entity.
	// It exists in this package in order to avoid circular dependency with the "factevaluation" package.
	EvaluationsInverseTable = "fact_evaluations"
	// EvaluationsColumn is the table column denoting the evaluations relation/edge.
	EvaluationsColumn = "fact_id"
)

// Columns holds all SQL columns for fact fields.
var Columns = []string{
	FieldID,
	FieldClaim,
	FieldCanonicalClaim,
	FieldVerifiableExpression,
	FieldIsVerifiable,
	FieldVerificationMethod,
	FieldValidityStartNote,
	FieldValidityEndNote,
	FieldValidityStart,
	FieldValidityEnd,
	FieldStatus,
	FieldVerifiedAt,
	FieldVerificationEvidence,
	FieldVerifiedSourceOrg,
	FieldVerifiedSourceURL,
	FieldVerifiedSourceData,
	FieldRawPostID,
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
	// DefaultIsVerifiable holds the default value on creation for the "is_verifiable" field.
	DefaultIsVerifiable bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending       Status = "pending"
	StatusVerifiedTrue  Status = "verified_true"
	StatusVerifiedFalse Status = "verified_false"
	StatusUnverifiable  Status = "unverifiable"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusVerifiedTrue, StatusVerifiedFalse, StatusUnverifiable:
		return nil
	default:
		return fmt.Errorf("fact: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Fact queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByClaim orders the results by the claim field.
func ByClaim(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaim, opts...).ToFunc()
}

// ByCanonicalClaim orders the results by the canonical_claim field.
func ByCanonicalClaim(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanonicalClaim, opts...).ToFunc()
}

// ByVerifiableExpression orders the results by the verifiable_expression field.
func ByVerifiableExpression(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerifiableExpression, opts...).ToFunc()
}

// ByIsVerifiable orders the results by the is_verifiable field.
func ByIsVerifiable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsVerifiable, opts...).ToFunc()
}

// ByVerificationMethod orders the results by the verification_method field.
func ByVerificationMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerificationMethod, opts...).ToFunc()
}

// ByValidityStartNote orders the results by the validity_start_note field.
func ByValidityStartNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidityStartNote, opts...).ToFunc()
}

// ByValidityEndNote orders the results by the validity_end_note field.
func ByValidityEndNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidityEndNote, opts...).ToFunc()
}

// ByValidityStart orders the results by the validity_start field.
func ByValidityStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidityStart, opts...).ToFunc()
}

// ByValidityEnd orders the results by the validity_end field.
func ByValidityEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidityEnd, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByVerifiedAt orders the results by the verified_at field.
func ByVerifiedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerifiedAt, opts...).ToFunc()
}

// ByVerificationEvidence orders the results by the verification_evidence field.
func ByVerificationEvidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerificationEvidence, opts...).ToFunc()
}

// ByVerifiedSourceOrg orders the results by the verified_source_org field.
func ByVerifiedSourceOrg(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerifiedSourceOrg, opts...).ToFunc()
}

// ByVerifiedSourceURL orders the results by the verified_source_url field.
func ByVerifiedSourceURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerifiedSourceURL, opts...).ToFunc()
}

// ByVerifiedSourceData orders the results by the verified_source_data field.
func ByVerifiedSourceData(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerifiedSourceData, opts...).ToFunc()
}

// ByRawPostID orders the results by the raw_post_id field.
func ByRawPostID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawPostID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRawPostField orders the results by raw_post field.
func ByRawPostField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRawPostStep(), sql.OrderByField(field, opts...))
	}
}

// ByReferencesCount orders the results by references count.
func ByReferencesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newReferencesStep(), opts...)
	}
}

// ByReferences orders the results by references terms.
func ByReferences(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReferencesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEvaluationsCount orders the results by evaluations count.
func ByEvaluationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEvaluationsStep(), opts...)
	}
}

// ByEvaluations orders the results by evaluations terms.
func ByEvaluations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEvaluationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newRawPostStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RawPostInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RawPostTable, RawPostColumn),
	)
}
func newReferencesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReferencesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ReferencesTable, ReferencesColumn),
	)
}
func newEvaluationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EvaluationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EvaluationsTable, EvaluationsColumn),
	)
}

// Code generated by ent, DO NOT EDIT.

package verificationreference

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the verificationreference type in the database.
	Label = "verification_reference"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFactID holds the string denoting the fact_id field in the database.
	FieldFactID = "fact_id"
	// FieldOrganization holds the string denoting the organization field in the database.
	FieldOrganization = "organization"
	// FieldDataDescription holds the string denoting the data_description field in the database.
	FieldDataDescription = "data_description"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldURLNote holds the string denoting the url_note field in the database.
	FieldURLNote = "url_note"
	// EdgeFact holds the string denoting the fact edge name in mutations.
	EdgeFact = "fact"
	// Table holds the table name of the verificationreference in the database.
	Table = "verification_references"
	// FactTable is the table that holds the fact relation/edge.
	FactTable = "verification_references"
	// FactInverseTable is the table name for the Fact entity.
	// It exists in this package in order to avoid circular dependency with the "fact" package.
	FactInverseTable = "facts"
	// FactColumn is the table column denoting the fact relation/edge.
	FactColumn = "fact_id"
)

// Columns holds all SQL columns for verificationreference fields.
var Columns = []string{
	FieldID,
	FieldFactID,
	FieldOrganization,
	FieldDataDescription,
	FieldURL,
	FieldURLNote,
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

// OrderOption defines the ordering options for the VerificationReference queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFactID orders the results by the fact_id field.
func ByFactID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFactID, opts...).ToFunc()
}

// ByOrganization orders the results by the organization field.
func ByOrganization(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrganization, opts...).ToFunc()
}

// ByDataDescription orders the results by the data_description field.
func ByDataDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDataDescription, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByURLNote orders the results by the url_note field.
func ByURLNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURLNote, opts...).ToFunc()
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

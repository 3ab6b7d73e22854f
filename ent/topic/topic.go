// Code generated by ent, DO NOT EDIT.

package topic

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the topic type in the database.
	Label = "topic"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeConclusions holds the string denoting the conclusions edge name in mutations.
	EdgeConclusions = "conclusions"
	// EdgeSolutions holds the string denoting the solutions edge name in mutations.
	EdgeSolutions = "solutions"
	// Table holds the table name of the topic in the database.
	Table = "topics"
	// ConclusionsTable is the table that holds the conclusions relation/edge.
	ConclusionsTable = "conclusions"
	// ConclusionsInverseTable is the table name for the Conclusion entity.
	// It exists in this package in order to avoid circular dependency with the "conclusion" package.
	ConclusionsInverseTable = "conclusions"
	// ConclusionsColumn is the table column denoting the conclusions relation/edge.
	ConclusionsColumn = "topic_id"
	// SolutionsTable is the table that holds the solutions relation/edge.
	SolutionsTable = "solutions"
	// SolutionsInverseTable is the table name for the Solution entity.
	// It exists in this package in order to avoid circular dependency with the "solution" package.
	SolutionsInverseTable = "solutions"
	// SolutionsColumn is the table column denoting the solutions relation/edge.
	SolutionsColumn = "topic_id"
)

// Columns holds all SQL columns for topic fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDescription,
	FieldTags,
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

// OrderOption defines the ordering options for the Topic queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByTags orders the results by the tags field.
func ByTags(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTags, opts...).ToFunc()
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

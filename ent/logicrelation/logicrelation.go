// Code generated by ent, DO NOT EDIT.

package logicrelation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the logicrelation type in the database.
	Label = "logic_relation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFromLogicID holds the string denoting the from_logic_id field in the database.
	FieldFromLogicID = "from_logic_id"
	// FieldToLogicID holds the string denoting the to_logic_id field in the database.
	FieldToLogicID = "to_logic_id"
	// FieldRelationType holds the string denoting the relation_type field in the database.
	FieldRelationType = "relation_type"
	// FieldNote holds the string denoting the note field in the database.
	FieldNote = "note"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeFromLogic holds the string denoting the from_logic edge name in mutations.
	EdgeFromLogic = "from_logic"
	// EdgeToLogic holds the string denoting the to_logic edge name in mutations.
	EdgeToLogic = "to_logic"
	// Table holds the table name of the logicrelation in the database.
	Table = "logic_relations"
	// FromLogicTable is the table that holds the from_logic relation/edge.
	FromLogicTable = "logic_relations"
	// FromLogicInverseTable is the table name for the Logic entity.
	// It exists in this package in order to avoid circular dependency with the "logic" package.
	FromLogicInverseTable = "logics"
	// FromLogicColumn is the table column denoting the from_logic relation/edge.
	FromLogicColumn = "from_logic_id"
	// ToLogicTable is the table that holds the to_logic relation/edge.
	ToLogicTable = "logic_relations"
	// ToLogicInverseTable is the table name for the Logic entity.
	// It exists in this package in order to avoid circular dependency with the "logic" package.
	ToLogicInverseTable = "logics"
	// ToLogicColumn is the table column denoting the to_logic relation/edge.
	ToLogicColumn = "to_logic_id"
)

// Columns holds all SQL columns for logicrelation fields.
var Columns = []string{
	FieldID,
	FieldFromLogicID,
	FieldToLogicID,
	FieldRelationType,
	FieldNote,
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

// RelationType defines the type for the "relation_type" enum field.
type RelationType string

// RelationType values.
const (
	RelationTypeSupports       RelationType = "supports"
	RelationTypeContextualizes RelationType = "contextualizes"
	RelationTypeContradicts    RelationType = "contradicts"
)

func (rt RelationType) String() string {
	return string(rt)
}

// RelationTypeValidator is a validator for the "relation_type" field enum values. It is called by the builders before save.
func RelationTypeValidator(rt RelationType) error {
	switch rt {
	case RelationTypeSupports, RelationTypeContextualizes, RelationTypeContradicts:
		return nil
	default:
		return fmt.Errorf("logicrelation: invalid enum value for relation_type field: %q", rt)
	}
}

// OrderOption defines the ordering options for the LogicRelation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFromLogicID orders the results by the from_logic_id field.
func ByFromLogicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFromLogicID, opts...).ToFunc()
}

// ByToLogicID orders the results by the to_logic_id field.
func ByToLogicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToLogicID, opts...).ToFunc()
}

// ByRelationType orders the results by the relation_type field.
func ByRelationType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelationType, opts...).ToFunc()
}

// ByNote orders the results by the note field.
func ByNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNote, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByFromLogicField orders the results by from_logic field.
func ByFromLogicField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFromLogicStep(), sql.OrderByField(field, opts...))
	}
}

// ByToLogicField orders the results by to_logic field.
func ByToLogicField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newToLogicStep(), sql.OrderByField(field, opts...))
	}
}
func newFromLogicStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FromLogicInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FromLogicTable, FromLogicColumn),
	)
}
func newToLogicStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ToLogicInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ToLogicTable, ToLogicColumn),
	)
}

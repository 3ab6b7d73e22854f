// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/credlens/pundit/ent/logic"
	"github.com/credlens/pundit/ent/logicrelation"
)

// LogicRelation is the model entity for the LogicRelation schema.
type LogicRelation struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// FromLogicID holds the value of the "from_logic_id" field.
	FromLogicID int `json:"from_logic_id,omitempty"`
	// ToLogicID holds the value of the "to_logic_id" field.
	ToLogicID int `json:"to_logic_id,omitempty"`
	// RelationType holds the value of the "relation_type" field.
	RelationType logicrelation.RelationType `json:"relation_type,omitempty"`
	// Note holds the value of the "note" field.
	Note *string `json:"note,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LogicRelationQuery when eager-loading is set.
	Edges        LogicRelationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LogicRelationEdges holds the relations/edges for other nodes in the graph.
type LogicRelationEdges struct {
	// FromLogic holds the value of the from_logic edge.
	FromLogic *Logic `json:"from_logic,omitempty"`
	// ToLogic holds the value of the to_logic edge.
	ToLogic *Logic `json:"to_logic,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// FromLogicOrErr returns the FromLogic value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LogicRelationEdges) FromLogicOrErr() (*Logic, error) {
	if e.FromLogic != nil {
		return e.FromLogic, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: logic.Label}
	}
	return nil, &NotLoadedError{edge: "from_logic"}
}

// ToLogicOrErr returns the ToLogic value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LogicRelationEdges) ToLogicOrErr() (*Logic, error) {
	if e.ToLogic != nil {
		return e.ToLogic, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: logic.Label}
	}
	return nil, &NotLoadedError{edge: "to_logic"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LogicRelation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case logicrelation.FieldID, logicrelation.FieldFromLogicID, logicrelation.FieldToLogicID:
			values[i] = new(sql.NullInt64)
		case logicrelation.FieldRelationType, logicrelation.FieldNote:
			values[i] = new(sql.NullString)
		case logicrelation.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LogicRelation fields.
func (_m *LogicRelation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case logicrelation.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case logicrelation.FieldFromLogicID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field from_logic_id", values[i])
			} else if value.Valid {
				_m.FromLogicID = int(value.Int64)
			}
		case logicrelation.FieldToLogicID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field to_logic_id", values[i])
			} else if value.Valid {
				_m.ToLogicID = int(value.Int64)
			}
		case logicrelation.FieldRelationType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field relation_type", values[i])
			} else if value.Valid {
				_m.RelationType = logicrelation.RelationType(value.String)
			}
		case logicrelation.FieldNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field note", values[i])
			} else if value.Valid {
				_m.Note = new(string)
				*_m.Note = value.String
			}
		case logicrelation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LogicRelation.
// This includes values selected through modifiers, order, etc.
func (_m *LogicRelation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFromLogic queries the "from_logic" edge of the LogicRelation entity.
func (_m *LogicRelation) QueryFromLogic() *LogicQuery {
	return NewLogicRelationClient(_m.config).QueryFromLogic(_m)
}

// QueryToLogic queries the "to_logic" edge of the LogicRelation entity.
func (_m *LogicRelation) QueryToLogic() *LogicQuery {
	return NewLogicRelationClient(_m.config).QueryToLogic(_m)
}

// Update returns a builder for updating this LogicRelation.
// Note that you need to call LogicRelation.Unwrap() before calling this method if this LogicRelation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LogicRelation) Update() *LogicRelationUpdateOne {
	return NewLogicRelationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LogicRelation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LogicRelation) Unwrap() *LogicRelation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LogicRelation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LogicRelation) String() string {
	var builder strings.Builder
	builder.WriteString("LogicRelation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("from_logic_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FromLogicID))
	builder.WriteString(", ")
	builder.WriteString("to_logic_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToLogicID))
	builder.WriteString(", ")
	builder.WriteString("relation_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.RelationType))
	builder.WriteString(", ")
	if v := _m.Note; v != nil {
		builder.WriteString("note=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LogicRelations is a parsable slice of LogicRelation.
type LogicRelations []*LogicRelation

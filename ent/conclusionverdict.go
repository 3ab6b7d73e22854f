// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/credlens/pundit/ent/conclusion"
	"github.com/credlens/pundit/ent/conclusionverdict"
)

// ConclusionVerdict is the model entity for the ConclusionVerdict schema.
type ConclusionVerdict struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ConclusionID holds the value of the "conclusion_id" field.
	ConclusionID int `json:"conclusion_id,omitempty"`
	// Verdict holds the value of the "verdict" field.
	Verdict conclusionverdict.Verdict `json:"verdict,omitempty"`
	// fact id -> evaluation result at derivation time
	LogicTrace map[string]interface{} `json:"logic_trace,omitempty"`
	// RoleFit holds the value of the "role_fit" field.
	RoleFit *conclusionverdict.RoleFit `json:"role_fit,omitempty"`
	// RoleFitNote holds the value of the "role_fit_note" field.
	RoleFitNote *string `json:"role_fit_note,omitempty"`
	// DerivedAt holds the value of the "derived_at" field.
	DerivedAt time.Time `json:"derived_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ConclusionVerdictQuery when eager-loading is set.
	Edges        ConclusionVerdictEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ConclusionVerdictEdges holds the relations/edges for other nodes in the graph.
type ConclusionVerdictEdges struct {
	// Conclusion holds the value of the conclusion edge.
	Conclusion *Conclusion `json:"conclusion,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ConclusionOrErr returns the Conclusion value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ConclusionVerdictEdges) ConclusionOrErr() (*Conclusion, error) {
	if e.Conclusion != nil {
		return e.Conclusion, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: conclusion.Label}
	}
	return nil, &NotLoadedError{edge: "conclusion"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConclusionVerdict) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case conclusionverdict.FieldLogicTrace:
			values[i] = new([]byte)
		case conclusionverdict.FieldID, conclusionverdict.FieldConclusionID:
			values[i] = new(sql.NullInt64)
		case conclusionverdict.FieldVerdict, conclusionverdict.FieldRoleFit, conclusionverdict.FieldRoleFitNote:
			values[i] = new(sql.NullString)
		case conclusionverdict.FieldDerivedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConclusionVerdict fields.
func (_m *ConclusionVerdict) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case conclusionverdict.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case conclusionverdict.FieldConclusionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field conclusion_id", values[i])
			} else if value.Valid {
				_m.ConclusionID = int(value.Int64)
			}
		case conclusionverdict.FieldVerdict:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verdict", values[i])
			} else if value.Valid {
				_m.Verdict = conclusionverdict.Verdict(value.String)
			}
		case conclusionverdict.FieldLogicTrace:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field logic_trace", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LogicTrace); err != nil {
					return fmt.Errorf("unmarshal field logic_trace: %w", err)
				}
			}
		case conclusionverdict.FieldRoleFit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role_fit", values[i])
			} else if value.Valid {
				_m.RoleFit = new(conclusionverdict.RoleFit)
				*_m.RoleFit = conclusionverdict.RoleFit(value.String)
			}
		case conclusionverdict.FieldRoleFitNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role_fit_note", values[i])
			} else if value.Valid {
				_m.RoleFitNote = new(string)
				*_m.RoleFitNote = value.String
			}
		case conclusionverdict.FieldDerivedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field derived_at", values[i])
			} else if value.Valid {
				_m.DerivedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ConclusionVerdict.
// This includes values selected through modifiers, order, etc.
func (_m *ConclusionVerdict) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryConclusion queries the "conclusion" edge of the ConclusionVerdict entity.
func (_m *ConclusionVerdict) QueryConclusion() *ConclusionQuery {
	return NewConclusionVerdictClient(_m.config).QueryConclusion(_m)
}

// Update returns a builder for updating this ConclusionVerdict.
// Note that you need to call ConclusionVerdict.Unwrap() before calling this method if this ConclusionVerdict
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConclusionVerdict) Update() *ConclusionVerdictUpdateOne {
	return NewConclusionVerdictClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConclusionVerdict entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConclusionVerdict) Unwrap() *ConclusionVerdict {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConclusionVerdict is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConclusionVerdict) String() string {
	var builder strings.Builder
	builder.WriteString("ConclusionVerdict(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("conclusion_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConclusionID))
	builder.WriteString(", ")
	builder.WriteString("verdict=")
	builder.WriteString(fmt.Sprintf("%v", _m.Verdict))
	builder.WriteString(", ")
	builder.WriteString("logic_trace=")
	builder.WriteString(fmt.Sprintf("%v", _m.LogicTrace))
	builder.WriteString(", ")
	if v := _m.RoleFit; v != nil {
		builder.WriteString("role_fit=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.RoleFitNote; v != nil {
		builder.WriteString("role_fit_note=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("derived_at=")
	builder.WriteString(_m.DerivedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ConclusionVerdicts is a parsable slice of ConclusionVerdict.
type ConclusionVerdicts []*ConclusionVerdict

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/credlens/pundit/ent/fact"
	"github.com/credlens/pundit/ent/factevaluation"
)

// FactEvaluation is the model entity for the FactEvaluation schema.
type FactEvaluation struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// FactID holds the value of the "fact_id" field.
	FactID int `json:"fact_id,omitempty"`
	// Result holds the value of the "result" field.
	Result factevaluation.Result `json:"result,omitempty"`
	// EvidenceText holds the value of the "evidence_text" field.
	EvidenceText *string `json:"evidence_text,omitempty"`
	// 1 = authoritative institution, 2 = market data, 3 = credible secondary
	EvidenceTier *int `json:"evidence_tier,omitempty"`
	// Period covered by the data the result rests on
	DataPeriod *string `json:"data_period,omitempty"`
	// EvaluatorNotes holds the value of the "evaluator_notes" field.
	EvaluatorNotes *string `json:"evaluator_notes,omitempty"`
	// EvaluatedAt holds the value of the "evaluated_at" field.
	EvaluatedAt time.Time `json:"evaluated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FactEvaluationQuery when eager-loading is set.
	Edges        FactEvaluationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FactEvaluationEdges holds the relations/edges for other nodes in the graph.
type FactEvaluationEdges struct {
	// Fact holds the value of the fact edge.
	Fact *Fact `json:"fact,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FactOrErr returns the Fact value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FactEvaluationEdges) FactOrErr() (*Fact, error) {
	if e.Fact != nil {
		return e.Fact, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: fact.Label}
	}
	return nil, &NotLoadedError{edge: "fact"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FactEvaluation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case factevaluation.FieldID, factevaluation.FieldFactID, factevaluation.FieldEvidenceTier:
			values[i] = new(sql.NullInt64)
		case factevaluation.FieldResult, factevaluation.FieldEvidenceText, factevaluation.FieldDataPeriod, factevaluation.FieldEvaluatorNotes:
			values[i] = new(sql.NullString)
		case factevaluation.FieldEvaluatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FactEvaluation fields.
func (_m *FactEvaluation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case factevaluation.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case factevaluation.FieldFactID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field fact_id", values[i])
			} else if value.Valid {
				_m.FactID = int(value.Int64)
			}
		case factevaluation.FieldResult:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result", values[i])
			} else if value.Valid {
				_m.Result = factevaluation.Result(value.String)
			}
		case factevaluation.FieldEvidenceText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field evidence_text", values[i])
			} else if value.Valid {
				_m.EvidenceText = new(string)
				*_m.EvidenceText = value.String
			}
		case factevaluation.FieldEvidenceTier:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field evidence_tier", values[i])
			} else if value.Valid {
				_m.EvidenceTier = new(int)
				*_m.EvidenceTier = int(value.Int64)
			}
		case factevaluation.FieldDataPeriod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field data_period", values[i])
			} else if value.Valid {
				_m.DataPeriod = new(string)
				*_m.DataPeriod = value.String
			}
		case factevaluation.FieldEvaluatorNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field evaluator_notes", values[i])
			} else if value.Valid {
				_m.EvaluatorNotes = new(string)
				*_m.EvaluatorNotes = value.String
			}
		case factevaluation.FieldEvaluatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field evaluated_at", values[i])
			} else if value.Valid {
				_m.EvaluatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FactEvaluation.
// This includes values selected through modifiers, order, etc.
func (_m *FactEvaluation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFact queries the "fact" edge of the FactEvaluation entity.
func (_m *FactEvaluation) QueryFact() *FactQuery {
	return NewFactEvaluationClient(_m.config).QueryFact(_m)
}

// Update returns a builder for updating this FactEvaluation.
// Note that you need to call FactEvaluation.Unwrap() before calling this method if this FactEvaluation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FactEvaluation) Update() *FactEvaluationUpdateOne {
	return NewFactEvaluationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FactEvaluation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FactEvaluation) Unwrap() *FactEvaluation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FactEvaluation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FactEvaluation) String() string {
	var builder strings.Builder
	builder.WriteString("FactEvaluation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("fact_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FactID))
	builder.WriteString(", ")
	builder.WriteString("result=")
	builder.WriteString(fmt.Sprintf("%v", _m.Result))
	builder.WriteString(", ")
	if v := _m.EvidenceText; v != nil {
		builder.WriteString("evidence_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EvidenceTier; v != nil {
		builder.WriteString("evidence_tier=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DataPeriod; v != nil {
		builder.WriteString("data_period=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EvaluatorNotes; v != nil {
		builder.WriteString("evaluator_notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("evaluated_at=")
	builder.WriteString(_m.EvaluatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FactEvaluations is a parsable slice of FactEvaluation.
type FactEvaluations []*FactEvaluation

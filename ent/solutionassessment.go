// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/credlens/pundit/ent/solution"
	"github.com/credlens/pundit/ent/solutionassessment"
)

// SolutionAssessment is the model entity for the SolutionAssessment schema.
type SolutionAssessment struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SolutionID holds the value of the "solution_id" field.
	SolutionID int `json:"solution_id,omitempty"`
	// Verdict holds the value of the "verdict" field.
	Verdict solutionassessment.Verdict `json:"verdict,omitempty"`
	// EvidenceText holds the value of the "evidence_text" field.
	EvidenceText *string `json:"evidence_text,omitempty"`
	// EvidenceTier holds the value of the "evidence_tier" field.
	EvidenceTier *int `json:"evidence_tier,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// RoleFit holds the value of the "role_fit" field.
	RoleFit *solutionassessment.RoleFit `json:"role_fit,omitempty"`
	// RoleFitNote holds the value of the "role_fit_note" field.
	RoleFitNote *string `json:"role_fit_note,omitempty"`
	// AssessedAt holds the value of the "assessed_at" field.
	AssessedAt time.Time `json:"assessed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SolutionAssessmentQuery when eager-loading is set.
	Edges        SolutionAssessmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SolutionAssessmentEdges holds the relations/edges for other nodes in the graph.
type SolutionAssessmentEdges struct {
	// Solution holds the value of the solution edge.
	Solution *Solution `json:"solution,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SolutionOrErr returns the Solution value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SolutionAssessmentEdges) SolutionOrErr() (*Solution, error) {
	if e.Solution != nil {
		return e.Solution, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: solution.Label}
	}
	return nil, &NotLoadedError{edge: "solution"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SolutionAssessment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case solutionassessment.FieldID, solutionassessment.FieldSolutionID, solutionassessment.FieldEvidenceTier:
			values[i] = new(sql.NullInt64)
		case solutionassessment.FieldVerdict, solutionassessment.FieldEvidenceText, solutionassessment.FieldNotes, solutionassessment.FieldRoleFit, solutionassessment.FieldRoleFitNote:
			values[i] = new(sql.NullString)
		case solutionassessment.FieldAssessedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SolutionAssessment fields.
func (_m *SolutionAssessment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case solutionassessment.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case solutionassessment.FieldSolutionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field solution_id", values[i])
			} else if value.Valid {
				_m.SolutionID = int(value.Int64)
			}
		case solutionassessment.FieldVerdict:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verdict", values[i])
			} else if value.Valid {
				_m.Verdict = solutionassessment.Verdict(value.String)
			}
		case solutionassessment.FieldEvidenceText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field evidence_text", values[i])
			} else if value.Valid {
				_m.EvidenceText = new(string)
				*_m.EvidenceText = value.String
			}
		case solutionassessment.FieldEvidenceTier:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field evidence_tier", values[i])
			} else if value.Valid {
				_m.EvidenceTier = new(int)
				*_m.EvidenceTier = int(value.Int64)
			}
		case solutionassessment.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case solutionassessment.FieldRoleFit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role_fit", values[i])
			} else if value.Valid {
				_m.RoleFit = new(solutionassessment.RoleFit)
				*_m.RoleFit = solutionassessment.RoleFit(value.String)
			}
		case solutionassessment.FieldRoleFitNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role_fit_note", values[i])
			} else if value.Valid {
				_m.RoleFitNote = new(string)
				*_m.RoleFitNote = value.String
			}
		case solutionassessment.FieldAssessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field assessed_at", values[i])
			} else if value.Valid {
				_m.AssessedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SolutionAssessment.
// This includes values selected through modifiers, order, etc.
func (_m *SolutionAssessment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySolution queries the "solution" edge of the SolutionAssessment entity.
func (_m *SolutionAssessment) QuerySolution() *SolutionQuery {
	return NewSolutionAssessmentClient(_m.config).QuerySolution(_m)
}

// Update returns a builder for updating this SolutionAssessment.
// Note that you need to call SolutionAssessment.Unwrap() before calling this method if this SolutionAssessment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SolutionAssessment) Update() *SolutionAssessmentUpdateOne {
	return NewSolutionAssessmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SolutionAssessment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SolutionAssessment) Unwrap() *SolutionAssessment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SolutionAssessment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SolutionAssessment) String() string {
	var builder strings.Builder
	builder.WriteString("SolutionAssessment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("solution_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SolutionID))
	builder.WriteString(", ")
	builder.WriteString("verdict=")
	builder.WriteString(fmt.Sprintf("%v", _m.Verdict))
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
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
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
	builder.WriteString("assessed_at=")
	builder.WriteString(_m.AssessedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SolutionAssessments is a parsable slice of SolutionAssessment.
type SolutionAssessments []*SolutionAssessment

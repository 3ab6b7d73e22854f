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
	"github.com/credlens/pundit/ent/logic"
	"github.com/credlens/pundit/ent/rawpost"
	"github.com/credlens/pundit/ent/solution"
)

// Logic is the model entity for the Logic schema.
type Logic struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LogicType holds the value of the "logic_type" field.
	LogicType logic.LogicType `json:"logic_type,omitempty"`
	// ConclusionID holds the value of the "conclusion_id" field.
	ConclusionID *int `json:"conclusion_id,omitempty"`
	// SolutionID holds the value of the "solution_id" field.
	SolutionID *int `json:"solution_id,omitempty"`
	// RawPostID holds the value of the "raw_post_id" field.
	RawPostID *int `json:"raw_post_id,omitempty"`
	// SupportingFactIds holds the value of the "supporting_fact_ids" field.
	SupportingFactIds []int `json:"supporting_fact_ids,omitempty"`
	// AssumptionFactIds holds the value of the "assumption_fact_ids" field.
	AssumptionFactIds []int `json:"assumption_fact_ids,omitempty"`
	// SourceConclusionIds holds the value of the "source_conclusion_ids" field.
	SourceConclusionIds []int `json:"source_conclusion_ids,omitempty"`
	// LogicCompleteness holds the value of the "logic_completeness" field.
	LogicCompleteness *logic.LogicCompleteness `json:"logic_completeness,omitempty"`
	// LogicNote holds the value of the "logic_note" field.
	LogicNote *string `json:"logic_note,omitempty"`
	// OneSentenceSummary holds the value of the "one_sentence_summary" field.
	OneSentenceSummary *string `json:"one_sentence_summary,omitempty"`
	// AssessedAt holds the value of the "assessed_at" field.
	AssessedAt *time.Time `json:"assessed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LogicQuery when eager-loading is set.
	Edges        LogicEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LogicEdges holds the relations/edges for other nodes in the graph.
type LogicEdges struct {
	// Conclusion holds the value of the conclusion edge.
	Conclusion *Conclusion `json:"conclusion,omitempty"`
	// Solution holds the value of the solution edge.
	Solution *Solution `json:"solution,omitempty"`
	// RawPost holds the value of the raw_post edge.
	RawPost *RawPost `json:"raw_post,omitempty"`
	// OutgoingRelations holds the value of the outgoing_relations edge.
	OutgoingRelations []*LogicRelation `json:"outgoing_relations,omitempty"`
	// IncomingRelations holds the value of the incoming_relations edge.
	IncomingRelations []*LogicRelation `json:"incoming_relations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// ConclusionOrErr returns the Conclusion value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LogicEdges) ConclusionOrErr() (*Conclusion, error) {
	if e.Conclusion != nil {
		return e.Conclusion, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: conclusion.Label}
	}
	return nil, &NotLoadedError{edge: "conclusion"}
}

// SolutionOrErr returns the Solution value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LogicEdges) SolutionOrErr() (*Solution, error) {
	if e.Solution != nil {
		return e.Solution, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: solution.Label}
	}
	return nil, &NotLoadedError{edge: "solution"}
}

// RawPostOrErr returns the RawPost value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LogicEdges) RawPostOrErr() (*RawPost, error) {
	if e.RawPost != nil {
		return e.RawPost, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: rawpost.Label}
	}
	return nil, &NotLoadedError{edge: "raw_post"}
}

// OutgoingRelationsOrErr returns the OutgoingRelations value or an error if the edge
// was not loaded in eager-loading.
func (e LogicEdges) OutgoingRelationsOrErr() ([]*LogicRelation, error) {
	if e.loadedTypes[3] {
		return e.OutgoingRelations, nil
	}
	return nil, &NotLoadedError{edge: "outgoing_relations"}
}

// IncomingRelationsOrErr returns the IncomingRelations value or an error if the edge
// was not loaded in eager-loading.
func (e LogicEdges) IncomingRelationsOrErr() ([]*LogicRelation, error) {
	if e.loadedTypes[4] {
		return e.IncomingRelations, nil
	}
	return nil, &NotLoadedError{edge: "incoming_relations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Logic) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case logic.FieldSupportingFactIds, logic.FieldAssumptionFactIds, logic.FieldSourceConclusionIds:
			values[i] = new([]byte)
		case logic.FieldID, logic.FieldConclusionID, logic.FieldSolutionID, logic.FieldRawPostID:
			values[i] = new(sql.NullInt64)
		case logic.FieldLogicType, logic.FieldLogicCompleteness, logic.FieldLogicNote, logic.FieldOneSentenceSummary:
			values[i] = new(sql.NullString)
		case logic.FieldAssessedAt, logic.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Logic fields.
func (_m *Logic) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case logic.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case logic.FieldLogicType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field logic_type", values[i])
			} else if value.Valid {
				_m.LogicType = logic.LogicType(value.String)
			}
		case logic.FieldConclusionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field conclusion_id", values[i])
			} else if value.Valid {
				_m.ConclusionID = new(int)
				*_m.ConclusionID = int(value.Int64)
			}
		case logic.FieldSolutionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field solution_id", values[i])
			} else if value.Valid {
				_m.SolutionID = new(int)
				*_m.SolutionID = int(value.Int64)
			}
		case logic.FieldRawPostID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field raw_post_id", values[i])
			} else if value.Valid {
				_m.RawPostID = new(int)
				*_m.RawPostID = int(value.Int64)
			}
		case logic.FieldSupportingFactIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field supporting_fact_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SupportingFactIds); err != nil {
					return fmt.Errorf("unmarshal field supporting_fact_ids: %w", err)
				}
			}
		case logic.FieldAssumptionFactIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field assumption_fact_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AssumptionFactIds); err != nil {
					return fmt.Errorf("unmarshal field assumption_fact_ids: %w", err)
				}
			}
		case logic.FieldSourceConclusionIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field source_conclusion_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SourceConclusionIds); err != nil {
					return fmt.Errorf("unmarshal field source_conclusion_ids: %w", err)
				}
			}
		case logic.FieldLogicCompleteness:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field logic_completeness", values[i])
			} else if value.Valid {
				_m.LogicCompleteness = new(logic.LogicCompleteness)
				*_m.LogicCompleteness = logic.LogicCompleteness(value.String)
			}
		case logic.FieldLogicNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field logic_note", values[i])
			} else if value.Valid {
				_m.LogicNote = new(string)
				*_m.LogicNote = value.String
			}
		case logic.FieldOneSentenceSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field one_sentence_summary", values[i])
			} else if value.Valid {
				_m.OneSentenceSummary = new(string)
				*_m.OneSentenceSummary = value.String
			}
		case logic.FieldAssessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field assessed_at", values[i])
			} else if value.Valid {
				_m.AssessedAt = new(time.Time)
				*_m.AssessedAt = value.Time
			}
		case logic.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Logic.
// This includes values selected through modifiers, order, etc.
func (_m *Logic) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryConclusion queries the "conclusion" edge of the Logic entity.
func (_m *Logic) QueryConclusion() *ConclusionQuery {
	return NewLogicClient(_m.config).QueryConclusion(_m)
}

// QuerySolution queries the "solution" edge of the Logic entity.
func (_m *Logic) QuerySolution() *SolutionQuery {
	return NewLogicClient(_m.config).QuerySolution(_m)
}

// QueryRawPost queries the "raw_post" edge of the Logic entity.
func (_m *Logic) QueryRawPost() *RawPostQuery {
	return NewLogicClient(_m.config).QueryRawPost(_m)
}

// QueryOutgoingRelations queries the "outgoing_relations" edge of the Logic entity.
func (_m *Logic) QueryOutgoingRelations() *LogicRelationQuery {
	return NewLogicClient(_m.config).QueryOutgoingRelations(_m)
}

// QueryIncomingRelations queries the "incoming_relations" edge of the Logic entity.
func (_m *Logic) QueryIncomingRelations() *LogicRelationQuery {
	return NewLogicClient(_m.config).QueryIncomingRelations(_m)
}

// Update returns a builder for updating this Logic.
// Note that you need to call Logic.Unwrap() before calling this method if this Logic
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Logic) Update() *LogicUpdateOne {
	return NewLogicClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Logic entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Logic) Unwrap() *Logic {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Logic is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Logic) String() string {
	var builder strings.Builder
	builder.WriteString("Logic(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("logic_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.LogicType))
	builder.WriteString(", ")
	if v := _m.ConclusionID; v != nil {
		builder.WriteString("conclusion_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.SolutionID; v != nil {
		builder.WriteString("solution_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.RawPostID; v != nil {
		builder.WriteString("raw_post_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("supporting_fact_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.SupportingFactIds))
	builder.WriteString(", ")
	builder.WriteString("assumption_fact_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssumptionFactIds))
	builder.WriteString(", ")
	builder.WriteString("source_conclusion_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceConclusionIds))
	builder.WriteString(", ")
	if v := _m.LogicCompleteness; v != nil {
		builder.WriteString("logic_completeness=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.LogicNote; v != nil {
		builder.WriteString("logic_note=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.OneSentenceSummary; v != nil {
		builder.WriteString("one_sentence_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AssessedAt; v != nil {
		builder.WriteString("assessed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Logics is a parsable slice of Logic.
type Logics []*Logic

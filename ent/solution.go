// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/credlens/pundit/ent/author"
	"github.com/credlens/pundit/ent/solution"
	"github.com/credlens/pundit/ent/topic"
)

// Solution is the model entity for the Solution schema.
type Solution struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TopicID holds the value of the "topic_id" field.
	TopicID *int `json:"topic_id,omitempty"`
	// AuthorID holds the value of the "author_id" field.
	AuthorID int `json:"author_id,omitempty"`
	// Claim holds the value of the "claim" field.
	Claim string `json:"claim,omitempty"`
	// CanonicalClaim holds the value of the "canonical_claim" field.
	CanonicalClaim *string `json:"canonical_claim,omitempty"`
	// ActionType holds the value of the "action_type" field.
	ActionType *solution.ActionType `json:"action_type,omitempty"`
	// e.g., 'gold ETF', '10Y US Treasury'
	ActionTarget *string `json:"action_target,omitempty"`
	// ActionRationale holds the value of the "action_rationale" field.
	ActionRationale *string `json:"action_rationale,omitempty"`
	// 'If executed today ...', written by the simulator
	SimulatedActionNote *string `json:"simulated_action_note,omitempty"`
	// MonitoringSourceOrg holds the value of the "monitoring_source_org" field.
	MonitoringSourceOrg *string `json:"monitoring_source_org,omitempty"`
	// MonitoringSourceURL holds the value of the "monitoring_source_url" field.
	MonitoringSourceURL *string `json:"monitoring_source_url,omitempty"`
	// MonitoringPeriodNote holds the value of the "monitoring_period_note" field.
	MonitoringPeriodNote *string `json:"monitoring_period_note,omitempty"`
	// MonitoringStart holds the value of the "monitoring_start" field.
	MonitoringStart *time.Time `json:"monitoring_start,omitempty"`
	// MonitoringEnd holds the value of the "monitoring_end" field.
	MonitoringEnd *time.Time `json:"monitoring_end,omitempty"`
	// Status holds the value of the "status" field.
	Status solution.Status `json:"status,omitempty"`
	// SourceURL holds the value of the "source_url" field.
	SourceURL *string `json:"source_url,omitempty"`
	// SourcePlatform holds the value of the "source_platform" field.
	SourcePlatform *string `json:"source_platform,omitempty"`
	// PostedAt holds the value of the "posted_at" field.
	PostedAt *time.Time `json:"posted_at,omitempty"`
	// CollectedAt holds the value of the "collected_at" field.
	CollectedAt time.Time `json:"collected_at,omitempty"`
	// RawExtraction holds the value of the "raw_extraction" field.
	RawExtraction *string `json:"raw_extraction,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SolutionQuery when eager-loading is set.
	Edges        SolutionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SolutionEdges holds the relations/edges for other nodes in the graph.
type SolutionEdges struct {
	// Topic holds the value of the topic edge.
	Topic *Topic `json:"topic,omitempty"`
	// Author holds the value of the author edge.
	Author *Author `json:"author,omitempty"`
	// Logics holds the value of the logics edge.
	Logics []*Logic `json:"logics,omitempty"`
	// Assessments holds the value of the assessments edge.
	Assessments []*SolutionAssessment `json:"assessments,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// TopicOrErr returns the Topic value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SolutionEdges) TopicOrErr() (*Topic, error) {
	if e.Topic != nil {
		return e.Topic, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: topic.Label}
	}
	return nil, &NotLoadedError{edge: "topic"}
}

// AuthorOrErr returns the Author value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SolutionEdges) AuthorOrErr() (*Author, error) {
	if e.Author != nil {
		return e.Author, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: author.Label}
	}
	return nil, &NotLoadedError{edge: "author"}
}

// LogicsOrErr returns the Logics value or an error if the edge
// was not loaded in eager-loading.
func (e SolutionEdges) LogicsOrErr() ([]*Logic, error) {
	if e.loadedTypes[2] {
		return e.Logics, nil
	}
	return nil, &NotLoadedError{edge: "logics"}
}

// AssessmentsOrErr returns the Assessments value or an error if the edge
// was not loaded in eager-loading.
func (e SolutionEdges) AssessmentsOrErr() ([]*SolutionAssessment, error) {
	if e.loadedTypes[3] {
		return e.Assessments, nil
	}
	return nil, &NotLoadedError{edge: "assessments"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Solution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case solution.FieldID, solution.FieldTopicID, solution.FieldAuthorID:
			values[i] = new(sql.NullInt64)
		case solution.FieldClaim, solution.FieldCanonicalClaim, solution.FieldActionType, solution.FieldActionTarget, solution.FieldActionRationale, solution.FieldSimulatedActionNote, solution.FieldMonitoringSourceOrg, solution.FieldMonitoringSourceURL, solution.FieldMonitoringPeriodNote, solution.FieldStatus, solution.FieldSourceURL, solution.FieldSourcePlatform, solution.FieldRawExtraction:
			values[i] = new(sql.NullString)
		case solution.FieldMonitoringStart, solution.FieldMonitoringEnd, solution.FieldPostedAt, solution.FieldCollectedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Solution fields.
func (_m *Solution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case solution.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case solution.FieldTopicID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				_m.TopicID = new(int)
				*_m.TopicID = int(value.Int64)
			}
		case solution.FieldAuthorID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field author_id", values[i])
			} else if value.Valid {
				_m.AuthorID = int(value.Int64)
			}
		case solution.FieldClaim:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claim", values[i])
			} else if value.Valid {
				_m.Claim = value.String
			}
		case solution.FieldCanonicalClaim:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field canonical_claim", values[i])
			} else if value.Valid {
				_m.CanonicalClaim = new(string)
				*_m.CanonicalClaim = value.String
			}
		case solution.FieldActionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action_type", values[i])
			} else if value.Valid {
				_m.ActionType = new(solution.ActionType)
				*_m.ActionType = solution.ActionType(value.String)
			}
		case solution.FieldActionTarget:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action_target", values[i])
			} else if value.Valid {
				_m.ActionTarget = new(string)
				*_m.ActionTarget = value.String
			}
		case solution.FieldActionRationale:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action_rationale", values[i])
			} else if value.Valid {
				_m.ActionRationale = new(string)
				*_m.ActionRationale = value.String
			}
		case solution.FieldSimulatedActionNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field simulated_action_note", values[i])
			} else if value.Valid {
				_m.SimulatedActionNote = new(string)
				*_m.SimulatedActionNote = value.String
			}
		case solution.FieldMonitoringSourceOrg:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field monitoring_source_org", values[i])
			} else if value.Valid {
				_m.MonitoringSourceOrg = new(string)
				*_m.MonitoringSourceOrg = value.String
			}
		case solution.FieldMonitoringSourceURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field monitoring_source_url", values[i])
			} else if value.Valid {
				_m.MonitoringSourceURL = new(string)
				*_m.MonitoringSourceURL = value.String
			}
		case solution.FieldMonitoringPeriodNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field monitoring_period_note", values[i])
			} else if value.Valid {
				_m.MonitoringPeriodNote = new(string)
				*_m.MonitoringPeriodNote = value.String
			}
		case solution.FieldMonitoringStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field monitoring_start", values[i])
			} else if value.Valid {
				_m.MonitoringStart = new(time.Time)
				*_m.MonitoringStart = value.Time
			}
		case solution.FieldMonitoringEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field monitoring_end", values[i])
			} else if value.Valid {
				_m.MonitoringEnd = new(time.Time)
				*_m.MonitoringEnd = value.Time
			}
		case solution.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = solution.Status(value.String)
			}
		case solution.FieldSourceURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_url", values[i])
			} else if value.Valid {
				_m.SourceURL = new(string)
				*_m.SourceURL = value.String
			}
		case solution.FieldSourcePlatform:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_platform", values[i])
			} else if value.Valid {
				_m.SourcePlatform = new(string)
				*_m.SourcePlatform = value.String
			}
		case solution.FieldPostedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field posted_at", values[i])
			} else if value.Valid {
				_m.PostedAt = new(time.Time)
				*_m.PostedAt = value.Time
			}
		case solution.FieldCollectedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field collected_at", values[i])
			} else if value.Valid {
				_m.CollectedAt = value.Time
			}
		case solution.FieldRawExtraction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_extraction", values[i])
			} else if value.Valid {
				_m.RawExtraction = new(string)
				*_m.RawExtraction = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Solution.
// This includes values selected through modifiers, order, etc.
func (_m *Solution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTopic queries the "topic" edge of the Solution entity.
func (_m *Solution) QueryTopic() *TopicQuery {
	return NewSolutionClient(_m.config).QueryTopic(_m)
}

// QueryAuthor queries the "author" edge of the Solution entity.
func (_m *Solution) QueryAuthor() *AuthorQuery {
	return NewSolutionClient(_m.config).QueryAuthor(_m)
}

// QueryLogics queries the "logics" edge of the Solution entity.
func (_m *Solution) QueryLogics() *LogicQuery {
	return NewSolutionClient(_m.config).QueryLogics(_m)
}

// QueryAssessments queries the "assessments" edge of the Solution entity.
func (_m *Solution) QueryAssessments() *SolutionAssessmentQuery {
	return NewSolutionClient(_m.config).QueryAssessments(_m)
}

// Update returns a builder for updating this Solution.
// Note that you need to call Solution.Unwrap() before calling this method if this Solution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Solution) Update() *SolutionUpdateOne {
	return NewSolutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Solution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Solution) Unwrap() *Solution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Solution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Solution) String() string {
	var builder strings.Builder
	builder.WriteString("Solution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.TopicID; v != nil {
		builder.WriteString("topic_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("author_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AuthorID))
	builder.WriteString(", ")
	builder.WriteString("claim=")
	builder.WriteString(_m.Claim)
	builder.WriteString(", ")
	if v := _m.CanonicalClaim; v != nil {
		builder.WriteString("canonical_claim=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ActionType; v != nil {
		builder.WriteString("action_type=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ActionTarget; v != nil {
		builder.WriteString("action_target=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ActionRationale; v != nil {
		builder.WriteString("action_rationale=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SimulatedActionNote; v != nil {
		builder.WriteString("simulated_action_note=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MonitoringSourceOrg; v != nil {
		builder.WriteString("monitoring_source_org=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MonitoringSourceURL; v != nil {
		builder.WriteString("monitoring_source_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MonitoringPeriodNote; v != nil {
		builder.WriteString("monitoring_period_note=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MonitoringStart; v != nil {
		builder.WriteString("monitoring_start=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.MonitoringEnd; v != nil {
		builder.WriteString("monitoring_end=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.SourceURL; v != nil {
		builder.WriteString("source_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SourcePlatform; v != nil {
		builder.WriteString("source_platform=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PostedAt; v != nil {
		builder.WriteString("posted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("collected_at=")
	builder.WriteString(_m.CollectedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.RawExtraction; v != nil {
		builder.WriteString("raw_extraction=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Solutions is a parsable slice of Solution.
type Solutions []*Solution

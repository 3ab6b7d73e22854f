// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/credlens/pundit/ent/author"
	"github.com/credlens/pundit/ent/conclusion"
	"github.com/credlens/pundit/ent/topic"
)

// Conclusion is the model entity for the Conclusion schema.
type Conclusion struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TopicID holds the value of the "topic_id" field.
	TopicID int `json:"topic_id,omitempty"`
	// AuthorID holds the value of the "author_id" field.
	AuthorID int `json:"author_id,omitempty"`
	// Claim holds the value of the "claim" field.
	Claim string `json:"claim,omitempty"`
	// CanonicalClaim holds the value of the "canonical_claim" field.
	CanonicalClaim *string `json:"canonical_claim,omitempty"`
	// ConclusionType holds the value of the "conclusion_type" field.
	ConclusionType conclusion.ConclusionType `json:"conclusion_type,omitempty"`
	// TimeHorizonNote holds the value of the "time_horizon_note" field.
	TimeHorizonNote *string `json:"time_horizon_note,omitempty"`
	// ValidFrom holds the value of the "valid_from" field.
	ValidFrom *time.Time `json:"valid_from,omitempty"`
	// ValidUntil holds the value of the "valid_until" field.
	ValidUntil *time.Time `json:"valid_until,omitempty"`
	// Status holds the value of the "status" field.
	Status conclusion.Status `json:"status,omitempty"`
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
	// SourceURL holds the value of the "source_url" field.
	SourceURL string `json:"source_url,omitempty"`
	// SourcePlatform holds the value of the "source_platform" field.
	SourcePlatform string `json:"source_platform,omitempty"`
	// PostedAt holds the value of the "posted_at" field.
	PostedAt time.Time `json:"posted_at,omitempty"`
	// CollectedAt holds the value of the "collected_at" field.
	CollectedAt time.Time `json:"collected_at,omitempty"`
	// LLM output for this node, verbatim JSON
	RawExtraction *string `json:"raw_extraction,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ConclusionQuery when eager-loading is set.
	Edges        ConclusionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ConclusionEdges holds the relations/edges for other nodes in the graph.
type ConclusionEdges struct {
	// Topic holds the value of the topic edge.
	Topic *Topic `json:"topic,omitempty"`
	// Author holds the value of the author edge.
	Author *Author `json:"author,omitempty"`
	// Logics holds the value of the logics edge.
	Logics []*Logic `json:"logics,omitempty"`
	// Verdicts holds the value of the verdicts edge.
	Verdicts []*ConclusionVerdict `json:"verdicts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// TopicOrErr returns the Topic value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ConclusionEdges) TopicOrErr() (*Topic, error) {
	if e.Topic != nil {
		return e.Topic, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: topic.Label}
	}
	return nil, &NotLoadedError{edge: "topic"}
}

// AuthorOrErr returns the Author value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ConclusionEdges) AuthorOrErr() (*Author, error) {
	if e.Author != nil {
		return e.Author, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: author.Label}
	}
	return nil, &NotLoadedError{edge: "author"}
}

// LogicsOrErr returns the Logics value or an error if the edge
// was not loaded in eager-loading.
func (e ConclusionEdges) LogicsOrErr() ([]*Logic, error) {
	if e.loadedTypes[2] {
		return e.Logics, nil
	}
	return nil, &NotLoadedError{edge: "logics"}
}

// VerdictsOrErr returns the Verdicts value or an error if the edge
// was not loaded in eager-loading.
func (e ConclusionEdges) VerdictsOrErr() ([]*ConclusionVerdict, error) {
	if e.loadedTypes[3] {
		return e.Verdicts, nil
	}
	return nil, &NotLoadedError{edge: "verdicts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Conclusion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case conclusion.FieldID, conclusion.FieldTopicID, conclusion.FieldAuthorID:
			values[i] = new(sql.NullInt64)
		case conclusion.FieldClaim, conclusion.FieldCanonicalClaim, conclusion.FieldConclusionType, conclusion.FieldTimeHorizonNote, conclusion.FieldStatus, conclusion.FieldMonitoringSourceOrg, conclusion.FieldMonitoringSourceURL, conclusion.FieldMonitoringPeriodNote, conclusion.FieldSourceURL, conclusion.FieldSourcePlatform, conclusion.FieldRawExtraction:
			values[i] = new(sql.NullString)
		case conclusion.FieldValidFrom, conclusion.FieldValidUntil, conclusion.FieldMonitoringStart, conclusion.FieldMonitoringEnd, conclusion.FieldPostedAt, conclusion.FieldCollectedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Conclusion fields.
func (_m *Conclusion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case conclusion.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case conclusion.FieldTopicID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				_m.TopicID = int(value.Int64)
			}
		case conclusion.FieldAuthorID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field author_id", values[i])
			} else if value.Valid {
				_m.AuthorID = int(value.Int64)
			}
		case conclusion.FieldClaim:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claim", values[i])
			} else if value.Valid {
				_m.Claim = value.String
			}
		case conclusion.FieldCanonicalClaim:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field canonical_claim", values[i])
			} else if value.Valid {
				_m.CanonicalClaim = new(string)
				*_m.CanonicalClaim = value.String
			}
		case conclusion.FieldConclusionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conclusion_type", values[i])
			} else if value.Valid {
				_m.ConclusionType = conclusion.ConclusionType(value.String)
			}
		case conclusion.FieldTimeHorizonNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field time_horizon_note", values[i])
			} else if value.Valid {
				_m.TimeHorizonNote = new(string)
				*_m.TimeHorizonNote = value.String
			}
		case conclusion.FieldValidFrom:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field valid_from", values[i])
			} else if value.Valid {
				_m.ValidFrom = new(time.Time)
				*_m.ValidFrom = value.Time
			}
		case conclusion.FieldValidUntil:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field valid_until", values[i])
			} else if value.Valid {
				_m.ValidUntil = new(time.Time)
				*_m.ValidUntil = value.Time
			}
		case conclusion.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = conclusion.Status(value.String)
			}
		case conclusion.FieldMonitoringSourceOrg:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field monitoring_source_org", values[i])
			} else if value.Valid {
				_m.MonitoringSourceOrg = new(string)
				*_m.MonitoringSourceOrg = value.String
			}
		case conclusion.FieldMonitoringSourceURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field monitoring_source_url", values[i])
			} else if value.Valid {
				_m.MonitoringSourceURL = new(string)
				*_m.MonitoringSourceURL = value.String
			}
		case conclusion.FieldMonitoringPeriodNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field monitoring_period_note", values[i])
			} else if value.Valid {
				_m.MonitoringPeriodNote = new(string)
				*_m.MonitoringPeriodNote = value.String
			}
		case conclusion.FieldMonitoringStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field monitoring_start", values[i])
			} else if value.Valid {
				_m.MonitoringStart = new(time.Time)
				*_m.MonitoringStart = value.Time
			}
		case conclusion.FieldMonitoringEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field monitoring_end", values[i])
			} else if value.Valid {
				_m.MonitoringEnd = new(time.Time)
				*_m.MonitoringEnd = value.Time
			}
		case conclusion.FieldSourceURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_url", values[i])
			} else if value.Valid {
				_m.SourceURL = value.String
			}
		case conclusion.FieldSourcePlatform:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_platform", values[i])
			} else if value.Valid {
				_m.SourcePlatform = value.String
			}
		case conclusion.FieldPostedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field posted_at", values[i])
			} else if value.Valid {
				_m.PostedAt = value.Time
			}
		case conclusion.FieldCollectedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field collected_at", values[i])
			} else if value.Valid {
				_m.CollectedAt = value.Time
			}
		case conclusion.FieldRawExtraction:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Conclusion.
// This includes values selected through modifiers, order, etc.
func (_m *Conclusion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTopic queries the "topic" edge of the Conclusion entity.
func (_m *Conclusion) QueryTopic() *TopicQuery {
	return NewConclusionClient(_m.config).QueryTopic(_m)
}

// QueryAuthor queries the "author" edge of the Conclusion entity.
func (_m *Conclusion) QueryAuthor() *AuthorQuery {
	return NewConclusionClient(_m.config).QueryAuthor(_m)
}

// QueryLogics queries the "logics" edge of the Conclusion entity.
func (_m *Conclusion) QueryLogics() *LogicQuery {
	return NewConclusionClient(_m.config).QueryLogics(_m)
}

// QueryVerdicts queries the "verdicts" edge of the Conclusion entity.
func (_m *Conclusion) QueryVerdicts() *ConclusionVerdictQuery {
	return NewConclusionClient(_m.config).QueryVerdicts(_m)
}

// Update returns a builder for updating this Conclusion.
// Note that you need to call Conclusion.Unwrap() before calling this method if this Conclusion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Conclusion) Update() *ConclusionUpdateOne {
	return NewConclusionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Conclusion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Conclusion) Unwrap() *Conclusion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Conclusion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Conclusion) String() string {
	var builder strings.Builder
	builder.WriteString("Conclusion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("topic_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TopicID))
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
	builder.WriteString("conclusion_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConclusionType))
	builder.WriteString(", ")
	if v := _m.TimeHorizonNote; v != nil {
		builder.WriteString("time_horizon_note=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ValidFrom; v != nil {
		builder.WriteString("valid_from=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ValidUntil; v != nil {
		builder.WriteString("valid_until=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
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
	builder.WriteString("source_url=")
	builder.WriteString(_m.SourceURL)
	builder.WriteString(", ")
	builder.WriteString("source_platform=")
	builder.WriteString(_m.SourcePlatform)
	builder.WriteString(", ")
	builder.WriteString("posted_at=")
	builder.WriteString(_m.PostedAt.Format(time.ANSIC))
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

// Conclusions is a parsable slice of Conclusion.
type Conclusions []*Conclusion

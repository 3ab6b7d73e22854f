// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/credlens/pundit/ent/monitoredsource"
	"github.com/credlens/pundit/ent/postqualityassessment"
	"github.com/credlens/pundit/ent/rawpost"
)

// RawPost is the model entity for the RawPost schema.
type RawPost struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Originating platform, e.g. 'twitter'
	Source string `json:"source,omitempty"`
	// ExternalID holds the value of the "external_id" field.
	ExternalID string `json:"external_id,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// Content plus quoted/thread/reply context, assembled by the enricher
	EnrichedContent *string `json:"enriched_content,omitempty"`
	// ContextFetched holds the value of the "context_fetched" field.
	ContextFetched bool `json:"context_fetched,omitempty"`
	// HasContext holds the value of the "has_context" field.
	HasContext bool `json:"has_context,omitempty"`
	// AuthorName holds the value of the "author_name" field.
	AuthorName string `json:"author_name,omitempty"`
	// AuthorPlatformID holds the value of the "author_platform_id" field.
	AuthorPlatformID *string `json:"author_platform_id,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// PostedAt holds the value of the "posted_at" field.
	PostedAt time.Time `json:"posted_at,omitempty"`
	// CollectedAt holds the value of the "collected_at" field.
	CollectedAt time.Time `json:"collected_at,omitempty"`
	// Platform payload, verbatim JSON
	RawMetadata *string `json:"raw_metadata,omitempty"`
	// JSON array: [{"type":"photo"|"video"|"gif","url":"..."}]
	MediaJSON *string `json:"media_json,omitempty"`
	// IsProcessed holds the value of the "is_processed" field.
	IsProcessed bool `json:"is_processed,omitempty"`
	// ProcessedAt holds the value of the "processed_at" field.
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	// MonitoredSourceID holds the value of the "monitored_source_id" field.
	MonitoredSourceID *int `json:"monitored_source_id,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RawPostQuery when eager-loading is set.
	Edges        RawPostEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RawPostEdges holds the relations/edges for other nodes in the graph.
type RawPostEdges struct {
	// MonitoredSource holds the value of the monitored_source edge.
	MonitoredSource *MonitoredSource `json:"monitored_source,omitempty"`
	// Facts holds the value of the facts edge.
	Facts []*Fact `json:"facts,omitempty"`
	// Logics holds the value of the logics edge.
	Logics []*Logic `json:"logics,omitempty"`
	// QualityAssessment holds the value of the quality_assessment edge.
	QualityAssessment *PostQualityAssessment `json:"quality_assessment,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// MonitoredSourceOrErr returns the MonitoredSource value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RawPostEdges) MonitoredSourceOrErr() (*MonitoredSource, error) {
	if e.MonitoredSource != nil {
		return e.MonitoredSource, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: monitoredsource.Label}
	}
	return nil, &NotLoadedError{edge: "monitored_source"}
}

// FactsOrErr returns the Facts value or an error if the edge
// was not loaded in eager-loading.
func (e RawPostEdges) FactsOrErr() ([]*Fact, error) {
	if e.loadedTypes[1] {
		return e.Facts, nil
	}
	return nil, &NotLoadedError{edge: "facts"}
}

// LogicsOrErr returns the Logics value or an error if the edge
// was not loaded in eager-loading.
func (e RawPostEdges) LogicsOrErr() ([]*Logic, error) {
	if e.loadedTypes[2] {
		return e.Logics, nil
	}
	return nil, &NotLoadedError{edge: "logics"}
}

// QualityAssessmentOrErr returns the QualityAssessment value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RawPostEdges) QualityAssessmentOrErr() (*PostQualityAssessment, error) {
	if e.QualityAssessment != nil {
		return e.QualityAssessment, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: postqualityassessment.Label}
	}
	return nil, &NotLoadedError{edge: "quality_assessment"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RawPost) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case rawpost.FieldContextFetched, rawpost.FieldHasContext, rawpost.FieldIsProcessed:
			values[i] = new(sql.NullBool)
		case rawpost.FieldID, rawpost.FieldMonitoredSourceID:
			values[i] = new(sql.NullInt64)
		case rawpost.FieldSource, rawpost.FieldExternalID, rawpost.FieldContent, rawpost.FieldEnrichedContent, rawpost.FieldAuthorName, rawpost.FieldAuthorPlatformID, rawpost.FieldURL, rawpost.FieldRawMetadata, rawpost.FieldMediaJSON:
			values[i] = new(sql.NullString)
		case rawpost.FieldPostedAt, rawpost.FieldCollectedAt, rawpost.FieldProcessedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RawPost fields.
func (_m *RawPost) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case rawpost.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case rawpost.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case rawpost.FieldExternalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_id", values[i])
			} else if value.Valid {
				_m.ExternalID = value.String
			}
		case rawpost.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case rawpost.FieldEnrichedContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field enriched_content", values[i])
			} else if value.Valid {
				_m.EnrichedContent = new(string)
				*_m.EnrichedContent = value.String
			}
		case rawpost.FieldContextFetched:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field context_fetched", values[i])
			} else if value.Valid {
				_m.ContextFetched = value.Bool
			}
		case rawpost.FieldHasContext:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_context", values[i])
			} else if value.Valid {
				_m.HasContext = value.Bool
			}
		case rawpost.FieldAuthorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author_name", values[i])
			} else if value.Valid {
				_m.AuthorName = value.String
			}
		case rawpost.FieldAuthorPlatformID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author_platform_id", values[i])
			} else if value.Valid {
				_m.AuthorPlatformID = new(string)
				*_m.AuthorPlatformID = value.String
			}
		case rawpost.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case rawpost.FieldPostedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field posted_at", values[i])
			} else if value.Valid {
				_m.PostedAt = value.Time
			}
		case rawpost.FieldCollectedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field collected_at", values[i])
			} else if value.Valid {
				_m.CollectedAt = value.Time
			}
		case rawpost.FieldRawMetadata:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_metadata", values[i])
			} else if value.Valid {
				_m.RawMetadata = new(string)
				*_m.RawMetadata = value.String
			}
		case rawpost.FieldMediaJSON:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field media_json", values[i])
			} else if value.Valid {
				_m.MediaJSON = new(string)
				*_m.MediaJSON = value.String
			}
		case rawpost.FieldIsProcessed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_processed", values[i])
			} else if value.Valid {
				_m.IsProcessed = value.Bool
			}
		case rawpost.FieldProcessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field processed_at", values[i])
			} else if value.Valid {
				_m.ProcessedAt = new(time.Time)
				*_m.ProcessedAt = value.Time
			}
		case rawpost.FieldMonitoredSourceID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field monitored_source_id", values[i])
			} else if value.Valid {
				_m.MonitoredSourceID = new(int)
				*_m.MonitoredSourceID = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RawPost.
// This includes values selected through modifiers, order, etc.
func (_m *RawPost) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMonitoredSource queries the "monitored_source" edge of the RawPost entity.
func (_m *RawPost) QueryMonitoredSource() *MonitoredSourceQuery {
	return NewRawPostClient(_m.config).QueryMonitoredSource(_m)
}

// QueryFacts queries the "facts" edge of the RawPost entity.
func (_m *RawPost) QueryFacts() *FactQuery {
	return NewRawPostClient(_m.config).QueryFacts(_m)
}

// QueryLogics queries the "logics" edge of the RawPost entity.
func (_m *RawPost) QueryLogics() *LogicQuery {
	return NewRawPostClient(_m.config).QueryLogics(_m)
}

// QueryQualityAssessment queries the "quality_assessment" edge of the RawPost entity.
func (_m *RawPost) QueryQualityAssessment() *PostQualityAssessmentQuery {
	return NewRawPostClient(_m.config).QueryQualityAssessment(_m)
}

// Update returns a builder for updating this RawPost.
// Note that you need to call RawPost.Unwrap() before calling this method if this RawPost
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RawPost) Update() *RawPostUpdateOne {
	return NewRawPostClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RawPost entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RawPost) Unwrap() *RawPost {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RawPost is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RawPost) String() string {
	var builder strings.Builder
	builder.WriteString("RawPost(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("external_id=")
	builder.WriteString(_m.ExternalID)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	if v := _m.EnrichedContent; v != nil {
		builder.WriteString("enriched_content=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("context_fetched=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContextFetched))
	builder.WriteString(", ")
	builder.WriteString("has_context=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasContext))
	builder.WriteString(", ")
	builder.WriteString("author_name=")
	builder.WriteString(_m.AuthorName)
	builder.WriteString(", ")
	if v := _m.AuthorPlatformID; v != nil {
		builder.WriteString("author_platform_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("posted_at=")
	builder.WriteString(_m.PostedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("collected_at=")
	builder.WriteString(_m.CollectedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.RawMetadata; v != nil {
		builder.WriteString("raw_metadata=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MediaJSON; v != nil {
		builder.WriteString("media_json=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_processed=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsProcessed))
	builder.WriteString(", ")
	if v := _m.ProcessedAt; v != nil {
		builder.WriteString("processed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.MonitoredSourceID; v != nil {
		builder.WriteString("monitored_source_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// RawPosts is a parsable slice of RawPost.
type RawPosts []*RawPost

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/credlens/pundit/ent/author"
	"github.com/credlens/pundit/ent/monitoredsource"
)

// MonitoredSource is the model entity for the MonitoredSource schema.
type MonitoredSource struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// SourceType holds the value of the "source_type" field.
	SourceType monitoredsource.SourceType `json:"source_type,omitempty"`
	// Platform holds the value of the "platform" field.
	Platform string `json:"platform,omitempty"`
	// Post ID or user ID, platform-native
	PlatformID string `json:"platform_id,omitempty"`
	// AuthorID holds the value of the "author_id" field.
	AuthorID *int `json:"author_id,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// FetchIntervalMinutes holds the value of the "fetch_interval_minutes" field.
	FetchIntervalMinutes int `json:"fetch_interval_minutes,omitempty"`
	// LastFetchedAt holds the value of the "last_fetched_at" field.
	LastFetchedAt *time.Time `json:"last_fetched_at,omitempty"`
	// Profile sources: the one-year backfill already ran
	HistoryFetched bool `json:"history_fetched,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MonitoredSourceQuery when eager-loading is set.
	Edges        MonitoredSourceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MonitoredSourceEdges holds the relations/edges for other nodes in the graph.
type MonitoredSourceEdges struct {
	// Author holds the value of the author edge.
	Author *Author `json:"author,omitempty"`
	// RawPosts holds the value of the raw_posts edge.
	RawPosts []*RawPost `json:"raw_posts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AuthorOrErr returns the Author value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MonitoredSourceEdges) AuthorOrErr() (*Author, error) {
	if e.Author != nil {
		return e.Author, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: author.Label}
	}
	return nil, &NotLoadedError{edge: "author"}
}

// RawPostsOrErr returns the RawPosts value or an error if the edge
// was not loaded in eager-loading.
func (e MonitoredSourceEdges) RawPostsOrErr() ([]*RawPost, error) {
	if e.loadedTypes[1] {
		return e.RawPosts, nil
	}
	return nil, &NotLoadedError{edge: "raw_posts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MonitoredSource) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case monitoredsource.FieldIsActive, monitoredsource.FieldHistoryFetched:
			values[i] = new(sql.NullBool)
		case monitoredsource.FieldID, monitoredsource.FieldAuthorID, monitoredsource.FieldFetchIntervalMinutes:
			values[i] = new(sql.NullInt64)
		case monitoredsource.FieldURL, monitoredsource.FieldSourceType, monitoredsource.FieldPlatform, monitoredsource.FieldPlatformID:
			values[i] = new(sql.NullString)
		case monitoredsource.FieldLastFetchedAt, monitoredsource.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MonitoredSource fields.
func (_m *MonitoredSource) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case monitoredsource.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case monitoredsource.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case monitoredsource.FieldSourceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_type", values[i])
			} else if value.Valid {
				_m.SourceType = monitoredsource.SourceType(value.String)
			}
		case monitoredsource.FieldPlatform:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field platform", values[i])
			} else if value.Valid {
				_m.Platform = value.String
			}
		case monitoredsource.FieldPlatformID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field platform_id", values[i])
			} else if value.Valid {
				_m.PlatformID = value.String
			}
		case monitoredsource.FieldAuthorID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field author_id", values[i])
			} else if value.Valid {
				_m.AuthorID = new(int)
				*_m.AuthorID = int(value.Int64)
			}
		case monitoredsource.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case monitoredsource.FieldFetchIntervalMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field fetch_interval_minutes", values[i])
			} else if value.Valid {
				_m.FetchIntervalMinutes = int(value.Int64)
			}
		case monitoredsource.FieldLastFetchedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_fetched_at", values[i])
			} else if value.Valid {
				_m.LastFetchedAt = new(time.Time)
				*_m.LastFetchedAt = value.Time
			}
		case monitoredsource.FieldHistoryFetched:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field history_fetched", values[i])
			} else if value.Valid {
				_m.HistoryFetched = value.Bool
			}
		case monitoredsource.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MonitoredSource.
// This includes values selected through modifiers, order, etc.
func (_m *MonitoredSource) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAuthor queries the "author" edge of the MonitoredSource entity.
func (_m *MonitoredSource) QueryAuthor() *AuthorQuery {
	return NewMonitoredSourceClient(_m.config).QueryAuthor(_m)
}

// QueryRawPosts queries the "raw_posts" edge of the MonitoredSource entity.
func (_m *MonitoredSource) QueryRawPosts() *RawPostQuery {
	return NewMonitoredSourceClient(_m.config).QueryRawPosts(_m)
}

// Update returns a builder for updating this MonitoredSource.
// Note that you need to call MonitoredSource.Unwrap() before calling this method if this MonitoredSource
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MonitoredSource) Update() *MonitoredSourceUpdateOne {
	return NewMonitoredSourceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MonitoredSource entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MonitoredSource) Unwrap() *MonitoredSource {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MonitoredSource is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MonitoredSource) String() string {
	var builder strings.Builder
	builder.WriteString("MonitoredSource(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("source_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceType))
	builder.WriteString(", ")
	builder.WriteString("platform=")
	builder.WriteString(_m.Platform)
	builder.WriteString(", ")
	builder.WriteString("platform_id=")
	builder.WriteString(_m.PlatformID)
	builder.WriteString(", ")
	if v := _m.AuthorID; v != nil {
		builder.WriteString("author_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("fetch_interval_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.FetchIntervalMinutes))
	builder.WriteString(", ")
	if v := _m.LastFetchedAt; v != nil {
		builder.WriteString("last_fetched_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("history_fetched=")
	builder.WriteString(fmt.Sprintf("%v", _m.HistoryFetched))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MonitoredSources is a parsable slice of MonitoredSource.
type MonitoredSources []*MonitoredSource

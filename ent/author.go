// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/credlens/pundit/ent/author"
	"github.com/credlens/pundit/ent/authorstats"
)

// Author is the model entity for the Author schema.
type Author struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// e.g., 'twitter', 'weibo', 'youtube'
	Platform string `json:"platform,omitempty"`
	// Platform-native user identifier
	PlatformID *string `json:"platform_id,omitempty"`
	// ProfileURL holds the value of the "profile_url" field.
	ProfileURL *string `json:"profile_url,omitempty"`
	// Platform bio, as collected
	Description *string `json:"description,omitempty"`
	// e.g., 'hedge fund founder', 'academic researcher'
	Role *string `json:"role,omitempty"`
	// ExpertiseAreas holds the value of the "expertise_areas" field.
	ExpertiseAreas *string `json:"expertise_areas,omitempty"`
	// KnownBiases holds the value of the "known_biases" field.
	KnownBiases *string `json:"known_biases,omitempty"`
	// 1=top authority .. 5=unknown
	CredibilityTier *int `json:"credibility_tier,omitempty"`
	// ProfileNote holds the value of the "profile_note" field.
	ProfileNote *string `json:"profile_note,omitempty"`
	// ProfileFetched holds the value of the "profile_fetched" field.
	ProfileFetched bool `json:"profile_fetched,omitempty"`
	// ProfileFetchedAt holds the value of the "profile_fetched_at" field.
	ProfileFetchedAt *time.Time `json:"profile_fetched_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AuthorQuery when eager-loading is set.
	Edges        AuthorEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AuthorEdges holds the relations/edges for other nodes in the graph.
type AuthorEdges struct {
	// Conclusions holds the value of the conclusions edge.
	Conclusions []*Conclusion `json:"conclusions,omitempty"`
	// Solutions holds the value of the solutions edge.
	Solutions []*Solution `json:"solutions,omitempty"`
	// MonitoredSources holds the value of the monitored_sources edge.
	MonitoredSources []*MonitoredSource `json:"monitored_sources,omitempty"`
	// QualityAssessments holds the value of the quality_assessments edge.
	QualityAssessments []*PostQualityAssessment `json:"quality_assessments,omitempty"`
	// Stats holds the value of the stats edge.
	Stats *AuthorStats `json:"stats,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// ConclusionsOrErr returns the Conclusions value or an error if the edge
// was not loaded in eager-loading.
func (e AuthorEdges) ConclusionsOrErr() ([]*Conclusion, error) {
	if e.loadedTypes[0] {
		return e.Conclusions, nil
	}
	return nil, &NotLoadedError{edge: "conclusions"}
}

// SolutionsOrErr returns the Solutions value or an error if the edge
// was not loaded in eager-loading.
func (e AuthorEdges) SolutionsOrErr() ([]*Solution, error) {
	if e.loadedTypes[1] {
		return e.Solutions, nil
	}
	return nil, &NotLoadedError{edge: "solutions"}
}

// MonitoredSourcesOrErr returns the MonitoredSources value or an error if the edge
// was not loaded in eager-loading.
func (e AuthorEdges) MonitoredSourcesOrErr() ([]*MonitoredSource, error) {
	if e.loadedTypes[2] {
		return e.MonitoredSources, nil
	}
	return nil, &NotLoadedError{edge: "monitored_sources"}
}

// QualityAssessmentsOrErr returns the QualityAssessments value or an error if the edge
// was not loaded in eager-loading.
func (e AuthorEdges) QualityAssessmentsOrErr() ([]*PostQualityAssessment, error) {
	if e.loadedTypes[3] {
		return e.QualityAssessments, nil
	}
	return nil, &NotLoadedError{edge: "quality_assessments"}
}

// StatsOrErr returns the Stats value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AuthorEdges) StatsOrErr() (*AuthorStats, error) {
	if e.Stats != nil {
		return e.Stats, nil
	} else if e.loadedTypes[4] {
		return nil, &NotFoundError{label: authorstats.Label}
	}
	return nil, &NotLoadedError{edge: "stats"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Author) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case author.FieldProfileFetched:
			values[i] = new(sql.NullBool)
		case author.FieldID, author.FieldCredibilityTier:
			values[i] = new(sql.NullInt64)
		case author.FieldName, author.FieldPlatform, author.FieldPlatformID, author.FieldProfileURL, author.FieldDescription, author.FieldRole, author.FieldExpertiseAreas, author.FieldKnownBiases, author.FieldProfileNote:
			values[i] = new(sql.NullString)
		case author.FieldProfileFetchedAt, author.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Author fields.
func (_m *Author) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case author.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case author.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case author.FieldPlatform:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field platform", values[i])
			} else if value.Valid {
				_m.Platform = value.String
			}
		case author.FieldPlatformID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field platform_id", values[i])
			} else if value.Valid {
				_m.PlatformID = new(string)
				*_m.PlatformID = value.String
			}
		case author.FieldProfileURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field profile_url", values[i])
			} else if value.Valid {
				_m.ProfileURL = new(string)
				*_m.ProfileURL = value.String
			}
		case author.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = new(string)
				*_m.Description = value.String
			}
		case author.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = new(string)
				*_m.Role = value.String
			}
		case author.FieldExpertiseAreas:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field expertise_areas", values[i])
			} else if value.Valid {
				_m.ExpertiseAreas = new(string)
				*_m.ExpertiseAreas = value.String
			}
		case author.FieldKnownBiases:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field known_biases", values[i])
			} else if value.Valid {
				_m.KnownBiases = new(string)
				*_m.KnownBiases = value.String
			}
		case author.FieldCredibilityTier:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field credibility_tier", values[i])
			} else if value.Valid {
				_m.CredibilityTier = new(int)
				*_m.CredibilityTier = int(value.Int64)
			}
		case author.FieldProfileNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field profile_note", values[i])
			} else if value.Valid {
				_m.ProfileNote = new(string)
				*_m.ProfileNote = value.String
			}
		case author.FieldProfileFetched:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field profile_fetched", values[i])
			} else if value.Valid {
				_m.ProfileFetched = value.Bool
			}
		case author.FieldProfileFetchedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field profile_fetched_at", values[i])
			} else if value.Valid {
				_m.ProfileFetchedAt = new(time.Time)
				*_m.ProfileFetchedAt = value.Time
			}
		case author.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Author.
// This includes values selected through modifiers, order, etc.
func (_m *Author) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryConclusions queries the "conclusions" edge of the Author entity.
func (_m *Author) QueryConclusions() *ConclusionQuery {
	return NewAuthorClient(_m.config).QueryConclusions(_m)
}

// QuerySolutions queries the "solutions" edge of the Author entity.
func (_m *Author) QuerySolutions() *SolutionQuery {
	return NewAuthorClient(_m.config).QuerySolutions(_m)
}

// QueryMonitoredSources queries the "monitored_sources" edge of the Author entity.
func (_m *Author) QueryMonitoredSources() *MonitoredSourceQuery {
	return NewAuthorClient(_m.config).QueryMonitoredSources(_m)
}

// QueryQualityAssessments queries the "quality_assessments" edge of the Author entity.
func (_m *Author) QueryQualityAssessments() *PostQualityAssessmentQuery {
	return NewAuthorClient(_m.config).QueryQualityAssessments(_m)
}

// QueryStats queries the "stats" edge of the Author entity.
func (_m *Author) QueryStats() *AuthorStatsQuery {
	return NewAuthorClient(_m.config).QueryStats(_m)
}

// Update returns a builder for updating this Author.
// Note that you need to call Author.Unwrap() before calling this method if this Author
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Author) Update() *AuthorUpdateOne {
	return NewAuthorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Author entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Author) Unwrap() *Author {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Author is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Author) String() string {
	var builder strings.Builder
	builder.WriteString("Author(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("platform=")
	builder.WriteString(_m.Platform)
	builder.WriteString(", ")
	if v := _m.PlatformID; v != nil {
		builder.WriteString("platform_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ProfileURL; v != nil {
		builder.WriteString("profile_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Description; v != nil {
		builder.WriteString("description=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Role; v != nil {
		builder.WriteString("role=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExpertiseAreas; v != nil {
		builder.WriteString("expertise_areas=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.KnownBiases; v != nil {
		builder.WriteString("known_biases=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CredibilityTier; v != nil {
		builder.WriteString("credibility_tier=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ProfileNote; v != nil {
		builder.WriteString("profile_note=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("profile_fetched=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProfileFetched))
	builder.WriteString(", ")
	if v := _m.ProfileFetchedAt; v != nil {
		builder.WriteString("profile_fetched_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Authors is a parsable slice of Author.
type Authors []*Author

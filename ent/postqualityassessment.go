// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/credlens/pundit/ent/author"
	"github.com/credlens/pundit/ent/postqualityassessment"
	"github.com/credlens/pundit/ent/rawpost"
)

// PostQualityAssessment is the model entity for the PostQualityAssessment schema.
type PostQualityAssessment struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// RawPostID holds the value of the "raw_post_id" field.
	RawPostID int `json:"raw_post_id,omitempty"`
	// AuthorID holds the value of the "author_id" field.
	AuthorID int `json:"author_id,omitempty"`
	// UniquenessScore holds the value of the "uniqueness_score" field.
	UniquenessScore *float64 `json:"uniqueness_score,omitempty"`
	// UniquenessNote holds the value of the "uniqueness_note" field.
	UniquenessNote *string `json:"uniqueness_note,omitempty"`
	// IsFirstMover holds the value of the "is_first_mover" field.
	IsFirstMover *bool `json:"is_first_mover,omitempty"`
	// Matching claims elsewhere, excluding this post
	SimilarClaimCount int `json:"similar_claim_count,omitempty"`
	// SimilarAuthorCount holds the value of the "similar_author_count" field.
	SimilarAuthorCount int `json:"similar_author_count,omitempty"`
	// EffectivenessScore holds the value of the "effectiveness_score" field.
	EffectivenessScore *float64 `json:"effectiveness_score,omitempty"`
	// EffectivenessNote holds the value of the "effectiveness_note" field.
	EffectivenessNote *string `json:"effectiveness_note,omitempty"`
	// NoiseRatio holds the value of the "noise_ratio" field.
	NoiseRatio *float64 `json:"noise_ratio,omitempty"`
	// Subset of emotional_rhetoric, entertainment, filler
	NoiseTypes []string `json:"noise_types,omitempty"`
	// AssessedAt holds the value of the "assessed_at" field.
	AssessedAt time.Time `json:"assessed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PostQualityAssessmentQuery when eager-loading is set.
	Edges        PostQualityAssessmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PostQualityAssessmentEdges holds the relations/edges for other nodes in the graph.
type PostQualityAssessmentEdges struct {
	// RawPost holds the value of the raw_post edge.
	RawPost *RawPost `json:"raw_post,omitempty"`
	// Author holds the value of the author edge.
	Author *Author `json:"author,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// RawPostOrErr returns the RawPost value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PostQualityAssessmentEdges) RawPostOrErr() (*RawPost, error) {
	if e.RawPost != nil {
		return e.RawPost, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: rawpost.Label}
	}
	return nil, &NotLoadedError{edge: "raw_post"}
}

// AuthorOrErr returns the Author value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PostQualityAssessmentEdges) AuthorOrErr() (*Author, error) {
	if e.Author != nil {
		return e.Author, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: author.Label}
	}
	return nil, &NotLoadedError{edge: "author"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PostQualityAssessment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case postqualityassessment.FieldNoiseTypes:
			values[i] = new([]byte)
		case postqualityassessment.FieldIsFirstMover:
			values[i] = new(sql.NullBool)
		case postqualityassessment.FieldUniquenessScore, postqualityassessment.FieldEffectivenessScore, postqualityassessment.FieldNoiseRatio:
			values[i] = new(sql.NullFloat64)
		case postqualityassessment.FieldID, postqualityassessment.FieldRawPostID, postqualityassessment.FieldAuthorID, postqualityassessment.FieldSimilarClaimCount, postqualityassessment.FieldSimilarAuthorCount:
			values[i] = new(sql.NullInt64)
		case postqualityassessment.FieldUniquenessNote, postqualityassessment.FieldEffectivenessNote:
			values[i] = new(sql.NullString)
		case postqualityassessment.FieldAssessedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PostQualityAssessment fields.
func (_m *PostQualityAssessment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case postqualityassessment.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case postqualityassessment.FieldRawPostID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field raw_post_id", values[i])
			} else if value.Valid {
				_m.RawPostID = int(value.Int64)
			}
		case postqualityassessment.FieldAuthorID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field author_id", values[i])
			} else if value.Valid {
				_m.AuthorID = int(value.Int64)
			}
		case postqualityassessment.FieldUniquenessScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field uniqueness_score", values[i])
			} else if value.Valid {
				_m.UniquenessScore = new(float64)
				*_m.UniquenessScore = value.Float64
			}
		case postqualityassessment.FieldUniquenessNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field uniqueness_note", values[i])
			} else if value.Valid {
				_m.UniquenessNote = new(string)
				*_m.UniquenessNote = value.String
			}
		case postqualityassessment.FieldIsFirstMover:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_first_mover", values[i])
			} else if value.Valid {
				_m.IsFirstMover = new(bool)
				*_m.IsFirstMover = value.Bool
			}
		case postqualityassessment.FieldSimilarClaimCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field similar_claim_count", values[i])
			} else if value.Valid {
				_m.SimilarClaimCount = int(value.Int64)
			}
		case postqualityassessment.FieldSimilarAuthorCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field similar_author_count", values[i])
			} else if value.Valid {
				_m.SimilarAuthorCount = int(value.Int64)
			}
		case postqualityassessment.FieldEffectivenessScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field effectiveness_score", values[i])
			} else if value.Valid {
				_m.EffectivenessScore = new(float64)
				*_m.EffectivenessScore = value.Float64
			}
		case postqualityassessment.FieldEffectivenessNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field effectiveness_note", values[i])
			} else if value.Valid {
				_m.EffectivenessNote = new(string)
				*_m.EffectivenessNote = value.String
			}
		case postqualityassessment.FieldNoiseRatio:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field noise_ratio", values[i])
			} else if value.Valid {
				_m.NoiseRatio = new(float64)
				*_m.NoiseRatio = value.Float64
			}
		case postqualityassessment.FieldNoiseTypes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field noise_types", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.NoiseTypes); err != nil {
					return fmt.Errorf("unmarshal field noise_types: %w", err)
				}
			}
		case postqualityassessment.FieldAssessedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PostQualityAssessment.
// This includes values selected through modifiers, order, etc.
func (_m *PostQualityAssessment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRawPost queries the "raw_post" edge of the PostQualityAssessment entity.
func (_m *PostQualityAssessment) QueryRawPost() *RawPostQuery {
	return NewPostQualityAssessmentClient(_m.config).QueryRawPost(_m)
}

// QueryAuthor queries the "author" edge of the PostQualityAssessment entity.
func (_m *PostQualityAssessment) QueryAuthor() *AuthorQuery {
	return NewPostQualityAssessmentClient(_m.config).QueryAuthor(_m)
}

// Update returns a builder for updating this PostQualityAssessment.
// Note that you need to call PostQualityAssessment.Unwrap() before calling this method if this PostQualityAssessment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PostQualityAssessment) Update() *PostQualityAssessmentUpdateOne {
	return NewPostQualityAssessmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PostQualityAssessment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PostQualityAssessment) Unwrap() *PostQualityAssessment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PostQualityAssessment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PostQualityAssessment) String() string {
	var builder strings.Builder
	builder.WriteString("PostQualityAssessment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("raw_post_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawPostID))
	builder.WriteString(", ")
	builder.WriteString("author_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AuthorID))
	builder.WriteString(", ")
	if v := _m.UniquenessScore; v != nil {
		builder.WriteString("uniqueness_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.UniquenessNote; v != nil {
		builder.WriteString("uniqueness_note=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.IsFirstMover; v != nil {
		builder.WriteString("is_first_mover=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("similar_claim_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SimilarClaimCount))
	builder.WriteString(", ")
	builder.WriteString("similar_author_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SimilarAuthorCount))
	builder.WriteString(", ")
	if v := _m.EffectivenessScore; v != nil {
		builder.WriteString("effectiveness_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.EffectivenessNote; v != nil {
		builder.WriteString("effectiveness_note=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.NoiseRatio; v != nil {
		builder.WriteString("noise_ratio=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("noise_types=")
	builder.WriteString(fmt.Sprintf("%v", _m.NoiseTypes))
	builder.WriteString(", ")
	builder.WriteString("assessed_at=")
	builder.WriteString(_m.AssessedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PostQualityAssessments is a parsable slice of PostQualityAssessment.
type PostQualityAssessments []*PostQualityAssessment

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

// AuthorStats is the model entity for the AuthorStats schema.
type AuthorStats struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AuthorID holds the value of the "author_id" field.
	AuthorID int `json:"author_id,omitempty"`
	// FactAccuracyRate holds the value of the "fact_accuracy_rate" field.
	FactAccuracyRate *float64 `json:"fact_accuracy_rate,omitempty"`
	// FactAccuracySample holds the value of the "fact_accuracy_sample" field.
	FactAccuracySample int `json:"fact_accuracy_sample,omitempty"`
	// ConclusionAccuracyRate holds the value of the "conclusion_accuracy_rate" field.
	ConclusionAccuracyRate *float64 `json:"conclusion_accuracy_rate,omitempty"`
	// ConclusionAccuracySample holds the value of the "conclusion_accuracy_sample" field.
	ConclusionAccuracySample int `json:"conclusion_accuracy_sample,omitempty"`
	// PredictionAccuracyRate holds the value of the "prediction_accuracy_rate" field.
	PredictionAccuracyRate *float64 `json:"prediction_accuracy_rate,omitempty"`
	// PredictionAccuracySample holds the value of the "prediction_accuracy_sample" field.
	PredictionAccuracySample int `json:"prediction_accuracy_sample,omitempty"`
	// LogicRigorScore holds the value of the "logic_rigor_score" field.
	LogicRigorScore *float64 `json:"logic_rigor_score,omitempty"`
	// LogicRigorSample holds the value of the "logic_rigor_sample" field.
	LogicRigorSample int `json:"logic_rigor_sample,omitempty"`
	// RecommendationReliabilityRate holds the value of the "recommendation_reliability_rate" field.
	RecommendationReliabilityRate *float64 `json:"recommendation_reliability_rate,omitempty"`
	// RecommendationReliabilitySample holds the value of the "recommendation_reliability_sample" field.
	RecommendationReliabilitySample int `json:"recommendation_reliability_sample,omitempty"`
	// ContentUniquenessScore holds the value of the "content_uniqueness_score" field.
	ContentUniquenessScore *float64 `json:"content_uniqueness_score,omitempty"`
	// ContentUniquenessSample holds the value of the "content_uniqueness_sample" field.
	ContentUniquenessSample int `json:"content_uniqueness_sample,omitempty"`
	// ContentEffectivenessScore holds the value of the "content_effectiveness_score" field.
	ContentEffectivenessScore *float64 `json:"content_effectiveness_score,omitempty"`
	// ContentEffectivenessSample holds the value of the "content_effectiveness_sample" field.
	ContentEffectivenessSample int `json:"content_effectiveness_sample,omitempty"`
	// Weighted blend on a 0-100 scale
	OverallCredibilityScore *float64 `json:"overall_credibility_score,omitempty"`
	// TotalPostsAnalyzed holds the value of the "total_posts_analyzed" field.
	TotalPostsAnalyzed int `json:"total_posts_analyzed,omitempty"`
	// LastUpdated holds the value of the "last_updated" field.
	LastUpdated time.Time `json:"last_updated,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AuthorStatsQuery when eager-loading is set.
	Edges        AuthorStatsEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AuthorStatsEdges holds the relations/edges for other nodes in the graph.
type AuthorStatsEdges struct {
	// Author holds the value of the author edge.
	Author *Author `json:"author,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AuthorOrErr returns the Author value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AuthorStatsEdges) AuthorOrErr() (*Author, error) {
	if e.Author != nil {
		return e.Author, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: author.Label}
	}
	return nil, &NotLoadedError{edge: "author"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AuthorStats) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case authorstats.FieldFactAccuracyRate, authorstats.FieldConclusionAccuracyRate, authorstats.FieldPredictionAccuracyRate, authorstats.FieldLogicRigorScore, authorstats.FieldRecommendationReliabilityRate, authorstats.FieldContentUniquenessScore, authorstats.FieldContentEffectivenessScore, authorstats.FieldOverallCredibilityScore:
			values[i] = new(sql.NullFloat64)
		case authorstats.FieldID, authorstats.FieldAuthorID, authorstats.FieldFactAccuracySample, authorstats.FieldConclusionAccuracySample, authorstats.FieldPredictionAccuracySample, authorstats.FieldLogicRigorSample, authorstats.FieldRecommendationReliabilitySample, authorstats.FieldContentUniquenessSample, authorstats.FieldContentEffectivenessSample, authorstats.FieldTotalPostsAnalyzed:
			values[i] = new(sql.NullInt64)
		case authorstats.FieldLastUpdated:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AuthorStats fields.
func (_m *AuthorStats) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case authorstats.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case authorstats.FieldAuthorID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field author_id", values[i])
			} else if value.Valid {
				_m.AuthorID = int(value.Int64)
			}
		case authorstats.FieldFactAccuracyRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field fact_accuracy_rate", values[i])
			} else if value.Valid {
				_m.FactAccuracyRate = new(float64)
				*_m.FactAccuracyRate = value.Float64
			}
		case authorstats.FieldFactAccuracySample:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field fact_accuracy_sample", values[i])
			} else if value.Valid {
				_m.FactAccuracySample = int(value.Int64)
			}
		case authorstats.FieldConclusionAccuracyRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field conclusion_accuracy_rate", values[i])
			} else if value.Valid {
				_m.ConclusionAccuracyRate = new(float64)
				*_m.ConclusionAccuracyRate = value.Float64
			}
		case authorstats.FieldConclusionAccuracySample:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field conclusion_accuracy_sample", values[i])
			} else if value.Valid {
				_m.ConclusionAccuracySample = int(value.Int64)
			}
		case authorstats.FieldPredictionAccuracyRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field prediction_accuracy_rate", values[i])
			} else if value.Valid {
				_m.PredictionAccuracyRate = new(float64)
				*_m.PredictionAccuracyRate = value.Float64
			}
		case authorstats.FieldPredictionAccuracySample:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prediction_accuracy_sample", values[i])
			} else if value.Valid {
				_m.PredictionAccuracySample = int(value.Int64)
			}
		case authorstats.FieldLogicRigorScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field logic_rigor_score", values[i])
			} else if value.Valid {
				_m.LogicRigorScore = new(float64)
				*_m.LogicRigorScore = value.Float64
			}
		case authorstats.FieldLogicRigorSample:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field logic_rigor_sample", values[i])
			} else if value.Valid {
				_m.LogicRigorSample = int(value.Int64)
			}
		case authorstats.FieldRecommendationReliabilityRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field recommendation_reliability_rate", values[i])
			} else if value.Valid {
				_m.RecommendationReliabilityRate = new(float64)
				*_m.RecommendationReliabilityRate = value.Float64
			}
		case authorstats.FieldRecommendationReliabilitySample:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field recommendation_reliability_sample", values[i])
			} else if value.Valid {
				_m.RecommendationReliabilitySample = int(value.Int64)
			}
		case authorstats.FieldContentUniquenessScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field content_uniqueness_score", values[i])
			} else if value.Valid {
				_m.ContentUniquenessScore = new(float64)
				*_m.ContentUniquenessScore = value.Float64
			}
		case authorstats.FieldContentUniquenessSample:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field content_uniqueness_sample", values[i])
			} else if value.Valid {
				_m.ContentUniquenessSample = int(value.Int64)
			}
		case authorstats.FieldContentEffectivenessScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field content_effectiveness_score", values[i])
			} else if value.Valid {
				_m.ContentEffectivenessScore = new(float64)
				*_m.ContentEffectivenessScore = value.Float64
			}
		case authorstats.FieldContentEffectivenessSample:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field content_effectiveness_sample", values[i])
			} else if value.Valid {
				_m.ContentEffectivenessSample = int(value.Int64)
			}
		case authorstats.FieldOverallCredibilityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_credibility_score", values[i])
			} else if value.Valid {
				_m.OverallCredibilityScore = new(float64)
				*_m.OverallCredibilityScore = value.Float64
			}
		case authorstats.FieldTotalPostsAnalyzed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_posts_analyzed", values[i])
			} else if value.Valid {
				_m.TotalPostsAnalyzed = int(value.Int64)
			}
		case authorstats.FieldLastUpdated:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_updated", values[i])
			} else if value.Valid {
				_m.LastUpdated = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AuthorStats.
// This includes values selected through modifiers, order, etc.
func (_m *AuthorStats) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAuthor queries the "author" edge of the AuthorStats entity.
func (_m *AuthorStats) QueryAuthor() *AuthorQuery {
	return NewAuthorStatsClient(_m.config).QueryAuthor(_m)
}

// Update returns a builder for updating this AuthorStats.
// Note that you need to call AuthorStats.Unwrap() before calling this method if this AuthorStats
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AuthorStats) Update() *AuthorStatsUpdateOne {
	return NewAuthorStatsClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AuthorStats entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AuthorStats) Unwrap() *AuthorStats {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AuthorStats is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AuthorStats) String() string {
	var builder strings.Builder
	builder.WriteString("AuthorStats(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("author_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AuthorID))
	builder.WriteString(", ")
	if v := _m.FactAccuracyRate; v != nil {
		builder.WriteString("fact_accuracy_rate=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("fact_accuracy_sample=")
	builder.WriteString(fmt.Sprintf("%v", _m.FactAccuracySample))
	builder.WriteString(", ")
	if v := _m.ConclusionAccuracyRate; v != nil {
		builder.WriteString("conclusion_accuracy_rate=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("conclusion_accuracy_sample=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConclusionAccuracySample))
	builder.WriteString(", ")
	if v := _m.PredictionAccuracyRate; v != nil {
		builder.WriteString("prediction_accuracy_rate=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("prediction_accuracy_sample=")
	builder.WriteString(fmt.Sprintf("%v", _m.PredictionAccuracySample))
	builder.WriteString(", ")
	if v := _m.LogicRigorScore; v != nil {
		builder.WriteString("logic_rigor_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("logic_rigor_sample=")
	builder.WriteString(fmt.Sprintf("%v", _m.LogicRigorSample))
	builder.WriteString(", ")
	if v := _m.RecommendationReliabilityRate; v != nil {
		builder.WriteString("recommendation_reliability_rate=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("recommendation_reliability_sample=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecommendationReliabilitySample))
	builder.WriteString(", ")
	if v := _m.ContentUniquenessScore; v != nil {
		builder.WriteString("content_uniqueness_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("content_uniqueness_sample=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentUniquenessSample))
	builder.WriteString(", ")
	if v := _m.ContentEffectivenessScore; v != nil {
		builder.WriteString("content_effectiveness_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("content_effectiveness_sample=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentEffectivenessSample))
	builder.WriteString(", ")
	if v := _m.OverallCredibilityScore; v != nil {
		builder.WriteString("overall_credibility_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("total_posts_analyzed=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalPostsAnalyzed))
	builder.WriteString(", ")
	builder.WriteString("last_updated=")
	builder.WriteString(_m.LastUpdated.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AuthorStatsSlice is a parsable slice of AuthorStats.
type AuthorStatsSlice []*AuthorStats

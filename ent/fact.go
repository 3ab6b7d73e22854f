// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/credlens/pundit/ent/fact"
	"github.com/credlens/pundit/ent/rawpost"
)

// Fact is the model entity for the Fact schema.
type Fact struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Original wording, or a compact paraphrase
	Claim string `json:"claim,omitempty"`
	// Normalized form used for cross-post matching
	CanonicalClaim *string `json:"canonical_claim,omitempty"`
	// Quantified, time-bounded restatement suitable for checking
	VerifiableExpression *string `json:"verifiable_expression,omitempty"`
	// IsVerifiable holds the value of the "is_verifiable" field.
	IsVerifiable bool `json:"is_verifiable,omitempty"`
	// Which data over which period, and the decision threshold
	VerificationMethod *string `json:"verification_method,omitempty"`
	// ValidityStartNote holds the value of the "validity_start_note" field.
	ValidityStartNote *string `json:"validity_start_note,omitempty"`
	// ValidityEndNote holds the value of the "validity_end_note" field.
	ValidityEndNote *string `json:"validity_end_note,omitempty"`
	// ValidityStart holds the value of the "validity_start" field.
	ValidityStart *time.Time `json:"validity_start,omitempty"`
	// ValidityEnd holds the value of the "validity_end" field.
	ValidityEnd *time.Time `json:"validity_end,omitempty"`
	// Status holds the value of the "status" field.
	Status fact.Status `json:"status,omitempty"`
	// VerifiedAt holds the value of the "verified_at" field.
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
	// VerificationEvidence holds the value of the "verification_evidence" field.
	VerificationEvidence *string `json:"verification_evidence,omitempty"`
	// VerifiedSourceOrg holds the value of the "verified_source_org" field.
	VerifiedSourceOrg *string `json:"verified_source_org,omitempty"`
	// VerifiedSourceURL holds the value of the "verified_source_url" field.
	VerifiedSourceURL *string `json:"verified_source_url,omitempty"`
	// Authoritative links, verbatim JSON
	VerifiedSourceData *string `json:"verified_source_data,omitempty"`
	// RawPostID holds the value of the "raw_post_id" field.
	RawPostID *int `json:"raw_post_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FactQuery when eager-loading is set.
	Edges        FactEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FactEdges holds the relations/edges for other nodes in the graph.
type FactEdges struct {
	// RawPost holds the value of the raw_post edge.
	RawPost *RawPost `json:"raw_post,omitempty"`
	// References holds the value of the references edge.
	References []*VerificationReference `json:"references,omitempty"`
	// Evaluations holds the value of the evaluations edge.
	Evaluations []*FactEvaluation `json:"evaluations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// RawPostOrErr returns the RawPost value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FactEdges) RawPostOrErr() (*RawPost, error) {
	if e.RawPost != nil {
		return e.RawPost, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: rawpost.Label}
	}
	return nil, &NotLoadedError{edge: "raw_post"}
}

// ReferencesOrErr returns the References value or an error if the edge
// was not loaded in eager-loading.
func (e FactEdges) ReferencesOrErr() ([]*VerificationReference, error) {
	if e.loadedTypes[1] {
		return e.References, nil
	}
	return nil, &NotLoadedError{edge: "references"}
}

// EvaluationsOrErr returns the Evaluations value or an error if the edge
// was not loaded in eager-loading.
func (e FactEdges) EvaluationsOrErr() ([]*FactEvaluation, error) {
	if e.loadedTypes[2] {
		return e.Evaluations, nil
	}
	return nil, &NotLoadedError{edge: "evaluations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Fact) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case fact.FieldIsVerifiable:
			values[i] = new(sql.NullBool)
		case fact.FieldID, fact.FieldRawPostID:
			values[i] = new(sql.NullInt64)
		case fact.FieldClaim, fact.FieldCanonicalClaim, fact.FieldVerifiableExpression, fact.FieldVerificationMethod, fact.FieldValidityStartNote, fact.FieldValidityEndNote, fact.FieldStatus, fact.FieldVerificationEvidence, fact.FieldVerifiedSourceOrg, fact.FieldVerifiedSourceURL, fact.FieldVerifiedSourceData:
			values[i] = new(sql.NullString)
		case fact.FieldValidityStart, fact.FieldValidityEnd, fact.FieldVerifiedAt, fact.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Fact fields.
func (_m *Fact) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case fact.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case fact.FieldClaim:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field claim", values[i])
			} else if value.Valid {
				_m.Claim = value.String
			}
		case fact.FieldCanonicalClaim:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field canonical_claim", values[i])
			} else if value.Valid {
				_m.CanonicalClaim = new(string)
				*_m.CanonicalClaim = value.String
			}
		case fact.FieldVerifiableExpression:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verifiable_expression", values[i])
			} else if value.Valid {
				_m.VerifiableExpression = new(string)
				*_m.VerifiableExpression = value.String
			}
		case fact.FieldIsVerifiable:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_verifiable", values[i])
			} else if value.Valid {
				_m.IsVerifiable = value.Bool
			}
		case fact.FieldVerificationMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verification_method", values[i])
			} else if value.Valid {
				_m.VerificationMethod = new(string)
				*_m.VerificationMethod = value.String
			}
		case fact.FieldValidityStartNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field validity_start_note", values[i])
			} else if value.Valid {
				_m.ValidityStartNote = new(string)
				*_m.ValidityStartNote = value.String
			}
		case fact.FieldValidityEndNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field validity_end_note", values[i])
			} else if value.Valid {
				_m.ValidityEndNote = new(string)
				*_m.ValidityEndNote = value.String
			}
		case fact.FieldValidityStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field validity_start", values[i])
			} else if value.Valid {
				_m.ValidityStart = new(time.Time)
				*_m.ValidityStart = value.Time
			}
		case fact.FieldValidityEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field validity_end", values[i])
			} else if value.Valid {
				_m.ValidityEnd = new(time.Time)
				*_m.ValidityEnd = value.Time
			}
		case fact.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = fact.Status(value.String)
			}
		case fact.FieldVerifiedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field verified_at", values[i])
			} else if value.Valid {
				_m.VerifiedAt = new(time.Time)
				*_m.VerifiedAt = value.Time
			}
		case fact.FieldVerificationEvidence:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verification_evidence", values[i])
			} else if value.Valid {
				_m.VerificationEvidence = new(string)
				*_m.VerificationEvidence = value.String
			}
		case fact.FieldVerifiedSourceOrg:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verified_source_org", values[i])
			} else if value.Valid {
				_m.VerifiedSourceOrg = new(string)
				*_m.VerifiedSourceOrg = value.String
			}
		case fact.FieldVerifiedSourceURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verified_source_url", values[i])
			} else if value.Valid {
				_m.VerifiedSourceURL = new(string)
				*_m.VerifiedSourceURL = value.String
			}
		case fact.FieldVerifiedSourceData:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field verified_source_data", values[i])
			} else if value.Valid {
				_m.VerifiedSourceData = new(string)
				*_m.VerifiedSourceData = value.String
			}
		case fact.FieldRawPostID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field raw_post_id", values[i])
			} else if value.Valid {
				_m.RawPostID = new(int)
				*_m.RawPostID = int(value.Int64)
			}
		case fact.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Fact.
// This includes values selected through modifiers, order, etc.
func (_m *Fact) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRawPost queries the "raw_post" edge of the Fact entity.
func (_m *Fact) QueryRawPost() *RawPostQuery {
	return NewFactClient(_m.config).QueryRawPost(_m)
}

// QueryReferences queries the "references" edge of the Fact entity.
func (_m *Fact) QueryReferences() *VerificationReferenceQuery {
	return NewFactClient(_m.config).QueryReferences(_m)
}

// QueryEvaluations queries the "evaluations" edge of the Fact entity.
func (_m *Fact) QueryEvaluations() *FactEvaluationQuery {
	return NewFactClient(_m.config).QueryEvaluations(_m)
}

// Update returns a builder for updating this Fact.
// Note that you need to call Fact.Unwrap() before calling this method if this Fact
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Fact) Update() *FactUpdateOne {
	return NewFactClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Fact entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Fact) Unwrap() *Fact {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Fact is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Fact) String() string {
	var builder strings.Builder
	builder.WriteString("Fact(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("claim=")
	builder.WriteString(_m.Claim)
	builder.WriteString(", ")
	if v := _m.CanonicalClaim; v != nil {
		builder.WriteString("canonical_claim=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.VerifiableExpression; v != nil {
		builder.WriteString("verifiable_expression=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_verifiable=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsVerifiable))
	builder.WriteString(", ")
	if v := _m.VerificationMethod; v != nil {
		builder.WriteString("verification_method=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ValidityStartNote; v != nil {
		builder.WriteString("validity_start_note=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ValidityEndNote; v != nil {
		builder.WriteString("validity_end_note=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ValidityStart; v != nil {
		builder.WriteString("validity_start=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ValidityEnd; v != nil {
		builder.WriteString("validity_end=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.VerifiedAt; v != nil {
		builder.WriteString("verified_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.VerificationEvidence; v != nil {
		builder.WriteString("verification_evidence=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.VerifiedSourceOrg; v != nil {
		builder.WriteString("verified_source_org=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.VerifiedSourceURL; v != nil {
		builder.WriteString("verified_source_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.VerifiedSourceData; v != nil {
		builder.WriteString("verified_source_data=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RawPostID; v != nil {
		builder.WriteString("raw_post_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Facts is a parsable slice of Fact.
type Facts []*Fact

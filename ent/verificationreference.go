// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/credlens/pundit/ent/fact"
	"github.com/credlens/pundit/ent/verificationreference"
)

// VerificationReference is the model entity for the VerificationReference schema.
type VerificationReference struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// FactID holds the value of the "fact_id" field.
	FactID int `json:"fact_id,omitempty"`
	// Full name of a recognized authority
	Organization string `json:"organization,omitempty"`
	// The specific dataset or report to consult
	DataDescription string `json:"data_description,omitempty"`
	// URL holds the value of the "url" field.
	URL *string `json:"url,omitempty"`
	// URLNote holds the value of the "url_note" field.
	URLNote *string `json:"url_note,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the VerificationReferenceQuery when eager-loading is set.
	Edges        VerificationReferenceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// VerificationReferenceEdges holds the relations/edges for other nodes in the graph.
type VerificationReferenceEdges struct {
	// Fact holds the value of the fact edge.
	Fact *Fact `json:"fact,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FactOrErr returns the Fact value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e VerificationReferenceEdges) FactOrErr() (*Fact, error) {
	if e.Fact != nil {
		return e.Fact, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: fact.Label}
	}
	return nil, &NotLoadedError{edge: "fact"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*VerificationReference) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case verificationreference.FieldID, verificationreference.FieldFactID:
			values[i] = new(sql.NullInt64)
		case verificationreference.FieldOrganization, verificationreference.FieldDataDescription, verificationreference.FieldURL, verificationreference.FieldURLNote:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the VerificationReference fields.
func (_m *VerificationReference) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case verificationreference.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case verificationreference.FieldFactID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field fact_id", values[i])
			} else if value.Valid {
				_m.FactID = int(value.Int64)
			}
		case verificationreference.FieldOrganization:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field organization", values[i])
			} else if value.Valid {
				_m.Organization = value.String
			}
		case verificationreference.FieldDataDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field data_description", values[i])
			} else if value.Valid {
				_m.DataDescription = value.String
			}
		case verificationreference.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = new(string)
				*_m.URL = value.String
			}
		case verificationreference.FieldURLNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url_note", values[i])
			} else if value.Valid {
				_m.URLNote = new(string)
				*_m.URLNote = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the VerificationReference.
// This includes values selected through modifiers, order, etc.
func (_m *VerificationReference) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFact queries the "fact" edge of the VerificationReference entity.
func (_m *VerificationReference) QueryFact() *FactQuery {
	return NewVerificationReferenceClient(_m.config).QueryFact(_m)
}

// Update returns a builder for updating this VerificationReference.
// Note that you need to call VerificationReference.Unwrap() before calling this method if this VerificationReference
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *VerificationReference) Update() *VerificationReferenceUpdateOne {
	return NewVerificationReferenceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the VerificationReference entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *VerificationReference) Unwrap() *VerificationReference {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: VerificationReference is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *VerificationReference) String() string {
	var builder strings.Builder
	builder.WriteString("VerificationReference(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("fact_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FactID))
	builder.WriteString(", ")
	builder.WriteString("organization=")
	builder.WriteString(_m.Organization)
	builder.WriteString(", ")
	builder.WriteString("data_description=")
	builder.WriteString(_m.DataDescription)
	builder.WriteString(", ")
	if v := _m.URL; v != nil {
		builder.WriteString("url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.URLNote; v != nil {
		builder.WriteString("url_note=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// VerificationReferences is a parsable slice of VerificationReference.
type VerificationReferences []*VerificationReference

// Code generated by ent, DO NOT EDIT.

package conclusionverdict

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/credlens/pundit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldLTE(FieldID, id))
}

// ConclusionID applies equality check predicate on the "conclusion_id" field. It's identical to ConclusionIDEQ.
func ConclusionID(v int) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldEQ(FieldConclusionID, v))
}

// RoleFitNote applies equality check predicate on the "role_fit_note" field. It's identical to RoleFitNoteEQ.
func RoleFitNote(v string) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldEQ(FieldRoleFitNote, v))
}

// DerivedAt applies equality check predicate on the "derived_at" field. It's identical to DerivedAtEQ.
func DerivedAt(v time.Time) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldEQ(FieldDerivedAt, v))
}

// ConclusionIDEQ applies the EQ predicate on the "conclusion_id" field.
func ConclusionIDEQ(v int) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldEQ(FieldConclusionID, v))
}

// ConclusionIDNEQ applies the NEQ predicate on the "conclusion_id" field.
func ConclusionIDNEQ(v int) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldNEQ(FieldConclusionID, v))
}

// ConclusionIDIn applies the In predicate on the "conclusion_id" field.
func ConclusionIDIn(vs ...int) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldIn(FieldConclusionID, vs...))
}

// ConclusionIDNotIn applies the NotIn predicate on the "conclusion_id" field.
func ConclusionIDNotIn(vs ...int) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldNotIn(FieldConclusionID, vs...))
}

// VerdictEQ applies the EQ predicate on the "verdict" field.
func VerdictEQ(v Verdict) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldEQ(FieldVerdict, v))
}

// VerdictNEQ applies the NEQ predicate on the "verdict" field.
func VerdictNEQ(v Verdict) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldNEQ(FieldVerdict, v))
}

// VerdictIn applies the In predicate on the "verdict" field.
func VerdictIn(vs ...Verdict) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldIn(FieldVerdict, vs...))
}

// VerdictNotIn applies the NotIn predicate on the "verdict" field.
func VerdictNotIn(vs ...Verdict) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldNotIn(FieldVerdict, vs...))
}

// LogicTraceIsNil applies the IsNil predicate on the "logic_trace" field.
func LogicTraceIsNil() predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldIsNull(FieldLogicTrace))
}

// LogicTraceNotNil applies the NotNil predicate on the "logic_trace" field.
func LogicTraceNotNil() predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldNotNull(FieldLogicTrace))
}

// RoleFitEQ applies the EQ predicate on the "role_fit" field.
func RoleFitEQ(v RoleFit) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldEQ(FieldRoleFit, v))
}

// RoleFitNEQ applies the NEQ predicate on the "role_fit" field.
func RoleFitNEQ(v RoleFit) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldNEQ(FieldRoleFit, v))
}

// RoleFitIn applies the In predicate on the "role_fit" field.
func RoleFitIn(vs ...RoleFit) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldIn(FieldRoleFit, vs...))
}

// RoleFitNotIn applies the NotIn predicate on the "role_fit" field.
func RoleFitNotIn(vs ...RoleFit) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldNotIn(FieldRoleFit, vs...))
}

// RoleFitIsNil applies the IsNil predicate on the "role_fit" field.
func RoleFitIsNil() predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldIsNull(FieldRoleFit))
}

// RoleFitNotNil applies the NotNil predicate on the "role_fit" field.
func RoleFitNotNil() predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldNotNull(FieldRoleFit))
}

// RoleFitNoteEQ applies the EQ predicate on the "role_fit_note" field.
func RoleFitNoteEQ(v string) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldEQ(FieldRoleFitNote, v))
}

// RoleFitNoteNEQ applies the NEQ predicate on the "role_fit_note" field.
func RoleFitNoteNEQ(v string) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldNEQ(FieldRoleFitNote, v))
}

// RoleFitNoteIn applies the In predicate on the "role_fit_note" field.
func RoleFitNoteIn(vs ...string) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldIn(FieldRoleFitNote, vs...))
}

// RoleFitNoteNotIn applies the NotIn predicate on the "role_fit_note" field.
func RoleFitNoteNotIn(vs ...string) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldNotIn(FieldRoleFitNote, vs...))
}

// RoleFitNoteGT applies the GT predicate on the "role_fit_note" field.
func RoleFitNoteGT(v string) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldGT(FieldRoleFitNote, v))
}

// RoleFitNoteGTE applies the GTE predicate on the "role_fit_note" field.
func RoleFitNoteGTE(v string) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldGTE(FieldRoleFitNote, v))
}

// RoleFitNoteLT applies the LT predicate on the "role_fit_note" field.
func RoleFitNoteLT(v string) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldLT(FieldRoleFitNote, v))
}

// RoleFitNoteLTE applies the LTE predicate on the "role_fit_note" field.
func RoleFitNoteLTE(v string) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldLTE(FieldRoleFitNote, v))
}

// RoleFitNoteContains applies the Contains predicate on the "role_fit_note" field.
func RoleFitNoteContains(v string) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldContains(FieldRoleFitNote, v))
}

// RoleFitNoteHasPrefix applies the HasPrefix predicate on the "role_fit_note" field.
func RoleFitNoteHasPrefix(v string) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldHasPrefix(FieldRoleFitNote, v))
}

// RoleFitNoteHasSuffix applies the HasSuffix predicate on the "role_fit_note" field.
func RoleFitNoteHasSuffix(v string) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldHasSuffix(FieldRoleFitNote, v))
}

// RoleFitNoteIsNil applies the IsNil predicate on the "role_fit_note" field.
func RoleFitNoteIsNil() predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldIsNull(FieldRoleFitNote))
}

// RoleFitNoteNotNil applies the NotNil predicate on the "role_fit_note" field.
func RoleFitNoteNotNil() predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldNotNull(FieldRoleFitNote))
}

// RoleFitNoteEqualFold applies the EqualFold predicate on the "role_fit_note" field.
func RoleFitNoteEqualFold(v string) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldEqualFold(FieldRoleFitNote, v))
}

// RoleFitNoteContainsFold applies the ContainsFold predicate on the "role_fit_note" field.
func RoleFitNoteContainsFold(v string) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldContainsFold(FieldRoleFitNote, v))
}

// DerivedAtEQ applies the EQ predicate on the "derived_at" field.
func DerivedAtEQ(v time.Time) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldEQ(FieldDerivedAt, v))
}

// DerivedAtNEQ applies the NEQ predicate on the "derived_at" field.
func DerivedAtNEQ(v time.Time) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldNEQ(FieldDerivedAt, v))
}

// DerivedAtIn applies the In predicate on the "derived_at" field.
func DerivedAtIn(vs ...time.Time) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldIn(FieldDerivedAt, vs...))
}

// DerivedAtNotIn applies the NotIn predicate on the "derived_at" field.
func DerivedAtNotIn(vs ...time.Time) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldNotIn(FieldDerivedAt, vs...))
}

// DerivedAtGT applies the GT predicate on the "derived_at" field.
func DerivedAtGT(v time.Time) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldGT(FieldDerivedAt, v))
}

// DerivedAtGTE applies the GTE predicate on the "derived_at" field.
func DerivedAtGTE(v time.Time) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldGTE(FieldDerivedAt, v))
}

// DerivedAtLT applies the LT predicate on the "derived_at" field.
func DerivedAtLT(v time.Time) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldLT(FieldDerivedAt, v))
}

// DerivedAtLTE applies the LTE predicate on the "derived_at" field.
func DerivedAtLTE(v time.Time) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.FieldLTE(FieldDerivedAt, v))
}

// HasConclusion applies the HasEdge predicate on the "conclusion" edge.
func HasConclusion() predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ConclusionTable, ConclusionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConclusionWith applies the HasEdge predicate on the "conclusion" edge with a given conditions (other predicates).
func HasConclusionWith(preds ...predicate.Conclusion) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(func(s *sql.Selector) {
		step := newConclusionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConclusionVerdict) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConclusionVerdict) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConclusionVerdict) predicate.ConclusionVerdict {
	return predicate.ConclusionVerdict(sql.NotPredicates(p))
}

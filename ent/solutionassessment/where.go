// Code generated by ent, DO NOT EDIT.

package solutionassessment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/credlens/pundit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldLTE(FieldID, id))
}

// SolutionID applies equality check predicate on the "solution_id" field. It's identical to SolutionIDEQ.
func SolutionID(v int) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldEQ(FieldSolutionID, v))
}

// EvidenceText applies equality check predicate on the "evidence_text" field. It's identical to EvidenceTextEQ.
func EvidenceText(v string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldEQ(FieldEvidenceText, v))
}

// EvidenceTier applies equality check predicate on the "evidence_tier" field. It's identical to EvidenceTierEQ.
func EvidenceTier(v int) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldEQ(FieldEvidenceTier, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldEQ(FieldNotes, v))
}

// RoleFitNote applies equality check predicate on the "role_fit_note" field. It's identical to RoleFitNoteEQ.
func RoleFitNote(v string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldEQ(FieldRoleFitNote, v))
}

// AssessedAt applies equality check predicate on the "assessed_at" field. It's identical to AssessedAtEQ.
func AssessedAt(v time.Time) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldEQ(FieldAssessedAt, v))
}

// SolutionIDEQ applies the EQ predicate on the "solution_id" field.
func SolutionIDEQ(v int) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldEQ(FieldSolutionID, v))
}

// SolutionIDNEQ applies the NEQ predicate on the "solution_id" field.
func SolutionIDNEQ(v int) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldNEQ(FieldSolutionID, v))
}

// SolutionIDIn applies the In predicate on the "solution_id" field.
func SolutionIDIn(vs ...int) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldIn(FieldSolutionID, vs...))
}

// SolutionIDNotIn applies the NotIn predicate on the "solution_id" field.
func SolutionIDNotIn(vs ...int) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldNotIn(FieldSolutionID, vs...))
}

// VerdictEQ applies the EQ predicate on the "verdict" field.
func VerdictEQ(v Verdict) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldEQ(FieldVerdict, v))
}

// VerdictNEQ applies the NEQ predicate on the "verdict" field.
func VerdictNEQ(v Verdict) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldNEQ(FieldVerdict, v))
}

// VerdictIn applies the In predicate on the "verdict" field.
func VerdictIn(vs ...Verdict) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldIn(FieldVerdict, vs...))
}

// VerdictNotIn applies the NotIn predicate on the "verdict" field.
func VerdictNotIn(vs ...Verdict) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldNotIn(FieldVerdict, vs...))
}

// EvidenceTextEQ applies the EQ predicate on the "evidence_text" field.
func EvidenceTextEQ(v string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldEQ(FieldEvidenceText, v))
}

// EvidenceTextNEQ applies the NEQ predicate on the "evidence_text" field.
func EvidenceTextNEQ(v string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldNEQ(FieldEvidenceText, v))
}

// EvidenceTextIn applies the In predicate on the "evidence_text" field.
func EvidenceTextIn(vs ...string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldIn(FieldEvidenceText, vs...))
}

// EvidenceTextNotIn applies the NotIn predicate on the "evidence_text" field.
func EvidenceTextNotIn(vs ...string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldNotIn(FieldEvidenceText, vs...))
}

// EvidenceTextGT applies the GT predicate on the "evidence_text" field.
func EvidenceTextGT(v string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldGT(FieldEvidenceText, v))
}

// EvidenceTextGTE applies the GTE predicate on the "evidence_text" field.
func EvidenceTextGTE(v string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldGTE(FieldEvidenceText, v))
}

// EvidenceTextLT applies the LT predicate on the "evidence_text" field.
func EvidenceTextLT(v string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldLT(FieldEvidenceText, v))
}

// EvidenceTextLTE applies the LTE predicate on the "evidence_text" field.
func EvidenceTextLTE(v string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldLTE(FieldEvidenceText, v))
}

// EvidenceTextContains applies the Contains predicate on the "evidence_text" field.
func EvidenceTextContains(v string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldContains(FieldEvidenceText, v))
}

// EvidenceTextHasPrefix applies the HasPrefix predicate on the "evidence_text" field.
func EvidenceTextHasPrefix(v string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldHasPrefix(FieldEvidenceText, v))
}

// EvidenceTextHasSuffix applies the HasSuffix predicate on the "evidence_text" field.
func EvidenceTextHasSuffix(v string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldHasSuffix(FieldEvidenceText, v))
}

// EvidenceTextIsNil applies the IsNil predicate on the "evidence_text" field.
func EvidenceTextIsNil() predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldIsNull(FieldEvidenceText))
}

// EvidenceTextNotNil applies the NotNil predicate on the "evidence_text" field.
func EvidenceTextNotNil() predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldNotNull(FieldEvidenceText))
}

// EvidenceTextEqualFold applies the EqualFold predicate on the "evidence_text" field.
func EvidenceTextEqualFold(v string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldEqualFold(FieldEvidenceText, v))
}

// EvidenceTextContainsFold applies the ContainsFold predicate on the "evidence_text" field.
func EvidenceTextContainsFold(v string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldContainsFold(FieldEvidenceText, v))
}

// EvidenceTierEQ applies the EQ predicate on the "evidence_tier" field.
func EvidenceTierEQ(v int) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldEQ(FieldEvidenceTier, v))
}

// EvidenceTierNEQ applies the NEQ predicate on the "evidence_tier" field.
func EvidenceTierNEQ(v int) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldNEQ(FieldEvidenceTier, v))
}

// EvidenceTierIn applies the In predicate on the "evidence_tier" field.
func EvidenceTierIn(vs ...int) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldIn(FieldEvidenceTier, vs...))
}

// EvidenceTierNotIn applies the NotIn predicate on the "evidence_tier" field.
func EvidenceTierNotIn(vs ...int) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldNotIn(FieldEvidenceTier, vs...))
}

// EvidenceTierGT applies the GT predicate on the "evidence_tier" field.
func EvidenceTierGT(v int) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldGT(FieldEvidenceTier, v))
}

// EvidenceTierGTE applies the GTE predicate on the "evidence_tier" field.
func EvidenceTierGTE(v int) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldGTE(FieldEvidenceTier, v))
}

// EvidenceTierLT applies the LT predicate on the "evidence_tier" field.
func EvidenceTierLT(v int) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldLT(FieldEvidenceTier, v))
}

// EvidenceTierLTE applies the LTE predicate on the "evidence_tier" field.
func EvidenceTierLTE(v int) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldLTE(FieldEvidenceTier, v))
}

// EvidenceTierIsNil applies the IsNil predicate on the "evidence_tier" field.
func EvidenceTierIsNil() predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldIsNull(FieldEvidenceTier))
}

// EvidenceTierNotNil applies the NotNil predicate on the "evidence_tier" field.
func EvidenceTierNotNil() predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldNotNull(FieldEvidenceTier))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldContainsFold(FieldNotes, v))
}

// RoleFitEQ applies the EQ predicate on the "role_fit" field.
func RoleFitEQ(v RoleFit) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldEQ(FieldRoleFit, v))
}

// RoleFitNEQ applies the NEQ predicate on the "role_fit" field.
func RoleFitNEQ(v RoleFit) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldNEQ(FieldRoleFit, v))
}

// RoleFitIn applies the In predicate on the "role_fit" field.
func RoleFitIn(vs ...RoleFit) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldIn(FieldRoleFit, vs...))
}

// RoleFitNotIn applies the NotIn predicate on the "role_fit" field.
func RoleFitNotIn(vs ...RoleFit) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldNotIn(FieldRoleFit, vs...))
}

// RoleFitIsNil applies the IsNil predicate on the "role_fit" field.
func RoleFitIsNil() predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldIsNull(FieldRoleFit))
}

// RoleFitNotNil applies the NotNil predicate on the "role_fit" field.
func RoleFitNotNil() predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldNotNull(FieldRoleFit))
}

// RoleFitNoteEQ applies the EQ predicate on the "role_fit_note" field.
func RoleFitNoteEQ(v string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldEQ(FieldRoleFitNote, v))
}

// RoleFitNoteNEQ applies the NEQ predicate on the "role_fit_note" field.
func RoleFitNoteNEQ(v string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldNEQ(FieldRoleFitNote, v))
}

// RoleFitNoteIn applies the In predicate on the "role_fit_note" field.
func RoleFitNoteIn(vs ...string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldIn(FieldRoleFitNote, vs...))
}

// RoleFitNoteNotIn applies the NotIn predicate on the "role_fit_note" field.
func RoleFitNoteNotIn(vs ...string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldNotIn(FieldRoleFitNote, vs...))
}

// RoleFitNoteGT applies the GT predicate on the "role_fit_note" field.
func RoleFitNoteGT(v string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldGT(FieldRoleFitNote, v))
}

// RoleFitNoteGTE applies the GTE predicate on the "role_fit_note" field.
func RoleFitNoteGTE(v string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldGTE(FieldRoleFitNote, v))
}

// RoleFitNoteLT applies the LT predicate on the "role_fit_note" field.
func RoleFitNoteLT(v string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldLT(FieldRoleFitNote, v))
}

// RoleFitNoteLTE applies the LTE predicate on the "role_fit_note" field.
func RoleFitNoteLTE(v string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldLTE(FieldRoleFitNote, v))
}

// RoleFitNoteContains applies the Contains predicate on the "role_fit_note" field.
func RoleFitNoteContains(v string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldContains(FieldRoleFitNote, v))
}

// RoleFitNoteHasPrefix applies the HasPrefix predicate on the "role_fit_note" field.
func RoleFitNoteHasPrefix(v string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldHasPrefix(FieldRoleFitNote, v))
}

// RoleFitNoteHasSuffix applies the HasSuffix predicate on the "role_fit_note" field.
func RoleFitNoteHasSuffix(v string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldHasSuffix(FieldRoleFitNote, v))
}

// RoleFitNoteIsNil applies the IsNil predicate on the "role_fit_note" field.
func RoleFitNoteIsNil() predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldIsNull(FieldRoleFitNote))
}

// RoleFitNoteNotNil applies the NotNil predicate on the "role_fit_note" field.
func RoleFitNoteNotNil() predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldNotNull(FieldRoleFitNote))
}

// RoleFitNoteEqualFold applies the EqualFold predicate on the "role_fit_note" field.
func RoleFitNoteEqualFold(v string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldEqualFold(FieldRoleFitNote, v))
}

// RoleFitNoteContainsFold applies the ContainsFold predicate on the "role_fit_note" field.
func RoleFitNoteContainsFold(v string) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldContainsFold(FieldRoleFitNote, v))
}

// AssessedAtEQ applies the EQ predicate on the "assessed_at" field.
func AssessedAtEQ(v time.Time) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldEQ(FieldAssessedAt, v))
}

// AssessedAtNEQ applies the NEQ predicate on the "assessed_at" field.
func AssessedAtNEQ(v time.Time) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldNEQ(FieldAssessedAt, v))
}

// AssessedAtIn applies the In predicate on the "assessed_at" field.
func AssessedAtIn(vs ...time.Time) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldIn(FieldAssessedAt, vs...))
}

// AssessedAtNotIn applies the NotIn predicate on the "assessed_at" field.
func AssessedAtNotIn(vs ...time.Time) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldNotIn(FieldAssessedAt, vs...))
}

// AssessedAtGT applies the GT predicate on the "assessed_at" field.
func AssessedAtGT(v time.Time) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldGT(FieldAssessedAt, v))
}

// AssessedAtGTE applies the GTE predicate on the "assessed_at" field.
func AssessedAtGTE(v time.Time) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldGTE(FieldAssessedAt, v))
}

// AssessedAtLT applies the LT predicate on the "assessed_at" field.
func AssessedAtLT(v time.Time) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldLT(FieldAssessedAt, v))
}

// AssessedAtLTE applies the LTE predicate on the "assessed_at" field.
func AssessedAtLTE(v time.Time) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.FieldLTE(FieldAssessedAt, v))
}

// HasSolution applies the HasEdge predicate on the "solution" edge.
func HasSolution() predicate.SolutionAssessment {
	return predicate.SolutionAssessment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SolutionTable, SolutionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSolutionWith applies the HasEdge predicate on the "solution" edge with a given conditions (other predicates).
func HasSolutionWith(preds ...predicate.Solution) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(func(s *sql.Selector) {
		step := newSolutionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SolutionAssessment) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SolutionAssessment) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SolutionAssessment) predicate.SolutionAssessment {
	return predicate.SolutionAssessment(sql.NotPredicates(p))
}

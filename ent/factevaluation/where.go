// Code generated by ent, DO NOT EDIT.

package factevaluation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/credlens/pundit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldLTE(FieldID, id))
}

// FactID applies equality check predicate on the "fact_id" field. It's identical to FactIDEQ.
func FactID(v int) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldEQ(FieldFactID, v))
}

// EvidenceText applies equality check predicate on the "evidence_text" field. It's identical to EvidenceTextEQ.
func EvidenceText(v string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldEQ(FieldEvidenceText, v))
}

// EvidenceTier applies equality check predicate on the "evidence_tier" field. It's identical to EvidenceTierEQ.
func EvidenceTier(v int) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldEQ(FieldEvidenceTier, v))
}

// DataPeriod applies equality check predicate on the "data_period" field. It's identical to DataPeriodEQ.
func DataPeriod(v string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldEQ(FieldDataPeriod, v))
}

// EvaluatorNotes applies equality check predicate on the "evaluator_notes" field. It's identical to EvaluatorNotesEQ.
func EvaluatorNotes(v string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldEQ(FieldEvaluatorNotes, v))
}

// EvaluatedAt applies equality check predicate on the "evaluated_at" field. It's identical to EvaluatedAtEQ.
func EvaluatedAt(v time.Time) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldEQ(FieldEvaluatedAt, v))
}

// FactIDEQ applies the EQ predicate on the "fact_id" field.
func FactIDEQ(v int) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldEQ(FieldFactID, v))
}

// FactIDNEQ applies the NEQ predicate on the "fact_id" field.
func FactIDNEQ(v int) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldNEQ(FieldFactID, v))
}

// FactIDIn applies the In predicate on the "fact_id" field.
func FactIDIn(vs ...int) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldIn(FieldFactID, vs...))
}

// FactIDNotIn applies the NotIn predicate on the "fact_id" field.
func FactIDNotIn(vs ...int) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldNotIn(FieldFactID, vs...))
}

// ResultEQ applies the EQ predicate on the "result" field.
func ResultEQ(v Result) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldEQ(FieldResult, v))
}

// ResultNEQ applies the NEQ predicate on the "result" field.
func ResultNEQ(v Result) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldNEQ(FieldResult, v))
}

// ResultIn applies the In predicate on the "result" field.
func ResultIn(vs ...Result) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldIn(FieldResult, vs...))
}

// ResultNotIn applies the NotIn predicate on the "result" field.
func ResultNotIn(vs ...Result) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldNotIn(FieldResult, vs...))
}

// EvidenceTextEQ applies the EQ predicate on the "evidence_text" field.
func EvidenceTextEQ(v string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldEQ(FieldEvidenceText, v))
}

// EvidenceTextNEQ applies the NEQ predicate on the "evidence_text" field.
func EvidenceTextNEQ(v string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldNEQ(FieldEvidenceText, v))
}

// EvidenceTextIn applies the In predicate on the "evidence_text" field.
func EvidenceTextIn(vs ...string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldIn(FieldEvidenceText, vs...))
}

// EvidenceTextNotIn applies the NotIn predicate on the "evidence_text" field.
func EvidenceTextNotIn(vs ...string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldNotIn(FieldEvidenceText, vs...))
}

// EvidenceTextGT applies the GT predicate on the "evidence_text" field.
func EvidenceTextGT(v string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldGT(FieldEvidenceText, v))
}

// EvidenceTextGTE applies the GTE predicate on the "evidence_text" field.
func EvidenceTextGTE(v string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldGTE(FieldEvidenceText, v))
}

// EvidenceTextLT applies the LT predicate on the "evidence_text" field.
func EvidenceTextLT(v string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldLT(FieldEvidenceText, v))
}

// EvidenceTextLTE applies the LTE predicate on the "evidence_text" field.
func EvidenceTextLTE(v string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldLTE(FieldEvidenceText, v))
}

// EvidenceTextContains applies the Contains predicate on the "evidence_text" field.
func EvidenceTextContains(v string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldContains(FieldEvidenceText, v))
}

// EvidenceTextHasPrefix applies the HasPrefix predicate on the "evidence_text" field.
func EvidenceTextHasPrefix(v string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldHasPrefix(FieldEvidenceText, v))
}

// EvidenceTextHasSuffix applies the HasSuffix predicate on the "evidence_text" field.
func EvidenceTextHasSuffix(v string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldHasSuffix(FieldEvidenceText, v))
}

// EvidenceTextIsNil applies the IsNil predicate on the "evidence_text" field.
func EvidenceTextIsNil() predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldIsNull(FieldEvidenceText))
}

// EvidenceTextNotNil applies the NotNil predicate on the "evidence_text" field.
func EvidenceTextNotNil() predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldNotNull(FieldEvidenceText))
}

// EvidenceTextEqualFold applies the EqualFold predicate on the "evidence_text" field.
func EvidenceTextEqualFold(v string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldEqualFold(FieldEvidenceText, v))
}

// EvidenceTextContainsFold applies the ContainsFold predicate on the "evidence_text" field.
func EvidenceTextContainsFold(v string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldContainsFold(FieldEvidenceText, v))
}

// EvidenceTierEQ applies the EQ predicate on the "evidence_tier" field.
func EvidenceTierEQ(v int) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldEQ(FieldEvidenceTier, v))
}

// EvidenceTierNEQ applies the NEQ predicate on the "evidence_tier" field.
func EvidenceTierNEQ(v int) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldNEQ(FieldEvidenceTier, v))
}

// EvidenceTierIn applies the In predicate on the "evidence_tier" field.
func EvidenceTierIn(vs ...int) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldIn(FieldEvidenceTier, vs...))
}

// EvidenceTierNotIn applies the NotIn predicate on the "evidence_tier" field.
func EvidenceTierNotIn(vs ...int) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldNotIn(FieldEvidenceTier, vs...))
}

// EvidenceTierGT applies the GT predicate on the "evidence_tier" field.
func EvidenceTierGT(v int) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldGT(FieldEvidenceTier, v))
}

// EvidenceTierGTE applies the GTE predicate on the "evidence_tier" field.
func EvidenceTierGTE(v int) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldGTE(FieldEvidenceTier, v))
}

// EvidenceTierLT applies the LT predicate on the "evidence_tier" field.
func EvidenceTierLT(v int) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldLT(FieldEvidenceTier, v))
}

// EvidenceTierLTE applies the LTE predicate on the "evidence_tier" field.
func EvidenceTierLTE(v int) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldLTE(FieldEvidenceTier, v))
}

// EvidenceTierIsNil applies the IsNil predicate on the "evidence_tier" field.
func EvidenceTierIsNil() predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldIsNull(FieldEvidenceTier))
}

// EvidenceTierNotNil applies the NotNil predicate on the "evidence_tier" field.
func EvidenceTierNotNil() predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldNotNull(FieldEvidenceTier))
}

// DataPeriodEQ applies the EQ predicate on the "data_period" field.
func DataPeriodEQ(v string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldEQ(FieldDataPeriod, v))
}

// DataPeriodNEQ applies the NEQ predicate on the "data_period" field.
func DataPeriodNEQ(v string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldNEQ(FieldDataPeriod, v))
}

// DataPeriodIn applies the In predicate on the "data_period" field.
func DataPeriodIn(vs ...string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldIn(FieldDataPeriod, vs...))
}

// DataPeriodNotIn applies the NotIn predicate on the "data_period" field.
func DataPeriodNotIn(vs ...string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldNotIn(FieldDataPeriod, vs...))
}

// DataPeriodGT applies the GT predicate on the "data_period" field.
func DataPeriodGT(v string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldGT(FieldDataPeriod, v))
}

// DataPeriodGTE applies the GTE predicate on the "data_period" field.
func DataPeriodGTE(v string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldGTE(FieldDataPeriod, v))
}

// DataPeriodLT applies the LT predicate on the "data_period" field.
func DataPeriodLT(v string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldLT(FieldDataPeriod, v))
}

// DataPeriodLTE applies the LTE predicate on the "data_period" field.
func DataPeriodLTE(v string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldLTE(FieldDataPeriod, v))
}

// DataPeriodContains applies the Contains predicate on the "data_period" field.
func DataPeriodContains(v string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldContains(FieldDataPeriod, v))
}

// DataPeriodHasPrefix applies the HasPrefix predicate on the "data_period" field.
func DataPeriodHasPrefix(v string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldHasPrefix(FieldDataPeriod, v))
}

// DataPeriodHasSuffix applies the HasSuffix predicate on the "data_period" field.
func DataPeriodHasSuffix(v string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldHasSuffix(FieldDataPeriod, v))
}

// DataPeriodIsNil applies the IsNil predicate on the "data_period" field.
func DataPeriodIsNil() predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldIsNull(FieldDataPeriod))
}

// DataPeriodNotNil applies the NotNil predicate on the "data_period" field.
func DataPeriodNotNil() predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldNotNull(FieldDataPeriod))
}

// DataPeriodEqualFold applies the EqualFold predicate on the "data_period" field.
func DataPeriodEqualFold(v string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldEqualFold(FieldDataPeriod, v))
}

// DataPeriodContainsFold applies the ContainsFold predicate on the "data_period" field.
func DataPeriodContainsFold(v string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldContainsFold(FieldDataPeriod, v))
}

// EvaluatorNotesEQ applies the EQ predicate on the "evaluator_notes" field.
func EvaluatorNotesEQ(v string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldEQ(FieldEvaluatorNotes, v))
}

// EvaluatorNotesNEQ applies the NEQ predicate on the "evaluator_notes" field.
func EvaluatorNotesNEQ(v string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldNEQ(FieldEvaluatorNotes, v))
}

// EvaluatorNotesIn applies the In predicate on the "evaluator_notes" field.
func EvaluatorNotesIn(vs ...string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldIn(FieldEvaluatorNotes, vs...))
}

// EvaluatorNotesNotIn applies the NotIn predicate on the "evaluator_notes" field.
func EvaluatorNotesNotIn(vs ...string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldNotIn(FieldEvaluatorNotes, vs...))
}

// EvaluatorNotesGT applies the GT predicate on the "evaluator_notes" field.
func EvaluatorNotesGT(v string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldGT(FieldEvaluatorNotes, v))
}

// EvaluatorNotesGTE applies the GTE predicate on the "evaluator_notes" field.
func EvaluatorNotesGTE(v string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldGTE(FieldEvaluatorNotes, v))
}

// EvaluatorNotesLT applies the LT predicate on the "evaluator_notes" field.
func EvaluatorNotesLT(v string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldLT(FieldEvaluatorNotes, v))
}

// EvaluatorNotesLTE applies the LTE predicate on the "evaluator_notes" field.
func EvaluatorNotesLTE(v string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldLTE(FieldEvaluatorNotes, v))
}

// EvaluatorNotesContains applies the Contains predicate on the "evaluator_notes" field.
func EvaluatorNotesContains(v string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldContains(FieldEvaluatorNotes, v))
}

// EvaluatorNotesHasPrefix applies the HasPrefix predicate on the "evaluator_notes" field.
func EvaluatorNotesHasPrefix(v string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldHasPrefix(FieldEvaluatorNotes, v))
}

// EvaluatorNotesHasSuffix applies the HasSuffix predicate on the "evaluator_notes" field.
func EvaluatorNotesHasSuffix(v string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldHasSuffix(FieldEvaluatorNotes, v))
}

// EvaluatorNotesIsNil applies the IsNil predicate on the "evaluator_notes" field.
func EvaluatorNotesIsNil() predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldIsNull(FieldEvaluatorNotes))
}

// EvaluatorNotesNotNil applies the NotNil predicate on the "evaluator_notes" field.
func EvaluatorNotesNotNil() predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldNotNull(FieldEvaluatorNotes))
}

// EvaluatorNotesEqualFold applies the EqualFold predicate on the "evaluator_notes" field.
func EvaluatorNotesEqualFold(v string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldEqualFold(FieldEvaluatorNotes, v))
}

// EvaluatorNotesContainsFold applies the ContainsFold predicate on the "evaluator_notes" field.
func EvaluatorNotesContainsFold(v string) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldContainsFold(FieldEvaluatorNotes, v))
}

// EvaluatedAtEQ applies the EQ predicate on the "evaluated_at" field.
func EvaluatedAtEQ(v time.Time) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldEQ(FieldEvaluatedAt, v))
}

// EvaluatedAtNEQ applies the NEQ predicate on the "evaluated_at" field.
func EvaluatedAtNEQ(v time.Time) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldNEQ(FieldEvaluatedAt, v))
}

// EvaluatedAtIn applies the In predicate on the "evaluated_at" field.
func EvaluatedAtIn(vs ...time.Time) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldIn(FieldEvaluatedAt, vs...))
}

// EvaluatedAtNotIn applies the NotIn predicate on the "evaluated_at" field.
func EvaluatedAtNotIn(vs ...time.Time) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldNotIn(FieldEvaluatedAt, vs...))
}

// EvaluatedAtGT applies the GT predicate on the "evaluated_at" field.
func EvaluatedAtGT(v time.Time) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldGT(FieldEvaluatedAt, v))
}

// EvaluatedAtGTE applies the GTE predicate on the "evaluated_at" field.
func EvaluatedAtGTE(v time.Time) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldGTE(FieldEvaluatedAt, v))
}

// EvaluatedAtLT applies the LT predicate on the "evaluated_at" field.
func EvaluatedAtLT(v time.Time) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldLT(FieldEvaluatedAt, v))
}

// EvaluatedAtLTE applies the LTE predicate on the "evaluated_at" field.
func EvaluatedAtLTE(v time.Time) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.FieldLTE(FieldEvaluatedAt, v))
}

// HasFact applies the HasEdge predicate on the "fact" edge.
func HasFact() predicate.FactEvaluation {
	return predicate.FactEvaluation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FactTable, FactColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFactWith applies the HasEdge predicate on the "fact" edge with a given conditions (other predicates).
func HasFactWith(preds ...predicate.Fact) predicate.FactEvaluation {
	return predicate.FactEvaluation(func(s *sql.Selector) {
		step := newFactStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FactEvaluation) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FactEvaluation) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FactEvaluation) predicate.FactEvaluation {
	return predicate.FactEvaluation(sql.NotPredicates(p))
}

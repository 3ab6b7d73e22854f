// Code generated by ent, DO NOT EDIT.

package logic

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/credlens/pundit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Logic {
	return predicate.Logic(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Logic {
	return predicate.Logic(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Logic {
	return predicate.Logic(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Logic {
	return predicate.Logic(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Logic {
	return predicate.Logic(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Logic {
	return predicate.Logic(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Logic {
	return predicate.Logic(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Logic {
	return predicate.Logic(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Logic {
	return predicate.Logic(sql.FieldLTE(FieldID, id))
}

// ConclusionID applies equality check predicate on the "conclusion_id" field. It's identical to ConclusionIDEQ.
func ConclusionID(v int) predicate.Logic {
	return predicate.Logic(sql.FieldEQ(FieldConclusionID, v))
}

// SolutionID applies equality check predicate on the "solution_id" field. It's identical to SolutionIDEQ.
func SolutionID(v int) predicate.Logic {
	return predicate.Logic(sql.FieldEQ(FieldSolutionID, v))
}

// RawPostID applies equality check predicate on the "raw_post_id" field. It's identical to RawPostIDEQ.
func RawPostID(v int) predicate.Logic {
	return predicate.Logic(sql.FieldEQ(FieldRawPostID, v))
}

// LogicNote applies equality check predicate on the "logic_note" field. It's identical to LogicNoteEQ.
func LogicNote(v string) predicate.Logic {
	return predicate.Logic(sql.FieldEQ(FieldLogicNote, v))
}

// OneSentenceSummary applies equality check predicate on the "one_sentence_summary" field. It's identical to OneSentenceSummaryEQ.
func OneSentenceSummary(v string) predicate.Logic {
	return predicate.Logic(sql.FieldEQ(FieldOneSentenceSummary, v))
}

// AssessedAt applies equality check predicate on the "assessed_at" field. It's identical to AssessedAtEQ.
func AssessedAt(v time.Time) predicate.Logic {
	return predicate.Logic(sql.FieldEQ(FieldAssessedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Logic {
	return predicate.Logic(sql.FieldEQ(FieldCreatedAt, v))
}

// LogicTypeEQ applies the EQ predicate on the "logic_type" field.
func LogicTypeEQ(v LogicType) predicate.Logic {
	return predicate.Logic(sql.FieldEQ(FieldLogicType, v))
}

// LogicTypeNEQ applies the NEQ predicate on the "logic_type" field.
func LogicTypeNEQ(v LogicType) predicate.Logic {
	return predicate.Logic(sql.FieldNEQ(FieldLogicType, v))
}

// LogicTypeIn applies the In predicate on the "logic_type" field.
func LogicTypeIn(vs ...LogicType) predicate.Logic {
	return predicate.Logic(sql.FieldIn(FieldLogicType, vs...))
}

// LogicTypeNotIn applies the NotIn predicate on the "logic_type" field.
func LogicTypeNotIn(vs ...LogicType) predicate.Logic {
	return predicate.Logic(sql.FieldNotIn(FieldLogicType, vs...))
}

// ConclusionIDEQ applies the EQ predicate on the "conclusion_id" field.
func ConclusionIDEQ(v int) predicate.Logic {
	return predicate.Logic(sql.FieldEQ(FieldConclusionID, v))
}

// ConclusionIDNEQ applies the NEQ predicate on the "conclusion_id" field.
func ConclusionIDNEQ(v int) predicate.Logic {
	return predicate.Logic(sql.FieldNEQ(FieldConclusionID, v))
}

// ConclusionIDIn applies the In predicate on the "conclusion_id" field.
func ConclusionIDIn(vs ...int) predicate.Logic {
	return predicate.Logic(sql.FieldIn(FieldConclusionID, vs...))
}

// ConclusionIDNotIn applies the NotIn predicate on the "conclusion_id" field.
func ConclusionIDNotIn(vs ...int) predicate.Logic {
	return predicate.Logic(sql.FieldNotIn(FieldConclusionID, vs...))
}

// ConclusionIDIsNil applies the IsNil predicate on the "conclusion_id" field.
func ConclusionIDIsNil() predicate.Logic {
	return predicate.Logic(sql.FieldIsNull(FieldConclusionID))
}

// ConclusionIDNotNil applies the NotNil predicate on the "conclusion_id" field.
func ConclusionIDNotNil() predicate.Logic {
	return predicate.Logic(sql.FieldNotNull(FieldConclusionID))
}

// SolutionIDEQ applies the EQ predicate on the "solution_id" field.
func SolutionIDEQ(v int) predicate.Logic {
	return predicate.Logic(sql.FieldEQ(FieldSolutionID, v))
}

// SolutionIDNEQ applies the NEQ predicate on the "solution_id" field.
func SolutionIDNEQ(v int) predicate.Logic {
	return predicate.Logic(sql.FieldNEQ(FieldSolutionID, v))
}

// SolutionIDIn applies the In predicate on the "solution_id" field.
func SolutionIDIn(vs ...int) predicate.Logic {
	return predicate.Logic(sql.FieldIn(FieldSolutionID, vs...))
}

// SolutionIDNotIn applies the NotIn predicate on the "solution_id" field.
func SolutionIDNotIn(vs ...int) predicate.Logic {
	return predicate.Logic(sql.FieldNotIn(FieldSolutionID, vs...))
}

// SolutionIDIsNil applies the IsNil predicate on the "solution_id" field.
func SolutionIDIsNil() predicate.Logic {
	return predicate.Logic(sql.FieldIsNull(FieldSolutionID))
}

// SolutionIDNotNil applies the NotNil predicate on the "solution_id" field.
func SolutionIDNotNil() predicate.Logic {
	return predicate.Logic(sql.FieldNotNull(FieldSolutionID))
}

// RawPostIDEQ applies the EQ predicate on the "raw_post_id" field.
func RawPostIDEQ(v int) predicate.Logic {
	return predicate.Logic(sql.FieldEQ(FieldRawPostID, v))
}

// RawPostIDNEQ applies the NEQ predicate on the "raw_post_id" field.
func RawPostIDNEQ(v int) predicate.Logic {
	return predicate.Logic(sql.FieldNEQ(FieldRawPostID, v))
}

// RawPostIDIn applies the In predicate on the "raw_post_id" field.
func RawPostIDIn(vs ...int) predicate.Logic {
	return predicate.Logic(sql.FieldIn(FieldRawPostID, vs...))
}

// RawPostIDNotIn applies the NotIn predicate on the "raw_post_id" field.
func RawPostIDNotIn(vs ...int) predicate.Logic {
	return predicate.Logic(sql.FieldNotIn(FieldRawPostID, vs...))
}

// RawPostIDIsNil applies the IsNil predicate on the "raw_post_id" field.
func RawPostIDIsNil() predicate.Logic {
	return predicate.Logic(sql.FieldIsNull(FieldRawPostID))
}

// RawPostIDNotNil applies the NotNil predicate on the "raw_post_id" field.
func RawPostIDNotNil() predicate.Logic {
	return predicate.Logic(sql.FieldNotNull(FieldRawPostID))
}

// SupportingFactIdsIsNil applies the IsNil predicate on the "supporting_fact_ids" field.
func SupportingFactIdsIsNil() predicate.Logic {
	return predicate.Logic(sql.FieldIsNull(FieldSupportingFactIds))
}

// SupportingFactIdsNotNil applies the NotNil predicate on the "supporting_fact_ids" field.
func SupportingFactIdsNotNil() predicate.Logic {
	return predicate.Logic(sql.FieldNotNull(FieldSupportingFactIds))
}

// AssumptionFactIdsIsNil applies the IsNil predicate on the "assumption_fact_ids" field.
func AssumptionFactIdsIsNil() predicate.Logic {
	return predicate.Logic(sql.FieldIsNull(FieldAssumptionFactIds))
}

// AssumptionFactIdsNotNil applies the NotNil predicate on the "assumption_fact_ids" field.
func AssumptionFactIdsNotNil() predicate.Logic {
	return predicate.Logic(sql.FieldNotNull(FieldAssumptionFactIds))
}

// SourceConclusionIdsIsNil applies the IsNil predicate on the "source_conclusion_ids" field.
func SourceConclusionIdsIsNil() predicate.Logic {
	return predicate.Logic(sql.FieldIsNull(FieldSourceConclusionIds))
}

// SourceConclusionIdsNotNil applies the NotNil predicate on the "source_conclusion_ids" field.
func SourceConclusionIdsNotNil() predicate.Logic {
	return predicate.Logic(sql.FieldNotNull(FieldSourceConclusionIds))
}

// LogicCompletenessEQ applies the EQ predicate on the "logic_completeness" field.
func LogicCompletenessEQ(v LogicCompleteness) predicate.Logic {
	return predicate.Logic(sql.FieldEQ(FieldLogicCompleteness, v))
}

// LogicCompletenessNEQ applies the NEQ predicate on the "logic_completeness" field.
func LogicCompletenessNEQ(v LogicCompleteness) predicate.Logic {
	return predicate.Logic(sql.FieldNEQ(FieldLogicCompleteness, v))
}

// LogicCompletenessIn applies the In predicate on the "logic_completeness" field.
func LogicCompletenessIn(vs ...LogicCompleteness) predicate.Logic {
	return predicate.Logic(sql.FieldIn(FieldLogicCompleteness, vs...))
}

// LogicCompletenessNotIn applies the NotIn predicate on the "logic_completeness" field.
func LogicCompletenessNotIn(vs ...LogicCompleteness) predicate.Logic {
	return predicate.Logic(sql.FieldNotIn(FieldLogicCompleteness, vs...))
}

// LogicCompletenessIsNil applies the IsNil predicate on the "logic_completeness" field.
func LogicCompletenessIsNil() predicate.Logic {
	return predicate.Logic(sql.FieldIsNull(FieldLogicCompleteness))
}

// LogicCompletenessNotNil applies the NotNil predicate on the "logic_completeness" field.
func LogicCompletenessNotNil() predicate.Logic {
	return predicate.Logic(sql.FieldNotNull(FieldLogicCompleteness))
}

// LogicNoteEQ applies the EQ predicate on the "logic_note" field.
func LogicNoteEQ(v string) predicate.Logic {
	return predicate.Logic(sql.FieldEQ(FieldLogicNote, v))
}

// LogicNoteNEQ applies the NEQ predicate on the "logic_note" field.
func LogicNoteNEQ(v string) predicate.Logic {
	return predicate.Logic(sql.FieldNEQ(FieldLogicNote, v))
}

// LogicNoteIn applies the In predicate on the "logic_note" field.
func LogicNoteIn(vs ...string) predicate.Logic {
	return predicate.Logic(sql.FieldIn(FieldLogicNote, vs...))
}

// LogicNoteNotIn applies the NotIn predicate on the "logic_note" field.
func LogicNoteNotIn(vs ...string) predicate.Logic {
	return predicate.Logic(sql.FieldNotIn(FieldLogicNote, vs...))
}

// LogicNoteGT applies the GT predicate on the "logic_note" field.
func LogicNoteGT(v string) predicate.Logic {
	return predicate.Logic(sql.FieldGT(FieldLogicNote, v))
}

// LogicNoteGTE applies the GTE predicate on the "logic_note" field.
func LogicNoteGTE(v string) predicate.Logic {
	return predicate.Logic(sql.FieldGTE(FieldLogicNote, v))
}

// LogicNoteLT applies the LT predicate on the "logic_note" field.
func LogicNoteLT(v string) predicate.Logic {
	return predicate.Logic(sql.FieldLT(FieldLogicNote, v))
}

// LogicNoteLTE applies the LTE predicate on the "logic_note" field.
func LogicNoteLTE(v string) predicate.Logic {
	return predicate.Logic(sql.FieldLTE(FieldLogicNote, v))
}

// LogicNoteContains applies the Contains predicate on the "logic_note" field.
func LogicNoteContains(v string) predicate.Logic {
	return predicate.Logic(sql.FieldContains(FieldLogicNote, v))
}

// LogicNoteHasPrefix applies the HasPrefix predicate on the "logic_note" field.
func LogicNoteHasPrefix(v string) predicate.Logic {
	return predicate.Logic(sql.FieldHasPrefix(FieldLogicNote, v))
}

// LogicNoteHasSuffix applies the HasSuffix predicate on the "logic_note" field.
func LogicNoteHasSuffix(v string) predicate.Logic {
	return predicate.Logic(sql.FieldHasSuffix(FieldLogicNote, v))
}

// LogicNoteIsNil applies the IsNil predicate on the "logic_note" field.
func LogicNoteIsNil() predicate.Logic {
	return predicate.Logic(sql.FieldIsNull(FieldLogicNote))
}

// LogicNoteNotNil applies the NotNil predicate on the "logic_note" field.
func LogicNoteNotNil() predicate.Logic {
	return predicate.Logic(sql.FieldNotNull(FieldLogicNote))
}

// LogicNoteEqualFold applies the EqualFold predicate on the "logic_note" field.
func LogicNoteEqualFold(v string) predicate.Logic {
	return predicate.Logic(sql.FieldEqualFold(FieldLogicNote, v))
}

// LogicNoteContainsFold applies the ContainsFold predicate on the "logic_note" field.
func LogicNoteContainsFold(v string) predicate.Logic {
	return predicate.Logic(sql.FieldContainsFold(FieldLogicNote, v))
}

// OneSentenceSummaryEQ applies the EQ predicate on the "one_sentence_summary" field.
func OneSentenceSummaryEQ(v string) predicate.Logic {
	return predicate.Logic(sql.FieldEQ(FieldOneSentenceSummary, v))
}

// OneSentenceSummaryNEQ applies the NEQ predicate on the "one_sentence_summary" field.
func OneSentenceSummaryNEQ(v string) predicate.Logic {
	return predicate.Logic(sql.FieldNEQ(FieldOneSentenceSummary, v))
}

// OneSentenceSummaryIn applies the In predicate on the "one_sentence_summary" field.
func OneSentenceSummaryIn(vs ...string) predicate.Logic {
	return predicate.Logic(sql.FieldIn(FieldOneSentenceSummary, vs...))
}

// OneSentenceSummaryNotIn applies the NotIn predicate on the "one_sentence_summary" field.
func OneSentenceSummaryNotIn(vs ...string) predicate.Logic {
	return predicate.Logic(sql.FieldNotIn(FieldOneSentenceSummary, vs...))
}

// OneSentenceSummaryGT applies the GT predicate on the "one_sentence_summary" field.
func OneSentenceSummaryGT(v string) predicate.Logic {
	return predicate.Logic(sql.FieldGT(FieldOneSentenceSummary, v))
}

// OneSentenceSummaryGTE applies the GTE predicate on the "one_sentence_summary" field.
func OneSentenceSummaryGTE(v string) predicate.Logic {
	return predicate.Logic(sql.FieldGTE(FieldOneSentenceSummary, v))
}

// OneSentenceSummaryLT applies the LT predicate on the "one_sentence_summary" field.
func OneSentenceSummaryLT(v string) predicate.Logic {
	return predicate.Logic(sql.FieldLT(FieldOneSentenceSummary, v))
}

// OneSentenceSummaryLTE applies the LTE predicate on the "one_sentence_summary" field.
func OneSentenceSummaryLTE(v string) predicate.Logic {
	return predicate.Logic(sql.FieldLTE(FieldOneSentenceSummary, v))
}

// OneSentenceSummaryContains applies the Contains predicate on the "one_sentence_summary" field.
func OneSentenceSummaryContains(v string) predicate.Logic {
	return predicate.Logic(sql.FieldContains(FieldOneSentenceSummary, v))
}

// OneSentenceSummaryHasPrefix applies the HasPrefix predicate on the "one_sentence_summary" field.
func OneSentenceSummaryHasPrefix(v string) predicate.Logic {
	return predicate.Logic(sql.FieldHasPrefix(FieldOneSentenceSummary, v))
}

// OneSentenceSummaryHasSuffix applies the HasSuffix predicate on the "one_sentence_summary" field.
func OneSentenceSummaryHasSuffix(v string) predicate.Logic {
	return predicate.Logic(sql.FieldHasSuffix(FieldOneSentenceSummary, v))
}

// OneSentenceSummaryIsNil applies the IsNil predicate on the "one_sentence_summary" field.
func OneSentenceSummaryIsNil() predicate.Logic {
	return predicate.Logic(sql.FieldIsNull(FieldOneSentenceSummary))
}

// OneSentenceSummaryNotNil applies the NotNil predicate on the "one_sentence_summary" field.
func OneSentenceSummaryNotNil() predicate.Logic {
	return predicate.Logic(sql.FieldNotNull(FieldOneSentenceSummary))
}

// OneSentenceSummaryEqualFold applies the EqualFold predicate on the "one_sentence_summary" field.
func OneSentenceSummaryEqualFold(v string) predicate.Logic {
	return predicate.Logic(sql.FieldEqualFold(FieldOneSentenceSummary, v))
}

// OneSentenceSummaryContainsFold applies the ContainsFold predicate on the "one_sentence_summary" field.
func OneSentenceSummaryContainsFold(v string) predicate.Logic {
	return predicate.Logic(sql.FieldContainsFold(FieldOneSentenceSummary, v))
}

// AssessedAtEQ applies the EQ predicate on the "assessed_at" field.
func AssessedAtEQ(v time.Time) predicate.Logic {
	return predicate.Logic(sql.FieldEQ(FieldAssessedAt, v))
}

// AssessedAtNEQ applies the NEQ predicate on the "assessed_at" field.
func AssessedAtNEQ(v time.Time) predicate.Logic {
	return predicate.Logic(sql.FieldNEQ(FieldAssessedAt, v))
}

// AssessedAtIn applies the In predicate on the "assessed_at" field.
func AssessedAtIn(vs ...time.Time) predicate.Logic {
	return predicate.Logic(sql.FieldIn(FieldAssessedAt, vs...))
}

// AssessedAtNotIn applies the NotIn predicate on the "assessed_at" field.
func AssessedAtNotIn(vs ...time.Time) predicate.Logic {
	return predicate.Logic(sql.FieldNotIn(FieldAssessedAt, vs...))
}

// AssessedAtGT applies the GT predicate on the "assessed_at" field.
func AssessedAtGT(v time.Time) predicate.Logic {
	return predicate.Logic(sql.FieldGT(FieldAssessedAt, v))
}

// AssessedAtGTE applies the GTE predicate on the "assessed_at" field.
func AssessedAtGTE(v time.Time) predicate.Logic {
	return predicate.Logic(sql.FieldGTE(FieldAssessedAt, v))
}

// AssessedAtLT applies the LT predicate on the "assessed_at" field.
func AssessedAtLT(v time.Time) predicate.Logic {
	return predicate.Logic(sql.FieldLT(FieldAssessedAt, v))
}

// AssessedAtLTE applies the LTE predicate on the "assessed_at" field.
func AssessedAtLTE(v time.Time) predicate.Logic {
	return predicate.Logic(sql.FieldLTE(FieldAssessedAt, v))
}

// AssessedAtIsNil applies the IsNil predicate on the "assessed_at" field.
func AssessedAtIsNil() predicate.Logic {
	return predicate.Logic(sql.FieldIsNull(FieldAssessedAt))
}

// AssessedAtNotNil applies the NotNil predicate on the "assessed_at" field.
func AssessedAtNotNil() predicate.Logic {
	return predicate.Logic(sql.FieldNotNull(FieldAssessedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Logic {
	return predicate.Logic(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Logic {
	return predicate.Logic(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Logic {
	return predicate.Logic(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Logic {
	return predicate.Logic(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Logic {
	return predicate.Logic(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Logic {
	return predicate.Logic(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Logic {
	return predicate.Logic(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Logic {
	return predicate.Logic(sql.FieldLTE(FieldCreatedAt, v))
}

// HasConclusion applies the HasEdge predicate on the "conclusion" edge.
func HasConclusion() predicate.Logic {
	return predicate.Logic(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ConclusionTable, ConclusionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConclusionWith applies the HasEdge predicate on the "conclusion" edge with a given conditions (other predicates).
func HasConclusionWith(preds ...predicate.Conclusion) predicate.Logic {
	return predicate.Logic(func(s *sql.Selector) {
		step := newConclusionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSolution applies the HasEdge predicate on the "solution" edge.
func HasSolution() predicate.Logic {
	return predicate.Logic(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SolutionTable, SolutionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSolutionWith applies the HasEdge predicate on the "solution" edge with a given conditions (other predicates).
func HasSolutionWith(preds ...predicate.Solution) predicate.Logic {
	return predicate.Logic(func(s *sql.Selector) {
		step := newSolutionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRawPost applies the HasEdge predicate on the "raw_post" edge.
func HasRawPost() predicate.Logic {
	return predicate.Logic(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RawPostTable, RawPostColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRawPostWith applies the HasEdge predicate on the "raw_post" edge with a given conditions (other predicates).
func HasRawPostWith(preds ...predicate.RawPost) predicate.Logic {
	return predicate.Logic(func(s *sql.Selector) {
		step := newRawPostStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasOutgoingRelations applies the HasEdge predicate on the "outgoing_relations" edge.
func HasOutgoingRelations() predicate.Logic {
	return predicate.Logic(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OutgoingRelationsTable, OutgoingRelationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOutgoingRelationsWith applies the HasEdge predicate on the "outgoing_relations" edge with a given conditions (other predicates).
func HasOutgoingRelationsWith(preds ...predicate.LogicRelation) predicate.Logic {
	return predicate.Logic(func(s *sql.Selector) {
		step := newOutgoingRelationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasIncomingRelations applies the HasEdge predicate on the "incoming_relations" edge.
func HasIncomingRelations() predicate.Logic {
	return predicate.Logic(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, IncomingRelationsTable, IncomingRelationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasIncomingRelationsWith applies the HasEdge predicate on the "incoming_relations" edge with a given conditions (other predicates).
func HasIncomingRelationsWith(preds ...predicate.LogicRelation) predicate.Logic {
	return predicate.Logic(func(s *sql.Selector) {
		step := newIncomingRelationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Logic) predicate.Logic {
	return predicate.Logic(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Logic) predicate.Logic {
	return predicate.Logic(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Logic) predicate.Logic {
	return predicate.Logic(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package postqualityassessment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/credlens/pundit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldLTE(FieldID, id))
}

// RawPostID applies equality check predicate on the "raw_post_id" field. It's identical to RawPostIDEQ.
func RawPostID(v int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldEQ(FieldRawPostID, v))
}

// AuthorID applies equality check predicate on the "author_id" field. It's identical to AuthorIDEQ.
func AuthorID(v int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldEQ(FieldAuthorID, v))
}

// UniquenessScore applies equality check predicate on the "uniqueness_score" field. It's identical to UniquenessScoreEQ.
func UniquenessScore(v float64) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldEQ(FieldUniquenessScore, v))
}

// UniquenessNote applies equality check predicate on the "uniqueness_note" field. It's identical to UniquenessNoteEQ.
func UniquenessNote(v string) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldEQ(FieldUniquenessNote, v))
}

// IsFirstMover applies equality check predicate on the "is_first_mover" field. It's identical to IsFirstMoverEQ.
func IsFirstMover(v bool) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldEQ(FieldIsFirstMover, v))
}

// SimilarClaimCount applies equality check predicate on the "similar_claim_count" field. It's identical to SimilarClaimCountEQ.
func SimilarClaimCount(v int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldEQ(FieldSimilarClaimCount, v))
}

// SimilarAuthorCount applies equality check predicate on the "similar_author_count" field. It's identical to SimilarAuthorCountEQ.
func SimilarAuthorCount(v int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldEQ(FieldSimilarAuthorCount, v))
}

// EffectivenessScore applies equality check predicate on the "effectiveness_score" field. It's identical to EffectivenessScoreEQ.
func EffectivenessScore(v float64) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldEQ(FieldEffectivenessScore, v))
}

// EffectivenessNote applies equality check predicate on the "effectiveness_note" field. It's identical to EffectivenessNoteEQ.
func EffectivenessNote(v string) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldEQ(FieldEffectivenessNote, v))
}

// NoiseRatio applies equality check predicate on the "noise_ratio" field. It's identical to NoiseRatioEQ.
func NoiseRatio(v float64) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldEQ(FieldNoiseRatio, v))
}

// AssessedAt applies equality check predicate on the "assessed_at" field. It's identical to AssessedAtEQ.
func AssessedAt(v time.Time) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldEQ(FieldAssessedAt, v))
}

// RawPostIDEQ applies the EQ predicate on the "raw_post_id" field.
func RawPostIDEQ(v int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldEQ(FieldRawPostID, v))
}

// RawPostIDNEQ applies the NEQ predicate on the "raw_post_id" field.
func RawPostIDNEQ(v int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldNEQ(FieldRawPostID, v))
}

// RawPostIDIn applies the In predicate on the "raw_post_id" field.
func RawPostIDIn(vs ...int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldIn(FieldRawPostID, vs...))
}

// RawPostIDNotIn applies the NotIn predicate on the "raw_post_id" field.
func RawPostIDNotIn(vs ...int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldNotIn(FieldRawPostID, vs...))
}

// AuthorIDEQ applies the EQ predicate on the "author_id" field.
func AuthorIDEQ(v int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldEQ(FieldAuthorID, v))
}

// AuthorIDNEQ applies the NEQ predicate on the "author_id" field.
func AuthorIDNEQ(v int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldNEQ(FieldAuthorID, v))
}

// AuthorIDIn applies the In predicate on the "author_id" field.
func AuthorIDIn(vs ...int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldIn(FieldAuthorID, vs...))
}

// AuthorIDNotIn applies the NotIn predicate on the "author_id" field.
func AuthorIDNotIn(vs ...int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldNotIn(FieldAuthorID, vs...))
}

// UniquenessScoreEQ applies the EQ predicate on the "uniqueness_score" field.
func UniquenessScoreEQ(v float64) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldEQ(FieldUniquenessScore, v))
}

// UniquenessScoreNEQ applies the NEQ predicate on the "uniqueness_score" field.
func UniquenessScoreNEQ(v float64) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldNEQ(FieldUniquenessScore, v))
}

// UniquenessScoreIn applies the In predicate on the "uniqueness_score" field.
func UniquenessScoreIn(vs ...float64) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldIn(FieldUniquenessScore, vs...))
}

// UniquenessScoreNotIn applies the NotIn predicate on the "uniqueness_score" field.
func UniquenessScoreNotIn(vs ...float64) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldNotIn(FieldUniquenessScore, vs...))
}

// UniquenessScoreGT applies the GT predicate on the "uniqueness_score" field.
func UniquenessScoreGT(v float64) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldGT(FieldUniquenessScore, v))
}

// UniquenessScoreGTE applies the GTE predicate on the "uniqueness_score" field.
func UniquenessScoreGTE(v float64) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldGTE(FieldUniquenessScore, v))
}

// UniquenessScoreLT applies the LT predicate on the "uniqueness_score" field.
func UniquenessScoreLT(v float64) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldLT(FieldUniquenessScore, v))
}

// UniquenessScoreLTE applies the LTE predicate on the "uniqueness_score" field.
func UniquenessScoreLTE(v float64) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldLTE(FieldUniquenessScore, v))
}

// UniquenessScoreIsNil applies the IsNil predicate on the "uniqueness_score" field.
func UniquenessScoreIsNil() predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldIsNull(FieldUniquenessScore))
}

// UniquenessScoreNotNil applies the NotNil predicate on the "uniqueness_score" field.
func UniquenessScoreNotNil() predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldNotNull(FieldUniquenessScore))
}

// UniquenessNoteEQ applies the EQ predicate on the "uniqueness_note" field.
func UniquenessNoteEQ(v string) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldEQ(FieldUniquenessNote, v))
}

// UniquenessNoteNEQ applies the NEQ predicate on the "uniqueness_note" field.
func UniquenessNoteNEQ(v string) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldNEQ(FieldUniquenessNote, v))
}

// UniquenessNoteIn applies the In predicate on the "uniqueness_note" field.
func UniquenessNoteIn(vs ...string) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldIn(FieldUniquenessNote, vs...))
}

// UniquenessNoteNotIn applies the NotIn predicate on the "uniqueness_note" field.
func UniquenessNoteNotIn(vs ...string) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldNotIn(FieldUniquenessNote, vs...))
}

// UniquenessNoteGT applies the GT predicate on the "uniqueness_note" field.
func UniquenessNoteGT(v string) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldGT(FieldUniquenessNote, v))
}

// UniquenessNoteGTE applies the GTE predicate on the "uniqueness_note" field.
func UniquenessNoteGTE(v string) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldGTE(FieldUniquenessNote, v))
}

// UniquenessNoteLT applies the LT predicate on the "uniqueness_note" field.
func UniquenessNoteLT(v string) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldLT(FieldUniquenessNote, v))
}

// UniquenessNoteLTE applies the LTE predicate on the "uniqueness_note" field.
func UniquenessNoteLTE(v string) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldLTE(FieldUniquenessNote, v))
}

// UniquenessNoteContains applies the Contains predicate on the "uniqueness_note" field.
func UniquenessNoteContains(v string) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldContains(FieldUniquenessNote, v))
}

// UniquenessNoteHasPrefix applies the HasPrefix predicate on the "uniqueness_note" field.
func UniquenessNoteHasPrefix(v string) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldHasPrefix(FieldUniquenessNote, v))
}

// UniquenessNoteHasSuffix applies the HasSuffix predicate on the "uniqueness_note" field.
func UniquenessNoteHasSuffix(v string) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldHasSuffix(FieldUniquenessNote, v))
}

// UniquenessNoteIsNil applies the IsNil predicate on the "uniqueness_note" field.
func UniquenessNoteIsNil() predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldIsNull(FieldUniquenessNote))
}

// UniquenessNoteNotNil applies the NotNil predicate on the "uniqueness_note" field.
func UniquenessNoteNotNil() predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldNotNull(FieldUniquenessNote))
}

// UniquenessNoteEqualFold applies the EqualFold predicate on the "uniqueness_note" field.
func UniquenessNoteEqualFold(v string) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldEqualFold(FieldUniquenessNote, v))
}

// UniquenessNoteContainsFold applies the ContainsFold predicate on the "uniqueness_note" field.
func UniquenessNoteContainsFold(v string) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldContainsFold(FieldUniquenessNote, v))
}

// IsFirstMoverEQ applies the EQ predicate on the "is_first_mover" field.
func IsFirstMoverEQ(v bool) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldEQ(FieldIsFirstMover, v))
}

// IsFirstMoverNEQ applies the NEQ predicate on the "is_first_mover" field.
func IsFirstMoverNEQ(v bool) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldNEQ(FieldIsFirstMover, v))
}

// IsFirstMoverIsNil applies the IsNil predicate on the "is_first_mover" field.
func IsFirstMoverIsNil() predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldIsNull(FieldIsFirstMover))
}

// IsFirstMoverNotNil applies the NotNil predicate on the "is_first_mover" field.
func IsFirstMoverNotNil() predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldNotNull(FieldIsFirstMover))
}

// SimilarClaimCountEQ applies the EQ predicate on the "similar_claim_count" field.
func SimilarClaimCountEQ(v int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldEQ(FieldSimilarClaimCount, v))
}

// SimilarClaimCountNEQ applies the NEQ predicate on the "similar_claim_count" field.
func SimilarClaimCountNEQ(v int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldNEQ(FieldSimilarClaimCount, v))
}

// SimilarClaimCountIn applies the In predicate on the "similar_claim_count" field.
func SimilarClaimCountIn(vs ...int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldIn(FieldSimilarClaimCount, vs...))
}

// SimilarClaimCountNotIn applies the NotIn predicate on the "similar_claim_count" field.
func SimilarClaimCountNotIn(vs ...int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldNotIn(FieldSimilarClaimCount, vs...))
}

// SimilarClaimCountGT applies the GT predicate on the "similar_claim_count" field.
func SimilarClaimCountGT(v int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldGT(FieldSimilarClaimCount, v))
}

// SimilarClaimCountGTE applies the GTE predicate on the "similar_claim_count" field.
func SimilarClaimCountGTE(v int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldGTE(FieldSimilarClaimCount, v))
}

// SimilarClaimCountLT applies the LT predicate on the "similar_claim_count" field.
func SimilarClaimCountLT(v int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldLT(FieldSimilarClaimCount, v))
}

// SimilarClaimCountLTE applies the LTE predicate on the "similar_claim_count" field.
func SimilarClaimCountLTE(v int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldLTE(FieldSimilarClaimCount, v))
}

// SimilarAuthorCountEQ applies the EQ predicate on the "similar_author_count" field.
func SimilarAuthorCountEQ(v int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldEQ(FieldSimilarAuthorCount, v))
}

// SimilarAuthorCountNEQ applies the NEQ predicate on the "similar_author_count" field.
func SimilarAuthorCountNEQ(v int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldNEQ(FieldSimilarAuthorCount, v))
}

// SimilarAuthorCountIn applies the In predicate on the "similar_author_count" field.
func SimilarAuthorCountIn(vs ...int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldIn(FieldSimilarAuthorCount, vs...))
}

// SimilarAuthorCountNotIn applies the NotIn predicate on the "similar_author_count" field.
func SimilarAuthorCountNotIn(vs ...int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldNotIn(FieldSimilarAuthorCount, vs...))
}

// SimilarAuthorCountGT applies the GT predicate on the "similar_author_count" field.
func SimilarAuthorCountGT(v int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldGT(FieldSimilarAuthorCount, v))
}

// SimilarAuthorCountGTE applies the GTE predicate on the "similar_author_count" field.
func SimilarAuthorCountGTE(v int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldGTE(FieldSimilarAuthorCount, v))
}

// SimilarAuthorCountLT applies the LT predicate on the "similar_author_count" field.
func SimilarAuthorCountLT(v int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldLT(FieldSimilarAuthorCount, v))
}

// SimilarAuthorCountLTE applies the LTE predicate on the "similar_author_count" field.
func SimilarAuthorCountLTE(v int) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldLTE(FieldSimilarAuthorCount, v))
}

// EffectivenessScoreEQ applies the EQ predicate on the "effectiveness_score" field.
func EffectivenessScoreEQ(v float64) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldEQ(FieldEffectivenessScore, v))
}

// EffectivenessScoreNEQ applies the NEQ predicate on the "effectiveness_score" field.
func EffectivenessScoreNEQ(v float64) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldNEQ(FieldEffectivenessScore, v))
}

// EffectivenessScoreIn applies the In predicate on the "effectiveness_score" field.
func EffectivenessScoreIn(vs ...float64) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldIn(FieldEffectivenessScore, vs...))
}

// EffectivenessScoreNotIn applies the NotIn predicate on the "effectiveness_score" field.
func EffectivenessScoreNotIn(vs ...float64) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldNotIn(FieldEffectivenessScore, vs...))
}

// EffectivenessScoreGT applies the GT predicate on the "effectiveness_score" field.
func EffectivenessScoreGT(v float64) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldGT(FieldEffectivenessScore, v))
}

// EffectivenessScoreGTE applies the GTE predicate on the "effectiveness_score" field.
func EffectivenessScoreGTE(v float64) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldGTE(FieldEffectivenessScore, v))
}

// EffectivenessScoreLT applies the LT predicate on the "effectiveness_score" field.
func EffectivenessScoreLT(v float64) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldLT(FieldEffectivenessScore, v))
}

// EffectivenessScoreLTE applies the LTE predicate on the "effectiveness_score" field.
func EffectivenessScoreLTE(v float64) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldLTE(FieldEffectivenessScore, v))
}

// EffectivenessScoreIsNil applies the IsNil predicate on the "effectiveness_score" field.
func EffectivenessScoreIsNil() predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldIsNull(FieldEffectivenessScore))
}

// EffectivenessScoreNotNil applies the NotNil predicate on the "effectiveness_score" field.
func EffectivenessScoreNotNil() predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldNotNull(FieldEffectivenessScore))
}

// EffectivenessNoteEQ applies the EQ predicate on the "effectiveness_note" field.
func EffectivenessNoteEQ(v string) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldEQ(FieldEffectivenessNote, v))
}

// EffectivenessNoteNEQ applies the NEQ predicate on the "effectiveness_note" field.
func EffectivenessNoteNEQ(v string) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldNEQ(FieldEffectivenessNote, v))
}

// EffectivenessNoteIn applies the In predicate on the "effectiveness_note" field.
func EffectivenessNoteIn(vs ...string) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldIn(FieldEffectivenessNote, vs...))
}

// EffectivenessNoteNotIn applies the NotIn predicate on the "effectiveness_note" field.
func EffectivenessNoteNotIn(vs ...string) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldNotIn(FieldEffectivenessNote, vs...))
}

// EffectivenessNoteGT applies the GT predicate on the "effectiveness_note" field.
func EffectivenessNoteGT(v string) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldGT(FieldEffectivenessNote, v))
}

// EffectivenessNoteGTE applies the GTE predicate on the "effectiveness_note" field.
func EffectivenessNoteGTE(v string) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldGTE(FieldEffectivenessNote, v))
}

// EffectivenessNoteLT applies the LT predicate on the "effectiveness_note" field.
func EffectivenessNoteLT(v string) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldLT(FieldEffectivenessNote, v))
}

// EffectivenessNoteLTE applies the LTE predicate on the "effectiveness_note" field.
func EffectivenessNoteLTE(v string) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldLTE(FieldEffectivenessNote, v))
}

// EffectivenessNoteContains applies the Contains predicate on the "effectiveness_note" field.
func EffectivenessNoteContains(v string) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldContains(FieldEffectivenessNote, v))
}

// EffectivenessNoteHasPrefix applies the HasPrefix predicate on the "effectiveness_note" field.
func EffectivenessNoteHasPrefix(v string) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldHasPrefix(FieldEffectivenessNote, v))
}

// EffectivenessNoteHasSuffix applies the HasSuffix predicate on the "effectiveness_note" field.
func EffectivenessNoteHasSuffix(v string) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldHasSuffix(FieldEffectivenessNote, v))
}

// EffectivenessNoteIsNil applies the IsNil predicate on the "effectiveness_note" field.
func EffectivenessNoteIsNil() predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldIsNull(FieldEffectivenessNote))
}

// EffectivenessNoteNotNil applies the NotNil predicate on the "effectiveness_note" field.
func EffectivenessNoteNotNil() predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldNotNull(FieldEffectivenessNote))
}

// EffectivenessNoteEqualFold applies the EqualFold predicate on the "effectiveness_note" field.
func EffectivenessNoteEqualFold(v string) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldEqualFold(FieldEffectivenessNote, v))
}

// EffectivenessNoteContainsFold applies the ContainsFold predicate on the "effectiveness_note" field.
func EffectivenessNoteContainsFold(v string) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldContainsFold(FieldEffectivenessNote, v))
}

// NoiseRatioEQ applies the EQ predicate on the "noise_ratio" field.
func NoiseRatioEQ(v float64) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldEQ(FieldNoiseRatio, v))
}

// NoiseRatioNEQ applies the NEQ predicate on the "noise_ratio" field.
func NoiseRatioNEQ(v float64) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldNEQ(FieldNoiseRatio, v))
}

// NoiseRatioIn applies the In predicate on the "noise_ratio" field.
func NoiseRatioIn(vs ...float64) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldIn(FieldNoiseRatio, vs...))
}

// NoiseRatioNotIn applies the NotIn predicate on the "noise_ratio" field.
func NoiseRatioNotIn(vs ...float64) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldNotIn(FieldNoiseRatio, vs...))
}

// NoiseRatioGT applies the GT predicate on the "noise_ratio" field.
func NoiseRatioGT(v float64) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldGT(FieldNoiseRatio, v))
}

// NoiseRatioGTE applies the GTE predicate on the "noise_ratio" field.
func NoiseRatioGTE(v float64) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldGTE(FieldNoiseRatio, v))
}

// NoiseRatioLT applies the LT predicate on the "noise_ratio" field.
func NoiseRatioLT(v float64) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldLT(FieldNoiseRatio, v))
}

// NoiseRatioLTE applies the LTE predicate on the "noise_ratio" field.
func NoiseRatioLTE(v float64) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldLTE(FieldNoiseRatio, v))
}

// NoiseRatioIsNil applies the IsNil predicate on the "noise_ratio" field.
func NoiseRatioIsNil() predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldIsNull(FieldNoiseRatio))
}

// NoiseRatioNotNil applies the NotNil predicate on the "noise_ratio" field.
func NoiseRatioNotNil() predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldNotNull(FieldNoiseRatio))
}

// NoiseTypesIsNil applies the IsNil predicate on the "noise_types" field.
func NoiseTypesIsNil() predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldIsNull(FieldNoiseTypes))
}

// NoiseTypesNotNil applies the NotNil predicate on the "noise_types" field.
func NoiseTypesNotNil() predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldNotNull(FieldNoiseTypes))
}

// AssessedAtEQ applies the EQ predicate on the "assessed_at" field.
func AssessedAtEQ(v time.Time) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldEQ(FieldAssessedAt, v))
}

// AssessedAtNEQ applies the NEQ predicate on the "assessed_at" field.
func AssessedAtNEQ(v time.Time) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldNEQ(FieldAssessedAt, v))
}

// AssessedAtIn applies the In predicate on the "assessed_at" field.
func AssessedAtIn(vs ...time.Time) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldIn(FieldAssessedAt, vs...))
}

// AssessedAtNotIn applies the NotIn predicate on the "assessed_at" field.
func AssessedAtNotIn(vs ...time.Time) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldNotIn(FieldAssessedAt, vs...))
}

// AssessedAtGT applies the GT predicate on the "assessed_at" field.
func AssessedAtGT(v time.Time) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldGT(FieldAssessedAt, v))
}

// AssessedAtGTE applies the GTE predicate on the "assessed_at" field.
func AssessedAtGTE(v time.Time) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldGTE(FieldAssessedAt, v))
}

// AssessedAtLT applies the LT predicate on the "assessed_at" field.
func AssessedAtLT(v time.Time) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldLT(FieldAssessedAt, v))
}

// AssessedAtLTE applies the LTE predicate on the "assessed_at" field.
func AssessedAtLTE(v time.Time) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.FieldLTE(FieldAssessedAt, v))
}

// HasRawPost applies the HasEdge predicate on the "raw_post" edge.
func HasRawPost() predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, RawPostTable, RawPostColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRawPostWith applies the HasEdge predicate on the "raw_post" edge with a given conditions (other predicates).
func HasRawPostWith(preds ...predicate.RawPost) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(func(s *sql.Selector) {
		step := newRawPostStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAuthor applies the HasEdge predicate on the "author" edge.
func HasAuthor() predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AuthorTable, AuthorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuthorWith applies the HasEdge predicate on the "author" edge with a given conditions (other predicates).
func HasAuthorWith(preds ...predicate.Author) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(func(s *sql.Selector) {
		step := newAuthorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PostQualityAssessment) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PostQualityAssessment) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PostQualityAssessment) predicate.PostQualityAssessment {
	return predicate.PostQualityAssessment(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package fact

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/credlens/pundit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Fact {
	return predicate.Fact(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Fact {
	return predicate.Fact(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Fact {
	return predicate.Fact(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Fact {
	return predicate.Fact(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Fact {
	return predicate.Fact(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Fact {
	return predicate.Fact(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Fact {
	return predicate.Fact(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Fact {
	return predicate.Fact(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Fact {
	return predicate.Fact(sql.FieldLTE(FieldID, id))
}

// Claim applies equality check predicate on the "claim" field. It's identical to ClaimEQ.
func Claim(v string) predicate.Fact {
	return predicate.Fact(sql.FieldEQ(FieldClaim, v))
}

// CanonicalClaim applies equality check predicate on the "canonical_claim" field. It's identical to CanonicalClaimEQ.
func CanonicalClaim(v string) predicate.Fact {
	return predicate.Fact(sql.FieldEQ(FieldCanonicalClaim, v))
}

// VerifiableExpression applies equality check predicate on the "verifiable_expression" field. It's identical to VerifiableExpressionEQ.
func VerifiableExpression(v string) predicate.Fact {
	return predicate.Fact(sql.FieldEQ(FieldVerifiableExpression, v))
}

// IsVerifiable applies equality check predicate on the "is_verifiable" field. It's identical to IsVerifiableEQ.
func IsVerifiable(v bool) predicate.Fact {
	return predicate.Fact(sql.FieldEQ(FieldIsVerifiable, v))
}

// VerificationMethod applies equality check predicate on the "verification_method" field. It's identical to VerificationMethodEQ.
func VerificationMethod(v string) predicate.Fact {
	return predicate.Fact(sql.FieldEQ(FieldVerificationMethod, v))
}

// ValidityStartNote applies equality check predicate on the "validity_start_note" field. It's identical to ValidityStartNoteEQ.
func ValidityStartNote(v string) predicate.Fact {
	return predicate.Fact(sql.FieldEQ(FieldValidityStartNote, v))
}

// ValidityEndNote applies equality check predicate on the "validity_end_note" field. It's identical to ValidityEndNoteEQ.
func ValidityEndNote(v string) predicate.Fact {
	return predicate.Fact(sql.FieldEQ(FieldValidityEndNote, v))
}

// ValidityStart applies equality check predicate on the "validity_start" field. It's identical to ValidityStartEQ.
func ValidityStart(v time.Time) predicate.Fact {
	return predicate.Fact(sql.FieldEQ(FieldValidityStart, v))
}

// ValidityEnd applies equality check predicate on the "validity_end" field. It's identical to ValidityEndEQ.
func ValidityEnd(v time.Time) predicate.Fact {
	return predicate.Fact(sql.FieldEQ(FieldValidityEnd, v))
}

// VerifiedAt applies equality check predicate on the "verified_at" field. It's identical to VerifiedAtEQ.
func VerifiedAt(v time.Time) predicate.Fact {
	return predicate.Fact(sql.FieldEQ(FieldVerifiedAt, v))
}

// VerificationEvidence applies equality check predicate on the "verification_evidence" field. It's identical to VerificationEvidenceEQ.
func VerificationEvidence(v string) predicate.Fact {
	return predicate.Fact(sql.FieldEQ(FieldVerificationEvidence, v))
}

// VerifiedSourceOrg applies equality check predicate on the "verified_source_org" field. It's identical to VerifiedSourceOrgEQ.
func VerifiedSourceOrg(v string) predicate.Fact {
	return predicate.Fact(sql.FieldEQ(FieldVerifiedSourceOrg, v))
}

// VerifiedSourceURL applies equality check predicate on the "verified_source_url" field. It's identical to VerifiedSourceURLEQ.
func VerifiedSourceURL(v string) predicate.Fact {
	return predicate.Fact(sql.FieldEQ(FieldVerifiedSourceURL, v))
}

// VerifiedSourceData applies equality check predicate on the "verified_source_data" field. It's identical to VerifiedSourceDataEQ.
func VerifiedSourceData(v string) predicate.Fact {
	return predicate.Fact(sql.FieldEQ(FieldVerifiedSourceData, v))
}

// RawPostID applies equality check predicate on the "raw_post_id" field. It's identical to RawPostIDEQ.
func RawPostID(v int) predicate.Fact {
	return predicate.Fact(sql.FieldEQ(FieldRawPostID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Fact {
	return predicate.Fact(sql.FieldEQ(FieldCreatedAt, v))
}

// ClaimEQ applies the EQ predicate on the "claim" field.
func ClaimEQ(v string) predicate.Fact {
	return predicate.Fact(sql.FieldEQ(FieldClaim, v))
}

// ClaimNEQ applies the NEQ predicate on the "claim" field.
func ClaimNEQ(v string) predicate.Fact {
	return predicate.Fact(sql.FieldNEQ(FieldClaim, v))
}

// ClaimIn applies the In predicate on the "claim" field.
func ClaimIn(vs ...string) predicate.Fact {
	return predicate.Fact(sql.FieldIn(FieldClaim, vs...))
}

// ClaimNotIn applies the NotIn predicate on the "claim" field.
func ClaimNotIn(vs ...string) predicate.Fact {
	return predicate.Fact(sql.FieldNotIn(FieldClaim, vs...))
}

// ClaimGT applies the GT predicate on the "claim" field.
func ClaimGT(v string) predicate.Fact {
	return predicate.Fact(sql.FieldGT(FieldClaim, v))
}

// ClaimGTE applies the GTE predicate on the "claim" field.
func ClaimGTE(v string) predicate.Fact {
	return predicate.Fact(sql.FieldGTE(FieldClaim, v))
}

// ClaimLT applies the LT predicate on the "claim" field.
func ClaimLT(v string) predicate.Fact {
	return predicate.Fact(sql.FieldLT(FieldClaim, v))
}

// ClaimLTE applies the LTE predicate on the "claim" field.
func ClaimLTE(v string) predicate.Fact {
	return predicate.Fact(sql.FieldLTE(FieldClaim, v))
}

// ClaimContains applies the Contains predicate on the "claim" field.
func ClaimContains(v string) predicate.Fact {
	return predicate.Fact(sql.FieldContains(FieldClaim, v))
}

// ClaimHasPrefix applies the HasPrefix predicate on the "claim" field.
func ClaimHasPrefix(v string) predicate.Fact {
	return predicate.Fact(sql.FieldHasPrefix(FieldClaim, v))
}

// ClaimHasSuffix applies the HasSuffix predicate on the "claim" field.
func ClaimHasSuffix(v string) predicate.Fact {
	return predicate.Fact(sql.FieldHasSuffix(FieldClaim, v))
}

// ClaimEqualFold applies the EqualFold predicate on the "claim" field.
func ClaimEqualFold(v string) predicate.Fact {
	return predicate.Fact(sql.FieldEqualFold(FieldClaim, v))
}

// ClaimContainsFold applies the ContainsFold predicate on the "claim" field.
func ClaimContainsFold(v string) predicate.Fact {
	return predicate.Fact(sql.FieldContainsFold(FieldClaim, v))
}

// CanonicalClaimEQ applies the EQ predicate on the "canonical_claim" field.
func CanonicalClaimEQ(v string) predicate.Fact {
	return predicate.Fact(sql.FieldEQ(FieldCanonicalClaim, v))
}

// CanonicalClaimNEQ applies the NEQ predicate on the "canonical_claim" field.
func CanonicalClaimNEQ(v string) predicate.Fact {
	return predicate.Fact(sql.FieldNEQ(FieldCanonicalClaim, v))
}

// CanonicalClaimIn applies the In predicate on the "canonical_claim" field.
func CanonicalClaimIn(vs ...string) predicate.Fact {
	return predicate.Fact(sql.FieldIn(FieldCanonicalClaim, vs...))
}

// CanonicalClaimNotIn applies the NotIn predicate on the "canonical_claim" field.
func CanonicalClaimNotIn(vs ...string) predicate.Fact {
	return predicate.Fact(sql.FieldNotIn(FieldCanonicalClaim, vs...))
}

// CanonicalClaimGT applies the GT predicate on the "canonical_claim" field.
func CanonicalClaimGT(v string) predicate.Fact {
	return predicate.Fact(sql.FieldGT(FieldCanonicalClaim, v))
}

// CanonicalClaimGTE applies the GTE predicate on the "canonical_claim" field.
func CanonicalClaimGTE(v string) predicate.Fact {
	return predicate.Fact(sql.FieldGTE(FieldCanonicalClaim, v))
}

// CanonicalClaimLT applies the LT predicate on the "canonical_claim" field.
func CanonicalClaimLT(v string) predicate.Fact {
	return predicate.Fact(sql.FieldLT(FieldCanonicalClaim, v))
}

// CanonicalClaimLTE applies the LTE predicate on the "canonical_claim" field.
func CanonicalClaimLTE(v string) predicate.Fact {
	return predicate.Fact(sql.FieldLTE(FieldCanonicalClaim, v))
}

// CanonicalClaimContains applies the Contains predicate on the "canonical_claim" field.
func CanonicalClaimContains(v string) predicate.Fact {
	return predicate.Fact(sql.FieldContains(FieldCanonicalClaim, v))
}

// CanonicalClaimHasPrefix applies the HasPrefix predicate on the "canonical_claim" field.
func CanonicalClaimHasPrefix(v string) predicate.Fact {
	return predicate.Fact(sql.FieldHasPrefix(FieldCanonicalClaim, v))
}

// CanonicalClaimHasSuffix applies the HasSuffix predicate on the "canonical_claim" field.
func CanonicalClaimHasSuffix(v string) predicate.Fact {
	return predicate.Fact(sql.FieldHasSuffix(FieldCanonicalClaim, v))
}

// CanonicalClaimIsNil applies the IsNil predicate on the "canonical_claim" field.
func CanonicalClaimIsNil() predicate.Fact {
	return predicate.Fact(sql.FieldIsNull(FieldCanonicalClaim))
}

// CanonicalClaimNotNil applies the NotNil predicate on the "canonical_claim" field.
func CanonicalClaimNotNil() predicate.Fact {
	return predicate.Fact(sql.FieldNotNull(FieldCanonicalClaim))
}

// CanonicalClaimEqualFold applies the EqualFold predicate on the "canonical_claim" field.
func CanonicalClaimEqualFold(v string) predicate.Fact {
	return predicate.Fact(sql.FieldEqualFold(FieldCanonicalClaim, v))
}

// CanonicalClaimContainsFold applies the ContainsFold predicate on the "canonical_claim" field.
func CanonicalClaimContainsFold(v string) predicate.Fact {
	return predicate.Fact(sql.FieldContainsFold(FieldCanonicalClaim, v))
}

// VerifiableExpressionEQ applies the EQ predicate on the "verifiable_expression" field.
func VerifiableExpressionEQ(v string) predicate.Fact {
	return predicate.Fact(sql.FieldEQ(FieldVerifiableExpression, v))
}

// VerifiableExpressionNEQ applies the NEQ predicate on the "verifiable_expression" field.
func VerifiableExpressionNEQ(v string) predicate.Fact {
	return predicate.Fact(sql.FieldNEQ(FieldVerifiableExpression, v))
}

// VerifiableExpressionIn applies the In predicate on the "verifiable_expression" field.
func VerifiableExpressionIn(vs ...string) predicate.Fact {
	return predicate.Fact(sql.FieldIn(FieldVerifiableExpression, vs...))
}

// VerifiableExpressionNotIn applies the NotIn predicate on the "verifiable_expression" field.
func VerifiableExpressionNotIn(vs ...string) predicate.Fact {
	return predicate.Fact(sql.FieldNotIn(FieldVerifiableExpression, vs...))
}

// VerifiableExpressionGT applies the GT predicate on the "verifiable_expression" field.
func VerifiableExpressionGT(v string) predicate.Fact {
	return predicate.Fact(sql.FieldGT(FieldVerifiableExpression, v))
}

// VerifiableExpressionGTE applies the GTE predicate on the "verifiable_expression" field.
func VerifiableExpressionGTE(v string) predicate.Fact {
	return predicate.Fact(sql.FieldGTE(FieldVerifiableExpression, v))
}

// VerifiableExpressionLT applies the LT predicate on the "verifiable_expression" field.
func VerifiableExpressionLT(v string) predicate.Fact {
	return predicate.Fact(sql.FieldLT(FieldVerifiableExpression, v))
}

// VerifiableExpressionLTE applies the LTE predicate on the "verifiable_expression" field.
func VerifiableExpressionLTE(v string) predicate.Fact {
	return predicate.Fact(sql.FieldLTE(FieldVerifiableExpression, v))
}

// VerifiableExpressionContains applies the Contains predicate on the "verifiable_expression" field.
func VerifiableExpressionContains(v string) predicate.Fact {
	return predicate.Fact(sql.FieldContains(FieldVerifiableExpression, v))
}

// VerifiableExpressionHasPrefix applies the HasPrefix predicate on the "verifiable_expression" field.
func VerifiableExpressionHasPrefix(v string) predicate.Fact {
	return predicate.Fact(sql.FieldHasPrefix(FieldVerifiableExpression, v))
}

// VerifiableExpressionHasSuffix applies the HasSuffix predicate on the "verifiable_expression" field.
func VerifiableExpressionHasSuffix(v string) predicate.Fact {
	return predicate.Fact(sql.FieldHasSuffix(FieldVerifiableExpression, v))
}

// VerifiableExpressionIsNil applies the IsNil predicate on the "verifiable_expression" field.
func VerifiableExpressionIsNil() predicate.Fact {
	return predicate.Fact(sql.FieldIsNull(FieldVerifiableExpression))
}

// VerifiableExpressionNotNil applies the NotNil predicate on the "verifiable_expression" field.
func VerifiableExpressionNotNil() predicate.Fact {
	return predicate.Fact(sql.FieldNotNull(FieldVerifiableExpression))
}

// VerifiableExpressionEqualFold applies the EqualFold predicate on the "verifiable_expression" field.
func VerifiableExpressionEqualFold(v string) predicate.Fact {
	return predicate.Fact(sql.FieldEqualFold(FieldVerifiableExpression, v))
}

// VerifiableExpressionContainsFold applies the ContainsFold predicate on the "verifiable_expression" field.
func VerifiableExpressionContainsFold(v string) predicate.Fact {
	return predicate.Fact(sql.FieldContainsFold(FieldVerifiableExpression, v))
}

// IsVerifiableEQ applies the EQ predicate on the "is_verifiable" field.
func IsVerifiableEQ(v bool) predicate.Fact {
	return predicate.Fact(sql.FieldEQ(FieldIsVerifiable, v))
}

// IsVerifiableNEQ applies the NEQ predicate on the "is_verifiable" field.
func IsVerifiableNEQ(v bool) predicate.Fact {
	return predicate.Fact(sql.FieldNEQ(FieldIsVerifiable, v))
}

// VerificationMethodEQ applies the EQ predicate on the "verification_method" field.
func VerificationMethodEQ(v string) predicate.Fact {
	return predicate.Fact(sql.FieldEQ(FieldVerificationMethod, v))
}

// VerificationMethodNEQ applies the NEQ predicate on the "verification_method" field.
func VerificationMethodNEQ(v string) predicate.Fact {
	return predicate.Fact(sql.FieldNEQ(FieldVerificationMethod, v))
}

// VerificationMethodIn applies the In predicate on the "verification_method" field.
func VerificationMethodIn(vs ...string) predicate.Fact {
	return predicate.Fact(sql.FieldIn(FieldVerificationMethod, vs...))
}

// VerificationMethodNotIn applies the NotIn predicate on the "verification_method" field.
func VerificationMethodNotIn(vs ...string) predicate.Fact {
	return predicate.Fact(sql.FieldNotIn(FieldVerificationMethod, vs...))
}

// VerificationMethodGT applies the GT predicate on the "verification_method" field.
func VerificationMethodGT(v string) predicate.Fact {
	return predicate.Fact(sql.FieldGT(FieldVerificationMethod, v))
}

// VerificationMethodGTE applies the GTE predicate on the "verification_method" field.
func VerificationMethodGTE(v string) predicate.Fact {
	return predicate.Fact(sql.FieldGTE(FieldVerificationMethod, v))
}

// VerificationMethodLT applies the LT predicate on the "verification_method" field.
func VerificationMethodLT(v string) predicate.Fact {
	return predicate.Fact(sql.FieldLT(FieldVerificationMethod, v))
}

// VerificationMethodLTE applies the LTE predicate on the "verification_method" field.
func VerificationMethodLTE(v string) predicate.Fact {
	return predicate.Fact(sql.FieldLTE(FieldVerificationMethod, v))
}

// VerificationMethodContains applies the Contains predicate on the "verification_method" field.
func VerificationMethodContains(v string) predicate.Fact {
	return predicate.Fact(sql.FieldContains(FieldVerificationMethod, v))
}

// VerificationMethodHasPrefix applies the HasPrefix predicate on the "verification_method" field.
func VerificationMethodHasPrefix(v string) predicate.Fact {
	return predicate.Fact(sql.FieldHasPrefix(FieldVerificationMethod, v))
}

// VerificationMethodHasSuffix applies the HasSuffix predicate on the "verification_method" field.
func VerificationMethodHasSuffix(v string) predicate.Fact {
	return predicate.Fact(sql.FieldHasSuffix(FieldVerificationMethod, v))
}

// VerificationMethodIsNil applies the IsNil predicate on the "verification_method" field.
func VerificationMethodIsNil() predicate.Fact {
	return predicate.Fact(sql.FieldIsNull(FieldVerificationMethod))
}

// VerificationMethodNotNil applies the NotNil predicate on the "verification_method" field.
func VerificationMethodNotNil() predicate.Fact {
	return predicate.Fact(sql.FieldNotNull(FieldVerificationMethod))
}

// VerificationMethodEqualFold applies the EqualFold predicate on the "verification_method" field.
func VerificationMethodEqualFold(v string) predicate.Fact {
	return predicate.Fact(sql.FieldEqualFold(FieldVerificationMethod, v))
}

// VerificationMethodContainsFold applies the ContainsFold predicate on the "verification_method" field.
func VerificationMethodContainsFold(v string) predicate.Fact {
	return predicate.Fact(sql.FieldContainsFold(FieldVerificationMethod, v))
}

// ValidityStartNoteEQ applies the EQ predicate on the "validity_start_note" field.
func ValidityStartNoteEQ(v string) predicate.Fact {
	return predicate.Fact(sql.FieldEQ(FieldValidityStartNote, v))
}

// ValidityStartNoteNEQ applies the NEQ predicate on the "validity_start_note" field.
func ValidityStartNoteNEQ(v string) predicate.Fact {
	return predicate.Fact(sql.FieldNEQ(FieldValidityStartNote, v))
}

// ValidityStartNoteIn applies the In predicate on the "validity_start_note" field.
func ValidityStartNoteIn(vs ...string) predicate.Fact {
	return predicate.Fact(sql.FieldIn(FieldValidityStartNote, vs...))
}

// ValidityStartNoteNotIn applies the NotIn predicate on the "validity_start_note" field.
func ValidityStartNoteNotIn(vs ...string) predicate.Fact {
	return predicate.Fact(sql.FieldNotIn(FieldValidityStartNote, vs...))
}

// ValidityStartNoteGT applies the GT predicate on the "validity_start_note" field.
func ValidityStartNoteGT(v string) predicate.Fact {
	return predicate.Fact(sql.FieldGT(FieldValidityStartNote, v))
}

// ValidityStartNoteGTE applies the GTE predicate on the "validity_start_note" field.
func ValidityStartNoteGTE(v string) predicate.Fact {
	return predicate.Fact(sql.FieldGTE(FieldValidityStartNote, v))
}

// ValidityStartNoteLT applies the LT predicate on the "validity_start_note" field.
func ValidityStartNoteLT(v string) predicate.Fact {
	return predicate.Fact(sql.FieldLT(FieldValidityStartNote, v))
}

// ValidityStartNoteLTE applies the LTE predicate on the "validity_start_note" field.
func ValidityStartNoteLTE(v string) predicate.Fact {
	return predicate.Fact(sql.FieldLTE(FieldValidityStartNote, v))
}

// ValidityStartNoteContains applies the Contains predicate on the "validity_start_note" field.
func ValidityStartNoteContains(v string) predicate.Fact {
	return predicate.Fact(sql.FieldContains(FieldValidityStartNote, v))
}

// ValidityStartNoteHasPrefix applies the HasPrefix predicate on the "validity_start_note" field.
func ValidityStartNoteHasPrefix(v string) predicate.Fact {
	return predicate.Fact(sql.FieldHasPrefix(FieldValidityStartNote, v))
}

// ValidityStartNoteHasSuffix applies the HasSuffix predicate on the "validity_start_note" field.
func ValidityStartNoteHasSuffix(v string) predicate.Fact {
	return predicate.Fact(sql.FieldHasSuffix(FieldValidityStartNote, v))
}

// ValidityStartNoteIsNil applies the IsNil predicate on the "validity_start_note" field.
func ValidityStartNoteIsNil() predicate.Fact {
	return predicate.Fact(sql.FieldIsNull(FieldValidityStartNote))
}

// ValidityStartNoteNotNil applies the NotNil predicate on the "validity_start_note" field.
func ValidityStartNoteNotNil() predicate.Fact {
	return predicate.Fact(sql.FieldNotNull(FieldValidityStartNote))
}

// ValidityStartNoteEqualFold applies the EqualFold predicate on the "validity_start_note" field.
func ValidityStartNoteEqualFold(v string) predicate.Fact {
	return predicate.Fact(sql.FieldEqualFold(FieldValidityStartNote, v))
}

// ValidityStartNoteContainsFold applies the ContainsFold predicate on the "validity_start_note" field.
func ValidityStartNoteContainsFold(v string) predicate.Fact {
	return predicate.Fact(sql.FieldContainsFold(FieldValidityStartNote, v))
}

// ValidityEndNoteEQ applies the EQ predicate on the "validity_end_note" field.
func ValidityEndNoteEQ(v string) predicate.Fact {
	return predicate.Fact(sql.FieldEQ(FieldValidityEndNote, v))
}

// ValidityEndNoteNEQ applies the NEQ predicate on the "validity_end_note" field.
func ValidityEndNoteNEQ(v string) predicate.Fact {
	return predicate.Fact(sql.FieldNEQ(FieldValidityEndNote, v))
}

// ValidityEndNoteIn applies the In predicate on the "validity_end_note" field.
func ValidityEndNoteIn(vs ...string) predicate.Fact {
	return predicate.Fact(sql.FieldIn(FieldValidityEndNote, vs...))
}

// ValidityEndNoteNotIn applies the NotIn predicate on the "validity_end_note" field.
func ValidityEndNoteNotIn(vs ...string) predicate.Fact {
	return predicate.Fact(sql.FieldNotIn(FieldValidityEndNote, vs...))
}

// ValidityEndNoteGT applies the GT predicate on the "validity_end_note" field.
func ValidityEndNoteGT(v string) predicate.Fact {
	return predicate.Fact(sql.FieldGT(FieldValidityEndNote, v))
}

// ValidityEndNoteGTE applies the GTE predicate on the "validity_end_note" field.
func ValidityEndNoteGTE(v string) predicate.Fact {
	return predicate.Fact(sql.FieldGTE(FieldValidityEndNote, v))
}

// ValidityEndNoteLT applies the LT predicate on the "validity_end_note" field.
func ValidityEndNoteLT(v string) predicate.Fact {
	return predicate.Fact(sql.FieldLT(FieldValidityEndNote, v))
}

// ValidityEndNoteLTE applies the LTE predicate on the "validity_end_note" field.
func ValidityEndNoteLTE(v string) predicate.Fact {
	return predicate.Fact(sql.FieldLTE(FieldValidityEndNote, v))
}

// ValidityEndNoteContains applies the Contains predicate on the "validity_end_note" field.
func ValidityEndNoteContains(v string) predicate.Fact {
	return predicate.Fact(sql.FieldContains(FieldValidityEndNote, v))
}

// ValidityEndNoteHasPrefix applies the HasPrefix predicate on the "validity_end_note" field.
func ValidityEndNoteHasPrefix(v string) predicate.Fact {
	return predicate.Fact(sql.FieldHasPrefix(FieldValidityEndNote, v))
}

// ValidityEndNoteHasSuffix applies the HasSuffix predicate on the "validity_end_note" field.
func ValidityEndNoteHasSuffix(v string) predicate.Fact {
	return predicate.Fact(sql.FieldHasSuffix(FieldValidityEndNote, v))
}

// ValidityEndNoteIsNil applies the IsNil predicate on the "validity_end_note" field.
func ValidityEndNoteIsNil() predicate.Fact {
	return predicate.Fact(sql.FieldIsNull(FieldValidityEndNote))
}

// ValidityEndNoteNotNil applies the NotNil predicate on the "validity_end_note" field.
func ValidityEndNoteNotNil() predicate.Fact {
	return predicate.Fact(sql.FieldNotNull(FieldValidityEndNote))
}

// ValidityEndNoteEqualFold applies the EqualFold predicate on the "validity_end_note" field.
func ValidityEndNoteEqualFold(v string) predicate.Fact {
	return predicate.Fact(sql.FieldEqualFold(FieldValidityEndNote, v))
}

// ValidityEndNoteContainsFold applies the ContainsFold predicate on the "validity_end_note" field.
func ValidityEndNoteContainsFold(v string) predicate.Fact {
	return predicate.Fact(sql.FieldContainsFold(FieldValidityEndNote, v))
}

// ValidityStartEQ applies the EQ predicate on the "validity_start" field.
func ValidityStartEQ(v time.Time) predicate.Fact {
	return predicate.Fact(sql.FieldEQ(FieldValidityStart, v))
}

// ValidityStartNEQ applies the NEQ predicate on the "validity_start" field.
func ValidityStartNEQ(v time.Time) predicate.Fact {
	return predicate.Fact(sql.FieldNEQ(FieldValidityStart, v))
}

// ValidityStartIn applies the In predicate on the "validity_start" field.
func ValidityStartIn(vs ...time.Time) predicate.Fact {
	return predicate.Fact(sql.FieldIn(FieldValidityStart, vs...))
}

// ValidityStartNotIn applies the NotIn predicate on the "validity_start" field.
func ValidityStartNotIn(vs ...time.Time) predicate.Fact {
	return predicate.Fact(sql.FieldNotIn(FieldValidityStart, vs...))
}

// ValidityStartGT applies the GT predicate on the "validity_start" field.
func ValidityStartGT(v time.Time) predicate.Fact {
	return predicate.Fact(sql.FieldGT(FieldValidityStart, v))
}

// ValidityStartGTE applies the GTE predicate on the "validity_start" field.
func ValidityStartGTE(v time.Time) predicate.Fact {
	return predicate.Fact(sql.FieldGTE(FieldValidityStart, v))
}

// ValidityStartLT applies the LT predicate on the "validity_start" field.
func ValidityStartLT(v time.Time) predicate.Fact {
	return predicate.Fact(sql.FieldLT(FieldValidityStart, v))
}

// ValidityStartLTE applies the LTE predicate on the "validity_start" field.
func ValidityStartLTE(v time.Time) predicate.Fact {
	return predicate.Fact(sql.FieldLTE(FieldValidityStart, v))
}

// ValidityStartIsNil applies the IsNil predicate on the "validity_start" field.
func ValidityStartIsNil() predicate.Fact {
	return predicate.Fact(sql.FieldIsNull(FieldValidityStart))
}

// ValidityStartNotNil applies the NotNil predicate on the "validity_start" field.
func ValidityStartNotNil() predicate.Fact {
	return predicate.Fact(sql.FieldNotNull(FieldValidityStart))
}

// ValidityEndEQ applies the EQ predicate on the "validity_end" field.
func ValidityEndEQ(v time.Time) predicate.Fact {
	return predicate.Fact(sql.FieldEQ(FieldValidityEnd, v))
}

// ValidityEndNEQ applies the NEQ predicate on the "validity_end" field.
func ValidityEndNEQ(v time.Time) predicate.Fact {
	return predicate.Fact(sql.FieldNEQ(FieldValidityEnd, v))
}

// ValidityEndIn applies the In predicate on the "validity_end" field.
func ValidityEndIn(vs ...time.Time) predicate.Fact {
	return predicate.Fact(sql.FieldIn(FieldValidityEnd, vs...))
}

// ValidityEndNotIn applies the NotIn predicate on the "validity_end" field.
func ValidityEndNotIn(vs ...time.Time) predicate.Fact {
	return predicate.Fact(sql.FieldNotIn(FieldValidityEnd, vs...))
}

// ValidityEndGT applies the GT predicate on the "validity_end" field.
func ValidityEndGT(v time.Time) predicate.Fact {
	return predicate.Fact(sql.FieldGT(FieldValidityEnd, v))
}

// ValidityEndGTE applies the GTE predicate on the "validity_end" field.
func ValidityEndGTE(v time.Time) predicate.Fact {
	return predicate.Fact(sql.FieldGTE(FieldValidityEnd, v))
}

// ValidityEndLT applies the LT predicate on the "validity_end" field.
func ValidityEndLT(v time.Time) predicate.Fact {
	return predicate.Fact(sql.FieldLT(FieldValidityEnd, v))
}

// ValidityEndLTE applies the LTE predicate on the "validity_end" field.
func ValidityEndLTE(v time.Time) predicate.Fact {
	return predicate.Fact(sql.FieldLTE(FieldValidityEnd, v))
}

// ValidityEndIsNil applies the IsNil predicate on the "validity_end" field.
func ValidityEndIsNil() predicate.Fact {
	return predicate.Fact(sql.FieldIsNull(FieldValidityEnd))
}

// ValidityEndNotNil applies the NotNil predicate on the "validity_end" field.
func ValidityEndNotNil() predicate.Fact {
	return predicate.Fact(sql.FieldNotNull(FieldValidityEnd))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Fact {
	return predicate.Fact(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Fact {
	return predicate.Fact(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Fact {
	return predicate.Fact(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Fact {
	return predicate.Fact(sql.FieldNotIn(FieldStatus, vs...))
}

// VerifiedAtEQ applies the EQ predicate on the "verified_at" field.
func VerifiedAtEQ(v time.Time) predicate.Fact {
	return predicate.Fact(sql.FieldEQ(FieldVerifiedAt, v))
}

// VerifiedAtNEQ applies the NEQ predicate on the "verified_at" field.
func VerifiedAtNEQ(v time.Time) predicate.Fact {
	return predicate.Fact(sql.FieldNEQ(FieldVerifiedAt, v))
}

// VerifiedAtIn applies the In predicate on the "verified_at" field.
func VerifiedAtIn(vs ...time.Time) predicate.Fact {
	return predicate.Fact(sql.FieldIn(FieldVerifiedAt, vs...))
}

// VerifiedAtNotIn applies the NotIn predicate on the "verified_at" field.
func VerifiedAtNotIn(vs ...time.Time) predicate.Fact {
	return predicate.Fact(sql.FieldNotIn(FieldVerifiedAt, vs...))
}

// VerifiedAtGT applies the GT predicate on the "verified_at" field.
func VerifiedAtGT(v time.Time) predicate.Fact {
	return predicate.Fact(sql.FieldGT(FieldVerifiedAt, v))
}

// VerifiedAtGTE applies the GTE predicate on the "verified_at" field.
func VerifiedAtGTE(v time.Time) predicate.Fact {
	return predicate.Fact(sql.FieldGTE(FieldVerifiedAt, v))
}

// VerifiedAtLT applies the LT predicate on the "verified_at" field.
func VerifiedAtLT(v time.Time) predicate.Fact {
	return predicate.Fact(sql.FieldLT(FieldVerifiedAt, v))
}

// VerifiedAtLTE applies the LTE predicate on the "verified_at" field.
func VerifiedAtLTE(v time.Time) predicate.Fact {
	return predicate.Fact(sql.FieldLTE(FieldVerifiedAt, v))
}

// VerifiedAtIsNil applies the IsNil predicate on the "verified_at" field.
func VerifiedAtIsNil() predicate.Fact {
	return predicate.Fact(sql.FieldIsNull(FieldVerifiedAt))
}

// VerifiedAtNotNil applies the NotNil predicate on the "verified_at" field.
func VerifiedAtNotNil() predicate.Fact {
	return predicate.Fact(sql.FieldNotNull(FieldVerifiedAt))
}

// VerificationEvidenceEQ applies the EQ predicate on the "verification_evidence" field.
func VerificationEvidenceEQ(v string) predicate.Fact {
	return predicate.Fact(sql.FieldEQ(FieldVerificationEvidence, v))
}

// VerificationEvidenceNEQ applies the NEQ predicate on the "verification_evidence" field.
func VerificationEvidenceNEQ(v string) predicate.Fact {
	return predicate.Fact(sql.FieldNEQ(FieldVerificationEvidence, v))
}

// VerificationEvidenceIn applies the In predicate on the "verification_evidence" field.
func VerificationEvidenceIn(vs ...string) predicate.Fact {
	return predicate.Fact(sql.FieldIn(FieldVerificationEvidence, vs...))
}

// VerificationEvidenceNotIn applies the NotIn predicate on the "verification_evidence" field.
func VerificationEvidenceNotIn(vs ...string) predicate.Fact {
	return predicate.Fact(sql.FieldNotIn(FieldVerificationEvidence, vs...))
}

// VerificationEvidenceGT applies the GT predicate on the "verification_evidence" field.
func VerificationEvidenceGT(v string) predicate.Fact {
	return predicate.Fact(sql.FieldGT(FieldVerificationEvidence, v))
}

// VerificationEvidenceGTE applies the GTE predicate on the "verification_evidence" field.
func VerificationEvidenceGTE(v string) predicate.Fact {
	return predicate.Fact(sql.FieldGTE(FieldVerificationEvidence, v))
}

// VerificationEvidenceLT applies the LT predicate on the "verification_evidence" field.
func VerificationEvidenceLT(v string) predicate.Fact {
	return predicate.Fact(sql.FieldLT(FieldVerificationEvidence, v))
}

// VerificationEvidenceLTE applies the LTE predicate on the "verification_evidence" field.
func VerificationEvidenceLTE(v string) predicate.Fact {
	return predicate.Fact(sql.FieldLTE(FieldVerificationEvidence, v))
}

// VerificationEvidenceContains applies the Contains predicate on the "verification_evidence" field.
func VerificationEvidenceContains(v string) predicate.Fact {
	return predicate.Fact(sql.FieldContains(FieldVerificationEvidence, v))
}

// VerificationEvidenceHasPrefix applies the HasPrefix predicate on the "verification_evidence" field.
func VerificationEvidenceHasPrefix(v string) predicate.Fact {
	return predicate.Fact(sql.FieldHasPrefix(FieldVerificationEvidence, v))
}

// VerificationEvidenceHasSuffix applies the HasSuffix predicate on the "verification_evidence" field.
func VerificationEvidenceHasSuffix(v string) predicate.Fact {
	return predicate.Fact(sql.FieldHasSuffix(FieldVerificationEvidence, v))
}

// VerificationEvidenceIsNil applies the IsNil predicate on the "verification_evidence" field.
func VerificationEvidenceIsNil() predicate.Fact {
	return predicate.Fact(sql.FieldIsNull(FieldVerificationEvidence))
}

// VerificationEvidenceNotNil applies the NotNil predicate on the "verification_evidence" field.
func VerificationEvidenceNotNil() predicate.Fact {
	return predicate.Fact(sql.FieldNotNull(FieldVerificationEvidence))
}

// VerificationEvidenceEqualFold applies the EqualFold predicate on the "verification_evidence" field.
func VerificationEvidenceEqualFold(v string) predicate.Fact {
	return predicate.Fact(sql.FieldEqualFold(FieldVerificationEvidence, v))
}

// VerificationEvidenceContainsFold applies the ContainsFold predicate on the "verification_evidence" field.
func VerificationEvidenceContainsFold(v string) predicate.Fact {
	return predicate.Fact(sql.FieldContainsFold(FieldVerificationEvidence, v))
}

// VerifiedSourceOrgEQ applies the EQ predicate on the "verified_source_org" field.
func VerifiedSourceOrgEQ(v string) predicate.Fact {
	return predicate.Fact(sql.FieldEQ(FieldVerifiedSourceOrg, v))
}

// VerifiedSourceOrgNEQ applies the NEQ predicate on the "verified_source_org" field.
func VerifiedSourceOrgNEQ(v string) predicate.Fact {
	return predicate.Fact(sql.FieldNEQ(FieldVerifiedSourceOrg, v))
}

// VerifiedSourceOrgIn applies the In predicate on the "verified_source_org" field.
func VerifiedSourceOrgIn(vs ...string) predicate.Fact {
	return predicate.Fact(sql.FieldIn(FieldVerifiedSourceOrg, vs...))
}

// VerifiedSourceOrgNotIn applies the NotIn predicate on the "verified_source_org" field.
func VerifiedSourceOrgNotIn(vs ...string) predicate.Fact {
	return predicate.Fact(sql.FieldNotIn(FieldVerifiedSourceOrg, vs...))
}

// VerifiedSourceOrgGT applies the GT predicate on the "verified_source_org" field.
func VerifiedSourceOrgGT(v string) predicate.Fact {
	return predicate.Fact(sql.FieldGT(FieldVerifiedSourceOrg, v))
}

// VerifiedSourceOrgGTE applies the GTE predicate on the "verified_source_org" field.
func VerifiedSourceOrgGTE(v string) predicate.Fact {
	return predicate.Fact(sql.FieldGTE(FieldVerifiedSourceOrg, v))
}

// VerifiedSourceOrgLT applies the LT predicate on the "verified_source_org" field.
func VerifiedSourceOrgLT(v string) predicate.Fact {
	return predicate.Fact(sql.FieldLT(FieldVerifiedSourceOrg, v))
}

// VerifiedSourceOrgLTE applies the LTE predicate on the "verified_source_org" field.
func VerifiedSourceOrgLTE(v string) predicate.Fact {
	return predicate.Fact(sql.FieldLTE(FieldVerifiedSourceOrg, v))
}

// VerifiedSourceOrgContains applies the Contains predicate on the "verified_source_org" field.
func VerifiedSourceOrgContains(v string) predicate.Fact {
	return predicate.Fact(sql.FieldContains(FieldVerifiedSourceOrg, v))
}

// VerifiedSourceOrgHasPrefix applies the HasPrefix predicate on the "verified_source_org" field.
func VerifiedSourceOrgHasPrefix(v string) predicate.Fact {
	return predicate.Fact(sql.FieldHasPrefix(FieldVerifiedSourceOrg, v))
}

// VerifiedSourceOrgHasSuffix applies the HasSuffix predicate on the "verified_source_org" field.
func VerifiedSourceOrgHasSuffix(v string) predicate.Fact {
	return predicate.Fact(sql.FieldHasSuffix(FieldVerifiedSourceOrg, v))
}

// VerifiedSourceOrgIsNil applies the IsNil predicate on the "verified_source_org" field.
func VerifiedSourceOrgIsNil() predicate.Fact {
	return predicate.Fact(sql.FieldIsNull(FieldVerifiedSourceOrg))
}

// VerifiedSourceOrgNotNil applies the NotNil predicate on the "verified_source_org" field.
func VerifiedSourceOrgNotNil() predicate.Fact {
	return predicate.Fact(sql.FieldNotNull(FieldVerifiedSourceOrg))
}

// VerifiedSourceOrgEqualFold applies the EqualFold predicate on the "verified_source_org" field.
func VerifiedSourceOrgEqualFold(v string) predicate.Fact {
	return predicate.Fact(sql.FieldEqualFold(FieldVerifiedSourceOrg, v))
}

// VerifiedSourceOrgContainsFold applies the ContainsFold predicate on the "verified_source_org" field.
func VerifiedSourceOrgContainsFold(v string) predicate.Fact {
	return predicate.Fact(sql.FieldContainsFold(FieldVerifiedSourceOrg, v))
}

// VerifiedSourceURLEQ applies the EQ predicate on the "verified_source_url" field.
func VerifiedSourceURLEQ(v string) predicate.Fact {
	return predicate.Fact(sql.FieldEQ(FieldVerifiedSourceURL, v))
}

// VerifiedSourceURLNEQ applies the NEQ predicate on the "verified_source_url" field.
func VerifiedSourceURLNEQ(v string) predicate.Fact {
	return predicate.Fact(sql.FieldNEQ(FieldVerifiedSourceURL, v))
}

// VerifiedSourceURLIn applies the In predicate on the "verified_source_url" field.
func VerifiedSourceURLIn(vs ...string) predicate.Fact {
	return predicate.Fact(sql.FieldIn(FieldVerifiedSourceURL, vs...))
}

// VerifiedSourceURLNotIn applies the NotIn predicate on the "verified_source_url" field.
func VerifiedSourceURLNotIn(vs ...string) predicate.Fact {
	return predicate.Fact(sql.FieldNotIn(FieldVerifiedSourceURL, vs...))
}

// VerifiedSourceURLGT applies the GT predicate on the "verified_source_url" field.
func VerifiedSourceURLGT(v string) predicate.Fact {
	return predicate.Fact(sql.FieldGT(FieldVerifiedSourceURL, v))
}

// VerifiedSourceURLGTE applies the GTE predicate on the "verified_source_url" field.
func VerifiedSourceURLGTE(v string) predicate.Fact {
	return predicate.Fact(sql.FieldGTE(FieldVerifiedSourceURL, v))
}

// VerifiedSourceURLLT applies the LT predicate on the "verified_source_url" field.
func VerifiedSourceURLLT(v string) predicate.Fact {
	return predicate.Fact(sql.FieldLT(FieldVerifiedSourceURL, v))
}

// VerifiedSourceURLLTE applies the LTE predicate on the "verified_source_url" field.
func VerifiedSourceURLLTE(v string) predicate.Fact {
	return predicate.Fact(sql.FieldLTE(FieldVerifiedSourceURL, v))
}

// VerifiedSourceURLContains applies the Contains predicate on the "verified_source_url" field.
func VerifiedSourceURLContains(v string) predicate.Fact {
	return predicate.Fact(sql.FieldContains(FieldVerifiedSourceURL, v))
}

// VerifiedSourceURLHasPrefix applies the HasPrefix predicate on the "verified_source_url" field.
func VerifiedSourceURLHasPrefix(v string) predicate.Fact {
	return predicate.Fact(sql.FieldHasPrefix(FieldVerifiedSourceURL, v))
}

// VerifiedSourceURLHasSuffix applies the HasSuffix predicate on the "verified_source_url" field.
func VerifiedSourceURLHasSuffix(v string) predicate.Fact {
	return predicate.Fact(sql.FieldHasSuffix(FieldVerifiedSourceURL, v))
}

// VerifiedSourceURLIsNil applies the IsNil predicate on the "verified_source_url" field.
func VerifiedSourceURLIsNil() predicate.Fact {
	return predicate.Fact(sql.FieldIsNull(FieldVerifiedSourceURL))
}

// VerifiedSourceURLNotNil applies the NotNil predicate on the "verified_source_url" field.
func VerifiedSourceURLNotNil() predicate.Fact {
	return predicate.Fact(sql.FieldNotNull(FieldVerifiedSourceURL))
}

// VerifiedSourceURLEqualFold applies the EqualFold predicate on the "verified_source_url" field.
func VerifiedSourceURLEqualFold(v string) predicate.Fact {
	return predicate.Fact(sql.FieldEqualFold(FieldVerifiedSourceURL, v))
}

// VerifiedSourceURLContainsFold applies the ContainsFold predicate on the "verified_source_url" field.
func VerifiedSourceURLContainsFold(v string) predicate.Fact {
	return predicate.Fact(sql.FieldContainsFold(FieldVerifiedSourceURL, v))
}

// VerifiedSourceDataEQ applies the EQ predicate on the "verified_source_data" field.
func VerifiedSourceDataEQ(v string) predicate.Fact {
	return predicate.Fact(sql.FieldEQ(FieldVerifiedSourceData, v))
}

// VerifiedSourceDataNEQ applies the NEQ predicate on the "verified_source_data" field.
func VerifiedSourceDataNEQ(v string) predicate.Fact {
	return predicate.Fact(sql.FieldNEQ(FieldVerifiedSourceData, v))
}

// VerifiedSourceDataIn applies the In predicate on the "verified_source_data" field.
func VerifiedSourceDataIn(vs ...string) predicate.Fact {
	return predicate.Fact(sql.FieldIn(FieldVerifiedSourceData, vs...))
}

// VerifiedSourceDataNotIn applies the NotIn predicate on the "verified_source_data" field.
func VerifiedSourceDataNotIn(vs ...string) predicate.Fact {
	return predicate.Fact(sql.FieldNotIn(FieldVerifiedSourceData, vs...))
}

// VerifiedSourceDataGT applies the GT predicate on the "verified_source_data" field.
func VerifiedSourceDataGT(v string) predicate.Fact {
	return predicate.Fact(sql.FieldGT(FieldVerifiedSourceData, v))
}

// VerifiedSourceDataGTE applies the GTE predicate on the "verified_source_data" field.
func VerifiedSourceDataGTE(v string) predicate.Fact {
	return predicate.Fact(sql.FieldGTE(FieldVerifiedSourceData, v))
}

// VerifiedSourceDataLT applies the LT predicate on the "verified_source_data" field.
func VerifiedSourceDataLT(v string) predicate.Fact {
	return predicate.Fact(sql.FieldLT(FieldVerifiedSourceData, v))
}

// VerifiedSourceDataLTE applies the LTE predicate on the "verified_source_data" field.
func VerifiedSourceDataLTE(v string) predicate.Fact {
	return predicate.Fact(sql.FieldLTE(FieldVerifiedSourceData, v))
}

// VerifiedSourceDataContains applies the Contains predicate on the "verified_source_data" field.
func VerifiedSourceDataContains(v string) predicate.Fact {
	return predicate.Fact(sql.FieldContains(FieldVerifiedSourceData, v))
}

// VerifiedSourceDataHasPrefix applies the HasPrefix predicate on the "verified_source_data" field.
func VerifiedSourceDataHasPrefix(v string) predicate.Fact {
	return predicate.Fact(sql.FieldHasPrefix(FieldVerifiedSourceData, v))
}

// VerifiedSourceDataHasSuffix applies the HasSuffix predicate on the "verified_source_data" field.
func VerifiedSourceDataHasSuffix(v string) predicate.Fact {
	return predicate.Fact(sql.FieldHasSuffix(FieldVerifiedSourceData, v))
}

// VerifiedSourceDataIsNil applies the IsNil predicate on the "verified_source_data" field.
func VerifiedSourceDataIsNil() predicate.Fact {
	return predicate.Fact(sql.FieldIsNull(FieldVerifiedSourceData))
}

// VerifiedSourceDataNotNil applies the NotNil predicate on the "verified_source_data" field.
func VerifiedSourceDataNotNil() predicate.Fact {
	return predicate.Fact(sql.FieldNotNull(FieldVerifiedSourceData))
}

// VerifiedSourceDataEqualFold applies the EqualFold predicate on the "verified_source_data" field.
func VerifiedSourceDataEqualFold(v string) predicate.Fact {
	return predicate.Fact(sql.FieldEqualFold(FieldVerifiedSourceData, v))
}

// VerifiedSourceDataContainsFold applies the ContainsFold predicate on the "verified_source_data" field.
func VerifiedSourceDataContainsFold(v string) predicate.Fact {
	return predicate.Fact(sql.FieldContainsFold(FieldVerifiedSourceData, v))
}

// RawPostIDEQ applies the EQ predicate on the "raw_post_id" field.
func RawPostIDEQ(v int) predicate.Fact {
	return predicate.Fact(sql.FieldEQ(FieldRawPostID, v))
}

// RawPostIDNEQ applies the NEQ predicate on the "raw_post_id" field.
func RawPostIDNEQ(v int) predicate.Fact {
	return predicate.Fact(sql.FieldNEQ(FieldRawPostID, v))
}

// RawPostIDIn applies the In predicate on the "raw_post_id" field.
func RawPostIDIn(vs ...int) predicate.Fact {
	return predicate.Fact(sql.FieldIn(FieldRawPostID, vs...))
}

// RawPostIDNotIn applies the NotIn predicate on the "raw_post_id" field.
func RawPostIDNotIn(vs ...int) predicate.Fact {
	return predicate.Fact(sql.FieldNotIn(FieldRawPostID, vs...))
}

// RawPostIDIsNil applies the IsNil predicate on the "raw_post_id" field.
func RawPostIDIsNil() predicate.Fact {
	return predicate.Fact(sql.FieldIsNull(FieldRawPostID))
}

// RawPostIDNotNil applies the NotNil predicate on the "raw_post_id" field.
func RawPostIDNotNil() predicate.Fact {
	return predicate.Fact(sql.FieldNotNull(FieldRawPostID))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Fact {
	return predicate.Fact(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Fact {
	return predicate.Fact(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Fact {
	return predicate.Fact(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Fact {
	return predicate.Fact(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Fact {
	return predicate.Fact(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Fact {
	return predicate.Fact(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Fact {
	return predicate.Fact(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Fact {
	return predicate.Fact(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRawPost applies the HasEdge predicate on the "raw_post" edge.
func HasRawPost() predicate.Fact {
	return predicate.Fact(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RawPostTable, RawPostColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRawPostWith applies the HasEdge predicate on the "raw_post" edge with a given conditions (other predicates).
func HasRawPostWith(preds ...predicate.RawPost) predicate.Fact {
	return predicate.Fact(func(s *sql.Selector) {
		step := newRawPostStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReferences applies the HasEdge predicate on the "references" edge.
func HasReferences() predicate.Fact {
	return predicate.Fact(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ReferencesTable, ReferencesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReferencesWith applies the HasEdge predicate on the "references" edge with a given conditions (other predicates).
func HasReferencesWith(preds ...predicate.VerificationReference) predicate.Fact {
	return predicate.Fact(func(s *sql.Selector) {
		step := newReferencesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvaluations applies the HasEdge predicate on the "evaluations" edge.
func HasEvaluations() predicate.Fact {
	return predicate.Fact(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EvaluationsTable, EvaluationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEvaluationsWith applies the HasEdge predicate on the "evaluations" edge with a given conditions (other predicates).
func HasEvaluationsWith(preds ...predicate.FactEvaluation) predicate.Fact {
	return predicate.Fact(func(s *sql.Selector) {
		step := newEvaluationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Fact) predicate.Fact {
	return predicate.Fact(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Fact) predicate.Fact {
	return predicate.Fact(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Fact) predicate.Fact {
	return predicate.Fact(sql.NotPredicates(p))
}

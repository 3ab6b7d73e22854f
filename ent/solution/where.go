// Code generated by ent, DO NOT EDIT.

package solution

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/credlens/pundit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldID, id))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v int) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldTopicID, v))
}

// AuthorID applies equality check predicate on the "author_id" field. It's identical to AuthorIDEQ.
func AuthorID(v int) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldAuthorID, v))
}

// Claim applies equality check predicate on the "claim" field. It's identical to ClaimEQ.
func Claim(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldClaim, v))
}

// CanonicalClaim applies equality check predicate on the "canonical_claim" field. It's identical to CanonicalClaimEQ.
func CanonicalClaim(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldCanonicalClaim, v))
}

// ActionTarget applies equality check predicate on the "action_target" field. It's identical to ActionTargetEQ.
func ActionTarget(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldActionTarget, v))
}

// ActionRationale applies equality check predicate on the "action_rationale" field. It's identical to ActionRationaleEQ.
func ActionRationale(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldActionRationale, v))
}

// SimulatedActionNote applies equality check predicate on the "simulated_action_note" field. It's identical to SimulatedActionNoteEQ.
func SimulatedActionNote(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldSimulatedActionNote, v))
}

// MonitoringSourceOrg applies equality check predicate on the "monitoring_source_org" field. It's identical to MonitoringSourceOrgEQ.
func MonitoringSourceOrg(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldMonitoringSourceOrg, v))
}

// MonitoringSourceURL applies equality check predicate on the "monitoring_source_url" field. It's identical to MonitoringSourceURLEQ.
func MonitoringSourceURL(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldMonitoringSourceURL, v))
}

// MonitoringPeriodNote applies equality check predicate on the "monitoring_period_note" field. It's identical to MonitoringPeriodNoteEQ.
func MonitoringPeriodNote(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldMonitoringPeriodNote, v))
}

// MonitoringStart applies equality check predicate on the "monitoring_start" field. It's identical to MonitoringStartEQ.
func MonitoringStart(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldMonitoringStart, v))
}

// MonitoringEnd applies equality check predicate on the "monitoring_end" field. It's identical to MonitoringEndEQ.
func MonitoringEnd(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldMonitoringEnd, v))
}

// SourceURL applies equality check predicate on the "source_url" field. It's identical to SourceURLEQ.
func SourceURL(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldSourceURL, v))
}

// SourcePlatform applies equality check predicate on the "source_platform" field. It's identical to SourcePlatformEQ.
func SourcePlatform(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldSourcePlatform, v))
}

// PostedAt applies equality check predicate on the "posted_at" field. It's identical to PostedAtEQ.
func PostedAt(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldPostedAt, v))
}

// CollectedAt applies equality check predicate on the "collected_at" field. It's identical to CollectedAtEQ.
func CollectedAt(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldCollectedAt, v))
}

// RawExtraction applies equality check predicate on the "raw_extraction" field. It's identical to RawExtractionEQ.
func RawExtraction(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldRawExtraction, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v int) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v int) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...int) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...int) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDIsNil applies the IsNil predicate on the "topic_id" field.
func TopicIDIsNil() predicate.Solution {
	return predicate.Solution(sql.FieldIsNull(FieldTopicID))
}

// TopicIDNotNil applies the NotNil predicate on the "topic_id" field.
func TopicIDNotNil() predicate.Solution {
	return predicate.Solution(sql.FieldNotNull(FieldTopicID))
}

// AuthorIDEQ applies the EQ predicate on the "author_id" field.
func AuthorIDEQ(v int) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldAuthorID, v))
}

// AuthorIDNEQ applies the NEQ predicate on the "author_id" field.
func AuthorIDNEQ(v int) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldAuthorID, v))
}

// AuthorIDIn applies the In predicate on the "author_id" field.
func AuthorIDIn(vs ...int) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldAuthorID, vs...))
}

// AuthorIDNotIn applies the NotIn predicate on the "author_id" field.
func AuthorIDNotIn(vs ...int) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldAuthorID, vs...))
}

// ClaimEQ applies the EQ predicate on the "claim" field.
func ClaimEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldClaim, v))
}

// ClaimNEQ applies the NEQ predicate on the "claim" field.
func ClaimNEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldClaim, v))
}

// ClaimIn applies the In predicate on the "claim" field.
func ClaimIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldClaim, vs...))
}

// ClaimNotIn applies the NotIn predicate on the "claim" field.
func ClaimNotIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldClaim, vs...))
}

// ClaimGT applies the GT predicate on the "claim" field.
func ClaimGT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldClaim, v))
}

// ClaimGTE applies the GTE predicate on the "claim" field.
func ClaimGTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldClaim, v))
}

// ClaimLT applies the LT predicate on the "claim" field.
func ClaimLT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldClaim, v))
}

// ClaimLTE applies the LTE predicate on the "claim" field.
func ClaimLTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldClaim, v))
}

// ClaimContains applies the Contains predicate on the "claim" field.
func ClaimContains(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContains(FieldClaim, v))
}

// ClaimHasPrefix applies the HasPrefix predicate on the "claim" field.
func ClaimHasPrefix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasPrefix(FieldClaim, v))
}

// ClaimHasSuffix applies the HasSuffix predicate on the "claim" field.
func ClaimHasSuffix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasSuffix(FieldClaim, v))
}

// ClaimEqualFold applies the EqualFold predicate on the "claim" field.
func ClaimEqualFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEqualFold(FieldClaim, v))
}

// ClaimContainsFold applies the ContainsFold predicate on the "claim" field.
func ClaimContainsFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContainsFold(FieldClaim, v))
}

// CanonicalClaimEQ applies the EQ predicate on the "canonical_claim" field.
func CanonicalClaimEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldCanonicalClaim, v))
}

// CanonicalClaimNEQ applies the NEQ predicate on the "canonical_claim" field.
func CanonicalClaimNEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldCanonicalClaim, v))
}

// CanonicalClaimIn applies the In predicate on the "canonical_claim" field.
func CanonicalClaimIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldCanonicalClaim, vs...))
}

// CanonicalClaimNotIn applies the NotIn predicate on the "canonical_claim" field.
func CanonicalClaimNotIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldCanonicalClaim, vs...))
}

// CanonicalClaimGT applies the GT predicate on the "canonical_claim" field.
func CanonicalClaimGT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldCanonicalClaim, v))
}

// CanonicalClaimGTE applies the GTE predicate on the "canonical_claim" field.
func CanonicalClaimGTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldCanonicalClaim, v))
}

// CanonicalClaimLT applies the LT predicate on the "canonical_claim" field.
func CanonicalClaimLT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldCanonicalClaim, v))
}

// CanonicalClaimLTE applies the LTE predicate on the "canonical_claim" field.
func CanonicalClaimLTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldCanonicalClaim, v))
}

// CanonicalClaimContains applies the Contains predicate on the "canonical_claim" field.
func CanonicalClaimContains(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContains(FieldCanonicalClaim, v))
}

// CanonicalClaimHasPrefix applies the HasPrefix predicate on the "canonical_claim" field.
func CanonicalClaimHasPrefix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasPrefix(FieldCanonicalClaim, v))
}

// CanonicalClaimHasSuffix applies the HasSuffix predicate on the "canonical_claim" field.
func CanonicalClaimHasSuffix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasSuffix(FieldCanonicalClaim, v))
}

// CanonicalClaimIsNil applies the IsNil predicate on the "canonical_claim" field.
func CanonicalClaimIsNil() predicate.Solution {
	return predicate.Solution(sql.FieldIsNull(FieldCanonicalClaim))
}

// CanonicalClaimNotNil applies the NotNil predicate on the "canonical_claim" field.
func CanonicalClaimNotNil() predicate.Solution {
	return predicate.Solution(sql.FieldNotNull(FieldCanonicalClaim))
}

// CanonicalClaimEqualFold applies the EqualFold predicate on the "canonical_claim" field.
func CanonicalClaimEqualFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEqualFold(FieldCanonicalClaim, v))
}

// CanonicalClaimContainsFold applies the ContainsFold predicate on the "canonical_claim" field.
func CanonicalClaimContainsFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContainsFold(FieldCanonicalClaim, v))
}

// ActionTypeEQ applies the EQ predicate on the "action_type" field.
func ActionTypeEQ(v ActionType) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldActionType, v))
}

// ActionTypeNEQ applies the NEQ predicate on the "action_type" field.
func ActionTypeNEQ(v ActionType) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldActionType, v))
}

// ActionTypeIn applies the In predicate on the "action_type" field.
func ActionTypeIn(vs ...ActionType) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldActionType, vs...))
}

// ActionTypeNotIn applies the NotIn predicate on the "action_type" field.
func ActionTypeNotIn(vs ...ActionType) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldActionType, vs...))
}

// ActionTypeIsNil applies the IsNil predicate on the "action_type" field.
func ActionTypeIsNil() predicate.Solution {
	return predicate.Solution(sql.FieldIsNull(FieldActionType))
}

// ActionTypeNotNil applies the NotNil predicate on the "action_type" field.
func ActionTypeNotNil() predicate.Solution {
	return predicate.Solution(sql.FieldNotNull(FieldActionType))
}

// ActionTargetEQ applies the EQ predicate on the "action_target" field.
func ActionTargetEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldActionTarget, v))
}

// ActionTargetNEQ applies the NEQ predicate on the "action_target" field.
func ActionTargetNEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldActionTarget, v))
}

// ActionTargetIn applies the In predicate on the "action_target" field.
func ActionTargetIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldActionTarget, vs...))
}

// ActionTargetNotIn applies the NotIn predicate on the "action_target" field.
func ActionTargetNotIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldActionTarget, vs...))
}

// ActionTargetGT applies the GT predicate on the "action_target" field.
func ActionTargetGT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldActionTarget, v))
}

// ActionTargetGTE applies the GTE predicate on the "action_target" field.
func ActionTargetGTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldActionTarget, v))
}

// ActionTargetLT applies the LT predicate on the "action_target" field.
func ActionTargetLT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldActionTarget, v))
}

// ActionTargetLTE applies the LTE predicate on the "action_target" field.
func ActionTargetLTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldActionTarget, v))
}

// ActionTargetContains applies the Contains predicate on the "action_target" field.
func ActionTargetContains(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContains(FieldActionTarget, v))
}

// ActionTargetHasPrefix applies the HasPrefix predicate on the "action_target" field.
func ActionTargetHasPrefix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasPrefix(FieldActionTarget, v))
}

// ActionTargetHasSuffix applies the HasSuffix predicate on the "action_target" field.
func ActionTargetHasSuffix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasSuffix(FieldActionTarget, v))
}

// ActionTargetIsNil applies the IsNil predicate on the "action_target" field.
func ActionTargetIsNil() predicate.Solution {
	return predicate.Solution(sql.FieldIsNull(FieldActionTarget))
}

// ActionTargetNotNil applies the NotNil predicate on the "action_target" field.
func ActionTargetNotNil() predicate.Solution {
	return predicate.Solution(sql.FieldNotNull(FieldActionTarget))
}

// ActionTargetEqualFold applies the EqualFold predicate on the "action_target" field.
func ActionTargetEqualFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEqualFold(FieldActionTarget, v))
}

// ActionTargetContainsFold applies the ContainsFold predicate on the "action_target" field.
func ActionTargetContainsFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContainsFold(FieldActionTarget, v))
}

// ActionRationaleEQ applies the EQ predicate on the "action_rationale" field.
func ActionRationaleEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldActionRationale, v))
}

// ActionRationaleNEQ applies the NEQ predicate on the "action_rationale" field.
func ActionRationaleNEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldActionRationale, v))
}

// ActionRationaleIn applies the In predicate on the "action_rationale" field.
func ActionRationaleIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldActionRationale, vs...))
}

// ActionRationaleNotIn applies the NotIn predicate on the "action_rationale" field.
func ActionRationaleNotIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldActionRationale, vs...))
}

// ActionRationaleGT applies the GT predicate on the "action_rationale" field.
func ActionRationaleGT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldActionRationale, v))
}

// ActionRationaleGTE applies the GTE predicate on the "action_rationale" field.
func ActionRationaleGTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldActionRationale, v))
}

// ActionRationaleLT applies the LT predicate on the "action_rationale" field.
func ActionRationaleLT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldActionRationale, v))
}

// ActionRationaleLTE applies the LTE predicate on the "action_rationale" field.
func ActionRationaleLTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldActionRationale, v))
}

// ActionRationaleContains applies the Contains predicate on the "action_rationale" field.
func ActionRationaleContains(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContains(FieldActionRationale, v))
}

// ActionRationaleHasPrefix applies the HasPrefix predicate on the "action_rationale" field.
func ActionRationaleHasPrefix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasPrefix(FieldActionRationale, v))
}

// ActionRationaleHasSuffix applies the HasSuffix predicate on the "action_rationale" field.
func ActionRationaleHasSuffix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasSuffix(FieldActionRationale, v))
}

// ActionRationaleIsNil applies the IsNil predicate on the "action_rationale" field.
func ActionRationaleIsNil() predicate.Solution {
	return predicate.Solution(sql.FieldIsNull(FieldActionRationale))
}

// ActionRationaleNotNil applies the NotNil predicate on the "action_rationale" field.
func ActionRationaleNotNil() predicate.Solution {
	return predicate.Solution(sql.FieldNotNull(FieldActionRationale))
}

// ActionRationaleEqualFold applies the EqualFold predicate on the "action_rationale" field.
func ActionRationaleEqualFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEqualFold(FieldActionRationale, v))
}

// ActionRationaleContainsFold applies the ContainsFold predicate on the "action_rationale" field.
func ActionRationaleContainsFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContainsFold(FieldActionRationale, v))
}

// SimulatedActionNoteEQ applies the EQ predicate on the "simulated_action_note" field.
func SimulatedActionNoteEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldSimulatedActionNote, v))
}

// SimulatedActionNoteNEQ applies the NEQ predicate on the "simulated_action_note" field.
func SimulatedActionNoteNEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldSimulatedActionNote, v))
}

// SimulatedActionNoteIn applies the In predicate on the "simulated_action_note" field.
func SimulatedActionNoteIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldSimulatedActionNote, vs...))
}

// SimulatedActionNoteNotIn applies the NotIn predicate on the "simulated_action_note" field.
func SimulatedActionNoteNotIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldSimulatedActionNote, vs...))
}

// SimulatedActionNoteGT applies the GT predicate on the "simulated_action_note" field.
func SimulatedActionNoteGT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldSimulatedActionNote, v))
}

// SimulatedActionNoteGTE applies the GTE predicate on the "simulated_action_note" field.
func SimulatedActionNoteGTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldSimulatedActionNote, v))
}

// SimulatedActionNoteLT applies the LT predicate on the "simulated_action_note" field.
func SimulatedActionNoteLT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldSimulatedActionNote, v))
}

// SimulatedActionNoteLTE applies the LTE predicate on the "simulated_action_note" field.
func SimulatedActionNoteLTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldSimulatedActionNote, v))
}

// SimulatedActionNoteContains applies the Contains predicate on the "simulated_action_note" field.
func SimulatedActionNoteContains(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContains(FieldSimulatedActionNote, v))
}

// SimulatedActionNoteHasPrefix applies the HasPrefix predicate on the "simulated_action_note" field.
func SimulatedActionNoteHasPrefix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasPrefix(FieldSimulatedActionNote, v))
}

// SimulatedActionNoteHasSuffix applies the HasSuffix predicate on the "simulated_action_note" field.
func SimulatedActionNoteHasSuffix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasSuffix(FieldSimulatedActionNote, v))
}

// SimulatedActionNoteIsNil applies the IsNil predicate on the "simulated_action_note" field.
func SimulatedActionNoteIsNil() predicate.Solution {
	return predicate.Solution(sql.FieldIsNull(FieldSimulatedActionNote))
}

// SimulatedActionNoteNotNil applies the NotNil predicate on the "simulated_action_note" field.
func SimulatedActionNoteNotNil() predicate.Solution {
	return predicate.Solution(sql.FieldNotNull(FieldSimulatedActionNote))
}

// SimulatedActionNoteEqualFold applies the EqualFold predicate on the "simulated_action_note" field.
func SimulatedActionNoteEqualFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEqualFold(FieldSimulatedActionNote, v))
}

// SimulatedActionNoteContainsFold applies the ContainsFold predicate on the "simulated_action_note" field.
func SimulatedActionNoteContainsFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContainsFold(FieldSimulatedActionNote, v))
}

// MonitoringSourceOrgEQ applies the EQ predicate on the "monitoring_source_org" field.
func MonitoringSourceOrgEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldMonitoringSourceOrg, v))
}

// MonitoringSourceOrgNEQ applies the NEQ predicate on the "monitoring_source_org" field.
func MonitoringSourceOrgNEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldMonitoringSourceOrg, v))
}

// MonitoringSourceOrgIn applies the In predicate on the "monitoring_source_org" field.
func MonitoringSourceOrgIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldMonitoringSourceOrg, vs...))
}

// MonitoringSourceOrgNotIn applies the NotIn predicate on the "monitoring_source_org" field.
func MonitoringSourceOrgNotIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldMonitoringSourceOrg, vs...))
}

// MonitoringSourceOrgGT applies the GT predicate on the "monitoring_source_org" field.
func MonitoringSourceOrgGT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldMonitoringSourceOrg, v))
}

// MonitoringSourceOrgGTE applies the GTE predicate on the "monitoring_source_org" field.
func MonitoringSourceOrgGTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldMonitoringSourceOrg, v))
}

// MonitoringSourceOrgLT applies the LT predicate on the "monitoring_source_org" field.
func MonitoringSourceOrgLT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldMonitoringSourceOrg, v))
}

// MonitoringSourceOrgLTE applies the LTE predicate on the "monitoring_source_org" field.
func MonitoringSourceOrgLTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldMonitoringSourceOrg, v))
}

// MonitoringSourceOrgContains applies the Contains predicate on the "monitoring_source_org" field.
func MonitoringSourceOrgContains(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContains(FieldMonitoringSourceOrg, v))
}

// MonitoringSourceOrgHasPrefix applies the HasPrefix predicate on the "monitoring_source_org" field.
func MonitoringSourceOrgHasPrefix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasPrefix(FieldMonitoringSourceOrg, v))
}

// MonitoringSourceOrgHasSuffix applies the HasSuffix predicate on the "monitoring_source_org" field.
func MonitoringSourceOrgHasSuffix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasSuffix(FieldMonitoringSourceOrg, v))
}

// MonitoringSourceOrgIsNil applies the IsNil predicate on the "monitoring_source_org" field.
func MonitoringSourceOrgIsNil() predicate.Solution {
	return predicate.Solution(sql.FieldIsNull(FieldMonitoringSourceOrg))
}

// MonitoringSourceOrgNotNil applies the NotNil predicate on the "monitoring_source_org" field.
func MonitoringSourceOrgNotNil() predicate.Solution {
	return predicate.Solution(sql.FieldNotNull(FieldMonitoringSourceOrg))
}

// MonitoringSourceOrgEqualFold applies the EqualFold predicate on the "monitoring_source_org" field.
func MonitoringSourceOrgEqualFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEqualFold(FieldMonitoringSourceOrg, v))
}

// MonitoringSourceOrgContainsFold applies the ContainsFold predicate on the "monitoring_source_org" field.
func MonitoringSourceOrgContainsFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContainsFold(FieldMonitoringSourceOrg, v))
}

// MonitoringSourceURLEQ applies the EQ predicate on the "monitoring_source_url" field.
func MonitoringSourceURLEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldMonitoringSourceURL, v))
}

// MonitoringSourceURLNEQ applies the NEQ predicate on the "monitoring_source_url" field.
func MonitoringSourceURLNEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldMonitoringSourceURL, v))
}

// MonitoringSourceURLIn applies the In predicate on the "monitoring_source_url" field.
func MonitoringSourceURLIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldMonitoringSourceURL, vs...))
}

// MonitoringSourceURLNotIn applies the NotIn predicate on the "monitoring_source_url" field.
func MonitoringSourceURLNotIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldMonitoringSourceURL, vs...))
}

// MonitoringSourceURLGT applies the GT predicate on the "monitoring_source_url" field.
func MonitoringSourceURLGT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldMonitoringSourceURL, v))
}

// MonitoringSourceURLGTE applies the GTE predicate on the "monitoring_source_url" field.
func MonitoringSourceURLGTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldMonitoringSourceURL, v))
}

// MonitoringSourceURLLT applies the LT predicate on the "monitoring_source_url" field.
func MonitoringSourceURLLT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldMonitoringSourceURL, v))
}

// MonitoringSourceURLLTE applies the LTE predicate on the "monitoring_source_url" field.
func MonitoringSourceURLLTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldMonitoringSourceURL, v))
}

// MonitoringSourceURLContains applies the Contains predicate on the "monitoring_source_url" field.
func MonitoringSourceURLContains(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContains(FieldMonitoringSourceURL, v))
}

// MonitoringSourceURLHasPrefix applies the HasPrefix predicate on the "monitoring_source_url" field.
func MonitoringSourceURLHasPrefix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasPrefix(FieldMonitoringSourceURL, v))
}

// MonitoringSourceURLHasSuffix applies the HasSuffix predicate on the "monitoring_source_url" field.
func MonitoringSourceURLHasSuffix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasSuffix(FieldMonitoringSourceURL, v))
}

// MonitoringSourceURLIsNil applies the IsNil predicate on the "monitoring_source_url" field.
func MonitoringSourceURLIsNil() predicate.Solution {
	return predicate.Solution(sql.FieldIsNull(FieldMonitoringSourceURL))
}

// MonitoringSourceURLNotNil applies the NotNil predicate on the "monitoring_source_url" field.
func MonitoringSourceURLNotNil() predicate.Solution {
	return predicate.Solution(sql.FieldNotNull(FieldMonitoringSourceURL))
}

// MonitoringSourceURLEqualFold applies the EqualFold predicate on the "monitoring_source_url" field.
func MonitoringSourceURLEqualFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEqualFold(FieldMonitoringSourceURL, v))
}

// MonitoringSourceURLContainsFold applies the ContainsFold predicate on the "monitoring_source_url" field.
func MonitoringSourceURLContainsFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContainsFold(FieldMonitoringSourceURL, v))
}

// MonitoringPeriodNoteEQ applies the EQ predicate on the "monitoring_period_note" field.
func MonitoringPeriodNoteEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldMonitoringPeriodNote, v))
}

// MonitoringPeriodNoteNEQ applies the NEQ predicate on the "monitoring_period_note" field.
func MonitoringPeriodNoteNEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldMonitoringPeriodNote, v))
}

// MonitoringPeriodNoteIn applies the In predicate on the "monitoring_period_note" field.
func MonitoringPeriodNoteIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldMonitoringPeriodNote, vs...))
}

// MonitoringPeriodNoteNotIn applies the NotIn predicate on the "monitoring_period_note" field.
func MonitoringPeriodNoteNotIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldMonitoringPeriodNote, vs...))
}

// MonitoringPeriodNoteGT applies the GT predicate on the "monitoring_period_note" field.
func MonitoringPeriodNoteGT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldMonitoringPeriodNote, v))
}

// MonitoringPeriodNoteGTE applies the GTE predicate on the "monitoring_period_note" field.
func MonitoringPeriodNoteGTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldMonitoringPeriodNote, v))
}

// MonitoringPeriodNoteLT applies the LT predicate on the "monitoring_period_note" field.
func MonitoringPeriodNoteLT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldMonitoringPeriodNote, v))
}

// MonitoringPeriodNoteLTE applies the LTE predicate on the "monitoring_period_note" field.
func MonitoringPeriodNoteLTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldMonitoringPeriodNote, v))
}

// MonitoringPeriodNoteContains applies the Contains predicate on the "monitoring_period_note" field.
func MonitoringPeriodNoteContains(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContains(FieldMonitoringPeriodNote, v))
}

// MonitoringPeriodNoteHasPrefix applies the HasPrefix predicate on the "monitoring_period_note" field.
func MonitoringPeriodNoteHasPrefix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasPrefix(FieldMonitoringPeriodNote, v))
}

// MonitoringPeriodNoteHasSuffix applies the HasSuffix predicate on the "monitoring_period_note" field.
func MonitoringPeriodNoteHasSuffix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasSuffix(FieldMonitoringPeriodNote, v))
}

// MonitoringPeriodNoteIsNil applies the IsNil predicate on the "monitoring_period_note" field.
func MonitoringPeriodNoteIsNil() predicate.Solution {
	return predicate.Solution(sql.FieldIsNull(FieldMonitoringPeriodNote))
}

// MonitoringPeriodNoteNotNil applies the NotNil predicate on the "monitoring_period_note" field.
func MonitoringPeriodNoteNotNil() predicate.Solution {
	return predicate.Solution(sql.FieldNotNull(FieldMonitoringPeriodNote))
}

// MonitoringPeriodNoteEqualFold applies the EqualFold predicate on the "monitoring_period_note" field.
func MonitoringPeriodNoteEqualFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEqualFold(FieldMonitoringPeriodNote, v))
}

// MonitoringPeriodNoteContainsFold applies the ContainsFold predicate on the "monitoring_period_note" field.
func MonitoringPeriodNoteContainsFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContainsFold(FieldMonitoringPeriodNote, v))
}

// MonitoringStartEQ applies the EQ predicate on the "monitoring_start" field.
func MonitoringStartEQ(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldMonitoringStart, v))
}

// MonitoringStartNEQ applies the NEQ predicate on the "monitoring_start" field.
func MonitoringStartNEQ(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldMonitoringStart, v))
}

// MonitoringStartIn applies the In predicate on the "monitoring_start" field.
func MonitoringStartIn(vs ...time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldMonitoringStart, vs...))
}

// MonitoringStartNotIn applies the NotIn predicate on the "monitoring_start" field.
func MonitoringStartNotIn(vs ...time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldMonitoringStart, vs...))
}

// MonitoringStartGT applies the GT predicate on the "monitoring_start" field.
func MonitoringStartGT(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldMonitoringStart, v))
}

// MonitoringStartGTE applies the GTE predicate on the "monitoring_start" field.
func MonitoringStartGTE(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldMonitoringStart, v))
}

// MonitoringStartLT applies the LT predicate on the "monitoring_start" field.
func MonitoringStartLT(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldMonitoringStart, v))
}

// MonitoringStartLTE applies the LTE predicate on the "monitoring_start" field.
func MonitoringStartLTE(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldMonitoringStart, v))
}

// MonitoringStartIsNil applies the IsNil predicate on the "monitoring_start" field.
func MonitoringStartIsNil() predicate.Solution {
	return predicate.Solution(sql.FieldIsNull(FieldMonitoringStart))
}

// MonitoringStartNotNil applies the NotNil predicate on the "monitoring_start" field.
func MonitoringStartNotNil() predicate.Solution {
	return predicate.Solution(sql.FieldNotNull(FieldMonitoringStart))
}

// MonitoringEndEQ applies the EQ predicate on the "monitoring_end" field.
func MonitoringEndEQ(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldMonitoringEnd, v))
}

// MonitoringEndNEQ applies the NEQ predicate on the "monitoring_end" field.
func MonitoringEndNEQ(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldMonitoringEnd, v))
}

// MonitoringEndIn applies the In predicate on the "monitoring_end" field.
func MonitoringEndIn(vs ...time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldMonitoringEnd, vs...))
}

// MonitoringEndNotIn applies the NotIn predicate on the "monitoring_end" field.
func MonitoringEndNotIn(vs ...time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldMonitoringEnd, vs...))
}

// MonitoringEndGT applies the GT predicate on the "monitoring_end" field.
func MonitoringEndGT(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldMonitoringEnd, v))
}

// MonitoringEndGTE applies the GTE predicate on the "monitoring_end" field.
func MonitoringEndGTE(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldMonitoringEnd, v))
}

// MonitoringEndLT applies the LT predicate on the "monitoring_end" field.
func MonitoringEndLT(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldMonitoringEnd, v))
}

// MonitoringEndLTE applies the LTE predicate on the "monitoring_end" field.
func MonitoringEndLTE(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldMonitoringEnd, v))
}

// MonitoringEndIsNil applies the IsNil predicate on the "monitoring_end" field.
func MonitoringEndIsNil() predicate.Solution {
	return predicate.Solution(sql.FieldIsNull(FieldMonitoringEnd))
}

// MonitoringEndNotNil applies the NotNil predicate on the "monitoring_end" field.
func MonitoringEndNotNil() predicate.Solution {
	return predicate.Solution(sql.FieldNotNull(FieldMonitoringEnd))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldStatus, vs...))
}

// SourceURLEQ applies the EQ predicate on the "source_url" field.
func SourceURLEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldSourceURL, v))
}

// SourceURLNEQ applies the NEQ predicate on the "source_url" field.
func SourceURLNEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldSourceURL, v))
}

// SourceURLIn applies the In predicate on the "source_url" field.
func SourceURLIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldSourceURL, vs...))
}

// SourceURLNotIn applies the NotIn predicate on the "source_url" field.
func SourceURLNotIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldSourceURL, vs...))
}

// SourceURLGT applies the GT predicate on the "source_url" field.
func SourceURLGT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldSourceURL, v))
}

// SourceURLGTE applies the GTE predicate on the "source_url" field.
func SourceURLGTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldSourceURL, v))
}

// SourceURLLT applies the LT predicate on the "source_url" field.
func SourceURLLT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldSourceURL, v))
}

// SourceURLLTE applies the LTE predicate on the "source_url" field.
func SourceURLLTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldSourceURL, v))
}

// SourceURLContains applies the Contains predicate on the "source_url" field.
func SourceURLContains(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContains(FieldSourceURL, v))
}

// SourceURLHasPrefix applies the HasPrefix predicate on the "source_url" field.
func SourceURLHasPrefix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasPrefix(FieldSourceURL, v))
}

// SourceURLHasSuffix applies the HasSuffix predicate on the "source_url" field.
func SourceURLHasSuffix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasSuffix(FieldSourceURL, v))
}

// SourceURLIsNil applies the IsNil predicate on the "source_url" field.
func SourceURLIsNil() predicate.Solution {
	return predicate.Solution(sql.FieldIsNull(FieldSourceURL))
}

// SourceURLNotNil applies the NotNil predicate on the "source_url" field.
func SourceURLNotNil() predicate.Solution {
	return predicate.Solution(sql.FieldNotNull(FieldSourceURL))
}

// SourceURLEqualFold applies the EqualFold predicate on the "source_url" field.
func SourceURLEqualFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEqualFold(FieldSourceURL, v))
}

// SourceURLContainsFold applies the ContainsFold predicate on the "source_url" field.
func SourceURLContainsFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContainsFold(FieldSourceURL, v))
}

// SourcePlatformEQ applies the EQ predicate on the "source_platform" field.
func SourcePlatformEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldSourcePlatform, v))
}

// SourcePlatformNEQ applies the NEQ predicate on the "source_platform" field.
func SourcePlatformNEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldSourcePlatform, v))
}

// SourcePlatformIn applies the In predicate on the "source_platform" field.
func SourcePlatformIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldSourcePlatform, vs...))
}

// SourcePlatformNotIn applies the NotIn predicate on the "source_platform" field.
func SourcePlatformNotIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldSourcePlatform, vs...))
}

// SourcePlatformGT applies the GT predicate on the "source_platform" field.
func SourcePlatformGT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldSourcePlatform, v))
}

// SourcePlatformGTE applies the GTE predicate on the "source_platform" field.
func SourcePlatformGTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldSourcePlatform, v))
}

// SourcePlatformLT applies the LT predicate on the "source_platform" field.
func SourcePlatformLT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldSourcePlatform, v))
}

// SourcePlatformLTE applies the LTE predicate on the "source_platform" field.
func SourcePlatformLTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldSourcePlatform, v))
}

// SourcePlatformContains applies the Contains predicate on the "source_platform" field.
func SourcePlatformContains(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContains(FieldSourcePlatform, v))
}

// SourcePlatformHasPrefix applies the HasPrefix predicate on the "source_platform" field.
func SourcePlatformHasPrefix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasPrefix(FieldSourcePlatform, v))
}

// SourcePlatformHasSuffix applies the HasSuffix predicate on the "source_platform" field.
func SourcePlatformHasSuffix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasSuffix(FieldSourcePlatform, v))
}

// SourcePlatformIsNil applies the IsNil predicate on the "source_platform" field.
func SourcePlatformIsNil() predicate.Solution {
	return predicate.Solution(sql.FieldIsNull(FieldSourcePlatform))
}

// SourcePlatformNotNil applies the NotNil predicate on the "source_platform" field.
func SourcePlatformNotNil() predicate.Solution {
	return predicate.Solution(sql.FieldNotNull(FieldSourcePlatform))
}

// SourcePlatformEqualFold applies the EqualFold predicate on the "source_platform" field.
func SourcePlatformEqualFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEqualFold(FieldSourcePlatform, v))
}

// SourcePlatformContainsFold applies the ContainsFold predicate on the "source_platform" field.
func SourcePlatformContainsFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContainsFold(FieldSourcePlatform, v))
}

// PostedAtEQ applies the EQ predicate on the "posted_at" field.
func PostedAtEQ(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldPostedAt, v))
}

// PostedAtNEQ applies the NEQ predicate on the "posted_at" field.
func PostedAtNEQ(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldPostedAt, v))
}

// PostedAtIn applies the In predicate on the "posted_at" field.
func PostedAtIn(vs ...time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldPostedAt, vs...))
}

// PostedAtNotIn applies the NotIn predicate on the "posted_at" field.
func PostedAtNotIn(vs ...time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldPostedAt, vs...))
}

// PostedAtGT applies the GT predicate on the "posted_at" field.
func PostedAtGT(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldPostedAt, v))
}

// PostedAtGTE applies the GTE predicate on the "posted_at" field.
func PostedAtGTE(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldPostedAt, v))
}

// PostedAtLT applies the LT predicate on the "posted_at" field.
func PostedAtLT(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldPostedAt, v))
}

// PostedAtLTE applies the LTE predicate on the "posted_at" field.
func PostedAtLTE(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldPostedAt, v))
}

// PostedAtIsNil applies the IsNil predicate on the "posted_at" field.
func PostedAtIsNil() predicate.Solution {
	return predicate.Solution(sql.FieldIsNull(FieldPostedAt))
}

// PostedAtNotNil applies the NotNil predicate on the "posted_at" field.
func PostedAtNotNil() predicate.Solution {
	return predicate.Solution(sql.FieldNotNull(FieldPostedAt))
}

// CollectedAtEQ applies the EQ predicate on the "collected_at" field.
func CollectedAtEQ(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldCollectedAt, v))
}

// CollectedAtNEQ applies the NEQ predicate on the "collected_at" field.
func CollectedAtNEQ(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldCollectedAt, v))
}

// CollectedAtIn applies the In predicate on the "collected_at" field.
func CollectedAtIn(vs ...time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldCollectedAt, vs...))
}

// CollectedAtNotIn applies the NotIn predicate on the "collected_at" field.
func CollectedAtNotIn(vs ...time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldCollectedAt, vs...))
}

// CollectedAtGT applies the GT predicate on the "collected_at" field.
func CollectedAtGT(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldCollectedAt, v))
}

// CollectedAtGTE applies the GTE predicate on the "collected_at" field.
func CollectedAtGTE(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldCollectedAt, v))
}

// CollectedAtLT applies the LT predicate on the "collected_at" field.
func CollectedAtLT(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldCollectedAt, v))
}

// CollectedAtLTE applies the LTE predicate on the "collected_at" field.
func CollectedAtLTE(v time.Time) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldCollectedAt, v))
}

// RawExtractionEQ applies the EQ predicate on the "raw_extraction" field.
func RawExtractionEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEQ(FieldRawExtraction, v))
}

// RawExtractionNEQ applies the NEQ predicate on the "raw_extraction" field.
func RawExtractionNEQ(v string) predicate.Solution {
	return predicate.Solution(sql.FieldNEQ(FieldRawExtraction, v))
}

// RawExtractionIn applies the In predicate on the "raw_extraction" field.
func RawExtractionIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldIn(FieldRawExtraction, vs...))
}

// RawExtractionNotIn applies the NotIn predicate on the "raw_extraction" field.
func RawExtractionNotIn(vs ...string) predicate.Solution {
	return predicate.Solution(sql.FieldNotIn(FieldRawExtraction, vs...))
}

// RawExtractionGT applies the GT predicate on the "raw_extraction" field.
func RawExtractionGT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGT(FieldRawExtraction, v))
}

// RawExtractionGTE applies the GTE predicate on the "raw_extraction" field.
func RawExtractionGTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldGTE(FieldRawExtraction, v))
}

// RawExtractionLT applies the LT predicate on the "raw_extraction" field.
func RawExtractionLT(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLT(FieldRawExtraction, v))
}

// RawExtractionLTE applies the LTE predicate on the "raw_extraction" field.
func RawExtractionLTE(v string) predicate.Solution {
	return predicate.Solution(sql.FieldLTE(FieldRawExtraction, v))
}

// RawExtractionContains applies the Contains predicate on the "raw_extraction" field.
func RawExtractionContains(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContains(FieldRawExtraction, v))
}

// RawExtractionHasPrefix applies the HasPrefix predicate on the "raw_extraction" field.
func RawExtractionHasPrefix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasPrefix(FieldRawExtraction, v))
}

// RawExtractionHasSuffix applies the HasSuffix predicate on the "raw_extraction" field.
func RawExtractionHasSuffix(v string) predicate.Solution {
	return predicate.Solution(sql.FieldHasSuffix(FieldRawExtraction, v))
}

// RawExtractionIsNil applies the IsNil predicate on the "raw_extraction" field.
func RawExtractionIsNil() predicate.Solution {
	return predicate.Solution(sql.FieldIsNull(FieldRawExtraction))
}

// RawExtractionNotNil applies the NotNil predicate on the "raw_extraction" field.
func RawExtractionNotNil() predicate.Solution {
	return predicate.Solution(sql.FieldNotNull(FieldRawExtraction))
}

// RawExtractionEqualFold applies the EqualFold predicate on the "raw_extraction" field.
func RawExtractionEqualFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldEqualFold(FieldRawExtraction, v))
}

// RawExtractionContainsFold applies the ContainsFold predicate on the "raw_extraction" field.
func RawExtractionContainsFold(v string) predicate.Solution {
	return predicate.Solution(sql.FieldContainsFold(FieldRawExtraction, v))
}

// HasTopic applies the HasEdge predicate on the "topic" edge.
func HasTopic() predicate.Solution {
	return predicate.Solution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TopicTable, TopicColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTopicWith applies the HasEdge predicate on the "topic" edge with a given conditions (other predicates).
func HasTopicWith(preds ...predicate.Topic) predicate.Solution {
	return predicate.Solution(func(s *sql.Selector) {
		step := newTopicStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAuthor applies the HasEdge predicate on the "author" edge.
func HasAuthor() predicate.Solution {
	return predicate.Solution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AuthorTable, AuthorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuthorWith applies the HasEdge predicate on the "author" edge with a given conditions (other predicates).
func HasAuthorWith(preds ...predicate.Author) predicate.Solution {
	return predicate.Solution(func(s *sql.Selector) {
		step := newAuthorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLogics applies the HasEdge predicate on the "logics" edge.
func HasLogics() predicate.Solution {
	return predicate.Solution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LogicsTable, LogicsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLogicsWith applies the HasEdge predicate on the "logics" edge with a given conditions (other predicates).
func HasLogicsWith(preds ...predicate.Logic) predicate.Solution {
	return predicate.Solution(func(s *sql.Selector) {
		step := newLogicsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAssessments applies the HasEdge predicate on the "assessments" edge.
func HasAssessments() predicate.Solution {
	return predicate.Solution(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AssessmentsTable, AssessmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAssessmentsWith applies the HasEdge predicate on the "assessments" edge with a given conditions (other predicates).
func HasAssessmentsWith(preds ...predicate.SolutionAssessment) predicate.Solution {
	return predicate.Solution(func(s *sql.Selector) {
		step := newAssessmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Solution) predicate.Solution {
	return predicate.Solution(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Solution) predicate.Solution {
	return predicate.Solution(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Solution) predicate.Solution {
	return predicate.Solution(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package conclusion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/credlens/pundit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldLTE(FieldID, id))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v int) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldTopicID, v))
}

// AuthorID applies equality check predicate on the "author_id" field. It's identical to AuthorIDEQ.
func AuthorID(v int) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldAuthorID, v))
}

// Claim applies equality check predicate on the "claim" field. It's identical to ClaimEQ.
func Claim(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldClaim, v))
}

// CanonicalClaim applies equality check predicate on the "canonical_claim" field. It's identical to CanonicalClaimEQ.
func CanonicalClaim(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldCanonicalClaim, v))
}

// TimeHorizonNote applies equality check predicate on the "time_horizon_note" field. It's identical to TimeHorizonNoteEQ.
func TimeHorizonNote(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldTimeHorizonNote, v))
}

// ValidFrom applies equality check predicate on the "valid_from" field. It's identical to ValidFromEQ.
func ValidFrom(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldValidFrom, v))
}

// ValidUntil applies equality check predicate on the "valid_until" field. It's identical to ValidUntilEQ.
func ValidUntil(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldValidUntil, v))
}

// MonitoringSourceOrg applies equality check predicate on the "monitoring_source_org" field. It's identical to MonitoringSourceOrgEQ.
func MonitoringSourceOrg(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldMonitoringSourceOrg, v))
}

// MonitoringSourceURL applies equality check predicate on the "monitoring_source_url" field. It's identical to MonitoringSourceURLEQ.
func MonitoringSourceURL(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldMonitoringSourceURL, v))
}

// MonitoringPeriodNote applies equality check predicate on the "monitoring_period_note" field. It's identical to MonitoringPeriodNoteEQ.
func MonitoringPeriodNote(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldMonitoringPeriodNote, v))
}

// MonitoringStart applies equality check predicate on the "monitoring_start" field. It's identical to MonitoringStartEQ.
func MonitoringStart(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldMonitoringStart, v))
}

// MonitoringEnd applies equality check predicate on the "monitoring_end" field. It's identical to MonitoringEndEQ.
func MonitoringEnd(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldMonitoringEnd, v))
}

// SourceURL applies equality check predicate on the "source_url" field. It's identical to SourceURLEQ.
func SourceURL(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldSourceURL, v))
}

// SourcePlatform applies equality check predicate on the "source_platform" field. It's identical to SourcePlatformEQ.
func SourcePlatform(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldSourcePlatform, v))
}

// PostedAt applies equality check predicate on the "posted_at" field. It's identical to PostedAtEQ.
func PostedAt(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldPostedAt, v))
}

// CollectedAt applies equality check predicate on the "collected_at" field. It's identical to CollectedAtEQ.
func CollectedAt(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldCollectedAt, v))
}

// RawExtraction applies equality check predicate on the "raw_extraction" field. It's identical to RawExtractionEQ.
func RawExtraction(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldRawExtraction, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v int) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v int) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...int) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...int) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNotIn(FieldTopicID, vs...))
}

// AuthorIDEQ applies the EQ predicate on the "author_id" field.
func AuthorIDEQ(v int) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldAuthorID, v))
}

// AuthorIDNEQ applies the NEQ predicate on the "author_id" field.
func AuthorIDNEQ(v int) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNEQ(FieldAuthorID, v))
}

// AuthorIDIn applies the In predicate on the "author_id" field.
func AuthorIDIn(vs ...int) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldIn(FieldAuthorID, vs...))
}

// AuthorIDNotIn applies the NotIn predicate on the "author_id" field.
func AuthorIDNotIn(vs ...int) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNotIn(FieldAuthorID, vs...))
}

// ClaimEQ applies the EQ predicate on the "claim" field.
func ClaimEQ(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldClaim, v))
}

// ClaimNEQ applies the NEQ predicate on the "claim" field.
func ClaimNEQ(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNEQ(FieldClaim, v))
}

// ClaimIn applies the In predicate on the "claim" field.
func ClaimIn(vs ...string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldIn(FieldClaim, vs...))
}

// ClaimNotIn applies the NotIn predicate on the "claim" field.
func ClaimNotIn(vs ...string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNotIn(FieldClaim, vs...))
}

// ClaimGT applies the GT predicate on the "claim" field.
func ClaimGT(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldGT(FieldClaim, v))
}

// ClaimGTE applies the GTE predicate on the "claim" field.
func ClaimGTE(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldGTE(FieldClaim, v))
}

// ClaimLT applies the LT predicate on the "claim" field.
func ClaimLT(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldLT(FieldClaim, v))
}

// ClaimLTE applies the LTE predicate on the "claim" field.
func ClaimLTE(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldLTE(FieldClaim, v))
}

// ClaimContains applies the Contains predicate on the "claim" field.
func ClaimContains(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldContains(FieldClaim, v))
}

// ClaimHasPrefix applies the HasPrefix predicate on the "claim" field.
func ClaimHasPrefix(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldHasPrefix(FieldClaim, v))
}

// ClaimHasSuffix applies the HasSuffix predicate on the "claim" field.
func ClaimHasSuffix(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldHasSuffix(FieldClaim, v))
}

// ClaimEqualFold applies the EqualFold predicate on the "claim" field.
func ClaimEqualFold(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEqualFold(FieldClaim, v))
}

// ClaimContainsFold applies the ContainsFold predicate on the "claim" field.
func ClaimContainsFold(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldContainsFold(FieldClaim, v))
}

// CanonicalClaimEQ applies the EQ predicate on the "canonical_claim" field.
func CanonicalClaimEQ(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldCanonicalClaim, v))
}

// CanonicalClaimNEQ applies the NEQ predicate on the "canonical_claim" field.
func CanonicalClaimNEQ(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNEQ(FieldCanonicalClaim, v))
}

// CanonicalClaimIn applies the In predicate on the "canonical_claim" field.
func CanonicalClaimIn(vs ...string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldIn(FieldCanonicalClaim, vs...))
}

// CanonicalClaimNotIn applies the NotIn predicate on the "canonical_claim" field.
func CanonicalClaimNotIn(vs ...string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNotIn(FieldCanonicalClaim, vs...))
}

// CanonicalClaimGT applies the GT predicate on the "canonical_claim" field.
func CanonicalClaimGT(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldGT(FieldCanonicalClaim, v))
}

// CanonicalClaimGTE applies the GTE predicate on the "canonical_claim" field.
func CanonicalClaimGTE(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldGTE(FieldCanonicalClaim, v))
}

// CanonicalClaimLT applies the LT predicate on the "canonical_claim" field.
func CanonicalClaimLT(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldLT(FieldCanonicalClaim, v))
}

// CanonicalClaimLTE applies the LTE predicate on the "canonical_claim" field.
func CanonicalClaimLTE(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldLTE(FieldCanonicalClaim, v))
}

// CanonicalClaimContains applies the Contains predicate on the "canonical_claim" field.
func CanonicalClaimContains(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldContains(FieldCanonicalClaim, v))
}

// CanonicalClaimHasPrefix applies the HasPrefix predicate on the "canonical_claim" field.
func CanonicalClaimHasPrefix(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldHasPrefix(FieldCanonicalClaim, v))
}

// CanonicalClaimHasSuffix applies the HasSuffix predicate on the "canonical_claim" field.
func CanonicalClaimHasSuffix(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldHasSuffix(FieldCanonicalClaim, v))
}

// CanonicalClaimIsNil applies the IsNil predicate on the "canonical_claim" field.
func CanonicalClaimIsNil() predicate.Conclusion {
	return predicate.Conclusion(sql.FieldIsNull(FieldCanonicalClaim))
}

// CanonicalClaimNotNil applies the NotNil predicate on the "canonical_claim" field.
func CanonicalClaimNotNil() predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNotNull(FieldCanonicalClaim))
}

// CanonicalClaimEqualFold applies the EqualFold predicate on the "canonical_claim" field.
func CanonicalClaimEqualFold(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEqualFold(FieldCanonicalClaim, v))
}

// CanonicalClaimContainsFold applies the ContainsFold predicate on the "canonical_claim" field.
func CanonicalClaimContainsFold(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldContainsFold(FieldCanonicalClaim, v))
}

// ConclusionTypeEQ applies the EQ predicate on the "conclusion_type" field.
func ConclusionTypeEQ(v ConclusionType) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldConclusionType, v))
}

// ConclusionTypeNEQ applies the NEQ predicate on the "conclusion_type" field.
func ConclusionTypeNEQ(v ConclusionType) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNEQ(FieldConclusionType, v))
}

// ConclusionTypeIn applies the In predicate on the "conclusion_type" field.
func ConclusionTypeIn(vs ...ConclusionType) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldIn(FieldConclusionType, vs...))
}

// ConclusionTypeNotIn applies the NotIn predicate on the "conclusion_type" field.
func ConclusionTypeNotIn(vs ...ConclusionType) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNotIn(FieldConclusionType, vs...))
}

// TimeHorizonNoteEQ applies the EQ predicate on the "time_horizon_note" field.
func TimeHorizonNoteEQ(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldTimeHorizonNote, v))
}

// TimeHorizonNoteNEQ applies the NEQ predicate on the "time_horizon_note" field.
func TimeHorizonNoteNEQ(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNEQ(FieldTimeHorizonNote, v))
}

// TimeHorizonNoteIn applies the In predicate on the "time_horizon_note" field.
func TimeHorizonNoteIn(vs ...string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldIn(FieldTimeHorizonNote, vs...))
}

// TimeHorizonNoteNotIn applies the NotIn predicate on the "time_horizon_note" field.
func TimeHorizonNoteNotIn(vs ...string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNotIn(FieldTimeHorizonNote, vs...))
}

// TimeHorizonNoteGT applies the GT predicate on the "time_horizon_note" field.
func TimeHorizonNoteGT(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldGT(FieldTimeHorizonNote, v))
}

// TimeHorizonNoteGTE applies the GTE predicate on the "time_horizon_note" field.
func TimeHorizonNoteGTE(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldGTE(FieldTimeHorizonNote, v))
}

// TimeHorizonNoteLT applies the LT predicate on the "time_horizon_note" field.
func TimeHorizonNoteLT(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldLT(FieldTimeHorizonNote, v))
}

// TimeHorizonNoteLTE applies the LTE predicate on the "time_horizon_note" field.
func TimeHorizonNoteLTE(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldLTE(FieldTimeHorizonNote, v))
}

// TimeHorizonNoteContains applies the Contains predicate on the "time_horizon_note" field.
func TimeHorizonNoteContains(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldContains(FieldTimeHorizonNote, v))
}

// TimeHorizonNoteHasPrefix applies the HasPrefix predicate on the "time_horizon_note" field.
func TimeHorizonNoteHasPrefix(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldHasPrefix(FieldTimeHorizonNote, v))
}

// TimeHorizonNoteHasSuffix applies the HasSuffix predicate on the "time_horizon_note" field.
func TimeHorizonNoteHasSuffix(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldHasSuffix(FieldTimeHorizonNote, v))
}

// TimeHorizonNoteIsNil applies the IsNil predicate on the "time_horizon_note" field.
func TimeHorizonNoteIsNil() predicate.Conclusion {
	return predicate.Conclusion(sql.FieldIsNull(FieldTimeHorizonNote))
}

// TimeHorizonNoteNotNil applies the NotNil predicate on the "time_horizon_note" field.
func TimeHorizonNoteNotNil() predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNotNull(FieldTimeHorizonNote))
}

// TimeHorizonNoteEqualFold applies the EqualFold predicate on the "time_horizon_note" field.
func TimeHorizonNoteEqualFold(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEqualFold(FieldTimeHorizonNote, v))
}

// TimeHorizonNoteContainsFold applies the ContainsFold predicate on the "time_horizon_note" field.
func TimeHorizonNoteContainsFold(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldContainsFold(FieldTimeHorizonNote, v))
}

// ValidFromEQ applies the EQ predicate on the "valid_from" field.
func ValidFromEQ(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldValidFrom, v))
}

// ValidFromNEQ applies the NEQ predicate on the "valid_from" field.
func ValidFromNEQ(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNEQ(FieldValidFrom, v))
}

// ValidFromIn applies the In predicate on the "valid_from" field.
func ValidFromIn(vs ...time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldIn(FieldValidFrom, vs...))
}

// ValidFromNotIn applies the NotIn predicate on the "valid_from" field.
func ValidFromNotIn(vs ...time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNotIn(FieldValidFrom, vs...))
}

// ValidFromGT applies the GT predicate on the "valid_from" field.
func ValidFromGT(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldGT(FieldValidFrom, v))
}

// ValidFromGTE applies the GTE predicate on the "valid_from" field.
func ValidFromGTE(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldGTE(FieldValidFrom, v))
}

// ValidFromLT applies the LT predicate on the "valid_from" field.
func ValidFromLT(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldLT(FieldValidFrom, v))
}

// ValidFromLTE applies the LTE predicate on the "valid_from" field.
func ValidFromLTE(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldLTE(FieldValidFrom, v))
}

// ValidFromIsNil applies the IsNil predicate on the "valid_from" field.
func ValidFromIsNil() predicate.Conclusion {
	return predicate.Conclusion(sql.FieldIsNull(FieldValidFrom))
}

// ValidFromNotNil applies the NotNil predicate on the "valid_from" field.
func ValidFromNotNil() predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNotNull(FieldValidFrom))
}

// ValidUntilEQ applies the EQ predicate on the "valid_until" field.
func ValidUntilEQ(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldValidUntil, v))
}

// ValidUntilNEQ applies the NEQ predicate on the "valid_until" field.
func ValidUntilNEQ(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNEQ(FieldValidUntil, v))
}

// ValidUntilIn applies the In predicate on the "valid_until" field.
func ValidUntilIn(vs ...time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldIn(FieldValidUntil, vs...))
}

// ValidUntilNotIn applies the NotIn predicate on the "valid_until" field.
func ValidUntilNotIn(vs ...time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNotIn(FieldValidUntil, vs...))
}

// ValidUntilGT applies the GT predicate on the "valid_until" field.
func ValidUntilGT(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldGT(FieldValidUntil, v))
}

// ValidUntilGTE applies the GTE predicate on the "valid_until" field.
func ValidUntilGTE(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldGTE(FieldValidUntil, v))
}

// ValidUntilLT applies the LT predicate on the "valid_until" field.
func ValidUntilLT(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldLT(FieldValidUntil, v))
}

// ValidUntilLTE applies the LTE predicate on the "valid_until" field.
func ValidUntilLTE(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldLTE(FieldValidUntil, v))
}

// ValidUntilIsNil applies the IsNil predicate on the "valid_until" field.
func ValidUntilIsNil() predicate.Conclusion {
	return predicate.Conclusion(sql.FieldIsNull(FieldValidUntil))
}

// ValidUntilNotNil applies the NotNil predicate on the "valid_until" field.
func ValidUntilNotNil() predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNotNull(FieldValidUntil))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNotIn(FieldStatus, vs...))
}

// MonitoringSourceOrgEQ applies the EQ predicate on the "monitoring_source_org" field.
func MonitoringSourceOrgEQ(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldMonitoringSourceOrg, v))
}

// MonitoringSourceOrgNEQ applies the NEQ predicate on the "monitoring_source_org" field.
func MonitoringSourceOrgNEQ(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNEQ(FieldMonitoringSourceOrg, v))
}

// MonitoringSourceOrgIn applies the In predicate on the "monitoring_source_org" field.
func MonitoringSourceOrgIn(vs ...string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldIn(FieldMonitoringSourceOrg, vs...))
}

// MonitoringSourceOrgNotIn applies the NotIn predicate on the "monitoring_source_org" field.
func MonitoringSourceOrgNotIn(vs ...string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNotIn(FieldMonitoringSourceOrg, vs...))
}

// MonitoringSourceOrgGT applies the GT predicate on the "monitoring_source_org" field.
func MonitoringSourceOrgGT(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldGT(FieldMonitoringSourceOrg, v))
}

// MonitoringSourceOrgGTE applies the GTE predicate on the "monitoring_source_org" field.
func MonitoringSourceOrgGTE(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldGTE(FieldMonitoringSourceOrg, v))
}

// MonitoringSourceOrgLT applies the LT predicate on the "monitoring_source_org" field.
func MonitoringSourceOrgLT(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldLT(FieldMonitoringSourceOrg, v))
}

// MonitoringSourceOrgLTE applies the LTE predicate on the "monitoring_source_org" field.
func MonitoringSourceOrgLTE(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldLTE(FieldMonitoringSourceOrg, v))
}

// MonitoringSourceOrgContains applies the Contains predicate on the "monitoring_source_org" field.
func MonitoringSourceOrgContains(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldContains(FieldMonitoringSourceOrg, v))
}

// MonitoringSourceOrgHasPrefix applies the HasPrefix predicate on the "monitoring_source_org" field.
func MonitoringSourceOrgHasPrefix(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldHasPrefix(FieldMonitoringSourceOrg, v))
}

// MonitoringSourceOrgHasSuffix applies the HasSuffix predicate on the "monitoring_source_org" field.
func MonitoringSourceOrgHasSuffix(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldHasSuffix(FieldMonitoringSourceOrg, v))
}

// MonitoringSourceOrgIsNil applies the IsNil predicate on the "monitoring_source_org" field.
func MonitoringSourceOrgIsNil() predicate.Conclusion {
	return predicate.Conclusion(sql.FieldIsNull(FieldMonitoringSourceOrg))
}

// MonitoringSourceOrgNotNil applies the NotNil predicate on the "monitoring_source_org" field.
func MonitoringSourceOrgNotNil() predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNotNull(FieldMonitoringSourceOrg))
}

// MonitoringSourceOrgEqualFold applies the EqualFold predicate on the "monitoring_source_org" field.
func MonitoringSourceOrgEqualFold(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEqualFold(FieldMonitoringSourceOrg, v))
}

// MonitoringSourceOrgContainsFold applies the ContainsFold predicate on the "monitoring_source_org" field.
func MonitoringSourceOrgContainsFold(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldContainsFold(FieldMonitoringSourceOrg, v))
}

// MonitoringSourceURLEQ applies the EQ predicate on the "monitoring_source_url" field.
func MonitoringSourceURLEQ(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldMonitoringSourceURL, v))
}

// MonitoringSourceURLNEQ applies the NEQ predicate on the "monitoring_source_url" field.
func MonitoringSourceURLNEQ(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNEQ(FieldMonitoringSourceURL, v))
}

// MonitoringSourceURLIn applies the In predicate on the "monitoring_source_url" field.
func MonitoringSourceURLIn(vs ...string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldIn(FieldMonitoringSourceURL, vs...))
}

// MonitoringSourceURLNotIn applies the NotIn predicate on the "monitoring_source_url" field.
func MonitoringSourceURLNotIn(vs ...string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNotIn(FieldMonitoringSourceURL, vs...))
}

// MonitoringSourceURLGT applies the GT predicate on the "monitoring_source_url" field.
func MonitoringSourceURLGT(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldGT(FieldMonitoringSourceURL, v))
}

// MonitoringSourceURLGTE applies the GTE predicate on the "monitoring_source_url" field.
func MonitoringSourceURLGTE(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldGTE(FieldMonitoringSourceURL, v))
}

// MonitoringSourceURLLT applies the LT predicate on the "monitoring_source_url" field.
func MonitoringSourceURLLT(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldLT(FieldMonitoringSourceURL, v))
}

// MonitoringSourceURLLTE applies the LTE predicate on the "monitoring_source_url" field.
func MonitoringSourceURLLTE(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldLTE(FieldMonitoringSourceURL, v))
}

// MonitoringSourceURLContains applies the Contains predicate on the "monitoring_source_url" field.
func MonitoringSourceURLContains(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldContains(FieldMonitoringSourceURL, v))
}

// MonitoringSourceURLHasPrefix applies the HasPrefix predicate on the "monitoring_source_url" field.
func MonitoringSourceURLHasPrefix(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldHasPrefix(FieldMonitoringSourceURL, v))
}

// MonitoringSourceURLHasSuffix applies the HasSuffix predicate on the "monitoring_source_url" field.
func MonitoringSourceURLHasSuffix(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldHasSuffix(FieldMonitoringSourceURL, v))
}

// MonitoringSourceURLIsNil applies the IsNil predicate on the "monitoring_source_url" field.
func MonitoringSourceURLIsNil() predicate.Conclusion {
	return predicate.Conclusion(sql.FieldIsNull(FieldMonitoringSourceURL))
}

// MonitoringSourceURLNotNil applies the NotNil predicate on the "monitoring_source_url" field.
func MonitoringSourceURLNotNil() predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNotNull(FieldMonitoringSourceURL))
}

// MonitoringSourceURLEqualFold applies the EqualFold predicate on the "monitoring_source_url" field.
func MonitoringSourceURLEqualFold(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEqualFold(FieldMonitoringSourceURL, v))
}

// MonitoringSourceURLContainsFold applies the ContainsFold predicate on the "monitoring_source_url" field.
func MonitoringSourceURLContainsFold(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldContainsFold(FieldMonitoringSourceURL, v))
}

// MonitoringPeriodNoteEQ applies the EQ predicate on the "monitoring_period_note" field.
func MonitoringPeriodNoteEQ(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldMonitoringPeriodNote, v))
}

// MonitoringPeriodNoteNEQ applies the NEQ predicate on the "monitoring_period_note" field.
func MonitoringPeriodNoteNEQ(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNEQ(FieldMonitoringPeriodNote, v))
}

// MonitoringPeriodNoteIn applies the In predicate on the "monitoring_period_note" field.
func MonitoringPeriodNoteIn(vs ...string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldIn(FieldMonitoringPeriodNote, vs...))
}

// MonitoringPeriodNoteNotIn applies the NotIn predicate on the "monitoring_period_note" field.
func MonitoringPeriodNoteNotIn(vs ...string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNotIn(FieldMonitoringPeriodNote, vs...))
}

// MonitoringPeriodNoteGT applies the GT predicate on the "monitoring_period_note" field.
func MonitoringPeriodNoteGT(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldGT(FieldMonitoringPeriodNote, v))
}

// MonitoringPeriodNoteGTE applies the GTE predicate on the "monitoring_period_note" field.
func MonitoringPeriodNoteGTE(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldGTE(FieldMonitoringPeriodNote, v))
}

// MonitoringPeriodNoteLT applies the LT predicate on the "monitoring_period_note" field.
func MonitoringPeriodNoteLT(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldLT(FieldMonitoringPeriodNote, v))
}

// MonitoringPeriodNoteLTE applies the LTE predicate on the "monitoring_period_note" field.
func MonitoringPeriodNoteLTE(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldLTE(FieldMonitoringPeriodNote, v))
}

// MonitoringPeriodNoteContains applies the Contains predicate on the "monitoring_period_note" field.
func MonitoringPeriodNoteContains(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldContains(FieldMonitoringPeriodNote, v))
}

// MonitoringPeriodNoteHasPrefix applies the HasPrefix predicate on the "monitoring_period_note" field.
func MonitoringPeriodNoteHasPrefix(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldHasPrefix(FieldMonitoringPeriodNote, v))
}

// MonitoringPeriodNoteHasSuffix applies the HasSuffix predicate on the "monitoring_period_note" field.
func MonitoringPeriodNoteHasSuffix(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldHasSuffix(FieldMonitoringPeriodNote, v))
}

// MonitoringPeriodNoteIsNil applies the IsNil predicate on the "monitoring_period_note" field.
func MonitoringPeriodNoteIsNil() predicate.Conclusion {
	return predicate.Conclusion(sql.FieldIsNull(FieldMonitoringPeriodNote))
}

// MonitoringPeriodNoteNotNil applies the NotNil predicate on the "monitoring_period_note" field.
func MonitoringPeriodNoteNotNil() predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNotNull(FieldMonitoringPeriodNote))
}

// MonitoringPeriodNoteEqualFold applies the EqualFold predicate on the "monitoring_period_note" field.
func MonitoringPeriodNoteEqualFold(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEqualFold(FieldMonitoringPeriodNote, v))
}

// MonitoringPeriodNoteContainsFold applies the ContainsFold predicate on the "monitoring_period_note" field.
func MonitoringPeriodNoteContainsFold(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldContainsFold(FieldMonitoringPeriodNote, v))
}

// MonitoringStartEQ applies the EQ predicate on the "monitoring_start" field.
func MonitoringStartEQ(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldMonitoringStart, v))
}

// MonitoringStartNEQ applies the NEQ predicate on the "monitoring_start" field.
func MonitoringStartNEQ(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNEQ(FieldMonitoringStart, v))
}

// MonitoringStartIn applies the In predicate on the "monitoring_start" field.
func MonitoringStartIn(vs ...time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldIn(FieldMonitoringStart, vs...))
}

// MonitoringStartNotIn applies the NotIn predicate on the "monitoring_start" field.
func MonitoringStartNotIn(vs ...time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNotIn(FieldMonitoringStart, vs...))
}

// MonitoringStartGT applies the GT predicate on the "monitoring_start" field.
func MonitoringStartGT(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldGT(FieldMonitoringStart, v))
}

// MonitoringStartGTE applies the GTE predicate on the "monitoring_start" field.
func MonitoringStartGTE(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldGTE(FieldMonitoringStart, v))
}

// MonitoringStartLT applies the LT predicate on the "monitoring_start" field.
func MonitoringStartLT(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldLT(FieldMonitoringStart, v))
}

// MonitoringStartLTE applies the LTE predicate on the "monitoring_start" field.
func MonitoringStartLTE(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldLTE(FieldMonitoringStart, v))
}

// MonitoringStartIsNil applies the IsNil predicate on the "monitoring_start" field.
func MonitoringStartIsNil() predicate.Conclusion {
	return predicate.Conclusion(sql.FieldIsNull(FieldMonitoringStart))
}

// MonitoringStartNotNil applies the NotNil predicate on the "monitoring_start" field.
func MonitoringStartNotNil() predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNotNull(FieldMonitoringStart))
}

// MonitoringEndEQ applies the EQ predicate on the "monitoring_end" field.
func MonitoringEndEQ(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldMonitoringEnd, v))
}

// MonitoringEndNEQ applies the NEQ predicate on the "monitoring_end" field.
func MonitoringEndNEQ(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNEQ(FieldMonitoringEnd, v))
}

// MonitoringEndIn applies the In predicate on the "monitoring_end" field.
func MonitoringEndIn(vs ...time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldIn(FieldMonitoringEnd, vs...))
}

// MonitoringEndNotIn applies the NotIn predicate on the "monitoring_end" field.
func MonitoringEndNotIn(vs ...time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNotIn(FieldMonitoringEnd, vs...))
}

// MonitoringEndGT applies the GT predicate on the "monitoring_end" field.
func MonitoringEndGT(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldGT(FieldMonitoringEnd, v))
}

// MonitoringEndGTE applies the GTE predicate on the "monitoring_end" field.
func MonitoringEndGTE(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldGTE(FieldMonitoringEnd, v))
}

// MonitoringEndLT applies the LT predicate on the "monitoring_end" field.
func MonitoringEndLT(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldLT(FieldMonitoringEnd, v))
}

// MonitoringEndLTE applies the LTE predicate on the "monitoring_end" field.
func MonitoringEndLTE(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldLTE(FieldMonitoringEnd, v))
}

// MonitoringEndIsNil applies the IsNil predicate on the "monitoring_end" field.
func MonitoringEndIsNil() predicate.Conclusion {
	return predicate.Conclusion(sql.FieldIsNull(FieldMonitoringEnd))
}

// MonitoringEndNotNil applies the NotNil predicate on the "monitoring_end" field.
func MonitoringEndNotNil() predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNotNull(FieldMonitoringEnd))
}

// SourceURLEQ applies the EQ predicate on the "source_url" field.
func SourceURLEQ(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldSourceURL, v))
}

// SourceURLNEQ applies the NEQ predicate on the "source_url" field.
func SourceURLNEQ(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNEQ(FieldSourceURL, v))
}

// SourceURLIn applies the In predicate on the "source_url" field.
func SourceURLIn(vs ...string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldIn(FieldSourceURL, vs...))
}

// SourceURLNotIn applies the NotIn predicate on the "source_url" field.
func SourceURLNotIn(vs ...string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNotIn(FieldSourceURL, vs...))
}

// SourceURLGT applies the GT predicate on the "source_url" field.
func SourceURLGT(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldGT(FieldSourceURL, v))
}

// SourceURLGTE applies the GTE predicate on the "source_url" field.
func SourceURLGTE(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldGTE(FieldSourceURL, v))
}

// SourceURLLT applies the LT predicate on the "source_url" field.
func SourceURLLT(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldLT(FieldSourceURL, v))
}

// SourceURLLTE applies the LTE predicate on the "source_url" field.
func SourceURLLTE(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldLTE(FieldSourceURL, v))
}

// SourceURLContains applies the Contains predicate on the "source_url" field.
func SourceURLContains(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldContains(FieldSourceURL, v))
}

// SourceURLHasPrefix applies the HasPrefix predicate on the "source_url" field.
func SourceURLHasPrefix(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldHasPrefix(FieldSourceURL, v))
}

// SourceURLHasSuffix applies the HasSuffix predicate on the "source_url" field.
func SourceURLHasSuffix(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldHasSuffix(FieldSourceURL, v))
}

// SourceURLEqualFold applies the EqualFold predicate on the "source_url" field.
func SourceURLEqualFold(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEqualFold(FieldSourceURL, v))
}

// SourceURLContainsFold applies the ContainsFold predicate on the "source_url" field.
func SourceURLContainsFold(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldContainsFold(FieldSourceURL, v))
}

// SourcePlatformEQ applies the EQ predicate on the "source_platform" field.
func SourcePlatformEQ(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldSourcePlatform, v))
}

// SourcePlatformNEQ applies the NEQ predicate on the "source_platform" field.
func SourcePlatformNEQ(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNEQ(FieldSourcePlatform, v))
}

// SourcePlatformIn applies the In predicate on the "source_platform" field.
func SourcePlatformIn(vs ...string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldIn(FieldSourcePlatform, vs...))
}

// SourcePlatformNotIn applies the NotIn predicate on the "source_platform" field.
func SourcePlatformNotIn(vs ...string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNotIn(FieldSourcePlatform, vs...))
}

// SourcePlatformGT applies the GT predicate on the "source_platform" field.
func SourcePlatformGT(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldGT(FieldSourcePlatform, v))
}

// SourcePlatformGTE applies the GTE predicate on the "source_platform" field.
func SourcePlatformGTE(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldGTE(FieldSourcePlatform, v))
}

// SourcePlatformLT applies the LT predicate on the "source_platform" field.
func SourcePlatformLT(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldLT(FieldSourcePlatform, v))
}

// SourcePlatformLTE applies the LTE predicate on the "source_platform" field.
func SourcePlatformLTE(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldLTE(FieldSourcePlatform, v))
}

// SourcePlatformContains applies the Contains predicate on the "source_platform" field.
func SourcePlatformContains(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldContains(FieldSourcePlatform, v))
}

// SourcePlatformHasPrefix applies the HasPrefix predicate on the "source_platform" field.
func SourcePlatformHasPrefix(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldHasPrefix(FieldSourcePlatform, v))
}

// SourcePlatformHasSuffix applies the HasSuffix predicate on the "source_platform" field.
func SourcePlatformHasSuffix(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldHasSuffix(FieldSourcePlatform, v))
}

// SourcePlatformEqualFold applies the EqualFold predicate on the "source_platform" field.
func SourcePlatformEqualFold(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEqualFold(FieldSourcePlatform, v))
}

// SourcePlatformContainsFold applies the ContainsFold predicate on the "source_platform" field.
func SourcePlatformContainsFold(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldContainsFold(FieldSourcePlatform, v))
}

// PostedAtEQ applies the EQ predicate on the "posted_at" field.
func PostedAtEQ(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldPostedAt, v))
}

// PostedAtNEQ applies the NEQ predicate on the "posted_at" field.
func PostedAtNEQ(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNEQ(FieldPostedAt, v))
}

// PostedAtIn applies the In predicate on the "posted_at" field.
func PostedAtIn(vs ...time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldIn(FieldPostedAt, vs...))
}

// PostedAtNotIn applies the NotIn predicate on the "posted_at" field.
func PostedAtNotIn(vs ...time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNotIn(FieldPostedAt, vs...))
}

// PostedAtGT applies the GT predicate on the "posted_at" field.
func PostedAtGT(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldGT(FieldPostedAt, v))
}

// PostedAtGTE applies the GTE predicate on the "posted_at" field.
func PostedAtGTE(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldGTE(FieldPostedAt, v))
}

// PostedAtLT applies the LT predicate on the "posted_at" field.
func PostedAtLT(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldLT(FieldPostedAt, v))
}

// PostedAtLTE applies the LTE predicate on the "posted_at" field.
func PostedAtLTE(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldLTE(FieldPostedAt, v))
}

// CollectedAtEQ applies the EQ predicate on the "collected_at" field.
func CollectedAtEQ(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldCollectedAt, v))
}

// CollectedAtNEQ applies the NEQ predicate on the "collected_at" field.
func CollectedAtNEQ(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNEQ(FieldCollectedAt, v))
}

// CollectedAtIn applies the In predicate on the "collected_at" field.
func CollectedAtIn(vs ...time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldIn(FieldCollectedAt, vs...))
}

// CollectedAtNotIn applies the NotIn predicate on the "collected_at" field.
func CollectedAtNotIn(vs ...time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNotIn(FieldCollectedAt, vs...))
}

// CollectedAtGT applies the GT predicate on the "collected_at" field.
func CollectedAtGT(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldGT(FieldCollectedAt, v))
}

// CollectedAtGTE applies the GTE predicate on the "collected_at" field.
func CollectedAtGTE(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldGTE(FieldCollectedAt, v))
}

// CollectedAtLT applies the LT predicate on the "collected_at" field.
func CollectedAtLT(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldLT(FieldCollectedAt, v))
}

// CollectedAtLTE applies the LTE predicate on the "collected_at" field.
func CollectedAtLTE(v time.Time) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldLTE(FieldCollectedAt, v))
}

// RawExtractionEQ applies the EQ predicate on the "raw_extraction" field.
func RawExtractionEQ(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEQ(FieldRawExtraction, v))
}

// RawExtractionNEQ applies the NEQ predicate on the "raw_extraction" field.
func RawExtractionNEQ(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNEQ(FieldRawExtraction, v))
}

// RawExtractionIn applies the In predicate on the "raw_extraction" field.
func RawExtractionIn(vs ...string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldIn(FieldRawExtraction, vs...))
}

// RawExtractionNotIn applies the NotIn predicate on the "raw_extraction" field.
func RawExtractionNotIn(vs ...string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNotIn(FieldRawExtraction, vs...))
}

// RawExtractionGT applies the GT predicate on the "raw_extraction" field.
func RawExtractionGT(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldGT(FieldRawExtraction, v))
}

// RawExtractionGTE applies the GTE predicate on the "raw_extraction" field.
func RawExtractionGTE(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldGTE(FieldRawExtraction, v))
}

// RawExtractionLT applies the LT predicate on the "raw_extraction" field.
func RawExtractionLT(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldLT(FieldRawExtraction, v))
}

// RawExtractionLTE applies the LTE predicate on the "raw_extraction" field.
func RawExtractionLTE(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldLTE(FieldRawExtraction, v))
}

// RawExtractionContains applies the Contains predicate on the "raw_extraction" field.
func RawExtractionContains(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldContains(FieldRawExtraction, v))
}

// RawExtractionHasPrefix applies the HasPrefix predicate on the "raw_extraction" field.
func RawExtractionHasPrefix(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldHasPrefix(FieldRawExtraction, v))
}

// RawExtractionHasSuffix applies the HasSuffix predicate on the "raw_extraction" field.
func RawExtractionHasSuffix(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldHasSuffix(FieldRawExtraction, v))
}

// RawExtractionIsNil applies the IsNil predicate on the "raw_extraction" field.
func RawExtractionIsNil() predicate.Conclusion {
	return predicate.Conclusion(sql.FieldIsNull(FieldRawExtraction))
}

// RawExtractionNotNil applies the NotNil predicate on the "raw_extraction" field.
func RawExtractionNotNil() predicate.Conclusion {
	return predicate.Conclusion(sql.FieldNotNull(FieldRawExtraction))
}

// RawExtractionEqualFold applies the EqualFold predicate on the "raw_extraction" field.
func RawExtractionEqualFold(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldEqualFold(FieldRawExtraction, v))
}

// RawExtractionContainsFold applies the ContainsFold predicate on the "raw_extraction" field.
func RawExtractionContainsFold(v string) predicate.Conclusion {
	return predicate.Conclusion(sql.FieldContainsFold(FieldRawExtraction, v))
}

// HasTopic applies the HasEdge predicate on the "topic" edge.
func HasTopic() predicate.Conclusion {
	return predicate.Conclusion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TopicTable, TopicColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTopicWith applies the HasEdge predicate on the "topic" edge with a given conditions (other predicates).
func HasTopicWith(preds ...predicate.Topic) predicate.Conclusion {
	return predicate.Conclusion(func(s *sql.Selector) {
		step := newTopicStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAuthor applies the HasEdge predicate on the "author" edge.
func HasAuthor() predicate.Conclusion {
	return predicate.Conclusion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AuthorTable, AuthorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuthorWith applies the HasEdge predicate on the "author" edge with a given conditions (other predicates).
func HasAuthorWith(preds ...predicate.Author) predicate.Conclusion {
	return predicate.Conclusion(func(s *sql.Selector) {
		step := newAuthorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLogics applies the HasEdge predicate on the "logics" edge.
func HasLogics() predicate.Conclusion {
	return predicate.Conclusion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LogicsTable, LogicsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLogicsWith applies the HasEdge predicate on the "logics" edge with a given conditions (other predicates).
func HasLogicsWith(preds ...predicate.Logic) predicate.Conclusion {
	return predicate.Conclusion(func(s *sql.Selector) {
		step := newLogicsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasVerdicts applies the HasEdge predicate on the "verdicts" edge.
func HasVerdicts() predicate.Conclusion {
	return predicate.Conclusion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VerdictsTable, VerdictsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVerdictsWith applies the HasEdge predicate on the "verdicts" edge with a given conditions (other predicates).
func HasVerdictsWith(preds ...predicate.ConclusionVerdict) predicate.Conclusion {
	return predicate.Conclusion(func(s *sql.Selector) {
		step := newVerdictsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Conclusion) predicate.Conclusion {
	return predicate.Conclusion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Conclusion) predicate.Conclusion {
	return predicate.Conclusion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Conclusion) predicate.Conclusion {
	return predicate.Conclusion(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package rawpost

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/credlens/pundit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RawPost {
	return predicate.RawPost(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RawPost {
	return predicate.RawPost(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RawPost {
	return predicate.RawPost(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RawPost {
	return predicate.RawPost(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RawPost {
	return predicate.RawPost(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RawPost {
	return predicate.RawPost(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RawPost {
	return predicate.RawPost(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RawPost {
	return predicate.RawPost(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RawPost {
	return predicate.RawPost(sql.FieldLTE(FieldID, id))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldEQ(FieldSource, v))
}

// ExternalID applies equality check predicate on the "external_id" field. It's identical to ExternalIDEQ.
func ExternalID(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldEQ(FieldExternalID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldEQ(FieldContent, v))
}

// EnrichedContent applies equality check predicate on the "enriched_content" field. It's identical to EnrichedContentEQ.
func EnrichedContent(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldEQ(FieldEnrichedContent, v))
}

// ContextFetched applies equality check predicate on the "context_fetched" field. It's identical to ContextFetchedEQ.
func ContextFetched(v bool) predicate.RawPost {
	return predicate.RawPost(sql.FieldEQ(FieldContextFetched, v))
}

// HasContext applies equality check predicate on the "has_context" field. It's identical to HasContextEQ.
func HasContext(v bool) predicate.RawPost {
	return predicate.RawPost(sql.FieldEQ(FieldHasContext, v))
}

// AuthorName applies equality check predicate on the "author_name" field. It's identical to AuthorNameEQ.
func AuthorName(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldEQ(FieldAuthorName, v))
}

// AuthorPlatformID applies equality check predicate on the "author_platform_id" field. It's identical to AuthorPlatformIDEQ.
func AuthorPlatformID(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldEQ(FieldAuthorPlatformID, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldEQ(FieldURL, v))
}

// PostedAt applies equality check predicate on the "posted_at" field. It's identical to PostedAtEQ.
func PostedAt(v time.Time) predicate.RawPost {
	return predicate.RawPost(sql.FieldEQ(FieldPostedAt, v))
}

// CollectedAt applies equality check predicate on the "collected_at" field. It's identical to CollectedAtEQ.
func CollectedAt(v time.Time) predicate.RawPost {
	return predicate.RawPost(sql.FieldEQ(FieldCollectedAt, v))
}

// RawMetadata applies equality check predicate on the "raw_metadata" field. It's identical to RawMetadataEQ.
func RawMetadata(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldEQ(FieldRawMetadata, v))
}

// MediaJSON applies equality check predicate on the "media_json" field. It's identical to MediaJSONEQ.
func MediaJSON(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldEQ(FieldMediaJSON, v))
}

// IsProcessed applies equality check predicate on the "is_processed" field. It's identical to IsProcessedEQ.
func IsProcessed(v bool) predicate.RawPost {
	return predicate.RawPost(sql.FieldEQ(FieldIsProcessed, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.RawPost {
	return predicate.RawPost(sql.FieldEQ(FieldProcessedAt, v))
}

// MonitoredSourceID applies equality check predicate on the "monitored_source_id" field. It's identical to MonitoredSourceIDEQ.
func MonitoredSourceID(v int) predicate.RawPost {
	return predicate.RawPost(sql.FieldEQ(FieldMonitoredSourceID, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.RawPost {
	return predicate.RawPost(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.RawPost {
	return predicate.RawPost(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldContainsFold(FieldSource, v))
}

// ExternalIDEQ applies the EQ predicate on the "external_id" field.
func ExternalIDEQ(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldEQ(FieldExternalID, v))
}

// ExternalIDNEQ applies the NEQ predicate on the "external_id" field.
func ExternalIDNEQ(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldNEQ(FieldExternalID, v))
}

// ExternalIDIn applies the In predicate on the "external_id" field.
func ExternalIDIn(vs ...string) predicate.RawPost {
	return predicate.RawPost(sql.FieldIn(FieldExternalID, vs...))
}

// ExternalIDNotIn applies the NotIn predicate on the "external_id" field.
func ExternalIDNotIn(vs ...string) predicate.RawPost {
	return predicate.RawPost(sql.FieldNotIn(FieldExternalID, vs...))
}

// ExternalIDGT applies the GT predicate on the "external_id" field.
func ExternalIDGT(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldGT(FieldExternalID, v))
}

// ExternalIDGTE applies the GTE predicate on the "external_id" field.
func ExternalIDGTE(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldGTE(FieldExternalID, v))
}

// ExternalIDLT applies the LT predicate on the "external_id" field.
func ExternalIDLT(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldLT(FieldExternalID, v))
}

// ExternalIDLTE applies the LTE predicate on the "external_id" field.
func ExternalIDLTE(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldLTE(FieldExternalID, v))
}

// ExternalIDContains applies the Contains predicate on the "external_id" field.
func ExternalIDContains(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldContains(FieldExternalID, v))
}

// ExternalIDHasPrefix applies the HasPrefix predicate on the "external_id" field.
func ExternalIDHasPrefix(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldHasPrefix(FieldExternalID, v))
}

// ExternalIDHasSuffix applies the HasSuffix predicate on the "external_id" field.
func ExternalIDHasSuffix(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldHasSuffix(FieldExternalID, v))
}

// ExternalIDEqualFold applies the EqualFold predicate on the "external_id" field.
func ExternalIDEqualFold(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldEqualFold(FieldExternalID, v))
}

// ExternalIDContainsFold applies the ContainsFold predicate on the "external_id" field.
func ExternalIDContainsFold(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldContainsFold(FieldExternalID, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.RawPost {
	return predicate.RawPost(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.RawPost {
	return predicate.RawPost(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldContainsFold(FieldContent, v))
}

// EnrichedContentEQ applies the EQ predicate on the "enriched_content" field.
func EnrichedContentEQ(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldEQ(FieldEnrichedContent, v))
}

// EnrichedContentNEQ applies the NEQ predicate on the "enriched_content" field.
func EnrichedContentNEQ(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldNEQ(FieldEnrichedContent, v))
}

// EnrichedContentIn applies the In predicate on the "enriched_content" field.
func EnrichedContentIn(vs ...string) predicate.RawPost {
	return predicate.RawPost(sql.FieldIn(FieldEnrichedContent, vs...))
}

// EnrichedContentNotIn applies the NotIn predicate on the "enriched_content" field.
func EnrichedContentNotIn(vs ...string) predicate.RawPost {
	return predicate.RawPost(sql.FieldNotIn(FieldEnrichedContent, vs...))
}

// EnrichedContentGT applies the GT predicate on the "enriched_content" field.
func EnrichedContentGT(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldGT(FieldEnrichedContent, v))
}

// EnrichedContentGTE applies the GTE predicate on the "enriched_content" field.
func EnrichedContentGTE(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldGTE(FieldEnrichedContent, v))
}

// EnrichedContentLT applies the LT predicate on the "enriched_content" field.
func EnrichedContentLT(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldLT(FieldEnrichedContent, v))
}

// EnrichedContentLTE applies the LTE predicate on the "enriched_content" field.
func EnrichedContentLTE(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldLTE(FieldEnrichedContent, v))
}

// EnrichedContentContains applies the Contains predicate on the "enriched_content" field.
func EnrichedContentContains(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldContains(FieldEnrichedContent, v))
}

// EnrichedContentHasPrefix applies the HasPrefix predicate on the "enriched_content" field.
func EnrichedContentHasPrefix(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldHasPrefix(FieldEnrichedContent, v))
}

// EnrichedContentHasSuffix applies the HasSuffix predicate on the "enriched_content" field.
func EnrichedContentHasSuffix(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldHasSuffix(FieldEnrichedContent, v))
}

// EnrichedContentIsNil applies the IsNil predicate on the "enriched_content" field.
func EnrichedContentIsNil() predicate.RawPost {
	return predicate.RawPost(sql.FieldIsNull(FieldEnrichedContent))
}

// EnrichedContentNotNil applies the NotNil predicate on the "enriched_content" field.
func EnrichedContentNotNil() predicate.RawPost {
	return predicate.RawPost(sql.FieldNotNull(FieldEnrichedContent))
}

// EnrichedContentEqualFold applies the EqualFold predicate on the "enriched_content" field.
func EnrichedContentEqualFold(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldEqualFold(FieldEnrichedContent, v))
}

// EnrichedContentContainsFold applies the ContainsFold predicate on the "enriched_content" field.
func EnrichedContentContainsFold(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldContainsFold(FieldEnrichedContent, v))
}

// ContextFetchedEQ applies the EQ predicate on the "context_fetched" field.
func ContextFetchedEQ(v bool) predicate.RawPost {
	return predicate.RawPost(sql.FieldEQ(FieldContextFetched, v))
}

// ContextFetchedNEQ applies the NEQ predicate on the "context_fetched" field.
func ContextFetchedNEQ(v bool) predicate.RawPost {
	return predicate.RawPost(sql.FieldNEQ(FieldContextFetched, v))
}

// HasContextEQ applies the EQ predicate on the "has_context" field.
func HasContextEQ(v bool) predicate.RawPost {
	return predicate.RawPost(sql.FieldEQ(FieldHasContext, v))
}

// HasContextNEQ applies the NEQ predicate on the "has_context" field.
func HasContextNEQ(v bool) predicate.RawPost {
	return predicate.RawPost(sql.FieldNEQ(FieldHasContext, v))
}

// AuthorNameEQ applies the EQ predicate on the "author_name" field.
func AuthorNameEQ(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldEQ(FieldAuthorName, v))
}

// AuthorNameNEQ applies the NEQ predicate on the "author_name" field.
func AuthorNameNEQ(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldNEQ(FieldAuthorName, v))
}

// AuthorNameIn applies the In predicate on the "author_name" field.
func AuthorNameIn(vs ...string) predicate.RawPost {
	return predicate.RawPost(sql.FieldIn(FieldAuthorName, vs...))
}

// AuthorNameNotIn applies the NotIn predicate on the "author_name" field.
func AuthorNameNotIn(vs ...string) predicate.RawPost {
	return predicate.RawPost(sql.FieldNotIn(FieldAuthorName, vs...))
}

// AuthorNameGT applies the GT predicate on the "author_name" field.
func AuthorNameGT(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldGT(FieldAuthorName, v))
}

// AuthorNameGTE applies the GTE predicate on the "author_name" field.
func AuthorNameGTE(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldGTE(FieldAuthorName, v))
}

// AuthorNameLT applies the LT predicate on the "author_name" field.
func AuthorNameLT(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldLT(FieldAuthorName, v))
}

// AuthorNameLTE applies the LTE predicate on the "author_name" field.
func AuthorNameLTE(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldLTE(FieldAuthorName, v))
}

// AuthorNameContains applies the Contains predicate on the "author_name" field.
func AuthorNameContains(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldContains(FieldAuthorName, v))
}

// AuthorNameHasPrefix applies the HasPrefix predicate on the "author_name" field.
func AuthorNameHasPrefix(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldHasPrefix(FieldAuthorName, v))
}

// AuthorNameHasSuffix applies the HasSuffix predicate on the "author_name" field.
func AuthorNameHasSuffix(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldHasSuffix(FieldAuthorName, v))
}

// AuthorNameEqualFold applies the EqualFold predicate on the "author_name" field.
func AuthorNameEqualFold(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldEqualFold(FieldAuthorName, v))
}

// AuthorNameContainsFold applies the ContainsFold predicate on the "author_name" field.
func AuthorNameContainsFold(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldContainsFold(FieldAuthorName, v))
}

// AuthorPlatformIDEQ applies the EQ predicate on the "author_platform_id" field.
func AuthorPlatformIDEQ(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldEQ(FieldAuthorPlatformID, v))
}

// AuthorPlatformIDNEQ applies the NEQ predicate on the "author_platform_id" field.
func AuthorPlatformIDNEQ(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldNEQ(FieldAuthorPlatformID, v))
}

// AuthorPlatformIDIn applies the In predicate on the "author_platform_id" field.
func AuthorPlatformIDIn(vs ...string) predicate.RawPost {
	return predicate.RawPost(sql.FieldIn(FieldAuthorPlatformID, vs...))
}

// AuthorPlatformIDNotIn applies the NotIn predicate on the "author_platform_id" field.
func AuthorPlatformIDNotIn(vs ...string) predicate.RawPost {
	return predicate.RawPost(sql.FieldNotIn(FieldAuthorPlatformID, vs...))
}

// AuthorPlatformIDGT applies the GT predicate on the "author_platform_id" field.
func AuthorPlatformIDGT(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldGT(FieldAuthorPlatformID, v))
}

// AuthorPlatformIDGTE applies the GTE predicate on the "author_platform_id" field.
func AuthorPlatformIDGTE(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldGTE(FieldAuthorPlatformID, v))
}

// AuthorPlatformIDLT applies the LT predicate on the "author_platform_id" field.
func AuthorPlatformIDLT(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldLT(FieldAuthorPlatformID, v))
}

// AuthorPlatformIDLTE applies the LTE predicate on the "author_platform_id" field.
func AuthorPlatformIDLTE(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldLTE(FieldAuthorPlatformID, v))
}

// AuthorPlatformIDContains applies the Contains predicate on the "author_platform_id" field.
func AuthorPlatformIDContains(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldContains(FieldAuthorPlatformID, v))
}

// AuthorPlatformIDHasPrefix applies the HasPrefix predicate on the "author_platform_id" field.
func AuthorPlatformIDHasPrefix(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldHasPrefix(FieldAuthorPlatformID, v))
}

// AuthorPlatformIDHasSuffix applies the HasSuffix predicate on the "author_platform_id" field.
func AuthorPlatformIDHasSuffix(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldHasSuffix(FieldAuthorPlatformID, v))
}

// AuthorPlatformIDIsNil applies the IsNil predicate on the "author_platform_id" field.
func AuthorPlatformIDIsNil() predicate.RawPost {
	return predicate.RawPost(sql.FieldIsNull(FieldAuthorPlatformID))
}

// AuthorPlatformIDNotNil applies the NotNil predicate on the "author_platform_id" field.
func AuthorPlatformIDNotNil() predicate.RawPost {
	return predicate.RawPost(sql.FieldNotNull(FieldAuthorPlatformID))
}

// AuthorPlatformIDEqualFold applies the EqualFold predicate on the "author_platform_id" field.
func AuthorPlatformIDEqualFold(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldEqualFold(FieldAuthorPlatformID, v))
}

// AuthorPlatformIDContainsFold applies the ContainsFold predicate on the "author_platform_id" field.
func AuthorPlatformIDContainsFold(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldContainsFold(FieldAuthorPlatformID, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.RawPost {
	return predicate.RawPost(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.RawPost {
	return predicate.RawPost(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldContainsFold(FieldURL, v))
}

// PostedAtEQ applies the EQ predicate on the "posted_at" field.
func PostedAtEQ(v time.Time) predicate.RawPost {
	return predicate.RawPost(sql.FieldEQ(FieldPostedAt, v))
}

// PostedAtNEQ applies the NEQ predicate on the "posted_at" field.
func PostedAtNEQ(v time.Time) predicate.RawPost {
	return predicate.RawPost(sql.FieldNEQ(FieldPostedAt, v))
}

// PostedAtIn applies the In predicate on the "posted_at" field.
func PostedAtIn(vs ...time.Time) predicate.RawPost {
	return predicate.RawPost(sql.FieldIn(FieldPostedAt, vs...))
}

// PostedAtNotIn applies the NotIn predicate on the "posted_at" field.
func PostedAtNotIn(vs ...time.Time) predicate.RawPost {
	return predicate.RawPost(sql.FieldNotIn(FieldPostedAt, vs...))
}

// PostedAtGT applies the GT predicate on the "posted_at" field.
func PostedAtGT(v time.Time) predicate.RawPost {
	return predicate.RawPost(sql.FieldGT(FieldPostedAt, v))
}

// PostedAtGTE applies the GTE predicate on the "posted_at" field.
func PostedAtGTE(v time.Time) predicate.RawPost {
	return predicate.RawPost(sql.FieldGTE(FieldPostedAt, v))
}

// PostedAtLT applies the LT predicate on the "posted_at" field.
func PostedAtLT(v time.Time) predicate.RawPost {
	return predicate.RawPost(sql.FieldLT(FieldPostedAt, v))
}

// PostedAtLTE applies the LTE predicate on the "posted_at" field.
func PostedAtLTE(v time.Time) predicate.RawPost {
	return predicate.RawPost(sql.FieldLTE(FieldPostedAt, v))
}

// CollectedAtEQ applies the EQ predicate on the "collected_at" field.
func CollectedAtEQ(v time.Time) predicate.RawPost {
	return predicate.RawPost(sql.FieldEQ(FieldCollectedAt, v))
}

// CollectedAtNEQ applies the NEQ predicate on the "collected_at" field.
func CollectedAtNEQ(v time.Time) predicate.RawPost {
	return predicate.RawPost(sql.FieldNEQ(FieldCollectedAt, v))
}

// CollectedAtIn applies the In predicate on the "collected_at" field.
func CollectedAtIn(vs ...time.Time) predicate.RawPost {
	return predicate.RawPost(sql.FieldIn(FieldCollectedAt, vs...))
}

// CollectedAtNotIn applies the NotIn predicate on the "collected_at" field.
func CollectedAtNotIn(vs ...time.Time) predicate.RawPost {
	return predicate.RawPost(sql.FieldNotIn(FieldCollectedAt, vs...))
}

// CollectedAtGT applies the GT predicate on the "collected_at" field.
func CollectedAtGT(v time.Time) predicate.RawPost {
	return predicate.RawPost(sql.FieldGT(FieldCollectedAt, v))
}

// CollectedAtGTE applies the GTE predicate on the "collected_at" field.
func CollectedAtGTE(v time.Time) predicate.RawPost {
	return predicate.RawPost(sql.FieldGTE(FieldCollectedAt, v))
}

// CollectedAtLT applies the LT predicate on the "collected_at" field.
func CollectedAtLT(v time.Time) predicate.RawPost {
	return predicate.RawPost(sql.FieldLT(FieldCollectedAt, v))
}

// CollectedAtLTE applies the LTE predicate on the "collected_at" field.
func CollectedAtLTE(v time.Time) predicate.RawPost {
	return predicate.RawPost(sql.FieldLTE(FieldCollectedAt, v))
}

// RawMetadataEQ applies the EQ predicate on the "raw_metadata" field.
func RawMetadataEQ(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldEQ(FieldRawMetadata, v))
}

// RawMetadataNEQ applies the NEQ predicate on the "raw_metadata" field.
func RawMetadataNEQ(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldNEQ(FieldRawMetadata, v))
}

// RawMetadataIn applies the In predicate on the "raw_metadata" field.
func RawMetadataIn(vs ...string) predicate.RawPost {
	return predicate.RawPost(sql.FieldIn(FieldRawMetadata, vs...))
}

// RawMetadataNotIn applies the NotIn predicate on the "raw_metadata" field.
func RawMetadataNotIn(vs ...string) predicate.RawPost {
	return predicate.RawPost(sql.FieldNotIn(FieldRawMetadata, vs...))
}

// RawMetadataGT applies the GT predicate on the "raw_metadata" field.
func RawMetadataGT(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldGT(FieldRawMetadata, v))
}

// RawMetadataGTE applies the GTE predicate on the "raw_metadata" field.
func RawMetadataGTE(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldGTE(FieldRawMetadata, v))
}

// RawMetadataLT applies the LT predicate on the "raw_metadata" field.
func RawMetadataLT(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldLT(FieldRawMetadata, v))
}

// RawMetadataLTE applies the LTE predicate on the "raw_metadata" field.
func RawMetadataLTE(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldLTE(FieldRawMetadata, v))
}

// RawMetadataContains applies the Contains predicate on the "raw_metadata" field.
func RawMetadataContains(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldContains(FieldRawMetadata, v))
}

// RawMetadataHasPrefix applies the HasPrefix predicate on the "raw_metadata" field.
func RawMetadataHasPrefix(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldHasPrefix(FieldRawMetadata, v))
}

// RawMetadataHasSuffix applies the HasSuffix predicate on the "raw_metadata" field.
func RawMetadataHasSuffix(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldHasSuffix(FieldRawMetadata, v))
}

// RawMetadataIsNil applies the IsNil predicate on the "raw_metadata" field.
func RawMetadataIsNil() predicate.RawPost {
	return predicate.RawPost(sql.FieldIsNull(FieldRawMetadata))
}

// RawMetadataNotNil applies the NotNil predicate on the "raw_metadata" field.
func RawMetadataNotNil() predicate.RawPost {
	return predicate.RawPost(sql.FieldNotNull(FieldRawMetadata))
}

// RawMetadataEqualFold applies the EqualFold predicate on the "raw_metadata" field.
func RawMetadataEqualFold(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldEqualFold(FieldRawMetadata, v))
}

// RawMetadataContainsFold applies the ContainsFold predicate on the "raw_metadata" field.
func RawMetadataContainsFold(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldContainsFold(FieldRawMetadata, v))
}

// MediaJSONEQ applies the EQ predicate on the "media_json" field.
func MediaJSONEQ(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldEQ(FieldMediaJSON, v))
}

// MediaJSONNEQ applies the NEQ predicate on the "media_json" field.
func MediaJSONNEQ(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldNEQ(FieldMediaJSON, v))
}

// MediaJSONIn applies the In predicate on the "media_json" field.
func MediaJSONIn(vs ...string) predicate.RawPost {
	return predicate.RawPost(sql.FieldIn(FieldMediaJSON, vs...))
}

// MediaJSONNotIn applies the NotIn predicate on the "media_json" field.
func MediaJSONNotIn(vs ...string) predicate.RawPost {
	return predicate.RawPost(sql.FieldNotIn(FieldMediaJSON, vs...))
}

// MediaJSONGT applies the GT predicate on the "media_json" field.
func MediaJSONGT(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldGT(FieldMediaJSON, v))
}

// MediaJSONGTE applies the GTE predicate on the "media_json" field.
func MediaJSONGTE(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldGTE(FieldMediaJSON, v))
}

// MediaJSONLT applies the LT predicate on the "media_json" field.
func MediaJSONLT(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldLT(FieldMediaJSON, v))
}

// MediaJSONLTE applies the LTE predicate on the "media_json" field.
func MediaJSONLTE(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldLTE(FieldMediaJSON, v))
}

// MediaJSONContains applies the Contains predicate on the "media_json" field.
func MediaJSONContains(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldContains(FieldMediaJSON, v))
}

// MediaJSONHasPrefix applies the HasPrefix predicate on the "media_json" field.
func MediaJSONHasPrefix(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldHasPrefix(FieldMediaJSON, v))
}

// MediaJSONHasSuffix applies the HasSuffix predicate on the "media_json" field.
func MediaJSONHasSuffix(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldHasSuffix(FieldMediaJSON, v))
}

// MediaJSONIsNil applies the IsNil predicate on the "media_json" field.
func MediaJSONIsNil() predicate.RawPost {
	return predicate.RawPost(sql.FieldIsNull(FieldMediaJSON))
}

// MediaJSONNotNil applies the NotNil predicate on the "media_json" field.
func MediaJSONNotNil() predicate.RawPost {
	return predicate.RawPost(sql.FieldNotNull(FieldMediaJSON))
}

// MediaJSONEqualFold applies the EqualFold predicate on the "media_json" field.
func MediaJSONEqualFold(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldEqualFold(FieldMediaJSON, v))
}

// MediaJSONContainsFold applies the ContainsFold predicate on the "media_json" field.
func MediaJSONContainsFold(v string) predicate.RawPost {
	return predicate.RawPost(sql.FieldContainsFold(FieldMediaJSON, v))
}

// IsProcessedEQ applies the EQ predicate on the "is_processed" field.
func IsProcessedEQ(v bool) predicate.RawPost {
	return predicate.RawPost(sql.FieldEQ(FieldIsProcessed, v))
}

// IsProcessedNEQ applies the NEQ predicate on the "is_processed" field.
func IsProcessedNEQ(v bool) predicate.RawPost {
	return predicate.RawPost(sql.FieldNEQ(FieldIsProcessed, v))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.RawPost {
	return predicate.RawPost(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.RawPost {
	return predicate.RawPost(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.RawPost {
	return predicate.RawPost(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.RawPost {
	return predicate.RawPost(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.RawPost {
	return predicate.RawPost(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.RawPost {
	return predicate.RawPost(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.RawPost {
	return predicate.RawPost(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.RawPost {
	return predicate.RawPost(sql.FieldLTE(FieldProcessedAt, v))
}

// ProcessedAtIsNil applies the IsNil predicate on the "processed_at" field.
func ProcessedAtIsNil() predicate.RawPost {
	return predicate.RawPost(sql.FieldIsNull(FieldProcessedAt))
}

// ProcessedAtNotNil applies the NotNil predicate on the "processed_at" field.
func ProcessedAtNotNil() predicate.RawPost {
	return predicate.RawPost(sql.FieldNotNull(FieldProcessedAt))
}

// MonitoredSourceIDEQ applies the EQ predicate on the "monitored_source_id" field.
func MonitoredSourceIDEQ(v int) predicate.RawPost {
	return predicate.RawPost(sql.FieldEQ(FieldMonitoredSourceID, v))
}

// MonitoredSourceIDNEQ applies the NEQ predicate on the "monitored_source_id" field.
func MonitoredSourceIDNEQ(v int) predicate.RawPost {
	return predicate.RawPost(sql.FieldNEQ(FieldMonitoredSourceID, v))
}

// MonitoredSourceIDIn applies the In predicate on the "monitored_source_id" field.
func MonitoredSourceIDIn(vs ...int) predicate.RawPost {
	return predicate.RawPost(sql.FieldIn(FieldMonitoredSourceID, vs...))
}

// MonitoredSourceIDNotIn applies the NotIn predicate on the "monitored_source_id" field.
func MonitoredSourceIDNotIn(vs ...int) predicate.RawPost {
	return predicate.RawPost(sql.FieldNotIn(FieldMonitoredSourceID, vs...))
}

// MonitoredSourceIDIsNil applies the IsNil predicate on the "monitored_source_id" field.
func MonitoredSourceIDIsNil() predicate.RawPost {
	return predicate.RawPost(sql.FieldIsNull(FieldMonitoredSourceID))
}

// MonitoredSourceIDNotNil applies the NotNil predicate on the "monitored_source_id" field.
func MonitoredSourceIDNotNil() predicate.RawPost {
	return predicate.RawPost(sql.FieldNotNull(FieldMonitoredSourceID))
}

// HasMonitoredSource applies the HasEdge predicate on the "monitored_source" edge.
func HasMonitoredSource() predicate.RawPost {
	return predicate.RawPost(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MonitoredSourceTable, MonitoredSourceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMonitoredSourceWith applies the HasEdge predicate on the "monitored_source" edge with a given conditions (other predicates).
func HasMonitoredSourceWith(preds ...predicate.MonitoredSource) predicate.RawPost {
	return predicate.RawPost(func(s *sql.Selector) {
		step := newMonitoredSourceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFacts applies the HasEdge predicate on the "facts" edge.
func HasFacts() predicate.RawPost {
	return predicate.RawPost(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FactsTable, FactsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFactsWith applies the HasEdge predicate on the "facts" edge with a given conditions (other predicates).
func HasFactsWith(preds ...predicate.Fact) predicate.RawPost {
	return predicate.RawPost(func(s *sql.Selector) {
		step := newFactsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLogics applies the HasEdge predicate on the "logics" edge.
func HasLogics() predicate.RawPost {
	return predicate.RawPost(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LogicsTable, LogicsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLogicsWith applies the HasEdge predicate on the "logics" edge with a given conditions (other predicates).
func HasLogicsWith(preds ...predicate.Logic) predicate.RawPost {
	return predicate.RawPost(func(s *sql.Selector) {
		step := newLogicsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQualityAssessment applies the HasEdge predicate on the "quality_assessment" edge.
func HasQualityAssessment() predicate.RawPost {
	return predicate.RawPost(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, QualityAssessmentTable, QualityAssessmentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQualityAssessmentWith applies the HasEdge predicate on the "quality_assessment" edge with a given conditions (other predicates).
func HasQualityAssessmentWith(preds ...predicate.PostQualityAssessment) predicate.RawPost {
	return predicate.RawPost(func(s *sql.Selector) {
		step := newQualityAssessmentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RawPost) predicate.RawPost {
	return predicate.RawPost(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RawPost) predicate.RawPost {
	return predicate.RawPost(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RawPost) predicate.RawPost {
	return predicate.RawPost(sql.NotPredicates(p))
}

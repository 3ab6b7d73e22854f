// Code generated by ent, DO NOT EDIT.

package monitoredsource

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/credlens/pundit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldLTE(FieldID, id))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldEQ(FieldURL, v))
}

// Platform applies equality check predicate on the "platform" field. It's identical to PlatformEQ.
func Platform(v string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldEQ(FieldPlatform, v))
}

// PlatformID applies equality check predicate on the "platform_id" field. It's identical to PlatformIDEQ.
func PlatformID(v string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldEQ(FieldPlatformID, v))
}

// AuthorID applies equality check predicate on the "author_id" field. It's identical to AuthorIDEQ.
func AuthorID(v int) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldEQ(FieldAuthorID, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldEQ(FieldIsActive, v))
}

// FetchIntervalMinutes applies equality check predicate on the "fetch_interval_minutes" field. It's identical to FetchIntervalMinutesEQ.
func FetchIntervalMinutes(v int) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldEQ(FieldFetchIntervalMinutes, v))
}

// LastFetchedAt applies equality check predicate on the "last_fetched_at" field. It's identical to LastFetchedAtEQ.
func LastFetchedAt(v time.Time) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldEQ(FieldLastFetchedAt, v))
}

// HistoryFetched applies equality check predicate on the "history_fetched" field. It's identical to HistoryFetchedEQ.
func HistoryFetched(v bool) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldEQ(FieldHistoryFetched, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldEQ(FieldCreatedAt, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldContainsFold(FieldURL, v))
}

// SourceTypeEQ applies the EQ predicate on the "source_type" field.
func SourceTypeEQ(v SourceType) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldEQ(FieldSourceType, v))
}

// SourceTypeNEQ applies the NEQ predicate on the "source_type" field.
func SourceTypeNEQ(v SourceType) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldNEQ(FieldSourceType, v))
}

// SourceTypeIn applies the In predicate on the "source_type" field.
func SourceTypeIn(vs ...SourceType) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldIn(FieldSourceType, vs...))
}

// SourceTypeNotIn applies the NotIn predicate on the "source_type" field.
func SourceTypeNotIn(vs ...SourceType) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldNotIn(FieldSourceType, vs...))
}

// PlatformEQ applies the EQ predicate on the "platform" field.
func PlatformEQ(v string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldEQ(FieldPlatform, v))
}

// PlatformNEQ applies the NEQ predicate on the "platform" field.
func PlatformNEQ(v string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldNEQ(FieldPlatform, v))
}

// PlatformIn applies the In predicate on the "platform" field.
func PlatformIn(vs ...string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldIn(FieldPlatform, vs...))
}

// PlatformNotIn applies the NotIn predicate on the "platform" field.
func PlatformNotIn(vs ...string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldNotIn(FieldPlatform, vs...))
}

// PlatformGT applies the GT predicate on the "platform" field.
func PlatformGT(v string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldGT(FieldPlatform, v))
}

// PlatformGTE applies the GTE predicate on the "platform" field.
func PlatformGTE(v string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldGTE(FieldPlatform, v))
}

// PlatformLT applies the LT predicate on the "platform" field.
func PlatformLT(v string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldLT(FieldPlatform, v))
}

// PlatformLTE applies the LTE predicate on the "platform" field.
func PlatformLTE(v string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldLTE(FieldPlatform, v))
}

// PlatformContains applies the Contains predicate on the "platform" field.
func PlatformContains(v string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldContains(FieldPlatform, v))
}

// PlatformHasPrefix applies the HasPrefix predicate on the "platform" field.
func PlatformHasPrefix(v string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldHasPrefix(FieldPlatform, v))
}

// PlatformHasSuffix applies the HasSuffix predicate on the "platform" field.
func PlatformHasSuffix(v string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldHasSuffix(FieldPlatform, v))
}

// PlatformEqualFold applies the EqualFold predicate on the "platform" field.
func PlatformEqualFold(v string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldEqualFold(FieldPlatform, v))
}

// PlatformContainsFold applies the ContainsFold predicate on the "platform" field.
func PlatformContainsFold(v string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldContainsFold(FieldPlatform, v))
}

// PlatformIDEQ applies the EQ predicate on the "platform_id" field.
func PlatformIDEQ(v string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldEQ(FieldPlatformID, v))
}

// PlatformIDNEQ applies the NEQ predicate on the "platform_id" field.
func PlatformIDNEQ(v string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldNEQ(FieldPlatformID, v))
}

// PlatformIDIn applies the In predicate on the "platform_id" field.
func PlatformIDIn(vs ...string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldIn(FieldPlatformID, vs...))
}

// PlatformIDNotIn applies the NotIn predicate on the "platform_id" field.
func PlatformIDNotIn(vs ...string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldNotIn(FieldPlatformID, vs...))
}

// PlatformIDGT applies the GT predicate on the "platform_id" field.
func PlatformIDGT(v string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldGT(FieldPlatformID, v))
}

// PlatformIDGTE applies the GTE predicate on the "platform_id" field.
func PlatformIDGTE(v string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldGTE(FieldPlatformID, v))
}

// PlatformIDLT applies the LT predicate on the "platform_id" field.
func PlatformIDLT(v string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldLT(FieldPlatformID, v))
}

// PlatformIDLTE applies the LTE predicate on the "platform_id" field.
func PlatformIDLTE(v string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldLTE(FieldPlatformID, v))
}

// PlatformIDContains applies the Contains predicate on the "platform_id" field.
func PlatformIDContains(v string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldContains(FieldPlatformID, v))
}

// PlatformIDHasPrefix applies the HasPrefix predicate on the "platform_id" field.
func PlatformIDHasPrefix(v string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldHasPrefix(FieldPlatformID, v))
}

// PlatformIDHasSuffix applies the HasSuffix predicate on the "platform_id" field.
func PlatformIDHasSuffix(v string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldHasSuffix(FieldPlatformID, v))
}

// PlatformIDEqualFold applies the EqualFold predicate on the "platform_id" field.
func PlatformIDEqualFold(v string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldEqualFold(FieldPlatformID, v))
}

// PlatformIDContainsFold applies the ContainsFold predicate on the "platform_id" field.
func PlatformIDContainsFold(v string) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldContainsFold(FieldPlatformID, v))
}

// AuthorIDEQ applies the EQ predicate on the "author_id" field.
func AuthorIDEQ(v int) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldEQ(FieldAuthorID, v))
}

// AuthorIDNEQ applies the NEQ predicate on the "author_id" field.
func AuthorIDNEQ(v int) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldNEQ(FieldAuthorID, v))
}

// AuthorIDIn applies the In predicate on the "author_id" field.
func AuthorIDIn(vs ...int) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldIn(FieldAuthorID, vs...))
}

// AuthorIDNotIn applies the NotIn predicate on the "author_id" field.
func AuthorIDNotIn(vs ...int) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldNotIn(FieldAuthorID, vs...))
}

// AuthorIDIsNil applies the IsNil predicate on the "author_id" field.
func AuthorIDIsNil() predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldIsNull(FieldAuthorID))
}

// AuthorIDNotNil applies the NotNil predicate on the "author_id" field.
func AuthorIDNotNil() predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldNotNull(FieldAuthorID))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldNEQ(FieldIsActive, v))
}

// FetchIntervalMinutesEQ applies the EQ predicate on the "fetch_interval_minutes" field.
func FetchIntervalMinutesEQ(v int) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldEQ(FieldFetchIntervalMinutes, v))
}

// FetchIntervalMinutesNEQ applies the NEQ predicate on the "fetch_interval_minutes" field.
func FetchIntervalMinutesNEQ(v int) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldNEQ(FieldFetchIntervalMinutes, v))
}

// FetchIntervalMinutesIn applies the In predicate on the "fetch_interval_minutes" field.
func FetchIntervalMinutesIn(vs ...int) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldIn(FieldFetchIntervalMinutes, vs...))
}

// FetchIntervalMinutesNotIn applies the NotIn predicate on the "fetch_interval_minutes" field.
func FetchIntervalMinutesNotIn(vs ...int) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldNotIn(FieldFetchIntervalMinutes, vs...))
}

// FetchIntervalMinutesGT applies the GT predicate on the "fetch_interval_minutes" field.
func FetchIntervalMinutesGT(v int) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldGT(FieldFetchIntervalMinutes, v))
}

// FetchIntervalMinutesGTE applies the GTE predicate on the "fetch_interval_minutes" field.
func FetchIntervalMinutesGTE(v int) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldGTE(FieldFetchIntervalMinutes, v))
}

// FetchIntervalMinutesLT applies the LT predicate on the "fetch_interval_minutes" field.
func FetchIntervalMinutesLT(v int) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldLT(FieldFetchIntervalMinutes, v))
}

// FetchIntervalMinutesLTE applies the LTE predicate on the "fetch_interval_minutes" field.
func FetchIntervalMinutesLTE(v int) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldLTE(FieldFetchIntervalMinutes, v))
}

// LastFetchedAtEQ applies the EQ predicate on the "last_fetched_at" field.
func LastFetchedAtEQ(v time.Time) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldEQ(FieldLastFetchedAt, v))
}

// LastFetchedAtNEQ applies the NEQ predicate on the "last_fetched_at" field.
func LastFetchedAtNEQ(v time.Time) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldNEQ(FieldLastFetchedAt, v))
}

// LastFetchedAtIn applies the In predicate on the "last_fetched_at" field.
func LastFetchedAtIn(vs ...time.Time) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldIn(FieldLastFetchedAt, vs...))
}

// LastFetchedAtNotIn applies the NotIn predicate on the "last_fetched_at" field.
func LastFetchedAtNotIn(vs ...time.Time) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldNotIn(FieldLastFetchedAt, vs...))
}

// LastFetchedAtGT applies the GT predicate on the "last_fetched_at" field.
func LastFetchedAtGT(v time.Time) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldGT(FieldLastFetchedAt, v))
}

// LastFetchedAtGTE applies the GTE predicate on the "last_fetched_at" field.
func LastFetchedAtGTE(v time.Time) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldGTE(FieldLastFetchedAt, v))
}

// LastFetchedAtLT applies the LT predicate on the "last_fetched_at" field.
func LastFetchedAtLT(v time.Time) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldLT(FieldLastFetchedAt, v))
}

// LastFetchedAtLTE applies the LTE predicate on the "last_fetched_at" field.
func LastFetchedAtLTE(v time.Time) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldLTE(FieldLastFetchedAt, v))
}

// LastFetchedAtIsNil applies the IsNil predicate on the "last_fetched_at" field.
func LastFetchedAtIsNil() predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldIsNull(FieldLastFetchedAt))
}

// LastFetchedAtNotNil applies the NotNil predicate on the "last_fetched_at" field.
func LastFetchedAtNotNil() predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldNotNull(FieldLastFetchedAt))
}

// HistoryFetchedEQ applies the EQ predicate on the "history_fetched" field.
func HistoryFetchedEQ(v bool) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldEQ(FieldHistoryFetched, v))
}

// HistoryFetchedNEQ applies the NEQ predicate on the "history_fetched" field.
func HistoryFetchedNEQ(v bool) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldNEQ(FieldHistoryFetched, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAuthor applies the HasEdge predicate on the "author" edge.
func HasAuthor() predicate.MonitoredSource {
	return predicate.MonitoredSource(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AuthorTable, AuthorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuthorWith applies the HasEdge predicate on the "author" edge with a given conditions (other predicates).
func HasAuthorWith(preds ...predicate.Author) predicate.MonitoredSource {
	return predicate.MonitoredSource(func(s *sql.Selector) {
		step := newAuthorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRawPosts applies the HasEdge predicate on the "raw_posts" edge.
func HasRawPosts() predicate.MonitoredSource {
	return predicate.MonitoredSource(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RawPostsTable, RawPostsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRawPostsWith applies the HasEdge predicate on the "raw_posts" edge with a given conditions (other predicates).
func HasRawPostsWith(preds ...predicate.RawPost) predicate.MonitoredSource {
	return predicate.MonitoredSource(func(s *sql.Selector) {
		step := newRawPostsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MonitoredSource) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MonitoredSource) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MonitoredSource) predicate.MonitoredSource {
	return predicate.MonitoredSource(sql.NotPredicates(p))
}

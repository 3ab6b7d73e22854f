// Code generated by ent, DO NOT EDIT.

package verificationreference

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/credlens/pundit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldLTE(FieldID, id))
}

// FactID applies equality check predicate on the "fact_id" field. It's identical to FactIDEQ.
func FactID(v int) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldEQ(FieldFactID, v))
}

// Organization applies equality check predicate on the "organization" field. It's identical to OrganizationEQ.
func Organization(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldEQ(FieldOrganization, v))
}

// DataDescription applies equality check predicate on the "data_description" field. It's identical to DataDescriptionEQ.
func DataDescription(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldEQ(FieldDataDescription, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldEQ(FieldURL, v))
}

// URLNote applies equality check predicate on the "url_note" field. It's identical to URLNoteEQ.
func URLNote(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldEQ(FieldURLNote, v))
}

// FactIDEQ applies the EQ predicate on the "fact_id" field.
func FactIDEQ(v int) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldEQ(FieldFactID, v))
}

// FactIDNEQ applies the NEQ predicate on the "fact_id" field.
func FactIDNEQ(v int) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldNEQ(FieldFactID, v))
}

// FactIDIn applies the In predicate on the "fact_id" field.
func FactIDIn(vs ...int) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldIn(FieldFactID, vs...))
}

// FactIDNotIn applies the NotIn predicate on the "fact_id" field.
func FactIDNotIn(vs ...int) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldNotIn(FieldFactID, vs...))
}

// OrganizationEQ applies the EQ predicate on the "organization" field.
func OrganizationEQ(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldEQ(FieldOrganization, v))
}

// OrganizationNEQ applies the NEQ predicate on the "organization" field.
func OrganizationNEQ(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldNEQ(FieldOrganization, v))
}

// OrganizationIn applies the In predicate on the "organization" field.
func OrganizationIn(vs ...string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldIn(FieldOrganization, vs...))
}

// OrganizationNotIn applies the NotIn predicate on the "organization" field.
func OrganizationNotIn(vs ...string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldNotIn(FieldOrganization, vs...))
}

// OrganizationGT applies the GT predicate on the "organization" field.
func OrganizationGT(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldGT(FieldOrganization, v))
}

// OrganizationGTE applies the GTE predicate on the "organization" field.
func OrganizationGTE(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldGTE(FieldOrganization, v))
}

// OrganizationLT applies the LT predicate on the "organization" field.
func OrganizationLT(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldLT(FieldOrganization, v))
}

// OrganizationLTE applies the LTE predicate on the "organization" field.
func OrganizationLTE(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldLTE(FieldOrganization, v))
}

// OrganizationContains applies the Contains predicate on the "organization" field.
func OrganizationContains(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldContains(FieldOrganization, v))
}

// OrganizationHasPrefix applies the HasPrefix predicate on the "organization" field.
func OrganizationHasPrefix(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldHasPrefix(FieldOrganization, v))
}

// OrganizationHasSuffix applies the HasSuffix predicate on the "organization" field.
func OrganizationHasSuffix(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldHasSuffix(FieldOrganization, v))
}

// OrganizationEqualFold applies the EqualFold predicate on the "organization" field.
func OrganizationEqualFold(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldEqualFold(FieldOrganization, v))
}

// OrganizationContainsFold applies the ContainsFold predicate on the "organization" field.
func OrganizationContainsFold(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldContainsFold(FieldOrganization, v))
}

// DataDescriptionEQ applies the EQ predicate on the "data_description" field.
func DataDescriptionEQ(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldEQ(FieldDataDescription, v))
}

// DataDescriptionNEQ applies the NEQ predicate on the "data_description" field.
func DataDescriptionNEQ(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldNEQ(FieldDataDescription, v))
}

// DataDescriptionIn applies the In predicate on the "data_description" field.
func DataDescriptionIn(vs ...string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldIn(FieldDataDescription, vs...))
}

// DataDescriptionNotIn applies the NotIn predicate on the "data_description" field.
func DataDescriptionNotIn(vs ...string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldNotIn(FieldDataDescription, vs...))
}

// DataDescriptionGT applies the GT predicate on the "data_description" field.
func DataDescriptionGT(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldGT(FieldDataDescription, v))
}

// DataDescriptionGTE applies the GTE predicate on the "data_description" field.
func DataDescriptionGTE(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldGTE(FieldDataDescription, v))
}

// DataDescriptionLT applies the LT predicate on the "data_description" field.
func DataDescriptionLT(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldLT(FieldDataDescription, v))
}

// DataDescriptionLTE applies the LTE predicate on the "data_description" field.
func DataDescriptionLTE(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldLTE(FieldDataDescription, v))
}

// DataDescriptionContains applies the Contains predicate on the "data_description" field.
func DataDescriptionContains(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldContains(FieldDataDescription, v))
}

// DataDescriptionHasPrefix applies the HasPrefix predicate on the "data_description" field.
func DataDescriptionHasPrefix(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldHasPrefix(FieldDataDescription, v))
}

// DataDescriptionHasSuffix applies the HasSuffix predicate on the "data_description" field.
func DataDescriptionHasSuffix(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldHasSuffix(FieldDataDescription, v))
}

// DataDescriptionEqualFold applies the EqualFold predicate on the "data_description" field.
func DataDescriptionEqualFold(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldEqualFold(FieldDataDescription, v))
}

// DataDescriptionContainsFold applies the ContainsFold predicate on the "data_description" field.
func DataDescriptionContainsFold(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldContainsFold(FieldDataDescription, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldHasSuffix(FieldURL, v))
}

// URLIsNil applies the IsNil predicate on the "url" field.
func URLIsNil() predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldIsNull(FieldURL))
}

// URLNotNil applies the NotNil predicate on the "url" field.
func URLNotNil() predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldNotNull(FieldURL))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldContainsFold(FieldURL, v))
}

// URLNoteEQ applies the EQ predicate on the "url_note" field.
func URLNoteEQ(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldEQ(FieldURLNote, v))
}

// URLNoteNEQ applies the NEQ predicate on the "url_note" field.
func URLNoteNEQ(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldNEQ(FieldURLNote, v))
}

// URLNoteIn applies the In predicate on the "url_note" field.
func URLNoteIn(vs ...string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldIn(FieldURLNote, vs...))
}

// URLNoteNotIn applies the NotIn predicate on the "url_note" field.
func URLNoteNotIn(vs ...string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldNotIn(FieldURLNote, vs...))
}

// URLNoteGT applies the GT predicate on the "url_note" field.
func URLNoteGT(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldGT(FieldURLNote, v))
}

// URLNoteGTE applies the GTE predicate on the "url_note" field.
func URLNoteGTE(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldGTE(FieldURLNote, v))
}

// URLNoteLT applies the LT predicate on the "url_note" field.
func URLNoteLT(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldLT(FieldURLNote, v))
}

// URLNoteLTE applies the LTE predicate on the "url_note" field.
func URLNoteLTE(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldLTE(FieldURLNote, v))
}

// URLNoteContains applies the Contains predicate on the "url_note" field.
func URLNoteContains(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldContains(FieldURLNote, v))
}

// URLNoteHasPrefix applies the HasPrefix predicate on the "url_note" field.
func URLNoteHasPrefix(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldHasPrefix(FieldURLNote, v))
}

// URLNoteHasSuffix applies the HasSuffix predicate on the "url_note" field.
func URLNoteHasSuffix(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldHasSuffix(FieldURLNote, v))
}

// URLNoteIsNil applies the IsNil predicate on the "url_note" field.
func URLNoteIsNil() predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldIsNull(FieldURLNote))
}

// URLNoteNotNil applies the NotNil predicate on the "url_note" field.
func URLNoteNotNil() predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldNotNull(FieldURLNote))
}

// URLNoteEqualFold applies the EqualFold predicate on the "url_note" field.
func URLNoteEqualFold(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldEqualFold(FieldURLNote, v))
}

// URLNoteContainsFold applies the ContainsFold predicate on the "url_note" field.
func URLNoteContainsFold(v string) predicate.VerificationReference {
	return predicate.VerificationReference(sql.FieldContainsFold(FieldURLNote, v))
}

// HasFact applies the HasEdge predicate on the "fact" edge.
func HasFact() predicate.VerificationReference {
	return predicate.VerificationReference(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FactTable, FactColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFactWith applies the HasEdge predicate on the "fact" edge with a given conditions (other predicates).
func HasFactWith(preds ...predicate.Fact) predicate.VerificationReference {
	return predicate.VerificationReference(func(s *sql.Selector) {
		step := newFactStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VerificationReference) predicate.VerificationReference {
	return predicate.VerificationReference(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VerificationReference) predicate.VerificationReference {
	return predicate.VerificationReference(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VerificationReference) predicate.VerificationReference {
	return predicate.VerificationReference(sql.NotPredicates(p))
}

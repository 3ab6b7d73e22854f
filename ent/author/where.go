// Code generated by ent, DO NOT EDIT.

package author

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/credlens/pundit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Author {
	return predicate.Author(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Author {
	return predicate.Author(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Author {
	return predicate.Author(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Author {
	return predicate.Author(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Author {
	return predicate.Author(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Author {
	return predicate.Author(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Author {
	return predicate.Author(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Author {
	return predicate.Author(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Author {
	return predicate.Author(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Author {
	return predicate.Author(sql.FieldEQ(FieldName, v))
}

// Platform applies equality check predicate on the "platform" field. It's identical to PlatformEQ.
func Platform(v string) predicate.Author {
	return predicate.Author(sql.FieldEQ(FieldPlatform, v))
}

// PlatformID applies equality check predicate on the "platform_id" field. It's identical to PlatformIDEQ.
func PlatformID(v string) predicate.Author {
	return predicate.Author(sql.FieldEQ(FieldPlatformID, v))
}

// ProfileURL applies equality check predicate on the "profile_url" field. It's identical to ProfileURLEQ.
func ProfileURL(v string) predicate.Author {
	return predicate.Author(sql.FieldEQ(FieldProfileURL, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Author {
	return predicate.Author(sql.FieldEQ(FieldDescription, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.Author {
	return predicate.Author(sql.FieldEQ(FieldRole, v))
}

// ExpertiseAreas applies equality check predicate on the "expertise_areas" field. It's identical to ExpertiseAreasEQ.
func ExpertiseAreas(v string) predicate.Author {
	return predicate.Author(sql.FieldEQ(FieldExpertiseAreas, v))
}

// KnownBiases applies equality check predicate on the "known_biases" field. It's identical to KnownBiasesEQ.
func KnownBiases(v string) predicate.Author {
	return predicate.Author(sql.FieldEQ(FieldKnownBiases, v))
}

// CredibilityTier applies equality check predicate on the "credibility_tier" field. It's identical to CredibilityTierEQ.
func CredibilityTier(v int) predicate.Author {
	return predicate.Author(sql.FieldEQ(FieldCredibilityTier, v))
}

// ProfileNote applies equality check predicate on the "profile_note" field. It's identical to ProfileNoteEQ.
func ProfileNote(v string) predicate.Author {
	return predicate.Author(sql.FieldEQ(FieldProfileNote, v))
}

// ProfileFetched applies equality check predicate on the "profile_fetched" field. It's identical to ProfileFetchedEQ.
func ProfileFetched(v bool) predicate.Author {
	return predicate.Author(sql.FieldEQ(FieldProfileFetched, v))
}

// ProfileFetchedAt applies equality check predicate on the "profile_fetched_at" field. It's identical to ProfileFetchedAtEQ.
func ProfileFetchedAt(v time.Time) predicate.Author {
	return predicate.Author(sql.FieldEQ(FieldProfileFetchedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Author {
	return predicate.Author(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Author {
	return predicate.Author(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Author {
	return predicate.Author(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Author {
	return predicate.Author(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Author {
	return predicate.Author(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Author {
	return predicate.Author(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Author {
	return predicate.Author(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Author {
	return predicate.Author(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Author {
	return predicate.Author(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Author {
	return predicate.Author(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Author {
	return predicate.Author(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Author {
	return predicate.Author(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Author {
	return predicate.Author(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Author {
	return predicate.Author(sql.FieldContainsFold(FieldName, v))
}

// PlatformEQ applies the EQ predicate on the "platform" field.
func PlatformEQ(v string) predicate.Author {
	return predicate.Author(sql.FieldEQ(FieldPlatform, v))
}

// PlatformNEQ applies the NEQ predicate on the "platform" field.
func PlatformNEQ(v string) predicate.Author {
	return predicate.Author(sql.FieldNEQ(FieldPlatform, v))
}

// PlatformIn applies the In predicate on the "platform" field.
func PlatformIn(vs ...string) predicate.Author {
	return predicate.Author(sql.FieldIn(FieldPlatform, vs...))
}

// PlatformNotIn applies the NotIn predicate on the "platform" field.
func PlatformNotIn(vs ...string) predicate.Author {
	return predicate.Author(sql.FieldNotIn(FieldPlatform, vs...))
}

// PlatformGT applies the GT predicate on the "platform" field.
func PlatformGT(v string) predicate.Author {
	return predicate.Author(sql.FieldGT(FieldPlatform, v))
}

// PlatformGTE applies the GTE predicate on the "platform" field.
func PlatformGTE(v string) predicate.Author {
	return predicate.Author(sql.FieldGTE(FieldPlatform, v))
}

// PlatformLT applies the LT predicate on the "platform" field.
func PlatformLT(v string) predicate.Author {
	return predicate.Author(sql.FieldLT(FieldPlatform, v))
}

// PlatformLTE applies the LTE predicate on the "platform" field.
func PlatformLTE(v string) predicate.Author {
	return predicate.Author(sql.FieldLTE(FieldPlatform, v))
}

// PlatformContains applies the Contains predicate on the "platform" field.
func PlatformContains(v string) predicate.Author {
	return predicate.Author(sql.FieldContains(FieldPlatform, v))
}

// PlatformHasPrefix applies the HasPrefix predicate on the "platform" field.
func PlatformHasPrefix(v string) predicate.Author {
	return predicate.Author(sql.FieldHasPrefix(FieldPlatform, v))
}

// PlatformHasSuffix applies the HasSuffix predicate on the "platform" field.
func PlatformHasSuffix(v string) predicate.Author {
	return predicate.Author(sql.FieldHasSuffix(FieldPlatform, v))
}

// PlatformEqualFold applies the EqualFold predicate on the "platform" field.
func PlatformEqualFold(v string) predicate.Author {
	return predicate.Author(sql.FieldEqualFold(FieldPlatform, v))
}

// PlatformContainsFold applies the ContainsFold predicate on the "platform" field.
func PlatformContainsFold(v string) predicate.Author {
	return predicate.Author(sql.FieldContainsFold(FieldPlatform, v))
}

// PlatformIDEQ applies the EQ predicate on the "platform_id" field.
func PlatformIDEQ(v string) predicate.Author {
	return predicate.Author(sql.FieldEQ(FieldPlatformID, v))
}

// PlatformIDNEQ applies the NEQ predicate on the "platform_id" field.
func PlatformIDNEQ(v string) predicate.Author {
	return predicate.Author(sql.FieldNEQ(FieldPlatformID, v))
}

// PlatformIDIn applies the In predicate on the "platform_id" field.
func PlatformIDIn(vs ...string) predicate.Author {
	return predicate.Author(sql.FieldIn(FieldPlatformID, vs...))
}

// PlatformIDNotIn applies the NotIn predicate on the "platform_id" field.
func PlatformIDNotIn(vs ...string) predicate.Author {
	return predicate.Author(sql.FieldNotIn(FieldPlatformID, vs...))
}

// PlatformIDGT applies the GT predicate on the "platform_id" field.
func PlatformIDGT(v string) predicate.Author {
	return predicate.Author(sql.FieldGT(FieldPlatformID, v))
}

// PlatformIDGTE applies the GTE predicate on the "platform_id" field.
func PlatformIDGTE(v string) predicate.Author {
	return predicate.Author(sql.FieldGTE(FieldPlatformID, v))
}

// PlatformIDLT applies the LT predicate on the "platform_id" field.
func PlatformIDLT(v string) predicate.Author {
	return predicate.Author(sql.FieldLT(FieldPlatformID, v))
}

// PlatformIDLTE applies the LTE predicate on the "platform_id" field.
func PlatformIDLTE(v string) predicate.Author {
	return predicate.Author(sql.FieldLTE(FieldPlatformID, v))
}

// PlatformIDContains applies the Contains predicate on the "platform_id" field.
func PlatformIDContains(v string) predicate.Author {
	return predicate.Author(sql.FieldContains(FieldPlatformID, v))
}

// PlatformIDHasPrefix applies the HasPrefix predicate on the "platform_id" field.
func PlatformIDHasPrefix(v string) predicate.Author {
	return predicate.Author(sql.FieldHasPrefix(FieldPlatformID, v))
}

// PlatformIDHasSuffix applies the HasSuffix predicate on the "platform_id" field.
func PlatformIDHasSuffix(v string) predicate.Author {
	return predicate.Author(sql.FieldHasSuffix(FieldPlatformID, v))
}

// PlatformIDIsNil applies the IsNil predicate on the "platform_id" field.
func PlatformIDIsNil() predicate.Author {
	return predicate.Author(sql.FieldIsNull(FieldPlatformID))
}

// PlatformIDNotNil applies the NotNil predicate on the "platform_id" field.
func PlatformIDNotNil() predicate.Author {
	return predicate.Author(sql.FieldNotNull(FieldPlatformID))
}

// PlatformIDEqualFold applies the EqualFold predicate on the "platform_id" field.
func PlatformIDEqualFold(v string) predicate.Author {
	return predicate.Author(sql.FieldEqualFold(FieldPlatformID, v))
}

// PlatformIDContainsFold applies the ContainsFold predicate on the "platform_id" field.
func PlatformIDContainsFold(v string) predicate.Author {
	return predicate.Author(sql.FieldContainsFold(FieldPlatformID, v))
}

// ProfileURLEQ applies the EQ predicate on the "profile_url" field.
func ProfileURLEQ(v string) predicate.Author {
	return predicate.Author(sql.FieldEQ(FieldProfileURL, v))
}

// ProfileURLNEQ applies the NEQ predicate on the "profile_url" field.
func ProfileURLNEQ(v string) predicate.Author {
	return predicate.Author(sql.FieldNEQ(FieldProfileURL, v))
}

// ProfileURLIn applies the In predicate on the "profile_url" field.
func ProfileURLIn(vs ...string) predicate.Author {
	return predicate.Author(sql.FieldIn(FieldProfileURL, vs...))
}

// ProfileURLNotIn applies the NotIn predicate on the "profile_url" field.
func ProfileURLNotIn(vs ...string) predicate.Author {
	return predicate.Author(sql.FieldNotIn(FieldProfileURL, vs...))
}

// ProfileURLGT applies the GT predicate on the "profile_url" field.
func ProfileURLGT(v string) predicate.Author {
	return predicate.Author(sql.FieldGT(FieldProfileURL, v))
}

// ProfileURLGTE applies the GTE predicate on the "profile_url" field.
func ProfileURLGTE(v string) predicate.Author {
	return predicate.Author(sql.FieldGTE(FieldProfileURL, v))
}

// ProfileURLLT applies the LT predicate on the "profile_url" field.
func ProfileURLLT(v string) predicate.Author {
	return predicate.Author(sql.FieldLT(FieldProfileURL, v))
}

// ProfileURLLTE applies the LTE predicate on the "profile_url" field.
func ProfileURLLTE(v string) predicate.Author {
	return predicate.Author(sql.FieldLTE(FieldProfileURL, v))
}

// ProfileURLContains applies the Contains predicate on the "profile_url" field.
func ProfileURLContains(v string) predicate.Author {
	return predicate.Author(sql.FieldContains(FieldProfileURL, v))
}

// ProfileURLHasPrefix applies the HasPrefix predicate on the "profile_url" field.
func ProfileURLHasPrefix(v string) predicate.Author {
	return predicate.Author(sql.FieldHasPrefix(FieldProfileURL, v))
}

// ProfileURLHasSuffix applies the HasSuffix predicate on the "profile_url" field.
func ProfileURLHasSuffix(v string) predicate.Author {
	return predicate.Author(sql.FieldHasSuffix(FieldProfileURL, v))
}

// ProfileURLIsNil applies the IsNil predicate on the "profile_url" field.
func ProfileURLIsNil() predicate.Author {
	return predicate.Author(sql.FieldIsNull(FieldProfileURL))
}

// ProfileURLNotNil applies the NotNil predicate on the "profile_url" field.
func ProfileURLNotNil() predicate.Author {
	return predicate.Author(sql.FieldNotNull(FieldProfileURL))
}

// ProfileURLEqualFold applies the EqualFold predicate on the "profile_url" field.
func ProfileURLEqualFold(v string) predicate.Author {
	return predicate.Author(sql.FieldEqualFold(FieldProfileURL, v))
}

// ProfileURLContainsFold applies the ContainsFold predicate on the "profile_url" field.
func ProfileURLContainsFold(v string) predicate.Author {
	return predicate.Author(sql.FieldContainsFold(FieldProfileURL, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Author {
	return predicate.Author(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Author {
	return predicate.Author(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Author {
	return predicate.Author(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Author {
	return predicate.Author(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Author {
	return predicate.Author(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Author {
	return predicate.Author(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Author {
	return predicate.Author(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Author {
	return predicate.Author(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Author {
	return predicate.Author(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Author {
	return predicate.Author(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Author {
	return predicate.Author(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Author {
	return predicate.Author(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Author {
	return predicate.Author(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Author {
	return predicate.Author(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Author {
	return predicate.Author(sql.FieldContainsFold(FieldDescription, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.Author {
	return predicate.Author(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.Author {
	return predicate.Author(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.Author {
	return predicate.Author(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.Author {
	return predicate.Author(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.Author {
	return predicate.Author(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.Author {
	return predicate.Author(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.Author {
	return predicate.Author(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.Author {
	return predicate.Author(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.Author {
	return predicate.Author(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.Author {
	return predicate.Author(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.Author {
	return predicate.Author(sql.FieldHasSuffix(FieldRole, v))
}

// RoleIsNil applies the IsNil predicate on the "role" field.
func RoleIsNil() predicate.Author {
	return predicate.Author(sql.FieldIsNull(FieldRole))
}

// RoleNotNil applies the NotNil predicate on the "role" field.
func RoleNotNil() predicate.Author {
	return predicate.Author(sql.FieldNotNull(FieldRole))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.Author {
	return predicate.Author(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.Author {
	return predicate.Author(sql.FieldContainsFold(FieldRole, v))
}

// ExpertiseAreasEQ applies the EQ predicate on the "expertise_areas" field.
func ExpertiseAreasEQ(v string) predicate.Author {
	return predicate.Author(sql.FieldEQ(FieldExpertiseAreas, v))
}

// ExpertiseAreasNEQ applies the NEQ predicate on the "expertise_areas" field.
func ExpertiseAreasNEQ(v string) predicate.Author {
	return predicate.Author(sql.FieldNEQ(FieldExpertiseAreas, v))
}

// ExpertiseAreasIn applies the In predicate on the "expertise_areas" field.
func ExpertiseAreasIn(vs ...string) predicate.Author {
	return predicate.Author(sql.FieldIn(FieldExpertiseAreas, vs...))
}

// ExpertiseAreasNotIn applies the NotIn predicate on the "expertise_areas" field.
func ExpertiseAreasNotIn(vs ...string) predicate.Author {
	return predicate.Author(sql.FieldNotIn(FieldExpertiseAreas, vs...))
}

// ExpertiseAreasGT applies the GT predicate on the "expertise_areas" field.
func ExpertiseAreasGT(v string) predicate.Author {
	return predicate.Author(sql.FieldGT(FieldExpertiseAreas, v))
}

// ExpertiseAreasGTE applies the GTE predicate on the "expertise_areas" field.
func ExpertiseAreasGTE(v string) predicate.Author {
	return predicate.Author(sql.FieldGTE(FieldExpertiseAreas, v))
}

// ExpertiseAreasLT applies the LT predicate on the "expertise_areas" field.
func ExpertiseAreasLT(v string) predicate.Author {
	return predicate.Author(sql.FieldLT(FieldExpertiseAreas, v))
}

// ExpertiseAreasLTE applies the LTE predicate on the "expertise_areas" field.
func ExpertiseAreasLTE(v string) predicate.Author {
	return predicate.Author(sql.FieldLTE(FieldExpertiseAreas, v))
}

// ExpertiseAreasContains applies the Contains predicate on the "expertise_areas" field.
func ExpertiseAreasContains(v string) predicate.Author {
	return predicate.Author(sql.FieldContains(FieldExpertiseAreas, v))
}

// ExpertiseAreasHasPrefix applies the HasPrefix predicate on the "expertise_areas" field.
func ExpertiseAreasHasPrefix(v string) predicate.Author {
	return predicate.Author(sql.FieldHasPrefix(FieldExpertiseAreas, v))
}

// ExpertiseAreasHasSuffix applies the HasSuffix predicate on the "expertise_areas" field.
func ExpertiseAreasHasSuffix(v string) predicate.Author {
	return predicate.Author(sql.FieldHasSuffix(FieldExpertiseAreas, v))
}

// ExpertiseAreasIsNil applies the IsNil predicate on the "expertise_areas" field.
func ExpertiseAreasIsNil() predicate.Author {
	return predicate.Author(sql.FieldIsNull(FieldExpertiseAreas))
}

// ExpertiseAreasNotNil applies the NotNil predicate on the "expertise_areas" field.
func ExpertiseAreasNotNil() predicate.Author {
	return predicate.Author(sql.FieldNotNull(FieldExpertiseAreas))
}

// ExpertiseAreasEqualFold applies the EqualFold predicate on the "expertise_areas" field.
func ExpertiseAreasEqualFold(v string) predicate.Author {
	return predicate.Author(sql.FieldEqualFold(FieldExpertiseAreas, v))
}

// ExpertiseAreasContainsFold applies the ContainsFold predicate on the "expertise_areas" field.
func ExpertiseAreasContainsFold(v string) predicate.Author {
	return predicate.Author(sql.FieldContainsFold(FieldExpertiseAreas, v))
}

// KnownBiasesEQ applies the EQ predicate on the "known_biases" field.
func KnownBiasesEQ(v string) predicate.Author {
	return predicate.Author(sql.FieldEQ(FieldKnownBiases, v))
}

// KnownBiasesNEQ applies the NEQ predicate on the "known_biases" field.
func KnownBiasesNEQ(v string) predicate.Author {
	return predicate.Author(sql.FieldNEQ(FieldKnownBiases, v))
}

// KnownBiasesIn applies the In predicate on the "known_biases" field.
func KnownBiasesIn(vs ...string) predicate.Author {
	return predicate.Author(sql.FieldIn(FieldKnownBiases, vs...))
}

// KnownBiasesNotIn applies the NotIn predicate on the "known_biases" field.
func KnownBiasesNotIn(vs ...string) predicate.Author {
	return predicate.Author(sql.FieldNotIn(FieldKnownBiases, vs...))
}

// KnownBiasesGT applies the GT predicate on the "known_biases" field.
func KnownBiasesGT(v string) predicate.Author {
	return predicate.Author(sql.FieldGT(FieldKnownBiases, v))
}

// KnownBiasesGTE applies the GTE predicate on the "known_biases" field.
func KnownBiasesGTE(v string) predicate.Author {
	return predicate.Author(sql.FieldGTE(FieldKnownBiases, v))
}

// KnownBiasesLT applies the LT predicate on the "known_biases" field.
func KnownBiasesLT(v string) predicate.Author {
	return predicate.Author(sql.FieldLT(FieldKnownBiases, v))
}

// KnownBiasesLTE applies the LTE predicate on the "known_biases" field.
func KnownBiasesLTE(v string) predicate.Author {
	return predicate.Author(sql.FieldLTE(FieldKnownBiases, v))
}

// KnownBiasesContains applies the Contains predicate on the "known_biases" field.
func KnownBiasesContains(v string) predicate.Author {
	return predicate.Author(sql.FieldContains(FieldKnownBiases, v))
}

// KnownBiasesHasPrefix applies the HasPrefix predicate on the "known_biases" field.
func KnownBiasesHasPrefix(v string) predicate.Author {
	return predicate.Author(sql.FieldHasPrefix(FieldKnownBiases, v))
}

// KnownBiasesHasSuffix applies the HasSuffix predicate on the "known_biases" field.
func KnownBiasesHasSuffix(v string) predicate.Author {
	return predicate.Author(sql.FieldHasSuffix(FieldKnownBiases, v))
}

// KnownBiasesIsNil applies the IsNil predicate on the "known_biases" field.
func KnownBiasesIsNil() predicate.Author {
	return predicate.Author(sql.FieldIsNull(FieldKnownBiases))
}

// KnownBiasesNotNil applies the NotNil predicate on the "known_biases" field.
func KnownBiasesNotNil() predicate.Author {
	return predicate.Author(sql.FieldNotNull(FieldKnownBiases))
}

// KnownBiasesEqualFold applies the EqualFold predicate on the "known_biases" field.
func KnownBiasesEqualFold(v string) predicate.Author {
	return predicate.Author(sql.FieldEqualFold(FieldKnownBiases, v))
}

// KnownBiasesContainsFold applies the ContainsFold predicate on the "known_biases" field.
func KnownBiasesContainsFold(v string) predicate.Author {
	return predicate.Author(sql.FieldContainsFold(FieldKnownBiases, v))
}

// CredibilityTierEQ applies the EQ predicate on the "credibility_tier" field.
func CredibilityTierEQ(v int) predicate.Author {
	return predicate.Author(sql.FieldEQ(FieldCredibilityTier, v))
}

// CredibilityTierNEQ applies the NEQ predicate on the "credibility_tier" field.
func CredibilityTierNEQ(v int) predicate.Author {
	return predicate.Author(sql.FieldNEQ(FieldCredibilityTier, v))
}

// CredibilityTierIn applies the In predicate on the "credibility_tier" field.
func CredibilityTierIn(vs ...int) predicate.Author {
	return predicate.Author(sql.FieldIn(FieldCredibilityTier, vs...))
}

// CredibilityTierNotIn applies the NotIn predicate on the "credibility_tier" field.
func CredibilityTierNotIn(vs ...int) predicate.Author {
	return predicate.Author(sql.FieldNotIn(FieldCredibilityTier, vs...))
}

// CredibilityTierGT applies the GT predicate on the "credibility_tier" field.
func CredibilityTierGT(v int) predicate.Author {
	return predicate.Author(sql.FieldGT(FieldCredibilityTier, v))
}

// CredibilityTierGTE applies the GTE predicate on the "credibility_tier" field.
func CredibilityTierGTE(v int) predicate.Author {
	return predicate.Author(sql.FieldGTE(FieldCredibilityTier, v))
}

// CredibilityTierLT applies the LT predicate on the "credibility_tier" field.
func CredibilityTierLT(v int) predicate.Author {
	return predicate.Author(sql.FieldLT(FieldCredibilityTier, v))
}

// CredibilityTierLTE applies the LTE predicate on the "credibility_tier" field.
func CredibilityTierLTE(v int) predicate.Author {
	return predicate.Author(sql.FieldLTE(FieldCredibilityTier, v))
}

// CredibilityTierIsNil applies the IsNil predicate on the "credibility_tier" field.
func CredibilityTierIsNil() predicate.Author {
	return predicate.Author(sql.FieldIsNull(FieldCredibilityTier))
}

// CredibilityTierNotNil applies the NotNil predicate on the "credibility_tier" field.
func CredibilityTierNotNil() predicate.Author {
	return predicate.Author(sql.FieldNotNull(FieldCredibilityTier))
}

// ProfileNoteEQ applies the EQ predicate on the "profile_note" field.
func ProfileNoteEQ(v string) predicate.Author {
	return predicate.Author(sql.FieldEQ(FieldProfileNote, v))
}

// ProfileNoteNEQ applies the NEQ predicate on the "profile_note" field.
func ProfileNoteNEQ(v string) predicate.Author {
	return predicate.Author(sql.FieldNEQ(FieldProfileNote, v))
}

// ProfileNoteIn applies the In predicate on the "profile_note" field.
func ProfileNoteIn(vs ...string) predicate.Author {
	return predicate.Author(sql.FieldIn(FieldProfileNote, vs...))
}

// ProfileNoteNotIn applies the NotIn predicate on the "profile_note" field.
func ProfileNoteNotIn(vs ...string) predicate.Author {
	return predicate.Author(sql.FieldNotIn(FieldProfileNote, vs...))
}

// ProfileNoteGT applies the GT predicate on the "profile_note" field.
func ProfileNoteGT(v string) predicate.Author {
	return predicate.Author(sql.FieldGT(FieldProfileNote, v))
}

// ProfileNoteGTE applies the GTE predicate on the "profile_note" field.
func ProfileNoteGTE(v string) predicate.Author {
	return predicate.Author(sql.FieldGTE(FieldProfileNote, v))
}

// ProfileNoteLT applies the LT predicate on the "profile_note" field.
func ProfileNoteLT(v string) predicate.Author {
	return predicate.Author(sql.FieldLT(FieldProfileNote, v))
}

// ProfileNoteLTE applies the LTE predicate on the "profile_note" field.
func ProfileNoteLTE(v string) predicate.Author {
	return predicate.Author(sql.FieldLTE(FieldProfileNote, v))
}

// ProfileNoteContains applies the Contains predicate on the "profile_note" field.
func ProfileNoteContains(v string) predicate.Author {
	return predicate.Author(sql.FieldContains(FieldProfileNote, v))
}

// ProfileNoteHasPrefix applies the HasPrefix predicate on the "profile_note" field.
func ProfileNoteHasPrefix(v string) predicate.Author {
	return predicate.Author(sql.FieldHasPrefix(FieldProfileNote, v))
}

// ProfileNoteHasSuffix applies the HasSuffix predicate on the "profile_note" field.
func ProfileNoteHasSuffix(v string) predicate.Author {
	return predicate.Author(sql.FieldHasSuffix(FieldProfileNote, v))
}

// ProfileNoteIsNil applies the IsNil predicate on the "profile_note" field.
func ProfileNoteIsNil() predicate.Author {
	return predicate.Author(sql.FieldIsNull(FieldProfileNote))
}

// ProfileNoteNotNil applies the NotNil predicate on the "profile_note" field.
func ProfileNoteNotNil() predicate.Author {
	return predicate.Author(sql.FieldNotNull(FieldProfileNote))
}

// ProfileNoteEqualFold applies the EqualFold predicate on the "profile_note" field.
func ProfileNoteEqualFold(v string) predicate.Author {
	return predicate.Author(sql.FieldEqualFold(FieldProfileNote, v))
}

// ProfileNoteContainsFold applies the ContainsFold predicate on the "profile_note" field.
func ProfileNoteContainsFold(v string) predicate.Author {
	return predicate.Author(sql.FieldContainsFold(FieldProfileNote, v))
}

// ProfileFetchedEQ applies the EQ predicate on the "profile_fetched" field.
func ProfileFetchedEQ(v bool) predicate.Author {
	return predicate.Author(sql.FieldEQ(FieldProfileFetched, v))
}

// ProfileFetchedNEQ applies the NEQ predicate on the "profile_fetched" field.
func ProfileFetchedNEQ(v bool) predicate.Author {
	return predicate.Author(sql.FieldNEQ(FieldProfileFetched, v))
}

// ProfileFetchedAtEQ applies the EQ predicate on the "profile_fetched_at" field.
func ProfileFetchedAtEQ(v time.Time) predicate.Author {
	return predicate.Author(sql.FieldEQ(FieldProfileFetchedAt, v))
}

// ProfileFetchedAtNEQ applies the NEQ predicate on the "profile_fetched_at" field.
func ProfileFetchedAtNEQ(v time.Time) predicate.Author {
	return predicate.Author(sql.FieldNEQ(FieldProfileFetchedAt, v))
}

// ProfileFetchedAtIn applies the In predicate on the "profile_fetched_at" field.
func ProfileFetchedAtIn(vs ...time.Time) predicate.Author {
	return predicate.Author(sql.FieldIn(FieldProfileFetchedAt, vs...))
}

// ProfileFetchedAtNotIn applies the NotIn predicate on the "profile_fetched_at" field.
func ProfileFetchedAtNotIn(vs ...time.Time) predicate.Author {
	return predicate.Author(sql.FieldNotIn(FieldProfileFetchedAt, vs...))
}

// ProfileFetchedAtGT applies the GT predicate on the "profile_fetched_at" field.
func ProfileFetchedAtGT(v time.Time) predicate.Author {
	return predicate.Author(sql.FieldGT(FieldProfileFetchedAt, v))
}

// ProfileFetchedAtGTE applies the GTE predicate on the "profile_fetched_at" field.
func ProfileFetchedAtGTE(v time.Time) predicate.Author {
	return predicate.Author(sql.FieldGTE(FieldProfileFetchedAt, v))
}

// ProfileFetchedAtLT applies the LT predicate on the "profile_fetched_at" field.
func ProfileFetchedAtLT(v time.Time) predicate.Author {
	return predicate.Author(sql.FieldLT(FieldProfileFetchedAt, v))
}

// ProfileFetchedAtLTE applies the LTE predicate on the "profile_fetched_at" field.
func ProfileFetchedAtLTE(v time.Time) predicate.Author {
	return predicate.Author(sql.FieldLTE(FieldProfileFetchedAt, v))
}

// ProfileFetchedAtIsNil applies the IsNil predicate on the "profile_fetched_at" field.
func ProfileFetchedAtIsNil() predicate.Author {
	return predicate.Author(sql.FieldIsNull(FieldProfileFetchedAt))
}

// ProfileFetchedAtNotNil applies the NotNil predicate on the "profile_fetched_at" field.
func ProfileFetchedAtNotNil() predicate.Author {
	return predicate.Author(sql.FieldNotNull(FieldProfileFetchedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Author {
	return predicate.Author(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Author {
	return predicate.Author(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Author {
	return predicate.Author(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Author {
	return predicate.Author(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Author {
	return predicate.Author(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Author {
	return predicate.Author(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Author {
	return predicate.Author(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Author {
	return predicate.Author(sql.FieldLTE(FieldCreatedAt, v))
}

// HasConclusions applies the HasEdge predicate on the "conclusions" edge.
func HasConclusions() predicate.Author {
	return predicate.Author(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ConclusionsTable, ConclusionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConclusionsWith applies the HasEdge predicate on the "conclusions" edge with a given conditions (other predicates).
func HasConclusionsWith(preds ...predicate.Conclusion) predicate.Author {
	return predicate.Author(func(s *sql.Selector) {
		step := newConclusionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSolutions applies the HasEdge predicate on the "solutions" edge.
func HasSolutions() predicate.Author {
	return predicate.Author(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SolutionsTable, SolutionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSolutionsWith applies the HasEdge predicate on the "solutions" edge with a given conditions (other predicates).
func HasSolutionsWith(preds ...predicate.Solution) predicate.Author {
	return predicate.Author(func(s *sql.Selector) {
		step := newSolutionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMonitoredSources applies the HasEdge predicate on the "monitored_sources" edge.
func HasMonitoredSources() predicate.Author {
	return predicate.Author(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MonitoredSourcesTable, MonitoredSourcesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMonitoredSourcesWith applies the HasEdge predicate on the "monitored_sources" edge with a given conditions (other predicates).
func HasMonitoredSourcesWith(preds ...predicate.MonitoredSource) predicate.Author {
	return predicate.Author(func(s *sql.Selector) {
		step := newMonitoredSourcesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQualityAssessments applies the HasEdge predicate on the "quality_assessments" edge.
func HasQualityAssessments() predicate.Author {
	return predicate.Author(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, QualityAssessmentsTable, QualityAssessmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQualityAssessmentsWith applies the HasEdge predicate on the "quality_assessments" edge with a given conditions (other predicates).
func HasQualityAssessmentsWith(preds ...predicate.PostQualityAssessment) predicate.Author {
	return predicate.Author(func(s *sql.Selector) {
		step := newQualityAssessmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStats applies the HasEdge predicate on the "stats" edge.
func HasStats() predicate.Author {
	return predicate.Author(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, StatsTable, StatsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStatsWith applies the HasEdge predicate on the "stats" edge with a given conditions (other predicates).
func HasStatsWith(preds ...predicate.AuthorStats) predicate.Author {
	return predicate.Author(func(s *sql.Selector) {
		step := newStatsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Author) predicate.Author {
	return predicate.Author(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Author) predicate.Author {
	return predicate.Author(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Author) predicate.Author {
	return predicate.Author(sql.NotPredicates(p))
}

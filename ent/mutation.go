// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/credlens/pundit/ent/author"
	"github.com/credlens/pundit/ent/authorstats"
	"github.com/credlens/pundit/ent/conclusion"
	"github.com/credlens/pundit/ent/conclusionverdict"
	"github.com/credlens/pundit/ent/fact"
	"github.com/credlens/pundit/ent/factevaluation"
	"github.com/credlens/pundit/ent/logic"
	"github.com/credlens/pundit/ent/logicrelation"
	"github.com/credlens/pundit/ent/monitoredsource"
	"github.com/credlens/pundit/ent/postqualityassessment"
	"github.com/credlens/pundit/ent/predicate"
	"github.com/credlens/pundit/ent/rawpost"
	"github.com/credlens/pundit/ent/solution"
	"github.com/credlens/pundit/ent/solutionassessment"
	"github.com/credlens/pundit/ent/topic"
	"github.com/credlens/pundit/ent/verificationreference"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAuthor                = "Author"
	TypeAuthorStats           = "AuthorStats"
	TypeConclusion            = "Conclusion"
	TypeConclusionVerdict     = "ConclusionVerdict"
	TypeFact                  = "Fact"
	TypeFactEvaluation        = "FactEvaluation"
	TypeLogic                 = "Logic"
	TypeLogicRelation         = "LogicRelation"
	TypeMonitoredSource       = "MonitoredSource"
	TypePostQualityAssessment = "PostQualityAssessment"
	TypeRawPost               = "RawPost"
	TypeSolution              = "Solution"
	TypeSolutionAssessment    = "SolutionAssessment"
	TypeTopic                 = "Topic"
	TypeVerificationReference = "VerificationReference"
)

// AuthorMutation represents an operation that mutates the Author nodes in the graph.
type AuthorMutation struct {
	config
	op                         Op
	typ                        string
	id                         *int
	name                       *string
	platform                   *string
	platform_id                *string
	profile_url                *string
	description                *string
	role                       *string
	expertise_areas            *string
	known_biases               *string
	credibility_tier           *int
	addcredibility_tier        *int
	profile_note               *string
	profile_fetched            *bool
	profile_fetched_at         *time.Time
	created_at                 *time.Time
	clearedFields              map[string]struct{}
	conclusions                map[int]struct{}
	removedconclusions         map[int]struct{}
	clearedconclusions         bool
	solutions                  map[int]struct{}
	removedsolutions           map[int]struct{}
	clearedsolutions           bool
	monitored_sources          map[int]struct{}
	removedmonitored_sources   map[int]struct{}
	clearedmonitored_sources   bool
	quality_assessments        map[int]struct{}
	removedquality_assessments map[int]struct{}
	clearedquality_assessments bool
	stats                      *int
	clearedstats               bool
	done                       bool
	oldValue                   func(context.Context) (*Author, error)
	predicates                 []predicate.Author
}

var _ ent.Mutation = (*AuthorMutation)(nil)

// authorOption allows management of the mutation configuration using functional options.
type authorOption func(*AuthorMutation)

// newAuthorMutation creates new mutation for the Author entity.
func newAuthorMutation(c config, op Op, opts ...authorOption) *AuthorMutation {
	m := &AuthorMutation{
		config:        c,
		op:            op,
		typ:           TypeAuthor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuthorID sets the ID field of the mutation.
func withAuthorID(id int) authorOption {
	return func(m *AuthorMutation) {
		var (
			err   error
			once  sync.Once
			value *Author
		)
		m.oldValue = func(ctx context.Context) (*Author, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Author.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuthor sets the old Author of the mutation.
func withAuthor(node *Author) authorOption {
	return func(m *AuthorMutation) {
		m.oldValue = func(context.Context) (*Author, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuthorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuthorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuthorMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuthorMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Author.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *AuthorMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AuthorMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Author entity.
// If the Author object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthorMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *AuthorMutation) ResetName() {
	m.name = nil
}

// SetPlatform sets the "platform" field.
func (m *AuthorMutation) SetPlatform(s string) {
	m.platform = &s
}

// Platform returns the value of the "platform" field in the mutation.
func (m *AuthorMutation) Platform() (r string, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the Author entity.
// If the Author object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthorMutation) OldPlatform(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ResetPlatform resets all changes to the "platform" field.
func (m *AuthorMutation) ResetPlatform() {
	m.platform = nil
}

// SetPlatformID sets the "platform_id" field.
func (m *AuthorMutation) SetPlatformID(s string) {
	m.platform_id = &s
}

// PlatformID returns the value of the "platform_id" field in the mutation.
func (m *AuthorMutation) PlatformID() (r string, exists bool) {
	v := m.platform_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatformID returns the old "platform_id" field's value of the Author entity.
// If the Author object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthorMutation) OldPlatformID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatformID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatformID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatformID: %w", err)
	}
	return oldValue.PlatformID, nil
}

// ClearPlatformID clears the value of the "platform_id" field.
func (m *AuthorMutation) ClearPlatformID() {
	m.platform_id = nil
	m.clearedFields[author.FieldPlatformID] = struct{}{}
}

// PlatformIDCleared returns if the "platform_id" field was cleared in this mutation.
func (m *AuthorMutation) PlatformIDCleared() bool {
	_, ok := m.clearedFields[author.FieldPlatformID]
	return ok
}

// ResetPlatformID resets all changes to the "platform_id" field.
func (m *AuthorMutation) ResetPlatformID() {
	m.platform_id = nil
	delete(m.clearedFields, author.FieldPlatformID)
}

// SetProfileURL sets the "profile_url" field.
func (m *AuthorMutation) SetProfileURL(s string) {
	m.profile_url = &s
}

// ProfileURL returns the value of the "profile_url" field in the mutation.
func (m *AuthorMutation) ProfileURL() (r string, exists bool) {
	v := m.profile_url
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileURL returns the old "profile_url" field's value of the Author entity.
// If the Author object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthorMutation) OldProfileURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileURL: %w", err)
	}
	return oldValue.ProfileURL, nil
}

// ClearProfileURL clears the value of the "profile_url" field.
func (m *AuthorMutation) ClearProfileURL() {
	m.profile_url = nil
	m.clearedFields[author.FieldProfileURL] = struct{}{}
}

// ProfileURLCleared returns if the "profile_url" field was cleared in this mutation.
func (m *AuthorMutation) ProfileURLCleared() bool {
	_, ok := m.clearedFields[author.FieldProfileURL]
	return ok
}

// ResetProfileURL resets all changes to the "profile_url" field.
func (m *AuthorMutation) ResetProfileURL() {
	m.profile_url = nil
	delete(m.clearedFields, author.FieldProfileURL)
}

// SetDescription sets the "description" field.
func (m *AuthorMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *AuthorMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Author entity.
// If the Author object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthorMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *AuthorMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[author.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *AuthorMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[author.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *AuthorMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, author.FieldDescription)
}

// SetRole sets the "role" field.
func (m *AuthorMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *AuthorMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Author entity.
// If the Author object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthorMutation) OldRole(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ClearRole clears the value of the "role" field.
func (m *AuthorMutation) ClearRole() {
	m.role = nil
	m.clearedFields[author.FieldRole] = struct{}{}
}

// RoleCleared returns if the "role" field was cleared in this mutation.
func (m *AuthorMutation) RoleCleared() bool {
	_, ok := m.clearedFields[author.FieldRole]
	return ok
}

// ResetRole resets all changes to the "role" field.
func (m *AuthorMutation) ResetRole() {
	m.role = nil
	delete(m.clearedFields, author.FieldRole)
}

// SetExpertiseAreas sets the "expertise_areas" field.
func (m *AuthorMutation) SetExpertiseAreas(s string) {
	m.expertise_areas = &s
}

// ExpertiseAreas returns the value of the "expertise_areas" field in the mutation.
func (m *AuthorMutation) ExpertiseAreas() (r string, exists bool) {
	v := m.expertise_areas
	if v == nil {
		return
	}
	return *v, true
}

// OldExpertiseAreas returns the old "expertise_areas" field's value of the Author entity.
// If the Author object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthorMutation) OldExpertiseAreas(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpertiseAreas is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpertiseAreas requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpertiseAreas: %w", err)
	}
	return oldValue.ExpertiseAreas, nil
}

// ClearExpertiseAreas clears the value of the "expertise_areas" field.
func (m *AuthorMutation) ClearExpertiseAreas() {
	m.expertise_areas = nil
	m.clearedFields[author.FieldExpertiseAreas] = struct{}{}
}

// ExpertiseAreasCleared returns if the "expertise_areas" field was cleared in this mutation.
func (m *AuthorMutation) ExpertiseAreasCleared() bool {
	_, ok := m.clearedFields[author.FieldExpertiseAreas]
	return ok
}

// ResetExpertiseAreas resets all changes to the "expertise_areas" field.
func (m *AuthorMutation) ResetExpertiseAreas() {
	m.expertise_areas = nil
	delete(m.clearedFields, author.FieldExpertiseAreas)
}

// SetKnownBiases sets the "known_biases" field.
func (m *AuthorMutation) SetKnownBiases(s string) {
	m.known_biases = &s
}

// KnownBiases returns the value of the "known_biases" field in the mutation.
func (m *AuthorMutation) KnownBiases() (r string, exists bool) {
	v := m.known_biases
	if v == nil {
		return
	}
	return *v, true
}

// OldKnownBiases returns the old "known_biases" field's value of the Author entity.
// If the Author object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthorMutation) OldKnownBiases(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKnownBiases is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKnownBiases requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKnownBiases: %w", err)
	}
	return oldValue.KnownBiases, nil
}

// ClearKnownBiases clears the value of the "known_biases" field.
func (m *AuthorMutation) ClearKnownBiases() {
	m.known_biases = nil
	m.clearedFields[author.FieldKnownBiases] = struct{}{}
}

// KnownBiasesCleared returns if the "known_biases" field was cleared in this mutation.
func (m *AuthorMutation) KnownBiasesCleared() bool {
	_, ok := m.clearedFields[author.FieldKnownBiases]
	return ok
}

// ResetKnownBiases resets all changes to the "known_biases" field.
func (m *AuthorMutation) ResetKnownBiases() {
	m.known_biases = nil
	delete(m.clearedFields, author.FieldKnownBiases)
}

// SetCredibilityTier sets the "credibility_tier" field.
func (m *AuthorMutation) SetCredibilityTier(i int) {
	m.credibility_tier = &i
	m.addcredibility_tier = nil
}

// CredibilityTier returns the value of the "credibility_tier" field in the mutation.
func (m *AuthorMutation) CredibilityTier() (r int, exists bool) {
	v := m.credibility_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldCredibilityTier returns the old "credibility_tier" field's value of the Author entity.
// If the Author object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthorMutation) OldCredibilityTier(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCredibilityTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCredibilityTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCredibilityTier: %w", err)
	}
	return oldValue.CredibilityTier, nil
}

// AddCredibilityTier adds i to the "credibility_tier" field.
func (m *AuthorMutation) AddCredibilityTier(i int) {
	if m.addcredibility_tier != nil {
		*m.addcredibility_tier += i
	} else {
		m.addcredibility_tier = &i
	}
}

// AddedCredibilityTier returns the value that was added to the "credibility_tier" field in this mutation.
func (m *AuthorMutation) AddedCredibilityTier() (r int, exists bool) {
	v := m.addcredibility_tier
	if v == nil {
		return
	}
	return *v, true
}

// ClearCredibilityTier clears the value of the "credibility_tier" field.
func (m *AuthorMutation) ClearCredibilityTier() {
	m.credibility_tier = nil
	m.addcredibility_tier = nil
	m.clearedFields[author.FieldCredibilityTier] = struct{}{}
}

// CredibilityTierCleared returns if the "credibility_tier" field was cleared in this mutation.
func (m *AuthorMutation) CredibilityTierCleared() bool {
	_, ok := m.clearedFields[author.FieldCredibilityTier]
	return ok
}

// ResetCredibilityTier resets all changes to the "credibility_tier" field.
func (m *AuthorMutation) ResetCredibilityTier() {
	m.credibility_tier = nil
	m.addcredibility_tier = nil
	delete(m.clearedFields, author.FieldCredibilityTier)
}

// SetProfileNote sets the "profile_note" field.
func (m *AuthorMutation) SetProfileNote(s string) {
	m.profile_note = &s
}

// ProfileNote returns the value of the "profile_note" field in the mutation.
func (m *AuthorMutation) ProfileNote() (r string, exists bool) {
	v := m.profile_note
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileNote returns the old "profile_note" field's value of the Author entity.
// If the Author object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthorMutation) OldProfileNote(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileNote: %w", err)
	}
	return oldValue.ProfileNote, nil
}

// ClearProfileNote clears the value of the "profile_note" field.
func (m *AuthorMutation) ClearProfileNote() {
	m.profile_note = nil
	m.clearedFields[author.FieldProfileNote] = struct{}{}
}

// ProfileNoteCleared returns if the "profile_note" field was cleared in this mutation.
func (m *AuthorMutation) ProfileNoteCleared() bool {
	_, ok := m.clearedFields[author.FieldProfileNote]
	return ok
}

// ResetProfileNote resets all changes to the "profile_note" field.
func (m *AuthorMutation) ResetProfileNote() {
	m.profile_note = nil
	delete(m.clearedFields, author.FieldProfileNote)
}

// SetProfileFetched sets the "profile_fetched" field.
func (m *AuthorMutation) SetProfileFetched(b bool) {
	m.profile_fetched = &b
}

// ProfileFetched returns the value of the "profile_fetched" field in the mutation.
func (m *AuthorMutation) ProfileFetched() (r bool, exists bool) {
	v := m.profile_fetched
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileFetched returns the old "profile_fetched" field's value of the Author entity.
// If the Author object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthorMutation) OldProfileFetched(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileFetched is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileFetched requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileFetched: %w", err)
	}
	return oldValue.ProfileFetched, nil
}

// ResetProfileFetched resets all changes to the "profile_fetched" field.
func (m *AuthorMutation) ResetProfileFetched() {
	m.profile_fetched = nil
}

// SetProfileFetchedAt sets the "profile_fetched_at" field.
func (m *AuthorMutation) SetProfileFetchedAt(t time.Time) {
	m.profile_fetched_at = &t
}

// ProfileFetchedAt returns the value of the "profile_fetched_at" field in the mutation.
func (m *AuthorMutation) ProfileFetchedAt() (r time.Time, exists bool) {
	v := m.profile_fetched_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileFetchedAt returns the old "profile_fetched_at" field's value of the Author entity.
// If the Author object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthorMutation) OldProfileFetchedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileFetchedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileFetchedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileFetchedAt: %w", err)
	}
	return oldValue.ProfileFetchedAt, nil
}

// ClearProfileFetchedAt clears the value of the "profile_fetched_at" field.
func (m *AuthorMutation) ClearProfileFetchedAt() {
	m.profile_fetched_at = nil
	m.clearedFields[author.FieldProfileFetchedAt] = struct{}{}
}

// ProfileFetchedAtCleared returns if the "profile_fetched_at" field was cleared in this mutation.
func (m *AuthorMutation) ProfileFetchedAtCleared() bool {
	_, ok := m.clearedFields[author.FieldProfileFetchedAt]
	return ok
}

// ResetProfileFetchedAt resets all changes to the "profile_fetched_at" field.
func (m *AuthorMutation) ResetProfileFetchedAt() {
	m.profile_fetched_at = nil
	delete(m.clearedFields, author.FieldProfileFetchedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuthorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuthorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Author entity.
// If the Author object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuthorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddConclusionIDs adds the "conclusions" edge to the Conclusion entity by ids.
func (m *AuthorMutation) AddConclusionIDs(ids ...int) {
	if m.conclusions == nil {
		m.conclusions = make(map[int]struct{})
	}
	for i := range ids {
		m.conclusions[ids[i]] = struct{}{}
	}
}

// ClearConclusions clears the "conclusions" edge to the Conclusion entity.
func (m *AuthorMutation) ClearConclusions() {
	m.clearedconclusions = true
}

// ConclusionsCleared reports if the "conclusions" edge to the Conclusion entity was cleared.
func (m *AuthorMutation) ConclusionsCleared() bool {
	return m.clearedconclusions
}

// RemoveConclusionIDs removes the "conclusions" edge to the Conclusion entity by IDs.
func (m *AuthorMutation) RemoveConclusionIDs(ids ...int) {
	if m.removedconclusions == nil {
		m.removedconclusions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.conclusions, ids[i])
		m.removedconclusions[ids[i]] = struct{}{}
	}
}

// RemovedConclusions returns the removed IDs of the "conclusions" edge to the Conclusion entity.
func (m *AuthorMutation) RemovedConclusionsIDs() (ids []int) {
	for id := range m.removedconclusions {
		ids = append(ids, id)
	}
	return
}

// ConclusionsIDs returns the "conclusions" edge IDs in the mutation.
func (m *AuthorMutation) ConclusionsIDs() (ids []int) {
	for id := range m.conclusions {
		ids = append(ids, id)
	}
	return
}

// ResetConclusions resets all changes to the "conclusions" edge.
func (m *AuthorMutation) ResetConclusions() {
	m.conclusions = nil
	m.clearedconclusions = false
	m.removedconclusions = nil
}

// AddSolutionIDs adds the "solutions" edge to the Solution entity by ids.
func (m *AuthorMutation) AddSolutionIDs(ids ...int) {
	if m.solutions == nil {
		m.solutions = make(map[int]struct{})
	}
	for i := range ids {
		m.solutions[ids[i]] = struct{}{}
	}
}

// ClearSolutions clears the "solutions" edge to the Solution entity.
func (m *AuthorMutation) ClearSolutions() {
	m.clearedsolutions = true
}

// SolutionsCleared reports if the "solutions" edge to the Solution entity was cleared.
func (m *AuthorMutation) SolutionsCleared() bool {
	return m.clearedsolutions
}

// RemoveSolutionIDs removes the "solutions" edge to the Solution entity by IDs.
func (m *AuthorMutation) RemoveSolutionIDs(ids ...int) {
	if m.removedsolutions == nil {
		m.removedsolutions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.solutions, ids[i])
		m.removedsolutions[ids[i]] = struct{}{}
	}
}

// RemovedSolutions returns the removed IDs of the "solutions" edge to the Solution entity.
func (m *AuthorMutation) RemovedSolutionsIDs() (ids []int) {
	for id := range m.removedsolutions {
		ids = append(ids, id)
	}
	return
}

// SolutionsIDs returns the "solutions" edge IDs in the mutation.
func (m *AuthorMutation) SolutionsIDs() (ids []int) {
	for id := range m.solutions {
		ids = append(ids, id)
	}
	return
}

// ResetSolutions resets all changes to the "solutions" edge.
func (m *AuthorMutation) ResetSolutions() {
	m.solutions = nil
	m.clearedsolutions = false
	m.removedsolutions = nil
}

// AddMonitoredSourceIDs adds the "monitored_sources" edge to the MonitoredSource entity by ids.
func (m *AuthorMutation) AddMonitoredSourceIDs(ids ...int) {
	if m.monitored_sources == nil {
		m.monitored_sources = make(map[int]struct{})
	}
	for i := range ids {
		m.monitored_sources[ids[i]] = struct{}{}
	}
}

// ClearMonitoredSources clears the "monitored_sources" edge to the MonitoredSource entity.
func (m *AuthorMutation) ClearMonitoredSources() {
	m.clearedmonitored_sources = true
}

// MonitoredSourcesCleared reports if the "monitored_sources" edge to the MonitoredSource entity was cleared.
func (m *AuthorMutation) MonitoredSourcesCleared() bool {
	return m.clearedmonitored_sources
}

// RemoveMonitoredSourceIDs removes the "monitored_sources" edge to the MonitoredSource entity by IDs.
func (m *AuthorMutation) RemoveMonitoredSourceIDs(ids ...int) {
	if m.removedmonitored_sources == nil {
		m.removedmonitored_sources = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.monitored_sources, ids[i])
		m.removedmonitored_sources[ids[i]] = struct{}{}
	}
}

// RemovedMonitoredSources returns the removed IDs of the "monitored_sources" edge to the MonitoredSource entity.
func (m *AuthorMutation) RemovedMonitoredSourcesIDs() (ids []int) {
	for id := range m.removedmonitored_sources {
		ids = append(ids, id)
	}
	return
}

// MonitoredSourcesIDs returns the "monitored_sources" edge IDs in the mutation.
func (m *AuthorMutation) MonitoredSourcesIDs() (ids []int) {
	for id := range m.monitored_sources {
		ids = append(ids, id)
	}
	return
}

// ResetMonitoredSources resets all changes to the "monitored_sources" edge.
func (m *AuthorMutation) ResetMonitoredSources() {
	m.monitored_sources = nil
	m.clearedmonitored_sources = false
	m.removedmonitored_sources = nil
}

// AddQualityAssessmentIDs adds the "quality_assessments" edge to the PostQualityAssessment entity by ids.
func (m *AuthorMutation) AddQualityAssessmentIDs(ids ...int) {
	if m.quality_assessments == nil {
		m.quality_assessments = make(map[int]struct{})
	}
	for i := range ids {
		m.quality_assessments[ids[i]] = struct{}{}
	}
}

// ClearQualityAssessments clears the "quality_assessments" edge to the PostQualityAssessment entity.
func (m *AuthorMutation) ClearQualityAssessments() {
	m.clearedquality_assessments = true
}

// QualityAssessmentsCleared reports if the "quality_assessments" edge to the PostQualityAssessment entity was cleared.
func (m *AuthorMutation) QualityAssessmentsCleared() bool {
	return m.clearedquality_assessments
}

// RemoveQualityAssessmentIDs removes the "quality_assessments" edge to the PostQualityAssessment entity by IDs.
func (m *AuthorMutation) RemoveQualityAssessmentIDs(ids ...int) {
	if m.removedquality_assessments == nil {
		m.removedquality_assessments = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.quality_assessments, ids[i])
		m.removedquality_assessments[ids[i]] = struct{}{}
	}
}

// RemovedQualityAssessments returns the removed IDs of the "quality_assessments" edge to the PostQualityAssessment entity.
func (m *AuthorMutation) RemovedQualityAssessmentsIDs() (ids []int) {
	for id := range m.removedquality_assessments {
		ids = append(ids, id)
	}
	return
}

// QualityAssessmentsIDs returns the "quality_assessments" edge IDs in the mutation.
func (m *AuthorMutation) QualityAssessmentsIDs() (ids []int) {
	for id := range m.quality_assessments {
		ids = append(ids, id)
	}
	return
}

// ResetQualityAssessments resets all changes to the "quality_assessments" edge.
func (m *AuthorMutation) ResetQualityAssessments() {
	m.quality_assessments = nil
	m.clearedquality_assessments = false
	m.removedquality_assessments = nil
}

// SetStatsID sets the "stats" edge to the AuthorStats entity by id.
func (m *AuthorMutation) SetStatsID(id int) {
	m.stats = &id
}

// ClearStats clears the "stats" edge to the AuthorStats entity.
func (m *AuthorMutation) ClearStats() {
	m.clearedstats = true
}

// StatsCleared reports if the "stats" edge to the AuthorStats entity was cleared.
func (m *AuthorMutation) StatsCleared() bool {
	return m.clearedstats
}

// StatsID returns the "stats" edge ID in the mutation.
func (m *AuthorMutation) StatsID() (id int, exists bool) {
	if m.stats != nil {
		return *m.stats, true
	}
	return
}

// StatsIDs returns the "stats" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StatsID instead. It exists only for internal usage by the builders.
func (m *AuthorMutation) StatsIDs() (ids []int) {
	if id := m.stats; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStats resets all changes to the "stats" edge.
func (m *AuthorMutation) ResetStats() {
	m.stats = nil
	m.clearedstats = false
}

// Where appends a list predicates to the AuthorMutation builder.
func (m *AuthorMutation) Where(ps ...predicate.Author) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuthorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuthorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Author, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuthorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuthorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Author).
func (m *AuthorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuthorMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.name != nil {
		fields = append(fields, author.FieldName)
	}
	if m.platform != nil {
		fields = append(fields, author.FieldPlatform)
	}
	if m.platform_id != nil {
		fields = append(fields, author.FieldPlatformID)
	}
	if m.profile_url != nil {
		fields = append(fields, author.FieldProfileURL)
	}
	if m.description != nil {
		fields = append(fields, author.FieldDescription)
	}
	if m.role != nil {
		fields = append(fields, author.FieldRole)
	}
	if m.expertise_areas != nil {
		fields = append(fields, author.FieldExpertiseAreas)
	}
	if m.known_biases != nil {
		fields = append(fields, author.FieldKnownBiases)
	}
	if m.credibility_tier != nil {
		fields = append(fields, author.FieldCredibilityTier)
	}
	if m.profile_note != nil {
		fields = append(fields, author.FieldProfileNote)
	}
	if m.profile_fetched != nil {
		fields = append(fields, author.FieldProfileFetched)
	}
	if m.profile_fetched_at != nil {
		fields = append(fields, author.FieldProfileFetchedAt)
	}
	if m.created_at != nil {
		fields = append(fields, author.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuthorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case author.FieldName:
		return m.Name()
	case author.FieldPlatform:
		return m.Platform()
	case author.FieldPlatformID:
		return m.PlatformID()
	case author.FieldProfileURL:
		return m.ProfileURL()
	case author.FieldDescription:
		return m.Description()
	case author.FieldRole:
		return m.Role()
	case author.FieldExpertiseAreas:
		return m.ExpertiseAreas()
	case author.FieldKnownBiases:
		return m.KnownBiases()
	case author.FieldCredibilityTier:
		return m.CredibilityTier()
	case author.FieldProfileNote:
		return m.ProfileNote()
	case author.FieldProfileFetched:
		return m.ProfileFetched()
	case author.FieldProfileFetchedAt:
		return m.ProfileFetchedAt()
	case author.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuthorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case author.FieldName:
		return m.OldName(ctx)
	case author.FieldPlatform:
		return m.OldPlatform(ctx)
	case author.FieldPlatformID:
		return m.OldPlatformID(ctx)
	case author.FieldProfileURL:
		return m.OldProfileURL(ctx)
	case author.FieldDescription:
		return m.OldDescription(ctx)
	case author.FieldRole:
		return m.OldRole(ctx)
	case author.FieldExpertiseAreas:
		return m.OldExpertiseAreas(ctx)
	case author.FieldKnownBiases:
		return m.OldKnownBiases(ctx)
	case author.FieldCredibilityTier:
		return m.OldCredibilityTier(ctx)
	case author.FieldProfileNote:
		return m.OldProfileNote(ctx)
	case author.FieldProfileFetched:
		return m.OldProfileFetched(ctx)
	case author.FieldProfileFetchedAt:
		return m.OldProfileFetchedAt(ctx)
	case author.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Author field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuthorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case author.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case author.FieldPlatform:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case author.FieldPlatformID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatformID(v)
		return nil
	case author.FieldProfileURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileURL(v)
		return nil
	case author.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case author.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case author.FieldExpertiseAreas:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpertiseAreas(v)
		return nil
	case author.FieldKnownBiases:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKnownBiases(v)
		return nil
	case author.FieldCredibilityTier:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCredibilityTier(v)
		return nil
	case author.FieldProfileNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileNote(v)
		return nil
	case author.FieldProfileFetched:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileFetched(v)
		return nil
	case author.FieldProfileFetchedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileFetchedAt(v)
		return nil
	case author.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Author field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuthorMutation) AddedFields() []string {
	var fields []string
	if m.addcredibility_tier != nil {
		fields = append(fields, author.FieldCredibilityTier)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuthorMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case author.FieldCredibilityTier:
		return m.AddedCredibilityTier()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuthorMutation) AddField(name string, value ent.Value) error {
	switch name {
	case author.FieldCredibilityTier:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCredibilityTier(v)
		return nil
	}
	return fmt.Errorf("unknown Author numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuthorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(author.FieldPlatformID) {
		fields = append(fields, author.FieldPlatformID)
	}
	if m.FieldCleared(author.FieldProfileURL) {
		fields = append(fields, author.FieldProfileURL)
	}
	if m.FieldCleared(author.FieldDescription) {
		fields = append(fields, author.FieldDescription)
	}
	if m.FieldCleared(author.FieldRole) {
		fields = append(fields, author.FieldRole)
	}
	if m.FieldCleared(author.FieldExpertiseAreas) {
		fields = append(fields, author.FieldExpertiseAreas)
	}
	if m.FieldCleared(author.FieldKnownBiases) {
		fields = append(fields, author.FieldKnownBiases)
	}
	if m.FieldCleared(author.FieldCredibilityTier) {
		fields = append(fields, author.FieldCredibilityTier)
	}
	if m.FieldCleared(author.FieldProfileNote) {
		fields = append(fields, author.FieldProfileNote)
	}
	if m.FieldCleared(author.FieldProfileFetchedAt) {
		fields = append(fields, author.FieldProfileFetchedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuthorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuthorMutation) ClearField(name string) error {
	switch name {
	case author.FieldPlatformID:
		m.ClearPlatformID()
		return nil
	case author.FieldProfileURL:
		m.ClearProfileURL()
		return nil
	case author.FieldDescription:
		m.ClearDescription()
		return nil
	case author.FieldRole:
		m.ClearRole()
		return nil
	case author.FieldExpertiseAreas:
		m.ClearExpertiseAreas()
		return nil
	case author.FieldKnownBiases:
		m.ClearKnownBiases()
		return nil
	case author.FieldCredibilityTier:
		m.ClearCredibilityTier()
		return nil
	case author.FieldProfileNote:
		m.ClearProfileNote()
		return nil
	case author.FieldProfileFetchedAt:
		m.ClearProfileFetchedAt()
		return nil
	}
	return fmt.Errorf("unknown Author nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuthorMutation) ResetField(name string) error {
	switch name {
	case author.FieldName:
		m.ResetName()
		return nil
	case author.FieldPlatform:
		m.ResetPlatform()
		return nil
	case author.FieldPlatformID:
		m.ResetPlatformID()
		return nil
	case author.FieldProfileURL:
		m.ResetProfileURL()
		return nil
	case author.FieldDescription:
		m.ResetDescription()
		return nil
	case author.FieldRole:
		m.ResetRole()
		return nil
	case author.FieldExpertiseAreas:
		m.ResetExpertiseAreas()
		return nil
	case author.FieldKnownBiases:
		m.ResetKnownBiases()
		return nil
	case author.FieldCredibilityTier:
		m.ResetCredibilityTier()
		return nil
	case author.FieldProfileNote:
		m.ResetProfileNote()
		return nil
	case author.FieldProfileFetched:
		m.ResetProfileFetched()
		return nil
	case author.FieldProfileFetchedAt:
		m.ResetProfileFetchedAt()
		return nil
	case author.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Author field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuthorMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.conclusions != nil {
		edges = append(edges, author.EdgeConclusions)
	}
	if m.solutions != nil {
		edges = append(edges, author.EdgeSolutions)
	}
	if m.monitored_sources != nil {
		edges = append(edges, author.EdgeMonitoredSources)
	}
	if m.quality_assessments != nil {
		edges = append(edges, author.EdgeQualityAssessments)
	}
	if m.stats != nil {
		edges = append(edges, author.EdgeStats)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuthorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case author.EdgeConclusions:
		ids := make([]ent.Value, 0, len(m.conclusions))
		for id := range m.conclusions {
			ids = append(ids, id)
		}
		return ids
	case author.EdgeSolutions:
		ids := make([]ent.Value, 0, len(m.solutions))
		for id := range m.solutions {
			ids = append(ids, id)
		}
		return ids
	case author.EdgeMonitoredSources:
		ids := make([]ent.Value, 0, len(m.monitored_sources))
		for id := range m.monitored_sources {
			ids = append(ids, id)
		}
		return ids
	case author.EdgeQualityAssessments:
		ids := make([]ent.Value, 0, len(m.quality_assessments))
		for id := range m.quality_assessments {
			ids = append(ids, id)
		}
		return ids
	case author.EdgeStats:
		if id := m.stats; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuthorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedconclusions != nil {
		edges = append(edges, author.EdgeConclusions)
	}
	if m.removedsolutions != nil {
		edges = append(edges, author.EdgeSolutions)
	}
	if m.removedmonitored_sources != nil {
		edges = append(edges, author.EdgeMonitoredSources)
	}
	if m.removedquality_assessments != nil {
		edges = append(edges, author.EdgeQualityAssessments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuthorMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case author.EdgeConclusions:
		ids := make([]ent.Value, 0, len(m.removedconclusions))
		for id := range m.removedconclusions {
			ids = append(ids, id)
		}
		return ids
	case author.EdgeSolutions:
		ids := make([]ent.Value, 0, len(m.removedsolutions))
		for id := range m.removedsolutions {
			ids = append(ids, id)
		}
		return ids
	case author.EdgeMonitoredSources:
		ids := make([]ent.Value, 0, len(m.removedmonitored_sources))
		for id := range m.removedmonitored_sources {
			ids = append(ids, id)
		}
		return ids
	case author.EdgeQualityAssessments:
		ids := make([]ent.Value, 0, len(m.removedquality_assessments))
		for id := range m.removedquality_assessments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuthorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedconclusions {
		edges = append(edges, author.EdgeConclusions)
	}
	if m.clearedsolutions {
		edges = append(edges, author.EdgeSolutions)
	}
	if m.clearedmonitored_sources {
		edges = append(edges, author.EdgeMonitoredSources)
	}
	if m.clearedquality_assessments {
		edges = append(edges, author.EdgeQualityAssessments)
	}
	if m.clearedstats {
		edges = append(edges, author.EdgeStats)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuthorMutation) EdgeCleared(name string) bool {
	switch name {
	case author.EdgeConclusions:
		return m.clearedconclusions
	case author.EdgeSolutions:
		return m.clearedsolutions
	case author.EdgeMonitoredSources:
		return m.clearedmonitored_sources
	case author.EdgeQualityAssessments:
		return m.clearedquality_assessments
	case author.EdgeStats:
		return m.clearedstats
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuthorMutation) ClearEdge(name string) error {
	switch name {
	case author.EdgeStats:
		m.ClearStats()
		return nil
	}
	return fmt.Errorf("unknown Author unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuthorMutation) ResetEdge(name string) error {
	switch name {
	case author.EdgeConclusions:
		m.ResetConclusions()
		return nil
	case author.EdgeSolutions:
		m.ResetSolutions()
		return nil
	case author.EdgeMonitoredSources:
		m.ResetMonitoredSources()
		return nil
	case author.EdgeQualityAssessments:
		m.ResetQualityAssessments()
		return nil
	case author.EdgeStats:
		m.ResetStats()
		return nil
	}
	return fmt.Errorf("unknown Author edge %s", name)
}

// AuthorStatsMutation represents an operation that mutates the AuthorStats nodes in the graph.
type AuthorStatsMutation struct {
	config
	op                                   Op
	typ                                  string
	id                                   *int
	fact_accuracy_rate                   *float64
	addfact_accuracy_rate                *float64
	fact_accuracy_sample                 *int
	addfact_accuracy_sample              *int
	conclusion_accuracy_rate             *float64
	addconclusion_accuracy_rate          *float64
	conclusion_accuracy_sample           *int
	addconclusion_accuracy_sample        *int
	prediction_accuracy_rate             *float64
	addprediction_accuracy_rate          *float64
	prediction_accuracy_sample           *int
	addprediction_accuracy_sample        *int
	logic_rigor_score                    *float64
	addlogic_rigor_score                 *float64
	logic_rigor_sample                   *int
	addlogic_rigor_sample                *int
	recommendation_reliability_rate      *float64
	addrecommendation_reliability_rate   *float64
	recommendation_reliability_sample    *int
	addrecommendation_reliability_sample *int
	content_uniqueness_score             *float64
	addcontent_uniqueness_score          *float64
	content_uniqueness_sample            *int
	addcontent_uniqueness_sample         *int
	content_effectiveness_score          *float64
	addcontent_effectiveness_score       *float64
	content_effectiveness_sample         *int
	addcontent_effectiveness_sample      *int
	overall_credibility_score            *float64
	addoverall_credibility_score         *float64
	total_posts_analyzed                 *int
	addtotal_posts_analyzed              *int
	last_updated                         *time.Time
	clearedFields                        map[string]struct{}
	author                               *int
	clearedauthor                        bool
	done                                 bool
	oldValue                             func(context.Context) (*AuthorStats, error)
	predicates                           []predicate.AuthorStats
}

var _ ent.Mutation = (*AuthorStatsMutation)(nil)

// authorstatsOption allows management of the mutation configuration using functional options.
type authorstatsOption func(*AuthorStatsMutation)

// newAuthorStatsMutation creates new mutation for the AuthorStats entity.
func newAuthorStatsMutation(c config, op Op, opts ...authorstatsOption) *AuthorStatsMutation {
	m := &AuthorStatsMutation{
		config:        c,
		op:            op,
		typ:           TypeAuthorStats,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuthorStatsID sets the ID field of the mutation.
func withAuthorStatsID(id int) authorstatsOption {
	return func(m *AuthorStatsMutation) {
		var (
			err   error
			once  sync.Once
			value *AuthorStats
		)
		m.oldValue = func(ctx context.Context) (*AuthorStats, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuthorStats.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuthorStats sets the old AuthorStats of the mutation.
func withAuthorStats(node *AuthorStats) authorstatsOption {
	return func(m *AuthorStatsMutation) {
		m.oldValue = func(context.Context) (*AuthorStats, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuthorStatsMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuthorStatsMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuthorStatsMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuthorStatsMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuthorStats.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAuthorID sets the "author_id" field.
func (m *AuthorStatsMutation) SetAuthorID(i int) {
	m.author = &i
}

// AuthorID returns the value of the "author_id" field in the mutation.
func (m *AuthorStatsMutation) AuthorID() (r int, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorID returns the old "author_id" field's value of the AuthorStats entity.
// If the AuthorStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthorStatsMutation) OldAuthorID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorID: %w", err)
	}
	return oldValue.AuthorID, nil
}

// ResetAuthorID resets all changes to the "author_id" field.
func (m *AuthorStatsMutation) ResetAuthorID() {
	m.author = nil
}

// SetFactAccuracyRate sets the "fact_accuracy_rate" field.
func (m *AuthorStatsMutation) SetFactAccuracyRate(f float64) {
	m.fact_accuracy_rate = &f
	m.addfact_accuracy_rate = nil
}

// FactAccuracyRate returns the value of the "fact_accuracy_rate" field in the mutation.
func (m *AuthorStatsMutation) FactAccuracyRate() (r float64, exists bool) {
	v := m.fact_accuracy_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldFactAccuracyRate returns the old "fact_accuracy_rate" field's value of the AuthorStats entity.
// If the AuthorStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthorStatsMutation) OldFactAccuracyRate(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFactAccuracyRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFactAccuracyRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFactAccuracyRate: %w", err)
	}
	return oldValue.FactAccuracyRate, nil
}

// AddFactAccuracyRate adds f to the "fact_accuracy_rate" field.
func (m *AuthorStatsMutation) AddFactAccuracyRate(f float64) {
	if m.addfact_accuracy_rate != nil {
		*m.addfact_accuracy_rate += f
	} else {
		m.addfact_accuracy_rate = &f
	}
}

// AddedFactAccuracyRate returns the value that was added to the "fact_accuracy_rate" field in this mutation.
func (m *AuthorStatsMutation) AddedFactAccuracyRate() (r float64, exists bool) {
	v := m.addfact_accuracy_rate
	if v == nil {
		return
	}
	return *v, true
}

// ClearFactAccuracyRate clears the value of the "fact_accuracy_rate" field.
func (m *AuthorStatsMutation) ClearFactAccuracyRate() {
	m.fact_accuracy_rate = nil
	m.addfact_accuracy_rate = nil
	m.clearedFields[authorstats.FieldFactAccuracyRate] = struct{}{}
}

// FactAccuracyRateCleared returns if the "fact_accuracy_rate" field was cleared in this mutation.
func (m *AuthorStatsMutation) FactAccuracyRateCleared() bool {
	_, ok := m.clearedFields[authorstats.FieldFactAccuracyRate]
	return ok
}

// ResetFactAccuracyRate resets all changes to the "fact_accuracy_rate" field.
func (m *AuthorStatsMutation) ResetFactAccuracyRate() {
	m.fact_accuracy_rate = nil
	m.addfact_accuracy_rate = nil
	delete(m.clearedFields, authorstats.FieldFactAccuracyRate)
}

// SetFactAccuracySample sets the "fact_accuracy_sample" field.
func (m *AuthorStatsMutation) SetFactAccuracySample(i int) {
	m.fact_accuracy_sample = &i
	m.addfact_accuracy_sample = nil
}

// FactAccuracySample returns the value of the "fact_accuracy_sample" field in the mutation.
func (m *AuthorStatsMutation) FactAccuracySample() (r int, exists bool) {
	v := m.fact_accuracy_sample
	if v == nil {
		return
	}
	return *v, true
}

// OldFactAccuracySample returns the old "fact_accuracy_sample" field's value of the AuthorStats entity.
// If the AuthorStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthorStatsMutation) OldFactAccuracySample(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFactAccuracySample is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFactAccuracySample requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFactAccuracySample: %w", err)
	}
	return oldValue.FactAccuracySample, nil
}

// AddFactAccuracySample adds i to the "fact_accuracy_sample" field.
func (m *AuthorStatsMutation) AddFactAccuracySample(i int) {
	if m.addfact_accuracy_sample != nil {
		*m.addfact_accuracy_sample += i
	} else {
		m.addfact_accuracy_sample = &i
	}
}

// AddedFactAccuracySample returns the value that was added to the "fact_accuracy_sample" field in this mutation.
func (m *AuthorStatsMutation) AddedFactAccuracySample() (r int, exists bool) {
	v := m.addfact_accuracy_sample
	if v == nil {
		return
	}
	return *v, true
}

// ResetFactAccuracySample resets all changes to the "fact_accuracy_sample" field.
func (m *AuthorStatsMutation) ResetFactAccuracySample() {
	m.fact_accuracy_sample = nil
	m.addfact_accuracy_sample = nil
}

// SetConclusionAccuracyRate sets the "conclusion_accuracy_rate" field.
func (m *AuthorStatsMutation) SetConclusionAccuracyRate(f float64) {
	m.conclusion_accuracy_rate = &f
	m.addconclusion_accuracy_rate = nil
}

// ConclusionAccuracyRate returns the value of the "conclusion_accuracy_rate" field in the mutation.
func (m *AuthorStatsMutation) ConclusionAccuracyRate() (r float64, exists bool) {
	v := m.conclusion_accuracy_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldConclusionAccuracyRate returns the old "conclusion_accuracy_rate" field's value of the AuthorStats entity.
// If the AuthorStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthorStatsMutation) OldConclusionAccuracyRate(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConclusionAccuracyRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConclusionAccuracyRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConclusionAccuracyRate: %w", err)
	}
	return oldValue.ConclusionAccuracyRate, nil
}

// AddConclusionAccuracyRate adds f to the "conclusion_accuracy_rate" field.
func (m *AuthorStatsMutation) AddConclusionAccuracyRate(f float64) {
	if m.addconclusion_accuracy_rate != nil {
		*m.addconclusion_accuracy_rate += f
	} else {
		m.addconclusion_accuracy_rate = &f
	}
}

// AddedConclusionAccuracyRate returns the value that was added to the "conclusion_accuracy_rate" field in this mutation.
func (m *AuthorStatsMutation) AddedConclusionAccuracyRate() (r float64, exists bool) {
	v := m.addconclusion_accuracy_rate
	if v == nil {
		return
	}
	return *v, true
}

// ClearConclusionAccuracyRate clears the value of the "conclusion_accuracy_rate" field.
func (m *AuthorStatsMutation) ClearConclusionAccuracyRate() {
	m.conclusion_accuracy_rate = nil
	m.addconclusion_accuracy_rate = nil
	m.clearedFields[authorstats.FieldConclusionAccuracyRate] = struct{}{}
}

// ConclusionAccuracyRateCleared returns if the "conclusion_accuracy_rate" field was cleared in this mutation.
func (m *AuthorStatsMutation) ConclusionAccuracyRateCleared() bool {
	_, ok := m.clearedFields[authorstats.FieldConclusionAccuracyRate]
	return ok
}

// ResetConclusionAccuracyRate resets all changes to the "conclusion_accuracy_rate" field.
func (m *AuthorStatsMutation) ResetConclusionAccuracyRate() {
	m.conclusion_accuracy_rate = nil
	m.addconclusion_accuracy_rate = nil
	delete(m.clearedFields, authorstats.FieldConclusionAccuracyRate)
}

// SetConclusionAccuracySample sets the "conclusion_accuracy_sample" field.
func (m *AuthorStatsMutation) SetConclusionAccuracySample(i int) {
	m.conclusion_accuracy_sample = &i
	m.addconclusion_accuracy_sample = nil
}

// ConclusionAccuracySample returns the value of the "conclusion_accuracy_sample" field in the mutation.
func (m *AuthorStatsMutation) ConclusionAccuracySample() (r int, exists bool) {
	v := m.conclusion_accuracy_sample
	if v == nil {
		return
	}
	return *v, true
}

// OldConclusionAccuracySample returns the old "conclusion_accuracy_sample" field's value of the AuthorStats entity.
// If the AuthorStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthorStatsMutation) OldConclusionAccuracySample(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConclusionAccuracySample is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConclusionAccuracySample requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConclusionAccuracySample: %w", err)
	}
	return oldValue.ConclusionAccuracySample, nil
}

// AddConclusionAccuracySample adds i to the "conclusion_accuracy_sample" field.
func (m *AuthorStatsMutation) AddConclusionAccuracySample(i int) {
	if m.addconclusion_accuracy_sample != nil {
		*m.addconclusion_accuracy_sample += i
	} else {
		m.addconclusion_accuracy_sample = &i
	}
}

// AddedConclusionAccuracySample returns the value that was added to the "conclusion_accuracy_sample" field in this mutation.
func (m *AuthorStatsMutation) AddedConclusionAccuracySample() (r int, exists bool) {
	v := m.addconclusion_accuracy_sample
	if v == nil {
		return
	}
	return *v, true
}

// ResetConclusionAccuracySample resets all changes to the "conclusion_accuracy_sample" field.
func (m *AuthorStatsMutation) ResetConclusionAccuracySample() {
	m.conclusion_accuracy_sample = nil
	m.addconclusion_accuracy_sample = nil
}

// SetPredictionAccuracyRate sets the "prediction_accuracy_rate" field.
func (m *AuthorStatsMutation) SetPredictionAccuracyRate(f float64) {
	m.prediction_accuracy_rate = &f
	m.addprediction_accuracy_rate = nil
}

// PredictionAccuracyRate returns the value of the "prediction_accuracy_rate" field in the mutation.
func (m *AuthorStatsMutation) PredictionAccuracyRate() (r float64, exists bool) {
	v := m.prediction_accuracy_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldPredictionAccuracyRate returns the old "prediction_accuracy_rate" field's value of the AuthorStats entity.
// If the AuthorStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthorStatsMutation) OldPredictionAccuracyRate(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPredictionAccuracyRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPredictionAccuracyRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPredictionAccuracyRate: %w", err)
	}
	return oldValue.PredictionAccuracyRate, nil
}

// AddPredictionAccuracyRate adds f to the "prediction_accuracy_rate" field.
func (m *AuthorStatsMutation) AddPredictionAccuracyRate(f float64) {
	if m.addprediction_accuracy_rate != nil {
		*m.addprediction_accuracy_rate += f
	} else {
		m.addprediction_accuracy_rate = &f
	}
}

// AddedPredictionAccuracyRate returns the value that was added to the "prediction_accuracy_rate" field in this mutation.
func (m *AuthorStatsMutation) AddedPredictionAccuracyRate() (r float64, exists bool) {
	v := m.addprediction_accuracy_rate
	if v == nil {
		return
	}
	return *v, true
}

// ClearPredictionAccuracyRate clears the value of the "prediction_accuracy_rate" field.
func (m *AuthorStatsMutation) ClearPredictionAccuracyRate() {
	m.prediction_accuracy_rate = nil
	m.addprediction_accuracy_rate = nil
	m.clearedFields[authorstats.FieldPredictionAccuracyRate] = struct{}{}
}

// PredictionAccuracyRateCleared returns if the "prediction_accuracy_rate" field was cleared in this mutation.
func (m *AuthorStatsMutation) PredictionAccuracyRateCleared() bool {
	_, ok := m.clearedFields[authorstats.FieldPredictionAccuracyRate]
	return ok
}

// ResetPredictionAccuracyRate resets all changes to the "prediction_accuracy_rate" field.
func (m *AuthorStatsMutation) ResetPredictionAccuracyRate() {
	m.prediction_accuracy_rate = nil
	m.addprediction_accuracy_rate = nil
	delete(m.clearedFields, authorstats.FieldPredictionAccuracyRate)
}

// SetPredictionAccuracySample sets the "prediction_accuracy_sample" field.
func (m *AuthorStatsMutation) SetPredictionAccuracySample(i int) {
	m.prediction_accuracy_sample = &i
	m.addprediction_accuracy_sample = nil
}

// PredictionAccuracySample returns the value of the "prediction_accuracy_sample" field in the mutation.
func (m *AuthorStatsMutation) PredictionAccuracySample() (r int, exists bool) {
	v := m.prediction_accuracy_sample
	if v == nil {
		return
	}
	return *v, true
}

// OldPredictionAccuracySample returns the old "prediction_accuracy_sample" field's value of the AuthorStats entity.
// If the AuthorStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthorStatsMutation) OldPredictionAccuracySample(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPredictionAccuracySample is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPredictionAccuracySample requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPredictionAccuracySample: %w", err)
	}
	return oldValue.PredictionAccuracySample, nil
}

// AddPredictionAccuracySample adds i to the "prediction_accuracy_sample" field.
func (m *AuthorStatsMutation) AddPredictionAccuracySample(i int) {
	if m.addprediction_accuracy_sample != nil {
		*m.addprediction_accuracy_sample += i
	} else {
		m.addprediction_accuracy_sample = &i
	}
}

// AddedPredictionAccuracySample returns the value that was added to the "prediction_accuracy_sample" field in this mutation.
func (m *AuthorStatsMutation) AddedPredictionAccuracySample() (r int, exists bool) {
	v := m.addprediction_accuracy_sample
	if v == nil {
		return
	}
	return *v, true
}

// ResetPredictionAccuracySample resets all changes to the "prediction_accuracy_sample" field.
func (m *AuthorStatsMutation) ResetPredictionAccuracySample() {
	m.prediction_accuracy_sample = nil
	m.addprediction_accuracy_sample = nil
}

// SetLogicRigorScore sets the "logic_rigor_score" field.
func (m *AuthorStatsMutation) SetLogicRigorScore(f float64) {
	m.logic_rigor_score = &f
	m.addlogic_rigor_score = nil
}

// LogicRigorScore returns the value of the "logic_rigor_score" field in the mutation.
func (m *AuthorStatsMutation) LogicRigorScore() (r float64, exists bool) {
	v := m.logic_rigor_score
	if v == nil {
		return
	}
	return *v, true
}

// OldLogicRigorScore returns the old "logic_rigor_score" field's value of the AuthorStats entity.
// If the AuthorStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthorStatsMutation) OldLogicRigorScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLogicRigorScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLogicRigorScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLogicRigorScore: %w", err)
	}
	return oldValue.LogicRigorScore, nil
}

// AddLogicRigorScore adds f to the "logic_rigor_score" field.
func (m *AuthorStatsMutation) AddLogicRigorScore(f float64) {
	if m.addlogic_rigor_score != nil {
		*m.addlogic_rigor_score += f
	} else {
		m.addlogic_rigor_score = &f
	}
}

// AddedLogicRigorScore returns the value that was added to the "logic_rigor_score" field in this mutation.
func (m *AuthorStatsMutation) AddedLogicRigorScore() (r float64, exists bool) {
	v := m.addlogic_rigor_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearLogicRigorScore clears the value of the "logic_rigor_score" field.
func (m *AuthorStatsMutation) ClearLogicRigorScore() {
	m.logic_rigor_score = nil
	m.addlogic_rigor_score = nil
	m.clearedFields[authorstats.FieldLogicRigorScore] = struct{}{}
}

// LogicRigorScoreCleared returns if the "logic_rigor_score" field was cleared in this mutation.
func (m *AuthorStatsMutation) LogicRigorScoreCleared() bool {
	_, ok := m.clearedFields[authorstats.FieldLogicRigorScore]
	return ok
}

// ResetLogicRigorScore resets all changes to the "logic_rigor_score" field.
func (m *AuthorStatsMutation) ResetLogicRigorScore() {
	m.logic_rigor_score = nil
	m.addlogic_rigor_score = nil
	delete(m.clearedFields, authorstats.FieldLogicRigorScore)
}

// SetLogicRigorSample sets the "logic_rigor_sample" field.
func (m *AuthorStatsMutation) SetLogicRigorSample(i int) {
	m.logic_rigor_sample = &i
	m.addlogic_rigor_sample = nil
}

// LogicRigorSample returns the value of the "logic_rigor_sample" field in the mutation.
func (m *AuthorStatsMutation) LogicRigorSample() (r int, exists bool) {
	v := m.logic_rigor_sample
	if v == nil {
		return
	}
	return *v, true
}

// OldLogicRigorSample returns the old "logic_rigor_sample" field's value of the AuthorStats entity.
// If the AuthorStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthorStatsMutation) OldLogicRigorSample(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLogicRigorSample is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLogicRigorSample requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLogicRigorSample: %w", err)
	}
	return oldValue.LogicRigorSample, nil
}

// AddLogicRigorSample adds i to the "logic_rigor_sample" field.
func (m *AuthorStatsMutation) AddLogicRigorSample(i int) {
	if m.addlogic_rigor_sample != nil {
		*m.addlogic_rigor_sample += i
	} else {
		m.addlogic_rigor_sample = &i
	}
}

// AddedLogicRigorSample returns the value that was added to the "logic_rigor_sample" field in this mutation.
func (m *AuthorStatsMutation) AddedLogicRigorSample() (r int, exists bool) {
	v := m.addlogic_rigor_sample
	if v == nil {
		return
	}
	return *v, true
}

// ResetLogicRigorSample resets all changes to the "logic_rigor_sample" field.
func (m *AuthorStatsMutation) ResetLogicRigorSample() {
	m.logic_rigor_sample = nil
	m.addlogic_rigor_sample = nil
}

// SetRecommendationReliabilityRate sets the "recommendation_reliability_rate" field.
func (m *AuthorStatsMutation) SetRecommendationReliabilityRate(f float64) {
	m.recommendation_reliability_rate = &f
	m.addrecommendation_reliability_rate = nil
}

// RecommendationReliabilityRate returns the value of the "recommendation_reliability_rate" field in the mutation.
func (m *AuthorStatsMutation) RecommendationReliabilityRate() (r float64, exists bool) {
	v := m.recommendation_reliability_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendationReliabilityRate returns the old "recommendation_reliability_rate" field's value of the AuthorStats entity.
// If the AuthorStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthorStatsMutation) OldRecommendationReliabilityRate(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendationReliabilityRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendationReliabilityRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendationReliabilityRate: %w", err)
	}
	return oldValue.RecommendationReliabilityRate, nil
}

// AddRecommendationReliabilityRate adds f to the "recommendation_reliability_rate" field.
func (m *AuthorStatsMutation) AddRecommendationReliabilityRate(f float64) {
	if m.addrecommendation_reliability_rate != nil {
		*m.addrecommendation_reliability_rate += f
	} else {
		m.addrecommendation_reliability_rate = &f
	}
}

// AddedRecommendationReliabilityRate returns the value that was added to the "recommendation_reliability_rate" field in this mutation.
func (m *AuthorStatsMutation) AddedRecommendationReliabilityRate() (r float64, exists bool) {
	v := m.addrecommendation_reliability_rate
	if v == nil {
		return
	}
	return *v, true
}

// ClearRecommendationReliabilityRate clears the value of the "recommendation_reliability_rate" field.
func (m *AuthorStatsMutation) ClearRecommendationReliabilityRate() {
	m.recommendation_reliability_rate = nil
	m.addrecommendation_reliability_rate = nil
	m.clearedFields[authorstats.FieldRecommendationReliabilityRate] = struct{}{}
}

// RecommendationReliabilityRateCleared returns if the "recommendation_reliability_rate" field was cleared in this mutation.
func (m *AuthorStatsMutation) RecommendationReliabilityRateCleared() bool {
	_, ok := m.clearedFields[authorstats.FieldRecommendationReliabilityRate]
	return ok
}

// ResetRecommendationReliabilityRate resets all changes to the "recommendation_reliability_rate" field.
func (m *AuthorStatsMutation) ResetRecommendationReliabilityRate() {
	m.recommendation_reliability_rate = nil
	m.addrecommendation_reliability_rate = nil
	delete(m.clearedFields, authorstats.FieldRecommendationReliabilityRate)
}

// SetRecommendationReliabilitySample sets the "recommendation_reliability_sample" field.
func (m *AuthorStatsMutation) SetRecommendationReliabilitySample(i int) {
	m.recommendation_reliability_sample = &i
	m.addrecommendation_reliability_sample = nil
}

// RecommendationReliabilitySample returns the value of the "recommendation_reliability_sample" field in the mutation.
func (m *AuthorStatsMutation) RecommendationReliabilitySample() (r int, exists bool) {
	v := m.recommendation_reliability_sample
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendationReliabilitySample returns the old "recommendation_reliability_sample" field's value of the AuthorStats entity.
// If the AuthorStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthorStatsMutation) OldRecommendationReliabilitySample(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendationReliabilitySample is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendationReliabilitySample requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendationReliabilitySample: %w", err)
	}
	return oldValue.RecommendationReliabilitySample, nil
}

// AddRecommendationReliabilitySample adds i to the "recommendation_reliability_sample" field.
func (m *AuthorStatsMutation) AddRecommendationReliabilitySample(i int) {
	if m.addrecommendation_reliability_sample != nil {
		*m.addrecommendation_reliability_sample += i
	} else {
		m.addrecommendation_reliability_sample = &i
	}
}

// AddedRecommendationReliabilitySample returns the value that was added to the "recommendation_reliability_sample" field in this mutation.
func (m *AuthorStatsMutation) AddedRecommendationReliabilitySample() (r int, exists bool) {
	v := m.addrecommendation_reliability_sample
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecommendationReliabilitySample resets all changes to the "recommendation_reliability_sample" field.
func (m *AuthorStatsMutation) ResetRecommendationReliabilitySample() {
	m.recommendation_reliability_sample = nil
	m.addrecommendation_reliability_sample = nil
}

// SetContentUniquenessScore sets the "content_uniqueness_score" field.
func (m *AuthorStatsMutation) SetContentUniquenessScore(f float64) {
	m.content_uniqueness_score = &f
	m.addcontent_uniqueness_score = nil
}

// ContentUniquenessScore returns the value of the "content_uniqueness_score" field in the mutation.
func (m *AuthorStatsMutation) ContentUniquenessScore() (r float64, exists bool) {
	v := m.content_uniqueness_score
	if v == nil {
		return
	}
	return *v, true
}

// OldContentUniquenessScore returns the old "content_uniqueness_score" field's value of the AuthorStats entity.
// If the AuthorStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthorStatsMutation) OldContentUniquenessScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentUniquenessScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentUniquenessScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentUniquenessScore: %w", err)
	}
	return oldValue.ContentUniquenessScore, nil
}

// AddContentUniquenessScore adds f to the "content_uniqueness_score" field.
func (m *AuthorStatsMutation) AddContentUniquenessScore(f float64) {
	if m.addcontent_uniqueness_score != nil {
		*m.addcontent_uniqueness_score += f
	} else {
		m.addcontent_uniqueness_score = &f
	}
}

// AddedContentUniquenessScore returns the value that was added to the "content_uniqueness_score" field in this mutation.
func (m *AuthorStatsMutation) AddedContentUniquenessScore() (r float64, exists bool) {
	v := m.addcontent_uniqueness_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearContentUniquenessScore clears the value of the "content_uniqueness_score" field.
func (m *AuthorStatsMutation) ClearContentUniquenessScore() {
	m.content_uniqueness_score = nil
	m.addcontent_uniqueness_score = nil
	m.clearedFields[authorstats.FieldContentUniquenessScore] = struct{}{}
}

// ContentUniquenessScoreCleared returns if the "content_uniqueness_score" field was cleared in this mutation.
func (m *AuthorStatsMutation) ContentUniquenessScoreCleared() bool {
	_, ok := m.clearedFields[authorstats.FieldContentUniquenessScore]
	return ok
}

// ResetContentUniquenessScore resets all changes to the "content_uniqueness_score" field.
func (m *AuthorStatsMutation) ResetContentUniquenessScore() {
	m.content_uniqueness_score = nil
	m.addcontent_uniqueness_score = nil
	delete(m.clearedFields, authorstats.FieldContentUniquenessScore)
}

// SetContentUniquenessSample sets the "content_uniqueness_sample" field.
func (m *AuthorStatsMutation) SetContentUniquenessSample(i int) {
	m.content_uniqueness_sample = &i
	m.addcontent_uniqueness_sample = nil
}

// ContentUniquenessSample returns the value of the "content_uniqueness_sample" field in the mutation.
func (m *AuthorStatsMutation) ContentUniquenessSample() (r int, exists bool) {
	v := m.content_uniqueness_sample
	if v == nil {
		return
	}
	return *v, true
}

// OldContentUniquenessSample returns the old "content_uniqueness_sample" field's value of the AuthorStats entity.
// If the AuthorStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthorStatsMutation) OldContentUniquenessSample(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentUniquenessSample is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentUniquenessSample requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentUniquenessSample: %w", err)
	}
	return oldValue.ContentUniquenessSample, nil
}

// AddContentUniquenessSample adds i to the "content_uniqueness_sample" field.
func (m *AuthorStatsMutation) AddContentUniquenessSample(i int) {
	if m.addcontent_uniqueness_sample != nil {
		*m.addcontent_uniqueness_sample += i
	} else {
		m.addcontent_uniqueness_sample = &i
	}
}

// AddedContentUniquenessSample returns the value that was added to the "content_uniqueness_sample" field in this mutation.
func (m *AuthorStatsMutation) AddedContentUniquenessSample() (r int, exists bool) {
	v := m.addcontent_uniqueness_sample
	if v == nil {
		return
	}
	return *v, true
}

// ResetContentUniquenessSample resets all changes to the "content_uniqueness_sample" field.
func (m *AuthorStatsMutation) ResetContentUniquenessSample() {
	m.content_uniqueness_sample = nil
	m.addcontent_uniqueness_sample = nil
}

// SetContentEffectivenessScore sets the "content_effectiveness_score" field.
func (m *AuthorStatsMutation) SetContentEffectivenessScore(f float64) {
	m.content_effectiveness_score = &f
	m.addcontent_effectiveness_score = nil
}

// ContentEffectivenessScore returns the value of the "content_effectiveness_score" field in the mutation.
func (m *AuthorStatsMutation) ContentEffectivenessScore() (r float64, exists bool) {
	v := m.content_effectiveness_score
	if v == nil {
		return
	}
	return *v, true
}

// OldContentEffectivenessScore returns the old "content_effectiveness_score" field's value of the AuthorStats entity.
// If the AuthorStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthorStatsMutation) OldContentEffectivenessScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentEffectivenessScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentEffectivenessScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentEffectivenessScore: %w", err)
	}
	return oldValue.ContentEffectivenessScore, nil
}

// AddContentEffectivenessScore adds f to the "content_effectiveness_score" field.
func (m *AuthorStatsMutation) AddContentEffectivenessScore(f float64) {
	if m.addcontent_effectiveness_score != nil {
		*m.addcontent_effectiveness_score += f
	} else {
		m.addcontent_effectiveness_score = &f
	}
}

// AddedContentEffectivenessScore returns the value that was added to the "content_effectiveness_score" field in this mutation.
func (m *AuthorStatsMutation) AddedContentEffectivenessScore() (r float64, exists bool) {
	v := m.addcontent_effectiveness_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearContentEffectivenessScore clears the value of the "content_effectiveness_score" field.
func (m *AuthorStatsMutation) ClearContentEffectivenessScore() {
	m.content_effectiveness_score = nil
	m.addcontent_effectiveness_score = nil
	m.clearedFields[authorstats.FieldContentEffectivenessScore] = struct{}{}
}

// ContentEffectivenessScoreCleared returns if the "content_effectiveness_score" field was cleared in this mutation.
func (m *AuthorStatsMutation) ContentEffectivenessScoreCleared() bool {
	_, ok := m.clearedFields[authorstats.FieldContentEffectivenessScore]
	return ok
}

// ResetContentEffectivenessScore resets all changes to the "content_effectiveness_score" field.
func (m *AuthorStatsMutation) ResetContentEffectivenessScore() {
	m.content_effectiveness_score = nil
	m.addcontent_effectiveness_score = nil
	delete(m.clearedFields, authorstats.FieldContentEffectivenessScore)
}

// SetContentEffectivenessSample sets the "content_effectiveness_sample" field.
func (m *AuthorStatsMutation) SetContentEffectivenessSample(i int) {
	m.content_effectiveness_sample = &i
	m.addcontent_effectiveness_sample = nil
}

// ContentEffectivenessSample returns the value of the "content_effectiveness_sample" field in the mutation.
func (m *AuthorStatsMutation) ContentEffectivenessSample() (r int, exists bool) {
	v := m.content_effectiveness_sample
	if v == nil {
		return
	}
	return *v, true
}

// OldContentEffectivenessSample returns the old "content_effectiveness_sample" field's value of the AuthorStats entity.
// If the AuthorStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthorStatsMutation) OldContentEffectivenessSample(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentEffectivenessSample is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentEffectivenessSample requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentEffectivenessSample: %w", err)
	}
	return oldValue.ContentEffectivenessSample, nil
}

// AddContentEffectivenessSample adds i to the "content_effectiveness_sample" field.
func (m *AuthorStatsMutation) AddContentEffectivenessSample(i int) {
	if m.addcontent_effectiveness_sample != nil {
		*m.addcontent_effectiveness_sample += i
	} else {
		m.addcontent_effectiveness_sample = &i
	}
}

// AddedContentEffectivenessSample returns the value that was added to the "content_effectiveness_sample" field in this mutation.
func (m *AuthorStatsMutation) AddedContentEffectivenessSample() (r int, exists bool) {
	v := m.addcontent_effectiveness_sample
	if v == nil {
		return
	}
	return *v, true
}

// ResetContentEffectivenessSample resets all changes to the "content_effectiveness_sample" field.
func (m *AuthorStatsMutation) ResetContentEffectivenessSample() {
	m.content_effectiveness_sample = nil
	m.addcontent_effectiveness_sample = nil
}

// SetOverallCredibilityScore sets the "overall_credibility_score" field.
func (m *AuthorStatsMutation) SetOverallCredibilityScore(f float64) {
	m.overall_credibility_score = &f
	m.addoverall_credibility_score = nil
}

// OverallCredibilityScore returns the value of the "overall_credibility_score" field in the mutation.
func (m *AuthorStatsMutation) OverallCredibilityScore() (r float64, exists bool) {
	v := m.overall_credibility_score
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallCredibilityScore returns the old "overall_credibility_score" field's value of the AuthorStats entity.
// If the AuthorStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthorStatsMutation) OldOverallCredibilityScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallCredibilityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallCredibilityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallCredibilityScore: %w", err)
	}
	return oldValue.OverallCredibilityScore, nil
}

// AddOverallCredibilityScore adds f to the "overall_credibility_score" field.
func (m *AuthorStatsMutation) AddOverallCredibilityScore(f float64) {
	if m.addoverall_credibility_score != nil {
		*m.addoverall_credibility_score += f
	} else {
		m.addoverall_credibility_score = &f
	}
}

// AddedOverallCredibilityScore returns the value that was added to the "overall_credibility_score" field in this mutation.
func (m *AuthorStatsMutation) AddedOverallCredibilityScore() (r float64, exists bool) {
	v := m.addoverall_credibility_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearOverallCredibilityScore clears the value of the "overall_credibility_score" field.
func (m *AuthorStatsMutation) ClearOverallCredibilityScore() {
	m.overall_credibility_score = nil
	m.addoverall_credibility_score = nil
	m.clearedFields[authorstats.FieldOverallCredibilityScore] = struct{}{}
}

// OverallCredibilityScoreCleared returns if the "overall_credibility_score" field was cleared in this mutation.
func (m *AuthorStatsMutation) OverallCredibilityScoreCleared() bool {
	_, ok := m.clearedFields[authorstats.FieldOverallCredibilityScore]
	return ok
}

// ResetOverallCredibilityScore resets all changes to the "overall_credibility_score" field.
func (m *AuthorStatsMutation) ResetOverallCredibilityScore() {
	m.overall_credibility_score = nil
	m.addoverall_credibility_score = nil
	delete(m.clearedFields, authorstats.FieldOverallCredibilityScore)
}

// SetTotalPostsAnalyzed sets the "total_posts_analyzed" field.
func (m *AuthorStatsMutation) SetTotalPostsAnalyzed(i int) {
	m.total_posts_analyzed = &i
	m.addtotal_posts_analyzed = nil
}

// TotalPostsAnalyzed returns the value of the "total_posts_analyzed" field in the mutation.
func (m *AuthorStatsMutation) TotalPostsAnalyzed() (r int, exists bool) {
	v := m.total_posts_analyzed
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalPostsAnalyzed returns the old "total_posts_analyzed" field's value of the AuthorStats entity.
// If the AuthorStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthorStatsMutation) OldTotalPostsAnalyzed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalPostsAnalyzed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalPostsAnalyzed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalPostsAnalyzed: %w", err)
	}
	return oldValue.TotalPostsAnalyzed, nil
}

// AddTotalPostsAnalyzed adds i to the "total_posts_analyzed" field.
func (m *AuthorStatsMutation) AddTotalPostsAnalyzed(i int) {
	if m.addtotal_posts_analyzed != nil {
		*m.addtotal_posts_analyzed += i
	} else {
		m.addtotal_posts_analyzed = &i
	}
}

// AddedTotalPostsAnalyzed returns the value that was added to the "total_posts_analyzed" field in this mutation.
func (m *AuthorStatsMutation) AddedTotalPostsAnalyzed() (r int, exists bool) {
	v := m.addtotal_posts_analyzed
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalPostsAnalyzed resets all changes to the "total_posts_analyzed" field.
func (m *AuthorStatsMutation) ResetTotalPostsAnalyzed() {
	m.total_posts_analyzed = nil
	m.addtotal_posts_analyzed = nil
}

// SetLastUpdated sets the "last_updated" field.
func (m *AuthorStatsMutation) SetLastUpdated(t time.Time) {
	m.last_updated = &t
}

// LastUpdated returns the value of the "last_updated" field in the mutation.
func (m *AuthorStatsMutation) LastUpdated() (r time.Time, exists bool) {
	v := m.last_updated
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUpdated returns the old "last_updated" field's value of the AuthorStats entity.
// If the AuthorStats object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuthorStatsMutation) OldLastUpdated(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUpdated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUpdated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUpdated: %w", err)
	}
	return oldValue.LastUpdated, nil
}

// ResetLastUpdated resets all changes to the "last_updated" field.
func (m *AuthorStatsMutation) ResetLastUpdated() {
	m.last_updated = nil
}

// ClearAuthor clears the "author" edge to the Author entity.
func (m *AuthorStatsMutation) ClearAuthor() {
	m.clearedauthor = true
	m.clearedFields[authorstats.FieldAuthorID] = struct{}{}
}

// AuthorCleared reports if the "author" edge to the Author entity was cleared.
func (m *AuthorStatsMutation) AuthorCleared() bool {
	return m.clearedauthor
}

// AuthorIDs returns the "author" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AuthorID instead. It exists only for internal usage by the builders.
func (m *AuthorStatsMutation) AuthorIDs() (ids []int) {
	if id := m.author; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAuthor resets all changes to the "author" edge.
func (m *AuthorStatsMutation) ResetAuthor() {
	m.author = nil
	m.clearedauthor = false
}

// Where appends a list predicates to the AuthorStatsMutation builder.
func (m *AuthorStatsMutation) Where(ps ...predicate.AuthorStats) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuthorStatsMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuthorStatsMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuthorStats, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuthorStatsMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuthorStatsMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuthorStats).
func (m *AuthorStatsMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuthorStatsMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.author != nil {
		fields = append(fields, authorstats.FieldAuthorID)
	}
	if m.fact_accuracy_rate != nil {
		fields = append(fields, authorstats.FieldFactAccuracyRate)
	}
	if m.fact_accuracy_sample != nil {
		fields = append(fields, authorstats.FieldFactAccuracySample)
	}
	if m.conclusion_accuracy_rate != nil {
		fields = append(fields, authorstats.FieldConclusionAccuracyRate)
	}
	if m.conclusion_accuracy_sample != nil {
		fields = append(fields, authorstats.FieldConclusionAccuracySample)
	}
	if m.prediction_accuracy_rate != nil {
		fields = append(fields, authorstats.FieldPredictionAccuracyRate)
	}
	if m.prediction_accuracy_sample != nil {
		fields = append(fields, authorstats.FieldPredictionAccuracySample)
	}
	if m.logic_rigor_score != nil {
		fields = append(fields, authorstats.FieldLogicRigorScore)
	}
	if m.logic_rigor_sample != nil {
		fields = append(fields, authorstats.FieldLogicRigorSample)
	}
	if m.recommendation_reliability_rate != nil {
		fields = append(fields, authorstats.FieldRecommendationReliabilityRate)
	}
	if m.recommendation_reliability_sample != nil {
		fields = append(fields, authorstats.FieldRecommendationReliabilitySample)
	}
	if m.content_uniqueness_score != nil {
		fields = append(fields, authorstats.FieldContentUniquenessScore)
	}
	if m.content_uniqueness_sample != nil {
		fields = append(fields, authorstats.FieldContentUniquenessSample)
	}
	if m.content_effectiveness_score != nil {
		fields = append(fields, authorstats.FieldContentEffectivenessScore)
	}
	if m.content_effectiveness_sample != nil {
		fields = append(fields, authorstats.FieldContentEffectivenessSample)
	}
	if m.overall_credibility_score != nil {
		fields = append(fields, authorstats.FieldOverallCredibilityScore)
	}
	if m.total_posts_analyzed != nil {
		fields = append(fields, authorstats.FieldTotalPostsAnalyzed)
	}
	if m.last_updated != nil {
		fields = append(fields, authorstats.FieldLastUpdated)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuthorStatsMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case authorstats.FieldAuthorID:
		return m.AuthorID()
	case authorstats.FieldFactAccuracyRate:
		return m.FactAccuracyRate()
	case authorstats.FieldFactAccuracySample:
		return m.FactAccuracySample()
	case authorstats.FieldConclusionAccuracyRate:
		return m.ConclusionAccuracyRate()
	case authorstats.FieldConclusionAccuracySample:
		return m.ConclusionAccuracySample()
	case authorstats.FieldPredictionAccuracyRate:
		return m.PredictionAccuracyRate()
	case authorstats.FieldPredictionAccuracySample:
		return m.PredictionAccuracySample()
	case authorstats.FieldLogicRigorScore:
		return m.LogicRigorScore()
	case authorstats.FieldLogicRigorSample:
		return m.LogicRigorSample()
	case authorstats.FieldRecommendationReliabilityRate:
		return m.RecommendationReliabilityRate()
	case authorstats.FieldRecommendationReliabilitySample:
		return m.RecommendationReliabilitySample()
	case authorstats.FieldContentUniquenessScore:
		return m.ContentUniquenessScore()
	case authorstats.FieldContentUniquenessSample:
		return m.ContentUniquenessSample()
	case authorstats.FieldContentEffectivenessScore:
		return m.ContentEffectivenessScore()
	case authorstats.FieldContentEffectivenessSample:
		return m.ContentEffectivenessSample()
	case authorstats.FieldOverallCredibilityScore:
		return m.OverallCredibilityScore()
	case authorstats.FieldTotalPostsAnalyzed:
		return m.TotalPostsAnalyzed()
	case authorstats.FieldLastUpdated:
		return m.LastUpdated()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuthorStatsMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case authorstats.FieldAuthorID:
		return m.OldAuthorID(ctx)
	case authorstats.FieldFactAccuracyRate:
		return m.OldFactAccuracyRate(ctx)
	case authorstats.FieldFactAccuracySample:
		return m.OldFactAccuracySample(ctx)
	case authorstats.FieldConclusionAccuracyRate:
		return m.OldConclusionAccuracyRate(ctx)
	case authorstats.FieldConclusionAccuracySample:
		return m.OldConclusionAccuracySample(ctx)
	case authorstats.FieldPredictionAccuracyRate:
		return m.OldPredictionAccuracyRate(ctx)
	case authorstats.FieldPredictionAccuracySample:
		return m.OldPredictionAccuracySample(ctx)
	case authorstats.FieldLogicRigorScore:
		return m.OldLogicRigorScore(ctx)
	case authorstats.FieldLogicRigorSample:
		return m.OldLogicRigorSample(ctx)
	case authorstats.FieldRecommendationReliabilityRate:
		return m.OldRecommendationReliabilityRate(ctx)
	case authorstats.FieldRecommendationReliabilitySample:
		return m.OldRecommendationReliabilitySample(ctx)
	case authorstats.FieldContentUniquenessScore:
		return m.OldContentUniquenessScore(ctx)
	case authorstats.FieldContentUniquenessSample:
		return m.OldContentUniquenessSample(ctx)
	case authorstats.FieldContentEffectivenessScore:
		return m.OldContentEffectivenessScore(ctx)
	case authorstats.FieldContentEffectivenessSample:
		return m.OldContentEffectivenessSample(ctx)
	case authorstats.FieldOverallCredibilityScore:
		return m.OldOverallCredibilityScore(ctx)
	case authorstats.FieldTotalPostsAnalyzed:
		return m.OldTotalPostsAnalyzed(ctx)
	case authorstats.FieldLastUpdated:
		return m.OldLastUpdated(ctx)
	}
	return nil, fmt.Errorf("unknown AuthorStats field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuthorStatsMutation) SetField(name string, value ent.Value) error {
	switch name {
	case authorstats.FieldAuthorID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorID(v)
		return nil
	case authorstats.FieldFactAccuracyRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFactAccuracyRate(v)
		return nil
	case authorstats.FieldFactAccuracySample:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFactAccuracySample(v)
		return nil
	case authorstats.FieldConclusionAccuracyRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConclusionAccuracyRate(v)
		return nil
	case authorstats.FieldConclusionAccuracySample:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConclusionAccuracySample(v)
		return nil
	case authorstats.FieldPredictionAccuracyRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPredictionAccuracyRate(v)
		return nil
	case authorstats.FieldPredictionAccuracySample:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPredictionAccuracySample(v)
		return nil
	case authorstats.FieldLogicRigorScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLogicRigorScore(v)
		return nil
	case authorstats.FieldLogicRigorSample:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLogicRigorSample(v)
		return nil
	case authorstats.FieldRecommendationReliabilityRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendationReliabilityRate(v)
		return nil
	case authorstats.FieldRecommendationReliabilitySample:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendationReliabilitySample(v)
		return nil
	case authorstats.FieldContentUniquenessScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentUniquenessScore(v)
		return nil
	case authorstats.FieldContentUniquenessSample:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentUniquenessSample(v)
		return nil
	case authorstats.FieldContentEffectivenessScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentEffectivenessScore(v)
		return nil
	case authorstats.FieldContentEffectivenessSample:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentEffectivenessSample(v)
		return nil
	case authorstats.FieldOverallCredibilityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallCredibilityScore(v)
		return nil
	case authorstats.FieldTotalPostsAnalyzed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalPostsAnalyzed(v)
		return nil
	case authorstats.FieldLastUpdated:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUpdated(v)
		return nil
	}
	return fmt.Errorf("unknown AuthorStats field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuthorStatsMutation) AddedFields() []string {
	var fields []string
	if m.addfact_accuracy_rate != nil {
		fields = append(fields, authorstats.FieldFactAccuracyRate)
	}
	if m.addfact_accuracy_sample != nil {
		fields = append(fields, authorstats.FieldFactAccuracySample)
	}
	if m.addconclusion_accuracy_rate != nil {
		fields = append(fields, authorstats.FieldConclusionAccuracyRate)
	}
	if m.addconclusion_accuracy_sample != nil {
		fields = append(fields, authorstats.FieldConclusionAccuracySample)
	}
	if m.addprediction_accuracy_rate != nil {
		fields = append(fields, authorstats.FieldPredictionAccuracyRate)
	}
	if m.addprediction_accuracy_sample != nil {
		fields = append(fields, authorstats.FieldPredictionAccuracySample)
	}
	if m.addlogic_rigor_score != nil {
		fields = append(fields, authorstats.FieldLogicRigorScore)
	}
	if m.addlogic_rigor_sample != nil {
		fields = append(fields, authorstats.FieldLogicRigorSample)
	}
	if m.addrecommendation_reliability_rate != nil {
		fields = append(fields, authorstats.FieldRecommendationReliabilityRate)
	}
	if m.addrecommendation_reliability_sample != nil {
		fields = append(fields, authorstats.FieldRecommendationReliabilitySample)
	}
	if m.addcontent_uniqueness_score != nil {
		fields = append(fields, authorstats.FieldContentUniquenessScore)
	}
	if m.addcontent_uniqueness_sample != nil {
		fields = append(fields, authorstats.FieldContentUniquenessSample)
	}
	if m.addcontent_effectiveness_score != nil {
		fields = append(fields, authorstats.FieldContentEffectivenessScore)
	}
	if m.addcontent_effectiveness_sample != nil {
		fields = append(fields, authorstats.FieldContentEffectivenessSample)
	}
	if m.addoverall_credibility_score != nil {
		fields = append(fields, authorstats.FieldOverallCredibilityScore)
	}
	if m.addtotal_posts_analyzed != nil {
		fields = append(fields, authorstats.FieldTotalPostsAnalyzed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuthorStatsMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case authorstats.FieldFactAccuracyRate:
		return m.AddedFactAccuracyRate()
	case authorstats.FieldFactAccuracySample:
		return m.AddedFactAccuracySample()
	case authorstats.FieldConclusionAccuracyRate:
		return m.AddedConclusionAccuracyRate()
	case authorstats.FieldConclusionAccuracySample:
		return m.AddedConclusionAccuracySample()
	case authorstats.FieldPredictionAccuracyRate:
		return m.AddedPredictionAccuracyRate()
	case authorstats.FieldPredictionAccuracySample:
		return m.AddedPredictionAccuracySample()
	case authorstats.FieldLogicRigorScore:
		return m.AddedLogicRigorScore()
	case authorstats.FieldLogicRigorSample:
		return m.AddedLogicRigorSample()
	case authorstats.FieldRecommendationReliabilityRate:
		return m.AddedRecommendationReliabilityRate()
	case authorstats.FieldRecommendationReliabilitySample:
		return m.AddedRecommendationReliabilitySample()
	case authorstats.FieldContentUniquenessScore:
		return m.AddedContentUniquenessScore()
	case authorstats.FieldContentUniquenessSample:
		return m.AddedContentUniquenessSample()
	case authorstats.FieldContentEffectivenessScore:
		return m.AddedContentEffectivenessScore()
	case authorstats.FieldContentEffectivenessSample:
		return m.AddedContentEffectivenessSample()
	case authorstats.FieldOverallCredibilityScore:
		return m.AddedOverallCredibilityScore()
	case authorstats.FieldTotalPostsAnalyzed:
		return m.AddedTotalPostsAnalyzed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuthorStatsMutation) AddField(name string, value ent.Value) error {
	switch name {
	case authorstats.FieldFactAccuracyRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFactAccuracyRate(v)
		return nil
	case authorstats.FieldFactAccuracySample:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFactAccuracySample(v)
		return nil
	case authorstats.FieldConclusionAccuracyRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConclusionAccuracyRate(v)
		return nil
	case authorstats.FieldConclusionAccuracySample:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConclusionAccuracySample(v)
		return nil
	case authorstats.FieldPredictionAccuracyRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPredictionAccuracyRate(v)
		return nil
	case authorstats.FieldPredictionAccuracySample:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPredictionAccuracySample(v)
		return nil
	case authorstats.FieldLogicRigorScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLogicRigorScore(v)
		return nil
	case authorstats.FieldLogicRigorSample:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLogicRigorSample(v)
		return nil
	case authorstats.FieldRecommendationReliabilityRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecommendationReliabilityRate(v)
		return nil
	case authorstats.FieldRecommendationReliabilitySample:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecommendationReliabilitySample(v)
		return nil
	case authorstats.FieldContentUniquenessScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddContentUniquenessScore(v)
		return nil
	case authorstats.FieldContentUniquenessSample:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddContentUniquenessSample(v)
		return nil
	case authorstats.FieldContentEffectivenessScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddContentEffectivenessScore(v)
		return nil
	case authorstats.FieldContentEffectivenessSample:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddContentEffectivenessSample(v)
		return nil
	case authorstats.FieldOverallCredibilityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallCredibilityScore(v)
		return nil
	case authorstats.FieldTotalPostsAnalyzed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalPostsAnalyzed(v)
		return nil
	}
	return fmt.Errorf("unknown AuthorStats numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuthorStatsMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(authorstats.FieldFactAccuracyRate) {
		fields = append(fields, authorstats.FieldFactAccuracyRate)
	}
	if m.FieldCleared(authorstats.FieldConclusionAccuracyRate) {
		fields = append(fields, authorstats.FieldConclusionAccuracyRate)
	}
	if m.FieldCleared(authorstats.FieldPredictionAccuracyRate) {
		fields = append(fields, authorstats.FieldPredictionAccuracyRate)
	}
	if m.FieldCleared(authorstats.FieldLogicRigorScore) {
		fields = append(fields, authorstats.FieldLogicRigorScore)
	}
	if m.FieldCleared(authorstats.FieldRecommendationReliabilityRate) {
		fields = append(fields, authorstats.FieldRecommendationReliabilityRate)
	}
	if m.FieldCleared(authorstats.FieldContentUniquenessScore) {
		fields = append(fields, authorstats.FieldContentUniquenessScore)
	}
	if m.FieldCleared(authorstats.FieldContentEffectivenessScore) {
		fields = append(fields, authorstats.FieldContentEffectivenessScore)
	}
	if m.FieldCleared(authorstats.FieldOverallCredibilityScore) {
		fields = append(fields, authorstats.FieldOverallCredibilityScore)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuthorStatsMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuthorStatsMutation) ClearField(name string) error {
	switch name {
	case authorstats.FieldFactAccuracyRate:
		m.ClearFactAccuracyRate()
		return nil
	case authorstats.FieldConclusionAccuracyRate:
		m.ClearConclusionAccuracyRate()
		return nil
	case authorstats.FieldPredictionAccuracyRate:
		m.ClearPredictionAccuracyRate()
		return nil
	case authorstats.FieldLogicRigorScore:
		m.ClearLogicRigorScore()
		return nil
	case authorstats.FieldRecommendationReliabilityRate:
		m.ClearRecommendationReliabilityRate()
		return nil
	case authorstats.FieldContentUniquenessScore:
		m.ClearContentUniquenessScore()
		return nil
	case authorstats.FieldContentEffectivenessScore:
		m.ClearContentEffectivenessScore()
		return nil
	case authorstats.FieldOverallCredibilityScore:
		m.ClearOverallCredibilityScore()
		return nil
	}
	return fmt.Errorf("unknown AuthorStats nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuthorStatsMutation) ResetField(name string) error {
	switch name {
	case authorstats.FieldAuthorID:
		m.ResetAuthorID()
		return nil
	case authorstats.FieldFactAccuracyRate:
		m.ResetFactAccuracyRate()
		return nil
	case authorstats.FieldFactAccuracySample:
		m.ResetFactAccuracySample()
		return nil
	case authorstats.FieldConclusionAccuracyRate:
		m.ResetConclusionAccuracyRate()
		return nil
	case authorstats.FieldConclusionAccuracySample:
		m.ResetConclusionAccuracySample()
		return nil
	case authorstats.FieldPredictionAccuracyRate:
		m.ResetPredictionAccuracyRate()
		return nil
	case authorstats.FieldPredictionAccuracySample:
		m.ResetPredictionAccuracySample()
		return nil
	case authorstats.FieldLogicRigorScore:
		m.ResetLogicRigorScore()
		return nil
	case authorstats.FieldLogicRigorSample:
		m.ResetLogicRigorSample()
		return nil
	case authorstats.FieldRecommendationReliabilityRate:
		m.ResetRecommendationReliabilityRate()
		return nil
	case authorstats.FieldRecommendationReliabilitySample:
		m.ResetRecommendationReliabilitySample()
		return nil
	case authorstats.FieldContentUniquenessScore:
		m.ResetContentUniquenessScore()
		return nil
	case authorstats.FieldContentUniquenessSample:
		m.ResetContentUniquenessSample()
		return nil
	case authorstats.FieldContentEffectivenessScore:
		m.ResetContentEffectivenessScore()
		return nil
	case authorstats.FieldContentEffectivenessSample:
		m.ResetContentEffectivenessSample()
		return nil
	case authorstats.FieldOverallCredibilityScore:
		m.ResetOverallCredibilityScore()
		return nil
	case authorstats.FieldTotalPostsAnalyzed:
		m.ResetTotalPostsAnalyzed()
		return nil
	case authorstats.FieldLastUpdated:
		m.ResetLastUpdated()
		return nil
	}
	return fmt.Errorf("unknown AuthorStats field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuthorStatsMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.author != nil {
		edges = append(edges, authorstats.EdgeAuthor)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuthorStatsMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case authorstats.EdgeAuthor:
		if id := m.author; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuthorStatsMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuthorStatsMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuthorStatsMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedauthor {
		edges = append(edges, authorstats.EdgeAuthor)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuthorStatsMutation) EdgeCleared(name string) bool {
	switch name {
	case authorstats.EdgeAuthor:
		return m.clearedauthor
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuthorStatsMutation) ClearEdge(name string) error {
	switch name {
	case authorstats.EdgeAuthor:
		m.ClearAuthor()
		return nil
	}
	return fmt.Errorf("unknown AuthorStats unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuthorStatsMutation) ResetEdge(name string) error {
	switch name {
	case authorstats.EdgeAuthor:
		m.ResetAuthor()
		return nil
	}
	return fmt.Errorf("unknown AuthorStats edge %s", name)
}

// ConclusionMutation represents an operation that mutates the Conclusion nodes in the graph.
type ConclusionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	claim                  *string
	canonical_claim        *string
	conclusion_type        *conclusion.ConclusionType
	time_horizon_note      *string
	valid_from             *time.Time
	valid_until            *time.Time
	status                 *conclusion.Status
	monitoring_source_org  *string
	monitoring_source_url  *string
	monitoring_period_note *string
	monitoring_start       *time.Time
	monitoring_end         *time.Time
	source_url             *string
	source_platform        *string
	posted_at              *time.Time
	collected_at           *time.Time
	raw_extraction         *string
	clearedFields          map[string]struct{}
	topic                  *int
	clearedtopic           bool
	author                 *int
	clearedauthor          bool
	logics                 map[int]struct{}
	removedlogics          map[int]struct{}
	clearedlogics          bool
	verdicts               map[int]struct{}
	removedverdicts        map[int]struct{}
	clearedverdicts        bool
	done                   bool
	oldValue               func(context.Context) (*Conclusion, error)
	predicates             []predicate.Conclusion
}

var _ ent.Mutation = (*ConclusionMutation)(nil)

// conclusionOption allows management of the mutation configuration using functional options.
type conclusionOption func(*ConclusionMutation)

// newConclusionMutation creates new mutation for the Conclusion entity.
func newConclusionMutation(c config, op Op, opts ...conclusionOption) *ConclusionMutation {
	m := &ConclusionMutation{
		config:        c,
		op:            op,
		typ:           TypeConclusion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConclusionID sets the ID field of the mutation.
func withConclusionID(id int) conclusionOption {
	return func(m *ConclusionMutation) {
		var (
			err   error
			once  sync.Once
			value *Conclusion
		)
		m.oldValue = func(ctx context.Context) (*Conclusion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Conclusion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConclusion sets the old Conclusion of the mutation.
func withConclusion(node *Conclusion) conclusionOption {
	return func(m *ConclusionMutation) {
		m.oldValue = func(context.Context) (*Conclusion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConclusionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConclusionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConclusionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConclusionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Conclusion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTopicID sets the "topic_id" field.
func (m *ConclusionMutation) SetTopicID(i int) {
	m.topic = &i
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *ConclusionMutation) TopicID() (r int, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the Conclusion entity.
// If the Conclusion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConclusionMutation) OldTopicID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *ConclusionMutation) ResetTopicID() {
	m.topic = nil
}

// SetAuthorID sets the "author_id" field.
func (m *ConclusionMutation) SetAuthorID(i int) {
	m.author = &i
}

// AuthorID returns the value of the "author_id" field in the mutation.
func (m *ConclusionMutation) AuthorID() (r int, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorID returns the old "author_id" field's value of the Conclusion entity.
// If the Conclusion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConclusionMutation) OldAuthorID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorID: %w", err)
	}
	return oldValue.AuthorID, nil
}

// ResetAuthorID resets all changes to the "author_id" field.
func (m *ConclusionMutation) ResetAuthorID() {
	m.author = nil
}

// SetClaim sets the "claim" field.
func (m *ConclusionMutation) SetClaim(s string) {
	m.claim = &s
}

// Claim returns the value of the "claim" field in the mutation.
func (m *ConclusionMutation) Claim() (r string, exists bool) {
	v := m.claim
	if v == nil {
		return
	}
	return *v, true
}

// OldClaim returns the old "claim" field's value of the Conclusion entity.
// If the Conclusion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConclusionMutation) OldClaim(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaim is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaim requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaim: %w", err)
	}
	return oldValue.Claim, nil
}

// ResetClaim resets all changes to the "claim" field.
func (m *ConclusionMutation) ResetClaim() {
	m.claim = nil
}

// SetCanonicalClaim sets the "canonical_claim" field.
func (m *ConclusionMutation) SetCanonicalClaim(s string) {
	m.canonical_claim = &s
}

// CanonicalClaim returns the value of the "canonical_claim" field in the mutation.
func (m *ConclusionMutation) CanonicalClaim() (r string, exists bool) {
	v := m.canonical_claim
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalClaim returns the old "canonical_claim" field's value of the Conclusion entity.
// If the Conclusion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConclusionMutation) OldCanonicalClaim(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalClaim is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalClaim requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalClaim: %w", err)
	}
	return oldValue.CanonicalClaim, nil
}

// ClearCanonicalClaim clears the value of the "canonical_claim" field.
func (m *ConclusionMutation) ClearCanonicalClaim() {
	m.canonical_claim = nil
	m.clearedFields[conclusion.FieldCanonicalClaim] = struct{}{}
}

// CanonicalClaimCleared returns if the "canonical_claim" field was cleared in this mutation.
func (m *ConclusionMutation) CanonicalClaimCleared() bool {
	_, ok := m.clearedFields[conclusion.FieldCanonicalClaim]
	return ok
}

// ResetCanonicalClaim resets all changes to the "canonical_claim" field.
func (m *ConclusionMutation) ResetCanonicalClaim() {
	m.canonical_claim = nil
	delete(m.clearedFields, conclusion.FieldCanonicalClaim)
}

// SetConclusionType sets the "conclusion_type" field.
func (m *ConclusionMutation) SetConclusionType(ct conclusion.ConclusionType) {
	m.conclusion_type = &ct
}

// ConclusionType returns the value of the "conclusion_type" field in the mutation.
func (m *ConclusionMutation) ConclusionType() (r conclusion.ConclusionType, exists bool) {
	v := m.conclusion_type
	if v == nil {
		return
	}
	return *v, true
}

// OldConclusionType returns the old "conclusion_type" field's value of the Conclusion entity.
// If the Conclusion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConclusionMutation) OldConclusionType(ctx context.Context) (v conclusion.ConclusionType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConclusionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConclusionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConclusionType: %w", err)
	}
	return oldValue.ConclusionType, nil
}

// ResetConclusionType resets all changes to the "conclusion_type" field.
func (m *ConclusionMutation) ResetConclusionType() {
	m.conclusion_type = nil
}

// SetTimeHorizonNote sets the "time_horizon_note" field.
func (m *ConclusionMutation) SetTimeHorizonNote(s string) {
	m.time_horizon_note = &s
}

// TimeHorizonNote returns the value of the "time_horizon_note" field in the mutation.
func (m *ConclusionMutation) TimeHorizonNote() (r string, exists bool) {
	v := m.time_horizon_note
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeHorizonNote returns the old "time_horizon_note" field's value of the Conclusion entity.
// If the Conclusion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConclusionMutation) OldTimeHorizonNote(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeHorizonNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeHorizonNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeHorizonNote: %w", err)
	}
	return oldValue.TimeHorizonNote, nil
}

// ClearTimeHorizonNote clears the value of the "time_horizon_note" field.
func (m *ConclusionMutation) ClearTimeHorizonNote() {
	m.time_horizon_note = nil
	m.clearedFields[conclusion.FieldTimeHorizonNote] = struct{}{}
}

// TimeHorizonNoteCleared returns if the "time_horizon_note" field was cleared in this mutation.
func (m *ConclusionMutation) TimeHorizonNoteCleared() bool {
	_, ok := m.clearedFields[conclusion.FieldTimeHorizonNote]
	return ok
}

// ResetTimeHorizonNote resets all changes to the "time_horizon_note" field.
func (m *ConclusionMutation) ResetTimeHorizonNote() {
	m.time_horizon_note = nil
	delete(m.clearedFields, conclusion.FieldTimeHorizonNote)
}

// SetValidFrom sets the "valid_from" field.
func (m *ConclusionMutation) SetValidFrom(t time.Time) {
	m.valid_from = &t
}

// ValidFrom returns the value of the "valid_from" field in the mutation.
func (m *ConclusionMutation) ValidFrom() (r time.Time, exists bool) {
	v := m.valid_from
	if v == nil {
		return
	}
	return *v, true
}

// OldValidFrom returns the old "valid_from" field's value of the Conclusion entity.
// If the Conclusion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConclusionMutation) OldValidFrom(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidFrom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidFrom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidFrom: %w", err)
	}
	return oldValue.ValidFrom, nil
}

// ClearValidFrom clears the value of the "valid_from" field.
func (m *ConclusionMutation) ClearValidFrom() {
	m.valid_from = nil
	m.clearedFields[conclusion.FieldValidFrom] = struct{}{}
}

// ValidFromCleared returns if the "valid_from" field was cleared in this mutation.
func (m *ConclusionMutation) ValidFromCleared() bool {
	_, ok := m.clearedFields[conclusion.FieldValidFrom]
	return ok
}

// ResetValidFrom resets all changes to the "valid_from" field.
func (m *ConclusionMutation) ResetValidFrom() {
	m.valid_from = nil
	delete(m.clearedFields, conclusion.FieldValidFrom)
}

// SetValidUntil sets the "valid_until" field.
func (m *ConclusionMutation) SetValidUntil(t time.Time) {
	m.valid_until = &t
}

// ValidUntil returns the value of the "valid_until" field in the mutation.
func (m *ConclusionMutation) ValidUntil() (r time.Time, exists bool) {
	v := m.valid_until
	if v == nil {
		return
	}
	return *v, true
}

// OldValidUntil returns the old "valid_until" field's value of the Conclusion entity.
// If the Conclusion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConclusionMutation) OldValidUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidUntil: %w", err)
	}
	return oldValue.ValidUntil, nil
}

// ClearValidUntil clears the value of the "valid_until" field.
func (m *ConclusionMutation) ClearValidUntil() {
	m.valid_until = nil
	m.clearedFields[conclusion.FieldValidUntil] = struct{}{}
}

// ValidUntilCleared returns if the "valid_until" field was cleared in this mutation.
func (m *ConclusionMutation) ValidUntilCleared() bool {
	_, ok := m.clearedFields[conclusion.FieldValidUntil]
	return ok
}

// ResetValidUntil resets all changes to the "valid_until" field.
func (m *ConclusionMutation) ResetValidUntil() {
	m.valid_until = nil
	delete(m.clearedFields, conclusion.FieldValidUntil)
}

// SetStatus sets the "status" field.
func (m *ConclusionMutation) SetStatus(c conclusion.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ConclusionMutation) Status() (r conclusion.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Conclusion entity.
// If the Conclusion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConclusionMutation) OldStatus(ctx context.Context) (v conclusion.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ConclusionMutation) ResetStatus() {
	m.status = nil
}

// SetMonitoringSourceOrg sets the "monitoring_source_org" field.
func (m *ConclusionMutation) SetMonitoringSourceOrg(s string) {
	m.monitoring_source_org = &s
}

// MonitoringSourceOrg returns the value of the "monitoring_source_org" field in the mutation.
func (m *ConclusionMutation) MonitoringSourceOrg() (r string, exists bool) {
	v := m.monitoring_source_org
	if v == nil {
		return
	}
	return *v, true
}

// OldMonitoringSourceOrg returns the old "monitoring_source_org" field's value of the Conclusion entity.
// If the Conclusion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConclusionMutation) OldMonitoringSourceOrg(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonitoringSourceOrg is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonitoringSourceOrg requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonitoringSourceOrg: %w", err)
	}
	return oldValue.MonitoringSourceOrg, nil
}

// ClearMonitoringSourceOrg clears the value of the "monitoring_source_org" field.
func (m *ConclusionMutation) ClearMonitoringSourceOrg() {
	m.monitoring_source_org = nil
	m.clearedFields[conclusion.FieldMonitoringSourceOrg] = struct{}{}
}

// MonitoringSourceOrgCleared returns if the "monitoring_source_org" field was cleared in this mutation.
func (m *ConclusionMutation) MonitoringSourceOrgCleared() bool {
	_, ok := m.clearedFields[conclusion.FieldMonitoringSourceOrg]
	return ok
}

// ResetMonitoringSourceOrg resets all changes to the "monitoring_source_org" field.
func (m *ConclusionMutation) ResetMonitoringSourceOrg() {
	m.monitoring_source_org = nil
	delete(m.clearedFields, conclusion.FieldMonitoringSourceOrg)
}

// SetMonitoringSourceURL sets the "monitoring_source_url" field.
func (m *ConclusionMutation) SetMonitoringSourceURL(s string) {
	m.monitoring_source_url = &s
}

// MonitoringSourceURL returns the value of the "monitoring_source_url" field in the mutation.
func (m *ConclusionMutation) MonitoringSourceURL() (r string, exists bool) {
	v := m.monitoring_source_url
	if v == nil {
		return
	}
	return *v, true
}

// OldMonitoringSourceURL returns the old "monitoring_source_url" field's value of the Conclusion entity.
// If the Conclusion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConclusionMutation) OldMonitoringSourceURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonitoringSourceURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonitoringSourceURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonitoringSourceURL: %w", err)
	}
	return oldValue.MonitoringSourceURL, nil
}

// ClearMonitoringSourceURL clears the value of the "monitoring_source_url" field.
func (m *ConclusionMutation) ClearMonitoringSourceURL() {
	m.monitoring_source_url = nil
	m.clearedFields[conclusion.FieldMonitoringSourceURL] = struct{}{}
}

// MonitoringSourceURLCleared returns if the "monitoring_source_url" field was cleared in this mutation.
func (m *ConclusionMutation) MonitoringSourceURLCleared() bool {
	_, ok := m.clearedFields[conclusion.FieldMonitoringSourceURL]
	return ok
}

// ResetMonitoringSourceURL resets all changes to the "monitoring_source_url" field.
func (m *ConclusionMutation) ResetMonitoringSourceURL() {
	m.monitoring_source_url = nil
	delete(m.clearedFields, conclusion.FieldMonitoringSourceURL)
}

// SetMonitoringPeriodNote sets the "monitoring_period_note" field.
func (m *ConclusionMutation) SetMonitoringPeriodNote(s string) {
	m.monitoring_period_note = &s
}

// MonitoringPeriodNote returns the value of the "monitoring_period_note" field in the mutation.
func (m *ConclusionMutation) MonitoringPeriodNote() (r string, exists bool) {
	v := m.monitoring_period_note
	if v == nil {
		return
	}
	return *v, true
}

// OldMonitoringPeriodNote returns the old "monitoring_period_note" field's value of the Conclusion entity.
// If the Conclusion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConclusionMutation) OldMonitoringPeriodNote(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonitoringPeriodNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonitoringPeriodNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonitoringPeriodNote: %w", err)
	}
	return oldValue.MonitoringPeriodNote, nil
}

// ClearMonitoringPeriodNote clears the value of the "monitoring_period_note" field.
func (m *ConclusionMutation) ClearMonitoringPeriodNote() {
	m.monitoring_period_note = nil
	m.clearedFields[conclusion.FieldMonitoringPeriodNote] = struct{}{}
}

// MonitoringPeriodNoteCleared returns if the "monitoring_period_note" field was cleared in this mutation.
func (m *ConclusionMutation) MonitoringPeriodNoteCleared() bool {
	_, ok := m.clearedFields[conclusion.FieldMonitoringPeriodNote]
	return ok
}

// ResetMonitoringPeriodNote resets all changes to the "monitoring_period_note" field.
func (m *ConclusionMutation) ResetMonitoringPeriodNote() {
	m.monitoring_period_note = nil
	delete(m.clearedFields, conclusion.FieldMonitoringPeriodNote)
}

// SetMonitoringStart sets the "monitoring_start" field.
func (m *ConclusionMutation) SetMonitoringStart(t time.Time) {
	m.monitoring_start = &t
}

// MonitoringStart returns the value of the "monitoring_start" field in the mutation.
func (m *ConclusionMutation) MonitoringStart() (r time.Time, exists bool) {
	v := m.monitoring_start
	if v == nil {
		return
	}
	return *v, true
}

// OldMonitoringStart returns the old "monitoring_start" field's value of the Conclusion entity.
// If the Conclusion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConclusionMutation) OldMonitoringStart(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonitoringStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonitoringStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonitoringStart: %w", err)
	}
	return oldValue.MonitoringStart, nil
}

// ClearMonitoringStart clears the value of the "monitoring_start" field.
func (m *ConclusionMutation) ClearMonitoringStart() {
	m.monitoring_start = nil
	m.clearedFields[conclusion.FieldMonitoringStart] = struct{}{}
}

// MonitoringStartCleared returns if the "monitoring_start" field was cleared in this mutation.
func (m *ConclusionMutation) MonitoringStartCleared() bool {
	_, ok := m.clearedFields[conclusion.FieldMonitoringStart]
	return ok
}

// ResetMonitoringStart resets all changes to the "monitoring_start" field.
func (m *ConclusionMutation) ResetMonitoringStart() {
	m.monitoring_start = nil
	delete(m.clearedFields, conclusion.FieldMonitoringStart)
}

// SetMonitoringEnd sets the "monitoring_end" field.
func (m *ConclusionMutation) SetMonitoringEnd(t time.Time) {
	m.monitoring_end = &t
}

// MonitoringEnd returns the value of the "monitoring_end" field in the mutation.
func (m *ConclusionMutation) MonitoringEnd() (r time.Time, exists bool) {
	v := m.monitoring_end
	if v == nil {
		return
	}
	return *v, true
}

// OldMonitoringEnd returns the old "monitoring_end" field's value of the Conclusion entity.
// If the Conclusion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConclusionMutation) OldMonitoringEnd(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonitoringEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonitoringEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonitoringEnd: %w", err)
	}
	return oldValue.MonitoringEnd, nil
}

// ClearMonitoringEnd clears the value of the "monitoring_end" field.
func (m *ConclusionMutation) ClearMonitoringEnd() {
	m.monitoring_end = nil
	m.clearedFields[conclusion.FieldMonitoringEnd] = struct{}{}
}

// MonitoringEndCleared returns if the "monitoring_end" field was cleared in this mutation.
func (m *ConclusionMutation) MonitoringEndCleared() bool {
	_, ok := m.clearedFields[conclusion.FieldMonitoringEnd]
	return ok
}

// ResetMonitoringEnd resets all changes to the "monitoring_end" field.
func (m *ConclusionMutation) ResetMonitoringEnd() {
	m.monitoring_end = nil
	delete(m.clearedFields, conclusion.FieldMonitoringEnd)
}

// SetSourceURL sets the "source_url" field.
func (m *ConclusionMutation) SetSourceURL(s string) {
	m.source_url = &s
}

// SourceURL returns the value of the "source_url" field in the mutation.
func (m *ConclusionMutation) SourceURL() (r string, exists bool) {
	v := m.source_url
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceURL returns the old "source_url" field's value of the Conclusion entity.
// If the Conclusion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConclusionMutation) OldSourceURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceURL: %w", err)
	}
	return oldValue.SourceURL, nil
}

// ResetSourceURL resets all changes to the "source_url" field.
func (m *ConclusionMutation) ResetSourceURL() {
	m.source_url = nil
}

// SetSourcePlatform sets the "source_platform" field.
func (m *ConclusionMutation) SetSourcePlatform(s string) {
	m.source_platform = &s
}

// SourcePlatform returns the value of the "source_platform" field in the mutation.
func (m *ConclusionMutation) SourcePlatform() (r string, exists bool) {
	v := m.source_platform
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePlatform returns the old "source_platform" field's value of the Conclusion entity.
// If the Conclusion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConclusionMutation) OldSourcePlatform(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePlatform: %w", err)
	}
	return oldValue.SourcePlatform, nil
}

// ResetSourcePlatform resets all changes to the "source_platform" field.
func (m *ConclusionMutation) ResetSourcePlatform() {
	m.source_platform = nil
}

// SetPostedAt sets the "posted_at" field.
func (m *ConclusionMutation) SetPostedAt(t time.Time) {
	m.posted_at = &t
}

// PostedAt returns the value of the "posted_at" field in the mutation.
func (m *ConclusionMutation) PostedAt() (r time.Time, exists bool) {
	v := m.posted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPostedAt returns the old "posted_at" field's value of the Conclusion entity.
// If the Conclusion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConclusionMutation) OldPostedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostedAt: %w", err)
	}
	return oldValue.PostedAt, nil
}

// ResetPostedAt resets all changes to the "posted_at" field.
func (m *ConclusionMutation) ResetPostedAt() {
	m.posted_at = nil
}

// SetCollectedAt sets the "collected_at" field.
func (m *ConclusionMutation) SetCollectedAt(t time.Time) {
	m.collected_at = &t
}

// CollectedAt returns the value of the "collected_at" field in the mutation.
func (m *ConclusionMutation) CollectedAt() (r time.Time, exists bool) {
	v := m.collected_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCollectedAt returns the old "collected_at" field's value of the Conclusion entity.
// If the Conclusion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConclusionMutation) OldCollectedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCollectedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCollectedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCollectedAt: %w", err)
	}
	return oldValue.CollectedAt, nil
}

// ResetCollectedAt resets all changes to the "collected_at" field.
func (m *ConclusionMutation) ResetCollectedAt() {
	m.collected_at = nil
}

// SetRawExtraction sets the "raw_extraction" field.
func (m *ConclusionMutation) SetRawExtraction(s string) {
	m.raw_extraction = &s
}

// RawExtraction returns the value of the "raw_extraction" field in the mutation.
func (m *ConclusionMutation) RawExtraction() (r string, exists bool) {
	v := m.raw_extraction
	if v == nil {
		return
	}
	return *v, true
}

// OldRawExtraction returns the old "raw_extraction" field's value of the Conclusion entity.
// If the Conclusion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConclusionMutation) OldRawExtraction(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawExtraction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawExtraction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawExtraction: %w", err)
	}
	return oldValue.RawExtraction, nil
}

// ClearRawExtraction clears the value of the "raw_extraction" field.
func (m *ConclusionMutation) ClearRawExtraction() {
	m.raw_extraction = nil
	m.clearedFields[conclusion.FieldRawExtraction] = struct{}{}
}

// RawExtractionCleared returns if the "raw_extraction" field was cleared in this mutation.
func (m *ConclusionMutation) RawExtractionCleared() bool {
	_, ok := m.clearedFields[conclusion.FieldRawExtraction]
	return ok
}

// ResetRawExtraction resets all changes to the "raw_extraction" field.
func (m *ConclusionMutation) ResetRawExtraction() {
	m.raw_extraction = nil
	delete(m.clearedFields, conclusion.FieldRawExtraction)
}

// ClearTopic clears the "topic" edge to the Topic entity.
func (m *ConclusionMutation) ClearTopic() {
	m.clearedtopic = true
	m.clearedFields[conclusion.FieldTopicID] = struct{}{}
}

// TopicCleared reports if the "topic" edge to the Topic entity was cleared.
func (m *ConclusionMutation) TopicCleared() bool {
	return m.clearedtopic
}

// TopicIDs returns the "topic" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TopicID instead. It exists only for internal usage by the builders.
func (m *ConclusionMutation) TopicIDs() (ids []int) {
	if id := m.topic; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTopic resets all changes to the "topic" edge.
func (m *ConclusionMutation) ResetTopic() {
	m.topic = nil
	m.clearedtopic = false
}

// ClearAuthor clears the "author" edge to the Author entity.
func (m *ConclusionMutation) ClearAuthor() {
	m.clearedauthor = true
	m.clearedFields[conclusion.FieldAuthorID] = struct{}{}
}

// AuthorCleared reports if the "author" edge to the Author entity was cleared.
func (m *ConclusionMutation) AuthorCleared() bool {
	return m.clearedauthor
}

// AuthorIDs returns the "author" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AuthorID instead. It exists only for internal usage by the builders.
func (m *ConclusionMutation) AuthorIDs() (ids []int) {
	if id := m.author; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAuthor resets all changes to the "author" edge.
func (m *ConclusionMutation) ResetAuthor() {
	m.author = nil
	m.clearedauthor = false
}

// AddLogicIDs adds the "logics" edge to the Logic entity by ids.
func (m *ConclusionMutation) AddLogicIDs(ids ...int) {
	if m.logics == nil {
		m.logics = make(map[int]struct{})
	}
	for i := range ids {
		m.logics[ids[i]] = struct{}{}
	}
}

// ClearLogics clears the "logics" edge to the Logic entity.
func (m *ConclusionMutation) ClearLogics() {
	m.clearedlogics = true
}

// LogicsCleared reports if the "logics" edge to the Logic entity was cleared.
func (m *ConclusionMutation) LogicsCleared() bool {
	return m.clearedlogics
}

// RemoveLogicIDs removes the "logics" edge to the Logic entity by IDs.
func (m *ConclusionMutation) RemoveLogicIDs(ids ...int) {
	if m.removedlogics == nil {
		m.removedlogics = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.logics, ids[i])
		m.removedlogics[ids[i]] = struct{}{}
	}
}

// RemovedLogics returns the removed IDs of the "logics" edge to the Logic entity.
func (m *ConclusionMutation) RemovedLogicsIDs() (ids []int) {
	for id := range m.removedlogics {
		ids = append(ids, id)
	}
	return
}

// LogicsIDs returns the "logics" edge IDs in the mutation.
func (m *ConclusionMutation) LogicsIDs() (ids []int) {
	for id := range m.logics {
		ids = append(ids, id)
	}
	return
}

// ResetLogics resets all changes to the "logics" edge.
func (m *ConclusionMutation) ResetLogics() {
	m.logics = nil
	m.clearedlogics = false
	m.removedlogics = nil
}

// AddVerdictIDs adds the "verdicts" edge to the ConclusionVerdict entity by ids.
func (m *ConclusionMutation) AddVerdictIDs(ids ...int) {
	if m.verdicts == nil {
		m.verdicts = make(map[int]struct{})
	}
	for i := range ids {
		m.verdicts[ids[i]] = struct{}{}
	}
}

// ClearVerdicts clears the "verdicts" edge to the ConclusionVerdict entity.
func (m *ConclusionMutation) ClearVerdicts() {
	m.clearedverdicts = true
}

// VerdictsCleared reports if the "verdicts" edge to the ConclusionVerdict entity was cleared.
func (m *ConclusionMutation) VerdictsCleared() bool {
	return m.clearedverdicts
}

// RemoveVerdictIDs removes the "verdicts" edge to the ConclusionVerdict entity by IDs.
func (m *ConclusionMutation) RemoveVerdictIDs(ids ...int) {
	if m.removedverdicts == nil {
		m.removedverdicts = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.verdicts, ids[i])
		m.removedverdicts[ids[i]] = struct{}{}
	}
}

// RemovedVerdicts returns the removed IDs of the "verdicts" edge to the ConclusionVerdict entity.
func (m *ConclusionMutation) RemovedVerdictsIDs() (ids []int) {
	for id := range m.removedverdicts {
		ids = append(ids, id)
	}
	return
}

// VerdictsIDs returns the "verdicts" edge IDs in the mutation.
func (m *ConclusionMutation) VerdictsIDs() (ids []int) {
	for id := range m.verdicts {
		ids = append(ids, id)
	}
	return
}

// ResetVerdicts resets all changes to the "verdicts" edge.
func (m *ConclusionMutation) ResetVerdicts() {
	m.verdicts = nil
	m.clearedverdicts = false
	m.removedverdicts = nil
}

// Where appends a list predicates to the ConclusionMutation builder.
func (m *ConclusionMutation) Where(ps ...predicate.Conclusion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConclusionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConclusionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Conclusion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConclusionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConclusionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Conclusion).
func (m *ConclusionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConclusionMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.topic != nil {
		fields = append(fields, conclusion.FieldTopicID)
	}
	if m.author != nil {
		fields = append(fields, conclusion.FieldAuthorID)
	}
	if m.claim != nil {
		fields = append(fields, conclusion.FieldClaim)
	}
	if m.canonical_claim != nil {
		fields = append(fields, conclusion.FieldCanonicalClaim)
	}
	if m.conclusion_type != nil {
		fields = append(fields, conclusion.FieldConclusionType)
	}
	if m.time_horizon_note != nil {
		fields = append(fields, conclusion.FieldTimeHorizonNote)
	}
	if m.valid_from != nil {
		fields = append(fields, conclusion.FieldValidFrom)
	}
	if m.valid_until != nil {
		fields = append(fields, conclusion.FieldValidUntil)
	}
	if m.status != nil {
		fields = append(fields, conclusion.FieldStatus)
	}
	if m.monitoring_source_org != nil {
		fields = append(fields, conclusion.FieldMonitoringSourceOrg)
	}
	if m.monitoring_source_url != nil {
		fields = append(fields, conclusion.FieldMonitoringSourceURL)
	}
	if m.monitoring_period_note != nil {
		fields = append(fields, conclusion.FieldMonitoringPeriodNote)
	}
	if m.monitoring_start != nil {
		fields = append(fields, conclusion.FieldMonitoringStart)
	}
	if m.monitoring_end != nil {
		fields = append(fields, conclusion.FieldMonitoringEnd)
	}
	if m.source_url != nil {
		fields = append(fields, conclusion.FieldSourceURL)
	}
	if m.source_platform != nil {
		fields = append(fields, conclusion.FieldSourcePlatform)
	}
	if m.posted_at != nil {
		fields = append(fields, conclusion.FieldPostedAt)
	}
	if m.collected_at != nil {
		fields = append(fields, conclusion.FieldCollectedAt)
	}
	if m.raw_extraction != nil {
		fields = append(fields, conclusion.FieldRawExtraction)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConclusionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conclusion.FieldTopicID:
		return m.TopicID()
	case conclusion.FieldAuthorID:
		return m.AuthorID()
	case conclusion.FieldClaim:
		return m.Claim()
	case conclusion.FieldCanonicalClaim:
		return m.CanonicalClaim()
	case conclusion.FieldConclusionType:
		return m.ConclusionType()
	case conclusion.FieldTimeHorizonNote:
		return m.TimeHorizonNote()
	case conclusion.FieldValidFrom:
		return m.ValidFrom()
	case conclusion.FieldValidUntil:
		return m.ValidUntil()
	case conclusion.FieldStatus:
		return m.Status()
	case conclusion.FieldMonitoringSourceOrg:
		return m.MonitoringSourceOrg()
	case conclusion.FieldMonitoringSourceURL:
		return m.MonitoringSourceURL()
	case conclusion.FieldMonitoringPeriodNote:
		return m.MonitoringPeriodNote()
	case conclusion.FieldMonitoringStart:
		return m.MonitoringStart()
	case conclusion.FieldMonitoringEnd:
		return m.MonitoringEnd()
	case conclusion.FieldSourceURL:
		return m.SourceURL()
	case conclusion.FieldSourcePlatform:
		return m.SourcePlatform()
	case conclusion.FieldPostedAt:
		return m.PostedAt()
	case conclusion.FieldCollectedAt:
		return m.CollectedAt()
	case conclusion.FieldRawExtraction:
		return m.RawExtraction()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConclusionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conclusion.FieldTopicID:
		return m.OldTopicID(ctx)
	case conclusion.FieldAuthorID:
		return m.OldAuthorID(ctx)
	case conclusion.FieldClaim:
		return m.OldClaim(ctx)
	case conclusion.FieldCanonicalClaim:
		return m.OldCanonicalClaim(ctx)
	case conclusion.FieldConclusionType:
		return m.OldConclusionType(ctx)
	case conclusion.FieldTimeHorizonNote:
		return m.OldTimeHorizonNote(ctx)
	case conclusion.FieldValidFrom:
		return m.OldValidFrom(ctx)
	case conclusion.FieldValidUntil:
		return m.OldValidUntil(ctx)
	case conclusion.FieldStatus:
		return m.OldStatus(ctx)
	case conclusion.FieldMonitoringSourceOrg:
		return m.OldMonitoringSourceOrg(ctx)
	case conclusion.FieldMonitoringSourceURL:
		return m.OldMonitoringSourceURL(ctx)
	case conclusion.FieldMonitoringPeriodNote:
		return m.OldMonitoringPeriodNote(ctx)
	case conclusion.FieldMonitoringStart:
		return m.OldMonitoringStart(ctx)
	case conclusion.FieldMonitoringEnd:
		return m.OldMonitoringEnd(ctx)
	case conclusion.FieldSourceURL:
		return m.OldSourceURL(ctx)
	case conclusion.FieldSourcePlatform:
		return m.OldSourcePlatform(ctx)
	case conclusion.FieldPostedAt:
		return m.OldPostedAt(ctx)
	case conclusion.FieldCollectedAt:
		return m.OldCollectedAt(ctx)
	case conclusion.FieldRawExtraction:
		return m.OldRawExtraction(ctx)
	}
	return nil, fmt.Errorf("unknown Conclusion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConclusionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conclusion.FieldTopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case conclusion.FieldAuthorID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorID(v)
		return nil
	case conclusion.FieldClaim:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaim(v)
		return nil
	case conclusion.FieldCanonicalClaim:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalClaim(v)
		return nil
	case conclusion.FieldConclusionType:
		v, ok := value.(conclusion.ConclusionType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConclusionType(v)
		return nil
	case conclusion.FieldTimeHorizonNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeHorizonNote(v)
		return nil
	case conclusion.FieldValidFrom:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidFrom(v)
		return nil
	case conclusion.FieldValidUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidUntil(v)
		return nil
	case conclusion.FieldStatus:
		v, ok := value.(conclusion.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case conclusion.FieldMonitoringSourceOrg:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonitoringSourceOrg(v)
		return nil
	case conclusion.FieldMonitoringSourceURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonitoringSourceURL(v)
		return nil
	case conclusion.FieldMonitoringPeriodNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonitoringPeriodNote(v)
		return nil
	case conclusion.FieldMonitoringStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonitoringStart(v)
		return nil
	case conclusion.FieldMonitoringEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonitoringEnd(v)
		return nil
	case conclusion.FieldSourceURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceURL(v)
		return nil
	case conclusion.FieldSourcePlatform:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePlatform(v)
		return nil
	case conclusion.FieldPostedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostedAt(v)
		return nil
	case conclusion.FieldCollectedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCollectedAt(v)
		return nil
	case conclusion.FieldRawExtraction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawExtraction(v)
		return nil
	}
	return fmt.Errorf("unknown Conclusion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConclusionMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConclusionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConclusionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Conclusion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConclusionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conclusion.FieldCanonicalClaim) {
		fields = append(fields, conclusion.FieldCanonicalClaim)
	}
	if m.FieldCleared(conclusion.FieldTimeHorizonNote) {
		fields = append(fields, conclusion.FieldTimeHorizonNote)
	}
	if m.FieldCleared(conclusion.FieldValidFrom) {
		fields = append(fields, conclusion.FieldValidFrom)
	}
	if m.FieldCleared(conclusion.FieldValidUntil) {
		fields = append(fields, conclusion.FieldValidUntil)
	}
	if m.FieldCleared(conclusion.FieldMonitoringSourceOrg) {
		fields = append(fields, conclusion.FieldMonitoringSourceOrg)
	}
	if m.FieldCleared(conclusion.FieldMonitoringSourceURL) {
		fields = append(fields, conclusion.FieldMonitoringSourceURL)
	}
	if m.FieldCleared(conclusion.FieldMonitoringPeriodNote) {
		fields = append(fields, conclusion.FieldMonitoringPeriodNote)
	}
	if m.FieldCleared(conclusion.FieldMonitoringStart) {
		fields = append(fields, conclusion.FieldMonitoringStart)
	}
	if m.FieldCleared(conclusion.FieldMonitoringEnd) {
		fields = append(fields, conclusion.FieldMonitoringEnd)
	}
	if m.FieldCleared(conclusion.FieldRawExtraction) {
		fields = append(fields, conclusion.FieldRawExtraction)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConclusionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConclusionMutation) ClearField(name string) error {
	switch name {
	case conclusion.FieldCanonicalClaim:
		m.ClearCanonicalClaim()
		return nil
	case conclusion.FieldTimeHorizonNote:
		m.ClearTimeHorizonNote()
		return nil
	case conclusion.FieldValidFrom:
		m.ClearValidFrom()
		return nil
	case conclusion.FieldValidUntil:
		m.ClearValidUntil()
		return nil
	case conclusion.FieldMonitoringSourceOrg:
		m.ClearMonitoringSourceOrg()
		return nil
	case conclusion.FieldMonitoringSourceURL:
		m.ClearMonitoringSourceURL()
		return nil
	case conclusion.FieldMonitoringPeriodNote:
		m.ClearMonitoringPeriodNote()
		return nil
	case conclusion.FieldMonitoringStart:
		m.ClearMonitoringStart()
		return nil
	case conclusion.FieldMonitoringEnd:
		m.ClearMonitoringEnd()
		return nil
	case conclusion.FieldRawExtraction:
		m.ClearRawExtraction()
		return nil
	}
	return fmt.Errorf("unknown Conclusion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConclusionMutation) ResetField(name string) error {
	switch name {
	case conclusion.FieldTopicID:
		m.ResetTopicID()
		return nil
	case conclusion.FieldAuthorID:
		m.ResetAuthorID()
		return nil
	case conclusion.FieldClaim:
		m.ResetClaim()
		return nil
	case conclusion.FieldCanonicalClaim:
		m.ResetCanonicalClaim()
		return nil
	case conclusion.FieldConclusionType:
		m.ResetConclusionType()
		return nil
	case conclusion.FieldTimeHorizonNote:
		m.ResetTimeHorizonNote()
		return nil
	case conclusion.FieldValidFrom:
		m.ResetValidFrom()
		return nil
	case conclusion.FieldValidUntil:
		m.ResetValidUntil()
		return nil
	case conclusion.FieldStatus:
		m.ResetStatus()
		return nil
	case conclusion.FieldMonitoringSourceOrg:
		m.ResetMonitoringSourceOrg()
		return nil
	case conclusion.FieldMonitoringSourceURL:
		m.ResetMonitoringSourceURL()
		return nil
	case conclusion.FieldMonitoringPeriodNote:
		m.ResetMonitoringPeriodNote()
		return nil
	case conclusion.FieldMonitoringStart:
		m.ResetMonitoringStart()
		return nil
	case conclusion.FieldMonitoringEnd:
		m.ResetMonitoringEnd()
		return nil
	case conclusion.FieldSourceURL:
		m.ResetSourceURL()
		return nil
	case conclusion.FieldSourcePlatform:
		m.ResetSourcePlatform()
		return nil
	case conclusion.FieldPostedAt:
		m.ResetPostedAt()
		return nil
	case conclusion.FieldCollectedAt:
		m.ResetCollectedAt()
		return nil
	case conclusion.FieldRawExtraction:
		m.ResetRawExtraction()
		return nil
	}
	return fmt.Errorf("unknown Conclusion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConclusionMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.topic != nil {
		edges = append(edges, conclusion.EdgeTopic)
	}
	if m.author != nil {
		edges = append(edges, conclusion.EdgeAuthor)
	}
	if m.logics != nil {
		edges = append(edges, conclusion.EdgeLogics)
	}
	if m.verdicts != nil {
		edges = append(edges, conclusion.EdgeVerdicts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConclusionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case conclusion.EdgeTopic:
		if id := m.topic; id != nil {
			return []ent.Value{*id}
		}
	case conclusion.EdgeAuthor:
		if id := m.author; id != nil {
			return []ent.Value{*id}
		}
	case conclusion.EdgeLogics:
		ids := make([]ent.Value, 0, len(m.logics))
		for id := range m.logics {
			ids = append(ids, id)
		}
		return ids
	case conclusion.EdgeVerdicts:
		ids := make([]ent.Value, 0, len(m.verdicts))
		for id := range m.verdicts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConclusionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedlogics != nil {
		edges = append(edges, conclusion.EdgeLogics)
	}
	if m.removedverdicts != nil {
		edges = append(edges, conclusion.EdgeVerdicts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConclusionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case conclusion.EdgeLogics:
		ids := make([]ent.Value, 0, len(m.removedlogics))
		for id := range m.removedlogics {
			ids = append(ids, id)
		}
		return ids
	case conclusion.EdgeVerdicts:
		ids := make([]ent.Value, 0, len(m.removedverdicts))
		for id := range m.removedverdicts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConclusionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedtopic {
		edges = append(edges, conclusion.EdgeTopic)
	}
	if m.clearedauthor {
		edges = append(edges, conclusion.EdgeAuthor)
	}
	if m.clearedlogics {
		edges = append(edges, conclusion.EdgeLogics)
	}
	if m.clearedverdicts {
		edges = append(edges, conclusion.EdgeVerdicts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConclusionMutation) EdgeCleared(name string) bool {
	switch name {
	case conclusion.EdgeTopic:
		return m.clearedtopic
	case conclusion.EdgeAuthor:
		return m.clearedauthor
	case conclusion.EdgeLogics:
		return m.clearedlogics
	case conclusion.EdgeVerdicts:
		return m.clearedverdicts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConclusionMutation) ClearEdge(name string) error {
	switch name {
	case conclusion.EdgeTopic:
		m.ClearTopic()
		return nil
	case conclusion.EdgeAuthor:
		m.ClearAuthor()
		return nil
	}
	return fmt.Errorf("unknown Conclusion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConclusionMutation) ResetEdge(name string) error {
	switch name {
	case conclusion.EdgeTopic:
		m.ResetTopic()
		return nil
	case conclusion.EdgeAuthor:
		m.ResetAuthor()
		return nil
	case conclusion.EdgeLogics:
		m.ResetLogics()
		return nil
	case conclusion.EdgeVerdicts:
		m.ResetVerdicts()
		return nil
	}
	return fmt.Errorf("unknown Conclusion edge %s", name)
}

// ConclusionVerdictMutation represents an operation that mutates the ConclusionVerdict nodes in the graph.
type ConclusionVerdictMutation struct {
	config
	op                Op
	typ               string
	id                *int
	verdict           *conclusionverdict.Verdict
	logic_trace       *map[string]interface{}
	role_fit          *conclusionverdict.RoleFit
	role_fit_note     *string
	derived_at        *time.Time
	clearedFields     map[string]struct{}
	conclusion        *int
	clearedconclusion bool
	done              bool
	oldValue          func(context.Context) (*ConclusionVerdict, error)
	predicates        []predicate.ConclusionVerdict
}

var _ ent.Mutation = (*ConclusionVerdictMutation)(nil)

// conclusionverdictOption allows management of the mutation configuration using functional options.
type conclusionverdictOption func(*ConclusionVerdictMutation)

// newConclusionVerdictMutation creates new mutation for the ConclusionVerdict entity.
func newConclusionVerdictMutation(c config, op Op, opts ...conclusionverdictOption) *ConclusionVerdictMutation {
	m := &ConclusionVerdictMutation{
		config:        c,
		op:            op,
		typ:           TypeConclusionVerdict,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConclusionVerdictID sets the ID field of the mutation.
func withConclusionVerdictID(id int) conclusionverdictOption {
	return func(m *ConclusionVerdictMutation) {
		var (
			err   error
			once  sync.Once
			value *ConclusionVerdict
		)
		m.oldValue = func(ctx context.Context) (*ConclusionVerdict, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConclusionVerdict.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConclusionVerdict sets the old ConclusionVerdict of the mutation.
func withConclusionVerdict(node *ConclusionVerdict) conclusionverdictOption {
	return func(m *ConclusionVerdictMutation) {
		m.oldValue = func(context.Context) (*ConclusionVerdict, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConclusionVerdictMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConclusionVerdictMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConclusionVerdictMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConclusionVerdictMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConclusionVerdict.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConclusionID sets the "conclusion_id" field.
func (m *ConclusionVerdictMutation) SetConclusionID(i int) {
	m.conclusion = &i
}

// ConclusionID returns the value of the "conclusion_id" field in the mutation.
func (m *ConclusionVerdictMutation) ConclusionID() (r int, exists bool) {
	v := m.conclusion
	if v == nil {
		return
	}
	return *v, true
}

// OldConclusionID returns the old "conclusion_id" field's value of the ConclusionVerdict entity.
// If the ConclusionVerdict object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConclusionVerdictMutation) OldConclusionID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConclusionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConclusionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConclusionID: %w", err)
	}
	return oldValue.ConclusionID, nil
}

// ResetConclusionID resets all changes to the "conclusion_id" field.
func (m *ConclusionVerdictMutation) ResetConclusionID() {
	m.conclusion = nil
}

// SetVerdict sets the "verdict" field.
func (m *ConclusionVerdictMutation) SetVerdict(c conclusionverdict.Verdict) {
	m.verdict = &c
}

// Verdict returns the value of the "verdict" field in the mutation.
func (m *ConclusionVerdictMutation) Verdict() (r conclusionverdict.Verdict, exists bool) {
	v := m.verdict
	if v == nil {
		return
	}
	return *v, true
}

// OldVerdict returns the old "verdict" field's value of the ConclusionVerdict entity.
// If the ConclusionVerdict object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConclusionVerdictMutation) OldVerdict(ctx context.Context) (v conclusionverdict.Verdict, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerdict is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerdict requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerdict: %w", err)
	}
	return oldValue.Verdict, nil
}

// ResetVerdict resets all changes to the "verdict" field.
func (m *ConclusionVerdictMutation) ResetVerdict() {
	m.verdict = nil
}

// SetLogicTrace sets the "logic_trace" field.
func (m *ConclusionVerdictMutation) SetLogicTrace(value map[string]interface{}) {
	m.logic_trace = &value
}

// LogicTrace returns the value of the "logic_trace" field in the mutation.
func (m *ConclusionVerdictMutation) LogicTrace() (r map[string]interface{}, exists bool) {
	v := m.logic_trace
	if v == nil {
		return
	}
	return *v, true
}

// OldLogicTrace returns the old "logic_trace" field's value of the ConclusionVerdict entity.
// If the ConclusionVerdict object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConclusionVerdictMutation) OldLogicTrace(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLogicTrace is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLogicTrace requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLogicTrace: %w", err)
	}
	return oldValue.LogicTrace, nil
}

// ClearLogicTrace clears the value of the "logic_trace" field.
func (m *ConclusionVerdictMutation) ClearLogicTrace() {
	m.logic_trace = nil
	m.clearedFields[conclusionverdict.FieldLogicTrace] = struct{}{}
}

// LogicTraceCleared returns if the "logic_trace" field was cleared in this mutation.
func (m *ConclusionVerdictMutation) LogicTraceCleared() bool {
	_, ok := m.clearedFields[conclusionverdict.FieldLogicTrace]
	return ok
}

// ResetLogicTrace resets all changes to the "logic_trace" field.
func (m *ConclusionVerdictMutation) ResetLogicTrace() {
	m.logic_trace = nil
	delete(m.clearedFields, conclusionverdict.FieldLogicTrace)
}

// SetRoleFit sets the "role_fit" field.
func (m *ConclusionVerdictMutation) SetRoleFit(cf conclusionverdict.RoleFit) {
	m.role_fit = &cf
}

// RoleFit returns the value of the "role_fit" field in the mutation.
func (m *ConclusionVerdictMutation) RoleFit() (r conclusionverdict.RoleFit, exists bool) {
	v := m.role_fit
	if v == nil {
		return
	}
	return *v, true
}

// OldRoleFit returns the old "role_fit" field's value of the ConclusionVerdict entity.
// If the ConclusionVerdict object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConclusionVerdictMutation) OldRoleFit(ctx context.Context) (v *conclusionverdict.RoleFit, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoleFit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoleFit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoleFit: %w", err)
	}
	return oldValue.RoleFit, nil
}

// ClearRoleFit clears the value of the "role_fit" field.
func (m *ConclusionVerdictMutation) ClearRoleFit() {
	m.role_fit = nil
	m.clearedFields[conclusionverdict.FieldRoleFit] = struct{}{}
}

// RoleFitCleared returns if the "role_fit" field was cleared in this mutation.
func (m *ConclusionVerdictMutation) RoleFitCleared() bool {
	_, ok := m.clearedFields[conclusionverdict.FieldRoleFit]
	return ok
}

// ResetRoleFit resets all changes to the "role_fit" field.
func (m *ConclusionVerdictMutation) ResetRoleFit() {
	m.role_fit = nil
	delete(m.clearedFields, conclusionverdict.FieldRoleFit)
}

// SetRoleFitNote sets the "role_fit_note" field.
func (m *ConclusionVerdictMutation) SetRoleFitNote(s string) {
	m.role_fit_note = &s
}

// RoleFitNote returns the value of the "role_fit_note" field in the mutation.
func (m *ConclusionVerdictMutation) RoleFitNote() (r string, exists bool) {
	v := m.role_fit_note
	if v == nil {
		return
	}
	return *v, true
}

// OldRoleFitNote returns the old "role_fit_note" field's value of the ConclusionVerdict entity.
// If the ConclusionVerdict object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConclusionVerdictMutation) OldRoleFitNote(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoleFitNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoleFitNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoleFitNote: %w", err)
	}
	return oldValue.RoleFitNote, nil
}

// ClearRoleFitNote clears the value of the "role_fit_note" field.
func (m *ConclusionVerdictMutation) ClearRoleFitNote() {
	m.role_fit_note = nil
	m.clearedFields[conclusionverdict.FieldRoleFitNote] = struct{}{}
}

// RoleFitNoteCleared returns if the "role_fit_note" field was cleared in this mutation.
func (m *ConclusionVerdictMutation) RoleFitNoteCleared() bool {
	_, ok := m.clearedFields[conclusionverdict.FieldRoleFitNote]
	return ok
}

// ResetRoleFitNote resets all changes to the "role_fit_note" field.
func (m *ConclusionVerdictMutation) ResetRoleFitNote() {
	m.role_fit_note = nil
	delete(m.clearedFields, conclusionverdict.FieldRoleFitNote)
}

// SetDerivedAt sets the "derived_at" field.
func (m *ConclusionVerdictMutation) SetDerivedAt(t time.Time) {
	m.derived_at = &t
}

// DerivedAt returns the value of the "derived_at" field in the mutation.
func (m *ConclusionVerdictMutation) DerivedAt() (r time.Time, exists bool) {
	v := m.derived_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDerivedAt returns the old "derived_at" field's value of the ConclusionVerdict entity.
// If the ConclusionVerdict object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConclusionVerdictMutation) OldDerivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDerivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDerivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDerivedAt: %w", err)
	}
	return oldValue.DerivedAt, nil
}

// ResetDerivedAt resets all changes to the "derived_at" field.
func (m *ConclusionVerdictMutation) ResetDerivedAt() {
	m.derived_at = nil
}

// ClearConclusion clears the "conclusion" edge to the Conclusion entity.
func (m *ConclusionVerdictMutation) ClearConclusion() {
	m.clearedconclusion = true
	m.clearedFields[conclusionverdict.FieldConclusionID] = struct{}{}
}

// ConclusionCleared reports if the "conclusion" edge to the Conclusion entity was cleared.
func (m *ConclusionVerdictMutation) ConclusionCleared() bool {
	return m.clearedconclusion
}

// ConclusionIDs returns the "conclusion" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConclusionID instead. It exists only for internal usage by the builders.
func (m *ConclusionVerdictMutation) ConclusionIDs() (ids []int) {
	if id := m.conclusion; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConclusion resets all changes to the "conclusion" edge.
func (m *ConclusionVerdictMutation) ResetConclusion() {
	m.conclusion = nil
	m.clearedconclusion = false
}

// Where appends a list predicates to the ConclusionVerdictMutation builder.
func (m *ConclusionVerdictMutation) Where(ps ...predicate.ConclusionVerdict) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConclusionVerdictMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConclusionVerdictMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConclusionVerdict, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConclusionVerdictMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConclusionVerdictMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConclusionVerdict).
func (m *ConclusionVerdictMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConclusionVerdictMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.conclusion != nil {
		fields = append(fields, conclusionverdict.FieldConclusionID)
	}
	if m.verdict != nil {
		fields = append(fields, conclusionverdict.FieldVerdict)
	}
	if m.logic_trace != nil {
		fields = append(fields, conclusionverdict.FieldLogicTrace)
	}
	if m.role_fit != nil {
		fields = append(fields, conclusionverdict.FieldRoleFit)
	}
	if m.role_fit_note != nil {
		fields = append(fields, conclusionverdict.FieldRoleFitNote)
	}
	if m.derived_at != nil {
		fields = append(fields, conclusionverdict.FieldDerivedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConclusionVerdictMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conclusionverdict.FieldConclusionID:
		return m.ConclusionID()
	case conclusionverdict.FieldVerdict:
		return m.Verdict()
	case conclusionverdict.FieldLogicTrace:
		return m.LogicTrace()
	case conclusionverdict.FieldRoleFit:
		return m.RoleFit()
	case conclusionverdict.FieldRoleFitNote:
		return m.RoleFitNote()
	case conclusionverdict.FieldDerivedAt:
		return m.DerivedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConclusionVerdictMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conclusionverdict.FieldConclusionID:
		return m.OldConclusionID(ctx)
	case conclusionverdict.FieldVerdict:
		return m.OldVerdict(ctx)
	case conclusionverdict.FieldLogicTrace:
		return m.OldLogicTrace(ctx)
	case conclusionverdict.FieldRoleFit:
		return m.OldRoleFit(ctx)
	case conclusionverdict.FieldRoleFitNote:
		return m.OldRoleFitNote(ctx)
	case conclusionverdict.FieldDerivedAt:
		return m.OldDerivedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ConclusionVerdict field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConclusionVerdictMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conclusionverdict.FieldConclusionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConclusionID(v)
		return nil
	case conclusionverdict.FieldVerdict:
		v, ok := value.(conclusionverdict.Verdict)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerdict(v)
		return nil
	case conclusionverdict.FieldLogicTrace:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLogicTrace(v)
		return nil
	case conclusionverdict.FieldRoleFit:
		v, ok := value.(conclusionverdict.RoleFit)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoleFit(v)
		return nil
	case conclusionverdict.FieldRoleFitNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoleFitNote(v)
		return nil
	case conclusionverdict.FieldDerivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDerivedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ConclusionVerdict field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConclusionVerdictMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConclusionVerdictMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConclusionVerdictMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ConclusionVerdict numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConclusionVerdictMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conclusionverdict.FieldLogicTrace) {
		fields = append(fields, conclusionverdict.FieldLogicTrace)
	}
	if m.FieldCleared(conclusionverdict.FieldRoleFit) {
		fields = append(fields, conclusionverdict.FieldRoleFit)
	}
	if m.FieldCleared(conclusionverdict.FieldRoleFitNote) {
		fields = append(fields, conclusionverdict.FieldRoleFitNote)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConclusionVerdictMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConclusionVerdictMutation) ClearField(name string) error {
	switch name {
	case conclusionverdict.FieldLogicTrace:
		m.ClearLogicTrace()
		return nil
	case conclusionverdict.FieldRoleFit:
		m.ClearRoleFit()
		return nil
	case conclusionverdict.FieldRoleFitNote:
		m.ClearRoleFitNote()
		return nil
	}
	return fmt.Errorf("unknown ConclusionVerdict nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConclusionVerdictMutation) ResetField(name string) error {
	switch name {
	case conclusionverdict.FieldConclusionID:
		m.ResetConclusionID()
		return nil
	case conclusionverdict.FieldVerdict:
		m.ResetVerdict()
		return nil
	case conclusionverdict.FieldLogicTrace:
		m.ResetLogicTrace()
		return nil
	case conclusionverdict.FieldRoleFit:
		m.ResetRoleFit()
		return nil
	case conclusionverdict.FieldRoleFitNote:
		m.ResetRoleFitNote()
		return nil
	case conclusionverdict.FieldDerivedAt:
		m.ResetDerivedAt()
		return nil
	}
	return fmt.Errorf("unknown ConclusionVerdict field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConclusionVerdictMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.conclusion != nil {
		edges = append(edges, conclusionverdict.EdgeConclusion)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConclusionVerdictMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case conclusionverdict.EdgeConclusion:
		if id := m.conclusion; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConclusionVerdictMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConclusionVerdictMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConclusionVerdictMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedconclusion {
		edges = append(edges, conclusionverdict.EdgeConclusion)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConclusionVerdictMutation) EdgeCleared(name string) bool {
	switch name {
	case conclusionverdict.EdgeConclusion:
		return m.clearedconclusion
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConclusionVerdictMutation) ClearEdge(name string) error {
	switch name {
	case conclusionverdict.EdgeConclusion:
		m.ClearConclusion()
		return nil
	}
	return fmt.Errorf("unknown ConclusionVerdict unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConclusionVerdictMutation) ResetEdge(name string) error {
	switch name {
	case conclusionverdict.EdgeConclusion:
		m.ResetConclusion()
		return nil
	}
	return fmt.Errorf("unknown ConclusionVerdict edge %s", name)
}

// FactMutation represents an operation that mutates the Fact nodes in the graph.
type FactMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	claim                 *string
	canonical_claim       *string
	verifiable_expression *string
	is_verifiable         *bool
	verification_method   *string
	validity_start_note   *string
	validity_end_note     *string
	validity_start        *time.Time
	validity_end          *time.Time
	status                *fact.Status
	verified_at           *time.Time
	verification_evidence *string
	verified_source_org   *string
	verified_source_url   *string
	verified_source_data  *string
	created_at            *time.Time
	clearedFields         map[string]struct{}
	raw_post              *int
	clearedraw_post       bool
	references            map[int]struct{}
	removedreferences     map[int]struct{}
	clearedreferences     bool
	evaluations           map[int]struct{}
	removedevaluations    map[int]struct{}
	clearedevaluations    bool
	done                  bool
	oldValue              func(context.Context) (*Fact, error)
	predicates            []predicate.Fact
}

var _ ent.Mutation = (*FactMutation)(nil)

// factOption allows management of the mutation configuration using functional options.
type factOption func(*FactMutation)

// newFactMutation creates new mutation for the Fact entity.
func newFactMutation(c config, op Op, opts ...factOption) *FactMutation {
	m := &FactMutation{
		config:        c,
		op:            op,
		typ:           TypeFact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFactID sets the ID field of the mutation.
func withFactID(id int) factOption {
	return func(m *FactMutation) {
		var (
			err   error
			once  sync.Once
			value *Fact
		)
		m.oldValue = func(ctx context.Context) (*Fact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Fact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFact sets the old Fact of the mutation.
func withFact(node *Fact) factOption {
	return func(m *FactMutation) {
		m.oldValue = func(context.Context) (*Fact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FactMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FactMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Fact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClaim sets the "claim" field.
func (m *FactMutation) SetClaim(s string) {
	m.claim = &s
}

// Claim returns the value of the "claim" field in the mutation.
func (m *FactMutation) Claim() (r string, exists bool) {
	v := m.claim
	if v == nil {
		return
	}
	return *v, true
}

// OldClaim returns the old "claim" field's value of the Fact entity.
// If the Fact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FactMutation) OldClaim(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaim is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaim requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaim: %w", err)
	}
	return oldValue.Claim, nil
}

// ResetClaim resets all changes to the "claim" field.
func (m *FactMutation) ResetClaim() {
	m.claim = nil
}

// SetCanonicalClaim sets the "canonical_claim" field.
func (m *FactMutation) SetCanonicalClaim(s string) {
	m.canonical_claim = &s
}

// CanonicalClaim returns the value of the "canonical_claim" field in the mutation.
func (m *FactMutation) CanonicalClaim() (r string, exists bool) {
	v := m.canonical_claim
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalClaim returns the old "canonical_claim" field's value of the Fact entity.
// If the Fact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FactMutation) OldCanonicalClaim(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalClaim is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalClaim requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalClaim: %w", err)
	}
	return oldValue.CanonicalClaim, nil
}

// ClearCanonicalClaim clears the value of the "canonical_claim" field.
func (m *FactMutation) ClearCanonicalClaim() {
	m.canonical_claim = nil
	m.clearedFields[fact.FieldCanonicalClaim] = struct{}{}
}

// CanonicalClaimCleared returns if the "canonical_claim" field was cleared in this mutation.
func (m *FactMutation) CanonicalClaimCleared() bool {
	_, ok := m.clearedFields[fact.FieldCanonicalClaim]
	return ok
}

// ResetCanonicalClaim resets all changes to the "canonical_claim" field.
func (m *FactMutation) ResetCanonicalClaim() {
	m.canonical_claim = nil
	delete(m.clearedFields, fact.FieldCanonicalClaim)
}

// SetVerifiableExpression sets the "verifiable_expression" field.
func (m *FactMutation) SetVerifiableExpression(s string) {
	m.verifiable_expression = &s
}

// VerifiableExpression returns the value of the "verifiable_expression" field in the mutation.
func (m *FactMutation) VerifiableExpression() (r string, exists bool) {
	v := m.verifiable_expression
	if v == nil {
		return
	}
	return *v, true
}

// OldVerifiableExpression returns the old "verifiable_expression" field's value of the Fact entity.
// If the Fact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FactMutation) OldVerifiableExpression(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerifiableExpression is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerifiableExpression requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerifiableExpression: %w", err)
	}
	return oldValue.VerifiableExpression, nil
}

// ClearVerifiableExpression clears the value of the "verifiable_expression" field.
func (m *FactMutation) ClearVerifiableExpression() {
	m.verifiable_expression = nil
	m.clearedFields[fact.FieldVerifiableExpression] = struct{}{}
}

// VerifiableExpressionCleared returns if the "verifiable_expression" field was cleared in this mutation.
func (m *FactMutation) VerifiableExpressionCleared() bool {
	_, ok := m.clearedFields[fact.FieldVerifiableExpression]
	return ok
}

// ResetVerifiableExpression resets all changes to the "verifiable_expression" field.
func (m *FactMutation) ResetVerifiableExpression() {
	m.verifiable_expression = nil
	delete(m.clearedFields, fact.FieldVerifiableExpression)
}

// SetIsVerifiable sets the "is_verifiable" field.
func (m *FactMutation) SetIsVerifiable(b bool) {
	m.is_verifiable = &b
}

// IsVerifiable returns the value of the "is_verifiable" field in the mutation.
func (m *FactMutation) IsVerifiable() (r bool, exists bool) {
	v := m.is_verifiable
	if v == nil {
		return
	}
	return *v, true
}

// OldIsVerifiable returns the old "is_verifiable" field's value of the Fact entity.
// If the Fact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FactMutation) OldIsVerifiable(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsVerifiable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsVerifiable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsVerifiable: %w", err)
	}
	return oldValue.IsVerifiable, nil
}

// ResetIsVerifiable resets all changes to the "is_verifiable" field.
func (m *FactMutation) ResetIsVerifiable() {
	m.is_verifiable = nil
}

// SetVerificationMethod sets the "verification_method" field.
func (m *FactMutation) SetVerificationMethod(s string) {
	m.verification_method = &s
}

// VerificationMethod returns the value of the "verification_method" field in the mutation.
func (m *FactMutation) VerificationMethod() (r string, exists bool) {
	v := m.verification_method
	if v == nil {
		return
	}
	return *v, true
}

// OldVerificationMethod returns the old "verification_method" field's value of the Fact entity.
// If the Fact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FactMutation) OldVerificationMethod(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerificationMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerificationMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerificationMethod: %w", err)
	}
	return oldValue.VerificationMethod, nil
}

// ClearVerificationMethod clears the value of the "verification_method" field.
func (m *FactMutation) ClearVerificationMethod() {
	m.verification_method = nil
	m.clearedFields[fact.FieldVerificationMethod] = struct{}{}
}

// VerificationMethodCleared returns if the "verification_method" field was cleared in this mutation.
func (m *FactMutation) VerificationMethodCleared() bool {
	_, ok := m.clearedFields[fact.FieldVerificationMethod]
	return ok
}

// ResetVerificationMethod resets all changes to the "verification_method" field.
func (m *FactMutation) ResetVerificationMethod() {
	m.verification_method = nil
	delete(m.clearedFields, fact.FieldVerificationMethod)
}

// SetValidityStartNote sets the "validity_start_note" field.
func (m *FactMutation) SetValidityStartNote(s string) {
	m.validity_start_note = &s
}

// ValidityStartNote returns the value of the "validity_start_note" field in the mutation.
func (m *FactMutation) ValidityStartNote() (r string, exists bool) {
	v := m.validity_start_note
	if v == nil {
		return
	}
	return *v, true
}

// OldValidityStartNote returns the old "validity_start_note" field's value of the Fact entity.
// If the Fact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FactMutation) OldValidityStartNote(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidityStartNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidityStartNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidityStartNote: %w", err)
	}
	return oldValue.ValidityStartNote, nil
}

// ClearValidityStartNote clears the value of the "validity_start_note" field.
func (m *FactMutation) ClearValidityStartNote() {
	m.validity_start_note = nil
	m.clearedFields[fact.FieldValidityStartNote] = struct{}{}
}

// ValidityStartNoteCleared returns if the "validity_start_note" field was cleared in this mutation.
func (m *FactMutation) ValidityStartNoteCleared() bool {
	_, ok := m.clearedFields[fact.FieldValidityStartNote]
	return ok
}

// ResetValidityStartNote resets all changes to the "validity_start_note" field.
func (m *FactMutation) ResetValidityStartNote() {
	m.validity_start_note = nil
	delete(m.clearedFields, fact.FieldValidityStartNote)
}

// SetValidityEndNote sets the "validity_end_note" field.
func (m *FactMutation) SetValidityEndNote(s string) {
	m.validity_end_note = &s
}

// ValidityEndNote returns the value of the "validity_end_note" field in the mutation.
func (m *FactMutation) ValidityEndNote() (r string, exists bool) {
	v := m.validity_end_note
	if v == nil {
		return
	}
	return *v, true
}

// OldValidityEndNote returns the old "validity_end_note" field's value of the Fact entity.
// If the Fact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FactMutation) OldValidityEndNote(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidityEndNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidityEndNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidityEndNote: %w", err)
	}
	return oldValue.ValidityEndNote, nil
}

// ClearValidityEndNote clears the value of the "validity_end_note" field.
func (m *FactMutation) ClearValidityEndNote() {
	m.validity_end_note = nil
	m.clearedFields[fact.FieldValidityEndNote] = struct{}{}
}

// ValidityEndNoteCleared returns if the "validity_end_note" field was cleared in this mutation.
func (m *FactMutation) ValidityEndNoteCleared() bool {
	_, ok := m.clearedFields[fact.FieldValidityEndNote]
	return ok
}

// ResetValidityEndNote resets all changes to the "validity_end_note" field.
func (m *FactMutation) ResetValidityEndNote() {
	m.validity_end_note = nil
	delete(m.clearedFields, fact.FieldValidityEndNote)
}

// SetValidityStart sets the "validity_start" field.
func (m *FactMutation) SetValidityStart(t time.Time) {
	m.validity_start = &t
}

// ValidityStart returns the value of the "validity_start" field in the mutation.
func (m *FactMutation) ValidityStart() (r time.Time, exists bool) {
	v := m.validity_start
	if v == nil {
		return
	}
	return *v, true
}

// OldValidityStart returns the old "validity_start" field's value of the Fact entity.
// If the Fact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FactMutation) OldValidityStart(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidityStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidityStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidityStart: %w", err)
	}
	return oldValue.ValidityStart, nil
}

// ClearValidityStart clears the value of the "validity_start" field.
func (m *FactMutation) ClearValidityStart() {
	m.validity_start = nil
	m.clearedFields[fact.FieldValidityStart] = struct{}{}
}

// ValidityStartCleared returns if the "validity_start" field was cleared in this mutation.
func (m *FactMutation) ValidityStartCleared() bool {
	_, ok := m.clearedFields[fact.FieldValidityStart]
	return ok
}

// ResetValidityStart resets all changes to the "validity_start" field.
func (m *FactMutation) ResetValidityStart() {
	m.validity_start = nil
	delete(m.clearedFields, fact.FieldValidityStart)
}

// SetValidityEnd sets the "validity_end" field.
func (m *FactMutation) SetValidityEnd(t time.Time) {
	m.validity_end = &t
}

// ValidityEnd returns the value of the "validity_end" field in the mutation.
func (m *FactMutation) ValidityEnd() (r time.Time, exists bool) {
	v := m.validity_end
	if v == nil {
		return
	}
	return *v, true
}

// OldValidityEnd returns the old "validity_end" field's value of the Fact entity.
// If the Fact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FactMutation) OldValidityEnd(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidityEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidityEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidityEnd: %w", err)
	}
	return oldValue.ValidityEnd, nil
}

// ClearValidityEnd clears the value of the "validity_end" field.
func (m *FactMutation) ClearValidityEnd() {
	m.validity_end = nil
	m.clearedFields[fact.FieldValidityEnd] = struct{}{}
}

// ValidityEndCleared returns if the "validity_end" field was cleared in this mutation.
func (m *FactMutation) ValidityEndCleared() bool {
	_, ok := m.clearedFields[fact.FieldValidityEnd]
	return ok
}

// ResetValidityEnd resets all changes to the "validity_end" field.
func (m *FactMutation) ResetValidityEnd() {
	m.validity_end = nil
	delete(m.clearedFields, fact.FieldValidityEnd)
}

// SetStatus sets the "status" field.
func (m *FactMutation) SetStatus(f fact.Status) {
	m.status = &f
}

// Status returns the value of the "status" field in the mutation.
func (m *FactMutation) Status() (r fact.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Fact entity.
// If the Fact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FactMutation) OldStatus(ctx context.Context) (v fact.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *FactMutation) ResetStatus() {
	m.status = nil
}

// SetVerifiedAt sets the "verified_at" field.
func (m *FactMutation) SetVerifiedAt(t time.Time) {
	m.verified_at = &t
}

// VerifiedAt returns the value of the "verified_at" field in the mutation.
func (m *FactMutation) VerifiedAt() (r time.Time, exists bool) {
	v := m.verified_at
	if v == nil {
		return
	}
	return *v, true
}

// OldVerifiedAt returns the old "verified_at" field's value of the Fact entity.
// If the Fact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FactMutation) OldVerifiedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerifiedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerifiedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerifiedAt: %w", err)
	}
	return oldValue.VerifiedAt, nil
}

// ClearVerifiedAt clears the value of the "verified_at" field.
func (m *FactMutation) ClearVerifiedAt() {
	m.verified_at = nil
	m.clearedFields[fact.FieldVerifiedAt] = struct{}{}
}

// VerifiedAtCleared returns if the "verified_at" field was cleared in this mutation.
func (m *FactMutation) VerifiedAtCleared() bool {
	_, ok := m.clearedFields[fact.FieldVerifiedAt]
	return ok
}

// ResetVerifiedAt resets all changes to the "verified_at" field.
func (m *FactMutation) ResetVerifiedAt() {
	m.verified_at = nil
	delete(m.clearedFields, fact.FieldVerifiedAt)
}

// SetVerificationEvidence sets the "verification_evidence" field.
func (m *FactMutation) SetVerificationEvidence(s string) {
	m.verification_evidence = &s
}

// VerificationEvidence returns the value of the "verification_evidence" field in the mutation.
func (m *FactMutation) VerificationEvidence() (r string, exists bool) {
	v := m.verification_evidence
	if v == nil {
		return
	}
	return *v, true
}

// OldVerificationEvidence returns the old "verification_evidence" field's value of the Fact entity.
// If the Fact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FactMutation) OldVerificationEvidence(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerificationEvidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerificationEvidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerificationEvidence: %w", err)
	}
	return oldValue.VerificationEvidence, nil
}

// ClearVerificationEvidence clears the value of the "verification_evidence" field.
func (m *FactMutation) ClearVerificationEvidence() {
	m.verification_evidence = nil
	m.clearedFields[fact.FieldVerificationEvidence] = struct{}{}
}

// VerificationEvidenceCleared returns if the "verification_evidence" field was cleared in this mutation.
func (m *FactMutation) VerificationEvidenceCleared() bool {
	_, ok := m.clearedFields[fact.FieldVerificationEvidence]
	return ok
}

// ResetVerificationEvidence resets all changes to the "verification_evidence" field.
func (m *FactMutation) ResetVerificationEvidence() {
	m.verification_evidence = nil
	delete(m.clearedFields, fact.FieldVerificationEvidence)
}

// SetVerifiedSourceOrg sets the "verified_source_org" field.
func (m *FactMutation) SetVerifiedSourceOrg(s string) {
	m.verified_source_org = &s
}

// VerifiedSourceOrg returns the value of the "verified_source_org" field in the mutation.
func (m *FactMutation) VerifiedSourceOrg() (r string, exists bool) {
	v := m.verified_source_org
	if v == nil {
		return
	}
	return *v, true
}

// OldVerifiedSourceOrg returns the old "verified_source_org" field's value of the Fact entity.
// If the Fact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FactMutation) OldVerifiedSourceOrg(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerifiedSourceOrg is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerifiedSourceOrg requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerifiedSourceOrg: %w", err)
	}
	return oldValue.VerifiedSourceOrg, nil
}

// ClearVerifiedSourceOrg clears the value of the "verified_source_org" field.
func (m *FactMutation) ClearVerifiedSourceOrg() {
	m.verified_source_org = nil
	m.clearedFields[fact.FieldVerifiedSourceOrg] = struct{}{}
}

// VerifiedSourceOrgCleared returns if the "verified_source_org" field was cleared in this mutation.
func (m *FactMutation) VerifiedSourceOrgCleared() bool {
	_, ok := m.clearedFields[fact.FieldVerifiedSourceOrg]
	return ok
}

// ResetVerifiedSourceOrg resets all changes to the "verified_source_org" field.
func (m *FactMutation) ResetVerifiedSourceOrg() {
	m.verified_source_org = nil
	delete(m.clearedFields, fact.FieldVerifiedSourceOrg)
}

// SetVerifiedSourceURL sets the "verified_source_url" field.
func (m *FactMutation) SetVerifiedSourceURL(s string) {
	m.verified_source_url = &s
}

// VerifiedSourceURL returns the value of the "verified_source_url" field in the mutation.
func (m *FactMutation) VerifiedSourceURL() (r string, exists bool) {
	v := m.verified_source_url
	if v == nil {
		return
	}
	return *v, true
}

// OldVerifiedSourceURL returns the old "verified_source_url" field's value of the Fact entity.
// If the Fact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FactMutation) OldVerifiedSourceURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerifiedSourceURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerifiedSourceURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerifiedSourceURL: %w", err)
	}
	return oldValue.VerifiedSourceURL, nil
}

// ClearVerifiedSourceURL clears the value of the "verified_source_url" field.
func (m *FactMutation) ClearVerifiedSourceURL() {
	m.verified_source_url = nil
	m.clearedFields[fact.FieldVerifiedSourceURL] = struct{}{}
}

// VerifiedSourceURLCleared returns if the "verified_source_url" field was cleared in this mutation.
func (m *FactMutation) VerifiedSourceURLCleared() bool {
	_, ok := m.clearedFields[fact.FieldVerifiedSourceURL]
	return ok
}

// ResetVerifiedSourceURL resets all changes to the "verified_source_url" field.
func (m *FactMutation) ResetVerifiedSourceURL() {
	m.verified_source_url = nil
	delete(m.clearedFields, fact.FieldVerifiedSourceURL)
}

// SetVerifiedSourceData sets the "verified_source_data" field.
func (m *FactMutation) SetVerifiedSourceData(s string) {
	m.verified_source_data = &s
}

// VerifiedSourceData returns the value of the "verified_source_data" field in the mutation.
func (m *FactMutation) VerifiedSourceData() (r string, exists bool) {
	v := m.verified_source_data
	if v == nil {
		return
	}
	return *v, true
}

// OldVerifiedSourceData returns the old "verified_source_data" field's value of the Fact entity.
// If the Fact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FactMutation) OldVerifiedSourceData(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerifiedSourceData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerifiedSourceData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerifiedSourceData: %w", err)
	}
	return oldValue.VerifiedSourceData, nil
}

// ClearVerifiedSourceData clears the value of the "verified_source_data" field.
func (m *FactMutation) ClearVerifiedSourceData() {
	m.verified_source_data = nil
	m.clearedFields[fact.FieldVerifiedSourceData] = struct{}{}
}

// VerifiedSourceDataCleared returns if the "verified_source_data" field was cleared in this mutation.
func (m *FactMutation) VerifiedSourceDataCleared() bool {
	_, ok := m.clearedFields[fact.FieldVerifiedSourceData]
	return ok
}

// ResetVerifiedSourceData resets all changes to the "verified_source_data" field.
func (m *FactMutation) ResetVerifiedSourceData() {
	m.verified_source_data = nil
	delete(m.clearedFields, fact.FieldVerifiedSourceData)
}

// SetRawPostID sets the "raw_post_id" field.
func (m *FactMutation) SetRawPostID(i int) {
	m.raw_post = &i
}

// RawPostID returns the value of the "raw_post_id" field in the mutation.
func (m *FactMutation) RawPostID() (r int, exists bool) {
	v := m.raw_post
	if v == nil {
		return
	}
	return *v, true
}

// OldRawPostID returns the old "raw_post_id" field's value of the Fact entity.
// If the Fact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FactMutation) OldRawPostID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawPostID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawPostID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawPostID: %w", err)
	}
	return oldValue.RawPostID, nil
}

// ClearRawPostID clears the value of the "raw_post_id" field.
func (m *FactMutation) ClearRawPostID() {
	m.raw_post = nil
	m.clearedFields[fact.FieldRawPostID] = struct{}{}
}

// RawPostIDCleared returns if the "raw_post_id" field was cleared in this mutation.
func (m *FactMutation) RawPostIDCleared() bool {
	_, ok := m.clearedFields[fact.FieldRawPostID]
	return ok
}

// ResetRawPostID resets all changes to the "raw_post_id" field.
func (m *FactMutation) ResetRawPostID() {
	m.raw_post = nil
	delete(m.clearedFields, fact.FieldRawPostID)
}

// SetCreatedAt sets the "created_at" field.
func (m *FactMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FactMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Fact entity.
// If the Fact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FactMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FactMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRawPost clears the "raw_post" edge to the RawPost entity.
func (m *FactMutation) ClearRawPost() {
	m.clearedraw_post = true
	m.clearedFields[fact.FieldRawPostID] = struct{}{}
}

// RawPostCleared reports if the "raw_post" edge to the RawPost entity was cleared.
func (m *FactMutation) RawPostCleared() bool {
	return m.RawPostIDCleared() || m.clearedraw_post
}

// RawPostIDs returns the "raw_post" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RawPostID instead. It exists only for internal usage by the builders.
func (m *FactMutation) RawPostIDs() (ids []int) {
	if id := m.raw_post; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRawPost resets all changes to the "raw_post" edge.
func (m *FactMutation) ResetRawPost() {
	m.raw_post = nil
	m.clearedraw_post = false
}

// AddReferenceIDs adds the "references" edge to the VerificationReference entity by ids.
func (m *FactMutation) AddReferenceIDs(ids ...int) {
	if m.references == nil {
		m.references = make(map[int]struct{})
	}
	for i := range ids {
		m.references[ids[i]] = struct{}{}
	}
}

// ClearReferences clears the "references" edge to the VerificationReference entity.
func (m *FactMutation) ClearReferences() {
	m.clearedreferences = true
}

// ReferencesCleared reports if the "references" edge to the VerificationReference entity was cleared.
func (m *FactMutation) ReferencesCleared() bool {
	return m.clearedreferences
}

// RemoveReferenceIDs removes the "references" edge to the VerificationReference entity by IDs.
func (m *FactMutation) RemoveReferenceIDs(ids ...int) {
	if m.removedreferences == nil {
		m.removedreferences = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.references, ids[i])
		m.removedreferences[ids[i]] = struct{}{}
	}
}

// RemovedReferences returns the removed IDs of the "references" edge to the VerificationReference entity.
func (m *FactMutation) RemovedReferencesIDs() (ids []int) {
	for id := range m.removedreferences {
		ids = append(ids, id)
	}
	return
}

// ReferencesIDs returns the "references" edge IDs in the mutation.
func (m *FactMutation) ReferencesIDs() (ids []int) {
	for id := range m.references {
		ids = append(ids, id)
	}
	return
}

// ResetReferences resets all changes to the "references" edge.
func (m *FactMutation) ResetReferences() {
	m.references = nil
	m.clearedreferences = false
	m.removedreferences = nil
}

// AddEvaluationIDs adds the "evaluations" edge to the FactEvaluation entity by ids.
func (m *FactMutation) AddEvaluationIDs(ids ...int) {
	if m.evaluations == nil {
		m.evaluations = make(map[int]struct{})
	}
	for i := range ids {
		m.evaluations[ids[i]] = struct{}{}
	}
}

// ClearEvaluations clears the "evaluations" edge to the FactEvaluation entity.
func (m *FactMutation) ClearEvaluations() {
	m.clearedevaluations = true
}

// EvaluationsCleared reports if the "evaluations" edge to the FactEvaluation entity was cleared.
func (m *FactMutation) EvaluationsCleared() bool {
	return m.clearedevaluations
}

// RemoveEvaluationIDs removes the "evaluations" edge to the FactEvaluation entity by IDs.
func (m *FactMutation) RemoveEvaluationIDs(ids ...int) {
	if m.removedevaluations == nil {
		m.removedevaluations = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.evaluations, ids[i])
		m.removedevaluations[ids[i]] = struct{}{}
	}
}

// RemovedEvaluations returns the removed IDs of the "evaluations" edge to the FactEvaluation entity.
func (m *FactMutation) RemovedEvaluationsIDs() (ids []int) {
	for id := range m.removedevaluations {
		ids = append(ids, id)
	}
	return
}

// EvaluationsIDs returns the "evaluations" edge IDs in the mutation.
func (m *FactMutation) EvaluationsIDs() (ids []int) {
	for id := range m.evaluations {
		ids = append(ids, id)
	}
	return
}

// ResetEvaluations resets all changes to the "evaluations" edge.
func (m *FactMutation) ResetEvaluations() {
	m.evaluations = nil
	m.clearedevaluations = false
	m.removedevaluations = nil
}

// Where appends a list predicates to the FactMutation builder.
func (m *FactMutation) Where(ps ...predicate.Fact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Fact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Fact).
func (m *FactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FactMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.claim != nil {
		fields = append(fields, fact.FieldClaim)
	}
	if m.canonical_claim != nil {
		fields = append(fields, fact.FieldCanonicalClaim)
	}
	if m.verifiable_expression != nil {
		fields = append(fields, fact.FieldVerifiableExpression)
	}
	if m.is_verifiable != nil {
		fields = append(fields, fact.FieldIsVerifiable)
	}
	if m.verification_method != nil {
		fields = append(fields, fact.FieldVerificationMethod)
	}
	if m.validity_start_note != nil {
		fields = append(fields, fact.FieldValidityStartNote)
	}
	if m.validity_end_note != nil {
		fields = append(fields, fact.FieldValidityEndNote)
	}
	if m.validity_start != nil {
		fields = append(fields, fact.FieldValidityStart)
	}
	if m.validity_end != nil {
		fields = append(fields, fact.FieldValidityEnd)
	}
	if m.status != nil {
		fields = append(fields, fact.FieldStatus)
	}
	if m.verified_at != nil {
		fields = append(fields, fact.FieldVerifiedAt)
	}
	if m.verification_evidence != nil {
		fields = append(fields, fact.FieldVerificationEvidence)
	}
	if m.verified_source_org != nil {
		fields = append(fields, fact.FieldVerifiedSourceOrg)
	}
	if m.verified_source_url != nil {
		fields = append(fields, fact.FieldVerifiedSourceURL)
	}
	if m.verified_source_data != nil {
		fields = append(fields, fact.FieldVerifiedSourceData)
	}
	if m.raw_post != nil {
		fields = append(fields, fact.FieldRawPostID)
	}
	if m.created_at != nil {
		fields = append(fields, fact.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case fact.FieldClaim:
		return m.Claim()
	case fact.FieldCanonicalClaim:
		return m.CanonicalClaim()
	case fact.FieldVerifiableExpression:
		return m.VerifiableExpression()
	case fact.FieldIsVerifiable:
		return m.IsVerifiable()
	case fact.FieldVerificationMethod:
		return m.VerificationMethod()
	case fact.FieldValidityStartNote:
		return m.ValidityStartNote()
	case fact.FieldValidityEndNote:
		return m.ValidityEndNote()
	case fact.FieldValidityStart:
		return m.ValidityStart()
	case fact.FieldValidityEnd:
		return m.ValidityEnd()
	case fact.FieldStatus:
		return m.Status()
	case fact.FieldVerifiedAt:
		return m.VerifiedAt()
	case fact.FieldVerificationEvidence:
		return m.VerificationEvidence()
	case fact.FieldVerifiedSourceOrg:
		return m.VerifiedSourceOrg()
	case fact.FieldVerifiedSourceURL:
		return m.VerifiedSourceURL()
	case fact.FieldVerifiedSourceData:
		return m.VerifiedSourceData()
	case fact.FieldRawPostID:
		return m.RawPostID()
	case fact.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case fact.FieldClaim:
		return m.OldClaim(ctx)
	case fact.FieldCanonicalClaim:
		return m.OldCanonicalClaim(ctx)
	case fact.FieldVerifiableExpression:
		return m.OldVerifiableExpression(ctx)
	case fact.FieldIsVerifiable:
		return m.OldIsVerifiable(ctx)
	case fact.FieldVerificationMethod:
		return m.OldVerificationMethod(ctx)
	case fact.FieldValidityStartNote:
		return m.OldValidityStartNote(ctx)
	case fact.FieldValidityEndNote:
		return m.OldValidityEndNote(ctx)
	case fact.FieldValidityStart:
		return m.OldValidityStart(ctx)
	case fact.FieldValidityEnd:
		return m.OldValidityEnd(ctx)
	case fact.FieldStatus:
		return m.OldStatus(ctx)
	case fact.FieldVerifiedAt:
		return m.OldVerifiedAt(ctx)
	case fact.FieldVerificationEvidence:
		return m.OldVerificationEvidence(ctx)
	case fact.FieldVerifiedSourceOrg:
		return m.OldVerifiedSourceOrg(ctx)
	case fact.FieldVerifiedSourceURL:
		return m.OldVerifiedSourceURL(ctx)
	case fact.FieldVerifiedSourceData:
		return m.OldVerifiedSourceData(ctx)
	case fact.FieldRawPostID:
		return m.OldRawPostID(ctx)
	case fact.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Fact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case fact.FieldClaim:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaim(v)
		return nil
	case fact.FieldCanonicalClaim:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalClaim(v)
		return nil
	case fact.FieldVerifiableExpression:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerifiableExpression(v)
		return nil
	case fact.FieldIsVerifiable:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsVerifiable(v)
		return nil
	case fact.FieldVerificationMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerificationMethod(v)
		return nil
	case fact.FieldValidityStartNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidityStartNote(v)
		return nil
	case fact.FieldValidityEndNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidityEndNote(v)
		return nil
	case fact.FieldValidityStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidityStart(v)
		return nil
	case fact.FieldValidityEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidityEnd(v)
		return nil
	case fact.FieldStatus:
		v, ok := value.(fact.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case fact.FieldVerifiedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerifiedAt(v)
		return nil
	case fact.FieldVerificationEvidence:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerificationEvidence(v)
		return nil
	case fact.FieldVerifiedSourceOrg:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerifiedSourceOrg(v)
		return nil
	case fact.FieldVerifiedSourceURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerifiedSourceURL(v)
		return nil
	case fact.FieldVerifiedSourceData:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerifiedSourceData(v)
		return nil
	case fact.FieldRawPostID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawPostID(v)
		return nil
	case fact.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Fact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FactMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FactMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FactMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Fact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FactMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(fact.FieldCanonicalClaim) {
		fields = append(fields, fact.FieldCanonicalClaim)
	}
	if m.FieldCleared(fact.FieldVerifiableExpression) {
		fields = append(fields, fact.FieldVerifiableExpression)
	}
	if m.FieldCleared(fact.FieldVerificationMethod) {
		fields = append(fields, fact.FieldVerificationMethod)
	}
	if m.FieldCleared(fact.FieldValidityStartNote) {
		fields = append(fields, fact.FieldValidityStartNote)
	}
	if m.FieldCleared(fact.FieldValidityEndNote) {
		fields = append(fields, fact.FieldValidityEndNote)
	}
	if m.FieldCleared(fact.FieldValidityStart) {
		fields = append(fields, fact.FieldValidityStart)
	}
	if m.FieldCleared(fact.FieldValidityEnd) {
		fields = append(fields, fact.FieldValidityEnd)
	}
	if m.FieldCleared(fact.FieldVerifiedAt) {
		fields = append(fields, fact.FieldVerifiedAt)
	}
	if m.FieldCleared(fact.FieldVerificationEvidence) {
		fields = append(fields, fact.FieldVerificationEvidence)
	}
	if m.FieldCleared(fact.FieldVerifiedSourceOrg) {
		fields = append(fields, fact.FieldVerifiedSourceOrg)
	}
	if m.FieldCleared(fact.FieldVerifiedSourceURL) {
		fields = append(fields, fact.FieldVerifiedSourceURL)
	}
	if m.FieldCleared(fact.FieldVerifiedSourceData) {
		fields = append(fields, fact.FieldVerifiedSourceData)
	}
	if m.FieldCleared(fact.FieldRawPostID) {
		fields = append(fields, fact.FieldRawPostID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FactMutation) ClearField(name string) error {
	switch name {
	case fact.FieldCanonicalClaim:
		m.ClearCanonicalClaim()
		return nil
	case fact.FieldVerifiableExpression:
		m.ClearVerifiableExpression()
		return nil
	case fact.FieldVerificationMethod:
		m.ClearVerificationMethod()
		return nil
	case fact.FieldValidityStartNote:
		m.ClearValidityStartNote()
		return nil
	case fact.FieldValidityEndNote:
		m.ClearValidityEndNote()
		return nil
	case fact.FieldValidityStart:
		m.ClearValidityStart()
		return nil
	case fact.FieldValidityEnd:
		m.ClearValidityEnd()
		return nil
	case fact.FieldVerifiedAt:
		m.ClearVerifiedAt()
		return nil
	case fact.FieldVerificationEvidence:
		m.ClearVerificationEvidence()
		return nil
	case fact.FieldVerifiedSourceOrg:
		m.ClearVerifiedSourceOrg()
		return nil
	case fact.FieldVerifiedSourceURL:
		m.ClearVerifiedSourceURL()
		return nil
	case fact.FieldVerifiedSourceData:
		m.ClearVerifiedSourceData()
		return nil
	case fact.FieldRawPostID:
		m.ClearRawPostID()
		return nil
	}
	return fmt.Errorf("unknown Fact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FactMutation) ResetField(name string) error {
	switch name {
	case fact.FieldClaim:
		m.ResetClaim()
		return nil
	case fact.FieldCanonicalClaim:
		m.ResetCanonicalClaim()
		return nil
	case fact.FieldVerifiableExpression:
		m.ResetVerifiableExpression()
		return nil
	case fact.FieldIsVerifiable:
		m.ResetIsVerifiable()
		return nil
	case fact.FieldVerificationMethod:
		m.ResetVerificationMethod()
		return nil
	case fact.FieldValidityStartNote:
		m.ResetValidityStartNote()
		return nil
	case fact.FieldValidityEndNote:
		m.ResetValidityEndNote()
		return nil
	case fact.FieldValidityStart:
		m.ResetValidityStart()
		return nil
	case fact.FieldValidityEnd:
		m.ResetValidityEnd()
		return nil
	case fact.FieldStatus:
		m.ResetStatus()
		return nil
	case fact.FieldVerifiedAt:
		m.ResetVerifiedAt()
		return nil
	case fact.FieldVerificationEvidence:
		m.ResetVerificationEvidence()
		return nil
	case fact.FieldVerifiedSourceOrg:
		m.ResetVerifiedSourceOrg()
		return nil
	case fact.FieldVerifiedSourceURL:
		m.ResetVerifiedSourceURL()
		return nil
	case fact.FieldVerifiedSourceData:
		m.ResetVerifiedSourceData()
		return nil
	case fact.FieldRawPostID:
		m.ResetRawPostID()
		return nil
	case fact.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Fact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FactMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.raw_post != nil {
		edges = append(edges, fact.EdgeRawPost)
	}
	if m.references != nil {
		edges = append(edges, fact.EdgeReferences)
	}
	if m.evaluations != nil {
		edges = append(edges, fact.EdgeEvaluations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FactMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case fact.EdgeRawPost:
		if id := m.raw_post; id != nil {
			return []ent.Value{*id}
		}
	case fact.EdgeReferences:
		ids := make([]ent.Value, 0, len(m.references))
		for id := range m.references {
			ids = append(ids, id)
		}
		return ids
	case fact.EdgeEvaluations:
		ids := make([]ent.Value, 0, len(m.evaluations))
		for id := range m.evaluations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedreferences != nil {
		edges = append(edges, fact.EdgeReferences)
	}
	if m.removedevaluations != nil {
		edges = append(edges, fact.EdgeEvaluations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FactMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case fact.EdgeReferences:
		ids := make([]ent.Value, 0, len(m.removedreferences))
		for id := range m.removedreferences {
			ids = append(ids, id)
		}
		return ids
	case fact.EdgeEvaluations:
		ids := make([]ent.Value, 0, len(m.removedevaluations))
		for id := range m.removedevaluations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedraw_post {
		edges = append(edges, fact.EdgeRawPost)
	}
	if m.clearedreferences {
		edges = append(edges, fact.EdgeReferences)
	}
	if m.clearedevaluations {
		edges = append(edges, fact.EdgeEvaluations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FactMutation) EdgeCleared(name string) bool {
	switch name {
	case fact.EdgeRawPost:
		return m.clearedraw_post
	case fact.EdgeReferences:
		return m.clearedreferences
	case fact.EdgeEvaluations:
		return m.clearedevaluations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FactMutation) ClearEdge(name string) error {
	switch name {
	case fact.EdgeRawPost:
		m.ClearRawPost()
		return nil
	}
	return fmt.Errorf("unknown Fact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FactMutation) ResetEdge(name string) error {
	switch name {
	case fact.EdgeRawPost:
		m.ResetRawPost()
		return nil
	case fact.EdgeReferences:
		m.ResetReferences()
		return nil
	case fact.EdgeEvaluations:
		m.ResetEvaluations()
		return nil
	}
	return fmt.Errorf("unknown Fact edge %s", name)
}

// FactEvaluationMutation represents an operation that mutates the FactEvaluation nodes in the graph.
type FactEvaluationMutation struct {
	config
	op               Op
	typ              string
	id               *int
	result           *factevaluation.Result
	evidence_text    *string
	evidence_tier    *int
	addevidence_tier *int
	data_period      *string
	evaluator_notes  *string
	evaluated_at     *time.Time
	clearedFields    map[string]struct{}
	fact             *int
	clearedfact      bool
	done             bool
	oldValue         func(context.Context) (*FactEvaluation, error)
	predicates       []predicate.FactEvaluation
}

var _ ent.Mutation = (*FactEvaluationMutation)(nil)

// factevaluationOption allows management of the mutation configuration using functional options.
type factevaluationOption func(*FactEvaluationMutation)

// newFactEvaluationMutation creates new mutation for the FactEvaluation entity.
func newFactEvaluationMutation(c config, op Op, opts ...factevaluationOption) *FactEvaluationMutation {
	m := &FactEvaluationMutation{
		config:        c,
		op:            op,
		typ:           TypeFactEvaluation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFactEvaluationID sets the ID field of the mutation.
func withFactEvaluationID(id int) factevaluationOption {
	return func(m *FactEvaluationMutation) {
		var (
			err   error
			once  sync.Once
			value *FactEvaluation
		)
		m.oldValue = func(ctx context.Context) (*FactEvaluation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FactEvaluation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFactEvaluation sets the old FactEvaluation of the mutation.
func withFactEvaluation(node *FactEvaluation) factevaluationOption {
	return func(m *FactEvaluationMutation) {
		m.oldValue = func(context.Context) (*FactEvaluation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FactEvaluationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FactEvaluationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FactEvaluationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FactEvaluationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FactEvaluation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFactID sets the "fact_id" field.
func (m *FactEvaluationMutation) SetFactID(i int) {
	m.fact = &i
}

// FactID returns the value of the "fact_id" field in the mutation.
func (m *FactEvaluationMutation) FactID() (r int, exists bool) {
	v := m.fact
	if v == nil {
		return
	}
	return *v, true
}

// OldFactID returns the old "fact_id" field's value of the FactEvaluation entity.
// If the FactEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FactEvaluationMutation) OldFactID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFactID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFactID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFactID: %w", err)
	}
	return oldValue.FactID, nil
}

// ResetFactID resets all changes to the "fact_id" field.
func (m *FactEvaluationMutation) ResetFactID() {
	m.fact = nil
}

// SetResult sets the "result" field.
func (m *FactEvaluationMutation) SetResult(f factevaluation.Result) {
	m.result = &f
}

// Result returns the value of the "result" field in the mutation.
func (m *FactEvaluationMutation) Result() (r factevaluation.Result, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the FactEvaluation entity.
// If the FactEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FactEvaluationMutation) OldResult(ctx context.Context) (v factevaluation.Result, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ResetResult resets all changes to the "result" field.
func (m *FactEvaluationMutation) ResetResult() {
	m.result = nil
}

// SetEvidenceText sets the "evidence_text" field.
func (m *FactEvaluationMutation) SetEvidenceText(s string) {
	m.evidence_text = &s
}

// EvidenceText returns the value of the "evidence_text" field in the mutation.
func (m *FactEvaluationMutation) EvidenceText() (r string, exists bool) {
	v := m.evidence_text
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidenceText returns the old "evidence_text" field's value of the FactEvaluation entity.
// If the FactEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FactEvaluationMutation) OldEvidenceText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidenceText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidenceText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidenceText: %w", err)
	}
	return oldValue.EvidenceText, nil
}

// ClearEvidenceText clears the value of the "evidence_text" field.
func (m *FactEvaluationMutation) ClearEvidenceText() {
	m.evidence_text = nil
	m.clearedFields[factevaluation.FieldEvidenceText] = struct{}{}
}

// EvidenceTextCleared returns if the "evidence_text" field was cleared in this mutation.
func (m *FactEvaluationMutation) EvidenceTextCleared() bool {
	_, ok := m.clearedFields[factevaluation.FieldEvidenceText]
	return ok
}

// ResetEvidenceText resets all changes to the "evidence_text" field.
func (m *FactEvaluationMutation) ResetEvidenceText() {
	m.evidence_text = nil
	delete(m.clearedFields, factevaluation.FieldEvidenceText)
}

// SetEvidenceTier sets the "evidence_tier" field.
func (m *FactEvaluationMutation) SetEvidenceTier(i int) {
	m.evidence_tier = &i
	m.addevidence_tier = nil
}

// EvidenceTier returns the value of the "evidence_tier" field in the mutation.
func (m *FactEvaluationMutation) EvidenceTier() (r int, exists bool) {
	v := m.evidence_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidenceTier returns the old "evidence_tier" field's value of the FactEvaluation entity.
// If the FactEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FactEvaluationMutation) OldEvidenceTier(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidenceTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidenceTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidenceTier: %w", err)
	}
	return oldValue.EvidenceTier, nil
}

// AddEvidenceTier adds i to the "evidence_tier" field.
func (m *FactEvaluationMutation) AddEvidenceTier(i int) {
	if m.addevidence_tier != nil {
		*m.addevidence_tier += i
	} else {
		m.addevidence_tier = &i
	}
}

// AddedEvidenceTier returns the value that was added to the "evidence_tier" field in this mutation.
func (m *FactEvaluationMutation) AddedEvidenceTier() (r int, exists bool) {
	v := m.addevidence_tier
	if v == nil {
		return
	}
	return *v, true
}

// ClearEvidenceTier clears the value of the "evidence_tier" field.
func (m *FactEvaluationMutation) ClearEvidenceTier() {
	m.evidence_tier = nil
	m.addevidence_tier = nil
	m.clearedFields[factevaluation.FieldEvidenceTier] = struct{}{}
}

// EvidenceTierCleared returns if the "evidence_tier" field was cleared in this mutation.
func (m *FactEvaluationMutation) EvidenceTierCleared() bool {
	_, ok := m.clearedFields[factevaluation.FieldEvidenceTier]
	return ok
}

// ResetEvidenceTier resets all changes to the "evidence_tier" field.
func (m *FactEvaluationMutation) ResetEvidenceTier() {
	m.evidence_tier = nil
	m.addevidence_tier = nil
	delete(m.clearedFields, factevaluation.FieldEvidenceTier)
}

// SetDataPeriod sets the "data_period" field.
func (m *FactEvaluationMutation) SetDataPeriod(s string) {
	m.data_period = &s
}

// DataPeriod returns the value of the "data_period" field in the mutation.
func (m *FactEvaluationMutation) DataPeriod() (r string, exists bool) {
	v := m.data_period
	if v == nil {
		return
	}
	return *v, true
}

// OldDataPeriod returns the old "data_period" field's value of the FactEvaluation entity.
// If the FactEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FactEvaluationMutation) OldDataPeriod(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataPeriod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataPeriod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataPeriod: %w", err)
	}
	return oldValue.DataPeriod, nil
}

// ClearDataPeriod clears the value of the "data_period" field.
func (m *FactEvaluationMutation) ClearDataPeriod() {
	m.data_period = nil
	m.clearedFields[factevaluation.FieldDataPeriod] = struct{}{}
}

// DataPeriodCleared returns if the "data_period" field was cleared in this mutation.
func (m *FactEvaluationMutation) DataPeriodCleared() bool {
	_, ok := m.clearedFields[factevaluation.FieldDataPeriod]
	return ok
}

// ResetDataPeriod resets all changes to the "data_period" field.
func (m *FactEvaluationMutation) ResetDataPeriod() {
	m.data_period = nil
	delete(m.clearedFields, factevaluation.FieldDataPeriod)
}

// SetEvaluatorNotes sets the "evaluator_notes" field.
func (m *FactEvaluationMutation) SetEvaluatorNotes(s string) {
	m.evaluator_notes = &s
}

// EvaluatorNotes returns the value of the "evaluator_notes" field in the mutation.
func (m *FactEvaluationMutation) EvaluatorNotes() (r string, exists bool) {
	v := m.evaluator_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldEvaluatorNotes returns the old "evaluator_notes" field's value of the FactEvaluation entity.
// If the FactEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FactEvaluationMutation) OldEvaluatorNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvaluatorNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvaluatorNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvaluatorNotes: %w", err)
	}
	return oldValue.EvaluatorNotes, nil
}

// ClearEvaluatorNotes clears the value of the "evaluator_notes" field.
func (m *FactEvaluationMutation) ClearEvaluatorNotes() {
	m.evaluator_notes = nil
	m.clearedFields[factevaluation.FieldEvaluatorNotes] = struct{}{}
}

// EvaluatorNotesCleared returns if the "evaluator_notes" field was cleared in this mutation.
func (m *FactEvaluationMutation) EvaluatorNotesCleared() bool {
	_, ok := m.clearedFields[factevaluation.FieldEvaluatorNotes]
	return ok
}

// ResetEvaluatorNotes resets all changes to the "evaluator_notes" field.
func (m *FactEvaluationMutation) ResetEvaluatorNotes() {
	m.evaluator_notes = nil
	delete(m.clearedFields, factevaluation.FieldEvaluatorNotes)
}

// SetEvaluatedAt sets the "evaluated_at" field.
func (m *FactEvaluationMutation) SetEvaluatedAt(t time.Time) {
	m.evaluated_at = &t
}

// EvaluatedAt returns the value of the "evaluated_at" field in the mutation.
func (m *FactEvaluationMutation) EvaluatedAt() (r time.Time, exists bool) {
	v := m.evaluated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEvaluatedAt returns the old "evaluated_at" field's value of the FactEvaluation entity.
// If the FactEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FactEvaluationMutation) OldEvaluatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvaluatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvaluatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvaluatedAt: %w", err)
	}
	return oldValue.EvaluatedAt, nil
}

// ResetEvaluatedAt resets all changes to the "evaluated_at" field.
func (m *FactEvaluationMutation) ResetEvaluatedAt() {
	m.evaluated_at = nil
}

// ClearFact clears the "fact" edge to the Fact entity.
func (m *FactEvaluationMutation) ClearFact() {
	m.clearedfact = true
	m.clearedFields[factevaluation.FieldFactID] = struct{}{}
}

// FactCleared reports if the "fact" edge to the Fact entity was cleared.
func (m *FactEvaluationMutation) FactCleared() bool {
	return m.clearedfact
}

// FactIDs returns the "fact" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FactID instead. It exists only for internal usage by the builders.
func (m *FactEvaluationMutation) FactIDs() (ids []int) {
	if id := m.fact; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFact resets all changes to the "fact" edge.
func (m *FactEvaluationMutation) ResetFact() {
	m.fact = nil
	m.clearedfact = false
}

// Where appends a list predicates to the FactEvaluationMutation builder.
func (m *FactEvaluationMutation) Where(ps ...predicate.FactEvaluation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FactEvaluationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FactEvaluationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FactEvaluation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FactEvaluationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FactEvaluationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FactEvaluation).
func (m *FactEvaluationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FactEvaluationMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.fact != nil {
		fields = append(fields, factevaluation.FieldFactID)
	}
	if m.result != nil {
		fields = append(fields, factevaluation.FieldResult)
	}
	if m.evidence_text != nil {
		fields = append(fields, factevaluation.FieldEvidenceText)
	}
	if m.evidence_tier != nil {
		fields = append(fields, factevaluation.FieldEvidenceTier)
	}
	if m.data_period != nil {
		fields = append(fields, factevaluation.FieldDataPeriod)
	}
	if m.evaluator_notes != nil {
		fields = append(fields, factevaluation.FieldEvaluatorNotes)
	}
	if m.evaluated_at != nil {
		fields = append(fields, factevaluation.FieldEvaluatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FactEvaluationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case factevaluation.FieldFactID:
		return m.FactID()
	case factevaluation.FieldResult:
		return m.Result()
	case factevaluation.FieldEvidenceText:
		return m.EvidenceText()
	case factevaluation.FieldEvidenceTier:
		return m.EvidenceTier()
	case factevaluation.FieldDataPeriod:
		return m.DataPeriod()
	case factevaluation.FieldEvaluatorNotes:
		return m.EvaluatorNotes()
	case factevaluation.FieldEvaluatedAt:
		return m.EvaluatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FactEvaluationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case factevaluation.FieldFactID:
		return m.OldFactID(ctx)
	case factevaluation.FieldResult:
		return m.OldResult(ctx)
	case factevaluation.FieldEvidenceText:
		return m.OldEvidenceText(ctx)
	case factevaluation.FieldEvidenceTier:
		return m.OldEvidenceTier(ctx)
	case factevaluation.FieldDataPeriod:
		return m.OldDataPeriod(ctx)
	case factevaluation.FieldEvaluatorNotes:
		return m.OldEvaluatorNotes(ctx)
	case factevaluation.FieldEvaluatedAt:
		return m.OldEvaluatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FactEvaluation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FactEvaluationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case factevaluation.FieldFactID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFactID(v)
		return nil
	case factevaluation.FieldResult:
		v, ok := value.(factevaluation.Result)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case factevaluation.FieldEvidenceText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidenceText(v)
		return nil
	case factevaluation.FieldEvidenceTier:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidenceTier(v)
		return nil
	case factevaluation.FieldDataPeriod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataPeriod(v)
		return nil
	case factevaluation.FieldEvaluatorNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvaluatorNotes(v)
		return nil
	case factevaluation.FieldEvaluatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvaluatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FactEvaluation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FactEvaluationMutation) AddedFields() []string {
	var fields []string
	if m.addevidence_tier != nil {
		fields = append(fields, factevaluation.FieldEvidenceTier)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FactEvaluationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case factevaluation.FieldEvidenceTier:
		return m.AddedEvidenceTier()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FactEvaluationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case factevaluation.FieldEvidenceTier:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEvidenceTier(v)
		return nil
	}
	return fmt.Errorf("unknown FactEvaluation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FactEvaluationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(factevaluation.FieldEvidenceText) {
		fields = append(fields, factevaluation.FieldEvidenceText)
	}
	if m.FieldCleared(factevaluation.FieldEvidenceTier) {
		fields = append(fields, factevaluation.FieldEvidenceTier)
	}
	if m.FieldCleared(factevaluation.FieldDataPeriod) {
		fields = append(fields, factevaluation.FieldDataPeriod)
	}
	if m.FieldCleared(factevaluation.FieldEvaluatorNotes) {
		fields = append(fields, factevaluation.FieldEvaluatorNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FactEvaluationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FactEvaluationMutation) ClearField(name string) error {
	switch name {
	case factevaluation.FieldEvidenceText:
		m.ClearEvidenceText()
		return nil
	case factevaluation.FieldEvidenceTier:
		m.ClearEvidenceTier()
		return nil
	case factevaluation.FieldDataPeriod:
		m.ClearDataPeriod()
		return nil
	case factevaluation.FieldEvaluatorNotes:
		m.ClearEvaluatorNotes()
		return nil
	}
	return fmt.Errorf("unknown FactEvaluation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FactEvaluationMutation) ResetField(name string) error {
	switch name {
	case factevaluation.FieldFactID:
		m.ResetFactID()
		return nil
	case factevaluation.FieldResult:
		m.ResetResult()
		return nil
	case factevaluation.FieldEvidenceText:
		m.ResetEvidenceText()
		return nil
	case factevaluation.FieldEvidenceTier:
		m.ResetEvidenceTier()
		return nil
	case factevaluation.FieldDataPeriod:
		m.ResetDataPeriod()
		return nil
	case factevaluation.FieldEvaluatorNotes:
		m.ResetEvaluatorNotes()
		return nil
	case factevaluation.FieldEvaluatedAt:
		m.ResetEvaluatedAt()
		return nil
	}
	return fmt.Errorf("unknown FactEvaluation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FactEvaluationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.fact != nil {
		edges = append(edges, factevaluation.EdgeFact)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FactEvaluationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case factevaluation.EdgeFact:
		if id := m.fact; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FactEvaluationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FactEvaluationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FactEvaluationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfact {
		edges = append(edges, factevaluation.EdgeFact)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FactEvaluationMutation) EdgeCleared(name string) bool {
	switch name {
	case factevaluation.EdgeFact:
		return m.clearedfact
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FactEvaluationMutation) ClearEdge(name string) error {
	switch name {
	case factevaluation.EdgeFact:
		m.ClearFact()
		return nil
	}
	return fmt.Errorf("unknown FactEvaluation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FactEvaluationMutation) ResetEdge(name string) error {
	switch name {
	case factevaluation.EdgeFact:
		m.ResetFact()
		return nil
	}
	return fmt.Errorf("unknown FactEvaluation edge %s", name)
}

// LogicMutation represents an operation that mutates the Logic nodes in the graph.
type LogicMutation struct {
	config
	op                          Op
	typ                         string
	id                          *int
	logic_type                  *logic.LogicType
	supporting_fact_ids         *[]int
	appendsupporting_fact_ids   []int
	assumption_fact_ids         *[]int
	appendassumption_fact_ids   []int
	source_conclusion_ids       *[]int
	appendsource_conclusion_ids []int
	logic_completeness          *logic.LogicCompleteness
	logic_note                  *string
	one_sentence_summary        *string
	assessed_at                 *time.Time
	created_at                  *time.Time
	clearedFields               map[string]struct{}
	conclusion                  *int
	clearedconclusion           bool
	solution                    *int
	clearedsolution             bool
	raw_post                    *int
	clearedraw_post             bool
	outgoing_relations          map[int]struct{}
	removedoutgoing_relations   map[int]struct{}
	clearedoutgoing_relations   bool
	incoming_relations          map[int]struct{}
	removedincoming_relations   map[int]struct{}
	clearedincoming_relations   bool
	done                        bool
	oldValue                    func(context.Context) (*Logic, error)
	predicates                  []predicate.Logic
}

var _ ent.Mutation = (*LogicMutation)(nil)

// logicOption allows management of the mutation configuration using functional options.
type logicOption func(*LogicMutation)

// newLogicMutation creates new mutation for the Logic entity.
func newLogicMutation(c config, op Op, opts ...logicOption) *LogicMutation {
	m := &LogicMutation{
		config:        c,
		op:            op,
		typ:           TypeLogic,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLogicID sets the ID field of the mutation.
func withLogicID(id int) logicOption {
	return func(m *LogicMutation) {
		var (
			err   error
			once  sync.Once
			value *Logic
		)
		m.oldValue = func(ctx context.Context) (*Logic, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Logic.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLogic sets the old Logic of the mutation.
func withLogic(node *Logic) logicOption {
	return func(m *LogicMutation) {
		m.oldValue = func(context.Context) (*Logic, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LogicMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LogicMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LogicMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LogicMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Logic.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLogicType sets the "logic_type" field.
func (m *LogicMutation) SetLogicType(lt logic.LogicType) {
	m.logic_type = &lt
}

// LogicType returns the value of the "logic_type" field in the mutation.
func (m *LogicMutation) LogicType() (r logic.LogicType, exists bool) {
	v := m.logic_type
	if v == nil {
		return
	}
	return *v, true
}

// OldLogicType returns the old "logic_type" field's value of the Logic entity.
// If the Logic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogicMutation) OldLogicType(ctx context.Context) (v logic.LogicType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLogicType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLogicType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLogicType: %w", err)
	}
	return oldValue.LogicType, nil
}

// ResetLogicType resets all changes to the "logic_type" field.
func (m *LogicMutation) ResetLogicType() {
	m.logic_type = nil
}

// SetConclusionID sets the "conclusion_id" field.
func (m *LogicMutation) SetConclusionID(i int) {
	m.conclusion = &i
}

// ConclusionID returns the value of the "conclusion_id" field in the mutation.
func (m *LogicMutation) ConclusionID() (r int, exists bool) {
	v := m.conclusion
	if v == nil {
		return
	}
	return *v, true
}

// OldConclusionID returns the old "conclusion_id" field's value of the Logic entity.
// If the Logic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogicMutation) OldConclusionID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConclusionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConclusionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConclusionID: %w", err)
	}
	return oldValue.ConclusionID, nil
}

// ClearConclusionID clears the value of the "conclusion_id" field.
func (m *LogicMutation) ClearConclusionID() {
	m.conclusion = nil
	m.clearedFields[logic.FieldConclusionID] = struct{}{}
}

// ConclusionIDCleared returns if the "conclusion_id" field was cleared in this mutation.
func (m *LogicMutation) ConclusionIDCleared() bool {
	_, ok := m.clearedFields[logic.FieldConclusionID]
	return ok
}

// ResetConclusionID resets all changes to the "conclusion_id" field.
func (m *LogicMutation) ResetConclusionID() {
	m.conclusion = nil
	delete(m.clearedFields, logic.FieldConclusionID)
}

// SetSolutionID sets the "solution_id" field.
func (m *LogicMutation) SetSolutionID(i int) {
	m.solution = &i
}

// SolutionID returns the value of the "solution_id" field in the mutation.
func (m *LogicMutation) SolutionID() (r int, exists bool) {
	v := m.solution
	if v == nil {
		return
	}
	return *v, true
}

// OldSolutionID returns the old "solution_id" field's value of the Logic entity.
// If the Logic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogicMutation) OldSolutionID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSolutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSolutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSolutionID: %w", err)
	}
	return oldValue.SolutionID, nil
}

// ClearSolutionID clears the value of the "solution_id" field.
func (m *LogicMutation) ClearSolutionID() {
	m.solution = nil
	m.clearedFields[logic.FieldSolutionID] = struct{}{}
}

// SolutionIDCleared returns if the "solution_id" field was cleared in this mutation.
func (m *LogicMutation) SolutionIDCleared() bool {
	_, ok := m.clearedFields[logic.FieldSolutionID]
	return ok
}

// ResetSolutionID resets all changes to the "solution_id" field.
func (m *LogicMutation) ResetSolutionID() {
	m.solution = nil
	delete(m.clearedFields, logic.FieldSolutionID)
}

// SetRawPostID sets the "raw_post_id" field.
func (m *LogicMutation) SetRawPostID(i int) {
	m.raw_post = &i
}

// RawPostID returns the value of the "raw_post_id" field in the mutation.
func (m *LogicMutation) RawPostID() (r int, exists bool) {
	v := m.raw_post
	if v == nil {
		return
	}
	return *v, true
}

// OldRawPostID returns the old "raw_post_id" field's value of the Logic entity.
// If the Logic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogicMutation) OldRawPostID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawPostID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawPostID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawPostID: %w", err)
	}
	return oldValue.RawPostID, nil
}

// ClearRawPostID clears the value of the "raw_post_id" field.
func (m *LogicMutation) ClearRawPostID() {
	m.raw_post = nil
	m.clearedFields[logic.FieldRawPostID] = struct{}{}
}

// RawPostIDCleared returns if the "raw_post_id" field was cleared in this mutation.
func (m *LogicMutation) RawPostIDCleared() bool {
	_, ok := m.clearedFields[logic.FieldRawPostID]
	return ok
}

// ResetRawPostID resets all changes to the "raw_post_id" field.
func (m *LogicMutation) ResetRawPostID() {
	m.raw_post = nil
	delete(m.clearedFields, logic.FieldRawPostID)
}

// SetSupportingFactIds sets the "supporting_fact_ids" field.
func (m *LogicMutation) SetSupportingFactIds(i []int) {
	m.supporting_fact_ids = &i
	m.appendsupporting_fact_ids = nil
}

// SupportingFactIds returns the value of the "supporting_fact_ids" field in the mutation.
func (m *LogicMutation) SupportingFactIds() (r []int, exists bool) {
	v := m.supporting_fact_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldSupportingFactIds returns the old "supporting_fact_ids" field's value of the Logic entity.
// If the Logic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogicMutation) OldSupportingFactIds(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupportingFactIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupportingFactIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupportingFactIds: %w", err)
	}
	return oldValue.SupportingFactIds, nil
}

// AppendSupportingFactIds adds i to the "supporting_fact_ids" field.
func (m *LogicMutation) AppendSupportingFactIds(i []int) {
	m.appendsupporting_fact_ids = append(m.appendsupporting_fact_ids, i...)
}

// AppendedSupportingFactIds returns the list of values that were appended to the "supporting_fact_ids" field in this mutation.
func (m *LogicMutation) AppendedSupportingFactIds() ([]int, bool) {
	if len(m.appendsupporting_fact_ids) == 0 {
		return nil, false
	}
	return m.appendsupporting_fact_ids, true
}

// ClearSupportingFactIds clears the value of the "supporting_fact_ids" field.
func (m *LogicMutation) ClearSupportingFactIds() {
	m.supporting_fact_ids = nil
	m.appendsupporting_fact_ids = nil
	m.clearedFields[logic.FieldSupportingFactIds] = struct{}{}
}

// SupportingFactIdsCleared returns if the "supporting_fact_ids" field was cleared in this mutation.
func (m *LogicMutation) SupportingFactIdsCleared() bool {
	_, ok := m.clearedFields[logic.FieldSupportingFactIds]
	return ok
}

// ResetSupportingFactIds resets all changes to the "supporting_fact_ids" field.
func (m *LogicMutation) ResetSupportingFactIds() {
	m.supporting_fact_ids = nil
	m.appendsupporting_fact_ids = nil
	delete(m.clearedFields, logic.FieldSupportingFactIds)
}

// SetAssumptionFactIds sets the "assumption_fact_ids" field.
func (m *LogicMutation) SetAssumptionFactIds(i []int) {
	m.assumption_fact_ids = &i
	m.appendassumption_fact_ids = nil
}

// AssumptionFactIds returns the value of the "assumption_fact_ids" field in the mutation.
func (m *LogicMutation) AssumptionFactIds() (r []int, exists bool) {
	v := m.assumption_fact_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldAssumptionFactIds returns the old "assumption_fact_ids" field's value of the Logic entity.
// If the Logic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogicMutation) OldAssumptionFactIds(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssumptionFactIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssumptionFactIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssumptionFactIds: %w", err)
	}
	return oldValue.AssumptionFactIds, nil
}

// AppendAssumptionFactIds adds i to the "assumption_fact_ids" field.
func (m *LogicMutation) AppendAssumptionFactIds(i []int) {
	m.appendassumption_fact_ids = append(m.appendassumption_fact_ids, i...)
}

// AppendedAssumptionFactIds returns the list of values that were appended to the "assumption_fact_ids" field in this mutation.
func (m *LogicMutation) AppendedAssumptionFactIds() ([]int, bool) {
	if len(m.appendassumption_fact_ids) == 0 {
		return nil, false
	}
	return m.appendassumption_fact_ids, true
}

// ClearAssumptionFactIds clears the value of the "assumption_fact_ids" field.
func (m *LogicMutation) ClearAssumptionFactIds() {
	m.assumption_fact_ids = nil
	m.appendassumption_fact_ids = nil
	m.clearedFields[logic.FieldAssumptionFactIds] = struct{}{}
}

// AssumptionFactIdsCleared returns if the "assumption_fact_ids" field was cleared in this mutation.
func (m *LogicMutation) AssumptionFactIdsCleared() bool {
	_, ok := m.clearedFields[logic.FieldAssumptionFactIds]
	return ok
}

// ResetAssumptionFactIds resets all changes to the "assumption_fact_ids" field.
func (m *LogicMutation) ResetAssumptionFactIds() {
	m.assumption_fact_ids = nil
	m.appendassumption_fact_ids = nil
	delete(m.clearedFields, logic.FieldAssumptionFactIds)
}

// SetSourceConclusionIds sets the "source_conclusion_ids" field.
func (m *LogicMutation) SetSourceConclusionIds(i []int) {
	m.source_conclusion_ids = &i
	m.appendsource_conclusion_ids = nil
}

// SourceConclusionIds returns the value of the "source_conclusion_ids" field in the mutation.
func (m *LogicMutation) SourceConclusionIds() (r []int, exists bool) {
	v := m.source_conclusion_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceConclusionIds returns the old "source_conclusion_ids" field's value of the Logic entity.
// If the Logic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogicMutation) OldSourceConclusionIds(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceConclusionIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceConclusionIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceConclusionIds: %w", err)
	}
	return oldValue.SourceConclusionIds, nil
}

// AppendSourceConclusionIds adds i to the "source_conclusion_ids" field.
func (m *LogicMutation) AppendSourceConclusionIds(i []int) {
	m.appendsource_conclusion_ids = append(m.appendsource_conclusion_ids, i...)
}

// AppendedSourceConclusionIds returns the list of values that were appended to the "source_conclusion_ids" field in this mutation.
func (m *LogicMutation) AppendedSourceConclusionIds() ([]int, bool) {
	if len(m.appendsource_conclusion_ids) == 0 {
		return nil, false
	}
	return m.appendsource_conclusion_ids, true
}

// ClearSourceConclusionIds clears the value of the "source_conclusion_ids" field.
func (m *LogicMutation) ClearSourceConclusionIds() {
	m.source_conclusion_ids = nil
	m.appendsource_conclusion_ids = nil
	m.clearedFields[logic.FieldSourceConclusionIds] = struct{}{}
}

// SourceConclusionIdsCleared returns if the "source_conclusion_ids" field was cleared in this mutation.
func (m *LogicMutation) SourceConclusionIdsCleared() bool {
	_, ok := m.clearedFields[logic.FieldSourceConclusionIds]
	return ok
}

// ResetSourceConclusionIds resets all changes to the "source_conclusion_ids" field.
func (m *LogicMutation) ResetSourceConclusionIds() {
	m.source_conclusion_ids = nil
	m.appendsource_conclusion_ids = nil
	delete(m.clearedFields, logic.FieldSourceConclusionIds)
}

// SetLogicCompleteness sets the "logic_completeness" field.
func (m *LogicMutation) SetLogicCompleteness(lc logic.LogicCompleteness) {
	m.logic_completeness = &lc
}

// LogicCompleteness returns the value of the "logic_completeness" field in the mutation.
func (m *LogicMutation) LogicCompleteness() (r logic.LogicCompleteness, exists bool) {
	v := m.logic_completeness
	if v == nil {
		return
	}
	return *v, true
}

// OldLogicCompleteness returns the old "logic_completeness" field's value of the Logic entity.
// If the Logic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogicMutation) OldLogicCompleteness(ctx context.Context) (v *logic.LogicCompleteness, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLogicCompleteness is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLogicCompleteness requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLogicCompleteness: %w", err)
	}
	return oldValue.LogicCompleteness, nil
}

// ClearLogicCompleteness clears the value of the "logic_completeness" field.
func (m *LogicMutation) ClearLogicCompleteness() {
	m.logic_completeness = nil
	m.clearedFields[logic.FieldLogicCompleteness] = struct{}{}
}

// LogicCompletenessCleared returns if the "logic_completeness" field was cleared in this mutation.
func (m *LogicMutation) LogicCompletenessCleared() bool {
	_, ok := m.clearedFields[logic.FieldLogicCompleteness]
	return ok
}

// ResetLogicCompleteness resets all changes to the "logic_completeness" field.
func (m *LogicMutation) ResetLogicCompleteness() {
	m.logic_completeness = nil
	delete(m.clearedFields, logic.FieldLogicCompleteness)
}

// SetLogicNote sets the "logic_note" field.
func (m *LogicMutation) SetLogicNote(s string) {
	m.logic_note = &s
}

// LogicNote returns the value of the "logic_note" field in the mutation.
func (m *LogicMutation) LogicNote() (r string, exists bool) {
	v := m.logic_note
	if v == nil {
		return
	}
	return *v, true
}

// OldLogicNote returns the old "logic_note" field's value of the Logic entity.
// If the Logic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogicMutation) OldLogicNote(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLogicNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLogicNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLogicNote: %w", err)
	}
	return oldValue.LogicNote, nil
}

// ClearLogicNote clears the value of the "logic_note" field.
func (m *LogicMutation) ClearLogicNote() {
	m.logic_note = nil
	m.clearedFields[logic.FieldLogicNote] = struct{}{}
}

// LogicNoteCleared returns if the "logic_note" field was cleared in this mutation.
func (m *LogicMutation) LogicNoteCleared() bool {
	_, ok := m.clearedFields[logic.FieldLogicNote]
	return ok
}

// ResetLogicNote resets all changes to the "logic_note" field.
func (m *LogicMutation) ResetLogicNote() {
	m.logic_note = nil
	delete(m.clearedFields, logic.FieldLogicNote)
}

// SetOneSentenceSummary sets the "one_sentence_summary" field.
func (m *LogicMutation) SetOneSentenceSummary(s string) {
	m.one_sentence_summary = &s
}

// OneSentenceSummary returns the value of the "one_sentence_summary" field in the mutation.
func (m *LogicMutation) OneSentenceSummary() (r string, exists bool) {
	v := m.one_sentence_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldOneSentenceSummary returns the old "one_sentence_summary" field's value of the Logic entity.
// If the Logic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogicMutation) OldOneSentenceSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOneSentenceSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOneSentenceSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOneSentenceSummary: %w", err)
	}
	return oldValue.OneSentenceSummary, nil
}

// ClearOneSentenceSummary clears the value of the "one_sentence_summary" field.
func (m *LogicMutation) ClearOneSentenceSummary() {
	m.one_sentence_summary = nil
	m.clearedFields[logic.FieldOneSentenceSummary] = struct{}{}
}

// OneSentenceSummaryCleared returns if the "one_sentence_summary" field was cleared in this mutation.
func (m *LogicMutation) OneSentenceSummaryCleared() bool {
	_, ok := m.clearedFields[logic.FieldOneSentenceSummary]
	return ok
}

// ResetOneSentenceSummary resets all changes to the "one_sentence_summary" field.
func (m *LogicMutation) ResetOneSentenceSummary() {
	m.one_sentence_summary = nil
	delete(m.clearedFields, logic.FieldOneSentenceSummary)
}

// SetAssessedAt sets the "assessed_at" field.
func (m *LogicMutation) SetAssessedAt(t time.Time) {
	m.assessed_at = &t
}

// AssessedAt returns the value of the "assessed_at" field in the mutation.
func (m *LogicMutation) AssessedAt() (r time.Time, exists bool) {
	v := m.assessed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessedAt returns the old "assessed_at" field's value of the Logic entity.
// If the Logic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogicMutation) OldAssessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessedAt: %w", err)
	}
	return oldValue.AssessedAt, nil
}

// ClearAssessedAt clears the value of the "assessed_at" field.
func (m *LogicMutation) ClearAssessedAt() {
	m.assessed_at = nil
	m.clearedFields[logic.FieldAssessedAt] = struct{}{}
}

// AssessedAtCleared returns if the "assessed_at" field was cleared in this mutation.
func (m *LogicMutation) AssessedAtCleared() bool {
	_, ok := m.clearedFields[logic.FieldAssessedAt]
	return ok
}

// ResetAssessedAt resets all changes to the "assessed_at" field.
func (m *LogicMutation) ResetAssessedAt() {
	m.assessed_at = nil
	delete(m.clearedFields, logic.FieldAssessedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *LogicMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LogicMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Logic entity.
// If the Logic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogicMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LogicMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearConclusion clears the "conclusion" edge to the Conclusion entity.
func (m *LogicMutation) ClearConclusion() {
	m.clearedconclusion = true
	m.clearedFields[logic.FieldConclusionID] = struct{}{}
}

// ConclusionCleared reports if the "conclusion" edge to the Conclusion entity was cleared.
func (m *LogicMutation) ConclusionCleared() bool {
	return m.ConclusionIDCleared() || m.clearedconclusion
}

// ConclusionIDs returns the "conclusion" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConclusionID instead. It exists only for internal usage by the builders.
func (m *LogicMutation) ConclusionIDs() (ids []int) {
	if id := m.conclusion; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConclusion resets all changes to the "conclusion" edge.
func (m *LogicMutation) ResetConclusion() {
	m.conclusion = nil
	m.clearedconclusion = false
}

// ClearSolution clears the "solution" edge to the Solution entity.
func (m *LogicMutation) ClearSolution() {
	m.clearedsolution = true
	m.clearedFields[logic.FieldSolutionID] = struct{}{}
}

// SolutionCleared reports if the "solution" edge to the Solution entity was cleared.
func (m *LogicMutation) SolutionCleared() bool {
	return m.SolutionIDCleared() || m.clearedsolution
}

// SolutionIDs returns the "solution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SolutionID instead. It exists only for internal usage by the builders.
func (m *LogicMutation) SolutionIDs() (ids []int) {
	if id := m.solution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSolution resets all changes to the "solution" edge.
func (m *LogicMutation) ResetSolution() {
	m.solution = nil
	m.clearedsolution = false
}

// ClearRawPost clears the "raw_post" edge to the RawPost entity.
func (m *LogicMutation) ClearRawPost() {
	m.clearedraw_post = true
	m.clearedFields[logic.FieldRawPostID] = struct{}{}
}

// RawPostCleared reports if the "raw_post" edge to the RawPost entity was cleared.
func (m *LogicMutation) RawPostCleared() bool {
	return m.RawPostIDCleared() || m.clearedraw_post
}

// RawPostIDs returns the "raw_post" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RawPostID instead. It exists only for internal usage by the builders.
func (m *LogicMutation) RawPostIDs() (ids []int) {
	if id := m.raw_post; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRawPost resets all changes to the "raw_post" edge.
func (m *LogicMutation) ResetRawPost() {
	m.raw_post = nil
	m.clearedraw_post = false
}

// AddOutgoingRelationIDs adds the "outgoing_relations" edge to the LogicRelation entity by ids.
func (m *LogicMutation) AddOutgoingRelationIDs(ids ...int) {
	if m.outgoing_relations == nil {
		m.outgoing_relations = make(map[int]struct{})
	}
	for i := range ids {
		m.outgoing_relations[ids[i]] = struct{}{}
	}
}

// ClearOutgoingRelations clears the "outgoing_relations" edge to the LogicRelation entity.
func (m *LogicMutation) ClearOutgoingRelations() {
	m.clearedoutgoing_relations = true
}

// OutgoingRelationsCleared reports if the "outgoing_relations" edge to the LogicRelation entity was cleared.
func (m *LogicMutation) OutgoingRelationsCleared() bool {
	return m.clearedoutgoing_relations
}

// RemoveOutgoingRelationIDs removes the "outgoing_relations" edge to the LogicRelation entity by IDs.
func (m *LogicMutation) RemoveOutgoingRelationIDs(ids ...int) {
	if m.removedoutgoing_relations == nil {
		m.removedoutgoing_relations = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.outgoing_relations, ids[i])
		m.removedoutgoing_relations[ids[i]] = struct{}{}
	}
}

// RemovedOutgoingRelations returns the removed IDs of the "outgoing_relations" edge to the LogicRelation entity.
func (m *LogicMutation) RemovedOutgoingRelationsIDs() (ids []int) {
	for id := range m.removedoutgoing_relations {
		ids = append(ids, id)
	}
	return
}

// OutgoingRelationsIDs returns the "outgoing_relations" edge IDs in the mutation.
func (m *LogicMutation) OutgoingRelationsIDs() (ids []int) {
	for id := range m.outgoing_relations {
		ids = append(ids, id)
	}
	return
}

// ResetOutgoingRelations resets all changes to the "outgoing_relations" edge.
func (m *LogicMutation) ResetOutgoingRelations() {
	m.outgoing_relations = nil
	m.clearedoutgoing_relations = false
	m.removedoutgoing_relations = nil
}

// AddIncomingRelationIDs adds the "incoming_relations" edge to the LogicRelation entity by ids.
func (m *LogicMutation) AddIncomingRelationIDs(ids ...int) {
	if m.incoming_relations == nil {
		m.incoming_relations = make(map[int]struct{})
	}
	for i := range ids {
		m.incoming_relations[ids[i]] = struct{}{}
	}
}

// ClearIncomingRelations clears the "incoming_relations" edge to the LogicRelation entity.
func (m *LogicMutation) ClearIncomingRelations() {
	m.clearedincoming_relations = true
}

// IncomingRelationsCleared reports if the "incoming_relations" edge to the LogicRelation entity was cleared.
func (m *LogicMutation) IncomingRelationsCleared() bool {
	return m.clearedincoming_relations
}

// RemoveIncomingRelationIDs removes the "incoming_relations" edge to the LogicRelation entity by IDs.
func (m *LogicMutation) RemoveIncomingRelationIDs(ids ...int) {
	if m.removedincoming_relations == nil {
		m.removedincoming_relations = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.incoming_relations, ids[i])
		m.removedincoming_relations[ids[i]] = struct{}{}
	}
}

// RemovedIncomingRelations returns the removed IDs of the "incoming_relations" edge to the LogicRelation entity.
func (m *LogicMutation) RemovedIncomingRelationsIDs() (ids []int) {
	for id := range m.removedincoming_relations {
		ids = append(ids, id)
	}
	return
}

// IncomingRelationsIDs returns the "incoming_relations" edge IDs in the mutation.
func (m *LogicMutation) IncomingRelationsIDs() (ids []int) {
	for id := range m.incoming_relations {
		ids = append(ids, id)
	}
	return
}

// ResetIncomingRelations resets all changes to the "incoming_relations" edge.
func (m *LogicMutation) ResetIncomingRelations() {
	m.incoming_relations = nil
	m.clearedincoming_relations = false
	m.removedincoming_relations = nil
}

// Where appends a list predicates to the LogicMutation builder.
func (m *LogicMutation) Where(ps ...predicate.Logic) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LogicMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LogicMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Logic, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LogicMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LogicMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Logic).
func (m *LogicMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LogicMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.logic_type != nil {
		fields = append(fields, logic.FieldLogicType)
	}
	if m.conclusion != nil {
		fields = append(fields, logic.FieldConclusionID)
	}
	if m.solution != nil {
		fields = append(fields, logic.FieldSolutionID)
	}
	if m.raw_post != nil {
		fields = append(fields, logic.FieldRawPostID)
	}
	if m.supporting_fact_ids != nil {
		fields = append(fields, logic.FieldSupportingFactIds)
	}
	if m.assumption_fact_ids != nil {
		fields = append(fields, logic.FieldAssumptionFactIds)
	}
	if m.source_conclusion_ids != nil {
		fields = append(fields, logic.FieldSourceConclusionIds)
	}
	if m.logic_completeness != nil {
		fields = append(fields, logic.FieldLogicCompleteness)
	}
	if m.logic_note != nil {
		fields = append(fields, logic.FieldLogicNote)
	}
	if m.one_sentence_summary != nil {
		fields = append(fields, logic.FieldOneSentenceSummary)
	}
	if m.assessed_at != nil {
		fields = append(fields, logic.FieldAssessedAt)
	}
	if m.created_at != nil {
		fields = append(fields, logic.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LogicMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case logic.FieldLogicType:
		return m.LogicType()
	case logic.FieldConclusionID:
		return m.ConclusionID()
	case logic.FieldSolutionID:
		return m.SolutionID()
	case logic.FieldRawPostID:
		return m.RawPostID()
	case logic.FieldSupportingFactIds:
		return m.SupportingFactIds()
	case logic.FieldAssumptionFactIds:
		return m.AssumptionFactIds()
	case logic.FieldSourceConclusionIds:
		return m.SourceConclusionIds()
	case logic.FieldLogicCompleteness:
		return m.LogicCompleteness()
	case logic.FieldLogicNote:
		return m.LogicNote()
	case logic.FieldOneSentenceSummary:
		return m.OneSentenceSummary()
	case logic.FieldAssessedAt:
		return m.AssessedAt()
	case logic.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LogicMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case logic.FieldLogicType:
		return m.OldLogicType(ctx)
	case logic.FieldConclusionID:
		return m.OldConclusionID(ctx)
	case logic.FieldSolutionID:
		return m.OldSolutionID(ctx)
	case logic.FieldRawPostID:
		return m.OldRawPostID(ctx)
	case logic.FieldSupportingFactIds:
		return m.OldSupportingFactIds(ctx)
	case logic.FieldAssumptionFactIds:
		return m.OldAssumptionFactIds(ctx)
	case logic.FieldSourceConclusionIds:
		return m.OldSourceConclusionIds(ctx)
	case logic.FieldLogicCompleteness:
		return m.OldLogicCompleteness(ctx)
	case logic.FieldLogicNote:
		return m.OldLogicNote(ctx)
	case logic.FieldOneSentenceSummary:
		return m.OldOneSentenceSummary(ctx)
	case logic.FieldAssessedAt:
		return m.OldAssessedAt(ctx)
	case logic.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Logic field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LogicMutation) SetField(name string, value ent.Value) error {
	switch name {
	case logic.FieldLogicType:
		v, ok := value.(logic.LogicType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLogicType(v)
		return nil
	case logic.FieldConclusionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConclusionID(v)
		return nil
	case logic.FieldSolutionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSolutionID(v)
		return nil
	case logic.FieldRawPostID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawPostID(v)
		return nil
	case logic.FieldSupportingFactIds:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupportingFactIds(v)
		return nil
	case logic.FieldAssumptionFactIds:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssumptionFactIds(v)
		return nil
	case logic.FieldSourceConclusionIds:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceConclusionIds(v)
		return nil
	case logic.FieldLogicCompleteness:
		v, ok := value.(logic.LogicCompleteness)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLogicCompleteness(v)
		return nil
	case logic.FieldLogicNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLogicNote(v)
		return nil
	case logic.FieldOneSentenceSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOneSentenceSummary(v)
		return nil
	case logic.FieldAssessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessedAt(v)
		return nil
	case logic.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Logic field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LogicMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LogicMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LogicMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Logic numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LogicMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(logic.FieldConclusionID) {
		fields = append(fields, logic.FieldConclusionID)
	}
	if m.FieldCleared(logic.FieldSolutionID) {
		fields = append(fields, logic.FieldSolutionID)
	}
	if m.FieldCleared(logic.FieldRawPostID) {
		fields = append(fields, logic.FieldRawPostID)
	}
	if m.FieldCleared(logic.FieldSupportingFactIds) {
		fields = append(fields, logic.FieldSupportingFactIds)
	}
	if m.FieldCleared(logic.FieldAssumptionFactIds) {
		fields = append(fields, logic.FieldAssumptionFactIds)
	}
	if m.FieldCleared(logic.FieldSourceConclusionIds) {
		fields = append(fields, logic.FieldSourceConclusionIds)
	}
	if m.FieldCleared(logic.FieldLogicCompleteness) {
		fields = append(fields, logic.FieldLogicCompleteness)
	}
	if m.FieldCleared(logic.FieldLogicNote) {
		fields = append(fields, logic.FieldLogicNote)
	}
	if m.FieldCleared(logic.FieldOneSentenceSummary) {
		fields = append(fields, logic.FieldOneSentenceSummary)
	}
	if m.FieldCleared(logic.FieldAssessedAt) {
		fields = append(fields, logic.FieldAssessedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LogicMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LogicMutation) ClearField(name string) error {
	switch name {
	case logic.FieldConclusionID:
		m.ClearConclusionID()
		return nil
	case logic.FieldSolutionID:
		m.ClearSolutionID()
		return nil
	case logic.FieldRawPostID:
		m.ClearRawPostID()
		return nil
	case logic.FieldSupportingFactIds:
		m.ClearSupportingFactIds()
		return nil
	case logic.FieldAssumptionFactIds:
		m.ClearAssumptionFactIds()
		return nil
	case logic.FieldSourceConclusionIds:
		m.ClearSourceConclusionIds()
		return nil
	case logic.FieldLogicCompleteness:
		m.ClearLogicCompleteness()
		return nil
	case logic.FieldLogicNote:
		m.ClearLogicNote()
		return nil
	case logic.FieldOneSentenceSummary:
		m.ClearOneSentenceSummary()
		return nil
	case logic.FieldAssessedAt:
		m.ClearAssessedAt()
		return nil
	}
	return fmt.Errorf("unknown Logic nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LogicMutation) ResetField(name string) error {
	switch name {
	case logic.FieldLogicType:
		m.ResetLogicType()
		return nil
	case logic.FieldConclusionID:
		m.ResetConclusionID()
		return nil
	case logic.FieldSolutionID:
		m.ResetSolutionID()
		return nil
	case logic.FieldRawPostID:
		m.ResetRawPostID()
		return nil
	case logic.FieldSupportingFactIds:
		m.ResetSupportingFactIds()
		return nil
	case logic.FieldAssumptionFactIds:
		m.ResetAssumptionFactIds()
		return nil
	case logic.FieldSourceConclusionIds:
		m.ResetSourceConclusionIds()
		return nil
	case logic.FieldLogicCompleteness:
		m.ResetLogicCompleteness()
		return nil
	case logic.FieldLogicNote:
		m.ResetLogicNote()
		return nil
	case logic.FieldOneSentenceSummary:
		m.ResetOneSentenceSummary()
		return nil
	case logic.FieldAssessedAt:
		m.ResetAssessedAt()
		return nil
	case logic.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Logic field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LogicMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.conclusion != nil {
		edges = append(edges, logic.EdgeConclusion)
	}
	if m.solution != nil {
		edges = append(edges, logic.EdgeSolution)
	}
	if m.raw_post != nil {
		edges = append(edges, logic.EdgeRawPost)
	}
	if m.outgoing_relations != nil {
		edges = append(edges, logic.EdgeOutgoingRelations)
	}
	if m.incoming_relations != nil {
		edges = append(edges, logic.EdgeIncomingRelations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LogicMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case logic.EdgeConclusion:
		if id := m.conclusion; id != nil {
			return []ent.Value{*id}
		}
	case logic.EdgeSolution:
		if id := m.solution; id != nil {
			return []ent.Value{*id}
		}
	case logic.EdgeRawPost:
		if id := m.raw_post; id != nil {
			return []ent.Value{*id}
		}
	case logic.EdgeOutgoingRelations:
		ids := make([]ent.Value, 0, len(m.outgoing_relations))
		for id := range m.outgoing_relations {
			ids = append(ids, id)
		}
		return ids
	case logic.EdgeIncomingRelations:
		ids := make([]ent.Value, 0, len(m.incoming_relations))
		for id := range m.incoming_relations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LogicMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedoutgoing_relations != nil {
		edges = append(edges, logic.EdgeOutgoingRelations)
	}
	if m.removedincoming_relations != nil {
		edges = append(edges, logic.EdgeIncomingRelations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LogicMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case logic.EdgeOutgoingRelations:
		ids := make([]ent.Value, 0, len(m.removedoutgoing_relations))
		for id := range m.removedoutgoing_relations {
			ids = append(ids, id)
		}
		return ids
	case logic.EdgeIncomingRelations:
		ids := make([]ent.Value, 0, len(m.removedincoming_relations))
		for id := range m.removedincoming_relations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LogicMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedconclusion {
		edges = append(edges, logic.EdgeConclusion)
	}
	if m.clearedsolution {
		edges = append(edges, logic.EdgeSolution)
	}
	if m.clearedraw_post {
		edges = append(edges, logic.EdgeRawPost)
	}
	if m.clearedoutgoing_relations {
		edges = append(edges, logic.EdgeOutgoingRelations)
	}
	if m.clearedincoming_relations {
		edges = append(edges, logic.EdgeIncomingRelations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LogicMutation) EdgeCleared(name string) bool {
	switch name {
	case logic.EdgeConclusion:
		return m.clearedconclusion
	case logic.EdgeSolution:
		return m.clearedsolution
	case logic.EdgeRawPost:
		return m.clearedraw_post
	case logic.EdgeOutgoingRelations:
		return m.clearedoutgoing_relations
	case logic.EdgeIncomingRelations:
		return m.clearedincoming_relations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LogicMutation) ClearEdge(name string) error {
	switch name {
	case logic.EdgeConclusion:
		m.ClearConclusion()
		return nil
	case logic.EdgeSolution:
		m.ClearSolution()
		return nil
	case logic.EdgeRawPost:
		m.ClearRawPost()
		return nil
	}
	return fmt.Errorf("unknown Logic unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LogicMutation) ResetEdge(name string) error {
	switch name {
	case logic.EdgeConclusion:
		m.ResetConclusion()
		return nil
	case logic.EdgeSolution:
		m.ResetSolution()
		return nil
	case logic.EdgeRawPost:
		m.ResetRawPost()
		return nil
	case logic.EdgeOutgoingRelations:
		m.ResetOutgoingRelations()
		return nil
	case logic.EdgeIncomingRelations:
		m.ResetIncomingRelations()
		return nil
	}
	return fmt.Errorf("unknown Logic edge %s", name)
}

// LogicRelationMutation represents an operation that mutates the LogicRelation nodes in the graph.
type LogicRelationMutation struct {
	config
	op                Op
	typ               string
	id                *int
	relation_type     *logicrelation.RelationType
	note              *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	from_logic        *int
	clearedfrom_logic bool
	to_logic          *int
	clearedto_logic   bool
	done              bool
	oldValue          func(context.Context) (*LogicRelation, error)
	predicates        []predicate.LogicRelation
}

var _ ent.Mutation = (*LogicRelationMutation)(nil)

// logicrelationOption allows management of the mutation configuration using functional options.
type logicrelationOption func(*LogicRelationMutation)

// newLogicRelationMutation creates new mutation for the LogicRelation entity.
func newLogicRelationMutation(c config, op Op, opts ...logicrelationOption) *LogicRelationMutation {
	m := &LogicRelationMutation{
		config:        c,
		op:            op,
		typ:           TypeLogicRelation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLogicRelationID sets the ID field of the mutation.
func withLogicRelationID(id int) logicrelationOption {
	return func(m *LogicRelationMutation) {
		var (
			err   error
			once  sync.Once
			value *LogicRelation
		)
		m.oldValue = func(ctx context.Context) (*LogicRelation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LogicRelation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLogicRelation sets the old LogicRelation of the mutation.
func withLogicRelation(node *LogicRelation) logicrelationOption {
	return func(m *LogicRelationMutation) {
		m.oldValue = func(context.Context) (*LogicRelation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LogicRelationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LogicRelationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LogicRelationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LogicRelationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LogicRelation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFromLogicID sets the "from_logic_id" field.
func (m *LogicRelationMutation) SetFromLogicID(i int) {
	m.from_logic = &i
}

// FromLogicID returns the value of the "from_logic_id" field in the mutation.
func (m *LogicRelationMutation) FromLogicID() (r int, exists bool) {
	v := m.from_logic
	if v == nil {
		return
	}
	return *v, true
}

// OldFromLogicID returns the old "from_logic_id" field's value of the LogicRelation entity.
// If the LogicRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogicRelationMutation) OldFromLogicID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromLogicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromLogicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromLogicID: %w", err)
	}
	return oldValue.FromLogicID, nil
}

// ResetFromLogicID resets all changes to the "from_logic_id" field.
func (m *LogicRelationMutation) ResetFromLogicID() {
	m.from_logic = nil
}

// SetToLogicID sets the "to_logic_id" field.
func (m *LogicRelationMutation) SetToLogicID(i int) {
	m.to_logic = &i
}

// ToLogicID returns the value of the "to_logic_id" field in the mutation.
func (m *LogicRelationMutation) ToLogicID() (r int, exists bool) {
	v := m.to_logic
	if v == nil {
		return
	}
	return *v, true
}

// OldToLogicID returns the old "to_logic_id" field's value of the LogicRelation entity.
// If the LogicRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogicRelationMutation) OldToLogicID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToLogicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToLogicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToLogicID: %w", err)
	}
	return oldValue.ToLogicID, nil
}

// ResetToLogicID resets all changes to the "to_logic_id" field.
func (m *LogicRelationMutation) ResetToLogicID() {
	m.to_logic = nil
}

// SetRelationType sets the "relation_type" field.
func (m *LogicRelationMutation) SetRelationType(lt logicrelation.RelationType) {
	m.relation_type = &lt
}

// RelationType returns the value of the "relation_type" field in the mutation.
func (m *LogicRelationMutation) RelationType() (r logicrelation.RelationType, exists bool) {
	v := m.relation_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRelationType returns the old "relation_type" field's value of the LogicRelation entity.
// If the LogicRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogicRelationMutation) OldRelationType(ctx context.Context) (v logicrelation.RelationType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelationType: %w", err)
	}
	return oldValue.RelationType, nil
}

// ResetRelationType resets all changes to the "relation_type" field.
func (m *LogicRelationMutation) ResetRelationType() {
	m.relation_type = nil
}

// SetNote sets the "note" field.
func (m *LogicRelationMutation) SetNote(s string) {
	m.note = &s
}

// Note returns the value of the "note" field in the mutation.
func (m *LogicRelationMutation) Note() (r string, exists bool) {
	v := m.note
	if v == nil {
		return
	}
	return *v, true
}

// OldNote returns the old "note" field's value of the LogicRelation entity.
// If the LogicRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogicRelationMutation) OldNote(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNote: %w", err)
	}
	return oldValue.Note, nil
}

// ClearNote clears the value of the "note" field.
func (m *LogicRelationMutation) ClearNote() {
	m.note = nil
	m.clearedFields[logicrelation.FieldNote] = struct{}{}
}

// NoteCleared returns if the "note" field was cleared in this mutation.
func (m *LogicRelationMutation) NoteCleared() bool {
	_, ok := m.clearedFields[logicrelation.FieldNote]
	return ok
}

// ResetNote resets all changes to the "note" field.
func (m *LogicRelationMutation) ResetNote() {
	m.note = nil
	delete(m.clearedFields, logicrelation.FieldNote)
}

// SetCreatedAt sets the "created_at" field.
func (m *LogicRelationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LogicRelationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LogicRelation entity.
// If the LogicRelation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogicRelationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LogicRelationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearFromLogic clears the "from_logic" edge to the Logic entity.
func (m *LogicRelationMutation) ClearFromLogic() {
	m.clearedfrom_logic = true
	m.clearedFields[logicrelation.FieldFromLogicID] = struct{}{}
}

// FromLogicCleared reports if the "from_logic" edge to the Logic entity was cleared.
func (m *LogicRelationMutation) FromLogicCleared() bool {
	return m.clearedfrom_logic
}

// FromLogicIDs returns the "from_logic" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FromLogicID instead. It exists only for internal usage by the builders.
func (m *LogicRelationMutation) FromLogicIDs() (ids []int) {
	if id := m.from_logic; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFromLogic resets all changes to the "from_logic" edge.
func (m *LogicRelationMutation) ResetFromLogic() {
	m.from_logic = nil
	m.clearedfrom_logic = false
}

// ClearToLogic clears the "to_logic" edge to the Logic entity.
func (m *LogicRelationMutation) ClearToLogic() {
	m.clearedto_logic = true
	m.clearedFields[logicrelation.FieldToLogicID] = struct{}{}
}

// ToLogicCleared reports if the "to_logic" edge to the Logic entity was cleared.
func (m *LogicRelationMutation) ToLogicCleared() bool {
	return m.clearedto_logic
}

// ToLogicIDs returns the "to_logic" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ToLogicID instead. It exists only for internal usage by the builders.
func (m *LogicRelationMutation) ToLogicIDs() (ids []int) {
	if id := m.to_logic; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetToLogic resets all changes to the "to_logic" edge.
func (m *LogicRelationMutation) ResetToLogic() {
	m.to_logic = nil
	m.clearedto_logic = false
}

// Where appends a list predicates to the LogicRelationMutation builder.
func (m *LogicRelationMutation) Where(ps ...predicate.LogicRelation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LogicRelationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LogicRelationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LogicRelation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LogicRelationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LogicRelationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LogicRelation).
func (m *LogicRelationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LogicRelationMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.from_logic != nil {
		fields = append(fields, logicrelation.FieldFromLogicID)
	}
	if m.to_logic != nil {
		fields = append(fields, logicrelation.FieldToLogicID)
	}
	if m.relation_type != nil {
		fields = append(fields, logicrelation.FieldRelationType)
	}
	if m.note != nil {
		fields = append(fields, logicrelation.FieldNote)
	}
	if m.created_at != nil {
		fields = append(fields, logicrelation.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LogicRelationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case logicrelation.FieldFromLogicID:
		return m.FromLogicID()
	case logicrelation.FieldToLogicID:
		return m.ToLogicID()
	case logicrelation.FieldRelationType:
		return m.RelationType()
	case logicrelation.FieldNote:
		return m.Note()
	case logicrelation.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LogicRelationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case logicrelation.FieldFromLogicID:
		return m.OldFromLogicID(ctx)
	case logicrelation.FieldToLogicID:
		return m.OldToLogicID(ctx)
	case logicrelation.FieldRelationType:
		return m.OldRelationType(ctx)
	case logicrelation.FieldNote:
		return m.OldNote(ctx)
	case logicrelation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LogicRelation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LogicRelationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case logicrelation.FieldFromLogicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromLogicID(v)
		return nil
	case logicrelation.FieldToLogicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToLogicID(v)
		return nil
	case logicrelation.FieldRelationType:
		v, ok := value.(logicrelation.RelationType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelationType(v)
		return nil
	case logicrelation.FieldNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNote(v)
		return nil
	case logicrelation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LogicRelation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LogicRelationMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LogicRelationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LogicRelationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown LogicRelation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LogicRelationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(logicrelation.FieldNote) {
		fields = append(fields, logicrelation.FieldNote)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LogicRelationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LogicRelationMutation) ClearField(name string) error {
	switch name {
	case logicrelation.FieldNote:
		m.ClearNote()
		return nil
	}
	return fmt.Errorf("unknown LogicRelation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LogicRelationMutation) ResetField(name string) error {
	switch name {
	case logicrelation.FieldFromLogicID:
		m.ResetFromLogicID()
		return nil
	case logicrelation.FieldToLogicID:
		m.ResetToLogicID()
		return nil
	case logicrelation.FieldRelationType:
		m.ResetRelationType()
		return nil
	case logicrelation.FieldNote:
		m.ResetNote()
		return nil
	case logicrelation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LogicRelation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LogicRelationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.from_logic != nil {
		edges = append(edges, logicrelation.EdgeFromLogic)
	}
	if m.to_logic != nil {
		edges = append(edges, logicrelation.EdgeToLogic)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LogicRelationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case logicrelation.EdgeFromLogic:
		if id := m.from_logic; id != nil {
			return []ent.Value{*id}
		}
	case logicrelation.EdgeToLogic:
		if id := m.to_logic; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LogicRelationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LogicRelationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LogicRelationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfrom_logic {
		edges = append(edges, logicrelation.EdgeFromLogic)
	}
	if m.clearedto_logic {
		edges = append(edges, logicrelation.EdgeToLogic)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LogicRelationMutation) EdgeCleared(name string) bool {
	switch name {
	case logicrelation.EdgeFromLogic:
		return m.clearedfrom_logic
	case logicrelation.EdgeToLogic:
		return m.clearedto_logic
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LogicRelationMutation) ClearEdge(name string) error {
	switch name {
	case logicrelation.EdgeFromLogic:
		m.ClearFromLogic()
		return nil
	case logicrelation.EdgeToLogic:
		m.ClearToLogic()
		return nil
	}
	return fmt.Errorf("unknown LogicRelation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LogicRelationMutation) ResetEdge(name string) error {
	switch name {
	case logicrelation.EdgeFromLogic:
		m.ResetFromLogic()
		return nil
	case logicrelation.EdgeToLogic:
		m.ResetToLogic()
		return nil
	}
	return fmt.Errorf("unknown LogicRelation edge %s", name)
}

// MonitoredSourceMutation represents an operation that mutates the MonitoredSource nodes in the graph.
type MonitoredSourceMutation struct {
	config
	op                        Op
	typ                       string
	id                        *int
	url                       *string
	source_type               *monitoredsource.SourceType
	platform                  *string
	platform_id               *string
	is_active                 *bool
	fetch_interval_minutes    *int
	addfetch_interval_minutes *int
	last_fetched_at           *time.Time
	history_fetched           *bool
	created_at                *time.Time
	clearedFields             map[string]struct{}
	author                    *int
	clearedauthor             bool
	raw_posts                 map[int]struct{}
	removedraw_posts          map[int]struct{}
	clearedraw_posts          bool
	done                      bool
	oldValue                  func(context.Context) (*MonitoredSource, error)
	predicates                []predicate.MonitoredSource
}

var _ ent.Mutation = (*MonitoredSourceMutation)(nil)

// monitoredsourceOption allows management of the mutation configuration using functional options.
type monitoredsourceOption func(*MonitoredSourceMutation)

// newMonitoredSourceMutation creates new mutation for the MonitoredSource entity.
func newMonitoredSourceMutation(c config, op Op, opts ...monitoredsourceOption) *MonitoredSourceMutation {
	m := &MonitoredSourceMutation{
		config:        c,
		op:            op,
		typ:           TypeMonitoredSource,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMonitoredSourceID sets the ID field of the mutation.
func withMonitoredSourceID(id int) monitoredsourceOption {
	return func(m *MonitoredSourceMutation) {
		var (
			err   error
			once  sync.Once
			value *MonitoredSource
		)
		m.oldValue = func(ctx context.Context) (*MonitoredSource, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MonitoredSource.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMonitoredSource sets the old MonitoredSource of the mutation.
func withMonitoredSource(node *MonitoredSource) monitoredsourceOption {
	return func(m *MonitoredSourceMutation) {
		m.oldValue = func(context.Context) (*MonitoredSource, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MonitoredSourceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MonitoredSourceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MonitoredSourceMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MonitoredSourceMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MonitoredSource.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetURL sets the "url" field.
func (m *MonitoredSourceMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *MonitoredSourceMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the MonitoredSource entity.
// If the MonitoredSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoredSourceMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *MonitoredSourceMutation) ResetURL() {
	m.url = nil
}

// SetSourceType sets the "source_type" field.
func (m *MonitoredSourceMutation) SetSourceType(mt monitoredsource.SourceType) {
	m.source_type = &mt
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *MonitoredSourceMutation) SourceType() (r monitoredsource.SourceType, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the MonitoredSource entity.
// If the MonitoredSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoredSourceMutation) OldSourceType(ctx context.Context) (v monitoredsource.SourceType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *MonitoredSourceMutation) ResetSourceType() {
	m.source_type = nil
}

// SetPlatform sets the "platform" field.
func (m *MonitoredSourceMutation) SetPlatform(s string) {
	m.platform = &s
}

// Platform returns the value of the "platform" field in the mutation.
func (m *MonitoredSourceMutation) Platform() (r string, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the MonitoredSource entity.
// If the MonitoredSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoredSourceMutation) OldPlatform(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ResetPlatform resets all changes to the "platform" field.
func (m *MonitoredSourceMutation) ResetPlatform() {
	m.platform = nil
}

// SetPlatformID sets the "platform_id" field.
func (m *MonitoredSourceMutation) SetPlatformID(s string) {
	m.platform_id = &s
}

// PlatformID returns the value of the "platform_id" field in the mutation.
func (m *MonitoredSourceMutation) PlatformID() (r string, exists bool) {
	v := m.platform_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatformID returns the old "platform_id" field's value of the MonitoredSource entity.
// If the MonitoredSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoredSourceMutation) OldPlatformID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatformID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatformID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatformID: %w", err)
	}
	return oldValue.PlatformID, nil
}

// ResetPlatformID resets all changes to the "platform_id" field.
func (m *MonitoredSourceMutation) ResetPlatformID() {
	m.platform_id = nil
}

// SetAuthorID sets the "author_id" field.
func (m *MonitoredSourceMutation) SetAuthorID(i int) {
	m.author = &i
}

// AuthorID returns the value of the "author_id" field in the mutation.
func (m *MonitoredSourceMutation) AuthorID() (r int, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorID returns the old "author_id" field's value of the MonitoredSource entity.
// If the MonitoredSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoredSourceMutation) OldAuthorID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorID: %w", err)
	}
	return oldValue.AuthorID, nil
}

// ClearAuthorID clears the value of the "author_id" field.
func (m *MonitoredSourceMutation) ClearAuthorID() {
	m.author = nil
	m.clearedFields[monitoredsource.FieldAuthorID] = struct{}{}
}

// AuthorIDCleared returns if the "author_id" field was cleared in this mutation.
func (m *MonitoredSourceMutation) AuthorIDCleared() bool {
	_, ok := m.clearedFields[monitoredsource.FieldAuthorID]
	return ok
}

// ResetAuthorID resets all changes to the "author_id" field.
func (m *MonitoredSourceMutation) ResetAuthorID() {
	m.author = nil
	delete(m.clearedFields, monitoredsource.FieldAuthorID)
}

// SetIsActive sets the "is_active" field.
func (m *MonitoredSourceMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *MonitoredSourceMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the MonitoredSource entity.
// If the MonitoredSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoredSourceMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *MonitoredSourceMutation) ResetIsActive() {
	m.is_active = nil
}

// SetFetchIntervalMinutes sets the "fetch_interval_minutes" field.
func (m *MonitoredSourceMutation) SetFetchIntervalMinutes(i int) {
	m.fetch_interval_minutes = &i
	m.addfetch_interval_minutes = nil
}

// FetchIntervalMinutes returns the value of the "fetch_interval_minutes" field in the mutation.
func (m *MonitoredSourceMutation) FetchIntervalMinutes() (r int, exists bool) {
	v := m.fetch_interval_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldFetchIntervalMinutes returns the old "fetch_interval_minutes" field's value of the MonitoredSource entity.
// If the MonitoredSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoredSourceMutation) OldFetchIntervalMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFetchIntervalMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFetchIntervalMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFetchIntervalMinutes: %w", err)
	}
	return oldValue.FetchIntervalMinutes, nil
}

// AddFetchIntervalMinutes adds i to the "fetch_interval_minutes" field.
func (m *MonitoredSourceMutation) AddFetchIntervalMinutes(i int) {
	if m.addfetch_interval_minutes != nil {
		*m.addfetch_interval_minutes += i
	} else {
		m.addfetch_interval_minutes = &i
	}
}

// AddedFetchIntervalMinutes returns the value that was added to the "fetch_interval_minutes" field in this mutation.
func (m *MonitoredSourceMutation) AddedFetchIntervalMinutes() (r int, exists bool) {
	v := m.addfetch_interval_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetFetchIntervalMinutes resets all changes to the "fetch_interval_minutes" field.
func (m *MonitoredSourceMutation) ResetFetchIntervalMinutes() {
	m.fetch_interval_minutes = nil
	m.addfetch_interval_minutes = nil
}

// SetLastFetchedAt sets the "last_fetched_at" field.
func (m *MonitoredSourceMutation) SetLastFetchedAt(t time.Time) {
	m.last_fetched_at = &t
}

// LastFetchedAt returns the value of the "last_fetched_at" field in the mutation.
func (m *MonitoredSourceMutation) LastFetchedAt() (r time.Time, exists bool) {
	v := m.last_fetched_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastFetchedAt returns the old "last_fetched_at" field's value of the MonitoredSource entity.
// If the MonitoredSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoredSourceMutation) OldLastFetchedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastFetchedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastFetchedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastFetchedAt: %w", err)
	}
	return oldValue.LastFetchedAt, nil
}

// ClearLastFetchedAt clears the value of the "last_fetched_at" field.
func (m *MonitoredSourceMutation) ClearLastFetchedAt() {
	m.last_fetched_at = nil
	m.clearedFields[monitoredsource.FieldLastFetchedAt] = struct{}{}
}

// LastFetchedAtCleared returns if the "last_fetched_at" field was cleared in this mutation.
func (m *MonitoredSourceMutation) LastFetchedAtCleared() bool {
	_, ok := m.clearedFields[monitoredsource.FieldLastFetchedAt]
	return ok
}

// ResetLastFetchedAt resets all changes to the "last_fetched_at" field.
func (m *MonitoredSourceMutation) ResetLastFetchedAt() {
	m.last_fetched_at = nil
	delete(m.clearedFields, monitoredsource.FieldLastFetchedAt)
}

// SetHistoryFetched sets the "history_fetched" field.
func (m *MonitoredSourceMutation) SetHistoryFetched(b bool) {
	m.history_fetched = &b
}

// HistoryFetched returns the value of the "history_fetched" field in the mutation.
func (m *MonitoredSourceMutation) HistoryFetched() (r bool, exists bool) {
	v := m.history_fetched
	if v == nil {
		return
	}
	return *v, true
}

// OldHistoryFetched returns the old "history_fetched" field's value of the MonitoredSource entity.
// If the MonitoredSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoredSourceMutation) OldHistoryFetched(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHistoryFetched is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHistoryFetched requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHistoryFetched: %w", err)
	}
	return oldValue.HistoryFetched, nil
}

// ResetHistoryFetched resets all changes to the "history_fetched" field.
func (m *MonitoredSourceMutation) ResetHistoryFetched() {
	m.history_fetched = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MonitoredSourceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MonitoredSourceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MonitoredSource entity.
// If the MonitoredSource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MonitoredSourceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MonitoredSourceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAuthor clears the "author" edge to the Author entity.
func (m *MonitoredSourceMutation) ClearAuthor() {
	m.clearedauthor = true
	m.clearedFields[monitoredsource.FieldAuthorID] = struct{}{}
}

// AuthorCleared reports if the "author" edge to the Author entity was cleared.
func (m *MonitoredSourceMutation) AuthorCleared() bool {
	return m.AuthorIDCleared() || m.clearedauthor
}

// AuthorIDs returns the "author" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AuthorID instead. It exists only for internal usage by the builders.
func (m *MonitoredSourceMutation) AuthorIDs() (ids []int) {
	if id := m.author; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAuthor resets all changes to the "author" edge.
func (m *MonitoredSourceMutation) ResetAuthor() {
	m.author = nil
	m.clearedauthor = false
}

// AddRawPostIDs adds the "raw_posts" edge to the RawPost entity by ids.
func (m *MonitoredSourceMutation) AddRawPostIDs(ids ...int) {
	if m.raw_posts == nil {
		m.raw_posts = make(map[int]struct{})
	}
	for i := range ids {
		m.raw_posts[ids[i]] = struct{}{}
	}
}

// ClearRawPosts clears the "raw_posts" edge to the RawPost entity.
func (m *MonitoredSourceMutation) ClearRawPosts() {
	m.clearedraw_posts = true
}

// RawPostsCleared reports if the "raw_posts" edge to the RawPost entity was cleared.
func (m *MonitoredSourceMutation) RawPostsCleared() bool {
	return m.clearedraw_posts
}

// RemoveRawPostIDs removes the "raw_posts" edge to the RawPost entity by IDs.
func (m *MonitoredSourceMutation) RemoveRawPostIDs(ids ...int) {
	if m.removedraw_posts == nil {
		m.removedraw_posts = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.raw_posts, ids[i])
		m.removedraw_posts[ids[i]] = struct{}{}
	}
}

// RemovedRawPosts returns the removed IDs of the "raw_posts" edge to the RawPost entity.
func (m *MonitoredSourceMutation) RemovedRawPostsIDs() (ids []int) {
	for id := range m.removedraw_posts {
		ids = append(ids, id)
	}
	return
}

// RawPostsIDs returns the "raw_posts" edge IDs in the mutation.
func (m *MonitoredSourceMutation) RawPostsIDs() (ids []int) {
	for id := range m.raw_posts {
		ids = append(ids, id)
	}
	return
}

// ResetRawPosts resets all changes to the "raw_posts" edge.
func (m *MonitoredSourceMutation) ResetRawPosts() {
	m.raw_posts = nil
	m.clearedraw_posts = false
	m.removedraw_posts = nil
}

// Where appends a list predicates to the MonitoredSourceMutation builder.
func (m *MonitoredSourceMutation) Where(ps ...predicate.MonitoredSource) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MonitoredSourceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MonitoredSourceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MonitoredSource, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MonitoredSourceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MonitoredSourceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MonitoredSource).
func (m *MonitoredSourceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MonitoredSourceMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.url != nil {
		fields = append(fields, monitoredsource.FieldURL)
	}
	if m.source_type != nil {
		fields = append(fields, monitoredsource.FieldSourceType)
	}
	if m.platform != nil {
		fields = append(fields, monitoredsource.FieldPlatform)
	}
	if m.platform_id != nil {
		fields = append(fields, monitoredsource.FieldPlatformID)
	}
	if m.author != nil {
		fields = append(fields, monitoredsource.FieldAuthorID)
	}
	if m.is_active != nil {
		fields = append(fields, monitoredsource.FieldIsActive)
	}
	if m.fetch_interval_minutes != nil {
		fields = append(fields, monitoredsource.FieldFetchIntervalMinutes)
	}
	if m.last_fetched_at != nil {
		fields = append(fields, monitoredsource.FieldLastFetchedAt)
	}
	if m.history_fetched != nil {
		fields = append(fields, monitoredsource.FieldHistoryFetched)
	}
	if m.created_at != nil {
		fields = append(fields, monitoredsource.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MonitoredSourceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case monitoredsource.FieldURL:
		return m.URL()
	case monitoredsource.FieldSourceType:
		return m.SourceType()
	case monitoredsource.FieldPlatform:
		return m.Platform()
	case monitoredsource.FieldPlatformID:
		return m.PlatformID()
	case monitoredsource.FieldAuthorID:
		return m.AuthorID()
	case monitoredsource.FieldIsActive:
		return m.IsActive()
	case monitoredsource.FieldFetchIntervalMinutes:
		return m.FetchIntervalMinutes()
	case monitoredsource.FieldLastFetchedAt:
		return m.LastFetchedAt()
	case monitoredsource.FieldHistoryFetched:
		return m.HistoryFetched()
	case monitoredsource.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MonitoredSourceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case monitoredsource.FieldURL:
		return m.OldURL(ctx)
	case monitoredsource.FieldSourceType:
		return m.OldSourceType(ctx)
	case monitoredsource.FieldPlatform:
		return m.OldPlatform(ctx)
	case monitoredsource.FieldPlatformID:
		return m.OldPlatformID(ctx)
	case monitoredsource.FieldAuthorID:
		return m.OldAuthorID(ctx)
	case monitoredsource.FieldIsActive:
		return m.OldIsActive(ctx)
	case monitoredsource.FieldFetchIntervalMinutes:
		return m.OldFetchIntervalMinutes(ctx)
	case monitoredsource.FieldLastFetchedAt:
		return m.OldLastFetchedAt(ctx)
	case monitoredsource.FieldHistoryFetched:
		return m.OldHistoryFetched(ctx)
	case monitoredsource.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MonitoredSource field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MonitoredSourceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case monitoredsource.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case monitoredsource.FieldSourceType:
		v, ok := value.(monitoredsource.SourceType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case monitoredsource.FieldPlatform:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case monitoredsource.FieldPlatformID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatformID(v)
		return nil
	case monitoredsource.FieldAuthorID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorID(v)
		return nil
	case monitoredsource.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case monitoredsource.FieldFetchIntervalMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFetchIntervalMinutes(v)
		return nil
	case monitoredsource.FieldLastFetchedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastFetchedAt(v)
		return nil
	case monitoredsource.FieldHistoryFetched:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHistoryFetched(v)
		return nil
	case monitoredsource.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MonitoredSource field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MonitoredSourceMutation) AddedFields() []string {
	var fields []string
	if m.addfetch_interval_minutes != nil {
		fields = append(fields, monitoredsource.FieldFetchIntervalMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MonitoredSourceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case monitoredsource.FieldFetchIntervalMinutes:
		return m.AddedFetchIntervalMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MonitoredSourceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case monitoredsource.FieldFetchIntervalMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFetchIntervalMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown MonitoredSource numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MonitoredSourceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(monitoredsource.FieldAuthorID) {
		fields = append(fields, monitoredsource.FieldAuthorID)
	}
	if m.FieldCleared(monitoredsource.FieldLastFetchedAt) {
		fields = append(fields, monitoredsource.FieldLastFetchedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MonitoredSourceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MonitoredSourceMutation) ClearField(name string) error {
	switch name {
	case monitoredsource.FieldAuthorID:
		m.ClearAuthorID()
		return nil
	case monitoredsource.FieldLastFetchedAt:
		m.ClearLastFetchedAt()
		return nil
	}
	return fmt.Errorf("unknown MonitoredSource nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MonitoredSourceMutation) ResetField(name string) error {
	switch name {
	case monitoredsource.FieldURL:
		m.ResetURL()
		return nil
	case monitoredsource.FieldSourceType:
		m.ResetSourceType()
		return nil
	case monitoredsource.FieldPlatform:
		m.ResetPlatform()
		return nil
	case monitoredsource.FieldPlatformID:
		m.ResetPlatformID()
		return nil
	case monitoredsource.FieldAuthorID:
		m.ResetAuthorID()
		return nil
	case monitoredsource.FieldIsActive:
		m.ResetIsActive()
		return nil
	case monitoredsource.FieldFetchIntervalMinutes:
		m.ResetFetchIntervalMinutes()
		return nil
	case monitoredsource.FieldLastFetchedAt:
		m.ResetLastFetchedAt()
		return nil
	case monitoredsource.FieldHistoryFetched:
		m.ResetHistoryFetched()
		return nil
	case monitoredsource.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown MonitoredSource field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MonitoredSourceMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.author != nil {
		edges = append(edges, monitoredsource.EdgeAuthor)
	}
	if m.raw_posts != nil {
		edges = append(edges, monitoredsource.EdgeRawPosts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MonitoredSourceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case monitoredsource.EdgeAuthor:
		if id := m.author; id != nil {
			return []ent.Value{*id}
		}
	case monitoredsource.EdgeRawPosts:
		ids := make([]ent.Value, 0, len(m.raw_posts))
		for id := range m.raw_posts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MonitoredSourceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedraw_posts != nil {
		edges = append(edges, monitoredsource.EdgeRawPosts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MonitoredSourceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case monitoredsource.EdgeRawPosts:
		ids := make([]ent.Value, 0, len(m.removedraw_posts))
		for id := range m.removedraw_posts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MonitoredSourceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedauthor {
		edges = append(edges, monitoredsource.EdgeAuthor)
	}
	if m.clearedraw_posts {
		edges = append(edges, monitoredsource.EdgeRawPosts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MonitoredSourceMutation) EdgeCleared(name string) bool {
	switch name {
	case monitoredsource.EdgeAuthor:
		return m.clearedauthor
	case monitoredsource.EdgeRawPosts:
		return m.clearedraw_posts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MonitoredSourceMutation) ClearEdge(name string) error {
	switch name {
	case monitoredsource.EdgeAuthor:
		m.ClearAuthor()
		return nil
	}
	return fmt.Errorf("unknown MonitoredSource unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MonitoredSourceMutation) ResetEdge(name string) error {
	switch name {
	case monitoredsource.EdgeAuthor:
		m.ResetAuthor()
		return nil
	case monitoredsource.EdgeRawPosts:
		m.ResetRawPosts()
		return nil
	}
	return fmt.Errorf("unknown MonitoredSource edge %s", name)
}

// PostQualityAssessmentMutation represents an operation that mutates the PostQualityAssessment nodes in the graph.
type PostQualityAssessmentMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	uniqueness_score        *float64
	adduniqueness_score     *float64
	uniqueness_note         *string
	is_first_mover          *bool
	similar_claim_count     *int
	addsimilar_claim_count  *int
	similar_author_count    *int
	addsimilar_author_count *int
	effectiveness_score     *float64
	addeffectiveness_score  *float64
	effectiveness_note      *string
	noise_ratio             *float64
	addnoise_ratio          *float64
	noise_types             *[]string
	appendnoise_types       []string
	assessed_at             *time.Time
	clearedFields           map[string]struct{}
	raw_post                *int
	clearedraw_post         bool
	author                  *int
	clearedauthor           bool
	done                    bool
	oldValue                func(context.Context) (*PostQualityAssessment, error)
	predicates              []predicate.PostQualityAssessment
}

var _ ent.Mutation = (*PostQualityAssessmentMutation)(nil)

// postqualityassessmentOption allows management of the mutation configuration using functional options.
type postqualityassessmentOption func(*PostQualityAssessmentMutation)

// newPostQualityAssessmentMutation creates new mutation for the PostQualityAssessment entity.
func newPostQualityAssessmentMutation(c config, op Op, opts ...postqualityassessmentOption) *PostQualityAssessmentMutation {
	m := &PostQualityAssessmentMutation{
		config:        c,
		op:            op,
		typ:           TypePostQualityAssessment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPostQualityAssessmentID sets the ID field of the mutation.
func withPostQualityAssessmentID(id int) postqualityassessmentOption {
	return func(m *PostQualityAssessmentMutation) {
		var (
			err   error
			once  sync.Once
			value *PostQualityAssessment
		)
		m.oldValue = func(ctx context.Context) (*PostQualityAssessment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PostQualityAssessment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPostQualityAssessment sets the old PostQualityAssessment of the mutation.
func withPostQualityAssessment(node *PostQualityAssessment) postqualityassessmentOption {
	return func(m *PostQualityAssessmentMutation) {
		m.oldValue = func(context.Context) (*PostQualityAssessment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PostQualityAssessmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PostQualityAssessmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PostQualityAssessmentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PostQualityAssessmentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PostQualityAssessment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRawPostID sets the "raw_post_id" field.
func (m *PostQualityAssessmentMutation) SetRawPostID(i int) {
	m.raw_post = &i
}

// RawPostID returns the value of the "raw_post_id" field in the mutation.
func (m *PostQualityAssessmentMutation) RawPostID() (r int, exists bool) {
	v := m.raw_post
	if v == nil {
		return
	}
	return *v, true
}

// OldRawPostID returns the old "raw_post_id" field's value of the PostQualityAssessment entity.
// If the PostQualityAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostQualityAssessmentMutation) OldRawPostID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawPostID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawPostID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawPostID: %w", err)
	}
	return oldValue.RawPostID, nil
}

// ResetRawPostID resets all changes to the "raw_post_id" field.
func (m *PostQualityAssessmentMutation) ResetRawPostID() {
	m.raw_post = nil
}

// SetAuthorID sets the "author_id" field.
func (m *PostQualityAssessmentMutation) SetAuthorID(i int) {
	m.author = &i
}

// AuthorID returns the value of the "author_id" field in the mutation.
func (m *PostQualityAssessmentMutation) AuthorID() (r int, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorID returns the old "author_id" field's value of the PostQualityAssessment entity.
// If the PostQualityAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostQualityAssessmentMutation) OldAuthorID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorID: %w", err)
	}
	return oldValue.AuthorID, nil
}

// ResetAuthorID resets all changes to the "author_id" field.
func (m *PostQualityAssessmentMutation) ResetAuthorID() {
	m.author = nil
}

// SetUniquenessScore sets the "uniqueness_score" field.
func (m *PostQualityAssessmentMutation) SetUniquenessScore(f float64) {
	m.uniqueness_score = &f
	m.adduniqueness_score = nil
}

// UniquenessScore returns the value of the "uniqueness_score" field in the mutation.
func (m *PostQualityAssessmentMutation) UniquenessScore() (r float64, exists bool) {
	v := m.uniqueness_score
	if v == nil {
		return
	}
	return *v, true
}

// OldUniquenessScore returns the old "uniqueness_score" field's value of the PostQualityAssessment entity.
// If the PostQualityAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostQualityAssessmentMutation) OldUniquenessScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUniquenessScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUniquenessScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUniquenessScore: %w", err)
	}
	return oldValue.UniquenessScore, nil
}

// AddUniquenessScore adds f to the "uniqueness_score" field.
func (m *PostQualityAssessmentMutation) AddUniquenessScore(f float64) {
	if m.adduniqueness_score != nil {
		*m.adduniqueness_score += f
	} else {
		m.adduniqueness_score = &f
	}
}

// AddedUniquenessScore returns the value that was added to the "uniqueness_score" field in this mutation.
func (m *PostQualityAssessmentMutation) AddedUniquenessScore() (r float64, exists bool) {
	v := m.adduniqueness_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearUniquenessScore clears the value of the "uniqueness_score" field.
func (m *PostQualityAssessmentMutation) ClearUniquenessScore() {
	m.uniqueness_score = nil
	m.adduniqueness_score = nil
	m.clearedFields[postqualityassessment.FieldUniquenessScore] = struct{}{}
}

// UniquenessScoreCleared returns if the "uniqueness_score" field was cleared in this mutation.
func (m *PostQualityAssessmentMutation) UniquenessScoreCleared() bool {
	_, ok := m.clearedFields[postqualityassessment.FieldUniquenessScore]
	return ok
}

// ResetUniquenessScore resets all changes to the "uniqueness_score" field.
func (m *PostQualityAssessmentMutation) ResetUniquenessScore() {
	m.uniqueness_score = nil
	m.adduniqueness_score = nil
	delete(m.clearedFields, postqualityassessment.FieldUniquenessScore)
}

// SetUniquenessNote sets the "uniqueness_note" field.
func (m *PostQualityAssessmentMutation) SetUniquenessNote(s string) {
	m.uniqueness_note = &s
}

// UniquenessNote returns the value of the "uniqueness_note" field in the mutation.
func (m *PostQualityAssessmentMutation) UniquenessNote() (r string, exists bool) {
	v := m.uniqueness_note
	if v == nil {
		return
	}
	return *v, true
}

// OldUniquenessNote returns the old "uniqueness_note" field's value of the PostQualityAssessment entity.
// If the PostQualityAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostQualityAssessmentMutation) OldUniquenessNote(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUniquenessNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUniquenessNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUniquenessNote: %w", err)
	}
	return oldValue.UniquenessNote, nil
}

// ClearUniquenessNote clears the value of the "uniqueness_note" field.
func (m *PostQualityAssessmentMutation) ClearUniquenessNote() {
	m.uniqueness_note = nil
	m.clearedFields[postqualityassessment.FieldUniquenessNote] = struct{}{}
}

// UniquenessNoteCleared returns if the "uniqueness_note" field was cleared in this mutation.
func (m *PostQualityAssessmentMutation) UniquenessNoteCleared() bool {
	_, ok := m.clearedFields[postqualityassessment.FieldUniquenessNote]
	return ok
}

// ResetUniquenessNote resets all changes to the "uniqueness_note" field.
func (m *PostQualityAssessmentMutation) ResetUniquenessNote() {
	m.uniqueness_note = nil
	delete(m.clearedFields, postqualityassessment.FieldUniquenessNote)
}

// SetIsFirstMover sets the "is_first_mover" field.
func (m *PostQualityAssessmentMutation) SetIsFirstMover(b bool) {
	m.is_first_mover = &b
}

// IsFirstMover returns the value of the "is_first_mover" field in the mutation.
func (m *PostQualityAssessmentMutation) IsFirstMover() (r bool, exists bool) {
	v := m.is_first_mover
	if v == nil {
		return
	}
	return *v, true
}

// OldIsFirstMover returns the old "is_first_mover" field's value of the PostQualityAssessment entity.
// If the PostQualityAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostQualityAssessmentMutation) OldIsFirstMover(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsFirstMover is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsFirstMover requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsFirstMover: %w", err)
	}
	return oldValue.IsFirstMover, nil
}

// ClearIsFirstMover clears the value of the "is_first_mover" field.
func (m *PostQualityAssessmentMutation) ClearIsFirstMover() {
	m.is_first_mover = nil
	m.clearedFields[postqualityassessment.FieldIsFirstMover] = struct{}{}
}

// IsFirstMoverCleared returns if the "is_first_mover" field was cleared in this mutation.
func (m *PostQualityAssessmentMutation) IsFirstMoverCleared() bool {
	_, ok := m.clearedFields[postqualityassessment.FieldIsFirstMover]
	return ok
}

// ResetIsFirstMover resets all changes to the "is_first_mover" field.
func (m *PostQualityAssessmentMutation) ResetIsFirstMover() {
	m.is_first_mover = nil
	delete(m.clearedFields, postqualityassessment.FieldIsFirstMover)
}

// SetSimilarClaimCount sets the "similar_claim_count" field.
func (m *PostQualityAssessmentMutation) SetSimilarClaimCount(i int) {
	m.similar_claim_count = &i
	m.addsimilar_claim_count = nil
}

// SimilarClaimCount returns the value of the "similar_claim_count" field in the mutation.
func (m *PostQualityAssessmentMutation) SimilarClaimCount() (r int, exists bool) {
	v := m.similar_claim_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSimilarClaimCount returns the old "similar_claim_count" field's value of the PostQualityAssessment entity.
// If the PostQualityAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostQualityAssessmentMutation) OldSimilarClaimCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSimilarClaimCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSimilarClaimCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSimilarClaimCount: %w", err)
	}
	return oldValue.SimilarClaimCount, nil
}

// AddSimilarClaimCount adds i to the "similar_claim_count" field.
func (m *PostQualityAssessmentMutation) AddSimilarClaimCount(i int) {
	if m.addsimilar_claim_count != nil {
		*m.addsimilar_claim_count += i
	} else {
		m.addsimilar_claim_count = &i
	}
}

// AddedSimilarClaimCount returns the value that was added to the "similar_claim_count" field in this mutation.
func (m *PostQualityAssessmentMutation) AddedSimilarClaimCount() (r int, exists bool) {
	v := m.addsimilar_claim_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSimilarClaimCount resets all changes to the "similar_claim_count" field.
func (m *PostQualityAssessmentMutation) ResetSimilarClaimCount() {
	m.similar_claim_count = nil
	m.addsimilar_claim_count = nil
}

// SetSimilarAuthorCount sets the "similar_author_count" field.
func (m *PostQualityAssessmentMutation) SetSimilarAuthorCount(i int) {
	m.similar_author_count = &i
	m.addsimilar_author_count = nil
}

// SimilarAuthorCount returns the value of the "similar_author_count" field in the mutation.
func (m *PostQualityAssessmentMutation) SimilarAuthorCount() (r int, exists bool) {
	v := m.similar_author_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSimilarAuthorCount returns the old "similar_author_count" field's value of the PostQualityAssessment entity.
// If the PostQualityAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostQualityAssessmentMutation) OldSimilarAuthorCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSimilarAuthorCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSimilarAuthorCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSimilarAuthorCount: %w", err)
	}
	return oldValue.SimilarAuthorCount, nil
}

// AddSimilarAuthorCount adds i to the "similar_author_count" field.
func (m *PostQualityAssessmentMutation) AddSimilarAuthorCount(i int) {
	if m.addsimilar_author_count != nil {
		*m.addsimilar_author_count += i
	} else {
		m.addsimilar_author_count = &i
	}
}

// AddedSimilarAuthorCount returns the value that was added to the "similar_author_count" field in this mutation.
func (m *PostQualityAssessmentMutation) AddedSimilarAuthorCount() (r int, exists bool) {
	v := m.addsimilar_author_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSimilarAuthorCount resets all changes to the "similar_author_count" field.
func (m *PostQualityAssessmentMutation) ResetSimilarAuthorCount() {
	m.similar_author_count = nil
	m.addsimilar_author_count = nil
}

// SetEffectivenessScore sets the "effectiveness_score" field.
func (m *PostQualityAssessmentMutation) SetEffectivenessScore(f float64) {
	m.effectiveness_score = &f
	m.addeffectiveness_score = nil
}

// EffectivenessScore returns the value of the "effectiveness_score" field in the mutation.
func (m *PostQualityAssessmentMutation) EffectivenessScore() (r float64, exists bool) {
	v := m.effectiveness_score
	if v == nil {
		return
	}
	return *v, true
}

// OldEffectivenessScore returns the old "effectiveness_score" field's value of the PostQualityAssessment entity.
// If the PostQualityAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostQualityAssessmentMutation) OldEffectivenessScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEffectivenessScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEffectivenessScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEffectivenessScore: %w", err)
	}
	return oldValue.EffectivenessScore, nil
}

// AddEffectivenessScore adds f to the "effectiveness_score" field.
func (m *PostQualityAssessmentMutation) AddEffectivenessScore(f float64) {
	if m.addeffectiveness_score != nil {
		*m.addeffectiveness_score += f
	} else {
		m.addeffectiveness_score = &f
	}
}

// AddedEffectivenessScore returns the value that was added to the "effectiveness_score" field in this mutation.
func (m *PostQualityAssessmentMutation) AddedEffectivenessScore() (r float64, exists bool) {
	v := m.addeffectiveness_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearEffectivenessScore clears the value of the "effectiveness_score" field.
func (m *PostQualityAssessmentMutation) ClearEffectivenessScore() {
	m.effectiveness_score = nil
	m.addeffectiveness_score = nil
	m.clearedFields[postqualityassessment.FieldEffectivenessScore] = struct{}{}
}

// EffectivenessScoreCleared returns if the "effectiveness_score" field was cleared in this mutation.
func (m *PostQualityAssessmentMutation) EffectivenessScoreCleared() bool {
	_, ok := m.clearedFields[postqualityassessment.FieldEffectivenessScore]
	return ok
}

// ResetEffectivenessScore resets all changes to the "effectiveness_score" field.
func (m *PostQualityAssessmentMutation) ResetEffectivenessScore() {
	m.effectiveness_score = nil
	m.addeffectiveness_score = nil
	delete(m.clearedFields, postqualityassessment.FieldEffectivenessScore)
}

// SetEffectivenessNote sets the "effectiveness_note" field.
func (m *PostQualityAssessmentMutation) SetEffectivenessNote(s string) {
	m.effectiveness_note = &s
}

// EffectivenessNote returns the value of the "effectiveness_note" field in the mutation.
func (m *PostQualityAssessmentMutation) EffectivenessNote() (r string, exists bool) {
	v := m.effectiveness_note
	if v == nil {
		return
	}
	return *v, true
}

// OldEffectivenessNote returns the old "effectiveness_note" field's value of the PostQualityAssessment entity.
// If the PostQualityAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostQualityAssessmentMutation) OldEffectivenessNote(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEffectivenessNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEffectivenessNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEffectivenessNote: %w", err)
	}
	return oldValue.EffectivenessNote, nil
}

// ClearEffectivenessNote clears the value of the "effectiveness_note" field.
func (m *PostQualityAssessmentMutation) ClearEffectivenessNote() {
	m.effectiveness_note = nil
	m.clearedFields[postqualityassessment.FieldEffectivenessNote] = struct{}{}
}

// EffectivenessNoteCleared returns if the "effectiveness_note" field was cleared in this mutation.
func (m *PostQualityAssessmentMutation) EffectivenessNoteCleared() bool {
	_, ok := m.clearedFields[postqualityassessment.FieldEffectivenessNote]
	return ok
}

// ResetEffectivenessNote resets all changes to the "effectiveness_note" field.
func (m *PostQualityAssessmentMutation) ResetEffectivenessNote() {
	m.effectiveness_note = nil
	delete(m.clearedFields, postqualityassessment.FieldEffectivenessNote)
}

// SetNoiseRatio sets the "noise_ratio" field.
func (m *PostQualityAssessmentMutation) SetNoiseRatio(f float64) {
	m.noise_ratio = &f
	m.addnoise_ratio = nil
}

// NoiseRatio returns the value of the "noise_ratio" field in the mutation.
func (m *PostQualityAssessmentMutation) NoiseRatio() (r float64, exists bool) {
	v := m.noise_ratio
	if v == nil {
		return
	}
	return *v, true
}

// OldNoiseRatio returns the old "noise_ratio" field's value of the PostQualityAssessment entity.
// If the PostQualityAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostQualityAssessmentMutation) OldNoiseRatio(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNoiseRatio is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNoiseRatio requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNoiseRatio: %w", err)
	}
	return oldValue.NoiseRatio, nil
}

// AddNoiseRatio adds f to the "noise_ratio" field.
func (m *PostQualityAssessmentMutation) AddNoiseRatio(f float64) {
	if m.addnoise_ratio != nil {
		*m.addnoise_ratio += f
	} else {
		m.addnoise_ratio = &f
	}
}

// AddedNoiseRatio returns the value that was added to the "noise_ratio" field in this mutation.
func (m *PostQualityAssessmentMutation) AddedNoiseRatio() (r float64, exists bool) {
	v := m.addnoise_ratio
	if v == nil {
		return
	}
	return *v, true
}

// ClearNoiseRatio clears the value of the "noise_ratio" field.
func (m *PostQualityAssessmentMutation) ClearNoiseRatio() {
	m.noise_ratio = nil
	m.addnoise_ratio = nil
	m.clearedFields[postqualityassessment.FieldNoiseRatio] = struct{}{}
}

// NoiseRatioCleared returns if the "noise_ratio" field was cleared in this mutation.
func (m *PostQualityAssessmentMutation) NoiseRatioCleared() bool {
	_, ok := m.clearedFields[postqualityassessment.FieldNoiseRatio]
	return ok
}

// ResetNoiseRatio resets all changes to the "noise_ratio" field.
func (m *PostQualityAssessmentMutation) ResetNoiseRatio() {
	m.noise_ratio = nil
	m.addnoise_ratio = nil
	delete(m.clearedFields, postqualityassessment.FieldNoiseRatio)
}

// SetNoiseTypes sets the "noise_types" field.
func (m *PostQualityAssessmentMutation) SetNoiseTypes(s []string) {
	m.noise_types = &s
	m.appendnoise_types = nil
}

// NoiseTypes returns the value of the "noise_types" field in the mutation.
func (m *PostQualityAssessmentMutation) NoiseTypes() (r []string, exists bool) {
	v := m.noise_types
	if v == nil {
		return
	}
	return *v, true
}

// OldNoiseTypes returns the old "noise_types" field's value of the PostQualityAssessment entity.
// If the PostQualityAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostQualityAssessmentMutation) OldNoiseTypes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNoiseTypes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNoiseTypes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNoiseTypes: %w", err)
	}
	return oldValue.NoiseTypes, nil
}

// AppendNoiseTypes adds s to the "noise_types" field.
func (m *PostQualityAssessmentMutation) AppendNoiseTypes(s []string) {
	m.appendnoise_types = append(m.appendnoise_types, s...)
}

// AppendedNoiseTypes returns the list of values that were appended to the "noise_types" field in this mutation.
func (m *PostQualityAssessmentMutation) AppendedNoiseTypes() ([]string, bool) {
	if len(m.appendnoise_types) == 0 {
		return nil, false
	}
	return m.appendnoise_types, true
}

// ClearNoiseTypes clears the value of the "noise_types" field.
func (m *PostQualityAssessmentMutation) ClearNoiseTypes() {
	m.noise_types = nil
	m.appendnoise_types = nil
	m.clearedFields[postqualityassessment.FieldNoiseTypes] = struct{}{}
}

// NoiseTypesCleared returns if the "noise_types" field was cleared in this mutation.
func (m *PostQualityAssessmentMutation) NoiseTypesCleared() bool {
	_, ok := m.clearedFields[postqualityassessment.FieldNoiseTypes]
	return ok
}

// ResetNoiseTypes resets all changes to the "noise_types" field.
func (m *PostQualityAssessmentMutation) ResetNoiseTypes() {
	m.noise_types = nil
	m.appendnoise_types = nil
	delete(m.clearedFields, postqualityassessment.FieldNoiseTypes)
}

// SetAssessedAt sets the "assessed_at" field.
func (m *PostQualityAssessmentMutation) SetAssessedAt(t time.Time) {
	m.assessed_at = &t
}

// AssessedAt returns the value of the "assessed_at" field in the mutation.
func (m *PostQualityAssessmentMutation) AssessedAt() (r time.Time, exists bool) {
	v := m.assessed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessedAt returns the old "assessed_at" field's value of the PostQualityAssessment entity.
// If the PostQualityAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostQualityAssessmentMutation) OldAssessedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessedAt: %w", err)
	}
	return oldValue.AssessedAt, nil
}

// ResetAssessedAt resets all changes to the "assessed_at" field.
func (m *PostQualityAssessmentMutation) ResetAssessedAt() {
	m.assessed_at = nil
}

// ClearRawPost clears the "raw_post" edge to the RawPost entity.
func (m *PostQualityAssessmentMutation) ClearRawPost() {
	m.clearedraw_post = true
	m.clearedFields[postqualityassessment.FieldRawPostID] = struct{}{}
}

// RawPostCleared reports if the "raw_post" edge to the RawPost entity was cleared.
func (m *PostQualityAssessmentMutation) RawPostCleared() bool {
	return m.clearedraw_post
}

// RawPostIDs returns the "raw_post" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RawPostID instead. It exists only for internal usage by the builders.
func (m *PostQualityAssessmentMutation) RawPostIDs() (ids []int) {
	if id := m.raw_post; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRawPost resets all changes to the "raw_post" edge.
func (m *PostQualityAssessmentMutation) ResetRawPost() {
	m.raw_post = nil
	m.clearedraw_post = false
}

// ClearAuthor clears the "author" edge to the Author entity.
func (m *PostQualityAssessmentMutation) ClearAuthor() {
	m.clearedauthor = true
	m.clearedFields[postqualityassessment.FieldAuthorID] = struct{}{}
}

// AuthorCleared reports if the "author" edge to the Author entity was cleared.
func (m *PostQualityAssessmentMutation) AuthorCleared() bool {
	return m.clearedauthor
}

// AuthorIDs returns the "author" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AuthorID instead. It exists only for internal usage by the builders.
func (m *PostQualityAssessmentMutation) AuthorIDs() (ids []int) {
	if id := m.author; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAuthor resets all changes to the "author" edge.
func (m *PostQualityAssessmentMutation) ResetAuthor() {
	m.author = nil
	m.clearedauthor = false
}

// Where appends a list predicates to the PostQualityAssessmentMutation builder.
func (m *PostQualityAssessmentMutation) Where(ps ...predicate.PostQualityAssessment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PostQualityAssessmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PostQualityAssessmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PostQualityAssessment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PostQualityAssessmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PostQualityAssessmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PostQualityAssessment).
func (m *PostQualityAssessmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PostQualityAssessmentMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.raw_post != nil {
		fields = append(fields, postqualityassessment.FieldRawPostID)
	}
	if m.author != nil {
		fields = append(fields, postqualityassessment.FieldAuthorID)
	}
	if m.uniqueness_score != nil {
		fields = append(fields, postqualityassessment.FieldUniquenessScore)
	}
	if m.uniqueness_note != nil {
		fields = append(fields, postqualityassessment.FieldUniquenessNote)
	}
	if m.is_first_mover != nil {
		fields = append(fields, postqualityassessment.FieldIsFirstMover)
	}
	if m.similar_claim_count != nil {
		fields = append(fields, postqualityassessment.FieldSimilarClaimCount)
	}
	if m.similar_author_count != nil {
		fields = append(fields, postqualityassessment.FieldSimilarAuthorCount)
	}
	if m.effectiveness_score != nil {
		fields = append(fields, postqualityassessment.FieldEffectivenessScore)
	}
	if m.effectiveness_note != nil {
		fields = append(fields, postqualityassessment.FieldEffectivenessNote)
	}
	if m.noise_ratio != nil {
		fields = append(fields, postqualityassessment.FieldNoiseRatio)
	}
	if m.noise_types != nil {
		fields = append(fields, postqualityassessment.FieldNoiseTypes)
	}
	if m.assessed_at != nil {
		fields = append(fields, postqualityassessment.FieldAssessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PostQualityAssessmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case postqualityassessment.FieldRawPostID:
		return m.RawPostID()
	case postqualityassessment.FieldAuthorID:
		return m.AuthorID()
	case postqualityassessment.FieldUniquenessScore:
		return m.UniquenessScore()
	case postqualityassessment.FieldUniquenessNote:
		return m.UniquenessNote()
	case postqualityassessment.FieldIsFirstMover:
		return m.IsFirstMover()
	case postqualityassessment.FieldSimilarClaimCount:
		return m.SimilarClaimCount()
	case postqualityassessment.FieldSimilarAuthorCount:
		return m.SimilarAuthorCount()
	case postqualityassessment.FieldEffectivenessScore:
		return m.EffectivenessScore()
	case postqualityassessment.FieldEffectivenessNote:
		return m.EffectivenessNote()
	case postqualityassessment.FieldNoiseRatio:
		return m.NoiseRatio()
	case postqualityassessment.FieldNoiseTypes:
		return m.NoiseTypes()
	case postqualityassessment.FieldAssessedAt:
		return m.AssessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PostQualityAssessmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case postqualityassessment.FieldRawPostID:
		return m.OldRawPostID(ctx)
	case postqualityassessment.FieldAuthorID:
		return m.OldAuthorID(ctx)
	case postqualityassessment.FieldUniquenessScore:
		return m.OldUniquenessScore(ctx)
	case postqualityassessment.FieldUniquenessNote:
		return m.OldUniquenessNote(ctx)
	case postqualityassessment.FieldIsFirstMover:
		return m.OldIsFirstMover(ctx)
	case postqualityassessment.FieldSimilarClaimCount:
		return m.OldSimilarClaimCount(ctx)
	case postqualityassessment.FieldSimilarAuthorCount:
		return m.OldSimilarAuthorCount(ctx)
	case postqualityassessment.FieldEffectivenessScore:
		return m.OldEffectivenessScore(ctx)
	case postqualityassessment.FieldEffectivenessNote:
		return m.OldEffectivenessNote(ctx)
	case postqualityassessment.FieldNoiseRatio:
		return m.OldNoiseRatio(ctx)
	case postqualityassessment.FieldNoiseTypes:
		return m.OldNoiseTypes(ctx)
	case postqualityassessment.FieldAssessedAt:
		return m.OldAssessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PostQualityAssessment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PostQualityAssessmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case postqualityassessment.FieldRawPostID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawPostID(v)
		return nil
	case postqualityassessment.FieldAuthorID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorID(v)
		return nil
	case postqualityassessment.FieldUniquenessScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUniquenessScore(v)
		return nil
	case postqualityassessment.FieldUniquenessNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUniquenessNote(v)
		return nil
	case postqualityassessment.FieldIsFirstMover:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsFirstMover(v)
		return nil
	case postqualityassessment.FieldSimilarClaimCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSimilarClaimCount(v)
		return nil
	case postqualityassessment.FieldSimilarAuthorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSimilarAuthorCount(v)
		return nil
	case postqualityassessment.FieldEffectivenessScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEffectivenessScore(v)
		return nil
	case postqualityassessment.FieldEffectivenessNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEffectivenessNote(v)
		return nil
	case postqualityassessment.FieldNoiseRatio:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNoiseRatio(v)
		return nil
	case postqualityassessment.FieldNoiseTypes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNoiseTypes(v)
		return nil
	case postqualityassessment.FieldAssessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PostQualityAssessment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PostQualityAssessmentMutation) AddedFields() []string {
	var fields []string
	if m.adduniqueness_score != nil {
		fields = append(fields, postqualityassessment.FieldUniquenessScore)
	}
	if m.addsimilar_claim_count != nil {
		fields = append(fields, postqualityassessment.FieldSimilarClaimCount)
	}
	if m.addsimilar_author_count != nil {
		fields = append(fields, postqualityassessment.FieldSimilarAuthorCount)
	}
	if m.addeffectiveness_score != nil {
		fields = append(fields, postqualityassessment.FieldEffectivenessScore)
	}
	if m.addnoise_ratio != nil {
		fields = append(fields, postqualityassessment.FieldNoiseRatio)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PostQualityAssessmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case postqualityassessment.FieldUniquenessScore:
		return m.AddedUniquenessScore()
	case postqualityassessment.FieldSimilarClaimCount:
		return m.AddedSimilarClaimCount()
	case postqualityassessment.FieldSimilarAuthorCount:
		return m.AddedSimilarAuthorCount()
	case postqualityassessment.FieldEffectivenessScore:
		return m.AddedEffectivenessScore()
	case postqualityassessment.FieldNoiseRatio:
		return m.AddedNoiseRatio()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PostQualityAssessmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case postqualityassessment.FieldUniquenessScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUniquenessScore(v)
		return nil
	case postqualityassessment.FieldSimilarClaimCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSimilarClaimCount(v)
		return nil
	case postqualityassessment.FieldSimilarAuthorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSimilarAuthorCount(v)
		return nil
	case postqualityassessment.FieldEffectivenessScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEffectivenessScore(v)
		return nil
	case postqualityassessment.FieldNoiseRatio:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNoiseRatio(v)
		return nil
	}
	return fmt.Errorf("unknown PostQualityAssessment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PostQualityAssessmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(postqualityassessment.FieldUniquenessScore) {
		fields = append(fields, postqualityassessment.FieldUniquenessScore)
	}
	if m.FieldCleared(postqualityassessment.FieldUniquenessNote) {
		fields = append(fields, postqualityassessment.FieldUniquenessNote)
	}
	if m.FieldCleared(postqualityassessment.FieldIsFirstMover) {
		fields = append(fields, postqualityassessment.FieldIsFirstMover)
	}
	if m.FieldCleared(postqualityassessment.FieldEffectivenessScore) {
		fields = append(fields, postqualityassessment.FieldEffectivenessScore)
	}
	if m.FieldCleared(postqualityassessment.FieldEffectivenessNote) {
		fields = append(fields, postqualityassessment.FieldEffectivenessNote)
	}
	if m.FieldCleared(postqualityassessment.FieldNoiseRatio) {
		fields = append(fields, postqualityassessment.FieldNoiseRatio)
	}
	if m.FieldCleared(postqualityassessment.FieldNoiseTypes) {
		fields = append(fields, postqualityassessment.FieldNoiseTypes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PostQualityAssessmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PostQualityAssessmentMutation) ClearField(name string) error {
	switch name {
	case postqualityassessment.FieldUniquenessScore:
		m.ClearUniquenessScore()
		return nil
	case postqualityassessment.FieldUniquenessNote:
		m.ClearUniquenessNote()
		return nil
	case postqualityassessment.FieldIsFirstMover:
		m.ClearIsFirstMover()
		return nil
	case postqualityassessment.FieldEffectivenessScore:
		m.ClearEffectivenessScore()
		return nil
	case postqualityassessment.FieldEffectivenessNote:
		m.ClearEffectivenessNote()
		return nil
	case postqualityassessment.FieldNoiseRatio:
		m.ClearNoiseRatio()
		return nil
	case postqualityassessment.FieldNoiseTypes:
		m.ClearNoiseTypes()
		return nil
	}
	return fmt.Errorf("unknown PostQualityAssessment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PostQualityAssessmentMutation) ResetField(name string) error {
	switch name {
	case postqualityassessment.FieldRawPostID:
		m.ResetRawPostID()
		return nil
	case postqualityassessment.FieldAuthorID:
		m.ResetAuthorID()
		return nil
	case postqualityassessment.FieldUniquenessScore:
		m.ResetUniquenessScore()
		return nil
	case postqualityassessment.FieldUniquenessNote:
		m.ResetUniquenessNote()
		return nil
	case postqualityassessment.FieldIsFirstMover:
		m.ResetIsFirstMover()
		return nil
	case postqualityassessment.FieldSimilarClaimCount:
		m.ResetSimilarClaimCount()
		return nil
	case postqualityassessment.FieldSimilarAuthorCount:
		m.ResetSimilarAuthorCount()
		return nil
	case postqualityassessment.FieldEffectivenessScore:
		m.ResetEffectivenessScore()
		return nil
	case postqualityassessment.FieldEffectivenessNote:
		m.ResetEffectivenessNote()
		return nil
	case postqualityassessment.FieldNoiseRatio:
		m.ResetNoiseRatio()
		return nil
	case postqualityassessment.FieldNoiseTypes:
		m.ResetNoiseTypes()
		return nil
	case postqualityassessment.FieldAssessedAt:
		m.ResetAssessedAt()
		return nil
	}
	return fmt.Errorf("unknown PostQualityAssessment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PostQualityAssessmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.raw_post != nil {
		edges = append(edges, postqualityassessment.EdgeRawPost)
	}
	if m.author != nil {
		edges = append(edges, postqualityassessment.EdgeAuthor)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PostQualityAssessmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case postqualityassessment.EdgeRawPost:
		if id := m.raw_post; id != nil {
			return []ent.Value{*id}
		}
	case postqualityassessment.EdgeAuthor:
		if id := m.author; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PostQualityAssessmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PostQualityAssessmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PostQualityAssessmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedraw_post {
		edges = append(edges, postqualityassessment.EdgeRawPost)
	}
	if m.clearedauthor {
		edges = append(edges, postqualityassessment.EdgeAuthor)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PostQualityAssessmentMutation) EdgeCleared(name string) bool {
	switch name {
	case postqualityassessment.EdgeRawPost:
		return m.clearedraw_post
	case postqualityassessment.EdgeAuthor:
		return m.clearedauthor
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PostQualityAssessmentMutation) ClearEdge(name string) error {
	switch name {
	case postqualityassessment.EdgeRawPost:
		m.ClearRawPost()
		return nil
	case postqualityassessment.EdgeAuthor:
		m.ClearAuthor()
		return nil
	}
	return fmt.Errorf("unknown PostQualityAssessment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PostQualityAssessmentMutation) ResetEdge(name string) error {
	switch name {
	case postqualityassessment.EdgeRawPost:
		m.ResetRawPost()
		return nil
	case postqualityassessment.EdgeAuthor:
		m.ResetAuthor()
		return nil
	}
	return fmt.Errorf("unknown PostQualityAssessment edge %s", name)
}

// RawPostMutation represents an operation that mutates the RawPost nodes in the graph.
type RawPostMutation struct {
	config
	op                        Op
	typ                       string
	id                        *int
	source                    *string
	external_id               *string
	content                   *string
	enriched_content          *string
	context_fetched           *bool
	has_context               *bool
	author_name               *string
	author_platform_id        *string
	url                       *string
	posted_at                 *time.Time
	collected_at              *time.Time
	raw_metadata              *string
	media_json                *string
	is_processed              *bool
	processed_at              *time.Time
	clearedFields             map[string]struct{}
	monitored_source          *int
	clearedmonitored_source   bool
	facts                     map[int]struct{}
	removedfacts              map[int]struct{}
	clearedfacts              bool
	logics                    map[int]struct{}
	removedlogics             map[int]struct{}
	clearedlogics             bool
	quality_assessment        *int
	clearedquality_assessment bool
	done                      bool
	oldValue                  func(context.Context) (*RawPost, error)
	predicates                []predicate.RawPost
}

var _ ent.Mutation = (*RawPostMutation)(nil)

// rawpostOption allows management of the mutation configuration using functional options.
type rawpostOption func(*RawPostMutation)

// newRawPostMutation creates new mutation for the RawPost entity.
func newRawPostMutation(c config, op Op, opts ...rawpostOption) *RawPostMutation {
	m := &RawPostMutation{
		config:        c,
		op:            op,
		typ:           TypeRawPost,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRawPostID sets the ID field of the mutation.
func withRawPostID(id int) rawpostOption {
	return func(m *RawPostMutation) {
		var (
			err   error
			once  sync.Once
			value *RawPost
		)
		m.oldValue = func(ctx context.Context) (*RawPost, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RawPost.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRawPost sets the old RawPost of the mutation.
func withRawPost(node *RawPost) rawpostOption {
	return func(m *RawPostMutation) {
		m.oldValue = func(context.Context) (*RawPost, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RawPostMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RawPostMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RawPostMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RawPostMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RawPost.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSource sets the "source" field.
func (m *RawPostMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *RawPostMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the RawPost entity.
// If the RawPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawPostMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *RawPostMutation) ResetSource() {
	m.source = nil
}

// SetExternalID sets the "external_id" field.
func (m *RawPostMutation) SetExternalID(s string) {
	m.external_id = &s
}

// ExternalID returns the value of the "external_id" field in the mutation.
func (m *RawPostMutation) ExternalID() (r string, exists bool) {
	v := m.external_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalID returns the old "external_id" field's value of the RawPost entity.
// If the RawPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawPostMutation) OldExternalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalID: %w", err)
	}
	return oldValue.ExternalID, nil
}

// ResetExternalID resets all changes to the "external_id" field.
func (m *RawPostMutation) ResetExternalID() {
	m.external_id = nil
}

// SetContent sets the "content" field.
func (m *RawPostMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *RawPostMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the RawPost entity.
// If the RawPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawPostMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *RawPostMutation) ResetContent() {
	m.content = nil
}

// SetEnrichedContent sets the "enriched_content" field.
func (m *RawPostMutation) SetEnrichedContent(s string) {
	m.enriched_content = &s
}

// EnrichedContent returns the value of the "enriched_content" field in the mutation.
func (m *RawPostMutation) EnrichedContent() (r string, exists bool) {
	v := m.enriched_content
	if v == nil {
		return
	}
	return *v, true
}

// OldEnrichedContent returns the old "enriched_content" field's value of the RawPost entity.
// If the RawPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawPostMutation) OldEnrichedContent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnrichedContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnrichedContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnrichedContent: %w", err)
	}
	return oldValue.EnrichedContent, nil
}

// ClearEnrichedContent clears the value of the "enriched_content" field.
func (m *RawPostMutation) ClearEnrichedContent() {
	m.enriched_content = nil
	m.clearedFields[rawpost.FieldEnrichedContent] = struct{}{}
}

// EnrichedContentCleared returns if the "enriched_content" field was cleared in this mutation.
func (m *RawPostMutation) EnrichedContentCleared() bool {
	_, ok := m.clearedFields[rawpost.FieldEnrichedContent]
	return ok
}

// ResetEnrichedContent resets all changes to the "enriched_content" field.
func (m *RawPostMutation) ResetEnrichedContent() {
	m.enriched_content = nil
	delete(m.clearedFields, rawpost.FieldEnrichedContent)
}

// SetContextFetched sets the "context_fetched" field.
func (m *RawPostMutation) SetContextFetched(b bool) {
	m.context_fetched = &b
}

// ContextFetched returns the value of the "context_fetched" field in the mutation.
func (m *RawPostMutation) ContextFetched() (r bool, exists bool) {
	v := m.context_fetched
	if v == nil {
		return
	}
	return *v, true
}

// OldContextFetched returns the old "context_fetched" field's value of the RawPost entity.
// If the RawPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawPostMutation) OldContextFetched(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextFetched is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextFetched requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextFetched: %w", err)
	}
	return oldValue.ContextFetched, nil
}

// ResetContextFetched resets all changes to the "context_fetched" field.
func (m *RawPostMutation) ResetContextFetched() {
	m.context_fetched = nil
}

// SetHasContext sets the "has_context" field.
func (m *RawPostMutation) SetHasContext(b bool) {
	m.has_context = &b
}

// HasContext returns the value of the "has_context" field in the mutation.
func (m *RawPostMutation) HasContext() (r bool, exists bool) {
	v := m.has_context
	if v == nil {
		return
	}
	return *v, true
}

// OldHasContext returns the old "has_context" field's value of the RawPost entity.
// If the RawPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawPostMutation) OldHasContext(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasContext: %w", err)
	}
	return oldValue.HasContext, nil
}

// ResetHasContext resets all changes to the "has_context" field.
func (m *RawPostMutation) ResetHasContext() {
	m.has_context = nil
}

// SetAuthorName sets the "author_name" field.
func (m *RawPostMutation) SetAuthorName(s string) {
	m.author_name = &s
}

// AuthorName returns the value of the "author_name" field in the mutation.
func (m *RawPostMutation) AuthorName() (r string, exists bool) {
	v := m.author_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorName returns the old "author_name" field's value of the RawPost entity.
// If the RawPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawPostMutation) OldAuthorName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorName: %w", err)
	}
	return oldValue.AuthorName, nil
}

// ResetAuthorName resets all changes to the "author_name" field.
func (m *RawPostMutation) ResetAuthorName() {
	m.author_name = nil
}

// SetAuthorPlatformID sets the "author_platform_id" field.
func (m *RawPostMutation) SetAuthorPlatformID(s string) {
	m.author_platform_id = &s
}

// AuthorPlatformID returns the value of the "author_platform_id" field in the mutation.
func (m *RawPostMutation) AuthorPlatformID() (r string, exists bool) {
	v := m.author_platform_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorPlatformID returns the old "author_platform_id" field's value of the RawPost entity.
// If the RawPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawPostMutation) OldAuthorPlatformID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorPlatformID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorPlatformID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorPlatformID: %w", err)
	}
	return oldValue.AuthorPlatformID, nil
}

// ClearAuthorPlatformID clears the value of the "author_platform_id" field.
func (m *RawPostMutation) ClearAuthorPlatformID() {
	m.author_platform_id = nil
	m.clearedFields[rawpost.FieldAuthorPlatformID] = struct{}{}
}

// AuthorPlatformIDCleared returns if the "author_platform_id" field was cleared in this mutation.
func (m *RawPostMutation) AuthorPlatformIDCleared() bool {
	_, ok := m.clearedFields[rawpost.FieldAuthorPlatformID]
	return ok
}

// ResetAuthorPlatformID resets all changes to the "author_platform_id" field.
func (m *RawPostMutation) ResetAuthorPlatformID() {
	m.author_platform_id = nil
	delete(m.clearedFields, rawpost.FieldAuthorPlatformID)
}

// SetURL sets the "url" field.
func (m *RawPostMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *RawPostMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the RawPost entity.
// If the RawPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawPostMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *RawPostMutation) ResetURL() {
	m.url = nil
}

// SetPostedAt sets the "posted_at" field.
func (m *RawPostMutation) SetPostedAt(t time.Time) {
	m.posted_at = &t
}

// PostedAt returns the value of the "posted_at" field in the mutation.
func (m *RawPostMutation) PostedAt() (r time.Time, exists bool) {
	v := m.posted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPostedAt returns the old "posted_at" field's value of the RawPost entity.
// If the RawPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawPostMutation) OldPostedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostedAt: %w", err)
	}
	return oldValue.PostedAt, nil
}

// ResetPostedAt resets all changes to the "posted_at" field.
func (m *RawPostMutation) ResetPostedAt() {
	m.posted_at = nil
}

// SetCollectedAt sets the "collected_at" field.
func (m *RawPostMutation) SetCollectedAt(t time.Time) {
	m.collected_at = &t
}

// CollectedAt returns the value of the "collected_at" field in the mutation.
func (m *RawPostMutation) CollectedAt() (r time.Time, exists bool) {
	v := m.collected_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCollectedAt returns the old "collected_at" field's value of the RawPost entity.
// If the RawPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawPostMutation) OldCollectedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCollectedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCollectedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCollectedAt: %w", err)
	}
	return oldValue.CollectedAt, nil
}

// ResetCollectedAt resets all changes to the "collected_at" field.
func (m *RawPostMutation) ResetCollectedAt() {
	m.collected_at = nil
}

// SetRawMetadata sets the "raw_metadata" field.
func (m *RawPostMutation) SetRawMetadata(s string) {
	m.raw_metadata = &s
}

// RawMetadata returns the value of the "raw_metadata" field in the mutation.
func (m *RawPostMutation) RawMetadata() (r string, exists bool) {
	v := m.raw_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldRawMetadata returns the old "raw_metadata" field's value of the RawPost entity.
// If the RawPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawPostMutation) OldRawMetadata(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawMetadata: %w", err)
	}
	return oldValue.RawMetadata, nil
}

// ClearRawMetadata clears the value of the "raw_metadata" field.
func (m *RawPostMutation) ClearRawMetadata() {
	m.raw_metadata = nil
	m.clearedFields[rawpost.FieldRawMetadata] = struct{}{}
}

// RawMetadataCleared returns if the "raw_metadata" field was cleared in this mutation.
func (m *RawPostMutation) RawMetadataCleared() bool {
	_, ok := m.clearedFields[rawpost.FieldRawMetadata]
	return ok
}

// ResetRawMetadata resets all changes to the "raw_metadata" field.
func (m *RawPostMutation) ResetRawMetadata() {
	m.raw_metadata = nil
	delete(m.clearedFields, rawpost.FieldRawMetadata)
}

// SetMediaJSON sets the "media_json" field.
func (m *RawPostMutation) SetMediaJSON(s string) {
	m.media_json = &s
}

// MediaJSON returns the value of the "media_json" field in the mutation.
func (m *RawPostMutation) MediaJSON() (r string, exists bool) {
	v := m.media_json
	if v == nil {
		return
	}
	return *v, true
}

// OldMediaJSON returns the old "media_json" field's value of the RawPost entity.
// If the RawPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawPostMutation) OldMediaJSON(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMediaJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMediaJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMediaJSON: %w", err)
	}
	return oldValue.MediaJSON, nil
}

// ClearMediaJSON clears the value of the "media_json" field.
func (m *RawPostMutation) ClearMediaJSON() {
	m.media_json = nil
	m.clearedFields[rawpost.FieldMediaJSON] = struct{}{}
}

// MediaJSONCleared returns if the "media_json" field was cleared in this mutation.
func (m *RawPostMutation) MediaJSONCleared() bool {
	_, ok := m.clearedFields[rawpost.FieldMediaJSON]
	return ok
}

// ResetMediaJSON resets all changes to the "media_json" field.
func (m *RawPostMutation) ResetMediaJSON() {
	m.media_json = nil
	delete(m.clearedFields, rawpost.FieldMediaJSON)
}

// SetIsProcessed sets the "is_processed" field.
func (m *RawPostMutation) SetIsProcessed(b bool) {
	m.is_processed = &b
}

// IsProcessed returns the value of the "is_processed" field in the mutation.
func (m *RawPostMutation) IsProcessed() (r bool, exists bool) {
	v := m.is_processed
	if v == nil {
		return
	}
	return *v, true
}

// OldIsProcessed returns the old "is_processed" field's value of the RawPost entity.
// If the RawPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawPostMutation) OldIsProcessed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsProcessed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsProcessed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsProcessed: %w", err)
	}
	return oldValue.IsProcessed, nil
}

// ResetIsProcessed resets all changes to the "is_processed" field.
func (m *RawPostMutation) ResetIsProcessed() {
	m.is_processed = nil
}

// SetProcessedAt sets the "processed_at" field.
func (m *RawPostMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *RawPostMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the RawPost entity.
// If the RawPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawPostMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *RawPostMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[rawpost.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *RawPostMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[rawpost.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *RawPostMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, rawpost.FieldProcessedAt)
}

// SetMonitoredSourceID sets the "monitored_source_id" field.
func (m *RawPostMutation) SetMonitoredSourceID(i int) {
	m.monitored_source = &i
}

// MonitoredSourceID returns the value of the "monitored_source_id" field in the mutation.
func (m *RawPostMutation) MonitoredSourceID() (r int, exists bool) {
	v := m.monitored_source
	if v == nil {
		return
	}
	return *v, true
}

// OldMonitoredSourceID returns the old "monitored_source_id" field's value of the RawPost entity.
// If the RawPost object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawPostMutation) OldMonitoredSourceID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonitoredSourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonitoredSourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonitoredSourceID: %w", err)
	}
	return oldValue.MonitoredSourceID, nil
}

// ClearMonitoredSourceID clears the value of the "monitored_source_id" field.
func (m *RawPostMutation) ClearMonitoredSourceID() {
	m.monitored_source = nil
	m.clearedFields[rawpost.FieldMonitoredSourceID] = struct{}{}
}

// MonitoredSourceIDCleared returns if the "monitored_source_id" field was cleared in this mutation.
func (m *RawPostMutation) MonitoredSourceIDCleared() bool {
	_, ok := m.clearedFields[rawpost.FieldMonitoredSourceID]
	return ok
}

// ResetMonitoredSourceID resets all changes to the "monitored_source_id" field.
func (m *RawPostMutation) ResetMonitoredSourceID() {
	m.monitored_source = nil
	delete(m.clearedFields, rawpost.FieldMonitoredSourceID)
}

// ClearMonitoredSource clears the "monitored_source" edge to the MonitoredSource entity.
func (m *RawPostMutation) ClearMonitoredSource() {
	m.clearedmonitored_source = true
	m.clearedFields[rawpost.FieldMonitoredSourceID] = struct{}{}
}

// MonitoredSourceCleared reports if the "monitored_source" edge to the MonitoredSource entity was cleared.
func (m *RawPostMutation) MonitoredSourceCleared() bool {
	return m.MonitoredSourceIDCleared() || m.clearedmonitored_source
}

// MonitoredSourceIDs returns the "monitored_source" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MonitoredSourceID instead. It exists only for internal usage by the builders.
func (m *RawPostMutation) MonitoredSourceIDs() (ids []int) {
	if id := m.monitored_source; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMonitoredSource resets all changes to the "monitored_source" edge.
func (m *RawPostMutation) ResetMonitoredSource() {
	m.monitored_source = nil
	m.clearedmonitored_source = false
}

// AddFactIDs adds the "facts" edge to the Fact entity by ids.
func (m *RawPostMutation) AddFactIDs(ids ...int) {
	if m.facts == nil {
		m.facts = make(map[int]struct{})
	}
	for i := range ids {
		m.facts[ids[i]] = struct{}{}
	}
}

// ClearFacts clears the "facts" edge to the Fact entity.
func (m *RawPostMutation) ClearFacts() {
	m.clearedfacts = true
}

// FactsCleared reports if the "facts" edge to the Fact entity was cleared.
func (m *RawPostMutation) FactsCleared() bool {
	return m.clearedfacts
}

// RemoveFactIDs removes the "facts" edge to the Fact entity by IDs.
func (m *RawPostMutation) RemoveFactIDs(ids ...int) {
	if m.removedfacts == nil {
		m.removedfacts = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.facts, ids[i])
		m.removedfacts[ids[i]] = struct{}{}
	}
}

// RemovedFacts returns the removed IDs of the "facts" edge to the Fact entity.
func (m *RawPostMutation) RemovedFactsIDs() (ids []int) {
	for id := range m.removedfacts {
		ids = append(ids, id)
	}
	return
}

// FactsIDs returns the "facts" edge IDs in the mutation.
func (m *RawPostMutation) FactsIDs() (ids []int) {
	for id := range m.facts {
		ids = append(ids, id)
	}
	return
}

// ResetFacts resets all changes to the "facts" edge.
func (m *RawPostMutation) ResetFacts() {
	m.facts = nil
	m.clearedfacts = false
	m.removedfacts = nil
}

// AddLogicIDs adds the "logics" edge to the Logic entity by ids.
func (m *RawPostMutation) AddLogicIDs(ids ...int) {
	if m.logics == nil {
		m.logics = make(map[int]struct{})
	}
	for i := range ids {
		m.logics[ids[i]] = struct{}{}
	}
}

// ClearLogics clears the "logics" edge to the Logic entity.
func (m *RawPostMutation) ClearLogics() {
	m.clearedlogics = true
}

// LogicsCleared reports if the "logics" edge to the Logic entity was cleared.
func (m *RawPostMutation) LogicsCleared() bool {
	return m.clearedlogics
}

// RemoveLogicIDs removes the "logics" edge to the Logic entity by IDs.
func (m *RawPostMutation) RemoveLogicIDs(ids ...int) {
	if m.removedlogics == nil {
		m.removedlogics = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.logics, ids[i])
		m.removedlogics[ids[i]] = struct{}{}
	}
}

// RemovedLogics returns the removed IDs of the "logics" edge to the Logic entity.
func (m *RawPostMutation) RemovedLogicsIDs() (ids []int) {
	for id := range m.removedlogics {
		ids = append(ids, id)
	}
	return
}

// LogicsIDs returns the "logics" edge IDs in the mutation.
func (m *RawPostMutation) LogicsIDs() (ids []int) {
	for id := range m.logics {
		ids = append(ids, id)
	}
	return
}

// ResetLogics resets all changes to the "logics" edge.
func (m *RawPostMutation) ResetLogics() {
	m.logics = nil
	m.clearedlogics = false
	m.removedlogics = nil
}

// SetQualityAssessmentID sets the "quality_assessment" edge to the PostQualityAssessment entity by id.
func (m *RawPostMutation) SetQualityAssessmentID(id int) {
	m.quality_assessment = &id
}

// ClearQualityAssessment clears the "quality_assessment" edge to the PostQualityAssessment entity.
func (m *RawPostMutation) ClearQualityAssessment() {
	m.clearedquality_assessment = true
}

// QualityAssessmentCleared reports if the "quality_assessment" edge to the PostQualityAssessment entity was cleared.
func (m *RawPostMutation) QualityAssessmentCleared() bool {
	return m.clearedquality_assessment
}

// QualityAssessmentID returns the "quality_assessment" edge ID in the mutation.
func (m *RawPostMutation) QualityAssessmentID() (id int, exists bool) {
	if m.quality_assessment != nil {
		return *m.quality_assessment, true
	}
	return
}

// QualityAssessmentIDs returns the "quality_assessment" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QualityAssessmentID instead. It exists only for internal usage by the builders.
func (m *RawPostMutation) QualityAssessmentIDs() (ids []int) {
	if id := m.quality_assessment; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQualityAssessment resets all changes to the "quality_assessment" edge.
func (m *RawPostMutation) ResetQualityAssessment() {
	m.quality_assessment = nil
	m.clearedquality_assessment = false
}

// Where appends a list predicates to the RawPostMutation builder.
func (m *RawPostMutation) Where(ps ...predicate.RawPost) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RawPostMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RawPostMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RawPost, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RawPostMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RawPostMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RawPost).
func (m *RawPostMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RawPostMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.source != nil {
		fields = append(fields, rawpost.FieldSource)
	}
	if m.external_id != nil {
		fields = append(fields, rawpost.FieldExternalID)
	}
	if m.content != nil {
		fields = append(fields, rawpost.FieldContent)
	}
	if m.enriched_content != nil {
		fields = append(fields, rawpost.FieldEnrichedContent)
	}
	if m.context_fetched != nil {
		fields = append(fields, rawpost.FieldContextFetched)
	}
	if m.has_context != nil {
		fields = append(fields, rawpost.FieldHasContext)
	}
	if m.author_name != nil {
		fields = append(fields, rawpost.FieldAuthorName)
	}
	if m.author_platform_id != nil {
		fields = append(fields, rawpost.FieldAuthorPlatformID)
	}
	if m.url != nil {
		fields = append(fields, rawpost.FieldURL)
	}
	if m.posted_at != nil {
		fields = append(fields, rawpost.FieldPostedAt)
	}
	if m.collected_at != nil {
		fields = append(fields, rawpost.FieldCollectedAt)
	}
	if m.raw_metadata != nil {
		fields = append(fields, rawpost.FieldRawMetadata)
	}
	if m.media_json != nil {
		fields = append(fields, rawpost.FieldMediaJSON)
	}
	if m.is_processed != nil {
		fields = append(fields, rawpost.FieldIsProcessed)
	}
	if m.processed_at != nil {
		fields = append(fields, rawpost.FieldProcessedAt)
	}
	if m.monitored_source != nil {
		fields = append(fields, rawpost.FieldMonitoredSourceID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RawPostMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rawpost.FieldSource:
		return m.Source()
	case rawpost.FieldExternalID:
		return m.ExternalID()
	case rawpost.FieldContent:
		return m.Content()
	case rawpost.FieldEnrichedContent:
		return m.EnrichedContent()
	case rawpost.FieldContextFetched:
		return m.ContextFetched()
	case rawpost.FieldHasContext:
		return m.HasContext()
	case rawpost.FieldAuthorName:
		return m.AuthorName()
	case rawpost.FieldAuthorPlatformID:
		return m.AuthorPlatformID()
	case rawpost.FieldURL:
		return m.URL()
	case rawpost.FieldPostedAt:
		return m.PostedAt()
	case rawpost.FieldCollectedAt:
		return m.CollectedAt()
	case rawpost.FieldRawMetadata:
		return m.RawMetadata()
	case rawpost.FieldMediaJSON:
		return m.MediaJSON()
	case rawpost.FieldIsProcessed:
		return m.IsProcessed()
	case rawpost.FieldProcessedAt:
		return m.ProcessedAt()
	case rawpost.FieldMonitoredSourceID:
		return m.MonitoredSourceID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RawPostMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rawpost.FieldSource:
		return m.OldSource(ctx)
	case rawpost.FieldExternalID:
		return m.OldExternalID(ctx)
	case rawpost.FieldContent:
		return m.OldContent(ctx)
	case rawpost.FieldEnrichedContent:
		return m.OldEnrichedContent(ctx)
	case rawpost.FieldContextFetched:
		return m.OldContextFetched(ctx)
	case rawpost.FieldHasContext:
		return m.OldHasContext(ctx)
	case rawpost.FieldAuthorName:
		return m.OldAuthorName(ctx)
	case rawpost.FieldAuthorPlatformID:
		return m.OldAuthorPlatformID(ctx)
	case rawpost.FieldURL:
		return m.OldURL(ctx)
	case rawpost.FieldPostedAt:
		return m.OldPostedAt(ctx)
	case rawpost.FieldCollectedAt:
		return m.OldCollectedAt(ctx)
	case rawpost.FieldRawMetadata:
		return m.OldRawMetadata(ctx)
	case rawpost.FieldMediaJSON:
		return m.OldMediaJSON(ctx)
	case rawpost.FieldIsProcessed:
		return m.OldIsProcessed(ctx)
	case rawpost.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	case rawpost.FieldMonitoredSourceID:
		return m.OldMonitoredSourceID(ctx)
	}
	return nil, fmt.Errorf("unknown RawPost field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RawPostMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rawpost.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case rawpost.FieldExternalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalID(v)
		return nil
	case rawpost.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case rawpost.FieldEnrichedContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnrichedContent(v)
		return nil
	case rawpost.FieldContextFetched:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextFetched(v)
		return nil
	case rawpost.FieldHasContext:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasContext(v)
		return nil
	case rawpost.FieldAuthorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorName(v)
		return nil
	case rawpost.FieldAuthorPlatformID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorPlatformID(v)
		return nil
	case rawpost.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case rawpost.FieldPostedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostedAt(v)
		return nil
	case rawpost.FieldCollectedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCollectedAt(v)
		return nil
	case rawpost.FieldRawMetadata:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawMetadata(v)
		return nil
	case rawpost.FieldMediaJSON:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMediaJSON(v)
		return nil
	case rawpost.FieldIsProcessed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsProcessed(v)
		return nil
	case rawpost.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	case rawpost.FieldMonitoredSourceID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonitoredSourceID(v)
		return nil
	}
	return fmt.Errorf("unknown RawPost field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RawPostMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RawPostMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RawPostMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RawPost numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RawPostMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(rawpost.FieldEnrichedContent) {
		fields = append(fields, rawpost.FieldEnrichedContent)
	}
	if m.FieldCleared(rawpost.FieldAuthorPlatformID) {
		fields = append(fields, rawpost.FieldAuthorPlatformID)
	}
	if m.FieldCleared(rawpost.FieldRawMetadata) {
		fields = append(fields, rawpost.FieldRawMetadata)
	}
	if m.FieldCleared(rawpost.FieldMediaJSON) {
		fields = append(fields, rawpost.FieldMediaJSON)
	}
	if m.FieldCleared(rawpost.FieldProcessedAt) {
		fields = append(fields, rawpost.FieldProcessedAt)
	}
	if m.FieldCleared(rawpost.FieldMonitoredSourceID) {
		fields = append(fields, rawpost.FieldMonitoredSourceID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RawPostMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RawPostMutation) ClearField(name string) error {
	switch name {
	case rawpost.FieldEnrichedContent:
		m.ClearEnrichedContent()
		return nil
	case rawpost.FieldAuthorPlatformID:
		m.ClearAuthorPlatformID()
		return nil
	case rawpost.FieldRawMetadata:
		m.ClearRawMetadata()
		return nil
	case rawpost.FieldMediaJSON:
		m.ClearMediaJSON()
		return nil
	case rawpost.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	case rawpost.FieldMonitoredSourceID:
		m.ClearMonitoredSourceID()
		return nil
	}
	return fmt.Errorf("unknown RawPost nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RawPostMutation) ResetField(name string) error {
	switch name {
	case rawpost.FieldSource:
		m.ResetSource()
		return nil
	case rawpost.FieldExternalID:
		m.ResetExternalID()
		return nil
	case rawpost.FieldContent:
		m.ResetContent()
		return nil
	case rawpost.FieldEnrichedContent:
		m.ResetEnrichedContent()
		return nil
	case rawpost.FieldContextFetched:
		m.ResetContextFetched()
		return nil
	case rawpost.FieldHasContext:
		m.ResetHasContext()
		return nil
	case rawpost.FieldAuthorName:
		m.ResetAuthorName()
		return nil
	case rawpost.FieldAuthorPlatformID:
		m.ResetAuthorPlatformID()
		return nil
	case rawpost.FieldURL:
		m.ResetURL()
		return nil
	case rawpost.FieldPostedAt:
		m.ResetPostedAt()
		return nil
	case rawpost.FieldCollectedAt:
		m.ResetCollectedAt()
		return nil
	case rawpost.FieldRawMetadata:
		m.ResetRawMetadata()
		return nil
	case rawpost.FieldMediaJSON:
		m.ResetMediaJSON()
		return nil
	case rawpost.FieldIsProcessed:
		m.ResetIsProcessed()
		return nil
	case rawpost.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	case rawpost.FieldMonitoredSourceID:
		m.ResetMonitoredSourceID()
		return nil
	}
	return fmt.Errorf("unknown RawPost field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RawPostMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.monitored_source != nil {
		edges = append(edges, rawpost.EdgeMonitoredSource)
	}
	if m.facts != nil {
		edges = append(edges, rawpost.EdgeFacts)
	}
	if m.logics != nil {
		edges = append(edges, rawpost.EdgeLogics)
	}
	if m.quality_assessment != nil {
		edges = append(edges, rawpost.EdgeQualityAssessment)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RawPostMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case rawpost.EdgeMonitoredSource:
		if id := m.monitored_source; id != nil {
			return []ent.Value{*id}
		}
	case rawpost.EdgeFacts:
		ids := make([]ent.Value, 0, len(m.facts))
		for id := range m.facts {
			ids = append(ids, id)
		}
		return ids
	case rawpost.EdgeLogics:
		ids := make([]ent.Value, 0, len(m.logics))
		for id := range m.logics {
			ids = append(ids, id)
		}
		return ids
	case rawpost.EdgeQualityAssessment:
		if id := m.quality_assessment; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RawPostMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedfacts != nil {
		edges = append(edges, rawpost.EdgeFacts)
	}
	if m.removedlogics != nil {
		edges = append(edges, rawpost.EdgeLogics)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RawPostMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case rawpost.EdgeFacts:
		ids := make([]ent.Value, 0, len(m.removedfacts))
		for id := range m.removedfacts {
			ids = append(ids, id)
		}
		return ids
	case rawpost.EdgeLogics:
		ids := make([]ent.Value, 0, len(m.removedlogics))
		for id := range m.removedlogics {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RawPostMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedmonitored_source {
		edges = append(edges, rawpost.EdgeMonitoredSource)
	}
	if m.clearedfacts {
		edges = append(edges, rawpost.EdgeFacts)
	}
	if m.clearedlogics {
		edges = append(edges, rawpost.EdgeLogics)
	}
	if m.clearedquality_assessment {
		edges = append(edges, rawpost.EdgeQualityAssessment)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RawPostMutation) EdgeCleared(name string) bool {
	switch name {
	case rawpost.EdgeMonitoredSource:
		return m.clearedmonitored_source
	case rawpost.EdgeFacts:
		return m.clearedfacts
	case rawpost.EdgeLogics:
		return m.clearedlogics
	case rawpost.EdgeQualityAssessment:
		return m.clearedquality_assessment
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RawPostMutation) ClearEdge(name string) error {
	switch name {
	case rawpost.EdgeMonitoredSource:
		m.ClearMonitoredSource()
		return nil
	case rawpost.EdgeQualityAssessment:
		m.ClearQualityAssessment()
		return nil
	}
	return fmt.Errorf("unknown RawPost unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RawPostMutation) ResetEdge(name string) error {
	switch name {
	case rawpost.EdgeMonitoredSource:
		m.ResetMonitoredSource()
		return nil
	case rawpost.EdgeFacts:
		m.ResetFacts()
		return nil
	case rawpost.EdgeLogics:
		m.ResetLogics()
		return nil
	case rawpost.EdgeQualityAssessment:
		m.ResetQualityAssessment()
		return nil
	}
	return fmt.Errorf("unknown RawPost edge %s", name)
}

// SolutionMutation represents an operation that mutates the Solution nodes in the graph.
type SolutionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	claim                  *string
	canonical_claim        *string
	action_type            *solution.ActionType
	action_target          *string
	action_rationale       *string
	simulated_action_note  *string
	monitoring_source_org  *string
	monitoring_source_url  *string
	monitoring_period_note *string
	monitoring_start       *time.Time
	monitoring_end         *time.Time
	status                 *solution.Status
	source_url             *string
	source_platform        *string
	posted_at              *time.Time
	collected_at           *time.Time
	raw_extraction         *string
	clearedFields          map[string]struct{}
	topic                  *int
	clearedtopic           bool
	author                 *int
	clearedauthor          bool
	logics                 map[int]struct{}
	removedlogics          map[int]struct{}
	clearedlogics          bool
	assessments            map[int]struct{}
	removedassessments     map[int]struct{}
	clearedassessments     bool
	done                   bool
	oldValue               func(context.Context) (*Solution, error)
	predicates             []predicate.Solution
}

var _ ent.Mutation = (*SolutionMutation)(nil)

// solutionOption allows management of the mutation configuration using functional options.
type solutionOption func(*SolutionMutation)

// newSolutionMutation creates new mutation for the Solution entity.
func newSolutionMutation(c config, op Op, opts ...solutionOption) *SolutionMutation {
	m := &SolutionMutation{
		config:        c,
		op:            op,
		typ:           TypeSolution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSolutionID sets the ID field of the mutation.
func withSolutionID(id int) solutionOption {
	return func(m *SolutionMutation) {
		var (
			err   error
			once  sync.Once
			value *Solution
		)
		m.oldValue = func(ctx context.Context) (*Solution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Solution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSolution sets the old Solution of the mutation.
func withSolution(node *Solution) solutionOption {
	return func(m *SolutionMutation) {
		m.oldValue = func(context.Context) (*Solution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SolutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SolutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SolutionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SolutionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Solution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTopicID sets the "topic_id" field.
func (m *SolutionMutation) SetTopicID(i int) {
	m.topic = &i
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *SolutionMutation) TopicID() (r int, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldTopicID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// ClearTopicID clears the value of the "topic_id" field.
func (m *SolutionMutation) ClearTopicID() {
	m.topic = nil
	m.clearedFields[solution.FieldTopicID] = struct{}{}
}

// TopicIDCleared returns if the "topic_id" field was cleared in this mutation.
func (m *SolutionMutation) TopicIDCleared() bool {
	_, ok := m.clearedFields[solution.FieldTopicID]
	return ok
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *SolutionMutation) ResetTopicID() {
	m.topic = nil
	delete(m.clearedFields, solution.FieldTopicID)
}

// SetAuthorID sets the "author_id" field.
func (m *SolutionMutation) SetAuthorID(i int) {
	m.author = &i
}

// AuthorID returns the value of the "author_id" field in the mutation.
func (m *SolutionMutation) AuthorID() (r int, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorID returns the old "author_id" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldAuthorID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorID: %w", err)
	}
	return oldValue.AuthorID, nil
}

// ResetAuthorID resets all changes to the "author_id" field.
func (m *SolutionMutation) ResetAuthorID() {
	m.author = nil
}

// SetClaim sets the "claim" field.
func (m *SolutionMutation) SetClaim(s string) {
	m.claim = &s
}

// Claim returns the value of the "claim" field in the mutation.
func (m *SolutionMutation) Claim() (r string, exists bool) {
	v := m.claim
	if v == nil {
		return
	}
	return *v, true
}

// OldClaim returns the old "claim" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldClaim(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaim is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaim requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaim: %w", err)
	}
	return oldValue.Claim, nil
}

// ResetClaim resets all changes to the "claim" field.
func (m *SolutionMutation) ResetClaim() {
	m.claim = nil
}

// SetCanonicalClaim sets the "canonical_claim" field.
func (m *SolutionMutation) SetCanonicalClaim(s string) {
	m.canonical_claim = &s
}

// CanonicalClaim returns the value of the "canonical_claim" field in the mutation.
func (m *SolutionMutation) CanonicalClaim() (r string, exists bool) {
	v := m.canonical_claim
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalClaim returns the old "canonical_claim" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldCanonicalClaim(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalClaim is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalClaim requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalClaim: %w", err)
	}
	return oldValue.CanonicalClaim, nil
}

// ClearCanonicalClaim clears the value of the "canonical_claim" field.
func (m *SolutionMutation) ClearCanonicalClaim() {
	m.canonical_claim = nil
	m.clearedFields[solution.FieldCanonicalClaim] = struct{}{}
}

// CanonicalClaimCleared returns if the "canonical_claim" field was cleared in this mutation.
func (m *SolutionMutation) CanonicalClaimCleared() bool {
	_, ok := m.clearedFields[solution.FieldCanonicalClaim]
	return ok
}

// ResetCanonicalClaim resets all changes to the "canonical_claim" field.
func (m *SolutionMutation) ResetCanonicalClaim() {
	m.canonical_claim = nil
	delete(m.clearedFields, solution.FieldCanonicalClaim)
}

// SetActionType sets the "action_type" field.
func (m *SolutionMutation) SetActionType(st solution.ActionType) {
	m.action_type = &st
}

// ActionType returns the value of the "action_type" field in the mutation.
func (m *SolutionMutation) ActionType() (r solution.ActionType, exists bool) {
	v := m.action_type
	if v == nil {
		return
	}
	return *v, true
}

// OldActionType returns the old "action_type" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldActionType(ctx context.Context) (v *solution.ActionType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionType: %w", err)
	}
	return oldValue.ActionType, nil
}

// ClearActionType clears the value of the "action_type" field.
func (m *SolutionMutation) ClearActionType() {
	m.action_type = nil
	m.clearedFields[solution.FieldActionType] = struct{}{}
}

// ActionTypeCleared returns if the "action_type" field was cleared in this mutation.
func (m *SolutionMutation) ActionTypeCleared() bool {
	_, ok := m.clearedFields[solution.FieldActionType]
	return ok
}

// ResetActionType resets all changes to the "action_type" field.
func (m *SolutionMutation) ResetActionType() {
	m.action_type = nil
	delete(m.clearedFields, solution.FieldActionType)
}

// SetActionTarget sets the "action_target" field.
func (m *SolutionMutation) SetActionTarget(s string) {
	m.action_target = &s
}

// ActionTarget returns the value of the "action_target" field in the mutation.
func (m *SolutionMutation) ActionTarget() (r string, exists bool) {
	v := m.action_target
	if v == nil {
		return
	}
	return *v, true
}

// OldActionTarget returns the old "action_target" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldActionTarget(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionTarget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionTarget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionTarget: %w", err)
	}
	return oldValue.ActionTarget, nil
}

// ClearActionTarget clears the value of the "action_target" field.
func (m *SolutionMutation) ClearActionTarget() {
	m.action_target = nil
	m.clearedFields[solution.FieldActionTarget] = struct{}{}
}

// ActionTargetCleared returns if the "action_target" field was cleared in this mutation.
func (m *SolutionMutation) ActionTargetCleared() bool {
	_, ok := m.clearedFields[solution.FieldActionTarget]
	return ok
}

// ResetActionTarget resets all changes to the "action_target" field.
func (m *SolutionMutation) ResetActionTarget() {
	m.action_target = nil
	delete(m.clearedFields, solution.FieldActionTarget)
}

// SetActionRationale sets the "action_rationale" field.
func (m *SolutionMutation) SetActionRationale(s string) {
	m.action_rationale = &s
}

// ActionRationale returns the value of the "action_rationale" field in the mutation.
func (m *SolutionMutation) ActionRationale() (r string, exists bool) {
	v := m.action_rationale
	if v == nil {
		return
	}
	return *v, true
}

// OldActionRationale returns the old "action_rationale" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldActionRationale(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionRationale is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionRationale requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionRationale: %w", err)
	}
	return oldValue.ActionRationale, nil
}

// ClearActionRationale clears the value of the "action_rationale" field.
func (m *SolutionMutation) ClearActionRationale() {
	m.action_rationale = nil
	m.clearedFields[solution.FieldActionRationale] = struct{}{}
}

// ActionRationaleCleared returns if the "action_rationale" field was cleared in this mutation.
func (m *SolutionMutation) ActionRationaleCleared() bool {
	_, ok := m.clearedFields[solution.FieldActionRationale]
	return ok
}

// ResetActionRationale resets all changes to the "action_rationale" field.
func (m *SolutionMutation) ResetActionRationale() {
	m.action_rationale = nil
	delete(m.clearedFields, solution.FieldActionRationale)
}

// SetSimulatedActionNote sets the "simulated_action_note" field.
func (m *SolutionMutation) SetSimulatedActionNote(s string) {
	m.simulated_action_note = &s
}

// SimulatedActionNote returns the value of the "simulated_action_note" field in the mutation.
func (m *SolutionMutation) SimulatedActionNote() (r string, exists bool) {
	v := m.simulated_action_note
	if v == nil {
		return
	}
	return *v, true
}

// OldSimulatedActionNote returns the old "simulated_action_note" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldSimulatedActionNote(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSimulatedActionNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSimulatedActionNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSimulatedActionNote: %w", err)
	}
	return oldValue.SimulatedActionNote, nil
}

// ClearSimulatedActionNote clears the value of the "simulated_action_note" field.
func (m *SolutionMutation) ClearSimulatedActionNote() {
	m.simulated_action_note = nil
	m.clearedFields[solution.FieldSimulatedActionNote] = struct{}{}
}

// SimulatedActionNoteCleared returns if the "simulated_action_note" field was cleared in this mutation.
func (m *SolutionMutation) SimulatedActionNoteCleared() bool {
	_, ok := m.clearedFields[solution.FieldSimulatedActionNote]
	return ok
}

// ResetSimulatedActionNote resets all changes to the "simulated_action_note" field.
func (m *SolutionMutation) ResetSimulatedActionNote() {
	m.simulated_action_note = nil
	delete(m.clearedFields, solution.FieldSimulatedActionNote)
}

// SetMonitoringSourceOrg sets the "monitoring_source_org" field.
func (m *SolutionMutation) SetMonitoringSourceOrg(s string) {
	m.monitoring_source_org = &s
}

// MonitoringSourceOrg returns the value of the "monitoring_source_org" field in the mutation.
func (m *SolutionMutation) MonitoringSourceOrg() (r string, exists bool) {
	v := m.monitoring_source_org
	if v == nil {
		return
	}
	return *v, true
}

// OldMonitoringSourceOrg returns the old "monitoring_source_org" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldMonitoringSourceOrg(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonitoringSourceOrg is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonitoringSourceOrg requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonitoringSourceOrg: %w", err)
	}
	return oldValue.MonitoringSourceOrg, nil
}

// ClearMonitoringSourceOrg clears the value of the "monitoring_source_org" field.
func (m *SolutionMutation) ClearMonitoringSourceOrg() {
	m.monitoring_source_org = nil
	m.clearedFields[solution.FieldMonitoringSourceOrg] = struct{}{}
}

// MonitoringSourceOrgCleared returns if the "monitoring_source_org" field was cleared in this mutation.
func (m *SolutionMutation) MonitoringSourceOrgCleared() bool {
	_, ok := m.clearedFields[solution.FieldMonitoringSourceOrg]
	return ok
}

// ResetMonitoringSourceOrg resets all changes to the "monitoring_source_org" field.
func (m *SolutionMutation) ResetMonitoringSourceOrg() {
	m.monitoring_source_org = nil
	delete(m.clearedFields, solution.FieldMonitoringSourceOrg)
}

// SetMonitoringSourceURL sets the "monitoring_source_url" field.
func (m *SolutionMutation) SetMonitoringSourceURL(s string) {
	m.monitoring_source_url = &s
}

// MonitoringSourceURL returns the value of the "monitoring_source_url" field in the mutation.
func (m *SolutionMutation) MonitoringSourceURL() (r string, exists bool) {
	v := m.monitoring_source_url
	if v == nil {
		return
	}
	return *v, true
}

// OldMonitoringSourceURL returns the old "monitoring_source_url" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldMonitoringSourceURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonitoringSourceURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonitoringSourceURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonitoringSourceURL: %w", err)
	}
	return oldValue.MonitoringSourceURL, nil
}

// ClearMonitoringSourceURL clears the value of the "monitoring_source_url" field.
func (m *SolutionMutation) ClearMonitoringSourceURL() {
	m.monitoring_source_url = nil
	m.clearedFields[solution.FieldMonitoringSourceURL] = struct{}{}
}

// MonitoringSourceURLCleared returns if the "monitoring_source_url" field was cleared in this mutation.
func (m *SolutionMutation) MonitoringSourceURLCleared() bool {
	_, ok := m.clearedFields[solution.FieldMonitoringSourceURL]
	return ok
}

// ResetMonitoringSourceURL resets all changes to the "monitoring_source_url" field.
func (m *SolutionMutation) ResetMonitoringSourceURL() {
	m.monitoring_source_url = nil
	delete(m.clearedFields, solution.FieldMonitoringSourceURL)
}

// SetMonitoringPeriodNote sets the "monitoring_period_note" field.
func (m *SolutionMutation) SetMonitoringPeriodNote(s string) {
	m.monitoring_period_note = &s
}

// MonitoringPeriodNote returns the value of the "monitoring_period_note" field in the mutation.
func (m *SolutionMutation) MonitoringPeriodNote() (r string, exists bool) {
	v := m.monitoring_period_note
	if v == nil {
		return
	}
	return *v, true
}

// OldMonitoringPeriodNote returns the old "monitoring_period_note" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldMonitoringPeriodNote(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonitoringPeriodNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonitoringPeriodNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonitoringPeriodNote: %w", err)
	}
	return oldValue.MonitoringPeriodNote, nil
}

// ClearMonitoringPeriodNote clears the value of the "monitoring_period_note" field.
func (m *SolutionMutation) ClearMonitoringPeriodNote() {
	m.monitoring_period_note = nil
	m.clearedFields[solution.FieldMonitoringPeriodNote] = struct{}{}
}

// MonitoringPeriodNoteCleared returns if the "monitoring_period_note" field was cleared in this mutation.
func (m *SolutionMutation) MonitoringPeriodNoteCleared() bool {
	_, ok := m.clearedFields[solution.FieldMonitoringPeriodNote]
	return ok
}

// ResetMonitoringPeriodNote resets all changes to the "monitoring_period_note" field.
func (m *SolutionMutation) ResetMonitoringPeriodNote() {
	m.monitoring_period_note = nil
	delete(m.clearedFields, solution.FieldMonitoringPeriodNote)
}

// SetMonitoringStart sets the "monitoring_start" field.
func (m *SolutionMutation) SetMonitoringStart(t time.Time) {
	m.monitoring_start = &t
}

// MonitoringStart returns the value of the "monitoring_start" field in the mutation.
func (m *SolutionMutation) MonitoringStart() (r time.Time, exists bool) {
	v := m.monitoring_start
	if v == nil {
		return
	}
	return *v, true
}

// OldMonitoringStart returns the old "monitoring_start" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldMonitoringStart(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonitoringStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonitoringStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonitoringStart: %w", err)
	}
	return oldValue.MonitoringStart, nil
}

// ClearMonitoringStart clears the value of the "monitoring_start" field.
func (m *SolutionMutation) ClearMonitoringStart() {
	m.monitoring_start = nil
	m.clearedFields[solution.FieldMonitoringStart] = struct{}{}
}

// MonitoringStartCleared returns if the "monitoring_start" field was cleared in this mutation.
func (m *SolutionMutation) MonitoringStartCleared() bool {
	_, ok := m.clearedFields[solution.FieldMonitoringStart]
	return ok
}

// ResetMonitoringStart resets all changes to the "monitoring_start" field.
func (m *SolutionMutation) ResetMonitoringStart() {
	m.monitoring_start = nil
	delete(m.clearedFields, solution.FieldMonitoringStart)
}

// SetMonitoringEnd sets the "monitoring_end" field.
func (m *SolutionMutation) SetMonitoringEnd(t time.Time) {
	m.monitoring_end = &t
}

// MonitoringEnd returns the value of the "monitoring_end" field in the mutation.
func (m *SolutionMutation) MonitoringEnd() (r time.Time, exists bool) {
	v := m.monitoring_end
	if v == nil {
		return
	}
	return *v, true
}

// OldMonitoringEnd returns the old "monitoring_end" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldMonitoringEnd(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMonitoringEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMonitoringEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMonitoringEnd: %w", err)
	}
	return oldValue.MonitoringEnd, nil
}

// ClearMonitoringEnd clears the value of the "monitoring_end" field.
func (m *SolutionMutation) ClearMonitoringEnd() {
	m.monitoring_end = nil
	m.clearedFields[solution.FieldMonitoringEnd] = struct{}{}
}

// MonitoringEndCleared returns if the "monitoring_end" field was cleared in this mutation.
func (m *SolutionMutation) MonitoringEndCleared() bool {
	_, ok := m.clearedFields[solution.FieldMonitoringEnd]
	return ok
}

// ResetMonitoringEnd resets all changes to the "monitoring_end" field.
func (m *SolutionMutation) ResetMonitoringEnd() {
	m.monitoring_end = nil
	delete(m.clearedFields, solution.FieldMonitoringEnd)
}

// SetStatus sets the "status" field.
func (m *SolutionMutation) SetStatus(s solution.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SolutionMutation) Status() (r solution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldStatus(ctx context.Context) (v solution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SolutionMutation) ResetStatus() {
	m.status = nil
}

// SetSourceURL sets the "source_url" field.
func (m *SolutionMutation) SetSourceURL(s string) {
	m.source_url = &s
}

// SourceURL returns the value of the "source_url" field in the mutation.
func (m *SolutionMutation) SourceURL() (r string, exists bool) {
	v := m.source_url
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceURL returns the old "source_url" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldSourceURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceURL: %w", err)
	}
	return oldValue.SourceURL, nil
}

// ClearSourceURL clears the value of the "source_url" field.
func (m *SolutionMutation) ClearSourceURL() {
	m.source_url = nil
	m.clearedFields[solution.FieldSourceURL] = struct{}{}
}

// SourceURLCleared returns if the "source_url" field was cleared in this mutation.
func (m *SolutionMutation) SourceURLCleared() bool {
	_, ok := m.clearedFields[solution.FieldSourceURL]
	return ok
}

// ResetSourceURL resets all changes to the "source_url" field.
func (m *SolutionMutation) ResetSourceURL() {
	m.source_url = nil
	delete(m.clearedFields, solution.FieldSourceURL)
}

// SetSourcePlatform sets the "source_platform" field.
func (m *SolutionMutation) SetSourcePlatform(s string) {
	m.source_platform = &s
}

// SourcePlatform returns the value of the "source_platform" field in the mutation.
func (m *SolutionMutation) SourcePlatform() (r string, exists bool) {
	v := m.source_platform
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePlatform returns the old "source_platform" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldSourcePlatform(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePlatform: %w", err)
	}
	return oldValue.SourcePlatform, nil
}

// ClearSourcePlatform clears the value of the "source_platform" field.
func (m *SolutionMutation) ClearSourcePlatform() {
	m.source_platform = nil
	m.clearedFields[solution.FieldSourcePlatform] = struct{}{}
}

// SourcePlatformCleared returns if the "source_platform" field was cleared in this mutation.
func (m *SolutionMutation) SourcePlatformCleared() bool {
	_, ok := m.clearedFields[solution.FieldSourcePlatform]
	return ok
}

// ResetSourcePlatform resets all changes to the "source_platform" field.
func (m *SolutionMutation) ResetSourcePlatform() {
	m.source_platform = nil
	delete(m.clearedFields, solution.FieldSourcePlatform)
}

// SetPostedAt sets the "posted_at" field.
func (m *SolutionMutation) SetPostedAt(t time.Time) {
	m.posted_at = &t
}

// PostedAt returns the value of the "posted_at" field in the mutation.
func (m *SolutionMutation) PostedAt() (r time.Time, exists bool) {
	v := m.posted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPostedAt returns the old "posted_at" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldPostedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostedAt: %w", err)
	}
	return oldValue.PostedAt, nil
}

// ClearPostedAt clears the value of the "posted_at" field.
func (m *SolutionMutation) ClearPostedAt() {
	m.posted_at = nil
	m.clearedFields[solution.FieldPostedAt] = struct{}{}
}

// PostedAtCleared returns if the "posted_at" field was cleared in this mutation.
func (m *SolutionMutation) PostedAtCleared() bool {
	_, ok := m.clearedFields[solution.FieldPostedAt]
	return ok
}

// ResetPostedAt resets all changes to the "posted_at" field.
func (m *SolutionMutation) ResetPostedAt() {
	m.posted_at = nil
	delete(m.clearedFields, solution.FieldPostedAt)
}

// SetCollectedAt sets the "collected_at" field.
func (m *SolutionMutation) SetCollectedAt(t time.Time) {
	m.collected_at = &t
}

// CollectedAt returns the value of the "collected_at" field in the mutation.
func (m *SolutionMutation) CollectedAt() (r time.Time, exists bool) {
	v := m.collected_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCollectedAt returns the old "collected_at" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldCollectedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCollectedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCollectedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCollectedAt: %w", err)
	}
	return oldValue.CollectedAt, nil
}

// ResetCollectedAt resets all changes to the "collected_at" field.
func (m *SolutionMutation) ResetCollectedAt() {
	m.collected_at = nil
}

// SetRawExtraction sets the "raw_extraction" field.
func (m *SolutionMutation) SetRawExtraction(s string) {
	m.raw_extraction = &s
}

// RawExtraction returns the value of the "raw_extraction" field in the mutation.
func (m *SolutionMutation) RawExtraction() (r string, exists bool) {
	v := m.raw_extraction
	if v == nil {
		return
	}
	return *v, true
}

// OldRawExtraction returns the old "raw_extraction" field's value of the Solution entity.
// If the Solution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionMutation) OldRawExtraction(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawExtraction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawExtraction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawExtraction: %w", err)
	}
	return oldValue.RawExtraction, nil
}

// ClearRawExtraction clears the value of the "raw_extraction" field.
func (m *SolutionMutation) ClearRawExtraction() {
	m.raw_extraction = nil
	m.clearedFields[solution.FieldRawExtraction] = struct{}{}
}

// RawExtractionCleared returns if the "raw_extraction" field was cleared in this mutation.
func (m *SolutionMutation) RawExtractionCleared() bool {
	_, ok := m.clearedFields[solution.FieldRawExtraction]
	return ok
}

// ResetRawExtraction resets all changes to the "raw_extraction" field.
func (m *SolutionMutation) ResetRawExtraction() {
	m.raw_extraction = nil
	delete(m.clearedFields, solution.FieldRawExtraction)
}

// ClearTopic clears the "topic" edge to the Topic entity.
func (m *SolutionMutation) ClearTopic() {
	m.clearedtopic = true
	m.clearedFields[solution.FieldTopicID] = struct{}{}
}

// TopicCleared reports if the "topic" edge to the Topic entity was cleared.
func (m *SolutionMutation) TopicCleared() bool {
	return m.TopicIDCleared() || m.clearedtopic
}

// TopicIDs returns the "topic" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TopicID instead. It exists only for internal usage by the builders.
func (m *SolutionMutation) TopicIDs() (ids []int) {
	if id := m.topic; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTopic resets all changes to the "topic" edge.
func (m *SolutionMutation) ResetTopic() {
	m.topic = nil
	m.clearedtopic = false
}

// ClearAuthor clears the "author" edge to the Author entity.
func (m *SolutionMutation) ClearAuthor() {
	m.clearedauthor = true
	m.clearedFields[solution.FieldAuthorID] = struct{}{}
}

// AuthorCleared reports if the "author" edge to the Author entity was cleared.
func (m *SolutionMutation) AuthorCleared() bool {
	return m.clearedauthor
}

// AuthorIDs returns the "author" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AuthorID instead. It exists only for internal usage by the builders.
func (m *SolutionMutation) AuthorIDs() (ids []int) {
	if id := m.author; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAuthor resets all changes to the "author" edge.
func (m *SolutionMutation) ResetAuthor() {
	m.author = nil
	m.clearedauthor = false
}

// AddLogicIDs adds the "logics" edge to the Logic entity by ids.
func (m *SolutionMutation) AddLogicIDs(ids ...int) {
	if m.logics == nil {
		m.logics = make(map[int]struct{})
	}
	for i := range ids {
		m.logics[ids[i]] = struct{}{}
	}
}

// ClearLogics clears the "logics" edge to the Logic entity.
func (m *SolutionMutation) ClearLogics() {
	m.clearedlogics = true
}

// LogicsCleared reports if the "logics" edge to the Logic entity was cleared.
func (m *SolutionMutation) LogicsCleared() bool {
	return m.clearedlogics
}

// RemoveLogicIDs removes the "logics" edge to the Logic entity by IDs.
func (m *SolutionMutation) RemoveLogicIDs(ids ...int) {
	if m.removedlogics == nil {
		m.removedlogics = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.logics, ids[i])
		m.removedlogics[ids[i]] = struct{}{}
	}
}

// RemovedLogics returns the removed IDs of the "logics" edge to the Logic entity.
func (m *SolutionMutation) RemovedLogicsIDs() (ids []int) {
	for id := range m.removedlogics {
		ids = append(ids, id)
	}
	return
}

// LogicsIDs returns the "logics" edge IDs in the mutation.
func (m *SolutionMutation) LogicsIDs() (ids []int) {
	for id := range m.logics {
		ids = append(ids, id)
	}
	return
}

// ResetLogics resets all changes to the "logics" edge.
func (m *SolutionMutation) ResetLogics() {
	m.logics = nil
	m.clearedlogics = false
	m.removedlogics = nil
}

// AddAssessmentIDs adds the "assessments" edge to the SolutionAssessment entity by ids.
func (m *SolutionMutation) AddAssessmentIDs(ids ...int) {
	if m.assessments == nil {
		m.assessments = make(map[int]struct{})
	}
	for i := range ids {
		m.assessments[ids[i]] = struct{}{}
	}
}

// ClearAssessments clears the "assessments" edge to the SolutionAssessment entity.
func (m *SolutionMutation) ClearAssessments() {
	m.clearedassessments = true
}

// AssessmentsCleared reports if the "assessments" edge to the SolutionAssessment entity was cleared.
func (m *SolutionMutation) AssessmentsCleared() bool {
	return m.clearedassessments
}

// RemoveAssessmentIDs removes the "assessments" edge to the SolutionAssessment entity by IDs.
func (m *SolutionMutation) RemoveAssessmentIDs(ids ...int) {
	if m.removedassessments == nil {
		m.removedassessments = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.assessments, ids[i])
		m.removedassessments[ids[i]] = struct{}{}
	}
}

// RemovedAssessments returns the removed IDs of the "assessments" edge to the SolutionAssessment entity.
func (m *SolutionMutation) RemovedAssessmentsIDs() (ids []int) {
	for id := range m.removedassessments {
		ids = append(ids, id)
	}
	return
}

// AssessmentsIDs returns the "assessments" edge IDs in the mutation.
func (m *SolutionMutation) AssessmentsIDs() (ids []int) {
	for id := range m.assessments {
		ids = append(ids, id)
	}
	return
}

// ResetAssessments resets all changes to the "assessments" edge.
func (m *SolutionMutation) ResetAssessments() {
	m.assessments = nil
	m.clearedassessments = false
	m.removedassessments = nil
}

// Where appends a list predicates to the SolutionMutation builder.
func (m *SolutionMutation) Where(ps ...predicate.Solution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SolutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SolutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Solution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SolutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SolutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Solution).
func (m *SolutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SolutionMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.topic != nil {
		fields = append(fields, solution.FieldTopicID)
	}
	if m.author != nil {
		fields = append(fields, solution.FieldAuthorID)
	}
	if m.claim != nil {
		fields = append(fields, solution.FieldClaim)
	}
	if m.canonical_claim != nil {
		fields = append(fields, solution.FieldCanonicalClaim)
	}
	if m.action_type != nil {
		fields = append(fields, solution.FieldActionType)
	}
	if m.action_target != nil {
		fields = append(fields, solution.FieldActionTarget)
	}
	if m.action_rationale != nil {
		fields = append(fields, solution.FieldActionRationale)
	}
	if m.simulated_action_note != nil {
		fields = append(fields, solution.FieldSimulatedActionNote)
	}
	if m.monitoring_source_org != nil {
		fields = append(fields, solution.FieldMonitoringSourceOrg)
	}
	if m.monitoring_source_url != nil {
		fields = append(fields, solution.FieldMonitoringSourceURL)
	}
	if m.monitoring_period_note != nil {
		fields = append(fields, solution.FieldMonitoringPeriodNote)
	}
	if m.monitoring_start != nil {
		fields = append(fields, solution.FieldMonitoringStart)
	}
	if m.monitoring_end != nil {
		fields = append(fields, solution.FieldMonitoringEnd)
	}
	if m.status != nil {
		fields = append(fields, solution.FieldStatus)
	}
	if m.source_url != nil {
		fields = append(fields, solution.FieldSourceURL)
	}
	if m.source_platform != nil {
		fields = append(fields, solution.FieldSourcePlatform)
	}
	if m.posted_at != nil {
		fields = append(fields, solution.FieldPostedAt)
	}
	if m.collected_at != nil {
		fields = append(fields, solution.FieldCollectedAt)
	}
	if m.raw_extraction != nil {
		fields = append(fields, solution.FieldRawExtraction)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SolutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case solution.FieldTopicID:
		return m.TopicID()
	case solution.FieldAuthorID:
		return m.AuthorID()
	case solution.FieldClaim:
		return m.Claim()
	case solution.FieldCanonicalClaim:
		return m.CanonicalClaim()
	case solution.FieldActionType:
		return m.ActionType()
	case solution.FieldActionTarget:
		return m.ActionTarget()
	case solution.FieldActionRationale:
		return m.ActionRationale()
	case solution.FieldSimulatedActionNote:
		return m.SimulatedActionNote()
	case solution.FieldMonitoringSourceOrg:
		return m.MonitoringSourceOrg()
	case solution.FieldMonitoringSourceURL:
		return m.MonitoringSourceURL()
	case solution.FieldMonitoringPeriodNote:
		return m.MonitoringPeriodNote()
	case solution.FieldMonitoringStart:
		return m.MonitoringStart()
	case solution.FieldMonitoringEnd:
		return m.MonitoringEnd()
	case solution.FieldStatus:
		return m.Status()
	case solution.FieldSourceURL:
		return m.SourceURL()
	case solution.FieldSourcePlatform:
		return m.SourcePlatform()
	case solution.FieldPostedAt:
		return m.PostedAt()
	case solution.FieldCollectedAt:
		return m.CollectedAt()
	case solution.FieldRawExtraction:
		return m.RawExtraction()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SolutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case solution.FieldTopicID:
		return m.OldTopicID(ctx)
	case solution.FieldAuthorID:
		return m.OldAuthorID(ctx)
	case solution.FieldClaim:
		return m.OldClaim(ctx)
	case solution.FieldCanonicalClaim:
		return m.OldCanonicalClaim(ctx)
	case solution.FieldActionType:
		return m.OldActionType(ctx)
	case solution.FieldActionTarget:
		return m.OldActionTarget(ctx)
	case solution.FieldActionRationale:
		return m.OldActionRationale(ctx)
	case solution.FieldSimulatedActionNote:
		return m.OldSimulatedActionNote(ctx)
	case solution.FieldMonitoringSourceOrg:
		return m.OldMonitoringSourceOrg(ctx)
	case solution.FieldMonitoringSourceURL:
		return m.OldMonitoringSourceURL(ctx)
	case solution.FieldMonitoringPeriodNote:
		return m.OldMonitoringPeriodNote(ctx)
	case solution.FieldMonitoringStart:
		return m.OldMonitoringStart(ctx)
	case solution.FieldMonitoringEnd:
		return m.OldMonitoringEnd(ctx)
	case solution.FieldStatus:
		return m.OldStatus(ctx)
	case solution.FieldSourceURL:
		return m.OldSourceURL(ctx)
	case solution.FieldSourcePlatform:
		return m.OldSourcePlatform(ctx)
	case solution.FieldPostedAt:
		return m.OldPostedAt(ctx)
	case solution.FieldCollectedAt:
		return m.OldCollectedAt(ctx)
	case solution.FieldRawExtraction:
		return m.OldRawExtraction(ctx)
	}
	return nil, fmt.Errorf("unknown Solution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SolutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case solution.FieldTopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case solution.FieldAuthorID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorID(v)
		return nil
	case solution.FieldClaim:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaim(v)
		return nil
	case solution.FieldCanonicalClaim:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalClaim(v)
		return nil
	case solution.FieldActionType:
		v, ok := value.(solution.ActionType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionType(v)
		return nil
	case solution.FieldActionTarget:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionTarget(v)
		return nil
	case solution.FieldActionRationale:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionRationale(v)
		return nil
	case solution.FieldSimulatedActionNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSimulatedActionNote(v)
		return nil
	case solution.FieldMonitoringSourceOrg:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonitoringSourceOrg(v)
		return nil
	case solution.FieldMonitoringSourceURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonitoringSourceURL(v)
		return nil
	case solution.FieldMonitoringPeriodNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonitoringPeriodNote(v)
		return nil
	case solution.FieldMonitoringStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonitoringStart(v)
		return nil
	case solution.FieldMonitoringEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMonitoringEnd(v)
		return nil
	case solution.FieldStatus:
		v, ok := value.(solution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case solution.FieldSourceURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceURL(v)
		return nil
	case solution.FieldSourcePlatform:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePlatform(v)
		return nil
	case solution.FieldPostedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostedAt(v)
		return nil
	case solution.FieldCollectedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCollectedAt(v)
		return nil
	case solution.FieldRawExtraction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawExtraction(v)
		return nil
	}
	return fmt.Errorf("unknown Solution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SolutionMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SolutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SolutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Solution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SolutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(solution.FieldTopicID) {
		fields = append(fields, solution.FieldTopicID)
	}
	if m.FieldCleared(solution.FieldCanonicalClaim) {
		fields = append(fields, solution.FieldCanonicalClaim)
	}
	if m.FieldCleared(solution.FieldActionType) {
		fields = append(fields, solution.FieldActionType)
	}
	if m.FieldCleared(solution.FieldActionTarget) {
		fields = append(fields, solution.FieldActionTarget)
	}
	if m.FieldCleared(solution.FieldActionRationale) {
		fields = append(fields, solution.FieldActionRationale)
	}
	if m.FieldCleared(solution.FieldSimulatedActionNote) {
		fields = append(fields, solution.FieldSimulatedActionNote)
	}
	if m.FieldCleared(solution.FieldMonitoringSourceOrg) {
		fields = append(fields, solution.FieldMonitoringSourceOrg)
	}
	if m.FieldCleared(solution.FieldMonitoringSourceURL) {
		fields = append(fields, solution.FieldMonitoringSourceURL)
	}
	if m.FieldCleared(solution.FieldMonitoringPeriodNote) {
		fields = append(fields, solution.FieldMonitoringPeriodNote)
	}
	if m.FieldCleared(solution.FieldMonitoringStart) {
		fields = append(fields, solution.FieldMonitoringStart)
	}
	if m.FieldCleared(solution.FieldMonitoringEnd) {
		fields = append(fields, solution.FieldMonitoringEnd)
	}
	if m.FieldCleared(solution.FieldSourceURL) {
		fields = append(fields, solution.FieldSourceURL)
	}
	if m.FieldCleared(solution.FieldSourcePlatform) {
		fields = append(fields, solution.FieldSourcePlatform)
	}
	if m.FieldCleared(solution.FieldPostedAt) {
		fields = append(fields, solution.FieldPostedAt)
	}
	if m.FieldCleared(solution.FieldRawExtraction) {
		fields = append(fields, solution.FieldRawExtraction)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SolutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SolutionMutation) ClearField(name string) error {
	switch name {
	case solution.FieldTopicID:
		m.ClearTopicID()
		return nil
	case solution.FieldCanonicalClaim:
		m.ClearCanonicalClaim()
		return nil
	case solution.FieldActionType:
		m.ClearActionType()
		return nil
	case solution.FieldActionTarget:
		m.ClearActionTarget()
		return nil
	case solution.FieldActionRationale:
		m.ClearActionRationale()
		return nil
	case solution.FieldSimulatedActionNote:
		m.ClearSimulatedActionNote()
		return nil
	case solution.FieldMonitoringSourceOrg:
		m.ClearMonitoringSourceOrg()
		return nil
	case solution.FieldMonitoringSourceURL:
		m.ClearMonitoringSourceURL()
		return nil
	case solution.FieldMonitoringPeriodNote:
		m.ClearMonitoringPeriodNote()
		return nil
	case solution.FieldMonitoringStart:
		m.ClearMonitoringStart()
		return nil
	case solution.FieldMonitoringEnd:
		m.ClearMonitoringEnd()
		return nil
	case solution.FieldSourceURL:
		m.ClearSourceURL()
		return nil
	case solution.FieldSourcePlatform:
		m.ClearSourcePlatform()
		return nil
	case solution.FieldPostedAt:
		m.ClearPostedAt()
		return nil
	case solution.FieldRawExtraction:
		m.ClearRawExtraction()
		return nil
	}
	return fmt.Errorf("unknown Solution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SolutionMutation) ResetField(name string) error {
	switch name {
	case solution.FieldTopicID:
		m.ResetTopicID()
		return nil
	case solution.FieldAuthorID:
		m.ResetAuthorID()
		return nil
	case solution.FieldClaim:
		m.ResetClaim()
		return nil
	case solution.FieldCanonicalClaim:
		m.ResetCanonicalClaim()
		return nil
	case solution.FieldActionType:
		m.ResetActionType()
		return nil
	case solution.FieldActionTarget:
		m.ResetActionTarget()
		return nil
	case solution.FieldActionRationale:
		m.ResetActionRationale()
		return nil
	case solution.FieldSimulatedActionNote:
		m.ResetSimulatedActionNote()
		return nil
	case solution.FieldMonitoringSourceOrg:
		m.ResetMonitoringSourceOrg()
		return nil
	case solution.FieldMonitoringSourceURL:
		m.ResetMonitoringSourceURL()
		return nil
	case solution.FieldMonitoringPeriodNote:
		m.ResetMonitoringPeriodNote()
		return nil
	case solution.FieldMonitoringStart:
		m.ResetMonitoringStart()
		return nil
	case solution.FieldMonitoringEnd:
		m.ResetMonitoringEnd()
		return nil
	case solution.FieldStatus:
		m.ResetStatus()
		return nil
	case solution.FieldSourceURL:
		m.ResetSourceURL()
		return nil
	case solution.FieldSourcePlatform:
		m.ResetSourcePlatform()
		return nil
	case solution.FieldPostedAt:
		m.ResetPostedAt()
		return nil
	case solution.FieldCollectedAt:
		m.ResetCollectedAt()
		return nil
	case solution.FieldRawExtraction:
		m.ResetRawExtraction()
		return nil
	}
	return fmt.Errorf("unknown Solution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SolutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.topic != nil {
		edges = append(edges, solution.EdgeTopic)
	}
	if m.author != nil {
		edges = append(edges, solution.EdgeAuthor)
	}
	if m.logics != nil {
		edges = append(edges, solution.EdgeLogics)
	}
	if m.assessments != nil {
		edges = append(edges, solution.EdgeAssessments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SolutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case solution.EdgeTopic:
		if id := m.topic; id != nil {
			return []ent.Value{*id}
		}
	case solution.EdgeAuthor:
		if id := m.author; id != nil {
			return []ent.Value{*id}
		}
	case solution.EdgeLogics:
		ids := make([]ent.Value, 0, len(m.logics))
		for id := range m.logics {
			ids = append(ids, id)
		}
		return ids
	case solution.EdgeAssessments:
		ids := make([]ent.Value, 0, len(m.assessments))
		for id := range m.assessments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SolutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedlogics != nil {
		edges = append(edges, solution.EdgeLogics)
	}
	if m.removedassessments != nil {
		edges = append(edges, solution.EdgeAssessments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SolutionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case solution.EdgeLogics:
		ids := make([]ent.Value, 0, len(m.removedlogics))
		for id := range m.removedlogics {
			ids = append(ids, id)
		}
		return ids
	case solution.EdgeAssessments:
		ids := make([]ent.Value, 0, len(m.removedassessments))
		for id := range m.removedassessments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SolutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedtopic {
		edges = append(edges, solution.EdgeTopic)
	}
	if m.clearedauthor {
		edges = append(edges, solution.EdgeAuthor)
	}
	if m.clearedlogics {
		edges = append(edges, solution.EdgeLogics)
	}
	if m.clearedassessments {
		edges = append(edges, solution.EdgeAssessments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SolutionMutation) EdgeCleared(name string) bool {
	switch name {
	case solution.EdgeTopic:
		return m.clearedtopic
	case solution.EdgeAuthor:
		return m.clearedauthor
	case solution.EdgeLogics:
		return m.clearedlogics
	case solution.EdgeAssessments:
		return m.clearedassessments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SolutionMutation) ClearEdge(name string) error {
	switch name {
	case solution.EdgeTopic:
		m.ClearTopic()
		return nil
	case solution.EdgeAuthor:
		m.ClearAuthor()
		return nil
	}
	return fmt.Errorf("unknown Solution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SolutionMutation) ResetEdge(name string) error {
	switch name {
	case solution.EdgeTopic:
		m.ResetTopic()
		return nil
	case solution.EdgeAuthor:
		m.ResetAuthor()
		return nil
	case solution.EdgeLogics:
		m.ResetLogics()
		return nil
	case solution.EdgeAssessments:
		m.ResetAssessments()
		return nil
	}
	return fmt.Errorf("unknown Solution edge %s", name)
}

// SolutionAssessmentMutation represents an operation that mutates the SolutionAssessment nodes in the graph.
type SolutionAssessmentMutation struct {
	config
	op               Op
	typ              string
	id               *int
	verdict          *solutionassessment.Verdict
	evidence_text    *string
	evidence_tier    *int
	addevidence_tier *int
	notes            *string
	role_fit         *solutionassessment.RoleFit
	role_fit_note    *string
	assessed_at      *time.Time
	clearedFields    map[string]struct{}
	solution         *int
	clearedsolution  bool
	done             bool
	oldValue         func(context.Context) (*SolutionAssessment, error)
	predicates       []predicate.SolutionAssessment
}

var _ ent.Mutation = (*SolutionAssessmentMutation)(nil)

// solutionassessmentOption allows management of the mutation configuration using functional options.
type solutionassessmentOption func(*SolutionAssessmentMutation)

// newSolutionAssessmentMutation creates new mutation for the SolutionAssessment entity.
func newSolutionAssessmentMutation(c config, op Op, opts ...solutionassessmentOption) *SolutionAssessmentMutation {
	m := &SolutionAssessmentMutation{
		config:        c,
		op:            op,
		typ:           TypeSolutionAssessment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSolutionAssessmentID sets the ID field of the mutation.
func withSolutionAssessmentID(id int) solutionassessmentOption {
	return func(m *SolutionAssessmentMutation) {
		var (
			err   error
			once  sync.Once
			value *SolutionAssessment
		)
		m.oldValue = func(ctx context.Context) (*SolutionAssessment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SolutionAssessment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSolutionAssessment sets the old SolutionAssessment of the mutation.
func withSolutionAssessment(node *SolutionAssessment) solutionassessmentOption {
	return func(m *SolutionAssessmentMutation) {
		m.oldValue = func(context.Context) (*SolutionAssessment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SolutionAssessmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SolutionAssessmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SolutionAssessmentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SolutionAssessmentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SolutionAssessment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSolutionID sets the "solution_id" field.
func (m *SolutionAssessmentMutation) SetSolutionID(i int) {
	m.solution = &i
}

// SolutionID returns the value of the "solution_id" field in the mutation.
func (m *SolutionAssessmentMutation) SolutionID() (r int, exists bool) {
	v := m.solution
	if v == nil {
		return
	}
	return *v, true
}

// OldSolutionID returns the old "solution_id" field's value of the SolutionAssessment entity.
// If the SolutionAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionAssessmentMutation) OldSolutionID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSolutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSolutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSolutionID: %w", err)
	}
	return oldValue.SolutionID, nil
}

// ResetSolutionID resets all changes to the "solution_id" field.
func (m *SolutionAssessmentMutation) ResetSolutionID() {
	m.solution = nil
}

// SetVerdict sets the "verdict" field.
func (m *SolutionAssessmentMutation) SetVerdict(s solutionassessment.Verdict) {
	m.verdict = &s
}

// Verdict returns the value of the "verdict" field in the mutation.
func (m *SolutionAssessmentMutation) Verdict() (r solutionassessment.Verdict, exists bool) {
	v := m.verdict
	if v == nil {
		return
	}
	return *v, true
}

// OldVerdict returns the old "verdict" field's value of the SolutionAssessment entity.
// If the SolutionAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionAssessmentMutation) OldVerdict(ctx context.Context) (v solutionassessment.Verdict, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerdict is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerdict requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerdict: %w", err)
	}
	return oldValue.Verdict, nil
}

// ResetVerdict resets all changes to the "verdict" field.
func (m *SolutionAssessmentMutation) ResetVerdict() {
	m.verdict = nil
}

// SetEvidenceText sets the "evidence_text" field.
func (m *SolutionAssessmentMutation) SetEvidenceText(s string) {
	m.evidence_text = &s
}

// EvidenceText returns the value of the "evidence_text" field in the mutation.
func (m *SolutionAssessmentMutation) EvidenceText() (r string, exists bool) {
	v := m.evidence_text
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidenceText returns the old "evidence_text" field's value of the SolutionAssessment entity.
// If the SolutionAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionAssessmentMutation) OldEvidenceText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidenceText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidenceText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidenceText: %w", err)
	}
	return oldValue.EvidenceText, nil
}

// ClearEvidenceText clears the value of the "evidence_text" field.
func (m *SolutionAssessmentMutation) ClearEvidenceText() {
	m.evidence_text = nil
	m.clearedFields[solutionassessment.FieldEvidenceText] = struct{}{}
}

// EvidenceTextCleared returns if the "evidence_text" field was cleared in this mutation.
func (m *SolutionAssessmentMutation) EvidenceTextCleared() bool {
	_, ok := m.clearedFields[solutionassessment.FieldEvidenceText]
	return ok
}

// ResetEvidenceText resets all changes to the "evidence_text" field.
func (m *SolutionAssessmentMutation) ResetEvidenceText() {
	m.evidence_text = nil
	delete(m.clearedFields, solutionassessment.FieldEvidenceText)
}

// SetEvidenceTier sets the "evidence_tier" field.
func (m *SolutionAssessmentMutation) SetEvidenceTier(i int) {
	m.evidence_tier = &i
	m.addevidence_tier = nil
}

// EvidenceTier returns the value of the "evidence_tier" field in the mutation.
func (m *SolutionAssessmentMutation) EvidenceTier() (r int, exists bool) {
	v := m.evidence_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidenceTier returns the old "evidence_tier" field's value of the SolutionAssessment entity.
// If the SolutionAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionAssessmentMutation) OldEvidenceTier(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidenceTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidenceTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidenceTier: %w", err)
	}
	return oldValue.EvidenceTier, nil
}

// AddEvidenceTier adds i to the "evidence_tier" field.
func (m *SolutionAssessmentMutation) AddEvidenceTier(i int) {
	if m.addevidence_tier != nil {
		*m.addevidence_tier += i
	} else {
		m.addevidence_tier = &i
	}
}

// AddedEvidenceTier returns the value that was added to the "evidence_tier" field in this mutation.
func (m *SolutionAssessmentMutation) AddedEvidenceTier() (r int, exists bool) {
	v := m.addevidence_tier
	if v == nil {
		return
	}
	return *v, true
}

// ClearEvidenceTier clears the value of the "evidence_tier" field.
func (m *SolutionAssessmentMutation) ClearEvidenceTier() {
	m.evidence_tier = nil
	m.addevidence_tier = nil
	m.clearedFields[solutionassessment.FieldEvidenceTier] = struct{}{}
}

// EvidenceTierCleared returns if the "evidence_tier" field was cleared in this mutation.
func (m *SolutionAssessmentMutation) EvidenceTierCleared() bool {
	_, ok := m.clearedFields[solutionassessment.FieldEvidenceTier]
	return ok
}

// ResetEvidenceTier resets all changes to the "evidence_tier" field.
func (m *SolutionAssessmentMutation) ResetEvidenceTier() {
	m.evidence_tier = nil
	m.addevidence_tier = nil
	delete(m.clearedFields, solutionassessment.FieldEvidenceTier)
}

// SetNotes sets the "notes" field.
func (m *SolutionAssessmentMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *SolutionAssessmentMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the SolutionAssessment entity.
// If the SolutionAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionAssessmentMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *SolutionAssessmentMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[solutionassessment.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *SolutionAssessmentMutation) NotesCleared() bool {
	_, ok := m.clearedFields[solutionassessment.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *SolutionAssessmentMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, solutionassessment.FieldNotes)
}

// SetRoleFit sets the "role_fit" field.
func (m *SolutionAssessmentMutation) SetRoleFit(sf solutionassessment.RoleFit) {
	m.role_fit = &sf
}

// RoleFit returns the value of the "role_fit" field in the mutation.
func (m *SolutionAssessmentMutation) RoleFit() (r solutionassessment.RoleFit, exists bool) {
	v := m.role_fit
	if v == nil {
		return
	}
	return *v, true
}

// OldRoleFit returns the old "role_fit" field's value of the SolutionAssessment entity.
// If the SolutionAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionAssessmentMutation) OldRoleFit(ctx context.Context) (v *solutionassessment.RoleFit, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoleFit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoleFit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoleFit: %w", err)
	}
	return oldValue.RoleFit, nil
}

// ClearRoleFit clears the value of the "role_fit" field.
func (m *SolutionAssessmentMutation) ClearRoleFit() {
	m.role_fit = nil
	m.clearedFields[solutionassessment.FieldRoleFit] = struct{}{}
}

// RoleFitCleared returns if the "role_fit" field was cleared in this mutation.
func (m *SolutionAssessmentMutation) RoleFitCleared() bool {
	_, ok := m.clearedFields[solutionassessment.FieldRoleFit]
	return ok
}

// ResetRoleFit resets all changes to the "role_fit" field.
func (m *SolutionAssessmentMutation) ResetRoleFit() {
	m.role_fit = nil
	delete(m.clearedFields, solutionassessment.FieldRoleFit)
}

// SetRoleFitNote sets the "role_fit_note" field.
func (m *SolutionAssessmentMutation) SetRoleFitNote(s string) {
	m.role_fit_note = &s
}

// RoleFitNote returns the value of the "role_fit_note" field in the mutation.
func (m *SolutionAssessmentMutation) RoleFitNote() (r string, exists bool) {
	v := m.role_fit_note
	if v == nil {
		return
	}
	return *v, true
}

// OldRoleFitNote returns the old "role_fit_note" field's value of the SolutionAssessment entity.
// If the SolutionAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionAssessmentMutation) OldRoleFitNote(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoleFitNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoleFitNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoleFitNote: %w", err)
	}
	return oldValue.RoleFitNote, nil
}

// ClearRoleFitNote clears the value of the "role_fit_note" field.
func (m *SolutionAssessmentMutation) ClearRoleFitNote() {
	m.role_fit_note = nil
	m.clearedFields[solutionassessment.FieldRoleFitNote] = struct{}{}
}

// RoleFitNoteCleared returns if the "role_fit_note" field was cleared in this mutation.
func (m *SolutionAssessmentMutation) RoleFitNoteCleared() bool {
	_, ok := m.clearedFields[solutionassessment.FieldRoleFitNote]
	return ok
}

// ResetRoleFitNote resets all changes to the "role_fit_note" field.
func (m *SolutionAssessmentMutation) ResetRoleFitNote() {
	m.role_fit_note = nil
	delete(m.clearedFields, solutionassessment.FieldRoleFitNote)
}

// SetAssessedAt sets the "assessed_at" field.
func (m *SolutionAssessmentMutation) SetAssessedAt(t time.Time) {
	m.assessed_at = &t
}

// AssessedAt returns the value of the "assessed_at" field in the mutation.
func (m *SolutionAssessmentMutation) AssessedAt() (r time.Time, exists bool) {
	v := m.assessed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessedAt returns the old "assessed_at" field's value of the SolutionAssessment entity.
// If the SolutionAssessment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SolutionAssessmentMutation) OldAssessedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessedAt: %w", err)
	}
	return oldValue.AssessedAt, nil
}

// ResetAssessedAt resets all changes to the "assessed_at" field.
func (m *SolutionAssessmentMutation) ResetAssessedAt() {
	m.assessed_at = nil
}

// ClearSolution clears the "solution" edge to the Solution entity.
func (m *SolutionAssessmentMutation) ClearSolution() {
	m.clearedsolution = true
	m.clearedFields[solutionassessment.FieldSolutionID] = struct{}{}
}

// SolutionCleared reports if the "solution" edge to the Solution entity was cleared.
func (m *SolutionAssessmentMutation) SolutionCleared() bool {
	return m.clearedsolution
}

// SolutionIDs returns the "solution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SolutionID instead. It exists only for internal usage by the builders.
func (m *SolutionAssessmentMutation) SolutionIDs() (ids []int) {
	if id := m.solution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSolution resets all changes to the "solution" edge.
func (m *SolutionAssessmentMutation) ResetSolution() {
	m.solution = nil
	m.clearedsolution = false
}

// Where appends a list predicates to the SolutionAssessmentMutation builder.
func (m *SolutionAssessmentMutation) Where(ps ...predicate.SolutionAssessment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SolutionAssessmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SolutionAssessmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SolutionAssessment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SolutionAssessmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SolutionAssessmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SolutionAssessment).
func (m *SolutionAssessmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SolutionAssessmentMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.solution != nil {
		fields = append(fields, solutionassessment.FieldSolutionID)
	}
	if m.verdict != nil {
		fields = append(fields, solutionassessment.FieldVerdict)
	}
	if m.evidence_text != nil {
		fields = append(fields, solutionassessment.FieldEvidenceText)
	}
	if m.evidence_tier != nil {
		fields = append(fields, solutionassessment.FieldEvidenceTier)
	}
	if m.notes != nil {
		fields = append(fields, solutionassessment.FieldNotes)
	}
	if m.role_fit != nil {
		fields = append(fields, solutionassessment.FieldRoleFit)
	}
	if m.role_fit_note != nil {
		fields = append(fields, solutionassessment.FieldRoleFitNote)
	}
	if m.assessed_at != nil {
		fields = append(fields, solutionassessment.FieldAssessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SolutionAssessmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case solutionassessment.FieldSolutionID:
		return m.SolutionID()
	case solutionassessment.FieldVerdict:
		return m.Verdict()
	case solutionassessment.FieldEvidenceText:
		return m.EvidenceText()
	case solutionassessment.FieldEvidenceTier:
		return m.EvidenceTier()
	case solutionassessment.FieldNotes:
		return m.Notes()
	case solutionassessment.FieldRoleFit:
		return m.RoleFit()
	case solutionassessment.FieldRoleFitNote:
		return m.RoleFitNote()
	case solutionassessment.FieldAssessedAt:
		return m.AssessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SolutionAssessmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case solutionassessment.FieldSolutionID:
		return m.OldSolutionID(ctx)
	case solutionassessment.FieldVerdict:
		return m.OldVerdict(ctx)
	case solutionassessment.FieldEvidenceText:
		return m.OldEvidenceText(ctx)
	case solutionassessment.FieldEvidenceTier:
		return m.OldEvidenceTier(ctx)
	case solutionassessment.FieldNotes:
		return m.OldNotes(ctx)
	case solutionassessment.FieldRoleFit:
		return m.OldRoleFit(ctx)
	case solutionassessment.FieldRoleFitNote:
		return m.OldRoleFitNote(ctx)
	case solutionassessment.FieldAssessedAt:
		return m.OldAssessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SolutionAssessment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SolutionAssessmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case solutionassessment.FieldSolutionID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSolutionID(v)
		return nil
	case solutionassessment.FieldVerdict:
		v, ok := value.(solutionassessment.Verdict)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerdict(v)
		return nil
	case solutionassessment.FieldEvidenceText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidenceText(v)
		return nil
	case solutionassessment.FieldEvidenceTier:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidenceTier(v)
		return nil
	case solutionassessment.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case solutionassessment.FieldRoleFit:
		v, ok := value.(solutionassessment.RoleFit)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoleFit(v)
		return nil
	case solutionassessment.FieldRoleFitNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoleFitNote(v)
		return nil
	case solutionassessment.FieldAssessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SolutionAssessment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SolutionAssessmentMutation) AddedFields() []string {
	var fields []string
	if m.addevidence_tier != nil {
		fields = append(fields, solutionassessment.FieldEvidenceTier)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SolutionAssessmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case solutionassessment.FieldEvidenceTier:
		return m.AddedEvidenceTier()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SolutionAssessmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case solutionassessment.FieldEvidenceTier:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEvidenceTier(v)
		return nil
	}
	return fmt.Errorf("unknown SolutionAssessment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SolutionAssessmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(solutionassessment.FieldEvidenceText) {
		fields = append(fields, solutionassessment.FieldEvidenceText)
	}
	if m.FieldCleared(solutionassessment.FieldEvidenceTier) {
		fields = append(fields, solutionassessment.FieldEvidenceTier)
	}
	if m.FieldCleared(solutionassessment.FieldNotes) {
		fields = append(fields, solutionassessment.FieldNotes)
	}
	if m.FieldCleared(solutionassessment.FieldRoleFit) {
		fields = append(fields, solutionassessment.FieldRoleFit)
	}
	if m.FieldCleared(solutionassessment.FieldRoleFitNote) {
		fields = append(fields, solutionassessment.FieldRoleFitNote)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SolutionAssessmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SolutionAssessmentMutation) ClearField(name string) error {
	switch name {
	case solutionassessment.FieldEvidenceText:
		m.ClearEvidenceText()
		return nil
	case solutionassessment.FieldEvidenceTier:
		m.ClearEvidenceTier()
		return nil
	case solutionassessment.FieldNotes:
		m.ClearNotes()
		return nil
	case solutionassessment.FieldRoleFit:
		m.ClearRoleFit()
		return nil
	case solutionassessment.FieldRoleFitNote:
		m.ClearRoleFitNote()
		return nil
	}
	return fmt.Errorf("unknown SolutionAssessment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SolutionAssessmentMutation) ResetField(name string) error {
	switch name {
	case solutionassessment.FieldSolutionID:
		m.ResetSolutionID()
		return nil
	case solutionassessment.FieldVerdict:
		m.ResetVerdict()
		return nil
	case solutionassessment.FieldEvidenceText:
		m.ResetEvidenceText()
		return nil
	case solutionassessment.FieldEvidenceTier:
		m.ResetEvidenceTier()
		return nil
	case solutionassessment.FieldNotes:
		m.ResetNotes()
		return nil
	case solutionassessment.FieldRoleFit:
		m.ResetRoleFit()
		return nil
	case solutionassessment.FieldRoleFitNote:
		m.ResetRoleFitNote()
		return nil
	case solutionassessment.FieldAssessedAt:
		m.ResetAssessedAt()
		return nil
	}
	return fmt.Errorf("unknown SolutionAssessment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SolutionAssessmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.solution != nil {
		edges = append(edges, solutionassessment.EdgeSolution)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SolutionAssessmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case solutionassessment.EdgeSolution:
		if id := m.solution; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SolutionAssessmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SolutionAssessmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SolutionAssessmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsolution {
		edges = append(edges, solutionassessment.EdgeSolution)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SolutionAssessmentMutation) EdgeCleared(name string) bool {
	switch name {
	case solutionassessment.EdgeSolution:
		return m.clearedsolution
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SolutionAssessmentMutation) ClearEdge(name string) error {
	switch name {
	case solutionassessment.EdgeSolution:
		m.ClearSolution()
		return nil
	}
	return fmt.Errorf("unknown SolutionAssessment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SolutionAssessmentMutation) ResetEdge(name string) error {
	switch name {
	case solutionassessment.EdgeSolution:
		m.ResetSolution()
		return nil
	}
	return fmt.Errorf("unknown SolutionAssessment edge %s", name)
}

// TopicMutation represents an operation that mutates the Topic nodes in the graph.
type TopicMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	name               *string
	description        *string
	tags               *string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	conclusions        map[int]struct{}
	removedconclusions map[int]struct{}
	clearedconclusions bool
	solutions          map[int]struct{}
	removedsolutions   map[int]struct{}
	clearedsolutions   bool
	done               bool
	oldValue           func(context.Context) (*Topic, error)
	predicates         []predicate.Topic
}

var _ ent.Mutation = (*TopicMutation)(nil)

// topicOption allows management of the mutation configuration using functional options.
type topicOption func(*TopicMutation)

// newTopicMutation creates new mutation for the Topic entity.
func newTopicMutation(c config, op Op, opts ...topicOption) *TopicMutation {
	m := &TopicMutation{
		config:        c,
		op:            op,
		typ:           TypeTopic,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTopicID sets the ID field of the mutation.
func withTopicID(id int) topicOption {
	return func(m *TopicMutation) {
		var (
			err   error
			once  sync.Once
			value *Topic
		)
		m.oldValue = func(ctx context.Context) (*Topic, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Topic.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTopic sets the old Topic of the mutation.
func withTopic(node *Topic) topicOption {
	return func(m *TopicMutation) {
		m.oldValue = func(context.Context) (*Topic, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TopicMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TopicMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TopicMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TopicMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Topic.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TopicMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TopicMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TopicMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *TopicMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TopicMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TopicMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[topic.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TopicMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[topic.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TopicMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, topic.FieldDescription)
}

// SetTags sets the "tags" field.
func (m *TopicMutation) SetTags(s string) {
	m.tags = &s
}

// Tags returns the value of the "tags" field in the mutation.
func (m *TopicMutation) Tags() (r string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldTags(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// ClearTags clears the value of the "tags" field.
func (m *TopicMutation) ClearTags() {
	m.tags = nil
	m.clearedFields[topic.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *TopicMutation) TagsCleared() bool {
	_, ok := m.clearedFields[topic.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *TopicMutation) ResetTags() {
	m.tags = nil
	delete(m.clearedFields, topic.FieldTags)
}

// SetCreatedAt sets the "created_at" field.
func (m *TopicMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TopicMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TopicMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddConclusionIDs adds the "conclusions" edge to the Conclusion entity by ids.
func (m *TopicMutation) AddConclusionIDs(ids ...int) {
	if m.conclusions == nil {
		m.conclusions = make(map[int]struct{})
	}
	for i := range ids {
		m.conclusions[ids[i]] = struct{}{}
	}
}

// ClearConclusions clears the "conclusions" edge to the Conclusion entity.
func (m *TopicMutation) ClearConclusions() {
	m.clearedconclusions = true
}

// ConclusionsCleared reports if the "conclusions" edge to the Conclusion entity was cleared.
func (m *TopicMutation) ConclusionsCleared() bool {
	return m.clearedconclusions
}

// RemoveConclusionIDs removes the "conclusions" edge to the Conclusion entity by IDs.
func (m *TopicMutation) RemoveConclusionIDs(ids ...int) {
	if m.removedconclusions == nil {
		m.removedconclusions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.conclusions, ids[i])
		m.removedconclusions[ids[i]] = struct{}{}
	}
}

// RemovedConclusions returns the removed IDs of the "conclusions" edge to the Conclusion entity.
func (m *TopicMutation) RemovedConclusionsIDs() (ids []int) {
	for id := range m.removedconclusions {
		ids = append(ids, id)
	}
	return
}

// ConclusionsIDs returns the "conclusions" edge IDs in the mutation.
func (m *TopicMutation) ConclusionsIDs() (ids []int) {
	for id := range m.conclusions {
		ids = append(ids, id)
	}
	return
}

// ResetConclusions resets all changes to the "conclusions" edge.
func (m *TopicMutation) ResetConclusions() {
	m.conclusions = nil
	m.clearedconclusions = false
	m.removedconclusions = nil
}

// AddSolutionIDs adds the "solutions" edge to the Solution entity by ids.
func (m *TopicMutation) AddSolutionIDs(ids ...int) {
	if m.solutions == nil {
		m.solutions = make(map[int]struct{})
	}
	for i := range ids {
		m.solutions[ids[i]] = struct{}{}
	}
}

// ClearSolutions clears the "solutions" edge to the Solution entity.
func (m *TopicMutation) ClearSolutions() {
	m.clearedsolutions = true
}

// SolutionsCleared reports if the "solutions" edge to the Solution entity was cleared.
func (m *TopicMutation) SolutionsCleared() bool {
	return m.clearedsolutions
}

// RemoveSolutionIDs removes the "solutions" edge to the Solution entity by IDs.
func (m *TopicMutation) RemoveSolutionIDs(ids ...int) {
	if m.removedsolutions == nil {
		m.removedsolutions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.solutions, ids[i])
		m.removedsolutions[ids[i]] = struct{}{}
	}
}

// RemovedSolutions returns the removed IDs of the "solutions" edge to the Solution entity.
func (m *TopicMutation) RemovedSolutionsIDs() (ids []int) {
	for id := range m.removedsolutions {
		ids = append(ids, id)
	}
	return
}

// SolutionsIDs returns the "solutions" edge IDs in the mutation.
func (m *TopicMutation) SolutionsIDs() (ids []int) {
	for id := range m.solutions {
		ids = append(ids, id)
	}
	return
}

// ResetSolutions resets all changes to the "solutions" edge.
func (m *TopicMutation) ResetSolutions() {
	m.solutions = nil
	m.clearedsolutions = false
	m.removedsolutions = nil
}

// Where appends a list predicates to the TopicMutation builder.
func (m *TopicMutation) Where(ps ...predicate.Topic) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TopicMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TopicMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Topic, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TopicMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TopicMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Topic).
func (m *TopicMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TopicMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, topic.FieldName)
	}
	if m.description != nil {
		fields = append(fields, topic.FieldDescription)
	}
	if m.tags != nil {
		fields = append(fields, topic.FieldTags)
	}
	if m.created_at != nil {
		fields = append(fields, topic.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TopicMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case topic.FieldName:
		return m.Name()
	case topic.FieldDescription:
		return m.Description()
	case topic.FieldTags:
		return m.Tags()
	case topic.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TopicMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case topic.FieldName:
		return m.OldName(ctx)
	case topic.FieldDescription:
		return m.OldDescription(ctx)
	case topic.FieldTags:
		return m.OldTags(ctx)
	case topic.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Topic field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicMutation) SetField(name string, value ent.Value) error {
	switch name {
	case topic.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case topic.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case topic.FieldTags:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case topic.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Topic field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TopicMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TopicMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Topic numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TopicMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(topic.FieldDescription) {
		fields = append(fields, topic.FieldDescription)
	}
	if m.FieldCleared(topic.FieldTags) {
		fields = append(fields, topic.FieldTags)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TopicMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TopicMutation) ClearField(name string) error {
	switch name {
	case topic.FieldDescription:
		m.ClearDescription()
		return nil
	case topic.FieldTags:
		m.ClearTags()
		return nil
	}
	return fmt.Errorf("unknown Topic nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TopicMutation) ResetField(name string) error {
	switch name {
	case topic.FieldName:
		m.ResetName()
		return nil
	case topic.FieldDescription:
		m.ResetDescription()
		return nil
	case topic.FieldTags:
		m.ResetTags()
		return nil
	case topic.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Topic field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TopicMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.conclusions != nil {
		edges = append(edges, topic.EdgeConclusions)
	}
	if m.solutions != nil {
		edges = append(edges, topic.EdgeSolutions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TopicMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case topic.EdgeConclusions:
		ids := make([]ent.Value, 0, len(m.conclusions))
		for id := range m.conclusions {
			ids = append(ids, id)
		}
		return ids
	case topic.EdgeSolutions:
		ids := make([]ent.Value, 0, len(m.solutions))
		for id := range m.solutions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TopicMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedconclusions != nil {
		edges = append(edges, topic.EdgeConclusions)
	}
	if m.removedsolutions != nil {
		edges = append(edges, topic.EdgeSolutions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TopicMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case topic.EdgeConclusions:
		ids := make([]ent.Value, 0, len(m.removedconclusions))
		for id := range m.removedconclusions {
			ids = append(ids, id)
		}
		return ids
	case topic.EdgeSolutions:
		ids := make([]ent.Value, 0, len(m.removedsolutions))
		for id := range m.removedsolutions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TopicMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedconclusions {
		edges = append(edges, topic.EdgeConclusions)
	}
	if m.clearedsolutions {
		edges = append(edges, topic.EdgeSolutions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TopicMutation) EdgeCleared(name string) bool {
	switch name {
	case topic.EdgeConclusions:
		return m.clearedconclusions
	case topic.EdgeSolutions:
		return m.clearedsolutions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TopicMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Topic unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TopicMutation) ResetEdge(name string) error {
	switch name {
	case topic.EdgeConclusions:
		m.ResetConclusions()
		return nil
	case topic.EdgeSolutions:
		m.ResetSolutions()
		return nil
	}
	return fmt.Errorf("unknown Topic edge %s", name)
}

// VerificationReferenceMutation represents an operation that mutates the VerificationReference nodes in the graph.
type VerificationReferenceMutation struct {
	config
	op               Op
	typ              string
	id               *int
	organization     *string
	data_description *string
	url              *string
	url_note         *string
	clearedFields    map[string]struct{}
	fact             *int
	clearedfact      bool
	done             bool
	oldValue         func(context.Context) (*VerificationReference, error)
	predicates       []predicate.VerificationReference
}

var _ ent.Mutation = (*VerificationReferenceMutation)(nil)

// verificationreferenceOption allows management of the mutation configuration using functional options.
type verificationreferenceOption func(*VerificationReferenceMutation)

// newVerificationReferenceMutation creates new mutation for the VerificationReference entity.
func newVerificationReferenceMutation(c config, op Op, opts ...verificationreferenceOption) *VerificationReferenceMutation {
	m := &VerificationReferenceMutation{
		config:        c,
		op:            op,
		typ:           TypeVerificationReference,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVerificationReferenceID sets the ID field of the mutation.
func withVerificationReferenceID(id int) verificationreferenceOption {
	return func(m *VerificationReferenceMutation) {
		var (
			err   error
			once  sync.Once
			value *VerificationReference
		)
		m.oldValue = func(ctx context.Context) (*VerificationReference, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VerificationReference.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVerificationReference sets the old VerificationReference of the mutation.
func withVerificationReference(node *VerificationReference) verificationreferenceOption {
	return func(m *VerificationReferenceMutation) {
		m.oldValue = func(context.Context) (*VerificationReference, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VerificationReferenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VerificationReferenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VerificationReferenceMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VerificationReferenceMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VerificationReference.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFactID sets the "fact_id" field.
func (m *VerificationReferenceMutation) SetFactID(i int) {
	m.fact = &i
}

// FactID returns the value of the "fact_id" field in the mutation.
func (m *VerificationReferenceMutation) FactID() (r int, exists bool) {
	v := m.fact
	if v == nil {
		return
	}
	return *v, true
}

// OldFactID returns the old "fact_id" field's value of the VerificationReference entity.
// If the VerificationReference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationReferenceMutation) OldFactID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFactID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFactID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFactID: %w", err)
	}
	return oldValue.FactID, nil
}

// ResetFactID resets all changes to the "fact_id" field.
func (m *VerificationReferenceMutation) ResetFactID() {
	m.fact = nil
}

// SetOrganization sets the "organization" field.
func (m *VerificationReferenceMutation) SetOrganization(s string) {
	m.organization = &s
}

// Organization returns the value of the "organization" field in the mutation.
func (m *VerificationReferenceMutation) Organization() (r string, exists bool) {
	v := m.organization
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganization returns the old "organization" field's value of the VerificationReference entity.
// If the VerificationReference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationReferenceMutation) OldOrganization(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganization is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganization requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganization: %w", err)
	}
	return oldValue.Organization, nil
}

// ResetOrganization resets all changes to the "organization" field.
func (m *VerificationReferenceMutation) ResetOrganization() {
	m.organization = nil
}

// SetDataDescription sets the "data_description" field.
func (m *VerificationReferenceMutation) SetDataDescription(s string) {
	m.data_description = &s
}

// DataDescription returns the value of the "data_description" field in the mutation.
func (m *VerificationReferenceMutation) DataDescription() (r string, exists bool) {
	v := m.data_description
	if v == nil {
		return
	}
	return *v, true
}

// OldDataDescription returns the old "data_description" field's value of the VerificationReference entity.
// If the VerificationReference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationReferenceMutation) OldDataDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataDescription: %w", err)
	}
	return oldValue.DataDescription, nil
}

// ResetDataDescription resets all changes to the "data_description" field.
func (m *VerificationReferenceMutation) ResetDataDescription() {
	m.data_description = nil
}

// SetURL sets the "url" field.
func (m *VerificationReferenceMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *VerificationReferenceMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the VerificationReference entity.
// If the VerificationReference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationReferenceMutation) OldURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ClearURL clears the value of the "url" field.
func (m *VerificationReferenceMutation) ClearURL() {
	m.url = nil
	m.clearedFields[verificationreference.FieldURL] = struct{}{}
}

// URLCleared returns if the "url" field was cleared in this mutation.
func (m *VerificationReferenceMutation) URLCleared() bool {
	_, ok := m.clearedFields[verificationreference.FieldURL]
	return ok
}

// ResetURL resets all changes to the "url" field.
func (m *VerificationReferenceMutation) ResetURL() {
	m.url = nil
	delete(m.clearedFields, verificationreference.FieldURL)
}

// SetURLNote sets the "url_note" field.
func (m *VerificationReferenceMutation) SetURLNote(s string) {
	m.url_note = &s
}

// URLNote returns the value of the "url_note" field in the mutation.
func (m *VerificationReferenceMutation) URLNote() (r string, exists bool) {
	v := m.url_note
	if v == nil {
		return
	}
	return *v, true
}

// OldURLNote returns the old "url_note" field's value of the VerificationReference entity.
// If the VerificationReference object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VerificationReferenceMutation) OldURLNote(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURLNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURLNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURLNote: %w", err)
	}
	return oldValue.URLNote, nil
}

// ClearURLNote clears the value of the "url_note" field.
func (m *VerificationReferenceMutation) ClearURLNote() {
	m.url_note = nil
	m.clearedFields[verificationreference.FieldURLNote] = struct{}{}
}

// URLNoteCleared returns if the "url_note" field was cleared in this mutation.
func (m *VerificationReferenceMutation) URLNoteCleared() bool {
	_, ok := m.clearedFields[verificationreference.FieldURLNote]
	return ok
}

// ResetURLNote resets all changes to the "url_note" field.
func (m *VerificationReferenceMutation) ResetURLNote() {
	m.url_note = nil
	delete(m.clearedFields, verificationreference.FieldURLNote)
}

// ClearFact clears the "fact" edge to the Fact entity.
func (m *VerificationReferenceMutation) ClearFact() {
	m.clearedfact = true
	m.clearedFields[verificationreference.FieldFactID] = struct{}{}
}

// FactCleared reports if the "fact" edge to the Fact entity was cleared.
func (m *VerificationReferenceMutation) FactCleared() bool {
	return m.clearedfact
}

// FactIDs returns the "fact" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FactID instead. It exists only for internal usage by the builders.
func (m *VerificationReferenceMutation) FactIDs() (ids []int) {
	if id := m.fact; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFact resets all changes to the "fact" edge.
func (m *VerificationReferenceMutation) ResetFact() {
	m.fact = nil
	m.clearedfact = false
}

// Where appends a list predicates to the VerificationReferenceMutation builder.
func (m *VerificationReferenceMutation) Where(ps ...predicate.VerificationReference) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VerificationReferenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VerificationReferenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VerificationReference, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VerificationReferenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VerificationReferenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VerificationReference).
func (m *VerificationReferenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VerificationReferenceMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.fact != nil {
		fields = append(fields, verificationreference.FieldFactID)
	}
	if m.organization != nil {
		fields = append(fields, verificationreference.FieldOrganization)
	}
	if m.data_description != nil {
		fields = append(fields, verificationreference.FieldDataDescription)
	}
	if m.url != nil {
		fields = append(fields, verificationreference.FieldURL)
	}
	if m.url_note != nil {
		fields = append(fields, verificationreference.FieldURLNote)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VerificationReferenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case verificationreference.FieldFactID:
		return m.FactID()
	case verificationreference.FieldOrganization:
		return m.Organization()
	case verificationreference.FieldDataDescription:
		return m.DataDescription()
	case verificationreference.FieldURL:
		return m.URL()
	case verificationreference.FieldURLNote:
		return m.URLNote()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VerificationReferenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case verificationreference.FieldFactID:
		return m.OldFactID(ctx)
	case verificationreference.FieldOrganization:
		return m.OldOrganization(ctx)
	case verificationreference.FieldDataDescription:
		return m.OldDataDescription(ctx)
	case verificationreference.FieldURL:
		return m.OldURL(ctx)
	case verificationreference.FieldURLNote:
		return m.OldURLNote(ctx)
	}
	return nil, fmt.Errorf("unknown VerificationReference field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationReferenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case verificationreference.FieldFactID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFactID(v)
		return nil
	case verificationreference.FieldOrganization:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganization(v)
		return nil
	case verificationreference.FieldDataDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataDescription(v)
		return nil
	case verificationreference.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case verificationreference.FieldURLNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURLNote(v)
		return nil
	}
	return fmt.Errorf("unknown VerificationReference field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VerificationReferenceMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VerificationReferenceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VerificationReferenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown VerificationReference numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VerificationReferenceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(verificationreference.FieldURL) {
		fields = append(fields, verificationreference.FieldURL)
	}
	if m.FieldCleared(verificationreference.FieldURLNote) {
		fields = append(fields, verificationreference.FieldURLNote)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VerificationReferenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VerificationReferenceMutation) ClearField(name string) error {
	switch name {
	case verificationreference.FieldURL:
		m.ClearURL()
		return nil
	case verificationreference.FieldURLNote:
		m.ClearURLNote()
		return nil
	}
	return fmt.Errorf("unknown VerificationReference nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VerificationReferenceMutation) ResetField(name string) error {
	switch name {
	case verificationreference.FieldFactID:
		m.ResetFactID()
		return nil
	case verificationreference.FieldOrganization:
		m.ResetOrganization()
		return nil
	case verificationreference.FieldDataDescription:
		m.ResetDataDescription()
		return nil
	case verificationreference.FieldURL:
		m.ResetURL()
		return nil
	case verificationreference.FieldURLNote:
		m.ResetURLNote()
		return nil
	}
	return fmt.Errorf("unknown VerificationReference field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VerificationReferenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.fact != nil {
		edges = append(edges, verificationreference.EdgeFact)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VerificationReferenceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case verificationreference.EdgeFact:
		if id := m.fact; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VerificationReferenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VerificationReferenceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VerificationReferenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfact {
		edges = append(edges, verificationreference.EdgeFact)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VerificationReferenceMutation) EdgeCleared(name string) bool {
	switch name {
	case verificationreference.EdgeFact:
		return m.clearedfact
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VerificationReferenceMutation) ClearEdge(name string) error {
	switch name {
	case verificationreference.EdgeFact:
		m.ClearFact()
		return nil
	}
	return fmt.Errorf("unknown VerificationReference unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VerificationReferenceMutation) ResetEdge(name string) error {
	switch name {
	case verificationreference.EdgeFact:
		m.ResetFact()
		return nil
	}
	return fmt.Errorf("unknown VerificationReference edge %s", name)
}

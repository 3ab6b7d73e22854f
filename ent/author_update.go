// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/credlens/pundit/ent/author"
	"github.com/credlens/pundit/ent/authorstats"
	"github.com/credlens/pundit/ent/conclusion"
	"github.com/credlens/pundit/ent/monitoredsource"
	"github.com/credlens/pundit/ent/postqualityassessment"
	"github.com/credlens/pundit/ent/predicate"
	"github.com/credlens/pundit/ent/solution"
)

// AuthorUpdate is the builder for updating Author entities.
type AuthorUpdate struct {
	config
	hooks    []Hook
	mutation *AuthorMutation
}

// Where appends a list predicates to the AuthorUpdate builder.
func (_u *AuthorUpdate) Where(ps ...predicate.Author) *AuthorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *AuthorUpdate) SetName(v string) *AuthorUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AuthorUpdate) SetNillableName(v *string) *AuthorUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *AuthorUpdate) SetPlatform(v string) *AuthorUpdate {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *AuthorUpdate) SetNillablePlatform(v *string) *AuthorUpdate {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetPlatformID sets the "platform_id" field.
func (_u *AuthorUpdate) SetPlatformID(v string) *AuthorUpdate {
	_u.mutation.SetPlatformID(v)
	return _u
}

// SetNillablePlatformID sets the "platform_id" field if the given value is not nil.
func (_u *AuthorUpdate) SetNillablePlatformID(v *string) *AuthorUpdate {
	if v != nil {
		_u.SetPlatformID(*v)
	}
	return _u
}

// ClearPlatformID clears the value of the "platform_id" field.
func (_u *AuthorUpdate) ClearPlatformID() *AuthorUpdate {
	_u.mutation.ClearPlatformID()
	return _u
}

// SetProfileURL sets the "profile_url" field.
func (_u *AuthorUpdate) SetProfileURL(v string) *AuthorUpdate {
	_u.mutation.SetProfileURL(v)
	return _u
}

// SetNillableProfileURL sets the "profile_url" field if the given value is not nil.
func (_u *AuthorUpdate) SetNillableProfileURL(v *string) *AuthorUpdate {
	if v != nil {
		_u.SetProfileURL(*v)
	}
	return _u
}

// ClearProfileURL clears the value of the "profile_url" field.
func (_u *AuthorUpdate) ClearProfileURL() *AuthorUpdate {
	_u.mutation.ClearProfileURL()
	return _u
}

// SetDescription sets the "description" field.
func (_u *AuthorUpdate) SetDescription(v string) *AuthorUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AuthorUpdate) SetNillableDescription(v *string) *AuthorUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AuthorUpdate) ClearDescription() *AuthorUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetRole sets the "role" field.
func (_u *AuthorUpdate) SetRole(v string) *AuthorUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AuthorUpdate) SetNillableRole(v *string) *AuthorUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *AuthorUpdate) ClearRole() *AuthorUpdate {
	_u.mutation.ClearRole()
	return _u
}

// SetExpertiseAreas sets the "expertise_areas" field.
func (_u *AuthorUpdate) SetExpertiseAreas(v string) *AuthorUpdate {
	_u.mutation.SetExpertiseAreas(v)
	return _u
}

// SetNillableExpertiseAreas sets the "expertise_areas" field if the given value is not nil.
func (_u *AuthorUpdate) SetNillableExpertiseAreas(v *string) *AuthorUpdate {
	if v != nil {
		_u.SetExpertiseAreas(*v)
	}
	return _u
}

// ClearExpertiseAreas clears the value of the "expertise_areas" field.
func (_u *AuthorUpdate) ClearExpertiseAreas() *AuthorUpdate {
	_u.mutation.ClearExpertiseAreas()
	return _u
}

// SetKnownBiases sets the "known_biases" field.
func (_u *AuthorUpdate) SetKnownBiases(v string) *AuthorUpdate {
	_u.mutation.SetKnownBiases(v)
	return _u
}

// SetNillableKnownBiases sets the "known_biases" field if the given value is not nil.
func (_u *AuthorUpdate) SetNillableKnownBiases(v *string) *AuthorUpdate {
	if v != nil {
		_u.SetKnownBiases(*v)
	}
	return _u
}

// ClearKnownBiases clears the value of the "known_biases" field.
func (_u *AuthorUpdate) ClearKnownBiases() *AuthorUpdate {
	_u.mutation.ClearKnownBiases()
	return _u
}

// SetCredibilityTier sets the "credibility_tier" field.
func (_u *AuthorUpdate) SetCredibilityTier(v int) *AuthorUpdate {
	_u.mutation.ResetCredibilityTier()
	_u.mutation.SetCredibilityTier(v)
	return _u
}

// SetNillableCredibilityTier sets the "credibility_tier" field if the given value is not nil.
func (_u *AuthorUpdate) SetNillableCredibilityTier(v *int) *AuthorUpdate {
	if v != nil {
		_u.SetCredibilityTier(*v)
	}
	return _u
}

// AddCredibilityTier adds value to the "credibility_tier" field.
func (_u *AuthorUpdate) AddCredibilityTier(v int) *AuthorUpdate {
	_u.mutation.AddCredibilityTier(v)
	return _u
}

// ClearCredibilityTier clears the value of the "credibility_tier" field.
func (_u *AuthorUpdate) ClearCredibilityTier() *AuthorUpdate {
	_u.mutation.ClearCredibilityTier()
	return _u
}

// SetProfileNote sets the "profile_note" field.
func (_u *AuthorUpdate) SetProfileNote(v string) *AuthorUpdate {
	_u.mutation.SetProfileNote(v)
	return _u
}

// SetNillableProfileNote sets the "profile_note" field if the given value is not nil.
func (_u *AuthorUpdate) SetNillableProfileNote(v *string) *AuthorUpdate {
	if v != nil {
		_u.SetProfileNote(*v)
	}
	return _u
}

// ClearProfileNote clears the value of the "profile_note" field.
func (_u *AuthorUpdate) ClearProfileNote() *AuthorUpdate {
	_u.mutation.ClearProfileNote()
	return _u
}

// SetProfileFetched sets the "profile_fetched" field.
func (_u *AuthorUpdate) SetProfileFetched(v bool) *AuthorUpdate {
	_u.mutation.SetProfileFetched(v)
	return _u
}

// SetNillableProfileFetched sets the "profile_fetched" field if the given value is not nil.
func (_u *AuthorUpdate) SetNillableProfileFetched(v *bool) *AuthorUpdate {
	if v != nil {
		_u.SetProfileFetched(*v)
	}
	return _u
}

// SetProfileFetchedAt sets the "profile_fetched_at" field.
func (_u *AuthorUpdate) SetProfileFetchedAt(v time.Time) *AuthorUpdate {
	_u.mutation.SetProfileFetchedAt(v)
	return _u
}

// SetNillableProfileFetchedAt sets the "profile_fetched_at" field if the given value is not nil.
func (_u *AuthorUpdate) SetNillableProfileFetchedAt(v *time.Time) *AuthorUpdate {
	if v != nil {
		_u.SetProfileFetchedAt(*v)
	}
	return _u
}

// ClearProfileFetchedAt clears the value of the "profile_fetched_at" field.
func (_u *AuthorUpdate) ClearProfileFetchedAt() *AuthorUpdate {
	_u.mutation.ClearProfileFetchedAt()
	return _u
}

// AddConclusionIDs adds the "conclusions" edge to the Conclusion entity by IDs.
func (_u *AuthorUpdate) AddConclusionIDs(ids ...int) *AuthorUpdate {
	_u.mutation.AddConclusionIDs(ids...)
	return _u
}

// AddConclusions adds the "conclusions" edges to the Conclusion entity.
func (_u *AuthorUpdate) AddConclusions(v ...*Conclusion) *AuthorUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConclusionIDs(ids...)
}

// AddSolutionIDs adds the "solutions" edge to the Solution entity by IDs.
func (_u *AuthorUpdate) AddSolutionIDs(ids ...int) *AuthorUpdate {
	_u.mutation.AddSolutionIDs(ids...)
	return _u
}

// AddSolutions adds the "solutions" edges to the Solution entity.
func (_u *AuthorUpdate) AddSolutions(v ...*Solution) *AuthorUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSolutionIDs(ids...)
}

// AddMonitoredSourceIDs adds the "monitored_sources" edge to the MonitoredSource entity by IDs.
func (_u *AuthorUpdate) AddMonitoredSourceIDs(ids ...int) *AuthorUpdate {
	_u.mutation.AddMonitoredSourceIDs(ids...)
	return _u
}

// AddMonitoredSources adds the "monitored_sources" edges to the MonitoredSource entity.
func (_u *AuthorUpdate) AddMonitoredSources(v ...*MonitoredSource) *AuthorUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMonitoredSourceIDs(ids...)
}

// AddQualityAssessmentIDs adds the "quality_assessments" edge to the PostQualityAssessment entity by IDs.
func (_u *AuthorUpdate) AddQualityAssessmentIDs(ids ...int) *AuthorUpdate {
	_u.mutation.AddQualityAssessmentIDs(ids...)
	return _u
}

// AddQualityAssessments adds the "quality_assessments" edges to the PostQualityAssessment entity.
func (_u *AuthorUpdate) AddQualityAssessments(v ...*PostQualityAssessment) *AuthorUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQualityAssessmentIDs(ids...)
}

// SetStatsID sets the "stats" edge to the AuthorStats entity by ID.
func (_u *AuthorUpdate) SetStatsID(id int) *AuthorUpdate {
	_u.mutation.SetStatsID(id)
	return _u
}

// SetNillableStatsID sets the "stats" edge to the AuthorStats entity by ID if the given value is not nil.
func (_u *AuthorUpdate) SetNillableStatsID(id *int) *AuthorUpdate {
	if id != nil {
		_u = _u.SetStatsID(*id)
	}
	return _u
}

// SetStats sets the "stats" edge to the AuthorStats entity.
func (_u *AuthorUpdate) SetStats(v *AuthorStats) *AuthorUpdate {
	return _u.SetStatsID(v.ID)
}

// Mutation returns the AuthorMutation object of the builder.
func (_u *AuthorUpdate) Mutation() *AuthorMutation {
	return _u.mutation
}

// ClearConclusions clears all "conclusions" edges to the Conclusion entity.
func (_u *AuthorUpdate) ClearConclusions() *AuthorUpdate {
	_u.mutation.ClearConclusions()
	return _u
}

// RemoveConclusionIDs removes the "conclusions" edge to Conclusion entities by IDs.
func (_u *AuthorUpdate) RemoveConclusionIDs(ids ...int) *AuthorUpdate {
	_u.mutation.RemoveConclusionIDs(ids...)
	return _u
}

// RemoveConclusions removes "conclusions" edges to Conclusion entities.
func (_u *AuthorUpdate) RemoveConclusions(v ...*Conclusion) *AuthorUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConclusionIDs(ids...)
}

// ClearSolutions clears all "solutions" edges to the Solution entity.
func (_u *AuthorUpdate) ClearSolutions() *AuthorUpdate {
	_u.mutation.ClearSolutions()
	return _u
}

// RemoveSolutionIDs removes the "solutions" edge to Solution entities by IDs.
func (_u *AuthorUpdate) RemoveSolutionIDs(ids ...int) *AuthorUpdate {
	_u.mutation.RemoveSolutionIDs(ids...)
	return _u
}

// RemoveSolutions removes "solutions" edges to Solution entities.
func (_u *AuthorUpdate) RemoveSolutions(v ...*Solution) *AuthorUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSolutionIDs(ids...)
}

// ClearMonitoredSources clears all "monitored_sources" edges to the MonitoredSource entity.
func (_u *AuthorUpdate) ClearMonitoredSources() *AuthorUpdate {
	_u.mutation.ClearMonitoredSources()
	return _u
}

// RemoveMonitoredSourceIDs removes the "monitored_sources" edge to MonitoredSource entities by IDs.
func (_u *AuthorUpdate) RemoveMonitoredSourceIDs(ids ...int) *AuthorUpdate {
	_u.mutation.RemoveMonitoredSourceIDs(ids...)
	return _u
}

// RemoveMonitoredSources removes "monitored_sources" edges to MonitoredSource entities.
func (_u *AuthorUpdate) RemoveMonitoredSources(v ...*MonitoredSource) *AuthorUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMonitoredSourceIDs(ids...)
}

// ClearQualityAssessments clears all "quality_assessments" edges to the PostQualityAssessment entity.
func (_u *AuthorUpdate) ClearQualityAssessments() *AuthorUpdate {
	_u.mutation.ClearQualityAssessments()
	return _u
}

// RemoveQualityAssessmentIDs removes the "quality_assessments" edge to PostQualityAssessment entities by IDs.
func (_u *AuthorUpdate) RemoveQualityAssessmentIDs(ids ...int) *AuthorUpdate {
	_u.mutation.RemoveQualityAssessmentIDs(ids...)
	return _u
}

// RemoveQualityAssessments removes "quality_assessments" edges to PostQualityAssessment entities.
func (_u *AuthorUpdate) RemoveQualityAssessments(v ...*PostQualityAssessment) *AuthorUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQualityAssessmentIDs(ids...)
}

// ClearStats clears the "stats" edge to the AuthorStats entity.
func (_u *AuthorUpdate) ClearStats() *AuthorUpdate {
	_u.mutation.ClearStats()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuthorUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuthorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuthorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuthorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AuthorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(author.Table, author.Columns, sqlgraph.NewFieldSpec(author.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(author.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(author.FieldPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlatformID(); ok {
		_spec.SetField(author.FieldPlatformID, field.TypeString, value)
	}
	if _u.mutation.PlatformIDCleared() {
		_spec.ClearField(author.FieldPlatformID, field.TypeString)
	}
	if value, ok := _u.mutation.ProfileURL(); ok {
		_spec.SetField(author.FieldProfileURL, field.TypeString, value)
	}
	if _u.mutation.ProfileURLCleared() {
		_spec.ClearField(author.FieldProfileURL, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(author.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(author.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(author.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(author.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.ExpertiseAreas(); ok {
		_spec.SetField(author.FieldExpertiseAreas, field.TypeString, value)
	}
	if _u.mutation.ExpertiseAreasCleared() {
		_spec.ClearField(author.FieldExpertiseAreas, field.TypeString)
	}
	if value, ok := _u.mutation.KnownBiases(); ok {
		_spec.SetField(author.FieldKnownBiases, field.TypeString, value)
	}
	if _u.mutation.KnownBiasesCleared() {
		_spec.ClearField(author.FieldKnownBiases, field.TypeString)
	}
	if value, ok := _u.mutation.CredibilityTier(); ok {
		_spec.SetField(author.FieldCredibilityTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCredibilityTier(); ok {
		_spec.AddField(author.FieldCredibilityTier, field.TypeInt, value)
	}
	if _u.mutation.CredibilityTierCleared() {
		_spec.ClearField(author.FieldCredibilityTier, field.TypeInt)
	}
	if value, ok := _u.mutation.ProfileNote(); ok {
		_spec.SetField(author.FieldProfileNote, field.TypeString, value)
	}
	if _u.mutation.ProfileNoteCleared() {
		_spec.ClearField(author.FieldProfileNote, field.TypeString)
	}
	if value, ok := _u.mutation.ProfileFetched(); ok {
		_spec.SetField(author.FieldProfileFetched, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ProfileFetchedAt(); ok {
		_spec.SetField(author.FieldProfileFetchedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileFetchedAtCleared() {
		_spec.ClearField(author.FieldProfileFetchedAt, field.TypeTime)
	}
	if _u.mutation.ConclusionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   author.ConclusionsTable,
			Columns: []string{author.ConclusionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conclusion.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConclusionsIDs(); len(nodes) > 0 && !_u.mutation.ConclusionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   author.ConclusionsTable,
			Columns: []string{author.ConclusionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conclusion.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConclusionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   author.ConclusionsTable,
			Columns: []string{author.ConclusionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conclusion.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SolutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   author.SolutionsTable,
			Columns: []string{author.SolutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(solution.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSolutionsIDs(); len(nodes) > 0 && !_u.mutation.SolutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   author.SolutionsTable,
			Columns: []string{author.SolutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(solution.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SolutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   author.SolutionsTable,
			Columns: []string{author.SolutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(solution.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MonitoredSourcesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   author.MonitoredSourcesTable,
			Columns: []string{author.MonitoredSourcesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(monitoredsource.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMonitoredSourcesIDs(); len(nodes) > 0 && !_u.mutation.MonitoredSourcesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   author.MonitoredSourcesTable,
			Columns: []string{author.MonitoredSourcesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(monitoredsource.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MonitoredSourcesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   author.MonitoredSourcesTable,
			Columns: []string{author.MonitoredSourcesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(monitoredsource.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QualityAssessmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   author.QualityAssessmentsTable,
			Columns: []string{author.QualityAssessmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(postqualityassessment.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQualityAssessmentsIDs(); len(nodes) > 0 && !_u.mutation.QualityAssessmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   author.QualityAssessmentsTable,
			Columns: []string{author.QualityAssessmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(postqualityassessment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QualityAssessmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   author.QualityAssessmentsTable,
			Columns: []string{author.QualityAssessmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(postqualityassessment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StatsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   author.StatsTable,
			Columns: []string{author.StatsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(authorstats.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StatsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   author.StatsTable,
			Columns: []string{author.StatsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(authorstats.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{author.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuthorUpdateOne is the builder for updating a single Author entity.
type AuthorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuthorMutation
}

// SetName sets the "name" field.
func (_u *AuthorUpdateOne) SetName(v string) *AuthorUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AuthorUpdateOne) SetNillableName(v *string) *AuthorUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *AuthorUpdateOne) SetPlatform(v string) *AuthorUpdateOne {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *AuthorUpdateOne) SetNillablePlatform(v *string) *AuthorUpdateOne {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetPlatformID sets the "platform_id" field.
func (_u *AuthorUpdateOne) SetPlatformID(v string) *AuthorUpdateOne {
	_u.mutation.SetPlatformID(v)
	return _u
}

// SetNillablePlatformID sets the "platform_id" field if the given value is not nil.
func (_u *AuthorUpdateOne) SetNillablePlatformID(v *string) *AuthorUpdateOne {
	if v != nil {
		_u.SetPlatformID(*v)
	}
	return _u
}

// ClearPlatformID clears the value of the "platform_id" field.
func (_u *AuthorUpdateOne) ClearPlatformID() *AuthorUpdateOne {
	_u.mutation.ClearPlatformID()
	return _u
}

// SetProfileURL sets the "profile_url" field.
func (_u *AuthorUpdateOne) SetProfileURL(v string) *AuthorUpdateOne {
	_u.mutation.SetProfileURL(v)
	return _u
}

// SetNillableProfileURL sets the "profile_url" field if the given value is not nil.
func (_u *AuthorUpdateOne) SetNillableProfileURL(v *string) *AuthorUpdateOne {
	if v != nil {
		_u.SetProfileURL(*v)
	}
	return _u
}

// ClearProfileURL clears the value of the "profile_url" field.
func (_u *AuthorUpdateOne) ClearProfileURL() *AuthorUpdateOne {
	_u.mutation.ClearProfileURL()
	return _u
}

// SetDescription sets the "description" field.
func (_u *AuthorUpdateOne) SetDescription(v string) *AuthorUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AuthorUpdateOne) SetNillableDescription(v *string) *AuthorUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AuthorUpdateOne) ClearDescription() *AuthorUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetRole sets the "role" field.
func (_u *AuthorUpdateOne) SetRole(v string) *AuthorUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *AuthorUpdateOne) SetNillableRole(v *string) *AuthorUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *AuthorUpdateOne) ClearRole() *AuthorUpdateOne {
	_u.mutation.ClearRole()
	return _u
}

// SetExpertiseAreas sets the "expertise_areas" field.
func (_u *AuthorUpdateOne) SetExpertiseAreas(v string) *AuthorUpdateOne {
	_u.mutation.SetExpertiseAreas(v)
	return _u
}

// SetNillableExpertiseAreas sets the "expertise_areas" field if the given value is not nil.
func (_u *AuthorUpdateOne) SetNillableExpertiseAreas(v *string) *AuthorUpdateOne {
	if v != nil {
		_u.SetExpertiseAreas(*v)
	}
	return _u
}

// ClearExpertiseAreas clears the value of the "expertise_areas" field.
func (_u *AuthorUpdateOne) ClearExpertiseAreas() *AuthorUpdateOne {
	_u.mutation.ClearExpertiseAreas()
	return _u
}

// SetKnownBiases sets the "known_biases" field.
func (_u *AuthorUpdateOne) SetKnownBiases(v string) *AuthorUpdateOne {
	_u.mutation.SetKnownBiases(v)
	return _u
}

// SetNillableKnownBiases sets the "known_biases" field if the given value is not nil.
func (_u *AuthorUpdateOne) SetNillableKnownBiases(v *string) *AuthorUpdateOne {
	if v != nil {
		_u.SetKnownBiases(*v)
	}
	return _u
}

// ClearKnownBiases clears the value of the "known_biases" field.
func (_u *AuthorUpdateOne) ClearKnownBiases() *AuthorUpdateOne {
	_u.mutation.ClearKnownBiases()
	return _u
}

// SetCredibilityTier sets the "credibility_tier" field.
func (_u *AuthorUpdateOne) SetCredibilityTier(v int) *AuthorUpdateOne {
	_u.mutation.ResetCredibilityTier()
	_u.mutation.SetCredibilityTier(v)
	return _u
}

// SetNillableCredibilityTier sets the "credibility_tier" field if the given value is not nil.
func (_u *AuthorUpdateOne) SetNillableCredibilityTier(v *int) *AuthorUpdateOne {
	if v != nil {
		_u.SetCredibilityTier(*v)
	}
	return _u
}

// AddCredibilityTier adds value to the "credibility_tier" field.
func (_u *AuthorUpdateOne) AddCredibilityTier(v int) *AuthorUpdateOne {
	_u.mutation.AddCredibilityTier(v)
	return _u
}

// ClearCredibilityTier clears the value of the "credibility_tier" field.
func (_u *AuthorUpdateOne) ClearCredibilityTier() *AuthorUpdateOne {
	_u.mutation.ClearCredibilityTier()
	return _u
}

// SetProfileNote sets the "profile_note" field.
func (_u *AuthorUpdateOne) SetProfileNote(v string) *AuthorUpdateOne {
	_u.mutation.SetProfileNote(v)
	return _u
}

// SetNillableProfileNote sets the "profile_note" field if the given value is not nil.
func (_u *AuthorUpdateOne) SetNillableProfileNote(v *string) *AuthorUpdateOne {
	if v != nil {
		_u.SetProfileNote(*v)
	}
	return _u
}

// ClearProfileNote clears the value of the "profile_note" field.
func (_u *AuthorUpdateOne) ClearProfileNote() *AuthorUpdateOne {
	_u.mutation.ClearProfileNote()
	return _u
}

// SetProfileFetched sets the "profile_fetched" field.
func (_u *AuthorUpdateOne) SetProfileFetched(v bool) *AuthorUpdateOne {
	_u.mutation.SetProfileFetched(v)
	return _u
}

// SetNillableProfileFetched sets the "profile_fetched" field if the given value is not nil.
func (_u *AuthorUpdateOne) SetNillableProfileFetched(v *bool) *AuthorUpdateOne {
	if v != nil {
		_u.SetProfileFetched(*v)
	}
	return _u
}

// SetProfileFetchedAt sets the "profile_fetched_at" field.
func (_u *AuthorUpdateOne) SetProfileFetchedAt(v time.Time) *AuthorUpdateOne {
	_u.mutation.SetProfileFetchedAt(v)
	return _u
}

// SetNillableProfileFetchedAt sets the "profile_fetched_at" field if the given value is not nil.
func (_u *AuthorUpdateOne) SetNillableProfileFetchedAt(v *time.Time) *AuthorUpdateOne {
	if v != nil {
		_u.SetProfileFetchedAt(*v)
	}
	return _u
}

// ClearProfileFetchedAt clears the value of the "profile_fetched_at" field.
func (_u *AuthorUpdateOne) ClearProfileFetchedAt() *AuthorUpdateOne {
	_u.mutation.ClearProfileFetchedAt()
	return _u
}

// AddConclusionIDs adds the "conclusions" edge to the Conclusion entity by IDs.
func (_u *AuthorUpdateOne) AddConclusionIDs(ids ...int) *AuthorUpdateOne {
	_u.mutation.AddConclusionIDs(ids...)
	return _u
}

// AddConclusions adds the "conclusions" edges to the Conclusion entity.
func (_u *AuthorUpdateOne) AddConclusions(v ...*Conclusion) *AuthorUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConclusionIDs(ids...)
}

// AddSolutionIDs adds the "solutions" edge to the Solution entity by IDs.
func (_u *AuthorUpdateOne) AddSolutionIDs(ids ...int) *AuthorUpdateOne {
	_u.mutation.AddSolutionIDs(ids...)
	return _u
}

// AddSolutions adds the "solutions" edges to the Solution entity.
func (_u *AuthorUpdateOne) AddSolutions(v ...*Solution) *AuthorUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSolutionIDs(ids...)
}

// AddMonitoredSourceIDs adds the "monitored_sources" edge to the MonitoredSource entity by IDs.
func (_u *AuthorUpdateOne) AddMonitoredSourceIDs(ids ...int) *AuthorUpdateOne {
	_u.mutation.AddMonitoredSourceIDs(ids...)
	return _u
}

// AddMonitoredSources adds the "monitored_sources" edges to the MonitoredSource entity.
func (_u *AuthorUpdateOne) AddMonitoredSources(v ...*MonitoredSource) *AuthorUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMonitoredSourceIDs(ids...)
}

// AddQualityAssessmentIDs adds the "quality_assessments" edge to the PostQualityAssessment entity by IDs.
func (_u *AuthorUpdateOne) AddQualityAssessmentIDs(ids ...int) *AuthorUpdateOne {
	_u.mutation.AddQualityAssessmentIDs(ids...)
	return _u
}

// AddQualityAssessments adds the "quality_assessments" edges to the PostQualityAssessment entity.
func (_u *AuthorUpdateOne) AddQualityAssessments(v ...*PostQualityAssessment) *AuthorUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQualityAssessmentIDs(ids...)
}

// SetStatsID sets the "stats" edge to the AuthorStats entity by ID.
func (_u *AuthorUpdateOne) SetStatsID(id int) *AuthorUpdateOne {
	_u.mutation.SetStatsID(id)
	return _u
}

// SetNillableStatsID sets the "stats" edge to the AuthorStats entity by ID if the given value is not nil.
func (_u *AuthorUpdateOne) SetNillableStatsID(id *int) *AuthorUpdateOne {
	if id != nil {
		_u = _u.SetStatsID(*id)
	}
	return _u
}

// SetStats sets the "stats" edge to the AuthorStats entity.
func (_u *AuthorUpdateOne) SetStats(v *AuthorStats) *AuthorUpdateOne {
	return _u.SetStatsID(v.ID)
}

// Mutation returns the AuthorMutation object of the builder.
func (_u *AuthorUpdateOne) Mutation() *AuthorMutation {
	return _u.mutation
}

// ClearConclusions clears all "conclusions" edges to the Conclusion entity.
func (_u *AuthorUpdateOne) ClearConclusions() *AuthorUpdateOne {
	_u.mutation.ClearConclusions()
	return _u
}

// RemoveConclusionIDs removes the "conclusions" edge to Conclusion entities by IDs.
func (_u *AuthorUpdateOne) RemoveConclusionIDs(ids ...int) *AuthorUpdateOne {
	_u.mutation.RemoveConclusionIDs(ids...)
	return _u
}

// RemoveConclusions removes "conclusions" edges to Conclusion entities.
func (_u *AuthorUpdateOne) RemoveConclusions(v ...*Conclusion) *AuthorUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConclusionIDs(ids...)
}

// ClearSolutions clears all "solutions" edges to the Solution entity.
func (_u *AuthorUpdateOne) ClearSolutions() *AuthorUpdateOne {
	_u.mutation.ClearSolutions()
	return _u
}

// RemoveSolutionIDs removes the "solutions" edge to Solution entities by IDs.
func (_u *AuthorUpdateOne) RemoveSolutionIDs(ids ...int) *AuthorUpdateOne {
	_u.mutation.RemoveSolutionIDs(ids...)
	return _u
}

// RemoveSolutions removes "solutions" edges to Solution entities.
func (_u *AuthorUpdateOne) RemoveSolutions(v ...*Solution) *AuthorUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSolutionIDs(ids...)
}

// ClearMonitoredSources clears all "monitored_sources" edges to the MonitoredSource entity.
func (_u *AuthorUpdateOne) ClearMonitoredSources() *AuthorUpdateOne {
	_u.mutation.ClearMonitoredSources()
	return _u
}

// RemoveMonitoredSourceIDs removes the "monitored_sources" edge to MonitoredSource entities by IDs.
func (_u *AuthorUpdateOne) RemoveMonitoredSourceIDs(ids ...int) *AuthorUpdateOne {
	_u.mutation.RemoveMonitoredSourceIDs(ids...)
	return _u
}

// RemoveMonitoredSources removes "monitored_sources" edges to MonitoredSource entities.
func (_u *AuthorUpdateOne) RemoveMonitoredSources(v ...*MonitoredSource) *AuthorUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMonitoredSourceIDs(ids...)
}

// ClearQualityAssessments clears all "quality_assessments" edges to the PostQualityAssessment entity.
func (_u *AuthorUpdateOne) ClearQualityAssessments() *AuthorUpdateOne {
	_u.mutation.ClearQualityAssessments()
	return _u
}

// RemoveQualityAssessmentIDs removes the "quality_assessments" edge to PostQualityAssessment entities by IDs.
func (_u *AuthorUpdateOne) RemoveQualityAssessmentIDs(ids ...int) *AuthorUpdateOne {
	_u.mutation.RemoveQualityAssessmentIDs(ids...)
	return _u
}

// RemoveQualityAssessments removes "quality_assessments" edges to PostQualityAssessment entities.
func (_u *AuthorUpdateOne) RemoveQualityAssessments(v ...*PostQualityAssessment) *AuthorUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQualityAssessmentIDs(ids...)
}

// ClearStats clears the "stats" edge to the AuthorStats entity.
func (_u *AuthorUpdateOne) ClearStats() *AuthorUpdateOne {
	_u.mutation.ClearStats()
	return _u
}

// Where appends a list predicates to the AuthorUpdate builder.
func (_u *AuthorUpdateOne) Where(ps ...predicate.Author) *AuthorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuthorUpdateOne) Select(field string, fields ...string) *AuthorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Author entity.
func (_u *AuthorUpdateOne) Save(ctx context.Context) (*Author, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuthorUpdateOne) SaveX(ctx context.Context) *Author {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuthorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuthorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AuthorUpdateOne) sqlSave(ctx context.Context) (_node *Author, err error) {
	_spec := sqlgraph.NewUpdateSpec(author.Table, author.Columns, sqlgraph.NewFieldSpec(author.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Author.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, author.FieldID)
		for _, f := range fields {
			if !author.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != author.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(author.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(author.FieldPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlatformID(); ok {
		_spec.SetField(author.FieldPlatformID, field.TypeString, value)
	}
	if _u.mutation.PlatformIDCleared() {
		_spec.ClearField(author.FieldPlatformID, field.TypeString)
	}
	if value, ok := _u.mutation.ProfileURL(); ok {
		_spec.SetField(author.FieldProfileURL, field.TypeString, value)
	}
	if _u.mutation.ProfileURLCleared() {
		_spec.ClearField(author.FieldProfileURL, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(author.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(author.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(author.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(author.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.ExpertiseAreas(); ok {
		_spec.SetField(author.FieldExpertiseAreas, field.TypeString, value)
	}
	if _u.mutation.ExpertiseAreasCleared() {
		_spec.ClearField(author.FieldExpertiseAreas, field.TypeString)
	}
	if value, ok := _u.mutation.KnownBiases(); ok {
		_spec.SetField(author.FieldKnownBiases, field.TypeString, value)
	}
	if _u.mutation.KnownBiasesCleared() {
		_spec.ClearField(author.FieldKnownBiases, field.TypeString)
	}
	if value, ok := _u.mutation.CredibilityTier(); ok {
		_spec.SetField(author.FieldCredibilityTier, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCredibilityTier(); ok {
		_spec.AddField(author.FieldCredibilityTier, field.TypeInt, value)
	}
	if _u.mutation.CredibilityTierCleared() {
		_spec.ClearField(author.FieldCredibilityTier, field.TypeInt)
	}
	if value, ok := _u.mutation.ProfileNote(); ok {
		_spec.SetField(author.FieldProfileNote, field.TypeString, value)
	}
	if _u.mutation.ProfileNoteCleared() {
		_spec.ClearField(author.FieldProfileNote, field.TypeString)
	}
	if value, ok := _u.mutation.ProfileFetched(); ok {
		_spec.SetField(author.FieldProfileFetched, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ProfileFetchedAt(); ok {
		_spec.SetField(author.FieldProfileFetchedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileFetchedAtCleared() {
		_spec.ClearField(author.FieldProfileFetchedAt, field.TypeTime)
	}
	if _u.mutation.ConclusionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   author.ConclusionsTable,
			Columns: []string{author.ConclusionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conclusion.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConclusionsIDs(); len(nodes) > 0 && !_u.mutation.ConclusionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   author.ConclusionsTable,
			Columns: []string{author.ConclusionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conclusion.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConclusionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   author.ConclusionsTable,
			Columns: []string{author.ConclusionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conclusion.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SolutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   author.SolutionsTable,
			Columns: []string{author.SolutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(solution.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSolutionsIDs(); len(nodes) > 0 && !_u.mutation.SolutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   author.SolutionsTable,
			Columns: []string{author.SolutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(solution.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SolutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   author.SolutionsTable,
			Columns: []string{author.SolutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(solution.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MonitoredSourcesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   author.MonitoredSourcesTable,
			Columns: []string{author.MonitoredSourcesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(monitoredsource.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMonitoredSourcesIDs(); len(nodes) > 0 && !_u.mutation.MonitoredSourcesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   author.MonitoredSourcesTable,
			Columns: []string{author.MonitoredSourcesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(monitoredsource.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MonitoredSourcesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   author.MonitoredSourcesTable,
			Columns: []string{author.MonitoredSourcesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(monitoredsource.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QualityAssessmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   author.QualityAssessmentsTable,
			Columns: []string{author.QualityAssessmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(postqualityassessment.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQualityAssessmentsIDs(); len(nodes) > 0 && !_u.mutation.QualityAssessmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   author.QualityAssessmentsTable,
			Columns: []string{author.QualityAssessmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(postqualityassessment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QualityAssessmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   author.QualityAssessmentsTable,
			Columns: []string{author.QualityAssessmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(postqualityassessment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StatsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   author.StatsTable,
			Columns: []string{author.StatsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(authorstats.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StatsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   author.StatsTable,
			Columns: []string{author.StatsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(authorstats.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Author{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{author.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

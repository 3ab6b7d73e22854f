// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/credlens/pundit/ent/author"
	"github.com/credlens/pundit/ent/authorstats"
	"github.com/credlens/pundit/ent/conclusion"
	"github.com/credlens/pundit/ent/monitoredsource"
	"github.com/credlens/pundit/ent/postqualityassessment"
	"github.com/credlens/pundit/ent/solution"
)

// AuthorCreate is the builder for creating a Author entity.
type AuthorCreate struct {
	config
	mutation *AuthorMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *AuthorCreate) SetName(v string) *AuthorCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPlatform sets the "platform" field.
func (_c *AuthorCreate) SetPlatform(v string) *AuthorCreate {
	_c.mutation.SetPlatform(v)
	return _c
}

// SetPlatformID sets the "platform_id" field.
func (_c *AuthorCreate) SetPlatformID(v string) *AuthorCreate {
	_c.mutation.SetPlatformID(v)
	return _c
}

// SetNillablePlatformID sets the "platform_id" field if the given value is not nil.
func (_c *AuthorCreate) SetNillablePlatformID(v *string) *AuthorCreate {
	if v != nil {
		_c.SetPlatformID(*v)
	}
	return _c
}

// SetProfileURL sets the "profile_url" field.
func (_c *AuthorCreate) SetProfileURL(v string) *AuthorCreate {
	_c.mutation.SetProfileURL(v)
	return _c
}

// SetNillableProfileURL sets the "profile_url" field if the given value is not nil.
func (_c *AuthorCreate) SetNillableProfileURL(v *string) *AuthorCreate {
	if v != nil {
		_c.SetProfileURL(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *AuthorCreate) SetDescription(v string) *AuthorCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *AuthorCreate) SetNillableDescription(v *string) *AuthorCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetRole sets the "role" field.
func (_c *AuthorCreate) SetRole(v string) *AuthorCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *AuthorCreate) SetNillableRole(v *string) *AuthorCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetExpertiseAreas sets the "expertise_areas" field.
func (_c *AuthorCreate) SetExpertiseAreas(v string) *AuthorCreate {
	_c.mutation.SetExpertiseAreas(v)
	return _c
}

// SetNillableExpertiseAreas sets the "expertise_areas" field if the given value is not nil.
func (_c *AuthorCreate) SetNillableExpertiseAreas(v *string) *AuthorCreate {
	if v != nil {
		_c.SetExpertiseAreas(*v)
	}
	return _c
}

// SetKnownBiases sets the "known_biases" field.
func (_c *AuthorCreate) SetKnownBiases(v string) *AuthorCreate {
	_c.mutation.SetKnownBiases(v)
	return _c
}

// SetNillableKnownBiases sets the "known_biases" field if the given value is not nil.
func (_c *AuthorCreate) SetNillableKnownBiases(v *string) *AuthorCreate {
	if v != nil {
		_c.SetKnownBiases(*v)
	}
	return _c
}

// SetCredibilityTier sets the "credibility_tier" field.
func (_c *AuthorCreate) SetCredibilityTier(v int) *AuthorCreate {
	_c.mutation.SetCredibilityTier(v)
	return _c
}

// SetNillableCredibilityTier sets the "credibility_tier" field if the given value is not nil.
func (_c *AuthorCreate) SetNillableCredibilityTier(v *int) *AuthorCreate {
	if v != nil {
		_c.SetCredibilityTier(*v)
	}
	return _c
}

// SetProfileNote sets the "profile_note" field.
func (_c *AuthorCreate) SetProfileNote(v string) *AuthorCreate {
	_c.mutation.SetProfileNote(v)
	return _c
}

// SetNillableProfileNote sets the "profile_note" field if the given value is not nil.
func (_c *AuthorCreate) SetNillableProfileNote(v *string) *AuthorCreate {
	if v != nil {
		_c.SetProfileNote(*v)
	}
	return _c
}

// SetProfileFetched sets the "profile_fetched" field.
func (_c *AuthorCreate) SetProfileFetched(v bool) *AuthorCreate {
	_c.mutation.SetProfileFetched(v)
	return _c
}

// SetNillableProfileFetched sets the "profile_fetched" field if the given value is not nil.
func (_c *AuthorCreate) SetNillableProfileFetched(v *bool) *AuthorCreate {
	if v != nil {
		_c.SetProfileFetched(*v)
	}
	return _c
}

// SetProfileFetchedAt sets the "profile_fetched_at" field.
func (_c *AuthorCreate) SetProfileFetchedAt(v time.Time) *AuthorCreate {
	_c.mutation.SetProfileFetchedAt(v)
	return _c
}

// SetNillableProfileFetchedAt sets the "profile_fetched_at" field if the given value is not nil.
func (_c *AuthorCreate) SetNillableProfileFetchedAt(v *time.Time) *AuthorCreate {
	if v != nil {
		_c.SetProfileFetchedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AuthorCreate) SetCreatedAt(v time.Time) *AuthorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AuthorCreate) SetNillableCreatedAt(v *time.Time) *AuthorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// AddConclusionIDs adds the "conclusions" edge to the Conclusion entity by IDs.
func (_c *AuthorCreate) AddConclusionIDs(ids ...int) *AuthorCreate {
	_c.mutation.AddConclusionIDs(ids...)
	return _c
}

// AddConclusions adds the "conclusions" edges to the Conclusion entity.
func (_c *AuthorCreate) AddConclusions(v ...*Conclusion) *AuthorCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddConclusionIDs(ids...)
}

// AddSolutionIDs adds the "solutions" edge to the Solution entity by IDs.
func (_c *AuthorCreate) AddSolutionIDs(ids ...int) *AuthorCreate {
	_c.mutation.AddSolutionIDs(ids...)
	return _c
}

// AddSolutions adds the "solutions" edges to the Solution entity.
func (_c *AuthorCreate) AddSolutions(v ...*Solution) *AuthorCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSolutionIDs(ids...)
}

// AddMonitoredSourceIDs adds the "monitored_sources" edge to the MonitoredSource entity by IDs.
func (_c *AuthorCreate) AddMonitoredSourceIDs(ids ...int) *AuthorCreate {
	_c.mutation.AddMonitoredSourceIDs(ids...)
	return _c
}

// AddMonitoredSources adds the "monitored_sources" edges to the MonitoredSource entity.
func (_c *AuthorCreate) AddMonitoredSources(v ...*MonitoredSource) *AuthorCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMonitoredSourceIDs(ids...)
}

// AddQualityAssessmentIDs adds the "quality_assessments" edge to the PostQualityAssessment entity by IDs.
func (_c *AuthorCreate) AddQualityAssessmentIDs(ids ...int) *AuthorCreate {
	_c.mutation.AddQualityAssessmentIDs(ids...)
	return _c
}

// AddQualityAssessments adds the "quality_assessments" edges to the PostQualityAssessment entity.
func (_c *AuthorCreate) AddQualityAssessments(v ...*PostQualityAssessment) *AuthorCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQualityAssessmentIDs(ids...)
}

// SetStatsID sets the "stats" edge to the AuthorStats entity by ID.
func (_c *AuthorCreate) SetStatsID(id int) *AuthorCreate {
	_c.mutation.SetStatsID(id)
	return _c
}

// SetNillableStatsID sets the "stats" edge to the AuthorStats entity by ID if the given value is not nil.
func (_c *AuthorCreate) SetNillableStatsID(id *int) *AuthorCreate {
	if id != nil {
		_c = _c.SetStatsID(*id)
	}
	return _c
}

// SetStats sets the "stats" edge to the AuthorStats entity.
func (_c *AuthorCreate) SetStats(v *AuthorStats) *AuthorCreate {
	return _c.SetStatsID(v.ID)
}

// Mutation returns the AuthorMutation object of the builder.
func (_c *AuthorCreate) Mutation() *AuthorMutation {
	return _c.mutation
}

// Save creates the Author in the database.
func (_c *AuthorCreate) Save(ctx context.Context) (*Author, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AuthorCreate) SaveX(ctx context.Context) *Author {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuthorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuthorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AuthorCreate) defaults() {
	if _, ok := _c.mutation.ProfileFetched(); !ok {
		v := author.DefaultProfileFetched
		_c.mutation.SetProfileFetched(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := author.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AuthorCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Author.name"`)}
	}
	if _, ok := _c.mutation.Platform(); !ok {
		return &ValidationError{Name: "platform", err: errors.New(`ent: missing required field "Author.platform"`)}
	}
	if _, ok := _c.mutation.ProfileFetched(); !ok {
		return &ValidationError{Name: "profile_fetched", err: errors.New(`ent: missing required field "Author.profile_fetched"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Author.created_at"`)}
	}
	return nil
}

func (_c *AuthorCreate) sqlSave(ctx context.Context) (*Author, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AuthorCreate) createSpec() (*Author, *sqlgraph.CreateSpec) {
	var (
		_node = &Author{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(author.Table, sqlgraph.NewFieldSpec(author.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(author.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Platform(); ok {
		_spec.SetField(author.FieldPlatform, field.TypeString, value)
		_node.Platform = value
	}
	if value, ok := _c.mutation.PlatformID(); ok {
		_spec.SetField(author.FieldPlatformID, field.TypeString, value)
		_node.PlatformID = &value
	}
	if value, ok := _c.mutation.ProfileURL(); ok {
		_spec.SetField(author.FieldProfileURL, field.TypeString, value)
		_node.ProfileURL = &value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(author.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(author.FieldRole, field.TypeString, value)
		_node.Role = &value
	}
	if value, ok := _c.mutation.ExpertiseAreas(); ok {
		_spec.SetField(author.FieldExpertiseAreas, field.TypeString, value)
		_node.ExpertiseAreas = &value
	}
	if value, ok := _c.mutation.KnownBiases(); ok {
		_spec.SetField(author.FieldKnownBiases, field.TypeString, value)
		_node.KnownBiases = &value
	}
	if value, ok := _c.mutation.CredibilityTier(); ok {
		_spec.SetField(author.FieldCredibilityTier, field.TypeInt, value)
		_node.CredibilityTier = &value
	}
	if value, ok := _c.mutation.ProfileNote(); ok {
		_spec.SetField(author.FieldProfileNote, field.TypeString, value)
		_node.ProfileNote = &value
	}
	if value, ok := _c.mutation.ProfileFetched(); ok {
		_spec.SetField(author.FieldProfileFetched, field.TypeBool, value)
		_node.ProfileFetched = value
	}
	if value, ok := _c.mutation.ProfileFetchedAt(); ok {
		_spec.SetField(author.FieldProfileFetchedAt, field.TypeTime, value)
		_node.ProfileFetchedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(author.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ConclusionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SolutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MonitoredSourcesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.QualityAssessmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StatsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AuthorCreateBulk is the builder for creating many Author entities in bulk.
type AuthorCreateBulk struct {
	config
	err      error
	builders []*AuthorCreate
}

// Save creates the Author entities in the database.
func (_c *AuthorCreateBulk) Save(ctx context.Context) ([]*Author, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Author, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuthorMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AuthorCreateBulk) SaveX(ctx context.Context) []*Author {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuthorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuthorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

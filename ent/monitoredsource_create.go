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
	"github.com/credlens/pundit/ent/monitoredsource"
	"github.com/credlens/pundit/ent/rawpost"
)

// MonitoredSourceCreate is the builder for creating a MonitoredSource entity.
type MonitoredSourceCreate struct {
	config
	mutation *MonitoredSourceMutation
	hooks    []Hook
}

// SetURL sets the "url" field.
func (_c *MonitoredSourceCreate) SetURL(v string) *MonitoredSourceCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *MonitoredSourceCreate) SetSourceType(v monitoredsource.SourceType) *MonitoredSourceCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetPlatform sets the "platform" field.
func (_c *MonitoredSourceCreate) SetPlatform(v string) *MonitoredSourceCreate {
	_c.mutation.SetPlatform(v)
	return _c
}

// SetPlatformID sets the "platform_id" field.
func (_c *MonitoredSourceCreate) SetPlatformID(v string) *MonitoredSourceCreate {
	_c.mutation.SetPlatformID(v)
	return _c
}

// SetAuthorID sets the "author_id" field.
func (_c *MonitoredSourceCreate) SetAuthorID(v int) *MonitoredSourceCreate {
	_c.mutation.SetAuthorID(v)
	return _c
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_c *MonitoredSourceCreate) SetNillableAuthorID(v *int) *MonitoredSourceCreate {
	if v != nil {
		_c.SetAuthorID(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *MonitoredSourceCreate) SetIsActive(v bool) *MonitoredSourceCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *MonitoredSourceCreate) SetNillableIsActive(v *bool) *MonitoredSourceCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetFetchIntervalMinutes sets the "fetch_interval_minutes" field.
func (_c *MonitoredSourceCreate) SetFetchIntervalMinutes(v int) *MonitoredSourceCreate {
	_c.mutation.SetFetchIntervalMinutes(v)
	return _c
}

// SetNillableFetchIntervalMinutes sets the "fetch_interval_minutes" field if the given value is not nil.
func (_c *MonitoredSourceCreate) SetNillableFetchIntervalMinutes(v *int) *MonitoredSourceCreate {
	if v != nil {
		_c.SetFetchIntervalMinutes(*v)
	}
	return _c
}

// SetLastFetchedAt sets the "last_fetched_at" field.
func (_c *MonitoredSourceCreate) SetLastFetchedAt(v time.Time) *MonitoredSourceCreate {
	_c.mutation.SetLastFetchedAt(v)
	return _c
}

// SetNillableLastFetchedAt sets the "last_fetched_at" field if the given value is not nil.
func (_c *MonitoredSourceCreate) SetNillableLastFetchedAt(v *time.Time) *MonitoredSourceCreate {
	if v != nil {
		_c.SetLastFetchedAt(*v)
	}
	return _c
}

// SetHistoryFetched sets the "history_fetched" field.
func (_c *MonitoredSourceCreate) SetHistoryFetched(v bool) *MonitoredSourceCreate {
	_c.mutation.SetHistoryFetched(v)
	return _c
}

// SetNillableHistoryFetched sets the "history_fetched" field if the given value is not nil.
func (_c *MonitoredSourceCreate) SetNillableHistoryFetched(v *bool) *MonitoredSourceCreate {
	if v != nil {
		_c.SetHistoryFetched(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MonitoredSourceCreate) SetCreatedAt(v time.Time) *MonitoredSourceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MonitoredSourceCreate) SetNillableCreatedAt(v *time.Time) *MonitoredSourceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetAuthor sets the "author" edge to the Author entity.
func (_c *MonitoredSourceCreate) SetAuthor(v *Author) *MonitoredSourceCreate {
	return _c.SetAuthorID(v.ID)
}

// AddRawPostIDs adds the "raw_posts" edge to the RawPost entity by IDs.
func (_c *MonitoredSourceCreate) AddRawPostIDs(ids ...int) *MonitoredSourceCreate {
	_c.mutation.AddRawPostIDs(ids...)
	return _c
}

// AddRawPosts adds the "raw_posts" edges to the RawPost entity.
func (_c *MonitoredSourceCreate) AddRawPosts(v ...*RawPost) *MonitoredSourceCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRawPostIDs(ids...)
}

// Mutation returns the MonitoredSourceMutation object of the builder.
func (_c *MonitoredSourceCreate) Mutation() *MonitoredSourceMutation {
	return _c.mutation
}

// Save creates the MonitoredSource in the database.
func (_c *MonitoredSourceCreate) Save(ctx context.Context) (*MonitoredSource, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MonitoredSourceCreate) SaveX(ctx context.Context) *MonitoredSource {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MonitoredSourceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MonitoredSourceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MonitoredSourceCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := monitoredsource.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.FetchIntervalMinutes(); !ok {
		v := monitoredsource.DefaultFetchIntervalMinutes
		_c.mutation.SetFetchIntervalMinutes(v)
	}
	if _, ok := _c.mutation.HistoryFetched(); !ok {
		v := monitoredsource.DefaultHistoryFetched
		_c.mutation.SetHistoryFetched(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := monitoredsource.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MonitoredSourceCreate) check() error {
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "MonitoredSource.url"`)}
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "MonitoredSource.source_type"`)}
	}
	if v, ok := _c.mutation.SourceType(); ok {
		if err := monitoredsource.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "MonitoredSource.source_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Platform(); !ok {
		return &ValidationError{Name: "platform", err: errors.New(`ent: missing required field "MonitoredSource.platform"`)}
	}
	if _, ok := _c.mutation.PlatformID(); !ok {
		return &ValidationError{Name: "platform_id", err: errors.New(`ent: missing required field "MonitoredSource.platform_id"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "MonitoredSource.is_active"`)}
	}
	if _, ok := _c.mutation.FetchIntervalMinutes(); !ok {
		return &ValidationError{Name: "fetch_interval_minutes", err: errors.New(`ent: missing required field "MonitoredSource.fetch_interval_minutes"`)}
	}
	if _, ok := _c.mutation.HistoryFetched(); !ok {
		return &ValidationError{Name: "history_fetched", err: errors.New(`ent: missing required field "MonitoredSource.history_fetched"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MonitoredSource.created_at"`)}
	}
	return nil
}

func (_c *MonitoredSourceCreate) sqlSave(ctx context.Context) (*MonitoredSource, error) {
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

func (_c *MonitoredSourceCreate) createSpec() (*MonitoredSource, *sqlgraph.CreateSpec) {
	var (
		_node = &MonitoredSource{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(monitoredsource.Table, sqlgraph.NewFieldSpec(monitoredsource.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(monitoredsource.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(monitoredsource.FieldSourceType, field.TypeEnum, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.Platform(); ok {
		_spec.SetField(monitoredsource.FieldPlatform, field.TypeString, value)
		_node.Platform = value
	}
	if value, ok := _c.mutation.PlatformID(); ok {
		_spec.SetField(monitoredsource.FieldPlatformID, field.TypeString, value)
		_node.PlatformID = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(monitoredsource.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.FetchIntervalMinutes(); ok {
		_spec.SetField(monitoredsource.FieldFetchIntervalMinutes, field.TypeInt, value)
		_node.FetchIntervalMinutes = value
	}
	if value, ok := _c.mutation.LastFetchedAt(); ok {
		_spec.SetField(monitoredsource.FieldLastFetchedAt, field.TypeTime, value)
		_node.LastFetchedAt = &value
	}
	if value, ok := _c.mutation.HistoryFetched(); ok {
		_spec.SetField(monitoredsource.FieldHistoryFetched, field.TypeBool, value)
		_node.HistoryFetched = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(monitoredsource.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AuthorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   monitoredsource.AuthorTable,
			Columns: []string{monitoredsource.AuthorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(author.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AuthorID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RawPostsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   monitoredsource.RawPostsTable,
			Columns: []string{monitoredsource.RawPostsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rawpost.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MonitoredSourceCreateBulk is the builder for creating many MonitoredSource entities in bulk.
type MonitoredSourceCreateBulk struct {
	config
	err      error
	builders []*MonitoredSourceCreate
}

// Save creates the MonitoredSource entities in the database.
func (_c *MonitoredSourceCreateBulk) Save(ctx context.Context) ([]*MonitoredSource, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MonitoredSource, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MonitoredSourceMutation)
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
func (_c *MonitoredSourceCreateBulk) SaveX(ctx context.Context) []*MonitoredSource {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MonitoredSourceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MonitoredSourceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

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
	"github.com/credlens/pundit/ent/monitoredsource"
	"github.com/credlens/pundit/ent/predicate"
	"github.com/credlens/pundit/ent/rawpost"
)

// MonitoredSourceUpdate is the builder for updating MonitoredSource entities.
type MonitoredSourceUpdate struct {
	config
	hooks    []Hook
	mutation *MonitoredSourceMutation
}

// Where appends a list predicates to the MonitoredSourceUpdate builder.
func (_u *MonitoredSourceUpdate) Where(ps ...predicate.MonitoredSource) *MonitoredSourceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetURL sets the "url" field.
func (_u *MonitoredSourceUpdate) SetURL(v string) *MonitoredSourceUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *MonitoredSourceUpdate) SetNillableURL(v *string) *MonitoredSourceUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *MonitoredSourceUpdate) SetSourceType(v monitoredsource.SourceType) *MonitoredSourceUpdate {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *MonitoredSourceUpdate) SetNillableSourceType(v *monitoredsource.SourceType) *MonitoredSourceUpdate {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *MonitoredSourceUpdate) SetPlatform(v string) *MonitoredSourceUpdate {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *MonitoredSourceUpdate) SetNillablePlatform(v *string) *MonitoredSourceUpdate {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetPlatformID sets the "platform_id" field.
func (_u *MonitoredSourceUpdate) SetPlatformID(v string) *MonitoredSourceUpdate {
	_u.mutation.SetPlatformID(v)
	return _u
}

// SetNillablePlatformID sets the "platform_id" field if the given value is not nil.
func (_u *MonitoredSourceUpdate) SetNillablePlatformID(v *string) *MonitoredSourceUpdate {
	if v != nil {
		_u.SetPlatformID(*v)
	}
	return _u
}

// SetAuthorID sets the "author_id" field.
func (_u *MonitoredSourceUpdate) SetAuthorID(v int) *MonitoredSourceUpdate {
	_u.mutation.SetAuthorID(v)
	return _u
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_u *MonitoredSourceUpdate) SetNillableAuthorID(v *int) *MonitoredSourceUpdate {
	if v != nil {
		_u.SetAuthorID(*v)
	}
	return _u
}

// ClearAuthorID clears the value of the "author_id" field.
func (_u *MonitoredSourceUpdate) ClearAuthorID() *MonitoredSourceUpdate {
	_u.mutation.ClearAuthorID()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *MonitoredSourceUpdate) SetIsActive(v bool) *MonitoredSourceUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *MonitoredSourceUpdate) SetNillableIsActive(v *bool) *MonitoredSourceUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetFetchIntervalMinutes sets the "fetch_interval_minutes" field.
func (_u *MonitoredSourceUpdate) SetFetchIntervalMinutes(v int) *MonitoredSourceUpdate {
	_u.mutation.ResetFetchIntervalMinutes()
	_u.mutation.SetFetchIntervalMinutes(v)
	return _u
}

// SetNillableFetchIntervalMinutes sets the "fetch_interval_minutes" field if the given value is not nil.
func (_u *MonitoredSourceUpdate) SetNillableFetchIntervalMinutes(v *int) *MonitoredSourceUpdate {
	if v != nil {
		_u.SetFetchIntervalMinutes(*v)
	}
	return _u
}

// AddFetchIntervalMinutes adds value to the "fetch_interval_minutes" field.
func (_u *MonitoredSourceUpdate) AddFetchIntervalMinutes(v int) *MonitoredSourceUpdate {
	_u.mutation.AddFetchIntervalMinutes(v)
	return _u
}

// SetLastFetchedAt sets the "last_fetched_at" field.
func (_u *MonitoredSourceUpdate) SetLastFetchedAt(v time.Time) *MonitoredSourceUpdate {
	_u.mutation.SetLastFetchedAt(v)
	return _u
}

// SetNillableLastFetchedAt sets the "last_fetched_at" field if the given value is not nil.
func (_u *MonitoredSourceUpdate) SetNillableLastFetchedAt(v *time.Time) *MonitoredSourceUpdate {
	if v != nil {
		_u.SetLastFetchedAt(*v)
	}
	return _u
}

// ClearLastFetchedAt clears the value of the "last_fetched_at" field.
func (_u *MonitoredSourceUpdate) ClearLastFetchedAt() *MonitoredSourceUpdate {
	_u.mutation.ClearLastFetchedAt()
	return _u
}

// SetHistoryFetched sets the "history_fetched" field.
func (_u *MonitoredSourceUpdate) SetHistoryFetched(v bool) *MonitoredSourceUpdate {
	_u.mutation.SetHistoryFetched(v)
	return _u
}

// SetNillableHistoryFetched sets the "history_fetched" field if the given value is not nil.
func (_u *MonitoredSourceUpdate) SetNillableHistoryFetched(v *bool) *MonitoredSourceUpdate {
	if v != nil {
		_u.SetHistoryFetched(*v)
	}
	return _u
}

// SetAuthor sets the "author" edge to the Author entity.
func (_u *MonitoredSourceUpdate) SetAuthor(v *Author) *MonitoredSourceUpdate {
	return _u.SetAuthorID(v.ID)
}

// AddRawPostIDs adds the "raw_posts" edge to the RawPost entity by IDs.
func (_u *MonitoredSourceUpdate) AddRawPostIDs(ids ...int) *MonitoredSourceUpdate {
	_u.mutation.AddRawPostIDs(ids...)
	return _u
}

// AddRawPosts adds the "raw_posts" edges to the RawPost entity.
func (_u *MonitoredSourceUpdate) AddRawPosts(v ...*RawPost) *MonitoredSourceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRawPostIDs(ids...)
}

// Mutation returns the MonitoredSourceMutation object of the builder.
func (_u *MonitoredSourceUpdate) Mutation() *MonitoredSourceMutation {
	return _u.mutation
}

// ClearAuthor clears the "author" edge to the Author entity.
func (_u *MonitoredSourceUpdate) ClearAuthor() *MonitoredSourceUpdate {
	_u.mutation.ClearAuthor()
	return _u
}

// ClearRawPosts clears all "raw_posts" edges to the RawPost entity.
func (_u *MonitoredSourceUpdate) ClearRawPosts() *MonitoredSourceUpdate {
	_u.mutation.ClearRawPosts()
	return _u
}

// RemoveRawPostIDs removes the "raw_posts" edge to RawPost entities by IDs.
func (_u *MonitoredSourceUpdate) RemoveRawPostIDs(ids ...int) *MonitoredSourceUpdate {
	_u.mutation.RemoveRawPostIDs(ids...)
	return _u
}

// RemoveRawPosts removes "raw_posts" edges to RawPost entities.
func (_u *MonitoredSourceUpdate) RemoveRawPosts(v ...*RawPost) *MonitoredSourceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRawPostIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MonitoredSourceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MonitoredSourceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MonitoredSourceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MonitoredSourceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MonitoredSourceUpdate) check() error {
	if v, ok := _u.mutation.SourceType(); ok {
		if err := monitoredsource.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "MonitoredSource.source_type": %w`, err)}
		}
	}
	return nil
}

func (_u *MonitoredSourceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(monitoredsource.Table, monitoredsource.Columns, sqlgraph.NewFieldSpec(monitoredsource.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(monitoredsource.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(monitoredsource.FieldSourceType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(monitoredsource.FieldPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlatformID(); ok {
		_spec.SetField(monitoredsource.FieldPlatformID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(monitoredsource.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FetchIntervalMinutes(); ok {
		_spec.SetField(monitoredsource.FieldFetchIntervalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFetchIntervalMinutes(); ok {
		_spec.AddField(monitoredsource.FieldFetchIntervalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastFetchedAt(); ok {
		_spec.SetField(monitoredsource.FieldLastFetchedAt, field.TypeTime, value)
	}
	if _u.mutation.LastFetchedAtCleared() {
		_spec.ClearField(monitoredsource.FieldLastFetchedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.HistoryFetched(); ok {
		_spec.SetField(monitoredsource.FieldHistoryFetched, field.TypeBool, value)
	}
	if _u.mutation.AuthorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RawPostsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRawPostsIDs(); len(nodes) > 0 && !_u.mutation.RawPostsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RawPostsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{monitoredsource.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MonitoredSourceUpdateOne is the builder for updating a single MonitoredSource entity.
type MonitoredSourceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MonitoredSourceMutation
}

// SetURL sets the "url" field.
func (_u *MonitoredSourceUpdateOne) SetURL(v string) *MonitoredSourceUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *MonitoredSourceUpdateOne) SetNillableURL(v *string) *MonitoredSourceUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *MonitoredSourceUpdateOne) SetSourceType(v monitoredsource.SourceType) *MonitoredSourceUpdateOne {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *MonitoredSourceUpdateOne) SetNillableSourceType(v *monitoredsource.SourceType) *MonitoredSourceUpdateOne {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *MonitoredSourceUpdateOne) SetPlatform(v string) *MonitoredSourceUpdateOne {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *MonitoredSourceUpdateOne) SetNillablePlatform(v *string) *MonitoredSourceUpdateOne {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetPlatformID sets the "platform_id" field.
func (_u *MonitoredSourceUpdateOne) SetPlatformID(v string) *MonitoredSourceUpdateOne {
	_u.mutation.SetPlatformID(v)
	return _u
}

// SetNillablePlatformID sets the "platform_id" field if the given value is not nil.
func (_u *MonitoredSourceUpdateOne) SetNillablePlatformID(v *string) *MonitoredSourceUpdateOne {
	if v != nil {
		_u.SetPlatformID(*v)
	}
	return _u
}

// SetAuthorID sets the "author_id" field.
func (_u *MonitoredSourceUpdateOne) SetAuthorID(v int) *MonitoredSourceUpdateOne {
	_u.mutation.SetAuthorID(v)
	return _u
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_u *MonitoredSourceUpdateOne) SetNillableAuthorID(v *int) *MonitoredSourceUpdateOne {
	if v != nil {
		_u.SetAuthorID(*v)
	}
	return _u
}

// ClearAuthorID clears the value of the "author_id" field.
func (_u *MonitoredSourceUpdateOne) ClearAuthorID() *MonitoredSourceUpdateOne {
	_u.mutation.ClearAuthorID()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *MonitoredSourceUpdateOne) SetIsActive(v bool) *MonitoredSourceUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *MonitoredSourceUpdateOne) SetNillableIsActive(v *bool) *MonitoredSourceUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetFetchIntervalMinutes sets the "fetch_interval_minutes" field.
func (_u *MonitoredSourceUpdateOne) SetFetchIntervalMinutes(v int) *MonitoredSourceUpdateOne {
	_u.mutation.ResetFetchIntervalMinutes()
	_u.mutation.SetFetchIntervalMinutes(v)
	return _u
}

// SetNillableFetchIntervalMinutes sets the "fetch_interval_minutes" field if the given value is not nil.
func (_u *MonitoredSourceUpdateOne) SetNillableFetchIntervalMinutes(v *int) *MonitoredSourceUpdateOne {
	if v != nil {
		_u.SetFetchIntervalMinutes(*v)
	}
	return _u
}

// AddFetchIntervalMinutes adds value to the "fetch_interval_minutes" field.
func (_u *MonitoredSourceUpdateOne) AddFetchIntervalMinutes(v int) *MonitoredSourceUpdateOne {
	_u.mutation.AddFetchIntervalMinutes(v)
	return _u
}

// SetLastFetchedAt sets the "last_fetched_at" field.
func (_u *MonitoredSourceUpdateOne) SetLastFetchedAt(v time.Time) *MonitoredSourceUpdateOne {
	_u.mutation.SetLastFetchedAt(v)
	return _u
}

// SetNillableLastFetchedAt sets the "last_fetched_at" field if the given value is not nil.
func (_u *MonitoredSourceUpdateOne) SetNillableLastFetchedAt(v *time.Time) *MonitoredSourceUpdateOne {
	if v != nil {
		_u.SetLastFetchedAt(*v)
	}
	return _u
}

// ClearLastFetchedAt clears the value of the "last_fetched_at" field.
func (_u *MonitoredSourceUpdateOne) ClearLastFetchedAt() *MonitoredSourceUpdateOne {
	_u.mutation.ClearLastFetchedAt()
	return _u
}

// SetHistoryFetched sets the "history_fetched" field.
func (_u *MonitoredSourceUpdateOne) SetHistoryFetched(v bool) *MonitoredSourceUpdateOne {
	_u.mutation.SetHistoryFetched(v)
	return _u
}

// SetNillableHistoryFetched sets the "history_fetched" field if the given value is not nil.
func (_u *MonitoredSourceUpdateOne) SetNillableHistoryFetched(v *bool) *MonitoredSourceUpdateOne {
	if v != nil {
		_u.SetHistoryFetched(*v)
	}
	return _u
}

// SetAuthor sets the "author" edge to the Author entity.
func (_u *MonitoredSourceUpdateOne) SetAuthor(v *Author) *MonitoredSourceUpdateOne {
	return _u.SetAuthorID(v.ID)
}

// AddRawPostIDs adds the "raw_posts" edge to the RawPost entity by IDs.
func (_u *MonitoredSourceUpdateOne) AddRawPostIDs(ids ...int) *MonitoredSourceUpdateOne {
	_u.mutation.AddRawPostIDs(ids...)
	return _u
}

// AddRawPosts adds the "raw_posts" edges to the RawPost entity.
func (_u *MonitoredSourceUpdateOne) AddRawPosts(v ...*RawPost) *MonitoredSourceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRawPostIDs(ids...)
}

// Mutation returns the MonitoredSourceMutation object of the builder.
func (_u *MonitoredSourceUpdateOne) Mutation() *MonitoredSourceMutation {
	return _u.mutation
}

// ClearAuthor clears the "author" edge to the Author entity.
func (_u *MonitoredSourceUpdateOne) ClearAuthor() *MonitoredSourceUpdateOne {
	_u.mutation.ClearAuthor()
	return _u
}

// ClearRawPosts clears all "raw_posts" edges to the RawPost entity.
func (_u *MonitoredSourceUpdateOne) ClearRawPosts() *MonitoredSourceUpdateOne {
	_u.mutation.ClearRawPosts()
	return _u
}

// RemoveRawPostIDs removes the "raw_posts" edge to RawPost entities by IDs.
func (_u *MonitoredSourceUpdateOne) RemoveRawPostIDs(ids ...int) *MonitoredSourceUpdateOne {
	_u.mutation.RemoveRawPostIDs(ids...)
	return _u
}

// RemoveRawPosts removes "raw_posts" edges to RawPost entities.
func (_u *MonitoredSourceUpdateOne) RemoveRawPosts(v ...*RawPost) *MonitoredSourceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRawPostIDs(ids...)
}

// Where appends a list predicates to the MonitoredSourceUpdate builder.
func (_u *MonitoredSourceUpdateOne) Where(ps ...predicate.MonitoredSource) *MonitoredSourceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MonitoredSourceUpdateOne) Select(field string, fields ...string) *MonitoredSourceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MonitoredSource entity.
func (_u *MonitoredSourceUpdateOne) Save(ctx context.Context) (*MonitoredSource, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MonitoredSourceUpdateOne) SaveX(ctx context.Context) *MonitoredSource {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MonitoredSourceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MonitoredSourceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MonitoredSourceUpdateOne) check() error {
	if v, ok := _u.mutation.SourceType(); ok {
		if err := monitoredsource.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "MonitoredSource.source_type": %w`, err)}
		}
	}
	return nil
}

func (_u *MonitoredSourceUpdateOne) sqlSave(ctx context.Context) (_node *MonitoredSource, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(monitoredsource.Table, monitoredsource.Columns, sqlgraph.NewFieldSpec(monitoredsource.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MonitoredSource.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, monitoredsource.FieldID)
		for _, f := range fields {
			if !monitoredsource.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != monitoredsource.FieldID {
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
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(monitoredsource.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(monitoredsource.FieldSourceType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(monitoredsource.FieldPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlatformID(); ok {
		_spec.SetField(monitoredsource.FieldPlatformID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(monitoredsource.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FetchIntervalMinutes(); ok {
		_spec.SetField(monitoredsource.FieldFetchIntervalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFetchIntervalMinutes(); ok {
		_spec.AddField(monitoredsource.FieldFetchIntervalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastFetchedAt(); ok {
		_spec.SetField(monitoredsource.FieldLastFetchedAt, field.TypeTime, value)
	}
	if _u.mutation.LastFetchedAtCleared() {
		_spec.ClearField(monitoredsource.FieldLastFetchedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.HistoryFetched(); ok {
		_spec.SetField(monitoredsource.FieldHistoryFetched, field.TypeBool, value)
	}
	if _u.mutation.AuthorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RawPostsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRawPostsIDs(); len(nodes) > 0 && !_u.mutation.RawPostsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RawPostsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &MonitoredSource{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{monitoredsource.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

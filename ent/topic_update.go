// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/credlens/pundit/ent/conclusion"
	"github.com/credlens/pundit/ent/predicate"
	"github.com/credlens/pundit/ent/solution"
	"github.com/credlens/pundit/ent/topic"
)

// TopicUpdate is the builder for updating Topic entities.
type TopicUpdate struct {
	config
	hooks    []Hook
	mutation *TopicMutation
}

// Where appends a list predicates to the TopicUpdate builder.
func (_u *TopicUpdate) Where(ps ...predicate.Topic) *TopicUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *TopicUpdate) SetName(v string) *TopicUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableName(v *string) *TopicUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TopicUpdate) SetDescription(v string) *TopicUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableDescription(v *string) *TopicUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TopicUpdate) ClearDescription() *TopicUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetTags sets the "tags" field.
func (_u *TopicUpdate) SetTags(v string) *TopicUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// SetNillableTags sets the "tags" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableTags(v *string) *TopicUpdate {
	if v != nil {
		_u.SetTags(*v)
	}
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *TopicUpdate) ClearTags() *TopicUpdate {
	_u.mutation.ClearTags()
	return _u
}

// AddConclusionIDs adds the "conclusions" edge to the Conclusion entity by IDs.
func (_u *TopicUpdate) AddConclusionIDs(ids ...int) *TopicUpdate {
	_u.mutation.AddConclusionIDs(ids...)
	return _u
}

// AddConclusions adds the "conclusions" edges to the Conclusion entity.
func (_u *TopicUpdate) AddConclusions(v ...*Conclusion) *TopicUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConclusionIDs(ids...)
}

// AddSolutionIDs adds the "solutions" edge to the Solution entity by IDs.
func (_u *TopicUpdate) AddSolutionIDs(ids ...int) *TopicUpdate {
	_u.mutation.AddSolutionIDs(ids...)
	return _u
}

// AddSolutions adds the "solutions" edges to the Solution entity.
func (_u *TopicUpdate) AddSolutions(v ...*Solution) *TopicUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSolutionIDs(ids...)
}

// Mutation returns the TopicMutation object of the builder.
func (_u *TopicUpdate) Mutation() *TopicMutation {
	return _u.mutation
}

// ClearConclusions clears all "conclusions" edges to the Conclusion entity.
func (_u *TopicUpdate) ClearConclusions() *TopicUpdate {
	_u.mutation.ClearConclusions()
	return _u
}

// RemoveConclusionIDs removes the "conclusions" edge to Conclusion entities by IDs.
func (_u *TopicUpdate) RemoveConclusionIDs(ids ...int) *TopicUpdate {
	_u.mutation.RemoveConclusionIDs(ids...)
	return _u
}

// RemoveConclusions removes "conclusions" edges to Conclusion entities.
func (_u *TopicUpdate) RemoveConclusions(v ...*Conclusion) *TopicUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConclusionIDs(ids...)
}

// ClearSolutions clears all "solutions" edges to the Solution entity.
func (_u *TopicUpdate) ClearSolutions() *TopicUpdate {
	_u.mutation.ClearSolutions()
	return _u
}

// RemoveSolutionIDs removes the "solutions" edge to Solution entities by IDs.
func (_u *TopicUpdate) RemoveSolutionIDs(ids ...int) *TopicUpdate {
	_u.mutation.RemoveSolutionIDs(ids...)
	return _u
}

// RemoveSolutions removes "solutions" edges to Solution entities.
func (_u *TopicUpdate) RemoveSolutions(v ...*Solution) *TopicUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSolutionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TopicUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TopicUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TopicUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(topic.Table, topic.Columns, sqlgraph.NewFieldSpec(topic.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(topic.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(topic.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(topic.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(topic.FieldTags, field.TypeString, value)
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(topic.FieldTags, field.TypeString)
	}
	if _u.mutation.ConclusionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topic.ConclusionsTable,
			Columns: []string{topic.ConclusionsColumn},
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
			Table:   topic.ConclusionsTable,
			Columns: []string{topic.ConclusionsColumn},
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
			Table:   topic.ConclusionsTable,
			Columns: []string{topic.ConclusionsColumn},
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
			Table:   topic.SolutionsTable,
			Columns: []string{topic.SolutionsColumn},
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
			Table:   topic.SolutionsTable,
			Columns: []string{topic.SolutionsColumn},
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
			Table:   topic.SolutionsTable,
			Columns: []string{topic.SolutionsColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TopicUpdateOne is the builder for updating a single Topic entity.
type TopicUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicMutation
}

// SetName sets the "name" field.
func (_u *TopicUpdateOne) SetName(v string) *TopicUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableName(v *string) *TopicUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TopicUpdateOne) SetDescription(v string) *TopicUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableDescription(v *string) *TopicUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TopicUpdateOne) ClearDescription() *TopicUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetTags sets the "tags" field.
func (_u *TopicUpdateOne) SetTags(v string) *TopicUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// SetNillableTags sets the "tags" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableTags(v *string) *TopicUpdateOne {
	if v != nil {
		_u.SetTags(*v)
	}
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *TopicUpdateOne) ClearTags() *TopicUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// AddConclusionIDs adds the "conclusions" edge to the Conclusion entity by IDs.
func (_u *TopicUpdateOne) AddConclusionIDs(ids ...int) *TopicUpdateOne {
	_u.mutation.AddConclusionIDs(ids...)
	return _u
}

// AddConclusions adds the "conclusions" edges to the Conclusion entity.
func (_u *TopicUpdateOne) AddConclusions(v ...*Conclusion) *TopicUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConclusionIDs(ids...)
}

// AddSolutionIDs adds the "solutions" edge to the Solution entity by IDs.
func (_u *TopicUpdateOne) AddSolutionIDs(ids ...int) *TopicUpdateOne {
	_u.mutation.AddSolutionIDs(ids...)
	return _u
}

// AddSolutions adds the "solutions" edges to the Solution entity.
func (_u *TopicUpdateOne) AddSolutions(v ...*Solution) *TopicUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSolutionIDs(ids...)
}

// Mutation returns the TopicMutation object of the builder.
func (_u *TopicUpdateOne) Mutation() *TopicMutation {
	return _u.mutation
}

// ClearConclusions clears all "conclusions" edges to the Conclusion entity.
func (_u *TopicUpdateOne) ClearConclusions() *TopicUpdateOne {
	_u.mutation.ClearConclusions()
	return _u
}

// RemoveConclusionIDs removes the "conclusions" edge to Conclusion entities by IDs.
func (_u *TopicUpdateOne) RemoveConclusionIDs(ids ...int) *TopicUpdateOne {
	_u.mutation.RemoveConclusionIDs(ids...)
	return _u
}

// RemoveConclusions removes "conclusions" edges to Conclusion entities.
func (_u *TopicUpdateOne) RemoveConclusions(v ...*Conclusion) *TopicUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConclusionIDs(ids...)
}

// ClearSolutions clears all "solutions" edges to the Solution entity.
func (_u *TopicUpdateOne) ClearSolutions() *TopicUpdateOne {
	_u.mutation.ClearSolutions()
	return _u
}

// RemoveSolutionIDs removes the "solutions" edge to Solution entities by IDs.
func (_u *TopicUpdateOne) RemoveSolutionIDs(ids ...int) *TopicUpdateOne {
	_u.mutation.RemoveSolutionIDs(ids...)
	return _u
}

// RemoveSolutions removes "solutions" edges to Solution entities.
func (_u *TopicUpdateOne) RemoveSolutions(v ...*Solution) *TopicUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSolutionIDs(ids...)
}

// Where appends a list predicates to the TopicUpdate builder.
func (_u *TopicUpdateOne) Where(ps ...predicate.Topic) *TopicUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TopicUpdateOne) Select(field string, fields ...string) *TopicUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Topic entity.
func (_u *TopicUpdateOne) Save(ctx context.Context) (*Topic, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicUpdateOne) SaveX(ctx context.Context) *Topic {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TopicUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TopicUpdateOne) sqlSave(ctx context.Context) (_node *Topic, err error) {
	_spec := sqlgraph.NewUpdateSpec(topic.Table, topic.Columns, sqlgraph.NewFieldSpec(topic.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Topic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topic.FieldID)
		for _, f := range fields {
			if !topic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topic.FieldID {
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
		_spec.SetField(topic.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(topic.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(topic.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(topic.FieldTags, field.TypeString, value)
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(topic.FieldTags, field.TypeString)
	}
	if _u.mutation.ConclusionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topic.ConclusionsTable,
			Columns: []string{topic.ConclusionsColumn},
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
			Table:   topic.ConclusionsTable,
			Columns: []string{topic.ConclusionsColumn},
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
			Table:   topic.ConclusionsTable,
			Columns: []string{topic.ConclusionsColumn},
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
			Table:   topic.SolutionsTable,
			Columns: []string{topic.SolutionsColumn},
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
			Table:   topic.SolutionsTable,
			Columns: []string{topic.SolutionsColumn},
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
			Table:   topic.SolutionsTable,
			Columns: []string{topic.SolutionsColumn},
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
	_node = &Topic{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

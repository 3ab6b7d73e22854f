// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/credlens/pundit/ent/solution"
	"github.com/credlens/pundit/ent/solutionassessment"
)

// SolutionAssessmentCreate is the builder for creating a SolutionAssessment entity.
type SolutionAssessmentCreate struct {
	config
	mutation *SolutionAssessmentMutation
	hooks    []Hook
}

// SetSolutionID sets the "solution_id" field.
func (_c *SolutionAssessmentCreate) SetSolutionID(v int) *SolutionAssessmentCreate {
	_c.mutation.SetSolutionID(v)
	return _c
}

// SetVerdict sets the "verdict" field.
func (_c *SolutionAssessmentCreate) SetVerdict(v solutionassessment.Verdict) *SolutionAssessmentCreate {
	_c.mutation.SetVerdict(v)
	return _c
}

// SetEvidenceText sets the "evidence_text" field.
func (_c *SolutionAssessmentCreate) SetEvidenceText(v string) *SolutionAssessmentCreate {
	_c.mutation.SetEvidenceText(v)
	return _c
}

// SetNillableEvidenceText sets the "evidence_text" field if the given value is not nil.
func (_c *SolutionAssessmentCreate) SetNillableEvidenceText(v *string) *SolutionAssessmentCreate {
	if v != nil {
		_c.SetEvidenceText(*v)
	}
	return _c
}

// SetEvidenceTier sets the "evidence_tier" field.
func (_c *SolutionAssessmentCreate) SetEvidenceTier(v int) *SolutionAssessmentCreate {
	_c.mutation.SetEvidenceTier(v)
	return _c
}

// SetNillableEvidenceTier sets the "evidence_tier" field if the given value is not nil.
func (_c *SolutionAssessmentCreate) SetNillableEvidenceTier(v *int) *SolutionAssessmentCreate {
	if v != nil {
		_c.SetEvidenceTier(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *SolutionAssessmentCreate) SetNotes(v string) *SolutionAssessmentCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *SolutionAssessmentCreate) SetNillableNotes(v *string) *SolutionAssessmentCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetRoleFit sets the "role_fit" field.
func (_c *SolutionAssessmentCreate) SetRoleFit(v solutionassessment.RoleFit) *SolutionAssessmentCreate {
	_c.mutation.SetRoleFit(v)
	return _c
}

// SetNillableRoleFit sets the "role_fit" field if the given value is not nil.
func (_c *SolutionAssessmentCreate) SetNillableRoleFit(v *solutionassessment.RoleFit) *SolutionAssessmentCreate {
	if v != nil {
		_c.SetRoleFit(*v)
	}
	return _c
}

// SetRoleFitNote sets the "role_fit_note" field.
func (_c *SolutionAssessmentCreate) SetRoleFitNote(v string) *SolutionAssessmentCreate {
	_c.mutation.SetRoleFitNote(v)
	return _c
}

// SetNillableRoleFitNote sets the "role_fit_note" field if the given value is not nil.
func (_c *SolutionAssessmentCreate) SetNillableRoleFitNote(v *string) *SolutionAssessmentCreate {
	if v != nil {
		_c.SetRoleFitNote(*v)
	}
	return _c
}

// SetAssessedAt sets the "assessed_at" field.
func (_c *SolutionAssessmentCreate) SetAssessedAt(v time.Time) *SolutionAssessmentCreate {
	_c.mutation.SetAssessedAt(v)
	return _c
}

// SetNillableAssessedAt sets the "assessed_at" field if the given value is not nil.
func (_c *SolutionAssessmentCreate) SetNillableAssessedAt(v *time.Time) *SolutionAssessmentCreate {
	if v != nil {
		_c.SetAssessedAt(*v)
	}
	return _c
}

// SetSolution sets the "solution" edge to the Solution entity.
func (_c *SolutionAssessmentCreate) SetSolution(v *Solution) *SolutionAssessmentCreate {
	return _c.SetSolutionID(v.ID)
}

// Mutation returns the SolutionAssessmentMutation object of the builder.
func (_c *SolutionAssessmentCreate) Mutation() *SolutionAssessmentMutation {
	return _c.mutation
}

// Save creates the SolutionAssessment in the database.
func (_c *SolutionAssessmentCreate) Save(ctx context.Context) (*SolutionAssessment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SolutionAssessmentCreate) SaveX(ctx context.Context) *SolutionAssessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SolutionAssessmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SolutionAssessmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SolutionAssessmentCreate) defaults() {
	if _, ok := _c.mutation.AssessedAt(); !ok {
		v := solutionassessment.DefaultAssessedAt()
		_c.mutation.SetAssessedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SolutionAssessmentCreate) check() error {
	if _, ok := _c.mutation.SolutionID(); !ok {
		return &ValidationError{Name: "solution_id", err: errors.New(`ent: missing required field "SolutionAssessment.solution_id"`)}
	}
	if _, ok := _c.mutation.Verdict(); !ok {
		return &ValidationError{Name: "verdict", err: errors.New(`ent: missing required field "SolutionAssessment.verdict"`)}
	}
	if v, ok := _c.mutation.Verdict(); ok {
		if err := solutionassessment.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "SolutionAssessment.verdict": %w`, err)}
		}
	}
	if v, ok := _c.mutation.RoleFit(); ok {
		if err := solutionassessment.RoleFitValidator(v); err != nil {
			return &ValidationError{Name: "role_fit", err: fmt.Errorf(`ent: validator failed for field "SolutionAssessment.role_fit": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AssessedAt(); !ok {
		return &ValidationError{Name: "assessed_at", err: errors.New(`ent: missing required field "SolutionAssessment.assessed_at"`)}
	}
	if len(_c.mutation.SolutionIDs()) == 0 {
		return &ValidationError{Name: "solution", err: errors.New(`ent: missing required edge "SolutionAssessment.solution"`)}
	}
	return nil
}

func (_c *SolutionAssessmentCreate) sqlSave(ctx context.Context) (*SolutionAssessment, error) {
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

func (_c *SolutionAssessmentCreate) createSpec() (*SolutionAssessment, *sqlgraph.CreateSpec) {
	var (
		_node = &SolutionAssessment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(solutionassessment.Table, sqlgraph.NewFieldSpec(solutionassessment.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Verdict(); ok {
		_spec.SetField(solutionassessment.FieldVerdict, field.TypeEnum, value)
		_node.Verdict = value
	}
	if value, ok := _c.mutation.EvidenceText(); ok {
		_spec.SetField(solutionassessment.FieldEvidenceText, field.TypeString, value)
		_node.EvidenceText = &value
	}
	if value, ok := _c.mutation.EvidenceTier(); ok {
		_spec.SetField(solutionassessment.FieldEvidenceTier, field.TypeInt, value)
		_node.EvidenceTier = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(solutionassessment.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.RoleFit(); ok {
		_spec.SetField(solutionassessment.FieldRoleFit, field.TypeEnum, value)
		_node.RoleFit = &value
	}
	if value, ok := _c.mutation.RoleFitNote(); ok {
		_spec.SetField(solutionassessment.FieldRoleFitNote, field.TypeString, value)
		_node.RoleFitNote = &value
	}
	if value, ok := _c.mutation.AssessedAt(); ok {
		_spec.SetField(solutionassessment.FieldAssessedAt, field.TypeTime, value)
		_node.AssessedAt = value
	}
	if nodes := _c.mutation.SolutionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   solutionassessment.SolutionTable,
			Columns: []string{solutionassessment.SolutionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(solution.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SolutionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SolutionAssessmentCreateBulk is the builder for creating many SolutionAssessment entities in bulk.
type SolutionAssessmentCreateBulk struct {
	config
	err      error
	builders []*SolutionAssessmentCreate
}

// Save creates the SolutionAssessment entities in the database.
func (_c *SolutionAssessmentCreateBulk) Save(ctx context.Context) ([]*SolutionAssessment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SolutionAssessment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SolutionAssessmentMutation)
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
func (_c *SolutionAssessmentCreateBulk) SaveX(ctx context.Context) []*SolutionAssessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SolutionAssessmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SolutionAssessmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

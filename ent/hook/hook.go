// Code generated by ent, DO NOT EDIT.

package hook

import (
	"context"
	"fmt"

	"github.com/credlens/pundit/ent"
)

// The AuthorFunc type is an adapter to allow the use of ordinary
// function as Author mutator.
type AuthorFunc func(context.Context, *ent.AuthorMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f AuthorFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.AuthorMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.AuthorMutation", m)
}

// The AuthorStatsFunc type is an adapter to allow the use of ordinary
// function as AuthorStats mutator.
type AuthorStatsFunc func(context.Context, *ent.AuthorStatsMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f AuthorStatsFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.AuthorStatsMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.AuthorStatsMutation", m)
}

// The ConclusionFunc type is an adapter to allow the use of ordinary
// function as Conclusion mutator.
type ConclusionFunc func(context.Context, *ent.ConclusionMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ConclusionFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ConclusionMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ConclusionMutation", m)
}

// The ConclusionVerdictFunc type is an adapter to allow the use of ordinary
// function as ConclusionVerdict mutator.
type ConclusionVerdictFunc func(context.Context, *ent.ConclusionVerdictMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ConclusionVerdictFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ConclusionVerdictMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ConclusionVerdictMutation", m)
}

// The FactFunc type is an adapter to allow the use of ordinary
// function as Fact mutator.
type FactFunc func(context.Context, *ent.FactMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f FactFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.FactMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.FactMutation", m)
}

// The FactEvaluationFunc type is an adapter to allow the use of ordinary
// function as FactEvaluation mutator.
type FactEvaluationFunc func(context.Context, *ent.FactEvaluationMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f FactEvaluationFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.FactEvaluationMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.FactEvaluationMutation", m)
}

// The LogicFunc type is an adapter to allow the use of ordinary
// function as Logic mutator.
type LogicFunc func(context.Context, *ent.LogicMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f LogicFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.LogicMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.LogicMutation", m)
}

// The LogicRelationFunc type is an adapter to allow the use of ordinary
// function as LogicRelation mutator.
type LogicRelationFunc func(context.Context, *ent.LogicRelationMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f LogicRelationFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.LogicRelationMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.LogicRelationMutation", m)
}

// The MonitoredSourceFunc type is an adapter to allow the use of ordinary
// function as MonitoredSource mutator.
type MonitoredSourceFunc func(context.Context, *ent.MonitoredSourceMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f MonitoredSourceFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.MonitoredSourceMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.MonitoredSourceMutation", m)
}

// The PostQualityAssessmentFunc type is an adapter to allow the use of ordinary
// function as PostQualityAssessment mutator.
type PostQualityAssessmentFunc func(context.Context, *ent.PostQualityAssessmentMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f PostQualityAssessmentFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.PostQualityAssessmentMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.PostQualityAssessmentMutation", m)
}

// The RawPostFunc type is an adapter to allow the use of ordinary
// function as RawPost mutator.
type RawPostFunc func(context.Context, *ent.RawPostMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f RawPostFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.RawPostMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.RawPostMutation", m)
}

// The SolutionFunc type is an adapter to allow the use of ordinary
// function as Solution mutator.
type SolutionFunc func(context.Context, *ent.SolutionMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f SolutionFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.SolutionMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.SolutionMutation", m)
}

// The SolutionAssessmentFunc type is an adapter to allow the use of ordinary
// function as SolutionAssessment mutator.
type SolutionAssessmentFunc func(context.Context, *ent.SolutionAssessmentMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f SolutionAssessmentFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.SolutionAssessmentMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.SolutionAssessmentMutation", m)
}

// The TopicFunc type is an adapter to allow the use of ordinary
// function as Topic mutator.
type TopicFunc func(context.Context, *ent.TopicMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f TopicFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.TopicMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.TopicMutation", m)
}

// The VerificationReferenceFunc type is an adapter to allow the use of ordinary
// function as VerificationReference mutator.
type VerificationReferenceFunc func(context.Context, *ent.VerificationReferenceMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f VerificationReferenceFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.VerificationReferenceMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.VerificationReferenceMutation", m)
}

// Condition is a hook condition function.
type Condition func(context.Context, ent.Mutation) bool

// And groups conditions with the AND operator.
func And(first, second Condition, rest ...Condition) Condition {
	return func(ctx context.Context, m ent.Mutation) bool {
		if !first(ctx, m) || !second(ctx, m) {
			return false
		}
		for _, cond := range rest {
			if !cond(ctx, m) {
				return false
			}
		}
		return true
	}
}

// Or groups conditions with the OR operator.
func Or(first, second Condition, rest ...Condition) Condition {
	return func(ctx context.Context, m ent.Mutation) bool {
		if first(ctx, m) || second(ctx, m) {
			return true
		}
		for _, cond := range rest {
			if cond(ctx, m) {
				return true
			}
		}
		return false
	}
}

// Not negates a given condition.
func Not(cond Condition) Condition {
	return func(ctx context.Context, m ent.Mutation) bool {
		return !cond(ctx, m)
	}
}

// HasOp is a condition testing mutation operation.
func HasOp(op ent.Op) Condition {
	return func(_ context.Context, m ent.Mutation) bool {
		return m.Op().Is(op)
	}
}

// HasAddedFields is a condition validating `.AddedField` on fields.
func HasAddedFields(field string, fields ...string) Condition {
	return func(_ context.Context, m ent.Mutation) bool {
		if _, exists := m.AddedField(field); !exists {
			return false
		}
		for _, field := range fields {
			if _, exists := m.AddedField(field); !exists {
				return false
			}
		}
		return true
	}
}

// HasClearedFields is a condition validating `.FieldCleared` on fields.
func HasClearedFields(field string, fields ...string) Condition {
	return func(_ context.Context, m ent.Mutation) bool {
		if exists := m.FieldCleared(field); !exists {
			return false
		}
		for _, field := range fields {
			if exists := m.FieldCleared(field); !exists {
				return false
			}
		}
		return true
	}
}

// HasFields is a condition validating `.Field` on fields.
func HasFields(field string, fields ...string) Condition {
	return func(_ context.Context, m ent.Mutation) bool {
		if _, exists := m.Field(field); !exists {
			return false
		}
		for _, field := range fields {
			if _, exists := m.Field(field); !exists {
				return false
			}
		}
		return true
	}
}

// If executes the given hook under condition.
//
//	hook.If(ComputeAverage, And(HasFields(...), HasAddedFields(...)))
func If(hk ent.Hook, cond Condition) ent.Hook {
	return func(next ent.Mutator) ent.Mutator {
		return ent.MutateFunc(func(ctx context.Context, m ent.Mutation) (ent.Value, error) {
			if cond(ctx, m) {
				return hk(next).Mutate(ctx, m)
			}
			return next.Mutate(ctx, m)
		})
	}
}

// On executes the given hook only for the given operation.
//
//	hook.On(Log, ent.Delete|ent.Create)
func On(hk ent.Hook, op ent.Op) ent.Hook {
	return If(hk, HasOp(op))
}

// Unless skips the given hook only for the given operation.
//
//	hook.Unless(Log, ent.Update|ent.UpdateOne)
func Unless(hk ent.Hook, op ent.Op) ent.Hook {
	return If(hk, Not(HasOp(op)))
}

// FixedError is a hook returning a fixed error.
func FixedError(err error) ent.Hook {
	return func(ent.Mutator) ent.Mutator {
		return ent.MutateFunc(func(context.Context, ent.Mutation) (ent.Value, error) {
			return nil, err
		})
	}
}

// Reject returns a hook that rejects all operations that match op.
//
//	func (T) Hooks() []ent.Hook {
//		return []ent.Hook{
//			Reject(ent.Delete|ent.Update),
//		}
//	}
func Reject(op ent.Op) ent.Hook {
	hk := FixedError(fmt.Errorf("%s operation is not allowed", op))
	return On(hk, op)
}

// Chain acts as a list of hooks and is effectively immutable.
// Once created, it will always hold the same set of hooks in the same order.
type Chain struct {
	hooks []ent.Hook
}

// NewChain creates a new chain of hooks.
func NewChain(hooks ...ent.Hook) Chain {
	return Chain{append([]ent.Hook(nil), hooks...)}
}

// Hook chains the list of hooks and returns the final hook.
func (c Chain) Hook() ent.Hook {
	return func(mutator ent.Mutator) ent.Mutator {
		for i := len(c.hooks) - 1; i >= 0; i-- {
			mutator = c.hooks[i](mutator)
		}
		return mutator
	}
}

// Append extends a chain, adding the specified hook
// as the last ones in the mutation flow.
func (c Chain) Append(hooks ...ent.Hook) Chain {
	newHooks := make([]ent.Hook, 0, len(c.hooks)+len(hooks))
	newHooks = append(newHooks, c.hooks...)
	newHooks = append(newHooks, hooks...)
	return Chain{newHooks}
}

// Extend extends a chain, adding the specified chain
// as the last ones in the mutation flow.
func (c Chain) Extend(chain Chain) Chain {
	return c.Append(chain.hooks...)
}

package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/credlens/pundit/ent"
	"github.com/credlens/pundit/ent/logic"
	"github.com/credlens/pundit/pkg/llm"
	"github.com/credlens/pundit/pkg/prompt"
	"github.com/credlens/pundit/pkg/services"
)

// LogicEvaluator grades every unassessed reasoning chain: how completely
// the supporting and assumption facts, in their current verification state,
// entail the chain's target claim. Assessed chains leave the eligible set,
// so each chain is graded once.
type LogicEvaluator struct {
	logics      *services.LogicService
	facts       *services.FactService
	conclusions *services.ConclusionService
	solutions   *services.SolutionService
	model       completionModel
	logger      *slog.Logger
}

func NewLogicEvaluator(logics *services.LogicService, facts *services.FactService, conclusions *services.ConclusionService, solutions *services.SolutionService, model completionModel) *LogicEvaluator {
	return &LogicEvaluator{
		logics:      logics,
		facts:       facts,
		conclusions: conclusions,
		solutions:   solutions,
		model:       model,
		logger:      slog.Default().With("component", "logic_evaluator"),
	}
}

func (e *LogicEvaluator) Name() string { return "logic_evaluator" }

func (e *LogicEvaluator) Run(ctx context.Context) error {
	logics, err := e.logics.UnassessedLogics(ctx)
	if err != nil {
		return err
	}
	for _, l := range logics {
		if err := ctx.Err(); err != nil {
			return err
		}
		e.assess(ctx, l)
	}
	return nil
}

func (e *LogicEvaluator) assess(ctx context.Context, l *ent.Logic) {
	ids := make([]int, 0, len(l.SupportingFactIds)+len(l.AssumptionFactIds))
	ids = append(ids, l.SupportingFactIds...)
	ids = append(ids, l.AssumptionFactIds...)

	factsByID, err := e.facts.FactsByIDs(ctx, ids)
	if err != nil {
		e.logger.Error("Failed to load chain facts", "logic_id", l.ID, "error", err)
		countItem(e.Name(), outcomeFailed)
		return
	}
	evals, err := e.facts.LatestEvaluations(ctx, ids)
	if err != nil {
		e.logger.Error("Failed to load fact evaluations", "logic_id", l.ID, "error", err)
		countItem(e.Name(), outcomeFailed)
		return
	}

	targetType, targetClaim := e.target(ctx, l)
	user := prompt.BuildLogicEvaluationUserMessage(
		targetType, targetClaim,
		factEvidence(l.SupportingFactIds, factsByID, evals),
		factEvidence(l.AssumptionFactIds, factsByID, evals),
	)
	res, err := e.model.Complete(ctx, prompt.LogicEvaluationSystem, user, prompt.LogicEvaluationMaxTokens)
	if err != nil {
		e.logger.Warn("Logic evaluation request failed", "logic_id", l.ID, "error", err)
		countItem(e.Name(), outcomeSkipped)
		return
	}

	var parsed struct {
		LogicCompleteness  string  `json:"logic_completeness"`
		LogicNote          *string `json:"logic_note"`
		OneSentenceSummary *string `json:"one_sentence_summary"`
	}
	if err := llm.ParseJSON(res.Content, &parsed); err != nil {
		e.logger.Warn("Unparseable logic evaluation output", "logic_id", l.ID, "error", err)
		countItem(e.Name(), outcomeSkipped)
		return
	}

	var completeness *logic.LogicCompleteness
	if c := logic.LogicCompleteness(strings.ToLower(strings.TrimSpace(parsed.LogicCompleteness))); logic.LogicCompletenessValidator(c) == nil {
		completeness = &c
	} else if parsed.LogicCompleteness != "" {
		e.logger.Warn("Unknown logic_completeness, leaving unset", "logic_id", l.ID, "value", parsed.LogicCompleteness)
	}

	if err := e.logics.SaveAssessment(ctx, l.ID, completeness, parsed.LogicNote, parsed.OneSentenceSummary, time.Now()); err != nil {
		e.logger.Error("Failed to save logic assessment", "logic_id", l.ID, "error", err)
		countItem(e.Name(), outcomeFailed)
		return
	}
	e.logger.Info("Logic assessed", "logic_id", l.ID, "completeness", parsed.LogicCompleteness)
	countItem(e.Name(), outcomeDone)
}

// target resolves the claim a chain argues for. A dangling target is still
// assessed with a placeholder so the chain does not stay eligible forever.
func (e *LogicEvaluator) target(ctx context.Context, l *ent.Logic) (string, string) {
	if l.LogicType == logic.LogicTypeDerivation {
		if l.SolutionID != nil {
			if s, err := e.solutions.GetSolution(ctx, *l.SolutionID); err == nil {
				return "solution", s.Claim
			}
		}
		return "solution", "(not found)"
	}
	if l.ConclusionID != nil {
		if c, err := e.conclusions.GetConclusion(ctx, *l.ConclusionID); err == nil {
			return "conclusion", c.Claim
		}
	}
	return "conclusion", "(not found)"
}

func factEvidence(ids []int, facts map[int]*ent.Fact, evals map[int]*ent.FactEvaluation) []prompt.FactEvidence {
	out := make([]prompt.FactEvidence, 0, len(ids))
	for _, id := range ids {
		f, ok := facts[id]
		if !ok {
			out = append(out, prompt.FactEvidence{ID: id, Missing: true})
			continue
		}
		fe := prompt.FactEvidence{ID: id, Claim: f.Claim}
		if f.VerifiableExpression != nil {
			fe.VerifiableExpression = *f.VerifiableExpression
		}
		if f.VerifiedSourceOrg != nil {
			fe.SourceOrg = *f.VerifiedSourceOrg
		}
		if ev, ok := evals[id]; ok {
			fe.Status = string(ev.Result)
		}
		out = append(out, fe)
	}
	return out
}

package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/credlens/pundit/ent"
	"github.com/credlens/pundit/ent/conclusionverdict"
	"github.com/credlens/pundit/ent/solutionassessment"
	"github.com/credlens/pundit/pkg/llm"
	"github.com/credlens/pundit/pkg/prompt"
	"github.com/credlens/pundit/pkg/services"
)

// RoleEvaluator annotates verdicts and assessments with whether the claim
// sits inside the author's professional standing. Judgement failures leave
// role_fit null so the row is retried next pass.
type RoleEvaluator struct {
	conclusions *services.ConclusionService
	solutions   *services.SolutionService
	authors     *services.AuthorService
	model       completionModel
	logger      *slog.Logger
}

func NewRoleEvaluator(conclusions *services.ConclusionService, solutions *services.SolutionService, authors *services.AuthorService, model completionModel) *RoleEvaluator {
	return &RoleEvaluator{
		conclusions: conclusions,
		solutions:   solutions,
		authors:     authors,
		model:       model,
		logger:      slog.Default().With("component", "role_evaluator"),
	}
}

func (e *RoleEvaluator) Name() string { return "role_evaluator" }

func (e *RoleEvaluator) Run(ctx context.Context) error {
	if err := e.annotateVerdicts(ctx); err != nil {
		return err
	}
	return e.annotateAssessments(ctx)
}

func (e *RoleEvaluator) annotateVerdicts(ctx context.Context) error {
	verdicts, err := e.conclusions.VerdictsMissingRoleFit(ctx)
	if err != nil {
		return err
	}
	for _, v := range verdicts {
		if err := ctx.Err(); err != nil {
			return err
		}
		c, err := e.conclusions.GetConclusion(ctx, v.ConclusionID)
		if err != nil {
			e.logger.Error("Failed to load conclusion for verdict", "verdict_id", v.ID, "error", err)
			countItem(e.Name(), outcomeFailed)
			continue
		}
		a, err := e.authors.GetAuthor(ctx, c.AuthorID)
		if err != nil {
			e.logger.Error("Failed to load author for verdict", "verdict_id", v.ID, "error", err)
			countItem(e.Name(), outcomeFailed)
			continue
		}

		fit, note, ok := e.judge(ctx, a, fmt.Sprintf("conclusion (%s)", c.ConclusionType), c.Claim)
		if !ok {
			countItem(e.Name(), outcomeSkipped)
			continue
		}
		if err := e.conclusions.SetVerdictRoleFit(ctx, v.ID, conclusionverdict.RoleFit(fit), note); err != nil {
			e.logger.Error("Failed to set verdict role fit", "verdict_id", v.ID, "error", err)
			countItem(e.Name(), outcomeFailed)
			continue
		}
		countItem(e.Name(), outcomeDone)
	}
	return nil
}

func (e *RoleEvaluator) annotateAssessments(ctx context.Context) error {
	assessments, err := e.solutions.AssessmentsMissingRoleFit(ctx)
	if err != nil {
		return err
	}
	for _, sa := range assessments {
		if err := ctx.Err(); err != nil {
			return err
		}
		sol, err := e.solutions.GetSolution(ctx, sa.SolutionID)
		if err != nil {
			e.logger.Error("Failed to load solution for assessment", "assessment_id", sa.ID, "error", err)
			countItem(e.Name(), outcomeFailed)
			continue
		}
		a, err := e.authors.GetAuthor(ctx, sol.AuthorID)
		if err != nil {
			e.logger.Error("Failed to load author for assessment", "assessment_id", sa.ID, "error", err)
			countItem(e.Name(), outcomeFailed)
			continue
		}

		claim := sol.Claim
		if sol.ActionType != nil && sol.ActionTarget != nil {
			claim = fmt.Sprintf("%s (%s %s)", sol.Claim, *sol.ActionType, *sol.ActionTarget)
		}
		fit, note, ok := e.judge(ctx, a, "action recommendation", claim)
		if !ok {
			countItem(e.Name(), outcomeSkipped)
			continue
		}
		if err := e.solutions.SetAssessmentRoleFit(ctx, sa.ID, solutionassessment.RoleFit(fit), note); err != nil {
			e.logger.Error("Failed to set assessment role fit", "assessment_id", sa.ID, "error", err)
			countItem(e.Name(), outcomeFailed)
			continue
		}
		countItem(e.Name(), outcomeDone)
	}
	return nil
}

// judge asks the model for the role fit of one claim. ok is false on
// transport or parse failure; a parsed but unrecognized fit value degrades
// to questionable.
func (e *RoleEvaluator) judge(ctx context.Context, a *ent.Author, claimType, claim string) (string, *string, bool) {
	in := prompt.RoleFitInput{
		Name:      a.Name,
		ClaimType: claimType,
		Claim:     claim,
	}
	if a.Role != nil {
		in.Role = *a.Role
	}
	if a.ExpertiseAreas != nil {
		in.ExpertiseAreas = *a.ExpertiseAreas
	}
	if a.KnownBiases != nil {
		in.KnownBiases = *a.KnownBiases
	}
	if a.ProfileNote != nil {
		in.ProfileNote = *a.ProfileNote
	}
	if a.CredibilityTier != nil {
		in.CredibilityTier = *a.CredibilityTier
	}

	res, err := e.model.Complete(ctx, prompt.RoleFitSystem, prompt.BuildRoleFitUserMessage(in), prompt.RoleFitMaxTokens)
	if err != nil {
		e.logger.Warn("Role fit request failed", "author_id", a.ID, "error", err)
		return "", nil, false
	}
	var parsed struct {
		RoleFit     string  `json:"role_fit"`
		RoleFitNote *string `json:"role_fit_note"`
	}
	if err := llm.ParseJSON(res.Content, &parsed); err != nil {
		e.logger.Warn("Unparseable role fit output", "author_id", a.ID, "error", err)
		return "", nil, false
	}

	fit := strings.ToLower(strings.TrimSpace(parsed.RoleFit))
	switch fit {
	case "appropriate", "questionable", "mismatched":
	default:
		e.logger.Warn("Unknown role_fit value, recording questionable", "author_id", a.ID, "value", parsed.RoleFit)
		fit = "questionable"
	}
	return fit, parsed.RoleFitNote, true
}

package pipeline

import (
	"context"
	"log/slog"
	"strings"

	"github.com/credlens/pundit/ent"
	"github.com/credlens/pundit/pkg/llm"
	"github.com/credlens/pundit/pkg/prompt"
	"github.com/credlens/pundit/pkg/services"
)

// SolutionSimulator writes the "executed as stated today" note for each
// fresh recommendation, together with the monitoring window its outcome
// will be judged in. The source conclusions the recommendation was derived
// from go into the prompt as context.
type SolutionSimulator struct {
	solutions   *services.SolutionService
	conclusions *services.ConclusionService
	logics      *services.LogicService
	model       completionModel
	logger      *slog.Logger
}

func NewSolutionSimulator(solutions *services.SolutionService, conclusions *services.ConclusionService, logics *services.LogicService, model completionModel) *SolutionSimulator {
	return &SolutionSimulator{
		solutions:   solutions,
		conclusions: conclusions,
		logics:      logics,
		model:       model,
		logger:      slog.Default().With("component", "solution_simulator"),
	}
}

func (m *SolutionSimulator) Name() string { return "solution_simulator" }

func (m *SolutionSimulator) Run(ctx context.Context) error {
	solutions, err := m.solutions.UnsimulatedSolutions(ctx)
	if err != nil {
		return err
	}
	for _, s := range solutions {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.simulate(ctx, s)
	}
	return nil
}

func (m *SolutionSimulator) simulate(ctx context.Context, sol *ent.Solution) {
	lines, err := m.sourceConclusions(ctx, sol.ID)
	if err != nil {
		m.logger.Error("Failed to load source conclusions", "solution_id", sol.ID, "error", err)
		countItem(m.Name(), outcomeFailed)
		return
	}

	in := prompt.SolutionInput{Claim: sol.Claim}
	if sol.ActionType != nil {
		in.ActionType = string(*sol.ActionType)
	}
	if sol.ActionTarget != nil {
		in.ActionTarget = *sol.ActionTarget
	}
	if sol.ActionRationale != nil {
		in.ActionRationale = *sol.ActionRationale
	}

	res, err := m.model.Complete(ctx, prompt.SolutionSimulationSystem, prompt.BuildSolutionSimulationUserMessage(in, lines), prompt.SolutionSimulationMaxTokens)
	if err != nil {
		m.logger.Warn("Simulation request failed", "solution_id", sol.ID, "error", err)
		countItem(m.Name(), outcomeSkipped)
		return
	}

	var parsed monitoringResponse
	if err := llm.ParseJSON(res.Content, &parsed); err != nil {
		m.logger.Warn("Unparseable simulation output", "solution_id", sol.ID, "error", err)
		countItem(m.Name(), outcomeSkipped)
		return
	}
	if parsed.SimulatedActionNote == nil || strings.TrimSpace(*parsed.SimulatedActionNote) == "" {
		m.logger.Warn("Simulation output without an action note, solution stays unsimulated", "solution_id", sol.ID)
		countItem(m.Name(), outcomeSkipped)
		return
	}

	// A recommendation that cannot be checked against authoritative data
	// still gets its note saved; the monitoring fields just stay empty.
	plan, _ := parsed.plan()
	if err := m.solutions.SaveSimulation(ctx, sol.ID, strings.TrimSpace(*parsed.SimulatedActionNote), plan); err != nil {
		m.logger.Error("Failed to save simulation", "solution_id", sol.ID, "error", err)
		countItem(m.Name(), outcomeFailed)
		return
	}
	m.logger.Info("Solution simulated", "solution_id", sol.ID, "sources", len(lines))
	countItem(m.Name(), outcomeDone)
}

func (m *SolutionSimulator) sourceConclusions(ctx context.Context, solutionID int) ([]prompt.ConclusionLine, error) {
	dlog, err := m.logics.DerivationLogic(ctx, solutionID)
	if err != nil {
		return nil, err
	}
	if dlog == nil || len(dlog.SourceConclusionIds) == 0 {
		return nil, nil
	}
	byID, err := m.conclusions.ConclusionsByIDs(ctx, dlog.SourceConclusionIds)
	if err != nil {
		return nil, err
	}
	lines := make([]prompt.ConclusionLine, 0, len(dlog.SourceConclusionIds))
	for _, id := range dlog.SourceConclusionIds {
		c, ok := byID[id]
		if !ok {
			continue
		}
		lines = append(lines, prompt.ConclusionLine{Type: string(c.ConclusionType), Claim: c.Claim})
	}
	return lines, nil
}

package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/credlens/pundit/ent"
	"github.com/credlens/pundit/ent/conclusion"
	"github.com/credlens/pundit/ent/conclusionverdict"
	"github.com/credlens/pundit/ent/factevaluation"
	"github.com/credlens/pundit/ent/solutionassessment"
	"github.com/credlens/pundit/pkg/services"
)

// VerdictDeriver settles conclusions and solutions from recorded state
// alone, no model involved. The conclusion rule table runs over the latest
// evaluation of each fact its inference chain references, and solutions
// roll up the latest verdicts of their source conclusions. A row is
// written only when the derived verdict differs from the stored one, so a
// quiet database stays quiet across passes.
type VerdictDeriver struct {
	conclusions *services.ConclusionService
	solutions   *services.SolutionService
	logics      *services.LogicService
	facts       *services.FactService
	logger      *slog.Logger
}

func NewVerdictDeriver(conclusions *services.ConclusionService, solutions *services.SolutionService, logics *services.LogicService, facts *services.FactService) *VerdictDeriver {
	return &VerdictDeriver{
		conclusions: conclusions,
		solutions:   solutions,
		logics:      logics,
		facts:       facts,
		logger:      slog.Default().With("component", "verdict_deriver"),
	}
}

func (d *VerdictDeriver) Name() string { return "verdict_deriver" }

func (d *VerdictDeriver) Run(ctx context.Context) error {
	if err := d.deriveConclusions(ctx); err != nil {
		return err
	}
	return d.deriveSolutions(ctx)
}

func (d *VerdictDeriver) deriveConclusions(ctx context.Context) error {
	pending, err := d.conclusions.PendingConclusions(ctx)
	if err != nil {
		return err
	}
	now := time.Now()
	for _, c := range pending {
		if err := ctx.Err(); err != nil {
			return err
		}
		if c.ConclusionType == conclusion.ConclusionTypePredictive {
			// A prediction is only judged after its observation window closed;
			// without a window end there is nothing to judge against yet.
			if c.MonitoringEnd == nil || now.Before(*c.MonitoringEnd) {
				continue
			}
		}
		if err := d.deriveConclusion(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

// deriveConclusion settles one conclusion. The returned error is non-nil
// only for corrupt chains, which abort the pass.
func (d *VerdictDeriver) deriveConclusion(ctx context.Context, c *ent.Conclusion) error {
	lg, err := d.logics.LatestInferenceLogic(ctx, c.ID)
	if err != nil {
		d.logger.Error("Failed to load inference chain", "conclusion_id", c.ID, "error", err)
		countItem(d.Name(), outcomeFailed)
		return nil
	}
	if lg == nil {
		return nil
	}
	if lg.SolutionID != nil {
		return fmt.Errorf("inference logic %d for conclusion %d has solution_id set", lg.ID, c.ID)
	}

	ids := make([]int, 0, len(lg.SupportingFactIds)+len(lg.AssumptionFactIds))
	ids = append(ids, lg.SupportingFactIds...)
	ids = append(ids, lg.AssumptionFactIds...)
	evals, err := d.facts.LatestEvaluations(ctx, ids)
	if err != nil {
		d.logger.Error("Failed to load fact evaluations", "conclusion_id", c.ID, "error", err)
		countItem(d.Name(), outcomeFailed)
		return nil
	}

	verdict, trace := deriveConclusionVerdict(lg.SupportingFactIds, lg.AssumptionFactIds, evals)

	latest, err := d.conclusions.LatestVerdict(ctx, c.ID)
	if err != nil {
		d.logger.Error("Failed to load latest verdict", "conclusion_id", c.ID, "error", err)
		countItem(d.Name(), outcomeFailed)
		return nil
	}
	if latest != nil && latest.Verdict == verdict {
		return nil
	}

	if _, err := d.conclusions.RecordVerdict(ctx, c.ID, verdict, trace); err != nil {
		d.logger.Error("Failed to record verdict", "conclusion_id", c.ID, "error", err)
		countItem(d.Name(), outcomeFailed)
		return nil
	}
	d.logger.Info("Conclusion verdict derived", "conclusion_id", c.ID, "verdict", verdict)
	countItem(d.Name(), outcomeDone)
	return nil
}

// deriveConclusionVerdict applies the verdict rule table to the latest
// evaluation of each referenced fact. Facts without an evaluation count as
// unavailable; a chain with no facts at all stays pending. The returned
// trace records exactly what the verdict was derived from.
func deriveConclusionVerdict(supportingIDs, assumptionIDs []int, evals map[int]*ent.FactEvaluation) (conclusionverdict.Verdict, map[string]interface{}) {
	supporting := resultsFor(supportingIDs, evals)
	assumptions := resultsFor(assumptionIDs, evals)

	total := len(supporting) + len(assumptions)
	trueCnt := countResult(supporting, factevaluation.ResultTrue) + countResult(assumptions, factevaluation.ResultTrue)
	unavailableCnt := countResult(supporting, factevaluation.ResultUnavailable) + countResult(assumptions, factevaluation.ResultUnavailable)

	var verdict conclusionverdict.Verdict
	switch {
	case total > 0 && unavailableCnt == total:
		verdict = conclusionverdict.VerdictUnverifiable
	case countResult(assumptions, factevaluation.ResultFalse) > 0:
		verdict = conclusionverdict.VerdictRefuted
	case countResult(supporting, factevaluation.ResultFalse) > 0:
		verdict = conclusionverdict.VerdictRefuted
	case trueCnt > 0 && trueCnt+unavailableCnt == total:
		verdict = conclusionverdict.VerdictConfirmed
	case trueCnt > 0:
		verdict = conclusionverdict.VerdictPartial
	default:
		verdict = conclusionverdict.VerdictPending
	}

	trace := map[string]interface{}{
		"supporting_facts": traceResults(supporting),
		"assumption_facts": traceResults(assumptions),
		"verdict":          string(verdict),
	}
	return verdict, trace
}

func resultsFor(ids []int, evals map[int]*ent.FactEvaluation) map[int]factevaluation.Result {
	out := make(map[int]factevaluation.Result, len(ids))
	for _, id := range ids {
		if ev, ok := evals[id]; ok {
			out[id] = ev.Result
		} else {
			out[id] = factevaluation.ResultUnavailable
		}
	}
	return out
}

func countResult(m map[int]factevaluation.Result, want factevaluation.Result) int {
	n := 0
	for _, r := range m {
		if r == want {
			n++
		}
	}
	return n
}

func traceResults(m map[int]factevaluation.Result) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for id, r := range m {
		out[strconv.Itoa(id)] = string(r)
	}
	return out
}

func (d *VerdictDeriver) deriveSolutions(ctx context.Context) error {
	pending, err := d.solutions.PendingSolutions(ctx)
	if err != nil {
		return err
	}
	now := time.Now()
	for _, s := range pending {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.MonitoringEnd != nil && now.Before(*s.MonitoringEnd) {
			continue
		}
		d.deriveSolution(ctx, s)
	}
	return nil
}

func (d *VerdictDeriver) deriveSolution(ctx context.Context, s *ent.Solution) {
	dlog, err := d.logics.DerivationLogic(ctx, s.ID)
	if err != nil {
		d.logger.Error("Failed to load derivation chain", "solution_id", s.ID, "error", err)
		countItem(d.Name(), outcomeFailed)
		return
	}
	var sourceIDs []int
	if dlog != nil {
		sourceIDs = dlog.SourceConclusionIds
	}

	verdict := solutionassessment.VerdictPending
	if len(sourceIDs) > 0 {
		latest, err := d.conclusions.LatestVerdicts(ctx, sourceIDs)
		if err != nil {
			d.logger.Error("Failed to load source verdicts", "solution_id", s.ID, "error", err)
			countItem(d.Name(), outcomeFailed)
			return
		}
		verdict = aggregateSolutionVerdict(sourceIDs, latest)
	}

	current, err := d.solutions.LatestAssessment(ctx, s.ID)
	if err != nil {
		d.logger.Error("Failed to load latest assessment", "solution_id", s.ID, "error", err)
		countItem(d.Name(), outcomeFailed)
		return
	}
	if current != nil && current.Verdict == verdict {
		return
	}

	evidence := fmt.Sprintf("derived from %d source-conclusion verdicts", len(sourceIDs))
	if _, err := d.solutions.RecordAssessment(ctx, s.ID, verdict, &evidence); err != nil {
		d.logger.Error("Failed to record assessment", "solution_id", s.ID, "error", err)
		countItem(d.Name(), outcomeFailed)
		return
	}
	d.logger.Info("Solution assessed", "solution_id", s.ID, "verdict", verdict, "sources", len(sourceIDs))
	countItem(d.Name(), outcomeDone)
}

// aggregateSolutionVerdict rolls up the latest verdict of each source
// conclusion. Conclusions with no verdict row yet count as pending, so a
// solution confirms only after every premise has settled true.
func aggregateSolutionVerdict(sourceIDs []int, latest map[int]*ent.ConclusionVerdict) solutionassessment.Verdict {
	confirmed, refuted, unverifiable := 0, 0, 0
	for _, id := range sourceIDs {
		v, ok := latest[id]
		if !ok {
			continue
		}
		switch v.Verdict {
		case conclusionverdict.VerdictConfirmed:
			confirmed++
		case conclusionverdict.VerdictRefuted:
			refuted++
		case conclusionverdict.VerdictUnverifiable:
			unverifiable++
		}
	}
	switch {
	case confirmed == len(sourceIDs):
		return solutionassessment.VerdictConfirmed
	case refuted > 0:
		return solutionassessment.VerdictRefuted
	case confirmed > 0:
		return solutionassessment.VerdictPartial
	case unverifiable == len(sourceIDs):
		return solutionassessment.VerdictUnverifiable
	default:
		return solutionassessment.VerdictPending
	}
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/credlens/pundit/ent"
	"github.com/credlens/pundit/ent/solution"
	"github.com/credlens/pundit/ent/solutionassessment"
	"github.com/credlens/pundit/pkg/models"
)

// SolutionService manages actionable recommendations, their simulated
// executions, and the assessment history rolled up from conclusion verdicts.
type SolutionService struct {
	client *ent.Client
}

// NewSolutionService creates a new SolutionService
func NewSolutionService(client *ent.Client) *SolutionService {
	return &SolutionService{client: client}
}

// GetSolution retrieves a solution by ID
func (s *SolutionService) GetSolution(ctx context.Context, id int) (*ent.Solution, error) {
	sol, err := s.client.Solution.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get solution: %w", err)
	}
	return sol, nil
}

// UnsimulatedSolutions returns pending solutions the simulator has not
// written an execution note for.
func (s *SolutionService) UnsimulatedSolutions(ctx context.Context) ([]*ent.Solution, error) {
	solutions, err := s.client.Solution.Query().
		Where(
			solution.StatusEQ(solution.StatusPending),
			solution.SimulatedActionNoteIsNil(),
		).
		Order(ent.Asc(solution.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unsimulated solutions: %w", err)
	}
	return solutions, nil
}

// PendingSolutions returns solutions still awaiting a settled status.
func (s *SolutionService) PendingSolutions(ctx context.Context) ([]*ent.Solution, error) {
	solutions, err := s.client.Solution.Query().
		Where(solution.StatusEQ(solution.StatusPending)).
		Order(ent.Asc(solution.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending solutions: %w", err)
	}
	return solutions, nil
}

// SaveSimulation stores the simulated execution note and monitoring window.
func (s *SolutionService) SaveSimulation(ctx context.Context, id int, note string, plan models.MonitoringPlan) error {
	if note == "" {
		return NewValidationError("simulated_action_note", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.client.Solution.UpdateOneID(id).
		SetSimulatedActionNote(note).
		SetNillableMonitoringSourceOrg(plan.SourceOrg).
		SetNillableMonitoringSourceURL(plan.SourceURL).
		SetNillableMonitoringPeriodNote(plan.PeriodNote).
		SetNillableMonitoringStart(plan.Start).
		SetNillableMonitoringEnd(plan.End).
		Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to save simulation: %w", err)
	}
	return nil
}

// LatestAssessment returns the most recent assessment for a solution, or nil
// when none has been recorded yet.
func (s *SolutionService) LatestAssessment(ctx context.Context, solutionID int) (*ent.SolutionAssessment, error) {
	a, err := s.client.SolutionAssessment.Query().
		Where(solutionassessment.SolutionIDEQ(solutionID)).
		Order(ent.Desc(solutionassessment.FieldAssessedAt), ent.Desc(solutionassessment.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load latest assessment: %w", err)
	}
	return a, nil
}

// RecordAssessment appends a dated assessment and synchronizes the
// solution's inline status with it, atomically. Partial verdicts validate
// the solution; pending and expired leave it pending for later passes.
func (s *SolutionService) RecordAssessment(ctx context.Context, solutionID int, verdict solutionassessment.Verdict, evidenceText *string) (*ent.SolutionAssessment, error) {
	if err := solutionassessment.VerdictValidator(verdict); err != nil {
		return nil, NewValidationError("verdict", fmt.Sprintf("invalid verdict %q", verdict))
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	row, err := tx.SolutionAssessment.Create().
		SetSolutionID(solutionID).
		SetVerdict(verdict).
		SetNillableEvidenceText(evidenceText).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to record assessment: %w", err)
	}

	if err := tx.Solution.UpdateOneID(solutionID).
		SetStatus(solutionStatusForVerdict(verdict)).
		Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update solution status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit assessment: %w", err)
	}
	return row, nil
}

// solutionStatusForVerdict maps an assessment verdict to the solution status
// it settles. A partial rollup still counts as validated.
func solutionStatusForVerdict(v solutionassessment.Verdict) solution.Status {
	switch v {
	case solutionassessment.VerdictConfirmed, solutionassessment.VerdictPartial:
		return solution.StatusValidated
	case solutionassessment.VerdictRefuted:
		return solution.StatusInvalidated
	case solutionassessment.VerdictUnverifiable:
		return solution.StatusUnverifiable
	default:
		return solution.StatusPending
	}
}

// AssessmentsMissingRoleFit returns assessments the role evaluator has not
// annotated yet.
func (s *SolutionService) AssessmentsMissingRoleFit(ctx context.Context) ([]*ent.SolutionAssessment, error) {
	assessments, err := s.client.SolutionAssessment.Query().
		Where(solutionassessment.RoleFitIsNil()).
		Order(ent.Asc(solutionassessment.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments missing role fit: %w", err)
	}
	return assessments, nil
}

// SetAssessmentRoleFit annotates an assessment with the author/claim fit.
func (s *SolutionService) SetAssessmentRoleFit(ctx context.Context, assessmentID int, fit solutionassessment.RoleFit, note *string) error {
	if err := solutionassessment.RoleFitValidator(fit); err != nil {
		return NewValidationError("role_fit", fmt.Sprintf("invalid role fit %q", fit))
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.client.SolutionAssessment.UpdateOneID(assessmentID).
		SetRoleFit(fit).
		SetNillableRoleFitNote(note).
		Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set assessment role fit: %w", err)
	}
	return nil
}

// SolutionsByAuthor returns every solution attributed to an author.
func (s *SolutionService) SolutionsByAuthor(ctx context.Context, authorID int) ([]*ent.Solution, error) {
	solutions, err := s.client.Solution.Query().
		Where(solution.AuthorIDEQ(authorID)).
		Order(ent.Asc(solution.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list solutions by author: %w", err)
	}
	return solutions, nil
}

// SolutionsBySourceURL returns an author's solutions extracted from a given
// post URL.
func (s *SolutionService) SolutionsBySourceURL(ctx context.Context, sourceURL string, authorID int) ([]*ent.Solution, error) {
	solutions, err := s.client.Solution.Query().
		Where(
			solution.SourceURLEQ(sourceURL),
			solution.AuthorIDEQ(authorID),
		).
		Order(ent.Asc(solution.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list solutions by source URL: %w", err)
	}
	return solutions, nil
}

// AssessmentsBySolutionIDs returns the full assessment history for the
// given solutions, oldest first.
func (s *SolutionService) AssessmentsBySolutionIDs(ctx context.Context, ids []int) ([]*ent.SolutionAssessment, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	assessments, err := s.client.SolutionAssessment.Query().
		Where(solutionassessment.SolutionIDIn(ids...)).
		Order(ent.Asc(solutionassessment.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load assessments: %w", err)
	}
	return assessments, nil
}

// SolutionListFilters narrows ListSolutions.
type SolutionListFilters struct {
	AuthorID *int
	Status   *string
	Limit    int
	Offset   int
}

// ListSolutions returns solutions matching the filters plus the unpaginated
// total.
func (s *SolutionService) ListSolutions(ctx context.Context, filters SolutionListFilters) ([]*ent.Solution, int, error) {
	query := s.client.Solution.Query()
	if filters.AuthorID != nil {
		query = query.Where(solution.AuthorIDEQ(*filters.AuthorID))
	}
	if filters.Status != nil {
		status := solution.Status(*filters.Status)
		if err := solution.StatusValidator(status); err != nil {
			return nil, 0, NewValidationError("status", fmt.Sprintf("invalid status %q", *filters.Status))
		}
		query = query.Where(solution.StatusEQ(status))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count solutions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	solutions, err := query.
		Order(ent.Desc(solution.FieldID)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list solutions: %w", err)
	}
	return solutions, total, nil
}

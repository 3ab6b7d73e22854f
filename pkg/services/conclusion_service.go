package services

import (
	"context"
	"fmt"
	"time"

	"github.com/credlens/pundit/ent"
	"github.com/credlens/pundit/ent/conclusion"
	"github.com/credlens/pundit/ent/conclusionverdict"
	"github.com/credlens/pundit/pkg/models"
)

// ConclusionService manages conclusions, their monitoring windows, and the
// verdict history derived from fact evaluations.
type ConclusionService struct {
	client *ent.Client
}

// NewConclusionService creates a new ConclusionService
func NewConclusionService(client *ent.Client) *ConclusionService {
	return &ConclusionService{client: client}
}

// GetConclusion retrieves a conclusion by ID
func (s *ConclusionService) GetConclusion(ctx context.Context, id int) (*ent.Conclusion, error) {
	c, err := s.client.Conclusion.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get conclusion: %w", err)
	}
	return c, nil
}

// ConclusionsByIDs loads the given conclusions keyed by ID.
func (s *ConclusionService) ConclusionsByIDs(ctx context.Context, ids []int) (map[int]*ent.Conclusion, error) {
	result := make(map[int]*ent.Conclusion, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	conclusions, err := s.client.Conclusion.Query().
		Where(conclusion.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load conclusions by IDs: %w", err)
	}
	for _, c := range conclusions {
		result[c.ID] = c
	}
	return result, nil
}

// UnmonitoredPredictive returns predictive conclusions that have no
// monitoring plan yet.
func (s *ConclusionService) UnmonitoredPredictive(ctx context.Context) ([]*ent.Conclusion, error) {
	conclusions, err := s.client.Conclusion.Query().
		Where(
			conclusion.ConclusionTypeEQ(conclusion.ConclusionTypePredictive),
			conclusion.MonitoringSourceOrgIsNil(),
		).
		Order(ent.Asc(conclusion.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unmonitored predictive conclusions: %w", err)
	}
	return conclusions, nil
}

// PendingConclusions returns conclusions still awaiting a settled status.
func (s *ConclusionService) PendingConclusions(ctx context.Context) ([]*ent.Conclusion, error) {
	conclusions, err := s.client.Conclusion.Query().
		Where(conclusion.StatusEQ(conclusion.StatusPending)).
		Order(ent.Asc(conclusion.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending conclusions: %w", err)
	}
	return conclusions, nil
}

// SaveMonitoring stores the monitoring plan for a predictive conclusion.
func (s *ConclusionService) SaveMonitoring(ctx context.Context, id int, plan models.MonitoringPlan) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.client.Conclusion.UpdateOneID(id).
		SetNillableMonitoringSourceOrg(plan.SourceOrg).
		SetNillableMonitoringSourceURL(plan.SourceURL).
		SetNillableMonitoringPeriodNote(plan.PeriodNote).
		SetNillableMonitoringStart(plan.Start).
		SetNillableMonitoringEnd(plan.End).
		Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to save monitoring plan: %w", err)
	}
	return nil
}

// LatestVerdict returns the most recent verdict for a conclusion, or nil
// when none has been derived yet.
func (s *ConclusionService) LatestVerdict(ctx context.Context, conclusionID int) (*ent.ConclusionVerdict, error) {
	v, err := s.client.ConclusionVerdict.Query().
		Where(conclusionverdict.ConclusionIDEQ(conclusionID)).
		Order(ent.Desc(conclusionverdict.FieldDerivedAt), ent.Desc(conclusionverdict.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load latest verdict: %w", err)
	}
	return v, nil
}

// LatestVerdicts returns the most recent verdict per conclusion. Conclusions
// with no verdict yet are absent from the map.
func (s *ConclusionService) LatestVerdicts(ctx context.Context, conclusionIDs []int) (map[int]*ent.ConclusionVerdict, error) {
	result := make(map[int]*ent.ConclusionVerdict, len(conclusionIDs))
	if len(conclusionIDs) == 0 {
		return result, nil
	}

	verdicts, err := s.client.ConclusionVerdict.Query().
		Where(conclusionverdict.ConclusionIDIn(conclusionIDs...)).
		Order(ent.Desc(conclusionverdict.FieldDerivedAt), ent.Desc(conclusionverdict.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load latest verdicts: %w", err)
	}
	for _, v := range verdicts {
		if _, seen := result[v.ConclusionID]; !seen {
			result[v.ConclusionID] = v
		}
	}
	return result, nil
}

// RecordVerdict appends a dated verdict and synchronizes the conclusion's
// inline status with it, atomically. Partial, pending, and expired verdicts
// leave the conclusion pending so later passes can upgrade them.
func (s *ConclusionService) RecordVerdict(ctx context.Context, conclusionID int, verdict conclusionverdict.Verdict, trace map[string]interface{}) (*ent.ConclusionVerdict, error) {
	if err := conclusionverdict.VerdictValidator(verdict); err != nil {
		return nil, NewValidationError("verdict", fmt.Sprintf("invalid verdict %q", verdict))
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	builder := tx.ConclusionVerdict.Create().
		SetConclusionID(conclusionID).
		SetVerdict(verdict)
	if trace != nil {
		builder = builder.SetLogicTrace(trace)
	}
	row, err := builder.Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to record verdict: %w", err)
	}

	if err := tx.Conclusion.UpdateOneID(conclusionID).
		SetStatus(conclusionStatusForVerdict(verdict)).
		Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update conclusion status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit verdict: %w", err)
	}
	return row, nil
}

// conclusionStatusForVerdict maps a verdict to the conclusion status it
// settles. Only confirmed, refuted, and unverifiable settle anything.
func conclusionStatusForVerdict(v conclusionverdict.Verdict) conclusion.Status {
	switch v {
	case conclusionverdict.VerdictConfirmed:
		return conclusion.StatusConfirmed
	case conclusionverdict.VerdictRefuted:
		return conclusion.StatusRefuted
	case conclusionverdict.VerdictUnverifiable:
		return conclusion.StatusUnverifiable
	default:
		return conclusion.StatusPending
	}
}

// VerdictsMissingRoleFit returns verdicts the role evaluator has not
// annotated yet.
func (s *ConclusionService) VerdictsMissingRoleFit(ctx context.Context) ([]*ent.ConclusionVerdict, error) {
	verdicts, err := s.client.ConclusionVerdict.Query().
		Where(conclusionverdict.RoleFitIsNil()).
		Order(ent.Asc(conclusionverdict.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list verdicts missing role fit: %w", err)
	}
	return verdicts, nil
}

// SetVerdictRoleFit annotates a verdict with the author/claim fit.
func (s *ConclusionService) SetVerdictRoleFit(ctx context.Context, verdictID int, fit conclusionverdict.RoleFit, note *string) error {
	if err := conclusionverdict.RoleFitValidator(fit); err != nil {
		return NewValidationError("role_fit", fmt.Sprintf("invalid role fit %q", fit))
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.client.ConclusionVerdict.UpdateOneID(verdictID).
		SetRoleFit(fit).
		SetNillableRoleFitNote(note).
		Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set verdict role fit: %w", err)
	}
	return nil
}

// ConclusionsByAuthor returns every conclusion attributed to an author.
func (s *ConclusionService) ConclusionsByAuthor(ctx context.Context, authorID int) ([]*ent.Conclusion, error) {
	conclusions, err := s.client.Conclusion.Query().
		Where(conclusion.AuthorIDEQ(authorID)).
		Order(ent.Asc(conclusion.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conclusions by author: %w", err)
	}
	return conclusions, nil
}

// VerdictsByConclusionIDs returns the full verdict history for the given
// conclusions, oldest first.
func (s *ConclusionService) VerdictsByConclusionIDs(ctx context.Context, ids []int) ([]*ent.ConclusionVerdict, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	verdicts, err := s.client.ConclusionVerdict.Query().
		Where(conclusionverdict.ConclusionIDIn(ids...)).
		Order(ent.Asc(conclusionverdict.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load verdicts: %w", err)
	}
	return verdicts, nil
}

// ConclusionsBySourceURL returns an author's conclusions extracted from a
// given post URL.
func (s *ConclusionService) ConclusionsBySourceURL(ctx context.Context, sourceURL string, authorID int) ([]*ent.Conclusion, error) {
	conclusions, err := s.client.Conclusion.Query().
		Where(
			conclusion.SourceURLEQ(sourceURL),
			conclusion.AuthorIDEQ(authorID),
		).
		Order(ent.Asc(conclusion.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conclusions by source URL: %w", err)
	}
	return conclusions, nil
}

// ConclusionsByCanonicalClaim returns conclusions sharing a canonical claim
// made by other authors.
func (s *ConclusionService) ConclusionsByCanonicalClaim(ctx context.Context, claim string, excludeAuthorID int) ([]*ent.Conclusion, error) {
	conclusions, err := s.client.Conclusion.Query().
		Where(
			conclusion.CanonicalClaimEQ(claim),
			conclusion.AuthorIDNEQ(excludeAuthorID),
		).
		Order(ent.Asc(conclusion.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conclusions by canonical claim: %w", err)
	}
	return conclusions, nil
}

// ConclusionListFilters narrows ListConclusions.
type ConclusionListFilters struct {
	AuthorID *int
	TopicID  *int
	Status   *string
	Type     *string
	Limit    int
	Offset   int
}

// ListConclusions returns conclusions matching the filters plus the
// unpaginated total.
func (s *ConclusionService) ListConclusions(ctx context.Context, filters ConclusionListFilters) ([]*ent.Conclusion, int, error) {
	query := s.client.Conclusion.Query()
	if filters.AuthorID != nil {
		query = query.Where(conclusion.AuthorIDEQ(*filters.AuthorID))
	}
	if filters.TopicID != nil {
		query = query.Where(conclusion.TopicIDEQ(*filters.TopicID))
	}
	if filters.Status != nil {
		status := conclusion.Status(*filters.Status)
		if err := conclusion.StatusValidator(status); err != nil {
			return nil, 0, NewValidationError("status", fmt.Sprintf("invalid status %q", *filters.Status))
		}
		query = query.Where(conclusion.StatusEQ(status))
	}
	if filters.Type != nil {
		ctype := conclusion.ConclusionType(*filters.Type)
		if err := conclusion.ConclusionTypeValidator(ctype); err != nil {
			return nil, 0, NewValidationError("conclusion_type", fmt.Sprintf("invalid conclusion type %q", *filters.Type))
		}
		query = query.Where(conclusion.ConclusionTypeEQ(ctype))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count conclusions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	conclusions, err := query.
		Order(ent.Desc(conclusion.FieldPostedAt), ent.Desc(conclusion.FieldID)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list conclusions: %w", err)
	}
	return conclusions, total, nil
}

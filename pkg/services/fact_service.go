package services

import (
	"context"
	"fmt"
	"time"

	"github.com/credlens/pundit/ent"
	"github.com/credlens/pundit/ent/fact"
	"github.com/credlens/pundit/ent/factevaluation"
	"github.com/credlens/pundit/pkg/models"
)

// FactService manages facts and their verification history.
type FactService struct {
	client *ent.Client
}

// NewFactService creates a new FactService
func NewFactService(client *ent.Client) *FactService {
	return &FactService{client: client}
}

// GetFact retrieves a fact by ID
func (s *FactService) GetFact(ctx context.Context, id int) (*ent.Fact, error) {
	f, err := s.client.Fact.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get fact: %w", err)
	}
	return f, nil
}

// PendingVerifiableFacts returns facts the verifier may work on: still
// pending, flagged verifiable, and inside their validity window (open
// bounds count as inside).
func (s *FactService) PendingVerifiableFacts(ctx context.Context, now time.Time, limit int) ([]*ent.Fact, error) {
	query := s.client.Fact.Query().
		Where(
			fact.StatusEQ(fact.StatusPending),
			fact.IsVerifiableEQ(true),
			fact.Or(fact.ValidityStartIsNil(), fact.ValidityStartLTE(now)),
			fact.Or(fact.ValidityEndIsNil(), fact.ValidityEndGTE(now)),
		).
		Order(ent.Asc(fact.FieldID))
	if limit > 0 {
		query = query.Limit(limit)
	}

	facts, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending verifiable facts: %w", err)
	}
	return facts, nil
}

// FactsByIDs loads the given facts keyed by ID. IDs with no row are simply
// absent from the result.
func (s *FactService) FactsByIDs(ctx context.Context, ids []int) (map[int]*ent.Fact, error) {
	result := make(map[int]*ent.Fact, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	facts, err := s.client.Fact.Query().
		Where(fact.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load facts by IDs: %w", err)
	}
	for _, f := range facts {
		result[f.ID] = f
	}
	return result, nil
}

// FactsByPost returns the facts extracted from a post.
func (s *FactService) FactsByPost(ctx context.Context, postID int) ([]*ent.Fact, error) {
	facts, err := s.client.Fact.Query().
		Where(fact.RawPostIDEQ(postID)).
		Order(ent.Asc(fact.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list facts for post: %w", err)
	}
	return facts, nil
}

// FactsByCanonicalClaim returns facts sharing a canonical claim, excluding
// those extracted from the given post. Facts without a source post are
// skipped; without one the claim cannot be attributed.
func (s *FactService) FactsByCanonicalClaim(ctx context.Context, claim string, excludePostID int) ([]*ent.Fact, error) {
	facts, err := s.client.Fact.Query().
		Where(
			fact.CanonicalClaimEQ(claim),
			fact.RawPostIDNotNil(),
			fact.RawPostIDNEQ(excludePostID),
		).
		Order(ent.Asc(fact.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list facts by canonical claim: %w", err)
	}
	return facts, nil
}

// LatestEvaluations returns the most recent evaluation per fact. Facts with
// no evaluation yet are absent from the map.
func (s *FactService) LatestEvaluations(ctx context.Context, factIDs []int) (map[int]*ent.FactEvaluation, error) {
	result := make(map[int]*ent.FactEvaluation, len(factIDs))
	if len(factIDs) == 0 {
		return result, nil
	}

	evals, err := s.client.FactEvaluation.Query().
		Where(factevaluation.FactIDIn(factIDs...)).
		Order(ent.Desc(factevaluation.FieldEvaluatedAt), ent.Desc(factevaluation.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load fact evaluations: %w", err)
	}
	for _, e := range evals {
		if _, seen := result[e.FactID]; !seen {
			result[e.FactID] = e
		}
	}
	return result, nil
}

// EvaluationsByFactIDs returns the full evaluation history for the given
// facts, oldest first.
func (s *FactService) EvaluationsByFactIDs(ctx context.Context, factIDs []int) ([]*ent.FactEvaluation, error) {
	if len(factIDs) == 0 {
		return nil, nil
	}
	evals, err := s.client.FactEvaluation.Query().
		Where(factevaluation.FactIDIn(factIDs...)).
		Order(ent.Asc(factevaluation.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load fact evaluations: %w", err)
	}
	return evals, nil
}

// RecordFactEvaluation appends one verification attempt and synchronizes the
// fact's inline status with it, atomically. An uncertain result records the
// attempt but leaves the fact pending so later passes can retry.
func (s *FactService) RecordFactEvaluation(ctx context.Context, factID int, v models.FactVerification) (*ent.FactEvaluation, error) {
	result := factevaluation.Result(v.Result)
	if err := factevaluation.ResultValidator(result); err != nil {
		return nil, NewValidationError("result", fmt.Sprintf("invalid result %q", v.Result))
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	eval, err := tx.FactEvaluation.Create().
		SetFactID(factID).
		SetResult(result).
		SetNillableEvidenceText(v.EvidenceText).
		SetNillableEvidenceTier(v.EvidenceTier).
		SetNillableDataPeriod(v.DataPeriod).
		SetNillableEvaluatorNotes(v.EvaluatorNotes).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to record fact evaluation: %w", err)
	}

	update := tx.Fact.UpdateOneID(factID).
		SetVerifiedAt(eval.EvaluatedAt).
		SetNillableVerificationEvidence(v.EvidenceText).
		SetNillableVerifiedSourceOrg(v.SourceOrg).
		SetNillableVerifiedSourceURL(v.SourceURL).
		SetNillableVerifiedSourceData(v.SourceData)
	if status, changed := factStatusForResult(result); changed {
		update = update.SetStatus(status)
	}
	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update fact status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit fact evaluation: %w", err)
	}
	return eval, nil
}

// factStatusForResult maps an evaluation result to the fact status it
// settles, if any. Uncertain settles nothing.
func factStatusForResult(result factevaluation.Result) (fact.Status, bool) {
	switch result {
	case factevaluation.ResultTrue:
		return fact.StatusVerifiedTrue, true
	case factevaluation.ResultFalse:
		return fact.StatusVerifiedFalse, true
	case factevaluation.ResultUnavailable:
		return fact.StatusUnverifiable, true
	default:
		return "", false
	}
}

// FactListFilters narrows ListFacts.
type FactListFilters struct {
	Status    *string
	RawPostID *int
	Limit     int
	Offset    int
}

// ListFacts returns facts matching the filters plus the unpaginated total.
func (s *FactService) ListFacts(ctx context.Context, filters FactListFilters) ([]*ent.Fact, int, error) {
	query := s.client.Fact.Query()
	if filters.Status != nil {
		status := fact.Status(*filters.Status)
		if err := fact.StatusValidator(status); err != nil {
			return nil, 0, NewValidationError("status", fmt.Sprintf("invalid status %q", *filters.Status))
		}
		query = query.Where(fact.StatusEQ(status))
	}
	if filters.RawPostID != nil {
		query = query.Where(fact.RawPostIDEQ(*filters.RawPostID))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count facts: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	facts, err := query.
		Order(ent.Desc(fact.FieldID)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list facts: %w", err)
	}
	return facts, total, nil
}

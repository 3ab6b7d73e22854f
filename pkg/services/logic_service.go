package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/credlens/pundit/ent"
	"github.com/credlens/pundit/ent/logic"
	"github.com/credlens/pundit/ent/logicrelation"
	"github.com/credlens/pundit/pkg/models"
)

// LogicService manages reasoning chains and the typed relations between
// chains of the same post.
type LogicService struct {
	client *ent.Client
}

// NewLogicService creates a new LogicService
func NewLogicService(client *ent.Client) *LogicService {
	return &LogicService{client: client}
}

// GetLogic retrieves a logic chain by ID
func (s *LogicService) GetLogic(ctx context.Context, id int) (*ent.Logic, error) {
	l, err := s.client.Logic.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get logic: %w", err)
	}
	return l, nil
}

// UnassessedLogics returns chains the logic evaluator has not graded yet.
func (s *LogicService) UnassessedLogics(ctx context.Context) ([]*ent.Logic, error) {
	logics, err := s.client.Logic.Query().
		Where(logic.AssessedAtIsNil()).
		Order(ent.Asc(logic.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unassessed logics: %w", err)
	}
	return logics, nil
}

// LogicsByPost returns all chains extracted from a post.
func (s *LogicService) LogicsByPost(ctx context.Context, postID int) ([]*ent.Logic, error) {
	logics, err := s.client.Logic.Query().
		Where(logic.RawPostIDEQ(postID)).
		Order(ent.Asc(logic.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list logics for post: %w", err)
	}
	return logics, nil
}

// PostIDsWithLogics returns the distinct posts at least one chain was
// extracted from, in ascending order.
func (s *LogicService) PostIDsWithLogics(ctx context.Context) ([]int, error) {
	ids, err := s.client.Logic.Query().
		Where(logic.RawPostIDNotNil()).
		GroupBy(logic.FieldRawPostID).
		Ints(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts with logics: %w", err)
	}
	sort.Ints(ids)
	return ids, nil
}

// LatestInferenceLogic returns the newest inference chain behind a
// conclusion, or nil when none exists.
func (s *LogicService) LatestInferenceLogic(ctx context.Context, conclusionID int) (*ent.Logic, error) {
	l, err := s.client.Logic.Query().
		Where(
			logic.ConclusionIDEQ(conclusionID),
			logic.LogicTypeEQ(logic.LogicTypeInference),
		).
		Order(ent.Desc(logic.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load inference logic: %w", err)
	}
	return l, nil
}

// DerivationLogic returns the newest derivation chain behind a solution, or
// nil when none exists.
func (s *LogicService) DerivationLogic(ctx context.Context, solutionID int) (*ent.Logic, error) {
	l, err := s.client.Logic.Query().
		Where(
			logic.SolutionIDEQ(solutionID),
			logic.LogicTypeEQ(logic.LogicTypeDerivation),
		).
		Order(ent.Desc(logic.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load derivation logic: %w", err)
	}
	return l, nil
}

// InferenceLogicsByConclusionIDs returns all inference chains behind the
// given conclusions, oldest first.
func (s *LogicService) InferenceLogicsByConclusionIDs(ctx context.Context, conclusionIDs []int) ([]*ent.Logic, error) {
	if len(conclusionIDs) == 0 {
		return nil, nil
	}
	logics, err := s.client.Logic.Query().
		Where(
			logic.ConclusionIDIn(conclusionIDs...),
			logic.LogicTypeEQ(logic.LogicTypeInference),
		).
		Order(ent.Asc(logic.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load inference logics: %w", err)
	}
	return logics, nil
}

// SaveAssessment stores the evaluator's grading of a chain. A nil
// completeness records the attempt without grading it.
func (s *LogicService) SaveAssessment(ctx context.Context, id int, completeness *logic.LogicCompleteness, note, summary *string, assessedAt time.Time) error {
	if completeness != nil {
		if err := logic.LogicCompletenessValidator(*completeness); err != nil {
			return NewValidationError("logic_completeness", fmt.Sprintf("invalid completeness %q", *completeness))
		}
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Logic.UpdateOneID(id).
		SetNillableLogicNote(note).
		SetNillableOneSentenceSummary(summary).
		SetAssessedAt(assessedAt)
	if completeness != nil {
		update = update.SetLogicCompleteness(*completeness)
	}
	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to save logic assessment: %w", err)
	}
	return nil
}

// HasRelationsAmong reports whether any relation already links two of the
// given chains.
func (s *LogicService) HasRelationsAmong(ctx context.Context, logicIDs []int) (bool, error) {
	if len(logicIDs) < 2 {
		return false, nil
	}
	exists, err := s.client.LogicRelation.Query().
		Where(
			logicrelation.FromLogicIDIn(logicIDs...),
			logicrelation.ToLogicIDIn(logicIDs...),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check logic relations: %w", err)
	}
	return exists, nil
}

// CreateRelations inserts the given edges, skipping duplicates of already
// stored (from, to, type) triples. Returns the number inserted.
func (s *LogicService) CreateRelations(ctx context.Context, edges []models.RelationEdge) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	created := 0
	for _, e := range edges {
		relType := logicrelation.RelationType(e.RelationType)
		if err := logicrelation.RelationTypeValidator(relType); err != nil {
			return created, NewValidationError("relation_type", fmt.Sprintf("invalid relation type %q", e.RelationType))
		}
		err := s.client.LogicRelation.Create().
			SetFromLogicID(e.FromLogicID).
			SetToLogicID(e.ToLogicID).
			SetRelationType(relType).
			SetNillableNote(e.Note).
			Exec(writeCtx)
		if err != nil {
			if ent.IsConstraintError(err) {
				continue
			}
			return created, fmt.Errorf("failed to create logic relation: %w", err)
		}
		created++
	}
	return created, nil
}

// RelationsByLogicIDs returns all relations touching the given chains.
func (s *LogicService) RelationsByLogicIDs(ctx context.Context, logicIDs []int) ([]*ent.LogicRelation, error) {
	if len(logicIDs) == 0 {
		return nil, nil
	}
	relations, err := s.client.LogicRelation.Query().
		Where(
			logicrelation.Or(
				logicrelation.FromLogicIDIn(logicIDs...),
				logicrelation.ToLogicIDIn(logicIDs...),
			),
		).
		Order(ent.Asc(logicrelation.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load logic relations: %w", err)
	}
	return relations, nil
}

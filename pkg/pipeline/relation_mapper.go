package pipeline

import (
	"context"
	"log/slog"
	"strings"

	"github.com/credlens/pundit/ent"
	"github.com/credlens/pundit/ent/logic"
	"github.com/credlens/pundit/pkg/llm"
	"github.com/credlens/pundit/pkg/models"
	"github.com/credlens/pundit/pkg/prompt"
	"github.com/credlens/pundit/pkg/services"
)

// RelationMapper discovers typed edges between the reasoning chains of one
// post once the logic evaluator has graded all of them. A post whose chains
// already carry a relation is never re-mapped. Edges pointing outside the
// post, or at the chain itself, are dropped.
type RelationMapper struct {
	logics      *services.LogicService
	conclusions *services.ConclusionService
	solutions   *services.SolutionService
	model       completionModel
	logger      *slog.Logger
}

func NewRelationMapper(logics *services.LogicService, conclusions *services.ConclusionService, solutions *services.SolutionService, model completionModel) *RelationMapper {
	return &RelationMapper{
		logics:      logics,
		conclusions: conclusions,
		solutions:   solutions,
		model:       model,
		logger:      slog.Default().With("component", "relation_mapper"),
	}
}

func (m *RelationMapper) Name() string { return "relation_mapper" }

func (m *RelationMapper) Run(ctx context.Context) error {
	postIDs, err := m.logics.PostIDsWithLogics(ctx)
	if err != nil {
		return err
	}
	for _, postID := range postIDs {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.mapPost(ctx, postID)
	}
	return nil
}

func (m *RelationMapper) mapPost(ctx context.Context, postID int) {
	logics, err := m.logics.LogicsByPost(ctx, postID)
	if err != nil {
		m.logger.Error("Failed to load post chains", "post_id", postID, "error", err)
		countItem(m.Name(), outcomeFailed)
		return
	}
	if len(logics) < 2 {
		return
	}
	ids := make([]int, 0, len(logics))
	for _, l := range logics {
		if l.AssessedAt == nil {
			// Wait until the evaluator has been over every chain of the post.
			return
		}
		ids = append(ids, l.ID)
	}
	mapped, err := m.logics.HasRelationsAmong(ctx, ids)
	if err != nil {
		m.logger.Error("Failed to check existing relations", "post_id", postID, "error", err)
		countItem(m.Name(), outcomeFailed)
		return
	}
	if mapped {
		return
	}

	idSet := make(map[int]bool, len(logics))
	summaries := make([]prompt.LogicSummary, 0, len(logics))
	for _, l := range logics {
		idSet[l.ID] = true
		summaries = append(summaries, m.summary(ctx, l))
	}

	res, err := m.model.Complete(ctx, prompt.LogicRelationSystem, prompt.BuildLogicRelationUserMessage(summaries), prompt.LogicRelationMaxTokens)
	if err != nil {
		m.logger.Warn("Relation request failed", "post_id", postID, "error", err)
		countItem(m.Name(), outcomeSkipped)
		return
	}

	var parsed struct {
		Relations []struct {
			FromLogicID  models.FlexInt `json:"from_logic_id"`
			ToLogicID    models.FlexInt `json:"to_logic_id"`
			RelationType string         `json:"relation_type"`
			Note         *string        `json:"note"`
		} `json:"relations"`
	}
	if err := llm.ParseJSON(res.Content, &parsed); err != nil {
		m.logger.Warn("Unparseable relation output", "post_id", postID, "error", err)
		countItem(m.Name(), outcomeSkipped)
		return
	}

	edges := make([]models.RelationEdge, 0, len(parsed.Relations))
	for _, rel := range parsed.Relations {
		from, to := rel.FromLogicID.Int(), rel.ToLogicID.Int()
		if !idSet[from] || !idSet[to] {
			m.logger.Warn("Relation references a chain outside the post, dropping edge", "post_id", postID, "from", from, "to", to)
			continue
		}
		if from == to {
			m.logger.Warn("Self-relation dropped", "post_id", postID, "logic_id", from)
			continue
		}
		edges = append(edges, models.RelationEdge{
			FromLogicID:  from,
			ToLogicID:    to,
			RelationType: normalizeRelationType(rel.RelationType),
			Note:         rel.Note,
		})
	}

	created, err := m.logics.CreateRelations(ctx, edges)
	if err != nil {
		m.logger.Error("Failed to create relations", "post_id", postID, "error", err)
		countItem(m.Name(), outcomeFailed)
		return
	}
	m.logger.Info("Relations mapped", "post_id", postID, "chains", len(logics), "edges", created)
	countItem(m.Name(), outcomeDone)
}

func (m *RelationMapper) summary(ctx context.Context, l *ent.Logic) prompt.LogicSummary {
	s := prompt.LogicSummary{ID: l.ID}
	if l.OneSentenceSummary != nil {
		s.Summary = *l.OneSentenceSummary
	}
	if l.LogicCompleteness != nil {
		s.Completeness = string(*l.LogicCompleteness)
	}

	kind, targetID, claim := "conclusion", 0, "(not found)"
	if l.LogicType == logic.LogicTypeDerivation {
		kind = "solution"
		if l.SolutionID != nil {
			targetID = *l.SolutionID
			if sol, err := m.solutions.GetSolution(ctx, targetID); err == nil {
				claim = sol.Claim
			}
		}
	} else if l.ConclusionID != nil {
		targetID = *l.ConclusionID
		if c, err := m.conclusions.GetConclusion(ctx, targetID); err == nil {
			claim = c.Claim
		}
	}
	s.TargetLabel = prompt.FormatLogicTargetLabel(kind, targetID, claim)
	return s
}

// normalizeRelationType folds unknown relation spellings into supports.
func normalizeRelationType(s string) string {
	rt := strings.ToLower(strings.TrimSpace(s))
	switch rt {
	case "supports", "contextualizes", "contradicts":
		return rt
	}
	return "supports"
}

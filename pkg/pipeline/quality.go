package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/credlens/pundit/ent"
	"github.com/credlens/pundit/pkg/llm"
	"github.com/credlens/pundit/pkg/models"
	"github.com/credlens/pundit/pkg/prompt"
	"github.com/credlens/pundit/pkg/services"
)

const minAssessableRunes = 50

// QualityEvaluator scores each processed post on two axes: how unique its
// canonical claims are across the tracked corpus, and how much of the text
// is substantive rather than noise. Exactly one assessment row per post;
// model failures degrade to neutral scores instead of blocking the row.
type QualityEvaluator struct {
	posts       *services.PostService
	authors     *services.AuthorService
	facts       *services.FactService
	conclusions *services.ConclusionService
	model       completionModel
	logger      *slog.Logger
}

func NewQualityEvaluator(posts *services.PostService, authors *services.AuthorService, facts *services.FactService, conclusions *services.ConclusionService, model completionModel) *QualityEvaluator {
	return &QualityEvaluator{
		posts:       posts,
		authors:     authors,
		facts:       facts,
		conclusions: conclusions,
		model:       model,
		logger:      slog.Default().With("component", "quality_evaluator"),
	}
}

func (q *QualityEvaluator) Name() string { return "quality_evaluator" }

func (q *QualityEvaluator) Run(ctx context.Context) error {
	posts, err := q.posts.ListUnassessed(ctx)
	if err != nil {
		return err
	}
	for _, p := range posts {
		if err := ctx.Err(); err != nil {
			return err
		}
		q.assess(ctx, p)
	}
	return nil
}

func (q *QualityEvaluator) assess(ctx context.Context, post *ent.RawPost) {
	author, err := q.authors.GetOrCreate(ctx, services.AuthorSeed{
		Name:       post.AuthorName,
		Platform:   post.Source,
		PlatformID: post.AuthorPlatformID,
	})
	if err != nil {
		q.logger.Error("Failed to resolve post author", "post_id", post.ID, "error", err)
		countItem(q.Name(), outcomeFailed)
		return
	}

	quality, err := q.assessUniqueness(ctx, post, author)
	if err != nil {
		q.logger.Error("Failed to assess uniqueness", "post_id", post.ID, "error", err)
		countItem(q.Name(), outcomeFailed)
		return
	}
	q.assessEffectiveness(ctx, post, &quality)

	if _, err := q.posts.CreateQualityAssessment(ctx, post.ID, author.ID, quality); err != nil {
		q.logger.Error("Failed to create quality assessment", "post_id", post.ID, "error", err)
		countItem(q.Name(), outcomeFailed)
		return
	}
	q.logger.Info("Post quality assessed",
		"post_id", post.ID,
		"uniqueness", quality.UniquenessScore,
		"effectiveness", quality.EffectivenessScore,
		"first_mover", quality.IsFirstMover)
	countItem(q.Name(), outcomeDone)
}

// assessUniqueness counts how many other authors have published the same
// canonical claims, and whether this post came first.
func (q *QualityEvaluator) assessUniqueness(ctx context.Context, post *ent.RawPost, author *ent.Author) (models.PostQuality, error) {
	claims, err := q.canonicalClaims(ctx, post, author)
	if err != nil {
		return models.PostQuality{}, err
	}
	if len(claims) == 0 {
		note := "no canonical claims were extracted, uniqueness not assessable"
		return models.PostQuality{UniquenessScore: 0.5, UniquenessNote: &note}, nil
	}

	similarClaims := 0
	otherAuthors := make(map[string]bool)
	var earliest *time.Time
	observe := func(at time.Time) {
		if earliest == nil || at.Before(*earliest) {
			t := at
			earliest = &t
		}
	}

	for _, claim := range claims {
		similarFacts, err := q.facts.FactsByCanonicalClaim(ctx, claim, post.ID)
		if err != nil {
			return models.PostQuality{}, err
		}
		for _, f := range similarFacts {
			rp, err := q.posts.GetPost(ctx, *f.RawPostID)
			if err != nil {
				continue
			}
			if samePlatformAuthor(rp.AuthorPlatformID, post.AuthorPlatformID) {
				continue
			}
			similarClaims++
			otherAuthors[postAuthorKey(rp)] = true
			observe(rp.PostedAt)
		}

		similarConclusions, err := q.conclusions.ConclusionsByCanonicalClaim(ctx, claim, author.ID)
		if err != nil {
			return models.PostQuality{}, err
		}
		for _, c := range similarConclusions {
			similarClaims++
			otherAuthors[fmt.Sprintf("author:%d", c.AuthorID)] = true
			observe(c.PostedAt)
		}
	}

	authorCount := len(otherAuthors)
	quality := models.PostQuality{
		SimilarClaimCount:  similarClaims,
		SimilarAuthorCount: authorCount,
		IsFirstMover:       earliest == nil || !post.PostedAt.After(*earliest),
		UniquenessScore:    1.0 / (1.0 + 0.4*float64(authorCount)),
	}
	quality.UniquenessNote = uniquenessNote(authorCount, quality.IsFirstMover)
	return quality, nil
}

// canonicalClaims collects the post's canonical claims from its facts and
// conclusions, deduplicated in extraction order.
func (q *QualityEvaluator) canonicalClaims(ctx context.Context, post *ent.RawPost, author *ent.Author) ([]string, error) {
	facts, err := q.facts.FactsByPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	conclusions, err := q.conclusions.ConclusionsBySourceURL(ctx, post.URL, author.ID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var claims []string
	add := func(claim *string) {
		if claim == nil || *claim == "" || seen[*claim] {
			return
		}
		seen[*claim] = true
		claims = append(claims, *claim)
	}
	for _, f := range facts {
		add(f.CanonicalClaim)
	}
	for _, c := range conclusions {
		add(c.CanonicalClaim)
	}
	return claims, nil
}

// assessEffectiveness has the model grade the substantive share of the post
// text. Failures keep the neutral 0.5 so the assessment row still lands.
func (q *QualityEvaluator) assessEffectiveness(ctx context.Context, post *ent.RawPost, quality *models.PostQuality) {
	quality.EffectivenessScore = 0.5
	quality.NoiseRatio = 0.5

	content := post.Content
	if post.EnrichedContent != nil && *post.EnrichedContent != "" {
		content = *post.EnrichedContent
	}
	if utf8.RuneCountInString(strings.TrimSpace(content)) < minAssessableRunes {
		note := "content too short for a meaningful assessment"
		quality.EffectivenessNote = &note
		return
	}

	res, err := q.model.Complete(ctx, prompt.PostQualitySystem, prompt.BuildPostQualityUserMessage(content), prompt.PostQualityMaxTokens)
	if err != nil {
		q.logger.Warn("Quality request failed, keeping neutral scores", "post_id", post.ID, "error", err)
		return
	}

	var parsed struct {
		EffectivenessScore *models.FlexFloat `json:"effectiveness_score"`
		NoiseRatio         *models.FlexFloat `json:"noise_ratio"`
		NoiseTypes         any               `json:"noise_types"`
		EffectivenessNote  *string           `json:"effectiveness_note"`
	}
	if err := llm.ParseJSON(res.Content, &parsed); err != nil {
		q.logger.Warn("Unparseable quality output, keeping neutral scores", "post_id", post.ID, "error", err)
		return
	}

	if parsed.EffectivenessScore != nil {
		quality.EffectivenessScore = clamp01(parsed.EffectivenessScore.Float())
	}
	if parsed.NoiseRatio != nil {
		quality.NoiseRatio = clamp01(parsed.NoiseRatio.Float())
	}
	quality.EffectivenessNote = parsed.EffectivenessNote
	quality.NoiseTypes = noiseTypes(parsed.NoiseTypes)
}

func uniquenessNote(otherAuthors int, firstMover bool) *string {
	var note string
	switch {
	case otherAuthors == 0:
		note = "no other tracked author has expressed this view"
	case firstMover:
		note = fmt.Sprintf("%d other authors share this view; this author was the earliest", otherAuthors)
	default:
		note = fmt.Sprintf("%d other authors had already expressed this view", otherAuthors)
	}
	return &note
}

// samePlatformAuthor reports whether two posts carry the same platform
// author id. Two unknown ids count as the same author, which undercounts
// similarity rather than counting an author against themselves.
func samePlatformAuthor(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func postAuthorKey(p *ent.RawPost) string {
	if p.AuthorPlatformID != nil && *p.AuthorPlatformID != "" {
		return *p.AuthorPlatformID
	}
	return p.AuthorName
}

func noiseTypes(v any) []string {
	switch t := v.(type) {
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

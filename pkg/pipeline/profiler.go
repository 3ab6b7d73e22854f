package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/credlens/pundit/ent"
	"github.com/credlens/pundit/pkg/llm"
	"github.com/credlens/pundit/pkg/models"
	"github.com/credlens/pundit/pkg/prompt"
	"github.com/credlens/pundit/pkg/search"
	"github.com/credlens/pundit/pkg/services"
)

const (
	profileSearchResults = 5
	unknownTier          = 5
)

// AuthorProfiler researches each author once: a web search plus the
// platform bio go to the model, which assigns a role, expertise areas, and
// a credibility tier. Any failure still marks the author fetched with the
// unknown tier so the same author is never re-queried every pass.
type AuthorProfiler struct {
	authors *services.AuthorService
	model   completionModel
	search  *search.Client
	logger  *slog.Logger
}

func NewAuthorProfiler(authors *services.AuthorService, model completionModel, searchClient *search.Client) *AuthorProfiler {
	return &AuthorProfiler{
		authors: authors,
		model:   model,
		search:  searchClient,
		logger:  slog.Default().With("component", "author_profiler"),
	}
}

func (p *AuthorProfiler) Name() string { return "author_profiler" }

func (p *AuthorProfiler) Run(ctx context.Context) error {
	authors, err := p.authors.ListUnprofiled(ctx)
	if err != nil {
		return err
	}
	for _, a := range authors {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.profile(ctx, a)
	}
	return nil
}

func (p *AuthorProfiler) profile(ctx context.Context, a *ent.Author) {
	searchSection := ""
	if p.search != nil {
		query := fmt.Sprintf("%s %s background role expertise biography", a.Name, a.Platform)
		results, err := p.search.Search(ctx, query, profileSearchResults, nil)
		if err != nil {
			p.logger.Warn("Profile search failed, continuing without results", "author_id", a.ID, "error", err)
		} else {
			searchSection = search.FormatResults(results)
		}
	}

	in := prompt.ProfileInput{Name: a.Name, Platform: a.Platform}
	if a.Description != nil {
		in.Description = *a.Description
	}

	res, err := p.model.Complete(ctx, prompt.AuthorProfileSystem, prompt.BuildAuthorProfileUserMessage(in, searchSection), prompt.AuthorProfileMaxTokens)
	if err != nil {
		p.logger.Warn("Profile request failed, marking author fetched with unknown tier", "author_id", a.ID, "error", err)
		p.markFetched(ctx, a.ID)
		return
	}

	var parsed struct {
		Role            any             `json:"role"`
		ExpertiseAreas  any             `json:"expertise_areas"`
		KnownBiases     any             `json:"known_biases"`
		CredibilityTier *models.FlexInt `json:"credibility_tier"`
		ProfileNote     any             `json:"profile_note"`
	}
	if err := llm.ParseJSON(res.Content, &parsed); err != nil {
		p.logger.Warn("Unparseable profile output, marking author fetched with unknown tier", "author_id", a.ID, "error", err)
		p.markFetched(ctx, a.ID)
		return
	}

	tier := unknownTier
	if parsed.CredibilityTier != nil {
		if v := parsed.CredibilityTier.Int(); v >= 1 && v <= 5 {
			tier = v
		}
	}

	profile := models.AuthorProfile{
		Role:            profileText(parsed.Role),
		ExpertiseAreas:  profileText(parsed.ExpertiseAreas),
		KnownBiases:     profileText(parsed.KnownBiases),
		CredibilityTier: tier,
		ProfileNote:     profileText(parsed.ProfileNote),
	}
	if _, err := p.authors.SaveProfile(ctx, a.ID, profile); err != nil {
		p.logger.Error("Failed to save author profile", "author_id", a.ID, "error", err)
		countItem(p.Name(), outcomeFailed)
		return
	}
	p.logger.Info("Author profiled", "author_id", a.ID, "name", a.Name, "tier", tier)
	countItem(p.Name(), outcomeDone)
}

func (p *AuthorProfiler) markFetched(ctx context.Context, id int) {
	countItem(p.Name(), outcomeFailed)
	if err := p.authors.MarkProfileFetched(ctx, id, unknownTier); err != nil {
		p.logger.Error("Failed to mark author fetched", "author_id", id, "error", err)
	}
}

// profileText coerces a profile field the model may return as a string or a
// list. Placeholder answers collapse to nil.
func profileText(v any) *string {
	var s string
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		s = t
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			parts = append(parts, fmt.Sprint(item))
		}
		s = strings.Join(parts, ", ")
	default:
		s = fmt.Sprint(t)
	}
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "null", "none", "unknown":
		return nil
	}
	return &s
}

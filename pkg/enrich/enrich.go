// Package enrich assembles the full analysis text for a collected post:
// surrounding conversation fetched from the source platform plus vision
// descriptions of attached images. Platform and model failures never block
// the pipeline; a post that cannot be enriched keeps its original text.
package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/credlens/pundit/ent"
)

// Roles a context piece can play relative to the main post.
const (
	RoleQuoted      = "quoted"
	RoleParentReply = "parent_reply"
	RoleThreadPrev  = "thread_prev"
	RoleThreadNext  = "thread_next"
)

// Piece is one fragment of surrounding conversation fetched for a post.
type Piece struct {
	Role    string
	Author  string
	Content string
	URL     string
}

// PostContext is everything a platform fetch produced for one post. FullText
// is set when the platform stores a longer body than the collected preview
// (collapsed long posts); it replaces the main content when longer.
type PostContext struct {
	Pieces   []Piece
	FullText string
}

// ContextSource fetches surrounding conversation from one platform. Sources
// report transport errors; the enricher swallows them.
type ContextSource interface {
	Platform() string
	FetchContext(ctx context.Context, externalID string) (*PostContext, error)
}

// Enricher attaches platform context to collected posts and persists the
// assembled text. Posts from platforms without a registered source keep
// their original text.
type Enricher struct {
	client  *ent.Client
	sources map[string]ContextSource
	logger  *slog.Logger
}

// NewEnricher builds an enricher over the given platform context sources.
func NewEnricher(client *ent.Client, sources ...ContextSource) *Enricher {
	byPlatform := make(map[string]ContextSource, len(sources))
	for _, src := range sources {
		byPlatform[src.Platform()] = src
	}
	return &Enricher{
		client:  client,
		sources: byPlatform,
		logger:  slog.Default().With("component", "enricher"),
	}
}

// Enrich fetches context for post, assembles the enriched text, and persists
// it together with the context_fetched and has_context flags. Once a post is
// marked context_fetched the cached text is returned without refetching.
func (e *Enricher) Enrich(ctx context.Context, post *ent.RawPost) (string, error) {
	if post.ContextFetched {
		if post.EnrichedContent != nil && *post.EnrichedContent != "" {
			return *post.EnrichedContent, nil
		}
		return post.Content, nil
	}

	pc := e.fetchContext(ctx, post)

	main := post.Content
	if pc.FullText != "" && utf8.RuneCountInString(pc.FullText) > utf8.RuneCountInString(main) {
		e.logger.Info("Expanded collapsed post body",
			"post_id", post.ID,
			"source", post.Source,
			"chars", utf8.RuneCountInString(pc.FullText))
		main = pc.FullText
	}

	enriched := main
	if len(pc.Pieces) > 0 {
		enriched = assemble(main, pc.Pieces)
	}

	upd := e.client.RawPost.UpdateOneID(post.ID).
		SetContextFetched(true).
		SetHasContext(len(pc.Pieces) > 0).
		SetEnrichedContent(enriched)
	if main != post.Content {
		upd.SetContent(main)
	}
	if _, err := upd.Save(ctx); err != nil {
		return "", fmt.Errorf("failed to save enrichment for post %d: %w", post.ID, err)
	}

	if len(pc.Pieces) > 0 {
		e.logger.Info("Context attached",
			"post_id", post.ID,
			"source", post.Source,
			"pieces", len(pc.Pieces))
	}
	return enriched, nil
}

func (e *Enricher) fetchContext(ctx context.Context, post *ent.RawPost) *PostContext {
	src, ok := e.sources[post.Source]
	if !ok {
		return &PostContext{}
	}
	pc, err := src.FetchContext(ctx, post.ExternalID)
	if err != nil {
		e.logger.Warn("Context fetch failed, keeping original text",
			"source", post.Source,
			"external_id", post.ExternalID,
			"error", err)
		return &PostContext{}
	}
	if pc == nil {
		return &PostContext{}
	}
	return pc
}

var roleLabels = map[string]string{
	RoleQuoted:      "[Quoted post]",
	RoleParentReply: "[Reply target]",
	RoleThreadPrev:  "[Earlier in thread]",
	RoleThreadNext:  "[Later in thread]",
}

const mainContentLabel = "[Main content]"

// assemble joins context pieces and the main text into the labeled layout
// the extractor sends to the model: quoted posts, reply targets, and prior
// thread entries first, then the main content, then thread continuations.
func assemble(main string, pieces []Piece) string {
	parts := make([]string, 0, len(pieces)+1)

	for _, p := range pieces {
		switch p.Role {
		case RoleQuoted, RoleParentReply, RoleThreadPrev:
			parts = append(parts, roleLabels[p.Role]+"\nAuthor: "+p.Author+"\nContent: "+p.Content)
		}
	}

	parts = append(parts, mainContentLabel+"\n"+main)

	for _, p := range pieces {
		if p.Role == RoleThreadNext {
			parts = append(parts, roleLabels[RoleThreadNext]+"\n"+p.Content)
		}
	}

	return strings.Join(parts, "\n\n")
}

// maxResponseBytes caps how much of a platform response is read.
const maxResponseBytes = 1 << 20

// getJSON performs a GET with the given headers and decodes the JSON
// response into out.
func getJSON(ctx context.Context, client *http.Client, rawURL string, headers map[string]string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

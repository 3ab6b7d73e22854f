// Package extract turns one collected post into its typed claim graph: the
// configured prompt version is sent the enriched post text, the structured
// reply is parsed permissively, and the resulting facts, conclusions,
// solutions, and logic edges are written in a single transaction together
// with the is_processed flag.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/credlens/pundit/ent"
	"github.com/credlens/pundit/ent/author"
	"github.com/credlens/pundit/ent/conclusion"
	"github.com/credlens/pundit/ent/fact"
	"github.com/credlens/pundit/ent/logic"
	"github.com/credlens/pundit/ent/solution"
	"github.com/credlens/pundit/ent/topic"
	"github.com/credlens/pundit/pkg/config"
	"github.com/credlens/pundit/pkg/enrich"
	"github.com/credlens/pundit/pkg/llm"
	"github.com/credlens/pundit/pkg/models"
	"github.com/credlens/pundit/pkg/prompt"
)

// imageSectionHeader separates generated image descriptions from the post
// text in the model input.
const imageSectionHeader = "--- Image content ---"

// completionModel is the slice of the LLM gateway the extractor uses.
type completionModel interface {
	Complete(ctx context.Context, system, user string, maxTokens int) (*llm.Result, error)
}

// Extractor runs claim extraction for collected posts.
type Extractor struct {
	client    *ent.Client
	model     completionModel
	enricher  *enrich.Enricher
	describer *enrich.MediaDescriber
	prompt    prompt.ExtractionPrompt
	logger    *slog.Logger
}

// NewExtractor wires the extractor. The prompt version comes from
// configuration; an unknown version falls back to the basic prompt.
func NewExtractor(client *ent.Client, model completionModel, enricher *enrich.Enricher, describer *enrich.MediaDescriber, version config.PromptVersion) *Extractor {
	p := prompt.ForVersion(version)
	logger := slog.Default().With("component", "extractor")
	logger.Info("Extractor initialized", "prompt_version", p.Version())
	return &Extractor{
		client:    client,
		model:     model,
		enricher:  enricher,
		describer: describer,
		prompt:    p,
		logger:    logger,
	}
}

// Extract decomposes one post into its claim graph and persists it. A nil
// result with a nil error means the post was skipped this pass: already
// processed, model unavailable, or unparseable output. In the latter two
// cases the post stays unprocessed and is retried on the next pass. Errors
// are reserved for persistence failures.
func (x *Extractor) Extract(ctx context.Context, post *ent.RawPost) (*models.ExtractionResult, error) {
	if post.IsProcessed {
		x.logger.Debug("Post already processed, skipping", "post_id", post.ID)
		return nil, nil
	}

	content, err := x.buildContent(ctx, post)
	if err != nil {
		return nil, err
	}

	x.logger.Info("Extracting claim graph",
		"post_id", post.ID,
		"source", post.Source,
		"prompt_version", x.prompt.Version())

	res, err := x.model.Complete(ctx, x.prompt.System(), x.prompt.UserMessage(content, post.Source, post.AuthorName), prompt.ExtractionMaxTokens)
	if err != nil {
		// Transport failure. The gateway already logged it; the post stays
		// eligible for the next pass.
		return nil, nil
	}
	x.logger.Debug("Extraction completed",
		"model", res.Model,
		"input_tokens", res.InputTokens,
		"output_tokens", res.OutputTokens)

	var result models.ExtractionResult
	if err := llm.ParseJSON(res.Content, &result); err != nil {
		x.logger.Warn("Unparseable extraction output, post stays unprocessed",
			"post_id", post.ID,
			"error", err,
			"raw", snippet(res.Content, 500))
		return nil, nil
	}

	if !result.IsRelevantContent {
		reason := ""
		if result.SkipReason != nil {
			reason = *result.SkipReason
		}
		x.logger.Info("Post marked irrelevant", "post_id", post.ID, "reason", reason)
		if err := x.client.RawPost.UpdateOneID(post.ID).
			SetIsProcessed(true).
			SetProcessedAt(time.Now()).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to mark post %d processed: %w", post.ID, err)
		}
		return &result, nil
	}

	if err := x.persistGraph(ctx, post, res.Content, &result); err != nil {
		return nil, err
	}

	x.logger.Info("Post processed",
		"post_id", post.ID,
		"facts", len(result.Facts),
		"conclusions", len(result.Conclusions),
		"solutions", len(result.Solutions),
		"logics", len(result.Logics))
	return &result, nil
}

// buildContent assembles the model input: the enriched post text plus, when
// the post carries images, their generated descriptions.
func (x *Extractor) buildContent(ctx context.Context, post *ent.RawPost) (string, error) {
	content, err := x.enricher.Enrich(ctx, post)
	if err != nil {
		return "", err
	}

	if post.MediaJSON != nil && *post.MediaJSON != "" {
		if desc := x.describer.Describe(ctx, *post.MediaJSON); desc != "" {
			content = content + "\n\n" + imageSectionHeader + "\n" + desc
		}
	}
	return content, nil
}

// persistGraph writes the full claim graph and the processed flag in one
// transaction. Facts go first, then conclusions and solutions, then the
// logic edges that translate the model's local indices into database IDs.
func (x *Extractor) persistGraph(ctx context.Context, post *ent.RawPost, rawJSON string, result *models.ExtractionResult) error {
	tx, err := x.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	auth, err := getOrCreateAuthor(ctx, tx, post)
	if err != nil {
		return err
	}

	factIDs := make(map[int]int, len(result.Facts))
	for idx, ef := range result.Facts {
		f, err := saveFact(ctx, tx, ef, post.ID)
		if err != nil {
			return err
		}
		factIDs[idx] = f.ID
	}

	conclusionIDs := make(map[int]int, len(result.Conclusions))
	for idx, ec := range result.Conclusions {
		top, err := getOrCreateTopic(ctx, tx, ec.Topic)
		if err != nil {
			return err
		}
		create := tx.Conclusion.Create().
			SetTopicID(top.ID).
			SetAuthorID(auth.ID).
			SetClaim(ec.Claim).
			SetNillableCanonicalClaim(ec.CanonicalClaim).
			SetConclusionType(x.conclusionType(ec.ConclusionType)).
			SetNillableTimeHorizonNote(ec.TimeHorizonNote).
			SetSourceURL(post.URL).
			SetSourcePlatform(post.Source).
			SetPostedAt(post.PostedAt).
			SetRawExtraction(rawJSON)
		if from := parseTimeNote(ec.TimeHorizonNote); from != nil {
			create.SetValidFrom(*from)
		}
		if until := parseTimeNote(ec.ValidUntilNote); until != nil {
			create.SetValidUntil(*until)
		}
		c, err := create.Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create conclusion: %w", err)
		}
		conclusionIDs[idx] = c.ID
	}

	solutionIDs := make(map[int]int, len(result.Solutions))
	for idx, es := range result.Solutions {
		top, err := getOrCreateTopic(ctx, tx, es.Topic)
		if err != nil {
			return err
		}
		create := tx.Solution.Create().
			SetTopicID(top.ID).
			SetAuthorID(auth.ID).
			SetClaim(es.Claim).
			SetNillableActionType(x.actionType(es.ActionType)).
			SetNillableActionTarget(es.ActionTarget).
			SetNillableActionRationale(es.ActionRationale).
			SetSourceURL(post.URL).
			SetSourcePlatform(post.Source).
			SetPostedAt(post.PostedAt).
			SetRawExtraction(rawJSON)
		s, err := create.Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create solution: %w", err)
		}
		solutionIDs[idx] = s.ID
	}

	for _, el := range result.Logics {
		switch el.LogicType {
		case "inference":
			if el.TargetIndex == nil {
				x.logger.Warn("Inference logic without target_index, skipping", "post_id", post.ID)
				continue
			}
			concID, ok := conclusionIDs[*el.TargetIndex]
			if !ok {
				x.logger.Warn("Inference target index not found, skipping",
					"post_id", post.ID,
					"target_index", *el.TargetIndex)
				continue
			}
			if err := tx.Logic.Create().
				SetLogicType(logic.LogicTypeInference).
				SetConclusionID(concID).
				SetRawPostID(post.ID).
				SetSupportingFactIds(x.resolveIndices(el.SupportingFactIndices, factIDs, post.ID, "supporting fact")).
				SetAssumptionFactIds(x.resolveIndices(el.AssumptionFactIndices, factIDs, post.ID, "assumption fact")).
				Exec(ctx); err != nil {
				return fmt.Errorf("failed to create inference logic: %w", err)
			}

		case "derivation":
			if el.SolutionIndex == nil {
				x.logger.Warn("Derivation logic without solution_index, skipping", "post_id", post.ID)
				continue
			}
			solID, ok := solutionIDs[*el.SolutionIndex]
			if !ok {
				x.logger.Warn("Derivation solution index not found, skipping",
					"post_id", post.ID,
					"solution_index", *el.SolutionIndex)
				continue
			}
			if err := tx.Logic.Create().
				SetLogicType(logic.LogicTypeDerivation).
				SetSolutionID(solID).
				SetRawPostID(post.ID).
				SetSourceConclusionIds(x.resolveIndices(el.SourceConclusionIndices, conclusionIDs, post.ID, "source conclusion")).
				Exec(ctx); err != nil {
				return fmt.Errorf("failed to create derivation logic: %w", err)
			}

		default:
			x.logger.Warn("Unknown logic_type, skipping", "post_id", post.ID, "logic_type", el.LogicType)
		}
	}

	if err := tx.RawPost.UpdateOneID(post.ID).
		SetIsProcessed(true).
		SetProcessedAt(time.Now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark post %d processed: %w", post.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit claim graph: %w", err)
	}
	return nil
}

// saveFact creates one Fact row plus its suggested verification references.
// Verifiable facts start pending; the rest are unverifiable from the start.
func saveFact(ctx context.Context, tx *ent.Tx, ef models.ExtractedFact, postID int) (*ent.Fact, error) {
	status := fact.StatusUnverifiable
	if ef.IsVerifiable {
		status = fact.StatusPending
	}

	create := tx.Fact.Create().
		SetClaim(ef.Claim).
		SetNillableCanonicalClaim(ef.CanonicalClaim).
		SetNillableVerifiableExpression(ef.VerifiableExpression).
		SetIsVerifiable(ef.IsVerifiable).
		SetNillableVerificationMethod(ef.VerificationMethod).
		SetNillableValidityStartNote(ef.ValidityStartNote).
		SetNillableValidityEndNote(ef.ValidityEndNote).
		SetStatus(status).
		SetRawPostID(postID)
	if start := parseTimeNote(ef.ValidityStartNote); start != nil {
		create.SetValidityStart(*start)
	}
	if end := parseTimeNote(ef.ValidityEndNote); end != nil {
		create.SetValidityEnd(*end)
	}
	f, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create fact: %w", err)
	}

	for _, ref := range ef.SuggestedReferences {
		if err := tx.VerificationReference.Create().
			SetFactID(f.ID).
			SetOrganization(ref.Organization).
			SetDataDescription(ref.DataDescription).
			SetNillableURL(ref.URL).
			SetNillableURLNote(ref.URLNote).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to create verification reference: %w", err)
		}
	}
	return f, nil
}

// getOrCreateAuthor resolves the post's author by (platform, platform_id),
// creating the row on first sight. Posts without a platform author id get a
// fresh author row keyed by name only.
func getOrCreateAuthor(ctx context.Context, tx *ent.Tx, post *ent.RawPost) (*ent.Author, error) {
	if post.AuthorPlatformID != nil && *post.AuthorPlatformID != "" {
		existing, err := tx.Author.Query().
			Where(
				author.PlatformEQ(post.Source),
				author.PlatformIDEQ(*post.AuthorPlatformID),
			).
			Only(ctx)
		if err == nil {
			return existing, nil
		}
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to look up author: %w", err)
		}
	}

	create := tx.Author.Create().
		SetName(post.AuthorName).
		SetPlatform(post.Source).
		SetNillablePlatformID(post.AuthorPlatformID)
	if post.AuthorPlatformID != nil && *post.AuthorPlatformID != "" {
		create.SetProfileURL(fmt.Sprintf("https://%s.com/%s", post.Source, *post.AuthorPlatformID))
	}
	a, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return a, nil
}

func getOrCreateTopic(ctx context.Context, tx *ent.Tx, name string) (*ent.Topic, error) {
	existing, err := tx.Topic.Query().Where(topic.NameEQ(name)).Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up topic: %w", err)
	}
	t, err := tx.Topic.Create().SetName(name).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create topic %q: %w", name, err)
	}
	return t, nil
}

// resolveIndices maps local array indices from the model output to database
// IDs. Unknown indices are dropped with a warning; the logic edge is still
// written with the members that resolved.
func (x *Extractor) resolveIndices(indices []int, ids map[int]int, postID int, kind string) []int {
	resolved := make([]int, 0, len(indices))
	for _, i := range indices {
		id, ok := ids[i]
		if !ok {
			x.logger.Warn("Unknown "+kind+" index in logic, dropping",
				"post_id", postID,
				"index", i)
			continue
		}
		resolved = append(resolved, id)
	}
	return resolved
}

func (x *Extractor) conclusionType(s string) conclusion.ConclusionType {
	ct := conclusion.ConclusionType(strings.ToLower(strings.TrimSpace(s)))
	if err := conclusion.ConclusionTypeValidator(ct); err != nil {
		x.logger.Warn("Unknown conclusion_type, treating as retrospective", "value", s)
		return conclusion.ConclusionTypeRetrospective
	}
	return ct
}

func (x *Extractor) actionType(s *string) *solution.ActionType {
	if s == nil || *s == "" {
		return nil
	}
	at := solution.ActionType(strings.ToLower(strings.TrimSpace(*s)))
	if err := solution.ActionTypeValidator(at); err != nil {
		x.logger.Warn("Unknown action_type, leaving unset", "value", *s)
		return nil
	}
	return &at
}

var (
	isoDatePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	yearPattern    = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// timeNoteLayouts are tried in order against the whole note.
var timeNoteLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"2006-01",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2006",
	"2006",
}

// parseTimeNote turns a free-text validity note into a time bound where one
// can be read off deterministically: a known layout, an embedded ISO date,
// or a bare year (taken as January 1). Prose without a date yields nil.
func parseTimeNote(note *string) *time.Time {
	if note == nil {
		return nil
	}
	s := strings.TrimSpace(*note)
	if s == "" {
		return nil
	}

	for _, layout := range timeNoteLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return &ts
		}
	}
	if m := isoDatePattern.FindString(s); m != "" {
		if ts, err := time.Parse("2006-01-02", m); err == nil {
			return &ts
		}
	}
	if m := yearPattern.FindString(s); m != "" {
		year, _ := strconv.Atoi(m)
		ts := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		return &ts
	}
	return nil
}

// snippet shortens s to at most limit runes for log output.
func snippet(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

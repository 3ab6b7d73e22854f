package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/credlens/pundit/ent"
	"github.com/credlens/pundit/ent/factevaluation"
	"github.com/credlens/pundit/pkg/datasource"
	"github.com/credlens/pundit/pkg/llm"
	"github.com/credlens/pundit/pkg/models"
	"github.com/credlens/pundit/pkg/prompt"
	"github.com/credlens/pundit/pkg/search"
	"github.com/credlens/pundit/pkg/services"
)

const factSearchResults = 5

// FactVerifier settles pending verifiable facts. Each fact is checked
// against an authoritative data source when its verification method names
// one the router serves, plus a web search, and the model grades the
// combined evidence with a tier. Uncertain results leave the fact pending
// for a later pass.
type FactVerifier struct {
	facts     *services.FactService
	model     completionModel
	search    *search.Client
	router    *datasource.Router
	batchSize int
	logger    *slog.Logger
}

func NewFactVerifier(facts *services.FactService, model completionModel, searchClient *search.Client, router *datasource.Router, batchSize int) *FactVerifier {
	return &FactVerifier{
		facts:     facts,
		model:     model,
		search:    searchClient,
		router:    router,
		batchSize: batchSize,
		logger:    slog.Default().With("component", "fact_verifier"),
	}
}

func (v *FactVerifier) Name() string { return "fact_verifier" }

func (v *FactVerifier) Run(ctx context.Context) error {
	now := time.Now()
	facts, err := v.facts.PendingVerifiableFacts(ctx, now, v.batchSize)
	if err != nil {
		return err
	}
	for _, f := range facts {
		if err := ctx.Err(); err != nil {
			return err
		}
		v.verify(ctx, f, now)
	}
	return nil
}

func (v *FactVerifier) verify(ctx context.Context, f *ent.Fact, now time.Time) {
	dataSection, dataResult := v.queryDataSource(ctx, f)
	searchSection := v.searchEvidence(ctx, f)

	in := prompt.FactCheckInput{Claim: f.Claim}
	if f.VerifiableExpression != nil {
		in.VerifiableExpression = *f.VerifiableExpression
	}
	if f.ValidityStart != nil {
		in.ValidityStart = f.ValidityStart.Format("2006-01-02")
	}
	if f.ValidityEnd != nil {
		in.ValidityEnd = f.ValidityEnd.Format("2006-01-02")
	}

	user := prompt.BuildFactCheckUserMessage(now.Format("2006-01-02"), in, dataSection, searchSection)
	res, err := v.model.Complete(ctx, prompt.FactCheckSystem, user, prompt.FactCheckMaxTokens)
	if err != nil {
		// Fact stays pending and is retried next pass.
		v.logger.Warn("Verification request failed", "fact_id", f.ID, "error", err)
		countItem(v.Name(), outcomeSkipped)
		return
	}

	var parsed struct {
		Result             string          `json:"result"`
		EvidenceTier       *models.FlexInt `json:"evidence_tier"`
		Confidence         *string         `json:"confidence"`
		EvidenceSummary    *string         `json:"evidence_summary"`
		AuthoritativeLinks []struct {
			Org         string `json:"org"`
			URL         string `json:"url"`
			Description string `json:"description"`
		} `json:"authoritative_links"`
		EvaluatorNotes *string `json:"evaluator_notes"`
	}
	if err := llm.ParseJSON(res.Content, &parsed); err != nil {
		v.logger.Warn("Unparseable verification output, fact stays pending", "fact_id", f.ID, "error", err)
		countItem(v.Name(), outcomeSkipped)
		return
	}

	record := models.FactVerification{
		Result:         normalizeResult(parsed.Result),
		EvidenceText:   parsed.EvidenceSummary,
		EvaluatorNotes: buildEvaluatorNotes(parsed.Confidence, parsed.EvaluatorNotes),
	}
	if parsed.EvidenceTier != nil {
		if tier := parsed.EvidenceTier.Int(); tier >= 1 && tier <= 3 {
			record.EvidenceTier = &tier
		}
	}
	if len(parsed.AuthoritativeLinks) > 0 {
		first := parsed.AuthoritativeLinks[0]
		if first.Org != "" {
			record.SourceOrg = &first.Org
		}
		if first.URL != "" {
			record.SourceURL = &first.URL
		}
		if raw, err := json.Marshal(parsed.AuthoritativeLinks); err == nil {
			s := string(raw)
			record.SourceData = &s
		}
	}
	if dataResult != nil {
		record.DataPeriod = dataResult.DataPeriod
		if record.SourceURL == nil {
			record.SourceURL = dataResult.SourceURL
		}
		if record.SourceOrg == nil {
			org := dataResult.SourceType
			record.SourceOrg = &org
		}
	}

	if _, err := v.facts.RecordFactEvaluation(ctx, f.ID, record); err != nil {
		v.logger.Error("Failed to record fact evaluation", "fact_id", f.ID, "error", err)
		countItem(v.Name(), outcomeFailed)
		return
	}
	v.logger.Info("Fact verified", "fact_id", f.ID, "result", record.Result)
	countItem(v.Name(), outcomeDone)
}

// queryDataSource resolves the fact's verification method into a data
// source query when it names one the router serves. A failed or
// unsupported hint falls back to web search silently.
func (v *FactVerifier) queryDataSource(ctx context.Context, f *ent.Fact) (string, *datasource.Result) {
	if v.router == nil || f.VerificationMethod == nil {
		return "", nil
	}
	hint, ok := datasource.ParseSourceHint(*f.VerificationMethod)
	if !ok || !v.router.Supported(hint.SourceType) {
		return "", nil
	}
	res := v.router.Query(ctx, hint.SourceType, hint.Params)
	if !res.OK || res.Content == "" {
		v.logger.Debug("Data source query returned nothing", "fact_id", f.ID, "source", hint.SourceType)
		return "", nil
	}
	v.logger.Info("Authoritative data fetched", "fact_id", f.ID, "source", hint.SourceType)
	return res.Content, &res
}

func (v *FactVerifier) searchEvidence(ctx context.Context, f *ent.Fact) string {
	if v.search == nil {
		return ""
	}
	query := search.BuildFactQuery(f.Claim, f.VerifiableExpression)
	results, err := v.search.Search(ctx, query, factSearchResults, nil)
	if err != nil {
		v.logger.Warn("Evidence search failed, continuing without results", "fact_id", f.ID, "error", err)
		return ""
	}
	return search.FormatResults(results)
}

// normalizeResult folds model spellings onto the evaluation enum. Anything
// unrecognized counts as unavailable rather than failing the item.
func normalizeResult(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return string(factevaluation.ResultTrue)
	case "false":
		return string(factevaluation.ResultFalse)
	case "uncertain":
		return string(factevaluation.ResultUncertain)
	default:
		return string(factevaluation.ResultUnavailable)
	}
}

func buildEvaluatorNotes(confidence, notes *string) *string {
	var parts []string
	if confidence != nil && strings.TrimSpace(*confidence) != "" {
		parts = append(parts, fmt.Sprintf("[confidence=%s]", strings.TrimSpace(*confidence)))
	}
	if notes != nil && strings.TrimSpace(*notes) != "" {
		parts = append(parts, strings.TrimSpace(*notes))
	}
	if len(parts) == 0 {
		return nil
	}
	joined := strings.Join(parts, " ")
	return &joined
}

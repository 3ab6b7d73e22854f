// Package pipeline runs the verification pass: the fixed sequence of
// operators that turns collected posts into verified claim graphs and
// author scorecards. Every operator is idempotent over settled state, so
// a pass can run on a timer without double-writing, and an aborted pass
// resumes naturally on the next one.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/credlens/pundit/ent"
	"github.com/credlens/pundit/pkg/config"
	"github.com/credlens/pundit/pkg/datasource"
	"github.com/credlens/pundit/pkg/extract"
	"github.com/credlens/pundit/pkg/llm"
	"github.com/credlens/pundit/pkg/search"
	"github.com/credlens/pundit/pkg/services"
)

// completionModel is the portion of the LLM gateway the operators use.
type completionModel interface {
	Complete(ctx context.Context, system, user string, maxTokens int) (*llm.Result, error)
}

// operator is one stage of the pass. Run processes every eligible item and
// returns an error only for failures that must abort the whole pass; per
// item failures are logged and counted instead.
type operator interface {
	Name() string
	Run(ctx context.Context) error
}

// Pipeline owns the extractor and the operator chain and runs them in
// dependency order.
type Pipeline struct {
	extractor *extract.Extractor
	operators []operator
	cfg       *config.SchedulerConfig
	posts     *services.PostService
	logger    *slog.Logger
}

// New wires the full operator chain on top of the given database client.
// searchClient and router may be nil; operators then work from model
// knowledge alone.
func New(client *ent.Client, model completionModel, searchClient *search.Client, router *datasource.Router, extractor *extract.Extractor, cfg *config.SchedulerConfig) *Pipeline {
	if cfg == nil {
		cfg = config.DefaultSchedulerConfig()
	}

	authors := services.NewAuthorService(client)
	facts := services.NewFactService(client)
	conclusions := services.NewConclusionService(client)
	solutions := services.NewSolutionService(client)
	logics := services.NewLogicService(client)
	posts := services.NewPostService(client)
	stats := services.NewStatsService(client)

	return &Pipeline{
		extractor: extractor,
		cfg:       cfg,
		posts:     posts,
		logger:    slog.Default().With("component", "pipeline"),
		operators: []operator{
			NewAuthorProfiler(authors, model, searchClient),
			NewFactVerifier(facts, model, searchClient, router, cfg.FactBatchSize),
			NewLogicEvaluator(logics, facts, conclusions, solutions, model),
			NewConclusionMonitor(conclusions, model),
			NewSolutionSimulator(solutions, conclusions, logics, model),
			NewRelationMapper(logics, conclusions, solutions, model),
			NewVerdictDeriver(conclusions, solutions, logics, facts),
			NewRoleEvaluator(conclusions, solutions, authors, model),
			NewQualityEvaluator(posts, authors, facts, conclusions, model),
			NewStatsUpdater(authors, conclusions, solutions, logics, facts, posts, stats),
		},
	}
}

// RunPass executes extraction and then every operator once, in order. The
// first stage error aborts the pass; whatever was written stays written.
func (p *Pipeline) RunPass(ctx context.Context) error {
	passID := uuid.New().String()
	logger := p.logger.With("pass_id", passID)
	logger.Info("Verification pass started")
	start := time.Now()

	run := func(name string, fn func(ctx context.Context) error) error {
		stageCtx, cancel := context.WithTimeout(ctx, p.cfg.OperatorTimeout)
		defer cancel()

		stageStart := time.Now()
		err := fn(stageCtx)
		elapsed := time.Since(stageStart)
		operatorDuration.WithLabelValues(name).Observe(elapsed.Seconds())
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		logger.Debug("Stage finished", "stage", name, "duration", elapsed.Round(time.Millisecond))
		return nil
	}

	err := run("extractor", p.runExtraction)
	for _, op := range p.operators {
		if err != nil {
			break
		}
		err = run(op.Name(), op.Run)
	}
	if err != nil {
		passesTotal.WithLabelValues("aborted").Inc()
		logger.Error("Verification pass aborted", "error", err, "duration", time.Since(start).Round(time.Millisecond))
		return err
	}

	passesTotal.WithLabelValues("completed").Inc()
	logger.Info("Verification pass completed", "duration", time.Since(start).Round(time.Millisecond))
	return nil
}

// runExtraction decomposes a batch of unprocessed posts into claim graphs.
// Posts the extractor skips (transport failures, unparseable output) stay
// unprocessed and are retried next pass.
func (p *Pipeline) runExtraction(ctx context.Context) error {
	if p.extractor == nil {
		return nil
	}
	posts, err := p.posts.ListUnprocessed(ctx, p.cfg.PostBatchSize)
	if err != nil {
		return err
	}
	for _, post := range posts {
		if err := ctx.Err(); err != nil {
			return err
		}
		result, err := p.extractor.Extract(ctx, post)
		switch {
		case err != nil:
			p.logger.Error("Extraction failed", "post_id", post.ID, "error", err)
			countItem("extractor", outcomeFailed)
		case result == nil:
			countItem("extractor", outcomeSkipped)
		default:
			countItem("extractor", outcomeDone)
		}
	}
	return nil
}

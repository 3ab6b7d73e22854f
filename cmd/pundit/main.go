// Pundit server — ingests commentator posts, extracts typed claim graphs,
// and drives the verification pipeline that scores long-run credibility.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/credlens/pundit/pkg/api"
	"github.com/credlens/pundit/pkg/config"
	"github.com/credlens/pundit/pkg/database"
	"github.com/credlens/pundit/pkg/datasource"
	"github.com/credlens/pundit/pkg/enrich"
	"github.com/credlens/pundit/pkg/extract"
	"github.com/credlens/pundit/pkg/ingest"
	"github.com/credlens/pundit/pkg/llm"
	"github.com/credlens/pundit/pkg/pipeline"
	"github.com/credlens/pundit/pkg/scheduler"
	"github.com/credlens/pundit/pkg/search"
	"github.com/credlens/pundit/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: pundit <command> [flags]

Commands:
  server   run the HTTP API together with the pipeline scheduler (default)
  worker   run the pipeline scheduler only; -once executes a single pass
  migrate  apply database migrations and exit

Flags:
  -config-dir PATH   configuration directory (default $CONFIG_DIR or ./deploy/config)
  -once              with worker: run one pass and exit
`)
}

func main() {
	command := "server"
	args := os.Args[1:]
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		command = args[0]
		args = args[1:]
	}

	switch command {
	case "server", "worker", "migrate":
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", command)
		usage()
		os.Exit(2)
	}

	flags := flag.NewFlagSet(command, flag.ExitOnError)
	flags.Usage = usage
	configDir := flags.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	once := flags.Bool("once", false, "Run a single pipeline pass and exit (worker only)")
	if err := flags.Parse(args); err != nil {
		os.Exit(2)
	}

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	slog.Info("Starting pundit",
		"version", version.Full(),
		"command", command,
		"config_dir", *configDir)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := run(ctx, command, *configDir, *once); err != nil {
		slog.Error("Fatal error", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, command, configDir string, once bool) error {
	// 1. Configuration
	cfg, err := config.Initialize(ctx, configDir)
	if err != nil {
		return fmt.Errorf("initializing configuration: %w", err)
	}
	stats := cfg.Stats()
	slog.Info("Configuration loaded",
		"llm_providers", stats.LLMProviders,
		"data_sources", stats.DataSources,
		"prompt_version", cfg.Defaults.PromptVersion)

	// 2. Database (migrations apply on connect)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		return fmt.Errorf("loading database config: %w", err)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", config.MaskSecretsErr(err))
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()

	drv := entsql.OpenDB(dialect.Postgres, dbClient.DB())
	if err := database.CreateGINIndexes(ctx, drv); err != nil {
		return fmt.Errorf("creating GIN indexes: %w", err)
	}
	slog.Info("Connected to PostgreSQL database", "host", dbConfig.Host, "database", dbConfig.Database)

	if command == "migrate" {
		slog.Info("Migrations applied")
		return nil
	}

	// 3. External capabilities. Each degrades independently: a missing key
	// disables that capability, never the process.
	gateway, err := llm.NewGateway(cfg)
	if err != nil {
		return fmt.Errorf("initializing LLM gateway: %w", err)
	}
	searchClient := search.NewClient(cfg.Search)
	if searchClient == nil {
		slog.Warn("Web search not configured; fact verification runs without grounding")
	}
	router := datasource.NewRouter(cfg.DataSourceRegistry)

	// 4. Enrichment and extraction
	var ctxSources []enrich.ContextSource
	if ts := enrich.NewTwitterSource(os.Getenv("TWITTER_BEARER_TOKEN")); ts != nil {
		ctxSources = append(ctxSources, ts)
	}
	ctxSources = append(ctxSources, enrich.NewWeiboSource())
	enricher := enrich.NewEnricher(dbClient.Client, ctxSources...)
	describer := enrich.NewMediaDescriber(gateway, cfg.Media)
	extractor := extract.NewExtractor(dbClient.Client, gateway, enricher, describer, cfg.Defaults.PromptVersion)

	// 5. Pipeline, ingestion, scheduler
	pipe := pipeline.New(dbClient.Client, gateway, searchClient, router, extractor, cfg.Scheduler)
	ingestor := ingest.New(dbClient.Client, nil)
	sched := scheduler.New(pipe, ingestor, cfg.Scheduler)

	if command == "worker" && once {
		slog.Info("Running one pipeline pass")
		return sched.RunOnce(ctx)
	}

	group, groupCtx := errgroup.WithContext(ctx)

	sched.Start(groupCtx)
	group.Go(func() error {
		<-groupCtx.Done()
		sched.Stop()
		return nil
	})

	if command == "server" {
		httpServer := api.NewServer(cfg, dbClient, ingestor, sched)
		addr := cfg.HTTPAddr
		group.Go(func() error {
			slog.Info("HTTP server listening", "addr", addr)
			if err := httpServer.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("HTTP server: %w", err)
			}
			return nil
		})
		group.Go(func() error {
			<-groupCtx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Scheduler.GracefulShutdownTimeout)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		})
	}

	slog.Info("Pundit started", "command", command)
	err = group.Wait()
	if err == nil || errors.Is(err, context.Canceled) {
		slog.Info("Shutdown complete")
		return nil
	}
	return err
}

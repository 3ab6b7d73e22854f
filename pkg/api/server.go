// Package api exposes the read and ingest HTTP surface. The API never
// blocks on pipeline state: every endpoint returns the current snapshot,
// with PENDING statuses and null aggregates standing in for work the
// pipeline has not reached yet.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/credlens/pundit/pkg/config"
	"github.com/credlens/pundit/pkg/database"
	"github.com/credlens/pundit/pkg/ingest"
	"github.com/credlens/pundit/pkg/services"
)

// PassTrigger requests an out-of-band pipeline pass. Satisfied by
// *scheduler.Scheduler; nil when the process runs API-only.
type PassTrigger interface {
	Trigger()
}

// Server hosts the HTTP API over the repository layer.
type Server struct {
	cfg      *config.Config
	db       *database.Client
	ingestor *ingest.Ingestor
	trigger  PassTrigger

	authors     *services.AuthorService
	posts       *services.PostService
	facts       *services.FactService
	conclusions *services.ConclusionService
	solutions   *services.SolutionService
	logics      *services.LogicService
	topics      *services.TopicService
	sources     *services.SourceService
	stats       *services.StatsService

	httpServer *http.Server
}

// NewServer wires the API over an open database client. trigger may be nil.
func NewServer(cfg *config.Config, db *database.Client, ingestor *ingest.Ingestor, trigger PassTrigger) *Server {
	return &Server{
		cfg:         cfg,
		db:          db,
		ingestor:    ingestor,
		trigger:     trigger,
		authors:     services.NewAuthorService(db.Client),
		posts:       services.NewPostService(db.Client),
		facts:       services.NewFactService(db.Client),
		conclusions: services.NewConclusionService(db.Client),
		solutions:   services.NewSolutionService(db.Client),
		logics:      services.NewLogicService(db.Client),
		topics:      services.NewTopicService(db.Client),
		sources:     services.NewSourceService(db.Client),
		stats:       services.NewStatsService(db.Client),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger())
	router.Use(securityHeaders())

	router.GET("/health", s.healthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/sources", s.registerSourceHandler)
		v1.GET("/sources", s.listSourcesHandler)

		v1.POST("/posts", s.submitPostHandler)
		v1.GET("/posts", s.listPostsHandler)
		v1.GET("/posts/:id", s.getPostGraphHandler)

		v1.GET("/authors", s.listAuthorsHandler)
		v1.GET("/authors/:id", s.getAuthorHandler)
		v1.GET("/authors/:id/claims", s.getAuthorClaimsHandler)
		v1.GET("/leaderboard", s.leaderboardHandler)

		v1.GET("/topics", s.listTopicsHandler)

		v1.POST("/system/trigger", s.triggerPassHandler)
		v1.GET("/system/config", s.configSnapshotHandler)
	}

	return router
}

// Start begins serving on addr. Blocks until the listener fails or
// Shutdown is called.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

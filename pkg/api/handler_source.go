package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/credlens/pundit/pkg/models"
)

// registerSourceHandler handles POST /api/v1/sources: submit a post or
// profile URL to start tracking. Re-submitting a known URL returns the
// existing source with a 200 instead of a 201.
func (s *Server) registerSourceHandler(c *gin.Context) {
	var req models.RegisterSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	result, err := s.ingestor.ProcessURL(c.Request.Context(), req.URL)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	status := http.StatusOK
	if result.IsNewSource {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{
		"source":    result.Source,
		"author":    result.Author,
		"new_posts": len(result.NewPosts),
		"created":   result.IsNewSource,
	})
}

// listSourcesHandler handles GET /api/v1/sources.
func (s *Server) listSourcesHandler(c *gin.Context) {
	sources, err := s.sources.ListSources(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sources": sources, "total_count": len(sources)})
}

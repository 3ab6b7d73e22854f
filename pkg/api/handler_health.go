package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/credlens/pundit/pkg/version"
)

// healthHandler handles GET /health. Reports database connectivity plus
// which optional capabilities this process is running with.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := s.db.Health(ctx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"version":  version.Full(),
			"database": dbHealth,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"version":  version.Full(),
		"database": dbHealth,
	})
}

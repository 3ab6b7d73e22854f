package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/credlens/pundit/pkg/models"
	"github.com/credlens/pundit/pkg/services"
)

// listAuthorsHandler handles GET /api/v1/authors.
func (s *Server) listAuthorsHandler(c *gin.Context) {
	filters := models.AuthorFilters{
		Limit:  queryInt(c, "limit", 50),
		Offset: queryInt(c, "offset", 0),
	}
	if v := queryStr(c, "platform"); v != nil {
		filters.Platform = *v
	}

	authors, total, err := s.authors.ListAuthors(c.Request.Context(), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.AuthorListResponse{
		Authors:    authors,
		TotalCount: total,
		Limit:      filters.Limit,
		Offset:     filters.Offset,
	})
}

// getAuthorHandler handles GET /api/v1/authors/:id: the author row plus
// their aggregate stats. Stats are null until the pipeline has computed any.
func (s *Server) getAuthorHandler(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	ctx := c.Request.Context()

	author, err := s.authors.GetAuthor(ctx, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	stats, err := s.stats.GetStats(ctx, author.ID)
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.AuthorDetailResponse{Author: author, Stats: stats})
}

// getAuthorClaimsHandler handles GET /api/v1/authors/:id/claims: every
// conclusion and solution attributed to the author.
func (s *Server) getAuthorClaimsHandler(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	ctx := c.Request.Context()

	if _, err := s.authors.GetAuthor(ctx, id); err != nil {
		respondServiceError(c, err)
		return
	}

	conclusions, err := s.conclusions.ConclusionsByAuthor(ctx, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	solutions, err := s.solutions.SolutionsByAuthor(ctx, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.AuthorClaimsResponse{
		Conclusions: conclusions,
		Solutions:   solutions,
	})
}

// leaderboardHandler handles GET /api/v1/leaderboard: authors ranked by
// overall credibility score.
func (s *Server) leaderboardHandler(c *gin.Context) {
	limit := queryInt(c, "limit", 20)
	ctx := c.Request.Context()

	rows, err := s.stats.Leaderboard(ctx, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	entries := make([]models.LeaderboardEntry, 0, len(rows))
	for _, stats := range rows {
		author, err := s.authors.GetAuthor(ctx, stats.AuthorID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				continue
			}
			respondServiceError(c, err)
			return
		}
		entries = append(entries, models.LeaderboardEntry{Author: author, Stats: stats})
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// listTopicsHandler handles GET /api/v1/topics.
func (s *Server) listTopicsHandler(c *gin.Context) {
	topics, err := s.topics.ListTopics(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics, "total_count": len(topics)})
}

package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/credlens/pundit/ent"
	"github.com/credlens/pundit/pkg/models"
	"github.com/credlens/pundit/pkg/services"
)

// submitPostHandler handles POST /api/v1/posts: the push path for external
// scrapers. Dedup is on (source, external_id); resubmitting a known post
// returns it with a 200.
func (s *Server) submitPostHandler(c *gin.Context) {
	var req models.RawPostData
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	post, created, err := s.posts.CreatePost(c.Request.Context(), req, nil)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"post": post, "created": created})
}

// listPostsHandler handles GET /api/v1/posts with source, author and
// processed-state filters.
func (s *Server) listPostsHandler(c *gin.Context) {
	filters := models.PostFilters{
		Limit:  queryInt(c, "limit", 50),
		Offset: queryInt(c, "offset", 0),
	}
	if v := queryStr(c, "source"); v != nil {
		filters.Source = *v
	}
	if v := queryStr(c, "author_platform_id"); v != nil {
		filters.AuthorPlatformID = *v
	}
	if v := queryStr(c, "processed"); v != nil {
		processed, err := strconv.ParseBool(*v)
		if err != nil {
			respondBadRequest(c, err)
			return
		}
		filters.Processed = &processed
	}

	posts, total, err := s.posts.ListPosts(c.Request.Context(), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.PostListResponse{
		Posts:      posts,
		TotalCount: total,
		Limit:      filters.Limit,
		Offset:     filters.Offset,
	})
}

// getPostGraphHandler handles GET /api/v1/posts/:id: one post with its full
// extracted claim graph. Conclusions and solutions hang off the post by
// (source_url, author) rather than a post foreign key, so the lookup goes
// through the author identity.
func (s *Server) getPostGraphHandler(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	ctx := c.Request.Context()

	post, err := s.posts.GetPost(ctx, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	facts, err := s.facts.FactsByPost(ctx, post.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	logics, err := s.logics.LogicsByPost(ctx, post.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var conclusions []*ent.Conclusion
	var solutions []*ent.Solution
	if post.AuthorPlatformID != nil {
		author, err := s.authors.GetByPlatformID(ctx, *post.AuthorPlatformID)
		if err != nil && !errors.Is(err, services.ErrNotFound) {
			respondServiceError(c, err)
			return
		}
		if err == nil {
			if conclusions, err = s.conclusions.ConclusionsBySourceURL(ctx, post.URL, author.ID); err != nil {
				respondServiceError(c, err)
				return
			}
			if solutions, err = s.solutions.SolutionsBySourceURL(ctx, post.URL, author.ID); err != nil {
				respondServiceError(c, err)
				return
			}
		}
	}

	quality, err := s.posts.GetQualityAssessment(ctx, post.ID)
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PostGraphResponse{
		Post:        post,
		Facts:       facts,
		Conclusions: conclusions,
		Solutions:   solutions,
		Logics:      logics,
		Quality:     quality,
	})
}

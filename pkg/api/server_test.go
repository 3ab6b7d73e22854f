package api

import (
	"bytes"
	"context"
	"fmt"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credlens/pundit/pkg/config"
	"github.com/credlens/pundit/pkg/ingest"
	"github.com/credlens/pundit/pkg/models"
	testdb "github.com/credlens/pundit/test/database"
)

// newTestServer wires a Server over a fresh test database with no external
// capabilities configured.
func newTestServer(t *testing.T) (*Server, *gin.Engine) {
	t.Helper()
	client := testdb.NewTestClient(t)

	cfg := &config.Config{
		Defaults: &config.Defaults{
			LLMProvider:   "default",
			PromptVersion: config.PromptVersionBasic,
		},
		Scheduler:           config.DefaultSchedulerConfig(),
		LLMProviderRegistry: config.NewLLMProviderRegistry(nil),
		DataSourceRegistry:  config.NewDataSourceRegistry(nil),
	}
	srv := NewServer(cfg, client, ingest.New(client.Client, nil), nil)
	return srv, srv.Router()
}

func doJSONRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestHealthEndpoint(t *testing.T) {
	_, router := newTestServer(t)

	rec := doJSONRequest(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	decodeBody(t, rec, &body)
	assert.Equal(t, "healthy", body["status"])
	assert.Contains(t, body["version"], "pundit/")
}

func TestSubmitPost(t *testing.T) {
	_, router := newTestServer(t)

	post := models.RawPostData{
		Source:     "twitter",
		ExternalID: "1234567890",
		Content:    "The Fed will cut rates twice this year.",
		AuthorName: "Macro Watcher",
		URL:        "https://x.com/macrowatcher/status/1234567890",
		PostedAt:   time.Now().UTC().Truncate(time.Second),
	}

	rec := doJSONRequest(t, router, http.MethodPost, "/api/v1/posts", post)
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("resubmission dedups on identity", func(t *testing.T) {
		rec := doJSONRequest(t, router, http.MethodPost, "/api/v1/posts", post)
		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Created bool `json:"created"`
		}
		decodeBody(t, rec, &body)
		assert.False(t, body.Created)
	})

	t.Run("missing required fields rejected", func(t *testing.T) {
		rec := doJSONRequest(t, router, http.MethodPost, "/api/v1/posts",
			map[string]string{"source": "twitter"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("submitted post is listed unprocessed", func(t *testing.T) {
		rec := doJSONRequest(t, router, http.MethodGet, "/api/v1/posts?processed=false", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body models.PostListResponse
		decodeBody(t, rec, &body)
		require.Equal(t, 1, body.TotalCount)
		assert.Equal(t, "1234567890", body.Posts[0].ExternalID)
	})
}

func TestRegisterSource(t *testing.T) {
	_, router := newTestServer(t)

	rec := doJSONRequest(t, router, http.MethodPost, "/api/v1/sources",
		models.RegisterSourceRequest{URL: "https://x.com/raydalio/status/99887766"})
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("resubmission returns existing source", func(t *testing.T) {
		rec := doJSONRequest(t, router, http.MethodPost, "/api/v1/sources",
			models.RegisterSourceRequest{URL: "https://x.com/raydalio/status/99887766"})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unrecognized URL rejected", func(t *testing.T) {
		rec := doJSONRequest(t, router, http.MethodPost, "/api/v1/sources",
			models.RegisterSourceRequest{URL: "https://example.com/blog/some-post"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("sources are listed", func(t *testing.T) {
		rec := doJSONRequest(t, router, http.MethodGet, "/api/v1/sources", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			TotalCount int `json:"total_count"`
		}
		decodeBody(t, rec, &body)
		assert.Equal(t, 1, body.TotalCount)
	})
}

func TestAuthorEndpoints(t *testing.T) {
	srv, router := newTestServer(t)
	ctx := context.Background()

	author, err := srv.db.Author.Create().
		SetName("Ray Dalio").
		SetPlatform("twitter").
		SetPlatformID("raydalio").
		Save(ctx)
	require.NoError(t, err)

	t.Run("list includes the author", func(t *testing.T) {
		rec := doJSONRequest(t, router, http.MethodGet, "/api/v1/authors", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body models.AuthorListResponse
		decodeBody(t, rec, &body)
		require.Equal(t, 1, body.TotalCount)
		assert.Equal(t, "Ray Dalio", body.Authors[0].Name)
	})

	t.Run("detail has null stats before aggregation", func(t *testing.T) {
		rec := doJSONRequest(t, router, http.MethodGet, fmt.Sprintf("/api/v1/authors/%d", author.ID), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body models.AuthorDetailResponse
		decodeBody(t, rec, &body)
		assert.Equal(t, author.ID, body.Author.ID)
		assert.Nil(t, body.Stats)
	})

	t.Run("claims are empty before extraction", func(t *testing.T) {
		rec := doJSONRequest(t, router, http.MethodGet, fmt.Sprintf("/api/v1/authors/%d/claims", author.ID), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body models.AuthorClaimsResponse
		decodeBody(t, rec, &body)
		assert.Empty(t, body.Conclusions)
		assert.Empty(t, body.Solutions)
	})

	t.Run("unknown author is 404", func(t *testing.T) {
		rec := doJSONRequest(t, router, http.MethodGet, "/api/v1/authors/9999", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("garbage id is 400", func(t *testing.T) {
		rec := doJSONRequest(t, router, http.MethodGet, "/api/v1/authors/abc", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("leaderboard is empty before stats", func(t *testing.T) {
		rec := doJSONRequest(t, router, http.MethodGet, "/api/v1/leaderboard", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Entries []models.LeaderboardEntry `json:"entries"`
		}
		decodeBody(t, rec, &body)
		assert.Empty(t, body.Entries)
	})
}

func TestPostGraphEndpoint(t *testing.T) {
	srv, router := newTestServer(t)
	ctx := context.Background()

	post, _, err := srv.posts.CreatePost(ctx, models.RawPostData{
		Source:           "twitter",
		ExternalID:       "42",
		Content:          "CPI came in at 3.1% last month.",
		AuthorName:       "Macro Watcher",
		AuthorPlatformID: strPtr("macrowatcher"),
		URL:              "https://x.com/macrowatcher/status/42",
		PostedAt:         time.Now().UTC(),
	}, nil)
	require.NoError(t, err)

	rec := doJSONRequest(t, router, http.MethodGet, fmt.Sprintf("/api/v1/posts/%d", post.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body models.PostGraphResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, post.ID, body.Post.ID)
	assert.Empty(t, body.Facts)
	assert.Empty(t, body.Logics)
	assert.Nil(t, body.Quality)
}

func TestSystemEndpoints(t *testing.T) {
	_, router := newTestServer(t)

	t.Run("trigger without scheduler is 409", func(t *testing.T) {
		rec := doJSONRequest(t, router, http.MethodPost, "/api/v1/system/trigger", nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("config snapshot carries no secrets", func(t *testing.T) {
		rec := doJSONRequest(t, router, http.MethodGet, "/api/v1/system/config", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		decodeBody(t, rec, &body)
		assert.Contains(t, body, "defaults")
		assert.Contains(t, body, "scheduler")
		assert.NotContains(t, rec.Body.String(), "api_key_env")
	})
}

func TestTriggerWithScheduler(t *testing.T) {
	srv, _ := newTestServer(t)
	stub := &triggerStub{}
	srv.trigger = stub
	router := srv.Router()

	rec := doJSONRequest(t, router, http.MethodPost, "/api/v1/system/trigger", nil)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, stub.calls)
}

type triggerStub struct{ calls int }

func (s *triggerStub) Trigger() { s.calls++ }

func strPtr(s string) *string { return &s }

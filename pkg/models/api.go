package models

import (
	"github.com/credlens/pundit/ent"
)

// RegisterSourceRequest registers a post or profile URL for monitoring.
type RegisterSourceRequest struct {
	URL string `json:"url" binding:"required"`
}

// AuthorFilters contains filtering options for listing authors.
type AuthorFilters struct {
	Platform string `json:"platform,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Offset   int    `json:"offset,omitempty"`
}

// PostFilters contains filtering options for listing raw posts.
type PostFilters struct {
	Source           string `json:"source,omitempty"`
	AuthorPlatformID string `json:"author_platform_id,omitempty"`
	Processed        *bool  `json:"processed,omitempty"`
	Limit            int    `json:"limit,omitempty"`
	Offset           int    `json:"offset,omitempty"`
}

// AuthorListResponse contains a paginated author list.
type AuthorListResponse struct {
	Authors    []*ent.Author `json:"authors"`
	TotalCount int           `json:"total_count"`
	Limit      int           `json:"limit"`
	Offset     int           `json:"offset"`
}

// AuthorDetailResponse is one author with their aggregate stats (nil until
// the pipeline has produced any).
type AuthorDetailResponse struct {
	Author *ent.Author      `json:"author"`
	Stats  *ent.AuthorStats `json:"stats,omitempty"`
}

// AuthorClaimsResponse groups every claim attributed to one author.
type AuthorClaimsResponse struct {
	Conclusions []*ent.Conclusion `json:"conclusions"`
	Solutions   []*ent.Solution   `json:"solutions"`
}

// LeaderboardEntry is one row of the credibility leaderboard.
type LeaderboardEntry struct {
	Author *ent.Author      `json:"author"`
	Stats  *ent.AuthorStats `json:"stats"`
}

// PostListResponse contains a paginated raw post list.
type PostListResponse struct {
	Posts      []*ent.RawPost `json:"posts"`
	TotalCount int            `json:"total_count"`
	Limit      int            `json:"limit"`
	Offset     int            `json:"offset"`
}

// PostGraphResponse is one raw post with its full extracted claim graph and,
// when present, its quality assessment.
type PostGraphResponse struct {
	Post        *ent.RawPost               `json:"post"`
	Facts       []*ent.Fact                `json:"facts"`
	Conclusions []*ent.Conclusion          `json:"conclusions"`
	Solutions   []*ent.Solution            `json:"solutions"`
	Logics      []*ent.Logic               `json:"logics"`
	Quality     *ent.PostQualityAssessment `json:"quality,omitempty"`
}

// TriggerResponse acknowledges an on-demand pipeline run.
type TriggerResponse struct {
	PassID  string `json:"pass_id"`
	Started bool   `json:"started"`
}

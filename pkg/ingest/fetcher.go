package ingest

import (
	"context"
	"time"

	"github.com/credlens/pundit/pkg/models"
)

// Fetcher pulls raw posts from one platform. Implementations are external
// collaborators; platforms without one still register sources and receive
// posts through the push API.
type Fetcher interface {
	// FetchPost returns the identified post, re-fetched in full. Saving
	// dedups on (source, external_id), so repeated fetches are cheap.
	FetchPost(ctx context.Context, platformID string) ([]models.RawPostData, error)

	// FetchProfile returns an account's posts newer than since.
	FetchProfile(ctx context.Context, platformID string, since time.Time) ([]models.RawPostData, error)
}

package ingest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/credlens/pundit/pkg/models"
	testdb "github.com/credlens/pundit/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	mu           sync.Mutex
	posts        []models.RawPostData
	err          error
	postCalls    int
	profileCalls int
	lastSince    time.Time
}

func (f *stubFetcher) FetchPost(ctx context.Context, platformID string) ([]models.RawPostData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.postCalls++
	return f.posts, f.err
}

func (f *stubFetcher) FetchProfile(ctx context.Context, platformID string, since time.Time) ([]models.RawPostData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profileCalls++
	f.lastSince = since
	return f.posts, f.err
}

func tweet(externalID, content string) models.RawPostData {
	idPtr := "mm01"
	return models.RawPostData{
		Source:           "twitter",
		ExternalID:       externalID,
		Content:          content,
		AuthorName:       "Macro Mike",
		AuthorPlatformID: &idPtr,
		URL:              fmt.Sprintf("https://x.com/macromike/status/%s", externalID),
		PostedAt:         time.Now().Add(-2 * time.Hour),
	}
}

func TestProcessURL_RegistersProfileWithBackfill(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	fetcher := &stubFetcher{posts: []models.RawPostData{
		tweet("t1", "CPI is sticky"),
		tweet("t2", "the Fed will hold"),
	}}
	ing := New(client.Client, map[string]Fetcher{"twitter": fetcher})

	res, err := ing.ProcessURL(ctx, "https://x.com/macromike")
	require.NoError(t, err)
	assert.True(t, res.IsNewSource)
	require.NotNil(t, res.Source)
	assert.Equal(t, "twitter", res.Source.Platform)
	assert.Equal(t, "macromike", res.Source.PlatformID)
	require.NotNil(t, res.Author)
	assert.Equal(t, "Macro Mike", res.Author.Name)
	require.NotNil(t, res.Author.PlatformID)
	assert.Equal(t, "mm01", *res.Author.PlatformID)
	assert.Len(t, res.NewPosts, 2)

	// Backfill reaches a year back, and the source records it ran.
	assert.WithinDuration(t, time.Now().Add(-historyWindow), fetcher.lastSince, time.Minute)
	src, err := client.MonitoredSource.Get(ctx, res.Source.ID)
	require.NoError(t, err)
	assert.True(t, src.HistoryFetched)
	require.NotNil(t, src.AuthorID)
	assert.Equal(t, res.Author.ID, *src.AuthorID)

	posts, err := client.RawPost.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	for _, p := range posts {
		require.NotNil(t, p.MonitoredSourceID)
		assert.Equal(t, res.Source.ID, *p.MonitoredSourceID)
	}
}

func TestProcessURL_DuplicateReturnsExisting(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	fetcher := &stubFetcher{posts: []models.RawPostData{tweet("t1", "CPI is sticky")}}
	ing := New(client.Client, map[string]Fetcher{"twitter": fetcher})

	first, err := ing.ProcessURL(ctx, "https://x.com/macromike")
	require.NoError(t, err)
	second, err := ing.ProcessURL(ctx, "https://twitter.com/macromike")
	require.NoError(t, err)

	assert.False(t, second.IsNewSource)
	assert.Equal(t, first.Source.ID, second.Source.ID)
	require.NotNil(t, second.Author, "existing source resolves its linked author")
	assert.Equal(t, first.Author.ID, second.Author.ID)
	assert.Empty(t, second.NewPosts)
	assert.Equal(t, 1, fetcher.profileCalls, "no re-fetch for a known source")
}

func TestProcessURL_PostURLWithoutFetcher(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	ing := New(client.Client, nil)
	res, err := ing.ProcessURL(ctx, "https://x.com/macromike/status/1234567890")
	require.NoError(t, err)

	assert.True(t, res.IsNewSource)
	assert.Nil(t, res.Author, "nothing identifies the account without posts")
	assert.Empty(t, res.NewPosts)
	src, err := client.MonitoredSource.Get(ctx, res.Source.ID)
	require.NoError(t, err)
	assert.False(t, src.HistoryFetched)
}

func TestProcessURL_FetchFailureStillRegisters(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	fetcher := &stubFetcher{err: errors.New("rate limited")}
	ing := New(client.Client, map[string]Fetcher{"twitter": fetcher})

	res, err := ing.ProcessURL(ctx, "https://x.com/macromike")
	require.NoError(t, err)
	assert.True(t, res.IsNewSource)
	require.NotNil(t, res.Author, "profile sources fall back to the username")
	assert.Equal(t, "macromike", res.Author.Name)
	assert.Empty(t, res.NewPosts)

	src, err := client.MonitoredSource.Get(ctx, res.Source.ID)
	require.NoError(t, err)
	assert.False(t, src.HistoryFetched, "backfill still owed")
}

func TestProcessURL_UnrecognizedURL(t *testing.T) {
	client := testdb.NewTestClient(t)
	ing := New(client.Client, nil)

	_, err := ing.ProcessURL(context.Background(), "https://example.com/article")
	assert.ErrorIs(t, err, ErrUnrecognizedURL)
}

func TestPollDue_SavesNewPostsAndStamps(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	fetcher := &stubFetcher{posts: []models.RawPostData{tweet("t1", "CPI is sticky")}}
	ing := New(client.Client, map[string]Fetcher{"twitter": fetcher})

	res, err := ing.ProcessURL(ctx, "https://x.com/macromike")
	require.NoError(t, err)

	// Next cycle the account has one more post; the old one dedups away.
	fetcher.posts = []models.RawPostData{
		tweet("t1", "CPI is sticky"),
		tweet("t2", "the Fed will hold"),
	}
	require.NoError(t, ing.PollDue(ctx))

	count, err := client.RawPost.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	src, err := client.MonitoredSource.Get(ctx, res.Source.ID)
	require.NoError(t, err)
	require.NotNil(t, src.LastFetchedAt)

	// Freshly stamped, so the source is not due again.
	require.NoError(t, ing.PollDue(ctx))
	assert.Equal(t, 2, fetcher.profileCalls, "one backfill plus one poll")
}

func TestPollDue_FetchFailureLeavesUnstamped(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	fetcher := &stubFetcher{err: errors.New("rate limited")}
	ing := New(client.Client, map[string]Fetcher{"twitter": fetcher})

	res, err := ing.ProcessURL(ctx, "https://x.com/macromike")
	require.NoError(t, err)

	require.NoError(t, ing.PollDue(ctx))
	require.NoError(t, ing.PollDue(ctx))

	src, err := client.MonitoredSource.Get(ctx, res.Source.ID)
	require.NoError(t, err)
	assert.Nil(t, src.LastFetchedAt, "a failed poll must stay due")
	assert.Equal(t, 3, fetcher.profileCalls, "registration plus two retries")
}

func TestPollDue_NoFetcherSkips(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	ing := New(client.Client, nil)
	res, err := ing.ProcessURL(ctx, "https://x.com/macromike")
	require.NoError(t, err)

	require.NoError(t, ing.PollDue(ctx))
	src, err := client.MonitoredSource.Get(ctx, res.Source.ID)
	require.NoError(t, err)
	assert.Nil(t, src.LastFetchedAt)
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/credlens/pundit/ent/conclusion"
	"github.com/credlens/pundit/ent/conclusionverdict"
	"github.com/credlens/pundit/pkg/models"
	testdb "github.com/credlens/pundit/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConclusionService_UnmonitoredPredictive(t *testing.T) {
	client := testdb.NewTestClient(t)
	conclusionService := NewConclusionService(client.Client)
	ctx := context.Background()

	topic := seedTopic(t, client.Client, "rates")
	author := seedAuthor(t, client.Client, "Rate Watcher", "twitter", "rw1")

	// Retrospective: out of scope for monitoring.
	seedConclusion(t, client.Client, topic.ID, author.ID, "the Fed already peaked")

	predictive, err := client.Conclusion.Create().
		SetTopicID(topic.ID).
		SetAuthorID(author.ID).
		SetClaim("the Fed cuts twice before year end").
		SetConclusionType(conclusion.ConclusionTypePredictive).
		SetSourceURL("https://x.com/rw1/status/10").
		SetSourcePlatform("twitter").
		SetPostedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	planned, err := client.Conclusion.Create().
		SetTopicID(topic.ID).
		SetAuthorID(author.ID).
		SetClaim("10Y yield below 4% by March").
		SetConclusionType(conclusion.ConclusionTypePredictive).
		SetMonitoringSourceOrg("FRED").
		SetSourceURL("https://x.com/rw1/status/11").
		SetSourcePlatform("twitter").
		SetPostedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)
	_ = planned

	rows, err := conclusionService.UnmonitoredPredictive(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, predictive.ID, rows[0].ID)

	t.Run("saving a plan removes it from the queue", func(t *testing.T) {
		err := conclusionService.SaveMonitoring(ctx, predictive.ID, models.MonitoringPlan{
			SourceOrg:  strPtr("Federal Reserve"),
			SourceURL:  strPtr("https://www.federalreserve.gov/monetarypolicy.htm"),
			PeriodNote: strPtr("FOMC decisions through December"),
			Start:      timePtr(time.Now()),
			End:        timePtr(time.Now().AddDate(0, 6, 0)),
		})
		require.NoError(t, err)

		rows, err := conclusionService.UnmonitoredPredictive(ctx)
		require.NoError(t, err)
		assert.Len(t, rows, 0)

		reloaded, err := conclusionService.GetConclusion(ctx, predictive.ID)
		require.NoError(t, err)
		require.NotNil(t, reloaded.MonitoringSourceOrg)
		assert.Equal(t, "Federal Reserve", *reloaded.MonitoringSourceOrg)
		assert.NotNil(t, reloaded.MonitoringEnd)
	})
}

func TestConclusionService_RecordVerdict(t *testing.T) {
	client := testdb.NewTestClient(t)
	conclusionService := NewConclusionService(client.Client)
	ctx := context.Background()

	topic := seedTopic(t, client.Client, "gold")
	author := seedAuthor(t, client.Client, "Gold Bug", "twitter", "gb1")

	t.Run("confirmed verdict settles the conclusion", func(t *testing.T) {
		c := seedConclusion(t, client.Client, topic.ID, author.ID, "gold protected against inflation in 2024")

		trace := map[string]interface{}{
			"supporting_facts": map[string]interface{}{"1": "true", "2": "true"},
			"assumption_facts": map[string]interface{}{},
			"verdict":          "confirmed",
		}
		row, err := conclusionService.RecordVerdict(ctx, c.ID, conclusionverdict.VerdictConfirmed, trace)
		require.NoError(t, err)
		assert.Equal(t, conclusionverdict.VerdictConfirmed, row.Verdict)
		assert.Equal(t, "confirmed", row.LogicTrace["verdict"])

		reloaded, err := conclusionService.GetConclusion(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, conclusion.StatusConfirmed, reloaded.Status)
	})

	t.Run("refuted verdict settles refuted", func(t *testing.T) {
		c := seedConclusion(t, client.Client, topic.ID, author.ID, "silver doubled last quarter")

		_, err := conclusionService.RecordVerdict(ctx, c.ID, conclusionverdict.VerdictRefuted, nil)
		require.NoError(t, err)

		reloaded, err := conclusionService.GetConclusion(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, conclusion.StatusRefuted, reloaded.Status)
	})

	t.Run("partial verdict keeps the conclusion pending", func(t *testing.T) {
		c := seedConclusion(t, client.Client, topic.ID, author.ID, "commodities broadly rallied")

		_, err := conclusionService.RecordVerdict(ctx, c.ID, conclusionverdict.VerdictPartial, nil)
		require.NoError(t, err)

		reloaded, err := conclusionService.GetConclusion(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, conclusion.StatusPending, reloaded.Status)
	})

	t.Run("unverifiable verdict settles unverifiable", func(t *testing.T) {
		c := seedConclusion(t, client.Client, topic.ID, author.ID, "sentiment was the real driver")

		_, err := conclusionService.RecordVerdict(ctx, c.ID, conclusionverdict.VerdictUnverifiable, nil)
		require.NoError(t, err)

		reloaded, err := conclusionService.GetConclusion(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, conclusion.StatusUnverifiable, reloaded.Status)
	})
}

func TestConclusionService_LatestVerdicts(t *testing.T) {
	client := testdb.NewTestClient(t)
	conclusionService := NewConclusionService(client.Client)
	ctx := context.Background()

	topic := seedTopic(t, client.Client, "fx")
	author := seedAuthor(t, client.Client, "FX Caller", "twitter", "fx1")
	c := seedConclusion(t, client.Client, topic.ID, author.ID, "yen strengthens into year end")
	fresh := seedConclusion(t, client.Client, topic.ID, author.ID, "euro stays range-bound")

	_, err := client.ConclusionVerdict.Create().
		SetConclusionID(c.ID).
		SetVerdict(conclusionverdict.VerdictPending).
		SetDerivedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	latest, err := client.ConclusionVerdict.Create().
		SetConclusionID(c.ID).
		SetVerdict(conclusionverdict.VerdictPartial).
		SetDerivedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	t.Run("map keeps only the newest per conclusion", func(t *testing.T) {
		verdicts, err := conclusionService.LatestVerdicts(ctx, []int{c.ID, fresh.ID})
		require.NoError(t, err)
		require.Contains(t, verdicts, c.ID)
		assert.Equal(t, latest.ID, verdicts[c.ID].ID)
		assert.NotContains(t, verdicts, fresh.ID)
	})

	t.Run("single lookup", func(t *testing.T) {
		v, err := conclusionService.LatestVerdict(ctx, c.ID)
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, conclusionverdict.VerdictPartial, v.Verdict)

		none, err := conclusionService.LatestVerdict(ctx, fresh.ID)
		require.NoError(t, err)
		assert.Nil(t, none)
	})
}

func TestConclusionService_RoleFit(t *testing.T) {
	client := testdb.NewTestClient(t)
	conclusionService := NewConclusionService(client.Client)
	ctx := context.Background()

	topic := seedTopic(t, client.Client, "equities")
	author := seedAuthor(t, client.Client, "Equity Voice", "twitter", "ev1")
	c := seedConclusion(t, client.Client, topic.ID, author.ID, "small caps lead the next leg up")

	v, err := conclusionService.RecordVerdict(ctx, c.ID, conclusionverdict.VerdictConfirmed, nil)
	require.NoError(t, err)

	missing, err := conclusionService.VerdictsMissingRoleFit(ctx)
	require.NoError(t, err)
	require.Len(t, missing, 1)
	assert.Equal(t, v.ID, missing[0].ID)

	err = conclusionService.SetVerdictRoleFit(ctx, v.ID, conclusionverdict.RoleFitAppropriate, strPtr("equity strategist opining on equities"))
	require.NoError(t, err)

	missing, err = conclusionService.VerdictsMissingRoleFit(ctx)
	require.NoError(t, err)
	assert.Len(t, missing, 0)
}

func TestConclusionService_ByCanonicalClaim(t *testing.T) {
	client := testdb.NewTestClient(t)
	conclusionService := NewConclusionService(client.Client)
	ctx := context.Background()

	topic := seedTopic(t, client.Client, "crypto")
	me := seedAuthor(t, client.Client, "Me", "twitter", "me1")
	rival := seedAuthor(t, client.Client, "Rival", "twitter", "rival1")

	seedConclusion(t, client.Client, topic.ID, me.ID, "bitcoin halving rallies are priced in")
	match := seedConclusion(t, client.Client, topic.ID, rival.ID, "bitcoin halving rallies are priced in")

	rows, err := conclusionService.ConclusionsByCanonicalClaim(ctx, "bitcoin halving rallies are priced in", me.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, match.ID, rows[0].ID)
}

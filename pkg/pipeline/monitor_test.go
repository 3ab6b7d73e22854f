package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/credlens/pundit/ent"
	"github.com/credlens/pundit/pkg/services"
	testdb "github.com/credlens/pundit/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMonitor(client *ent.Client, model completionModel) *ConclusionMonitor {
	return NewConclusionMonitor(services.NewConclusionService(client), model)
}

func TestConclusionMonitor_SavesPlan(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	author := seedAuthor(t, client.Client, "Macro Mike", "twitter", "mm01")
	topic := seedTopic(t, client.Client, "inflation")
	c := seedPredictiveConclusion(t, client.Client, topic.ID, author.ID, "CPI will fall below 3% within a year", nil)

	model := staticModel(`{
		"monitoring_source_org": " BLS ",
		"monitoring_source_url": "https://www.bls.gov/cpi/",
		"monitoring_period_note": "monthly CPI releases",
		"monitoring_start": "2026-09-01",
		"monitoring_end": "2027-09-01T00:00:00Z"
	}`)
	require.NoError(t, newMonitor(client.Client, model).Run(ctx))

	got, err := client.Conclusion.Get(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got.MonitoringSourceOrg)
	assert.Equal(t, "BLS", *got.MonitoringSourceOrg, "org is trimmed")
	require.NotNil(t, got.MonitoringSourceURL)
	assert.Equal(t, "https://www.bls.gov/cpi/", *got.MonitoringSourceURL)
	require.NotNil(t, got.MonitoringStart)
	assert.Equal(t, "2026-09-01", got.MonitoringStart.Format("2006-01-02"))
	require.NotNil(t, got.MonitoringEnd)
	assert.Equal(t, "2027-09-01", got.MonitoringEnd.Format("2006-01-02"), "datetime prefix is enough")
}

func TestConclusionMonitor_NoSourceOrgStaysUnmonitored(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	author := seedAuthor(t, client.Client, "Vague Val", "twitter", "vv01")
	topic := seedTopic(t, client.Client, "geopolitics")
	c := seedPredictiveConclusion(t, client.Client, topic.ID, author.ID, "something big will happen soon", nil)

	calls := 0
	model := modelFunc(func(system, user string) (string, error) {
		calls++
		return `{"monitoring_source_org": null, "monitoring_period_note": "no checkable source exists"}`, nil
	})
	monitor := newMonitor(client.Client, model)
	require.NoError(t, monitor.Run(ctx))

	got, err := client.Conclusion.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, got.MonitoringSourceOrg)

	// No plan was written, so the next pass retries.
	require.NoError(t, monitor.Run(ctx))
	assert.Equal(t, 2, calls)
}

func TestConclusionMonitor_RetrospectiveIgnored(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	author := seedAuthor(t, client.Client, "Macro Mike", "twitter", "mm01")
	topic := seedTopic(t, client.Client, "inflation")
	seedConclusion(t, client.Client, topic.ID, author.ID, "inflation was above target last year")

	calls := 0
	model := modelFunc(func(system, user string) (string, error) {
		calls++
		return `{}`, nil
	})
	require.NoError(t, newMonitor(client.Client, model).Run(ctx))
	assert.Zero(t, calls, "only predictive conclusions get monitoring plans")
}

func TestParsePlanDate(t *testing.T) {
	assert.Nil(t, parsePlanDate(nil))
	assert.Nil(t, parsePlanDate(strPtr("")))
	assert.Nil(t, parsePlanDate(strPtr("mid 2027")))
	assert.Nil(t, parsePlanDate(strPtr("2027-13-40")))

	got := parsePlanDate(strPtr("2027-03-15"))
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2027, 3, 15, 0, 0, 0, 0, time.UTC), *got)

	got = parsePlanDate(strPtr("  2027-03-15T12:00:00Z "))
	require.NotNil(t, got)
	assert.Equal(t, "2027-03-15", got.Format("2006-01-02"))
}

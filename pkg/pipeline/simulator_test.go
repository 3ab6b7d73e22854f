package pipeline

import (
	"context"
	"testing"

	"github.com/credlens/pundit/ent"
	"github.com/credlens/pundit/pkg/services"
	testdb "github.com/credlens/pundit/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimulator(client *ent.Client, model completionModel) *SolutionSimulator {
	return NewSolutionSimulator(
		services.NewSolutionService(client),
		services.NewConclusionService(client),
		services.NewLogicService(client),
		model,
	)
}

func TestSolutionSimulator_SavesNoteAndPlan(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	author := seedAuthor(t, client.Client, "Macro Mike", "twitter", "mm01")
	topic := seedTopic(t, client.Client, "rates")
	post := seedPost(t, client.Client, postSeed{externalID: "ss-1"})
	source := seedConclusion(t, client.Client, topic.ID, author.ID, "the Fed is done hiking")
	sol := seedSolution(t, client.Client, author.ID, "buy long-duration treasuries")
	seedDerivationLogic(t, client.Client, sol.ID, post.ID, []int{source.ID})

	var captured string
	model := modelFunc(func(system, user string) (string, error) {
		captured = user
		return `{
			"simulated_action_note": " Bought TLT at Friday's close near 96. ",
			"monitoring_source_org": "CBOE",
			"monitoring_source_url": "https://www.cboe.com/",
			"monitoring_start": "2026-09-01",
			"monitoring_end": "2027-03-01"
		}`, nil
	})
	require.NoError(t, newSimulator(client.Client, model).Run(ctx))

	got, err := client.Solution.Get(ctx, sol.ID)
	require.NoError(t, err)
	require.NotNil(t, got.SimulatedActionNote)
	assert.Equal(t, "Bought TLT at Friday's close near 96.", *got.SimulatedActionNote)
	require.NotNil(t, got.MonitoringSourceOrg)
	assert.Equal(t, "CBOE", *got.MonitoringSourceOrg)
	require.NotNil(t, got.MonitoringEnd)
	assert.Equal(t, "2027-03-01", got.MonitoringEnd.Format("2006-01-02"))

	// The source conclusion rides along in the prompt.
	assert.Contains(t, captured, "the Fed is done hiking")
}

func TestSolutionSimulator_MissingNoteStaysUnsimulated(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	author := seedAuthor(t, client.Client, "Macro Mike", "twitter", "mm01")
	sol := seedSolution(t, client.Client, author.ID, "hedge with gold")

	calls := 0
	model := modelFunc(func(system, user string) (string, error) {
		calls++
		return `{"simulated_action_note": "  ", "monitoring_source_org": "LBMA"}`, nil
	})
	simulator := newSimulator(client.Client, model)
	require.NoError(t, simulator.Run(ctx))

	got, err := client.Solution.Get(ctx, sol.ID)
	require.NoError(t, err)
	assert.Nil(t, got.SimulatedActionNote)
	assert.Nil(t, got.MonitoringSourceOrg, "no partial write without a note")

	require.NoError(t, simulator.Run(ctx))
	assert.Equal(t, 2, calls, "still eligible next pass")
}

func TestSolutionSimulator_PlanlessNoteStillSaved(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	author := seedAuthor(t, client.Client, "Macro Mike", "twitter", "mm01")
	sol := seedSolution(t, client.Client, author.ID, "stay diversified across sectors")

	model := staticModel(`{"simulated_action_note": "Rebalanced into an equal-weight basket.", "monitoring_source_org": null}`)
	require.NoError(t, newSimulator(client.Client, model).Run(ctx))

	got, err := client.Solution.Get(ctx, sol.ID)
	require.NoError(t, err)
	require.NotNil(t, got.SimulatedActionNote)
	assert.Equal(t, "Rebalanced into an equal-weight basket.", *got.SimulatedActionNote)
	assert.Nil(t, got.MonitoringSourceOrg)
	assert.Nil(t, got.MonitoringEnd)
}

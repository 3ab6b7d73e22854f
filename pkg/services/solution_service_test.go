package services

import (
	"context"
	"testing"
	"time"

	"github.com/credlens/pundit/ent/solution"
	"github.com/credlens/pundit/ent/solutionassessment"
	"github.com/credlens/pundit/pkg/models"
	testdb "github.com/credlens/pundit/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolutionService_UnsimulatedSolutions(t *testing.T) {
	client := testdb.NewTestClient(t)
	solutionService := NewSolutionService(client.Client)
	ctx := context.Background()

	author := seedAuthor(t, client.Client, "Allocator", "twitter", "alloc1")

	fresh := seedSolution(t, client.Client, author.ID, "rotate into gold miners")

	simulated, err := client.Solution.Create().
		SetAuthorID(author.ID).
		SetClaim("hedge with puts").
		SetSimulatedActionNote("If executed today, buys 3-month SPX puts at the money.").
		Save(ctx)
	require.NoError(t, err)
	_ = simulated

	rows, err := solutionService.UnsimulatedSolutions(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, fresh.ID, rows[0].ID)

	t.Run("saving a simulation removes it from the queue", func(t *testing.T) {
		err := solutionService.SaveSimulation(ctx, fresh.ID, "If executed today, buys GDX at market.", models.MonitoringPlan{
			SourceOrg: strPtr("NYSE"),
			SourceURL: strPtr("https://www.nyse.com/quote/GDX"),
			Start:     timePtr(time.Now()),
			End:       timePtr(time.Now().AddDate(0, 3, 0)),
		})
		require.NoError(t, err)

		rows, err := solutionService.UnsimulatedSolutions(ctx)
		require.NoError(t, err)
		assert.Len(t, rows, 0)

		reloaded, err := solutionService.GetSolution(ctx, fresh.ID)
		require.NoError(t, err)
		require.NotNil(t, reloaded.SimulatedActionNote)
		assert.Contains(t, *reloaded.SimulatedActionNote, "GDX")
		assert.NotNil(t, reloaded.MonitoringEnd)
	})

	t.Run("rejects empty note", func(t *testing.T) {
		err := solutionService.SaveSimulation(ctx, fresh.ID, "", models.MonitoringPlan{})
		assert.True(t, IsValidationError(err))
	})
}

func TestSolutionService_RecordAssessment(t *testing.T) {
	client := testdb.NewTestClient(t)
	solutionService := NewSolutionService(client.Client)
	ctx := context.Background()

	author := seedAuthor(t, client.Client, "Strategist", "twitter", "strat1")

	cases := []struct {
		name    string
		verdict solutionassessment.Verdict
		status  solution.Status
	}{
		{"confirmed validates", solutionassessment.VerdictConfirmed, solution.StatusValidated},
		{"partial validates", solutionassessment.VerdictPartial, solution.StatusValidated},
		{"refuted invalidates", solutionassessment.VerdictRefuted, solution.StatusInvalidated},
		{"unverifiable settles unverifiable", solutionassessment.VerdictUnverifiable, solution.StatusUnverifiable},
		{"pending stays pending", solutionassessment.VerdictPending, solution.StatusPending},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sol := seedSolution(t, client.Client, author.ID, "recommendation under "+tc.name)

			row, err := solutionService.RecordAssessment(ctx, sol.ID, tc.verdict, strPtr("based on 2 source conclusions"))
			require.NoError(t, err)
			assert.Equal(t, tc.verdict, row.Verdict)

			reloaded, err := solutionService.GetSolution(ctx, sol.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.status, reloaded.Status)
		})
	}

	t.Run("latest assessment wins", func(t *testing.T) {
		sol := seedSolution(t, client.Client, author.ID, "upgraded recommendation")

		_, err := client.SolutionAssessment.Create().
			SetSolutionID(sol.ID).
			SetVerdict(solutionassessment.VerdictPending).
			SetAssessedAt(time.Now().Add(-time.Hour)).
			Save(ctx)
		require.NoError(t, err)
		newer, err := solutionService.RecordAssessment(ctx, sol.ID, solutionassessment.VerdictConfirmed, nil)
		require.NoError(t, err)

		latest, err := solutionService.LatestAssessment(ctx, sol.ID)
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, newer.ID, latest.ID)
	})
}

func TestSolutionService_RoleFit(t *testing.T) {
	client := testdb.NewTestClient(t)
	solutionService := NewSolutionService(client.Client)
	ctx := context.Background()

	author := seedAuthor(t, client.Client, "Advisor", "twitter", "adv1")
	sol := seedSolution(t, client.Client, author.ID, "short duration bonds")

	row, err := solutionService.RecordAssessment(ctx, sol.ID, solutionassessment.VerdictConfirmed, nil)
	require.NoError(t, err)

	missing, err := solutionService.AssessmentsMissingRoleFit(ctx)
	require.NoError(t, err)
	require.Len(t, missing, 1)

	err = solutionService.SetAssessmentRoleFit(ctx, row.ID, solutionassessment.RoleFitQuestionable, strPtr("celebrity with no fixed income background"))
	require.NoError(t, err)

	missing, err = solutionService.AssessmentsMissingRoleFit(ctx)
	require.NoError(t, err)
	assert.Len(t, missing, 0)
}

package pipeline

import (
	"context"
	"testing"

	"github.com/credlens/pundit/ent"
	"github.com/credlens/pundit/ent/conclusionverdict"
	"github.com/credlens/pundit/ent/solutionassessment"
	"github.com/credlens/pundit/pkg/services"
	testdb "github.com/credlens/pundit/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoleEvaluator(client *ent.Client, model completionModel) *RoleEvaluator {
	return NewRoleEvaluator(
		services.NewConclusionService(client),
		services.NewSolutionService(client),
		services.NewAuthorService(client),
		model,
	)
}

func TestRoleEvaluator_AnnotatesVerdictsAndAssessments(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	author := seedAuthor(t, client.Client, "Macro Mike", "twitter", "mm01")
	_, err := client.Author.UpdateOneID(author.ID).
		SetRole("economist").
		SetExpertiseAreas("macroeconomics").
		Save(ctx)
	require.NoError(t, err)
	topic := seedTopic(t, client.Client, "inflation")

	c := seedConclusion(t, client.Client, topic.ID, author.ID, "inflation stays above target")
	verdict, err := client.ConclusionVerdict.Create().
		SetConclusionID(c.ID).
		SetVerdict(conclusionverdict.VerdictConfirmed).
		Save(ctx)
	require.NoError(t, err)

	sol := seedSolution(t, client.Client, author.ID, "buy TIPS")
	assessment, err := client.SolutionAssessment.Create().
		SetSolutionID(sol.ID).
		SetVerdict(solutionassessment.VerdictConfirmed).
		Save(ctx)
	require.NoError(t, err)

	var users []string
	model := modelFunc(func(system, user string) (string, error) {
		users = append(users, user)
		return `{"role_fit": "Appropriate", "role_fit_note": "squarely inside macro expertise"}`, nil
	})
	evaluator := newRoleEvaluator(client.Client, model)
	require.NoError(t, evaluator.Run(ctx))

	gotV, err := client.ConclusionVerdict.Get(ctx, verdict.ID)
	require.NoError(t, err)
	require.NotNil(t, gotV.RoleFit)
	assert.Equal(t, conclusionverdict.RoleFitAppropriate, *gotV.RoleFit)
	require.NotNil(t, gotV.RoleFitNote)
	assert.Equal(t, "squarely inside macro expertise", *gotV.RoleFitNote)

	gotA, err := client.SolutionAssessment.Get(ctx, assessment.ID)
	require.NoError(t, err)
	require.NotNil(t, gotA.RoleFit)
	assert.Equal(t, solutionassessment.RoleFitAppropriate, *gotA.RoleFit)

	// One judgement per row, and the prompts carry the claims.
	require.Len(t, users, 2)
	assert.Contains(t, users[0], "inflation stays above target")
	assert.Contains(t, users[1], "buy TIPS")

	// Annotated rows leave the eligible set.
	require.NoError(t, evaluator.Run(ctx))
	assert.Len(t, users, 2)
}

func TestRoleEvaluator_FailureLeavesRowEligible(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	author := seedAuthor(t, client.Client, "Macro Mike", "twitter", "mm01")
	topic := seedTopic(t, client.Client, "inflation")
	c := seedConclusion(t, client.Client, topic.ID, author.ID, "inflation stays above target")
	verdict, err := client.ConclusionVerdict.Create().
		SetConclusionID(c.ID).
		SetVerdict(conclusionverdict.VerdictRefuted).
		Save(ctx)
	require.NoError(t, err)

	calls := 0
	model := modelFunc(func(system, user string) (string, error) {
		calls++
		return "not json at all", nil
	})
	evaluator := newRoleEvaluator(client.Client, model)
	require.NoError(t, evaluator.Run(ctx))

	got, err := client.ConclusionVerdict.Get(ctx, verdict.ID)
	require.NoError(t, err)
	assert.Nil(t, got.RoleFit)

	require.NoError(t, evaluator.Run(ctx))
	assert.Equal(t, 2, calls, "null role_fit is retried")
}

func TestRoleEvaluator_UnknownValueRecordsQuestionable(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	author := seedAuthor(t, client.Client, "Macro Mike", "twitter", "mm01")
	topic := seedTopic(t, client.Client, "crypto")
	c := seedConclusion(t, client.Client, topic.ID, author.ID, "bitcoin replaces the dollar")
	verdict, err := client.ConclusionVerdict.Create().
		SetConclusionID(c.ID).
		SetVerdict(conclusionverdict.VerdictPending).
		Save(ctx)
	require.NoError(t, err)

	model := staticModel(`{"role_fit": "way outside their lane"}`)
	require.NoError(t, newRoleEvaluator(client.Client, model).Run(ctx))

	got, err := client.ConclusionVerdict.Get(ctx, verdict.ID)
	require.NoError(t, err)
	require.NotNil(t, got.RoleFit)
	assert.Equal(t, conclusionverdict.RoleFitQuestionable, *got.RoleFit)
}

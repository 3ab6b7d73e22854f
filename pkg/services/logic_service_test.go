package services

import (
	"context"
	"testing"
	"time"

	"github.com/credlens/pundit/ent/logic"
	"github.com/credlens/pundit/pkg/models"
	testdb "github.com/credlens/pundit/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogicService_UnassessedLogics(t *testing.T) {
	client := testdb.NewTestClient(t)
	logicService := NewLogicService(client.Client)
	ctx := context.Background()

	topic := seedTopic(t, client.Client, "macro")
	author := seedAuthor(t, client.Client, "Macro Author", "twitter", "ma1")
	post := seedPost(t, client.Client, "5001")
	c := seedConclusion(t, client.Client, topic.ID, author.ID, "inflation is cooling")
	f := seedFact(t, client.Client, post.ID, "CPI fell for three straight months")

	fresh := seedInferenceLogic(t, client.Client, c.ID, post.ID, []int{f.ID}, nil)

	graded := seedInferenceLogic(t, client.Client, c.ID, post.ID, []int{f.ID}, nil)
	_, err := client.Logic.UpdateOneID(graded.ID).
		SetLogicCompleteness(logic.LogicCompletenessComplete).
		SetAssessedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	rows, err := logicService.UnassessedLogics(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, fresh.ID, rows[0].ID)

	t.Run("saving an assessment removes it from the queue", func(t *testing.T) {
		completeness := logic.LogicCompletenessPartial
		err := logicService.SaveAssessment(ctx, fresh.ID, &completeness,
			strPtr("single supporting fact, no counterevidence considered"),
			strPtr("Concludes cooling inflation from three CPI prints."),
			time.Now())
		require.NoError(t, err)

		rows, err := logicService.UnassessedLogics(ctx)
		require.NoError(t, err)
		assert.Len(t, rows, 0)

		reloaded, err := logicService.GetLogic(ctx, fresh.ID)
		require.NoError(t, err)
		require.NotNil(t, reloaded.LogicCompleteness)
		assert.Equal(t, logic.LogicCompletenessPartial, *reloaded.LogicCompleteness)
	})

	t.Run("ungraded assessment still closes the queue entry", func(t *testing.T) {
		another := seedInferenceLogic(t, client.Client, c.ID, post.ID, []int{f.ID}, nil)
		err := logicService.SaveAssessment(ctx, another.ID, nil, nil, nil, time.Now())
		require.NoError(t, err)

		reloaded, err := logicService.GetLogic(ctx, another.ID)
		require.NoError(t, err)
		assert.Nil(t, reloaded.LogicCompleteness)
		assert.NotNil(t, reloaded.AssessedAt)
	})
}

func TestLogicService_LatestInferenceLogic(t *testing.T) {
	client := testdb.NewTestClient(t)
	logicService := NewLogicService(client.Client)
	ctx := context.Background()

	topic := seedTopic(t, client.Client, "energy")
	author := seedAuthor(t, client.Client, "Energy Author", "twitter", "ea1")
	post := seedPost(t, client.Client, "5101")
	c := seedConclusion(t, client.Client, topic.ID, author.ID, "oil supply stays tight")
	f := seedFact(t, client.Client, post.ID, "OPEC extended cuts")

	seedInferenceLogic(t, client.Client, c.ID, post.ID, []int{f.ID}, nil)
	newest := seedInferenceLogic(t, client.Client, c.ID, post.ID, []int{f.ID}, nil)

	got, err := logicService.LatestInferenceLogic(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, newest.ID, got.ID)

	t.Run("nil when the conclusion has no chain", func(t *testing.T) {
		bare := seedConclusion(t, client.Client, topic.ID, author.ID, "chainless conclusion")
		got, err := logicService.LatestInferenceLogic(ctx, bare.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestLogicService_DerivationLogic(t *testing.T) {
	client := testdb.NewTestClient(t)
	logicService := NewLogicService(client.Client)
	ctx := context.Background()

	topic := seedTopic(t, client.Client, "bonds")
	author := seedAuthor(t, client.Client, "Bond Author", "twitter", "ba1")
	post := seedPost(t, client.Client, "5201")
	c := seedConclusion(t, client.Client, topic.ID, author.ID, "duration risk is mispriced")
	sol := seedSolution(t, client.Client, author.ID, "buy long-dated treasuries")

	l := seedDerivationLogic(t, client.Client, sol.ID, post.ID, []int{c.ID})

	got, err := logicService.DerivationLogic(ctx, sol.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, l.ID, got.ID)
	assert.Equal(t, []int{c.ID}, got.SourceConclusionIds)
}

func TestLogicService_Relations(t *testing.T) {
	client := testdb.NewTestClient(t)
	logicService := NewLogicService(client.Client)
	ctx := context.Background()

	topic := seedTopic(t, client.Client, "tech")
	author := seedAuthor(t, client.Client, "Tech Author", "twitter", "ta1")
	post := seedPost(t, client.Client, "5301")
	c1 := seedConclusion(t, client.Client, topic.ID, author.ID, "AI capex keeps climbing")
	c2 := seedConclusion(t, client.Client, topic.ID, author.ID, "chip demand stays strong")
	l1 := seedInferenceLogic(t, client.Client, c1.ID, post.ID, nil, nil)
	l2 := seedInferenceLogic(t, client.Client, c2.ID, post.ID, nil, nil)

	t.Run("no relations yet", func(t *testing.T) {
		has, err := logicService.HasRelationsAmong(ctx, []int{l1.ID, l2.ID})
		require.NoError(t, err)
		assert.False(t, has)
	})

	t.Run("creates edges and skips duplicates", func(t *testing.T) {
		edges := []models.RelationEdge{
			{FromLogicID: l1.ID, ToLogicID: l2.ID, RelationType: "supports", Note: strPtr("capex growth is the demand driver")},
			{FromLogicID: l1.ID, ToLogicID: l2.ID, RelationType: "supports"},
		}
		created, err := logicService.CreateRelations(ctx, edges)
		require.NoError(t, err)
		assert.Equal(t, 1, created)

		has, err := logicService.HasRelationsAmong(ctx, []int{l1.ID, l2.ID})
		require.NoError(t, err)
		assert.True(t, has)

		relations, err := logicService.RelationsByLogicIDs(ctx, []int{l1.ID})
		require.NoError(t, err)
		require.Len(t, relations, 1)
		assert.Equal(t, l2.ID, relations[0].ToLogicID)
	})

	t.Run("rejects unknown relation type", func(t *testing.T) {
		_, err := logicService.CreateRelations(ctx, []models.RelationEdge{
			{FromLogicID: l1.ID, ToLogicID: l2.ID, RelationType: "rebuts"},
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("fewer than two chains can have no relations", func(t *testing.T) {
		has, err := logicService.HasRelationsAmong(ctx, []int{l1.ID})
		require.NoError(t, err)
		assert.False(t, has)
	})
}

package pipeline

import (
	"context"
	"testing"

	"github.com/credlens/pundit/ent"
	"github.com/credlens/pundit/ent/logic"
	"github.com/credlens/pundit/pkg/services"
	testdb "github.com/credlens/pundit/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogicEvaluator(client *ent.Client, model completionModel) *LogicEvaluator {
	return NewLogicEvaluator(
		services.NewLogicService(client),
		services.NewFactService(client),
		services.NewConclusionService(client),
		services.NewSolutionService(client),
		model,
	)
}

func TestLogicEvaluator_AssessesChain(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	author := seedAuthor(t, client.Client, "Macro Mike", "twitter", "mm01")
	topic := seedTopic(t, client.Client, "inflation")
	post := seedPost(t, client.Client, postSeed{externalID: "le-1"})
	supporting := seedFact(t, client.Client, post.ID, "CPI printed 3.2% in July")
	assumption := seedFact(t, client.Client, post.ID, "the Fed targets 2% inflation")
	recordResult(t, client.Client, supporting.ID, "true")
	conclusion := seedConclusion(t, client.Client, topic.ID, author.ID, "inflation remains above target")
	chain := seedInferenceLogic(t, client.Client, conclusion.ID, post.ID, []int{supporting.ID}, []int{assumption.ID})

	var captured string
	model := modelFunc(func(system, user string) (string, error) {
		captured = user
		return `{"logic_completeness": "Partial", "logic_note": "assumption is unchecked", "one_sentence_summary": "Above-target CPI implies inflation is still high."}`, nil
	})
	require.NoError(t, newLogicEvaluator(client.Client, model).Run(ctx))

	got, err := client.Logic.Get(ctx, chain.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LogicCompleteness)
	assert.Equal(t, logic.LogicCompletenessPartial, *got.LogicCompleteness)
	require.NotNil(t, got.LogicNote)
	assert.Equal(t, "assumption is unchecked", *got.LogicNote)
	require.NotNil(t, got.OneSentenceSummary)
	assert.NotNil(t, got.AssessedAt)

	// The prompt carries the target claim and both fact lines with their
	// verification state.
	assert.Contains(t, captured, "inflation remains above target")
	assert.Contains(t, captured, "CPI printed 3.2% in July")
	assert.Contains(t, captured, "the Fed targets 2% inflation")
	assert.Contains(t, captured, "true")
	assert.Contains(t, captured, "unverified")
}

func TestLogicEvaluator_AssessedChainNotRequeried(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	author := seedAuthor(t, client.Client, "Macro Mike", "twitter", "mm01")
	topic := seedTopic(t, client.Client, "rates")
	post := seedPost(t, client.Client, postSeed{externalID: "le-2"})
	f := seedFact(t, client.Client, post.ID, "the 10y yield is above 4%")
	conclusion := seedConclusion(t, client.Client, topic.ID, author.ID, "duration is risky here")
	seedInferenceLogic(t, client.Client, conclusion.ID, post.ID, []int{f.ID}, nil)

	calls := 0
	model := modelFunc(func(system, user string) (string, error) {
		calls++
		return `{"logic_completeness": "complete"}`, nil
	})
	evaluator := newLogicEvaluator(client.Client, model)

	require.NoError(t, evaluator.Run(ctx))
	require.NoError(t, evaluator.Run(ctx))
	assert.Equal(t, 1, calls)
}

func TestLogicEvaluator_UnknownCompletenessStillAssessed(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	author := seedAuthor(t, client.Client, "Macro Mike", "twitter", "mm01")
	topic := seedTopic(t, client.Client, "equities")
	post := seedPost(t, client.Client, postSeed{externalID: "le-3"})
	f := seedFact(t, client.Client, post.ID, "the index fell 2% on Friday")
	conclusion := seedConclusion(t, client.Client, topic.ID, author.ID, "a correction has started")
	chain := seedInferenceLogic(t, client.Client, conclusion.ID, post.ID, []int{f.ID}, nil)

	model := staticModel(`{"logic_completeness": "mostly fine", "one_sentence_summary": "One down day proves little."}`)
	require.NoError(t, newLogicEvaluator(client.Client, model).Run(ctx))

	got, err := client.Logic.Get(ctx, chain.ID)
	require.NoError(t, err)
	assert.Nil(t, got.LogicCompleteness, "unrecognized grade stays unset")
	assert.NotNil(t, got.AssessedAt, "the chain still leaves the eligible set")
	require.NotNil(t, got.OneSentenceSummary)
	assert.Equal(t, "One down day proves little.", *got.OneSentenceSummary)
}

package pipeline

import (
	"context"
	"fmt"
	"testing"

	"github.com/credlens/pundit/ent"
	"github.com/credlens/pundit/ent/logicrelation"
	"github.com/credlens/pundit/pkg/services"
	testdb "github.com/credlens/pundit/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRelationMapper(client *ent.Client, model completionModel) *RelationMapper {
	return NewRelationMapper(
		services.NewLogicService(client),
		services.NewConclusionService(client),
		services.NewSolutionService(client),
		model,
	)
}

// twoAssessedChains seeds a post with two graded inference chains and
// returns their IDs.
func twoAssessedChains(t *testing.T, client *ent.Client) (int, int) {
	t.Helper()
	author := seedAuthor(t, client, "Macro Mike", "twitter", "mm01")
	topic := seedTopic(t, client, "inflation")
	post := seedPost(t, client, postSeed{externalID: "rm-1"})
	f1 := seedFact(t, client, post.ID, "CPI printed 3.2%")
	f2 := seedFact(t, client, post.ID, "wages grew 4.1%")
	c1 := seedConclusion(t, client, topic.ID, author.ID, "inflation stays sticky")
	c2 := seedConclusion(t, client, topic.ID, author.ID, "real wages are recovering")
	a := seedInferenceLogic(t, client, c1.ID, post.ID, []int{f1.ID}, nil)
	b := seedInferenceLogic(t, client, c2.ID, post.ID, []int{f2.ID}, nil)
	assessChain(t, client, a.ID, "complete", "Sticky CPI follows from the print.")
	assessChain(t, client, b.ID, "partial", "Wage growth above CPI lifts real wages.")
	return a.ID, b.ID
}

func TestRelationMapper_PersistsValidEdgesOnly(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	aID, bID := twoAssessedChains(t, client.Client)

	model := staticModel(fmt.Sprintf(`{"relations": [
		{"from_logic_id": %[2]d, "to_logic_id": %[1]d, "relation_type": "Contextualizes", "note": "wage angle frames the CPI read"},
		{"from_logic_id": %[1]d, "to_logic_id": 999999, "relation_type": "supports"},
		{"from_logic_id": %[1]d, "to_logic_id": %[1]d, "relation_type": "supports"}
	]}`, aID, bID))
	require.NoError(t, newRelationMapper(client.Client, model).Run(ctx))

	rels, err := client.LogicRelation.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, rels, 1, "out-of-post and self edges are dropped")
	assert.Equal(t, bID, rels[0].FromLogicID)
	assert.Equal(t, aID, rels[0].ToLogicID)
	assert.Equal(t, logicrelation.RelationTypeContextualizes, rels[0].RelationType)
	require.NotNil(t, rels[0].Note)
	assert.Equal(t, "wage angle frames the CPI read", *rels[0].Note)
}

func TestRelationMapper_MappedPostNotRequeried(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	aID, bID := twoAssessedChains(t, client.Client)

	calls := 0
	model := modelFunc(func(system, user string) (string, error) {
		calls++
		return fmt.Sprintf(`{"relations": [{"from_logic_id": %d, "to_logic_id": %d, "relation_type": "supports"}]}`, aID, bID), nil
	})
	mapper := newRelationMapper(client.Client, model)

	require.NoError(t, mapper.Run(ctx))
	require.NoError(t, mapper.Run(ctx))
	assert.Equal(t, 1, calls)

	count, err := client.LogicRelation.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRelationMapper_WaitsForUngradedChains(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	author := seedAuthor(t, client.Client, "Macro Mike", "twitter", "mm01")
	topic := seedTopic(t, client.Client, "rates")
	post := seedPost(t, client.Client, postSeed{externalID: "rm-2"})
	f1 := seedFact(t, client.Client, post.ID, "the curve steepened")
	f2 := seedFact(t, client.Client, post.ID, "term premia rose")
	c1 := seedConclusion(t, client.Client, topic.ID, author.ID, "cuts are priced in")
	c2 := seedConclusion(t, client.Client, topic.ID, author.ID, "supply worries are back")
	a := seedInferenceLogic(t, client.Client, c1.ID, post.ID, []int{f1.ID}, nil)
	seedInferenceLogic(t, client.Client, c2.ID, post.ID, []int{f2.ID}, nil)
	assessChain(t, client.Client, a.ID, "complete", "Steepening implies cut pricing.")

	calls := 0
	model := modelFunc(func(system, user string) (string, error) {
		calls++
		return `{"relations": []}`, nil
	})
	require.NoError(t, newRelationMapper(client.Client, model).Run(ctx))
	assert.Zero(t, calls, "mapping waits for the evaluator")
}

func TestRelationMapper_SingleChainIgnored(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	author := seedAuthor(t, client.Client, "Macro Mike", "twitter", "mm01")
	topic := seedTopic(t, client.Client, "fx")
	post := seedPost(t, client.Client, postSeed{externalID: "rm-3"})
	f := seedFact(t, client.Client, post.ID, "the dollar index broke 106")
	c := seedConclusion(t, client.Client, topic.ID, author.ID, "dollar strength persists")
	l := seedInferenceLogic(t, client.Client, c.ID, post.ID, []int{f.ID}, nil)
	assessChain(t, client.Client, l.ID, "complete", "Breakout confirms the trend.")

	calls := 0
	model := modelFunc(func(system, user string) (string, error) {
		calls++
		return `{"relations": []}`, nil
	})
	require.NoError(t, newRelationMapper(client.Client, model).Run(ctx))
	assert.Zero(t, calls, "a lone chain has nothing to relate")
}

func TestNormalizeRelationType(t *testing.T) {
	assert.Equal(t, "supports", normalizeRelationType("SUPPORTS"))
	assert.Equal(t, "contextualizes", normalizeRelationType(" contextualizes "))
	assert.Equal(t, "contradicts", normalizeRelationType("contradicts"))
	assert.Equal(t, "supports", normalizeRelationType("depends on"))
	assert.Equal(t, "supports", normalizeRelationType(""))
}

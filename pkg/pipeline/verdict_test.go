package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/credlens/pundit/ent"
	"github.com/credlens/pundit/ent/conclusion"
	"github.com/credlens/pundit/ent/conclusionverdict"
	"github.com/credlens/pundit/ent/factevaluation"
	"github.com/credlens/pundit/ent/logic"
	"github.com/credlens/pundit/ent/solution"
	"github.com/credlens/pundit/ent/solutionassessment"
	"github.com/credlens/pundit/pkg/services"
	testdb "github.com/credlens/pundit/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evalMap(results map[int]factevaluation.Result) map[int]*ent.FactEvaluation {
	out := make(map[int]*ent.FactEvaluation, len(results))
	for id, r := range results {
		out[id] = &ent.FactEvaluation{FactID: id, Result: r}
	}
	return out
}

func TestDeriveConclusionVerdict(t *testing.T) {
	tests := []struct {
		name        string
		supporting  []int
		assumptions []int
		results     map[int]factevaluation.Result
		want        conclusionverdict.Verdict
	}{
		{
			name:       "all true confirms",
			supporting: []int{1, 2},
			results:    map[int]factevaluation.Result{1: factevaluation.ResultTrue, 2: factevaluation.ResultTrue},
			want:       conclusionverdict.VerdictConfirmed,
		},
		{
			name:       "unavailable does not block confirmation",
			supporting: []int{1, 2, 3},
			results: map[int]factevaluation.Result{
				1: factevaluation.ResultTrue,
				2: factevaluation.ResultUnavailable,
				3: factevaluation.ResultTrue,
			},
			want: conclusionverdict.VerdictConfirmed,
		},
		{
			name:        "false assumption refutes",
			supporting:  []int{1},
			assumptions: []int{2},
			results:     map[int]factevaluation.Result{1: factevaluation.ResultTrue, 2: factevaluation.ResultFalse},
			want:        conclusionverdict.VerdictRefuted,
		},
		{
			name:       "false supporting fact refutes",
			supporting: []int{1, 2},
			results:    map[int]factevaluation.Result{1: factevaluation.ResultTrue, 2: factevaluation.ResultFalse},
			want:       conclusionverdict.VerdictRefuted,
		},
		{
			name:        "nothing checkable is unverifiable",
			supporting:  []int{1},
			assumptions: []int{2},
			results: map[int]factevaluation.Result{
				1: factevaluation.ResultUnavailable,
				2: factevaluation.ResultUnavailable,
			},
			want: conclusionverdict.VerdictUnverifiable,
		},
		{
			name:       "uncertain holds the verdict at partial",
			supporting: []int{1, 2},
			results:    map[int]factevaluation.Result{1: factevaluation.ResultTrue, 2: factevaluation.ResultUncertain},
			want:       conclusionverdict.VerdictPartial,
		},
		{
			name:       "only uncertain stays pending",
			supporting: []int{1},
			results:    map[int]factevaluation.Result{1: factevaluation.ResultUncertain},
			want:       conclusionverdict.VerdictPending,
		},
		{
			name: "no facts stays pending",
			want: conclusionverdict.VerdictPending,
		},
		{
			name:       "missing evaluation counts as unavailable",
			supporting: []int{1, 2},
			results:    map[int]factevaluation.Result{1: factevaluation.ResultTrue},
			want:       conclusionverdict.VerdictConfirmed,
		},
		{
			name:       "all evaluations missing is unverifiable",
			supporting: []int{1, 2},
			want:       conclusionverdict.VerdictUnverifiable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, trace := deriveConclusionVerdict(tt.supporting, tt.assumptions, evalMap(tt.results))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, string(tt.want), trace["verdict"])
		})
	}
}

func TestDeriveConclusionVerdict_Trace(t *testing.T) {
	evals := evalMap(map[int]factevaluation.Result{
		1: factevaluation.ResultTrue,
		2: factevaluation.ResultFalse,
	})
	verdict, trace := deriveConclusionVerdict([]int{1}, []int{2}, evals)

	assert.Equal(t, conclusionverdict.VerdictRefuted, verdict)
	supporting, ok := trace["supporting_facts"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "true", supporting["1"])
	assumptions, ok := trace["assumption_facts"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "false", assumptions["2"])
}

func TestAggregateSolutionVerdict(t *testing.T) {
	row := func(v conclusionverdict.Verdict) *ent.ConclusionVerdict {
		return &ent.ConclusionVerdict{Verdict: v}
	}

	tests := []struct {
		name    string
		sources []int
		latest  map[int]*ent.ConclusionVerdict
		want    solutionassessment.Verdict
	}{
		{
			name:    "all confirmed",
			sources: []int{1, 2},
			latest: map[int]*ent.ConclusionVerdict{
				1: row(conclusionverdict.VerdictConfirmed),
				2: row(conclusionverdict.VerdictConfirmed),
			},
			want: solutionassessment.VerdictConfirmed,
		},
		{
			name:    "one refuted dominates",
			sources: []int{1, 2},
			latest: map[int]*ent.ConclusionVerdict{
				1: row(conclusionverdict.VerdictConfirmed),
				2: row(conclusionverdict.VerdictRefuted),
			},
			want: solutionassessment.VerdictRefuted,
		},
		{
			name:    "confirmed plus unsettled is partial",
			sources: []int{1, 2},
			latest: map[int]*ent.ConclusionVerdict{
				1: row(conclusionverdict.VerdictConfirmed),
			},
			want: solutionassessment.VerdictPartial,
		},
		{
			name:    "all unverifiable",
			sources: []int{1, 2},
			latest: map[int]*ent.ConclusionVerdict{
				1: row(conclusionverdict.VerdictUnverifiable),
				2: row(conclusionverdict.VerdictUnverifiable),
			},
			want: solutionassessment.VerdictUnverifiable,
		},
		{
			name:    "partial premises cap the rollup at partial",
			sources: []int{1, 2},
			latest: map[int]*ent.ConclusionVerdict{
				1: row(conclusionverdict.VerdictPartial),
				2: row(conclusionverdict.VerdictConfirmed),
			},
			want: solutionassessment.VerdictPartial,
		},
		{
			name:    "nothing settled stays pending",
			sources: []int{1, 2},
			latest:  map[int]*ent.ConclusionVerdict{},
			want:    solutionassessment.VerdictPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, aggregateSolutionVerdict(tt.sources, tt.latest))
		})
	}
}

func newDeriver(client *ent.Client) *VerdictDeriver {
	return NewVerdictDeriver(
		services.NewConclusionService(client),
		services.NewSolutionService(client),
		services.NewLogicService(client),
		services.NewFactService(client),
	)
}

func TestVerdictDeriver_SettlesRetrospectiveConclusion(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	author := seedAuthor(t, client.Client, "Macro Mike", "twitter", "mm01")
	topic := seedTopic(t, client.Client, "us-economy")
	post := seedPost(t, client.Client, postSeed{externalID: "9001", processed: true})
	f1 := seedFact(t, client.Client, post.ID, "CPI rose 3.2% YoY in July")
	f2 := seedFact(t, client.Client, post.ID, "the Fed held rates in July")
	c := seedConclusion(t, client.Client, topic.ID, author.ID, "inflation is cooling")
	seedInferenceLogic(t, client.Client, c.ID, post.ID, []int{f1.ID}, []int{f2.ID})

	recordResult(t, client.Client, f1.ID, "true")
	recordResult(t, client.Client, f2.ID, "true")

	deriver := newDeriver(client.Client)
	require.NoError(t, deriver.Run(ctx))

	verdicts, err := client.ConclusionVerdict.Query().
		Where(conclusionverdict.ConclusionIDEQ(c.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, verdicts, 1)
	assert.Equal(t, conclusionverdict.VerdictConfirmed, verdicts[0].Verdict)
	assert.Equal(t, "confirmed", verdicts[0].LogicTrace["verdict"])

	got, err := client.Conclusion.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, conclusion.StatusConfirmed, got.Status)

	// Nothing changed, so a second pass writes nothing.
	require.NoError(t, deriver.Run(ctx))
	n, err := client.ConclusionVerdict.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestVerdictDeriver_FalseAssumptionRefutes(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	author := seedAuthor(t, client.Client, "Macro Mike", "twitter", "mm01")
	topic := seedTopic(t, client.Client, "us-economy")
	post := seedPost(t, client.Client, postSeed{externalID: "9002", processed: true})
	f1 := seedFact(t, client.Client, post.ID, "retail sales fell 2% in June")
	f2 := seedFact(t, client.Client, post.ID, "consumer credit kept expanding")
	c := seedConclusion(t, client.Client, topic.ID, author.ID, "the consumer is rolling over")
	seedInferenceLogic(t, client.Client, c.ID, post.ID, []int{f1.ID}, []int{f2.ID})

	recordResult(t, client.Client, f1.ID, "true")
	recordResult(t, client.Client, f2.ID, "false")

	require.NoError(t, newDeriver(client.Client).Run(ctx))

	v, err := client.ConclusionVerdict.Query().
		Where(conclusionverdict.ConclusionIDEQ(c.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, conclusionverdict.VerdictRefuted, v.Verdict)

	got, err := client.Conclusion.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, conclusion.StatusRefuted, got.Status)
}

func TestVerdictDeriver_PredictiveWaitsForWindow(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	author := seedAuthor(t, client.Client, "Macro Mike", "twitter", "mm01")
	topic := seedTopic(t, client.Client, "us-economy")
	post := seedPost(t, client.Client, postSeed{externalID: "9003", processed: true})
	f := seedFact(t, client.Client, post.ID, "the 2s10s curve un-inverted in August")
	end := time.Now().Add(30 * 24 * time.Hour)
	c := seedPredictiveConclusion(t, client.Client, topic.ID, author.ID, "a recession starts within a year", &end)
	seedInferenceLogic(t, client.Client, c.ID, post.ID, []int{f.ID}, nil)

	recordResult(t, client.Client, f.ID, "true")

	require.NoError(t, newDeriver(client.Client).Run(ctx))

	n, err := client.ConclusionVerdict.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n, "prediction must not settle before its window closes")

	got, err := client.Conclusion.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, conclusion.StatusPending, got.Status)
}

func TestVerdictDeriver_PredictiveSettlesAfterWindow(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	author := seedAuthor(t, client.Client, "Macro Mike", "twitter", "mm01")
	topic := seedTopic(t, client.Client, "us-economy")
	post := seedPost(t, client.Client, postSeed{externalID: "9004", processed: true})
	f := seedFact(t, client.Client, post.ID, "the dollar index fell below 100")
	end := time.Now().Add(-time.Hour)
	c := seedPredictiveConclusion(t, client.Client, topic.ID, author.ID, "the dollar weakens through year end", &end)
	seedInferenceLogic(t, client.Client, c.ID, post.ID, []int{f.ID}, nil)

	recordResult(t, client.Client, f.ID, "true")

	require.NoError(t, newDeriver(client.Client).Run(ctx))

	v, err := client.ConclusionVerdict.Query().
		Where(conclusionverdict.ConclusionIDEQ(c.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, conclusionverdict.VerdictConfirmed, v.Verdict)
}

func TestVerdictDeriver_CorruptChainAbortsPass(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	author := seedAuthor(t, client.Client, "Macro Mike", "twitter", "mm01")
	topic := seedTopic(t, client.Client, "us-economy")
	post := seedPost(t, client.Client, postSeed{externalID: "9005", processed: true})
	c := seedConclusion(t, client.Client, topic.ID, author.ID, "housing is bottoming")
	sol := seedSolution(t, client.Client, author.ID, "buy homebuilders")

	// An inference chain must never point at a solution.
	_, err := client.Logic.Create().
		SetLogicType(logic.LogicTypeInference).
		SetConclusionID(c.ID).
		SetSolutionID(sol.ID).
		SetRawPostID(post.ID).
		Save(ctx)
	require.NoError(t, err)

	err = newDeriver(client.Client).Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "solution_id")
}

func TestVerdictDeriver_SolutionRollup(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	author := seedAuthor(t, client.Client, "Macro Mike", "twitter", "mm01")
	topic := seedTopic(t, client.Client, "us-economy")
	post := seedPost(t, client.Client, postSeed{externalID: "9006", processed: true})
	c1 := seedConclusion(t, client.Client, topic.ID, author.ID, "inflation is cooling")
	c2 := seedConclusion(t, client.Client, topic.ID, author.ID, "the Fed cuts next quarter")
	sol := seedSolution(t, client.Client, author.ID, "extend duration into the cuts")
	seedDerivationLogic(t, client.Client, sol.ID, post.ID, []int{c1.ID, c2.ID})

	conclusionService := services.NewConclusionService(client.Client)
	_, err := conclusionService.RecordVerdict(ctx, c1.ID, conclusionverdict.VerdictConfirmed, nil)
	require.NoError(t, err)
	_, err = conclusionService.RecordVerdict(ctx, c2.ID, conclusionverdict.VerdictConfirmed, nil)
	require.NoError(t, err)

	require.NoError(t, newDeriver(client.Client).Run(ctx))

	sa, err := client.SolutionAssessment.Query().
		Where(solutionassessment.SolutionIDEQ(sol.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, solutionassessment.VerdictConfirmed, sa.Verdict)
	require.NotNil(t, sa.EvidenceText)
	assert.Equal(t, "derived from 2 source-conclusion verdicts", *sa.EvidenceText)

	got, err := client.Solution.Get(ctx, sol.ID)
	require.NoError(t, err)
	assert.Equal(t, solution.StatusValidated, got.Status)
}

func TestVerdictDeriver_SolutionWithoutSourcesStaysPending(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	author := seedAuthor(t, client.Client, "Macro Mike", "twitter", "mm01")
	sol := seedSolution(t, client.Client, author.ID, "rotate into cash")

	deriver := newDeriver(client.Client)
	require.NoError(t, deriver.Run(ctx))

	sa, err := client.SolutionAssessment.Query().
		Where(solutionassessment.SolutionIDEQ(sol.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, solutionassessment.VerdictPending, sa.Verdict)

	got, err := client.Solution.Get(ctx, sol.ID)
	require.NoError(t, err)
	assert.Equal(t, solution.StatusPending, got.Status)

	// The pending row is written once, not per pass.
	require.NoError(t, deriver.Run(ctx))
	n, err := client.SolutionAssessment.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

package pipeline

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/credlens/pundit/ent"
	"github.com/credlens/pundit/ent/fact"
	"github.com/credlens/pundit/ent/factevaluation"
	"github.com/credlens/pundit/pkg/search"
	"github.com/credlens/pundit/pkg/services"
	testdb "github.com/credlens/pundit/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVerifier(client *ent.Client, model completionModel, searchClient *search.Client) *FactVerifier {
	return NewFactVerifier(services.NewFactService(client), model, searchClient, nil, 20)
}

func TestFactVerifier_RecordsEvaluation(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	post := seedPost(t, client.Client, postSeed{externalID: "fv-1"})
	f := seedFact(t, client.Client, post.ID, "US CPI rose 3.2% year over year in July")

	model := staticModel(`{
		"result": "true",
		"evidence_tier": 1,
		"confidence": "high",
		"evidence_summary": "BLS reported 3.2% YoY for July.",
		"authoritative_links": [
			{"org": "BLS", "url": "https://www.bls.gov/cpi/", "description": "official CPI release"}
		],
		"evaluator_notes": "checked the official series"
	}`)

	require.NoError(t, newVerifier(client.Client, model, nil).Run(ctx))

	evals, err := client.FactEvaluation.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, evals, 1)
	assert.Equal(t, factevaluation.ResultTrue, evals[0].Result)
	require.NotNil(t, evals[0].EvidenceTier)
	assert.Equal(t, 1, *evals[0].EvidenceTier)
	require.NotNil(t, evals[0].EvidenceText)
	assert.Equal(t, "BLS reported 3.2% YoY for July.", *evals[0].EvidenceText)
	require.NotNil(t, evals[0].EvaluatorNotes)
	assert.Equal(t, "[confidence=high] checked the official series", *evals[0].EvaluatorNotes)

	got, err := client.Fact.Get(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, fact.StatusVerifiedTrue, got.Status)
	assert.NotNil(t, got.VerifiedAt)
	require.NotNil(t, got.VerifiedSourceOrg)
	assert.Equal(t, "BLS", *got.VerifiedSourceOrg)
	require.NotNil(t, got.VerifiedSourceURL)
	assert.Equal(t, "https://www.bls.gov/cpi/", *got.VerifiedSourceURL)
	require.NotNil(t, got.VerifiedSourceData)
	assert.Contains(t, *got.VerifiedSourceData, "official CPI release")
}

func TestFactVerifier_UncertainLeavesPending(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	post := seedPost(t, client.Client, postSeed{externalID: "fv-2"})
	f := seedFact(t, client.Client, post.ID, "housing starts will be revised upward")

	verifier := newVerifier(client.Client, staticModel(`{"result": "uncertain", "evidence_summary": "conflicting coverage"}`), nil)
	require.NoError(t, verifier.Run(ctx))

	got, err := client.Fact.Get(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, fact.StatusPending, got.Status, "uncertain settles nothing")

	// Still pending, so the next pass picks it up again and appends a
	// second evaluation.
	require.NoError(t, verifier.Run(ctx))
	count, err := client.FactEvaluation.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestFactVerifier_TransportFailureLeavesNoRow(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	post := seedPost(t, client.Client, postSeed{externalID: "fv-3"})
	f := seedFact(t, client.Client, post.ID, "the yield curve inverted in March")

	model := modelFunc(func(system, user string) (string, error) {
		return "", errors.New("overloaded")
	})
	require.NoError(t, newVerifier(client.Client, model, nil).Run(ctx))

	count, err := client.FactEvaluation.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	got, err := client.Fact.Get(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, fact.StatusPending, got.Status)
}

func TestFactVerifier_InvalidResultBecomesUnavailable(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	post := seedPost(t, client.Client, postSeed{externalID: "fv-4"})
	f := seedFact(t, client.Client, post.ID, "nobody can know this")

	model := staticModel(`{"result": "maybe", "evidence_tier": 7}`)
	require.NoError(t, newVerifier(client.Client, model, nil).Run(ctx))

	evals, err := client.FactEvaluation.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, evals, 1)
	assert.Equal(t, factevaluation.ResultUnavailable, evals[0].Result)
	assert.Nil(t, evals[0].EvidenceTier, "out-of-range tier is dropped")

	got, err := client.Fact.Get(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, fact.StatusUnverifiable, got.Status)
}

func TestFactVerifier_SearchEvidenceReachesPrompt(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": [
			{"title": "BLS CPI report", "url": "https://www.bls.gov/cpi/", "content": "CPI rose 3.2 percent year over year.", "score": 0.98}
		]}`))
	}))
	defer server.Close()
	searchClient := search.NewClientWithBaseURL("tvly-test", server.URL, 5)

	post := seedPost(t, client.Client, postSeed{externalID: "fv-5"})
	seedFact(t, client.Client, post.ID, "US CPI rose 3.2% year over year in July")

	var captured string
	model := modelFunc(func(system, user string) (string, error) {
		captured = user
		return `{"result": "true", "evidence_tier": 2}`, nil
	})
	require.NoError(t, newVerifier(client.Client, model, searchClient).Run(ctx))

	assert.Contains(t, captured, "BLS CPI report")
	assert.Contains(t, captured, "https://www.bls.gov/cpi/")
}

func TestNormalizeResult(t *testing.T) {
	assert.Equal(t, "true", normalizeResult("TRUE"))
	assert.Equal(t, "true", normalizeResult("  true "))
	assert.Equal(t, "false", normalizeResult("False"))
	assert.Equal(t, "uncertain", normalizeResult("uncertain"))
	assert.Equal(t, "unavailable", normalizeResult("maybe"))
	assert.Equal(t, "unavailable", normalizeResult(""))
}

func TestBuildEvaluatorNotes(t *testing.T) {
	assert.Nil(t, buildEvaluatorNotes(nil, nil))
	assert.Nil(t, buildEvaluatorNotes(strPtr("  "), strPtr("")))

	got := buildEvaluatorNotes(strPtr("high"), nil)
	require.NotNil(t, got)
	assert.Equal(t, "[confidence=high]", *got)

	got = buildEvaluatorNotes(nil, strPtr("cross-checked two releases"))
	require.NotNil(t, got)
	assert.Equal(t, "cross-checked two releases", *got)

	got = buildEvaluatorNotes(strPtr("medium"), strPtr("single source only"))
	require.NotNil(t, got)
	assert.Equal(t, "[confidence=medium] single source only", *got)

	if !strings.HasPrefix(*got, "[confidence=") {
		t.Fatalf("confidence marker must lead the notes, got %q", *got)
	}
}

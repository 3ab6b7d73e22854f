package services

import (
	"context"
	"testing"
	"time"

	"github.com/credlens/pundit/ent/fact"
	"github.com/credlens/pundit/ent/factevaluation"
	"github.com/credlens/pundit/pkg/models"
	testdb "github.com/credlens/pundit/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactService_PendingVerifiableFacts(t *testing.T) {
	client := testdb.NewTestClient(t)
	factService := NewFactService(client.Client)
	ctx := context.Background()
	now := time.Now()

	post := seedPost(t, client.Client, "4001")

	eligible := seedFact(t, client.Client, post.ID, "US CPI rose 3.2% YoY in July")

	// Not verifiable: never eligible.
	_, err := client.Fact.Create().
		SetClaim("the market feels frothy").
		SetRawPostID(post.ID).
		Save(ctx)
	require.NoError(t, err)

	// Window not open yet.
	_, err = client.Fact.Create().
		SetClaim("Q3 GDP will print above 2%").
		SetIsVerifiable(true).
		SetValidityStart(now.Add(48 * time.Hour)).
		SetRawPostID(post.ID).
		Save(ctx)
	require.NoError(t, err)

	// Window already closed.
	_, err = client.Fact.Create().
		SetClaim("unemployment was under 4% last March").
		SetIsVerifiable(true).
		SetValidityEnd(now.Add(-48 * time.Hour)).
		SetRawPostID(post.ID).
		Save(ctx)
	require.NoError(t, err)

	// Already settled.
	settled := seedFact(t, client.Client, post.ID, "the Fed held rates in June")
	_, err = client.Fact.UpdateOneID(settled.ID).SetStatus(fact.StatusVerifiedTrue).Save(ctx)
	require.NoError(t, err)

	facts, err := factService.PendingVerifiableFacts(ctx, now, 0)
	require.NoError(t, err)
	require.Len(t, facts, 1)
	assert.Equal(t, eligible.ID, facts[0].ID)

	t.Run("open-ended windows are inside", func(t *testing.T) {
		open := seedFact(t, client.Client, post.ID, "gold closed above $2400 yesterday")
		facts, err := factService.PendingVerifiableFacts(ctx, now, 0)
		require.NoError(t, err)
		ids := make([]int, 0, len(facts))
		for _, f := range facts {
			ids = append(ids, f.ID)
		}
		assert.Contains(t, ids, open.ID)
	})

	t.Run("respects batch limit", func(t *testing.T) {
		facts, err := factService.PendingVerifiableFacts(ctx, now, 1)
		require.NoError(t, err)
		assert.Len(t, facts, 1)
	})
}

func TestFactService_RecordFactEvaluation(t *testing.T) {
	client := testdb.NewTestClient(t)
	factService := NewFactService(client.Client)
	ctx := context.Background()

	post := seedPost(t, client.Client, "4101")

	t.Run("true result settles the fact with provenance", func(t *testing.T) {
		f := seedFact(t, client.Client, post.ID, "CPI fact")

		eval, err := factService.RecordFactEvaluation(ctx, f.ID, models.FactVerification{
			Result:       "true",
			EvidenceText: strPtr("BLS July CPI release: 3.2% YoY"),
			EvidenceTier: intPtr(1),
			DataPeriod:   strPtr("2024-07"),
			SourceOrg:    strPtr("BLS"),
			SourceURL:    strPtr("https://www.bls.gov/cpi/"),
			SourceData:   strPtr(`[{"org":"BLS","url":"https://www.bls.gov/cpi/"}]`),
		})
		require.NoError(t, err)
		assert.Equal(t, factevaluation.ResultTrue, eval.Result)

		reloaded, err := factService.GetFact(ctx, f.ID)
		require.NoError(t, err)
		assert.Equal(t, fact.StatusVerifiedTrue, reloaded.Status)
		assert.NotNil(t, reloaded.VerifiedAt)
		require.NotNil(t, reloaded.VerifiedSourceOrg)
		assert.Equal(t, "BLS", *reloaded.VerifiedSourceOrg)
		require.NotNil(t, reloaded.VerificationEvidence)
		assert.Equal(t, "BLS July CPI release: 3.2% YoY", *reloaded.VerificationEvidence)
	})

	t.Run("false result settles verified_false", func(t *testing.T) {
		f := seedFact(t, client.Client, post.ID, "wrong fact")

		_, err := factService.RecordFactEvaluation(ctx, f.ID, models.FactVerification{Result: "false"})
		require.NoError(t, err)

		reloaded, err := factService.GetFact(ctx, f.ID)
		require.NoError(t, err)
		assert.Equal(t, fact.StatusVerifiedFalse, reloaded.Status)
	})

	t.Run("unavailable result settles unverifiable", func(t *testing.T) {
		f := seedFact(t, client.Client, post.ID, "no data fact")

		_, err := factService.RecordFactEvaluation(ctx, f.ID, models.FactVerification{Result: "unavailable"})
		require.NoError(t, err)

		reloaded, err := factService.GetFact(ctx, f.ID)
		require.NoError(t, err)
		assert.Equal(t, fact.StatusUnverifiable, reloaded.Status)
	})

	t.Run("uncertain result keeps the fact pending", func(t *testing.T) {
		f := seedFact(t, client.Client, post.ID, "ambiguous fact")

		_, err := factService.RecordFactEvaluation(ctx, f.ID, models.FactVerification{
			Result:         "uncertain",
			EvaluatorNotes: strPtr("[confidence=0.4] | conflicting secondary sources"),
		})
		require.NoError(t, err)

		reloaded, err := factService.GetFact(ctx, f.ID)
		require.NoError(t, err)
		assert.Equal(t, fact.StatusPending, reloaded.Status)
		assert.NotNil(t, reloaded.VerifiedAt)

		evals, err := factService.EvaluationsByFactIDs(ctx, []int{f.ID})
		require.NoError(t, err)
		assert.Len(t, evals, 1)
	})

	t.Run("rejects unknown result", func(t *testing.T) {
		f := seedFact(t, client.Client, post.ID, "any fact")
		_, err := factService.RecordFactEvaluation(ctx, f.ID, models.FactVerification{Result: "maybe"})
		assert.True(t, IsValidationError(err))
	})
}

func TestFactService_LatestEvaluations(t *testing.T) {
	client := testdb.NewTestClient(t)
	factService := NewFactService(client.Client)
	ctx := context.Background()

	post := seedPost(t, client.Client, "4201")
	f := seedFact(t, client.Client, post.ID, "retried fact")
	never := seedFact(t, client.Client, post.ID, "untouched fact")

	_, err := client.FactEvaluation.Create().
		SetFactID(f.ID).
		SetResult(factevaluation.ResultUncertain).
		SetEvaluatedAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	latest, err := client.FactEvaluation.Create().
		SetFactID(f.ID).
		SetResult(factevaluation.ResultTrue).
		SetEvaluatedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	evals, err := factService.LatestEvaluations(ctx, []int{f.ID, never.ID})
	require.NoError(t, err)
	require.Contains(t, evals, f.ID)
	assert.Equal(t, latest.ID, evals[f.ID].ID)
	assert.Equal(t, factevaluation.ResultTrue, evals[f.ID].Result)
	assert.NotContains(t, evals, never.ID)
}

func TestFactService_FactsByCanonicalClaim(t *testing.T) {
	client := testdb.NewTestClient(t)
	factService := NewFactService(client.Client)
	ctx := context.Background()

	mine := seedPost(t, client.Client, "4301")
	other := seedPost(t, client.Client, "4302")

	seedFact(t, client.Client, mine.ID, "gold hit an all-time high in 2024")
	match := seedFact(t, client.Client, other.ID, "gold hit an all-time high in 2024")
	seedFact(t, client.Client, other.ID, "a different claim")

	facts, err := factService.FactsByCanonicalClaim(ctx, "gold hit an all-time high in 2024", mine.ID)
	require.NoError(t, err)
	require.Len(t, facts, 1)
	assert.Equal(t, match.ID, facts[0].ID)
}

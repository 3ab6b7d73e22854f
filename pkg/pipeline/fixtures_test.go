package pipeline

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/credlens/pundit/ent"
	"github.com/credlens/pundit/ent/conclusion"
	"github.com/credlens/pundit/ent/logic"
	"github.com/credlens/pundit/pkg/llm"
	"github.com/credlens/pundit/pkg/models"
	"github.com/credlens/pundit/pkg/services"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func float64Ptr(f float64) *float64 { return &f }

func timePtr(t time.Time) *time.Time { return &t }

// modelFunc adapts a function to the completion interface so tests can
// script model answers per call.
type modelFunc func(system, user string) (string, error)

func (f modelFunc) Complete(_ context.Context, system, user string, _ int) (*llm.Result, error) {
	content, err := f(system, user)
	if err != nil {
		return nil, err
	}
	return &llm.Result{Content: content, Model: "stub"}, nil
}

// staticModel answers every call with the same content.
func staticModel(content string) modelFunc {
	return func(string, string) (string, error) { return content, nil }
}

// seedAuthor inserts an author with a platform identity.
func seedAuthor(t *testing.T, client *ent.Client, name, platform, platformID string) *ent.Author {
	t.Helper()
	a, err := client.Author.Create().
		SetName(name).
		SetPlatform(platform).
		SetPlatformID(platformID).
		Save(context.Background())
	require.NoError(t, err)
	return a
}

// seedTopic inserts a topic by name.
func seedTopic(t *testing.T, client *ent.Client, name string) *ent.Topic {
	t.Helper()
	topic, err := client.Topic.Create().
		SetName(name).
		Save(context.Background())
	require.NoError(t, err)
	return topic
}

// postSeed describes one collected post. Zero fields get sane defaults.
type postSeed struct {
	externalID string
	authorName string
	platformID *string
	content    string
	postedAt   time.Time
	processed  bool
}

func seedPost(t *testing.T, client *ent.Client, seed postSeed) *ent.RawPost {
	t.Helper()
	if seed.authorName == "" {
		seed.authorName = "Test Author"
	}
	if seed.content == "" {
		seed.content = "test post " + seed.externalID
	}
	if seed.postedAt.IsZero() {
		seed.postedAt = time.Now().Add(-24 * time.Hour)
	}
	p, err := client.RawPost.Create().
		SetSource("twitter").
		SetExternalID(seed.externalID).
		SetContent(seed.content).
		SetAuthorName(seed.authorName).
		SetNillableAuthorPlatformID(seed.platformID).
		SetURL(fmt.Sprintf("https://x.com/test/status/%s", seed.externalID)).
		SetPostedAt(seed.postedAt).
		SetIsProcessed(seed.processed).
		Save(context.Background())
	require.NoError(t, err)
	return p
}

// seedFact inserts a verifiable pending fact attributed to a post.
func seedFact(t *testing.T, client *ent.Client, postID int, claim string) *ent.Fact {
	t.Helper()
	f, err := client.Fact.Create().
		SetClaim(claim).
		SetCanonicalClaim(claim).
		SetIsVerifiable(true).
		SetRawPostID(postID).
		Save(context.Background())
	require.NoError(t, err)
	return f
}

// seedConclusion inserts a retrospective pending conclusion.
func seedConclusion(t *testing.T, client *ent.Client, topicID, authorID int, claim string) *ent.Conclusion {
	t.Helper()
	c, err := client.Conclusion.Create().
		SetTopicID(topicID).
		SetAuthorID(authorID).
		SetClaim(claim).
		SetCanonicalClaim(claim).
		SetConclusionType(conclusion.ConclusionTypeRetrospective).
		SetSourceURL("https://x.com/test/status/1").
		SetSourcePlatform("twitter").
		SetPostedAt(time.Now().Add(-24 * time.Hour)).
		Save(context.Background())
	require.NoError(t, err)
	return c
}

// seedPredictiveConclusion inserts a predictive pending conclusion with an
// optional monitoring window end.
func seedPredictiveConclusion(t *testing.T, client *ent.Client, topicID, authorID int, claim string, monitoringEnd *time.Time) *ent.Conclusion {
	t.Helper()
	create := client.Conclusion.Create().
		SetTopicID(topicID).
		SetAuthorID(authorID).
		SetClaim(claim).
		SetCanonicalClaim(claim).
		SetConclusionType(conclusion.ConclusionTypePredictive).
		SetSourceURL("https://x.com/test/status/1").
		SetSourcePlatform("twitter").
		SetPostedAt(time.Now().Add(-24 * time.Hour))
	if monitoringEnd != nil {
		create = create.
			SetMonitoringSourceOrg("FRED").
			SetMonitoringStart(time.Now().Add(-48 * time.Hour)).
			SetMonitoringEnd(*monitoringEnd)
	}
	c, err := create.Save(context.Background())
	require.NoError(t, err)
	return c
}

// seedSolution inserts a pending solution.
func seedSolution(t *testing.T, client *ent.Client, authorID int, claim string) *ent.Solution {
	t.Helper()
	s, err := client.Solution.Create().
		SetAuthorID(authorID).
		SetClaim(claim).
		Save(context.Background())
	require.NoError(t, err)
	return s
}

// seedInferenceLogic inserts an inference chain behind a conclusion.
func seedInferenceLogic(t *testing.T, client *ent.Client, conclusionID, postID int, supporting, assumptions []int) *ent.Logic {
	t.Helper()
	l, err := client.Logic.Create().
		SetLogicType(logic.LogicTypeInference).
		SetConclusionID(conclusionID).
		SetRawPostID(postID).
		SetSupportingFactIds(supporting).
		SetAssumptionFactIds(assumptions).
		Save(context.Background())
	require.NoError(t, err)
	return l
}

// seedDerivationLogic inserts a derivation chain behind a solution.
func seedDerivationLogic(t *testing.T, client *ent.Client, solutionID, postID int, sourceConclusions []int) *ent.Logic {
	t.Helper()
	l, err := client.Logic.Create().
		SetLogicType(logic.LogicTypeDerivation).
		SetSolutionID(solutionID).
		SetRawPostID(postID).
		SetSourceConclusionIds(sourceConclusions).
		Save(context.Background())
	require.NoError(t, err)
	return l
}

// recordResult settles a fact through the service so status stays in sync.
func recordResult(t *testing.T, client *ent.Client, factID int, result string) {
	t.Helper()
	_, err := services.NewFactService(client).RecordFactEvaluation(context.Background(), factID, models.FactVerification{Result: result})
	require.NoError(t, err)
}

// assessChain marks a chain graded so downstream operators see it.
func assessChain(t *testing.T, client *ent.Client, logicID int, completeness, summary string) {
	t.Helper()
	c := logic.LogicCompleteness(completeness)
	err := services.NewLogicService(client).SaveAssessment(context.Background(), logicID, &c, nil, strPtr(summary), time.Now())
	require.NoError(t, err)
}

package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/credlens/pundit/ent"
	"github.com/credlens/pundit/ent/conclusion"
	"github.com/credlens/pundit/ent/logic"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func float64Ptr(f float64) *float64 { return &f }

func timePtr(t time.Time) *time.Time { return &t }

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

// seedPost inserts a collected post with sane defaults.
func seedPost(t *testing.T, client *ent.Client, externalID string) *ent.RawPost {
	t.Helper()
	p, err := client.RawPost.Create().
		SetSource("twitter").
		SetExternalID(externalID).
		SetContent("test post " + externalID).
		SetAuthorName("Test Author").
		SetURL(fmt.Sprintf("https://x.com/test/status/%s", externalID)).
		SetPostedAt(time.Now().Add(-24 * time.Hour)).
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

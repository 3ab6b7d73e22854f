package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildAuthorProfileUserMessage_WithSearch(t *testing.T) {
	in := ProfileInput{Name: "Ray Dalio", Platform: "twitter", Description: "Founder of Bridgewater"}
	msg := BuildAuthorProfileUserMessage(in, "[source 1] Bridgewater founder profile")

	assert.Contains(t, msg, "Name: Ray Dalio")
	assert.Contains(t, msg, "Platform: twitter")
	assert.Contains(t, msg, "Platform bio: Founder of Bridgewater")
	assert.Contains(t, msg, "## Web search results")
	assert.Contains(t, msg, "[source 1] Bridgewater founder profile")
	assert.Contains(t, msg, `"credibility_tier"`)
	assert.NotContains(t, msg, "training knowledge")
}

func TestBuildAuthorProfileUserMessage_NoSearch(t *testing.T) {
	in := ProfileInput{Name: "someone-obscure", Platform: "weibo"}
	msg := BuildAuthorProfileUserMessage(in, "")

	assert.Contains(t, msg, "Platform bio: (no platform bio)")
	assert.NotContains(t, msg, "## Web search results")
	assert.Contains(t, msg, "training knowledge")
	assert.Contains(t, msg, "credibility_tier=5")
}

func TestAuthorProfileSystemDefinesTiers(t *testing.T) {
	assert.Contains(t, AuthorProfileSystem, "1 = top authority")
	assert.Contains(t, AuthorProfileSystem, "5 = unknown")
	assert.Contains(t, AuthorProfileSystem, "expertise_areas")
	assert.Contains(t, AuthorProfileSystem, "geopolitical risk analysis")
}

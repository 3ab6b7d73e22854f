package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPostQualityUserMessage(t *testing.T) {
	msg := BuildPostQualityUserMessage("Gold rose 30% because real rates fell. Data: FRED DFII10 fell 80bp.")

	assert.Contains(t, msg, "## Content under assessment")
	assert.Contains(t, msg, "FRED DFII10 fell 80bp")
	assert.Contains(t, msg, `"effectiveness_score"`)
	assert.Contains(t, msg, `"noise_ratio"`)
	assert.Contains(t, msg, `"noise_types"`)
	assert.NotContains(t, msg, "(truncated)")
}

func TestBuildPostQualityUserMessage_TruncatesLongContent(t *testing.T) {
	long := strings.Repeat("x", 5000)
	msg := BuildPostQualityUserMessage(long)

	assert.Contains(t, msg, "...(truncated)")
	assert.NotContains(t, msg, strings.Repeat("x", 3001))
}

func TestPostQualitySystemDefinesNoiseTypes(t *testing.T) {
	assert.Contains(t, PostQualitySystem, "emotional_rhetoric")
	assert.Contains(t, PostQualitySystem, "entertainment")
	assert.Contains(t, PostQualitySystem, "filler")
	assert.Contains(t, PostQualitySystem, "not noise")
}

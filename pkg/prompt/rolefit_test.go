package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierLabel(t *testing.T) {
	tests := []struct {
		tier int
		want string
	}{
		{1, "top authority"},
		{2, "industry expert"},
		{3, "known commentator"},
		{4, "general media/KOL"},
		{5, "unknown"},
		{0, "unknown"},
		{9, "unknown"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, TierLabel(tc.tier), "tier %d", tc.tier)
	}
}

func TestBuildRoleFitUserMessage(t *testing.T) {
	in := RoleFitInput{
		Name:            "Ray Dalio",
		Role:            "Bridgewater founder",
		ExpertiseAreas:  "global macro, debt cycles",
		KnownBiases:     "long-term gold bull",
		CredibilityTier: 2,
		ProfileNote:     "macro investor known for cycle research",
		ClaimType:       "conclusion (predictive)",
		Claim:           "the dollar will lose much of its value within ten years",
	}
	msg := BuildRoleFitUserMessage(in)

	assert.Contains(t, msg, "Name: Ray Dalio")
	assert.Contains(t, msg, "Role: Bridgewater founder")
	assert.Contains(t, msg, "Credibility: Tier 2 (industry expert)")
	assert.Contains(t, msg, "Kind: conclusion (predictive)")
	assert.Contains(t, msg, "Core statement: the dollar will lose much of its value within ten years")
	assert.Contains(t, msg, "Default to appropriate")
	assert.Contains(t, msg, `"role_fit"`)
}

func TestBuildRoleFitUserMessage_UnknownProfile(t *testing.T) {
	msg := BuildRoleFitUserMessage(RoleFitInput{Name: "anon", ClaimType: "action recommendation", Claim: "buy gold"})

	assert.Contains(t, msg, "Role: unknown")
	assert.Contains(t, msg, "Expertise: unknown")
	assert.Contains(t, msg, "Known biases: none")
	assert.Contains(t, msg, "Sketch: none")
	assert.Contains(t, msg, "Credibility: Tier 5 (unknown)")
}

func TestRoleFitSystemIsLenient(t *testing.T) {
	assert.Contains(t, RoleFitSystem, "Adjacent fields doctrine")
	assert.Contains(t, RoleFitSystem, "appropriate")
	assert.Contains(t, RoleFitSystem, "questionable requires both")
	assert.Contains(t, RoleFitSystem, "keep it rare")
}

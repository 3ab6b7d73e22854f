package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildFactCheckUserMessage_WithSearch(t *testing.T) {
	in := FactCheckInput{
		Claim:                "US CPI rose 3.2% year over year in February 2025",
		VerifiableExpression: "BLS CPI-U YoY for 2025-02 equals 3.2%",
		ValidityStart:        "2025-02",
		ValidityEnd:          "2025-02",
	}
	msg := BuildFactCheckUserMessage("2025-04-01", in, "", "[source 1] BLS release\n  URL: https://bls.gov/cpi\n  Summary: CPI rose 3.2 percent")

	assert.Contains(t, msg, "Today's date: 2025-04-01")
	assert.Contains(t, msg, "## Web search results")
	assert.Contains(t, msg, "[source 1] BLS release")
	assert.NotContains(t, msg, "## Authoritative data")
	assert.Contains(t, msg, "Statement: US CPI rose 3.2% year over year in February 2025")
	assert.Contains(t, msg, "Verifiable expression: BLS CPI-U YoY for 2025-02 equals 3.2%")
	assert.Contains(t, msg, "Period the statement refers to: 2025-02 to 2025-02")
	assert.Contains(t, msg, "result must not be unavailable")
	assert.Contains(t, msg, `"evidence_tier"`)
	assert.Contains(t, msg, `"authoritative_links"`)
}

func TestBuildFactCheckUserMessage_WithAuthoritativeData(t *testing.T) {
	in := FactCheckInput{Claim: "US unemployment was 3.7% in January 2024"}
	msg := BuildFactCheckUserMessage("2025-04-01", in, "FRED series UNRATE\n2024-01: 3.700", "")

	assert.Contains(t, msg, "## Authoritative data")
	assert.Contains(t, msg, "FRED series UNRATE")
	assert.Contains(t, msg, "Tier 1 evidence")
	assert.NotContains(t, msg, "## Web search results")
	assert.Contains(t, msg, "result must not be unavailable")
}

func TestBuildFactCheckUserMessage_NoEvidence(t *testing.T) {
	in := FactCheckInput{Claim: "Weimar Germany suffered hyperinflation in 1923"}
	msg := BuildFactCheckUserMessage("2025-04-01", in, "", "")

	assert.NotContains(t, msg, "## Web search results")
	assert.Contains(t, msg, "Verifiable expression: (not provided)")
	assert.Contains(t, msg, "Period the statement refers to: unbounded to unbounded")
	assert.Contains(t, msg, `never refuse it as a "future event"`)
	assert.Contains(t, msg, "Provide 1-3 real authoritative links")
	assert.NotContains(t, msg, "result must not be unavailable")
}

func TestBuildFactCheckUserMessage_EmbedsGuides(t *testing.T) {
	msg := BuildFactCheckUserMessage("2025-04-01", FactCheckInput{Claim: "x"}, "", "")

	assert.Contains(t, msg, "## Semantic expansion")
	assert.Contains(t, msg, "The ten great powers circa 1900")
	assert.Contains(t, msg, "## Evidence tiers")
	assert.Contains(t, msg, "Tier 1")
	assert.Contains(t, msg, "record the lowest tier")
}

func TestFactCheckSystemRanksAuthorities(t *testing.T) {
	assert.Contains(t, FactCheckSystem, "federalreserve.gov")
	assert.Contains(t, FactCheckSystem, "imf.org")
	assert.Contains(t, FactCheckSystem, "SEC EDGAR")
	assert.Contains(t, FactCheckSystem, "reuters.com")
	assert.Contains(t, FactCheckSystem, "valid JSON")
}

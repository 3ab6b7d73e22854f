package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildConclusionMonitorUserMessage(t *testing.T) {
	msg := BuildConclusionMonitorUserMessage("the dollar loses reserve status within a decade", "10 years", "2025-03-01")

	assert.Contains(t, msg, "Core statement: the dollar loses reserve status within a decade")
	assert.Contains(t, msg, "Stated horizon: 10 years")
	assert.Contains(t, msg, "Published: 2025-03-01")
	assert.Contains(t, msg, "3-5 years")
	assert.Contains(t, msg, `"monitoring_source_org"`)
	assert.Contains(t, msg, `"monitoring_start"`)
	assert.Contains(t, msg, "not verifiable against authoritative data")
}

func TestBuildConclusionMonitorUserMessage_Placeholders(t *testing.T) {
	msg := BuildConclusionMonitorUserMessage("claim", "", "")

	assert.Contains(t, msg, "Stated horizon: (not specified)")
	assert.Contains(t, msg, "Published: unknown")
}

func TestBuildSolutionSimulationUserMessage(t *testing.T) {
	in := SolutionInput{
		Claim:           "shift 10% of the portfolio into gold",
		ActionType:      "buy",
		ActionTarget:    "gold ETF",
		ActionRationale: "fiat debasement thesis",
	}
	conclusions := []ConclusionLine{
		{Type: "retrospective", Claim: "money printing has debased the dollar"},
		{Type: "predictive", Claim: "debasement continues through 2030"},
	}

	msg := BuildSolutionSimulationUserMessage(in, conclusions)

	assert.Contains(t, msg, "Recommendation: shift 10% of the portfolio into gold")
	assert.Contains(t, msg, "Action type: buy")
	assert.Contains(t, msg, "Target: gold ETF")
	assert.Contains(t, msg, "Rationale: fiat debasement thesis")
	assert.Contains(t, msg, "- [retrospective] money printing has debased the dollar")
	assert.Contains(t, msg, "- [predictive] debasement continues through 2030")
	assert.Contains(t, msg, "Phase A")
	assert.Contains(t, msg, "Phase B")
	assert.Contains(t, msg, `"simulated_action_note"`)
}

func TestBuildSolutionSimulationUserMessage_Placeholders(t *testing.T) {
	msg := BuildSolutionSimulationUserMessage(SolutionInput{Claim: "hedge"}, nil)

	assert.Contains(t, msg, "Action type: (not specified)")
	assert.Contains(t, msg, "Target: (not specified)")
	assert.Contains(t, msg, "Rationale: (not stated)")
	assert.Contains(t, msg, "(no linked conclusions found)")
}

func TestMonitorSystemsRejectSoftSources(t *testing.T) {
	assert.Contains(t, ConclusionMonitorSystem, "Not acceptable: media commentary")
	assert.Contains(t, SolutionSimulationSystem, "Not acceptable: media commentary")
}

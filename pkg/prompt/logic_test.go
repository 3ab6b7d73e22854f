package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFactEvidence(t *testing.T) {
	facts := []FactEvidence{
		{
			ID:                   12,
			Status:               "true",
			Claim:                "US debt passed $34T",
			VerifiableExpression: "Treasury total public debt outstanding > $34T in 2024",
			SourceOrg:            "U.S. Treasury",
		},
		{ID: 13, Claim: "inflation is sticky"},
		{ID: 14, Missing: true},
	}

	out := FormatFactEvidence(facts)

	assert.Contains(t, out, "[Fact #12] verification=true")
	assert.Contains(t, out, "Statement: US debt passed $34T")
	assert.Contains(t, out, "Verifiable expression: Treasury total public debt outstanding > $34T in 2024")
	assert.Contains(t, out, "Checked against: U.S. Treasury")
	assert.Contains(t, out, "[Fact #13] verification=unverified")
	assert.Contains(t, out, "[Fact #14] not found")
}

func TestFormatFactEvidence_Empty(t *testing.T) {
	assert.Equal(t, "(none)", FormatFactEvidence(nil))
}

func TestFormatFactEvidence_OmitsEmptyOptionalLines(t *testing.T) {
	out := FormatFactEvidence([]FactEvidence{{ID: 1, Status: "false", Claim: "claim only"}})
	assert.NotContains(t, out, "Verifiable expression")
	assert.NotContains(t, out, "Checked against")
}

func TestBuildLogicEvaluationUserMessage(t *testing.T) {
	supporting := []FactEvidence{{ID: 1, Status: "true", Claim: "rates were cut"}}
	assumptions := []FactEvidence{{ID: 2, Claim: "QE resumes in 2026"}}

	msg := BuildLogicEvaluationUserMessage("conclusion", "the dollar weakens through 2026", supporting, assumptions)

	assert.Contains(t, msg, "Type: conclusion")
	assert.Contains(t, msg, "Core statement: the dollar weakens through 2026")
	assert.Contains(t, msg, "## Supporting facts (known evidence)")
	assert.Contains(t, msg, "rates were cut")
	assert.Contains(t, msg, "## Assumptions (unverified premises)")
	assert.Contains(t, msg, "QE resumes in 2026")
	assert.Contains(t, msg, `"logic_completeness"`)
	assert.Contains(t, msg, "complete = the chain")
	assert.Contains(t, msg, "invalid = an outright fallacy")
}

func TestBuildLogicEvaluationUserMessage_NoFacts(t *testing.T) {
	msg := BuildLogicEvaluationUserMessage("solution", "buy gold", nil, nil)
	assert.Contains(t, msg, "(none)")
}

func TestFormatLogicTargetLabel(t *testing.T) {
	label := FormatLogicTargetLabel("conclusion", 3, "short claim")
	assert.Equal(t, `conclusion #3: "short claim"`, label)
}

func TestFormatLogicTargetLabel_TruncatesLongClaims(t *testing.T) {
	long := strings.Repeat("a", 60)
	label := FormatLogicTargetLabel("solution", 7, long)

	assert.Contains(t, label, "solution #7:")
	assert.Contains(t, label, "…")
	assert.NotContains(t, label, strings.Repeat("a", 41))
}

func TestBuildLogicRelationUserMessage(t *testing.T) {
	logics := []LogicSummary{
		{ID: 1, TargetLabel: `conclusion #10: "dollar rotates anchors"`, Summary: "history shows anchor swaps extend hegemony", Completeness: "partial"},
		{ID: 2, TargetLabel: `conclusion #11: "US anchors the dollar to compute"`, Summary: "", Completeness: ""},
	}

	msg := BuildLogicRelationUserMessage(logics)

	assert.Contains(t, msg, "[Logic #1]")
	assert.Contains(t, msg, "history shows anchor swaps extend hegemony")
	assert.Contains(t, msg, "completeness: partial")
	assert.Contains(t, msg, "[Logic #2]")
	assert.Contains(t, msg, "summary: (not assessed)")
	assert.Contains(t, msg, "completeness: unknown")
	assert.Contains(t, msg, `"relations"`)
	assert.Contains(t, msg, `{"relations": []}`)
}

func TestLogicRelationSystemConstraints(t *testing.T) {
	assert.Contains(t, LogicRelationSystem, "supports")
	assert.Contains(t, LogicRelationSystem, "contextualizes")
	assert.Contains(t, LogicRelationSystem, "contradicts")
	assert.Contains(t, LogicRelationSystem, "topical similarity")
}

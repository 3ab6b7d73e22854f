package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credlens/pundit/pkg/config"
	"github.com/credlens/pundit/pkg/models"
)

func TestForVersion(t *testing.T) {
	assert.Equal(t, config.PromptVersionBasic, ForVersion(config.PromptVersionBasic).Version())
	assert.Equal(t, config.PromptVersionCoT, ForVersion(config.PromptVersionCoT).Version())
	assert.Equal(t, config.PromptVersionAdversarial, ForVersion(config.PromptVersionAdversarial).Version())
}

func TestForVersion_UnknownFallsBackToBasic(t *testing.T) {
	p := ForVersion(config.PromptVersion("v9_experimental"))
	assert.Equal(t, config.PromptVersionBasic, p.Version())
}

func TestAllVersionsShareOutputContract(t *testing.T) {
	versions := []config.PromptVersion{
		config.PromptVersionBasic,
		config.PromptVersionCoT,
		config.PromptVersionAdversarial,
	}
	for _, v := range versions {
		p := ForVersion(v)
		msg := p.UserMessage("The dollar will fall.", "twitter", "ray")

		assert.Contains(t, msg, "```json", "version %s", v)
		assert.Contains(t, msg, `"is_relevant_content"`, "version %s", v)
		assert.Contains(t, msg, `"conclusion_type"`, "version %s", v)
		assert.Contains(t, msg, `"supporting_fact_indices"`, "version %s", v)
		assert.Contains(t, msg, `"source_conclusion_indices"`, "version %s", v)
		assert.Contains(t, msg, `"canonical_claim"`, "version %s", v)
	}
}

func TestBasicUserMessage(t *testing.T) {
	p := ForVersion(config.PromptVersionBasic)
	msg := p.UserMessage("Gold is up 30% this year, buy gold.", "weibo", "cashflow-king")

	assert.Contains(t, msg, "from weibo (author: cashflow-king)")
	assert.Contains(t, msg, "---\nGold is up 30% this year, buy gold.\n---")
	for _, step := range []string{"Step A", "Step B", "Step C", "Step D", "Step E"} {
		assert.Contains(t, msg, step)
	}
}

func TestBasicSystemCoversFourKinds(t *testing.T) {
	system := ForVersion(config.PromptVersionBasic).System()

	assert.Contains(t, system, "### Fact")
	assert.Contains(t, system, "### Conclusion")
	assert.Contains(t, system, "### Solution")
	assert.Contains(t, system, "### Logic")
	assert.Contains(t, system, "retrospective")
	assert.Contains(t, system, "predictive")
	assert.Contains(t, system, "buy / sell / hold / short / diversify / hedge / reduce")
	assert.Contains(t, system, "Every conclusion must have one inference Logic")
}

func TestBasicSystemMentionsPreviewMarker(t *testing.T) {
	system := ForVersion(config.PromptVersionBasic).System()
	assert.Contains(t, system, models.ArticlePreviewMarker)
}

func TestCoTUserMessageHasAnalysisQuestions(t *testing.T) {
	p := ForVersion(config.PromptVersionCoT)
	msg := p.UserMessage("content", "youtube", "anon")

	for _, q := range []string{"Q1", "Q2", "Q3", "Q4", "Q5"} {
		assert.Contains(t, msg, q)
	}
	// The questions must come before the output contract.
	require.Contains(t, msg, "Q5. Relevance")
	assert.Less(t, strings.Index(msg, "Q5. Relevance"), strings.Index(msg, "```json"))
}

func TestAdversarialUserMessageHasThreeRounds(t *testing.T) {
	p := ForVersion(config.PromptVersionAdversarial)
	msg := p.UserMessage("content", "twitter", "anon")

	assert.Contains(t, msg, "Round 1")
	assert.Contains(t, msg, "Round 2")
	assert.Contains(t, msg, "Round 3")
	assert.Contains(t, msg, "misclassify")
}

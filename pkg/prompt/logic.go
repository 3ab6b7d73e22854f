package prompt

import (
	"fmt"
	"strings"
)

// FactEvidence is one fact line in the logic evaluator prompt, carrying the
// fact's latest verification state.
type FactEvidence struct {
	ID                   int
	Status               string // latest evaluation result, "unverified" when none exists
	Claim                string
	VerifiableExpression string
	SourceOrg            string
	Missing              bool // referenced by the logic but absent from storage
}

// LogicEvaluationSystem is the system prompt for the logic evaluator.
const LogicEvaluationSystem = `You are a logic analyst. Given an argument (supporting facts, assumptions, and the target conclusion or prediction) together with the verification state of those facts, assess how complete the argument is and produce a one-sentence summary.

The output must be valid JSON with no other text.`

// BuildLogicEvaluationUserMessage builds the logic evaluator user message.
// targetType is "conclusion" or "solution".
func BuildLogicEvaluationUserMessage(targetType, targetClaim string, supporting, assumptions []FactEvidence) string {
	var sb strings.Builder
	sb.WriteString("## Argument target\n\n")
	fmt.Fprintf(&sb, "Type: %s\n", targetType)
	fmt.Fprintf(&sb, "Core statement: %s\n\n", targetClaim)

	sb.WriteString("## Supporting facts (known evidence)\n\n")
	sb.WriteString(FormatFactEvidence(supporting))
	sb.WriteString("\n\n## Assumptions (unverified premises)\n\n")
	sb.WriteString(FormatFactEvidence(assumptions))
	sb.WriteString("\n\n")

	sb.WriteString(`## Task

Based on the above, complete both steps:

1. **Completeness assessment**: is the reasoning from the supporting facts to the target conclusion or prediction sound?
2. **One-sentence summary**: abstract, in your own words, what this argument is claiming. Describe the author's reasoning without judging it.

`)
	sb.WriteString(logicEvaluationSchema)
	return sb.String()
}

// FormatFactEvidence renders fact lines with their verification state for
// the logic evaluator. Returns "(none)" for an empty list.
func FormatFactEvidence(facts []FactEvidence) string {
	if len(facts) == 0 {
		return "(none)"
	}
	var lines []string
	for _, f := range facts {
		if f.Missing {
			lines = append(lines, fmt.Sprintf("  - [Fact #%d] not found", f.ID))
			continue
		}
		status := f.Status
		if status == "" {
			status = "unverified"
		}
		lines = append(lines, fmt.Sprintf("  - [Fact #%d] verification=%s", f.ID, status))
		lines = append(lines, fmt.Sprintf("    Statement: %s", f.Claim))
		if f.VerifiableExpression != "" {
			lines = append(lines, fmt.Sprintf("    Verifiable expression: %s", f.VerifiableExpression))
		}
		if f.SourceOrg != "" {
			lines = append(lines, fmt.Sprintf("    Checked against: %s", f.SourceOrg))
		}
	}
	return strings.Join(lines, "\n")
}

// logicEvaluationSchema is the logic evaluator's JSON response contract.
const logicEvaluationSchema = `Output JSON strictly:

` + "```json" + `
{
  "logic_completeness": "<complete|partial|weak|invalid>",
  "logic_note": "<one sentence of analysis naming the specific flaw or strength>",
  "one_sentence_summary": "<=25 words, abstract description of the argument's core point; no judging, no 'unproven' or 'lacks', only what the argument asserts>"
}
` + "```" + `

logic_completeness values:
  complete = the chain from facts to the conclusion or prediction is complete with no obvious leaps
  partial  = some support, but there are leaps or hidden assumptions
  weak     = facts and conclusion are only loosely related; the argument is strained
  invalid  = an outright fallacy (circular reasoning, hasty generalization, and the like)`

// LogicSummary is one assessed argument chain shown to the relation mapper.
type LogicSummary struct {
	ID           int
	TargetLabel  string // see FormatLogicTargetLabel
	Summary      string // one_sentence_summary from the evaluator
	Completeness string
}

// LogicRelationSystem is the system prompt for the logic relation mapper.
const LogicRelationSystem = `You are an argument structure analyst. Given several argument chains extracted from the same post, identify the support relations between them.

**Relation criteria:**
- supports: the conclusion of chain A is a direct premise of chain B. Without A's conclusion, B's argument cannot hold together or loses a key basis
- contextualizes: chain A supplies the historical frame or theoretical backdrop that B's argument relies on, without being logically necessary for B
- contradicts: the core premises or conclusions of A and B directly conflict

**Hard constraints:**
- Never infer a relation from topical similarity alone; related topics do not imply logical dependency
- When two chains are independent, record no relation
- A relation only holds when you can point at "this point of A -> that premise of B"
- When no dependency exists at all, output an empty relations array

The output must be valid JSON with no other text.`

// BuildLogicRelationUserMessage builds the relation mapper user message from
// the assessed argument chains of one post.
func BuildLogicRelationUserMessage(logics []LogicSummary) string {
	var sb strings.Builder
	sb.WriteString("The following argument chains were all extracted from the same post. Identify the support relations between them.\n\n")

	var blocks []string
	for _, l := range logics {
		summary := l.Summary
		if summary == "" {
			summary = "(not assessed)"
		}
		completeness := l.Completeness
		if completeness == "" {
			completeness = "unknown"
		}
		blocks = append(blocks, fmt.Sprintf("[Logic #%d]  target: %s\n  summary: %s\n  completeness: %s",
			l.ID, l.TargetLabel, summary, completeness))
	}
	sb.WriteString(strings.Join(blocks, "\n\n"))

	sb.WriteString("\n\n**Task:**\nFor each pair, decide whether the conclusion or framing of one chain (from) serves as a premise or backdrop of another (to).\n\n")
	sb.WriteString(logicRelationSchema)
	return sb.String()
}

// FormatLogicTargetLabel renders the target of an argument chain for the
// relation mapper. kind is "conclusion" or "solution"; long claims are
// truncated.
func FormatLogicTargetLabel(kind string, id int, claim string) string {
	const maxLen = 40
	runes := []rune(claim)
	if len(runes) > maxLen {
		claim = string(runes[:maxLen]) + "…"
	}
	return fmt.Sprintf("%s #%d: %q", kind, id, claim)
}

// logicRelationSchema is the relation mapper's JSON response contract.
const logicRelationSchema = `Output JSON strictly:

` + "```json" + `
{
  "relations": [
    {
      "from_logic_id": <supporter ID (integer)>,
      "to_logic_id": <supported ID (integer)>,
      "relation_type": "<supports|contextualizes|contradicts>",
      "note": "<one sentence: which point of from underpins which premise or backdrop of to>"
    }
  ]
}
` + "```" + `

When no chain depends on another, output: {"relations": []}`

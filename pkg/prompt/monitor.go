package prompt

import (
	"fmt"
	"strings"
)

// ConclusionMonitorSystem is the system prompt for the predictive conclusion
// monitor.
const ConclusionMonitorSystem = `You are a professional forecast auditor. Given a predictive conclusion, you:

1. Decide which authoritative source can verify whether the conclusion holds
   Acceptable sources:
   - Government / regulator bodies (national statistics offices, treasuries, central banks, the Federal Reserve, the Bank of Japan, the ECB, the BLS)
   - International financial institutions (IMF, World Bank, BIS)
   - Official data of major exchanges (NYSE, CME, SSE, HKEX, and peers)
   - Official filings of listed companies
   Not acceptable: media commentary, analysts' subjective ratings, personal judgement

2. Set the monitoring window:
   - Find the earliest point at which a meaningful call can be made; a clear inflection is enough, full realization is not required
   - When the conclusion's horizon is vague or very long, pick a window within **3-5 years** where a clear signal becomes observable
   - Give a human-readable description of the window and machine-readable start and end dates (ISO 8601)

The output must be valid JSON with no other text.`

// BuildConclusionMonitorUserMessage builds the monitor user message for one
// predictive conclusion. postedAt is the publication date in yyyy-mm-dd form.
func BuildConclusionMonitorUserMessage(claim, horizonNote, postedAt string) string {
	if horizonNote == "" {
		horizonNote = "(not specified)"
	}
	if postedAt == "" {
		postedAt = "unknown"
	}

	var sb strings.Builder
	sb.WriteString("## Conclusion to monitor (predictive)\n\n")
	fmt.Fprintf(&sb, "Core statement: %s\n", claim)
	fmt.Fprintf(&sb, "Stated horizon: %s\n", horizonNote)
	fmt.Fprintf(&sb, "Published: %s\n\n", postedAt)

	sb.WriteString(`## Task

Analyze this predictive conclusion and determine the authoritative source and monitoring window needed to verify it.

**Key requirements:**
- Even when the stated horizon is very long (such as "pays back over 45 years"), set a window within 3-5 years where a clear signal is observable
- Prefer continuously updated official data series (FRED, central bank databases)
- Set monitoring_start to the publication date and monitoring_end to a sensible evaluation cutoff

`)
	sb.WriteString(conclusionMonitorSchema)
	return sb.String()
}

// conclusionMonitorSchema is the monitor's JSON response contract.
const conclusionMonitorSchema = `Output JSON strictly:

` + "```json" + `
{
  "monitoring_source_org": "name of the monitoring institution (e.g. 'Federal Reserve FRED' or 'U.S. Treasury')",
  "monitoring_source_url": "URL of the monitoring data when known, otherwise null",
  "monitoring_period_note": "human-readable window description (e.g. '30-year Treasury yields, 2021-2026')",
  "monitoring_start": "window start, ISO 8601 date (yyyy-mm-dd)",
  "monitoring_end": "window end, ISO 8601 date (yyyy-mm-dd), 3-5 years out is recommended",
  "reason": "one sentence on why this source and window"
}
` + "```" + `

When the conclusion cannot be quantified at all and offers nothing observable, set monitoring_source_org to "not verifiable against authoritative data" and the remaining monitoring fields to null.`

// SolutionInput carries the recommendation fields the simulator prompt
// embeds.
type SolutionInput struct {
	Claim           string
	ActionType      string
	ActionTarget    string
	ActionRationale string
}

// ConclusionLine is one source conclusion shown to the solution simulator.
type ConclusionLine struct {
	Type  string // "retrospective" or "predictive"
	Claim string
}

// SolutionSimulationSystem is the system prompt for the solution simulator.
const SolutionSimulationSystem = `You are a professional investment advice assessor. Given a concrete investment recommendation and the conclusions it rests on, you:

Phase A, simulated execution:
  In one sentence (<=60 words), describe what acting on the recommendation today would concretely mean:
  direction, instrument, rough position sizing when it can be judged, and the time dimension

Phase B, monitoring setup:
  Determine the best authoritative data source and window for verifying how the recommendation works out

Acceptable monitoring sources:
- Tier 1: government / regulator bodies, central banks, official company filings (direct authoritative data)
- Tier 2: official exchange price and index data (financial market data)
Not acceptable: media commentary, analysts' forecast reports

The output must be valid JSON with no other text.`

// BuildSolutionSimulationUserMessage builds the simulator user message for
// one recommendation and its source conclusions.
func BuildSolutionSimulationUserMessage(in SolutionInput, conclusions []ConclusionLine) string {
	actionType := in.ActionType
	if actionType == "" {
		actionType = "(not specified)"
	}
	actionTarget := in.ActionTarget
	if actionTarget == "" {
		actionTarget = "(not specified)"
	}
	rationale := in.ActionRationale
	if rationale == "" {
		rationale = "(not stated)"
	}

	var sb strings.Builder
	sb.WriteString("## Investment recommendation\n\n")
	fmt.Fprintf(&sb, "Recommendation: %s\n", in.Claim)
	fmt.Fprintf(&sb, "Action type: %s\n", actionType)
	fmt.Fprintf(&sb, "Target: %s\n", actionTarget)
	fmt.Fprintf(&sb, "Rationale: %s\n\n", rationale)

	sb.WriteString("## Conclusions it rests on\n\n")
	if len(conclusions) == 0 {
		sb.WriteString("(no linked conclusions found)")
	} else {
		var lines []string
		for _, c := range conclusions {
			lines = append(lines, fmt.Sprintf("- [%s] %s", c.Type, c.Claim))
		}
		sb.WriteString(strings.Join(lines, "\n"))
	}
	sb.WriteString("\n\n")

	sb.WriteString(`## Task

**Phase A, simulated execution (<=60 words):**
What would acting on this recommendation today concretely mean?
Describe: direction, instrument, the key time dimension, and the indicator to watch

**Phase B, monitoring setup:**
- Best monitoring source (Tier 1 preferred: government data / filings; Tier 2: exchange price data)
- Window: from execution today until results become clearly observable

`)
	sb.WriteString(solutionSimulationSchema)
	return sb.String()
}

// solutionSimulationSchema is the simulator's JSON response contract.
const solutionSimulationSchema = `Output JSON strictly:

` + "```json" + `
{
  "simulated_action_note": "<=60-word simulated execution note, e.g. 'Buying a gold ETF (GLD) today and holding through end of 2027, watching its value against the dollar; the call works out if gold outpaces inflation over the window'",
  "monitoring_source_org": "name of the monitoring institution (Tier 1 preferred)",
  "monitoring_source_url": "URL of the monitoring data when known, otherwise null",
  "monitoring_period_note": "human-readable window description",
  "monitoring_start": "window start, ISO 8601 date (yyyy-mm-dd)",
  "monitoring_end": "window end, ISO 8601 date (yyyy-mm-dd)",
  "reason": "one sentence on why this monitoring plan"
}
` + "```" + `

When the recommendation's effect cannot be verified against authoritative data at all, still fill simulated_action_note, set monitoring_source_org to "not verifiable against authoritative data", and the remaining monitoring fields to null.`

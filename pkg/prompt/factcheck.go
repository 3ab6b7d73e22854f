package prompt

import (
	"fmt"
	"strings"
)

// FactCheckInput carries the fact fields the verifier prompt embeds. Empty
// optional fields are rendered as explicit placeholders so the model never
// sees a blank line.
type FactCheckInput struct {
	Claim                string
	VerifiableExpression string
	ValidityStart        string
	ValidityEnd          string
}

// FactCheckSystem is the system prompt for the fact verifier.
const FactCheckSystem = `You are a professional fact checker. Using the provided search results (when present) and your training knowledge, judge whether a factual statement is true, and supply authoritative source links that back the judgement.

Authority ranking (descending):
1. Government / regulator sites (e.g. federalreserve.gov, bls.gov, stats.gov.cn, treasury.gov, sec.gov)
2. International bodies (imf.org, worldbank.org, un.org, wto.org, bis.org)
3. Official filings of listed companies (investor relations pages, SEC EDGAR, HKEX disclosures)
4. Authoritative media (reuters.com, bloomberg.com, ft.com, wsj.com, ap.org, bbc.com)

When a search result shows an authoritative body responding to the statement directly, prefer that over lower-ranked sources.

The output must be valid JSON with no other text.`

// BuildFactCheckUserMessage builds the verifier user message. today is the
// current date in yyyy-mm-dd form. dataSection carries a formatted response
// from an authoritative statistical source (FRED, BLS, ...); searchSection
// carries formatted web search hits. When both are empty the prompt switches
// to training-knowledge-only wording and a stricter glossary for the
// unavailable result.
func BuildFactCheckUserMessage(today string, in FactCheckInput, dataSection, searchSection string) string {
	expr := in.VerifiableExpression
	if expr == "" {
		expr = "(not provided)"
	}
	start := in.ValidityStart
	if start == "" {
		start = "unbounded"
	}
	end := in.ValidityEnd
	if end == "" {
		end = "unbounded"
	}
	hasEvidence := dataSection != "" || searchSection != ""

	var sb strings.Builder
	fmt.Fprintf(&sb, "Today's date: %s\n\n", today)

	if dataSection != "" {
		sb.WriteString("## Authoritative data\n\n")
		sb.WriteString("Data fetched directly from the named statistical source follows; treat it as Tier 1 evidence:\n\n")
		sb.WriteString(dataSection)
		sb.WriteString("\n\n---\n\n")
	}
	if searchSection != "" {
		sb.WriteString("## Web search results\n\n")
		sb.WriteString("Real-time search results for this statement follow (source quality varies, weigh them accordingly):\n\n")
		sb.WriteString(searchSection)
		sb.WriteString("\n\n---\n\n")
	}
	if hasEvidence {
		sb.WriteString("## Statement to check\n\n")
	} else {
		sb.WriteString("Judge whether the following factual statement is true and supply authoritative source links.\n\n")
	}

	fmt.Fprintf(&sb, "Statement: %s\n", in.Claim)
	fmt.Fprintf(&sb, "Verifiable expression: %s\n", expr)
	fmt.Fprintf(&sb, "Period the statement refers to: %s to %s\n\n", start, end)

	sb.WriteString(semanticExpansionGuide)
	sb.WriteString("\n\n")
	sb.WriteString(evidenceTierGuide)
	sb.WriteString("\n\n")

	if hasEvidence {
		sb.WriteString("## Output requirements\n\n")
		sb.WriteString("Combine the evidence above with your training knowledge and judge the statement under the semantic expansion rules. When an authoritative body (government, central bank, international organization, official filings) responds directly, raise confidence to medium or high; result must not be unavailable.\n\n")
		sb.WriteString(factCheckSchema)
		sb.WriteString("\n\n")
		sb.WriteString(`result values:
- true        = high confidence the statement is correct
- false       = high confidence the statement is wrong
- uncertain   = plausibly correct but confidence is insufficient (data disputed or uncertain)
- unavailable = no relevant information whatsoever (no search results and beyond the training cutoff)`)
		return sb.String()
	}

	sb.WriteString(factCheckSchema)
	sb.WriteString("\n\n")
	sb.WriteString(`result values:
- true        = high confidence the statement is correct
- false       = high confidence the statement is wrong
- uncertain   = plausibly correct but confidence is insufficient (data disputed, time-limited, or uncertain)
- unavailable = concerns a future outcome or a private arrangement, or the period lies beyond the knowledge cutoff

Requirements:
- Provide 1-3 real authoritative links in authoritative_links; use [] only when none can be given
`)
	fmt.Fprintf(&sb, "- Today is %s. When the period the statement refers to (%s to %s) lies on or before today,\n", today, start, end)
	sb.WriteString(`  it is a current or historical fact: verify it as far as possible and never refuse it as a "future event".
- When the period genuinely lies beyond your training cutoff, say so in evaluator_notes and use uncertain or unavailable.`)
	return sb.String()
}

// semanticExpansionGuide tells the model how to decompose abstract aggregate
// statements ("wealth wiped out") into checkable historical event categories.
const semanticExpansionGuide = `## Semantic expansion (abstract or aggregate statements)

When the statement contains an **abstract aggregate concept** (such as "wealth wiped out", "economic collapse", or "defeated"), first expand it into concrete, checkable categories of historical events, check each one, then count the matches and conclude.

**Common expansions (any one match qualifies):**

Wealth wiped out / nearly destroyed:
  - Hyperinflation (currency losing >90% of its value, e.g. Weimar Germany 1923)
  - Wartime plunder, or assets confiscated and reparations forced after defeat (e.g. Germany, Austria-Hungary, and the Ottoman Empire after WWI)
  - Communist revolution nationalizing private capital (e.g. Russia 1917, China 1949)
  - Equity and bond markets permanently closed plus monetary collapse (e.g. the WWII Axis powers)
  - Sovereign default plus mass capital flight plus loss of colonies

The ten great powers circa 1900:
  Britain, the United States, Germany (incl. Prussia), France, the Russian Empire, Austria-Hungary, Italy, Japan, China (Qing / Republic), the Ottoman Empire

**Procedure:**
1. Identify the abstract concept and write out your expansion of it
2. List the entities referenced and check each against the expanded definition, one by one
3. Count the matches and compare with the number in the statement
4. In evidence_summary, state the expansion first, then the per-entity findings, then the total`

// evidenceTierGuide defines the three evidence grades the verifier reports.
const evidenceTierGuide = `## Evidence tiers (evidence_tier)

Fill evidence_tier according to the grade of the evidence your check used:

- **Tier 1** (highest): direct data from authoritative institutions
  National statistics offices, central bank policy statements, court rulings, regulator reports, official company filings
  e.g. BLS releases, FOMC statements, SEC filings, HKEX disclosures

- **Tier 2**: financial market reaction data
  Price moves in equities / commodities / bonds / futures, index levels, trading volume
  e.g. the gold price, the S&P 500, the Treasury yield curve

- **Tier 3** (lowest; must trace back to Tier 1/2): credible third parties
  Economic-institution reports citing official data, reputable financial media reports
  e.g. Bloomberg analysis citing Federal Reserve data, IMF reports built on member-country statistics

When the evidence mixes several tiers, record the lowest tier involved.
When there is no authoritative evidence at all, use null.`

// factCheckSchema is the verifier's JSON response contract.
const factCheckSchema = `Output JSON strictly in the following format (every field must appear):

` + "```json" + `
{
  "result": "<true|false|uncertain|unavailable>",
  "evidence_tier": <1|2|3|null>,
  "confidence": "<high|medium|low>",
  "evidence_summary": "<the semantic expansion first when one applies, then the per-item findings with concrete events and numbers>",
  "authoritative_links": [
    {
      "org": "<name of the institution>",
      "url": "<full URL>",
      "description": "<what this link contains>"
    }
  ],
  "evaluator_notes": "<extra notes such as definition boundaries or data caveats; null when none>"
}
` + "```"

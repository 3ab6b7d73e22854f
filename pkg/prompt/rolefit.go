package prompt

import (
	"fmt"
	"strings"
)

// RoleFitInput carries the author profile and the statement whose role match
// is being assessed. ClaimType is free text such as "conclusion
// (predictive)" or "action recommendation".
type RoleFitInput struct {
	Name            string
	Role            string
	ExpertiseAreas  string
	KnownBiases     string
	CredibilityTier int
	ProfileNote     string
	ClaimType       string
	Claim           string
}

// TierLabel names a credibility tier. Out-of-range tiers map to "unknown".
func TierLabel(tier int) string {
	switch tier {
	case 1:
		return "top authority"
	case 2:
		return "industry expert"
	case 3:
		return "known commentator"
	case 4:
		return "general media/KOL"
	default:
		return "unknown"
	}
}

// RoleFitSystem is the system prompt for the role evaluator.
const RoleFitSystem = `You are a media source analyst. Your task is to judge whether a statement of a given kind matches the professional role and expertise of the person making it.

This is not about whether the statement is correct. It is about standing: does this person have a reasonable basis to make this kind of judgement?

**Adjacent fields doctrine (important):**
The following disciplines are deeply intertwined in practice and count as one professional ecosystem; speaking across them needs no downgrade:
  - macroeconomics <-> international relations <-> geopolitics <-> fiscal and monetary policy <-> financial markets
  - historical research <-> political economy <-> strategic studies
  - investing and asset allocation <-> risk analysis <-> macro forecasting
  Example: a macroeconomist discussing great-power rivalry, war risk, or regime stability is standard practice, not overreach.

**Lenient assessment:**
Any one of the following is enough for appropriate:
  - the statement falls inside the author's expertise or the adjacent fields above
  - the statement rests on historical, economic, or market data the author has studied for years
  - the author is Tier 1-2 and has any research or practice overlap with the topic

questionable requires both of:
  - the statement leans heavily on specialist knowledge entirely outside the adjacent fields above
  - the author has no visible background in that specialty

mismatched is reserved for extremes (keep it rare):
  - the author's background has no overlap with the topic at all (a chef pronouncing on military technology)

**Never downgrade merely because the topic exceeds the core specialty**; what matters is whether the author has a reasonable basis for the judgement.

The output must be valid JSON with no other text.`

// BuildRoleFitUserMessage builds the role evaluator user message.
func BuildRoleFitUserMessage(in RoleFitInput) string {
	role := in.Role
	if role == "" {
		role = "unknown"
	}
	expertise := in.ExpertiseAreas
	if expertise == "" {
		expertise = "unknown"
	}
	biases := in.KnownBiases
	if biases == "" {
		biases = "none"
	}
	note := in.ProfileNote
	if note == "" {
		note = "none"
	}
	tier := in.CredibilityTier
	if tier < 1 || tier > 5 {
		tier = 5
	}

	var sb strings.Builder
	sb.WriteString("## Author profile\n")
	fmt.Fprintf(&sb, "Name: %s\n", in.Name)
	fmt.Fprintf(&sb, "Role: %s\n", role)
	fmt.Fprintf(&sb, "Expertise: %s\n", expertise)
	fmt.Fprintf(&sb, "Known biases: %s\n", biases)
	fmt.Fprintf(&sb, "Credibility: Tier %d (%s)\n", tier, TierLabel(tier))
	fmt.Fprintf(&sb, "Sketch: %s\n\n", note)

	sb.WriteString("## Statement under assessment\n")
	fmt.Fprintf(&sb, "Kind: %s\n", in.ClaimType)
	fmt.Fprintf(&sb, "Core statement: %s\n\n", in.Claim)

	sb.WriteString(`## Task
Judge how well this statement matches the author's role.

Checklist (stop at the first match, which yields appropriate):
1. Is the statement inside the author's expertise or an adjacent field? -> appropriate
2. Does it rest on historical / economic / market data the author has long studied? -> appropriate
3. Tier 1-2 author with any research or practice overlap with the topic? -> appropriate
4. None of the above, and the statement leans on specialty knowledge foreign to the author? -> questionable
5. No overlap between background and topic at all? -> mismatched (keep it rare)

**Default to appropriate unless there is a clear reason to downgrade.**

`)
	sb.WriteString(roleFitSchema)
	return sb.String()
}

// roleFitSchema is the role evaluator's JSON response contract.
const roleFitSchema = `Output JSON strictly:

` + "```json" + `
{
  "role_fit": "<appropriate|questionable|mismatched>",
  "role_fit_note": "<one sentence, <=40 words, why it matches or where the mismatch lies>"
}
` + "```"

package prompt

import (
	"fmt"
	"strings"
)

// ProfileInput identifies the author the profiler researches.
type ProfileInput struct {
	Name        string
	Platform    string
	Description string // platform bio, may be empty
}

// AuthorProfileSystem is the system prompt for the author profiler.
const AuthorProfileSystem = `You are an expert at researching the backgrounds of public figures. Given a person's name and platform, plus optional web search results, determine their occupational role, professional background, and credibility tier.

**When filling expertise_areas:**
Macroeconomics, international relations, geopolitics, fiscal and monetary policy, strategic studies, and political economy are tightly interlinked fields. When the author has a background in any one of them, include the adjacent fields in expertise_areas instead of listing only the "core" specialty. A macroeconomist's expertise_areas should include geopolitical risk analysis, for example.

credibility_tier scale:
  1 = top authority (Nobel laureates, central bank governors, IMF/BIS officials)
  2 = industry expert (prominent hedge fund managers, chief economists of major institutions, leading scholars)
  3 = known commentator (well-known financial media hosts or journalists, independent analysts with industry background)
  4 = general media / KOL (ordinary social media accounts, commentators without a notable professional background)
  5 = unknown (no credible background information can be found)

The output must be valid JSON with no other text.`

// BuildAuthorProfileUserMessage builds the profiler user message. An empty
// searchSection switches to training-knowledge-only wording that asks the
// model to admit when it cannot identify the person.
func BuildAuthorProfileUserMessage(in ProfileInput, searchSection string) string {
	description := in.Description
	if description == "" {
		description = "(no platform bio)"
	}

	var sb strings.Builder
	sb.WriteString("## Subject\n")
	fmt.Fprintf(&sb, "Name: %s\n", in.Name)
	fmt.Fprintf(&sb, "Platform: %s\n", in.Platform)
	fmt.Fprintf(&sb, "Platform bio: %s\n\n", description)

	if searchSection != "" {
		sb.WriteString("## Web search results\n")
		sb.WriteString(searchSection)
		sb.WriteString("\n\n## Task\n")
		sb.WriteString("Based on the information above, analyze this person's professional background and produce a structured profile.\n\n")
	} else {
		sb.WriteString("## Task\n")
		sb.WriteString("Based on your training knowledge, analyze this person's professional background and produce a structured profile. If you genuinely cannot identify the person, answer honestly with credibility_tier=5 and say so in profile_note.\n\n")
	}

	sb.WriteString(authorProfileSchema)
	return sb.String()
}

// authorProfileSchema is the profiler's JSON response contract.
const authorProfileSchema = `Output JSON strictly:

` + "```json" + `
{
  "role": "<occupational role, e.g. 'Bridgewater founder', 'former Fed chair', 'financial journalist'; 'unknown' when unidentifiable>",
  "expertise_areas": "<fields of expertise, e.g. 'global macro, debt cycles, capital markets'; null when unknown>",
  "known_biases": "<known leanings or signature positions, e.g. 'long-term gold bull, dollar bear'; null when unknown>",
  "credibility_tier": <integer 1-5>,
  "profile_note": "<overall sketch, <=50 words, what this person's background and stance represent>"
}
` + "```"

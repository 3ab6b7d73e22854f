package prompt

import "strings"

// postQualityContentLimit caps how much post content the quality evaluator
// prompt embeds.
const postQualityContentLimit = 3000

// PostQualitySystem is the system prompt for the content quality evaluator.
const PostQualitySystem = `You are a content quality analyst focused on financial and economic commentary.
Your task is to measure a piece's information effectiveness: the proportion of substantive professional content versus noise.

Noise types:
  emotional_rhetoric — emotional language that stokes fear, anger, or excitement without substance ("this is a disaster!")
  entertainment      — entertainment asides unrelated to the professional content, personal anecdotes, off-topic jokes
  filler             — restating the same point over and over, boilerplate, words that add no information

Note: normal argument development, worked examples, and cited data are substantive content, not noise.
The output must be valid JSON with no other text.`

// BuildPostQualityUserMessage builds the quality evaluator user message.
// Overlong content is truncated to keep the prompt bounded.
func BuildPostQualityUserMessage(content string) string {
	runes := []rune(content)
	if len(runes) > postQualityContentLimit {
		content = string(runes[:postQualityContentLimit]) + "...(truncated)"
	}

	var sb strings.Builder
	sb.WriteString("## Content under assessment\n\n")
	sb.WriteString(content)
	sb.WriteString("\n\n## Task\n\nMeasure the information effectiveness of the content above.\n\n")
	sb.WriteString(postQualitySchema)
	return sb.String()
}

// postQualitySchema is the quality evaluator's JSON response contract.
const postQualitySchema = `Output JSON strictly:

` + "```json" + `
{
  "effectiveness_score": <0.0-1.0, share of substantive content; 1.0 = all substance, 0.0 = all noise>,
  "noise_ratio": <0.0-1.0, share of noise>,
  "noise_types": [<noise types present, from emotional_rhetoric/entertainment/filler; empty array when none>],
  "effectiveness_note": "<one sentence, <=40 words, the main problem or strength>"
}
` + "```"

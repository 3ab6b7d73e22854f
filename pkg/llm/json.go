package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// fencedJSONRe matches the first fenced code block containing a JSON object.
// The language tag is optional; models emit both ```json and bare ``` fences.
var fencedJSONRe = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// ExtractJSON pulls the JSON object out of an LLM reply: the first fenced
// code block when present, otherwise the outermost brace span of the raw
// text. Returns an error when no parseable object is found.
func ExtractJSON(raw string) ([]byte, error) {
	if m := fencedJSONRe.FindStringSubmatch(raw); m != nil {
		candidate := []byte(m[1])
		if !json.Valid(candidate) {
			return nil, fmt.Errorf("fenced JSON block is malformed")
		}
		return candidate, nil
	}

	trimmed := strings.TrimSpace(raw)
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("no JSON object in response")
	}
	candidate := []byte(trimmed[start : end+1])
	if !json.Valid(candidate) {
		return nil, fmt.Errorf("response JSON is malformed")
	}
	return candidate, nil
}

// ParseJSON extracts the JSON object embedded in raw and unmarshals it into v.
func ParseJSON(raw string, v any) error {
	data, err := ExtractJSON(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding response JSON: %w", err)
	}
	return nil
}

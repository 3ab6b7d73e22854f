package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "fenced json block",
			raw:  "Here is the result:\n```json\n{\"result\": \"true\"}\n```\nDone.",
			want: `{"result": "true"}`,
		},
		{
			name: "fenced block without language tag",
			raw:  "```\n{\"result\": \"false\"}\n```",
			want: `{"result": "false"}`,
		},
		{
			name: "bare json",
			raw:  `{"result": "uncertain"}`,
			want: `{"result": "uncertain"}`,
		},
		{
			name: "json surrounded by prose",
			raw:  "Based on my analysis: {\"verdict\": \"confirmed\", \"n\": 2} — see above.",
			want: `{"verdict": "confirmed", "n": 2}`,
		},
		{
			name: "nested objects unfenced",
			raw:  `prefix {"a": {"b": [1, 2]}, "c": "d"} suffix`,
			want: `{"a": {"b": [1, 2]}, "c": "d"}`,
		},
		{
			name:    "no object at all",
			raw:     "I cannot answer that.",
			wantErr: true,
		},
		{
			name:    "malformed braces",
			raw:     `{"unclosed": `,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

// Fenced and unfenced forms of the same object must parse identically.
func TestExtractJSONFencedUnfencedEquivalence(t *testing.T) {
	payload := `{"is_relevant_content": true, "facts": [{"claim": "x", "is_verifiable": false}]}`

	fenced, err := ExtractJSON("```json\n" + payload + "\n```")
	require.NoError(t, err)
	unfenced, err := ExtractJSON("analysis text " + payload + " trailing")
	require.NoError(t, err)

	assert.JSONEq(t, string(fenced), string(unfenced))
}

func TestParseJSON(t *testing.T) {
	type verdict struct {
		Result     string `json:"result"`
		Confidence string `json:"confidence"`
	}

	var v verdict
	err := ParseJSON("```json\n{\"result\": \"true\", \"confidence\": \"high\"}\n```", &v)
	require.NoError(t, err)
	assert.Equal(t, "true", v.Result)
	assert.Equal(t, "high", v.Confidence)

	err = ParseJSON("no json here", &v)
	assert.Error(t, err)
}

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexIntUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantNil bool
		wantErr bool
	}{
		{name: "plain number", input: `{"tier": 2}`, want: 2},
		{name: "quoted number", input: `{"tier": "3"}`, want: 3},
		{name: "float number truncates", input: `{"tier": 1.0}`, want: 1},
		{name: "null stays nil", input: `{"tier": null}`, wantNil: true},
		{name: "absent stays nil", input: `{}`, wantNil: true},
		{name: "empty string stays zero", input: `{"tier": ""}`, want: 0},
		{name: "non-numeric string errors", input: `{"tier": "high"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				Tier *FlexInt `json:"tier"`
			}
			err := json.Unmarshal([]byte(tt.input), &out)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, out.Tier)
				return
			}
			require.NotNil(t, out.Tier)
			assert.Equal(t, tt.want, out.Tier.Int())
		})
	}
}

func TestFlexFloatUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "plain float", input: `{"score": 0.85}`, want: 0.85},
		{name: "quoted float", input: `{"score": "0.4"}`, want: 0.4},
		{name: "integer form", input: `{"score": 1}`, want: 1.0},
		{name: "non-numeric string errors", input: `{"score": "high"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				Score FlexFloat `json:"score"`
			}
			err := json.Unmarshal([]byte(tt.input), &out)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, out.Score.Float(), 1e-9)
		})
	}
}

func TestExtractionResultRoundTrip(t *testing.T) {
	raw := `{
		"is_relevant_content": true,
		"facts": [
			{
				"claim": "US nonfarm payrolls rose 130K in Jan 2025",
				"canonical_claim": "US Jan 2025 nonfarm payrolls +130K",
				"verifiable_expression": "BLS Jan 2025 employment report shows +130K",
				"is_verifiable": true,
				"suggested_references": [
					{"organization": "Bureau of Labor Statistics", "data_description": "Employment Situation Summary"}
				]
			}
		],
		"conclusions": [
			{"topic": "US labor market", "claim": "The labor market is cooling", "conclusion_type": "retrospective"}
		],
		"solutions": [
			{"topic": "US labor market", "claim": "Reduce equity exposure", "action_type": "reduce", "source_conclusion_indices": [0]}
		],
		"logics": [
			{"logic_type": "inference", "target_index": 0, "supporting_fact_indices": [0]},
			{"logic_type": "derivation", "solution_index": 0, "source_conclusion_indices": [0]}
		]
	}`

	var result ExtractionResult
	require.NoError(t, json.Unmarshal([]byte(raw), &result))

	assert.True(t, result.IsRelevantContent)
	require.Len(t, result.Facts, 1)
	require.Len(t, result.Conclusions, 1)
	require.Len(t, result.Solutions, 1)
	require.Len(t, result.Logics, 2)

	assert.True(t, result.Facts[0].IsVerifiable)
	require.NotNil(t, result.Facts[0].CanonicalClaim)
	assert.Equal(t, "US Jan 2025 nonfarm payrolls +130K", *result.Facts[0].CanonicalClaim)
	require.Len(t, result.Facts[0].SuggestedReferences, 1)

	require.NotNil(t, result.Logics[0].TargetIndex)
	assert.Equal(t, 0, *result.Logics[0].TargetIndex)
	assert.Equal(t, []int{0}, result.Logics[0].SupportingFactIndices)

	require.NotNil(t, result.Logics[1].SolutionIndex)
	assert.Equal(t, []int{0}, result.Logics[1].SourceConclusionIndices)

	// Re-encode and parse back: counts and canonical claims survive.
	encoded, err := json.Marshal(result)
	require.NoError(t, err)
	var again ExtractionResult
	require.NoError(t, json.Unmarshal(encoded, &again))
	assert.Equal(t, len(result.Facts), len(again.Facts))
	assert.Equal(t, len(result.Logics), len(again.Logics))
	assert.Equal(t, *result.Facts[0].CanonicalClaim, *again.Facts[0].CanonicalClaim)
}

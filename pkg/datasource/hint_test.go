package datasource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSourceHint_JSON(t *testing.T) {
	hint, ok := ParseSourceHint(`Check against {"source": "fred", "params": {"series_id": "UNRATE", "tail_n": 12}}`)
	require.True(t, ok)
	assert.Equal(t, "fred", hint.SourceType)
	assert.Equal(t, "UNRATE", hint.Params["series_id"])
	assert.Equal(t, 12.0, hint.Params["tail_n"])
}

func TestParseSourceHint_JSONAlias(t *testing.T) {
	hint, ok := ParseSourceHint(`{"source_type": "worldbank", "params": {"indicator_id": "NY.GDP.MKTP.CD", "economy": "CN"}}`)
	require.True(t, ok)
	assert.Equal(t, "world_bank", hint.SourceType)
	assert.Equal(t, "CN", hint.Params["economy"])
}

func TestParseSourceHint_JSONUnknownSource(t *testing.T) {
	_, ok := ParseSourceHint(`{"source": "bloomberg", "params": {}}`)
	assert.False(t, ok)
}

func TestParseSourceHint_Tag(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		sourceType string
		params     map[string]any
	}{
		{
			name:       "bare code",
			method:     "fred: UNRATE",
			sourceType: "fred",
			params:     map[string]any{"series_id": "UNRATE"},
		},
		{
			name:       "key value pairs",
			method:     "bls: series_id=LNS14000000 start_year=2023 end_year=2024",
			sourceType: "bls",
			params:     map[string]any{"series_id": "LNS14000000", "start_year": "2023", "end_year": "2024"},
		},
		{
			name:       "alias resolves",
			method:     "wb: NY.GDP.MKTP.CD",
			sourceType: "world_bank",
			params:     map[string]any{"indicator_id": "NY.GDP.MKTP.CD"},
		},
		{
			name:       "tag only first line",
			method:     "imf: NGDP_RPCH\nthen compare against the stated growth rate",
			sourceType: "imf",
			params:     map[string]any{"indicator_code": "NGDP_RPCH"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hint, ok := ParseSourceHint(tt.method)
			require.True(t, ok)
			assert.Equal(t, tt.sourceType, hint.SourceType)
			assert.Equal(t, tt.params, hint.Params)
		})
	}
}

func TestParseSourceHint_Prose(t *testing.T) {
	hint, ok := ParseSourceHint("Compare the FRED series UNRATE for January 2024 against the stated 3.7%")
	require.True(t, ok)
	assert.Equal(t, "fred", hint.SourceType)
	assert.Equal(t, "UNRATE", hint.Params["series_id"])

	hint, ok = ParseSourceHint("Pull LNS14000000 from the Bureau of Labor Statistics and check the February print")
	require.True(t, ok)
	assert.Equal(t, "bls", hint.SourceType)
	assert.Equal(t, "LNS14000000", hint.Params["series_id"])

	hint, ok = ParseSourceHint("World Bank indicator NY.GDP.MKTP.CD, latest 5 years")
	require.True(t, ok)
	assert.Equal(t, "world_bank", hint.SourceType)
	assert.Equal(t, "NY.GDP.MKTP.CD", hint.Params["indicator_id"])
}

func TestParseSourceHint_ProseStopwords(t *testing.T) {
	// Source names themselves never become series codes.
	_, ok := ParseSourceHint("Check the FRED DATA for the relevant SERIES")
	assert.False(t, ok)
}

func TestParseSourceHint_NoHint(t *testing.T) {
	for _, method := range []string{
		"",
		"   ",
		"Compare official statistics for the stated period",
		"Check the company's quarterly filing against the claimed revenue",
	} {
		_, ok := ParseSourceHint(method)
		assert.False(t, ok, "method %q", method)
	}
}

package extract

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credlens/pundit/ent/conclusion"
	"github.com/credlens/pundit/ent/solution"
)

func testExtractor() *Extractor {
	return &Extractor{logger: slog.Default()}
}

func strptr(s string) *string { return &s }

func TestParseTimeNote(t *testing.T) {
	cases := []struct {
		name string
		note *string
		want *time.Time
	}{
		{"nil", nil, nil},
		{"empty", strptr("  "), nil},
		{"iso date", strptr("2026-03-15"), timeptr(2026, time.March, 15)},
		{"slash date", strptr("2026/03/15"), timeptr(2026, time.March, 15)},
		{"year month", strptr("2026-03"), timeptr(2026, time.March, 1)},
		{"month name", strptr("January 2026"), timeptr(2026, time.January, 1)},
		{"bare year", strptr("2026"), timeptr(2026, time.January, 1)},
		{"year in prose", strptr("by end of 2026"), timeptr(2026, time.January, 1)},
		{"quarter prose", strptr("Q3 2025"), timeptr(2025, time.January, 1)},
		{"embedded iso date", strptr("CPI release on 2025-11-13 at 8:30 ET"), timeptr(2025, time.November, 13)},
		{"no date at all", strptr("sometime soon"), nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := parseTimeNote(tc.note)
			if tc.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tc.want.Equal(*got), "want %s, got %s", tc.want, got)
		})
	}
}

func TestParseTimeNoteRFC3339(t *testing.T) {
	got := parseTimeNote(strptr("2026-03-15T10:30:00Z"))
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC), got.UTC())
}

func TestResolveIndicesDropsUnknown(t *testing.T) {
	x := testExtractor()
	ids := map[int]int{0: 101, 2: 103}

	resolved := x.resolveIndices([]int{0, 1, 2, 7}, ids, 1, "supporting fact")

	assert.Equal(t, []int{101, 103}, resolved)
}

func TestResolveIndicesEmpty(t *testing.T) {
	x := testExtractor()

	resolved := x.resolveIndices(nil, map[int]int{}, 1, "source conclusion")

	// An empty slice, not nil: the column stores an empty JSON array.
	require.NotNil(t, resolved)
	assert.Empty(t, resolved)
}

func TestConclusionTypeNormalization(t *testing.T) {
	x := testExtractor()

	assert.Equal(t, conclusion.ConclusionTypePredictive, x.conclusionType("predictive"))
	assert.Equal(t, conclusion.ConclusionTypePredictive, x.conclusionType(" Predictive "))
	assert.Equal(t, conclusion.ConclusionTypeRetrospective, x.conclusionType("retrospective"))
	assert.Equal(t, conclusion.ConclusionTypeRetrospective, x.conclusionType("speculative"))
	assert.Equal(t, conclusion.ConclusionTypeRetrospective, x.conclusionType(""))
}

func TestActionTypeNormalization(t *testing.T) {
	x := testExtractor()

	assert.Nil(t, x.actionType(nil))
	assert.Nil(t, x.actionType(strptr("")))
	assert.Nil(t, x.actionType(strptr("accumulate"))) // not a known action

	got := x.actionType(strptr(" SELL "))
	require.NotNil(t, got)
	assert.Equal(t, solution.ActionTypeSell, *got)

	got = x.actionType(strptr("hedge"))
	require.NotNil(t, got)
	assert.Equal(t, solution.ActionTypeHedge, *got)
}

func timeptr(year int, month time.Month, day int) *time.Time {
	ts := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &ts
}

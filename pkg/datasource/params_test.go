package datasource

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringParam(t *testing.T) {
	params := map[string]any{
		"name":    "PAYEMS",
		"padded":  "  UNRATE  ",
		"number":  2022.0,
		"integer": 7,
		"blank":   "",
		"nothing": nil,
	}

	assert.Equal(t, "PAYEMS", stringParam(params, "name", "x"))
	assert.Equal(t, "UNRATE", stringParam(params, "padded", "x"))
	assert.Equal(t, "2022", stringParam(params, "number", "x"))
	assert.Equal(t, "7", stringParam(params, "integer", "x"))
	assert.Equal(t, "x", stringParam(params, "blank", "x"))
	assert.Equal(t, "x", stringParam(params, "nothing", "x"))
	assert.Equal(t, "x", stringParam(params, "missing", "x"))
}

func TestIntParam(t *testing.T) {
	params := map[string]any{
		"float":  36.0,
		"int":    12,
		"quoted": "24",
		"bad":    "many",
	}

	assert.Equal(t, 36, intParam(params, "float", 5))
	assert.Equal(t, 12, intParam(params, "int", 5))
	assert.Equal(t, 24, intParam(params, "quoted", 5))
	assert.Equal(t, 5, intParam(params, "bad", 5))
	assert.Equal(t, 5, intParam(params, "missing", 5))
}

func TestStringListParam(t *testing.T) {
	params := map[string]any{
		"single": "JTSJOL",
		"list":   []any{"JTSJOL", " LNS13000000 ", "", 42.0},
		"typed":  []string{"USA", "CHN"},
		"blank":  "  ",
	}

	assert.Equal(t, []string{"JTSJOL"}, stringListParam(params, "single"))
	assert.Equal(t, []string{"JTSJOL", "LNS13000000"}, stringListParam(params, "list"))
	assert.Equal(t, []string{"USA", "CHN"}, stringListParam(params, "typed"))
	assert.Nil(t, stringListParam(params, "blank"))
	assert.Nil(t, stringListParam(params, "missing"))
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.000"},
		{4.1, "4.100"},
		{-2.5, "-2.500"},
		{999, "999.000"},
		{1000, "1,000.000"},
		{159539, "159,539.000"},
		{-1234567.89, "-1,234,567.890"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatValue(tt.in), "formatValue(%v)", tt.in)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abc...", truncate("abcdef", 3))
}

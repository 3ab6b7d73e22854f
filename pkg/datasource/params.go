package datasource

import (
	"math"
	"strconv"
	"strings"
)

// Query parameters arrive as generic JSON decoded from an LLM-proposed
// verification method, so values may be numbers, quoted numbers, or
// lists. These helpers read them tolerantly instead of failing on type
// drift.

// stringParam reads params[key] as a string, coercing scalars.
func stringParam(params map[string]any, key, fallback string) string {
	v, ok := params[key]
	if !ok || v == nil {
		return fallback
	}
	switch t := v.(type) {
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return s
		}
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	}
	return fallback
}

// intParam reads params[key] as an int, coercing numbers and numeric strings.
func intParam(params map[string]any, key string, fallback int) int {
	v, ok := params[key]
	if !ok || v == nil {
		return fallback
	}
	if n, ok := intFromAny(v); ok {
		return n
	}
	return fallback
}

func intFromAny(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		return int(t), true
	case int:
		return t, true
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return n, true
		}
	}
	return 0, false
}

// stringListParam reads params[key] as a string slice. A bare string
// becomes a single-element slice; blank elements are dropped.
func stringListParam(params map[string]any, key string) []string {
	v, ok := params[key]
	if !ok || v == nil {
		return nil
	}
	switch t := v.(type) {
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return []string{s}
		}
	case []string:
		out := make([]string, 0, len(t))
		for _, s := range t {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				continue
			}
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// formatValue renders a numeric observation with thousands separators
// and three decimals, e.g. 159539 becomes "159,539.000".
func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	s := strconv.FormatFloat(v, 'f', 3, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	dot := strings.Index(s, ".")
	intPart, frac := s[:dot], s[dot:]
	if len(intPart) > 3 {
		var b strings.Builder
		pre := len(intPart) % 3
		if pre > 0 {
			b.WriteString(intPart[:pre])
		}
		for i := pre; i < len(intPart); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(intPart[i : i+3])
		}
		intPart = b.String()
	}
	if neg {
		return "-" + intPart + frac
	}
	return intPart + frac
}

// orNA substitutes "N/A" for empty strings in rendered tables.
func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

package fields

import (
	"math"
	"strconv"
	"strings"
)

// NormalizeAmount coerces any backend amount representation to a
// finite number. Unparseable input yields 0, never an error.
func NormalizeAmount(v any) float64 {
	switch t := v.(type) {
	case nil:
		return 0
	case []any:
		for _, e := range t {
			if e != nil {
				return NormalizeAmount(e)
			}
		}
		return 0
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0
		}
		return t
	case float32:
		return NormalizeAmount(float64(t))
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		cleaned := stripAmountNoise(t)
		cleaned = strings.Replace(cleaned, ",", ".", 1)
		f, ok := parseFloatPrefix(cleaned)
		if !ok {
			return 0
		}
		return f
	case map[string]any:
		if a, ok := t["amount"]; ok {
			return NormalizeAmount(a)
		}
		if a, ok := t["value"]; ok {
			return NormalizeAmount(a)
		}
		return 0
	default:
		return 0
	}
}

// stripAmountNoise keeps digits, comma, dot and minus; currency
// symbols, spaces and grouping junk are discarded.
func stripAmountNoise(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parseFloatPrefix parses the longest leading decimal number, the way
// a lenient float parse treats trailing junk ("19.99.50" -> 19.99).
func parseFloatPrefix(s string) (float64, bool) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := false
	dot := false
	for i < len(s) {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digits = true
			i++
		case c == '.' && !dot:
			dot = true
			i++
		default:
			goto done
		}
	}
done:
	if !digits {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(s[:i], "."), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

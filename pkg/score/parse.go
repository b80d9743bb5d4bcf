package score

import (
	"strconv"
	"strings"
)

// Placeholder tokens the grade system emits in place of a number.
// Matched case-insensitively after trimming.
var sentinels = map[string]bool{
	"":    true,
	"待评教": true,
	"na":  true,
	"n/a": true,
}

// ParseFloat reads a numeric value out of a raw row field. Strings are
// trimmed and checked against the known placeholder tokens first; anything
// that then fails conversion is treated as absent, never as an error.
func ParseFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case nil:
		return 0, false
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		s := strings.TrimSpace(t)
		if sentinels[strings.ToLower(s)] {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

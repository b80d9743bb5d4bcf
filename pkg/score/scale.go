package score

import "strings"

// Band maps one textual grade tier to its canonical numeric score.
type Band struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
}

// Scale is the ordered grade-label table. Order is preserved so the table
// round-trips through config files without reshuffling.
type Scale []Band

// DefaultScale returns the five-tier scale used by the grade system.
func DefaultScale() Scale {
	return Scale{
		{Label: "优", Value: 95},
		{Label: "良", Value: 85},
		{Label: "中", Value: 75},
		{Label: "及格", Value: 65},
		{Label: "不及格", Value: 55},
	}
}

// Lookup resolves a grade label to its numeric value. The label is trimmed
// before matching.
func (s Scale) Lookup(label string) (float64, bool) {
	label = strings.TrimSpace(label)
	for _, b := range s {
		if b.Label == label {
			return b.Value, true
		}
	}
	return 0, false
}

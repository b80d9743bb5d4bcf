package score

import (
	"fmt"

	"github.com/gpakit/gpakit/pkg/extract"
)

// Default field names in the grade export: ZCJ is the authoritative final
// score, the pairs are the final-exam, in-class, and other component scores
// with their weight columns.
const DefaultScoreKey = "ZCJ"

// Component names one sub-score field and its companion weight field.
type Component struct {
	ScoreKey  string `json:"score_key" yaml:"score_key"`
	WeightKey string `json:"weight_key" yaml:"weight_key"`
}

// DefaultComponents returns the component pairs checked during
// reconstruction, in order.
func DefaultComponents() []Component {
	return []Component{
		{ScoreKey: "QMCJ", WeightKey: "QMCJXS"},
		{ScoreKey: "PSCJ", WeightKey: "PSCJXS"},
		{ScoreKey: "QZCJ", WeightKey: "QZCJXS"},
	}
}

// Resolution is the outcome of resolving one row's score. When OK is false
// the row has no usable score and Reason says why. Estimated marks scores
// reconstructed from components rather than read from the authoritative
// field; Reason is diagnostic only and never feeds computation.
type Resolution struct {
	Score     float64
	OK        bool
	Estimated bool
	Reason    string
}

// Resolver turns raw rows into numeric scores, falling back from the
// authoritative field to grade labels to component reconstruction.
type Resolver struct {
	ScoreKey   string
	Scale      Scale
	Components []Component
}

func NewResolver() *Resolver {
	return &Resolver{
		ScoreKey:   DefaultScoreKey,
		Scale:      DefaultScale(),
		Components: DefaultComponents(),
	}
}

// Resolve applies the resolution ladder to one row:
//
//  1. authoritative field parses as a number: return it as-is
//  2. authoritative field is a known grade label: return the mapped value
//  3. reconstruct a normalized weighted mean from component pairs
//
// A present component score whose weight cannot be determined makes the
// whole row unresolvable rather than partially resolvable.
func (r *Resolver) Resolve(row extract.Row) Resolution {
	raw := row[r.ScoreKey]

	if v, ok := ParseFloat(raw); ok {
		return Resolution{Score: v, OK: true, Reason: fmt.Sprintf("%s present as numeric", r.ScoreKey)}
	}

	if s, ok := raw.(string); ok {
		if v, ok := r.Scale.Lookup(s); ok {
			return Resolution{Score: v, OK: true, Reason: fmt.Sprintf("%s mapped from grade label", r.ScoreKey)}
		}
	}

	var (
		weightedSum float64
		totalWeight float64
		haveAny     bool
	)

	for _, c := range r.Components {
		s, ok := ParseFloat(row[c.ScoreKey])
		if !ok {
			continue
		}
		w, ok := ParseFloat(row[c.WeightKey])
		if !ok {
			return Resolution{
				Estimated: true,
				Reason:    fmt.Sprintf("missing weight %s for present component %s", c.WeightKey, c.ScoreKey),
			}
		}
		haveAny = true
		weightedSum += s * w
		totalWeight += w
	}

	if !haveAny {
		return Resolution{Estimated: true, Reason: "no component scores available"}
	}
	if totalWeight <= 0 {
		return Resolution{Estimated: true, Reason: "total weight is zero or invalid"}
	}

	// Weights are relative proportions, not percentages; normalize by the
	// actual total rather than assuming it sums to 100.
	return Resolution{
		Score:     weightedSum / totalWeight,
		OK:        true,
		Estimated: true,
		Reason:    fmt.Sprintf("estimated from components; total_weight=%v", totalWeight),
	}
}

package course

import (
	"log/slog"

	"github.com/gpakit/gpakit/pkg/extract"
	"github.com/gpakit/gpakit/pkg/score"
)

// Raw row fields consumed by the filter.
const (
	fieldCategory = "KCXZDM_DISPLAY"
	fieldCredit   = "XF"
	fieldName     = "XSKCM"
)

// DefaultOfficialTypes are the enrollment categories that count toward the
// official weighted average: required (必修) and restricted elective (限选).
func DefaultOfficialTypes() []string {
	return []string{"必修", "限选"}
}

// Course is one resolved transcript line. By construction Credit > 0 and
// Score is a finite number; rows that cannot satisfy that never materialize
// a Course. EstimateReason is diagnostic only.
type Course struct {
	Name           string  `json:"name" yaml:"name"`
	Type           string  `json:"type" yaml:"type"`
	Score          float64 `json:"score" yaml:"score"`
	Credit         float64 `json:"credit" yaml:"credit"`
	Estimated      bool    `json:"estimated,omitempty" yaml:"estimated,omitempty"`
	EstimateReason string  `json:"estimate_reason,omitempty" yaml:"estimate_reason,omitempty"`
}

// Filter selects the official course set out of raw rows.
type Filter struct {
	OfficialTypes []string
	Resolver      *score.Resolver
}

func NewFilter() *Filter {
	return &Filter{
		OfficialTypes: DefaultOfficialTypes(),
		Resolver:      score.NewResolver(),
	}
}

// Official keeps the rows whose category is one of the official enrollment
// types, whose credit parses as a number greater than zero, and whose score
// resolves. Everything else is dropped without diagnostics.
func (f *Filter) Official(rows []extract.Row) []Course {
	var courses []Course

	for _, r := range rows {
		cat, _ := r[fieldCategory].(string)
		if !contains(f.OfficialTypes, cat) {
			continue
		}

		credit, ok := score.ParseFloat(r[fieldCredit])
		if !ok || credit <= 0 {
			continue
		}

		res := f.Resolver.Resolve(r)
		if !res.OK {
			slog.Debug("row excluded", "course", r[fieldName], "reason", res.Reason)
			continue
		}

		name, _ := r[fieldName].(string)
		courses = append(courses, Course{
			Name:           name,
			Type:           cat,
			Score:          res.Score,
			Credit:         credit,
			Estimated:      res.Estimated,
			EstimateReason: res.Reason,
		})
	}
	return courses
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}

package report

import (
	"github.com/gpakit/gpakit/pkg/course"
	"github.com/gpakit/gpakit/pkg/gpa"
)

// Report is the full result of one pipeline run. Nil averages mean the
// underlying set was empty (zero total credit).
type Report struct {
	Official        []course.Course `json:"official" yaml:"official"`
	OfficialAverage *float64        `json:"official_avg,omitempty" yaml:"official_avg,omitempty"`
	Core            []course.Course `json:"core" yaml:"core"`
	CoreAverage     *float64        `json:"core_avg,omitempty" yaml:"core_avg,omitempty"`
	CoreGPA         *float64        `json:"core_gpa,omitempty" yaml:"core_gpa,omitempty"`
}

// Build aggregates the official course set: the credit-weighted average
// over all of it, plus the core-major subset with its 100-scale average and
// 4.0-scale GPA.
func Build(official []course.Course, classifier *course.Classifier, table gpa.Table) Report {
	r := Report{
		Official: official,
		Core:     classifier.Core(official),
	}

	if avg, ok := gpa.WeightedAverage(r.Official); ok {
		r.OfficialAverage = &avg
	}
	if avg, ok := gpa.WeightedAverage(r.Core); ok {
		r.CoreAverage = &avg
	}
	if avg, ok := gpa.WeightedGradePoints(r.Core, table); ok {
		r.CoreGPA = &avg
	}
	return r
}

package gpa

import "github.com/gpakit/gpakit/pkg/course"

// Breakpoint maps the lowest 100-scale score of a band to its 4.0-scale
// grade points.
type Breakpoint struct {
	Min    float64 `json:"min" yaml:"min"`
	Points float64 `json:"points" yaml:"points"`
}

// Table is an ordered breakpoint list evaluated highest threshold first.
// The mapping is piecewise constant and right-continuous at each threshold.
type Table []Breakpoint

// DefaultTable returns the common US-style 100 → 4.0 conversion.
func DefaultTable() Table {
	return Table{
		{Min: 93, Points: 4.0},
		{Min: 90, Points: 3.7},
		{Min: 87, Points: 3.3},
		{Min: 83, Points: 3.0},
		{Min: 80, Points: 2.7},
		{Min: 77, Points: 2.3},
		{Min: 73, Points: 2.0},
		{Min: 70, Points: 1.7},
		{Min: 67, Points: 1.3},
		{Min: 63, Points: 1.0},
	}
}

// Points converts a 100-scale score to grade points. Scores below the
// lowest threshold map to 0.0.
func (t Table) Points(score float64) float64 {
	for _, b := range t {
		if score >= b.Min {
			return b.Points
		}
	}
	return 0
}

// WeightedAverage returns the credit-weighted mean score of courses on the
// native 100 scale. ok is false when total credit is zero, which given the
// positive-credit invariant only happens on empty input.
func WeightedAverage(courses []course.Course) (avg float64, ok bool) {
	var sum, credits float64
	for _, c := range courses {
		sum += c.Score * c.Credit
		credits += c.Credit
	}
	if credits == 0 {
		return 0, false
	}
	return sum / credits, true
}

// WeightedGradePoints returns the credit-weighted mean of the 4.0-scale
// grade points of courses, with the same zero-credit rule as
// WeightedAverage.
func WeightedGradePoints(courses []course.Course, t Table) (avg float64, ok bool) {
	var sum, credits float64
	for _, c := range courses {
		sum += t.Points(c.Score) * c.Credit
		credits += c.Credit
	}
	if credits == 0 {
		return 0, false
	}
	return sum / credits, true
}

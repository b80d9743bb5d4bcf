package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/gpakit/gpakit/pkg/course"
)

// Rendering formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// NotAvailable marks an undefined (zero-credit) average in text output.
const NotAvailable = "N/A"

// Render writes the report to w in the requested format.
func Render(w io.Writer, r Report, format string) error {
	switch format {
	case FormatJSON:
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return e.Encode(r)
	case FormatYAML, "yml":
		return yaml.NewEncoder(w).Encode(r)
	case FormatText, "":
		return renderText(w, r)
	default:
		return errors.Errorf("unknown output format: %s", format)
	}
}

func renderText(w io.Writer, r Report) error {
	fmt.Fprintln(w, "========== Official courses ==========")
	fmt.Fprintln(w)
	for _, c := range r.Official {
		fmt.Fprintf(w, "- %s | %s | score=%v | credit=%v%s\n", c.Name, c.Type, c.Score, c.Credit, estMark(c.Estimated))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Official (required + restricted elective) weighted average (100 scale):")
	fmt.Fprintln(w, formatAvg(r.OfficialAverage))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "========== Core major courses (official subset) ==========")
	fmt.Fprintln(w)
	for _, c := range r.Core {
		fmt.Fprintf(w, "- %s | score=%v | credit=%v%s\n", c.Name, c.Score, c.Credit, estMark(c.Estimated))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Core major weighted average (100 scale):")
	fmt.Fprintln(w, formatAvg(r.CoreAverage))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Core major GPA (4.0 scale):")
	fmt.Fprintln(w, formatAvg(r.CoreGPA))

	if reasons := estimatedCourses(r.Official); len(reasons) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Estimated scores:")
		for _, line := range reasons {
			fmt.Fprintln(w, line)
		}
	}
	return nil
}

func formatAvg(v *float64) string {
	if v == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%.3f", *v)
}

func estMark(estimated bool) string {
	if estimated {
		return " (estimated)"
	}
	return ""
}

func estimatedCourses(courses []course.Course) []string {
	var lines []string
	for _, c := range courses {
		if c.Estimated {
			lines = append(lines, fmt.Sprintf("- %s: %s", c.Name, c.EstimateReason))
		}
	}
	return lines
}

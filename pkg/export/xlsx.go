package export

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/gpakit/gpakit/pkg/course"
	"github.com/gpakit/gpakit/pkg/report"
)

const (
	sheetCourses = "Courses"
	sheetSummary = "Summary"
)

var courseHeader = []string{"Name", "Type", "Score", "Credit", "Core", "Estimated", "Estimate reason"}

// Workbook renders the report as an Excel workbook: one sheet listing every
// official course, one sheet holding the three aggregate results.
func Workbook(r report.Report) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(f.GetSheetName(0), sheetCourses); err != nil {
		return nil, errors.Wrap(err, "renaming course sheet")
	}
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return nil, errors.Wrap(err, "creating summary sheet")
	}

	core := make(map[string]bool, len(r.Core))
	for _, c := range r.Core {
		core[c.Name] = true
	}

	if err := fillCourses(f, r.Official, core); err != nil {
		return nil, err
	}
	if err := fillSummary(f, r); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

// Write saves the workbook for the report at path.
func Write(path string, r report.Report) error {
	f, err := Workbook(r)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "saving workbook: %s", path)
	}
	return nil
}

func fillCourses(f *excelize.File, courses []course.Course, core map[string]bool) error {
	for i, h := range courseHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return errors.Wrap(err, "header cell name")
		}
		if err := f.SetCellValue(sheetCourses, cell, h); err != nil {
			return errors.Wrap(err, "writing header")
		}
	}

	for i, c := range courses {
		row := i + 2
		values := []any{c.Name, c.Type, c.Score, c.Credit, core[c.Name], c.Estimated, c.EstimateReason}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return errors.Wrap(err, "course cell name")
			}
			if err := f.SetCellValue(sheetCourses, cell, v); err != nil {
				return errors.Wrapf(err, "writing course row %d", row)
			}
		}
	}
	return nil
}

func fillSummary(f *excelize.File, r report.Report) error {
	lines := []struct {
		label string
		value *float64
	}{
		{"Official weighted average (100)", r.OfficialAverage},
		{"Core major weighted average (100)", r.CoreAverage},
		{"Core major GPA (4.0)", r.CoreGPA},
	}

	for i, l := range lines {
		row := i + 1
		if err := f.SetCellValue(sheetSummary, fmt.Sprintf("A%d", row), l.label); err != nil {
			return errors.Wrap(err, "writing summary label")
		}
		if l.value == nil {
			if err := f.SetCellValue(sheetSummary, fmt.Sprintf("B%d", row), report.NotAvailable); err != nil {
				return errors.Wrap(err, "writing summary value")
			}
			continue
		}
		if err := f.SetCellValue(sheetSummary, fmt.Sprintf("B%d", row), *l.value); err != nil {
			return errors.Wrap(err, "writing summary value")
		}
	}
	return nil
}

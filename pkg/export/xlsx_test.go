package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/gpakit/gpakit/pkg/course"
	"github.com/gpakit/gpakit/pkg/report"
)

func testReport() report.Report {
	avg := 90.2
	coreAvg := 87.0
	coreGPA := 3.3
	return report.Report{
		Official: []course.Course{
			{Name: "信号与系统", Type: "必修", Score: 87, Credit: 3, Estimated: true, EstimateReason: "estimated from components; total_weight=100"},
			{Name: "大学英语", Type: "必修", Score: 95, Credit: 2},
		},
		OfficialAverage: &avg,
		Core:            []course.Course{{Name: "信号与系统", Score: 87, Credit: 3}},
		CoreAverage:     &coreAvg,
		CoreGPA:         &coreGPA,
	}
}

func TestWorkbook(t *testing.T) {
	f, err := Workbook(testReport())
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue(sheetCourses, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Name", name)

	first, err := f.GetCellValue(sheetCourses, "A2")
	require.NoError(t, err)
	assert.Equal(t, "信号与系统", first)

	isCore, err := f.GetCellValue(sheetCourses, "E2")
	require.NoError(t, err)
	assert.Equal(t, "TRUE", isCore)

	label, err := f.GetCellValue(sheetSummary, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Official weighted average (100)", label)

	avg, err := f.GetCellValue(sheetSummary, "B1")
	require.NoError(t, err)
	assert.Equal(t, "90.2", avg)
}

func TestWorkbook_UndefinedAverages(t *testing.T) {
	f, err := Workbook(report.Report{})
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue(sheetSummary, "B1")
	require.NoError(t, err)
	assert.Equal(t, report.NotAvailable, v)
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, Write(path, testReport()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetCourses)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

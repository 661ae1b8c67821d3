package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mmynk/classboard/internal/analysis"
	"github.com/mmynk/classboard/internal/models"
)

func testInput() Input {
	return Input{
		GroupCount: 2,
		Labels:     models.DefaultLabels(),
		People: []models.Person{
			{ID: "1", Name: "Zoe", Gender: models.GenderFemale, LabelIDs: []string{"t2", "t3"}, Group: 1},
			{ID: "2", Name: "adam", Gender: models.GenderMale, Group: 1},
			{ID: "3", Name: "Mia", Group: models.Unassigned},
		},
		Locale: "en",
	}
}

func readBack(t *testing.T, in Input) *excelize.File {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, in))
	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestAssignmentsSheet(t *testing.T) {
	f := readBack(t, testInput())

	assert.Equal(t, []string{AssignmentsSheet}, f.GetSheetList())

	rows, err := f.GetRows(AssignmentsSheet)
	require.NoError(t, err)
	want := [][]string{
		{"Group", "Name", "Gender", "Labels"},
		{"Group 1", "adam", "Male"},
		{"Group 1", "Zoe", "Female", "Wheelchair, Aggressive behavior"},
		{"Group 2", "No one assigned"},
		{"Unassigned", "Mia", "-"},
	}
	assert.Equal(t, want, rows)
}

func TestStatsAndAnalysisSheets(t *testing.T) {
	in := testInput()
	in.IncludeStats = true
	res := analysis.TextResult("**Heads up**\nsecond line")
	in.Analysis = &res

	f := readBack(t, in)
	assert.Equal(t, []string{AssignmentsSheet, StatsSheet, AnalysisSheet}, f.GetSheetList())

	rows, err := f.GetRows(StatsSheet)
	require.NoError(t, err)
	assert.Equal(t, []string{"Category", "Group 1", "Group 2"}, rows[0])
	assert.Equal(t, []string{"Total", "2", "0"}, rows[1])
	assert.Equal(t, []string{"Male", "1", "0"}, rows[2])
	assert.Equal(t, []string{"Female", "1", "0"}, rows[3])
	assert.Empty(t, rows[4])
	// Labels follow in label order: Aggressive behavior, Wheelchair, ...
	assert.Equal(t, []string{"Aggressive behavior", "1", "-"}, rows[5])
	assert.Equal(t, []string{"Wheelchair", "1", "-"}, rows[6])
	assert.Len(t, rows, 5+len(in.Labels))

	lines, err := f.GetRows(AnalysisSheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Heads up"}, {"second line"}}, lines)
}

func TestAnalysisWithoutStats(t *testing.T) {
	in := testInput()
	res := analysis.TextResult("only text")
	in.Analysis = &res

	f := readBack(t, in)
	assert.Equal(t, []string{AssignmentsSheet, AnalysisSheet}, f.GetSheetList())
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "classboard-roster_2024-11-02.xlsx", FileName(time.Date(2024, 11, 2, 23, 0, 0, 0, time.UTC)))
}

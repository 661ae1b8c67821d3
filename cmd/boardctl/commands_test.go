package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mmynk/classboard/internal/constraints"
	"github.com/mmynk/classboard/internal/models"
)

const project = `{
  "schoolLevel": "ELEMENTARY_MIDDLE",
  "classCount": 2,
  "students": [
    {"id": "a", "name": "Olivia", "gender": "female", "tagIds": [], "assignedClassId": "1"},
    {"id": "b", "name": "Liam", "gender": "male", "tagIds": [], "assignedClassId": "1"},
    {"id": "c", "name": "Noah", "tagIds": [], "assignedClassId": null}
  ],
  "tags": [],
  "separationRules": [{"id": "r", "studentIds": ["a", "b"]}]
}`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CLASSBOARD_ANALYSIS_PROVIDER", "none")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeProject(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "project.json")
	require.NoError(t, os.WriteFile(path, []byte(project), 0o644))
	return path
}

func TestCheck(t *testing.T) {
	path := writeProject(t)

	out, err := run(t, "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Group 1: 2/6 separation rule violated")
	assert.Contains(t, out, "Group 2: 0/6 ok")
	assert.Contains(t, out, "Unassigned: 1")
	assert.Contains(t, out, "Violating: Olivia")

	_, err = run(t, "check", "--strict", path)
	assert.ErrorIs(t, err, errViolations)
}

func TestPrintReportCapacityStatus(t *testing.T) {
	report := constraints.Report{
		Capacity: 2,
		Groups: []constraints.GroupStatus{
			{Group: 1, Occupancy: 2, Capacity: 2},
			{Group: 2, Occupancy: 1, Capacity: 2},
		},
	}
	var out bytes.Buffer
	bad := printReport(&out, models.AppState{}, report)
	assert.False(t, bad, "a full group is not a violation")
	assert.Contains(t, out.String(), "Group 1: 2/2 at capacity")
	assert.Contains(t, out.String(), "Group 2: 1/2 ok")

	report.Groups[0] = constraints.GroupStatus{Group: 1, Occupancy: 3, Capacity: 2, OverCapacity: true}
	out.Reset()
	bad = printReport(&out, models.AppState{}, report)
	assert.True(t, bad)
	assert.Contains(t, out.String(), "Group 1: 3/2 over capacity")
	assert.NotContains(t, out.String(), "at capacity")
}

func TestCheckRejectsInvalidProject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"students":[]}`), 0o644))

	_, err := run(t, "check", path)
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	path := writeProject(t)
	out := filepath.Join(t.TempDir(), "roster.xlsx")

	_, err := run(t, "export", path, "-o", out)
	require.NoError(t, err)

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Assignments", "Group Stats"}, f.GetSheetList())
}

func TestSampleAndMask(t *testing.T) {
	out, err := run(t, "sample")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{\n"))
	assert.Contains(t, out, `"students"`)

	out, err = run(t, "mask", "Olivia", "Al")
	require.NoError(t, err)
	assert.Equal(t, "O****a\nA*\n", out)
}

func TestAnalyzePromptAndUnconfigured(t *testing.T) {
	path := writeProject(t)

	out, err := run(t, "analyze", "--prompt", path)
	require.NoError(t, err)
	assert.Contains(t, out, "O****a(F)")
	assert.NotContains(t, out, "Olivia")

	out, err = run(t, "analyze", path)
	require.NoError(t, err)
	assert.Contains(t, out, "API key not configured")
}

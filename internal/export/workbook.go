// Package export renders the board as a spreadsheet workbook.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mmynk/classboard/internal/analysis"
	"github.com/mmynk/classboard/internal/calculator"
	"github.com/mmynk/classboard/internal/models"
)

// Sheet names.
const (
	AssignmentsSheet = "Assignments"
	StatsSheet       = "Group Stats"
	AnalysisSheet    = "Analysis"
)

const (
	unassignedLabel = "Unassigned"
	emptyGroupLabel = "No one assigned"
)

// AssignmentsHeader is the first row of the assignments sheet.
var AssignmentsHeader = []string{"Group", "Name", "Gender", "Labels"}

// Input is what the workbook is built from.
type Input struct {
	People     []models.Person
	Labels     []models.Label
	GroupCount int

	// IncludeStats adds the per-group statistics sheet.
	IncludeStats bool

	// Analysis adds the analysis sheet when non-nil.
	Analysis *analysis.Result

	// Locale drives name ordering within a group.
	Locale string
}

// InputFromState copies the parts of state the workbook needs.
func InputFromState(state models.AppState, includeStats bool, result *analysis.Result, locale string) Input {
	return Input{
		People:       state.People,
		Labels:       state.Labels,
		GroupCount:   state.GroupCount,
		IncludeStats: includeStats,
		Analysis:     result,
		Locale:       locale,
	}
}

// FileName names a workbook exported at now.
func FileName(now time.Time) string {
	return "classboard-roster_" + now.Format("2006-01-02") + ".xlsx"
}

// Write renders the workbook to w.
func Write(w io.Writer, in Input) error {
	f, err := Workbook(in)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// Workbook builds the workbook. The caller must Close the returned file.
func Workbook(in Input) (*excelize.File, error) {
	f := excelize.NewFile()

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	// The default sheet is renamed rather than deleted so it keeps index 0.
	if err := f.SetSheetName("Sheet1", AssignmentsSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if err := writeAssignments(f, in, header); err != nil {
		f.Close()
		return nil, err
	}

	if in.IncludeStats {
		if err := writeStats(f, in, header); err != nil {
			f.Close()
			return nil, err
		}
	}

	if in.Analysis != nil {
		if err := writeAnalysis(f, *in.Analysis); err != nil {
			f.Close()
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}

func writeAssignments(f *excelize.File, in Input, header int) error {
	rows := [][]any{toRow(AssignmentsHeader)}

	for g := 1; g <= in.GroupCount; g++ {
		group := groupName(g)
		members := filter(in.People, func(p models.Person) bool { return p.Group == models.GroupID(g) })
		models.SortByName(members, in.Locale)
		if len(members) == 0 {
			rows = append(rows, []any{group, emptyGroupLabel})
			continue
		}
		for _, p := range members {
			rows = append(rows, personRow(group, p, in.Labels))
		}
	}

	unassigned := filter(in.People, func(p models.Person) bool { return !p.Group.IsAssigned() })
	models.SortByName(unassigned, in.Locale)
	for _, p := range unassigned {
		rows = append(rows, personRow(unassignedLabel, p, in.Labels))
	}

	if err := writeRows(f, AssignmentsSheet, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(AssignmentsSheet, "A1", "D1", header); err != nil {
		return fmt.Errorf("failed to set header style: %w", err)
	}
	for col, width := range map[string]float64{"A": 12, "B": 15, "C": 8, "D": 40} {
		if err := f.SetColWidth(AssignmentsSheet, col, col, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}
	return nil
}

func writeStats(f *excelize.File, in Input, header int) error {
	if _, err := f.NewSheet(StatsSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	head := []any{"Category"}
	for g := 1; g <= in.GroupCount; g++ {
		head = append(head, groupName(g))
	}
	rows := [][]any{head}

	tallies := calculator.Tally(in.People, in.GroupCount)
	count := func(title string, n func(t calculator.GroupTally) int, blankZero bool) []any {
		row := []any{title}
		for _, t := range tallies {
			if v := n(t); blankZero && v == 0 {
				row = append(row, "-")
			} else {
				row = append(row, v)
			}
		}
		return row
	}

	rows = append(rows,
		count("Total", func(t calculator.GroupTally) int { return t.Total }, false),
		count("Male", func(t calculator.GroupTally) int { return t.Male }, false),
		count("Female", func(t calculator.GroupTally) int { return t.Female }, false),
		nil,
	)
	for _, l := range in.Labels {
		id := l.ID
		rows = append(rows, count(l.Label, func(t calculator.GroupTally) int { return t.Label(id) }, true))
	}

	if err := writeRows(f, StatsSheet, rows); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(in.GroupCount+1, 1)
	if err != nil {
		return fmt.Errorf("failed to convert coordinates: %w", err)
	}
	if err := f.SetCellStyle(StatsSheet, "A1", last, header); err != nil {
		return fmt.Errorf("failed to set header style: %w", err)
	}
	if err := f.SetColWidth(StatsSheet, "A", "A", 20); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}
	return nil
}

func writeAnalysis(f *excelize.File, result analysis.Result) error {
	if _, err := f.NewSheet(AnalysisSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	lines := strings.Split(result.Flatten(), "\n")
	rows := make([][]any, len(lines))
	for i, line := range lines {
		rows[i] = []any{line}
	}
	if err := writeRows(f, AnalysisSheet, rows); err != nil {
		return err
	}
	if err := f.SetColWidth(AnalysisSheet, "A", "A", 120); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func personRow(group string, p models.Person, labels []models.Label) []any {
	var names []string
	for _, id := range p.LabelIDs {
		for _, l := range labels {
			if l.ID == id {
				names = append(names, l.Label)
				break
			}
		}
	}
	row := []any{group, p.Name, genderName(p.Gender)}
	if len(names) > 0 {
		row = append(row, strings.Join(names, ", "))
	}
	return row
}

func genderName(g models.Gender) string {
	switch g {
	case models.GenderMale:
		return "Male"
	case models.GenderFemale:
		return "Female"
	}
	return "-"
}

func groupName(g int) string {
	return fmt.Sprintf("Group %d", g)
}

func filter(people []models.Person, keep func(models.Person) bool) []models.Person {
	var out []models.Person
	for _, p := range people {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func toRow(values []string) []any {
	row := make([]any, len(values))
	for i, v := range values {
		row[i] = v
	}
	return row
}

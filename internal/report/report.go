// Package report exports learner progress to spreadsheets.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/devpath/internal/curriculum"
	"github.com/abhisek/devpath/internal/tracker"
)

// SheetName is the worksheet holding the progress table.
const SheetName = "Progress"

// Columns is the header row of the progress sheet.
var Columns = []string{
	"Learner", "Language", "Level", "Current Concept", "Concepts", "Exercises",
	"Project", "Minutes", "Mastery %", "Score", "Ready", "Est. Minutes Left", "Next Step",
}

// WriteXLSX writes one row per learner path to w as an XLSX workbook.
func WriteXLSX(w io.Writer, rows []tracker.LearnerStatus) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(Columns))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", bold); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}

	for i, st := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := rowValues(st)
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(SheetName, "A", "D", 18); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, lastCol, lastCol, 48); err != nil {
		return err
	}
	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func rowValues(st tracker.LearnerStatus) []any {
	next := ""
	if len(st.NextSteps) > 0 {
		next = st.NextSteps[0]
	}
	return []any{
		st.LearnerID,
		curriculum.LanguageDisplayName(st.Language),
		st.Level.DisplayName(),
		st.CurrentConcept,
		fmt.Sprintf("%d/%d", len(st.CompletedConcepts), st.Requirements.ConceptsCompleted),
		fmt.Sprintf("%d/%d", st.ExercisesCompleted, st.Requirements.ExercisesCompleted),
		yesNo(st.ProjectCompleted),
		st.TotalTimeSpent,
		st.MasteryLevel,
		st.GraduationScore,
		yesNo(st.IsReadyForGraduation),
		st.EstimatedTimeToGraduation,
		next,
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// ReadRows returns the data rows of a workbook written by WriteXLSX,
// without the header.
func ReadRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 || !strings.EqualFold(firstCell(rows[0]), Columns[0]) {
		return nil, fmt.Errorf("sheet %q has no progress header", SheetName)
	}
	return rows[1:], nil
}

func firstCell(row []string) string {
	if len(row) == 0 {
		return ""
	}
	return row[0]
}

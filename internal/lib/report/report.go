// Package report renders the admin hour summaries as an XLSX workbook.
package report

import (
	"fmt"
	"strings"

	"github.com/deppfellow/timesheet/internal/model"
	"github.com/xuri/excelize/v2"
)

const (
	SheetEmployees = "Employees"
	SheetPhases    = "Phases"

	// ContentType is the MIME type of the generated workbook.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var (
	employeeHeader = []any{"Employee", "Total hours", "Breakdown"}
	phaseHeader    = []any{"Code", "Description", "Category", "Hours", "Threshold", "% used", "Exceeded"}
)

// Filename names the export of period, "all" when no month was given.
func Filename(period *string) string {
	if period == nil {
		return "timesheet-hours-all.xlsx"
	}
	return fmt.Sprintf("timesheet-hours-%s.xlsx", *period)
}

// Build writes employees to the "Employees" sheet and phases to the
// "Phases" sheet and returns the encoded workbook.
func Build(employees []model.EmployeeHours, phases []model.PhaseTotal) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetEmployees); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(SheetPhases); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	if err := writeRow(f, SheetEmployees, 1, employeeHeader); err != nil {
		return nil, err
	}
	for i, employee := range employees {
		row := []any{employee.User.FullName, employee.TotalHours, breakdown(employee.Phases)}
		if err := writeRow(f, SheetEmployees, i+2, row); err != nil {
			return nil, err
		}
	}

	if err := writeRow(f, SheetPhases, 1, phaseHeader); err != nil {
		return nil, err
	}
	for i, total := range phases {
		exceeded := "no"
		if total.Exceeded {
			exceeded = "yes"
		}
		row := []any{
			total.Phase.Code,
			total.Phase.Description,
			total.Phase.Category,
			total.TotalHours,
			total.Threshold,
			total.PercentUsed,
			exceeded,
		}
		if err := writeRow(f, SheetPhases, i+2, row); err != nil {
			return nil, err
		}
	}

	for sheet, lastCol := range map[string]string{SheetEmployees: "C", SheetPhases: "G"} {
		if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, "A", "B", 18); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(SheetEmployees, "A", "A", 32); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(SheetPhases, "B", "B", 48); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// breakdown renders "BOR0101: 12h, BOR0102: 3h".
func breakdown(phases []model.PhaseHours) string {
	parts := make([]string, 0, len(phases))
	for _, p := range phases {
		parts = append(parts, fmt.Sprintf("%s: %dh", p.Phase.Code, p.Hours))
	}
	return strings.Join(parts, ", ")
}

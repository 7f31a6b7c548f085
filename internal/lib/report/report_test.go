package report

import (
	"bytes"
	"testing"

	"github.com/deppfellow/timesheet/internal/model"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildWritesBothSheets(t *testing.T) {
	t.Parallel()

	phase := model.WorkPhase{ID: 1, Code: "BOR0101", Description: "FORATURA PASSAGGI CAVI SU SOLETTA", Category: "BOR01", HourThreshold: 100}

	data, err := Build(
		[]model.EmployeeHours{
			{User: model.User{FullName: "MARIO ROSSI"}, TotalHours: 12, Phases: []model.PhaseHours{{PhaseID: 1, Phase: phase, Hours: 12}}},
			{User: model.User{FullName: "LUCA BIANCHI"}, Phases: []model.PhaseHours{}},
		},
		[]model.PhaseTotal{{Phase: phase, TotalHours: 12, Threshold: 100, PercentUsed: 12}},
	)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	require.Equal(t, []string{SheetEmployees, SheetPhases}, f.GetSheetList())

	employees, err := f.GetRows(SheetEmployees)
	require.NoError(t, err)
	require.Len(t, employees, 3)
	require.Equal(t, []string{"Employee", "Total hours", "Breakdown"}, employees[0])
	require.Equal(t, []string{"MARIO ROSSI", "12", "BOR0101: 12h"}, employees[1])
	require.Equal(t, "0", employees[2][1])

	phases, err := f.GetRows(SheetPhases)
	require.NoError(t, err)
	require.Len(t, phases, 2)
	require.Equal(t, "BOR0101", phases[1][0])
	require.Equal(t, "100", phases[1][4])
	require.Equal(t, "no", phases[1][6])
}

func TestFilename(t *testing.T) {
	t.Parallel()

	month := "2024-05"
	require.Equal(t, "timesheet-hours-2024-05.xlsx", Filename(&month))
	require.Equal(t, "timesheet-hours-all.xlsx", Filename(nil))
}

func TestBreakdownJoinsPhases(t *testing.T) {
	t.Parallel()

	require.Equal(t, "BOR0101: 4h, BOR0102: 1h", breakdown([]model.PhaseHours{
		{Phase: model.WorkPhase{Code: "BOR0101"}, Hours: 4},
		{Phase: model.WorkPhase{Code: "BOR0102"}, Hours: 1},
	}))
	require.Equal(t, "", breakdown(nil))
}

package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/deppfellow/timesheet/internal/model"
	"github.com/deppfellow/timesheet/internal/sqlerr"
	"github.com/stretchr/testify/require"
)

const (
	ownerID = "5f0c3a4e-7f43-4a8e-9a64-2f8f4b1d2c11"
	otherID = "0b8e3cf9-2f0b-4d59-9c1e-6f7f9f7a0a22"
)

var (
	owner = Actor{UserID: ownerID}
	other = Actor{UserID: otherID}
	admin = Actor{UserID: "admin-id", IsAdmin: true}
)

func intPtr(v int) *int { return &v }

func newTimesheetFixture(existing ...model.Timesheet) (*TimesheetService, *fakeTimesheets) {
	timesheets := newFakeTimesheets(existing...)
	phases := newFakePhases(
		model.WorkPhase{ID: 1, Code: "BOR0101", HourThreshold: 100},
		model.WorkPhase{ID: 2, Code: "BOR0102", HourThreshold: 100},
	)
	return NewTimesheetService(timesheets, phases), timesheets
}

func TestListMonthUsesHalfOpenRange(t *testing.T) {
	t.Parallel()

	svc, _ := newTimesheetFixture(
		model.Timesheet{ID: 1, UserID: ownerID, Date: "2024-01-31", Type: model.TypeSick, Hours: 8},
		model.Timesheet{ID: 2, UserID: ownerID, Date: "2024-02-01", Type: model.TypeWorked, WorkPhaseID: intPtr(1), Hours: 8},
		model.Timesheet{ID: 3, UserID: ownerID, Date: "2024-02-29", Type: model.TypeVacation, Hours: 8},
		model.Timesheet{ID: 4, UserID: ownerID, Date: "2024-03-01", Type: model.TypeSick, Hours: 8},
		model.Timesheet{ID: 5, UserID: otherID, Date: "2024-02-10", Type: model.TypeSick, Hours: 8},
	)

	list, err := svc.ListMonth(context.Background(), owner, ownerID, "2024-02")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "2024-02-29", list[0].Date)
	require.Equal(t, "2024-02-01", list[1].Date)
}

func TestListMonthAccessRules(t *testing.T) {
	t.Parallel()

	svc, _ := newTimesheetFixture()

	_, err := svc.ListMonth(context.Background(), other, ownerID, "2024-02")
	requireHTTPStatus(t, err, http.StatusForbidden)

	list, err := svc.ListMonth(context.Background(), admin, ownerID, "2024-02")
	require.NoError(t, err)
	require.Empty(t, list)

	_, err = svc.ListMonth(context.Background(), owner, ownerID, "2024-13")
	requireHTTPStatus(t, err, http.StatusBadRequest)
}

func TestCreateNormalizesLeaveDays(t *testing.T) {
	t.Parallel()

	svc, _ := newTimesheetFixture()

	created, err := svc.Create(context.Background(), owner, &model.CreateTimesheetRequest{
		UserID:      ownerID,
		Date:        "2024-05-02",
		Type:        model.TypeVacation,
		WorkPhaseID: intPtr(1),
		Hours:       2,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Equal(t, model.LeaveHours, created.Hours)
	require.Nil(t, created.WorkPhaseID)
}

func TestCreateRules(t *testing.T) {
	t.Parallel()

	svc, _ := newTimesheetFixture(
		model.Timesheet{ID: 1, UserID: ownerID, Date: "2024-05-02", Type: model.TypeSick, Hours: 8},
	)
	ctx := context.Background()

	worked := func(date string, phase *int, hours int) *model.CreateTimesheetRequest {
		return &model.CreateTimesheetRequest{UserID: ownerID, Date: date, Type: model.TypeWorked, WorkPhaseID: phase, Hours: hours}
	}

	_, err := svc.Create(ctx, other, worked("2024-05-03", intPtr(1), 8))
	requireHTTPStatus(t, err, http.StatusForbidden)

	_, err = svc.Create(ctx, admin, worked("2024-05-03", intPtr(1), 8))
	requireHTTPStatus(t, err, http.StatusForbidden)

	_, err = svc.Create(ctx, owner, worked("2024-05-02", intPtr(1), 8))
	httpErr := requireHTTPStatus(t, err, http.StatusConflict)
	require.Equal(t, "TIMESHEET_ALREADY_EXISTS", httpErr.Code)

	_, err = svc.Create(ctx, owner, worked("2024-05-03", intPtr(99), 8))
	httpErr = requireHTTPStatus(t, err, http.StatusBadRequest)
	require.Equal(t, "workPhaseId", httpErr.Errors[0].Field)

	_, err = svc.Create(ctx, owner, worked("2024-05-03", nil, 8))
	requireHTTPStatus(t, err, http.StatusBadRequest)

	_, err = svc.Create(ctx, owner, worked("2024-05-03", intPtr(1), 0))
	requireHTTPStatus(t, err, http.StatusBadRequest)

	created, err := svc.Create(ctx, owner, worked("2024-05-03", intPtr(2), 10))
	require.NoError(t, err)
	require.Equal(t, 10, created.Hours)
	require.Equal(t, 2, *created.WorkPhaseID)
}

func TestUpdateMergesPartialFields(t *testing.T) {
	t.Parallel()

	svc, store := newTimesheetFixture(
		model.Timesheet{ID: 7, UserID: ownerID, Date: "2023-11-20", Type: model.TypeWorked, WorkPhaseID: intPtr(1), Hours: 6},
	)

	hours := 9
	updated, err := svc.Update(context.Background(), owner, &model.UpdateTimesheetRequest{ID: 7, Hours: &hours})
	require.NoError(t, err)
	require.Equal(t, 9, updated.Hours)
	require.Equal(t, 1, *updated.WorkPhaseID)
	require.Equal(t, "2023-11-20", store.byID[7].Date)

	sick := model.TypeSick
	updated, err = svc.Update(context.Background(), owner, &model.UpdateTimesheetRequest{ID: 7, Type: &sick})
	require.NoError(t, err)
	require.Equal(t, model.LeaveHours, updated.Hours)
	require.Nil(t, store.byID[7].WorkPhaseID)
}

func TestUpdateRules(t *testing.T) {
	t.Parallel()

	svc, _ := newTimesheetFixture(
		model.Timesheet{ID: 1, UserID: ownerID, Date: "2024-05-02", Type: model.TypeSick, Hours: 8},
		model.Timesheet{ID: 2, UserID: ownerID, Date: "2024-05-03", Type: model.TypeSick, Hours: 8},
	)
	ctx := context.Background()

	_, err := svc.Update(ctx, owner, &model.UpdateTimesheetRequest{ID: 42})
	require.True(t, sqlerr.IsNotFound(err))

	_, err = svc.Update(ctx, other, &model.UpdateTimesheetRequest{ID: 1})
	requireHTTPStatus(t, err, http.StatusForbidden)

	taken := "2024-05-03"
	_, err = svc.Update(ctx, owner, &model.UpdateTimesheetRequest{ID: 1, Date: &taken})
	requireHTTPStatus(t, err, http.StatusConflict)

	worked := model.TypeWorked
	_, err = svc.Update(ctx, owner, &model.UpdateTimesheetRequest{ID: 1, Type: &worked})
	requireHTTPStatus(t, err, http.StatusBadRequest)

	free := "2024-05-04"
	moved, err := svc.Update(ctx, owner, &model.UpdateTimesheetRequest{ID: 1, Date: &free})
	require.NoError(t, err)
	require.Equal(t, free, moved.Date)
}

func TestDeleteRules(t *testing.T) {
	t.Parallel()

	svc, store := newTimesheetFixture(
		model.Timesheet{ID: 1, UserID: ownerID, Date: "2022-01-10", Type: model.TypeSick, Hours: 8},
	)
	ctx := context.Background()

	require.True(t, sqlerr.IsNotFound(svc.Delete(ctx, owner, 9)))
	requireHTTPStatus(t, svc.Delete(ctx, other, 1), http.StatusForbidden)

	// entries outside the current month can still be deleted
	require.NoError(t, svc.Delete(ctx, owner, 1))
	require.Empty(t, store.byID)
}

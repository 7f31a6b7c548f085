package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/timesheet/internal/errs"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestHandleErrorUniqueViolationOnTimesheetDate(t *testing.T) {
	t.Parallel()

	err := HandleError(&pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		TableName:      "timesheets",
		ConstraintName: "timesheets_user_id_date_key",
	})

	httpErr := asHTTPError(t, err)
	require.Equal(t, http.StatusConflict, httpErr.Status)
	require.Equal(t, "TIMESHEET_ALREADY_EXISTS", httpErr.Code)
	require.Equal(t, "A Timesheet with this Date already exists", httpErr.Message)
	require.True(t, httpErr.Override)
}

func TestHandleErrorUniqueViolationOnPhaseCode(t *testing.T) {
	t.Parallel()

	err := HandleError(&pgconn.PgError{
		Code:           "23505",
		TableName:      "work_phases",
		ConstraintName: "work_phases_code_key",
	})

	httpErr := asHTTPError(t, err)
	require.Equal(t, http.StatusConflict, httpErr.Status)
	require.Equal(t, "WORK_PHASE_ALREADY_EXISTS", httpErr.Code)
	require.Equal(t, "A Work Phase with this Code already exists", httpErr.Message)
}

func TestHandleErrorForeignKeyViolation(t *testing.T) {
	t.Parallel()

	err := HandleError(&pgconn.PgError{
		Code:       "23503",
		TableName:  "timesheets",
		ColumnName: "work_phase_id",
	})

	httpErr := asHTTPError(t, err)
	require.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Equal(t, "TIMESHEET_NOT_FOUND", httpErr.Code)
	require.Equal(t, "The referenced Work Phase does not exist", httpErr.Message)
}

func TestHandleErrorNotNullViolationHasFieldError(t *testing.T) {
	t.Parallel()

	err := HandleError(&pgconn.PgError{
		Code:       "23502",
		TableName:  "work_phases",
		ColumnName: "description",
	})

	httpErr := asHTTPError(t, err)
	require.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Len(t, httpErr.Errors, 1)
	require.Equal(t, "description", httpErr.Errors[0].Field)
}

func TestHandleErrorCheckViolation(t *testing.T) {
	t.Parallel()

	err := HandleError(&pgconn.PgError{
		Code:       "23514",
		TableName:  "timesheets",
		ColumnName: "hours",
	})

	httpErr := asHTTPError(t, err)
	require.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Equal(t, "The Hours value does not meet required conditions", httpErr.Message)
}

func TestHandleErrorNoRowsNamesTable(t *testing.T) {
	t.Parallel()

	httpErr := asHTTPError(t, HandleError(NotFound("work_phases")))
	require.Equal(t, http.StatusNotFound, httpErr.Status)
	require.Equal(t, "Work Phase not found", httpErr.Message)
}

func TestHandleErrorPassesHTTPErrorThrough(t *testing.T) {
	t.Parallel()

	original := errs.NewForbiddenError("Forbidden", false)
	require.Same(t, original, HandleError(original))
}

func TestHandleErrorUnknownIsInternal(t *testing.T) {
	t.Parallel()

	httpErr := asHTTPError(t, HandleError(fmt.Errorf("boom")))
	require.Equal(t, http.StatusInternalServerError, httpErr.Status)

	httpErr = asHTTPError(t, HandleError(&pgconn.PgError{Code: "40001"}))
	require.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestErrCodeAndMapping(t *testing.T) {
	t.Parallel()

	converted := ConvertPgError(&pgconn.PgError{Code: "23505", Severity: "ERROR"})
	require.Equal(t, UniqueViolation, ErrCode(fmt.Errorf("wrap: %w", converted)))
	require.Equal(t, Other, ErrCode(errors.New("plain")))
	require.Equal(t, SeverityError, converted.Severity)
	require.Equal(t, ConnectionFailure, MapCode("08006"))
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	t.Parallel()

	require.Equal(t, "email", extractColumnForUniqueViolation("unique_users_email"))
	require.Equal(t, "code", extractColumnForUniqueViolation("users_access_code_key"))
	require.Equal(t, "", extractColumnForUniqueViolation("pk_users"))
	require.Equal(t, "", extractColumnForUniqueViolation(""))
}

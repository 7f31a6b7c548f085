package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	t.Parallel()

	require.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	require.Equal(t, "INTERNAL_SERVER_ERROR", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)))
}

func TestConstructorsSetStatusAndCode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err    *HTTPError
		status int
		code   string
	}{
		{NewUnauthorizedError("x", false), http.StatusUnauthorized, "UNAUTHORIZED"},
		{NewForbiddenError("x", false), http.StatusForbidden, "FORBIDDEN"},
		{NewBadRequestError("x", false, nil, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{NewNotFoundError("x", false, nil), http.StatusNotFound, "NOT_FOUND"},
		{NewConflictError("x", false, nil), http.StatusConflict, "CONFLICT"},
		{NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.status, tc.err.Status)
		require.Equal(t, tc.code, tc.err.Code)
	}
}

func TestCustomCodeOverridesDefault(t *testing.T) {
	t.Parallel()

	code := "TIMESHEET_ALREADY_EXISTS"
	err := NewConflictError("exists", true, &code)
	require.Equal(t, code, err.Code)
	require.True(t, err.Override)
}

func TestSessionExpiredCarriesRedirect(t *testing.T) {
	t.Parallel()

	err := NewSessionExpiredError()
	require.Equal(t, http.StatusUnauthorized, err.Status)
	require.NotNil(t, err.Action)
	require.Equal(t, ActionTypeRedirect, err.Action.Type)
}

func TestHTTPErrorMatchesThroughWrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("loading: %w", NewNotFoundError("Timesheet not found", true, nil))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	require.Equal(t, http.StatusNotFound, httpErr.Status)
	require.True(t, errors.Is(wrapped, &HTTPError{}))
}

func TestWithMessageCopies(t *testing.T) {
	t.Parallel()

	base := NewForbiddenError("Forbidden", false)
	custom := base.WithMessage("Admins only")

	require.Equal(t, "Forbidden", base.Message)
	require.Equal(t, "Admins only", custom.Message)
	require.Equal(t, base.Status, custom.Status)
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/deppfellow/timesheet/internal/model"
	"github.com/deppfellow/timesheet/internal/repository"
	"github.com/deppfellow/timesheet/internal/service"
	"github.com/deppfellow/timesheet/internal/sqlerr"
	"github.com/stretchr/testify/require"
)

type stubUsers struct {
	byCode map[string]*model.User
}

func (s *stubUsers) GetByID(_ context.Context, id string) (*model.User, error) {
	for _, u := range s.byCode {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, sqlerr.NotFound("users")
}

func (s *stubUsers) GetByAccessCode(_ context.Context, code string) (*model.User, error) {
	if u, ok := s.byCode[code]; ok {
		return u, nil
	}
	return nil, sqlerr.NotFound("users")
}

func (s *stubUsers) ListEmployees(context.Context) ([]model.User, error) { return nil, nil }
func (s *stubUsers) CountEmployees(context.Context) (int, error) { return 0, nil }
func (s *stubUsers) Create(context.Context, *model.User) error { return nil }
func (s *stubUsers) CreateIfMissing(context.Context, *model.User) (bool, error) {
	return false, nil
}

type stubSessions struct {
	sessions map[string]*model.Session
}

func (s *stubSessions) Create(_ context.Context, session *model.Session, _ time.Duration) error {
	s.sessions[session.ID] = session
	return nil
}

func (s *stubSessions) Get(_ context.Context, id string) (*model.Session, error) {
	if session, ok := s.sessions[id]; ok {
		return session, nil
	}
	return nil, repository.ErrSessionNotFound
}

func (s *stubSessions) Touch(_ context.Context, id string, _ time.Duration) error {
	if _, ok := s.sessions[id]; !ok {
		return repository.ErrSessionNotFound
	}
	return nil
}

func (s *stubSessions) Delete(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

func newAuthHandler(t *testing.T) (*AuthHandler, *stubSessions) {
	t.Helper()

	sessions := &stubSessions{sessions: map[string]*model.Session{}}
	users := &stubUsers{byCode: map[string]*model.User{
		"mario rossi": {ID: "u-1", FullName: "MARIO ROSSI"},
	}}

	s := newTestServer(t)
	return NewAuthHandler(s, service.NewAuthService(users, sessions, s.Config.Auth.SessionTTL)), sessions
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == testCookie {
			return cookie
		}
	}
	return nil
}

func TestLoginSetsSessionCookie(t *testing.T) {
	t.Parallel()

	h, sessions := newAuthHandler(t)
	endpoint := Handle(h.Handler, h.Login, http.StatusOK, &model.LoginRequest{})

	rec, err := serve(endpoint, jsonRequest(http.MethodPost, "/api/login", `{"accessCode":"  Mario Rossi "}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		User model.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "u-1", body.User.ID)
	require.NotContains(t, rec.Body.String(), "accessCode")

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	require.True(t, cookie.HttpOnly)
	require.Contains(t, sessions.sessions, cookie.Value)
	require.Equal(t, "u-1", sessions.sessions[cookie.Value].UserID)
}

func TestLoginRejectsUnknownCode(t *testing.T) {
	t.Parallel()

	h, sessions := newAuthHandler(t)
	endpoint := Handle(h.Handler, h.Login, http.StatusOK, &model.LoginRequest{})

	rec, err := serve(endpoint, jsonRequest(http.MethodPost, "/api/login", `{"accessCode":"luigi"}`))
	requireHTTPError(t, err, http.StatusUnauthorized)
	require.Nil(t, sessionCookie(rec))
	require.Empty(t, sessions.sessions)

	_, err = serve(endpoint, jsonRequest(http.MethodPost, "/api/login", `{"accessCode":"   "}`))
	requireHTTPError(t, err, http.StatusBadRequest)
}

func TestLogoutDestroysSession(t *testing.T) {
	t.Parallel()

	h, sessions := newAuthHandler(t)
	sessions.sessions["abc"] = &model.Session{ID: "abc", UserID: "u-1"}
	endpoint := Handle(h.Handler, h.Logout, http.StatusOK, &model.EmptyRequest{})

	req := jsonRequest(http.MethodPost, "/api/logout", `{}`)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "abc"})

	rec, err := serve(endpoint, req)
	require.NoError(t, err)
	require.Empty(t, sessions.sessions)
	require.Equal(t, -1, sessionCookie(rec).MaxAge)
	require.Contains(t, rec.Body.String(), "Logged out")

	// Without a session it still succeeds.
	rec, err = serve(endpoint, jsonRequest(http.MethodPost, "/api/logout", `{}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)
}

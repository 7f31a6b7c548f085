package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/deppfellow/timesheet/internal/errs"
	"github.com/deppfellow/timesheet/internal/model"
	"github.com/deppfellow/timesheet/internal/repository"
	"github.com/deppfellow/timesheet/internal/sqlerr"
)

// sessionIDBytes is the entropy of a session id before encoding.
const sessionIDBytes = 32

// AuthService implements access-code login over server-side sessions.
type AuthService struct {
	users    UserStore
	sessions SessionStore
	ttl      time.Duration
}

func NewAuthService(users UserStore, sessions SessionStore, ttl time.Duration) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		ttl:      ttl,
	}
}

// SessionTTL is the sliding inactivity window of a session.
func (s *AuthService) SessionTTL() time.Duration {
	return s.ttl
}

func newSessionID() (string, error) {
	buf := make([]byte, sessionIDBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// Login matches accessCode case-insensitively and opens a session.
func (s *AuthService) Login(ctx context.Context, accessCode string) (*model.User, *model.Session, error) {
	code := model.NormalizeAccessCode(accessCode)
	if code == "" {
		return nil, nil, errs.NewBadRequestError("Access code is required", true, nil,
			[]errs.FieldError{{Field: "accessCode", Error: "is required"}}, nil)
	}

	user, err := s.users.GetByAccessCode(ctx, code)
	if err != nil {
		if sqlerr.IsNotFound(err) {
			return nil, nil, errs.NewUnauthorizedError("Invalid access code", true)
		}
		return nil, nil, err
	}

	id, err := newSessionID()
	if err != nil {
		return nil, nil, err
	}

	session := &model.Session{
		ID:        id,
		UserID:    user.ID,
		IsAdmin:   user.IsAdmin,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sessions.Create(ctx, session, s.ttl); err != nil {
		return nil, nil, fmt.Errorf("create session: %w", err)
	}

	return user, session, nil
}

// Logout destroys the session. Unknown or empty ids are not an error.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}

// Authenticate resolves a session id to its user and slides the session
// expiry forward. Sessions whose user was removed are destroyed.
func (s *AuthService) Authenticate(ctx context.Context, sessionID string) (*model.User, error) {
	if sessionID == "" {
		return nil, errs.NewUnauthorizedError("Not authenticated", true)
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, errs.NewSessionExpiredError()
		}
		return nil, err
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if sqlerr.IsNotFound(err) {
			_ = s.sessions.Delete(ctx, sessionID)
			return nil, errs.NewSessionExpiredError()
		}
		return nil, err
	}

	if err := s.sessions.Touch(ctx, sessionID, s.ttl); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, errs.NewSessionExpiredError()
		}
		return nil, err
	}

	return user, nil
}

// CurrentUser returns the account of an authenticated caller.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if sqlerr.IsNotFound(err) {
			return nil, errs.NewUnauthorizedError("Not authenticated", true)
		}
		return nil, err
	}
	return user, nil
}

package middleware

import (
	"context"

	"github.com/deppfellow/timesheet/internal/logger"
	"github.com/deppfellow/timesheet/internal/model"
	"github.com/deppfellow/timesheet/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

const (
	UserIDKey   = "user_id"
	UserRoleKey = "user_role"
	UserKey     = "user"
	LoggerKey   = "logger"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

type loggerCtxKey struct{}

// ContextEnhancer builds a request-scoped logger carrying the request id,
// route and trace ids, and stores it in both the Echo and the Go context.
type ContextEnhancer struct {
	server *server.Server
}

func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contextLogger := ce.server.Logger.With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("ip", c.RealIP()).
				Logger()

			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				contextLogger = logger.WithTraceContext(contextLogger, txn)
			}

			storeLogger(c, &contextLogger)
			return next(c)
		}
	}
}

func storeLogger(c echo.Context, l *zerolog.Logger) {
	c.Set(LoggerKey, l)
	ctx := context.WithValue(c.Request().Context(), loggerCtxKey{}, l)
	c.SetRequest(c.Request().WithContext(ctx))
}

// setUser records the authenticated user and adds its identity to the
// request logger. Authentication runs after the context enhancer, so the
// logger is extended here rather than at creation.
func setUser(c echo.Context, user *model.User) {
	role := RoleEmployee
	if user.IsAdmin {
		role = RoleAdmin
	}

	c.Set(UserKey, user)
	c.Set(UserIDKey, user.ID)
	c.Set(UserRoleKey, role)

	userLogger := GetLogger(c).With().
		Str("user_id", user.ID).
		Str("user_role", role).
		Logger()
	storeLogger(c, &userLogger)
}

func GetUserID(c echo.Context) string {
	if userID, ok := c.Get(UserIDKey).(string); ok {
		return userID
	}
	return ""
}

// GetUser returns the authenticated user, nil outside RequireAuth.
func GetUser(c echo.Context) *model.User {
	if user, ok := c.Get(UserKey).(*model.User); ok {
		return user
	}
	return nil
}

// GetLogger returns the request logger, or a no-op logger when
// EnhanceContext did not run.
func GetLogger(c echo.Context) *zerolog.Logger {
	if l, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return l
	}
	l := zerolog.Nop()
	return &l
}

// LoggerFromContext returns the request logger stored in a Go context.
func LoggerFromContext(ctx context.Context) *zerolog.Logger {
	if l, ok := ctx.Value(loggerCtxKey{}).(*zerolog.Logger); ok {
		return l
	}
	l := zerolog.Nop()
	return &l
}

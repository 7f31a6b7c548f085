package handler

import (
	"github.com/deppfellow/timesheet/internal/middleware"
	"github.com/deppfellow/timesheet/internal/model"
	"github.com/deppfellow/timesheet/internal/server"
	"github.com/deppfellow/timesheet/internal/service"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	Handler
	authService *service.AuthService
}

func NewAuthHandler(s *server.Server, authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		Handler:     NewHandler(s),
		authService: authService,
	}
}

type LoginResponse struct {
	User *model.User `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func (h *AuthHandler) Login(c echo.Context, req *model.LoginRequest) (*LoginResponse, error) {
	user, session, err := h.authService.Login(c.Request().Context(), req.AccessCode)
	if err != nil {
		return nil, err
	}

	middleware.SetSessionCookie(c, h.server.Config, session.ID)

	middleware.GetLogger(c).Info().
		Str("user_id", user.ID).
		Bool("is_admin", user.IsAdmin).
		Msg("user logged in")

	return &LoginResponse{User: user}, nil
}

// Logout succeeds with or without a live session.
func (h *AuthHandler) Logout(c echo.Context, req *model.EmptyRequest) (*MessageResponse, error) {
	sessionID := middleware.SessionID(c, h.server.Config.Auth.CookieName)
	if err := h.authService.Logout(c.Request().Context(), sessionID); err != nil {
		return nil, err
	}

	middleware.ClearSessionCookie(c, h.server.Config)
	return &MessageResponse{Message: "Logged out"}, nil
}

func (h *AuthHandler) CurrentUser(c echo.Context, req *model.EmptyRequest) (*model.User, error) {
	return h.authService.CurrentUser(c.Request().Context(), middleware.GetUserID(c))
}

// actor describes the authenticated caller to the service layer.
func actor(c echo.Context) service.Actor {
	user := middleware.GetUser(c)
	if user == nil {
		return service.Actor{}
	}
	return service.Actor{UserID: user.ID, IsAdmin: user.IsAdmin}
}

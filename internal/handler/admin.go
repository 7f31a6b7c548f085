package handler

import (
	"context"
	"errors"

	"github.com/deppfellow/timesheet/internal/errs"
	"github.com/deppfellow/timesheet/internal/lib/report"
	"github.com/deppfellow/timesheet/internal/middleware"
	"github.com/deppfellow/timesheet/internal/model"
	"github.com/deppfellow/timesheet/internal/server"
	"github.com/deppfellow/timesheet/internal/service"
	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

// AlertEnqueuer queues an on-demand phase threshold check.
type AlertEnqueuer interface {
	EnqueuePhaseThresholdAlert(ctx context.Context) (*asynq.TaskInfo, error)
}

type AdminHandler struct {
	Handler
	adminService *service.AdminService
	alerts       AlertEnqueuer
}

func NewAdminHandler(s *server.Server, adminService *service.AdminService, alerts AlertEnqueuer) *AdminHandler {
	return &AdminHandler{
		Handler:      NewHandler(s),
		adminService: adminService,
		alerts:       alerts,
	}
}

type AlertQueuedResponse struct {
	TaskID string `json:"taskId"`
	Queue  string `json:"queue"`
}

func (h *AdminHandler) Users(c echo.Context, req *model.EmptyRequest) ([]model.User, error) {
	return h.adminService.Users(c.Request().Context())
}

func (h *AdminHandler) CreateUser(c echo.Context, req *model.CreateUserRequest) (*model.User, error) {
	return h.adminService.CreateUser(c.Request().Context(), req)
}

func (h *AdminHandler) EmployeeHours(c echo.Context, req *model.MonthRequest) ([]model.EmployeeHours, error) {
	return h.adminService.EmployeeHours(c.Request().Context(), req.Period())
}

func (h *AdminHandler) PhaseHours(c echo.Context, req *model.MonthRequest) ([]model.PhaseTotal, error) {
	return h.adminService.PhaseHours(c.Request().Context(), req.Period())
}

func (h *AdminHandler) Stats(c echo.Context, req *model.EmptyRequest) (*model.AdminStats, error) {
	return h.adminService.Stats(c.Request().Context())
}

func (h *AdminHandler) Export(c echo.Context, req *model.MonthRequest) (*File, error) {
	data, err := h.adminService.Export(c.Request().Context(), req.Period())
	if err != nil {
		return nil, err
	}

	return &File{
		Name:        report.Filename(req.Period()),
		ContentType: report.ContentType,
		Data:        data,
	}, nil
}

// TriggerAlert queues a threshold check outside the daily schedule.
func (h *AdminHandler) TriggerAlert(c echo.Context, req *model.EmptyRequest) (*AlertQueuedResponse, error) {
	if !h.server.Config.Integration.AlertsEnabled() || h.alerts == nil {
		code := "ALERTS_DISABLED"
		return nil, errs.NewBadRequestError("Threshold alerts are not configured", true, &code, nil, nil)
	}

	info, err := h.alerts.EnqueuePhaseThresholdAlert(c.Request().Context())
	if err != nil {
		if errors.Is(err, asynq.ErrDuplicateTask) {
			code := "ALERT_ALREADY_QUEUED"
			return nil, errs.NewConflictError("A threshold check is already queued", true, &code)
		}
		return nil, err
	}

	middleware.GetLogger(c).Info().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Msg("phase threshold alert queued")

	return &AlertQueuedResponse{TaskID: info.ID, Queue: info.Queue}, nil
}

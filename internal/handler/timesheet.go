package handler

import (
	"github.com/deppfellow/timesheet/internal/model"
	"github.com/deppfellow/timesheet/internal/server"
	"github.com/deppfellow/timesheet/internal/service"
	"github.com/labstack/echo/v4"
)

type TimesheetHandler struct {
	Handler
	timesheetService *service.TimesheetService
}

func NewTimesheetHandler(s *server.Server, timesheetService *service.TimesheetService) *TimesheetHandler {
	return &TimesheetHandler{
		Handler:          NewHandler(s),
		timesheetService: timesheetService,
	}
}

func (h *TimesheetHandler) ListMonth(c echo.Context, req *model.ListTimesheetsRequest) ([]model.Timesheet, error) {
	return h.timesheetService.ListMonth(c.Request().Context(), actor(c), req.UserID, req.YearMonth)
}

func (h *TimesheetHandler) Create(c echo.Context, req *model.CreateTimesheetRequest) (*model.Timesheet, error) {
	return h.timesheetService.Create(c.Request().Context(), actor(c), req)
}

func (h *TimesheetHandler) Update(c echo.Context, req *model.UpdateTimesheetRequest) (*model.Timesheet, error) {
	return h.timesheetService.Update(c.Request().Context(), actor(c), req)
}

func (h *TimesheetHandler) Delete(c echo.Context, req *model.TimesheetIDRequest) error {
	return h.timesheetService.Delete(c.Request().Context(), actor(c), req.ID)
}

package handler

import (
	"github.com/deppfellow/timesheet/internal/model"
	"github.com/deppfellow/timesheet/internal/server"
	"github.com/deppfellow/timesheet/internal/service"
	"github.com/labstack/echo/v4"
)

type WorkPhaseHandler struct {
	Handler
	workPhaseService *service.WorkPhaseService
}

func NewWorkPhaseHandler(s *server.Server, workPhaseService *service.WorkPhaseService) *WorkPhaseHandler {
	return &WorkPhaseHandler{
		Handler:          NewHandler(s),
		workPhaseService: workPhaseService,
	}
}

func (h *WorkPhaseHandler) List(c echo.Context, req *model.EmptyRequest) ([]model.WorkPhase, error) {
	return h.workPhaseService.List(c.Request().Context())
}

func (h *WorkPhaseHandler) Create(c echo.Context, req *model.CreateWorkPhaseRequest) (*model.WorkPhase, error) {
	return h.workPhaseService.Create(c.Request().Context(), req)
}

func (h *WorkPhaseHandler) Update(c echo.Context, req *model.UpdateWorkPhaseRequest) (*model.WorkPhase, error) {
	return h.workPhaseService.Update(c.Request().Context(), req)
}

func (h *WorkPhaseHandler) Delete(c echo.Context, req *model.WorkPhaseIDRequest) error {
	return h.workPhaseService.Delete(c.Request().Context(), req.ID)
}

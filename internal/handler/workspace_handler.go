package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/coworkly/coworking-booking/internal/dto"
	"github.com/coworkly/coworking-booking/internal/middleware"
	"github.com/coworkly/coworking-booking/internal/models"
	"github.com/coworkly/coworking-booking/internal/service"
	"github.com/labstack/echo/v4"
)

type WorkspaceHandler struct {
	svc service.WorkspaceService
}

func NewWorkspaceHandler(svc service.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{svc: svc}
}

func (h *WorkspaceHandler) RegisterRoutes(e *echo.Echo, authMw echo.MiddlewareFunc) {
	e.GET("/facilities", h.ListFacilities)

	g := e.Group("/api/v1/workspaces")
	g.GET("", h.ListWorkspaces)
	g.GET("/:id", h.GetWorkspace)
	g.POST("", h.CreateWorkspace, authMw, middleware.RequireAdmin)
	g.PUT("/:id", h.UpdateWorkspace, authMw, middleware.RequireAdmin)
}

func (h *WorkspaceHandler) ListFacilities(c echo.Context) error {
	facilities, err := h.svc.ListFacilities(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	names := make([]string, len(facilities))
	for i, f := range facilities {
		names[i] = f.Name
	}
	return c.JSON(http.StatusOK, names)
}

func (h *WorkspaceHandler) ListWorkspaces(c echo.Context) error {
	workspaces, err := h.svc.ListWorkspaces(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.WorkspaceResponse, len(workspaces))
	for i, w := range workspaces {
		resp[i] = dto.ToWorkspaceResponse(&w)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *WorkspaceHandler) GetWorkspace(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid workspace id")
	}

	workspace, err := h.svc.GetWorkspace(c.Request().Context(), uint(id))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "workspace not found")
	}
	return c.JSON(http.StatusOK, dto.ToWorkspaceResponse(workspace))
}

func (h *WorkspaceHandler) CreateWorkspace(c echo.Context) error {
	var req dto.CreateWorkspaceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.Address == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name and address are required")
	}
	if req.PricePerHour <= 0 || req.Capacity <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "price_per_hour and capacity must be positive")
	}

	workspace := &models.Workspace{
		Name:         req.Name,
		Address:      req.Address,
		Description:  req.Description,
		PricePerHour: req.PricePerHour,
		Capacity:     req.Capacity,
	}

	if err := h.svc.CreateWorkspace(c.Request().Context(), middleware.UserID(c), workspace, req.FacilityIDs); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, dto.ToWorkspaceResponse(workspace))
}

func (h *WorkspaceHandler) UpdateWorkspace(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid workspace id")
	}

	var req dto.UpdateWorkspaceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	upd := service.WorkspaceUpdate{
		Name:         req.Name,
		Address:      req.Address,
		Description:  req.Description,
		PricePerHour: req.PricePerHour,
		Capacity:     req.Capacity,
		FacilityIDs:  req.FacilityIDs,
	}

	workspace, err := h.svc.UpdateWorkspace(c.Request().Context(), middleware.UserID(c), uint(id), upd)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWorkspaceNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNotOwner):
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, dto.ToWorkspaceResponse(workspace))
}

package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gamedeck/gamedeck/internal/api/metrics"
	"github.com/gamedeck/gamedeck/internal/core/domain"
	"github.com/gamedeck/gamedeck/internal/core/ports"
)

// LayoutHandler handles HTTP requests for page layouts.
type LayoutHandler struct {
	service ports.LayoutService
}

func NewLayoutHandler(service ports.LayoutService) *LayoutHandler {
	return &LayoutHandler{service: service}
}

// List handles GET /api/layouts.
//
// @Summary      List all layouts
// @Tags         layouts
// @Produce      json
// @Success      200  {array}   domain.Layout
// @Failure      500  {object}  errorResponse
// @Router       /api/layouts [get]
func (h *LayoutHandler) List(c echo.Context) error {
	layouts, err := h.service.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to fetch layouts"})
	}
	return c.JSON(http.StatusOK, layouts)
}

// GetActive handles GET /api/layouts/active.
//
// @Summary      Get the active layout
// @Tags         layouts
// @Produce      json
// @Success      200  {object}  domain.Layout
// @Failure      404  {object}  errorResponse
// @Router       /api/layouts/active [get]
func (h *LayoutHandler) GetActive(c echo.Context) error {
	layout, err := h.service.GetActive(c.Request().Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveLayout) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "no active layout found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to fetch active layout"})
	}
	return c.JSON(http.StatusOK, layout)
}

// Get handles GET /api/layouts/:id.
//
// @Summary      Get a layout by id
// @Tags         layouts
// @Produce      json
// @Param        id   path      int  true  "Layout id"
// @Success      200  {object}  domain.Layout
// @Failure      404  {object}  errorResponse
// @Router       /api/layouts/{id} [get]
func (h *LayoutHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "layout not found"})
	}
	layout, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrLayoutNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "layout not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to fetch layout"})
	}
	return c.JSON(http.StatusOK, layout)
}

// Create handles POST /api/layouts. Creating with isActive=true deactivates
// every other layout in the same operation.
//
// @Summary      Persist a layout
// @Tags         layouts
// @Accept       json
// @Produce      json
// @Param        body  body      createLayoutRequest  true  "Layout details"
// @Success      201   {object}  domain.Layout
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/layouts [post]
func (h *LayoutHandler) Create(c echo.Context) error {
	var req createLayoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	layout, err := h.service.Create(c.Request().Context(), ports.CreateLayoutInput{
		Name:       req.Name,
		Components: toDomainComponents(req.Components),
		IsActive:   *req.IsActive,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to create layout"})
	}
	if layout.IsActive {
		metrics.LayoutActivationsTotal.Inc()
	}
	return c.JSON(http.StatusCreated, layout)
}

// Update handles PATCH /api/layouts/:id. A components field in the body
// replaces the stored list wholesale; updating to isActive=true deactivates
// every other layout.
//
// @Summary      Partially update a layout
// @Tags         layouts
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Layout id"
// @Param        body  body      updateLayoutRequest  true  "Fields to update"
// @Success      200   {object}  domain.Layout
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/layouts/{id} [patch]
func (h *LayoutHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "layout not found"})
	}
	var req updateLayoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	layout, err := h.service.Update(c.Request().Context(), id, ports.LayoutPatch{
		Name:       req.Name,
		Components: toDomainComponents(req.Components),
		IsActive:   req.IsActive,
	})
	if err != nil {
		if errors.Is(err, domain.ErrLayoutNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "layout not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to update layout"})
	}
	if req.IsActive != nil && *req.IsActive {
		metrics.LayoutActivationsTotal.Inc()
	}
	return c.JSON(http.StatusOK, layout)
}

// SetActive handles POST /api/layouts/:id/set-active.
//
// @Summary      Activate a layout
// @Tags         layouts
// @Produce      json
// @Param        id   path      int  true  "Layout id"
// @Success      200  {object}  domain.Layout
// @Failure      404  {object}  errorResponse
// @Router       /api/layouts/{id}/set-active [post]
func (h *LayoutHandler) SetActive(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "layout not found"})
	}
	layout, err := h.service.SetActive(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrLayoutNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "layout not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to set active layout"})
	}
	metrics.LayoutActivationsTotal.Inc()
	return c.JSON(http.StatusOK, layout)
}

// Delete handles DELETE /api/layouts/:id.
//
// @Summary      Delete a layout
// @Tags         layouts
// @Param        id  path  int  true  "Layout id"
// @Success      204  "deleted"
// @Failure      404  {object}  errorResponse
// @Router       /api/layouts/{id} [delete]
func (h *LayoutHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "layout not found"})
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrLayoutNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "layout not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to delete layout"})
	}
	return c.NoContent(http.StatusNoContent)
}

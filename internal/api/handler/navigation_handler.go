package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gamedeck/gamedeck/internal/core/domain"
	"github.com/gamedeck/gamedeck/internal/core/ports"
)

// NavigationHandler handles HTTP requests for the navigation menu.
type NavigationHandler struct {
	service ports.NavigationService
}

func NewNavigationHandler(service ports.NavigationService) *NavigationHandler {
	return &NavigationHandler{service: service}
}

// List handles GET /api/navigation. Items come back sorted ascending by
// sort order.
//
// @Summary      List navigation items
// @Tags         navigation
// @Produce      json
// @Success      200  {array}   domain.NavigationItem
// @Failure      500  {object}  errorResponse
// @Router       /api/navigation [get]
func (h *NavigationHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to fetch navigation items"})
	}
	return c.JSON(http.StatusOK, items)
}

// Icons handles GET /api/navigation/icons. It returns the mapping from
// stored icon keys to the renderer's icon identifiers.
//
// @Summary      Navigation icon table
// @Tags         navigation
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/navigation/icons [get]
func (h *NavigationHandler) Icons(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.NavIconNames)
}

// Get handles GET /api/navigation/:id.
//
// @Summary      Get a navigation item by id
// @Tags         navigation
// @Produce      json
// @Param        id   path      int  true  "Navigation item id"
// @Success      200  {object}  domain.NavigationItem
// @Failure      404  {object}  errorResponse
// @Router       /api/navigation/{id} [get]
func (h *NavigationHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "navigation item not found"})
	}
	item, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNavigationItemNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "navigation item not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to fetch navigation item"})
	}
	return c.JSON(http.StatusOK, item)
}

// Create handles POST /api/navigation.
//
// @Summary      Add a navigation item
// @Tags         navigation
// @Accept       json
// @Produce      json
// @Param        body  body      createNavigationItemRequest  true  "Navigation item details"
// @Success      201   {object}  domain.NavigationItem
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/navigation [post]
func (h *NavigationHandler) Create(c echo.Context) error {
	var req createNavigationItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	item, err := h.service.Create(c.Request().Context(), ports.CreateNavigationItemInput{
		Label:       req.Label,
		Path:        req.Path,
		Icon:        req.Icon,
		IsAdminOnly: *req.IsAdminOnly,
		SortOrder:   *req.SortOrder,
		ParentID:    req.ParentID,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to create navigation item"})
	}
	return c.JSON(http.StatusCreated, item)
}

// Update handles PATCH /api/navigation/:id.
//
// @Summary      Partially update a navigation item
// @Tags         navigation
// @Accept       json
// @Produce      json
// @Param        id    path      int                          true  "Navigation item id"
// @Param        body  body      updateNavigationItemRequest  true  "Fields to update"
// @Success      200   {object}  domain.NavigationItem
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/navigation/{id} [patch]
func (h *NavigationHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "navigation item not found"})
	}
	var req updateNavigationItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	parentID, err := req.parentIDPatch()
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "parentid must be an integer or null"})
	}

	item, err := h.service.Update(c.Request().Context(), id, ports.NavigationItemPatch{
		Label:       req.Label,
		Path:        req.Path,
		Icon:        req.Icon,
		IsAdminOnly: req.IsAdminOnly,
		SortOrder:   req.SortOrder,
		ParentID:    parentID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNavigationItemNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "navigation item not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to update navigation item"})
	}
	return c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /api/navigation/:id.
//
// @Summary      Delete a navigation item
// @Tags         navigation
// @Param        id  path  int  true  "Navigation item id"
// @Success      204  "deleted"
// @Failure      404  {object}  errorResponse
// @Router       /api/navigation/{id} [delete]
func (h *NavigationHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "navigation item not found"})
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrNavigationItemNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "navigation item not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to delete navigation item"})
	}
	return c.NoContent(http.StatusNoContent)
}

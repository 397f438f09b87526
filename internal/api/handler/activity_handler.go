package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gamedeck/gamedeck/internal/core/ports"
)

const defaultActivityLimit = 50

// ActivityHandler serves the recent catalog activity feed.
type ActivityHandler struct {
	service ports.ActivityService
}

func NewActivityHandler(service ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// Recent handles GET /api/activity.
//
// @Summary      Recent catalog activity
// @Tags         activity
// @Produce      json
// @Param        limit  query     int  false  "Maximum events to return (default 50)"
// @Success      200    {array}   domain.ActivityEvent
// @Failure      500    {object}  errorResponse
// @Router       /api/activity [get]
func (h *ActivityHandler) Recent(c echo.Context) error {
	limit := defaultActivityLimit
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	events, err := h.service.Recent(c.Request().Context(), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to fetch activity"})
	}
	return c.JSON(http.StatusOK, events)
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gamedeck/gamedeck/internal/infrastructure/db/memory"
)

// HealthHandler handles GET /health — liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// ReadinessHandler handles GET /health/ready. The store lives in-process,
// so there are no external dependencies to ping; readiness reports the
// store's per-collection record counts instead.
type ReadinessHandler struct {
	store *memory.Store
}

func NewReadinessHandler(store *memory.Store) *ReadinessHandler {
	return &ReadinessHandler{store: store}
}

type readinessResponse struct {
	Status string         `json:"status"`
	Store  map[string]int `json:"store"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	return c.JSON(http.StatusOK, readinessResponse{
		Status: "ok",
		Store:  h.store.Counts(),
	})
}

package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gamedeck/gamedeck/internal/api/metrics"
	"github.com/gamedeck/gamedeck/internal/core/domain"
	"github.com/gamedeck/gamedeck/internal/core/ports"
)

// GameHandler handles HTTP requests for the game catalog.
type GameHandler struct {
	service ports.GameService
}

func NewGameHandler(service ports.GameService) *GameHandler {
	return &GameHandler{service: service}
}

// List handles GET /api/games.
//
// @Summary      List all games
// @Tags         games
// @Produce      json
// @Success      200  {array}   domain.Game
// @Failure      500  {object}  errorResponse
// @Router       /api/games [get]
func (h *GameHandler) List(c echo.Context) error {
	games, err := h.service.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to fetch games"})
	}
	return c.JSON(http.StatusOK, games)
}

// Get handles GET /api/games/:id.
//
// @Summary      Get a game by id
// @Tags         games
// @Produce      json
// @Param        id   path      int  true  "Game id"
// @Success      200  {object}  domain.Game
// @Failure      404  {object}  errorResponse
// @Router       /api/games/{id} [get]
func (h *GameHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "game not found"})
	}
	game, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrGameNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "game not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to fetch game"})
	}
	return c.JSON(http.StatusOK, game)
}

// Create handles POST /api/games.
//
// @Summary      Add a game to the catalog
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        body  body      createGameRequest  true  "Game details"
// @Success      201   {object}  domain.Game
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/games [post]
func (h *GameHandler) Create(c echo.Context) error {
	var req createGameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	game, err := h.service.Create(c.Request().Context(), ports.CreateGameInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		CoverImage:  req.CoverImage,
		Rating:      *req.Rating,
		IsInstalled: *req.IsInstalled,
		IsFavorite:  *req.IsFavorite,
		PlayMode:    req.PlayMode,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to create game"})
	}

	metrics.GamesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, game)
}

// Update handles PATCH /api/games/:id.
//
// @Summary      Partially update a game
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Game id"
// @Param        body  body      updateGameRequest  true  "Fields to update"
// @Success      200   {object}  domain.Game
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/games/{id} [patch]
func (h *GameHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "game not found"})
	}
	var req updateGameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	game, err := h.service.Update(c.Request().Context(), id, ports.GamePatch{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		CoverImage:  req.CoverImage,
		Rating:      req.Rating,
		IsInstalled: req.IsInstalled,
		IsFavorite:  req.IsFavorite,
		PlayMode:    req.PlayMode,
	})
	if err != nil {
		if errors.Is(err, domain.ErrGameNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "game not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to update game"})
	}
	return c.JSON(http.StatusOK, game)
}

// ToggleFavorite handles POST /api/games/:id/toggle-favorite.
//
// @Summary      Flip a game's favorite flag
// @Tags         games
// @Produce      json
// @Param        id   path      int  true  "Game id"
// @Success      200  {object}  domain.Game
// @Failure      404  {object}  errorResponse
// @Router       /api/games/{id}/toggle-favorite [post]
func (h *GameHandler) ToggleFavorite(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "game not found"})
	}
	game, err := h.service.ToggleFavorite(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrGameNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "game not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to toggle favorite"})
	}
	metrics.FavoriteTogglesTotal.WithLabelValues(toggleState(game.IsFavorite)).Inc()
	return c.JSON(http.StatusOK, game)
}

// ToggleInstalled handles POST /api/games/:id/toggle-installed.
//
// @Summary      Flip a game's installed flag
// @Tags         games
// @Produce      json
// @Param        id   path      int  true  "Game id"
// @Success      200  {object}  domain.Game
// @Failure      404  {object}  errorResponse
// @Router       /api/games/{id}/toggle-installed [post]
func (h *GameHandler) ToggleInstalled(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "game not found"})
	}
	game, err := h.service.ToggleInstalled(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrGameNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "game not found"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to toggle installed"})
	}
	metrics.InstallTogglesTotal.WithLabelValues(toggleState(game.IsInstalled)).Inc()
	return c.JSON(http.StatusOK, game)
}

func toggleState(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

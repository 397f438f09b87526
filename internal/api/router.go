package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/gamedeck/gamedeck/internal/api/handler"
	"github.com/gamedeck/gamedeck/internal/api/middleware"
	"github.com/gamedeck/gamedeck/internal/core/ports"
	"github.com/gamedeck/gamedeck/internal/core/service"
	"github.com/gamedeck/gamedeck/internal/infrastructure/db/memory"
)

// Options carries everything the router needs beyond the store.
type Options struct {
	JWTSecret string
	Activity  ports.ActivityPublisher
	Feed      ports.ActivityService
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(store *memory.Store, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("gamedeck"))

	// --- Dependencies ---
	gameService := service.NewGameService(store.Games, opts.Activity, opts.Logger)
	navigationService := service.NewNavigationService(store.Navigation, opts.Activity, opts.Logger)
	layoutService := service.NewLayoutService(store.Layouts, opts.Activity, opts.Logger)
	authService := service.NewAuthService(store.Users, opts.JWTSecret, 0)

	gameHandler := handler.NewGameHandler(gameService)
	navigationHandler := handler.NewNavigationHandler(navigationService)
	layoutHandler := handler.NewLayoutHandler(layoutService)
	authHandler := handler.NewAuthHandler(authService)
	activityHandler := handler.NewActivityHandler(opts.Feed)
	authMiddleware := middleware.Auth(opts.JWTSecret)

	// --- Game routes ---
	e.GET("/api/games", gameHandler.List)
	e.POST("/api/games", gameHandler.Create)
	e.GET("/api/games/:id", gameHandler.Get)
	e.PATCH("/api/games/:id", gameHandler.Update)
	e.POST("/api/games/:id/toggle-favorite", gameHandler.ToggleFavorite)
	e.POST("/api/games/:id/toggle-installed", gameHandler.ToggleInstalled)

	// --- Navigation routes ---
	e.GET("/api/navigation", navigationHandler.List)
	e.POST("/api/navigation", navigationHandler.Create)
	e.GET("/api/navigation/icons", navigationHandler.Icons)
	e.GET("/api/navigation/:id", navigationHandler.Get)
	e.PATCH("/api/navigation/:id", navigationHandler.Update)
	e.DELETE("/api/navigation/:id", navigationHandler.Delete)

	// --- Layout routes ---
	// The static /active segment must not be swallowed by :id.
	e.GET("/api/layouts", layoutHandler.List)
	e.POST("/api/layouts", layoutHandler.Create)
	e.GET("/api/layouts/active", layoutHandler.GetActive)
	e.GET("/api/layouts/:id", layoutHandler.Get)
	e.PATCH("/api/layouts/:id", layoutHandler.Update)
	e.POST("/api/layouts/:id/set-active", layoutHandler.SetActive)
	e.DELETE("/api/layouts/:id", layoutHandler.Delete)

	// --- Builder ---
	builderHandler := handler.NewBuilderHandler()
	e.GET("/api/builder/components", builderHandler.Components)

	// --- Auth (identity only; the catalog API stays open) ---
	e.POST("/api/auth/login", authHandler.Login)
	e.GET("/api/auth/me", authHandler.Me, authMiddleware)

	// --- Activity feed ---
	e.GET("/api/activity", activityHandler.Recent)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(store)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

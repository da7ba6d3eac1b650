package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/cx-platform/projects-dashboard/internal/api/handler"
	"github.com/cx-platform/projects-dashboard/internal/api/middleware"
	"github.com/cx-platform/projects-dashboard/internal/core/service"
	"github.com/cx-platform/projects-dashboard/internal/infrastructure/cms"
	redisstore "github.com/cx-platform/projects-dashboard/internal/infrastructure/db/redis"
	"github.com/cx-platform/projects-dashboard/internal/pkg/config"
	"github.com/cx-platform/projects-dashboard/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, rdb *redis.Client) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("dashboard"))

	// --- Dependencies ---
	gateway := cms.NewClient(cfg.CMSURL)
	sessionStore := redisstore.NewSessionStore(rdb)
	draftStore := redisstore.NewDraftStore(rdb, cfg.DraftTTL)

	authService := service.NewAuthService(gateway, sessionStore, cfg.JWTSecret, cfg.SessionTTL)
	dispatchService := service.NewDispatchService(gateway)
	pageService := service.NewPageService(gateway)
	draftService := service.NewDraftService(draftStore)

	authHandler := handler.NewAuthHandler(authService, cfg.SessionTTL, cfg.Env == "production")
	actionHandler := handler.NewActionHandler(dispatchService)
	pageHandler := handler.NewPageHandler(pageService)
	draftHandler := handler.NewDraftHandler(draftService)

	sessionGate := middleware.Session(authService)
	credentialLimit := middleware.RateLimit(2, 5)

	// --- Auth routes (no session required) ---
	e.POST("/api/signin", authHandler.SignIn, credentialLimit)
	e.POST("/api/register", authHandler.Register, credentialLimit)

	// --- Protected routes: session gate first, no data fetch without it ---
	e.POST("/api/signout", authHandler.SignOut, sessionGate)
	e.POST("/api/actions", actionHandler.Process, sessionGate)

	e.GET("/api/pages/dashboard", pageHandler.Dashboard, sessionGate)
	e.GET("/api/pages/projects/:project_id", pageHandler.Project, sessionGate)
	e.GET("/api/pages/tasks/:task_id", pageHandler.Task, sessionGate)

	e.POST("/api/drafts", draftHandler.Begin, sessionGate)
	e.PATCH("/api/drafts", draftHandler.SetField, sessionGate)
	e.GET("/api/drafts", draftHandler.Current, sessionGate)
	e.DELETE("/api/drafts", draftHandler.Cancel, sessionGate)

	// The browser lands here after a failed session gate check.
	e.GET(middleware.SignInRoute, func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"signin": "/api/signin", "register": "/api/register"})
	})

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(rdb, gateway)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/medagenda/console/internal/api/handler"
	"github.com/medagenda/console/internal/api/middleware"
	"github.com/medagenda/console/internal/core/domain"
	"github.com/medagenda/console/internal/core/ports"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Mutating routes additionally require the ADMIN role; the session's role
// predicates are the only place that decision is made.
func NewRouter(session ports.Session, gateway ports.SchedulingAPI, upstream handler.UpstreamPinger, loginLimiter *rate.Limiter, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("console"))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(session, gateway)
	userHandler := handler.NewUserHandler(gateway)
	specialtyHandler := handler.NewSpecialtyHandler(gateway)

	requireSession := middleware.RequireSession(session)
	requireAdmin := middleware.RequireAnyRole(session, domain.RoleAdmin)

	// --- Session routes ---
	auth := e.Group("/console/auth")
	auth.POST("/login", authHandler.Login, middleware.LoginRateLimit(loginLimiter))
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me)
	auth.POST("/refresh", authHandler.Refresh, requireSession)
	auth.POST("/register", authHandler.Register)

	// --- User management ---
	users := e.Group("/console/users", requireSession)
	users.GET("", userHandler.List)
	users.GET("/stats", userHandler.Stats)
	users.POST("/check-email", userHandler.CheckEmail)
	users.GET("/doctors-by-specialty/:specialtyId", userHandler.DoctorsBySpecialty)
	users.GET("/:id", userHandler.Get)
	users.POST("", userHandler.Create, requireAdmin)
	users.PUT("/:id", userHandler.Update, requireAdmin)
	users.DELETE("/:id", userHandler.Delete, requireAdmin)

	// --- Specialty catalog ---
	specialties := e.Group("/console/specialties", requireSession)
	specialties.GET("", specialtyHandler.List)
	specialties.GET("/:id", specialtyHandler.Get)
	specialties.POST("", specialtyHandler.Create, requireAdmin)
	specialties.PUT("/:id", specialtyHandler.Update, requireAdmin)
	specialties.DELETE("/:id", specialtyHandler.Delete, requireAdmin)

	// --- Health probes and metrics (no session required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(upstream)

	e.GET("/health", healthHandler.Liveness)               // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)     // readiness – is the scheduling API reachable?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lmsadmin/src/app/http/handler"
	"lmsadmin/src/app/middleware"
	"lmsadmin/src/core/ports"
	"lmsadmin/src/core/usecase"
	"lmsadmin/src/infra/config"
	"lmsadmin/src/infra/metrics"
)

// Deps bundles the infrastructure adapters the server composes.
type Deps struct {
	Tenants ports.TenantRepository
	Courses ports.CourseRepository
	Auth    ports.AuthGateway
	Metrics *metrics.Metrics
}

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	http   *http.Server

	// Handlers
	healthHandler *handler.HealthHandler
	tenantHandler *handler.TenantHandler
	courseHandler *handler.CourseHandler
	adminHandler  *handler.AdminHandler
}

// New creates a new Server with all dependencies wired up.
func New(cfg *config.Config, log *slog.Logger, deps Deps) *Server {
	// Set Gin mode based on log level
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router without default middleware
	router := gin.New()

	// Create services
	healthService := usecase.NewHealthService(log, deps.Tenants, deps.Courses)
	tenantService := usecase.NewTenantService(deps.Tenants, log)
	courseService := usecase.NewCourseService(deps.Courses, log)
	adminService := usecase.NewAdminAuthService(deps.Auth)

	s := &Server{
		cfg:           cfg,
		log:           log,
		router:        router,
		healthHandler: handler.NewHealthHandler(healthService),
		tenantHandler: handler.NewTenantHandler(tenantService),
		courseHandler: handler.NewCourseHandler(courseService),
		adminHandler:  handler.NewAdminHandler(adminService),
	}

	s.setupMiddleware(deps.Metrics)
	s.setupRoutes()
	s.setupHTTPServer()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware(m *metrics.Metrics) {
	// Order matters: Recovery should be first to catch all panics
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS())
	if m != nil {
		s.router.Use(middleware.Metrics(m))
	}
	s.router.Use(middleware.Logging(s.log))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check endpoints (no auth required)
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Uploaded course images are served directly from the image directory
	s.router.Static(s.cfg.Storage.ImageBaseURL, s.cfg.Storage.ImageDir)

	admin := s.router.Group("/admin")
	{
		admin.POST("/login", s.adminHandler.Login)

		admin.GET("/tenants", s.tenantHandler.List)
		admin.POST("/tenants", s.tenantHandler.Create)

		admin.GET("/courses", s.courseHandler.List)
		admin.POST("/courses", s.courseHandler.Create)
		admin.POST("/courses/image", s.courseHandler.UploadImage)
	}

	// Handle 404
	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": gin.H{
				"code":       "NOT_FOUND",
				"message":    "The requested resource was not found",
				"request_id": middleware.GetRequestID(c),
			},
		})
	})
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
}

// Run starts the HTTP server and blocks until shutdown.
// It handles graceful shutdown on SIGINT/SIGTERM.
func (s *Server) Run() error {
	// Channel to receive shutdown signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Channel to receive server errors
	errCh := make(chan error, 1)

	// Start server in goroutine
	go func() {
		s.log.Info("starting HTTP server",
			"addr", s.cfg.Server.Addr(),
		)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-quit:
		s.log.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		return err
	}

	// Graceful shutdown
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("server stopped gracefully")
	return nil
}

// Router returns the Gin router for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}

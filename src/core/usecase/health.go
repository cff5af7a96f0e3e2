package usecase

import (
	"context"
	"log/slog"

	"lmsadmin/src/core/ports"
)

// HealthService checks the health of the application's storage backends.
type HealthService struct {
	log     *slog.Logger
	tenants ports.Repository
	courses ports.Repository
}

// NewHealthService creates a new HealthService.
func NewHealthService(log *slog.Logger, tenants, courses ports.Repository) *HealthService {
	return &HealthService{
		log:     log,
		tenants: tenants,
		courses: courses,
	}
}

// HealthStatus represents the health of the application.
type HealthStatus struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
}

// ComponentHealth represents the health of a single component.
type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Check performs a health check of all application components.
// Returns the overall health status.
func (s *HealthService) Check(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:     "ok",
		Components: make(map[string]ComponentHealth),
	}

	s.checkComponent(ctx, status, "database", s.tenants)
	s.checkComponent(ctx, status, "course_store", s.courses)

	return status
}

func (s *HealthService) checkComponent(ctx context.Context, status *HealthStatus, name string, repo ports.Repository) {
	if repo == nil {
		return
	}
	if err := repo.Health(ctx); err != nil {
		s.log.Warn("health check failed", "component", name, "error", err)
		status.Status = "degraded"
		status.Components[name] = ComponentHealth{
			Status:  "unhealthy",
			Message: err.Error(),
		}
		return
	}
	status.Components[name] = ComponentHealth{Status: "healthy"}
}

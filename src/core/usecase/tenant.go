package usecase

import (
	"context"
	"log/slog"

	"lmsadmin/src/core/domain"
	"lmsadmin/src/core/ports"
)

// TenantService composes validation and persistence for tenants.
type TenantService struct {
	repo ports.TenantRepository
	log  *slog.Logger
}

// NewTenantService creates a new TenantService.
func NewTenantService(repo ports.TenantRepository, log *slog.Logger) *TenantService {
	return &TenantService{repo: repo, log: log}
}

// List returns the newest tenants, straight from the gateway.
func (s *TenantService) List(ctx context.Context) ([]domain.Tenant, error) {
	return s.repo.List(ctx)
}

// Create validates the payload and pipes the normalized result into the
// gateway. Validation and store failures propagate unchanged; the HTTP
// boundary reads their classification.
func (s *TenantService) Create(ctx context.Context, payload domain.NewTenantPayload) (*domain.Tenant, error) {
	nt, err := domain.ValidateNewTenant(payload)
	if err != nil {
		return nil, err
	}

	tenant, err := s.repo.Create(ctx, nt)
	if err != nil {
		return nil, err
	}

	s.log.Info("tenant created",
		"tenant_id", tenant.ID,
		"domain", tenant.Domain,
	)
	return tenant, nil
}

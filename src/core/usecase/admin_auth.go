package usecase

import (
	"context"

	"lmsadmin/src/core/domain"
	"lmsadmin/src/core/ports"
)

// AdminAuthService handles admin login by delegating to the external auth
// service. No token or session state is held here.
type AdminAuthService struct {
	auth ports.AuthGateway
}

// NewAdminAuthService creates a new AdminAuthService.
func NewAdminAuthService(auth ports.AuthGateway) *AdminAuthService {
	return &AdminAuthService{auth: auth}
}

// Login forwards the credentials to the auth service.
func (s *AdminAuthService) Login(ctx context.Context, creds ports.AdminCredentials) (*ports.AdminSession, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, domain.NewValidationError("email and password are required.")
	}

	return s.auth.Login(ctx, creds)
}

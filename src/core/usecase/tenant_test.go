package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lmsadmin/src/core/domain"
)

type fakeTenantRepo struct {
	tenants  []domain.Tenant
	created  []domain.NewTenant
	taken    map[string]bool
	listErr  error
	healthOK bool
}

func newFakeTenantRepo() *fakeTenantRepo {
	return &fakeTenantRepo{taken: map[string]bool{}, healthOK: true}
}

func (f *fakeTenantRepo) Health(ctx context.Context) error {
	if !f.healthOK {
		return assert.AnError
	}
	return nil
}

func (f *fakeTenantRepo) List(ctx context.Context) ([]domain.Tenant, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.tenants, nil
}

func (f *fakeTenantRepo) Create(ctx context.Context, nt domain.NewTenant) (*domain.Tenant, error) {
	if f.taken[nt.Domain] {
		return nil, domain.NewConflictError("domain already registered")
	}
	f.taken[nt.Domain] = true
	f.created = append(f.created, nt)

	tenant := domain.Tenant{
		ID:           int64(len(f.created)),
		BusinessName: nt.BusinessName,
		Domain:       nt.Domain,
		Status:       nt.Status,
		CreatedAt:    time.Now(),
	}
	f.tenants = append([]domain.Tenant{tenant}, f.tenants...)
	return &tenant, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTenantService_CreateValidatesBeforePersisting(t *testing.T) {
	repo := newFakeTenantRepo()
	svc := NewTenantService(repo, testLogger())

	_, err := svc.Create(context.Background(), domain.NewTenantPayload{})
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))

	// The gateway is never reached on a validation failure.
	assert.Empty(t, repo.created)
}

func TestTenantService_CreatePassesNormalizedFields(t *testing.T) {
	repo := newFakeTenantRepo()
	svc := NewTenantService(repo, testLogger())

	tenant, err := svc.Create(context.Background(), domain.NewTenantPayload{
		BusinessName: " Acme ",
		Domain:       " ACME.io ",
	})
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	assert.Equal(t, "Acme", repo.created[0].BusinessName)
	assert.Equal(t, "acme.io", repo.created[0].Domain)
	assert.Equal(t, domain.TenantActive, repo.created[0].Status)

	assert.Equal(t, "acme.io", tenant.Domain)
}

func TestTenantService_CreatePropagatesConflict(t *testing.T) {
	repo := newFakeTenantRepo()
	svc := NewTenantService(repo, testLogger())

	_, err := svc.Create(context.Background(), domain.NewTenantPayload{
		BusinessName: "Acme", Domain: "acme.io",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), domain.NewTenantPayload{
		BusinessName: "Acme Two", Domain: "acme.io",
	})
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
}

func TestTenantService_ListDelegates(t *testing.T) {
	repo := newFakeTenantRepo()
	svc := NewTenantService(repo, testLogger())

	_, err := svc.Create(context.Background(), domain.NewTenantPayload{
		BusinessName: "Acme", Domain: "acme.io",
	})
	require.NoError(t, err)

	tenants, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tenants, 1)
	assert.Equal(t, "acme.io", tenants[0].Domain)
}

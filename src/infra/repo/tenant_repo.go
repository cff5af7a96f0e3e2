// Package repo contains the persistence gateways: the PostgreSQL tenant
// repository and the JSON-document course store. These are the only
// components in the application with side effects.
package repo

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"lmsadmin/src/core/domain"
	"lmsadmin/src/infra/db"
)

// tenantListLimit caps how many rows a listing fetches.
const tenantListLimit = 100

// TenantRepository implements ports.TenantRepository using pgx.
// The table layout follows the upstream admin schema: "Tenants" with
// columns "TenantId", "BusinessName", "Domain", "Status", "CreatedAt".
type TenantRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewTenantRepository constructs a repository backed by Postgres.
func NewTenantRepository(pg *db.Postgres, log *slog.Logger) *TenantRepository {
	return &TenantRepository{
		pool: pg.Pool,
		log:  log,
	}
}

func (r *TenantRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// tenantRow mirrors the store's column naming.
type tenantRow struct {
	TenantID     int64
	BusinessName string
	Domain       string
	Status       string
	CreatedAt    time.Time
}

// toDomainTenant renames store fields to the public entity shape. It is a
// total function of the row: no coercion, no validation, nil maps to nil.
func toDomainTenant(row *tenantRow) *domain.Tenant {
	if row == nil {
		return nil
	}
	return &domain.Tenant{
		ID:           row.TenantID,
		BusinessName: row.BusinessName,
		Domain:       row.Domain,
		Status:       domain.TenantStatus(row.Status),
		CreatedAt:    row.CreatedAt,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// List fetches at most 100 tenants ordered by creation time descending.
// An empty table yields an empty slice, never an error.
func (r *TenantRepository) List(ctx context.Context) ([]domain.Tenant, error) {
	const q = `
		SELECT "TenantId", "BusinessName", "Domain", "Status", "CreatedAt"
		FROM "Tenants"
		ORDER BY "CreatedAt" DESC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, q, tenantListLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tenants := make([]domain.Tenant, 0)
	for rows.Next() {
		var row tenantRow
		if err := rows.Scan(&row.TenantID, &row.BusinessName, &row.Domain, &row.Status, &row.CreatedAt); err != nil {
			return nil, err
		}
		tenants = append(tenants, *toDomainTenant(&row))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tenants, nil
}

// Create inserts one tenant with the validated fields. The store assigns
// the identifier and creation timestamp; the returned row is mapped back
// to the public shape. A duplicate domain surfaces as a conflict error.
func (r *TenantRepository) Create(ctx context.Context, nt domain.NewTenant) (*domain.Tenant, error) {
	const q = `
		INSERT INTO "Tenants" ("BusinessName", "Domain", "Status")
		VALUES ($1, $2, $3)
		RETURNING "TenantId", "BusinessName", "Domain", "Status", "CreatedAt"
	`
	var row tenantRow
	err := r.pool.QueryRow(ctx, q, nt.BusinessName, nt.Domain, string(nt.Status)).
		Scan(&row.TenantID, &row.BusinessName, &row.Domain, &row.Status, &row.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewConflictError("domain already registered")
		}
		return nil, err
	}
	return toDomainTenant(&row), nil
}

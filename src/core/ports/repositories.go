// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"lmsadmin/src/core/domain"
)

// Repository is the base interface for all repositories.
// Concrete repositories should embed this and add entity-specific methods.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// TenantRepository is the persistence gateway for tenants, backed by the
// relational store. It is the only tenant component with side effects.
type TenantRepository interface {
	Repository

	// List returns at most 100 tenants, newest first. An empty table is
	// not an error; it yields an empty slice.
	List(ctx context.Context) ([]domain.Tenant, error)

	// Create inserts one tenant with the validated fields. The store
	// assigns the identifier and creation timestamp. A duplicate domain
	// surfaces as a conflict error.
	Create(ctx context.Context, nt domain.NewTenant) (*domain.Tenant, error)
}

// CourseRepository is the persistence gateway for courses, backed by a
// JSON document plus an image directory.
type CourseRepository interface {
	Repository

	// List returns every course, newest first. A corrupt document is
	// reset to an empty collection and reported as empty, never as an
	// error.
	List(ctx context.Context) ([]domain.Course, error)

	// Insert prepends the course to the collection and rewrites the
	// document.
	Insert(ctx context.Context, course domain.Course) error

	// SaveImage stores an uploaded image asset under the image directory
	// and returns its reference.
	SaveImage(ctx context.Context, filename string, data []byte) (*domain.CourseImage, error)
}

// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"manor/internal/domain/entity"
	"manor/internal/errors"
)

// Domain-specific errors for tenant persistence.
var (
	// ErrTenantNotFound is returned when a tenant is not found.
	ErrTenantNotFound = errors.New("tenant not found")
	// ErrTenantTypeNotFound is returned when a tenant type is not found.
	ErrTenantTypeNotFound = errors.New("tenant type not found")
)

// TenantRepository defines the interface for tenant-related database operations.
type TenantRepository interface {
	// CreateTenant persists a new tenant.
	CreateTenant(ctx context.Context, tenant *entity.Tenant) error

	// FindTenantByID retrieves a tenant with its type and apartment preloaded.
	FindTenantByID(ctx context.Context, id int64) (*entity.Tenant, error)

	// FindAllTenants retrieves all tenants with types and apartments preloaded.
	FindAllTenants(ctx context.Context) ([]*entity.Tenant, error)

	// FindTenantByApartment retrieves the tenant currently assigned to an
	// apartment, or ErrTenantNotFound when the apartment is vacant.
	FindTenantByApartment(ctx context.Context, apartmentID int64) (*entity.Tenant, error)

	// FindAssignedTenants retrieves all tenants with an apartment assigned,
	// apartments preloaded.
	FindAssignedTenants(ctx context.Context) ([]*entity.Tenant, error)

	// FindTenantsWithLeaseEndingBetween retrieves tenants whose lease_end
	// falls within [start, end], apartments preloaded.
	FindTenantsWithLeaseEndingBetween(ctx context.Context, start, end time.Time) ([]*entity.Tenant, error)

	// UpdateTenant persists changes to an existing tenant.
	UpdateTenant(ctx context.Context, tenant *entity.Tenant) error

	// DeleteTenant removes a tenant by its ID.
	DeleteTenant(ctx context.Context, id int64) error
}

// TenantTypeRepository defines the interface for tenant type lookups.
type TenantTypeRepository interface {
	// CreateTenantType persists a new tenant type.
	CreateTenantType(ctx context.Context, tenantType *entity.TenantType) error

	// FindTenantTypeByID retrieves a tenant type by its unique ID.
	FindTenantTypeByID(ctx context.Context, id int64) (*entity.TenantType, error)

	// FindAllTenantTypes retrieves all tenant types ordered by name.
	FindAllTenantTypes(ctx context.Context) ([]*entity.TenantType, error)

	// UpdateTenantType persists changes to an existing tenant type.
	UpdateTenantType(ctx context.Context, tenantType *entity.TenantType) error

	// DeleteTenantType removes a tenant type by its ID.
	DeleteTenantType(ctx context.Context, id int64) error
}

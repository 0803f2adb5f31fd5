package usecase

import (
	"context"
	"time"

	"manor/internal/domain/entity"
	"manor/internal/usecase/daterange"
)

// ExpiringTenancy describes a tenant whose lease is ending.
type ExpiringTenancy struct {
	TenantID        int64      `json:"tenant_id"`
	TenantName      string     `json:"tenant_name"`
	ApartmentID     *int64     `json:"apartment_id"`
	Apartment       string     `json:"apartment"`
	EstateID        *int64     `json:"estate_id"`
	Estate          string     `json:"estate"`
	LeaseStart      *time.Time `json:"lease_start"`
	LeaseEnd        time.Time  `json:"lease_end"`
	DaysUntilExpiry int        `json:"days_until_expiry"`
	RenewalStatus   string     `json:"renewal_status"`
	ContactPhone    string     `json:"contact_phone"`
	ContactEmail    string     `json:"contact_email"`
	RentAmount      float64    `json:"rent_amount"`
}

// TenancyExpiryDashboard summarizes upcoming lease expirations.
type TenancyExpiryDashboard struct {
	ExpiringThisMonth int               `json:"expiring_this_month"`
	ExpiringNextMonth int               `json:"expiring_next_month"`
	VacatedThisMonth  int               `json:"vacated_this_month"`
	ExpiringSoon      []ExpiringTenancy `json:"expiring_soon"`
}

// CreateTenantInput carries the fields needed to register a tenant.
type CreateTenantInput struct {
	FullName         string
	Email            string
	PhoneNumber      *string
	EmergencyContact *string
	TenantTypeID     *int64
	ApartmentID      *int64
	LeaseStart       *time.Time
	LeaseEnd         *time.Time
}

// UpdateTenantInput carries tenant profile changes. Nil fields are left
// untouched.
type UpdateTenantInput struct {
	FullName         *string
	Email            *string
	PhoneNumber      *string
	EmergencyContact *string
	TenantTypeID     *int64
	LeaseStart       *time.Time
	LeaseEnd         *time.Time
}

// TenantUsecase defines the interface for tenant management, including the
// apartment assignment path that enforces occupancy exclusivity.
type TenantUsecase interface {
	// CreateTenant registers a tenant. When an apartment is given, the
	// assignment is conflict-checked inside a transaction.
	CreateTenant(ctx context.Context, input CreateTenantInput) (*entity.Tenant, error)

	// UpdateTenant applies profile changes to a tenant.
	UpdateTenant(ctx context.Context, id int64, input UpdateTenantInput) (*entity.Tenant, error)

	// AssignApartment moves a tenant into an apartment. The apartment must
	// be vacant; concurrent assignments are serialized so exactly one wins.
	AssignApartment(ctx context.Context, tenantID, apartmentID int64, leaseStart, leaseEnd *time.Time) (*entity.Tenant, error)

	// UnassignApartment releases the tenant's apartment.
	UnassignApartment(ctx context.Context, tenantID int64) (*entity.Tenant, error)

	// ExpiryDashboard summarizes leases ending soon.
	ExpiryDashboard(ctx context.Context, now time.Time) (*TenancyExpiryDashboard, error)

	// Expiring lists tenants whose leases end within the given range.
	Expiring(ctx context.Context, now time.Time, window daterange.Range) ([]ExpiringTenancy, error)

	// GetTenant retrieves a single tenant.
	GetTenant(ctx context.Context, id int64) (*entity.Tenant, error)

	// ListTenants retrieves all tenants.
	ListTenants(ctx context.Context) ([]*entity.Tenant, error)

	// DeleteTenant removes a tenant.
	DeleteTenant(ctx context.Context, id int64) error
}

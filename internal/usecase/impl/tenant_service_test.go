package impl

import (
	"context"
	"testing"
	"time"

	"manor/internal/domain/entity"
	domainerrors "manor/internal/domain/errors"
	"manor/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tenantFixtures holds all test dependencies for tenant service tests.
type tenantFixtures struct {
	service    usecase.TenantUsecase
	tenantRepo *stubTenantRepo
}

func createTestTenantService(tenants []*entity.Tenant) tenantFixtures {
	estateRepo := &stubEstateRepo{estates: []*entity.Estate{
		{ID: 1, Name: "Sunrise Gardens"},
	}}
	blockRepo := &stubBlockRepo{blocks: []*entity.Block{
		{ID: 1, EstateID: 1, Name: "Block A"},
	}}
	apartmentRepo := &stubApartmentRepo{apartments: []*entity.Apartment{
		{ID: 1, BlockID: 1, Number: "A-1", RentAmount: ptr(decimal.NewFromInt(12000))},
		{ID: 2, BlockID: 1, Number: "A-2"},
	}}
	tenantRepo := &stubTenantRepo{tenants: tenants, nextID: int64(len(tenants))}
	tenantTypeRepo := &stubTenantTypeRepo{types: []*entity.TenantType{
		{ID: 1, Name: "Individual"},
	}}

	factory := &stubRepoFactory{
		tenantRepo:    tenantRepo,
		apartmentRepo: apartmentRepo,
	}

	service := NewTenantService(TenantServiceParams{
		TxManager:      &stubTxManager{factory: factory},
		TenantRepo:     tenantRepo,
		TenantTypeRepo: tenantTypeRepo,
		ApartmentRepo:  apartmentRepo,
		BlockRepo:      blockRepo,
		EstateRepo:     estateRepo,
		Config:         testConfig(),
		Logger:         testLogger(),
	})

	return tenantFixtures{service: service, tenantRepo: tenantRepo}
}

func TestTenantService_AssignApartment_Conflict(t *testing.T) {
	tenants := []*entity.Tenant{
		{ID: 1, FullName: "Amina Yusuf"},
		{ID: 2, FullName: "John Mwangi"},
	}
	fx := createTestTenantService(tenants)

	ctx := context.Background()

	first, err := fx.service.AssignApartment(ctx, 1, 1, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, first.ApartmentID)
	assert.Equal(t, int64(1), *first.ApartmentID)

	// The second tenant cannot take the same apartment.
	_, err = fx.service.AssignApartment(ctx, 2, 1, nil, nil)
	assert.ErrorIs(t, err, domainerrors.ErrApartmentOccupied)

	// Re-asserting the existing assignment is not a conflict.
	_, err = fx.service.AssignApartment(ctx, 1, 1, nil, nil)
	assert.NoError(t, err)

	// A different apartment is fine.
	second, err := fx.service.AssignApartment(ctx, 2, 2, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), *second.ApartmentID)
}

func TestTenantService_AssignApartment_UnknownApartment(t *testing.T) {
	fx := createTestTenantService([]*entity.Tenant{{ID: 1, FullName: "Amina Yusuf"}})

	_, err := fx.service.AssignApartment(context.Background(), 1, 99, nil, nil)
	assert.ErrorIs(t, err, domainerrors.ErrApartmentNotFound)
}

func TestTenantService_CreateTenant_WithApartment(t *testing.T) {
	fx := createTestTenantService(nil)

	leaseStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	tenant, err := fx.service.CreateTenant(context.Background(), usecase.CreateTenantInput{
		FullName:     "Amina Yusuf",
		Email:        "amina@example.com",
		TenantTypeID: ptr(int64(1)),
		ApartmentID:  ptr(int64(1)),
		LeaseStart:   &leaseStart,
	})
	require.NoError(t, err)
	require.NotNil(t, tenant.ApartmentID)
	assert.Equal(t, int64(1), *tenant.ApartmentID)

	// The apartment is now occupied for anyone else.
	_, err = fx.service.CreateTenant(context.Background(), usecase.CreateTenantInput{
		FullName:    "John Mwangi",
		Email:       "john@example.com",
		ApartmentID: ptr(int64(1)),
	})
	assert.ErrorIs(t, err, domainerrors.ErrApartmentOccupied)
}

func TestTenantService_CreateTenant_UnknownTenantType(t *testing.T) {
	fx := createTestTenantService(nil)

	_, err := fx.service.CreateTenant(context.Background(), usecase.CreateTenantInput{
		FullName:     "Amina Yusuf",
		Email:        "amina@example.com",
		TenantTypeID: ptr(int64(42)),
	})
	assert.ErrorIs(t, err, domainerrors.ErrTenantTypeNotFound)
}

func TestTenantService_UnassignApartment(t *testing.T) {
	tenants := []*entity.Tenant{
		{ID: 1, FullName: "Amina Yusuf", ApartmentID: ptr(int64(1))},
	}
	fx := createTestTenantService(tenants)

	tenant, err := fx.service.UnassignApartment(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, tenant.ApartmentID)
}

func TestTenantService_Expiring(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	expired := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	endingSoon := time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC)
	endingLater := time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)

	tenants := []*entity.Tenant{
		{ID: 1, FullName: "Amina Yusuf", ApartmentID: ptr(int64(1)), LeaseEnd: &endingSoon,
			PhoneNumber: ptr("+254700000001"), Email: "amina@example.com"},
		{ID: 2, FullName: "John Mwangi", LeaseEnd: &expired, Email: "john@example.com"},
		{ID: 3, FullName: "Grace Wanjiru", LeaseEnd: &endingLater, Email: "grace@example.com"},
	}
	fx := createTestTenantService(tenants)

	expiring, err := fx.service.Expiring(context.Background(), now, daterangeOf(t, "2025-06-01", "2025-08-31"))
	require.NoError(t, err)
	require.Len(t, expiring, 3)

	// Ordered by lease end ascending.
	assert.Equal(t, int64(2), expiring[0].TenantID)
	assert.Equal(t, "expired", expiring[0].RenewalStatus)
	assert.Negative(t, expiring[0].DaysUntilExpiry)
	assert.Equal(t, "N/A", expiring[0].Apartment)

	assert.Equal(t, int64(1), expiring[1].TenantID)
	assert.Equal(t, "pending", expiring[1].RenewalStatus)
	assert.Equal(t, 10, expiring[1].DaysUntilExpiry)
	assert.Equal(t, "Block A A-1", expiring[1].Apartment)
	assert.Equal(t, "Sunrise Gardens", expiring[1].Estate)
	assert.InDelta(t, 12000.0, expiring[1].RentAmount, 0.01)

	assert.Equal(t, int64(3), expiring[2].TenantID)
	assert.Equal(t, "upcoming", expiring[2].RenewalStatus)
	assert.Equal(t, 66, expiring[2].DaysUntilExpiry)
}

func TestTenantService_ExpiryDashboard(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	thisMonth := time.Date(2025, 6, 25, 0, 0, 0, 0, time.UTC)
	nextMonth := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	vacated := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)

	tenants := []*entity.Tenant{
		{ID: 1, FullName: "Amina Yusuf", LeaseEnd: &thisMonth, Email: "amina@example.com"},
		{ID: 2, FullName: "John Mwangi", LeaseEnd: &nextMonth, Email: "john@example.com"},
		{ID: 3, FullName: "Grace Wanjiru", LeaseEnd: &vacated, Email: "grace@example.com"},
		{ID: 4, FullName: "Peter Otieno", Email: "peter@example.com"},
	}
	fx := createTestTenantService(tenants)

	dashboard, err := fx.service.ExpiryDashboard(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 1, dashboard.ExpiringThisMonth)
	assert.Equal(t, 1, dashboard.ExpiringNextMonth)
	assert.Equal(t, 1, dashboard.VacatedThisMonth)

	// Both June 25 and July 10 fall inside the 30-day lookahead.
	require.Len(t, dashboard.ExpiringSoon, 2)
	assert.Equal(t, int64(1), dashboard.ExpiringSoon[0].TenantID)
	assert.Equal(t, int64(2), dashboard.ExpiringSoon[1].TenantID)
}

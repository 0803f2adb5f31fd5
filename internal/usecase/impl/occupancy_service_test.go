package impl

import (
	"context"
	"testing"
	"time"

	"manor/internal/domain/entity"
	domainerrors "manor/internal/domain/errors"
	"manor/internal/usecase"
	"manor/internal/usecase/daterange"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// occupancyFixtures holds all test dependencies for occupancy service tests.
type occupancyFixtures struct {
	service    usecase.OccupancyUsecase
	tenantRepo *stubTenantRepo
}

func createTestOccupancyService(tenants []*entity.Tenant) occupancyFixtures {
	estateRepo := &stubEstateRepo{estates: []*entity.Estate{
		{ID: 1, Name: "Sunrise Gardens"},
	}}
	blockRepo := &stubBlockRepo{blocks: []*entity.Block{
		{ID: 1, EstateID: 1, Name: "Block A"},
		{ID: 2, EstateID: 1, Name: "Block B"},
	}}
	apartmentRepo := &stubApartmentRepo{apartments: []*entity.Apartment{
		{ID: 1, BlockID: 1, Number: "A-1"},
		{ID: 2, BlockID: 1, Number: "A-2"},
		{ID: 3, BlockID: 1, Number: "A-3"},
		{ID: 4, BlockID: 1, Number: "A-4"},
		{ID: 5, BlockID: 1, Number: "A-5"},
	}}
	tenantRepo := &stubTenantRepo{tenants: tenants, nextID: int64(len(tenants))}

	service := NewOccupancyService(OccupancyServiceParams{
		EstateRepo:    estateRepo,
		BlockRepo:     blockRepo,
		ApartmentRepo: apartmentRepo,
		TenantRepo:    tenantRepo,
	})

	return occupancyFixtures{service: service, tenantRepo: tenantRepo}
}

func TestOccupancyService_Snapshot(t *testing.T) {
	tenants := []*entity.Tenant{
		{ID: 1, FullName: "Amina Yusuf", ApartmentID: ptr(int64(1))},
	}
	fx := createTestOccupancyService(tenants)

	snapshot, err := fx.service.Snapshot(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 1, snapshot.TotalEstates)
	assert.Equal(t, 5, snapshot.TotalApartments)
	assert.Equal(t, 1, snapshot.OccupiedApartments)
	assert.Equal(t, 4, snapshot.VacantApartments)
	assert.InDelta(t, 20.0, snapshot.OccupancyRate, 0.001)

	require.Len(t, snapshot.Estates, 1)
	estate := snapshot.Estates[0]
	require.Len(t, estate.Blocks, 2)

	// All apartments sit in Block A; Block B is empty and reports a zero rate.
	assert.Equal(t, 5, estate.Blocks[0].TotalApartments)
	assert.InDelta(t, 20.0, estate.Blocks[0].OccupancyRate, 0.001)
	assert.Zero(t, estate.Blocks[1].TotalApartments)
	assert.Zero(t, estate.Blocks[1].OccupancyRate)
}

func TestOccupancyService_Snapshot_UnknownEstate(t *testing.T) {
	fx := createTestOccupancyService(nil)

	_, err := fx.service.Snapshot(context.Background(), ptr(int64(42)))
	assert.ErrorIs(t, err, domainerrors.ErrEstateNotFound)
}

func TestOccupancyService_Report(t *testing.T) {
	leaseStart := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	leaseEnd := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)
	openEndedStart := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)

	tenants := []*entity.Tenant{
		// Short lease inside the window: both a move-in and a move-out.
		{ID: 1, FullName: "Amina Yusuf", ApartmentID: ptr(int64(1)), LeaseStart: &leaseStart, LeaseEnd: &leaseEnd},
		// Open-ended lease that predates the window.
		{ID: 2, FullName: "John Mwangi", ApartmentID: ptr(int64(2)), LeaseStart: &openEndedStart},
	}
	fx := createTestOccupancyService(tenants)

	now := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	window := daterange.Range{
		Start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
	}

	report, err := fx.service.Report(context.Background(), now, window)
	require.NoError(t, err)

	// Jan 1, 8, 15, 22, 29.
	require.Len(t, report.OccupancyTrends, 5)

	// Jan 1: only the open-ended lease. Jan 15: both leases active.
	assert.Equal(t, 1, report.OccupancyTrends[0].Occupied)
	assert.Equal(t, 2, report.OccupancyTrends[2].Occupied)
	assert.InDelta(t, 20.0, report.OccupancyTrends[0].OccupancyRate, 0.001)
	assert.InDelta(t, 40.0, report.OccupancyTrends[2].OccupancyRate, 0.001)

	require.Len(t, report.EstateBreakdown, 1)
	turnover := report.EstateBreakdown[0]
	assert.Equal(t, 1, turnover.MoveIns)
	assert.Equal(t, 1, turnover.MoveOuts)
	assert.InDelta(t, 40.0, turnover.TurnoverRate, 0.001)
	assert.InDelta(t, 40.0, turnover.PeakOccupancy, 0.001)
	assert.InDelta(t, 20.0, turnover.LowestOccupancy, 0.001)

	assert.InDelta(t, 40.0, report.Summary.PeakOccupancy, 0.001)
	assert.InDelta(t, 20.0, report.Summary.LowestOccupancy, 0.001)
	assert.Equal(t, 1, report.Summary.OccupiedApartments)
}

package impl

import (
	"context"
	"sort"
	"time"

	"manor/internal/domain/entity"
	domainerrors "manor/internal/domain/errors"
	"manor/internal/domain/repository"
	"manor/internal/errors"
	"manor/internal/usecase"
	"manor/internal/usecase/daterange"

	"go.uber.org/fx"
)

// occupancyService implements the OccupancyUsecase interface.
type occupancyService struct {
	estateRepo    repository.EstateRepository
	blockRepo     repository.BlockRepository
	apartmentRepo repository.ApartmentRepository
	tenantRepo    repository.TenantRepository
}

// OccupancyServiceParams holds dependencies for OccupancyService, injected by Fx.
type OccupancyServiceParams struct {
	fx.In

	EstateRepo    repository.EstateRepository
	BlockRepo     repository.BlockRepository
	ApartmentRepo repository.ApartmentRepository
	TenantRepo    repository.TenantRepository
}

// NewOccupancyService is the constructor for occupancyService.
func NewOccupancyService(params OccupancyServiceParams) usecase.OccupancyUsecase {
	return &occupancyService{
		estateRepo:    params.EstateRepo,
		blockRepo:     params.BlockRepo,
		apartmentRepo: params.ApartmentRepo,
		tenantRepo:    params.TenantRepo,
	}
}

// Snapshot computes current occupancy per block and estate. An apartment
// counts as occupied when a tenant is assigned to it.
func (srv *occupancyService) Snapshot(ctx context.Context, estateID *int64) (*usecase.OccupancySnapshot, error) {
	estates, err := srv.resolveEstates(ctx, estateID)
	if err != nil {
		return nil, err
	}

	occupied, err := srv.occupiedApartmentIDs(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := &usecase.OccupancySnapshot{
		TotalEstates: len(estates),
		Estates:      make([]usecase.EstateOccupancy, 0, len(estates)),
	}

	for _, estate := range estates {
		estateOccupancy, err := srv.estateOccupancy(ctx, estate, occupied)
		if err != nil {
			return nil, err
		}

		snapshot.TotalApartments += estateOccupancy.TotalApartments
		snapshot.OccupiedApartments += estateOccupancy.OccupiedApartments
		snapshot.VacantApartments += estateOccupancy.VacantApartments
		snapshot.Estates = append(snapshot.Estates, estateOccupancy)
	}

	snapshot.OccupancyRate = percentage(snapshot.OccupiedApartments, snapshot.TotalApartments)

	return snapshot, nil
}

func (srv *occupancyService) resolveEstates(ctx context.Context, estateID *int64) ([]*entity.Estate, error) {
	if estateID == nil {
		estates, err := srv.estateRepo.FindAllEstates(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find all estates")
		}

		return estates, nil
	}

	estate, err := srv.estateRepo.FindEstateByID(ctx, *estateID)
	if err != nil {
		if errors.Is(err, repository.ErrEstateNotFound) {
			return nil, domainerrors.ErrEstateNotFound
		}

		return nil, errors.Wrap(err, "failed to find estate by ID")
	}

	return []*entity.Estate{estate}, nil
}

// occupiedApartmentIDs returns the set of apartment IDs with an assigned tenant.
func (srv *occupancyService) occupiedApartmentIDs(ctx context.Context) (map[int64]bool, error) {
	tenants, err := srv.tenantRepo.FindAssignedTenants(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find assigned tenants")
	}

	occupied := make(map[int64]bool, len(tenants))
	for _, tenant := range tenants {
		if tenant.ApartmentID != nil {
			occupied[*tenant.ApartmentID] = true
		}
	}

	return occupied, nil
}

func (srv *occupancyService) estateOccupancy(ctx context.Context, estate *entity.Estate, occupied map[int64]bool) (usecase.EstateOccupancy, error) {
	blocks, err := srv.blockRepo.FindBlocksByEstate(ctx, estate.ID)
	if err != nil {
		return usecase.EstateOccupancy{}, errors.Wrap(err, "failed to find blocks by estate")
	}

	estateOccupancy := usecase.EstateOccupancy{
		EstateID:   estate.ID,
		EstateName: estate.Name,
		Blocks:     make([]usecase.BlockOccupancy, 0, len(blocks)),
	}

	for _, block := range blocks {
		apartments, err := srv.apartmentRepo.FindApartmentsByBlock(ctx, block.ID)
		if err != nil {
			return usecase.EstateOccupancy{}, errors.Wrap(err, "failed to find apartments by block")
		}

		blockOccupancy := usecase.BlockOccupancy{
			BlockID:         block.ID,
			BlockName:       block.Name,
			TotalApartments: len(apartments),
		}
		for _, apartment := range apartments {
			if occupied[apartment.ID] {
				blockOccupancy.OccupiedApartments++
			}
		}
		blockOccupancy.VacantApartments = blockOccupancy.TotalApartments - blockOccupancy.OccupiedApartments
		blockOccupancy.OccupancyRate = percentage(blockOccupancy.OccupiedApartments, blockOccupancy.TotalApartments)

		estateOccupancy.TotalApartments += blockOccupancy.TotalApartments
		estateOccupancy.OccupiedApartments += blockOccupancy.OccupiedApartments
		estateOccupancy.Blocks = append(estateOccupancy.Blocks, blockOccupancy)
	}

	estateOccupancy.VacantApartments = estateOccupancy.TotalApartments - estateOccupancy.OccupiedApartments
	estateOccupancy.OccupancyRate = percentage(estateOccupancy.OccupiedApartments, estateOccupancy.TotalApartments)

	return estateOccupancy, nil
}

// Report computes weekly occupancy trends and per-estate turnover over the
// given range. Occupancy at a trend point counts tenants whose lease covers
// that date.
func (srv *occupancyService) Report(ctx context.Context, now time.Time, window daterange.Range) (*usecase.OccupancyReport, error) {
	index, err := loadLocationIndex(ctx, srv.estateRepo, srv.blockRepo, srv.apartmentRepo)
	if err != nil {
		return nil, err
	}

	tenants, err := srv.tenantRepo.FindAllTenants(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all tenants")
	}

	totalApartments := len(index.apartments)
	points := window.WeeklyPoints()

	trends := make([]usecase.OccupancyTrendPoint, 0, len(points))
	for _, point := range points {
		occupied := countLeasesActiveAt(tenants, point)
		trends = append(trends, usecase.OccupancyTrendPoint{
			Date:            point,
			TotalApartments: totalApartments,
			Occupied:        occupied,
			Vacant:          totalApartments - occupied,
			OccupancyRate:   percentage(occupied, totalApartments),
		})
	}

	report := &usecase.OccupancyReport{
		OccupancyTrends: trends,
		EstateBreakdown: srv.estateTurnover(index, tenants, now, window, points),
	}

	occupiedNow := countLeasesActiveAt(tenants, now)
	report.Summary = usecase.OccupancySummary{
		TotalApartments:    totalApartments,
		OccupiedApartments: occupiedNow,
		VacantApartments:   totalApartments - occupiedNow,
	}

	var sum float64
	for _, point := range trends {
		sum += point.OccupancyRate
		if point.OccupancyRate > report.Summary.PeakOccupancy {
			report.Summary.PeakOccupancy = point.OccupancyRate
		}
	}
	if len(trends) > 0 {
		report.Summary.AverageOccupancy = round2(sum / float64(len(trends)))
		report.Summary.LowestOccupancy = trends[0].OccupancyRate
		for _, point := range trends {
			if point.OccupancyRate < report.Summary.LowestOccupancy {
				report.Summary.LowestOccupancy = point.OccupancyRate
			}
		}
	}

	return report, nil
}

// countLeasesActiveAt counts assigned tenants whose lease covers the instant.
func countLeasesActiveAt(tenants []*entity.Tenant, at time.Time) int {
	count := 0
	for _, tenant := range tenants {
		if tenant.ApartmentID != nil && tenant.LeaseActiveAt(at) {
			count++
		}
	}

	return count
}

// estateTurnover computes per-estate occupancy series and lease movement.
// A move-in is a lease starting inside the window; a move-out is a lease that
// ended inside the window before the report time.
func (srv *occupancyService) estateTurnover(
	index *locationIndex,
	tenants []*entity.Tenant,
	now time.Time,
	window daterange.Range,
	points []time.Time,
) []usecase.EstateTurnover {
	apartmentsByEstate := make(map[int64]int, len(index.estates))
	for _, apartment := range index.apartments {
		if estate := index.estateOf(apartment.ID); estate != nil {
			apartmentsByEstate[estate.ID]++
		}
	}

	tenantsByEstate := make(map[int64][]*entity.Tenant, len(index.estates))
	for _, tenant := range tenants {
		if tenant.ApartmentID == nil {
			continue
		}
		if estate := index.estateOf(*tenant.ApartmentID); estate != nil {
			tenantsByEstate[estate.ID] = append(tenantsByEstate[estate.ID], tenant)
		}
	}

	estateIDs := make([]int64, 0, len(index.estates))
	for id := range index.estates {
		estateIDs = append(estateIDs, id)
	}
	sort.Slice(estateIDs, func(i, j int) bool { return estateIDs[i] < estateIDs[j] })

	breakdown := make([]usecase.EstateTurnover, 0, len(estateIDs))
	for _, estateID := range estateIDs {
		estate := index.estates[estateID]
		estateTenants := tenantsByEstate[estateID]
		total := apartmentsByEstate[estateID]

		turnover := usecase.EstateTurnover{
			EstateID:        estate.ID,
			EstateName:      estate.Name,
			TotalApartments: total,
		}

		var sum float64
		first := true
		for _, point := range points {
			occupied := countLeasesActiveAt(estateTenants, point)
			rate := percentage(occupied, total)
			sum += rate
			if first || rate > turnover.PeakOccupancy {
				turnover.PeakOccupancy = rate
			}
			if first || rate < turnover.LowestOccupancy {
				turnover.LowestOccupancy = rate
			}
			first = false
		}
		if len(points) > 0 {
			turnover.AvgOccupancy = round2(sum / float64(len(points)))
		}

		for _, tenant := range estateTenants {
			if tenant.LeaseStart != nil && window.Contains(*tenant.LeaseStart) {
				turnover.MoveIns++
			}
			if tenant.LeaseEnd != nil && window.Contains(*tenant.LeaseEnd) && tenant.LeaseEnd.Before(now) {
				turnover.MoveOuts++
			}
		}
		turnover.TurnoverRate = percentage(turnover.MoveIns+turnover.MoveOuts, total)

		breakdown = append(breakdown, turnover)
	}

	return breakdown
}

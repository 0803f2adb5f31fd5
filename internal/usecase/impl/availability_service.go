package impl

import (
	"context"
	"sort"

	"manor/internal/domain/allocation"
	"manor/internal/domain/entity"
	"manor/internal/domain/repository"
	"manor/internal/errors"
	"manor/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// availabilityService implements the AvailabilityUsecase interface.
type availabilityService struct {
	apartmentRepo repository.ApartmentRepository
	blockRepo     repository.BlockRepository
	estateRepo    repository.EstateRepository
}

// AvailabilityServiceParams holds dependencies for AvailabilityService, injected by Fx.
type AvailabilityServiceParams struct {
	fx.In

	ApartmentRepo repository.ApartmentRepository
	BlockRepo     repository.BlockRepository
	EstateRepo    repository.EstateRepository
}

// NewAvailabilityService is the constructor for availabilityService.
func NewAvailabilityService(params AvailabilityServiceParams) usecase.AvailabilityUsecase {
	return &availabilityService{
		apartmentRepo: params.ApartmentRepo,
		blockRepo:     params.BlockRepo,
		estateRepo:    params.EstateRepo,
	}
}

// FindAvailable returns unoccupied apartments matching the filter, scored and
// ranked, together with summary statistics over the result set.
func (srv *availabilityService) FindAvailable(ctx context.Context, filter repository.ApartmentFilter) (*usecase.AvailabilityResult, error) {
	apartments, err := srv.apartmentRepo.FindAvailableApartments(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find available apartments")
	}

	index, err := loadLocationIndex(ctx, srv.estateRepo, srv.blockRepo, srv.apartmentRepo)
	if err != nil {
		return nil, err
	}

	scored := make([]usecase.ScoredApartment, 0, len(apartments))
	for _, apartment := range apartments {
		scored = append(scored, srv.scoreApartment(apartment, index))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].AllocationScore > scored[j].AllocationScore
	})

	return &usecase.AvailabilityResult{
		TotalAvailable: len(scored),
		Apartments:     scored,
		Summary:        buildAvailabilitySummary(scored),
	}, nil
}

func (srv *availabilityService) scoreApartment(apartment *entity.Apartment, index *locationIndex) usecase.ScoredApartment {
	entry := usecase.ScoredApartment{
		Apartment:       apartment,
		AllocationScore: allocation.Score(apartment),
		RentPerRoom:     allocation.RentPerRoom(apartment),
		RentPerSqm:      allocation.RentPerSquareMeter(apartment),
		IsFurnished:     apartment.IsFurnished(),
		RoomCategory:    allocation.RoomCategory(apartment.NumberOfRooms),
		SizeCategory:    allocation.SizeCategory(apartment.Size),
		RentCategory:    allocation.RentCategory(apartment.RentAmount),
	}

	block := index.blocks[apartment.BlockID]
	if block == nil {
		entry.BlockName = "N/A"
		entry.FullAddress = apartment.Number

		return entry
	}

	entry.BlockName = block.Name
	entry.FullAddress = block.Name + " " + apartment.Number

	if estate := index.estates[block.EstateID]; estate != nil {
		entry.EstateID = estate.ID
		entry.EstateName = estate.Name
		entry.FullAddress = estate.Name + ", " + block.Name + " " + apartment.Number
	}

	return entry
}

// buildAvailabilitySummary aggregates category counts and averages over the
// scored result set. Averages skip apartments with unknown rent or size.
func buildAvailabilitySummary(scored []usecase.ScoredApartment) usecase.AvailabilitySummary {
	summary := usecase.AvailabilitySummary{
		ByRoomCategory: make(map[string]int),
		BySizeCategory: make(map[string]int),
		ByRentCategory: make(map[string]int),
		ByEstate:       make(map[string]int),
	}

	var (
		rentTotal decimal.Decimal
		rentCount int
		sizeTotal decimal.Decimal
		sizeCount int
	)

	for _, entry := range scored {
		summary.ByRoomCategory[entry.RoomCategory]++
		summary.BySizeCategory[entry.SizeCategory]++
		summary.ByRentCategory[entry.RentCategory]++
		if entry.EstateName != "" {
			summary.ByEstate[entry.EstateName]++
		}

		if entry.IsFurnished {
			summary.FurnishedCount++
		} else {
			summary.UnfurnishedCount++
		}

		if entry.Apartment.RentAmount != nil {
			rentTotal = rentTotal.Add(*entry.Apartment.RentAmount)
			rentCount++
		}
		if entry.Apartment.Size != nil {
			sizeTotal = sizeTotal.Add(*entry.Apartment.Size)
			sizeCount++
		}
	}

	if rentCount > 0 {
		summary.AverageRent = rentTotal.Div(decimal.NewFromInt(int64(rentCount))).Round(2).InexactFloat64()
	}
	if sizeCount > 0 {
		summary.AverageSize = sizeTotal.Div(decimal.NewFromInt(int64(sizeCount))).Round(2).InexactFloat64()
	}

	return summary
}

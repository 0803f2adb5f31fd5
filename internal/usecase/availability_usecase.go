package usecase

import (
	"context"

	"manor/internal/domain/entity"
	"manor/internal/domain/repository"
)

// ScoredApartment is an available apartment enriched with allocation metrics.
type ScoredApartment struct {
	Apartment       *entity.Apartment `json:"apartment"`
	EstateID        int64             `json:"estate_id"`
	EstateName      string            `json:"estate_name"`
	BlockName       string            `json:"block_name"`
	FullAddress     string            `json:"full_address"`
	AllocationScore int               `json:"allocation_score"`
	RentPerRoom     float64           `json:"rent_per_room"`
	RentPerSqm      float64           `json:"rent_per_sqm"`
	IsFurnished     bool              `json:"is_furnished"`
	RoomCategory    string            `json:"room_category"`
	SizeCategory    string            `json:"size_category"`
	RentCategory    string            `json:"rent_category"`
}

// AvailabilitySummary aggregates the surviving apartments of an availability
// query. Category maps are keyed by category tag and estate name.
type AvailabilitySummary struct {
	ByRoomCategory   map[string]int `json:"by_room_category"`
	BySizeCategory   map[string]int `json:"by_size_category"`
	ByRentCategory   map[string]int `json:"by_rent_category"`
	ByEstate         map[string]int `json:"by_estate"`
	AverageRent      float64        `json:"average_rent"`
	AverageSize      float64        `json:"average_size"`
	FurnishedCount   int            `json:"furnished_count"`
	UnfurnishedCount int            `json:"unfurnished_count"`
}

// AvailabilityResult is the full availability response: a ranked apartment
// list plus summary statistics.
type AvailabilityResult struct {
	TotalAvailable int                 `json:"total_available"`
	Apartments     []ScoredApartment   `json:"apartments"`
	Summary        AvailabilitySummary `json:"summary"`
}

// AvailabilityUsecase defines the interface for available-apartment queries.
type AvailabilityUsecase interface {
	// FindAvailable returns unoccupied apartments matching the filter,
	// scored and sorted by allocation score descending, with summary
	// statistics. An empty result yields empty structures, not an error.
	FindAvailable(ctx context.Context, filter repository.ApartmentFilter) (*AvailabilityResult, error)
}

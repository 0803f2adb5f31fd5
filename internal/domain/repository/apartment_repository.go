// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"manor/internal/domain/entity"
	"manor/internal/errors"
)

// Domain-specific errors for apartment persistence.
var (
	// ErrApartmentNotFound is returned when an apartment is not found.
	ErrApartmentNotFound = errors.New("apartment not found")
)

// ApartmentFilter narrows apartment queries. All fields are optional and
// combine with AND semantics. Amenity and furnishing ID sets match
// apartments having at least one of the given IDs.
type ApartmentFilter struct {
	MinRooms      *int
	MaxRooms      *int
	MinRent       *decimal.Decimal
	MaxRent       *decimal.Decimal
	MinSize       *decimal.Decimal
	MaxSize       *decimal.Decimal
	EstateID      *int64
	BlockID       *int64
	AmenityIDs    []int64
	FurnishingIDs []int64
}

// ApartmentRepository defines the interface for apartment-related database operations.
type ApartmentRepository interface {
	// CreateApartment persists a new apartment.
	CreateApartment(ctx context.Context, apartment *entity.Apartment) error

	// FindApartmentByID retrieves an apartment with its amenities and furnishings.
	FindApartmentByID(ctx context.Context, id int64) (*entity.Apartment, error)

	// FindAllApartments retrieves all apartments with amenities and furnishings preloaded.
	FindAllApartments(ctx context.Context) ([]*entity.Apartment, error)

	// FindApartmentsByBlock retrieves all apartments within a block.
	FindApartmentsByBlock(ctx context.Context, blockID int64) ([]*entity.Apartment, error)

	// FindAvailableApartments retrieves apartments with no assigned tenant
	// that satisfy the given filter, with amenities and furnishings preloaded.
	FindAvailableApartments(ctx context.Context, filter ApartmentFilter) ([]*entity.Apartment, error)

	// CountApartments returns the total number of apartments.
	CountApartments(ctx context.Context) (int64, error)

	// UpdateApartment persists changes to an existing apartment.
	UpdateApartment(ctx context.Context, apartment *entity.Apartment) error

	// ReplaceAmenities replaces the apartment's amenity set with the given IDs.
	ReplaceAmenities(ctx context.Context, apartmentID int64, amenityIDs []int64) error

	// ReplaceFurnishings replaces the apartment's furnishing set with the given IDs.
	ReplaceFurnishings(ctx context.Context, apartmentID int64, furnishingIDs []int64) error

	// DeleteApartment removes an apartment by its ID.
	DeleteApartment(ctx context.Context, id int64) error
}

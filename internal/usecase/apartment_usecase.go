package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"manor/internal/domain/entity"
)

// CreateApartmentInput carries the fields needed to register an apartment.
type CreateApartmentInput struct {
	BlockID       int64
	Number        string
	Size          *decimal.Decimal
	RentAmount    *decimal.Decimal
	NumberOfRooms *int
	Color         *string
	Description   *string
	AmenityIDs    []int64
	FurnishingIDs []int64
}

// UpdateApartmentInput carries apartment changes. Nil fields are left
// untouched; nil ID slices leave the association sets unchanged.
type UpdateApartmentInput struct {
	Number        *string
	Size          *decimal.Decimal
	RentAmount    *decimal.Decimal
	NumberOfRooms *int
	Color         *string
	Description   *string
	AmenityIDs    []int64
	FurnishingIDs []int64
}

// ApartmentUsecase defines the interface for apartment management.
type ApartmentUsecase interface {
	// CreateApartment registers a new apartment with its amenity and
	// furnishing sets.
	CreateApartment(ctx context.Context, input CreateApartmentInput) (*entity.Apartment, error)

	// GetApartment retrieves a single apartment with its associations.
	GetApartment(ctx context.Context, id int64) (*entity.Apartment, error)

	// ListApartments retrieves all apartments, or the apartments of one
	// block when blockID is given.
	ListApartments(ctx context.Context, blockID *int64) ([]*entity.Apartment, error)

	// UpdateApartment applies changes to an apartment.
	UpdateApartment(ctx context.Context, id int64, input UpdateApartmentInput) (*entity.Apartment, error)

	// DeleteApartment removes an apartment.
	DeleteApartment(ctx context.Context, id int64) error
}

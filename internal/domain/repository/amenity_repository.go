// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"manor/internal/domain/entity"
	"manor/internal/errors"
)

// Domain-specific errors for amenity and furnishing persistence.
var (
	// ErrAmenityNotFound is returned when an amenity is not found.
	ErrAmenityNotFound = errors.New("amenity not found")
	// ErrFurnishingNotFound is returned when a furnishing is not found.
	ErrFurnishingNotFound = errors.New("furnishing not found")
)

// AmenityRepository defines the interface for amenity-related database operations.
type AmenityRepository interface {
	// CreateAmenity persists a new amenity.
	CreateAmenity(ctx context.Context, amenity *entity.Amenity) error

	// FindAmenityByID retrieves an amenity by its unique ID.
	FindAmenityByID(ctx context.Context, id int64) (*entity.Amenity, error)

	// FindAllAmenities retrieves all amenities ordered by name.
	FindAllAmenities(ctx context.Context) ([]*entity.Amenity, error)

	// UpdateAmenity persists changes to an existing amenity.
	UpdateAmenity(ctx context.Context, amenity *entity.Amenity) error

	// DeleteAmenity removes an amenity by its ID.
	DeleteAmenity(ctx context.Context, id int64) error
}

// FurnishingRepository defines the interface for furnishing-related database operations.
type FurnishingRepository interface {
	// CreateFurnishing persists a new furnishing.
	CreateFurnishing(ctx context.Context, furnishing *entity.Furnishing) error

	// FindFurnishingByID retrieves a furnishing by its unique ID.
	FindFurnishingByID(ctx context.Context, id int64) (*entity.Furnishing, error)

	// FindAllFurnishings retrieves all furnishings ordered by name.
	FindAllFurnishings(ctx context.Context) ([]*entity.Furnishing, error)

	// UpdateFurnishing persists changes to an existing furnishing.
	UpdateFurnishing(ctx context.Context, furnishing *entity.Furnishing) error

	// DeleteFurnishing removes a furnishing by its ID.
	DeleteFurnishing(ctx context.Context, id int64) error
}

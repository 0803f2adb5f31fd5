// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"manor/internal/domain/entity"
	"manor/internal/errors"
)

// Domain-specific errors for estate persistence.
var (
	// ErrEstateNotFound is returned when an estate is not found.
	ErrEstateNotFound = errors.New("estate not found")
)

// EstateRepository defines the interface for estate-related database operations.
type EstateRepository interface {
	// CreateEstate persists a new estate.
	CreateEstate(ctx context.Context, estate *entity.Estate) error

	// FindEstateByID retrieves an estate by its unique ID.
	FindEstateByID(ctx context.Context, id int64) (*entity.Estate, error)

	// FindAllEstates retrieves all estates ordered by name.
	FindAllEstates(ctx context.Context) ([]*entity.Estate, error)

	// UpdateEstate persists changes to an existing estate.
	UpdateEstate(ctx context.Context, estate *entity.Estate) error

	// DeleteEstate removes an estate by its ID.
	DeleteEstate(ctx context.Context, id int64) error
}

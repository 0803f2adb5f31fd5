package usecase

import (
	"context"

	"manor/internal/domain/entity"
)

// CreateEstateInput carries the fields needed to register an estate.
type CreateEstateInput struct {
	Name        string
	Address     string
	Size        *string
	Description *string
}

// UpdateEstateInput carries estate changes. Nil fields are left untouched.
type UpdateEstateInput struct {
	Name        *string
	Address     *string
	Size        *string
	Description *string
}

// CreateBlockInput carries the fields needed to register a block.
type CreateBlockInput struct {
	EstateID    int64
	Name        string
	Description *string
}

// UpdateBlockInput carries block changes. Nil fields are left untouched.
type UpdateBlockInput struct {
	Name        *string
	Description *string
}

// EstateUsecase defines the interface for estate and block management.
type EstateUsecase interface {
	// CreateEstate registers a new estate.
	CreateEstate(ctx context.Context, input CreateEstateInput) (*entity.Estate, error)

	// GetEstate retrieves a single estate.
	GetEstate(ctx context.Context, id int64) (*entity.Estate, error)

	// ListEstates retrieves all estates.
	ListEstates(ctx context.Context) ([]*entity.Estate, error)

	// UpdateEstate applies changes to an estate.
	UpdateEstate(ctx context.Context, id int64, input UpdateEstateInput) (*entity.Estate, error)

	// DeleteEstate removes an estate.
	DeleteEstate(ctx context.Context, id int64) error

	// CreateBlock registers a new block under an estate.
	CreateBlock(ctx context.Context, input CreateBlockInput) (*entity.Block, error)

	// GetBlock retrieves a single block.
	GetBlock(ctx context.Context, id int64) (*entity.Block, error)

	// ListBlocks retrieves all blocks, or the blocks of one estate when
	// estateID is given.
	ListBlocks(ctx context.Context, estateID *int64) ([]*entity.Block, error)

	// UpdateBlock applies changes to a block.
	UpdateBlock(ctx context.Context, id int64, input UpdateBlockInput) (*entity.Block, error)

	// DeleteBlock removes a block.
	DeleteBlock(ctx context.Context, id int64) error
}

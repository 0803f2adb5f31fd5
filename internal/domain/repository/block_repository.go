// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"manor/internal/domain/entity"
	"manor/internal/errors"
)

// Domain-specific errors for block persistence.
var (
	// ErrBlockNotFound is returned when a block is not found.
	ErrBlockNotFound = errors.New("block not found")
)

// BlockRepository defines the interface for block-related database operations.
type BlockRepository interface {
	// CreateBlock persists a new block.
	CreateBlock(ctx context.Context, block *entity.Block) error

	// FindBlockByID retrieves a block by its unique ID.
	FindBlockByID(ctx context.Context, id int64) (*entity.Block, error)

	// FindAllBlocks retrieves all blocks ordered by name.
	FindAllBlocks(ctx context.Context) ([]*entity.Block, error)

	// FindBlocksByEstate retrieves all blocks belonging to an estate.
	FindBlocksByEstate(ctx context.Context, estateID int64) ([]*entity.Block, error)

	// UpdateBlock persists changes to an existing block.
	UpdateBlock(ctx context.Context, block *entity.Block) error

	// DeleteBlock removes a block by its ID.
	DeleteBlock(ctx context.Context, id int64) error
}

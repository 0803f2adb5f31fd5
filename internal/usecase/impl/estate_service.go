package impl

import (
	"context"

	"manor/internal/domain/entity"
	domainerrors "manor/internal/domain/errors"
	"manor/internal/domain/repository"
	"manor/internal/errors"
	"manor/internal/usecase"
)

// estateService implements the EstateUsecase interface.
type estateService struct {
	estateRepo repository.EstateRepository
	blockRepo  repository.BlockRepository
}

// NewEstateService creates a new estate service instance.
func NewEstateService(estateRepo repository.EstateRepository, blockRepo repository.BlockRepository) usecase.EstateUsecase {
	return &estateService{
		estateRepo: estateRepo,
		blockRepo:  blockRepo,
	}
}

// CreateEstate registers a new estate.
func (srv *estateService) CreateEstate(ctx context.Context, input usecase.CreateEstateInput) (*entity.Estate, error) {
	estate := &entity.Estate{
		Name:        input.Name,
		Address:     input.Address,
		Size:        input.Size,
		Description: input.Description,
	}

	if err := srv.estateRepo.CreateEstate(ctx, estate); err != nil {
		return nil, errors.Wrap(err, "failed to create estate")
	}

	return estate, nil
}

// GetEstate retrieves a single estate.
func (srv *estateService) GetEstate(ctx context.Context, id int64) (*entity.Estate, error) {
	estate, err := srv.estateRepo.FindEstateByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEstateNotFound) {
			return nil, domainerrors.ErrEstateNotFound
		}

		return nil, errors.Wrap(err, "failed to find estate by ID")
	}

	return estate, nil
}

// ListEstates retrieves all estates.
func (srv *estateService) ListEstates(ctx context.Context) ([]*entity.Estate, error) {
	estates, err := srv.estateRepo.FindAllEstates(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all estates")
	}

	return estates, nil
}

// UpdateEstate applies changes to an estate. Nil fields are left untouched.
func (srv *estateService) UpdateEstate(ctx context.Context, id int64, input usecase.UpdateEstateInput) (*entity.Estate, error) {
	estate, err := srv.GetEstate(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		estate.Name = *input.Name
	}
	if input.Address != nil {
		estate.Address = *input.Address
	}
	if input.Size != nil {
		estate.Size = input.Size
	}
	if input.Description != nil {
		estate.Description = input.Description
	}

	if err := srv.estateRepo.UpdateEstate(ctx, estate); err != nil {
		return nil, errors.Wrap(err, "failed to update estate")
	}

	return estate, nil
}

// DeleteEstate removes an estate.
func (srv *estateService) DeleteEstate(ctx context.Context, id int64) error {
	if err := srv.estateRepo.DeleteEstate(ctx, id); err != nil {
		if errors.Is(err, repository.ErrEstateNotFound) {
			return domainerrors.ErrEstateNotFound
		}

		return errors.Wrap(err, "failed to delete estate")
	}

	return nil
}

// CreateBlock registers a new block under an estate.
func (srv *estateService) CreateBlock(ctx context.Context, input usecase.CreateBlockInput) (*entity.Block, error) {
	if _, err := srv.GetEstate(ctx, input.EstateID); err != nil {
		return nil, err
	}

	block := &entity.Block{
		EstateID:    input.EstateID,
		Name:        input.Name,
		Description: input.Description,
	}

	if err := srv.blockRepo.CreateBlock(ctx, block); err != nil {
		return nil, errors.Wrap(err, "failed to create block")
	}

	return block, nil
}

// GetBlock retrieves a single block.
func (srv *estateService) GetBlock(ctx context.Context, id int64) (*entity.Block, error) {
	block, err := srv.blockRepo.FindBlockByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBlockNotFound) {
			return nil, domainerrors.ErrBlockNotFound
		}

		return nil, errors.Wrap(err, "failed to find block by ID")
	}

	return block, nil
}

// ListBlocks retrieves all blocks, or one estate's blocks when estateID is given.
func (srv *estateService) ListBlocks(ctx context.Context, estateID *int64) ([]*entity.Block, error) {
	if estateID == nil {
		blocks, err := srv.blockRepo.FindAllBlocks(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find all blocks")
		}

		return blocks, nil
	}

	if _, err := srv.GetEstate(ctx, *estateID); err != nil {
		return nil, err
	}

	blocks, err := srv.blockRepo.FindBlocksByEstate(ctx, *estateID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find blocks by estate")
	}

	return blocks, nil
}

// UpdateBlock applies changes to a block. Nil fields are left untouched.
func (srv *estateService) UpdateBlock(ctx context.Context, id int64, input usecase.UpdateBlockInput) (*entity.Block, error) {
	block, err := srv.GetBlock(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		block.Name = *input.Name
	}
	if input.Description != nil {
		block.Description = input.Description
	}

	if err := srv.blockRepo.UpdateBlock(ctx, block); err != nil {
		return nil, errors.Wrap(err, "failed to update block")
	}

	return block, nil
}

// DeleteBlock removes a block.
func (srv *estateService) DeleteBlock(ctx context.Context, id int64) error {
	if err := srv.blockRepo.DeleteBlock(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBlockNotFound) {
			return domainerrors.ErrBlockNotFound
		}

		return errors.Wrap(err, "failed to delete block")
	}

	return nil
}

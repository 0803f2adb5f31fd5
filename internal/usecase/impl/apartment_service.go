package impl

import (
	"context"

	"manor/internal/domain/entity"
	domainerrors "manor/internal/domain/errors"
	"manor/internal/domain/repository"
	"manor/internal/errors"
	"manor/internal/usecase"
)

// apartmentService implements the ApartmentUsecase interface.
type apartmentService struct {
	apartmentRepo  repository.ApartmentRepository
	blockRepo      repository.BlockRepository
	amenityRepo    repository.AmenityRepository
	furnishingRepo repository.FurnishingRepository
}

// NewApartmentService creates a new apartment service instance.
func NewApartmentService(
	apartmentRepo repository.ApartmentRepository,
	blockRepo repository.BlockRepository,
	amenityRepo repository.AmenityRepository,
	furnishingRepo repository.FurnishingRepository,
) usecase.ApartmentUsecase {
	return &apartmentService{
		apartmentRepo:  apartmentRepo,
		blockRepo:      blockRepo,
		amenityRepo:    amenityRepo,
		furnishingRepo: furnishingRepo,
	}
}

// CreateApartment registers a new apartment with its amenity and furnishing sets.
func (srv *apartmentService) CreateApartment(ctx context.Context, input usecase.CreateApartmentInput) (*entity.Apartment, error) {
	if _, err := srv.blockRepo.FindBlockByID(ctx, input.BlockID); err != nil {
		if errors.Is(err, repository.ErrBlockNotFound) {
			return nil, domainerrors.ErrBlockNotFound
		}

		return nil, errors.Wrap(err, "failed to find block by ID")
	}

	if err := srv.checkAssociations(ctx, input.AmenityIDs, input.FurnishingIDs); err != nil {
		return nil, err
	}

	apartment := &entity.Apartment{
		BlockID:       input.BlockID,
		Number:        input.Number,
		Size:          input.Size,
		RentAmount:    input.RentAmount,
		NumberOfRooms: input.NumberOfRooms,
		Color:         input.Color,
		Description:   input.Description,
	}

	if err := srv.apartmentRepo.CreateApartment(ctx, apartment); err != nil {
		return nil, errors.Wrap(err, "failed to create apartment")
	}

	if len(input.AmenityIDs) > 0 {
		if err := srv.apartmentRepo.ReplaceAmenities(ctx, apartment.ID, input.AmenityIDs); err != nil {
			return nil, errors.Wrap(err, "failed to attach amenities")
		}
	}
	if len(input.FurnishingIDs) > 0 {
		if err := srv.apartmentRepo.ReplaceFurnishings(ctx, apartment.ID, input.FurnishingIDs); err != nil {
			return nil, errors.Wrap(err, "failed to attach furnishings")
		}
	}

	return srv.GetApartment(ctx, apartment.ID)
}

// checkAssociations verifies every referenced amenity and furnishing exists.
func (srv *apartmentService) checkAssociations(ctx context.Context, amenityIDs, furnishingIDs []int64) error {
	for _, id := range amenityIDs {
		if _, err := srv.amenityRepo.FindAmenityByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrAmenityNotFound) {
				return domainerrors.ErrAmenityNotFound
			}

			return errors.Wrap(err, "failed to find amenity by ID")
		}
	}

	for _, id := range furnishingIDs {
		if _, err := srv.furnishingRepo.FindFurnishingByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrFurnishingNotFound) {
				return domainerrors.ErrFurnishingNotFound
			}

			return errors.Wrap(err, "failed to find furnishing by ID")
		}
	}

	return nil
}

// GetApartment retrieves a single apartment with its associations.
func (srv *apartmentService) GetApartment(ctx context.Context, id int64) (*entity.Apartment, error) {
	apartment, err := srv.apartmentRepo.FindApartmentByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrApartmentNotFound) {
			return nil, domainerrors.ErrApartmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find apartment by ID")
	}

	return apartment, nil
}

// ListApartments retrieves all apartments, or one block's apartments when
// blockID is given.
func (srv *apartmentService) ListApartments(ctx context.Context, blockID *int64) ([]*entity.Apartment, error) {
	if blockID == nil {
		apartments, err := srv.apartmentRepo.FindAllApartments(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find all apartments")
		}

		return apartments, nil
	}

	if _, err := srv.blockRepo.FindBlockByID(ctx, *blockID); err != nil {
		if errors.Is(err, repository.ErrBlockNotFound) {
			return nil, domainerrors.ErrBlockNotFound
		}

		return nil, errors.Wrap(err, "failed to find block by ID")
	}

	apartments, err := srv.apartmentRepo.FindApartmentsByBlock(ctx, *blockID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find apartments by block")
	}

	return apartments, nil
}

// UpdateApartment applies changes to an apartment. Nil fields are left
// untouched; nil ID slices leave the association sets unchanged.
func (srv *apartmentService) UpdateApartment(ctx context.Context, id int64, input usecase.UpdateApartmentInput) (*entity.Apartment, error) {
	apartment, err := srv.GetApartment(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := srv.checkAssociations(ctx, input.AmenityIDs, input.FurnishingIDs); err != nil {
		return nil, err
	}

	if input.Number != nil {
		apartment.Number = *input.Number
	}
	if input.Size != nil {
		apartment.Size = input.Size
	}
	if input.RentAmount != nil {
		apartment.RentAmount = input.RentAmount
	}
	if input.NumberOfRooms != nil {
		apartment.NumberOfRooms = input.NumberOfRooms
	}
	if input.Color != nil {
		apartment.Color = input.Color
	}
	if input.Description != nil {
		apartment.Description = input.Description
	}

	if err := srv.apartmentRepo.UpdateApartment(ctx, apartment); err != nil {
		return nil, errors.Wrap(err, "failed to update apartment")
	}

	if input.AmenityIDs != nil {
		if err := srv.apartmentRepo.ReplaceAmenities(ctx, id, input.AmenityIDs); err != nil {
			return nil, errors.Wrap(err, "failed to replace amenities")
		}
	}
	if input.FurnishingIDs != nil {
		if err := srv.apartmentRepo.ReplaceFurnishings(ctx, id, input.FurnishingIDs); err != nil {
			return nil, errors.Wrap(err, "failed to replace furnishings")
		}
	}

	return srv.GetApartment(ctx, id)
}

// DeleteApartment removes an apartment.
func (srv *apartmentService) DeleteApartment(ctx context.Context, id int64) error {
	if err := srv.apartmentRepo.DeleteApartment(ctx, id); err != nil {
		if errors.Is(err, repository.ErrApartmentNotFound) {
			return domainerrors.ErrApartmentNotFound
		}

		return errors.Wrap(err, "failed to delete apartment")
	}

	return nil
}

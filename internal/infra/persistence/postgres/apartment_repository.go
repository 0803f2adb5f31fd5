package postgres

import (
	"context"

	"manor/internal/domain/entity"
	domainerrors "manor/internal/domain/errors"
	"manor/internal/domain/repository"
	"manor/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// apartmentRepository implements the repository.ApartmentRepository interface.
type apartmentRepository struct {
	db *gorm.DB
}

// NewApartmentRepository is the constructor for apartmentRepository.
func NewApartmentRepository(db *gorm.DB) repository.ApartmentRepository {
	return &apartmentRepository{
		db: db,
	}
}

// CreateApartment persists a new apartment.
func (repo *apartmentRepository) CreateApartment(ctx context.Context, apartment *entity.Apartment) error {
	apartmentM := fromApartmentDomain(apartment)

	// Associations are managed through ReplaceAmenities and ReplaceFurnishings.
	if err := repo.db.WithContext(ctx).
		Omit("Amenities", "Furnishings").
		Create(apartmentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBlockNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required apartment information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create apartment")
	}

	// Update the entity with generated values
	apartment.ID = apartmentM.ID
	apartment.CreatedAt = apartmentM.CreatedAt
	apartment.UpdatedAt = apartmentM.UpdatedAt

	return nil
}

// FindApartmentByID retrieves an apartment with its amenities and furnishings.
func (repo *apartmentRepository) FindApartmentByID(ctx context.Context, id int64) (*entity.Apartment, error) {
	var apartmentM model.ApartmentModel

	if err := repo.db.WithContext(ctx).
		Preload("Amenities").
		Preload("Furnishings").
		Where("id = ?", id).
		First(&apartmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrApartmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find apartment by ID")
	}

	return toApartmentDomain(&apartmentM), nil
}

// FindAllApartments retrieves all apartments with amenities and furnishings preloaded.
func (repo *apartmentRepository) FindAllApartments(ctx context.Context) ([]*entity.Apartment, error) {
	var apartmentModels []*model.ApartmentModel

	if err := repo.db.WithContext(ctx).
		Preload("Amenities").
		Preload("Furnishings").
		Order("block_id ASC, number ASC").
		Find(&apartmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all apartments")
	}

	return toApartmentDomains(apartmentModels), nil
}

// FindApartmentsByBlock retrieves all apartments within a block.
func (repo *apartmentRepository) FindApartmentsByBlock(ctx context.Context, blockID int64) ([]*entity.Apartment, error) {
	var apartmentModels []*model.ApartmentModel

	if err := repo.db.WithContext(ctx).
		Preload("Amenities").
		Preload("Furnishings").
		Where("block_id = ?", blockID).
		Order("number ASC").
		Find(&apartmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find apartments by block")
	}

	return toApartmentDomains(apartmentModels), nil
}

// FindAvailableApartments retrieves apartments with no assigned tenant that
// satisfy the given filter.
func (repo *apartmentRepository) FindAvailableApartments(ctx context.Context, filter repository.ApartmentFilter) ([]*entity.Apartment, error) {
	var apartmentModels []*model.ApartmentModel

	query := repo.db.WithContext(ctx).
		Preload("Amenities").
		Preload("Furnishings").
		Where("NOT EXISTS (SELECT 1 FROM tenants WHERE tenants.apartment_id = apartments.id)")

	query = applyApartmentFilter(query, filter)

	if err := query.
		Order("block_id ASC, number ASC").
		Find(&apartmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find available apartments")
	}

	return toApartmentDomains(apartmentModels), nil
}

// CountApartments returns the total number of apartments.
func (repo *apartmentRepository) CountApartments(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ApartmentModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count apartments")
	}

	return count, nil
}

// UpdateApartment persists changes to an existing apartment.
func (repo *apartmentRepository) UpdateApartment(ctx context.Context, apartment *entity.Apartment) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ApartmentModel{}).
		Where("id = ?", apartment.ID).
		Updates(map[string]any{
			"block_id":        apartment.BlockID,
			"number":          apartment.Number,
			"size":            apartment.Size,
			"rent_amount":     apartment.RentAmount,
			"number_of_rooms": apartment.NumberOfRooms,
			"color":           apartment.Color,
			"description":     apartment.Description,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrBlockNotFound
		}

		return errors.Wrap(result.Error, "failed to update apartment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrApartmentNotFound
	}

	return nil
}

// ReplaceAmenities replaces the apartment's amenity set with the given IDs.
func (repo *apartmentRepository) ReplaceAmenities(ctx context.Context, apartmentID int64, amenityIDs []int64) error {
	amenities := make([]model.AmenityModel, 0, len(amenityIDs))
	for _, id := range amenityIDs {
		amenities = append(amenities, model.AmenityModel{ID: id})
	}

	apartmentM := model.ApartmentModel{ID: apartmentID}
	if err := repo.db.WithContext(ctx).
		Model(&apartmentM).
		Association("Amenities").
		Replace(amenities); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAmenityNotFound
		}

		return errors.Wrap(err, "failed to replace apartment amenities")
	}

	return nil
}

// ReplaceFurnishings replaces the apartment's furnishing set with the given IDs.
func (repo *apartmentRepository) ReplaceFurnishings(ctx context.Context, apartmentID int64, furnishingIDs []int64) error {
	furnishings := make([]model.FurnishingModel, 0, len(furnishingIDs))
	for _, id := range furnishingIDs {
		furnishings = append(furnishings, model.FurnishingModel{ID: id})
	}

	apartmentM := model.ApartmentModel{ID: apartmentID}
	if err := repo.db.WithContext(ctx).
		Model(&apartmentM).
		Association("Furnishings").
		Replace(furnishings); err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrFurnishingNotFound
		}

		return errors.Wrap(err, "failed to replace apartment furnishings")
	}

	return nil
}

// DeleteApartment removes an apartment by its ID.
func (repo *apartmentRepository) DeleteApartment(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Select("Amenities", "Furnishings").
		Delete(&model.ApartmentModel{ID: id})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("apartment still has a tenant assigned")
		}

		return errors.Wrap(result.Error, "failed to delete apartment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrApartmentNotFound
	}

	return nil
}

// applyApartmentFilter appends the optional filter conditions to the query.
func applyApartmentFilter(query *gorm.DB, filter repository.ApartmentFilter) *gorm.DB {
	if filter.MinRooms != nil {
		query = query.Where("number_of_rooms >= ?", *filter.MinRooms)
	}
	if filter.MaxRooms != nil {
		query = query.Where("number_of_rooms <= ?", *filter.MaxRooms)
	}
	if filter.MinRent != nil {
		query = query.Where("rent_amount >= ?", *filter.MinRent)
	}
	if filter.MaxRent != nil {
		query = query.Where("rent_amount <= ?", *filter.MaxRent)
	}
	if filter.MinSize != nil {
		query = query.Where("size >= ?", *filter.MinSize)
	}
	if filter.MaxSize != nil {
		query = query.Where("size <= ?", *filter.MaxSize)
	}
	if filter.BlockID != nil {
		query = query.Where("block_id = ?", *filter.BlockID)
	}
	if filter.EstateID != nil {
		query = query.Where(
			"block_id IN (SELECT id FROM blocks WHERE estate_id = ?)",
			*filter.EstateID,
		)
	}
	if len(filter.AmenityIDs) > 0 {
		query = query.Where(
			"EXISTS (SELECT 1 FROM apartment_amenities WHERE apartment_amenities.apartment_id = apartments.id AND apartment_amenities.amenity_id IN ?)",
			filter.AmenityIDs,
		)
	}
	if len(filter.FurnishingIDs) > 0 {
		query = query.Where(
			"EXISTS (SELECT 1 FROM apartment_furnishings WHERE apartment_furnishings.apartment_id = apartments.id AND apartment_furnishings.furnishing_id IN ?)",
			filter.FurnishingIDs,
		)
	}

	return query
}

// --- Mapper Functions ---

// toApartmentDomain converts a GORM model to a domain entity.
func toApartmentDomain(apartmentM *model.ApartmentModel) *entity.Apartment {
	amenities := make([]entity.Amenity, 0, len(apartmentM.Amenities))
	for i := range apartmentM.Amenities {
		amenities = append(amenities, *toAmenityDomain(&apartmentM.Amenities[i]))
	}

	furnishings := make([]entity.Furnishing, 0, len(apartmentM.Furnishings))
	for i := range apartmentM.Furnishings {
		furnishings = append(furnishings, *toFurnishingDomain(&apartmentM.Furnishings[i]))
	}

	return &entity.Apartment{
		ID:            apartmentM.ID,
		BlockID:       apartmentM.BlockID,
		Number:        apartmentM.Number,
		Size:          apartmentM.Size,
		RentAmount:    apartmentM.RentAmount,
		NumberOfRooms: apartmentM.NumberOfRooms,
		Color:         apartmentM.Color,
		Description:   apartmentM.Description,
		Amenities:     amenities,
		Furnishings:   furnishings,
		CreatedAt:     apartmentM.CreatedAt,
		UpdatedAt:     apartmentM.UpdatedAt,
	}
}

func toApartmentDomains(apartmentModels []*model.ApartmentModel) []*entity.Apartment {
	apartments := make([]*entity.Apartment, 0, len(apartmentModels))
	for _, apartmentM := range apartmentModels {
		apartments = append(apartments, toApartmentDomain(apartmentM))
	}

	return apartments
}

// fromApartmentDomain converts a domain entity to a GORM model.
func fromApartmentDomain(apartment *entity.Apartment) *model.ApartmentModel {
	return &model.ApartmentModel{
		ID:            apartment.ID,
		BlockID:       apartment.BlockID,
		Number:        apartment.Number,
		Size:          apartment.Size,
		RentAmount:    apartment.RentAmount,
		NumberOfRooms: apartment.NumberOfRooms,
		Color:         apartment.Color,
		Description:   apartment.Description,
		CreatedAt:     apartment.CreatedAt,
		UpdatedAt:     apartment.UpdatedAt,
	}
}

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

// amenityRepository implements the repository.AmenityRepository interface.
type amenityRepository struct {
	db *gorm.DB
}

// NewAmenityRepository is the constructor for amenityRepository.
func NewAmenityRepository(db *gorm.DB) repository.AmenityRepository {
	return &amenityRepository{
		db: db,
	}
}

// CreateAmenity persists a new amenity.
func (repo *amenityRepository) CreateAmenity(ctx context.Context, amenity *entity.Amenity) error {
	amenityM := fromAmenityDomain(amenity)

	if err := repo.db.WithContext(ctx).Create(amenityM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("amenity name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create amenity")
	}

	amenity.ID = amenityM.ID
	amenity.CreatedAt = amenityM.CreatedAt

	return nil
}

// FindAmenityByID retrieves an amenity by its unique ID.
func (repo *amenityRepository) FindAmenityByID(ctx context.Context, id int64) (*entity.Amenity, error) {
	var amenityM model.AmenityModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&amenityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAmenityNotFound
		}

		return nil, errors.Wrap(err, "failed to find amenity by ID")
	}

	return toAmenityDomain(&amenityM), nil
}

// FindAllAmenities retrieves all amenities ordered by name.
func (repo *amenityRepository) FindAllAmenities(ctx context.Context) ([]*entity.Amenity, error) {
	var amenityModels []*model.AmenityModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&amenityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all amenities")
	}

	amenities := make([]*entity.Amenity, 0, len(amenityModels))
	for _, amenityM := range amenityModels {
		amenities = append(amenities, toAmenityDomain(amenityM))
	}

	return amenities, nil
}

// UpdateAmenity persists changes to an existing amenity.
func (repo *amenityRepository) UpdateAmenity(ctx context.Context, amenity *entity.Amenity) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AmenityModel{}).
		Where("id = ?", amenity.ID).
		Updates(map[string]any{
			"name":        amenity.Name,
			"description": amenity.Description,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("amenity name already exists")
		}

		return errors.Wrap(result.Error, "failed to update amenity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAmenityNotFound
	}

	return nil
}

// DeleteAmenity removes an amenity by its ID.
func (repo *amenityRepository) DeleteAmenity(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AmenityModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete amenity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAmenityNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAmenityDomain converts a GORM model to a domain entity.
func toAmenityDomain(amenityM *model.AmenityModel) *entity.Amenity {
	return &entity.Amenity{
		ID:          amenityM.ID,
		Name:        amenityM.Name,
		Description: amenityM.Description,
		CreatedAt:   amenityM.CreatedAt,
	}
}

// fromAmenityDomain converts a domain entity to a GORM model.
func fromAmenityDomain(amenity *entity.Amenity) *model.AmenityModel {
	return &model.AmenityModel{
		ID:          amenity.ID,
		Name:        amenity.Name,
		Description: amenity.Description,
		CreatedAt:   amenity.CreatedAt,
	}
}

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

// furnishingRepository implements the repository.FurnishingRepository interface.
type furnishingRepository struct {
	db *gorm.DB
}

// NewFurnishingRepository is the constructor for furnishingRepository.
func NewFurnishingRepository(db *gorm.DB) repository.FurnishingRepository {
	return &furnishingRepository{
		db: db,
	}
}

// CreateFurnishing persists a new furnishing.
func (repo *furnishingRepository) CreateFurnishing(ctx context.Context, furnishing *entity.Furnishing) error {
	furnishingM := fromFurnishingDomain(furnishing)

	if err := repo.db.WithContext(ctx).Create(furnishingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("furnishing name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create furnishing")
	}

	furnishing.ID = furnishingM.ID
	furnishing.CreatedAt = furnishingM.CreatedAt

	return nil
}

// FindFurnishingByID retrieves a furnishing by its unique ID.
func (repo *furnishingRepository) FindFurnishingByID(ctx context.Context, id int64) (*entity.Furnishing, error) {
	var furnishingM model.FurnishingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&furnishingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFurnishingNotFound
		}

		return nil, errors.Wrap(err, "failed to find furnishing by ID")
	}

	return toFurnishingDomain(&furnishingM), nil
}

// FindAllFurnishings retrieves all furnishings ordered by name.
func (repo *furnishingRepository) FindAllFurnishings(ctx context.Context) ([]*entity.Furnishing, error) {
	var furnishingModels []*model.FurnishingModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&furnishingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all furnishings")
	}

	furnishings := make([]*entity.Furnishing, 0, len(furnishingModels))
	for _, furnishingM := range furnishingModels {
		furnishings = append(furnishings, toFurnishingDomain(furnishingM))
	}

	return furnishings, nil
}

// UpdateFurnishing persists changes to an existing furnishing.
func (repo *furnishingRepository) UpdateFurnishing(ctx context.Context, furnishing *entity.Furnishing) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FurnishingModel{}).
		Where("id = ?", furnishing.ID).
		Updates(map[string]any{
			"name":        furnishing.Name,
			"description": furnishing.Description,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("furnishing name already exists")
		}

		return errors.Wrap(result.Error, "failed to update furnishing")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFurnishingNotFound
	}

	return nil
}

// DeleteFurnishing removes a furnishing by its ID.
func (repo *furnishingRepository) DeleteFurnishing(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FurnishingModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete furnishing")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFurnishingNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toFurnishingDomain converts a GORM model to a domain entity.
func toFurnishingDomain(furnishingM *model.FurnishingModel) *entity.Furnishing {
	return &entity.Furnishing{
		ID:          furnishingM.ID,
		Name:        furnishingM.Name,
		Description: furnishingM.Description,
		CreatedAt:   furnishingM.CreatedAt,
	}
}

// fromFurnishingDomain converts a domain entity to a GORM model.
func fromFurnishingDomain(furnishing *entity.Furnishing) *model.FurnishingModel {
	return &model.FurnishingModel{
		ID:          furnishing.ID,
		Name:        furnishing.Name,
		Description: furnishing.Description,
		CreatedAt:   furnishing.CreatedAt,
	}
}

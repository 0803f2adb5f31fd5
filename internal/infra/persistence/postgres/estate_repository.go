// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// estateRepository implements the repository.EstateRepository interface.
type estateRepository struct {
	db *gorm.DB
}

// NewEstateRepository is the constructor for estateRepository.
func NewEstateRepository(db *gorm.DB) repository.EstateRepository {
	return &estateRepository{
		db: db,
	}
}

// CreateEstate persists a new estate.
func (repo *estateRepository) CreateEstate(ctx context.Context, estate *entity.Estate) error {
	estateM := fromEstateDomain(estate)

	if err := repo.db.WithContext(ctx).Create(estateM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required estate information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create estate")
	}

	// Update the entity with generated values
	estate.ID = estateM.ID
	estate.CreatedAt = estateM.CreatedAt
	estate.UpdatedAt = estateM.UpdatedAt

	return nil
}

// FindEstateByID retrieves an estate by its unique ID.
func (repo *estateRepository) FindEstateByID(ctx context.Context, id int64) (*entity.Estate, error) {
	var estateM model.EstateModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&estateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEstateNotFound
		}

		return nil, errors.Wrap(err, "failed to find estate by ID")
	}

	return toEstateDomain(&estateM), nil
}

// FindAllEstates retrieves all estates ordered by name.
func (repo *estateRepository) FindAllEstates(ctx context.Context) ([]*entity.Estate, error) {
	var estateModels []*model.EstateModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&estateModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all estates")
	}

	estates := make([]*entity.Estate, 0, len(estateModels))
	for _, estateM := range estateModels {
		estates = append(estates, toEstateDomain(estateM))
	}

	return estates, nil
}

// UpdateEstate persists changes to an existing estate.
func (repo *estateRepository) UpdateEstate(ctx context.Context, estate *entity.Estate) error {
	estateM := fromEstateDomain(estate)

	result := repo.db.WithContext(ctx).
		Model(&model.EstateModel{}).
		Where("id = ?", estate.ID).
		Updates(map[string]any{
			"name":        estateM.Name,
			"address":     estateM.Address,
			"size":        estateM.Size,
			"description": estateM.Description,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update estate")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEstateNotFound
	}

	return nil
}

// DeleteEstate removes an estate by its ID.
func (repo *estateRepository) DeleteEstate(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.EstateModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("estate still has blocks attached")
		}

		return errors.Wrap(result.Error, "failed to delete estate")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEstateNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toEstateDomain converts a GORM model to a domain entity.
func toEstateDomain(estateM *model.EstateModel) *entity.Estate {
	return &entity.Estate{
		ID:          estateM.ID,
		Name:        estateM.Name,
		Address:     estateM.Address,
		Size:        estateM.Size,
		Description: estateM.Description,
		CreatedAt:   estateM.CreatedAt,
		UpdatedAt:   estateM.UpdatedAt,
	}
}

// fromEstateDomain converts a domain entity to a GORM model.
func fromEstateDomain(estate *entity.Estate) *model.EstateModel {
	return &model.EstateModel{
		ID:          estate.ID,
		Name:        estate.Name,
		Address:     estate.Address,
		Size:        estate.Size,
		Description: estate.Description,
		CreatedAt:   estate.CreatedAt,
		UpdatedAt:   estate.UpdatedAt,
	}
}

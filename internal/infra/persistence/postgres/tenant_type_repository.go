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

// tenantTypeRepository implements the repository.TenantTypeRepository interface.
type tenantTypeRepository struct {
	db *gorm.DB
}

// NewTenantTypeRepository is the constructor for tenantTypeRepository.
func NewTenantTypeRepository(db *gorm.DB) repository.TenantTypeRepository {
	return &tenantTypeRepository{
		db: db,
	}
}

// CreateTenantType persists a new tenant type.
func (repo *tenantTypeRepository) CreateTenantType(ctx context.Context, tenantType *entity.TenantType) error {
	tenantTypeM := fromTenantTypeDomain(tenantType)

	if err := repo.db.WithContext(ctx).Create(tenantTypeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("tenant type name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create tenant type")
	}

	tenantType.ID = tenantTypeM.ID
	tenantType.CreatedAt = tenantTypeM.CreatedAt

	return nil
}

// FindTenantTypeByID retrieves a tenant type by its unique ID.
func (repo *tenantTypeRepository) FindTenantTypeByID(ctx context.Context, id int64) (*entity.TenantType, error) {
	var tenantTypeM model.TenantTypeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tenantTypeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTenantTypeNotFound
		}

		return nil, errors.Wrap(err, "failed to find tenant type by ID")
	}

	return toTenantTypeDomain(&tenantTypeM), nil
}

// FindAllTenantTypes retrieves all tenant types ordered by name.
func (repo *tenantTypeRepository) FindAllTenantTypes(ctx context.Context) ([]*entity.TenantType, error) {
	var tenantTypeModels []*model.TenantTypeModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&tenantTypeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all tenant types")
	}

	tenantTypes := make([]*entity.TenantType, 0, len(tenantTypeModels))
	for _, tenantTypeM := range tenantTypeModels {
		tenantTypes = append(tenantTypes, toTenantTypeDomain(tenantTypeM))
	}

	return tenantTypes, nil
}

// UpdateTenantType persists changes to an existing tenant type.
func (repo *tenantTypeRepository) UpdateTenantType(ctx context.Context, tenantType *entity.TenantType) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TenantTypeModel{}).
		Where("id = ?", tenantType.ID).
		Updates(map[string]any{
			"name":        tenantType.Name,
			"description": tenantType.Description,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("tenant type name already exists")
		}

		return errors.Wrap(result.Error, "failed to update tenant type")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTenantTypeNotFound
	}

	return nil
}

// DeleteTenantType removes a tenant type by its ID.
func (repo *tenantTypeRepository) DeleteTenantType(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TenantTypeModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("tenant type is still in use")
		}

		return errors.Wrap(result.Error, "failed to delete tenant type")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTenantTypeNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toTenantTypeDomain converts a GORM model to a domain entity.
func toTenantTypeDomain(tenantTypeM *model.TenantTypeModel) *entity.TenantType {
	return &entity.TenantType{
		ID:          tenantTypeM.ID,
		Name:        tenantTypeM.Name,
		Description: tenantTypeM.Description,
		CreatedAt:   tenantTypeM.CreatedAt,
	}
}

// fromTenantTypeDomain converts a domain entity to a GORM model.
func fromTenantTypeDomain(tenantType *entity.TenantType) *model.TenantTypeModel {
	return &model.TenantTypeModel{
		ID:          tenantType.ID,
		Name:        tenantType.Name,
		Description: tenantType.Description,
		CreatedAt:   tenantType.CreatedAt,
	}
}

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

// complaintCategoryRepository implements the repository.ComplaintCategoryRepository interface.
type complaintCategoryRepository struct {
	db *gorm.DB
}

// NewComplaintCategoryRepository is the constructor for complaintCategoryRepository.
func NewComplaintCategoryRepository(db *gorm.DB) repository.ComplaintCategoryRepository {
	return &complaintCategoryRepository{
		db: db,
	}
}

// CreateComplaintCategory persists a new complaint category.
func (repo *complaintCategoryRepository) CreateComplaintCategory(ctx context.Context, category *entity.ComplaintCategory) error {
	categoryM := fromComplaintCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("complaint category name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create complaint category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt

	return nil
}

// FindComplaintCategoryByID retrieves a complaint category by its unique ID.
func (repo *complaintCategoryRepository) FindComplaintCategoryByID(ctx context.Context, id int64) (*entity.ComplaintCategory, error) {
	var categoryM model.ComplaintCategoryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrComplaintCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find complaint category by ID")
	}

	return toComplaintCategoryDomain(&categoryM), nil
}

// FindAllComplaintCategories retrieves all complaint categories ordered by name.
func (repo *complaintCategoryRepository) FindAllComplaintCategories(ctx context.Context) ([]*entity.ComplaintCategory, error) {
	var categoryModels []*model.ComplaintCategoryModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all complaint categories")
	}

	categories := make([]*entity.ComplaintCategory, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toComplaintCategoryDomain(categoryM))
	}

	return categories, nil
}

// DeleteComplaintCategory removes a complaint category by its ID.
func (repo *complaintCategoryRepository) DeleteComplaintCategory(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ComplaintCategoryModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("complaint category is still in use")
		}

		return errors.Wrap(result.Error, "failed to delete complaint category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrComplaintCategoryNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toComplaintCategoryDomain converts a GORM model to a domain entity.
func toComplaintCategoryDomain(categoryM *model.ComplaintCategoryModel) *entity.ComplaintCategory {
	return &entity.ComplaintCategory{
		ID:          categoryM.ID,
		Name:        categoryM.Name,
		Description: categoryM.Description,
		CreatedAt:   categoryM.CreatedAt,
	}
}

// fromComplaintCategoryDomain converts a domain entity to a GORM model.
func fromComplaintCategoryDomain(category *entity.ComplaintCategory) *model.ComplaintCategoryModel {
	return &model.ComplaintCategoryModel{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
	}
}

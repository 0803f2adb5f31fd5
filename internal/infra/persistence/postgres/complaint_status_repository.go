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

// complaintStatusRepository implements the repository.ComplaintStatusRepository interface.
type complaintStatusRepository struct {
	db *gorm.DB
}

// NewComplaintStatusRepository is the constructor for complaintStatusRepository.
func NewComplaintStatusRepository(db *gorm.DB) repository.ComplaintStatusRepository {
	return &complaintStatusRepository{
		db: db,
	}
}

// CreateComplaintStatus persists a new complaint status.
func (repo *complaintStatusRepository) CreateComplaintStatus(ctx context.Context, status *entity.ComplaintStatus) error {
	statusM := fromComplaintStatusDomain(status)

	if err := repo.db.WithContext(ctx).Create(statusM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("complaint status name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create complaint status")
	}

	status.ID = statusM.ID
	status.CreatedAt = statusM.CreatedAt

	return nil
}

// FindComplaintStatusByID retrieves a complaint status by its unique ID.
func (repo *complaintStatusRepository) FindComplaintStatusByID(ctx context.Context, id int64) (*entity.ComplaintStatus, error) {
	var statusM model.ComplaintStatusModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&statusM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrComplaintStatusNotFound
		}

		return nil, errors.Wrap(err, "failed to find complaint status by ID")
	}

	return toComplaintStatusDomain(&statusM), nil
}

// FindAllComplaintStatuses retrieves all complaint statuses ordered by name.
func (repo *complaintStatusRepository) FindAllComplaintStatuses(ctx context.Context) ([]*entity.ComplaintStatus, error) {
	var statusModels []*model.ComplaintStatusModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&statusModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all complaint statuses")
	}

	statuses := make([]*entity.ComplaintStatus, 0, len(statusModels))
	for _, statusM := range statusModels {
		statuses = append(statuses, toComplaintStatusDomain(statusM))
	}

	return statuses, nil
}

// DeleteComplaintStatus removes a complaint status by its ID.
func (repo *complaintStatusRepository) DeleteComplaintStatus(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ComplaintStatusModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("complaint status is still in use")
		}

		return errors.Wrap(result.Error, "failed to delete complaint status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrComplaintStatusNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toComplaintStatusDomain converts a GORM model to a domain entity.
func toComplaintStatusDomain(statusM *model.ComplaintStatusModel) *entity.ComplaintStatus {
	return &entity.ComplaintStatus{
		ID:        statusM.ID,
		Name:      statusM.Name,
		CreatedAt: statusM.CreatedAt,
	}
}

// fromComplaintStatusDomain converts a domain entity to a GORM model.
func fromComplaintStatusDomain(status *entity.ComplaintStatus) *model.ComplaintStatusModel {
	return &model.ComplaintStatusModel{
		ID:        status.ID,
		Name:      status.Name,
		CreatedAt: status.CreatedAt,
	}
}

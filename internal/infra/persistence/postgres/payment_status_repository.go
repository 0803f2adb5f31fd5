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

// paymentStatusRepository implements the repository.PaymentStatusRepository interface.
type paymentStatusRepository struct {
	db *gorm.DB
}

// NewPaymentStatusRepository is the constructor for paymentStatusRepository.
func NewPaymentStatusRepository(db *gorm.DB) repository.PaymentStatusRepository {
	return &paymentStatusRepository{
		db: db,
	}
}

// CreatePaymentStatus persists a new payment status.
func (repo *paymentStatusRepository) CreatePaymentStatus(ctx context.Context, status *entity.PaymentStatus) error {
	statusM := fromPaymentStatusDomain(status)

	if err := repo.db.WithContext(ctx).Create(statusM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("payment status name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment status")
	}

	status.ID = statusM.ID
	status.CreatedAt = statusM.CreatedAt

	return nil
}

// FindPaymentStatusByID retrieves a payment status by its unique ID.
func (repo *paymentStatusRepository) FindPaymentStatusByID(ctx context.Context, id int64) (*entity.PaymentStatus, error) {
	var statusM model.PaymentStatusModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&statusM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentStatusNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment status by ID")
	}

	return toPaymentStatusDomain(&statusM), nil
}

// FindAllPaymentStatuses retrieves all payment statuses ordered by name.
func (repo *paymentStatusRepository) FindAllPaymentStatuses(ctx context.Context) ([]*entity.PaymentStatus, error) {
	var statusModels []*model.PaymentStatusModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&statusModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all payment statuses")
	}

	statuses := make([]*entity.PaymentStatus, 0, len(statusModels))
	for _, statusM := range statusModels {
		statuses = append(statuses, toPaymentStatusDomain(statusM))
	}

	return statuses, nil
}

// DeletePaymentStatus removes a payment status by its ID.
func (repo *paymentStatusRepository) DeletePaymentStatus(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PaymentStatusModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("payment status is still in use")
		}

		return errors.Wrap(result.Error, "failed to delete payment status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPaymentStatusNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPaymentStatusDomain converts a GORM model to a domain entity.
func toPaymentStatusDomain(statusM *model.PaymentStatusModel) *entity.PaymentStatus {
	return &entity.PaymentStatus{
		ID:        statusM.ID,
		Name:      statusM.Name,
		CreatedAt: statusM.CreatedAt,
	}
}

// fromPaymentStatusDomain converts a domain entity to a GORM model.
func fromPaymentStatusDomain(status *entity.PaymentStatus) *model.PaymentStatusModel {
	return &model.PaymentStatusModel{
		ID:        status.ID,
		Name:      status.Name,
		CreatedAt: status.CreatedAt,
	}
}

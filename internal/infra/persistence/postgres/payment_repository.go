package postgres

import (
	"context"
	"time"

	"manor/internal/domain/entity"
	domainerrors "manor/internal/domain/errors"
	"manor/internal/domain/repository"
	"manor/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// paymentRepository implements the repository.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// CreatePayment persists a new payment.
func (repo *paymentRepository) CreatePayment(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).
		Omit("Tenant", "Status").
		Create(paymentM).Error; err != nil {
		// The composite unique index guards one payment per tenant per billing period.
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePaymentPeriod
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid tenant or status reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required payment information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	// Update the entity with generated values
	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt

	return nil
}

// FindPaymentByID retrieves a payment with its tenant and status preloaded.
func (repo *paymentRepository) FindPaymentByID(ctx context.Context, id int64) (*entity.Payment, error) {
	var paymentM model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Preload("Tenant").
		Preload("Tenant.Apartment").
		Preload("Status").
		Where("id = ?", id).
		First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by ID")
	}

	return toPaymentDomain(&paymentM), nil
}

// FindAllPayments retrieves all payments with tenants and statuses preloaded.
func (repo *paymentRepository) FindAllPayments(ctx context.Context) ([]*entity.Payment, error) {
	var paymentModels []*model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Preload("Tenant").
		Preload("Tenant.Apartment").
		Preload("Status").
		Order("created_at DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all payments")
	}

	return toPaymentDomains(paymentModels), nil
}

// FindPaymentsByTenant retrieves a tenant's payments ordered by creation time descending.
func (repo *paymentRepository) FindPaymentsByTenant(ctx context.Context, tenantID int64) ([]*entity.Payment, error) {
	var paymentModels []*model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Preload("Status").
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find payments by tenant")
	}

	return toPaymentDomains(paymentModels), nil
}

// FindPaymentsCreatedBetween retrieves payments recorded in [start, end].
func (repo *paymentRepository) FindPaymentsCreatedBetween(ctx context.Context, start, end time.Time) ([]*entity.Payment, error) {
	var paymentModels []*model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Preload("Tenant").
		Preload("Tenant.Apartment").
		Preload("Status").
		Where("created_at BETWEEN ? AND ?", start, end).
		Order("created_at DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find payments created between")
	}

	return toPaymentDomains(paymentModels), nil
}

// FindPaymentByTenantPeriod retrieves the payment for a tenant's billing month and year.
func (repo *paymentRepository) FindPaymentByTenantPeriod(ctx context.Context, tenantID int64, month, year int) (*entity.Payment, error) {
	var paymentM model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Preload("Status").
		Where("tenant_id = ? AND for_month = ? AND for_year = ?", tenantID, month, year).
		First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by tenant period")
	}

	return toPaymentDomain(&paymentM), nil
}

// UpdatePayment persists changes to an existing payment.
func (repo *paymentRepository) UpdatePayment(ctx context.Context, payment *entity.Payment) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("id = ?", payment.ID).
		Updates(map[string]any{
			"amount":           payment.Amount,
			"status_id":        payment.StatusID,
			"due_date":         payment.DueDate,
			"paid_at":          payment.PaidAt,
			"for_month":        payment.ForMonth,
			"for_year":         payment.ForYear,
			"payment_method":   payment.PaymentMethod,
			"payment_type":     payment.PaymentType,
			"reference_number": payment.ReferenceNumber,
			"notes":            payment.Notes,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicatePaymentPeriod
		}
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid status reference")
		}

		return errors.Wrap(result.Error, "failed to update payment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPaymentNotFound
	}

	return nil
}

// DeletePayment removes a payment by its ID.
func (repo *paymentRepository) DeletePayment(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PaymentModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete payment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPaymentNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPaymentDomain converts a GORM model to a domain entity.
func toPaymentDomain(paymentM *model.PaymentModel) *entity.Payment {
	payment := &entity.Payment{
		ID:              paymentM.ID,
		TenantID:        paymentM.TenantID,
		Amount:          paymentM.Amount,
		StatusID:        paymentM.StatusID,
		DueDate:         paymentM.DueDate,
		PaidAt:          paymentM.PaidAt,
		ForMonth:        paymentM.ForMonth,
		ForYear:         paymentM.ForYear,
		PaymentMethod:   paymentM.PaymentMethod,
		PaymentType:     paymentM.PaymentType,
		ReferenceNumber: paymentM.ReferenceNumber,
		Notes:           paymentM.Notes,
		CreatedAt:       paymentM.CreatedAt,
	}

	if paymentM.Tenant != nil {
		payment.Tenant = toTenantDomain(paymentM.Tenant)
	}
	if paymentM.Status != nil {
		payment.Status = toPaymentStatusDomain(paymentM.Status)
	}

	return payment
}

func toPaymentDomains(paymentModels []*model.PaymentModel) []*entity.Payment {
	payments := make([]*entity.Payment, 0, len(paymentModels))
	for _, paymentM := range paymentModels {
		payments = append(payments, toPaymentDomain(paymentM))
	}

	return payments
}

// fromPaymentDomain converts a domain entity to a GORM model.
func fromPaymentDomain(payment *entity.Payment) *model.PaymentModel {
	return &model.PaymentModel{
		ID:              payment.ID,
		TenantID:        payment.TenantID,
		Amount:          payment.Amount,
		StatusID:        payment.StatusID,
		DueDate:         payment.DueDate,
		PaidAt:          payment.PaidAt,
		ForMonth:        payment.ForMonth,
		ForYear:         payment.ForYear,
		PaymentMethod:   payment.PaymentMethod,
		PaymentType:     payment.PaymentType,
		ReferenceNumber: payment.ReferenceNumber,
		Notes:           payment.Notes,
		CreatedAt:       payment.CreatedAt,
	}
}

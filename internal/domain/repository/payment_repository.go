// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"manor/internal/domain/entity"
	"manor/internal/errors"
)

// Domain-specific errors for payment persistence.
var (
	// ErrPaymentNotFound is returned when a payment is not found.
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrPaymentStatusNotFound is returned when a payment status is not found.
	ErrPaymentStatusNotFound = errors.New("payment status not found")
	// ErrDuplicatePaymentPeriod is returned when a payment for the same
	// tenant and billing period already exists.
	ErrDuplicatePaymentPeriod = errors.New("payment for this tenant and period already exists")
)

// PaymentRepository defines the interface for payment-related database operations.
type PaymentRepository interface {
	// CreatePayment persists a new payment.
	CreatePayment(ctx context.Context, payment *entity.Payment) error

	// FindPaymentByID retrieves a payment with its tenant and status preloaded.
	FindPaymentByID(ctx context.Context, id int64) (*entity.Payment, error)

	// FindAllPayments retrieves all payments with tenants and statuses preloaded.
	FindAllPayments(ctx context.Context) ([]*entity.Payment, error)

	// FindPaymentsByTenant retrieves a tenant's payments ordered by creation
	// time descending.
	FindPaymentsByTenant(ctx context.Context, tenantID int64) ([]*entity.Payment, error)

	// FindPaymentsCreatedBetween retrieves payments recorded in [start, end],
	// tenants and statuses preloaded.
	FindPaymentsCreatedBetween(ctx context.Context, start, end time.Time) ([]*entity.Payment, error)

	// FindPaymentByTenantPeriod retrieves the payment for a tenant's billing
	// month and year, or ErrPaymentNotFound when none exists.
	FindPaymentByTenantPeriod(ctx context.Context, tenantID int64, month, year int) (*entity.Payment, error)

	// UpdatePayment persists changes to an existing payment.
	UpdatePayment(ctx context.Context, payment *entity.Payment) error

	// DeletePayment removes a payment by its ID.
	DeletePayment(ctx context.Context, id int64) error
}

// PaymentStatusRepository defines the interface for payment status lookups.
type PaymentStatusRepository interface {
	// CreatePaymentStatus persists a new payment status.
	CreatePaymentStatus(ctx context.Context, status *entity.PaymentStatus) error

	// FindPaymentStatusByID retrieves a payment status by its unique ID.
	FindPaymentStatusByID(ctx context.Context, id int64) (*entity.PaymentStatus, error)

	// FindAllPaymentStatuses retrieves all payment statuses ordered by name.
	FindAllPaymentStatuses(ctx context.Context) ([]*entity.PaymentStatus, error)

	// DeletePaymentStatus removes a payment status by its ID.
	DeletePaymentStatus(ctx context.Context, id int64) error
}

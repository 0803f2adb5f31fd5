package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"manor/internal/domain/entity"
	"manor/internal/usecase/daterange"
)

// PaymentDashboard summarizes the current calendar month's payments.
type PaymentDashboard struct {
	TotalPayments   int     `json:"total_payments"`
	PaidPayments    int     `json:"paid_payments"`
	PendingPayments int     `json:"pending_payments"`
	OverduePayments int     `json:"overdue_payments"`
	MonthlyRevenue  float64 `json:"monthly_revenue"`
	TotalExpected   float64 `json:"total_expected"`
	TotalCollected  float64 `json:"total_collected"`
	PaymentRate     float64 `json:"payment_rate"`
}

// EstatePaymentBreakdown is one estate's share of a payment report.
type EstatePaymentBreakdown struct {
	EstateID       int64   `json:"estate_id"`
	EstateName     string  `json:"estate_name"`
	Payments       int     `json:"payments"`
	TotalAmount    float64 `json:"total_amount"`
	PaidAmount     float64 `json:"paid_amount"`
	PendingAmount  float64 `json:"pending_amount"`
	OverdueAmount  float64 `json:"overdue_amount"`
	CollectionRate float64 `json:"collection_rate"`
}

// PaymentMethodBreakdown groups report payments by payment method.
type PaymentMethodBreakdown struct {
	Method      string  `json:"method"`
	Count       int     `json:"count"`
	TotalAmount float64 `json:"total_amount"`
}

// MonthlyPaymentBreakdown is one calendar-month slice of a payment report.
type MonthlyPaymentBreakdown struct {
	Month          string  `json:"month"`
	TotalPayments  int     `json:"total_payments"`
	TotalAmount    float64 `json:"total_amount"`
	PaidAmount     float64 `json:"paid_amount"`
	CollectionRate float64 `json:"collection_rate"`
}

// PaymentReport is the date-range payment report.
type PaymentReport struct {
	TotalPayments    int                       `json:"total_payments"`
	TotalAmount      float64                   `json:"total_amount"`
	PaidAmount       float64                   `json:"paid_amount"`
	PendingAmount    float64                   `json:"pending_amount"`
	OverdueAmount    float64                   `json:"overdue_amount"`
	CollectionRate   float64                   `json:"collection_rate"`
	Estates          []EstatePaymentBreakdown  `json:"estates"`
	PaymentMethods   []PaymentMethodBreakdown  `json:"payment_methods"`
	MonthlyBreakdown []MonthlyPaymentBreakdown `json:"monthly_breakdown"`
}

// OverduePaymentAlert is a pending payment past its due date.
type OverduePaymentAlert struct {
	PaymentID     int64     `json:"payment_id"`
	TenantID      int64     `json:"tenant_id"`
	TenantName    string    `json:"tenant_name"`
	Apartment     string    `json:"apartment"`
	Estate        string    `json:"estate"`
	Amount        float64   `json:"amount"`
	DueDate       time.Time `json:"due_date"`
	DaysOverdue   int       `json:"days_overdue"`
	PaymentMethod string    `json:"payment_method"`
}

// UpcomingPaymentAlert is a pending payment due within the alert window.
type UpcomingPaymentAlert struct {
	PaymentID    int64     `json:"payment_id"`
	TenantID     int64     `json:"tenant_id"`
	TenantName   string    `json:"tenant_name"`
	Apartment    string    `json:"apartment"`
	Estate       string    `json:"estate"`
	Amount       float64   `json:"amount"`
	DueDate      time.Time `json:"due_date"`
	DaysUntilDue int       `json:"days_until_due"`
}

// RecentPaymentAlert is a recently settled payment.
type RecentPaymentAlert struct {
	PaymentID  int64     `json:"payment_id"`
	TenantID   int64     `json:"tenant_id"`
	TenantName string    `json:"tenant_name"`
	Apartment  string    `json:"apartment"`
	Estate     string    `json:"estate"`
	Amount     float64   `json:"amount"`
	PaidAt     time.Time `json:"paid_at"`
}

// PaymentAlerts bundles overdue, upcoming and recent payment lists, each
// capped at a configured size.
type PaymentAlerts struct {
	OverdueAlerts  []OverduePaymentAlert  `json:"overdue_alerts"`
	UpcomingAlerts []UpcomingPaymentAlert `json:"upcoming_alerts"`
	RecentPayments []RecentPaymentAlert   `json:"recent_payments"`
}

// OverdueTenantSummary identifies a tenant with outstanding payments.
type OverdueTenantSummary struct {
	TenantID      int64  `json:"tenant_id"`
	TenantName    string `json:"tenant_name"`
	Apartment     string `json:"apartment"`
	OverdueMonths int    `json:"overdue_months"`
}

// EstatePaymentStatus is one estate's current-month collection state.
type EstatePaymentStatus struct {
	EstateID           int64                  `json:"estate_id"`
	EstateName         string                 `json:"estate_name"`
	TotalApartments    int                    `json:"total_apartments"`
	OccupiedApartments int                    `json:"occupied_apartments"`
	TotalRentExpected  float64                `json:"total_rent_expected"`
	RentCollected      float64                `json:"rent_collected"`
	CollectionRate     float64                `json:"collection_rate"`
	OverdueTenants     []OverdueTenantSummary `json:"overdue_tenants"`
	OverdueCount       int                    `json:"overdue_count"`
}

// CreatePaymentInput carries the fields needed to record a payment.
type CreatePaymentInput struct {
	TenantID        int64
	Amount          decimal.Decimal
	StatusID        *int64
	DueDate         time.Time
	ForMonth        int
	ForYear         int
	PaymentMethod   *string
	PaymentType     *string
	ReferenceNumber *string
	Notes           *string
}

// UpdatePaymentStatusInput carries a payment status transition.
type UpdatePaymentStatusInput struct {
	StatusID        int64
	PaymentMethod   *string
	ReferenceNumber *string
	Notes           *string
}

// PaymentUsecase defines the interface for payment aggregation and the
// mutation paths that guard the billing-period uniqueness invariant.
type PaymentUsecase interface {
	// DashboardSummary computes current-month payment statistics.
	DashboardSummary(ctx context.Context, now time.Time) (*PaymentDashboard, error)

	// Report computes payment totals and breakdowns for payments recorded
	// in the given range.
	Report(ctx context.Context, now time.Time, window daterange.Range) (*PaymentReport, error)

	// Alerts lists overdue, upcoming and recently settled payments.
	Alerts(ctx context.Context, now time.Time) (*PaymentAlerts, error)

	// EstateStatus computes each estate's current-month collection state.
	EstateStatus(ctx context.Context, now time.Time) ([]*EstatePaymentStatus, error)

	// CreatePayment records a payment, rejecting duplicates for the same
	// tenant and billing period.
	CreatePayment(ctx context.Context, input CreatePaymentInput) (*entity.Payment, error)

	// UpdateStatus transitions a payment's status. Moving into a paid
	// status stamps paid_at when not already set.
	UpdateStatus(ctx context.Context, now time.Time, paymentID int64, input UpdatePaymentStatusInput) (*entity.Payment, error)

	// GetPayment retrieves a single payment.
	GetPayment(ctx context.Context, id int64) (*entity.Payment, error)

	// ListPayments retrieves all payments.
	ListPayments(ctx context.Context) ([]*entity.Payment, error)

	// ListPaymentsByTenant retrieves a tenant's payments, newest first.
	ListPaymentsByTenant(ctx context.Context, tenantID int64) ([]*entity.Payment, error)

	// DeletePayment removes a payment.
	DeletePayment(ctx context.Context, id int64) error
}

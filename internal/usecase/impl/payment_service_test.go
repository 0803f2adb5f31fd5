package impl

import (
	"context"
	"testing"
	"time"

	"manor/internal/domain/entity"
	domainerrors "manor/internal/domain/errors"
	"manor/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// paymentFixtures holds all test dependencies for payment service tests.
type paymentFixtures struct {
	service     usecase.PaymentUsecase
	paymentRepo *stubPaymentRepo
	statusRepo  *stubPaymentStatusRepo
	tenantRepo  *stubTenantRepo
}

func createTestPaymentService(payments []*entity.Payment, tenants []*entity.Tenant) paymentFixtures {
	estateRepo := &stubEstateRepo{estates: []*entity.Estate{
		{ID: 1, Name: "Sunrise Gardens"},
	}}
	blockRepo := &stubBlockRepo{blocks: []*entity.Block{
		{ID: 1, EstateID: 1, Name: "Block A"},
	}}
	apartmentRepo := &stubApartmentRepo{apartments: []*entity.Apartment{
		{ID: 1, BlockID: 1, Number: "A-1", RentAmount: ptr(decimal.NewFromInt(10000))},
		{ID: 2, BlockID: 1, Number: "A-2", RentAmount: ptr(decimal.NewFromInt(15000))},
	}}
	paymentRepo := &stubPaymentRepo{payments: payments, nextID: int64(len(payments))}
	statusRepo := &stubPaymentStatusRepo{statuses: []*entity.PaymentStatus{
		{ID: 1, Name: "Pending"},
		{ID: 2, Name: "Paid"},
	}}
	tenantRepo := &stubTenantRepo{tenants: tenants, nextID: int64(len(tenants))}

	factory := &stubRepoFactory{
		tenantRepo:        tenantRepo,
		apartmentRepo:     apartmentRepo,
		paymentRepo:       paymentRepo,
		paymentStatusRepo: statusRepo,
	}

	service := NewPaymentService(PaymentServiceParams{
		TxManager:     &stubTxManager{factory: factory},
		PaymentRepo:   paymentRepo,
		StatusRepo:    statusRepo,
		TenantRepo:    tenantRepo,
		ApartmentRepo: apartmentRepo,
		BlockRepo:     blockRepo,
		EstateRepo:    estateRepo,
		Config:        testConfig(),
		Logger:        testLogger(),
	})

	return paymentFixtures{
		service:     service,
		paymentRepo: paymentRepo,
		statusRepo:  statusRepo,
		tenantRepo:  tenantRepo,
	}
}

var (
	statusPending = &entity.PaymentStatus{ID: 1, Name: "Pending"}
	statusPaid    = &entity.PaymentStatus{ID: 2, Name: "Paid"}
)

func TestPaymentService_DashboardSummary(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	recorded := time.Date(2025, 6, 5, 10, 0, 0, 0, time.UTC)

	payments := []*entity.Payment{
		{ID: 1, TenantID: 1, Amount: decimal.NewFromInt(10000), Status: statusPaid,
			DueDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), CreatedAt: recorded},
		{ID: 2, TenantID: 2, Amount: decimal.NewFromInt(15000), Status: statusPending,
			DueDate: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), CreatedAt: recorded},
		{ID: 3, TenantID: 3, Amount: decimal.NewFromInt(12000), Status: statusPending,
			DueDate: time.Date(2025, 6, 28, 0, 0, 0, 0, time.UTC), CreatedAt: recorded},
		// Outside the current month, must not be counted.
		{ID: 4, TenantID: 4, Amount: decimal.NewFromInt(9000), Status: statusPaid,
			DueDate:   time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
			CreatedAt: time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC)},
	}
	fx := createTestPaymentService(payments, nil)

	dashboard, err := fx.service.DashboardSummary(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 3, dashboard.TotalPayments)
	assert.Equal(t, 1, dashboard.PaidPayments)
	assert.Equal(t, 2, dashboard.PendingPayments)
	assert.Equal(t, 1, dashboard.OverduePayments)
	assert.InDelta(t, 10000.0, dashboard.MonthlyRevenue, 0.01)
	assert.InDelta(t, 37000.0, dashboard.TotalExpected, 0.01)
	assert.InDelta(t, 33.33, dashboard.PaymentRate, 0.001)
}

func TestPaymentService_CreatePayment_DuplicatePeriod(t *testing.T) {
	tenants := []*entity.Tenant{{ID: 1, FullName: "Amina Yusuf"}}
	fx := createTestPaymentService(nil, tenants)

	input := usecase.CreatePaymentInput{
		TenantID: 1,
		Amount:   decimal.NewFromInt(10000),
		DueDate:  time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		ForMonth: 6,
		ForYear:  2025,
	}

	first, err := fx.service.CreatePayment(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.TenantID)
	require.NotNil(t, first.ForMonth)
	assert.Equal(t, 6, *first.ForMonth)

	_, err = fx.service.CreatePayment(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicatePaymentPeriod)

	// A different billing period for the same tenant is accepted.
	input.ForMonth = 7
	_, err = fx.service.CreatePayment(context.Background(), input)
	assert.NoError(t, err)
}

func TestPaymentService_CreatePayment_UnknownTenant(t *testing.T) {
	fx := createTestPaymentService(nil, nil)

	_, err := fx.service.CreatePayment(context.Background(), usecase.CreatePaymentInput{
		TenantID: 99,
		Amount:   decimal.NewFromInt(10000),
		ForMonth: 6,
		ForYear:  2025,
	})
	assert.ErrorIs(t, err, domainerrors.ErrTenantNotFound)
}

func TestPaymentService_UpdateStatus_StampsPaidAt(t *testing.T) {
	payments := []*entity.Payment{
		{ID: 1, TenantID: 1, Amount: decimal.NewFromInt(10000), Status: statusPending,
			StatusID: ptr(int64(1)), DueDate: time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)},
	}
	fx := createTestPaymentService(payments, nil)

	now := time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)
	updated, err := fx.service.UpdateStatus(context.Background(), now, 1, usecase.UpdatePaymentStatusInput{
		StatusID:      2,
		PaymentMethod: ptr("bank transfer"),
	})
	require.NoError(t, err)

	require.NotNil(t, updated.PaidAt)
	assert.Equal(t, now, *updated.PaidAt)
	assert.Equal(t, "Paid", updated.Status.Name)
	require.NotNil(t, updated.PaymentMethod)
	assert.Equal(t, "bank transfer", *updated.PaymentMethod)

	// A second transition into a paid status keeps the original stamp.
	later := now.Add(48 * time.Hour)
	again, err := fx.service.UpdateStatus(context.Background(), later, 1, usecase.UpdatePaymentStatusInput{StatusID: 2})
	require.NoError(t, err)
	assert.Equal(t, now, *again.PaidAt)
}

func TestPaymentService_UpdateStatus_UnknownStatus(t *testing.T) {
	payments := []*entity.Payment{
		{ID: 1, TenantID: 1, Amount: decimal.NewFromInt(10000), Status: statusPending},
	}
	fx := createTestPaymentService(payments, nil)

	_, err := fx.service.UpdateStatus(context.Background(), time.Now(), 1, usecase.UpdatePaymentStatusInput{StatusID: 42})
	assert.ErrorIs(t, err, domainerrors.ErrPaymentStatusNotFound)
}

func TestPaymentService_Alerts(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	tenant := &entity.Tenant{ID: 1, FullName: "Amina Yusuf", ApartmentID: ptr(int64(1))}

	paidAtEdge := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	paidAtNew := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)
	payments := []*entity.Payment{
		// Overdue, most recent due date.
		{ID: 1, TenantID: 1, Tenant: tenant, Amount: decimal.NewFromInt(10000), Status: statusPending,
			DueDate: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)},
		// Overdue, oldest due date: must come first.
		{ID: 2, TenantID: 1, Tenant: tenant, Amount: decimal.NewFromInt(10000), Status: statusPending,
			DueDate: time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)},
		// Due in three days.
		{ID: 3, TenantID: 1, Tenant: tenant, Amount: decimal.NewFromInt(10000), Status: statusPending,
			DueDate: time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)},
		// Due beyond the upcoming window.
		{ID: 4, TenantID: 1, Tenant: tenant, Amount: decimal.NewFromInt(10000), Status: statusPending,
			DueDate: time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)},
		// Settled within the recent window, newest settlement first.
		{ID: 5, TenantID: 1, Tenant: tenant, Amount: decimal.NewFromInt(10000), Status: statusPaid,
			DueDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), PaidAt: &paidAtEdge},
		{ID: 6, TenantID: 1, Tenant: tenant, Amount: decimal.NewFromInt(10000), Status: statusPaid,
			DueDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), PaidAt: &paidAtNew},
	}
	fx := createTestPaymentService(payments, []*entity.Tenant{tenant})

	alerts, err := fx.service.Alerts(context.Background(), now)
	require.NoError(t, err)

	require.Len(t, alerts.OverdueAlerts, 2)
	assert.Equal(t, int64(2), alerts.OverdueAlerts[0].PaymentID)
	assert.Equal(t, 36, alerts.OverdueAlerts[0].DaysOverdue)
	assert.Equal(t, "Amina Yusuf", alerts.OverdueAlerts[0].TenantName)
	assert.Equal(t, "Block A A-1", alerts.OverdueAlerts[0].Apartment)
	assert.Equal(t, "Sunrise Gardens", alerts.OverdueAlerts[0].Estate)
	assert.Equal(t, "Not Specified", alerts.OverdueAlerts[0].PaymentMethod)

	require.Len(t, alerts.UpcomingAlerts, 1)
	assert.Equal(t, int64(3), alerts.UpcomingAlerts[0].PaymentID)
	assert.Equal(t, 3, alerts.UpcomingAlerts[0].DaysUntilDue)

	require.Len(t, alerts.RecentPayments, 2)
	assert.Equal(t, int64(6), alerts.RecentPayments[0].PaymentID)
	assert.Equal(t, int64(5), alerts.RecentPayments[1].PaymentID)
}

func TestPaymentService_Alerts_ExcludesStaleSettlements(t *testing.T) {
	now := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	tenant := &entity.Tenant{ID: 1, FullName: "Amina Yusuf", ApartmentID: ptr(int64(1))}

	paidAtStale := now.AddDate(0, 0, -30)
	paidAtBoundary := now.AddDate(0, 0, -8)
	payments := []*entity.Payment{
		{ID: 1, TenantID: 1, Tenant: tenant, Amount: decimal.NewFromInt(10000), Status: statusPaid,
			DueDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), PaidAt: &paidAtStale},
		{ID: 2, TenantID: 1, Tenant: tenant, Amount: decimal.NewFromInt(10000), Status: statusPaid,
			DueDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), PaidAt: &paidAtBoundary},
	}
	fx := createTestPaymentService(payments, []*entity.Tenant{tenant})

	alerts, err := fx.service.Alerts(context.Background(), now)
	require.NoError(t, err)

	// Settlements older than the recent window never reach the list,
	// regardless of the list cap.
	assert.Empty(t, alerts.RecentPayments)
}

func TestPaymentService_Report(t *testing.T) {
	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	tenant := &entity.Tenant{ID: 1, FullName: "Amina Yusuf", ApartmentID: ptr(int64(1))}

	payments := []*entity.Payment{
		{ID: 1, TenantID: 1, Tenant: tenant, Amount: decimal.NewFromInt(10000), Status: statusPaid,
			PaymentMethod: ptr("bank transfer"),
			DueDate:       time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC),
			CreatedAt:     time.Date(2025, 5, 3, 0, 0, 0, 0, time.UTC)},
		{ID: 2, TenantID: 1, Tenant: tenant, Amount: decimal.NewFromInt(10000), Status: statusPending,
			DueDate:   time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
			CreatedAt: time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)},
	}
	fx := createTestPaymentService(payments, []*entity.Tenant{tenant})

	window := daterangeOf(t, "2025-05-01", "2025-06-30")
	report, err := fx.service.Report(context.Background(), now, window)
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalPayments)
	assert.InDelta(t, 20000.0, report.TotalAmount, 0.01)
	assert.InDelta(t, 10000.0, report.PaidAmount, 0.01)
	assert.InDelta(t, 10000.0, report.PendingAmount, 0.01)
	assert.InDelta(t, 10000.0, report.OverdueAmount, 0.01)
	assert.InDelta(t, 50.0, report.CollectionRate, 0.001)

	require.Len(t, report.Estates, 1)
	assert.Equal(t, "Sunrise Gardens", report.Estates[0].EstateName)
	assert.Equal(t, 2, report.Estates[0].Payments)

	require.Len(t, report.PaymentMethods, 2)
	assert.Equal(t, "Not Specified", report.PaymentMethods[0].Method)
	assert.Equal(t, "bank transfer", report.PaymentMethods[1].Method)

	require.Len(t, report.MonthlyBreakdown, 2)
	assert.Equal(t, "May 2025", report.MonthlyBreakdown[0].Month)
	assert.Equal(t, 1, report.MonthlyBreakdown[0].TotalPayments)
	assert.InDelta(t, 100.0, report.MonthlyBreakdown[0].CollectionRate, 0.001)
	assert.Equal(t, "June 2025", report.MonthlyBreakdown[1].Month)
	assert.InDelta(t, 0.0, report.MonthlyBreakdown[1].CollectionRate, 0.001)
}

func TestPaymentService_EstateStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	tenants := []*entity.Tenant{
		{ID: 1, FullName: "Amina Yusuf", ApartmentID: ptr(int64(1))},
		{ID: 2, FullName: "John Mwangi", ApartmentID: ptr(int64(2))},
	}
	payments := []*entity.Payment{
		{ID: 1, TenantID: 1, Amount: decimal.NewFromInt(10000), Status: statusPaid,
			ForMonth: ptr(6), ForYear: ptr(2025),
			DueDate: time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)},
		{ID: 2, TenantID: 2, Amount: decimal.NewFromInt(15000), Status: statusPending,
			ForMonth: ptr(6), ForYear: ptr(2025),
			DueDate: time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)},
	}
	fx := createTestPaymentService(payments, tenants)

	statuses, err := fx.service.EstateStatus(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, statuses, 1)

	status := statuses[0]
	assert.Equal(t, 2, status.TotalApartments)
	assert.Equal(t, 2, status.OccupiedApartments)
	assert.InDelta(t, 25000.0, status.TotalRentExpected, 0.01)
	assert.InDelta(t, 10000.0, status.RentCollected, 0.01)
	assert.InDelta(t, 40.0, status.CollectionRate, 0.001)

	require.Len(t, status.OverdueTenants, 1)
	assert.Equal(t, int64(2), status.OverdueTenants[0].TenantID)
	assert.Equal(t, 1, status.OverdueTenants[0].OverdueMonths)
	assert.Equal(t, 1, status.OverdueCount)
}

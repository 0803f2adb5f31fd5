package impl

import (
	"context"
	"testing"
	"time"

	"manor/internal/domain/entity"
	domainerrors "manor/internal/domain/errors"
	"manor/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// complaintFixtures holds all test dependencies for complaint service tests.
type complaintFixtures struct {
	service       usecase.ComplaintUsecase
	complaintRepo *stubComplaintRepo
}

var (
	complaintOpen       = &entity.ComplaintStatus{ID: 1, Name: "Open"}
	complaintInProgress = &entity.ComplaintStatus{ID: 2, Name: "In Progress"}
	complaintResolved   = &entity.ComplaintStatus{ID: 3, Name: "Resolved"}
	categoryPlumbing    = &entity.ComplaintCategory{ID: 1, Name: "Plumbing"}
)

func createTestComplaintService(complaints []*entity.Complaint, tenants []*entity.Tenant) complaintFixtures {
	estateRepo := &stubEstateRepo{estates: []*entity.Estate{
		{ID: 1, Name: "Sunrise Gardens"},
	}}
	blockRepo := &stubBlockRepo{blocks: []*entity.Block{
		{ID: 1, EstateID: 1, Name: "Block A"},
	}}
	apartmentRepo := &stubApartmentRepo{apartments: []*entity.Apartment{
		{ID: 1, BlockID: 1, Number: "A-1"},
	}}
	complaintRepo := &stubComplaintRepo{complaints: complaints, nextID: int64(len(complaints))}
	statusRepo := &stubComplaintStatusRepo{statuses: []*entity.ComplaintStatus{
		complaintOpen, complaintInProgress, complaintResolved,
	}}
	categoryRepo := &stubComplaintCategoryRepo{categories: []*entity.ComplaintCategory{categoryPlumbing}}
	tenantRepo := &stubTenantRepo{tenants: tenants, nextID: int64(len(tenants))}

	service := NewComplaintService(ComplaintServiceParams{
		ComplaintRepo: complaintRepo,
		StatusRepo:    statusRepo,
		CategoryRepo:  categoryRepo,
		TenantRepo:    tenantRepo,
		ApartmentRepo: apartmentRepo,
		BlockRepo:     blockRepo,
		EstateRepo:    estateRepo,
		Config:        testConfig(),
		Logger:        testLogger(),
	})

	return complaintFixtures{service: service, complaintRepo: complaintRepo}
}

func TestComplaintService_DashboardAnalytics(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	tenant := &entity.Tenant{ID: 1, FullName: "Amina Yusuf", ApartmentID: ptr(int64(1))}
	filed := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	resolvedAt := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)

	complaints := []*entity.Complaint{
		{ID: 1, TenantID: 1, Tenant: tenant, Status: complaintOpen, Category: categoryPlumbing,
			Description: "Leaking tap", CreatedAt: filed, UpdatedAt: filed},
		{ID: 2, TenantID: 1, Tenant: tenant, Status: complaintResolved,
			Description: "Broken light", CreatedAt: filed, UpdatedAt: resolvedAt},
		// Tenant without an apartment: counted in totals, absent from the
		// estate breakdown.
		{ID: 3, TenantID: 2, Tenant: &entity.Tenant{ID: 2, FullName: "John Mwangi"},
			Status: complaintInProgress, Description: "Noise",
			CreatedAt: time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)},
	}
	fx := createTestComplaintService(complaints, []*entity.Tenant{tenant})

	dashboard, err := fx.service.DashboardAnalytics(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 3, dashboard.TotalComplaints)
	assert.Equal(t, 1, dashboard.OpenComplaints)
	assert.Equal(t, 1, dashboard.InProgressComplaints)
	assert.Equal(t, 1, dashboard.ResolvedComplaints)
	assert.Equal(t, 2, dashboard.ComplaintsThisMonth)
	assert.InDelta(t, 3.0, dashboard.AvgResolutionDays, 0.001)

	// Only the categorized complaint appears in the category map.
	assert.Equal(t, map[string]int{"Plumbing": 1}, dashboard.ComplaintsByCategory)

	require.Len(t, dashboard.Estates, 1)
	estate := dashboard.Estates[0]
	assert.Equal(t, "Sunrise Gardens", estate.EstateName)
	assert.Equal(t, 2, estate.Total)
	assert.Equal(t, 1, estate.Open)
	assert.Equal(t, 1, estate.Resolved)
	require.Len(t, estate.Blocks, 1)
	assert.Equal(t, 2, estate.Blocks[0].Count)
}

func TestComplaintService_Report(t *testing.T) {
	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	tenant := &entity.Tenant{ID: 1, FullName: "Amina Yusuf", ApartmentID: ptr(int64(1))}

	complaints := []*entity.Complaint{
		{ID: 1, TenantID: 1, Tenant: tenant, Status: complaintResolved, Category: categoryPlumbing,
			Description: "Leaking tap",
			CreatedAt:   time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC)},
		{ID: 2, TenantID: 1, Tenant: tenant, Status: complaintOpen, Category: categoryPlumbing,
			Description: "Blocked drain",
			CreatedAt:   time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)},
		// Uncategorized: in totals, not in the category breakdown.
		{ID: 3, TenantID: 1, Tenant: tenant, Status: complaintOpen,
			Description: "Noise",
			CreatedAt:   time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)},
	}
	fx := createTestComplaintService(complaints, []*entity.Tenant{tenant})

	window := daterangeOf(t, "2025-05-01", "2025-06-30")
	report, err := fx.service.Report(context.Background(), now, window)
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalComplaints)
	assert.Equal(t, 2, report.OpenComplaints)
	assert.Equal(t, 1, report.ResolvedComplaints)

	require.Len(t, report.ComplaintCategories, 1)
	category := report.ComplaintCategories[0]
	assert.Equal(t, "Plumbing", category.Category)
	assert.Equal(t, 2, category.Count)
	assert.Equal(t, 1, category.Resolved)
	assert.InDelta(t, 50.0, category.ResolutionRate, 0.001)
	assert.InDelta(t, 2.0, category.AvgResolutionDays, 0.001)

	require.Len(t, report.Estates, 1)
	assert.Equal(t, 3, report.Estates[0].TotalComplaints)

	require.Len(t, report.MonthlyBreakdown, 2)
	assert.Equal(t, "May 2025", report.MonthlyBreakdown[0].Month)
	assert.Equal(t, 1, report.MonthlyBreakdown[0].NewComplaints)
	assert.Equal(t, 1, report.MonthlyBreakdown[0].ResolvedComplaints)
	assert.Equal(t, "June 2025", report.MonthlyBreakdown[1].Month)
	assert.Equal(t, 2, report.MonthlyBreakdown[1].NewComplaints)
	assert.Equal(t, 0, report.MonthlyBreakdown[1].ResolvedComplaints)
}

func TestComplaintService_Trends(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	tenant := &entity.Tenant{ID: 1, FullName: "Amina Yusuf"}

	complaints := []*entity.Complaint{
		{ID: 1, TenantID: 1, Tenant: tenant, Status: complaintResolved,
			Description: "Leaking tap",
			CreatedAt:   time.Date(2025, 6, 8, 9, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2025, 6, 9, 9, 0, 0, 0, time.UTC)},
		{ID: 2, TenantID: 1, Tenant: tenant, Status: complaintOpen,
			Description: "Blocked drain",
			CreatedAt:   time.Date(2025, 6, 8, 15, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2025, 6, 8, 15, 0, 0, 0, time.UTC)},
	}
	fx := createTestComplaintService(complaints, []*entity.Tenant{tenant})

	trends, err := fx.service.Trends(context.Background(), now, 7)
	require.NoError(t, err)

	assert.Equal(t, 2, trends.NewComplaints)
	assert.Equal(t, 1, trends.ResolvedComplaints)
	assert.InDelta(t, 50.0, trends.ResolutionRate, 0.001)

	// Jun 3 through Jun 10.
	require.Len(t, trends.DailyTrends, 8)

	jun8 := trends.DailyTrends[5]
	assert.Equal(t, time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC), jun8.Date)
	assert.Equal(t, 2, jun8.New)
	assert.Equal(t, 1, jun8.Resolved)

	for i, day := range trends.DailyTrends {
		if i == 5 {
			continue
		}
		assert.Zero(t, day.New)
	}
}

func TestComplaintService_CreateComplaint_UnknownReferences(t *testing.T) {
	tenant := &entity.Tenant{ID: 1, FullName: "Amina Yusuf"}
	fx := createTestComplaintService(nil, []*entity.Tenant{tenant})

	_, err := fx.service.CreateComplaint(context.Background(), usecase.CreateComplaintInput{
		TenantID:    99,
		Description: "Leaking tap",
	})
	assert.ErrorIs(t, err, domainerrors.ErrTenantNotFound)

	_, err = fx.service.CreateComplaint(context.Background(), usecase.CreateComplaintInput{
		TenantID:    1,
		CategoryID:  ptr(int64(42)),
		Description: "Leaking tap",
	})
	assert.ErrorIs(t, err, domainerrors.ErrComplaintCategoryNotFound)
}

func TestComplaintService_UpdateStatus(t *testing.T) {
	tenant := &entity.Tenant{ID: 1, FullName: "Amina Yusuf"}
	complaints := []*entity.Complaint{
		{ID: 1, TenantID: 1, Tenant: tenant, Status: complaintOpen, StatusID: ptr(int64(1)),
			Description: "Leaking tap"},
	}
	fx := createTestComplaintService(complaints, []*entity.Tenant{tenant})

	updated, err := fx.service.UpdateStatus(context.Background(), 1, usecase.UpdateComplaintStatusInput{
		StatusID: 3,
		Feedback: ptr("Fixed by plumber"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Resolved", updated.Status.Name)
	require.NotNil(t, updated.Feedback)
	assert.Equal(t, "Fixed by plumber", *updated.Feedback)
}

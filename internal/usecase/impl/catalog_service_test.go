package impl

import (
	"context"
	"testing"

	domainerrors "manor/internal/domain/errors"
	"manor/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCatalogService() usecase.CatalogUsecase {
	return NewCatalogService(CatalogServiceParams{
		AmenityRepo:           &stubAmenityRepo{},
		FurnishingRepo:        &stubFurnishingRepo{},
		TenantTypeRepo:        &stubTenantTypeRepo{},
		ComplaintStatusRepo:   &stubComplaintStatusRepo{},
		ComplaintCategoryRepo: &stubComplaintCategoryRepo{},
		PaymentStatusRepo:     &stubPaymentStatusRepo{},
	})
}

func TestCatalogService_Amenities(t *testing.T) {
	service := createTestCatalogService()
	ctx := context.Background()

	created, err := service.CreateAmenity(ctx, usecase.NamedItemInput{Name: "Parking"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	amenities, err := service.ListAmenities(ctx)
	require.NoError(t, err)
	require.Len(t, amenities, 1)
	assert.Equal(t, "Parking", amenities[0].Name)

	require.NoError(t, service.DeleteAmenity(ctx, created.ID))
	assert.ErrorIs(t, service.DeleteAmenity(ctx, created.ID), domainerrors.ErrAmenityNotFound)
}

func TestCatalogService_Statuses(t *testing.T) {
	service := createTestCatalogService()
	ctx := context.Background()

	paymentStatus, err := service.CreatePaymentStatus(ctx, "Paid")
	require.NoError(t, err)
	assert.Equal(t, "Paid", paymentStatus.Name)

	complaintStatus, err := service.CreateComplaintStatus(ctx, "Open")
	require.NoError(t, err)
	assert.Equal(t, "Open", complaintStatus.Name)

	assert.ErrorIs(t, service.DeletePaymentStatus(ctx, 99), domainerrors.ErrPaymentStatusNotFound)
	assert.ErrorIs(t, service.DeleteComplaintStatus(ctx, 99), domainerrors.ErrComplaintStatusNotFound)
}

func TestCatalogService_TenantTypesAndCategories(t *testing.T) {
	service := createTestCatalogService()
	ctx := context.Background()

	tenantType, err := service.CreateTenantType(ctx, usecase.NamedItemInput{
		Name:        "Corporate",
		Description: ptr("Company-leased units"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Corporate", tenantType.Name)

	category, err := service.CreateComplaintCategory(ctx, usecase.NamedItemInput{Name: "Plumbing"})
	require.NoError(t, err)

	categories, err := service.ListComplaintCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, category.ID, categories[0].ID)
}

package impl

import (
	"context"
	"testing"

	"manor/internal/domain/entity"
	domainerrors "manor/internal/domain/errors"
	"manor/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestApartmentService() (usecase.ApartmentUsecase, *stubApartmentRepo) {
	apartmentRepo := &stubApartmentRepo{}
	blockRepo := &stubBlockRepo{blocks: []*entity.Block{
		{ID: 1, EstateID: 1, Name: "Block A"},
	}}
	amenityRepo := &stubAmenityRepo{amenities: []*entity.Amenity{
		{ID: 1, Name: "Parking"},
	}}
	furnishingRepo := &stubFurnishingRepo{furnishings: []*entity.Furnishing{
		{ID: 1, Name: "Bed"},
	}}

	return NewApartmentService(apartmentRepo, blockRepo, amenityRepo, furnishingRepo), apartmentRepo
}

func TestApartmentService_CreateApartment(t *testing.T) {
	service, _ := createTestApartmentService()

	created, err := service.CreateApartment(context.Background(), usecase.CreateApartmentInput{
		BlockID:       1,
		Number:        "A-1",
		RentAmount:    ptr(decimal.NewFromInt(12000)),
		NumberOfRooms: ptr(2),
		AmenityIDs:    []int64{1},
	})
	require.NoError(t, err)
	assert.Equal(t, "A-1", created.Number)
	assert.Equal(t, int64(1), created.BlockID)
}

func TestApartmentService_CreateApartment_UnknownBlock(t *testing.T) {
	service, _ := createTestApartmentService()

	_, err := service.CreateApartment(context.Background(), usecase.CreateApartmentInput{
		BlockID: 99,
		Number:  "X-1",
	})
	assert.ErrorIs(t, err, domainerrors.ErrBlockNotFound)
}

func TestApartmentService_CreateApartment_UnknownAmenity(t *testing.T) {
	service, _ := createTestApartmentService()

	_, err := service.CreateApartment(context.Background(), usecase.CreateApartmentInput{
		BlockID:    1,
		Number:     "A-1",
		AmenityIDs: []int64{42},
	})
	assert.ErrorIs(t, err, domainerrors.ErrAmenityNotFound)
}

func TestApartmentService_UpdateApartment_PartialFields(t *testing.T) {
	service, apartmentRepo := createTestApartmentService()
	apartmentRepo.apartments = []*entity.Apartment{
		{ID: 1, BlockID: 1, Number: "A-1", NumberOfRooms: ptr(2)},
	}

	updated, err := service.UpdateApartment(context.Background(), 1, usecase.UpdateApartmentInput{
		RentAmount: ptr(decimal.NewFromInt(15000)),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.RentAmount)
	assert.True(t, updated.RentAmount.Equal(decimal.NewFromInt(15000)))
	require.NotNil(t, updated.NumberOfRooms)
	assert.Equal(t, 2, *updated.NumberOfRooms)
	assert.Equal(t, "A-1", updated.Number)
}

func TestApartmentService_DeleteApartment_Unknown(t *testing.T) {
	service, _ := createTestApartmentService()

	err := service.DeleteApartment(context.Background(), 99)
	assert.ErrorIs(t, err, domainerrors.ErrApartmentNotFound)
}

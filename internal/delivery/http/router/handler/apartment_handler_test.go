package handler

import (
	"context"
	"net/http"
	"testing"

	"manor/internal/domain/repository"
	"manor/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAvailabilityUsecase struct {
	usecase.AvailabilityUsecase

	findFn func(ctx context.Context, filter repository.ApartmentFilter) (*usecase.AvailabilityResult, error)
}

func (s *stubAvailabilityUsecase) FindAvailable(ctx context.Context, filter repository.ApartmentFilter) (*usecase.AvailabilityResult, error) {
	return s.findFn(ctx, filter)
}

func TestApartmentHandler_FindAvailable_FilterParams(t *testing.T) {
	var captured repository.ApartmentFilter
	stub := &stubAvailabilityUsecase{
		findFn: func(_ context.Context, filter repository.ApartmentFilter) (*usecase.AvailabilityResult, error) {
			captured = filter

			return &usecase.AvailabilityResult{}, nil
		},
	}
	h := &ApartmentHandler{availabilityUC: stub, logger: discardLogger()}

	target := "/apartments/available?min_rooms=2&max_rent=150000&estate_id=4" +
		"&amenities[]=1&amenities[]=2&furnishings[]=3"
	c, rec := newTestContext(t, http.MethodGet, target, "")

	err := h.FindAvailable(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, captured.MinRooms)
	assert.Equal(t, 2, *captured.MinRooms)
	require.NotNil(t, captured.MaxRent)
	assert.Equal(t, "150000", captured.MaxRent.String())
	require.NotNil(t, captured.EstateID)
	assert.Equal(t, int64(4), *captured.EstateID)
	assert.Equal(t, []int64{1, 2}, captured.AmenityIDs)
	assert.Equal(t, []int64{3}, captured.FurnishingIDs)
}

func TestApartmentHandler_FindAvailable_BadFilter(t *testing.T) {
	h := &ApartmentHandler{availabilityUC: &stubAvailabilityUsecase{}, logger: discardLogger()}

	c, rec := newTestContext(t, http.MethodGet, "/apartments/available?amenities[]=abc", "")

	err := h.FindAvailable(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

package handler

import (
	"log/slog"
	"net/http"

	"manor/internal/delivery/http/response"
	"manor/internal/domain/repository"
	"manor/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ApartmentHandlerParams holds dependencies for ApartmentHandler, injected by Fx.
type ApartmentHandlerParams struct {
	fx.In

	ApartmentUC    usecase.ApartmentUsecase
	AvailabilityUC usecase.AvailabilityUsecase
	Logger         *slog.Logger
}

// ApartmentHandler holds dependencies for apartment handlers, including the
// availability query.
type ApartmentHandler struct {
	apartmentUC    usecase.ApartmentUsecase
	availabilityUC usecase.AvailabilityUsecase
	logger         *slog.Logger
}

// NewApartmentHandler is the constructor for ApartmentHandler.
func NewApartmentHandler(params ApartmentHandlerParams) *ApartmentHandler {
	return &ApartmentHandler{
		apartmentUC:    params.ApartmentUC,
		availabilityUC: params.AvailabilityUC,
		logger:         params.Logger,
	}
}

// CreateApartmentRequest represents the request body for registering an apartment.
type CreateApartmentRequest struct {
	BlockID       int64            `json:"block_id" validate:"required"`
	Number        string           `json:"number" validate:"required"`
	Size          *decimal.Decimal `json:"size"`
	RentAmount    *decimal.Decimal `json:"rent_amount"`
	NumberOfRooms *int             `json:"number_of_rooms"`
	Color         *string          `json:"color"`
	Description   *string          `json:"description"`
	AmenityIDs    []int64          `json:"amenity_ids"`
	FurnishingIDs []int64          `json:"furnishing_ids"`
}

// UpdateApartmentRequest represents the request body for updating an apartment.
type UpdateApartmentRequest struct {
	Number        *string          `json:"number"`
	Size          *decimal.Decimal `json:"size"`
	RentAmount    *decimal.Decimal `json:"rent_amount"`
	NumberOfRooms *int             `json:"number_of_rooms"`
	Color         *string          `json:"color"`
	Description   *string          `json:"description"`
	AmenityIDs    []int64          `json:"amenity_ids"`
	FurnishingIDs []int64          `json:"furnishing_ids"`
}

// CreateApartment handles apartment registration.
func (h *ApartmentHandler) CreateApartment(c echo.Context) error {
	var req CreateApartmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid apartment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	apartment, err := h.apartmentUC.CreateApartment(c.Request().Context(), usecase.CreateApartmentInput{
		BlockID:       req.BlockID,
		Number:        req.Number,
		Size:          req.Size,
		RentAmount:    req.RentAmount,
		NumberOfRooms: req.NumberOfRooms,
		Color:         req.Color,
		Description:   req.Description,
		AmenityIDs:    req.AmenityIDs,
		FurnishingIDs: req.FurnishingIDs,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, apartment, "Apartment created successfully")
}

// GetApartment handles retrieving a single apartment.
func (h *ApartmentHandler) GetApartment(c echo.Context) error {
	id, err := parseIDParam(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	apartment, err := h.apartmentUC.GetApartment(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, apartment, "Apartment retrieved successfully")
}

// ListApartments handles retrieving apartments, optionally scoped to one block.
func (h *ApartmentHandler) ListApartments(c echo.Context) error {
	blockID, err := parseOptionalInt64(c.QueryParam("block_id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	apartments, err := h.apartmentUC.ListApartments(c.Request().Context(), blockID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, apartments, "Apartments retrieved successfully")
}

// FindAvailable handles the availability query: vacant apartments matching
// the filter, scored and ranked.
func (h *ApartmentHandler) FindAvailable(c echo.Context) error {
	filter, err := parseApartmentFilter(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.availabilityUC.FindAvailable(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Available apartments retrieved successfully")
}

// UpdateApartment handles applying changes to an apartment.
func (h *ApartmentHandler) UpdateApartment(c echo.Context) error {
	id, err := parseIDParam(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateApartmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid apartment input")
	}

	apartment, err := h.apartmentUC.UpdateApartment(c.Request().Context(), id, usecase.UpdateApartmentInput{
		Number:        req.Number,
		Size:          req.Size,
		RentAmount:    req.RentAmount,
		NumberOfRooms: req.NumberOfRooms,
		Color:         req.Color,
		Description:   req.Description,
		AmenityIDs:    req.AmenityIDs,
		FurnishingIDs: req.FurnishingIDs,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, apartment, "Apartment updated successfully")
}

// DeleteApartment handles removing an apartment.
func (h *ApartmentHandler) DeleteApartment(c echo.Context) error {
	id, err := parseIDParam(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.apartmentUC.DeleteApartment(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Apartment deleted successfully")
}

// parseApartmentFilter collects the availability filter from query parameters.
func parseApartmentFilter(c echo.Context) (repository.ApartmentFilter, error) {
	var filter repository.ApartmentFilter
	var err error

	if filter.MinRooms, err = parseOptionalInt(c.QueryParam("min_rooms")); err != nil {
		return filter, err
	}
	if filter.MaxRooms, err = parseOptionalInt(c.QueryParam("max_rooms")); err != nil {
		return filter, err
	}
	if filter.MinRent, err = parseOptionalDecimal(c.QueryParam("min_rent")); err != nil {
		return filter, err
	}
	if filter.MaxRent, err = parseOptionalDecimal(c.QueryParam("max_rent")); err != nil {
		return filter, err
	}
	if filter.MinSize, err = parseOptionalDecimal(c.QueryParam("min_size")); err != nil {
		return filter, err
	}
	if filter.MaxSize, err = parseOptionalDecimal(c.QueryParam("max_size")); err != nil {
		return filter, err
	}
	if filter.EstateID, err = parseOptionalInt64(c.QueryParam("estate_id")); err != nil {
		return filter, err
	}
	if filter.BlockID, err = parseOptionalInt64(c.QueryParam("block_id")); err != nil {
		return filter, err
	}
	query := c.QueryParams()
	if filter.AmenityIDs, err = parseRepeatedIDs(query["amenities[]"]); err != nil {
		return filter, err
	}
	if filter.FurnishingIDs, err = parseRepeatedIDs(query["furnishings[]"]); err != nil {
		return filter, err
	}

	return filter, nil
}

package handler

import (
	"log/slog"
	"net/http"

	"manor/internal/delivery/http/response"
	"manor/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EstateHandlerParams holds dependencies for EstateHandler, injected by Fx.
type EstateHandlerParams struct {
	fx.In

	EstateUC usecase.EstateUsecase
	Logger   *slog.Logger
}

// EstateHandler holds dependencies for estate and block handlers.
type EstateHandler struct {
	estateUC usecase.EstateUsecase
	logger   *slog.Logger
}

// NewEstateHandler is the constructor for EstateHandler.
func NewEstateHandler(params EstateHandlerParams) *EstateHandler {
	return &EstateHandler{
		estateUC: params.EstateUC,
		logger:   params.Logger,
	}
}

// CreateEstateRequest represents the request body for registering an estate.
type CreateEstateRequest struct {
	Name        string  `json:"name" validate:"required"`
	Address     string  `json:"address" validate:"required"`
	Size        *string `json:"size"`
	Description *string `json:"description"`
}

// UpdateEstateRequest represents the request body for updating an estate.
type UpdateEstateRequest struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	Size        *string `json:"size"`
	Description *string `json:"description"`
}

// CreateBlockRequest represents the request body for registering a block.
type CreateBlockRequest struct {
	EstateID    int64   `json:"estate_id" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

// UpdateBlockRequest represents the request body for updating a block.
type UpdateBlockRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CreateEstate handles estate registration.
func (h *EstateHandler) CreateEstate(c echo.Context) error {
	var req CreateEstateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid estate input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	estate, err := h.estateUC.CreateEstate(c.Request().Context(), usecase.CreateEstateInput{
		Name:        req.Name,
		Address:     req.Address,
		Size:        req.Size,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, estate, "Estate created successfully")
}

// GetEstate handles retrieving a single estate.
func (h *EstateHandler) GetEstate(c echo.Context) error {
	id, err := parseIDParam(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	estate, err := h.estateUC.GetEstate(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, estate, "Estate retrieved successfully")
}

// ListEstates handles retrieving all estates.
func (h *EstateHandler) ListEstates(c echo.Context) error {
	estates, err := h.estateUC.ListEstates(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, estates, "Estates retrieved successfully")
}

// UpdateEstate handles applying changes to an estate.
func (h *EstateHandler) UpdateEstate(c echo.Context) error {
	id, err := parseIDParam(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateEstateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid estate input")
	}

	estate, err := h.estateUC.UpdateEstate(c.Request().Context(), id, usecase.UpdateEstateInput{
		Name:        req.Name,
		Address:     req.Address,
		Size:        req.Size,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, estate, "Estate updated successfully")
}

// DeleteEstate handles removing an estate.
func (h *EstateHandler) DeleteEstate(c echo.Context) error {
	id, err := parseIDParam(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.estateUC.DeleteEstate(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Estate deleted successfully")
}

// CreateBlock handles block registration.
func (h *EstateHandler) CreateBlock(c echo.Context) error {
	var req CreateBlockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid block input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	block, err := h.estateUC.CreateBlock(c.Request().Context(), usecase.CreateBlockInput{
		EstateID:    req.EstateID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, block, "Block created successfully")
}

// GetBlock handles retrieving a single block.
func (h *EstateHandler) GetBlock(c echo.Context) error {
	id, err := parseIDParam(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	block, err := h.estateUC.GetBlock(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, block, "Block retrieved successfully")
}

// ListBlocks handles retrieving blocks, optionally scoped to one estate.
func (h *EstateHandler) ListBlocks(c echo.Context) error {
	estateID, err := parseOptionalInt64(c.QueryParam("estate_id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	blocks, err := h.estateUC.ListBlocks(c.Request().Context(), estateID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, blocks, "Blocks retrieved successfully")
}

// UpdateBlock handles applying changes to a block.
func (h *EstateHandler) UpdateBlock(c echo.Context) error {
	id, err := parseIDParam(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateBlockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid block input")
	}

	block, err := h.estateUC.UpdateBlock(c.Request().Context(), id, usecase.UpdateBlockInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, block, "Block updated successfully")
}

// DeleteBlock handles removing a block.
func (h *EstateHandler) DeleteBlock(c echo.Context) error {
	id, err := parseIDParam(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.estateUC.DeleteBlock(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Block deleted successfully")
}

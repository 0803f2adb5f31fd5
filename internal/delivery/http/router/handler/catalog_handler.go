package handler

import (
	"log/slog"
	"net/http"

	"manor/internal/delivery/http/response"
	"manor/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler holds dependencies for the lookup-table handlers: amenities,
// furnishings, tenant types, complaint statuses/categories and payment
// statuses.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// NamedItemRequest represents the request body for catalog entries that carry
// a name and an optional description.
type NamedItemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

// StatusRequest represents the request body for bare status entries.
type StatusRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *CatalogHandler) bindNamedItem(c echo.Context) (*NamedItemRequest, error) {
	var req NamedItemRequest
	if err := c.Bind(&req); err != nil {
		return nil, response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}

	if err := c.Validate(&req); err != nil {
		return nil, response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	return &req, nil
}

func (h *CatalogHandler) bindStatus(c echo.Context) (*StatusRequest, error) {
	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return nil, response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}

	if err := c.Validate(&req); err != nil {
		return nil, response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	return &req, nil
}

// CreateAmenity handles adding an amenity to the catalog.
func (h *CatalogHandler) CreateAmenity(c echo.Context) error {
	req, err := h.bindNamedItem(c)
	if req == nil {
		return err
	}

	amenity, err := h.catalogUC.CreateAmenity(c.Request().Context(), usecase.NamedItemInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, amenity, "Amenity created successfully")
}

// ListAmenities handles retrieving all amenities.
func (h *CatalogHandler) ListAmenities(c echo.Context) error {
	amenities, err := h.catalogUC.ListAmenities(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, amenities, "Amenities retrieved successfully")
}

// DeleteAmenity handles removing an amenity.
func (h *CatalogHandler) DeleteAmenity(c echo.Context) error {
	id, err := parseIDParam(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.catalogUC.DeleteAmenity(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Amenity deleted successfully")
}

// CreateFurnishing handles adding a furnishing to the catalog.
func (h *CatalogHandler) CreateFurnishing(c echo.Context) error {
	req, err := h.bindNamedItem(c)
	if req == nil {
		return err
	}

	furnishing, err := h.catalogUC.CreateFurnishing(c.Request().Context(), usecase.NamedItemInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, furnishing, "Furnishing created successfully")
}

// ListFurnishings handles retrieving all furnishings.
func (h *CatalogHandler) ListFurnishings(c echo.Context) error {
	furnishings, err := h.catalogUC.ListFurnishings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, furnishings, "Furnishings retrieved successfully")
}

// DeleteFurnishing handles removing a furnishing.
func (h *CatalogHandler) DeleteFurnishing(c echo.Context) error {
	id, err := parseIDParam(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.catalogUC.DeleteFurnishing(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Furnishing deleted successfully")
}

// CreateTenantType handles adding a tenant type.
func (h *CatalogHandler) CreateTenantType(c echo.Context) error {
	req, err := h.bindNamedItem(c)
	if req == nil {
		return err
	}

	tenantType, err := h.catalogUC.CreateTenantType(c.Request().Context(), usecase.NamedItemInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, tenantType, "Tenant type created successfully")
}

// ListTenantTypes handles retrieving all tenant types.
func (h *CatalogHandler) ListTenantTypes(c echo.Context) error {
	tenantTypes, err := h.catalogUC.ListTenantTypes(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tenantTypes, "Tenant types retrieved successfully")
}

// DeleteTenantType handles removing a tenant type.
func (h *CatalogHandler) DeleteTenantType(c echo.Context) error {
	id, err := parseIDParam(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.catalogUC.DeleteTenantType(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Tenant type deleted successfully")
}

// CreateComplaintStatus handles adding a complaint status.
func (h *CatalogHandler) CreateComplaintStatus(c echo.Context) error {
	req, err := h.bindStatus(c)
	if req == nil {
		return err
	}

	status, err := h.catalogUC.CreateComplaintStatus(c.Request().Context(), req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, status, "Complaint status created successfully")
}

// ListComplaintStatuses handles retrieving all complaint statuses.
func (h *CatalogHandler) ListComplaintStatuses(c echo.Context) error {
	statuses, err := h.catalogUC.ListComplaintStatuses(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, statuses, "Complaint statuses retrieved successfully")
}

// DeleteComplaintStatus handles removing a complaint status.
func (h *CatalogHandler) DeleteComplaintStatus(c echo.Context) error {
	id, err := parseIDParam(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.catalogUC.DeleteComplaintStatus(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Complaint status deleted successfully")
}

// CreateComplaintCategory handles adding a complaint category.
func (h *CatalogHandler) CreateComplaintCategory(c echo.Context) error {
	req, err := h.bindNamedItem(c)
	if req == nil {
		return err
	}

	category, err := h.catalogUC.CreateComplaintCategory(c.Request().Context(), usecase.NamedItemInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, category, "Complaint category created successfully")
}

// ListComplaintCategories handles retrieving all complaint categories.
func (h *CatalogHandler) ListComplaintCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListComplaintCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories, "Complaint categories retrieved successfully")
}

// DeleteComplaintCategory handles removing a complaint category.
func (h *CatalogHandler) DeleteComplaintCategory(c echo.Context) error {
	id, err := parseIDParam(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.catalogUC.DeleteComplaintCategory(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Complaint category deleted successfully")
}

// CreatePaymentStatus handles adding a payment status.
func (h *CatalogHandler) CreatePaymentStatus(c echo.Context) error {
	req, err := h.bindStatus(c)
	if req == nil {
		return err
	}

	status, err := h.catalogUC.CreatePaymentStatus(c.Request().Context(), req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, status, "Payment status created successfully")
}

// ListPaymentStatuses handles retrieving all payment statuses.
func (h *CatalogHandler) ListPaymentStatuses(c echo.Context) error {
	statuses, err := h.catalogUC.ListPaymentStatuses(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, statuses, "Payment statuses retrieved successfully")
}

// DeletePaymentStatus handles removing a payment status.
func (h *CatalogHandler) DeletePaymentStatus(c echo.Context) error {
	id, err := parseIDParam(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.catalogUC.DeletePaymentStatus(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Payment status deleted successfully")
}

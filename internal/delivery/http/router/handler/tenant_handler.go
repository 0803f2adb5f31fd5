package handler

import (
	"log/slog"
	"net/http"
	"time"

	"manor/internal/delivery/http/response"
	"manor/internal/usecase"
	"manor/internal/usecase/daterange"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TenantHandlerParams holds dependencies for TenantHandler, injected by Fx.
type TenantHandlerParams struct {
	fx.In

	TenantUC    usecase.TenantUsecase
	PaymentUC   usecase.PaymentUsecase
	ComplaintUC usecase.ComplaintUsecase
	Logger      *slog.Logger
}

// TenantHandler holds dependencies for tenant handlers, including the
// per-tenant payment and complaint listings.
type TenantHandler struct {
	tenantUC    usecase.TenantUsecase
	paymentUC   usecase.PaymentUsecase
	complaintUC usecase.ComplaintUsecase
	logger      *slog.Logger
}

// NewTenantHandler is the constructor for TenantHandler.
func NewTenantHandler(params TenantHandlerParams) *TenantHandler {
	return &TenantHandler{
		tenantUC:    params.TenantUC,
		paymentUC:   params.PaymentUC,
		complaintUC: params.ComplaintUC,
		logger:      params.Logger,
	}
}

// CreateTenantRequest represents the request body for registering a tenant.
type CreateTenantRequest struct {
	FullName         string     `json:"full_name" validate:"required"`
	Email            string     `json:"email" validate:"required,email"`
	PhoneNumber      *string    `json:"phone_number"`
	EmergencyContact *string    `json:"emergency_contact"`
	TenantTypeID     *int64     `json:"tenant_type_id"`
	ApartmentID      *int64     `json:"apartment_id"`
	LeaseStart       *time.Time `json:"lease_start"`
	LeaseEnd         *time.Time `json:"lease_end"`
}

// UpdateTenantRequest represents the request body for updating a tenant.
type UpdateTenantRequest struct {
	FullName         *string    `json:"full_name"`
	Email            *string    `json:"email"`
	PhoneNumber      *string    `json:"phone_number"`
	EmergencyContact *string    `json:"emergency_contact"`
	TenantTypeID     *int64     `json:"tenant_type_id"`
	LeaseStart       *time.Time `json:"lease_start"`
	LeaseEnd         *time.Time `json:"lease_end"`
}

// AssignApartmentRequest represents the request body for assigning an apartment.
type AssignApartmentRequest struct {
	ApartmentID int64      `json:"apartment_id" validate:"required"`
	LeaseStart  *time.Time `json:"lease_start"`
	LeaseEnd    *time.Time `json:"lease_end"`
}

// CreateTenant handles tenant registration.
func (h *TenantHandler) CreateTenant(c echo.Context) error {
	var req CreateTenantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tenant input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	tenant, err := h.tenantUC.CreateTenant(c.Request().Context(), usecase.CreateTenantInput{
		FullName:         req.FullName,
		Email:            req.Email,
		PhoneNumber:      req.PhoneNumber,
		EmergencyContact: req.EmergencyContact,
		TenantTypeID:     req.TenantTypeID,
		ApartmentID:      req.ApartmentID,
		LeaseStart:       req.LeaseStart,
		LeaseEnd:         req.LeaseEnd,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, tenant, "Tenant created successfully")
}

// GetTenant handles retrieving a single tenant.
func (h *TenantHandler) GetTenant(c echo.Context) error {
	id, err := parseIDParam(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	tenant, err := h.tenantUC.GetTenant(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tenant, "Tenant retrieved successfully")
}

// ListTenants handles retrieving all tenants.
func (h *TenantHandler) ListTenants(c echo.Context) error {
	tenants, err := h.tenantUC.ListTenants(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tenants, "Tenants retrieved successfully")
}

// UpdateTenant handles applying profile changes to a tenant.
func (h *TenantHandler) UpdateTenant(c echo.Context) error {
	id, err := parseIDParam(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateTenantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tenant input")
	}

	tenant, err := h.tenantUC.UpdateTenant(c.Request().Context(), id, usecase.UpdateTenantInput{
		FullName:         req.FullName,
		Email:            req.Email,
		PhoneNumber:      req.PhoneNumber,
		EmergencyContact: req.EmergencyContact,
		TenantTypeID:     req.TenantTypeID,
		LeaseStart:       req.LeaseStart,
		LeaseEnd:         req.LeaseEnd,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tenant, "Tenant updated successfully")
}

// AssignApartment handles moving a tenant into an apartment.
func (h *TenantHandler) AssignApartment(c echo.Context) error {
	id, err := parseIDParam(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AssignApartmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	tenant, err := h.tenantUC.AssignApartment(c.Request().Context(), id, req.ApartmentID, req.LeaseStart, req.LeaseEnd)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tenant, "Apartment assigned successfully")
}

// UnassignApartment handles releasing a tenant's apartment.
func (h *TenantHandler) UnassignApartment(c echo.Context) error {
	id, err := parseIDParam(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	tenant, err := h.tenantUC.UnassignApartment(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tenant, "Apartment unassigned successfully")
}

// ExpiryDashboard handles the lease-expiry dashboard.
func (h *TenantHandler) ExpiryDashboard(c echo.Context) error {
	now := time.Now()

	dashboard, err := h.tenantUC.ExpiryDashboard(c.Request().Context(), now)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dashboard, "Tenancy expiry dashboard retrieved successfully")
}

// ListExpiring handles listing tenants whose leases end within a range.
func (h *TenantHandler) ListExpiring(c echo.Context) error {
	window, err := daterange.Parse(c.QueryParam("start_date"), c.QueryParam("end_date"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	now := time.Now()

	expiring, err := h.tenantUC.Expiring(c.Request().Context(), now, window)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, expiring, "Expiring tenancies retrieved successfully")
}

// ListTenantPayments handles listing a tenant's payments.
func (h *TenantHandler) ListTenantPayments(c echo.Context) error {
	id, err := parseIDParam(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	payments, err := h.paymentUC.ListPaymentsByTenant(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, payments, "Tenant payments retrieved successfully")
}

// ListTenantComplaints handles listing a tenant's complaints.
func (h *TenantHandler) ListTenantComplaints(c echo.Context) error {
	id, err := parseIDParam(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	complaints, err := h.complaintUC.ListComplaintsByTenant(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, complaints, "Tenant complaints retrieved successfully")
}

// DeleteTenant handles removing a tenant.
func (h *TenantHandler) DeleteTenant(c echo.Context) error {
	id, err := parseIDParam(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.tenantUC.DeleteTenant(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Tenant deleted successfully")
}

package handler

import (
	"log/slog"
	"net/http"
	"time"

	"manor/internal/delivery/http/response"
	"manor/internal/usecase"
	"manor/internal/usecase/daterange"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler holds dependencies for payment handlers and reports.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler.
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// CreatePaymentRequest represents the request body for recording a payment.
type CreatePaymentRequest struct {
	TenantID        int64           `json:"tenant_id" validate:"required"`
	Amount          decimal.Decimal `json:"amount" validate:"required"`
	StatusID        *int64          `json:"status_id"`
	DueDate         time.Time       `json:"due_date" validate:"required"`
	ForMonth        int             `json:"for_month" validate:"required,min=1,max=12"`
	ForYear         int             `json:"for_year" validate:"required,min=2000"`
	PaymentMethod   *string         `json:"payment_method"`
	PaymentType     *string         `json:"payment_type"`
	ReferenceNumber *string         `json:"reference_number"`
	Notes           *string         `json:"notes"`
}

// UpdatePaymentStatusRequest represents the request body for a status transition.
type UpdatePaymentStatusRequest struct {
	StatusID        int64   `json:"status_id" validate:"required"`
	PaymentMethod   *string `json:"payment_method"`
	ReferenceNumber *string `json:"reference_number"`
	Notes           *string `json:"notes"`
}

// CreatePayment handles recording a payment.
func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	var req CreatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	payment, err := h.paymentUC.CreatePayment(c.Request().Context(), usecase.CreatePaymentInput{
		TenantID:        req.TenantID,
		Amount:          req.Amount,
		StatusID:        req.StatusID,
		DueDate:         req.DueDate,
		ForMonth:        req.ForMonth,
		ForYear:         req.ForYear,
		PaymentMethod:   req.PaymentMethod,
		PaymentType:     req.PaymentType,
		ReferenceNumber: req.ReferenceNumber,
		Notes:           req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, payment, "Payment created successfully")
}

// UpdateStatus handles a payment status transition.
func (h *PaymentHandler) UpdateStatus(c echo.Context) error {
	id, err := parseIDParam(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdatePaymentStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	now := time.Now()

	payment, err := h.paymentUC.UpdateStatus(c.Request().Context(), now, id, usecase.UpdatePaymentStatusInput{
		StatusID:        req.StatusID,
		PaymentMethod:   req.PaymentMethod,
		ReferenceNumber: req.ReferenceNumber,
		Notes:           req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, payment, "Payment status updated successfully")
}

// GetPayment handles retrieving a single payment.
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	id, err := parseIDParam(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	payment, err := h.paymentUC.GetPayment(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, payment, "Payment retrieved successfully")
}

// ListPayments handles retrieving all payments.
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	payments, err := h.paymentUC.ListPayments(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, payments, "Payments retrieved successfully")
}

// DeletePayment handles removing a payment.
func (h *PaymentHandler) DeletePayment(c echo.Context) error {
	id, err := parseIDParam(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.paymentUC.DeletePayment(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Payment deleted successfully")
}

// DashboardSummary handles the current-month payment dashboard.
func (h *PaymentHandler) DashboardSummary(c echo.Context) error {
	now := time.Now()

	dashboard, err := h.paymentUC.DashboardSummary(c.Request().Context(), now)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dashboard, "Payment dashboard retrieved successfully")
}

// Report handles the date-range payment report.
func (h *PaymentHandler) Report(c echo.Context) error {
	window, err := daterange.Parse(c.QueryParam("start_date"), c.QueryParam("end_date"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	now := time.Now()

	report, err := h.paymentUC.Report(c.Request().Context(), now, window)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report, "Payment report retrieved successfully")
}

// Alerts handles the payment alert lists.
func (h *PaymentHandler) Alerts(c echo.Context) error {
	now := time.Now()

	alerts, err := h.paymentUC.Alerts(c.Request().Context(), now)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alerts, "Payment alerts retrieved successfully")
}

// EstateStatus handles the per-estate current-month collection report.
func (h *PaymentHandler) EstateStatus(c echo.Context) error {
	now := time.Now()

	statuses, err := h.paymentUC.EstateStatus(c.Request().Context(), now)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, statuses, "Estate payment status retrieved successfully")
}

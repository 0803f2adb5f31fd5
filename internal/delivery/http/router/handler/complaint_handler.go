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

// ComplaintHandlerParams holds dependencies for ComplaintHandler, injected by Fx.
type ComplaintHandlerParams struct {
	fx.In

	ComplaintUC usecase.ComplaintUsecase
	Logger      *slog.Logger
}

// ComplaintHandler holds dependencies for complaint handlers and reports.
type ComplaintHandler struct {
	complaintUC usecase.ComplaintUsecase
	logger      *slog.Logger
}

// NewComplaintHandler is the constructor for ComplaintHandler.
func NewComplaintHandler(params ComplaintHandlerParams) *ComplaintHandler {
	return &ComplaintHandler{
		complaintUC: params.ComplaintUC,
		logger:      params.Logger,
	}
}

// CreateComplaintRequest represents the request body for filing a complaint.
type CreateComplaintRequest struct {
	TenantID    int64   `json:"tenant_id" validate:"required"`
	CategoryID  *int64  `json:"category_id"`
	StatusID    *int64  `json:"status_id"`
	Title       *string `json:"title"`
	Description string  `json:"description" validate:"required"`
}

// UpdateComplaintStatusRequest represents the request body for a complaint
// status transition.
type UpdateComplaintStatusRequest struct {
	StatusID int64   `json:"status_id" validate:"required"`
	Feedback *string `json:"feedback"`
}

// CreateComplaint handles filing a new complaint.
func (h *ComplaintHandler) CreateComplaint(c echo.Context) error {
	var req CreateComplaintRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid complaint input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	complaint, err := h.complaintUC.CreateComplaint(c.Request().Context(), usecase.CreateComplaintInput{
		TenantID:    req.TenantID,
		CategoryID:  req.CategoryID,
		StatusID:    req.StatusID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, complaint, "Complaint created successfully")
}

// UpdateStatus handles a complaint status transition.
func (h *ComplaintHandler) UpdateStatus(c echo.Context) error {
	id, err := parseIDParam(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateComplaintStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	complaint, err := h.complaintUC.UpdateStatus(c.Request().Context(), id, usecase.UpdateComplaintStatusInput{
		StatusID: req.StatusID,
		Feedback: req.Feedback,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, complaint, "Complaint status updated successfully")
}

// GetComplaint handles retrieving a single complaint.
func (h *ComplaintHandler) GetComplaint(c echo.Context) error {
	id, err := parseIDParam(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	complaint, err := h.complaintUC.GetComplaint(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, complaint, "Complaint retrieved successfully")
}

// ListComplaints handles retrieving all complaints.
func (h *ComplaintHandler) ListComplaints(c echo.Context) error {
	complaints, err := h.complaintUC.ListComplaints(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, complaints, "Complaints retrieved successfully")
}

// DeleteComplaint handles removing a complaint.
func (h *ComplaintHandler) DeleteComplaint(c echo.Context) error {
	id, err := parseIDParam(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.complaintUC.DeleteComplaint(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Complaint deleted successfully")
}

// DashboardAnalytics handles the complaint workload summary.
func (h *ComplaintHandler) DashboardAnalytics(c echo.Context) error {
	now := time.Now()

	dashboard, err := h.complaintUC.DashboardAnalytics(c.Request().Context(), now)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dashboard, "Complaint analytics retrieved successfully")
}

// Report handles the date-range complaint report.
func (h *ComplaintHandler) Report(c echo.Context) error {
	window, err := daterange.Parse(c.QueryParam("start_date"), c.QueryParam("end_date"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	now := time.Now()

	report, err := h.complaintUC.Report(c.Request().Context(), now, window)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report, "Complaint report retrieved successfully")
}

// Trends handles the trailing-window complaint trend report. The window
// length comes from the days query parameter when provided.
func (h *ComplaintHandler) Trends(c echo.Context) error {
	days, err := parseOptionalInt(c.QueryParam("days"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	windowDays := 0
	if days != nil {
		windowDays = *days
	}

	now := time.Now()

	trends, err := h.complaintUC.Trends(c.Request().Context(), now, windowDays)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, trends, "Complaint trends retrieved successfully")
}

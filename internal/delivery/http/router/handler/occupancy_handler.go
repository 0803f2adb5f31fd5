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

// OccupancyHandlerParams holds dependencies for OccupancyHandler, injected by Fx.
type OccupancyHandlerParams struct {
	fx.In

	OccupancyUC usecase.OccupancyUsecase
	Logger      *slog.Logger
}

// OccupancyHandler holds dependencies for the occupancy report handlers.
type OccupancyHandler struct {
	occupancyUC usecase.OccupancyUsecase
	logger      *slog.Logger
}

// NewOccupancyHandler is the constructor for OccupancyHandler.
func NewOccupancyHandler(params OccupancyHandlerParams) *OccupancyHandler {
	return &OccupancyHandler{
		occupancyUC: params.OccupancyUC,
		logger:      params.Logger,
	}
}

// Snapshot handles the current occupancy status report, optionally restricted
// to one estate via the estate_id query parameter.
func (h *OccupancyHandler) Snapshot(c echo.Context) error {
	estateID, err := parseOptionalInt64(c.QueryParam("estate_id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	snapshot, err := h.occupancyUC.Snapshot(c.Request().Context(), estateID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshot, "Occupancy status retrieved successfully")
}

// Report handles the date-range occupancy report.
func (h *OccupancyHandler) Report(c echo.Context) error {
	window, err := daterange.Parse(c.QueryParam("start_date"), c.QueryParam("end_date"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	now := time.Now()

	report, err := h.occupancyUC.Report(c.Request().Context(), now, window)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report, "Occupancy report retrieved successfully")
}

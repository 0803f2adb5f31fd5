package usecase

import (
	"context"
	"time"

	"manor/internal/usecase/daterange"
)

// BlockOccupancy is the occupancy state of a single block.
type BlockOccupancy struct {
	BlockID            int64   `json:"block_id"`
	BlockName          string  `json:"block_name"`
	TotalApartments    int     `json:"total_apartments"`
	OccupiedApartments int     `json:"occupied_apartments"`
	VacantApartments   int     `json:"vacant_apartments"`
	OccupancyRate      float64 `json:"occupancy_rate"`
}

// EstateOccupancy rolls block occupancy up to estate level.
type EstateOccupancy struct {
	EstateID           int64            `json:"estate_id"`
	EstateName         string           `json:"estate_name"`
	TotalApartments    int              `json:"total_apartments"`
	OccupiedApartments int              `json:"occupied_apartments"`
	VacantApartments   int              `json:"vacant_apartments"`
	OccupancyRate      float64          `json:"occupancy_rate"`
	Blocks             []BlockOccupancy `json:"blocks"`
}

// OccupancySnapshot is the system-wide occupancy state at request time.
type OccupancySnapshot struct {
	TotalEstates       int               `json:"total_estates"`
	TotalApartments    int               `json:"total_apartments"`
	OccupiedApartments int               `json:"occupied_apartments"`
	VacantApartments   int               `json:"vacant_apartments"`
	OccupancyRate      float64           `json:"occupancy_rate"`
	Estates            []EstateOccupancy `json:"estates"`
}

// OccupancyTrendPoint is one weekly sample of lease activity.
type OccupancyTrendPoint struct {
	Date            time.Time `json:"date"`
	TotalApartments int       `json:"total_apartments"`
	Occupied        int       `json:"occupied"`
	Vacant          int       `json:"vacant"`
	OccupancyRate   float64   `json:"occupancy_rate"`
}

// EstateTurnover summarizes per-estate movement over a report window.
type EstateTurnover struct {
	EstateID        int64   `json:"estate_id"`
	EstateName      string  `json:"estate_name"`
	TotalApartments int     `json:"total_apartments"`
	AvgOccupancy    float64 `json:"avg_occupancy"`
	PeakOccupancy   float64 `json:"peak_occupancy"`
	LowestOccupancy float64 `json:"lowest_occupancy"`
	MoveIns         int     `json:"move_ins"`
	MoveOuts        int     `json:"move_outs"`
	TurnoverRate    float64 `json:"turnover_rate"`
}

// OccupancySummary closes an occupancy report with system-wide figures.
// Peak and lowest are taken over the weekly trend series.
type OccupancySummary struct {
	AverageOccupancy   float64 `json:"average_occupancy"`
	PeakOccupancy      float64 `json:"peak_occupancy"`
	LowestOccupancy    float64 `json:"lowest_occupancy"`
	TotalApartments    int     `json:"total_apartments"`
	OccupiedApartments int     `json:"occupied_apartments"`
	VacantApartments   int     `json:"vacant_apartments"`
}

// OccupancyReport is the date-range occupancy report.
type OccupancyReport struct {
	OccupancyTrends []OccupancyTrendPoint `json:"occupancy_trends"`
	EstateBreakdown []EstateTurnover      `json:"estate_breakdown"`
	Summary         OccupancySummary      `json:"summary"`
}

// OccupancyUsecase defines the interface for occupancy aggregation.
type OccupancyUsecase interface {
	// Snapshot computes current occupancy per block and estate, optionally
	// restricted to one estate. Blocks without apartments report a zero rate.
	Snapshot(ctx context.Context, estateID *int64) (*OccupancySnapshot, error)

	// Report computes weekly occupancy trends and per-estate turnover over
	// the given range. The now timestamp is used for the move-out cutoff
	// and must be captured once per request.
	Report(ctx context.Context, now time.Time, window daterange.Range) (*OccupancyReport, error)
}

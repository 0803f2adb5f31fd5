package usecase

import (
	"context"
	"time"

	"manor/internal/domain/entity"
	"manor/internal/usecase/daterange"
)

// BlockComplaintCount counts complaints attributed to one block.
type BlockComplaintCount struct {
	BlockID   int64  `json:"block_id"`
	BlockName string `json:"block_name"`
	Count     int    `json:"count"`
}

// EstateComplaintActivity is one estate's complaint activity with per-block counts.
type EstateComplaintActivity struct {
	EstateID   int64                 `json:"estate_id"`
	EstateName string                `json:"estate_name"`
	Total      int                   `json:"total"`
	Open       int                   `json:"open"`
	Resolved   int                   `json:"resolved"`
	Blocks     []BlockComplaintCount `json:"blocks"`
}

// ComplaintDashboard summarizes current complaint workload.
// AvgResolutionDays is computed from created/updated timestamps of resolved
// and closed complaints.
type ComplaintDashboard struct {
	TotalComplaints      int                       `json:"total_complaints"`
	OpenComplaints       int                       `json:"open_complaints"`
	InProgressComplaints int                       `json:"in_progress_complaints"`
	ResolvedComplaints   int                       `json:"resolved_complaints"`
	ClosedComplaints     int                       `json:"closed_complaints"`
	AvgResolutionDays    float64                   `json:"avg_resolution_days"`
	ComplaintsThisMonth  int                       `json:"complaints_this_month"`
	ComplaintsByCategory map[string]int            `json:"complaints_by_category"`
	Estates              []EstateComplaintActivity `json:"estates"`
}

// ComplaintCategoryBreakdown is one category's share of a complaint report.
// Complaints without a category are excluded from these buckets but still
// count toward the report totals.
type ComplaintCategoryBreakdown struct {
	CategoryID        int64   `json:"category_id"`
	Category          string  `json:"category"`
	Count             int     `json:"count"`
	Resolved          int     `json:"resolved"`
	ResolutionRate    float64 `json:"resolution_rate"`
	AvgResolutionDays float64 `json:"avg_resolution_days"`
}

// EstateComplaintBreakdown is one estate's share of a complaint report.
type EstateComplaintBreakdown struct {
	EstateID           int64   `json:"estate_id"`
	EstateName         string  `json:"estate_name"`
	TotalComplaints    int     `json:"total_complaints"`
	ResolvedComplaints int     `json:"resolved_complaints"`
	ResolutionRate     float64 `json:"resolution_rate"`
	AvgResolutionDays  float64 `json:"avg_resolution_days"`
}

// MonthlyComplaintBreakdown is one calendar-month slice of a complaint report.
type MonthlyComplaintBreakdown struct {
	Month              string `json:"month"`
	NewComplaints      int    `json:"new_complaints"`
	ResolvedComplaints int    `json:"resolved_complaints"`
}

// ComplaintReport is the date-range complaint report.
type ComplaintReport struct {
	TotalComplaints      int                          `json:"total_complaints"`
	OpenComplaints       int                          `json:"open_complaints"`
	InProgressComplaints int                          `json:"in_progress_complaints"`
	ResolvedComplaints   int                          `json:"resolved_complaints"`
	ClosedComplaints     int                          `json:"closed_complaints"`
	AvgResolutionDays    float64                      `json:"avg_resolution_days"`
	ComplaintCategories  []ComplaintCategoryBreakdown `json:"complaint_categories"`
	Estates              []EstateComplaintBreakdown   `json:"estates"`
	MonthlyBreakdown     []MonthlyComplaintBreakdown  `json:"monthly_breakdown"`
}

// DailyComplaintTrend is one day of complaint activity.
type DailyComplaintTrend struct {
	Date     time.Time `json:"date"`
	New      int       `json:"new"`
	Resolved int       `json:"resolved"`
}

// ComplaintTrends is the rolling-window complaint trend report.
type ComplaintTrends struct {
	NewComplaints      int                   `json:"new_complaints"`
	ResolvedComplaints int                   `json:"resolved_complaints"`
	ResolutionRate     float64               `json:"resolution_rate"`
	AvgResolutionDays  float64               `json:"avg_resolution_days"`
	DailyTrends        []DailyComplaintTrend `json:"daily_trends"`
}

// CreateComplaintInput carries the fields needed to file a complaint.
type CreateComplaintInput struct {
	TenantID    int64
	CategoryID  *int64
	StatusID    *int64
	Title       *string
	Description string
}

// UpdateComplaintStatusInput carries a complaint status transition.
type UpdateComplaintStatusInput struct {
	StatusID int64
	Feedback *string
}

// ComplaintUsecase defines the interface for complaint aggregation and the
// complaint lifecycle operations.
type ComplaintUsecase interface {
	// DashboardAnalytics computes the current complaint workload summary.
	DashboardAnalytics(ctx context.Context, now time.Time) (*ComplaintDashboard, error)

	// Report computes complaint totals and breakdowns for complaints filed
	// in the given range.
	Report(ctx context.Context, now time.Time, window daterange.Range) (*ComplaintReport, error)

	// Trends computes daily complaint activity over the trailing window of
	// the given number of days.
	Trends(ctx context.Context, now time.Time, days int) (*ComplaintTrends, error)

	// CreateComplaint files a new complaint.
	CreateComplaint(ctx context.Context, input CreateComplaintInput) (*entity.Complaint, error)

	// UpdateStatus transitions a complaint's status and optionally records
	// resolution feedback.
	UpdateStatus(ctx context.Context, complaintID int64, input UpdateComplaintStatusInput) (*entity.Complaint, error)

	// GetComplaint retrieves a single complaint.
	GetComplaint(ctx context.Context, id int64) (*entity.Complaint, error)

	// ListComplaints retrieves all complaints, newest first.
	ListComplaints(ctx context.Context) ([]*entity.Complaint, error)

	// ListComplaintsByTenant retrieves a tenant's complaints, newest first.
	ListComplaintsByTenant(ctx context.Context, tenantID int64) ([]*entity.Complaint, error)

	// DeleteComplaint removes a complaint.
	DeleteComplaint(ctx context.Context, id int64) error
}

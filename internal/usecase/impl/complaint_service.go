package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"manor/config"
	deliverycontext "manor/internal/delivery/context"
	"manor/internal/domain/entity"
	domainerrors "manor/internal/domain/errors"
	"manor/internal/domain/repository"
	"manor/internal/errors"
	"manor/internal/usecase"
	"manor/internal/usecase/daterange"

	jnow "github.com/jinzhu/now"
	"go.uber.org/fx"
)

// complaintService implements the ComplaintUsecase interface.
type complaintService struct {
	complaintRepo repository.ComplaintRepository
	statusRepo    repository.ComplaintStatusRepository
	categoryRepo  repository.ComplaintCategoryRepository
	tenantRepo    repository.TenantRepository
	apartmentRepo repository.ApartmentRepository
	blockRepo     repository.BlockRepository
	estateRepo    repository.EstateRepository
	trendDays     int
	logger        *slog.Logger
}

// ComplaintServiceParams holds dependencies for ComplaintService, injected by Fx.
type ComplaintServiceParams struct {
	fx.In

	ComplaintRepo repository.ComplaintRepository
	StatusRepo    repository.ComplaintStatusRepository
	CategoryRepo  repository.ComplaintCategoryRepository
	TenantRepo    repository.TenantRepository
	ApartmentRepo repository.ApartmentRepository
	BlockRepo     repository.BlockRepository
	EstateRepo    repository.EstateRepository
	Config        *config.Config
	Logger        *slog.Logger
}

// NewComplaintService is the constructor for complaintService.
func NewComplaintService(params ComplaintServiceParams) usecase.ComplaintUsecase {
	trendDays := 0
	if params.Config != nil && params.Config.Reporting != nil {
		trendDays = params.Config.Reporting.ComplaintTrendDays
	}

	return &complaintService{
		complaintRepo: params.ComplaintRepo,
		statusRepo:    params.StatusRepo,
		categoryRepo:  params.CategoryRepo,
		tenantRepo:    params.TenantRepo,
		apartmentRepo: params.ApartmentRepo,
		blockRepo:     params.BlockRepo,
		estateRepo:    params.EstateRepo,
		trendDays:     trendDays,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *complaintService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// avgResolutionDays averages the created-to-updated span of resolved and
// closed complaints, in days.
func avgResolutionDays(complaints []*entity.Complaint) float64 {
	var total float64
	count := 0
	for _, complaint := range complaints {
		if complaint.StatusIs("resolved") || complaint.StatusIs("closed") {
			total += complaint.ResolutionTime().Hours() / 24
			count++
		}
	}
	if count == 0 {
		return 0
	}

	return round2(total / float64(count))
}

// DashboardAnalytics computes the current complaint workload summary.
func (srv *complaintService) DashboardAnalytics(ctx context.Context, at time.Time) (*usecase.ComplaintDashboard, error) {
	complaints, err := srv.complaintRepo.FindAllComplaints(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all complaints")
	}

	index, err := loadLocationIndex(ctx, srv.estateRepo, srv.blockRepo, srv.apartmentRepo)
	if err != nil {
		return nil, err
	}

	dashboard := &usecase.ComplaintDashboard{
		TotalComplaints:      len(complaints),
		ComplaintsByCategory: make(map[string]int),
	}

	monthStart := jnow.New(at).BeginningOfMonth()
	for _, complaint := range complaints {
		switch {
		case complaint.StatusIs("in progress"):
			dashboard.InProgressComplaints++
		case complaint.StatusIs("open"):
			dashboard.OpenComplaints++
		case complaint.StatusIs("resolved"):
			dashboard.ResolvedComplaints++
		case complaint.StatusIs("closed"):
			dashboard.ClosedComplaints++
		}

		if !complaint.CreatedAt.Before(monthStart) && !complaint.CreatedAt.After(at) {
			dashboard.ComplaintsThisMonth++
		}

		if complaint.Category != nil {
			dashboard.ComplaintsByCategory[complaint.Category.Name]++
		}
	}

	dashboard.AvgResolutionDays = avgResolutionDays(complaints)
	dashboard.Estates = estateComplaintActivity(complaints, index)

	return dashboard, nil
}

// estateComplaintActivity attributes complaints to estates and blocks through
// the filing tenant's apartment. Complaints by tenants without an apartment
// are counted in the totals but not broken down here.
func estateComplaintActivity(complaints []*entity.Complaint, index *locationIndex) []usecase.EstateComplaintActivity {
	type estateAgg struct {
		estate   *entity.Estate
		total    int
		open     int
		resolved int
		byBlock  map[int64]int
	}

	aggregates := make(map[int64]*estateAgg)
	for _, complaint := range complaints {
		if complaint.Tenant == nil || complaint.Tenant.ApartmentID == nil {
			continue
		}
		block := index.blockOf(*complaint.Tenant.ApartmentID)
		if block == nil {
			continue
		}
		estate := index.estates[block.EstateID]
		if estate == nil {
			continue
		}

		agg, ok := aggregates[estate.ID]
		if !ok {
			agg = &estateAgg{estate: estate, byBlock: make(map[int64]int)}
			aggregates[estate.ID] = agg
		}

		agg.total++
		agg.byBlock[block.ID]++
		switch {
		case complaint.StatusIs("open"):
			agg.open++
		case complaint.StatusIs("resolved") || complaint.StatusIs("closed"):
			agg.resolved++
		}
	}

	estateIDs := make([]int64, 0, len(aggregates))
	for id := range aggregates {
		estateIDs = append(estateIDs, id)
	}
	sort.Slice(estateIDs, func(i, j int) bool { return estateIDs[i] < estateIDs[j] })

	activity := make([]usecase.EstateComplaintActivity, 0, len(estateIDs))
	for _, estateID := range estateIDs {
		agg := aggregates[estateID]

		blockIDs := make([]int64, 0, len(agg.byBlock))
		for id := range agg.byBlock {
			blockIDs = append(blockIDs, id)
		}
		sort.Slice(blockIDs, func(i, j int) bool { return blockIDs[i] < blockIDs[j] })

		blocks := make([]usecase.BlockComplaintCount, 0, len(blockIDs))
		for _, blockID := range blockIDs {
			blockName := ""
			if block := index.blocks[blockID]; block != nil {
				blockName = block.Name
			}
			blocks = append(blocks, usecase.BlockComplaintCount{
				BlockID:   blockID,
				BlockName: blockName,
				Count:     agg.byBlock[blockID],
			})
		}

		activity = append(activity, usecase.EstateComplaintActivity{
			EstateID:   agg.estate.ID,
			EstateName: agg.estate.Name,
			Total:      agg.total,
			Open:       agg.open,
			Resolved:   agg.resolved,
			Blocks:     blocks,
		})
	}

	return activity
}

// Report computes complaint totals and category, estate and monthly
// breakdowns for complaints filed inside the window.
func (srv *complaintService) Report(ctx context.Context, at time.Time, window daterange.Range) (*usecase.ComplaintReport, error) {
	complaints, err := srv.complaintRepo.FindComplaintsCreatedBetween(ctx, window.Start, jnow.New(window.End).EndOfDay())
	if err != nil {
		return nil, errors.Wrap(err, "failed to find complaints in range")
	}

	index, err := loadLocationIndex(ctx, srv.estateRepo, srv.blockRepo, srv.apartmentRepo)
	if err != nil {
		return nil, err
	}

	report := &usecase.ComplaintReport{TotalComplaints: len(complaints)}

	for _, complaint := range complaints {
		switch {
		case complaint.StatusIs("in progress"):
			report.InProgressComplaints++
		case complaint.StatusIs("open"):
			report.OpenComplaints++
		case complaint.StatusIs("resolved"):
			report.ResolvedComplaints++
		case complaint.StatusIs("closed"):
			report.ClosedComplaints++
		}
	}

	report.AvgResolutionDays = avgResolutionDays(complaints)
	report.ComplaintCategories = categoryBreakdown(complaints)
	report.Estates = estateComplaintBreakdown(complaints, index)
	report.MonthlyBreakdown = monthlyComplaintBreakdown(complaints, window)

	return report, nil
}

// categoryBreakdown groups report complaints by category, largest counts
// first. Uncategorized complaints are left out of the buckets.
func categoryBreakdown(complaints []*entity.Complaint) []usecase.ComplaintCategoryBreakdown {
	type categoryAgg struct {
		category *entity.ComplaintCategory
		members  []*entity.Complaint
		resolved int
	}

	aggregates := make(map[int64]*categoryAgg)
	for _, complaint := range complaints {
		if complaint.Category == nil {
			continue
		}

		agg, ok := aggregates[complaint.Category.ID]
		if !ok {
			agg = &categoryAgg{category: complaint.Category}
			aggregates[complaint.Category.ID] = agg
		}

		agg.members = append(agg.members, complaint)
		if complaint.StatusIs("resolved") || complaint.StatusIs("closed") {
			agg.resolved++
		}
	}

	breakdown := make([]usecase.ComplaintCategoryBreakdown, 0, len(aggregates))
	for _, agg := range aggregates {
		breakdown = append(breakdown, usecase.ComplaintCategoryBreakdown{
			CategoryID:        agg.category.ID,
			Category:          agg.category.Name,
			Count:             len(agg.members),
			Resolved:          agg.resolved,
			ResolutionRate:    percentage(agg.resolved, len(agg.members)),
			AvgResolutionDays: avgResolutionDays(agg.members),
		})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Count != breakdown[j].Count {
			return breakdown[i].Count > breakdown[j].Count
		}

		return breakdown[i].Category < breakdown[j].Category
	})

	return breakdown
}

// estateComplaintBreakdown groups report complaints by estate. Estates
// without complaints in the window are omitted.
func estateComplaintBreakdown(complaints []*entity.Complaint, index *locationIndex) []usecase.EstateComplaintBreakdown {
	type estateAgg struct {
		estate   *entity.Estate
		members  []*entity.Complaint
		resolved int
	}

	aggregates := make(map[int64]*estateAgg)
	for _, complaint := range complaints {
		if complaint.Tenant == nil || complaint.Tenant.ApartmentID == nil {
			continue
		}
		estate := index.estateOf(*complaint.Tenant.ApartmentID)
		if estate == nil {
			continue
		}

		agg, ok := aggregates[estate.ID]
		if !ok {
			agg = &estateAgg{estate: estate}
			aggregates[estate.ID] = agg
		}

		agg.members = append(agg.members, complaint)
		if complaint.StatusIs("resolved") || complaint.StatusIs("closed") {
			agg.resolved++
		}
	}

	estateIDs := make([]int64, 0, len(aggregates))
	for id := range aggregates {
		estateIDs = append(estateIDs, id)
	}
	sort.Slice(estateIDs, func(i, j int) bool { return estateIDs[i] < estateIDs[j] })

	breakdown := make([]usecase.EstateComplaintBreakdown, 0, len(estateIDs))
	for _, estateID := range estateIDs {
		agg := aggregates[estateID]
		breakdown = append(breakdown, usecase.EstateComplaintBreakdown{
			EstateID:           agg.estate.ID,
			EstateName:         agg.estate.Name,
			TotalComplaints:    len(agg.members),
			ResolvedComplaints: agg.resolved,
			ResolutionRate:     percentage(agg.resolved, len(agg.members)),
			AvgResolutionDays:  avgResolutionDays(agg.members),
		})
	}

	return breakdown
}

// monthlyComplaintBreakdown slices report complaints into the window's
// calendar months.
func monthlyComplaintBreakdown(complaints []*entity.Complaint, window daterange.Range) []usecase.MonthlyComplaintBreakdown {
	months := window.Months()
	breakdown := make([]usecase.MonthlyComplaintBreakdown, 0, len(months))

	for _, month := range months {
		slice := daterange.Range{Start: month.Start, End: jnow.New(month.End).EndOfDay()}

		entry := usecase.MonthlyComplaintBreakdown{Month: month.Label()}
		for _, complaint := range complaints {
			if !slice.Contains(complaint.CreatedAt) {
				continue
			}

			entry.NewComplaints++
			if complaint.StatusIs("resolved") || complaint.StatusIs("closed") {
				entry.ResolvedComplaints++
			}
		}

		breakdown = append(breakdown, entry)
	}

	return breakdown
}

// Trends computes daily complaint activity over the trailing window.
// A non-positive days value falls back to the configured default.
func (srv *complaintService) Trends(ctx context.Context, at time.Time, days int) (*usecase.ComplaintTrends, error) {
	if days <= 0 {
		days = srv.trendDays
	}

	windowStart := jnow.New(at.AddDate(0, 0, -days)).BeginningOfDay()
	complaints, err := srv.complaintRepo.FindComplaintsCreatedBetween(ctx, windowStart, at)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find complaints in trend window")
	}

	trends := &usecase.ComplaintTrends{
		NewComplaints: len(complaints),
		DailyTrends:   []usecase.DailyComplaintTrend{},
	}

	for _, complaint := range complaints {
		if complaint.StatusIs("resolved") || complaint.StatusIs("closed") {
			trends.ResolvedComplaints++
		}
	}
	trends.ResolutionRate = percentage(trends.ResolvedComplaints, trends.NewComplaints)
	trends.AvgResolutionDays = avgResolutionDays(complaints)

	for day := windowStart; !day.After(at); day = day.AddDate(0, 0, 1) {
		dayEnd := jnow.New(day).EndOfDay()
		point := usecase.DailyComplaintTrend{Date: day}
		for _, complaint := range complaints {
			if complaint.CreatedAt.Before(day) || complaint.CreatedAt.After(dayEnd) {
				continue
			}

			point.New++
			if complaint.StatusIs("resolved") || complaint.StatusIs("closed") {
				point.Resolved++
			}
		}

		trends.DailyTrends = append(trends.DailyTrends, point)
	}

	return trends, nil
}

// CreateComplaint files a new complaint after validating its references.
func (srv *complaintService) CreateComplaint(ctx context.Context, input usecase.CreateComplaintInput) (*entity.Complaint, error) {
	if _, err := srv.tenantRepo.FindTenantByID(ctx, input.TenantID); err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return nil, domainerrors.ErrTenantNotFound
		}

		return nil, errors.Wrap(err, "failed to find tenant by ID")
	}

	if input.CategoryID != nil {
		if _, err := srv.categoryRepo.FindComplaintCategoryByID(ctx, *input.CategoryID); err != nil {
			if errors.Is(err, repository.ErrComplaintCategoryNotFound) {
				return nil, domainerrors.ErrComplaintCategoryNotFound
			}

			return nil, errors.Wrap(err, "failed to find complaint category by ID")
		}
	}

	if input.StatusID != nil {
		if _, err := srv.statusRepo.FindComplaintStatusByID(ctx, *input.StatusID); err != nil {
			if errors.Is(err, repository.ErrComplaintStatusNotFound) {
				return nil, domainerrors.ErrComplaintStatusNotFound
			}

			return nil, errors.Wrap(err, "failed to find complaint status by ID")
		}
	}

	complaint := &entity.Complaint{
		TenantID:    input.TenantID,
		CategoryID:  input.CategoryID,
		StatusID:    input.StatusID,
		Title:       input.Title,
		Description: input.Description,
	}

	if err := srv.complaintRepo.CreateComplaint(ctx, complaint); err != nil {
		return nil, errors.Wrap(err, "failed to create complaint")
	}

	srv.log(ctx).Info("Complaint filed",
		slog.Int64("complaintID", complaint.ID),
		slog.Int64("tenantID", complaint.TenantID))

	return srv.GetComplaint(ctx, complaint.ID)
}

// UpdateStatus transitions a complaint's workflow status and optionally
// records resolution feedback.
func (srv *complaintService) UpdateStatus(ctx context.Context, complaintID int64, input usecase.UpdateComplaintStatusInput) (*entity.Complaint, error) {
	complaint, err := srv.GetComplaint(ctx, complaintID)
	if err != nil {
		return nil, err
	}

	status, err := srv.statusRepo.FindComplaintStatusByID(ctx, input.StatusID)
	if err != nil {
		if errors.Is(err, repository.ErrComplaintStatusNotFound) {
			return nil, domainerrors.ErrComplaintStatusNotFound
		}

		return nil, errors.Wrap(err, "failed to find complaint status by ID")
	}

	complaint.StatusID = &status.ID
	complaint.Status = status
	if input.Feedback != nil {
		complaint.Feedback = input.Feedback
	}

	if err := srv.complaintRepo.UpdateComplaint(ctx, complaint); err != nil {
		return nil, errors.Wrap(err, "failed to update complaint")
	}

	return srv.GetComplaint(ctx, complaintID)
}

// GetComplaint retrieves a single complaint.
func (srv *complaintService) GetComplaint(ctx context.Context, id int64) (*entity.Complaint, error) {
	complaint, err := srv.complaintRepo.FindComplaintByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrComplaintNotFound) {
			return nil, domainerrors.ErrComplaintNotFound
		}

		return nil, errors.Wrap(err, "failed to find complaint by ID")
	}

	return complaint, nil
}

// ListComplaints retrieves all complaints, newest first.
func (srv *complaintService) ListComplaints(ctx context.Context) ([]*entity.Complaint, error) {
	complaints, err := srv.complaintRepo.FindAllComplaints(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all complaints")
	}

	return complaints, nil
}

// ListComplaintsByTenant retrieves a tenant's complaints, newest first.
func (srv *complaintService) ListComplaintsByTenant(ctx context.Context, tenantID int64) ([]*entity.Complaint, error) {
	complaints, err := srv.complaintRepo.FindComplaintsByTenant(ctx, tenantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find complaints by tenant")
	}

	return complaints, nil
}

// DeleteComplaint removes a complaint.
func (srv *complaintService) DeleteComplaint(ctx context.Context, id int64) error {
	if err := srv.complaintRepo.DeleteComplaint(ctx, id); err != nil {
		if errors.Is(err, repository.ErrComplaintNotFound) {
			return domainerrors.ErrComplaintNotFound
		}

		return errors.Wrap(err, "failed to delete complaint")
	}

	return nil
}

package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"
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
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager     repository.TransactionManager
	paymentRepo   repository.PaymentRepository
	statusRepo    repository.PaymentStatusRepository
	tenantRepo    repository.TenantRepository
	apartmentRepo repository.ApartmentRepository
	blockRepo     repository.BlockRepository
	estateRepo    repository.EstateRepository
	reporting     config.ReportingConfig
	logger        *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	PaymentRepo   repository.PaymentRepository
	StatusRepo    repository.PaymentStatusRepository
	TenantRepo    repository.TenantRepository
	ApartmentRepo repository.ApartmentRepository
	BlockRepo     repository.BlockRepository
	EstateRepo    repository.EstateRepository
	Config        *config.Config
	Logger        *slog.Logger
}

// NewPaymentService is the constructor for paymentService. It receives all dependencies as interfaces.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	var reporting config.ReportingConfig
	if params.Config != nil && params.Config.Reporting != nil {
		reporting = *params.Config.Reporting
	}

	return &paymentService{
		txManager:     params.TxManager,
		paymentRepo:   params.PaymentRepo,
		statusRepo:    params.StatusRepo,
		tenantRepo:    params.TenantRepo,
		apartmentRepo: params.ApartmentRepo,
		blockRepo:     params.BlockRepo,
		estateRepo:    params.EstateRepo,
		reporting:     reporting,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// DashboardSummary computes payment statistics for the calendar month
// containing the given instant, bucketing by recording time.
func (srv *paymentService) DashboardSummary(ctx context.Context, at time.Time) (*usecase.PaymentDashboard, error) {
	monthStart := jnow.New(at).BeginningOfMonth()
	monthEnd := jnow.New(at).EndOfMonth()

	payments, err := srv.paymentRepo.FindPaymentsCreatedBetween(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find payments for current month")
	}

	dashboard := &usecase.PaymentDashboard{TotalPayments: len(payments)}

	var expected, collected decimal.Decimal
	for _, payment := range payments {
		expected = expected.Add(payment.Amount)

		switch {
		case payment.StatusIs("paid"):
			dashboard.PaidPayments++
			collected = collected.Add(payment.Amount)
		case payment.StatusIs("pending"):
			dashboard.PendingPayments++
			if payment.DueDate.Before(at) {
				dashboard.OverduePayments++
			}
		}
	}

	dashboard.MonthlyRevenue = money(collected)
	dashboard.TotalExpected = money(expected)
	dashboard.TotalCollected = money(collected)
	dashboard.PaymentRate = percentage(dashboard.PaidPayments, dashboard.TotalPayments)

	return dashboard, nil
}

// Report computes totals and per-estate, per-method and per-month breakdowns
// for payments recorded inside the window.
func (srv *paymentService) Report(ctx context.Context, at time.Time, window daterange.Range) (*usecase.PaymentReport, error) {
	payments, err := srv.paymentRepo.FindPaymentsCreatedBetween(ctx, window.Start, jnow.New(window.End).EndOfDay())
	if err != nil {
		return nil, errors.Wrap(err, "failed to find payments in range")
	}

	index, err := loadLocationIndex(ctx, srv.estateRepo, srv.blockRepo, srv.apartmentRepo)
	if err != nil {
		return nil, err
	}

	report := &usecase.PaymentReport{TotalPayments: len(payments)}

	var total, paid, pending, overdue decimal.Decimal
	for _, payment := range payments {
		total = total.Add(payment.Amount)

		switch {
		case payment.StatusIs("paid"):
			paid = paid.Add(payment.Amount)
		case payment.StatusIs("pending"):
			pending = pending.Add(payment.Amount)
			if payment.DueDate.Before(at) {
				overdue = overdue.Add(payment.Amount)
			}
		}
	}

	report.TotalAmount = money(total)
	report.PaidAmount = money(paid)
	report.PendingAmount = money(pending)
	report.OverdueAmount = money(overdue)
	report.CollectionRate = decimalPercentage(paid, total)
	report.Estates = srv.estateBreakdown(payments, index, at)
	report.PaymentMethods = methodBreakdown(payments)
	report.MonthlyBreakdown = monthlyBreakdown(payments, window)

	return report, nil
}

// estateBreakdown groups report payments by estate, resolved through the
// paying tenant's apartment. Estates without payments are omitted.
func (srv *paymentService) estateBreakdown(payments []*entity.Payment, index *locationIndex, at time.Time) []usecase.EstatePaymentBreakdown {
	type estateAgg struct {
		estate  *entity.Estate
		count   int
		total   decimal.Decimal
		paid    decimal.Decimal
		pending decimal.Decimal
		overdue decimal.Decimal
	}

	aggregates := make(map[int64]*estateAgg)
	for _, payment := range payments {
		if payment.Tenant == nil || payment.Tenant.ApartmentID == nil {
			continue
		}
		estate := index.estateOf(*payment.Tenant.ApartmentID)
		if estate == nil {
			continue
		}

		agg, ok := aggregates[estate.ID]
		if !ok {
			agg = &estateAgg{estate: estate}
			aggregates[estate.ID] = agg
		}

		agg.count++
		agg.total = agg.total.Add(payment.Amount)
		switch {
		case payment.StatusIs("paid"):
			agg.paid = agg.paid.Add(payment.Amount)
		case payment.StatusIs("pending"):
			agg.pending = agg.pending.Add(payment.Amount)
			if payment.DueDate.Before(at) {
				agg.overdue = agg.overdue.Add(payment.Amount)
			}
		}
	}

	breakdown := make([]usecase.EstatePaymentBreakdown, 0, len(aggregates))
	for _, agg := range aggregates {
		breakdown = append(breakdown, usecase.EstatePaymentBreakdown{
			EstateID:       agg.estate.ID,
			EstateName:     agg.estate.Name,
			Payments:       agg.count,
			TotalAmount:    money(agg.total),
			PaidAmount:     money(agg.paid),
			PendingAmount:  money(agg.pending),
			OverdueAmount:  money(agg.overdue),
			CollectionRate: decimalPercentage(agg.paid, agg.total),
		})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].TotalAmount != breakdown[j].TotalAmount {
			return breakdown[i].TotalAmount > breakdown[j].TotalAmount
		}

		return breakdown[i].EstateName < breakdown[j].EstateName
	})

	return breakdown
}

// methodBreakdown groups payments by payment method, largest totals first.
// Payments without a method fall into a "Not Specified" bucket.
func methodBreakdown(payments []*entity.Payment) []usecase.PaymentMethodBreakdown {
	type methodAgg struct {
		count int
		total decimal.Decimal
	}

	aggregates := make(map[string]*methodAgg)
	for _, payment := range payments {
		method := "Not Specified"
		if payment.PaymentMethod != nil && *payment.PaymentMethod != "" {
			method = *payment.PaymentMethod
		}

		agg, ok := aggregates[method]
		if !ok {
			agg = &methodAgg{}
			aggregates[method] = agg
		}
		agg.count++
		agg.total = agg.total.Add(payment.Amount)
	}

	breakdown := make([]usecase.PaymentMethodBreakdown, 0, len(aggregates))
	for method, agg := range aggregates {
		breakdown = append(breakdown, usecase.PaymentMethodBreakdown{
			Method:      method,
			Count:       agg.count,
			TotalAmount: money(agg.total),
		})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].TotalAmount != breakdown[j].TotalAmount {
			return breakdown[i].TotalAmount > breakdown[j].TotalAmount
		}

		return breakdown[i].Method < breakdown[j].Method
	})

	return breakdown
}

// monthlyBreakdown slices report payments into the window's calendar months.
func monthlyBreakdown(payments []*entity.Payment, window daterange.Range) []usecase.MonthlyPaymentBreakdown {
	months := window.Months()
	breakdown := make([]usecase.MonthlyPaymentBreakdown, 0, len(months))

	for _, month := range months {
		slice := daterange.Range{Start: month.Start, End: jnow.New(month.End).EndOfDay()}

		entry := usecase.MonthlyPaymentBreakdown{Month: month.Label()}
		var total, paid decimal.Decimal
		for _, payment := range payments {
			if !slice.Contains(payment.CreatedAt) {
				continue
			}

			entry.TotalPayments++
			total = total.Add(payment.Amount)
			if payment.StatusIs("paid") {
				paid = paid.Add(payment.Amount)
			}
		}

		entry.TotalAmount = money(total)
		entry.PaidAmount = money(paid)
		entry.CollectionRate = decimalPercentage(paid, total)
		breakdown = append(breakdown, entry)
	}

	return breakdown
}

// Alerts lists overdue, upcoming and recently settled payments, each list
// capped by the reporting configuration.
func (srv *paymentService) Alerts(ctx context.Context, at time.Time) (*usecase.PaymentAlerts, error) {
	payments, err := srv.paymentRepo.FindAllPayments(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all payments")
	}

	index, err := loadLocationIndex(ctx, srv.estateRepo, srv.blockRepo, srv.apartmentRepo)
	if err != nil {
		return nil, err
	}

	alerts := &usecase.PaymentAlerts{
		OverdueAlerts:  []usecase.OverduePaymentAlert{},
		UpcomingAlerts: []usecase.UpcomingPaymentAlert{},
		RecentPayments: []usecase.RecentPaymentAlert{},
	}

	upcomingCutoff := at.AddDate(0, 0, srv.reporting.UpcomingWindowDays)
	recentCutoff := at.AddDate(0, 0, -srv.reporting.RecentWindowDays)

	var overdue, upcoming, recent []*entity.Payment
	for _, payment := range payments {
		switch {
		case payment.StatusIs("paid") && payment.PaidAt != nil && !payment.PaidAt.Before(recentCutoff):
			recent = append(recent, payment)
		case payment.StatusIs("pending") && payment.DueDate.Before(at):
			overdue = append(overdue, payment)
		case payment.StatusIs("pending") && !payment.DueDate.After(upcomingCutoff):
			upcoming = append(upcoming, payment)
		}
	}

	byDueDate := func(payments []*entity.Payment) func(i, j int) bool {
		return func(i, j int) bool {
			if !payments[i].DueDate.Equal(payments[j].DueDate) {
				return payments[i].DueDate.Before(payments[j].DueDate)
			}

			return payments[i].ID < payments[j].ID
		}
	}
	sort.Slice(overdue, byDueDate(overdue))
	sort.Slice(upcoming, byDueDate(upcoming))
	sort.Slice(recent, func(i, j int) bool {
		if !recent[i].PaidAt.Equal(*recent[j].PaidAt) {
			return recent[i].PaidAt.After(*recent[j].PaidAt)
		}

		return recent[i].ID > recent[j].ID
	})

	for _, payment := range capPayments(overdue, srv.reporting.OverdueAlertLimit) {
		alerts.OverdueAlerts = append(alerts.OverdueAlerts, usecase.OverduePaymentAlert{
			PaymentID:     payment.ID,
			TenantID:      payment.TenantID,
			TenantName:    tenantName(payment.Tenant),
			Apartment:     index.apartmentLabel(tenantApartmentID(payment.Tenant)),
			Estate:        index.estateLabel(tenantApartmentID(payment.Tenant)),
			Amount:        money(payment.Amount),
			DueDate:       payment.DueDate,
			DaysOverdue:   int(at.Sub(payment.DueDate).Hours() / 24),
			PaymentMethod: stringOr(payment.PaymentMethod, "Not Specified"),
		})
	}

	for _, payment := range capPayments(upcoming, srv.reporting.UpcomingAlertLimit) {
		alerts.UpcomingAlerts = append(alerts.UpcomingAlerts, usecase.UpcomingPaymentAlert{
			PaymentID:    payment.ID,
			TenantID:     payment.TenantID,
			TenantName:   tenantName(payment.Tenant),
			Apartment:    index.apartmentLabel(tenantApartmentID(payment.Tenant)),
			Estate:       index.estateLabel(tenantApartmentID(payment.Tenant)),
			Amount:       money(payment.Amount),
			DueDate:      payment.DueDate,
			DaysUntilDue: int(payment.DueDate.Sub(at).Hours() / 24),
		})
	}

	for _, payment := range capPayments(recent, srv.reporting.RecentPaymentLimit) {
		alerts.RecentPayments = append(alerts.RecentPayments, usecase.RecentPaymentAlert{
			PaymentID:  payment.ID,
			TenantID:   payment.TenantID,
			TenantName: tenantName(payment.Tenant),
			Apartment:  index.apartmentLabel(tenantApartmentID(payment.Tenant)),
			Estate:     index.estateLabel(tenantApartmentID(payment.Tenant)),
			Amount:     money(payment.Amount),
			PaidAt:     *payment.PaidAt,
		})
	}

	return alerts, nil
}

func capPayments(payments []*entity.Payment, limit int) []*entity.Payment {
	if limit > 0 && len(payments) > limit {
		return payments[:limit]
	}

	return payments
}

func tenantName(tenant *entity.Tenant) string {
	if tenant == nil {
		return "N/A"
	}

	return tenant.FullName
}

func tenantApartmentID(tenant *entity.Tenant) *int64 {
	if tenant == nil {
		return nil
	}

	return tenant.ApartmentID
}

func stringOr(value *string, fallback string) string {
	if value == nil || *value == "" {
		return fallback
	}

	return *value
}

// EstateStatus computes each estate's expected rent, collected rent and
// overdue tenants for the calendar month containing the given instant.
func (srv *paymentService) EstateStatus(ctx context.Context, at time.Time) ([]*usecase.EstatePaymentStatus, error) {
	index, err := loadLocationIndex(ctx, srv.estateRepo, srv.blockRepo, srv.apartmentRepo)
	if err != nil {
		return nil, err
	}

	tenants, err := srv.tenantRepo.FindAssignedTenants(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find assigned tenants")
	}

	payments, err := srv.paymentRepo.FindAllPayments(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all payments")
	}

	paymentsByTenant := make(map[int64][]*entity.Payment)
	for _, payment := range payments {
		paymentsByTenant[payment.TenantID] = append(paymentsByTenant[payment.TenantID], payment)
	}

	tenantsByEstate := make(map[int64][]*entity.Tenant)
	for _, tenant := range tenants {
		if tenant.ApartmentID == nil {
			continue
		}
		if estate := index.estateOf(*tenant.ApartmentID); estate != nil {
			tenantsByEstate[estate.ID] = append(tenantsByEstate[estate.ID], tenant)
		}
	}

	apartmentsByEstate := make(map[int64]int)
	for _, apartment := range index.apartments {
		if estate := index.estateOf(apartment.ID); estate != nil {
			apartmentsByEstate[estate.ID]++
		}
	}

	estateIDs := make([]int64, 0, len(index.estates))
	for id := range index.estates {
		estateIDs = append(estateIDs, id)
	}
	sort.Slice(estateIDs, func(i, j int) bool { return estateIDs[i] < estateIDs[j] })

	month := int(at.Month())
	year := at.Year()

	statuses := make([]*usecase.EstatePaymentStatus, 0, len(estateIDs))
	for _, estateID := range estateIDs {
		estate := index.estates[estateID]
		estateTenants := tenantsByEstate[estateID]

		status := &usecase.EstatePaymentStatus{
			EstateID:           estate.ID,
			EstateName:         estate.Name,
			TotalApartments:    apartmentsByEstate[estateID],
			OccupiedApartments: len(estateTenants),
			OverdueTenants:     []usecase.OverdueTenantSummary{},
		}

		var expected, collected decimal.Decimal
		for _, tenant := range estateTenants {
			if apartment, ok := index.apartments[*tenant.ApartmentID]; ok && apartment.RentAmount != nil {
				expected = expected.Add(*apartment.RentAmount)
			}

			overdueMonths := 0
			for _, payment := range paymentsByTenant[tenant.ID] {
				if payment.StatusIs("paid") &&
					payment.ForMonth != nil && *payment.ForMonth == month &&
					payment.ForYear != nil && *payment.ForYear == year {
					collected = collected.Add(payment.Amount)
				}
				if payment.StatusIs("pending") && payment.DueDate.Before(at) {
					overdueMonths++
				}
			}

			if overdueMonths > 0 {
				status.OverdueTenants = append(status.OverdueTenants, usecase.OverdueTenantSummary{
					TenantID:      tenant.ID,
					TenantName:    tenant.FullName,
					Apartment:     index.apartmentLabel(tenant.ApartmentID),
					OverdueMonths: overdueMonths,
				})
			}
		}

		status.TotalRentExpected = money(expected)
		status.RentCollected = money(collected)
		status.CollectionRate = decimalPercentage(collected, expected)
		status.OverdueCount = len(status.OverdueTenants)

		statuses = append(statuses, status)
	}

	return statuses, nil
}

// CreatePayment records a payment inside a transaction, rejecting a second
// payment for the same tenant and billing period.
func (srv *paymentService) CreatePayment(ctx context.Context, input usecase.CreatePaymentInput) (*entity.Payment, error) {
	var created *entity.Payment

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tenantRepo := repoFactory.NewTenantRepository()
		paymentRepo := repoFactory.NewPaymentRepository()

		if _, err := tenantRepo.FindTenantByID(ctx, input.TenantID); err != nil {
			if errors.Is(err, repository.ErrTenantNotFound) {
				return domainerrors.ErrTenantNotFound
			}

			return errors.Wrap(err, "failed to find tenant by ID")
		}

		_, err := paymentRepo.FindPaymentByTenantPeriod(ctx, input.TenantID, input.ForMonth, input.ForYear)
		if err == nil {
			srv.log(ctx).Warn("Duplicate payment period rejected",
				slog.Int64("tenantID", input.TenantID),
				slog.Int("forMonth", input.ForMonth),
				slog.Int("forYear", input.ForYear))

			return domainerrors.ErrDuplicatePaymentPeriod
		}
		if !errors.Is(err, repository.ErrPaymentNotFound) {
			return errors.Wrap(err, "failed to check payment period")
		}

		forMonth := input.ForMonth
		forYear := input.ForYear
		payment := &entity.Payment{
			TenantID:        input.TenantID,
			Amount:          input.Amount,
			StatusID:        input.StatusID,
			DueDate:         input.DueDate,
			ForMonth:        &forMonth,
			ForYear:         &forYear,
			PaymentMethod:   input.PaymentMethod,
			PaymentType:     input.PaymentType,
			ReferenceNumber: input.ReferenceNumber,
			Notes:           input.Notes,
		}

		if err := paymentRepo.CreatePayment(ctx, payment); err != nil {
			if errors.Is(err, repository.ErrDuplicatePaymentPeriod) {
				return domainerrors.ErrDuplicatePaymentPeriod
			}

			return errors.Wrap(err, "failed to create payment")
		}

		created = payment

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Payment recorded",
		slog.Int64("paymentID", created.ID),
		slog.Int64("tenantID", created.TenantID))

	return srv.GetPayment(ctx, created.ID)
}

// UpdateStatus transitions a payment's settlement status. Moving into a paid
// status stamps the settlement time when not already set.
func (srv *paymentService) UpdateStatus(ctx context.Context, at time.Time, paymentID int64, input usecase.UpdatePaymentStatusInput) (*entity.Payment, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		paymentRepo := repoFactory.NewPaymentRepository()
		statusRepo := repoFactory.NewPaymentStatusRepository()

		payment, err := paymentRepo.FindPaymentByID(ctx, paymentID)
		if err != nil {
			if errors.Is(err, repository.ErrPaymentNotFound) {
				return domainerrors.ErrPaymentNotFound
			}

			return errors.Wrap(err, "failed to find payment by ID")
		}

		status, err := statusRepo.FindPaymentStatusByID(ctx, input.StatusID)
		if err != nil {
			if errors.Is(err, repository.ErrPaymentStatusNotFound) {
				return domainerrors.ErrPaymentStatusNotFound
			}

			return errors.Wrap(err, "failed to find payment status by ID")
		}

		payment.StatusID = &status.ID
		payment.Status = status
		if strings.Contains(strings.ToLower(status.Name), "paid") && payment.PaidAt == nil {
			paidAt := at
			payment.PaidAt = &paidAt
		}
		if input.PaymentMethod != nil {
			payment.PaymentMethod = input.PaymentMethod
		}
		if input.ReferenceNumber != nil {
			payment.ReferenceNumber = input.ReferenceNumber
		}
		if input.Notes != nil {
			payment.Notes = input.Notes
		}

		if err := paymentRepo.UpdatePayment(ctx, payment); err != nil {
			return errors.Wrap(err, "failed to update payment")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return srv.GetPayment(ctx, paymentID)
}

// GetPayment retrieves a single payment.
func (srv *paymentService) GetPayment(ctx context.Context, id int64) (*entity.Payment, error) {
	payment, err := srv.paymentRepo.FindPaymentByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, domainerrors.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by ID")
	}

	return payment, nil
}

// ListPayments retrieves all payments.
func (srv *paymentService) ListPayments(ctx context.Context) ([]*entity.Payment, error) {
	payments, err := srv.paymentRepo.FindAllPayments(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all payments")
	}

	return payments, nil
}

// ListPaymentsByTenant retrieves a tenant's payments, newest first.
func (srv *paymentService) ListPaymentsByTenant(ctx context.Context, tenantID int64) ([]*entity.Payment, error) {
	payments, err := srv.paymentRepo.FindPaymentsByTenant(ctx, tenantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find payments by tenant")
	}

	return payments, nil
}

// DeletePayment removes a payment.
func (srv *paymentService) DeletePayment(ctx context.Context, id int64) error {
	if err := srv.paymentRepo.DeletePayment(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return domainerrors.ErrPaymentNotFound
		}

		return errors.Wrap(err, "failed to delete payment")
	}

	return nil
}

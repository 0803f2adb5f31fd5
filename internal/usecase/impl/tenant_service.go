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

// tenantService implements the TenantUsecase interface.
type tenantService struct {
	txManager        repository.TransactionManager
	tenantRepo       repository.TenantRepository
	tenantTypeRepo   repository.TenantTypeRepository
	apartmentRepo    repository.ApartmentRepository
	blockRepo        repository.BlockRepository
	estateRepo       repository.EstateRepository
	expiringSoonDays int
	logger           *slog.Logger
}

// TenantServiceParams holds dependencies for TenantService, injected by Fx.
type TenantServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	TenantRepo     repository.TenantRepository
	TenantTypeRepo repository.TenantTypeRepository
	ApartmentRepo  repository.ApartmentRepository
	BlockRepo      repository.BlockRepository
	EstateRepo     repository.EstateRepository
	Config         *config.Config
	Logger         *slog.Logger
}

// NewTenantService is the constructor for tenantService. It receives all dependencies as interfaces.
func NewTenantService(params TenantServiceParams) usecase.TenantUsecase {
	expiringSoonDays := 0
	if params.Config != nil && params.Config.Reporting != nil {
		expiringSoonDays = params.Config.Reporting.ExpiringSoonDays
	}

	return &tenantService{
		txManager:        params.TxManager,
		tenantRepo:       params.TenantRepo,
		tenantTypeRepo:   params.TenantTypeRepo,
		apartmentRepo:    params.ApartmentRepo,
		blockRepo:        params.BlockRepo,
		estateRepo:       params.EstateRepo,
		expiringSoonDays: expiringSoonDays,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *tenantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateTenant registers a tenant. When an apartment is requested the
// assignment runs inside a transaction so two tenants cannot claim the same
// apartment.
func (srv *tenantService) CreateTenant(ctx context.Context, input usecase.CreateTenantInput) (*entity.Tenant, error) {
	if input.TenantTypeID != nil {
		if _, err := srv.tenantTypeRepo.FindTenantTypeByID(ctx, *input.TenantTypeID); err != nil {
			if errors.Is(err, repository.ErrTenantTypeNotFound) {
				return nil, domainerrors.ErrTenantTypeNotFound
			}

			return nil, errors.Wrap(err, "failed to find tenant type by ID")
		}
	}

	tenant := &entity.Tenant{
		FullName:         input.FullName,
		Email:            input.Email,
		PhoneNumber:      input.PhoneNumber,
		EmergencyContact: input.EmergencyContact,
		TenantTypeID:     input.TenantTypeID,
		LeaseStart:       input.LeaseStart,
		LeaseEnd:         input.LeaseEnd,
	}

	if input.ApartmentID == nil {
		if err := srv.tenantRepo.CreateTenant(ctx, tenant); err != nil {
			return nil, errors.Wrap(err, "failed to create tenant")
		}

		return srv.GetTenant(ctx, tenant.ID)
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tenantRepo := repoFactory.NewTenantRepository()

		if err := srv.checkApartmentVacant(ctx, repoFactory, *input.ApartmentID, 0); err != nil {
			return err
		}

		tenant.ApartmentID = input.ApartmentID

		if err := tenantRepo.CreateTenant(ctx, tenant); err != nil {
			return errors.Wrap(err, "failed to create tenant")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Tenant registered with apartment",
		slog.Int64("tenantID", tenant.ID),
		slog.Int64("apartmentID", *input.ApartmentID))

	return srv.GetTenant(ctx, tenant.ID)
}

// checkApartmentVacant verifies the apartment exists and has no other tenant
// assigned. The selfID exclusion lets a tenant re-assert its own assignment.
func (srv *tenantService) checkApartmentVacant(ctx context.Context, repoFactory repository.RepositoryFactory, apartmentID, selfID int64) error {
	apartmentRepo := repoFactory.NewApartmentRepository()
	tenantRepo := repoFactory.NewTenantRepository()

	if _, err := apartmentRepo.FindApartmentByID(ctx, apartmentID); err != nil {
		if errors.Is(err, repository.ErrApartmentNotFound) {
			return domainerrors.ErrApartmentNotFound
		}

		return errors.Wrap(err, "failed to find apartment by ID")
	}

	occupant, err := tenantRepo.FindTenantByApartment(ctx, apartmentID)
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to find tenant by apartment")
	}

	if occupant.ID != selfID {
		srv.log(ctx).Warn("Apartment assignment rejected, already occupied",
			slog.Int64("apartmentID", apartmentID),
			slog.Int64("occupantID", occupant.ID))

		return domainerrors.ErrApartmentOccupied
	}

	return nil
}

// UpdateTenant applies profile changes to a tenant. Nil fields are left
// untouched.
func (srv *tenantService) UpdateTenant(ctx context.Context, id int64, input usecase.UpdateTenantInput) (*entity.Tenant, error) {
	tenant, err := srv.GetTenant(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.TenantTypeID != nil {
		if _, err := srv.tenantTypeRepo.FindTenantTypeByID(ctx, *input.TenantTypeID); err != nil {
			if errors.Is(err, repository.ErrTenantTypeNotFound) {
				return nil, domainerrors.ErrTenantTypeNotFound
			}

			return nil, errors.Wrap(err, "failed to find tenant type by ID")
		}
		tenant.TenantTypeID = input.TenantTypeID
	}

	if input.FullName != nil {
		tenant.FullName = *input.FullName
	}
	if input.Email != nil {
		tenant.Email = *input.Email
	}
	if input.PhoneNumber != nil {
		tenant.PhoneNumber = input.PhoneNumber
	}
	if input.EmergencyContact != nil {
		tenant.EmergencyContact = input.EmergencyContact
	}
	if input.LeaseStart != nil {
		tenant.LeaseStart = input.LeaseStart
	}
	if input.LeaseEnd != nil {
		tenant.LeaseEnd = input.LeaseEnd
	}

	if err := srv.tenantRepo.UpdateTenant(ctx, tenant); err != nil {
		return nil, errors.Wrap(err, "failed to update tenant")
	}

	return srv.GetTenant(ctx, id)
}

// AssignApartment moves a tenant into an apartment. The conflict check and
// the assignment run in one transaction so concurrent assignments of the
// same apartment cannot both succeed.
func (srv *tenantService) AssignApartment(ctx context.Context, tenantID, apartmentID int64, leaseStart, leaseEnd *time.Time) (*entity.Tenant, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tenantRepo := repoFactory.NewTenantRepository()

		tenant, err := tenantRepo.FindTenantByID(ctx, tenantID)
		if err != nil {
			if errors.Is(err, repository.ErrTenantNotFound) {
				return domainerrors.ErrTenantNotFound
			}

			return errors.Wrap(err, "failed to find tenant by ID")
		}

		if err := srv.checkApartmentVacant(ctx, repoFactory, apartmentID, tenant.ID); err != nil {
			return err
		}

		tenant.ApartmentID = &apartmentID
		if leaseStart != nil {
			tenant.LeaseStart = leaseStart
		}
		if leaseEnd != nil {
			tenant.LeaseEnd = leaseEnd
		}

		if err := tenantRepo.UpdateTenant(ctx, tenant); err != nil {
			return errors.Wrap(err, "failed to update tenant")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Apartment assigned",
		slog.Int64("tenantID", tenantID),
		slog.Int64("apartmentID", apartmentID))

	return srv.GetTenant(ctx, tenantID)
}

// UnassignApartment releases the tenant's apartment. Lease dates are kept as
// tenancy history.
func (srv *tenantService) UnassignApartment(ctx context.Context, tenantID int64) (*entity.Tenant, error) {
	tenant, err := srv.GetTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	tenant.ApartmentID = nil
	tenant.Apartment = nil

	if err := srv.tenantRepo.UpdateTenant(ctx, tenant); err != nil {
		return nil, errors.Wrap(err, "failed to update tenant")
	}

	return srv.GetTenant(ctx, tenantID)
}

// ExpiryDashboard summarizes leases ending around the current month.
func (srv *tenantService) ExpiryDashboard(ctx context.Context, at time.Time) (*usecase.TenancyExpiryDashboard, error) {
	tenants, err := srv.tenantRepo.FindAllTenants(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all tenants")
	}

	index, err := loadLocationIndex(ctx, srv.estateRepo, srv.blockRepo, srv.apartmentRepo)
	if err != nil {
		return nil, err
	}

	monthStart := jnow.New(at).BeginningOfMonth()
	monthEnd := jnow.New(at).EndOfMonth()
	nextMonthStart := monthStart.AddDate(0, 1, 0)
	nextMonthEnd := jnow.New(nextMonthStart).EndOfMonth()
	soonCutoff := at.AddDate(0, 0, srv.expiringSoonDays)

	dashboard := &usecase.TenancyExpiryDashboard{ExpiringSoon: []usecase.ExpiringTenancy{}}

	for _, tenant := range tenants {
		if tenant.LeaseEnd == nil {
			continue
		}
		leaseEnd := *tenant.LeaseEnd

		switch {
		case !leaseEnd.Before(at) && !leaseEnd.After(monthEnd):
			dashboard.ExpiringThisMonth++
		case !leaseEnd.Before(nextMonthStart) && !leaseEnd.After(nextMonthEnd):
			dashboard.ExpiringNextMonth++
		case !leaseEnd.Before(monthStart) && leaseEnd.Before(at):
			dashboard.VacatedThisMonth++
		}

		if !leaseEnd.Before(at) && !leaseEnd.After(soonCutoff) {
			dashboard.ExpiringSoon = append(dashboard.ExpiringSoon, buildExpiringTenancy(tenant, index, at))
		}
	}

	sort.Slice(dashboard.ExpiringSoon, func(i, j int) bool {
		return dashboard.ExpiringSoon[i].LeaseEnd.Before(dashboard.ExpiringSoon[j].LeaseEnd)
	})

	return dashboard, nil
}

// Expiring lists tenants whose leases end inside the given range.
func (srv *tenantService) Expiring(ctx context.Context, at time.Time, window daterange.Range) ([]usecase.ExpiringTenancy, error) {
	tenants, err := srv.tenantRepo.FindTenantsWithLeaseEndingBetween(ctx, window.Start, jnow.New(window.End).EndOfDay())
	if err != nil {
		return nil, errors.Wrap(err, "failed to find tenants with expiring leases")
	}

	index, err := loadLocationIndex(ctx, srv.estateRepo, srv.blockRepo, srv.apartmentRepo)
	if err != nil {
		return nil, err
	}

	expiring := make([]usecase.ExpiringTenancy, 0, len(tenants))
	for _, tenant := range tenants {
		if tenant.LeaseEnd == nil {
			continue
		}
		expiring = append(expiring, buildExpiringTenancy(tenant, index, at))
	}

	sort.Slice(expiring, func(i, j int) bool {
		return expiring[i].LeaseEnd.Before(expiring[j].LeaseEnd)
	})

	return expiring, nil
}

// buildExpiringTenancy flattens a tenant with an ending lease into the
// report row shape.
func buildExpiringTenancy(tenant *entity.Tenant, index *locationIndex, at time.Time) usecase.ExpiringTenancy {
	leaseEnd := *tenant.LeaseEnd
	daysUntilExpiry := int(leaseEnd.Sub(at).Hours() / 24)
	if leaseEnd.Before(at) {
		// Round toward the past so a lease that ended yesterday reads -1.
		daysUntilExpiry = -int(at.Sub(leaseEnd).Hours()/24) - 1
	}

	renewalStatus := "upcoming"
	switch {
	case leaseEnd.Before(at):
		renewalStatus = "expired"
	case daysUntilExpiry <= 30:
		renewalStatus = "pending"
	}

	entry := usecase.ExpiringTenancy{
		TenantID:        tenant.ID,
		TenantName:      tenant.FullName,
		ApartmentID:     tenant.ApartmentID,
		Apartment:       index.apartmentLabel(tenant.ApartmentID),
		Estate:          index.estateLabel(tenant.ApartmentID),
		LeaseStart:      tenant.LeaseStart,
		LeaseEnd:        leaseEnd,
		DaysUntilExpiry: daysUntilExpiry,
		RenewalStatus:   renewalStatus,
		ContactPhone:    stringOr(tenant.PhoneNumber, ""),
		ContactEmail:    tenant.Email,
	}

	if tenant.ApartmentID != nil {
		if estate := index.estateOf(*tenant.ApartmentID); estate != nil {
			entry.EstateID = &estate.ID
		}
		if apartment, ok := index.apartments[*tenant.ApartmentID]; ok && apartment.RentAmount != nil {
			entry.RentAmount = money(*apartment.RentAmount)
		}
	}

	return entry
}

// GetTenant retrieves a single tenant.
func (srv *tenantService) GetTenant(ctx context.Context, id int64) (*entity.Tenant, error) {
	tenant, err := srv.tenantRepo.FindTenantByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return nil, domainerrors.ErrTenantNotFound
		}

		return nil, errors.Wrap(err, "failed to find tenant by ID")
	}

	return tenant, nil
}

// ListTenants retrieves all tenants.
func (srv *tenantService) ListTenants(ctx context.Context) ([]*entity.Tenant, error) {
	tenants, err := srv.tenantRepo.FindAllTenants(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all tenants")
	}

	return tenants, nil
}

// DeleteTenant removes a tenant.
func (srv *tenantService) DeleteTenant(ctx context.Context, id int64) error {
	if err := srv.tenantRepo.DeleteTenant(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return domainerrors.ErrTenantNotFound
		}

		return errors.Wrap(err, "failed to delete tenant")
	}

	return nil
}

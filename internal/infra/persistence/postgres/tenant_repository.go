package postgres

import (
	"context"
	"time"

	"manor/internal/domain/entity"
	domainerrors "manor/internal/domain/errors"
	"manor/internal/domain/repository"
	"manor/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tenantRepository implements the repository.TenantRepository interface.
type tenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository is the constructor for tenantRepository.
func NewTenantRepository(db *gorm.DB) repository.TenantRepository {
	return &tenantRepository{
		db: db,
	}
}

// CreateTenant persists a new tenant.
func (repo *tenantRepository) CreateTenant(ctx context.Context, tenant *entity.Tenant) error {
	tenantM := fromTenantDomain(tenant)

	if err := repo.db.WithContext(ctx).
		Omit("TenantType", "Apartment").
		Create(tenantM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrApartmentOccupied
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid tenant type or apartment reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required tenant information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create tenant")
	}

	// Update the entity with generated values
	tenant.ID = tenantM.ID
	tenant.CreatedAt = tenantM.CreatedAt
	tenant.UpdatedAt = tenantM.UpdatedAt

	return nil
}

// FindTenantByID retrieves a tenant with its type and apartment preloaded.
func (repo *tenantRepository) FindTenantByID(ctx context.Context, id int64) (*entity.Tenant, error) {
	var tenantM model.TenantModel

	if err := repo.db.WithContext(ctx).
		Preload("TenantType").
		Preload("Apartment").
		Where("id = ?", id).
		First(&tenantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTenantNotFound
		}

		return nil, errors.Wrap(err, "failed to find tenant by ID")
	}

	return toTenantDomain(&tenantM), nil
}

// FindAllTenants retrieves all tenants with types and apartments preloaded.
func (repo *tenantRepository) FindAllTenants(ctx context.Context) ([]*entity.Tenant, error) {
	var tenantModels []*model.TenantModel

	if err := repo.db.WithContext(ctx).
		Preload("TenantType").
		Preload("Apartment").
		Order("full_name ASC").
		Find(&tenantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all tenants")
	}

	return toTenantDomains(tenantModels), nil
}

// FindTenantByApartment retrieves the tenant currently assigned to an apartment.
func (repo *tenantRepository) FindTenantByApartment(ctx context.Context, apartmentID int64) (*entity.Tenant, error) {
	var tenantM model.TenantModel

	if err := repo.db.WithContext(ctx).
		Preload("TenantType").
		Preload("Apartment").
		Where("apartment_id = ?", apartmentID).
		First(&tenantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTenantNotFound
		}

		return nil, errors.Wrap(err, "failed to find tenant by apartment")
	}

	return toTenantDomain(&tenantM), nil
}

// FindAssignedTenants retrieves all tenants with an apartment assigned.
func (repo *tenantRepository) FindAssignedTenants(ctx context.Context) ([]*entity.Tenant, error) {
	var tenantModels []*model.TenantModel

	if err := repo.db.WithContext(ctx).
		Preload("Apartment").
		Where("apartment_id IS NOT NULL").
		Find(&tenantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find assigned tenants")
	}

	return toTenantDomains(tenantModels), nil
}

// FindTenantsWithLeaseEndingBetween retrieves tenants whose lease ends within [start, end].
func (repo *tenantRepository) FindTenantsWithLeaseEndingBetween(ctx context.Context, start, end time.Time) ([]*entity.Tenant, error) {
	var tenantModels []*model.TenantModel

	if err := repo.db.WithContext(ctx).
		Preload("Apartment").
		Where("lease_end BETWEEN ? AND ?", start, end).
		Order("lease_end ASC").
		Find(&tenantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find tenants with lease ending between")
	}

	return toTenantDomains(tenantModels), nil
}

// UpdateTenant persists changes to an existing tenant.
func (repo *tenantRepository) UpdateTenant(ctx context.Context, tenant *entity.Tenant) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TenantModel{}).
		Where("id = ?", tenant.ID).
		Updates(map[string]any{
			"full_name":         tenant.FullName,
			"email":             tenant.Email,
			"phone_number":      tenant.PhoneNumber,
			"emergency_contact": tenant.EmergencyContact,
			"tenant_type_id":    tenant.TenantTypeID,
			"apartment_id":      tenant.ApartmentID,
			"lease_start":       tenant.LeaseStart,
			"lease_end":         tenant.LeaseEnd,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrApartmentOccupied
		}
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid tenant type or apartment reference")
		}

		return errors.Wrap(result.Error, "failed to update tenant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTenantNotFound
	}

	return nil
}

// DeleteTenant removes a tenant by its ID.
func (repo *tenantRepository) DeleteTenant(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TenantModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("tenant still has payments or complaints attached")
		}

		return errors.Wrap(result.Error, "failed to delete tenant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTenantNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toTenantDomain converts a GORM model to a domain entity.
func toTenantDomain(tenantM *model.TenantModel) *entity.Tenant {
	tenant := &entity.Tenant{
		ID:               tenantM.ID,
		FullName:         tenantM.FullName,
		Email:            tenantM.Email,
		PhoneNumber:      tenantM.PhoneNumber,
		EmergencyContact: tenantM.EmergencyContact,
		TenantTypeID:     tenantM.TenantTypeID,
		ApartmentID:      tenantM.ApartmentID,
		LeaseStart:       tenantM.LeaseStart,
		LeaseEnd:         tenantM.LeaseEnd,
		CreatedAt:        tenantM.CreatedAt,
		UpdatedAt:        tenantM.UpdatedAt,
	}

	if tenantM.TenantType != nil {
		tenant.TenantType = toTenantTypeDomain(tenantM.TenantType)
	}
	if tenantM.Apartment != nil {
		tenant.Apartment = toApartmentDomain(tenantM.Apartment)
	}

	return tenant
}

func toTenantDomains(tenantModels []*model.TenantModel) []*entity.Tenant {
	tenants := make([]*entity.Tenant, 0, len(tenantModels))
	for _, tenantM := range tenantModels {
		tenants = append(tenants, toTenantDomain(tenantM))
	}

	return tenants
}

// fromTenantDomain converts a domain entity to a GORM model.
func fromTenantDomain(tenant *entity.Tenant) *model.TenantModel {
	return &model.TenantModel{
		ID:               tenant.ID,
		FullName:         tenant.FullName,
		Email:            tenant.Email,
		PhoneNumber:      tenant.PhoneNumber,
		EmergencyContact: tenant.EmergencyContact,
		TenantTypeID:     tenant.TenantTypeID,
		ApartmentID:      tenant.ApartmentID,
		LeaseStart:       tenant.LeaseStart,
		LeaseEnd:         tenant.LeaseEnd,
		CreatedAt:        tenant.CreatedAt,
		UpdatedAt:        tenant.UpdatedAt,
	}
}

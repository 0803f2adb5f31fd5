package impl

import (
	"context"

	"manor/internal/domain/entity"
	domainerrors "manor/internal/domain/errors"
	"manor/internal/domain/repository"
	"manor/internal/errors"
	"manor/internal/usecase"

	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface over the lookup
// tables referenced by apartments, tenants, complaints and payments.
type catalogService struct {
	amenityRepo           repository.AmenityRepository
	furnishingRepo        repository.FurnishingRepository
	tenantTypeRepo        repository.TenantTypeRepository
	complaintStatusRepo   repository.ComplaintStatusRepository
	complaintCategoryRepo repository.ComplaintCategoryRepository
	paymentStatusRepo     repository.PaymentStatusRepository
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	AmenityRepo           repository.AmenityRepository
	FurnishingRepo        repository.FurnishingRepository
	TenantTypeRepo        repository.TenantTypeRepository
	ComplaintStatusRepo   repository.ComplaintStatusRepository
	ComplaintCategoryRepo repository.ComplaintCategoryRepository
	PaymentStatusRepo     repository.PaymentStatusRepository
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		amenityRepo:           params.AmenityRepo,
		furnishingRepo:        params.FurnishingRepo,
		tenantTypeRepo:        params.TenantTypeRepo,
		complaintStatusRepo:   params.ComplaintStatusRepo,
		complaintCategoryRepo: params.ComplaintCategoryRepo,
		paymentStatusRepo:     params.PaymentStatusRepo,
	}
}

func (srv *catalogService) CreateAmenity(ctx context.Context, input usecase.NamedItemInput) (*entity.Amenity, error) {
	amenity := &entity.Amenity{Name: input.Name, Description: input.Description}
	if err := srv.amenityRepo.CreateAmenity(ctx, amenity); err != nil {
		return nil, errors.Wrap(err, "failed to create amenity")
	}

	return amenity, nil
}

func (srv *catalogService) ListAmenities(ctx context.Context) ([]*entity.Amenity, error) {
	amenities, err := srv.amenityRepo.FindAllAmenities(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all amenities")
	}

	return amenities, nil
}

func (srv *catalogService) DeleteAmenity(ctx context.Context, id int64) error {
	if err := srv.amenityRepo.DeleteAmenity(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAmenityNotFound) {
			return domainerrors.ErrAmenityNotFound
		}

		return errors.Wrap(err, "failed to delete amenity")
	}

	return nil
}

func (srv *catalogService) CreateFurnishing(ctx context.Context, input usecase.NamedItemInput) (*entity.Furnishing, error) {
	furnishing := &entity.Furnishing{Name: input.Name, Description: input.Description}
	if err := srv.furnishingRepo.CreateFurnishing(ctx, furnishing); err != nil {
		return nil, errors.Wrap(err, "failed to create furnishing")
	}

	return furnishing, nil
}

func (srv *catalogService) ListFurnishings(ctx context.Context) ([]*entity.Furnishing, error) {
	furnishings, err := srv.furnishingRepo.FindAllFurnishings(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all furnishings")
	}

	return furnishings, nil
}

func (srv *catalogService) DeleteFurnishing(ctx context.Context, id int64) error {
	if err := srv.furnishingRepo.DeleteFurnishing(ctx, id); err != nil {
		if errors.Is(err, repository.ErrFurnishingNotFound) {
			return domainerrors.ErrFurnishingNotFound
		}

		return errors.Wrap(err, "failed to delete furnishing")
	}

	return nil
}

func (srv *catalogService) CreateTenantType(ctx context.Context, input usecase.NamedItemInput) (*entity.TenantType, error) {
	tenantType := &entity.TenantType{Name: input.Name, Description: input.Description}
	if err := srv.tenantTypeRepo.CreateTenantType(ctx, tenantType); err != nil {
		return nil, errors.Wrap(err, "failed to create tenant type")
	}

	return tenantType, nil
}

func (srv *catalogService) ListTenantTypes(ctx context.Context) ([]*entity.TenantType, error) {
	tenantTypes, err := srv.tenantTypeRepo.FindAllTenantTypes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all tenant types")
	}

	return tenantTypes, nil
}

func (srv *catalogService) DeleteTenantType(ctx context.Context, id int64) error {
	if err := srv.tenantTypeRepo.DeleteTenantType(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTenantTypeNotFound) {
			return domainerrors.ErrTenantTypeNotFound
		}

		return errors.Wrap(err, "failed to delete tenant type")
	}

	return nil
}

func (srv *catalogService) CreateComplaintStatus(ctx context.Context, name string) (*entity.ComplaintStatus, error) {
	status := &entity.ComplaintStatus{Name: name}
	if err := srv.complaintStatusRepo.CreateComplaintStatus(ctx, status); err != nil {
		return nil, errors.Wrap(err, "failed to create complaint status")
	}

	return status, nil
}

func (srv *catalogService) ListComplaintStatuses(ctx context.Context) ([]*entity.ComplaintStatus, error) {
	statuses, err := srv.complaintStatusRepo.FindAllComplaintStatuses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all complaint statuses")
	}

	return statuses, nil
}

func (srv *catalogService) DeleteComplaintStatus(ctx context.Context, id int64) error {
	if err := srv.complaintStatusRepo.DeleteComplaintStatus(ctx, id); err != nil {
		if errors.Is(err, repository.ErrComplaintStatusNotFound) {
			return domainerrors.ErrComplaintStatusNotFound
		}

		return errors.Wrap(err, "failed to delete complaint status")
	}

	return nil
}

func (srv *catalogService) CreateComplaintCategory(ctx context.Context, input usecase.NamedItemInput) (*entity.ComplaintCategory, error) {
	category := &entity.ComplaintCategory{Name: input.Name, Description: input.Description}
	if err := srv.complaintCategoryRepo.CreateComplaintCategory(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create complaint category")
	}

	return category, nil
}

func (srv *catalogService) ListComplaintCategories(ctx context.Context) ([]*entity.ComplaintCategory, error) {
	categories, err := srv.complaintCategoryRepo.FindAllComplaintCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all complaint categories")
	}

	return categories, nil
}

func (srv *catalogService) DeleteComplaintCategory(ctx context.Context, id int64) error {
	if err := srv.complaintCategoryRepo.DeleteComplaintCategory(ctx, id); err != nil {
		if errors.Is(err, repository.ErrComplaintCategoryNotFound) {
			return domainerrors.ErrComplaintCategoryNotFound
		}

		return errors.Wrap(err, "failed to delete complaint category")
	}

	return nil
}

func (srv *catalogService) CreatePaymentStatus(ctx context.Context, name string) (*entity.PaymentStatus, error) {
	status := &entity.PaymentStatus{Name: name}
	if err := srv.paymentStatusRepo.CreatePaymentStatus(ctx, status); err != nil {
		return nil, errors.Wrap(err, "failed to create payment status")
	}

	return status, nil
}

func (srv *catalogService) ListPaymentStatuses(ctx context.Context) ([]*entity.PaymentStatus, error) {
	statuses, err := srv.paymentStatusRepo.FindAllPaymentStatuses(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find all payment statuses")
	}

	return statuses, nil
}

func (srv *catalogService) DeletePaymentStatus(ctx context.Context, id int64) error {
	if err := srv.paymentStatusRepo.DeletePaymentStatus(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPaymentStatusNotFound) {
			return domainerrors.ErrPaymentStatusNotFound
		}

		return errors.Wrap(err, "failed to delete payment status")
	}

	return nil
}

package usecase

import (
	"context"

	"manor/internal/domain/entity"
)

// NamedItemInput carries a name/description pair for catalog entries such as
// amenities, furnishings and tenant types.
type NamedItemInput struct {
	Name        string
	Description *string
}

// CatalogUsecase defines the interface for the lookup tables the rest of the
// system references: amenities, furnishings, tenant types, complaint
// statuses/categories and payment statuses.
type CatalogUsecase interface {
	CreateAmenity(ctx context.Context, input NamedItemInput) (*entity.Amenity, error)
	ListAmenities(ctx context.Context) ([]*entity.Amenity, error)
	DeleteAmenity(ctx context.Context, id int64) error

	CreateFurnishing(ctx context.Context, input NamedItemInput) (*entity.Furnishing, error)
	ListFurnishings(ctx context.Context) ([]*entity.Furnishing, error)
	DeleteFurnishing(ctx context.Context, id int64) error

	CreateTenantType(ctx context.Context, input NamedItemInput) (*entity.TenantType, error)
	ListTenantTypes(ctx context.Context) ([]*entity.TenantType, error)
	DeleteTenantType(ctx context.Context, id int64) error

	CreateComplaintStatus(ctx context.Context, name string) (*entity.ComplaintStatus, error)
	ListComplaintStatuses(ctx context.Context) ([]*entity.ComplaintStatus, error)
	DeleteComplaintStatus(ctx context.Context, id int64) error

	CreateComplaintCategory(ctx context.Context, input NamedItemInput) (*entity.ComplaintCategory, error)
	ListComplaintCategories(ctx context.Context) ([]*entity.ComplaintCategory, error)
	DeleteComplaintCategory(ctx context.Context, id int64) error

	CreatePaymentStatus(ctx context.Context, name string) (*entity.PaymentStatus, error)
	ListPaymentStatuses(ctx context.Context) ([]*entity.PaymentStatus, error)
	DeletePaymentStatus(ctx context.Context, id int64) error
}

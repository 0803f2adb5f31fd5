package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"manor/config"
	"manor/internal/domain/entity"
	"manor/internal/domain/repository"
	"manor/internal/usecase/daterange"

	"github.com/stretchr/testify/require"
)

// The stubs below are deterministic in-memory repositories used across the
// service tests. They honor the repository sentinel-error contracts so the
// services' error mapping can be exercised without a database.

func ptr[T any](v T) *T {
	return &v
}

func daterangeOf(t *testing.T, start, end string) daterange.Range {
	t.Helper()

	window, err := daterange.Parse(start, end)
	require.NoError(t, err)

	return window
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Reporting: &config.ReportingConfig{
			OverdueAlertLimit:  20,
			UpcomingAlertLimit: 20,
			RecentPaymentLimit: 10,
			UpcomingWindowDays: 7,
			RecentWindowDays:   7,
			ExpiringSoonDays:   30,
			ComplaintTrendDays: 30,
		},
	}
}

type stubEstateRepo struct {
	estates []*entity.Estate
}

func (r *stubEstateRepo) CreateEstate(_ context.Context, estate *entity.Estate) error {
	estate.ID = int64(len(r.estates) + 1)
	r.estates = append(r.estates, estate)

	return nil
}

func (r *stubEstateRepo) FindEstateByID(_ context.Context, id int64) (*entity.Estate, error) {
	for _, estate := range r.estates {
		if estate.ID == id {
			return estate, nil
		}
	}

	return nil, repository.ErrEstateNotFound
}

func (r *stubEstateRepo) FindAllEstates(_ context.Context) ([]*entity.Estate, error) {
	return r.estates, nil
}

func (r *stubEstateRepo) UpdateEstate(_ context.Context, _ *entity.Estate) error { return nil }

func (r *stubEstateRepo) DeleteEstate(_ context.Context, id int64) error {
	for i, estate := range r.estates {
		if estate.ID == id {
			r.estates = append(r.estates[:i], r.estates[i+1:]...)

			return nil
		}
	}

	return repository.ErrEstateNotFound
}

type stubBlockRepo struct {
	blocks []*entity.Block
}

func (r *stubBlockRepo) CreateBlock(_ context.Context, block *entity.Block) error {
	block.ID = int64(len(r.blocks) + 1)
	r.blocks = append(r.blocks, block)

	return nil
}

func (r *stubBlockRepo) FindBlockByID(_ context.Context, id int64) (*entity.Block, error) {
	for _, block := range r.blocks {
		if block.ID == id {
			return block, nil
		}
	}

	return nil, repository.ErrBlockNotFound
}

func (r *stubBlockRepo) FindAllBlocks(_ context.Context) ([]*entity.Block, error) {
	return r.blocks, nil
}

func (r *stubBlockRepo) FindBlocksByEstate(_ context.Context, estateID int64) ([]*entity.Block, error) {
	var result []*entity.Block
	for _, block := range r.blocks {
		if block.EstateID == estateID {
			result = append(result, block)
		}
	}

	return result, nil
}

func (r *stubBlockRepo) UpdateBlock(_ context.Context, _ *entity.Block) error { return nil }

func (r *stubBlockRepo) DeleteBlock(_ context.Context, id int64) error {
	for i, block := range r.blocks {
		if block.ID == id {
			r.blocks = append(r.blocks[:i], r.blocks[i+1:]...)

			return nil
		}
	}

	return repository.ErrBlockNotFound
}

type stubApartmentRepo struct {
	apartments []*entity.Apartment
	available  []*entity.Apartment
}

func (r *stubApartmentRepo) CreateApartment(_ context.Context, apartment *entity.Apartment) error {
	apartment.ID = int64(len(r.apartments) + 1)
	r.apartments = append(r.apartments, apartment)

	return nil
}

func (r *stubApartmentRepo) FindApartmentByID(_ context.Context, id int64) (*entity.Apartment, error) {
	for _, apartment := range r.apartments {
		if apartment.ID == id {
			return apartment, nil
		}
	}

	return nil, repository.ErrApartmentNotFound
}

func (r *stubApartmentRepo) FindAllApartments(_ context.Context) ([]*entity.Apartment, error) {
	return r.apartments, nil
}

func (r *stubApartmentRepo) FindApartmentsByBlock(_ context.Context, blockID int64) ([]*entity.Apartment, error) {
	var result []*entity.Apartment
	for _, apartment := range r.apartments {
		if apartment.BlockID == blockID {
			result = append(result, apartment)
		}
	}

	return result, nil
}

func (r *stubApartmentRepo) FindAvailableApartments(_ context.Context, _ repository.ApartmentFilter) ([]*entity.Apartment, error) {
	return r.available, nil
}

func (r *stubApartmentRepo) CountApartments(_ context.Context) (int64, error) {
	return int64(len(r.apartments)), nil
}

func (r *stubApartmentRepo) UpdateApartment(_ context.Context, _ *entity.Apartment) error { return nil }

func (r *stubApartmentRepo) ReplaceAmenities(_ context.Context, _ int64, _ []int64) error {
	return nil
}

func (r *stubApartmentRepo) ReplaceFurnishings(_ context.Context, _ int64, _ []int64) error {
	return nil
}

func (r *stubApartmentRepo) DeleteApartment(_ context.Context, id int64) error {
	for i, apartment := range r.apartments {
		if apartment.ID == id {
			r.apartments = append(r.apartments[:i], r.apartments[i+1:]...)

			return nil
		}
	}

	return repository.ErrApartmentNotFound
}

type stubTenantRepo struct {
	tenants []*entity.Tenant
	nextID  int64
}

func (r *stubTenantRepo) CreateTenant(_ context.Context, tenant *entity.Tenant) error {
	r.nextID++
	tenant.ID = r.nextID
	r.tenants = append(r.tenants, tenant)

	return nil
}

func (r *stubTenantRepo) FindTenantByID(_ context.Context, id int64) (*entity.Tenant, error) {
	for _, tenant := range r.tenants {
		if tenant.ID == id {
			return tenant, nil
		}
	}

	return nil, repository.ErrTenantNotFound
}

func (r *stubTenantRepo) FindAllTenants(_ context.Context) ([]*entity.Tenant, error) {
	return r.tenants, nil
}

func (r *stubTenantRepo) FindTenantByApartment(_ context.Context, apartmentID int64) (*entity.Tenant, error) {
	for _, tenant := range r.tenants {
		if tenant.ApartmentID != nil && *tenant.ApartmentID == apartmentID {
			return tenant, nil
		}
	}

	return nil, repository.ErrTenantNotFound
}

func (r *stubTenantRepo) FindAssignedTenants(_ context.Context) ([]*entity.Tenant, error) {
	var result []*entity.Tenant
	for _, tenant := range r.tenants {
		if tenant.ApartmentID != nil {
			result = append(result, tenant)
		}
	}

	return result, nil
}

func (r *stubTenantRepo) FindTenantsWithLeaseEndingBetween(_ context.Context, start, end time.Time) ([]*entity.Tenant, error) {
	var result []*entity.Tenant
	for _, tenant := range r.tenants {
		if tenant.LeaseEnd == nil {
			continue
		}
		if !tenant.LeaseEnd.Before(start) && !tenant.LeaseEnd.After(end) {
			result = append(result, tenant)
		}
	}

	return result, nil
}

func (r *stubTenantRepo) UpdateTenant(_ context.Context, tenant *entity.Tenant) error {
	for i, existing := range r.tenants {
		if existing.ID == tenant.ID {
			r.tenants[i] = tenant

			return nil
		}
	}

	return repository.ErrTenantNotFound
}

func (r *stubTenantRepo) DeleteTenant(_ context.Context, id int64) error {
	for i, tenant := range r.tenants {
		if tenant.ID == id {
			r.tenants = append(r.tenants[:i], r.tenants[i+1:]...)

			return nil
		}
	}

	return repository.ErrTenantNotFound
}

type stubTenantTypeRepo struct {
	types []*entity.TenantType
}

func (r *stubTenantTypeRepo) CreateTenantType(_ context.Context, tenantType *entity.TenantType) error {
	tenantType.ID = int64(len(r.types) + 1)
	r.types = append(r.types, tenantType)

	return nil
}

func (r *stubTenantTypeRepo) FindTenantTypeByID(_ context.Context, id int64) (*entity.TenantType, error) {
	for _, tenantType := range r.types {
		if tenantType.ID == id {
			return tenantType, nil
		}
	}

	return nil, repository.ErrTenantTypeNotFound
}

func (r *stubTenantTypeRepo) FindAllTenantTypes(_ context.Context) ([]*entity.TenantType, error) {
	return r.types, nil
}

func (r *stubTenantTypeRepo) UpdateTenantType(_ context.Context, _ *entity.TenantType) error {
	return nil
}

func (r *stubTenantTypeRepo) DeleteTenantType(_ context.Context, id int64) error {
	for i, tenantType := range r.types {
		if tenantType.ID == id {
			r.types = append(r.types[:i], r.types[i+1:]...)

			return nil
		}
	}

	return repository.ErrTenantTypeNotFound
}

type stubPaymentRepo struct {
	payments []*entity.Payment
	nextID   int64
}

func (r *stubPaymentRepo) CreatePayment(_ context.Context, payment *entity.Payment) error {
	r.nextID++
	payment.ID = r.nextID
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now()
	}
	r.payments = append(r.payments, payment)

	return nil
}

func (r *stubPaymentRepo) FindPaymentByID(_ context.Context, id int64) (*entity.Payment, error) {
	for _, payment := range r.payments {
		if payment.ID == id {
			return payment, nil
		}
	}

	return nil, repository.ErrPaymentNotFound
}

func (r *stubPaymentRepo) FindAllPayments(_ context.Context) ([]*entity.Payment, error) {
	return r.payments, nil
}

func (r *stubPaymentRepo) FindPaymentsByTenant(_ context.Context, tenantID int64) ([]*entity.Payment, error) {
	var result []*entity.Payment
	for _, payment := range r.payments {
		if payment.TenantID == tenantID {
			result = append(result, payment)
		}
	}

	return result, nil
}

func (r *stubPaymentRepo) FindPaymentsCreatedBetween(_ context.Context, start, end time.Time) ([]*entity.Payment, error) {
	var result []*entity.Payment
	for _, payment := range r.payments {
		if !payment.CreatedAt.Before(start) && !payment.CreatedAt.After(end) {
			result = append(result, payment)
		}
	}

	return result, nil
}

func (r *stubPaymentRepo) FindPaymentByTenantPeriod(_ context.Context, tenantID int64, month, year int) (*entity.Payment, error) {
	for _, payment := range r.payments {
		if payment.TenantID != tenantID || payment.ForMonth == nil || payment.ForYear == nil {
			continue
		}
		if *payment.ForMonth == month && *payment.ForYear == year {
			return payment, nil
		}
	}

	return nil, repository.ErrPaymentNotFound
}

func (r *stubPaymentRepo) UpdatePayment(_ context.Context, payment *entity.Payment) error {
	for i, existing := range r.payments {
		if existing.ID == payment.ID {
			r.payments[i] = payment

			return nil
		}
	}

	return repository.ErrPaymentNotFound
}

func (r *stubPaymentRepo) DeletePayment(_ context.Context, id int64) error {
	for i, payment := range r.payments {
		if payment.ID == id {
			r.payments = append(r.payments[:i], r.payments[i+1:]...)

			return nil
		}
	}

	return repository.ErrPaymentNotFound
}

type stubPaymentStatusRepo struct {
	statuses []*entity.PaymentStatus
}

func (r *stubPaymentStatusRepo) CreatePaymentStatus(_ context.Context, status *entity.PaymentStatus) error {
	status.ID = int64(len(r.statuses) + 1)
	r.statuses = append(r.statuses, status)

	return nil
}

func (r *stubPaymentStatusRepo) FindPaymentStatusByID(_ context.Context, id int64) (*entity.PaymentStatus, error) {
	for _, status := range r.statuses {
		if status.ID == id {
			return status, nil
		}
	}

	return nil, repository.ErrPaymentStatusNotFound
}

func (r *stubPaymentStatusRepo) FindAllPaymentStatuses(_ context.Context) ([]*entity.PaymentStatus, error) {
	return r.statuses, nil
}

func (r *stubPaymentStatusRepo) DeletePaymentStatus(_ context.Context, id int64) error {
	for i, status := range r.statuses {
		if status.ID == id {
			r.statuses = append(r.statuses[:i], r.statuses[i+1:]...)

			return nil
		}
	}

	return repository.ErrPaymentStatusNotFound
}

type stubComplaintRepo struct {
	complaints []*entity.Complaint
	nextID     int64
}

func (r *stubComplaintRepo) CreateComplaint(_ context.Context, complaint *entity.Complaint) error {
	r.nextID++
	complaint.ID = r.nextID
	if complaint.CreatedAt.IsZero() {
		complaint.CreatedAt = time.Now()
		complaint.UpdatedAt = complaint.CreatedAt
	}
	r.complaints = append(r.complaints, complaint)

	return nil
}

func (r *stubComplaintRepo) FindComplaintByID(_ context.Context, id int64) (*entity.Complaint, error) {
	for _, complaint := range r.complaints {
		if complaint.ID == id {
			return complaint, nil
		}
	}

	return nil, repository.ErrComplaintNotFound
}

func (r *stubComplaintRepo) FindAllComplaints(_ context.Context) ([]*entity.Complaint, error) {
	return r.complaints, nil
}

func (r *stubComplaintRepo) FindComplaintsByTenant(_ context.Context, tenantID int64) ([]*entity.Complaint, error) {
	var result []*entity.Complaint
	for _, complaint := range r.complaints {
		if complaint.TenantID == tenantID {
			result = append(result, complaint)
		}
	}

	return result, nil
}

func (r *stubComplaintRepo) FindComplaintsCreatedBetween(_ context.Context, start, end time.Time) ([]*entity.Complaint, error) {
	var result []*entity.Complaint
	for _, complaint := range r.complaints {
		if !complaint.CreatedAt.Before(start) && !complaint.CreatedAt.After(end) {
			result = append(result, complaint)
		}
	}

	return result, nil
}

func (r *stubComplaintRepo) UpdateComplaint(_ context.Context, complaint *entity.Complaint) error {
	for i, existing := range r.complaints {
		if existing.ID == complaint.ID {
			r.complaints[i] = complaint

			return nil
		}
	}

	return repository.ErrComplaintNotFound
}

func (r *stubComplaintRepo) DeleteComplaint(_ context.Context, id int64) error {
	for i, complaint := range r.complaints {
		if complaint.ID == id {
			r.complaints = append(r.complaints[:i], r.complaints[i+1:]...)

			return nil
		}
	}

	return repository.ErrComplaintNotFound
}

type stubComplaintStatusRepo struct {
	statuses []*entity.ComplaintStatus
}

func (r *stubComplaintStatusRepo) CreateComplaintStatus(_ context.Context, status *entity.ComplaintStatus) error {
	status.ID = int64(len(r.statuses) + 1)
	r.statuses = append(r.statuses, status)

	return nil
}

func (r *stubComplaintStatusRepo) FindComplaintStatusByID(_ context.Context, id int64) (*entity.ComplaintStatus, error) {
	for _, status := range r.statuses {
		if status.ID == id {
			return status, nil
		}
	}

	return nil, repository.ErrComplaintStatusNotFound
}

func (r *stubComplaintStatusRepo) FindAllComplaintStatuses(_ context.Context) ([]*entity.ComplaintStatus, error) {
	return r.statuses, nil
}

func (r *stubComplaintStatusRepo) DeleteComplaintStatus(_ context.Context, id int64) error {
	for i, status := range r.statuses {
		if status.ID == id {
			r.statuses = append(r.statuses[:i], r.statuses[i+1:]...)

			return nil
		}
	}

	return repository.ErrComplaintStatusNotFound
}

type stubComplaintCategoryRepo struct {
	categories []*entity.ComplaintCategory
}

func (r *stubComplaintCategoryRepo) CreateComplaintCategory(_ context.Context, category *entity.ComplaintCategory) error {
	category.ID = int64(len(r.categories) + 1)
	r.categories = append(r.categories, category)

	return nil
}

func (r *stubComplaintCategoryRepo) FindComplaintCategoryByID(_ context.Context, id int64) (*entity.ComplaintCategory, error) {
	for _, category := range r.categories {
		if category.ID == id {
			return category, nil
		}
	}

	return nil, repository.ErrComplaintCategoryNotFound
}

func (r *stubComplaintCategoryRepo) FindAllComplaintCategories(_ context.Context) ([]*entity.ComplaintCategory, error) {
	return r.categories, nil
}

func (r *stubComplaintCategoryRepo) DeleteComplaintCategory(_ context.Context, id int64) error {
	for i, category := range r.categories {
		if category.ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)

			return nil
		}
	}

	return repository.ErrComplaintCategoryNotFound
}

type stubAmenityRepo struct {
	amenities []*entity.Amenity
}

func (r *stubAmenityRepo) CreateAmenity(_ context.Context, amenity *entity.Amenity) error {
	amenity.ID = int64(len(r.amenities) + 1)
	r.amenities = append(r.amenities, amenity)

	return nil
}

func (r *stubAmenityRepo) FindAmenityByID(_ context.Context, id int64) (*entity.Amenity, error) {
	for _, amenity := range r.amenities {
		if amenity.ID == id {
			return amenity, nil
		}
	}

	return nil, repository.ErrAmenityNotFound
}

func (r *stubAmenityRepo) FindAllAmenities(_ context.Context) ([]*entity.Amenity, error) {
	return r.amenities, nil
}

func (r *stubAmenityRepo) UpdateAmenity(_ context.Context, _ *entity.Amenity) error { return nil }

func (r *stubAmenityRepo) DeleteAmenity(_ context.Context, id int64) error {
	for i, amenity := range r.amenities {
		if amenity.ID == id {
			r.amenities = append(r.amenities[:i], r.amenities[i+1:]...)

			return nil
		}
	}

	return repository.ErrAmenityNotFound
}

type stubFurnishingRepo struct {
	furnishings []*entity.Furnishing
}

func (r *stubFurnishingRepo) CreateFurnishing(_ context.Context, furnishing *entity.Furnishing) error {
	furnishing.ID = int64(len(r.furnishings) + 1)
	r.furnishings = append(r.furnishings, furnishing)

	return nil
}

func (r *stubFurnishingRepo) FindFurnishingByID(_ context.Context, id int64) (*entity.Furnishing, error) {
	for _, furnishing := range r.furnishings {
		if furnishing.ID == id {
			return furnishing, nil
		}
	}

	return nil, repository.ErrFurnishingNotFound
}

func (r *stubFurnishingRepo) FindAllFurnishings(_ context.Context) ([]*entity.Furnishing, error) {
	return r.furnishings, nil
}

func (r *stubFurnishingRepo) UpdateFurnishing(_ context.Context, _ *entity.Furnishing) error {
	return nil
}

func (r *stubFurnishingRepo) DeleteFurnishing(_ context.Context, id int64) error {
	for i, furnishing := range r.furnishings {
		if furnishing.ID == id {
			r.furnishings = append(r.furnishings[:i], r.furnishings[i+1:]...)

			return nil
		}
	}

	return repository.ErrFurnishingNotFound
}

// stubRepoFactory hands out the same stub repositories for transactional and
// non-transactional use, which is enough to exercise the services' logic.
type stubRepoFactory struct {
	tenantRepo        repository.TenantRepository
	apartmentRepo     repository.ApartmentRepository
	paymentRepo       repository.PaymentRepository
	paymentStatusRepo repository.PaymentStatusRepository
}

func (f *stubRepoFactory) NewTenantRepository() repository.TenantRepository { return f.tenantRepo }

func (f *stubRepoFactory) NewApartmentRepository() repository.ApartmentRepository {
	return f.apartmentRepo
}

func (f *stubRepoFactory) NewPaymentRepository() repository.PaymentRepository { return f.paymentRepo }

func (f *stubRepoFactory) NewPaymentStatusRepository() repository.PaymentStatusRepository {
	return f.paymentStatusRepo
}

// stubTxManager runs the transactional function directly against the stub
// factory, without any real transaction semantics.
type stubTxManager struct {
	factory *stubRepoFactory
}

func (m *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

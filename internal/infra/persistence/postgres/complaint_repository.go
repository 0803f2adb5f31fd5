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

// complaintRepository implements the repository.ComplaintRepository interface.
type complaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository is the constructor for complaintRepository.
func NewComplaintRepository(db *gorm.DB) repository.ComplaintRepository {
	return &complaintRepository{
		db: db,
	}
}

// CreateComplaint persists a new complaint.
func (repo *complaintRepository) CreateComplaint(ctx context.Context, complaint *entity.Complaint) error {
	complaintM := fromComplaintDomain(complaint)

	if err := repo.db.WithContext(ctx).
		Omit("Tenant", "Category", "Status").
		Create(complaintM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid tenant, category or status reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required complaint information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create complaint")
	}

	// Update the entity with generated values
	complaint.ID = complaintM.ID
	complaint.CreatedAt = complaintM.CreatedAt
	complaint.UpdatedAt = complaintM.UpdatedAt

	return nil
}

// FindComplaintByID retrieves a complaint with its tenant, category and status preloaded.
func (repo *complaintRepository) FindComplaintByID(ctx context.Context, id int64) (*entity.Complaint, error) {
	var complaintM model.ComplaintModel

	if err := repo.db.WithContext(ctx).
		Preload("Tenant").
		Preload("Tenant.Apartment").
		Preload("Category").
		Preload("Status").
		Where("id = ?", id).
		First(&complaintM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrComplaintNotFound
		}

		return nil, errors.Wrap(err, "failed to find complaint by ID")
	}

	return toComplaintDomain(&complaintM), nil
}

// FindAllComplaints retrieves all complaints ordered by creation time descending.
func (repo *complaintRepository) FindAllComplaints(ctx context.Context) ([]*entity.Complaint, error) {
	var complaintModels []*model.ComplaintModel

	if err := repo.db.WithContext(ctx).
		Preload("Tenant").
		Preload("Tenant.Apartment").
		Preload("Category").
		Preload("Status").
		Order("created_at DESC").
		Find(&complaintModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all complaints")
	}

	return toComplaintDomains(complaintModels), nil
}

// FindComplaintsByTenant retrieves a tenant's complaints ordered by creation time descending.
func (repo *complaintRepository) FindComplaintsByTenant(ctx context.Context, tenantID int64) ([]*entity.Complaint, error) {
	var complaintModels []*model.ComplaintModel

	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Preload("Status").
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&complaintModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find complaints by tenant")
	}

	return toComplaintDomains(complaintModels), nil
}

// FindComplaintsCreatedBetween retrieves complaints created in [start, end].
func (repo *complaintRepository) FindComplaintsCreatedBetween(ctx context.Context, start, end time.Time) ([]*entity.Complaint, error) {
	var complaintModels []*model.ComplaintModel

	if err := repo.db.WithContext(ctx).
		Preload("Tenant").
		Preload("Tenant.Apartment").
		Preload("Category").
		Preload("Status").
		Where("created_at BETWEEN ? AND ?", start, end).
		Order("created_at DESC").
		Find(&complaintModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find complaints created between")
	}

	return toComplaintDomains(complaintModels), nil
}

// UpdateComplaint persists changes to an existing complaint.
func (repo *complaintRepository) UpdateComplaint(ctx context.Context, complaint *entity.Complaint) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ComplaintModel{}).
		Where("id = ?", complaint.ID).
		Updates(map[string]any{
			"category_id": complaint.CategoryID,
			"status_id":   complaint.StatusID,
			"title":       complaint.Title,
			"description": complaint.Description,
			"feedback":    complaint.Feedback,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid category or status reference")
		}

		return errors.Wrap(result.Error, "failed to update complaint")
	}
	if result.RowsAffected == 0 {
		return repository.ErrComplaintNotFound
	}

	return nil
}

// DeleteComplaint removes a complaint by its ID.
func (repo *complaintRepository) DeleteComplaint(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ComplaintModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete complaint")
	}
	if result.RowsAffected == 0 {
		return repository.ErrComplaintNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toComplaintDomain converts a GORM model to a domain entity.
func toComplaintDomain(complaintM *model.ComplaintModel) *entity.Complaint {
	complaint := &entity.Complaint{
		ID:          complaintM.ID,
		TenantID:    complaintM.TenantID,
		CategoryID:  complaintM.CategoryID,
		StatusID:    complaintM.StatusID,
		Title:       complaintM.Title,
		Description: complaintM.Description,
		Feedback:    complaintM.Feedback,
		CreatedAt:   complaintM.CreatedAt,
		UpdatedAt:   complaintM.UpdatedAt,
	}

	if complaintM.Tenant != nil {
		complaint.Tenant = toTenantDomain(complaintM.Tenant)
	}
	if complaintM.Category != nil {
		complaint.Category = toComplaintCategoryDomain(complaintM.Category)
	}
	if complaintM.Status != nil {
		complaint.Status = toComplaintStatusDomain(complaintM.Status)
	}

	return complaint
}

func toComplaintDomains(complaintModels []*model.ComplaintModel) []*entity.Complaint {
	complaints := make([]*entity.Complaint, 0, len(complaintModels))
	for _, complaintM := range complaintModels {
		complaints = append(complaints, toComplaintDomain(complaintM))
	}

	return complaints
}

// fromComplaintDomain converts a domain entity to a GORM model.
func fromComplaintDomain(complaint *entity.Complaint) *model.ComplaintModel {
	return &model.ComplaintModel{
		ID:          complaint.ID,
		TenantID:    complaint.TenantID,
		CategoryID:  complaint.CategoryID,
		StatusID:    complaint.StatusID,
		Title:       complaint.Title,
		Description: complaint.Description,
		Feedback:    complaint.Feedback,
		CreatedAt:   complaint.CreatedAt,
		UpdatedAt:   complaint.UpdatedAt,
	}
}

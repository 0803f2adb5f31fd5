// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"manor/internal/domain/entity"
	"manor/internal/errors"
)

// Domain-specific errors for complaint persistence.
var (
	// ErrComplaintNotFound is returned when a complaint is not found.
	ErrComplaintNotFound = errors.New("complaint not found")
	// ErrComplaintStatusNotFound is returned when a complaint status is not found.
	ErrComplaintStatusNotFound = errors.New("complaint status not found")
	// ErrComplaintCategoryNotFound is returned when a complaint category is not found.
	ErrComplaintCategoryNotFound = errors.New("complaint category not found")
)

// ComplaintRepository defines the interface for complaint-related database operations.
type ComplaintRepository interface {
	// CreateComplaint persists a new complaint.
	CreateComplaint(ctx context.Context, complaint *entity.Complaint) error

	// FindComplaintByID retrieves a complaint with its tenant, category and
	// status preloaded.
	FindComplaintByID(ctx context.Context, id int64) (*entity.Complaint, error)

	// FindAllComplaints retrieves all complaints with tenants, categories and
	// statuses preloaded, ordered by creation time descending.
	FindAllComplaints(ctx context.Context) ([]*entity.Complaint, error)

	// FindComplaintsByTenant retrieves a tenant's complaints ordered by
	// creation time descending.
	FindComplaintsByTenant(ctx context.Context, tenantID int64) ([]*entity.Complaint, error)

	// FindComplaintsCreatedBetween retrieves complaints created in
	// [start, end], tenants, categories and statuses preloaded.
	FindComplaintsCreatedBetween(ctx context.Context, start, end time.Time) ([]*entity.Complaint, error)

	// UpdateComplaint persists changes to an existing complaint.
	UpdateComplaint(ctx context.Context, complaint *entity.Complaint) error

	// DeleteComplaint removes a complaint by its ID.
	DeleteComplaint(ctx context.Context, id int64) error
}

// ComplaintStatusRepository defines the interface for complaint status lookups.
type ComplaintStatusRepository interface {
	// CreateComplaintStatus persists a new complaint status.
	CreateComplaintStatus(ctx context.Context, status *entity.ComplaintStatus) error

	// FindComplaintStatusByID retrieves a complaint status by its unique ID.
	FindComplaintStatusByID(ctx context.Context, id int64) (*entity.ComplaintStatus, error)

	// FindAllComplaintStatuses retrieves all complaint statuses ordered by name.
	FindAllComplaintStatuses(ctx context.Context) ([]*entity.ComplaintStatus, error)

	// DeleteComplaintStatus removes a complaint status by its ID.
	DeleteComplaintStatus(ctx context.Context, id int64) error
}

// ComplaintCategoryRepository defines the interface for complaint category lookups.
type ComplaintCategoryRepository interface {
	// CreateComplaintCategory persists a new complaint category.
	CreateComplaintCategory(ctx context.Context, category *entity.ComplaintCategory) error

	// FindComplaintCategoryByID retrieves a complaint category by its unique ID.
	FindComplaintCategoryByID(ctx context.Context, id int64) (*entity.ComplaintCategory, error)

	// FindAllComplaintCategories retrieves all complaint categories ordered by name.
	FindAllComplaintCategories(ctx context.Context) ([]*entity.ComplaintCategory, error)

	// DeleteComplaintCategory removes a complaint category by its ID.
	DeleteComplaintCategory(ctx context.Context, id int64) error
}

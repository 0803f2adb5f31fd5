// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"
)

// ComplaintStatus represents the workflow state of a complaint, e.g. "Open" or "Resolved".
type ComplaintStatus struct {
	ID        int64     `json:"id"`         // Unique identifier of the status.
	Name      string    `json:"name"`       // Display name of the status.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the status was registered.
}

// ComplaintCategory classifies complaints, e.g. "Plumbing" or "Security".
type ComplaintCategory struct {
	ID          int64     `json:"id"`          // Unique identifier of the category.
	Name        string    `json:"name"`        // Display name of the category.
	Description *string   `json:"description"` // Optional description.
	CreatedAt   time.Time `json:"created_at"`  // Timestamp of when the category was registered.
}

// Complaint represents an issue raised by a tenant.
type Complaint struct {
	ID          int64              `json:"id"`          // Unique identifier of the complaint.
	TenantID    int64              `json:"tenant_id"`   // The tenant who raised the complaint.
	Tenant      *Tenant            `json:"tenant"`      // Loaded tenant, when preloaded.
	CategoryID  *int64             `json:"category_id"` // Classification, when categorized.
	Category    *ComplaintCategory `json:"category"`    // Loaded category, when preloaded.
	StatusID    *int64             `json:"status_id"`   // Current workflow state.
	Status      *ComplaintStatus   `json:"status"`      // Loaded status, when preloaded.
	Title       *string            `json:"title"`       // Short summary of the issue.
	Description string             `json:"description"` // Full description of the issue.
	Feedback    *string            `json:"feedback"`    // Management feedback on resolution.
	CreatedAt   time.Time          `json:"created_at"`  // Timestamp of when the complaint was filed.
	UpdatedAt   time.Time          `json:"updated_at"`  // Timestamp of the last state change.
}

// StatusIs reports whether the complaint's status name contains the given
// token, matched case-insensitively. Complaints without a status never match.
func (c *Complaint) StatusIs(token string) bool {
	if c.Status == nil {
		return false
	}

	return strings.Contains(strings.ToLower(c.Status.Name), strings.ToLower(token))
}

// ResolutionTime returns how long the complaint took to reach its current
// state. Meaningful only for resolved or closed complaints.
func (c *Complaint) ResolutionTime() time.Duration {
	return c.UpdatedAt.Sub(c.CreatedAt)
}

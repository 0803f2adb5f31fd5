// Package entity contains the core business objects of the project.
package entity

import "time"

// Tenant represents a person renting an apartment.
type Tenant struct {
	ID               int64       `json:"id"`                // Unique identifier of the tenant.
	FullName         string      `json:"full_name"`         // Tenant's full name.
	Email            string      `json:"email"`             // Contact email address.
	PhoneNumber      *string     `json:"phone_number"`      // Contact phone number.
	EmergencyContact *string     `json:"emergency_contact"` // Emergency contact details.
	TenantTypeID     *int64      `json:"tenant_type_id"`    // Classification of the tenant.
	TenantType       *TenantType `json:"tenant_type"`       // Loaded tenant type, when preloaded.
	ApartmentID      *int64      `json:"apartment_id"`      // Currently assigned apartment, if any.
	Apartment        *Apartment  `json:"apartment"`         // Loaded apartment, when preloaded.
	LeaseStart       *time.Time  `json:"lease_start"`       // First day of the lease.
	LeaseEnd         *time.Time  `json:"lease_end"`         // Last day of the lease.
	CreatedAt        time.Time   `json:"created_at"`        // Timestamp of when the tenant was registered.
	UpdatedAt        time.Time   `json:"updated_at"`        // Timestamp of the last modification.
}

// LeaseActiveAt reports whether the tenant's lease covers the given instant.
// A missing lease end is treated as an open-ended lease.
func (t *Tenant) LeaseActiveAt(at time.Time) bool {
	if t.LeaseStart == nil || t.LeaseStart.After(at) {
		return false
	}

	return t.LeaseEnd == nil || !t.LeaseEnd.Before(at)
}

// LeaseExpiredAt reports whether the lease has ended strictly before the given instant.
func (t *Tenant) LeaseExpiredAt(at time.Time) bool {
	return t.LeaseEnd != nil && t.LeaseEnd.Before(at)
}

// Package entity contains the core business objects of the project.
package entity

import "time"

// TenantType classifies tenants, e.g. individual, family or corporate.
type TenantType struct {
	ID          int64     `json:"id"`          // Unique identifier of the tenant type.
	Name        string    `json:"name"`        // Display name of the tenant type.
	Description *string   `json:"description"` // Optional description.
	CreatedAt   time.Time `json:"created_at"`  // Timestamp of when the type was registered.
}

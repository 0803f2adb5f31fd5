// Package entity contains the core business objects of the project.
package entity

import "time"

// Estate represents a managed property estate containing one or more blocks.
type Estate struct {
	ID          int64     `json:"id"`          // Unique identifier of the estate.
	Name        string    `json:"name"`        // Display name of the estate.
	Address     string    `json:"address"`     // Physical address of the estate.
	Size        *string   `json:"size"`        // Free-form size description, e.g. "5 acres".
	Description *string   `json:"description"` // Optional description.
	CreatedAt   time.Time `json:"created_at"`  // Timestamp of when the estate was registered.
	UpdatedAt   time.Time `json:"updated_at"`  // Timestamp of the last modification.
}

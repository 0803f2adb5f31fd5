// Package entity contains the core business objects of the project.
package entity

import "time"

// Furnishing represents an item of furniture or equipment provided with an apartment.
type Furnishing struct {
	ID          int64     `json:"id"`          // Unique identifier of the furnishing.
	Name        string    `json:"name"`        // Display name of the furnishing.
	Description *string   `json:"description"` // Optional description.
	CreatedAt   time.Time `json:"created_at"`  // Timestamp of when the furnishing was registered.
}

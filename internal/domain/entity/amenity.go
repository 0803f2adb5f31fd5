// Package entity contains the core business objects of the project.
package entity

import "time"

// Amenity represents a shared facility available to apartments, e.g. parking or a gym.
type Amenity struct {
	ID          int64     `json:"id"`          // Unique identifier of the amenity.
	Name        string    `json:"name"`        // Display name of the amenity.
	Description *string   `json:"description"` // Optional description.
	CreatedAt   time.Time `json:"created_at"`  // Timestamp of when the amenity was registered.
}

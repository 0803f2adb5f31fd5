// Package entity contains the core business objects of the project.
package entity

import "time"

// Block represents a building block within an estate.
type Block struct {
	ID          int64     `json:"id"`          // Unique identifier of the block.
	EstateID    int64     `json:"estate_id"`   // The estate this block belongs to.
	Name        string    `json:"name"`        // Display name of the block.
	Description *string   `json:"description"` // Optional description.
	CreatedAt   time.Time `json:"created_at"`  // Timestamp of when the block was registered.
	UpdatedAt   time.Time `json:"updated_at"`  // Timestamp of the last modification.
}

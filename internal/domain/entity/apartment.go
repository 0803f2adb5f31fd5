// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Apartment represents a rentable unit within a block.
type Apartment struct {
	ID            int64            `json:"id"`              // Unique identifier of the apartment.
	BlockID       int64            `json:"block_id"`        // The block this apartment belongs to.
	Number        string           `json:"number"`          // Door or unit number within the block.
	Size          *decimal.Decimal `json:"size"`            // Size in square meters, when surveyed.
	RentAmount    *decimal.Decimal `json:"rent_amount"`     // Monthly rent, when priced.
	NumberOfRooms *int             `json:"number_of_rooms"` // Room count, when known.
	Color         *string          `json:"color"`           // Exterior or door color.
	Description   *string          `json:"description"`     // Optional description.
	Amenities     []Amenity        `json:"amenities"`       // Amenities available to this apartment.
	Furnishings   []Furnishing     `json:"furnishings"`     // Furnishings provided with this apartment.
	CreatedAt     time.Time        `json:"created_at"`      // Timestamp of when the apartment was registered.
	UpdatedAt     time.Time        `json:"updated_at"`      // Timestamp of the last modification.
}

// IsFurnished reports whether the apartment has at least one furnishing.
func (a *Apartment) IsFurnished() bool {
	return len(a.Furnishings) > 0
}

// Package allocation scores apartments for allocation recommendations and
// assigns the categorical tags used by availability summaries. All functions
// are pure and treat missing attributes as unknown rather than failing.
package allocation

import (
	"github.com/shopspring/decimal"

	"manor/internal/domain/entity"
)

// Category tag returned when the underlying attribute is missing.
const CategoryUnknown = "unknown"

const (
	roomTermCap       = 50
	amenityTermCap    = 25
	furnishingTermCap = 15
)

var (
	sizeLarge  = decimal.NewFromInt(100)
	sizeMedium = decimal.NewFromInt(50)

	perRoomCheap    = decimal.NewFromInt(5000)
	perRoomModerate = decimal.NewFromInt(10000)
	perRoomHigh     = decimal.NewFromInt(15000)
)

// Score computes the allocation recommendation score for an apartment.
// The score is additive over independently capped terms covering rooms,
// size, amenities, furnishings and rent efficiency.
func Score(apartment *entity.Apartment) int {
	score := 0

	if apartment.NumberOfRooms != nil {
		score += min(*apartment.NumberOfRooms*10, roomTermCap)
	}

	if apartment.Size != nil {
		switch {
		case apartment.Size.GreaterThanOrEqual(sizeLarge):
			score += 30
		case apartment.Size.GreaterThanOrEqual(sizeMedium):
			score += 20
		default:
			score += 10
		}
	}

	score += min(len(apartment.Amenities)*5, amenityTermCap)
	score += min(len(apartment.Furnishings)*3, furnishingTermCap)

	if apartment.RentAmount != nil && apartment.NumberOfRooms != nil && *apartment.NumberOfRooms > 0 {
		perRoom := apartment.RentAmount.Div(decimal.NewFromInt(int64(*apartment.NumberOfRooms)))
		switch {
		case perRoom.LessThan(perRoomCheap):
			score += 20
		case perRoom.LessThan(perRoomModerate):
			score += 15
		case perRoom.LessThan(perRoomHigh):
			score += 10
		default:
			score += 5
		}
	}

	return score
}

// RoomCategory maps a room count onto a bedroom-style tag.
func RoomCategory(rooms *int) string {
	if rooms == nil {
		return CategoryUnknown
	}

	switch *rooms {
	case 1:
		return "studio"
	case 2:
		return "1-bedroom"
	case 3:
		return "2-bedroom"
	case 4:
		return "3-bedroom"
	default:
		if *rooms >= 5 {
			return "large-family"
		}

		return "other"
	}
}

// SizeCategory maps an apartment size in square meters onto a size tag.
func SizeCategory(size *decimal.Decimal) string {
	if size == nil {
		return CategoryUnknown
	}

	switch {
	case size.LessThan(decimal.NewFromInt(30)):
		return "small"
	case size.LessThan(decimal.NewFromInt(60)):
		return "medium"
	case size.LessThan(decimal.NewFromInt(100)):
		return "large"
	default:
		return "extra-large"
	}
}

// RentCategory maps a monthly rent onto a price-band tag.
func RentCategory(rent *decimal.Decimal) string {
	if rent == nil {
		return CategoryUnknown
	}

	switch {
	case rent.LessThan(decimal.NewFromInt(10000)):
		return "budget"
	case rent.LessThan(decimal.NewFromInt(20000)):
		return "affordable"
	case rent.LessThan(decimal.NewFromInt(35000)):
		return "moderate"
	case rent.LessThan(decimal.NewFromInt(50000)):
		return "premium"
	default:
		return "luxury"
	}
}

// RentPerRoom returns rent divided by room count rounded to two decimal
// places, or 0 when either value is missing.
func RentPerRoom(apartment *entity.Apartment) float64 {
	if apartment.RentAmount == nil || apartment.NumberOfRooms == nil || *apartment.NumberOfRooms <= 0 {
		return 0
	}

	return apartment.RentAmount.
		Div(decimal.NewFromInt(int64(*apartment.NumberOfRooms))).
		Round(2).
		InexactFloat64()
}

// RentPerSquareMeter returns rent divided by size rounded to two decimal
// places, or 0 when either value is missing.
func RentPerSquareMeter(apartment *entity.Apartment) float64 {
	if apartment.RentAmount == nil || apartment.Size == nil || apartment.Size.IsZero() {
		return 0
	}

	return apartment.RentAmount.
		Div(*apartment.Size).
		Round(2).
		InexactFloat64()
}

package allocation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"manor/internal/domain/entity"
)

func intPtr(v int) *int { return &v }

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)

	return &d
}

func TestScore_EmptyApartmentScoresZero(t *testing.T) {
	assert.Equal(t, 0, Score(&entity.Apartment{}))
	assert.Equal(t, 0, Score(&entity.Apartment{NumberOfRooms: intPtr(0)}))
}

func TestScore_RoomTermCappedAtFifty(t *testing.T) {
	for rooms := 1; rooms <= 10; rooms++ {
		got := Score(&entity.Apartment{NumberOfRooms: intPtr(rooms)})
		want := min(rooms*10, 50)
		assert.Equal(t, want, got, "rooms=%d", rooms)
	}
}

func TestScore_RoomTermMonotonic(t *testing.T) {
	prev := 0
	for rooms := 1; rooms <= 12; rooms++ {
		got := Score(&entity.Apartment{NumberOfRooms: intPtr(rooms)})
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}

func TestScore_SizeTerm(t *testing.T) {
	assert.Equal(t, 30, Score(&entity.Apartment{Size: decPtr(100)}))
	assert.Equal(t, 30, Score(&entity.Apartment{Size: decPtr(150)}))
	assert.Equal(t, 20, Score(&entity.Apartment{Size: decPtr(50)}))
	assert.Equal(t, 20, Score(&entity.Apartment{Size: decPtr(99)}))
	assert.Equal(t, 10, Score(&entity.Apartment{Size: decPtr(49)}))
	assert.Equal(t, 10, Score(&entity.Apartment{Size: decPtr(10)}))
}

func TestScore_AmenityAndFurnishingTermsCapped(t *testing.T) {
	amenities := make([]entity.Amenity, 8)
	furnishings := make([]entity.Furnishing, 8)

	got := Score(&entity.Apartment{Amenities: amenities, Furnishings: furnishings})
	assert.Equal(t, 25+15, got)

	got = Score(&entity.Apartment{Amenities: amenities[:2], Furnishings: furnishings[:3]})
	assert.Equal(t, 2*5+3*3, got)
}

func TestScore_RentEfficiencyTerm(t *testing.T) {
	apartment := func(rent int64, rooms int) *entity.Apartment {
		return &entity.Apartment{RentAmount: decPtr(rent), NumberOfRooms: intPtr(rooms)}
	}

	// Room term contributes rooms*10 on top of the rent term.
	assert.Equal(t, 10+20, Score(apartment(4999, 1)))
	assert.Equal(t, 10+15, Score(apartment(5000, 1)))
	assert.Equal(t, 10+15, Score(apartment(9999, 1)))
	assert.Equal(t, 10+10, Score(apartment(10000, 1)))
	assert.Equal(t, 10+5, Score(apartment(15000, 1)))

	// Rent without a room count contributes nothing.
	assert.Equal(t, 0, Score(&entity.Apartment{RentAmount: decPtr(4000)}))
}

func TestRoomCategory(t *testing.T) {
	tests := []struct {
		rooms *int
		want  string
	}{
		{nil, "unknown"},
		{intPtr(0), "other"},
		{intPtr(1), "studio"},
		{intPtr(2), "1-bedroom"},
		{intPtr(3), "2-bedroom"},
		{intPtr(4), "3-bedroom"},
		{intPtr(5), "large-family"},
		{intPtr(9), "large-family"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RoomCategory(tt.rooms))
	}
}

func TestSizeCategory(t *testing.T) {
	assert.Equal(t, "unknown", SizeCategory(nil))
	assert.Equal(t, "small", SizeCategory(decPtr(29)))
	assert.Equal(t, "medium", SizeCategory(decPtr(30)))
	assert.Equal(t, "medium", SizeCategory(decPtr(59)))
	assert.Equal(t, "large", SizeCategory(decPtr(60)))
	assert.Equal(t, "large", SizeCategory(decPtr(99)))
	assert.Equal(t, "extra-large", SizeCategory(decPtr(100)))
}

func TestRentCategory_BoundaryInclusiveUpperSide(t *testing.T) {
	assert.Equal(t, "unknown", RentCategory(nil))
	assert.Equal(t, "budget", RentCategory(decPtr(9999)))
	assert.Equal(t, "affordable", RentCategory(decPtr(10000)))
	assert.Equal(t, "affordable", RentCategory(decPtr(19999)))
	assert.Equal(t, "moderate", RentCategory(decPtr(20000)))
	assert.Equal(t, "premium", RentCategory(decPtr(35000)))
	assert.Equal(t, "luxury", RentCategory(decPtr(50000)))
}

func TestRentPerRoom(t *testing.T) {
	apartment := &entity.Apartment{RentAmount: decPtr(10000), NumberOfRooms: intPtr(3)}
	assert.InDelta(t, 3333.33, RentPerRoom(apartment), 0.001)

	assert.Zero(t, RentPerRoom(&entity.Apartment{RentAmount: decPtr(10000)}))
	assert.Zero(t, RentPerRoom(&entity.Apartment{NumberOfRooms: intPtr(3)}))
}

func TestRentPerSquareMeter(t *testing.T) {
	size := decimal.NewFromFloat(62.5)
	apartment := &entity.Apartment{RentAmount: decPtr(25000), Size: &size}
	assert.InDelta(t, 400.0, RentPerSquareMeter(apartment), 0.001)

	assert.Zero(t, RentPerSquareMeter(&entity.Apartment{RentAmount: decPtr(25000)}))
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApartmentModel is the GORM-specific struct for the 'apartments' table.
// Amenities and furnishings are attached through join tables so an apartment
// can share catalog entries with any other apartment.
type ApartmentModel struct {
	ID            int64            `gorm:"primaryKey;autoIncrement"`
	BlockID       int64            `gorm:"not null;index"`
	Number        string           `gorm:"type:varchar(50);not null"`
	Size          *decimal.Decimal `gorm:"type:decimal(10,2)"`
	RentAmount    *decimal.Decimal `gorm:"type:decimal(12,2)"`
	NumberOfRooms *int
	Color         *string `gorm:"type:varchar(50)"`
	Description   *string `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Amenities   []AmenityModel    `gorm:"many2many:apartment_amenities;joinForeignKey:ApartmentID;joinReferences:AmenityID"`
	Furnishings []FurnishingModel `gorm:"many2many:apartment_furnishings;joinForeignKey:ApartmentID;joinReferences:FurnishingID"`
}

// TableName explicitly sets the table name for GORM.
func (ApartmentModel) TableName() string {
	return "apartments"
}

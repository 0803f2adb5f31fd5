package model

import (
	"time"
)

// AmenityModel is the GORM-specific struct for the 'amenities' table.
type AmenityModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(255);not null;unique"`
	Description *string `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AmenityModel) TableName() string {
	return "amenities"
}

// FurnishingModel is the GORM-specific struct for the 'furnishings' table.
type FurnishingModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(255);not null;unique"`
	Description *string `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (FurnishingModel) TableName() string {
	return "furnishings"
}

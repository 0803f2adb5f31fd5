package model

import (
	"time"
)

// EstateModel is the GORM-specific struct for the 'estates' table.
type EstateModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(255);not null"`
	Address     string  `gorm:"type:varchar(255);not null"`
	Size        *string `gorm:"type:varchar(100)"`
	Description *string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Blocks []BlockModel `gorm:"foreignKey:EstateID"`
}

// TableName explicitly sets the table name for GORM.
func (EstateModel) TableName() string {
	return "estates"
}

// BlockModel is the GORM-specific struct for the 'blocks' table.
type BlockModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	EstateID    int64   `gorm:"not null;index"`
	Name        string  `gorm:"type:varchar(255);not null"`
	Description *string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Apartments []ApartmentModel `gorm:"foreignKey:BlockID"`
}

// TableName explicitly sets the table name for GORM.
func (BlockModel) TableName() string {
	return "blocks"
}

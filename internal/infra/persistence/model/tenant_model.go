package model

import (
	"time"
)

// TenantTypeModel is the GORM-specific struct for the 'tenant_types' table.
type TenantTypeModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(100);not null;unique"`
	Description *string `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TenantTypeModel) TableName() string {
	return "tenant_types"
}

// TenantModel is the GORM-specific struct for the 'tenants' table.
// ApartmentID carries a unique index so the database rejects two tenants
// assigned to the same apartment.
type TenantModel struct {
	ID               int64   `gorm:"primaryKey;autoIncrement"`
	FullName         string  `gorm:"type:varchar(255);not null"`
	Email            string  `gorm:"type:varchar(255);not null"`
	PhoneNumber      *string `gorm:"type:varchar(50)"`
	EmergencyContact *string `gorm:"type:varchar(255)"`
	TenantTypeID     *int64  `gorm:"index"`
	ApartmentID      *int64  `gorm:"uniqueIndex"`
	LeaseStart       *time.Time
	LeaseEnd         *time.Time `gorm:"index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	TenantType *TenantTypeModel `gorm:"foreignKey:TenantTypeID"`
	Apartment  *ApartmentModel  `gorm:"foreignKey:ApartmentID"`
}

// TableName explicitly sets the table name for GORM.
func (TenantModel) TableName() string {
	return "tenants"
}

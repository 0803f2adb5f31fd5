package model

import (
	"time"
)

// ComplaintStatusModel is the GORM-specific struct for the 'complaint_statuses' table.
type ComplaintStatusModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(100);not null;unique"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ComplaintStatusModel) TableName() string {
	return "complaint_statuses"
}

// ComplaintCategoryModel is the GORM-specific struct for the 'complaint_categories' table.
type ComplaintCategoryModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(100);not null;unique"`
	Description *string `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ComplaintCategoryModel) TableName() string {
	return "complaint_categories"
}

// ComplaintModel is the GORM-specific struct for the 'complaints' table.
type ComplaintModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	TenantID    int64     `gorm:"not null;index"`
	CategoryID  *int64    `gorm:"index"`
	StatusID    *int64    `gorm:"index"`
	Title       *string   `gorm:"type:varchar(255)"`
	Description string    `gorm:"type:text;not null"`
	Feedback    *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time

	Tenant   *TenantModel            `gorm:"foreignKey:TenantID"`
	Category *ComplaintCategoryModel `gorm:"foreignKey:CategoryID"`
	Status   *ComplaintStatusModel   `gorm:"foreignKey:StatusID"`
}

// TableName explicitly sets the table name for GORM.
func (ComplaintModel) TableName() string {
	return "complaints"
}

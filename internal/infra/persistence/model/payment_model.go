package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatusModel is the GORM-specific struct for the 'payment_statuses' table.
type PaymentStatusModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(100);not null;unique"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentStatusModel) TableName() string {
	return "payment_statuses"
}

// PaymentModel is the GORM-specific struct for the 'payments' table.
// The composite unique index on (tenant_id, for_month, for_year) keeps a
// tenant to at most one payment per billing period.
type PaymentModel struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	TenantID        int64           `gorm:"not null;index;uniqueIndex:uq_payments_tenant_period"`
	Amount          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	StatusID        *int64          `gorm:"index"`
	DueDate         time.Time       `gorm:"not null;index"`
	PaidAt          *time.Time
	ForMonth        *int    `gorm:"uniqueIndex:uq_payments_tenant_period"`
	ForYear         *int    `gorm:"uniqueIndex:uq_payments_tenant_period"`
	PaymentMethod   *string `gorm:"type:varchar(100)"`
	PaymentType     *string `gorm:"type:varchar(100)"`
	ReferenceNumber *string `gorm:"type:varchar(255)"`
	Notes           *string `gorm:"type:text"`
	CreatedAt       time.Time

	Tenant *TenantModel        `gorm:"foreignKey:TenantID"`
	Status *PaymentStatusModel `gorm:"foreignKey:StatusID"`
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}

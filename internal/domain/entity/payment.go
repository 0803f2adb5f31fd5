// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the settlement state of a payment, e.g. "Paid" or "Pending".
type PaymentStatus struct {
	ID        int64     `json:"id"`         // Unique identifier of the status.
	Name      string    `json:"name"`       // Display name of the status.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the status was registered.
}

// Payment represents a rent payment expected from or made by a tenant.
type Payment struct {
	ID              int64           `json:"id"`               // Unique identifier of the payment.
	TenantID        int64           `json:"tenant_id"`        // The tenant this payment belongs to.
	Tenant          *Tenant         `json:"tenant"`           // Loaded tenant, when preloaded.
	Amount          decimal.Decimal `json:"amount"`           // Payment amount.
	StatusID        *int64          `json:"status_id"`        // Current settlement state.
	Status          *PaymentStatus  `json:"status"`           // Loaded status, when preloaded.
	DueDate         time.Time       `json:"due_date"`         // Date the payment falls due.
	PaidAt          *time.Time      `json:"paid_at"`          // Timestamp of settlement, once paid.
	ForMonth        *int            `json:"for_month"`        // Billing month (1-12).
	ForYear         *int            `json:"for_year"`         // Billing year.
	PaymentMethod   *string         `json:"payment_method"`   // How the payment was made, e.g. "bank transfer".
	PaymentType     *string         `json:"payment_type"`     // Kind of payment, e.g. "rent" or "deposit".
	ReferenceNumber *string         `json:"reference_number"` // External reference for reconciliation.
	Notes           *string         `json:"notes"`            // Free-form notes.
	CreatedAt       time.Time       `json:"created_at"`       // Timestamp of when the payment was recorded.
}

// StatusIs reports whether the payment's status name contains the given
// token, matched case-insensitively. Payments without a status never match.
func (p *Payment) StatusIs(token string) bool {
	if p.Status == nil {
		return false
	}

	return strings.Contains(strings.ToLower(p.Status.Name), strings.ToLower(token))
}

// Overdue reports whether the payment is unpaid and past its due date.
func (p *Payment) Overdue(at time.Time) bool {
	return !p.StatusIs("paid") && p.DueDate.Before(at)
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Invoice struct {
	ID                int32           `json:"id"`
	InvoiceNumber     int64           `json:"invoice_number"`
	CustomerID        string          `json:"customer_id"`
	Status            InvoiceStatus   `json:"status"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	DiscountAmount    decimal.Decimal `json:"discount_amount"`
	TaxAmount         decimal.Decimal `json:"tax_amount"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	PaidAmount        decimal.Decimal `json:"paid_amount"`
	DueAmount         decimal.Decimal `json:"due_amount"`
	TaxRatePercent    decimal.Decimal `json:"tax_rate_percent"`
	AppliedCouponCode *string         `json:"applied_coupon_code,omitempty"`
	CancelReason      *string         `json:"cancel_reason,omitempty"`
	Revision          int32           `json:"revision"`
	Items             []LineItem      `json:"items,omitempty"`
	Payments          []Payment       `json:"payments,omitempty"`
	IdempotencyKey    string          `json:"idempotency_key"`
	WorkflowID        *string         `json:"workflow_id,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

type InvoiceStatus string

const (
	InvoiceStatusDraft           InvoiceStatus = "draft"
	InvoiceStatusPendingApproval InvoiceStatus = "pending_approval"
	InvoiceStatusApproved        InvoiceStatus = "approved"
	InvoiceStatusPartiallyPaid   InvoiceStatus = "partially_paid"
	InvoiceStatusPaid            InvoiceStatus = "paid"
	InvoiceStatusCancelled       InvoiceStatus = "cancelled"
)

// Payable reports whether payments may be recorded against an invoice
// in this status.
func (s InvoiceStatus) Payable() bool {
	return s == InvoiceStatusApproved || s == InvoiceStatusPartiallyPaid
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Coupon struct {
	ID                 int32            `json:"id"`
	Code               string           `json:"code"`
	DiscountKind       DiscountKind     `json:"discount_kind"`
	DiscountValue      decimal.Decimal  `json:"discount_value"`
	Active             bool             `json:"active"`
	ValidFrom          time.Time        `json:"valid_from"`
	ValidUntil         time.Time        `json:"valid_until"`
	MaxTotalUses       int32            `json:"max_total_uses"`
	MaxUsesPerCustomer int32            `json:"max_uses_per_customer"`
	MinPurchaseAmount  decimal.Decimal  `json:"min_purchase_amount"`
	MaxDiscountAmount  *decimal.Decimal `json:"max_discount_amount,omitempty"`

	// Usage counts are derived from the usage history, never stored on the
	// coupon row itself.
	TotalUses    int64 `json:"total_uses"`
	CustomerUses int64 `json:"customer_uses"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DiscountKind string

const (
	DiscountKindPercentage DiscountKind = "percentage"
	DiscountKindFixed      DiscountKind = "fixed"
)

// CouponUsage is one append-only record of a coupon being consumed by an
// approved invoice.
type CouponUsage struct {
	ID              int32           `json:"id"`
	CouponID        int32           `json:"coupon_id"`
	InvoiceID       int32           `json:"invoice_id"`
	CustomerID      string          `json:"customer_id"`
	DiscountApplied decimal.Decimal `json:"discount_applied"`
	UsedAt          time.Time       `json:"used_at"`
}

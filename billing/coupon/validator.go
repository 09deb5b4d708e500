// Package coupon implements coupon validation and discount computation.
// Validation is pure: it never touches usage history, so it is safe to call
// repeatedly and concurrently (e.g. live preview while an invoice is being
// edited). Durably recording a use happens separately, at approval time.
package coupon

import (
	"time"

	"github.com/shopspring/decimal"

	"encore.app/billing/model"
	"encore.app/billing/money"
)

// Reason identifies why a coupon failed validation.
type Reason string

const (
	ReasonInactive                Reason = "coupon_inactive"
	ReasonNotYetValid             Reason = "coupon_not_yet_valid"
	ReasonExpired                 Reason = "coupon_expired"
	ReasonGlobalLimitReached      Reason = "global_limit_reached"
	ReasonPerCustomerLimitReached Reason = "per_customer_limit_reached"
	ReasonBelowMinimumPurchase    Reason = "below_minimum_purchase"
)

// Result is the outcome of validating a coupon against a purchase.
type Result struct {
	Valid          bool            `json:"valid"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Reason         Reason          `json:"reason,omitempty"`
}

// Validate checks a coupon against its time window, usage caps, and minimum
// purchase, in order, short-circuiting on the first failure. On success the
// discount amount is computed from the coupon's kind and value against the
// purchase amount.
func Validate(c *model.Coupon, purchaseAmount decimal.Decimal, now time.Time) Result {
	if !c.Active {
		return failure(ReasonInactive)
	}
	// Zero bounds mean the window is open on that side.
	if !c.ValidFrom.IsZero() && now.Before(c.ValidFrom) {
		return failure(ReasonNotYetValid)
	}
	if !c.ValidUntil.IsZero() && now.After(c.ValidUntil) {
		return failure(ReasonExpired)
	}
	if c.MaxTotalUses > 0 && c.TotalUses >= int64(c.MaxTotalUses) {
		return failure(ReasonGlobalLimitReached)
	}
	if c.MaxUsesPerCustomer > 0 && c.CustomerUses >= int64(c.MaxUsesPerCustomer) {
		return failure(ReasonPerCustomerLimitReached)
	}
	if purchaseAmount.LessThan(c.MinPurchaseAmount) {
		return failure(ReasonBelowMinimumPurchase)
	}

	return Result{
		Valid:          true,
		DiscountAmount: Discount(c, purchaseAmount),
	}
}

// Discount computes the discount a coupon yields against an amount,
// regardless of eligibility. Percentage coupons honor the optional cap;
// both kinds clamp at the amount itself.
func Discount(c *model.Coupon, amount decimal.Decimal) decimal.Decimal {
	switch c.DiscountKind {
	case model.DiscountKindPercentage:
		return money.ApplyPercentageDiscount(amount, c.DiscountValue, c.MaxDiscountAmount)
	case model.DiscountKindFixed:
		return money.ApplyFixedDiscount(amount, c.DiscountValue)
	default:
		return decimal.Zero
	}
}

func failure(reason Reason) Result {
	return Result{Valid: false, DiscountAmount: decimal.Zero, Reason: reason}
}

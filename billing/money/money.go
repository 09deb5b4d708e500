// Package money holds the fixed-precision arithmetic used by invoice and
// coupon calculations. All helpers operate on decimal values at full
// precision; rounding to the currency's two decimal places happens only at
// the display/persistence boundary via Round.
package money

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ApplyPercentageDiscount returns the discount for a percentage-kind coupon:
// amount * percent / 100, optionally capped. The result never exceeds the
// amount itself, so a discount can never drive a total negative.
func ApplyPercentageDiscount(amount, percent decimal.Decimal, cap *decimal.Decimal) decimal.Decimal {
	discount := amount.Mul(percent).Div(hundred)
	if cap != nil && discount.GreaterThan(*cap) {
		discount = *cap
	}
	if discount.GreaterThan(amount) {
		return amount
	}
	return discount
}

// ApplyFixedDiscount returns the discount for a fixed-kind coupon, clamped
// to the amount so the total cannot go negative.
func ApplyFixedDiscount(amount, fixed decimal.Decimal) decimal.Decimal {
	if fixed.GreaterThan(amount) {
		return amount
	}
	return fixed
}

// ExtractInclusiveTax back-calculates the tax component of a tax-inclusive
// amount: amount * rate / (100 + rate). For 18% GST an inclusive 118.00
// carries exactly 18.00 of tax.
func ExtractInclusiveTax(amount, ratePercent decimal.Decimal) decimal.Decimal {
	if amount.IsZero() || ratePercent.IsZero() {
		return decimal.Zero
	}
	return amount.Mul(ratePercent).Div(hundred.Add(ratePercent))
}

// Round rounds a monetary value to two decimal places, half away from zero.
// Intermediate arithmetic stays at full precision; call this only when a
// value is persisted or rendered.
func Round(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

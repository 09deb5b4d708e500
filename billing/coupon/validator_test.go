package coupon

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"encore.app/billing/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func baseCoupon() *model.Coupon {
	return &model.Coupon{
		ID:                 1,
		Code:               "WELCOME10",
		DiscountKind:       model.DiscountKindPercentage,
		DiscountValue:      dec("10"),
		Active:             true,
		ValidFrom:          time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		ValidUntil:         time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC),
		MaxTotalUses:       100,
		MaxUsesPerCustomer: 2,
		MinPurchaseAmount:  dec("500"),
	}
}

func TestValidate(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name             string
		mutate           func(c *model.Coupon)
		purchase         string
		at               time.Time
		expectValid      bool
		expectedReason   Reason
		expectedDiscount string
	}{
		{
			name:             "happy_case_percentage",
			purchase:         "1000",
			at:               now,
			expectValid:      true,
			expectedDiscount: "100",
		},
		{
			name: "happy_case_fixed",
			mutate: func(c *model.Coupon) {
				c.DiscountKind = model.DiscountKindFixed
				c.DiscountValue = dec("100")
			},
			purchase:         "1000",
			at:               now,
			expectValid:      true,
			expectedDiscount: "100",
		},
		{
			name: "percentage_capped",
			mutate: func(c *model.Coupon) {
				cap := dec("50")
				c.MaxDiscountAmount = &cap
			},
			purchase:         "1000",
			at:               now,
			expectValid:      true,
			expectedDiscount: "50",
		},
		{
			name:           "inactive",
			mutate:         func(c *model.Coupon) { c.Active = false },
			purchase:       "1000",
			at:             now,
			expectedReason: ReasonInactive,
		},
		{
			name:           "not_yet_valid",
			purchase:       "1000",
			at:             time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			expectedReason: ReasonNotYetValid,
		},
		{
			name:           "expired",
			purchase:       "1000",
			at:             time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			expectedReason: ReasonExpired,
		},
		{
			name: "open_ended_window",
			mutate: func(c *model.Coupon) {
				c.ValidFrom = time.Time{}
				c.ValidUntil = time.Time{}
			},
			purchase:         "1000",
			at:               time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
			expectValid:      true,
			expectedDiscount: "100",
		},
		{
			name:           "global_limit_reached",
			mutate:         func(c *model.Coupon) { c.TotalUses = 100 },
			purchase:       "1000",
			at:             now,
			expectedReason: ReasonGlobalLimitReached,
		},
		{
			name:     "global_limit_zero_is_unlimited",
			mutate:   func(c *model.Coupon) { c.MaxTotalUses = 0; c.TotalUses = 100000 },
			purchase: "1000",
			at:       now,

			expectValid:      true,
			expectedDiscount: "100",
		},
		{
			name:           "per_customer_limit_reached",
			mutate:         func(c *model.Coupon) { c.CustomerUses = 2 },
			purchase:       "1000",
			at:             now,
			expectedReason: ReasonPerCustomerLimitReached,
		},
		{
			name:           "below_minimum_purchase",
			purchase:       "499.99",
			at:             now,
			expectedReason: ReasonBelowMinimumPurchase,
		},
		{
			name: "inactive_reported_before_expiry",
			mutate: func(c *model.Coupon) {
				c.Active = false
			},
			purchase:       "1000",
			at:             time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			expectedReason: ReasonInactive,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := baseCoupon()
			if tc.mutate != nil {
				tc.mutate(c)
			}

			result := Validate(c, dec(tc.purchase), tc.at)

			if tc.expectValid {
				assert.True(t, result.Valid)
				assert.Empty(t, result.Reason)
				assert.True(t, dec(tc.expectedDiscount).Equal(result.DiscountAmount),
					"expected discount %s, got %s", tc.expectedDiscount, result.DiscountAmount)
			} else {
				assert.False(t, result.Valid)
				assert.Equal(t, tc.expectedReason, result.Reason)
				assert.True(t, result.DiscountAmount.IsZero())
			}
		})
	}
}

func TestValidateNeverMutatesUsage(t *testing.T) {
	c := baseCoupon()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 10; i++ {
		Validate(c, dec("1000"), now)
	}

	assert.Equal(t, int64(0), c.TotalUses)
	assert.Equal(t, int64(0), c.CustomerUses)
}

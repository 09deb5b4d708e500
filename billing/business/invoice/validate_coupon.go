package invoice

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"

	"encore.app/billing/coupon"
	"encore.app/billing/model"
	"encore.app/billing/repository/coupons"
)

// ValidateCoupon checks a coupon against a prospective purchase without
// consuming a usage slot. Safe to call repeatedly, e.g. for live preview
// while an invoice is being edited.
func (b *business) ValidateCoupon(ctx context.Context, code, customerID string, purchaseAmount decimal.Decimal) (*coupon.Result, error) {
	c, err := b.loadCoupon(ctx, code, customerID)
	if err != nil {
		return nil, err
	}

	result := coupon.Validate(c, purchaseAmount, b.timeNow())
	return &result, nil
}

// loadCoupon fetches a coupon by case-insensitive code together with its
// usage counts, scoped to the given customer.
func (b *business) loadCoupon(ctx context.Context, code, customerID string) (*model.Coupon, error) {
	dbCoupon, err := b.couponRepo.GetCouponByCode(ctx, code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "coupon not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load coupon"}
	}

	totalUses, err := b.couponRepo.CountUsages(ctx, dbCoupon.ID)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to count coupon usage"}
	}

	customerUses, err := b.couponRepo.CountUsagesByCustomer(ctx, coupons.CountUsagesByCustomerParams{
		CouponID:   dbCoupon.ID,
		CustomerID: customerID,
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to count coupon usage"}
	}

	c := convertDBCouponToModel(dbCoupon)
	c.TotalUses = totalUses
	c.CustomerUses = customerUses
	return c, nil
}

package invoice

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/billing/coupon"
	"encore.app/billing/model"
	"encore.app/billing/repository/coupons"
)

func couponFixture() coupons.Coupon {
	return coupons.Coupon{
		ID:                 7,
		Code:               "SAVE10",
		DiscountKind:       string(model.DiscountKindPercentage),
		DiscountValue:      num("10"),
		Active:             true,
		ValidFrom:          timestamptz(testClock.AddDate(0, -1, 0)),
		ValidUntil:         timestamptz(testClock.AddDate(0, 1, 0)),
		MaxTotalUses:       100,
		MaxUsesPerCustomer: 3,
		MinPurchaseAmount:  num("50"),
	}
}

func TestValidateCoupon(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	b, m := newTestBusiness(ctrl)

	m.couponRepo.EXPECT().GetCouponByCode(gomock.Any(), "SAVE10").Return(couponFixture(), nil)
	m.couponRepo.EXPECT().CountUsages(gomock.Any(), int32(7)).Return(int64(5), nil)
	m.couponRepo.EXPECT().CountUsagesByCustomer(gomock.Any(), coupons.CountUsagesByCustomerParams{
		CouponID:   7,
		CustomerID: "cust-1",
	}).Return(int64(1), nil)

	result, err := b.ValidateCoupon(context.Background(), "SAVE10", "cust-1", dec("200"))

	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Reason)
	assert.Equal(t, "20", result.DiscountAmount.String())
}

func TestValidateCouponPerCustomerExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	b, m := newTestBusiness(ctrl)

	m.couponRepo.EXPECT().GetCouponByCode(gomock.Any(), "SAVE10").Return(couponFixture(), nil)
	m.couponRepo.EXPECT().CountUsages(gomock.Any(), int32(7)).Return(int64(5), nil)
	m.couponRepo.EXPECT().CountUsagesByCustomer(gomock.Any(), gomock.Any()).Return(int64(3), nil)

	result, err := b.ValidateCoupon(context.Background(), "SAVE10", "cust-1", dec("200"))

	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, coupon.ReasonPerCustomerLimitReached, result.Reason)
	assert.True(t, result.DiscountAmount.IsZero())
}

func TestValidateCouponNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	b, m := newTestBusiness(ctrl)

	m.couponRepo.EXPECT().GetCouponByCode(gomock.Any(), "NOPE").Return(coupons.Coupon{}, pgx.ErrNoRows)

	result, err := b.ValidateCoupon(context.Background(), "NOPE", "cust-1", dec("200"))

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "coupon not found")
}

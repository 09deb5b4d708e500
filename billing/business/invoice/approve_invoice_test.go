package invoice

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/billing/model"
	"encore.app/billing/repository/coupons"
	"encore.app/billing/repository/invoices"
)

func TestApproveInvoiceWrongState(t *testing.T) {
	testCases := []struct {
		name   string
		status model.InvoiceStatus
	}{
		{name: "draft", status: model.InvoiceStatusDraft},
		{name: "approved", status: model.InvoiceStatusApproved},
		{name: "partially_paid", status: model.InvoiceStatusPartiallyPaid},
		{name: "paid", status: model.InvoiceStatusPaid},
		{name: "cancelled", status: model.InvoiceStatusCancelled},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			b, m := newTestBusiness(ctrl)

			m.stateMachine.EXPECT().ExecuteWithLock(gomock.Any(), int32(1), gomock.Any()).DoAndReturn(
				func(ctx context.Context, id int32, fn func(pgx.Tx, invoices.Invoice) error) error {
					return fn(nil, dbInvoiceFixture(1, tc.status, "900", "0", "900"))
				})

			result, err := b.ApproveInvoice(context.Background(), 1)

			assert.Error(t, err)
			assert.Nil(t, result)
			assert.Contains(t, err.Error(), "invoice is not pending approval")
		})
	}
}

func TestApproveInvoiceWithoutCoupon(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	b, m := newTestBusiness(ctrl)

	current := dbInvoiceFixture(1, model.InvoiceStatusPendingApproval, "900", "0", "900")

	m.stateMachine.EXPECT().ExecuteWithLock(gomock.Any(), int32(1), gomock.Any()).DoAndReturn(
		func(ctx context.Context, id int32, fn func(pgx.Tx, invoices.Invoice) error) error {
			return fn(nil, current)
		})
	m.stateMachine.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx pgx.Tx, arg invoices.UpdateInvoiceStatusParams) (invoices.Invoice, error) {
			assert.Equal(t, string(model.InvoiceStatusApproved), arg.Status)
			assert.Equal(t, current.Revision, arg.Revision)
			updated := current
			updated.Status = arg.Status
			updated.Revision = arg.Revision + 1
			return updated, nil
		})

	result, err := b.ApproveInvoice(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, model.InvoiceStatusApproved, result.Status)
}

func TestApproveInvoiceCommitsCouponUsage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	b, m := newTestBusiness(ctrl)

	current := dbInvoiceFixture(1, model.InvoiceStatusPendingApproval, "900", "0", "900")
	current.AppliedCouponCode = pgtype.Text{String: "FLAT100", Valid: true}
	current.DiscountAmount = num("100")

	dbCoupon := coupons.Coupon{
		ID:                 7,
		Code:               "FLAT100",
		DiscountKind:       string(model.DiscountKindFixed),
		DiscountValue:      num("100"),
		Active:             true,
		MaxTotalUses:       10,
		MaxUsesPerCustomer: 2,
	}

	m.stateMachine.EXPECT().ExecuteWithLock(gomock.Any(), int32(1), gomock.Any()).DoAndReturn(
		func(ctx context.Context, id int32, fn func(pgx.Tx, invoices.Invoice) error) error {
			return fn(nil, current)
		})
	m.couponRepo.EXPECT().WithTx(gomock.Any()).Return(m.couponRepo)
	m.couponRepo.EXPECT().GetCouponByCode(gomock.Any(), "FLAT100").Return(dbCoupon, nil)
	m.couponRepo.EXPECT().GetCouponForUpdate(gomock.Any(), int32(7)).Return(dbCoupon, nil)
	m.couponRepo.EXPECT().CountUsages(gomock.Any(), int32(7)).Return(int64(3), nil)
	m.couponRepo.EXPECT().CountUsagesByCustomer(gomock.Any(), coupons.CountUsagesByCustomerParams{
		CouponID:   7,
		CustomerID: "cust-1",
	}).Return(int64(0), nil)

	var capturedUsage coupons.CreateUsageParams
	m.couponRepo.EXPECT().CreateUsage(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, arg coupons.CreateUsageParams) (coupons.CouponUsage, error) {
			capturedUsage = arg
			return coupons.CouponUsage{ID: 1, CouponID: arg.CouponID, InvoiceID: arg.InvoiceID}, nil
		})
	m.stateMachine.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx pgx.Tx, arg invoices.UpdateInvoiceStatusParams) (invoices.Invoice, error) {
			updated := current
			updated.Status = arg.Status
			return updated, nil
		})

	result, err := b.ApproveInvoice(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, model.InvoiceStatusApproved, result.Status)
	assert.Equal(t, int32(7), capturedUsage.CouponID)
	assert.Equal(t, int32(1), capturedUsage.InvoiceID)
	assert.Equal(t, "cust-1", capturedUsage.CustomerID)
	assert.Equal(t, "100", numericToDecimal(capturedUsage.DiscountApplied).String())
	assert.Equal(t, testClock, capturedUsage.UsedAt.Time)
}

func TestApproveInvoiceCouponLimitReached(t *testing.T) {
	testCases := []struct {
		name          string
		totalUses     int64
		customerUses  int64
		expectedError string
	}{
		{
			name:          "global_limit",
			totalUses:     10,
			expectedError: "coupon global usage limit reached",
		},
		{
			name:          "per_customer_limit",
			totalUses:     3,
			customerUses:  2,
			expectedError: "coupon per-customer usage limit reached",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			b, m := newTestBusiness(ctrl)

			current := dbInvoiceFixture(1, model.InvoiceStatusPendingApproval, "900", "0", "900")
			current.AppliedCouponCode = pgtype.Text{String: "FLAT100", Valid: true}
			current.DiscountAmount = num("100")

			dbCoupon := coupons.Coupon{
				ID:                 7,
				Code:               "FLAT100",
				Active:             true,
				MaxTotalUses:       10,
				MaxUsesPerCustomer: 2,
			}

			m.stateMachine.EXPECT().ExecuteWithLock(gomock.Any(), int32(1), gomock.Any()).DoAndReturn(
				func(ctx context.Context, id int32, fn func(pgx.Tx, invoices.Invoice) error) error {
					return fn(nil, current)
				})
			m.couponRepo.EXPECT().WithTx(gomock.Any()).Return(m.couponRepo)
			m.couponRepo.EXPECT().GetCouponByCode(gomock.Any(), "FLAT100").Return(dbCoupon, nil)
			m.couponRepo.EXPECT().GetCouponForUpdate(gomock.Any(), int32(7)).Return(dbCoupon, nil)
			m.couponRepo.EXPECT().CountUsages(gomock.Any(), int32(7)).Return(tc.totalUses, nil)
			if tc.totalUses < 10 {
				m.couponRepo.EXPECT().CountUsagesByCustomer(gomock.Any(), gomock.Any()).Return(tc.customerUses, nil)
			}

			// The cap re-check inside the approval transaction is the last
			// line of defense: validation at build time saw a free slot, but
			// concurrent approvals may have consumed it since.
			result, err := b.ApproveInvoice(context.Background(), 1)

			assert.Error(t, err)
			assert.Nil(t, result)
			assert.Contains(t, err.Error(), tc.expectedError)
		})
	}
}

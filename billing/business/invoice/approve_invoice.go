package invoice

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/repository/coupons"
	"encore.app/billing/repository/invoices"
)

// ApproveInvoice transitions a pending_approval invoice to approved. This is
// the single point where an applied coupon's usage is durably recorded;
// validation during build never consumed a slot, so repeated recalculation
// cannot double-count.
func (b *business) ApproveInvoice(ctx context.Context, id int32) (*model.Invoice, error) {
	var updated invoices.Invoice

	err := b.stateMachine.ExecuteWithLock(ctx, id, func(tx pgx.Tx, current invoices.Invoice) error {
		if current.Status != string(model.InvoiceStatusPendingApproval) {
			return &errs.Error{Code: errs.FailedPrecondition, Message: "invoice is not pending approval"}
		}

		if current.AppliedCouponCode.Valid {
			if err := b.commitCouponUsage(ctx, tx, current); err != nil {
				return err
			}
		}

		var err error
		updated, err = b.stateMachine.UpdateStatus(ctx, tx, invoices.UpdateInvoiceStatusParams{
			ID:           id,
			Status:       string(model.InvoiceStatusApproved),
			CancelReason: pgtype.Text{Valid: false},
			Revision:     current.Revision,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return convertDBInvoiceToModel(updated), nil
}

// commitCouponUsage records the coupon consumption at most once, inside the
// approval transaction. The coupon row is locked first so the cap re-check
// and the usage insert are one atomic increment-and-check; concurrent
// approvals against an exhausted coupon serialize here and fail the check.
func (b *business) commitCouponUsage(ctx context.Context, tx pgx.Tx, current invoices.Invoice) error {
	txCoupons := b.couponRepo.WithTx(tx)

	dbCoupon, err := txCoupons.GetCouponByCode(ctx, current.AppliedCouponCode.String)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.NotFound, Message: "applied coupon no longer exists"}
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to load coupon"}
	}

	locked, err := txCoupons.GetCouponForUpdate(ctx, dbCoupon.ID)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to lock coupon"}
	}

	totalUses, err := txCoupons.CountUsages(ctx, locked.ID)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to count coupon usage"}
	}
	if locked.MaxTotalUses > 0 && totalUses >= int64(locked.MaxTotalUses) {
		return &errs.Error{Code: errs.FailedPrecondition, Message: "coupon global usage limit reached"}
	}

	customerUses, err := txCoupons.CountUsagesByCustomer(ctx, coupons.CountUsagesByCustomerParams{
		CouponID:   locked.ID,
		CustomerID: current.CustomerID,
	})
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to count coupon usage"}
	}
	if locked.MaxUsesPerCustomer > 0 && customerUses >= int64(locked.MaxUsesPerCustomer) {
		return &errs.Error{Code: errs.FailedPrecondition, Message: "coupon per-customer usage limit reached"}
	}

	_, err = txCoupons.CreateUsage(ctx, coupons.CreateUsageParams{
		CouponID:        locked.ID,
		InvoiceID:       current.ID,
		CustomerID:      current.CustomerID,
		DiscountApplied: current.DiscountAmount,
		UsedAt:          timestamptz(b.timeNow()),
	})
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to record coupon usage"}
	}

	return nil
}

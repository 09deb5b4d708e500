package billing

import (
	"context"

	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type ValidateCouponRequest struct {
	Code           string          `json:"code" validate:"required,max=50"`
	CustomerID     string          `json:"customer_id" validate:"required,max=100"`
	PurchaseAmount decimal.Decimal `json:"purchase_amount"`
}

type ValidateCouponResponse struct {
	Valid          bool            `json:"valid"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Reason         string          `json:"reason,omitempty"`
}

// ValidateCoupon previews a coupon against a purchase amount without
// consuming a usage slot.
//
//encore:api public path=/v1/coupons/validate method=POST
func (s *Service) ValidateCoupon(ctx context.Context, req *ValidateCouponRequest) (*ValidateCouponResponse, error) {
	result, err := s.business.ValidateCoupon(ctx, req.Code, req.CustomerID, req.PurchaseAmount)
	if err != nil {
		rlog.Error("failed to validate coupon", "error", err, "code", req.Code)
		return nil, err
	}

	return &ValidateCouponResponse{
		Valid:          result.Valid,
		DiscountAmount: result.DiscountAmount,
		Reason:         string(result.Reason),
	}, nil
}

// Validate implements validation for ValidateCouponRequest
func (r *ValidateCouponRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	if r.PurchaseAmount.IsNegative() {
		return &errs.Error{Code: errs.InvalidArgument, Message: "purchase_amount must not be negative"}
	}

	return nil
}

package billing

import (
	"context"

	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/business/invoice"
	"encore.app/billing/model"
)

type RecordPaymentRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	Amount            decimal.Decimal `json:"amount"`
	Mode              string          `json:"mode" validate:"required,oneof=cash card bank_transfer digital_wallet cheque"`
	ExternalReference string          `json:"external_reference,omitempty" validate:"max=100"`
}

type RecordPaymentResponse struct {
	Invoice model.Invoice `json:"invoice"`
	Payment model.Payment `json:"payment"`
}

//encore:api public path=/v1/invoices/:id/payments method=POST tag:idempotency
func (s *Service) RecordPayment(ctx context.Context, id int32, req *RecordPaymentRequest) (*RecordPaymentResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice ID"}
	}

	result, err := s.business.RecordPayment(ctx, id, invoice.PaymentParams{
		Amount:            req.Amount,
		Mode:              model.PaymentMode(req.Mode),
		ExternalReference: req.ExternalReference,
	})
	if err != nil {
		rlog.Error("failed to record payment", "error", err, "invoice_id", id)
		return nil, err
	}

	response := &RecordPaymentResponse{
		Invoice: *result,
	}
	if len(result.Payments) > 0 {
		response.Payment = result.Payments[0]
	}
	return response, nil
}

// Validate implements validation for RecordPaymentRequest
func (r *RecordPaymentRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	if r.Amount.LessThanOrEqual(decimal.Zero) {
		return &errs.Error{Code: errs.InvalidArgument, Message: "amount must be positive"}
	}

	return nil
}

package invoice

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/money"
	"encore.app/billing/repository/invoices"
)

// RecordPayment appends one settlement event to an invoice and recomputes
// the paid/due amounts and payment status inside the invoice's locked
// transaction. Payments are append-only: corrections are new events or a
// cancellation, never edits of history. A failed attempt leaves the invoice
// untouched.
func (b *business) RecordPayment(ctx context.Context, id int32, params PaymentParams) (*model.Invoice, error) {
	if params.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "payment amount must be positive"}
	}
	if !params.Mode.Valid() {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "unsupported payment mode"}
	}

	var updated invoices.Invoice
	var recorded invoices.Payment

	err := b.stateMachine.ExecuteWithLock(ctx, id, func(tx pgx.Tx, current invoices.Invoice) error {
		if !model.InvoiceStatus(current.Status).Payable() {
			return &errs.Error{Code: errs.FailedPrecondition, Message: "invoice is not payable"}
		}

		due := numericToDecimal(current.DueAmount)
		if params.Amount.GreaterThan(due) {
			// Overpayment is never accepted; splitting the excess into a
			// credit or refund is a separate flow.
			return &errs.Error{Code: errs.InvalidArgument, Message: "payment exceeds due amount"}
		}

		txRepo := b.invoiceRepo.WithTx(tx)

		createParams := invoices.CreatePaymentParams{
			InvoiceID:     id,
			ReceiptNumber: uuid.NewString(),
			Amount:        decimalToNumeric(money.Round(params.Amount)),
			Mode:          string(params.Mode),
			RecordedAt:    timestamptz(b.timeNow()),
		}
		if params.ExternalReference != "" {
			createParams.ExternalReference = pgtype.Text{String: params.ExternalReference, Valid: true}
		}

		var err error
		recorded, err = txRepo.CreatePayment(ctx, createParams)
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to record payment"}
		}

		// paid is always re-derived from the ledger, never incremented in
		// place, so the stored amounts cannot drift from the payment rows.
		paidNumeric, err := txRepo.SumPayments(ctx, id)
		if err != nil {
			return &errs.Error{Code: errs.Internal, Message: "failed to sum payments"}
		}
		paid := numericToDecimal(paidNumeric)
		total := numericToDecimal(current.TotalAmount)
		newDue := total.Sub(paid)
		if newDue.IsNegative() {
			newDue = decimal.Zero
		}

		updated, err = b.stateMachine.UpdatePayment(ctx, tx, invoices.UpdateInvoicePaymentParams{
			ID:         id,
			Status:     string(derivePaymentStatus(total, paid)),
			PaidAmount: decimalToNumeric(money.Round(paid)),
			DueAmount:  decimalToNumeric(money.Round(newDue)),
			Revision:   current.Revision,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	inv := convertDBInvoiceToModel(updated)
	inv.Payments = []model.Payment{convertDBPaymentToModel(recorded)}
	return inv, nil
}

// derivePaymentStatus is the single source of truth for payment status. No
// other code path sets a payment-derived status, so status and amounts
// cannot drift apart.
func derivePaymentStatus(total, paid decimal.Decimal) model.InvoiceStatus {
	switch {
	case paid.IsZero():
		return model.InvoiceStatusApproved
	case paid.GreaterThanOrEqual(total):
		return model.InvoiceStatusPaid
	default:
		return model.InvoiceStatusPartiallyPaid
	}
}

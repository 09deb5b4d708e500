package invoice

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/repository/invoices"
)

// CancelInvoice marks an invoice cancelled. Allowed only while no money has
// been collected: once a payment exists the invoice is a financial record and
// requires a refund workflow instead. Cancelling an already-cancelled invoice
// is idempotent.
func (b *business) CancelInvoice(ctx context.Context, id int32, reason string) (*model.Invoice, error) {
	var updated invoices.Invoice

	err := b.stateMachine.ExecuteWithLock(ctx, id, func(tx pgx.Tx, current invoices.Invoice) error {
		switch current.Status {
		case string(model.InvoiceStatusCancelled):
			updated = current
			return nil

		case string(model.InvoiceStatusDraft),
			string(model.InvoiceStatusPendingApproval),
			string(model.InvoiceStatusApproved):
			paymentCount, err := b.invoiceRepo.WithTx(tx).CountPayments(ctx, id)
			if err != nil {
				return &errs.Error{Code: errs.Internal, Message: "failed to check invoice payments"}
			}
			if paymentCount > 0 {
				return &errs.Error{Code: errs.FailedPrecondition, Message: "cannot cancel an invoice with recorded payments"}
			}

			updated, err = b.stateMachine.UpdateStatus(ctx, tx, invoices.UpdateInvoiceStatusParams{
				ID:           id,
				Status:       string(model.InvoiceStatusCancelled),
				CancelReason: pgtype.Text{String: reason, Valid: true},
				Revision:     current.Revision,
			})
			return err

		default:
			// partially_paid and paid hold collected money.
			return &errs.Error{Code: errs.FailedPrecondition, Message: "cannot cancel a settled invoice"}
		}
	})
	if err != nil {
		return nil, err
	}

	return convertDBInvoiceToModel(updated), nil
}

package invoice

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/repository/invoices"
)

// SubmitForApproval transitions a draft invoice to pending_approval.
func (b *business) SubmitForApproval(ctx context.Context, id int32) (*model.Invoice, error) {
	var updated invoices.Invoice

	err := b.stateMachine.ExecuteWithLock(ctx, id, func(tx pgx.Tx, current invoices.Invoice) error {
		if current.Status != string(model.InvoiceStatusDraft) {
			return &errs.Error{Code: errs.FailedPrecondition, Message: "invoice has already been submitted"}
		}

		var err error
		updated, err = b.stateMachine.UpdateStatus(ctx, tx, invoices.UpdateInvoiceStatusParams{
			ID:           id,
			Status:       string(model.InvoiceStatusPendingApproval),
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

package invoice

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/repository/invoices"
)

// GetInvoice loads an invoice with its line items and payment ledger.
func (b *business) GetInvoice(ctx context.Context, id int32) (*model.Invoice, error) {
	dbInvoice, err := b.invoiceRepo.GetInvoice(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "invoice not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get invoice"}
	}

	dbItems, err := b.invoiceRepo.ListInvoiceItems(ctx, id)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get invoice items"}
	}

	dbPayments, err := b.invoiceRepo.ListPayments(ctx, id)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get invoice payments"}
	}

	inv := convertDBInvoiceToModel(dbInvoice)
	inv.Items = make([]model.LineItem, len(dbItems))
	for i, dbItem := range dbItems {
		inv.Items[i] = convertDBItemToModel(dbItem)
	}
	inv.Payments = make([]model.Payment, len(dbPayments))
	for i, dbPayment := range dbPayments {
		inv.Payments[i] = convertDBPaymentToModel(dbPayment)
	}

	return inv, nil
}

// SetInvoiceWorkflowID stores the lifecycle workflow handle on the invoice.
func (b *business) SetInvoiceWorkflowID(ctx context.Context, id int32, workflowID string) error {
	err := b.invoiceRepo.UpdateInvoiceWorkflowID(ctx, invoices.UpdateInvoiceWorkflowIDParams{
		ID:         id,
		WorkflowID: pgtype.Text{String: workflowID, Valid: true},
	})
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to store workflow id"}
	}
	return nil
}

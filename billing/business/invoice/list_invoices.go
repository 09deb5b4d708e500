package invoice

import (
	"context"

	"encore.dev/beta/errs"

	"encore.app/billing/model"
	"encore.app/billing/repository/invoices"
)

// ListInvoices returns a page of invoices, newest first, plus the total count.
func (b *business) ListInvoices(ctx context.Context, limit, offset int32) ([]*model.Invoice, int64, error) {
	dbInvoices, err := b.invoiceRepo.ListInvoices(ctx, invoices.ListInvoicesParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to list invoices"}
	}

	totalCount, err := b.invoiceRepo.CountInvoices(ctx)
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to count invoices"}
	}

	result := make([]*model.Invoice, len(dbInvoices))
	for i, dbInvoice := range dbInvoices {
		result[i] = convertDBInvoiceToModel(dbInvoice)
	}

	return result, totalCount, nil
}

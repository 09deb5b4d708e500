package invoice

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"

	"encore.app/billing/coupon"
	"encore.app/billing/model"
	"encore.app/billing/money"
	"encore.app/billing/repository/invoices"
)

// defaultTaxRatePercent is the GST rate applied when the caller does not
// supply one. Unit prices marked tax-inclusive carry this rate embedded.
var defaultTaxRatePercent = decimal.NewFromInt(18)

// BuildInvoice assembles line items into a draft invoice: per-item totals and
// inclusive-tax extraction, coupon validation against the subtotal, and the
// aggregate totals, persisted atomically with a monotonic invoice number.
// Given identical items, coupon state, and clock instant the computed totals
// are identical; validation here never consumes a coupon use.
func (b *business) BuildInvoice(ctx context.Context, params BuildParams) (*model.Invoice, error) {
	if len(params.Items) == 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invoice requires at least one line item"}
	}

	taxRate := params.TaxRatePercent
	if taxRate.IsZero() {
		taxRate = defaultTaxRatePercent
	}

	subtotal := decimal.Zero
	taxTotal := decimal.Zero
	items := make([]model.LineItem, 0, len(params.Items))
	for idx, item := range params.Items {
		prepared, err := b.prepareLineItem(ctx, item, taxRate)
		if err != nil {
			var e *errs.Error
			if errors.As(err, &e) {
				return nil, &errs.Error{Code: e.Code, Message: fmt.Sprintf("line item %d: %s", idx+1, e.Message)}
			}
			return nil, err
		}
		subtotal = subtotal.Add(prepared.LineTotal)
		taxTotal = taxTotal.Add(prepared.TaxAmount)
		items = append(items, *prepared)
	}

	discount := decimal.Zero
	appliedCode := pgtype.Text{}
	if params.CouponCode != "" {
		c, err := b.loadCoupon(ctx, params.CouponCode, params.CustomerID)
		if err != nil {
			return nil, err
		}
		result := coupon.Validate(c, subtotal, b.timeNow())
		if !result.Valid {
			// Surfaced rather than silently ignored: the caller decides
			// whether to rebuild without the coupon.
			return nil, &errs.Error{Code: errs.InvalidArgument, Message: fmt.Sprintf("invalid coupon: %s", result.Reason)}
		}
		discount = result.DiscountAmount
		appliedCode = pgtype.Text{String: c.Code, Valid: true}
	}

	total := subtotal.Sub(discount)

	var created invoices.Invoice
	err := b.stateMachine.RunInTransaction(ctx, func(tx pgx.Tx) error {
		txRepo := b.invoiceRepo.WithTx(tx)

		dbInvoice, err := txRepo.CreateInvoice(ctx, invoices.CreateInvoiceParams{
			CustomerID:        params.CustomerID,
			Status:            string(model.InvoiceStatusDraft),
			Subtotal:          decimalToNumeric(money.Round(subtotal)),
			DiscountAmount:    decimalToNumeric(money.Round(discount)),
			TaxAmount:         decimalToNumeric(money.Round(taxTotal)),
			TotalAmount:       decimalToNumeric(money.Round(total)),
			PaidAmount:        decimalToNumeric(decimal.Zero),
			DueAmount:         decimalToNumeric(money.Round(total)),
			TaxRatePercent:    decimalToNumeric(taxRate),
			AppliedCouponCode: appliedCode,
			IdempotencyKey:    params.IdempotencyKey,
		})
		if err != nil {
			var e *pgconn.PgError
			if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
				return &errs.Error{Code: errs.AlreadyExists, Message: "invoice is duplicated"}
			}
			return &errs.Error{Code: errs.Internal, Message: "failed to create invoice"}
		}

		for idx := range items {
			dbItem, err := txRepo.CreateInvoiceItem(ctx, createItemParams(dbInvoice.ID, items[idx]))
			if err != nil {
				return &errs.Error{Code: errs.Internal, Message: "failed to create invoice item"}
			}
			items[idx] = convertDBItemToModel(dbItem)
		}

		created = dbInvoice
		return nil
	})
	if err != nil {
		return nil, err
	}

	inv := convertDBInvoiceToModel(created)
	inv.Items = items
	return inv, nil
}

// prepareLineItem resolves catalog references, validates the item, and
// computes its derived amounts. Totals are always recomputed here; caller
// supplied totals are never trusted.
func (b *business) prepareLineItem(ctx context.Context, item model.LineItem, taxRate decimal.Decimal) (*model.LineItem, error) {
	switch item.Kind {
	case model.LineItemKindProduct:
		if item.ReferenceID == nil {
			return nil, &errs.Error{Code: errs.InvalidArgument, Message: "product items require a catalog reference"}
		}
		product, err := b.productRepo.GetProduct(ctx, *item.ReferenceID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, &errs.Error{Code: errs.InvalidArgument, Message: "referenced product not found"}
			}
			return nil, &errs.Error{Code: errs.Internal, Message: "failed to resolve product"}
		}
		if !product.Enabled {
			return nil, &errs.Error{Code: errs.InvalidArgument, Message: "referenced product is not available"}
		}
		// Snapshot the catalog name and price now; later catalog edits
		// must not change an issued invoice.
		if item.Name == "" {
			item.Name = product.Name
		}
		if item.UnitPrice.IsZero() {
			item.UnitPrice = numericToDecimal(product.UnitPrice)
		}
	case model.LineItemKindService:
		// Services carry their own name and price.
	default:
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "kind must be product or service"}
	}

	if item.Name == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "name is required"}
	}
	if item.Quantity <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "quantity must be positive"}
	}
	if item.UnitPrice.LessThanOrEqual(decimal.Zero) {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "unit price must be positive"}
	}

	item.LineTotal = item.UnitPrice.Mul(decimal.NewFromInt32(item.Quantity))
	if item.IncludesTax {
		item.TaxAmount = money.ExtractInclusiveTax(item.LineTotal, taxRate)
	} else {
		item.TaxAmount = decimal.Zero
	}

	return &item, nil
}

func createItemParams(invoiceID int32, item model.LineItem) invoices.CreateInvoiceItemParams {
	params := invoices.CreateInvoiceItemParams{
		InvoiceID:   invoiceID,
		Kind:        string(item.Kind),
		Name:        item.Name,
		Quantity:    item.Quantity,
		UnitPrice:   decimalToNumeric(item.UnitPrice),
		IncludesTax: item.IncludesTax,
		LineTotal:   decimalToNumeric(money.Round(item.LineTotal)),
		TaxAmount:   decimalToNumeric(money.Round(item.TaxAmount)),
	}
	if item.ReferenceID != nil {
		params.ReferenceID = pgtype.Int4{Int32: *item.ReferenceID, Valid: true}
	}
	if item.Description != "" {
		params.Description = pgtype.Text{String: item.Description, Valid: true}
	}
	return params
}

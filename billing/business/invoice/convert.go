package invoice

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"encore.app/billing/model"
	"encore.app/billing/repository/coupons"
	"encore.app/billing/repository/invoices"
)

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}

func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric
	// Scan on a decimal string cannot fail for values produced here.
	_ = n.Scan(d.String())
	return n
}

func timestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// convertDBInvoiceToModel converts a database Invoice to a domain model Invoice
func convertDBInvoiceToModel(dbInvoice invoices.Invoice) *model.Invoice {
	inv := &model.Invoice{
		ID:             dbInvoice.ID,
		InvoiceNumber:  dbInvoice.InvoiceNumber,
		CustomerID:     dbInvoice.CustomerID,
		Status:         model.InvoiceStatus(dbInvoice.Status),
		Subtotal:       numericToDecimal(dbInvoice.Subtotal),
		DiscountAmount: numericToDecimal(dbInvoice.DiscountAmount),
		TaxAmount:      numericToDecimal(dbInvoice.TaxAmount),
		TotalAmount:    numericToDecimal(dbInvoice.TotalAmount),
		PaidAmount:     numericToDecimal(dbInvoice.PaidAmount),
		DueAmount:      numericToDecimal(dbInvoice.DueAmount),
		TaxRatePercent: numericToDecimal(dbInvoice.TaxRatePercent),
		Revision:       dbInvoice.Revision,
		IdempotencyKey: dbInvoice.IdempotencyKey,
		CreatedAt:      dbInvoice.CreatedAt.Time,
		UpdatedAt:      dbInvoice.UpdatedAt.Time,
	}

	if dbInvoice.AppliedCouponCode.Valid {
		inv.AppliedCouponCode = &dbInvoice.AppliedCouponCode.String
	}

	if dbInvoice.CancelReason.Valid {
		inv.CancelReason = &dbInvoice.CancelReason.String
	}

	if dbInvoice.WorkflowID.Valid {
		inv.WorkflowID = &dbInvoice.WorkflowID.String
	}

	return inv
}

// convertDBItemToModel converts a database InvoiceItem to a domain model LineItem
func convertDBItemToModel(dbItem invoices.InvoiceItem) model.LineItem {
	item := model.LineItem{
		ID:          dbItem.ID,
		InvoiceID:   dbItem.InvoiceID,
		Kind:        model.LineItemKind(dbItem.Kind),
		Name:        dbItem.Name,
		Quantity:    dbItem.Quantity,
		UnitPrice:   numericToDecimal(dbItem.UnitPrice),
		IncludesTax: dbItem.IncludesTax,
		LineTotal:   numericToDecimal(dbItem.LineTotal),
		TaxAmount:   numericToDecimal(dbItem.TaxAmount),
		CreatedAt:   dbItem.CreatedAt.Time,
	}

	if dbItem.ReferenceID.Valid {
		refID := dbItem.ReferenceID.Int32
		item.ReferenceID = &refID
	}

	if dbItem.Description.Valid {
		item.Description = dbItem.Description.String
	}

	return item
}

// convertDBPaymentToModel converts a database Payment to a domain model Payment
func convertDBPaymentToModel(dbPayment invoices.Payment) model.Payment {
	payment := model.Payment{
		ID:            dbPayment.ID,
		InvoiceID:     dbPayment.InvoiceID,
		ReceiptNumber: dbPayment.ReceiptNumber,
		Amount:        numericToDecimal(dbPayment.Amount),
		Mode:          model.PaymentMode(dbPayment.Mode),
		RecordedAt:    dbPayment.RecordedAt.Time,
		CreatedAt:     dbPayment.CreatedAt.Time,
	}

	if dbPayment.ExternalReference.Valid {
		payment.ExternalReference = &dbPayment.ExternalReference.String
	}

	return payment
}

// convertDBCouponToModel converts a database Coupon to a domain model Coupon.
// Usage counts are loaded separately and attached by the caller.
func convertDBCouponToModel(dbCoupon coupons.Coupon) *model.Coupon {
	c := &model.Coupon{
		ID:                 dbCoupon.ID,
		Code:               dbCoupon.Code,
		DiscountKind:       model.DiscountKind(dbCoupon.DiscountKind),
		DiscountValue:      numericToDecimal(dbCoupon.DiscountValue),
		Active:             dbCoupon.Active,
		ValidFrom:          dbCoupon.ValidFrom.Time,
		ValidUntil:         dbCoupon.ValidUntil.Time,
		MaxTotalUses:       dbCoupon.MaxTotalUses,
		MaxUsesPerCustomer: dbCoupon.MaxUsesPerCustomer,
		MinPurchaseAmount:  numericToDecimal(dbCoupon.MinPurchaseAmount),
		CreatedAt:          dbCoupon.CreatedAt.Time,
		UpdatedAt:          dbCoupon.UpdatedAt.Time,
	}

	if dbCoupon.MaxDiscountAmount.Valid {
		maxDiscount := numericToDecimal(dbCoupon.MaxDiscountAmount)
		c.MaxDiscountAmount = &maxDiscount
	}

	return c
}

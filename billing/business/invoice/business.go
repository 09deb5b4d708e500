package invoice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"encore.app/billing/coupon"
	"encore.app/billing/domain"
	"encore.app/billing/model"
	"encore.app/billing/repository/coupons"
	"encore.app/billing/repository/invoices"
	"encore.app/billing/repository/products"
)

// BuildParams carries the inputs for building a draft invoice.
type BuildParams struct {
	CustomerID     string
	Items          []model.LineItem
	CouponCode     string
	TaxRatePercent decimal.Decimal
	IdempotencyKey string
}

// PaymentParams carries the inputs for recording one settlement event.
type PaymentParams struct {
	Amount            decimal.Decimal
	Mode              model.PaymentMode
	ExternalReference string
}

type Business interface {
	BuildInvoice(ctx context.Context, params BuildParams) (*model.Invoice, error)
	GetInvoice(ctx context.Context, id int32) (*model.Invoice, error)
	ListInvoices(ctx context.Context, limit, offset int32) ([]*model.Invoice, int64, error)
	SubmitForApproval(ctx context.Context, id int32) (*model.Invoice, error)
	ApproveInvoice(ctx context.Context, id int32) (*model.Invoice, error)
	RecordPayment(ctx context.Context, id int32, params PaymentParams) (*model.Invoice, error)
	CancelInvoice(ctx context.Context, id int32, reason string) (*model.Invoice, error)
	ValidateCoupon(ctx context.Context, code, customerID string, purchaseAmount decimal.Decimal) (*coupon.Result, error)
	SetInvoiceWorkflowID(ctx context.Context, id int32, workflowID string) error
}

// business handles invoice building, lifecycle transitions, and the payment
// ledger. All mutations go through the state machine's locked transactions.
type business struct {
	invoiceRepo  invoices.Querier
	couponRepo   coupons.Querier
	productRepo  products.Querier
	stateMachine domain.StateMachine
	now          func() time.Time
}

// NewInvoiceBusiness creates the invoice business layer. The clock defaults
// to time.Now and is injectable for tests.
func NewInvoiceBusiness(
	invoiceRepo invoices.Querier,
	couponRepo coupons.Querier,
	productRepo products.Querier,
	stateMachine domain.StateMachine,
) Business {
	return &business{
		invoiceRepo:  invoiceRepo,
		couponRepo:   couponRepo,
		productRepo:  productRepo,
		stateMachine: stateMachine,
	}
}

func (b *business) timeNow() time.Time {
	if b.now != nil {
		return b.now()
	}
	return time.Now()
}

package billing

import (
	"context"

	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/business/invoice"
	"encore.app/billing/model"
)

type LineItemInput struct {
	Kind        string          `json:"kind" validate:"required,oneof=product service"`
	ReferenceID *int32          `json:"reference_id,omitempty"`
	Name        string          `json:"name" validate:"max=255"`
	Description string          `json:"description" validate:"max=255"`
	Quantity    int32           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	IncludesTax bool            `json:"includes_tax"`
}

type BuildInvoiceRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	CustomerID     string          `json:"customer_id" validate:"required,max=100"`
	Items          []LineItemInput `json:"items" validate:"required,min=1,dive"`
	CouponCode     string          `json:"coupon_code,omitempty" validate:"max=50"`
	TaxRatePercent decimal.Decimal `json:"tax_rate_percent,omitempty"`
}

type InvoiceResponse struct {
	Invoice model.Invoice `json:"invoice"`
}

//encore:api public path=/v1/invoices method=POST tag:idempotency
func (s *Service) BuildInvoice(ctx context.Context, req *BuildInvoiceRequest) (*InvoiceResponse, error) {
	items := make([]model.LineItem, len(req.Items))
	for i, in := range req.Items {
		items[i] = model.LineItem{
			Kind:        model.LineItemKind(in.Kind),
			ReferenceID: in.ReferenceID,
			Name:        in.Name,
			Description: in.Description,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			IncludesTax: in.IncludesTax,
		}
	}

	result, err := s.business.BuildInvoice(ctx, invoice.BuildParams{
		CustomerID:     req.CustomerID,
		Items:          items,
		CouponCode:     req.CouponCode,
		TaxRatePercent: req.TaxRatePercent,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		rlog.Error("failed to build invoice", "error", err, "customer_id", req.CustomerID)
		return nil, err
	}

	return &InvoiceResponse{
		Invoice: *result,
	}, nil
}

// Validate implements validation for BuildInvoiceRequest using go-playground/validator
func (r *BuildInvoiceRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	if r.TaxRatePercent.IsNegative() {
		return &errs.Error{Code: errs.InvalidArgument, Message: "tax_rate_percent must not be negative"}
	}

	return nil
}

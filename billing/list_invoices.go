package billing

import (
	"context"

	"encore.dev/rlog"

	"encore.app/billing/model"
)

type ListInvoicesRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

type ListInvoicesResponse struct {
	Invoices   []model.Invoice `json:"invoices"`
	TotalCount int64           `json:"total_count"`
	Limit      int             `json:"limit"`
	Offset     int             `json:"offset"`
}

//encore:api public path=/v1/invoices method=GET
func (s *Service) ListInvoices(ctx context.Context, req *ListInvoicesRequest) (*ListInvoicesResponse, error) {
	if req.Limit <= 0 {
		req.Limit = 10
	}
	if req.Limit > 100 {
		req.Limit = 100
	}

	invoices, totalCount, err := s.business.ListInvoices(ctx, int32(req.Limit), int32(req.Offset))
	if err != nil {
		rlog.Error("failed to list invoices", "error", err)
		return nil, err
	}

	response := &ListInvoicesResponse{
		Invoices:   make([]model.Invoice, len(invoices)),
		TotalCount: totalCount,
		Limit:      req.Limit,
		Offset:     req.Offset,
	}

	for i, inv := range invoices {
		response.Invoices[i] = *inv
	}

	return response, nil
}

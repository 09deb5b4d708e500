package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/workflow"
)

type CancelInvoiceRequest struct {
	Reason string `json:"reason" validate:"required,max=255"`
}

//encore:api public path=/v1/invoices/:id/cancel method=POST
func (s *Service) CancelInvoice(ctx context.Context, id int32, req *CancelInvoiceRequest) (*InvoiceResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice ID"}
	}

	result, err := s.business.CancelInvoice(ctx, id, req.Reason)
	if err != nil {
		rlog.Error("failed to cancel invoice", "error", err, "id", id)
		return nil, err
	}

	// Signal workflow asynchronously - don't block the response
	if result.WorkflowID != nil {
		workflowID := *result.WorkflowID
		reason := req.Reason
		runAsync("signal-invoice-cancelled", func(ctx context.Context) error {
			return s.temporal.SignalWorkflow(ctx, workflowID, "", workflow.DecisionSignalName, workflow.DecisionSignal{
				Outcome: workflow.DecisionCancelled,
				Reason:  reason,
			})
		})
	}

	return &InvoiceResponse{
		Invoice: *result,
	}, nil
}

// Validate implements validation for CancelInvoiceRequest
func (r *CancelInvoiceRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}

package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/billing/workflow"
)

//encore:api public path=/v1/invoices/:id/approve method=POST
func (s *Service) ApproveInvoice(ctx context.Context, id int32) (*InvoiceResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice ID"}
	}

	result, err := s.business.ApproveInvoice(ctx, id)
	if err != nil {
		rlog.Error("failed to approve invoice", "error", err, "id", id)
		return nil, err
	}

	// Signal workflow asynchronously - don't block the response
	if result.WorkflowID != nil {
		workflowID := *result.WorkflowID
		runAsync("signal-invoice-approved", func(ctx context.Context) error {
			return s.temporal.SignalWorkflow(ctx, workflowID, "", workflow.DecisionSignalName, workflow.DecisionSignal{
				Outcome: workflow.DecisionApproved,
			})
		})
	}

	return &InvoiceResponse{
		Invoice: *result,
	}, nil
}

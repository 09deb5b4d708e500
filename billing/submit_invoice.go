package billing

import (
	"context"
	"fmt"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"encore.app/billing/model"
	"encore.app/billing/workflow"
)

//encore:api public path=/v1/invoices/:id/submit method=POST
func (s *Service) SubmitInvoice(ctx context.Context, id int32) (*InvoiceResponse, error) {
	if id <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid invoice ID"}
	}

	result, err := s.business.SubmitForApproval(ctx, id)
	if err != nil {
		rlog.Error("failed to submit invoice", "error", err, "id", id)
		return nil, err
	}

	// Start the approval-window workflow. The submission itself stands even
	// if the workflow cannot be started; the invoice just loses its
	// auto-expiry.
	if wfErr := s.startApprovalWorkflow(ctx, result); wfErr != nil {
		rlog.Error("workflow start issue", "invoice_id", result.ID, "error", wfErr)
	}

	return &InvoiceResponse{
		Invoice: *result,
	}, nil
}

// startApprovalWorkflow starts the Temporal workflow that expires an
// undecided invoice, and stores the workflow handle on the invoice so later
// decisions can signal it.
func (s *Service) startApprovalWorkflow(ctx context.Context, inv *model.Invoice) error {
	workflowID := fmt.Sprintf("invoice-%d-rev%d", inv.ID, inv.Revision)

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: taskQueue,
	}

	params := workflow.ApprovalWindowParams{
		InvoiceID: inv.ID,
		Window:    workflow.DefaultApprovalWindow,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.ApprovalWindow, params)
	if err != nil {
		// Distinguish AlreadyStarted (benign) vs real failure
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("workflow already started", "invoice_id", inv.ID, "workflow_id", workflowID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", workflowID, err)
	}

	if err := s.business.SetInvoiceWorkflowID(ctx, inv.ID, workflowID); err != nil {
		return fmt.Errorf("store workflow id %s: %w", workflowID, err)
	}
	inv.WorkflowID = &workflowID
	return nil
}

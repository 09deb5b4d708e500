package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// ApprovalWindowParams contains parameters for starting the approval-window workflow
type ApprovalWindowParams struct {
	InvoiceID int32         `json:"invoice_id"`
	Window    time.Duration `json:"window"`
}

// DefaultApprovalWindow bounds how long an invoice may sit in
// pending_approval before it is expired automatically.
const DefaultApprovalWindow = 72 * time.Hour

// ApprovalWindow tracks an invoice through its pending_approval period. It
// waits for a decision signal from the API layer; if none arrives before the
// window elapses, the invoice is cancelled via activity so stale drafts do
// not linger in pending_approval forever.
func ApprovalWindow(ctx workflow.Context, params ApprovalWindowParams) error {
	logger := workflow.GetLogger(ctx)

	window := params.Window
	if window <= 0 {
		window = DefaultApprovalWindow
	}

	logger.Info("Starting approval window workflow", "invoiceID", params.InvoiceID, "window", window)

	timer := workflow.NewTimer(ctx, window)
	decisionCh := workflow.GetSignalChannel(ctx, DecisionSignalName)

	decided := false
	expired := false

	for !decided && !expired {
		selector := workflow.NewSelector(ctx)

		selector.AddReceive(decisionCh, func(c workflow.ReceiveChannel, more bool) {
			var signal DecisionSignal
			c.Receive(ctx, &signal)
			logger.Info("Received invoice decision", "invoiceID", params.InvoiceID, "outcome", signal.Outcome, "decidedBy", signal.DecidedBy)

			switch signal.Outcome {
			case DecisionApproved, DecisionCancelled:
				decided = true
			default:
				// Unknown outcomes keep the window open.
				logger.Warn("Ignoring unknown decision outcome", "invoiceID", params.InvoiceID, "outcome", signal.Outcome)
			}
		})

		selector.AddFuture(timer, func(f workflow.Future) {
			logger.Info("Approval window elapsed, expiring invoice", "invoiceID", params.InvoiceID)

			err := expireInvoice(ctx, params.InvoiceID)
			if err != nil {
				logger.Error("Failed to expire invoice", "invoiceID", params.InvoiceID, "error", err)
			} else {
				logger.Info("Successfully expired invoice", "invoiceID", params.InvoiceID)
			}
			expired = true
		})

		selector.Select(ctx)
	}

	logger.Info("Approval window workflow completed", "invoiceID", params.InvoiceID, "decided", decided, "expired", expired)
	return nil
}

// expireInvoice executes the CancelExpiredInvoice activity
func expireInvoice(ctx workflow.Context, invoiceID int32) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    15 * time.Second,
			MaximumAttempts:    6,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, CancelExpiredInvoiceActivity, invoiceID).Get(ctx, nil)
}

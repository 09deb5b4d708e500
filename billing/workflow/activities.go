package workflow

import (
	"context"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.app/billing/business/invoice"
	"encore.app/billing/model"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	InvoiceBusiness invoice.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(invoiceBusiness invoice.Business) {
	activityDeps = &ActivityDependencies{
		InvoiceBusiness: invoiceBusiness,
	}
}

// CancelExpiredInvoiceActivity cancels an invoice whose approval window
// elapsed without a decision. The invoice is re-read first: if a decision
// raced the timer and the invoice already left pending_approval, the expiry
// is a no-op rather than an error.
func CancelExpiredInvoiceActivity(ctx context.Context, invoiceID int32) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing expired invoice", "invoiceID", invoiceID)

	if activityDeps == nil || activityDeps.InvoiceBusiness == nil {
		logger.Error("Activity dependencies not set")
		return temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	current, err := activityDeps.InvoiceBusiness.GetInvoice(ctx, invoiceID)
	if err != nil {
		logger.Error("Failed to load invoice", "invoiceID", invoiceID, "error", err)
		return err
	}

	if current.Status != model.InvoiceStatusPendingApproval {
		logger.Info("Invoice already decided, skipping expiry", "invoiceID", invoiceID, "status", current.Status)
		return nil
	}

	_, err = activityDeps.InvoiceBusiness.CancelInvoice(ctx, invoiceID, "approval window expired")
	if err != nil {
		logger.Error("Failed to cancel expired invoice", "invoiceID", invoiceID, "error", err)
		return err
	}

	logger.Info("Successfully cancelled expired invoice", "invoiceID", invoiceID)
	return nil
}

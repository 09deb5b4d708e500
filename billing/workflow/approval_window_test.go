package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/testsuite"
	"go.uber.org/mock/gomock"

	invoicemock "encore.app/billing/mocks/business/invoice_business"
	"encore.app/billing/model"
)

func newWorkflowEnv(t *testing.T) (*testsuite.TestWorkflowEnvironment, *invoicemock.MockBusiness) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockBiz := invoicemock.NewMockBusiness(ctrl)
	SetActivityDependencies(mockBiz)

	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterActivity(CancelExpiredInvoiceActivity)
	return env, mockBiz
}

func TestApprovalWindowWorkflow_DecisionBeforeDeadline(t *testing.T) {
	env, _ := newWorkflowEnv(t)

	// An approval signal stops the timer; no activity runs.
	env.RegisterDelayedCallback(func() {
		env.SignalWorkflow(DecisionSignalName, DecisionSignal{Outcome: DecisionApproved, DecidedBy: "manager-1"})
	}, time.Hour)

	params := ApprovalWindowParams{InvoiceID: 101, Window: 72 * time.Hour}
	env.ExecuteWorkflow(ApprovalWindow, params)
	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}

func TestApprovalWindowWorkflow_ExpiresPendingInvoice(t *testing.T) {
	env, mockBiz := newWorkflowEnv(t)

	invoiceID := int32(202)
	mockBiz.EXPECT().GetInvoice(gomock.Any(), invoiceID).Return(
		&model.Invoice{ID: invoiceID, Status: model.InvoiceStatusPendingApproval}, nil)
	mockBiz.EXPECT().CancelInvoice(gomock.Any(), invoiceID, "approval window expired").Return(
		&model.Invoice{ID: invoiceID, Status: model.InvoiceStatusCancelled}, nil)

	params := ApprovalWindowParams{InvoiceID: invoiceID, Window: time.Hour}
	env.ExecuteWorkflow(ApprovalWindow, params)
	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}

func TestApprovalWindowWorkflow_ExpirySkipsDecidedInvoice(t *testing.T) {
	env, mockBiz := newWorkflowEnv(t)

	// The decision landed in the database but the signal raced the timer:
	// the expiry activity must leave the invoice alone.
	invoiceID := int32(303)
	mockBiz.EXPECT().GetInvoice(gomock.Any(), invoiceID).Return(
		&model.Invoice{ID: invoiceID, Status: model.InvoiceStatusApproved}, nil)

	params := ApprovalWindowParams{InvoiceID: invoiceID, Window: time.Hour}
	env.ExecuteWorkflow(ApprovalWindow, params)
	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}

func TestApprovalWindowWorkflow_CancellationSignal(t *testing.T) {
	env, _ := newWorkflowEnv(t)

	env.RegisterDelayedCallback(func() {
		env.SignalWorkflow(DecisionSignalName, DecisionSignal{Outcome: DecisionCancelled, Reason: "customer withdrew"})
	}, 30*time.Minute)

	params := ApprovalWindowParams{InvoiceID: 404, Window: time.Hour}
	env.ExecuteWorkflow(ApprovalWindow, params)
	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}

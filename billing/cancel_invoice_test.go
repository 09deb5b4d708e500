package billing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.temporal.io/sdk/mocks"
	"go.uber.org/mock/gomock"

	"encore.app/billing/mocks/business/invoice_business"
	"encore.app/billing/model"
	"encore.app/billing/workflow"
)

func TestCancelInvoice(t *testing.T) {
	testCases := []struct {
		name               string
		invoiceID          int32
		request            *CancelInvoiceRequest
		mockBusinessReturn *model.Invoice
		mockBusinessError  error
		expectedError      string
		expectSignal       bool
	}{
		{
			name:      "successful_cancellation_signals_workflow",
			invoiceID: 1,
			request:   &CancelInvoiceRequest{Reason: "customer withdrew order"},
			mockBusinessReturn: &model.Invoice{
				ID:           1,
				Status:       model.InvoiceStatusCancelled,
				CancelReason: stringPtr("customer withdrew order"),
				WorkflowID:   stringPtr("invoice-1-rev3"),
			},
			expectSignal: true,
		},
		{
			name:      "cancellation_of_draft_without_workflow",
			invoiceID: 2,
			request:   &CancelInvoiceRequest{Reason: "ordered by mistake"},
			mockBusinessReturn: &model.Invoice{
				ID:           2,
				Status:       model.InvoiceStatusCancelled,
				CancelReason: stringPtr("ordered by mistake"),
			},
			expectSignal: false,
		},
		{
			name:          "invalid_invoice_id",
			invoiceID:     0,
			request:       &CancelInvoiceRequest{Reason: "whatever"},
			expectedError: "invalid invoice ID",
		},
		{
			name:              "settled_invoice",
			invoiceID:         3,
			request:           &CancelInvoiceRequest{Reason: "too late"},
			mockBusinessError: errors.New("cannot cancel a settled invoice"),
			expectedError:     "cannot cancel a settled invoice",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Override async to run synchronously for deterministic test
			originalRunAsync := runAsync
			runAsync = func(op string, fn func(ctx context.Context) error) { _ = fn(context.Background()) }
			defer func() { runAsync = originalRunAsync }()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockBusiness := invoice_business.NewMockBusiness(ctrl)
			mockTemporal := mocks.NewClient(t)
			service := &Service{business: mockBusiness, temporal: mockTemporal}

			if tc.invoiceID > 0 {
				mockBusiness.EXPECT().
					CancelInvoice(gomock.Any(), tc.invoiceID, tc.request.Reason).
					Return(tc.mockBusinessReturn, tc.mockBusinessError).
					Times(1)
			}

			if tc.expectSignal {
				mockTemporal.On("SignalWorkflow",
					mock.Anything, *tc.mockBusinessReturn.WorkflowID, "",
					workflow.DecisionSignalName,
					workflow.DecisionSignal{Outcome: workflow.DecisionCancelled, Reason: tc.request.Reason},
				).Return(nil).Once()
			}

			response, err := service.CancelInvoice(context.Background(), tc.invoiceID, tc.request)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, response)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, response)
				assert.Equal(t, model.InvoiceStatusCancelled, response.Invoice.Status)
			}
		})
	}
}

// TestCancelInvoiceRequest_Validation tests the validation logic
func TestCancelInvoiceRequest_Validation(t *testing.T) {
	err := (&CancelInvoiceRequest{}).Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "required")

	err = (&CancelInvoiceRequest{Reason: "customer withdrew order"}).Validate()
	assert.NoError(t, err)
}

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
)

func TestSubmitInvoice(t *testing.T) {
	testCases := []struct {
		name               string
		invoiceID          int32
		mockBusinessReturn *model.Invoice
		mockBusinessError  error
		mockTemporalError  error
		expectedError      string
		expectWorkflow     bool
	}{
		{
			name:      "successful_submission_with_workflow",
			invoiceID: 1,
			mockBusinessReturn: &model.Invoice{
				ID:       1,
				Status:   model.InvoiceStatusPendingApproval,
				Revision: 4,
			},
			expectWorkflow: true,
		},
		{
			name:      "successful_submission_workflow_fails",
			invoiceID: 2,
			mockBusinessReturn: &model.Invoice{
				ID:       2,
				Status:   model.InvoiceStatusPendingApproval,
				Revision: 1,
			},
			mockTemporalError: errors.New("temporal unavailable"),
			// API still succeeds even if workflow fails
			expectWorkflow: true,
		},
		{
			name:              "invalid_invoice_id",
			invoiceID:         0,
			expectedError:     "invalid invoice ID",
			expectWorkflow:    false,
			mockBusinessError: nil,
		},
		{
			name:              "not_in_draft",
			invoiceID:         3,
			mockBusinessError: errors.New("invoice has already been submitted"),
			expectedError:     "invoice has already been submitted",
			expectWorkflow:    false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockBusiness := invoice_business.NewMockBusiness(ctrl)
			mockTemporal := mocks.NewClient(t)
			service := &Service{business: mockBusiness, temporal: mockTemporal}

			if tc.invoiceID > 0 {
				mockBusiness.EXPECT().
					SubmitForApproval(gomock.Any(), tc.invoiceID).
					Return(tc.mockBusinessReturn, tc.mockBusinessError).
					Times(1)
			}

			if tc.expectWorkflow {
				mockTemporal.On("ExecuteWorkflow",
					mock.Anything, // context
					mock.Anything, // StartWorkflowOptions
					mock.Anything, // workflow function
					mock.Anything, // workflow args
				).Return(nil, tc.mockTemporalError)

				if tc.mockTemporalError == nil {
					mockBusiness.EXPECT().
						SetInvoiceWorkflowID(gomock.Any(), tc.invoiceID, gomock.Any()).
						Return(nil).
						Times(1)
				}
			}

			response, err := service.SubmitInvoice(context.Background(), tc.invoiceID)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, response)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, response)
				assert.Equal(t, model.InvoiceStatusPendingApproval, response.Invoice.Status)
			}
		})
	}
}

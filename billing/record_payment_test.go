package billing

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"encore.app/billing/mocks/business/invoice_business"
	"encore.app/billing/model"
)

func TestRecordPayment(t *testing.T) {
	testCases := []struct {
		name               string
		invoiceID          int32
		request            *RecordPaymentRequest
		mockBusinessReturn *model.Invoice
		mockBusinessError  error
		expectedError      string
	}{
		{
			name:      "successful_payment",
			invoiceID: 1,
			request: &RecordPaymentRequest{
				IdempotencyKey: "pay-key-1",
				Amount:         decimal.RequireFromString("400"),
				Mode:           "card",
			},
			mockBusinessReturn: &model.Invoice{
				ID:         1,
				Status:     model.InvoiceStatusPartiallyPaid,
				PaidAmount: decimal.RequireFromString("400"),
				DueAmount:  decimal.RequireFromString("500"),
				Payments: []model.Payment{
					{ID: 10, ReceiptNumber: "rcpt-1", Amount: decimal.RequireFromString("400"), Mode: model.PaymentModeCard},
				},
			},
		},
		{
			name:      "invalid_invoice_id",
			invoiceID: 0,
			request: &RecordPaymentRequest{
				Amount: decimal.RequireFromString("400"),
				Mode:   "cash",
			},
			expectedError: "invalid invoice ID",
		},
		{
			name:      "overpayment_rejected_by_business",
			invoiceID: 2,
			request: &RecordPaymentRequest{
				Amount: decimal.RequireFromString("1000"),
				Mode:   "cash",
			},
			mockBusinessError: errors.New("payment exceeds due amount"),
			expectedError:     "payment exceeds due amount",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockBusiness := invoice_business.NewMockBusiness(ctrl)
			service := &Service{business: mockBusiness}

			if tc.invoiceID > 0 {
				mockBusiness.EXPECT().
					RecordPayment(gomock.Any(), tc.invoiceID, gomock.Any()).
					Return(tc.mockBusinessReturn, tc.mockBusinessError).
					Times(1)
			}

			response, err := service.RecordPayment(context.Background(), tc.invoiceID, tc.request)

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Nil(t, response)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, response)
				assert.Equal(t, tc.mockBusinessReturn.Status, response.Invoice.Status)
				assert.Equal(t, "rcpt-1", response.Payment.ReceiptNumber)
			}
		})
	}
}

// TestRecordPaymentRequest_Validation tests the validation logic
func TestRecordPaymentRequest_Validation(t *testing.T) {
	testCases := []struct {
		name          string
		request       *RecordPaymentRequest
		expectedError string
	}{
		{
			name:    "valid_request",
			request: &RecordPaymentRequest{Amount: decimal.RequireFromString("100"), Mode: "cash"},
		},
		{
			name:          "missing_mode",
			request:       &RecordPaymentRequest{Amount: decimal.RequireFromString("100")},
			expectedError: "required",
		},
		{
			name:          "unknown_mode",
			request:       &RecordPaymentRequest{Amount: decimal.RequireFromString("100"), Mode: "crypto"},
			expectedError: "oneof",
		},
		{
			name:          "zero_amount",
			request:       &RecordPaymentRequest{Amount: decimal.Zero, Mode: "cash"},
			expectedError: "amount must be positive",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()

			if tc.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

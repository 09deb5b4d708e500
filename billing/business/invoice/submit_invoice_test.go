package invoice

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"encore.app/billing/model"
	"encore.app/billing/repository/invoices"
)

func TestSubmitForApproval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	b, m := newTestBusiness(ctrl)

	current := dbInvoiceFixture(1, model.InvoiceStatusDraft, "900", "0", "900")

	m.stateMachine.EXPECT().ExecuteWithLock(gomock.Any(), int32(1), gomock.Any()).DoAndReturn(
		func(ctx context.Context, id int32, fn func(pgx.Tx, invoices.Invoice) error) error {
			return fn(nil, current)
		})
	m.stateMachine.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx pgx.Tx, arg invoices.UpdateInvoiceStatusParams) (invoices.Invoice, error) {
			assert.Equal(t, string(model.InvoiceStatusPendingApproval), arg.Status)
			assert.Equal(t, current.Revision, arg.Revision)
			updated := current
			updated.Status = arg.Status
			updated.Revision = arg.Revision + 1
			return updated, nil
		})

	result, err := b.SubmitForApproval(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, model.InvoiceStatusPendingApproval, result.Status)
}

func TestSubmitForApprovalWrongState(t *testing.T) {
	testCases := []struct {
		name   string
		status model.InvoiceStatus
	}{
		{name: "pending_approval", status: model.InvoiceStatusPendingApproval},
		{name: "approved", status: model.InvoiceStatusApproved},
		{name: "paid", status: model.InvoiceStatusPaid},
		{name: "cancelled", status: model.InvoiceStatusCancelled},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			b, m := newTestBusiness(ctrl)

			m.stateMachine.EXPECT().ExecuteWithLock(gomock.Any(), int32(1), gomock.Any()).DoAndReturn(
				func(ctx context.Context, id int32, fn func(pgx.Tx, invoices.Invoice) error) error {
					return fn(nil, dbInvoiceFixture(1, tc.status, "900", "0", "900"))
				})

			result, err := b.SubmitForApproval(context.Background(), 1)

			assert.Error(t, err)
			assert.Nil(t, result)
			assert.Contains(t, err.Error(), "invoice has already been submitted")
		})
	}
}

package invoice

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"encore.app/billing/mocks/domain/state_machine"
	"encore.app/billing/mocks/repository/coupon_repo"
	"encore.app/billing/mocks/repository/invoice_repo"
	"encore.app/billing/mocks/repository/product_repo"
	"encore.app/billing/model"
	"encore.app/billing/repository/invoices"
)

var testClock = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func num(s string) pgtype.Numeric {
	var n pgtype.Numeric
	if err := n.Scan(s); err != nil {
		panic(err)
	}
	return n
}

type testMocks struct {
	invoiceRepo  *invoice_repo.MockQuerier
	couponRepo   *coupon_repo.MockQuerier
	productRepo  *product_repo.MockQuerier
	stateMachine *state_machine.MockStateMachine
}

func newTestBusiness(ctrl *gomock.Controller) (*business, *testMocks) {
	m := &testMocks{
		invoiceRepo:  invoice_repo.NewMockQuerier(ctrl),
		couponRepo:   coupon_repo.NewMockQuerier(ctrl),
		productRepo:  product_repo.NewMockQuerier(ctrl),
		stateMachine: state_machine.NewMockStateMachine(ctrl),
	}
	b := &business{
		invoiceRepo:  m.invoiceRepo,
		couponRepo:   m.couponRepo,
		productRepo:  m.productRepo,
		stateMachine: m.stateMachine,
		now:          func() time.Time { return testClock },
	}
	return b, m
}

func dbInvoiceFixture(id int32, status model.InvoiceStatus, total, paid, due string) invoices.Invoice {
	return invoices.Invoice{
		ID:            id,
		InvoiceNumber: 1001,
		CustomerID:    "cust-1",
		Status:        string(status),
		Subtotal:      num(total),
		TotalAmount:   num(total),
		PaidAmount:    num(paid),
		DueAmount:     num(due),
		Revision:      3,
	}
}

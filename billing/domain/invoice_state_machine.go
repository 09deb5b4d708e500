package domain

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.dev/beta/errs"

	"encore.app/billing/repository/invoices"
)

// StateMachine owns transaction boundaries for invoice mutations. Every
// mutating operation runs as one transaction that locks the invoice row,
// giving single-writer-per-invoice semantics even under concurrent requests.
type StateMachine interface {
	// ExecuteWithLock begins a transaction, locks the invoice row with
	// SELECT FOR UPDATE, and runs fn with the open transaction and the
	// locked row. fn returning an error rolls the transaction back.
	ExecuteWithLock(ctx context.Context, invoiceID int32, fn func(tx pgx.Tx, current invoices.Invoice) error) error

	// RunInTransaction runs fn within a plain transaction, for multi-row
	// writes that create rather than mutate (invoice + items).
	RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error

	// UpdateStatus performs the revision-checked status transition inside
	// the given transaction.
	UpdateStatus(ctx context.Context, tx pgx.Tx, arg invoices.UpdateInvoiceStatusParams) (invoices.Invoice, error)

	// UpdatePayment performs the revision-checked paid/due/status update
	// inside the given transaction.
	UpdatePayment(ctx context.Context, tx pgx.Tx, arg invoices.UpdateInvoicePaymentParams) (invoices.Invoice, error)
}

// InvoiceStateMachine is the pgx-backed StateMachine.
type InvoiceStateMachine struct {
	db          *pgxpool.Pool
	invoiceRepo *invoices.Queries
}

func NewInvoiceStateMachine(db *pgxpool.Pool, invoiceRepo *invoices.Queries) *InvoiceStateMachine {
	return &InvoiceStateMachine{
		db:          db,
		invoiceRepo: invoiceRepo,
	}
}

func (sm *InvoiceStateMachine) ExecuteWithLock(ctx context.Context, invoiceID int32, fn func(tx pgx.Tx, current invoices.Invoice) error) error {
	tx, err := sm.db.Begin(ctx)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer tx.Rollback(ctx)

	// The row stays locked until the transaction commits or rolls back.
	current, err := sm.invoiceRepo.WithTx(tx).GetInvoiceForUpdate(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.NotFound, Message: "invoice not found"}
		}
		return &errs.Error{Code: errs.Internal, Message: "failed to lock invoice"}
	}

	if err := fn(tx, current); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to commit state transition"}
	}

	return nil
}

func (sm *InvoiceStateMachine) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := sm.db.Begin(ctx)
	if err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to start transaction"}
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return &errs.Error{Code: errs.Internal, Message: "failed to commit transaction"}
	}

	return nil
}

func (sm *InvoiceStateMachine) UpdateStatus(ctx context.Context, tx pgx.Tx, arg invoices.UpdateInvoiceStatusParams) (invoices.Invoice, error) {
	updated, err := sm.invoiceRepo.WithTx(tx).UpdateInvoiceStatus(ctx, arg)
	if err != nil {
		return invoices.Invoice{}, mapConditionalUpdateErr(err)
	}
	return updated, nil
}

func (sm *InvoiceStateMachine) UpdatePayment(ctx context.Context, tx pgx.Tx, arg invoices.UpdateInvoicePaymentParams) (invoices.Invoice, error) {
	updated, err := sm.invoiceRepo.WithTx(tx).UpdateInvoicePayment(ctx, arg)
	if err != nil {
		return invoices.Invoice{}, mapConditionalUpdateErr(err)
	}
	return updated, nil
}

// mapConditionalUpdateErr translates a vanished row on a revision-checked
// update into a conflict the caller may retry by re-reading. Under the row
// lock this should not fire; the revision check is the backstop.
func mapConditionalUpdateErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return &errs.Error{Code: errs.Aborted, Message: "invoice was modified concurrently"}
	}
	return &errs.Error{Code: errs.Internal, Message: "failed to update invoice"}
}

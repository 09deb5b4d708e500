package billing

import (
	"context"
	"os"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"encore.app/billing/business/invoice"
	"encore.app/billing/domain"
	"encore.app/billing/repository"
	"encore.app/billing/repository/invoices"
	"encore.app/billing/workflow"
)

var invoiceDB = sqldb.NewDatabase("invoicing", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

const taskQueue = "invoice-lifecycle"

//encore:service
type Service struct {
	business invoice.Business
	temporal client.Client
	worker   worker.Worker
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver[*pgxpool.Pool](invoiceDB)

	repo := repository.NewRepository(pgxdb)
	stateMachine := domain.NewInvoiceStateMachine(pgxdb, invoices.New(pgxdb))
	business := invoice.NewInvoiceBusiness(repo.Invoices, repo.Coupons, repo.Products, stateMachine)

	// Activities run inside the worker and call back into the same business
	// layer the API uses.
	workflow.SetActivityDependencies(business)

	temporalHost := os.Getenv("TEMPORAL_HOST_PORT")
	if temporalHost == "" {
		temporalHost = "localhost:7233"
	}
	c, err := client.Dial(client.Options{HostPort: temporalHost})
	if err != nil {
		return nil, err
	}
	rlog.Info("connected to temporal", "host", temporalHost)

	w := worker.New(c, taskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.ApprovalWindow)
	w.RegisterActivity(workflow.CancelExpiredInvoiceActivity)
	if err := w.Start(); err != nil {
		c.Close()
		return nil, err
	}

	return &Service{
		business: business,
		temporal: c,
		worker:   w,
	}, nil
}

func (s *Service) Shutdown(force context.Context) {
	s.worker.Stop()
	s.temporal.Close()
}

package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"encore.app/billing/repository/coupons"
	"encore.app/billing/repository/invoices"
	"encore.app/billing/repository/products"
)

// Repository combines all domain-specific repositories
type Repository struct {
	Invoices invoices.Querier
	Coupons  coupons.Querier
	Products products.Querier
}

// NewRepository creates a new Repository with all domain queriers
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Invoices: invoices.New(db),
		Coupons:  coupons.New(db),
		Products: products.New(db),
	}
}

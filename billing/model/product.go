package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the catalog view consulted at invoice-build time. Invoices
// snapshot the name and price, so later catalog edits never change an
// issued invoice.
type Product struct {
	ID        int32           `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Enabled   bool            `json:"enabled"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type LineItem struct {
	ID          int32           `json:"id"`
	InvoiceID   int32           `json:"invoice_id"`
	Kind        LineItemKind    `json:"kind"`
	ReferenceID *int32          `json:"reference_id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Quantity    int32           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	IncludesTax bool            `json:"includes_tax"`
	LineTotal   decimal.Decimal `json:"line_total"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

type LineItemKind string

const (
	LineItemKindProduct LineItemKind = "product"
	LineItemKindService LineItemKind = "service"
)

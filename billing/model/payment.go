package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	ID                int32           `json:"id"`
	InvoiceID         int32           `json:"invoice_id"`
	ReceiptNumber     string          `json:"receipt_number"`
	Amount            decimal.Decimal `json:"amount"`
	Mode              PaymentMode     `json:"mode"`
	ExternalReference *string         `json:"external_reference,omitempty"`
	RecordedAt        time.Time       `json:"recorded_at"`
	CreatedAt         time.Time       `json:"created_at"`
}

type PaymentMode string

const (
	PaymentModeCash          PaymentMode = "cash"
	PaymentModeCard          PaymentMode = "card"
	PaymentModeBankTransfer  PaymentMode = "bank_transfer"
	PaymentModeDigitalWallet PaymentMode = "digital_wallet"
	PaymentModeCheque        PaymentMode = "cheque"
)

// Valid reports whether the mode is one of the supported settlement modes.
func (m PaymentMode) Valid() bool {
	switch m {
	case PaymentModeCash, PaymentModeCard, PaymentModeBankTransfer, PaymentModeDigitalWallet, PaymentModeCheque:
		return true
	}
	return false
}

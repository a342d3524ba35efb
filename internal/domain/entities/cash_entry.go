package entities

import "time"

// CashEntry is one movement of the cash ledger (caixa).
//
// Storage model (SQL):
//   - PK: id (auto increment)
//   - UNIQUE: receipt_number
//
// Entries created from a quote use the quote record number as receipt number.
type CashEntry struct {
	ID            int64     `json:"id"`
	ReceiptNumber string    `json:"receipt_number"`
	Amount        float64   `json:"amount"`
	Date          time.Time `json:"date"`
	Description   *string   `json:"description,omitempty"`
}

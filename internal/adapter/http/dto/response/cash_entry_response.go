package response

import (
	"phone_repair/internal/domain/entities"
	"time"
)

type CashEntryResponse struct {
	ReceiptNumber string    `json:"receipt_number"`
	Amount        float64   `json:"amount"`
	Date          time.Time `json:"date"`
	Description   *string   `json:"description"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func FromCashEntry(e entities.CashEntry) CashEntryResponse {
	return CashEntryResponse{
		ReceiptNumber: e.ReceiptNumber,
		Amount:        e.Amount,
		Date:          e.Date,
		Description:   e.Description,
	}
}

func FromCashEntries(es []entities.CashEntry) []CashEntryResponse {
	out := make([]CashEntryResponse, 0, len(es))
	for _, e := range es {
		out = append(out, FromCashEntry(e))
	}
	return out
}

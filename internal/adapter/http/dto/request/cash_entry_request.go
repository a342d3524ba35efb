package request

import "errors"

var ErrMissingAmount = errors.New("missing amount")

type CashEntryRequest struct {
	ReceiptNumber NumberOrString `json:"receipt_number"`
	Amount        *float64       `json:"amount"`
	Description   *string        `json:"description"`

	LegacyReceiptNumber NumberOrString `json:"numero_comprovante"`
	LegacyAmount        *float64       `json:"valor"`
	LegacyDescription   *string        `json:"descricao"`
}

func (r CashEntryRequest) ResolveReceiptNumber() string {
	return firstNonEmpty(r.ReceiptNumber.String(), r.LegacyReceiptNumber.String())
}

// ResolveAmount fails with ErrMissingAmount when neither amount key was sent.
func (r CashEntryRequest) ResolveAmount() (float64, error) {
	amount := firstNonNil(r.Amount, r.LegacyAmount)
	if amount == nil {
		return 0, ErrMissingAmount
	}
	return *amount, nil
}

func (r CashEntryRequest) ResolveDescription() *string {
	if r.Description != nil {
		return r.Description
	}
	return r.LegacyDescription
}

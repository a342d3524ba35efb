package request

import "phone_repair/internal/usecase"

// RevenueRequest leaves every field optional; defaults are applied by the use case.
type RevenueRequest struct {
	Profit  *float64 `json:"profit"`
	Expense *float64 `json:"expense"`
	Total   *float64 `json:"total"`
	Date    *string  `json:"date"`

	LegacyProfit  *float64 `json:"lucros"`
	LegacyExpense *float64 `json:"despesas"`
	LegacyDate    *string  `json:"data"`
}

func (r RevenueRequest) ToInput() usecase.RevenueInput {
	date := r.Date
	if date == nil {
		date = r.LegacyDate
	}
	return usecase.RevenueInput{
		Profit:  firstNonNil(r.Profit, r.LegacyProfit),
		Expense: firstNonNil(r.Expense, r.LegacyExpense),
		Total:   r.Total,
		Date:    date,
	}
}

package response

import "phone_repair/internal/domain/entities"

type QuoteResponse struct {
	RecordNumber  int64   `json:"record_number"`
	CustomerName  string  `json:"customer_name"`
	Phone         string  `json:"phone"`
	TaxID         string  `json:"tax_id"`
	PostalCode    string  `json:"postal_code"`
	Address       string  `json:"address"`
	Number        string  `json:"number"`
	Neighborhood  string  `json:"neighborhood"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	Description   string  `json:"description"`
	PaymentMethod string  `json:"payment_method"`
	Amount        float64 `json:"amount"`
}

type QuoteCreatedResponse struct {
	Message string        `json:"message"`
	Quote   QuoteResponse `json:"quote"`
}

type RecordNumberResponse struct {
	RecordNumber int64 `json:"record_number"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		RecordNumber:  q.RecordNumber,
		CustomerName:  q.CustomerName,
		Phone:         q.Phone,
		TaxID:         q.TaxID,
		PostalCode:    q.PostalCode,
		Address:       q.Address,
		Number:        q.Number,
		Neighborhood:  q.Neighborhood,
		City:          q.City,
		State:         q.State,
		Description:   q.Description,
		PaymentMethod: q.PaymentMethod,
		Amount:        q.Amount,
	}
}

func FromQuotes(qs []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuote(q))
	}
	return out
}

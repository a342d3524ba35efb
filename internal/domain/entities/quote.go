package entities

// Quote is a service order (orçamento) issued to a customer.
//
// Storage model (SQL):
//   - PK: record_number, allocated from the record sequence.
//
// The customer fields are a snapshot taken when the quote is issued. They are
// not a reference to the customers table and never change afterwards.
type Quote struct {
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

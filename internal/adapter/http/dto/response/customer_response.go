package response

import "phone_repair/internal/domain/entities"

// CustomerResponse is the public projection of a customer; the internal id is not exposed.
type CustomerResponse struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	TaxID        string `json:"tax_id"`
	PostalCode   string `json:"postal_code"`
	Address      string `json:"address"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

type CustomerCreatedResponse struct {
	Message  string           `json:"message"`
	Customer CustomerResponse `json:"customer"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		Name:         c.Name,
		Phone:        c.Phone,
		TaxID:        c.TaxID,
		PostalCode:   c.PostalCode,
		Address:      c.Address,
		Number:       c.Number,
		Neighborhood: c.Neighborhood,
		City:         c.City,
		State:        c.State,
	}
}

func FromCustomers(cs []entities.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCustomer(c))
	}
	return out
}

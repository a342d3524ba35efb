package request

import "phone_repair/internal/domain/entities"

// CustomerRequest is the registration payload. The Portuguese keys sent by the
// original shop front-end are accepted as aliases.
type CustomerRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	TaxID        string `json:"tax_id"`
	PostalCode   string `json:"postal_code"`
	Address      string `json:"address"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`

	LegacyName         string `json:"nome"`
	LegacyPhone        string `json:"telefone"`
	LegacyTaxID        string `json:"cpf"`
	LegacyPostalCode   string `json:"cep"`
	LegacyAddress      string `json:"endereco"`
	LegacyNumber       string `json:"numero"`
	LegacyNeighborhood string `json:"bairro"`
	LegacyCity         string `json:"cidade"`
	LegacyState        string `json:"uf"`
}

func (r CustomerRequest) ToEntity() entities.Customer {
	return entities.Customer{
		Name:         firstNonEmpty(r.Name, r.LegacyName),
		Phone:        firstNonEmpty(r.Phone, r.LegacyPhone),
		TaxID:        firstNonEmpty(r.TaxID, r.LegacyTaxID),
		PostalCode:   firstNonEmpty(r.PostalCode, r.LegacyPostalCode),
		Address:      firstNonEmpty(r.Address, r.LegacyAddress),
		Number:       firstNonEmpty(r.Number, r.LegacyNumber),
		Neighborhood: firstNonEmpty(r.Neighborhood, r.LegacyNeighborhood),
		City:         firstNonEmpty(r.City, r.LegacyCity),
		State:        firstNonEmpty(r.State, r.LegacyState),
	}
}

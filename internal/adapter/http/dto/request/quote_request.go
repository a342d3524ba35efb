package request

import (
	"errors"

	"phone_repair/internal/domain/entities"
)

var ErrMissingRecordNumber = errors.New("missing record number")

// QuoteRequest is an integration-facing payload: it accepts both the English
// keys and the ones posted by the original quote form.
type QuoteRequest struct {
	RecordNumber  NumberOrString `json:"record_number"`
	CustomerName  string         `json:"customer_name"`
	Phone         string         `json:"phone"`
	TaxID         string         `json:"tax_id"`
	PostalCode    string         `json:"postal_code"`
	Address       string         `json:"address"`
	Number        string         `json:"number"`
	Neighborhood  string         `json:"neighborhood"`
	City          string         `json:"city"`
	State         string         `json:"state"`
	Description   string         `json:"description"`
	PaymentMethod string         `json:"payment_method"`
	Amount        *float64       `json:"amount"`

	LegacyRecordNumber  NumberOrString `json:"comprovanteOrcamento"`
	LegacyCustomerName  string         `json:"clienteOrcamento"`
	LegacyPhone         string         `json:"telefone"`
	LegacyTaxID         string         `json:"cpf"`
	LegacyPostalCode    string         `json:"cep"`
	LegacyAddress       string         `json:"endereco"`
	LegacyNumber        string         `json:"numero"`
	LegacyNeighborhood  string         `json:"bairro"`
	LegacyCity          string         `json:"cidade"`
	LegacyState         string         `json:"uf"`
	LegacyDescription   string         `json:"descricaoOrcamento"`
	LegacyPaymentMethod string         `json:"formaDepagementoOrcamento"`
	LegacyAmount        *float64       `json:"valorOrcamento"`
}

func (r QuoteRequest) ResolveRecordNumber() (int64, error) {
	raw := NumberOrString(firstNonEmpty(r.RecordNumber.String(), r.LegacyRecordNumber.String()))
	if raw == "" {
		return 0, ErrMissingRecordNumber
	}
	return raw.Int64()
}

// ToEntity maps the payload; the record number must be resolved separately.
func (r QuoteRequest) ToEntity(recordNumber int64) entities.Quote {
	q := entities.Quote{
		RecordNumber:  recordNumber,
		CustomerName:  firstNonEmpty(r.CustomerName, r.LegacyCustomerName),
		Phone:         firstNonEmpty(r.Phone, r.LegacyPhone),
		TaxID:         firstNonEmpty(r.TaxID, r.LegacyTaxID),
		PostalCode:    firstNonEmpty(r.PostalCode, r.LegacyPostalCode),
		Address:       firstNonEmpty(r.Address, r.LegacyAddress),
		Number:        firstNonEmpty(r.Number, r.LegacyNumber),
		Neighborhood:  firstNonEmpty(r.Neighborhood, r.LegacyNeighborhood),
		City:          firstNonEmpty(r.City, r.LegacyCity),
		State:         firstNonEmpty(r.State, r.LegacyState),
		Description:   firstNonEmpty(r.Description, r.LegacyDescription),
		PaymentMethod: firstNonEmpty(r.PaymentMethod, r.LegacyPaymentMethod),
	}
	if amount := firstNonNil(r.Amount, r.LegacyAmount); amount != nil {
		q.Amount = *amount
	}
	return q
}

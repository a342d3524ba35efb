package entities

import (
	"strings"
	"unicode"
)

// Customer is a registered client of the repair shop.
//
// Storage model (SQL):
//   - PK: id (auto increment)
//   - name is not unique; lookups compare names ignoring case and whitespace.
type Customer struct {
	ID           int64  `json:"id"`
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

// NormalizeName trims and upper-cases a customer name, the form it is stored in.
// Inner whitespace runes (tabs, NBSP) become plain spaces, the only separator
// the SQL side of the lookup strips.
func NormalizeName(name string) string {
	return strings.ToUpper(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, strings.TrimSpace(name)))
}

// NameLookupKey is the form used to match names: upper case with every
// whitespace rune removed.
func NameLookupKey(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, NormalizeName(name))
}

package domain

import "strings"

// SupportedCountries is the set of countries the storefront delivers
// to. Country is the only constrained shipping field; everything else
// is free text validated server-side at order time.
var SupportedCountries = []string{"india"}

// ShippingInfo is the address draft collected before checkout.
type ShippingInfo struct {
	Address string
	City    string
	State   string
	Country string
	PinCode string
}

// Validate checks the country against the supported list. Matching is
// case-insensitive. A draft without a country cannot be saved.
func (s ShippingInfo) Validate() error {
	for _, c := range SupportedCountries {
		if strings.EqualFold(s.Country, c) {
			return nil
		}
	}
	return ErrUnsupportedCountry
}

package model

// Catalog codes are the enum values expected by the downstream catalog item.
// Unknown inputs pass through unchanged so new catalog values need no release.

func CountryCode(country string) string {
	switch Country(country) {
	case CountryIndia:
		return "india"
	case CountryUnitedStates:
		return "united_states"
	case CountryEurope:
		return "europe"
	default:
		return country
	}
}

func CurrencyCode(currency string) string {
	switch Currency(currency) {
	case CurrencyINR:
		return "inr"
	case CurrencyUSD:
		return "usd"
	case CurrencyEUR:
		return "eur"
	default:
		return currency
	}
}

func OfferingCode(offering string) string {
	switch Offering(offering) {
	case OfferingSoilTesting:
		return "soil_testing"
	case OfferingFertilizer:
		return "fertilizer"
	case OfferingSeeds:
		return "seeds"
	case OfferingTractor:
		return "tractor"
	case OfferingIrrigation:
		return "irrigation"
	default:
		return offering
	}
}

// CurrencyFor returns the fixed currency of a country, or "" when there is none.
func CurrencyFor(country Country) Currency {
	switch country {
	case CountryIndia:
		return CurrencyINR
	case CountryUnitedStates:
		return CurrencyUSD
	case CountryEurope:
		return CurrencyEUR
	default:
		return ""
	}
}

// DocumentVariable names the catalog variable that receives the compliance
// document for a country. ok is false when the country has none.
func DocumentVariable(country string) (name string, ok bool) {
	switch Country(country) {
	case CountryIndia:
		return "gst_file", true
	case CountryEurope:
		return "vat_file", true
	case CountryUnitedStates:
		return "w9_file", true
	default:
		return "", false
	}
}

type DocumentKind string

const (
	DocumentGST     DocumentKind = "GST"
	DocumentVAT     DocumentKind = "VAT"
	DocumentW9      DocumentKind = "W9"
	DocumentGeneric DocumentKind = "generic"
)

type DocumentRequirement struct {
	Kind  DocumentKind
	Label string
}

// RequiredDocument derives the document label and type from the country.
func RequiredDocument(country Country) DocumentRequirement {
	switch country {
	case CountryIndia:
		return DocumentRequirement{Kind: DocumentGST, Label: "GST Document"}
	case CountryEurope:
		return DocumentRequirement{Kind: DocumentVAT, Label: "VAT Document"}
	case CountryUnitedStates:
		return DocumentRequirement{Kind: DocumentW9, Label: "W8/W9 Document"}
	default:
		return DocumentRequirement{Kind: DocumentGeneric, Label: "Upload Document"}
	}
}

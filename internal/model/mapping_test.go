package model

import "testing"

func TestCatalogCodes(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{"india", CountryCode, "India", "india"},
		{"united states", CountryCode, "United States", "united_states"},
		{"europe", CountryCode, "Europe", "europe"},
		{"unknown country passes through", CountryCode, "Brazil", "Brazil"},
		{"inr", CurrencyCode, "INR", "inr"},
		{"usd", CurrencyCode, "USD", "usd"},
		{"eur", CurrencyCode, "EUR", "eur"},
		{"unknown currency passes through", CurrencyCode, "BRL", "BRL"},
		{"soil testing", OfferingCode, "Soil Testing", "soil_testing"},
		{"fertilizer", OfferingCode, "Fertilizer", "fertilizer"},
		{"seeds", OfferingCode, "Seeds", "seeds"},
		{"tractor", OfferingCode, "Tractor", "tractor"},
		{"irrigation", OfferingCode, "Irrigation", "irrigation"},
		{"unknown offering passes through", OfferingCode, "Drones", "Drones"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDocumentVariable(t *testing.T) {
	cases := map[string]string{
		"India":         "gst_file",
		"Europe":        "vat_file",
		"United States": "w9_file",
	}
	for country, want := range cases {
		got, ok := DocumentVariable(country)
		if !ok || got != want {
			t.Errorf("DocumentVariable(%q) = %q, %v; want %q", country, got, ok, want)
		}
	}
	if _, ok := DocumentVariable("Brazil"); ok {
		t.Error("expected no document variable for Brazil")
	}
}

func TestRequiredDocument(t *testing.T) {
	if got := RequiredDocument(CountryIndia); got.Kind != DocumentGST || got.Label != "GST Document" {
		t.Errorf("unexpected India requirement %+v", got)
	}
	if got := RequiredDocument(CountryUnitedStates); got.Kind != DocumentW9 {
		t.Errorf("unexpected US requirement %+v", got)
	}
	if got := RequiredDocument(""); got.Kind != DocumentGeneric || got.Label != "Upload Document" {
		t.Errorf("unexpected fallback requirement %+v", got)
	}
}

func TestAllFieldsCoversValues(t *testing.T) {
	values := VendorSubmission{}.Values()
	fields := AllFields()
	if len(fields) != len(values) {
		t.Fatalf("AllFields has %d keys, Values has %d", len(fields), len(values))
	}
	for _, f := range fields {
		if _, ok := values[f]; !ok {
			t.Errorf("Values missing key %q", f)
		}
	}
	if values[FieldDriverNeeded] != "false" {
		t.Errorf("expected driver_needed to serialize as false, got %q", values[FieldDriverNeeded])
	}
}

package form

import (
	"testing"

	"github.com/nurpe/vendor-onboarding/internal/model"
)

func TestReduceCountryDerivesCurrency(t *testing.T) {
	tests := []struct {
		country string
		want    model.Currency
	}{
		{"India", model.CurrencyINR},
		{"United States", model.CurrencyUSD},
		{"Europe", model.CurrencyEUR},
		{"Brazil", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			state := Reduce(New(), SetField{Name: model.FieldVendorCountry, Value: "India"})
			state = Reduce(state, SetField{Name: model.FieldVendorCountry, Value: tt.country})
			if state.Currency != tt.want {
				t.Errorf("currency = %q, want %q", state.Currency, tt.want)
			}
			if string(state.VendorCountry) != tt.country {
				t.Errorf("country = %q, want %q", state.VendorCountry, tt.country)
			}
		})
	}
}

func TestReduceIgnoresDirectCurrency(t *testing.T) {
	state := Apply(New(),
		SetField{Name: model.FieldVendorCountry, Value: "India"},
		SetField{Name: model.FieldCurrency, Value: "USD"},
	)
	if state.Currency != model.CurrencyINR {
		t.Errorf("expected currency to stay INR, got %q", state.Currency)
	}
}

func filledState() State {
	return Apply(New(),
		SetField{Name: model.FieldFertilizerType, Value: "Urea"},
		SetField{Name: model.FieldFertilizerQuantity, Value: "10"},
		SetField{Name: model.FieldApplicationDate, Value: "2030-01-01"},
		SetField{Name: model.FieldSeedType, Value: "Hybrid"},
		SetField{Name: model.FieldSeedQuality, Value: "High"},
		SetField{Name: model.FieldSeedQuantity, Value: "5"},
		SetField{Name: model.FieldSampleType, Value: "Soil"},
		SetField{Name: model.FieldTestingDate, Value: "2030-01-01"},
		SetField{Name: model.FieldLabAssigned, Value: "AgriTest Solutions"},
		SetField{Name: model.FieldTractorType, Value: "Mini"},
		SetField{Name: model.FieldTractorHours, Value: "3"},
		SetField{Name: model.FieldDriverNeeded, Value: "true"},
		SetField{Name: model.FieldIrrigationType, Value: "Drip"},
		SetField{Name: model.FieldIrrigationQuantity, Value: "2"},
	)
}

func TestReduceOfferingClearsAllDetails(t *testing.T) {
	for _, offering := range append(model.Offerings, "") {
		t.Run(string(offering), func(t *testing.T) {
			state := Reduce(filledState(), SetField{Name: model.FieldServiceOffering, Value: string(offering)})

			if state.ServiceOffering != offering {
				t.Fatalf("offering = %q, want %q", state.ServiceOffering, offering)
			}
			values := state.Values()
			for _, o := range model.Offerings {
				for _, key := range model.DetailFields[o] {
					want := ""
					if key == model.FieldDriverNeeded {
						want = "false"
					}
					if values[key] != want {
						t.Errorf("%s = %q after switching to %q, want %q", key, values[key], offering, want)
					}
				}
			}
		})
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	before := filledState()
	_ = Reduce(before, SetField{Name: model.FieldServiceOffering, Value: "Seeds"})
	if before.Seeds.Type != "Hybrid" {
		t.Error("expected original state to keep its seed type")
	}
}

func TestReduceDriverNeeded(t *testing.T) {
	state := Reduce(New(), SetField{Name: model.FieldDriverNeeded, Value: "true"})
	if !state.Tractor.DriverNeeded {
		t.Fatal("expected driver_needed to be true")
	}
	state = Reduce(state, SetField{Name: model.FieldDriverNeeded, Value: "nope"})
	if state.Tractor.DriverNeeded {
		t.Error("expected unparsable value to clear driver_needed")
	}
}

func TestVisibleFieldsAndDocument(t *testing.T) {
	state := Apply(New(),
		SetField{Name: model.FieldServiceOffering, Value: "Tractor"},
		SetField{Name: model.FieldVendorCountry, Value: "Europe"},
	)

	visible := state.VisibleFields()
	if len(visible) != 3 || visible[0] != model.FieldTractorType {
		t.Errorf("unexpected visible fields %v", visible)
	}
	if doc := state.RequiredDocument(); doc.Kind != model.DocumentVAT {
		t.Errorf("expected VAT document, got %+v", doc)
	}
	if !state.ShowsDocumentUpload() {
		t.Error("expected document upload to be shown once a country is set")
	}
	if New().ShowsDocumentUpload() {
		t.Error("expected no document upload on an empty form")
	}
}

func TestMatchingLabs(t *testing.T) {
	labs := MatchingLabs("agri")
	if len(labs) != 2 {
		t.Fatalf("expected 2 labs matching agri, got %d", len(labs))
	}
	if len(MatchingLabs("")) != len(model.Labs) {
		t.Error("expected empty query to match every lab")
	}
}

package pdf

import (
	"bytes"
	"testing"

	"github.com/nurpe/vendor-onboarding/internal/confirmation"
	"github.com/nurpe/vendor-onboarding/internal/model"
)

func TestGenerateReceipt(t *testing.T) {
	page := confirmation.Build(&confirmation.Payload{
		SubmittedData: model.VendorSubmission{
			VendorName:      "AgroCo",
			ServiceOffering: model.OfferingSeeds,
			VendorCountry:   model.CountryEurope,
			Currency:        model.CurrencyEUR,
			Seeds:           model.SeedDetails{Type: "Hybrid", Quality: "High", Quantity: "50"},
		},
		RequestNumber: "REQ0010001",
		RequestSysID:  "req-1",
	})

	data, err := NewGenerator().Generate(page)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output is not a PDF document")
	}
}

func TestGenerateFallbackReceipt(t *testing.T) {
	data, err := NewGenerator().Generate(confirmation.Build(nil))
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected a document for the fallback page")
	}
}

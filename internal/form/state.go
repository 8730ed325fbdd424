// Package form holds the onboarding form state and the rules derived from
// its two selector fields, vendor_country and service_offering.
package form

import (
	"strconv"
	"strings"

	"github.com/nurpe/vendor-onboarding/internal/model"
)

type State struct {
	model.VendorSubmission
}

// SetField is the only action the form accepts: one field, one new value.
type SetField struct {
	Name  string
	Value string
}

// New returns the empty state a form session starts with.
func New() State {
	return State{}
}

// Reduce applies action to state and returns the next state. Changing the
// country derives the currency; changing the offering clears every detail
// field before the new offering is stored. Unknown names are ignored.
func Reduce(state State, action SetField) State {
	next := state
	s := &next.VendorSubmission

	switch action.Name {
	case model.FieldVendorName:
		s.VendorName = action.Value
	case model.FieldVendorEmail:
		s.VendorEmail = action.Value
	case model.FieldVendorContactNumber:
		s.VendorContactNumber = action.Value
	case model.FieldVendorCountry:
		s.VendorCountry = model.Country(action.Value)
		s.Currency = model.CurrencyFor(s.VendorCountry)
	case model.FieldCurrency:
		// read-only, always derived from the country
	case model.FieldServiceOffering:
		s.Fertilizer = model.FertilizerDetails{}
		s.Seeds = model.SeedDetails{}
		s.SoilTesting = model.SoilTestingDetails{}
		s.Tractor = model.TractorDetails{}
		s.Irrigation = model.IrrigationDetails{}
		s.ServiceOffering = model.Offering(action.Value)
	case model.FieldTaxID:
		s.TaxID = action.Value
	case model.FieldShortDescription:
		s.ShortDescription = action.Value

	case model.FieldFertilizerType:
		s.Fertilizer.Type = action.Value
	case model.FieldFertilizerQuantity:
		s.Fertilizer.Quantity = action.Value
	case model.FieldApplicationDate:
		s.Fertilizer.ApplicationDate = action.Value

	case model.FieldSeedType:
		s.Seeds.Type = action.Value
	case model.FieldSeedQuality:
		s.Seeds.Quality = action.Value
	case model.FieldSeedQuantity:
		s.Seeds.Quantity = action.Value

	case model.FieldSampleType:
		s.SoilTesting.SampleType = action.Value
	case model.FieldTestingDate:
		s.SoilTesting.TestingDate = action.Value
	case model.FieldLabAssigned:
		s.SoilTesting.LabAssigned = action.Value

	case model.FieldTractorType:
		s.Tractor.Type = action.Value
	case model.FieldTractorHours:
		s.Tractor.Hours = action.Value
	case model.FieldDriverNeeded:
		s.Tractor.DriverNeeded = parseBool(action.Value)

	case model.FieldIrrigationType:
		s.Irrigation.EquipmentType = action.Value
	case model.FieldIrrigationQuantity:
		s.Irrigation.Quantity = action.Value
	}

	return next
}

// Apply folds a sequence of actions into state.
func Apply(state State, actions ...SetField) State {
	for _, action := range actions {
		state = Reduce(state, action)
	}
	return state
}

// RequiredDocument is recomputed from the country on every call.
func (s State) RequiredDocument() model.DocumentRequirement {
	return model.RequiredDocument(s.VendorCountry)
}

// VisibleFields lists the detail fields shown for the selected offering.
func (s State) VisibleFields() []string {
	return model.DetailFields[s.ServiceOffering]
}

// ShowsDocumentUpload reports whether the document picker is shown.
func (s State) ShowsDocumentUpload() bool {
	return s.VendorCountry != ""
}

// MatchingLabs filters the reference lab list by a case-insensitive query.
func MatchingLabs(query string) []model.Lab {
	query = strings.ToLower(strings.TrimSpace(query))
	result := make([]model.Lab, 0, len(model.Labs))
	for _, lab := range model.Labs {
		if strings.Contains(strings.ToLower(lab.Name), query) {
			result = append(result, lab)
		}
	}
	return result
}

func parseBool(raw string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	return err == nil && v
}

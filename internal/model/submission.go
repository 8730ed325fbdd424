package model

type Offering string

const (
	OfferingSoilTesting Offering = "Soil Testing"
	OfferingFertilizer  Offering = "Fertilizer"
	OfferingSeeds       Offering = "Seeds"
	OfferingTractor     Offering = "Tractor"
	OfferingIrrigation  Offering = "Irrigation"
)

// Offerings lists the selectable service offerings in form order.
var Offerings = []Offering{
	OfferingSoilTesting,
	OfferingFertilizer,
	OfferingSeeds,
	OfferingTractor,
	OfferingIrrigation,
}

type Country string

const (
	CountryIndia        Country = "India"
	CountryUnitedStates Country = "United States"
	CountryEurope       Country = "Europe"
)

type Currency string

const (
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// Form keys shared by the form, the multipart payload and the backend.
const (
	FieldVendorName          = "vendor_name"
	FieldVendorEmail         = "vendor_email"
	FieldVendorContactNumber = "vendor_contact_number"
	FieldServiceOffering     = "service_offering"
	FieldVendorCountry       = "vendor_country"
	FieldCurrency            = "currency"
	FieldTaxID               = "u_tax_id"
	FieldShortDescription    = "short_description"

	FieldFertilizerType     = "fertilizer_type"
	FieldFertilizerQuantity = "fertilizer_quantity"
	FieldApplicationDate    = "application_date"

	FieldSeedType     = "seed_type"
	FieldSeedQuality  = "seed_quality"
	FieldSeedQuantity = "seed_quantity"

	FieldSampleType  = "sample_type"
	FieldTestingDate = "testing_date"
	FieldLabAssigned = "lab_assigned"

	FieldTractorType  = "tractor_type"
	FieldTractorHours = "tractor_hours"
	FieldDriverNeeded = "driver_needed"

	FieldIrrigationType     = "irrigation_type"
	FieldIrrigationQuantity = "irrigation_quantity"

	// FieldDocument is the multipart part carrying the compliance document.
	FieldDocument = "document"
)

// CommonFields are the fields present for every offering.
var CommonFields = []string{
	FieldVendorName,
	FieldVendorEmail,
	FieldVendorContactNumber,
	FieldServiceOffering,
	FieldVendorCountry,
	FieldCurrency,
	FieldTaxID,
	FieldShortDescription,
}

// DetailFields maps every offering to the keys of its detail record.
var DetailFields = map[Offering][]string{
	OfferingFertilizer:  {FieldFertilizerType, FieldFertilizerQuantity, FieldApplicationDate},
	OfferingSeeds:       {FieldSeedType, FieldSeedQuality, FieldSeedQuantity},
	OfferingSoilTesting: {FieldSampleType, FieldTestingDate, FieldLabAssigned},
	OfferingTractor:     {FieldTractorType, FieldTractorHours, FieldDriverNeeded},
	OfferingIrrigation:  {FieldIrrigationType, FieldIrrigationQuantity},
}

// AllFields returns every form key in submission order.
func AllFields() []string {
	fields := make([]string, 0, len(CommonFields)+16)
	fields = append(fields, CommonFields...)
	for _, offering := range Offerings {
		fields = append(fields, DetailFields[offering]...)
	}
	return fields
}

type FertilizerDetails struct {
	Type            string `json:"fertilizer_type" validate:"required,oneof=Organic Urea NPK Phosphatic"`
	Quantity        string `json:"fertilizer_quantity" validate:"required,minnum=1"`
	ApplicationDate string `json:"application_date" validate:"required,notpast"`
}

type SeedDetails struct {
	Type     string `json:"seed_type" validate:"required,oneof=Hybrid Open-pollinated GMO"`
	Quality  string `json:"seed_quality" validate:"required,oneof=High Medium Low"`
	Quantity string `json:"seed_quantity" validate:"required,minnum=1"`
}

type SoilTestingDetails struct {
	SampleType  string `json:"sample_type" validate:"required,sampletype"`
	TestingDate string `json:"testing_date" validate:"required,notpast"`
	LabAssigned string `json:"lab_assigned" validate:"required,lab"`
}

type TractorDetails struct {
	Type         string `json:"tractor_type" validate:"required,oneof=Mini Medium Heavy"`
	Hours        string `json:"tractor_hours" validate:"required,minnum=1"`
	DriverNeeded bool   `json:"driver_needed"`
}

type IrrigationDetails struct {
	EquipmentType string `json:"irrigation_type"`
	Quantity      string `json:"irrigation_quantity"`
}

// VendorSubmission is the full state of one onboarding form session.
// Numeric and date inputs are kept as entered; validation interprets them.
type VendorSubmission struct {
	VendorName          string   `json:"vendor_name" validate:"required"`
	VendorEmail         string   `json:"vendor_email" validate:"required,email"`
	VendorContactNumber string   `json:"vendor_contact_number" validate:"required"`
	ServiceOffering     Offering `json:"service_offering" validate:"required,offering"`
	VendorCountry       Country  `json:"vendor_country" validate:"required,country"`
	Currency            Currency `json:"currency"`
	TaxID               string   `json:"u_tax_id" validate:"required"`
	ShortDescription    string   `json:"short_description"`

	Fertilizer  FertilizerDetails  `json:"-" validate:"-"`
	Seeds       SeedDetails        `json:"-" validate:"-"`
	SoilTesting SoilTestingDetails `json:"-" validate:"-"`
	Tractor     TractorDetails     `json:"-" validate:"-"`
	Irrigation  IrrigationDetails  `json:"-" validate:"-"`
}

// Details returns the detail record matching the selected offering, or nil.
func (s VendorSubmission) Details() any {
	switch s.ServiceOffering {
	case OfferingFertilizer:
		return s.Fertilizer
	case OfferingSeeds:
		return s.Seeds
	case OfferingSoilTesting:
		return s.SoilTesting
	case OfferingTractor:
		return s.Tractor
	case OfferingIrrigation:
		return s.Irrigation
	default:
		return nil
	}
}

// Values flattens the submission into form keys. Booleans become "true"/"false".
func (s VendorSubmission) Values() map[string]string {
	return map[string]string{
		FieldVendorName:          s.VendorName,
		FieldVendorEmail:         s.VendorEmail,
		FieldVendorContactNumber: s.VendorContactNumber,
		FieldServiceOffering:     string(s.ServiceOffering),
		FieldVendorCountry:       string(s.VendorCountry),
		FieldCurrency:            string(s.Currency),
		FieldTaxID:               s.TaxID,
		FieldShortDescription:    s.ShortDescription,

		FieldFertilizerType:     s.Fertilizer.Type,
		FieldFertilizerQuantity: s.Fertilizer.Quantity,
		FieldApplicationDate:    s.Fertilizer.ApplicationDate,

		FieldSeedType:     s.Seeds.Type,
		FieldSeedQuality:  s.Seeds.Quality,
		FieldSeedQuantity: s.Seeds.Quantity,

		FieldSampleType:  s.SoilTesting.SampleType,
		FieldTestingDate: s.SoilTesting.TestingDate,
		FieldLabAssigned: s.SoilTesting.LabAssigned,

		FieldTractorType:  s.Tractor.Type,
		FieldTractorHours: s.Tractor.Hours,
		FieldDriverNeeded: formatBool(s.Tractor.DriverNeeded),

		FieldIrrigationType:     s.Irrigation.EquipmentType,
		FieldIrrigationQuantity: s.Irrigation.Quantity,
	}
}

func formatBool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// Document is a compliance document picked by the vendor.
type Document struct {
	Name        string
	ContentType string
	Content     []byte
}

// Lab is an entry of the reference lab list used by soil testing.
type Lab struct {
	ID   string
	Name string
}

var Labs = []Lab{
	{ID: "lab_1", Name: "GreenField Agri Lab"},
	{ID: "lab_2", Name: "AgriTest Solutions"},
	{ID: "lab_3", Name: "Soil & Crop Labs"},
}

// SampleTypes are the accepted soil testing sample kinds.
var SampleTypes = []string{"Soil", "Water", "Plant Tissue"}

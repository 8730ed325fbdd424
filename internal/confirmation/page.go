// Package confirmation projects a successful submission into the read-only
// summary shown after the form. It never fetches or stores anything.
package confirmation

import (
	"github.com/nurpe/vendor-onboarding/internal/model"
)

const (
	Title          = "Submission Details"
	Subtitle       = "Here's what you submitted:"
	NotFound       = "No data found. Please fill the form first."
	BackToFormText = "Back to Form"
	BackToFormPath = "/"

	notAvailable = "N/A"
	noFile       = "Not provided"
)

// Payload is the navigation state handed over by a successful submit.
type Payload struct {
	SubmittedData model.VendorSubmission `json:"submittedData"`
	FileName      string                 `json:"fileName,omitempty"`
	RequestNumber string                 `json:"requestNumber"`
	RequestSysID  string                 `json:"requestSysId"`
}

type Line struct {
	Label string
	Value string
}

// Page is the rendered summary. Found is false for the fallback page.
type Page struct {
	Found         bool
	Title         string
	Message       string
	RequestNumber string
	RequestSysID  string
	Common        []Line
	DetailTitle   string
	Details       []Line
	BackLink      Link
}

type Link struct {
	Text string
	Href string
}

// Build returns the fallback page for a nil payload. Otherwise the page holds
// the common fields and only the detail block of the submitted offering.
func Build(payload *Payload) Page {
	back := Link{Text: BackToFormText, Href: BackToFormPath}
	if payload == nil {
		return Page{Title: Title, Message: NotFound, BackLink: back}
	}

	s := payload.SubmittedData
	fileName := payload.FileName
	if fileName == "" {
		fileName = noFile
	}

	page := Page{
		Found:         true,
		Title:         Title,
		Message:       Subtitle,
		RequestNumber: orNotAvailable(payload.RequestNumber),
		RequestSysID:  orNotAvailable(payload.RequestSysID),
		Common: []Line{
			{"Vendor Name", s.VendorName},
			{"Email", s.VendorEmail},
			{"Contact", s.VendorContactNumber},
			{"Service Offering", string(s.ServiceOffering)},
			{"Country", string(s.VendorCountry)},
			{"Currency", string(s.Currency)},
			{"Tax ID", s.TaxID},
			{"Description", s.ShortDescription},
			{"File", fileName},
		},
		BackLink: back,
	}
	page.DetailTitle, page.Details = detailBlock(s)
	return page
}

// CopyText is what the copy action puts on the clipboard.
func (p Page) CopyText() string {
	return p.RequestNumber
}

func (p Page) CopyNotice() string {
	return "Request Number " + p.RequestNumber + " copied to clipboard!"
}

func detailBlock(s model.VendorSubmission) (string, []Line) {
	switch s.ServiceOffering {
	case model.OfferingFertilizer:
		return "Fertilizer", []Line{
			{"Fertilizer Type", s.Fertilizer.Type},
			{"Fertilizer Quantity", s.Fertilizer.Quantity},
			{"Application Date", s.Fertilizer.ApplicationDate},
		}
	case model.OfferingSeeds:
		return "Seeds", []Line{
			{"Seed Type", s.Seeds.Type},
			{"Seed Quality", s.Seeds.Quality},
			{"Seed Quantity", s.Seeds.Quantity},
		}
	case model.OfferingSoilTesting:
		return "Soil Testing", []Line{
			{"Sample Type", s.SoilTesting.SampleType},
			{"Testing Date", s.SoilTesting.TestingDate},
			{"Lab Assigned", s.SoilTesting.LabAssigned},
		}
	case model.OfferingTractor:
		return "Tractor", []Line{
			{"Tractor Type", s.Tractor.Type},
			{"Hours Required", s.Tractor.Hours},
			{"Driver Needed", yesNo(s.Tractor.DriverNeeded)},
		}
	case model.OfferingIrrigation:
		return "Irrigation", []Line{
			{"Irrigation Equipment", s.Irrigation.EquipmentType},
			{"Quantity", s.Irrigation.Quantity},
		}
	default:
		return "", nil
	}
}

func orNotAvailable(value string) string {
	if value == "" {
		return notAvailable
	}
	return value
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

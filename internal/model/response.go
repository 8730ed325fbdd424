package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SubmitResponse is the body of a successful POST /submit.
type SubmitResponse struct {
	Success       bool              `json:"success"`
	Message       string            `json:"message"`
	RequestSysID  string            `json:"requestSysId"`
	RequestNumber string            `json:"requestNumber"`
	ReqItemSysID  *string           `json:"reqItemSysId"`
	Attachment    json.RawMessage   `json:"attachment"`
	SubmittedData map[string]string `json:"submittedData"`
}

// ErrorResponse is the body of a failed POST /submit.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

const (
	SubmitSuccessMessage = "Vendor registration submitted successfully!"
	SubmitFailureMessage = "Failed to submit vendor registration"
)

// SubmissionRecord is one entry of the submission trail.
type SubmissionRecord struct {
	SubmissionID        uuid.UUID `json:"submissionId"`
	VendorName          string    `json:"vendor_name"`
	VendorEmail         string    `json:"vendor_email"`
	VendorContactNumber string    `json:"vendor_contact_number"`
	ServiceOffering     string    `json:"service_offering"`
	VendorCountry       string    `json:"vendor_country"`
	RequestSysID        string    `json:"requestSysId"`
	RequestNumber       string    `json:"requestNumber"`
	ReqItemSysID        *string   `json:"reqItemSysId"`
	AttachmentUploaded  bool      `json:"attachmentUploaded"`
	LoggedAt            time.Time `json:"-"`
}

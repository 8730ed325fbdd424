package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/vendor-onboarding/internal/catalog"
	"github.com/nurpe/vendor-onboarding/internal/model"
)

const defaultMimeType = "application/octet-stream"

type CatalogClient interface {
	OrderNow(ctx context.Context, variables map[string]string) (*catalog.OrderResult, error)
	ListRequestItems(ctx context.Context, requestSysID string) ([]catalog.RequestItem, error)
	UploadAttachment(ctx context.Context, itemSysID, fileName, mimeType string, content io.Reader, size int64) (json.RawMessage, error)
}

// SubmissionLogger records finished attempts. It must not fail the caller.
type SubmissionLogger interface {
	Log(ctx context.Context, record model.SubmissionRecord)
}

type OnboardingService struct {
	catalog CatalogClient
	trail   SubmissionLogger
	log     zerolog.Logger
}

// VendorFields are the common form fields sent to the catalog.
type VendorFields struct {
	VendorName          string `form:"vendor_name"`
	VendorEmail         string `form:"vendor_email"`
	VendorContactNumber string `form:"vendor_contact_number"`
	ServiceOffering     string `form:"service_offering"`
	VendorCountry       string `form:"vendor_country"`
	Currency            string `form:"currency"`
	TaxID               string `form:"u_tax_id"`
	ShortDescription    string `form:"short_description"`
}

// UploadedDocument is a document stored in a temporary file for the
// duration of one submission.
type UploadedDocument struct {
	Path         string
	OriginalName string
	DeclaredType string
}

type SubmitInput struct {
	SubmissionID  uuid.UUID
	Vendor        VendorFields
	SubmittedData map[string]string
	Document      *UploadedDocument
}

type SubmitResult struct {
	RequestSysID  string
	RequestNumber string
	ReqItemSysID  *string
	Attachment    json.RawMessage
	SubmittedData map[string]string
}

func NewOnboardingService(client CatalogClient, trail SubmissionLogger, log zerolog.Logger) *OnboardingService {
	return &OnboardingService{
		catalog: client,
		trail:   trail,
		log:     log,
	}
}

// Submit orders the catalog item, resolves its request item and attaches the
// document when one applies. Steps run strictly in order and nothing is
// rolled back. The temporary document is removed before Submit returns.
func (s *OnboardingService) Submit(ctx context.Context, input SubmitInput) (*SubmitResult, error) {
	defer s.removeUpload(input.SubmissionID, input.Document)

	log := s.log.With().Str("submission_id", input.SubmissionID.String()).Logger()

	order, err := s.catalog.OrderNow(ctx, orderVariables(input.Vendor))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOrderFailed, err)
	}
	log = log.With().Str("request_sys_id", order.SysID).Str("request_number", order.RequestNumber).Logger()
	log.Info().Msg("catalog request created")

	items, err := s.catalog.ListRequestItems(ctx, order.SysID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrItemLookupFailed, err)
	}

	// The catalog gives no ordering guarantee; the first item is the target.
	var reqItemSysID *string
	if len(items) > 0 && items[0].SysID != "" {
		id := items[0].SysID
		reqItemSysID = &id
		if len(items) > 1 {
			log.Warn().Int("items", len(items)).Str("req_item_sys_id", id).Msg("request has several items, using the first")
		}
	} else {
		log.Warn().Msg("no request item found, attachment skipped")
	}

	attachment := s.attach(ctx, log, input, reqItemSysID)

	s.trail.Log(ctx, model.SubmissionRecord{
		SubmissionID:        input.SubmissionID,
		VendorName:          input.Vendor.VendorName,
		VendorEmail:         input.Vendor.VendorEmail,
		VendorContactNumber: input.Vendor.VendorContactNumber,
		ServiceOffering:     input.Vendor.ServiceOffering,
		VendorCountry:       input.Vendor.VendorCountry,
		RequestSysID:        order.SysID,
		RequestNumber:       order.RequestNumber,
		ReqItemSysID:        reqItemSysID,
		AttachmentUploaded:  attachment != nil,
	})

	return &SubmitResult{
		RequestSysID:  order.SysID,
		RequestNumber: order.RequestNumber,
		ReqItemSysID:  reqItemSysID,
		Attachment:    attachment,
		SubmittedData: input.SubmittedData,
	}, nil
}

func (s *OnboardingService) attach(ctx context.Context, log zerolog.Logger, input SubmitInput, reqItemSysID *string) json.RawMessage {
	if input.Document == nil || reqItemSysID == nil {
		return nil
	}
	variable, ok := model.DocumentVariable(input.Vendor.VendorCountry)
	if !ok {
		log.Info().Str("vendor_country", input.Vendor.VendorCountry).Msg("no document variable for country, attachment skipped")
		return nil
	}

	file, err := os.Open(input.Document.Path)
	if err != nil {
		log.Error().Err(err).Msg("open uploaded document")
		return nil
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		log.Error().Err(err).Msg("stat uploaded document")
		return nil
	}

	fileName := variable + "_" + input.Document.OriginalName
	mimeType := detectMimeType(input.Document)

	result, err := s.catalog.UploadAttachment(ctx, *reqItemSysID, fileName, mimeType, file, info.Size())
	if err != nil {
		log.Error().Err(err).Str("file_name", fileName).Msg("attachment upload failed")
		return nil
	}
	log.Info().Str("file_name", fileName).Str("mime_type", mimeType).Msg("attachment uploaded")
	return result
}

func (s *OnboardingService) removeUpload(submissionID uuid.UUID, doc *UploadedDocument) {
	if doc == nil || doc.Path == "" {
		return
	}
	if err := os.Remove(doc.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.log.Warn().Err(err).Str("submission_id", submissionID.String()).Str("path", doc.Path).Msg("remove temporary upload")
	}
}

func orderVariables(v VendorFields) map[string]string {
	return map[string]string{
		"vendor_name":           v.VendorName,
		"vendor_email":          v.VendorEmail,
		"vendor_contact_number": v.VendorContactNumber,
		"service_offering":      model.OfferingCode(v.ServiceOffering),
		"u_vendor_country":      model.CountryCode(v.VendorCountry),
		"u_currency":            model.CurrencyCode(v.Currency),
		"u_tax_id":              v.TaxID,
		"short_description":     v.ShortDescription,
	}
}

// detectMimeType sniffs the stored content and falls back to the type the
// client declared, then to application/octet-stream.
func detectMimeType(doc *UploadedDocument) string {
	detected := ""
	if mtype, err := mimetype.DetectFile(doc.Path); err == nil {
		detected = strings.TrimSpace(strings.SplitN(mtype.String(), ";", 2)[0])
	}
	if detected != "" && detected != defaultMimeType {
		return detected
	}
	if declared := strings.TrimSpace(doc.DeclaredType); declared != "" {
		return declared
	}
	return defaultMimeType
}

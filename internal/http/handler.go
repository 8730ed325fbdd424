package http

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/vendor-onboarding/internal/model"
	"github.com/nurpe/vendor-onboarding/internal/service"
)

type Handler struct {
	onboarding *service.OnboardingService
	uploadDir  string
	log        zerolog.Logger
}

func NewHandler(onboarding *service.OnboardingService, uploadDir string, log zerolog.Logger) *Handler {
	return &Handler{onboarding: onboarding, uploadDir: uploadDir, log: log}
}

func (h *Handler) Register(router *gin.Engine) {
	router.GET("/healthz", h.health)
	router.POST("/submit", h.submit)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) submit(c *gin.Context) {
	submissionID := uuid.New()

	var vendor service.VendorFields
	if err := c.ShouldBind(&vendor); err != nil {
		h.handleError(c, submissionID, fmt.Errorf("%w: %v", service.ErrInvalidInput, err))
		return
	}

	doc, err := h.saveDocument(c, submissionID)
	if err != nil {
		h.handleError(c, submissionID, err)
		return
	}

	h.log.Info().
		Str("submission_id", submissionID.String()).
		Str("vendor_name", vendor.VendorName).
		Str("vendor_country", vendor.VendorCountry).
		Str("service_offering", vendor.ServiceOffering).
		Bool("document", doc != nil).
		Msg("received submission")

	result, err := h.onboarding.Submit(c.Request.Context(), service.SubmitInput{
		SubmissionID:  submissionID,
		Vendor:        vendor,
		SubmittedData: submittedData(c),
		Document:      doc,
	})
	if err != nil {
		h.handleError(c, submissionID, err)
		return
	}

	c.JSON(http.StatusOK, model.SubmitResponse{
		Success:       true,
		Message:       model.SubmitSuccessMessage,
		RequestSysID:  result.RequestSysID,
		RequestNumber: result.RequestNumber,
		ReqItemSysID:  result.ReqItemSysID,
		Attachment:    result.Attachment,
		SubmittedData: result.SubmittedData,
	})
}

// saveDocument stores the optional document part in the upload directory.
// The service removes the file once the submission is handled.
func (h *Handler) saveDocument(c *gin.Context, submissionID uuid.UUID) (*service.UploadedDocument, error) {
	header, err := c.FormFile(model.FieldDocument)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read document: %v", service.ErrInvalidInput, err)
	}

	if err := os.MkdirAll(h.uploadDir, 0o750); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	path := filepath.Join(h.uploadDir, submissionID.String())
	if err := c.SaveUploadedFile(header, path); err != nil {
		return nil, fmt.Errorf("store document: %w", err)
	}

	return &service.UploadedDocument{
		Path:         path,
		OriginalName: filepath.Base(header.Filename),
		DeclaredType: header.Header.Get("Content-Type"),
	}, nil
}

func (h *Handler) handleError(c *gin.Context, submissionID uuid.UUID, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, service.ErrInvalidInput) {
		status = http.StatusBadRequest
	}
	h.log.Error().Err(err).Str("submission_id", submissionID.String()).Msg("submission failed")
	c.JSON(status, model.ErrorResponse{
		Success: false,
		Error:   err.Error(),
		Message: model.SubmitFailureMessage,
	})
}

// submittedData echoes the text fields exactly as posted.
func submittedData(c *gin.Context) map[string]string {
	data := make(map[string]string, len(c.Request.PostForm))
	for key, values := range c.Request.PostForm {
		if len(values) > 0 {
			data[key] = values[0]
		}
	}
	return data
}

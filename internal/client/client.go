// Package client sends a completed form to the onboarding backend and turns
// the answer into what the vendor sees next.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"slices"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"

	"github.com/nurpe/vendor-onboarding/internal/confirmation"
	"github.com/nurpe/vendor-onboarding/internal/form"
	"github.com/nurpe/vendor-onboarding/internal/model"
)

const (
	SuccessDelay = 2500 * time.Millisecond
	FailureDelay = 4 * time.Second

	submitPath   = "/submit"
	notAvailable = "N/A"

	networkFailureMessage = "Network Error: Unable to submit application. Please try again."
	unknownFailureMessage = "Unknown error"
)

type NoticeKind string

const (
	NoticeSuccess        NoticeKind = "success"
	NoticeServerFailure  NoticeKind = "server_failure"
	NoticeNetworkFailure NoticeKind = "network_failure"
)

// Notice is the transient message shown after a submit. It is dismissed
// after Dismiss has elapsed.
type Notice struct {
	Kind    NoticeKind
	Message string
	Dismiss time.Duration
}

// Outcome is the result of one submit action. Navigation is set only when
// the backend declared success.
type Outcome struct {
	Notice     Notice
	Navigation *confirmation.Payload
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// serverReply covers both the success and the failure body of /submit.
type serverReply struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	Error         string `json:"error"`
	RequestNumber string `json:"requestNumber"`
	RequestSysID  string `json:"requestSysId"`
}

// Submit sends exactly one request and never retries.
func (c *Client) Submit(ctx context.Context, state form.State, doc *model.Document) Outcome {
	body, contentType, err := encode(state, doc)
	if err != nil {
		c.log.Error().Err(err).Msg("encode submission")
		return networkFailure()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+submitPath, body)
	if err != nil {
		c.log.Error().Err(err).Msg("build submission request")
		return networkFailure()
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("url", req.URL.String()).Msg("submission request failed")
		return networkFailure()
	}
	defer resp.Body.Close()

	var reply serverReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		c.log.Error().Err(err).Int("status", resp.StatusCode).Msg("decode submission response")
		return networkFailure()
	}

	if !reply.Success {
		message := firstNonEmpty(reply.Message, reply.Error, unknownFailureMessage)
		c.log.Warn().Int("status", resp.StatusCode).Str("error", reply.Error).Msg("submission rejected")
		return Outcome{Notice: Notice{
			Kind:    NoticeServerFailure,
			Message: "Submission Failed: " + message,
			Dismiss: FailureDelay,
		}}
	}

	requestNumber := firstNonEmpty(reply.RequestNumber, notAvailable)
	payload := &confirmation.Payload{
		SubmittedData: state.VendorSubmission,
		RequestNumber: requestNumber,
		RequestSysID:  firstNonEmpty(reply.RequestSysID, notAvailable),
	}
	if doc != nil {
		payload.FileName = doc.Name
	}

	c.log.Info().Str("request_number", requestNumber).Msg("submission accepted")
	return Outcome{
		Notice: Notice{
			Kind: NoticeSuccess,
			Message: "Application Submitted Successfully!\n" +
				"Your registration has been sent for verification\n" +
				"Request No: " + requestNumber,
			Dismiss: SuccessDelay,
		},
		Navigation: payload,
	}
}

// encode writes every form field, whether shown or not, followed by the
// optional document part.
func encode(state form.State, doc *model.Document) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	values := state.Values()
	for _, key := range model.AllFields() {
		if err := w.WriteField(key, values[key]); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", key, err)
		}
	}

	if doc != nil {
		part, err := w.CreatePart(documentHeader(doc))
		if err != nil {
			return nil, "", fmt.Errorf("create document part: %w", err)
		}
		if _, err := part.Write(doc.Content); err != nil {
			return nil, "", fmt.Errorf("write document: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func documentHeader(doc *model.Document) textproto.MIMEHeader {
	contentType := doc.ContentType
	if contentType == "" {
		contentType = mimetype.Detect(doc.Content).String()
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, model.FieldDocument, doc.Name))
	h.Set("Content-Type", contentType)
	return h
}

func networkFailure() Outcome {
	return Outcome{Notice: Notice{
		Kind:    NoticeNetworkFailure,
		Message: networkFailureMessage,
		Dismiss: FailureDelay,
	}}
}

func firstNonEmpty(values ...string) string {
	i := slices.IndexFunc(values, func(v string) bool { return strings.TrimSpace(v) != "" })
	if i < 0 {
		return ""
	}
	return values[i]
}

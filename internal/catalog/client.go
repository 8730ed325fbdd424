// Package catalog talks to the service-catalog REST API: ordering a catalog
// item, listing the request items of a request and attaching files to them.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected catalog response status")
	ErrMissingSysID     = errors.New("catalog response has no sys_id")
)

const requestItemTable = "sc_req_item"

type Config struct {
	BaseURL       string
	CatalogItemID string
	Username      string
	Password      string
	Timeout       time.Duration
}

type Client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type OrderRequest struct {
	Quantity  int               `json:"sysparm_quantity"`
	Variables map[string]string `json:"variables"`
}

type OrderResult struct {
	SysID         string `json:"sys_id"`
	RequestNumber string `json:"request_number"`
}

type RequestItem struct {
	SysID  string `json:"sys_id"`
	Number string `json:"number"`
}

// OrderNow creates a catalog request for one unit of the configured item.
func (c *Client) OrderNow(ctx context.Context, variables map[string]string) (*OrderResult, error) {
	body, err := json.Marshal(OrderRequest{Quantity: 1, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("marshal order: %w", err)
	}

	endpoint := fmt.Sprintf("%s/api/sn_sc/servicecatalog/items/%s/order_now",
		c.cfg.BaseURL, url.PathEscape(c.cfg.CatalogItemID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	var envelope struct {
		Result *OrderResult `json:"result"`
	}
	if err := c.do(req, &envelope); err != nil {
		return nil, fmt.Errorf("order now: %w", err)
	}
	if envelope.Result == nil || envelope.Result.SysID == "" {
		return nil, ErrMissingSysID
	}
	return envelope.Result, nil
}

// ListRequestItems returns the request items of a request in the order the
// catalog returns them.
func (c *Client) ListRequestItems(ctx context.Context, requestSysID string) ([]RequestItem, error) {
	query := url.Values{}
	query.Set("sysparm_query", "request="+requestSysID)
	endpoint := fmt.Sprintf("%s/api/now/table/%s?%s", c.cfg.BaseURL, requestItemTable, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request item query: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	var envelope struct {
		Result []RequestItem `json:"result"`
	}
	if err := c.do(req, &envelope); err != nil {
		return nil, fmt.Errorf("list request items: %w", err)
	}
	return envelope.Result, nil
}

// UploadAttachment streams size bytes of content as the raw body of a new
// attachment on a request item and returns the catalog's response document
// unchanged. The body is always sent with a Content-Length.
func (c *Client) UploadAttachment(ctx context.Context, itemSysID, fileName, mimeType string, content io.Reader, size int64) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("table_name", requestItemTable)
	query.Set("table_sys_id", itemSysID)
	query.Set("file_name", fileName)
	endpoint := fmt.Sprintf("%s/api/now/attachment/file?%s", c.cfg.BaseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, content)
	if err != nil {
		return nil, fmt.Errorf("create attachment request: %w", err)
	}
	req.ContentLength = size
	req.Header.Set("Content-Type", mimeType)
	req.Header.Set("Accept", "application/json")

	var raw json.RawMessage
	if err := c.do(req, &raw); err != nil {
		return nil, fmt.Errorf("upload attachment: %w", err)
	}
	return raw, nil
}

func (c *Client) do(req *http.Request, out any) error {
	req.SetBasicAuth(c.cfg.Username, c.cfg.Password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s %s", ErrUnexpectedStatus, resp.Status, strings.TrimSpace(string(snippet)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

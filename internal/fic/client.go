// Package fic is a client for the Fatture in Cloud REST API (v2).
//
// Every call is scoped to the single company the client was built for and is
// authenticated with a static bearer token. Calls are synchronous and are
// never retried: a failure is returned once to the caller.
//
// Endpoints used:
//   - /c/{company_id}/issued_documents (list, get, create, e_invoice/send, email)
//   - /c/{company_id}/received_documents (list)
//   - /c/{company_id}/entities/clients (list, get)
//   - /c/{company_id}/company/info
package fic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"fattureincloud-mcp/internal/logger"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api-v2.fattureincloud.it"

// maxResponseSize caps how much of a response body is read (10MB).
const maxResponseSize = 10 * 1024 * 1024

// Config configures the API client.
type Config struct {
	BaseURL     string
	AccessToken string
	CompanyID   int64
	Timeout     time.Duration
}

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	if c.AccessToken == "" {
		return NewAPIError("Validate", ErrInvalidConfiguration, "access token is required")
	}
	if c.CompanyID <= 0 {
		return NewAPIError("Validate", ErrInvalidConfiguration, "company id must be positive")
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	return nil
}

// Client talks to the invoicing API on behalf of one company.
type Client struct {
	baseURL    string
	companyID  int64
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a client. The context is only used to build the
// token-bearing HTTP client.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: cfg.AccessToken,
		TokenType:   "Bearer",
	}))
	httpClient.Timeout = cfg.Timeout

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		companyID:  cfg.CompanyID,
		httpClient: httpClient,
		log:        logger.WithComponent("fic-client"),
	}, nil
}

// CompanyID returns the company every call is scoped to.
func (c *Client) CompanyID() int64 {
	return c.companyID
}

// ---------------------------------------------------------------------------
// Issued documents
// ---------------------------------------------------------------------------

// ListIssuedDocuments returns the first page of issued documents matching params.
func (c *Client) ListIssuedDocuments(ctx context.Context, params ListParams) ([]IssuedDocument, error) {
	var docs []IssuedDocument
	if err := c.do(ctx, "ListIssuedDocuments", http.MethodGet, "/issued_documents", params.values(), nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// GetIssuedDocument fetches one issued document.
func (c *Client) GetIssuedDocument(ctx context.Context, documentID int64, fieldset string) (*IssuedDocument, error) {
	query := url.Values{}
	if fieldset != "" {
		query.Set("fieldset", fieldset)
	}
	var doc IssuedDocument
	if err := c.do(ctx, "GetIssuedDocument", http.MethodGet, documentPath(documentID), query, nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// CreateIssuedDocument creates a document and returns it as stored by the API.
func (c *Client) CreateIssuedDocument(ctx context.Context, doc *IssuedDocument) (*IssuedDocument, error) {
	var created IssuedDocument
	if err := c.do(ctx, "CreateIssuedDocument", http.MethodPost, "/issued_documents", nil, doc, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// SendEInvoice submits a document to the exchange system. This cannot be undone.
func (c *Client) SendEInvoice(ctx context.Context, documentID int64, opts SendEInvoiceOptions) (*SendEInvoiceResult, error) {
	var result SendEInvoiceResult
	if err := c.do(ctx, "SendEInvoice", http.MethodPost, documentPath(documentID)+"/e_invoice/send", nil, opts, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ScheduleEmail schedules the delivery of a document by email.
func (c *Client) ScheduleEmail(ctx context.Context, documentID int64, email ScheduleEmail) error {
	return c.do(ctx, "ScheduleEmail", http.MethodPost, documentPath(documentID)+"/email", nil, email, nil)
}

// ---------------------------------------------------------------------------
// Received documents, clients, company
// ---------------------------------------------------------------------------

// ListReceivedDocuments returns the first page of received documents matching params.
func (c *Client) ListReceivedDocuments(ctx context.Context, params ListParams) ([]ReceivedDocument, error) {
	var docs []ReceivedDocument
	if err := c.do(ctx, "ListReceivedDocuments", http.MethodGet, "/received_documents", params.values(), nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// GetClient fetches a client. A missing client yields an error matching ErrNotFound.
func (c *Client) GetClient(ctx context.Context, clientID int64) (*ClientEntity, error) {
	var client ClientEntity
	path := "/entities/clients/" + strconv.FormatInt(clientID, 10)
	if err := c.do(ctx, "GetClient", http.MethodGet, path, nil, nil, &client); err != nil {
		return nil, err
	}
	return &client, nil
}

// ListClients returns the first page of clients.
func (c *Client) ListClients(ctx context.Context, perPage int) ([]ClientEntity, error) {
	query := url.Values{}
	if perPage > 0 {
		query.Set("per_page", strconv.Itoa(perPage))
	}
	var clients []ClientEntity
	if err := c.do(ctx, "ListClients", http.MethodGet, "/entities/clients", query, nil, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// GetCompanyInfo fetches the company profile.
func (c *Client) GetCompanyInfo(ctx context.Context) (*CompanyInfo, error) {
	var info CompanyInfo
	if err := c.do(ctx, "GetCompanyInfo", http.MethodGet, "/company/info", nil, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// ---------------------------------------------------------------------------
// Transport
// ---------------------------------------------------------------------------

type envelope struct {
	Data any `json:"data"`
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// do performs one API call. Request bodies are wrapped in {"data": ...} and
// the "data" member of the response is decoded into out, when out is non-nil.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	endpoint := fmt.Sprintf("%s/c/%d%s", c.baseURL, c.companyID, path)
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(envelope{Data: body})
		if err != nil {
			return errors.WithStack(NewAPIError(op, err, "failed to encode request"))
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return errors.WithStack(NewAPIError(op, err, "failed to create request"))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(NewAPIError(op, fmt.Errorf("%w: %v", ErrUnavailable, err), ""))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return errors.WithStack(NewAPIError(op, err, "failed to read response"))
	}

	c.log.Debug().
		Str("op", op).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("API call completed")

	if resp.StatusCode >= 400 {
		var apiErr errorBody
		_ = json.Unmarshal(respBody, &apiErr)
		return errors.WithStack(statusError(op, resp.StatusCode, apiErr.Error.Message))
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, &envelope{Data: out}); err != nil {
		return errors.WithStack(NewAPIError(op, fmt.Errorf("%w: %v", ErrInvalidResponse, err), ""))
	}
	return nil
}

func (p ListParams) values() url.Values {
	query := url.Values{}
	if p.Type != "" {
		query.Set("type", p.Type)
	}
	if p.Query != "" {
		query.Set("q", p.Query)
	}
	if p.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(p.PerPage))
	}
	if p.Fieldset != "" {
		query.Set("fieldset", p.Fieldset)
	}
	return query
}

func documentPath(documentID int64) string {
	return "/issued_documents/" + strconv.FormatInt(documentID, 10)
}

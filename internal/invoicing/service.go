// Package invoicing implements the invoicing tools on top of the Fatture in
// Cloud API: listing and reading documents, creating and duplicating
// invoices, submitting them to the exchange system (SDI), emailing them and
// computing a yearly summary.
//
// Handlers hold no state between calls. Business failures are returned as
// *Error values with a Kind; API failures are returned wrapped and unclassified.
package invoicing

import (
	"context"
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"fattureincloud-mcp/internal/fic"
	"fattureincloud-mcp/internal/logger"
)

const (
	// pageSize is the number of records fetched by every listing.
	pageSize = 100

	defaultPaymentDays = 30
	defaultCountry     = "Italia"
	dateLayout         = "2006-01-02"

	// draftStatus is the status label of a newly created document.
	draftStatus = "bozza"
)

var defaultVatRate = decimal.NewFromInt(22)

// API is the part of the invoicing API the handlers use.
type API interface {
	ListIssuedDocuments(ctx context.Context, params fic.ListParams) ([]fic.IssuedDocument, error)
	GetIssuedDocument(ctx context.Context, documentID int64, fieldset string) (*fic.IssuedDocument, error)
	CreateIssuedDocument(ctx context.Context, doc *fic.IssuedDocument) (*fic.IssuedDocument, error)
	SendEInvoice(ctx context.Context, documentID int64, opts fic.SendEInvoiceOptions) (*fic.SendEInvoiceResult, error)
	ScheduleEmail(ctx context.Context, documentID int64, email fic.ScheduleEmail) error
	ListReceivedDocuments(ctx context.Context, params fic.ListParams) ([]fic.ReceivedDocument, error)
	GetClient(ctx context.Context, clientID int64) (*fic.ClientEntity, error)
	ListClients(ctx context.Context, perPage int) ([]fic.ClientEntity, error)
	GetCompanyInfo(ctx context.Context) (*fic.CompanyInfo, error)
}

// Options configures a Service.
type Options struct {
	// SenderEmail is the "from" address for send_email. Empty disables it.
	SenderEmail string
	// Now returns the current time; defaults to time.Now.
	Now func() time.Time
}

// Service implements the invoicing tools.
type Service struct {
	api         API
	senderEmail string
	now         func() time.Time
	log         zerolog.Logger
}

// NewService creates a Service backed by api.
func NewService(api API, opts Options) *Service {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		api:         api,
		senderEmail: opts.SenderEmail,
		now:         now,
		log:         logger.WithComponent("invoicing"),
	}
}

func (s *Service) today() string {
	return s.now().Format(dateLayout)
}

// getDocument fetches a document with its full field set.
func (s *Service) getDocument(ctx context.Context, documentID int64) (*fic.IssuedDocument, error) {
	doc, err := s.api.GetIssuedDocument(ctx, documentID, fic.FieldsetDetailed)
	if err != nil {
		return nil, pkgerrors.WithMessagef(err, "lettura documento %d", documentID)
	}
	return doc, nil
}

func isRemote(err error) bool {
	var apiErr *fic.APIError
	return errors.As(err, &apiErr)
}

func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

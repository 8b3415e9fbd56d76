package invoicing

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"fattureincloud-mcp/internal/fic"
)

// fakeAPI is an in-memory API recording the calls it receives.
type fakeAPI struct {
	issued    []fic.IssuedDocument
	received  []fic.ReceivedDocument
	documents map[int64]*fic.IssuedDocument
	clients   map[int64]*fic.ClientEntity
	company   *fic.CompanyInfo

	// err, when set, is returned by every call.
	err error
	// clientErr, when set, is returned by GetClient.
	clientErr error

	listCalls []fic.ListParams
	created   []*fic.IssuedDocument
	submitted []int64
	emails    []fic.ScheduleEmail
	nextID    int64
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		documents: map[int64]*fic.IssuedDocument{},
		clients:   map[int64]*fic.ClientEntity{},
		nextID:    1000,
	}
}

func notFound(op string) error {
	return &fic.APIError{Op: op, StatusCode: http.StatusNotFound, Err: fic.ErrNotFound}
}

func (f *fakeAPI) ListIssuedDocuments(_ context.Context, params fic.ListParams) ([]fic.IssuedDocument, error) {
	f.listCalls = append(f.listCalls, params)
	if f.err != nil {
		return nil, f.err
	}
	return f.issued, nil
}

func (f *fakeAPI) GetIssuedDocument(_ context.Context, documentID int64, _ string) (*fic.IssuedDocument, error) {
	if f.err != nil {
		return nil, f.err
	}
	doc, ok := f.documents[documentID]
	if !ok {
		return nil, notFound("GetIssuedDocument")
	}
	return doc, nil
}

func (f *fakeAPI) CreateIssuedDocument(_ context.Context, doc *fic.IssuedDocument) (*fic.IssuedDocument, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, doc)
	f.nextID++
	stored := *doc
	stored.ID = f.nextID
	stored.Number = len(f.created)
	return &stored, nil
}

func (f *fakeAPI) SendEInvoice(_ context.Context, documentID int64, _ fic.SendEInvoiceOptions) (*fic.SendEInvoiceResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.submitted = append(f.submitted, documentID)
	return &fic.SendEInvoiceResult{}, nil
}

func (f *fakeAPI) ScheduleEmail(_ context.Context, _ int64, email fic.ScheduleEmail) error {
	if f.err != nil {
		return f.err
	}
	f.emails = append(f.emails, email)
	return nil
}

func (f *fakeAPI) ListReceivedDocuments(_ context.Context, params fic.ListParams) ([]fic.ReceivedDocument, error) {
	f.listCalls = append(f.listCalls, params)
	if f.err != nil {
		return nil, f.err
	}
	return f.received, nil
}

func (f *fakeAPI) GetClient(_ context.Context, clientID int64) (*fic.ClientEntity, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.clientErr != nil {
		return nil, f.clientErr
	}
	c, ok := f.clients[clientID]
	if !ok {
		return nil, notFound("GetClient")
	}
	return c, nil
}

func (f *fakeAPI) ListClients(_ context.Context, _ int) ([]fic.ClientEntity, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]fic.ClientEntity, 0, len(f.clients))
	for id := int64(1); id <= int64(len(f.clients)); id++ {
		if c, ok := f.clients[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeAPI) GetCompanyInfo(_ context.Context) (*fic.CompanyInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.company, nil
}

var fixedNow = func() time.Time {
	return time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
}

func newTestService(api *fakeAPI, senderEmail string) *Service {
	return NewService(api, Options{SenderEmail: senderEmail, Now: fixedNow})
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }

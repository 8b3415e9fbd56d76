package invoicing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"fattureincloud-mcp/internal/fic"
	"fattureincloud-mcp/pkg/models"
)

var hundred = decimal.NewFromInt(100)

// draft is a new invoice before it is sent to the API.
type draft struct {
	entity         fic.Entity
	date           string
	visibleSubject string
	items          []fic.LineItem
	paymentDays    int
}

// grossTotal returns sum(qty * net * (1 + vat/100)) rounded to cents.
func grossTotal(items []fic.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		rate := defaultVatRate
		if item.Vat != nil {
			rate = item.Vat.Value
		}
		factor := decimal.NewFromInt(1).Add(rate.Div(hundred))
		total = total.Add(item.Qty.Mul(item.NetPrice).Mul(factor))
	}
	return round2(total)
}

// dueDate adds the payment term to an ISO issue date.
func dueDate(issueDate string, days int) (string, error) {
	t, err := time.Parse(dateLayout, issueDate)
	if err != nil {
		return "", NewValidationError("Data non valida %q: usare il formato YYYY-MM-DD", issueDate)
	}
	return t.AddDate(0, 0, days).Format(dateLayout), nil
}

// document turns the draft into an e-invoice with a single unpaid installment
// covering the gross total.
func (d draft) document() (*fic.IssuedDocument, decimal.Decimal, error) {
	due, err := dueDate(d.date, d.paymentDays)
	if err != nil {
		return nil, decimal.Zero, err
	}
	total := grossTotal(d.items)

	entity := d.entity
	if entity.Country == "" {
		entity.Country = defaultCountry
	}

	return &fic.IssuedDocument{
		Type:           fic.DocumentTypeInvoice,
		EInvoice:       true,
		EIData:         &fic.EInvoiceData{PaymentMethod: fic.PaymentMethodTransfer},
		Entity:         &entity,
		Date:           d.date,
		VisibleSubject: d.visibleSubject,
		ItemsList:      d.items,
		PaymentsList: []fic.Payment{{
			Amount:  total,
			DueDate: due,
			Status:  fic.PaymentNotPaid,
			PaymentTerms: &fic.PaymentTerms{
				Days: &d.paymentDays,
				Type: fic.PaymentTermsStandard,
			},
		}},
	}, total, nil
}

// createDraft sends the draft to the API.
func (s *Service) createDraft(ctx context.Context, d draft) (*fic.IssuedDocument, decimal.Decimal, error) {
	doc, total, err := d.document()
	if err != nil {
		return nil, decimal.Zero, err
	}
	created, err := s.api.CreateIssuedDocument(ctx, doc)
	if err != nil {
		return nil, decimal.Zero, pkgerrors.WithMessage(err, "creazione fattura")
	}
	s.log.Info().
		Int64("document_id", created.ID).
		Int("number", created.Number).
		Str("total", total.StringFixed(2)).
		Msg("Invoice draft created")
	return created, total, nil
}

// CreateInvoice creates a draft e-invoice for a client. The draft is not sent
// to the exchange system; that is a separate, explicit step.
func (s *Service) CreateInvoice(ctx context.Context, args CreateInvoiceArgs) (*models.CreatedInvoice, error) {
	client, err := s.api.GetClient(ctx, args.ClientID)
	if err != nil {
		if errors.Is(err, fic.ErrNotFound) {
			return nil, newError(KindNotFound, "Cliente con ID %d non trovato", args.ClientID)
		}
		return nil, pkgerrors.WithMessagef(err, "lettura cliente %d", args.ClientID)
	}

	items := make([]fic.LineItem, 0, len(args.Items))
	for _, item := range args.Items {
		rate := defaultVatRate
		if item.VatRate != nil {
			rate = decimal.NewFromFloat(*item.VatRate)
		}
		items = append(items, fic.LineItem{
			Name:        item.Name,
			Description: item.Description,
			Qty:         decimal.NewFromFloat(*item.Qty),
			NetPrice:    decimal.NewFromFloat(*item.NetPrice),
			Vat:         &fic.VatType{ID: 0, Value: rate},
		})
	}

	d := draft{
		entity:         entityFromClient(client),
		date:           args.Date,
		visibleSubject: args.VisibleSubject,
		items:          items,
		paymentDays:    defaultPaymentDays,
	}
	if d.date == "" {
		d.date = s.today()
	}
	if args.PaymentDays != nil {
		d.paymentDays = *args.PaymentDays
	}

	created, total, err := s.createDraft(ctx, d)
	if err != nil {
		return nil, err
	}

	return &models.CreatedInvoice{
		Success: true,
		ID:      created.ID,
		Number:  created.Number,
		Date:    created.Date,
		Client:  client.Name,
		Total:   total,
		Status:  draftStatus,
		Message: fmt.Sprintf("Fattura #%d creata come bozza. Usa send_to_sdi per inviarla.", created.Number),
	}, nil
}

// DuplicateInvoice copies an issued invoice into a new draft dated newDate,
// keeping the original payment term and optionally rewriting a literal text
// in item names, descriptions and the visible subject.
func (s *Service) DuplicateInvoice(ctx context.Context, args DuplicateInvoiceArgs) (*models.CreatedInvoice, error) {
	source, err := s.getDocument(ctx, args.SourceDocumentID)
	if err != nil {
		return nil, err
	}

	entity := s.resolveEntity(ctx, source.Entity)
	replace := func(text string) string {
		if !args.DescriptionReplace.Active() {
			return text
		}
		return strings.ReplaceAll(text, args.DescriptionReplace.Old, args.DescriptionReplace.New)
	}

	items := make([]fic.LineItem, 0, len(source.ItemsList))
	for _, item := range source.ItemsList {
		rate := defaultVatRate
		if item.Vat != nil {
			rate = item.Vat.Value
		}
		items = append(items, fic.LineItem{
			Name:        replace(item.Name),
			Description: replace(item.Description),
			Qty:         item.Qty,
			NetPrice:    item.NetPrice,
			Vat:         &fic.VatType{ID: 0, Value: rate},
		})
	}

	d := draft{
		entity:         entity,
		date:           args.NewDate,
		visibleSubject: replace(source.VisibleSubject),
		items:          items,
		paymentDays:    sourcePaymentDays(source),
	}
	if d.date == "" {
		d.date = s.today()
	}

	created, total, err := s.createDraft(ctx, d)
	if err != nil {
		return nil, err
	}

	sourceNumber := source.Number
	return &models.CreatedInvoice{
		Success:       true,
		ID:            created.ID,
		Number:        created.Number,
		Date:          created.Date,
		Client:        entity.Name,
		Total:         total,
		SourceInvoice: &sourceNumber,
		Status:        draftStatus,
		Message: fmt.Sprintf("Fattura #%d creata come bozza (duplicata da #%d). Usa send_to_sdi per inviarla.",
			created.Number, source.Number),
	}, nil
}

// resolveEntity refreshes the counterparty from the client registry, keeping
// the document's embedded copy when the lookup fails.
func (s *Service) resolveEntity(ctx context.Context, embedded *fic.Entity) fic.Entity {
	if embedded == nil {
		return fic.Entity{}
	}
	fallback := draftEntity(*embedded)
	if embedded.ID == 0 {
		return fallback
	}
	client, err := s.api.GetClient(ctx, embedded.ID)
	if err != nil {
		s.log.Warn().
			Err(err).
			Int64("client_id", embedded.ID).
			Msg("Client lookup failed, using the entity stored on the source document")
		return fallback
	}
	return entityFromClient(client)
}

func sourcePaymentDays(doc *fic.IssuedDocument) int {
	if len(doc.PaymentsList) == 0 {
		return defaultPaymentDays
	}
	terms := doc.PaymentsList[0].PaymentTerms
	if terms == nil || terms.Days == nil {
		return defaultPaymentDays
	}
	return *terms.Days
}

func entityFromClient(c *fic.ClientEntity) fic.Entity {
	return fic.Entity{
		ID:                c.ID,
		Name:              c.Name,
		VatNumber:         c.VatNumber,
		TaxCode:           c.TaxCode,
		AddressStreet:     c.AddressStreet,
		AddressPostalCode: c.AddressPostalCode,
		AddressCity:       c.AddressCity,
		AddressProvince:   c.AddressProvince,
		Country:           c.Country,
	}
}

// draftEntity keeps the fields a new document carries for its counterparty.
func draftEntity(e fic.Entity) fic.Entity {
	e.Email = ""
	return e
}

package invoicing

import (
	"context"

	pkgerrors "github.com/pkg/errors"

	"fattureincloud-mcp/internal/fic"
	"fattureincloud-mcp/pkg/models"
)

// ListInvoices lists the issued invoices of a year, or of one month of it,
// optionally filtered by a text matched against client name and subjects.
func (s *Service) ListInvoices(ctx context.Context, args ListInvoicesArgs) ([]models.InvoiceSummary, error) {
	docs, err := s.api.ListIssuedDocuments(ctx, fic.ListParams{
		Type:     fic.DocumentTypeInvoice,
		Query:    dateQuery(args.Year, args.Month),
		PerPage:  pageSize,
		Fieldset: fic.FieldsetDetailed,
	})
	if err != nil {
		return nil, pkgerrors.WithMessage(err, "elenco fatture")
	}

	filter := newTextFilter(args.Query)
	invoices := make([]models.InvoiceSummary, 0, len(docs))
	for i := range docs {
		doc := &docs[i]
		if !filter.Match(doc.EntityName(), doc.Subject, doc.VisibleSubject) {
			continue
		}
		invoices = append(invoices, models.InvoiceSummary{
			ID:          doc.ID,
			Number:      doc.Number,
			Date:        doc.Date,
			Client:      entityName(doc.Entity),
			Total:       round2(doc.Total()),
			Subject:     doc.Subject,
			Description: doc.VisibleSubject,
		})
	}

	s.log.Debug().
		Int("year", args.Year).
		Int("fetched", len(docs)).
		Int("returned", len(invoices)).
		Msg("Listed invoices")

	return invoices, nil
}

// GetInvoice returns one issued document with its items and payments.
func (s *Service) GetInvoice(ctx context.Context, args GetInvoiceArgs) (*models.InvoiceDetail, error) {
	doc, err := s.getDocument(ctx, args.DocumentID)
	if err != nil {
		return nil, err
	}

	detail := &models.InvoiceDetail{
		ID:          doc.ID,
		Number:      doc.Number,
		Date:        doc.Date,
		Client:      entityName(doc.Entity),
		Total:       round2(doc.Total()),
		Subject:     doc.Subject,
		Description: doc.VisibleSubject,
		Items:       make([]models.InvoiceItem, 0, len(doc.ItemsList)),
		Payments:    make([]models.InvoicePayment, 0, len(doc.PaymentsList)),
		EIStatus:    optionalString(string(doc.EIStatus)),
	}
	if doc.Entity != nil && doc.Entity.ID != 0 {
		id := doc.Entity.ID
		detail.ClientID = &id
	}

	for _, item := range doc.ItemsList {
		out := models.InvoiceItem{
			Name:        item.Name,
			Description: item.Description,
			Qty:         item.Qty,
			NetPrice:    item.NetPrice,
		}
		if item.GrossPrice != nil {
			out.GrossPrice = *item.GrossPrice
		}
		if item.Vat != nil {
			vat := item.Vat.Value
			out.Vat = &vat
		}
		detail.Items = append(detail.Items, out)
	}

	for _, p := range doc.PaymentsList {
		detail.Payments = append(detail.Payments, models.InvoicePayment{
			Amount:   p.Amount,
			DueDate:  p.DueDate,
			Status:   string(p.Status),
			PaidDate: optionalString(p.PaidDate),
		})
	}

	return detail, nil
}

// InvoiceStatus reports the exchange-system status of a document.
func (s *Service) InvoiceStatus(ctx context.Context, args InvoiceStatusArgs) (*models.InvoiceStatus, error) {
	doc, err := s.getDocument(ctx, args.DocumentID)
	if err != nil {
		return nil, err
	}

	return &models.InvoiceStatus{
		ID:                  doc.ID,
		Number:              doc.Number,
		Client:              doc.EntityName(),
		EIStatus:            optionalString(string(doc.EIStatus)),
		EIStatusDescription: doc.EIStatus.Description(),
		Date:                doc.Date,
	}, nil
}

func entityName(e *fic.Entity) *string {
	if e == nil {
		return nil
	}
	name := e.Name
	return &name
}

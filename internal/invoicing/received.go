package invoicing

import (
	"context"

	pkgerrors "github.com/pkg/errors"

	"fattureincloud-mcp/internal/fic"
	"fattureincloud-mcp/pkg/models"
)

// maxDescriptionRunes bounds the description shown for a received document.
const maxDescriptionRunes = 80

// ListReceivedDocuments lists supplier documents of a year or month, by
// default expenses, optionally filtered by supplier name and description.
func (s *Service) ListReceivedDocuments(ctx context.Context, args ListReceivedDocumentsArgs) ([]models.ReceivedDocument, error) {
	docType := args.Type
	if docType == "" {
		docType = fic.DocumentTypeExpense
	}

	docs, err := s.api.ListReceivedDocuments(ctx, fic.ListParams{
		Type:     docType,
		Query:    dateQuery(args.Year, args.Month),
		PerPage:  pageSize,
		Fieldset: fic.FieldsetDetailed,
	})
	if err != nil {
		return nil, pkgerrors.WithMessage(err, "elenco documenti ricevuti")
	}

	filter := newTextFilter(args.Query)
	out := make([]models.ReceivedDocument, 0, len(docs))
	for i := range docs {
		doc := &docs[i]
		supplier := doc.SupplierName()
		if !filter.Match(supplier, doc.Description) {
			continue
		}
		out = append(out, models.ReceivedDocument{
			ID:          doc.ID,
			Number:      doc.Number,
			Date:        doc.Date,
			Supplier:    supplier,
			Description: truncateRunes(doc.Description, maxDescriptionRunes),
			Total:       doc.Amount(),
		})
	}
	return out, nil
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

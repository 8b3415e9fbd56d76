package invoicing

import (
	"context"
	"fmt"

	pkgerrors "github.com/pkg/errors"

	"fattureincloud-mcp/internal/fic"
	"fattureincloud-mcp/pkg/models"
)

// SendToSDI submits a document to the exchange system. The current status is
// re-read first: only drafts and rejected documents may be submitted.
func (s *Service) SendToSDI(ctx context.Context, args SendToSDIArgs) (*models.SDISubmission, error) {
	doc, err := s.getDocument(ctx, args.DocumentID)
	if err != nil {
		return nil, err
	}

	if !doc.EIStatus.CanSubmit() {
		s.log.Warn().
			Int64("document_id", args.DocumentID).
			Str("ei_status", string(doc.EIStatus)).
			Msg("Submission blocked by current e-invoice status")
		return nil, newError(KindBlocked,
			"Fattura già inviata o in elaborazione. Stato attuale: %s", doc.EIStatus)
	}

	if _, err := s.api.SendEInvoice(ctx, args.DocumentID, fic.SendEInvoiceOptions{WithholdingTaxCausal: nil}); err != nil {
		return nil, pkgerrors.WithMessagef(err, "invio SDI documento %d", args.DocumentID)
	}

	s.log.Info().
		Int64("document_id", args.DocumentID).
		Int("number", doc.Number).
		Msg("E-invoice submitted")

	return &models.SDISubmission{
		Success:    true,
		DocumentID: args.DocumentID,
		Number:     doc.Number,
		Client:     doc.EntityName(),
		Message:    fmt.Sprintf("Fattura #%d inviata allo SDI con successo!", doc.Number),
	}, nil
}

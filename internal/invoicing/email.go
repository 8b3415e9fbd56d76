package invoicing

import (
	"context"
	"fmt"

	pkgerrors "github.com/pkg/errors"

	"fattureincloud-mcp/internal/fic"
	"fattureincloud-mcp/pkg/models"
)

// SendEmail schedules a courtesy copy of a document, with its PDF attached,
// to the given address or to the client's registered email.
func (s *Service) SendEmail(ctx context.Context, args SendEmailArgs) (*models.EmailDelivery, error) {
	doc, err := s.getDocument(ctx, args.DocumentID)
	if err != nil {
		return nil, err
	}

	recipient := args.RecipientEmail
	if recipient == "" && doc.Entity != nil {
		recipient = doc.Entity.Email
	}
	if recipient == "" {
		return nil, newError(KindValidation, "Nessuna email specificata e cliente senza email in anagrafica")
	}
	if s.senderEmail == "" {
		return nil, newError(KindUnconfigured,
			"FIC_SENDER_EMAIL non configurato. Imposta l'email mittente nel file .env")
	}

	subject := args.Subject
	if subject == "" {
		subject = fmt.Sprintf("Fattura n. %d", doc.Number)
	}
	body := args.Body
	if body == "" {
		body = fmt.Sprintf("In allegato la fattura n. %d.\n\nCordiali saluti.", doc.Number)
	}

	err = s.api.ScheduleEmail(ctx, args.DocumentID, fic.ScheduleEmail{
		SenderEmail:    s.senderEmail,
		RecipientEmail: recipient,
		Subject:        subject,
		Body:           body,
		Include:        fic.EmailInclude{Document: true},
		AttachPDF:      true,
	})
	if err != nil {
		return nil, pkgerrors.WithMessagef(err, "invio email documento %d", args.DocumentID)
	}

	return &models.EmailDelivery{
		Success:    true,
		DocumentID: args.DocumentID,
		Number:     doc.Number,
		Recipient:  recipient,
		Message:    fmt.Sprintf("Email con fattura #%d inviata a %s", doc.Number, recipient),
	}, nil
}

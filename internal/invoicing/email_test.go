package invoicing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fattureincloud-mcp/internal/fic"
)

func emailFixture() *fakeAPI {
	api := newFakeAPI()
	api.documents[3] = &fic.IssuedDocument{
		ID: 3, Number: 14,
		Entity: &fic.Entity{Name: "Mario Rossi Srl", Email: "amministrazione@rossi.it"},
	}
	api.documents[4] = &fic.IssuedDocument{
		ID: 4, Number: 15,
		Entity: &fic.Entity{Name: "Senza Email Srl"},
	}
	return api
}

func TestSendEmail_DefaultsToClientEmail(t *testing.T) {
	api := emailFixture()
	svc := newTestService(api, "fatture@example.it")

	delivery, err := svc.SendEmail(context.Background(), SendEmailArgs{DocumentID: 3})
	require.NoError(t, err)

	assert.Equal(t, "amministrazione@rossi.it", delivery.Recipient)
	assert.Equal(t, "Email con fattura #14 inviata a amministrazione@rossi.it", delivery.Message)

	require.Len(t, api.emails, 1)
	email := api.emails[0]
	assert.Equal(t, "fatture@example.it", email.SenderEmail)
	assert.Equal(t, "amministrazione@rossi.it", email.RecipientEmail)
	assert.Equal(t, "Fattura n. 14", email.Subject)
	assert.Equal(t, "In allegato la fattura n. 14.\n\nCordiali saluti.", email.Body)
	assert.True(t, email.Include.Document)
	assert.True(t, email.AttachPDF)
	assert.False(t, email.SendCopy)
	assert.Empty(t, email.CcEmail)
}

func TestSendEmail_ExplicitRecipient(t *testing.T) {
	api := emailFixture()
	svc := newTestService(api, "fatture@example.it")

	delivery, err := svc.SendEmail(context.Background(), SendEmailArgs{
		DocumentID:     4,
		RecipientEmail: "cfo@example.com",
		Subject:        "La tua fattura",
		Body:           "Ciao",
	})
	require.NoError(t, err)
	assert.Equal(t, "cfo@example.com", delivery.Recipient)
	assert.Equal(t, "La tua fattura", api.emails[0].Subject)
	assert.Equal(t, "Ciao", api.emails[0].Body)
}

func TestSendEmail_NoRecipient(t *testing.T) {
	api := emailFixture()
	svc := newTestService(api, "fatture@example.it")

	_, err := svc.SendEmail(context.Background(), SendEmailArgs{DocumentID: 4})
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Equal(t, "Nessuna email specificata e cliente senza email in anagrafica", err.Error())
	assert.Empty(t, api.emails)
}

func TestSendEmail_NoSender(t *testing.T) {
	api := emailFixture()
	svc := newTestService(api, "")

	_, err := svc.SendEmail(context.Background(), SendEmailArgs{DocumentID: 3})
	require.Error(t, err)
	assert.Equal(t, KindUnconfigured, KindOf(err))
	assert.Contains(t, err.Error(), "FIC_SENDER_EMAIL")
	assert.Empty(t, api.emails)
}

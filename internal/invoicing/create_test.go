package invoicing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fattureincloud-mcp/internal/fic"
)

func TestGrossTotal(t *testing.T) {
	items := []fic.LineItem{
		{Qty: dec("2"), NetPrice: dec("100")},
		{Qty: dec("1"), NetPrice: dec("10.10"), Vat: &fic.VatType{Value: dec("10")}},
		{Qty: dec("3"), NetPrice: dec("0.333"), Vat: &fic.VatType{Value: dec("0")}},
	}
	// 244 + 11.11 + 0.999
	assert.Equal(t, "256.11", grossTotal(items).StringFixed(2))
	assert.True(t, grossTotal(nil).IsZero())
}

func TestDueDate(t *testing.T) {
	due, err := dueDate("2026-01-10", 30)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-09", due)

	due, err = dueDate("2024-02-28", 1)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", due)

	_, err = dueDate("10/01/2026", 30)
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestCreateInvoice(t *testing.T) {
	api := newFakeAPI()
	api.clients[7] = &fic.ClientEntity{
		ID: 7, Name: "Mario Rossi Srl", VatNumber: "IT01234567890",
		AddressCity: "Milano", Email: "mario@example.it",
	}
	svc := newTestService(api, "")

	created, err := svc.CreateInvoice(context.Background(), CreateInvoiceArgs{
		ClientID: 7,
		Date:     "2026-01-10",
		Items: []InvoiceItemArgs{
			{Name: "Consulenza", Qty: floatPtr(2), NetPrice: floatPtr(100)},
		},
		VisibleSubject: "Consulenza gennaio",
	})
	require.NoError(t, err)

	assert.True(t, created.Success)
	assert.Equal(t, "244.00", created.Total.StringFixed(2))
	assert.Equal(t, "Mario Rossi Srl", created.Client)
	assert.Equal(t, "bozza", created.Status)
	assert.Nil(t, created.SourceInvoice)
	assert.Equal(t, "Fattura #1 creata come bozza. Usa send_to_sdi per inviarla.", created.Message)

	require.Len(t, api.created, 1)
	doc := api.created[0]
	assert.Equal(t, fic.DocumentTypeInvoice, doc.Type)
	assert.True(t, doc.EInvoice)
	assert.Equal(t, "MP05", doc.EIData.PaymentMethod)
	assert.Equal(t, "2026-01-10", doc.Date)
	assert.Equal(t, "Consulenza gennaio", doc.VisibleSubject)

	require.NotNil(t, doc.Entity)
	assert.Equal(t, int64(7), doc.Entity.ID)
	assert.Equal(t, "Italia", doc.Entity.Country)
	assert.Empty(t, doc.Entity.Email)

	require.Len(t, doc.ItemsList, 1)
	assert.Equal(t, "22", doc.ItemsList[0].Vat.Value.String())

	require.Len(t, doc.PaymentsList, 1)
	payment := doc.PaymentsList[0]
	assert.Equal(t, "244", payment.Amount.String())
	assert.Equal(t, "2026-02-09", payment.DueDate)
	assert.Equal(t, fic.PaymentNotPaid, payment.Status)
	require.NotNil(t, payment.PaymentTerms.Days)
	assert.Equal(t, 30, *payment.PaymentTerms.Days)
	assert.Equal(t, "standard", payment.PaymentTerms.Type)
}

func TestCreateInvoice_Defaults(t *testing.T) {
	api := newFakeAPI()
	api.clients[1] = &fic.ClientEntity{ID: 1, Name: "Bianchi SpA", Country: "Svizzera"}
	svc := newTestService(api, "")

	_, err := svc.CreateInvoice(context.Background(), CreateInvoiceArgs{
		ClientID:    1,
		PaymentDays: intPtr(60),
		Items: []InvoiceItemArgs{
			{Name: "Licenza", Qty: floatPtr(1), NetPrice: floatPtr(500), VatRate: floatPtr(0)},
		},
	})
	require.NoError(t, err)

	doc := api.created[0]
	assert.Equal(t, "2026-03-15", doc.Date)
	assert.Equal(t, "Svizzera", doc.Entity.Country)
	assert.Equal(t, "500", doc.PaymentsList[0].Amount.String())
	assert.Equal(t, "2026-05-14", doc.PaymentsList[0].DueDate)
	require.NotNil(t, doc.PaymentsList[0].PaymentTerms.Days)
	assert.Equal(t, 60, *doc.PaymentsList[0].PaymentTerms.Days)
}

func TestCreateInvoice_UnknownClient(t *testing.T) {
	api := newFakeAPI()
	svc := newTestService(api, "")

	_, err := svc.CreateInvoice(context.Background(), CreateInvoiceArgs{
		ClientID: 99,
		Items:    []InvoiceItemArgs{{Name: "x", Qty: floatPtr(1), NetPrice: floatPtr(1)}},
	})
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.EqualError(t, err, "Cliente con ID 99 non trovato")
	assert.Empty(t, api.created)
}

func TestDuplicateInvoice(t *testing.T) {
	api := newFakeAPI()
	api.clients[7] = &fic.ClientEntity{ID: 7, Name: "Mario Rossi Srl"}
	api.documents[10] = &fic.IssuedDocument{
		ID: 10, Number: 12, Date: "2025-01-15",
		Entity:         &fic.Entity{ID: 7, Name: "Mario Rossi (vecchio nome)", Email: "old@example.it"},
		VisibleSubject: "Consulenza 2025",
		ItemsList: []fic.LineItem{
			{Name: "Consulenza 2025", Description: "Supporto annuale 2025", Qty: dec("1"), NetPrice: dec("1000"),
				Vat: &fic.VatType{ID: 5, Value: dec("22")}},
		},
		PaymentsList: []fic.Payment{{
			Amount: dec("1220"), DueDate: "2025-03-16", Status: fic.PaymentPaid,
			PaymentTerms: &fic.PaymentTerms{Days: intPtr(60), Type: "standard"},
		}},
	}
	svc := newTestService(api, "")

	created, err := svc.DuplicateInvoice(context.Background(), DuplicateInvoiceArgs{
		SourceDocumentID:   10,
		NewDate:            "2026-01-15",
		DescriptionReplace: &TextReplacement{Old: "2025", New: "2026"},
	})
	require.NoError(t, err)

	require.NotNil(t, created.SourceInvoice)
	assert.Equal(t, 12, *created.SourceInvoice)
	assert.Equal(t, "Mario Rossi Srl", created.Client)
	assert.Equal(t, "1220.00", created.Total.StringFixed(2))
	assert.Equal(t, "Fattura #1 creata come bozza (duplicata da #12). Usa send_to_sdi per inviarla.", created.Message)

	doc := api.created[0]
	assert.Equal(t, "Consulenza 2026", doc.VisibleSubject)
	assert.Equal(t, "Consulenza 2026", doc.ItemsList[0].Name)
	assert.Equal(t, "Supporto annuale 2026", doc.ItemsList[0].Description)
	assert.Equal(t, 0, doc.ItemsList[0].Vat.ID)
	assert.Equal(t, "2026-01-15", doc.Date)
	assert.Equal(t, "2026-03-16", doc.PaymentsList[0].DueDate)
	assert.Equal(t, fic.PaymentNotPaid, doc.PaymentsList[0].Status)
	assert.Empty(t, doc.Entity.Email)
}

func TestDuplicateInvoice_PartialReplacementIgnored(t *testing.T) {
	api := newFakeAPI()
	api.documents[10] = &fic.IssuedDocument{
		ID: 10, Number: 12,
		VisibleSubject: "Consulenza 2025",
		ItemsList:      []fic.LineItem{{Name: "Consulenza 2025", Qty: dec("1"), NetPrice: dec("100")}},
	}
	svc := newTestService(api, "")

	_, err := svc.DuplicateInvoice(context.Background(), DuplicateInvoiceArgs{
		SourceDocumentID:   10,
		DescriptionReplace: &TextReplacement{Old: "2025"},
	})
	require.NoError(t, err)

	doc := api.created[0]
	assert.Equal(t, "Consulenza 2025", doc.VisibleSubject)
	assert.Equal(t, "Consulenza 2025", doc.ItemsList[0].Name)
	assert.Equal(t, "2026-03-15", doc.Date)
	require.NotNil(t, doc.PaymentsList[0].PaymentTerms.Days)
	assert.Equal(t, 30, *doc.PaymentsList[0].PaymentTerms.Days)
	assert.Equal(t, "122", doc.PaymentsList[0].Amount.String())
}

func TestDuplicateInvoice_TermsWithoutDays(t *testing.T) {
	api := newFakeAPI()
	api.documents[10] = &fic.IssuedDocument{
		ID: 10, Number: 12,
		ItemsList: []fic.LineItem{{Name: "Canone", Qty: dec("1"), NetPrice: dec("100")}},
		PaymentsList: []fic.Payment{{
			Amount: dec("122"), Status: fic.PaymentNotPaid,
			PaymentTerms: &fic.PaymentTerms{Type: "standard"},
		}},
	}
	svc := newTestService(api, "")

	_, err := svc.DuplicateInvoice(context.Background(), DuplicateInvoiceArgs{
		SourceDocumentID: 10,
		NewDate:          "2026-01-15",
	})
	require.NoError(t, err)

	payment := api.created[0].PaymentsList[0]
	assert.Equal(t, "2026-02-14", payment.DueDate)
	require.NotNil(t, payment.PaymentTerms.Days)
	assert.Equal(t, 30, *payment.PaymentTerms.Days)
}

func TestDuplicateInvoice_ClientLookupFallsBack(t *testing.T) {
	api := newFakeAPI()
	api.clientErr = &fic.APIError{Op: "GetClient", StatusCode: 500, Err: fic.ErrRequestFailed}
	api.documents[10] = &fic.IssuedDocument{
		ID: 10, Number: 12,
		Entity:    &fic.Entity{ID: 7, Name: "Mario Rossi Srl", AddressCity: "Torino", Email: "m@example.it"},
		ItemsList: []fic.LineItem{{Name: "Servizio", Qty: dec("1"), NetPrice: dec("100")}},
	}
	svc := newTestService(api, "")

	created, err := svc.DuplicateInvoice(context.Background(), DuplicateInvoiceArgs{SourceDocumentID: 10})
	require.NoError(t, err)
	assert.Equal(t, "Mario Rossi Srl", created.Client)

	entity := api.created[0].Entity
	assert.Equal(t, "Torino", entity.AddressCity)
	assert.Equal(t, "Italia", entity.Country)
	assert.Empty(t, entity.Email)
}

func TestDuplicateInvoice_SourceNotFound(t *testing.T) {
	api := newFakeAPI()
	svc := newTestService(api, "")

	_, err := svc.DuplicateInvoice(context.Background(), DuplicateInvoiceArgs{SourceDocumentID: 1})
	require.Error(t, err)
	assert.Equal(t, KindRemoteFailure, KindOf(err))
	assert.Empty(t, api.created)
}

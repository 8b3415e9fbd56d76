package tools

import (
	"fmt"

	"fattureincloud-mcp/internal/invoicing"
)

// Tool names.
const (
	ListInvoices          = "list_invoices"
	GetInvoice            = "get_invoice"
	ListClients           = "list_clients"
	GetCompanyInfo        = "get_company_info"
	CreateInvoice         = "create_invoice"
	DuplicateInvoice      = "duplicate_invoice"
	SendToSDI             = "send_to_sdi"
	GetInvoiceStatus      = "get_invoice_status"
	SendEmail             = "send_email"
	ListReceivedDocuments = "list_received_documents"
	GetSituation          = "get_situation"
)

type entry struct {
	name         string
	description  string
	args         any
	confirm      bool
	irreversible bool
	handler      Handler
}

// NewCatalog builds the registry of invoicing tools backed by svc.
func NewCatalog(svc *invoicing.Service) (*Registry, error) {
	entries := []entry{
		{
			name:        ListInvoices,
			description: "Lista fatture emesse. Parametri: year (int), month (int opzionale), query (str opzionale)",
			args:        invoicing.ListInvoicesArgs{},
			handler:     bind(svc.ListInvoices),
		},
		{
			name:        GetInvoice,
			description: "Dettaglio fattura per ID",
			args:        invoicing.GetInvoiceArgs{},
			handler:     bind(svc.GetInvoice),
		},
		{
			name:        ListClients,
			description: "Lista clienti",
			args:        invoicing.ListClientsArgs{},
			handler:     bind(svc.ListClients),
		},
		{
			name:        GetCompanyInfo,
			description: "Info azienda collegata",
			args:        invoicing.CompanyInfoArgs{},
			handler:     bind(svc.CompanyInfo),
		},
		{
			name:        CreateInvoice,
			description: "Crea nuova fattura (bozza). IMPORTANTE: Chiedere sempre conferma all'utente prima di eseguire.",
			args:        invoicing.CreateInvoiceArgs{},
			confirm:     true,
			handler:     bind(svc.CreateInvoice),
		},
		{
			name:        DuplicateInvoice,
			description: "Duplica una fattura esistente con nuova data (crea bozza). IMPORTANTE: Chiedere sempre conferma all'utente prima di eseguire.",
			args:        invoicing.DuplicateInvoiceArgs{},
			confirm:     true,
			handler:     bind(svc.DuplicateInvoice),
		},
		{
			name:         SendToSDI,
			description:  "Invia fattura allo SDI (Sistema di Interscambio). ATTENZIONE: Azione irreversibile! Chiedere SEMPRE conferma esplicita all'utente.",
			args:         invoicing.SendToSDIArgs{},
			confirm:      true,
			irreversible: true,
			handler:      bind(svc.SendToSDI),
		},
		{
			name:        GetInvoiceStatus,
			description: "Controlla stato e-invoice/SDI di una fattura",
			args:        invoicing.InvoiceStatusArgs{},
			handler:     bind(svc.InvoiceStatus),
		},
		{
			name:        SendEmail,
			description: "Invia copia cortesia fattura via email al cliente. IMPORTANTE: Chiedere conferma prima di eseguire.",
			args:        invoicing.SendEmailArgs{},
			confirm:     true,
			handler:     bind(svc.SendEmail),
		},
		{
			name:        ListReceivedDocuments,
			description: "Lista fatture PASSIVE (ricevute dai fornitori). Parametri: year, month (opzionale), type (opzionale: expense, credit_note)",
			args:        invoicing.ListReceivedDocumentsArgs{},
			handler:     bind(svc.ListReceivedDocuments),
		},
		{
			name:        GetSituation,
			description: "Dashboard anno: fatturato totale, incassato, da incassare, costi, margine",
			args:        invoicing.SituationArgs{},
			handler:     bind(svc.Situation),
		},
	}

	registry := NewRegistry()
	for _, e := range entries {
		schema, err := schemaFor(e.args)
		if err != nil {
			return nil, fmt.Errorf("tool %s: %w", e.name, err)
		}
		registry.Register(Definition{
			Name:                 e.name,
			Description:          e.description,
			InputSchema:          schema,
			RequiresConfirmation: e.confirm,
			Irreversible:         e.irreversible,
			Handler:              e.handler,
		})
	}
	return registry, nil
}

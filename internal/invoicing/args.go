package invoicing

// Tool arguments. The json tags are the argument names, the jsonschema tags
// feed the advertised input schema and the validate tags are enforced before
// a handler runs.

type ListInvoicesArgs struct {
	Year  int    `json:"year" jsonschema:"required" jsonschema_description:"Anno (es. 2024)" validate:"required,min=1"`
	Month *int   `json:"month,omitempty" jsonschema_description:"Mese 1-12 (opzionale, 0 = tutto l'anno)" validate:"omitempty,min=0,max=12"`
	Query string `json:"query,omitempty" jsonschema_description:"Filtro testuale (opzionale)"`
}

type GetInvoiceArgs struct {
	DocumentID int64 `json:"document_id" jsonschema:"required" jsonschema_description:"ID fattura" validate:"required,gt=0"`
}

type ListClientsArgs struct {
	Query string `json:"query,omitempty" jsonschema_description:"Filtro nome/ragione sociale (opzionale)"`
}

type CompanyInfoArgs struct{}

type InvoiceItemArgs struct {
	Name        string   `json:"name" jsonschema:"required" jsonschema_description:"Nome prodotto/servizio" validate:"required"`
	Description string   `json:"description,omitempty" jsonschema_description:"Descrizione estesa"`
	Qty         *float64 `json:"qty" jsonschema:"required" jsonschema_description:"Quantità" validate:"required"`
	NetPrice    *float64 `json:"net_price" jsonschema:"required" jsonschema_description:"Prezzo netto unitario" validate:"required"`
	VatRate     *float64 `json:"vat_rate,omitempty" jsonschema_description:"Aliquota IVA (es. 22)" validate:"omitempty,min=0,max=100"`
}

type CreateInvoiceArgs struct {
	ClientID       int64             `json:"client_id" jsonschema:"required" jsonschema_description:"ID cliente" validate:"required,gt=0"`
	Items          []InvoiceItemArgs `json:"items" jsonschema:"required" jsonschema_description:"Lista articoli" validate:"required,min=1,dive"`
	Date           string            `json:"date,omitempty" jsonschema_description:"Data fattura YYYY-MM-DD (default: oggi)" validate:"omitempty,datetime=2006-01-02"`
	PaymentDays    *int              `json:"payment_days,omitempty" jsonschema_description:"Giorni pagamento (default: 30)" validate:"omitempty,min=0"`
	VisibleSubject string            `json:"visible_subject,omitempty" jsonschema_description:"Oggetto visibile in fattura"`
}

// TextReplacement is a literal substring substitution.
type TextReplacement struct {
	Old string `json:"old,omitempty"`
	New string `json:"new,omitempty"`
}

// Active reports whether both sides of the substitution are set.
func (r *TextReplacement) Active() bool {
	return r != nil && r.Old != "" && r.New != ""
}

type DuplicateInvoiceArgs struct {
	SourceDocumentID   int64            `json:"source_document_id" jsonschema:"required" jsonschema_description:"ID fattura da duplicare" validate:"required,gt=0"`
	NewDate            string           `json:"new_date,omitempty" jsonschema_description:"Nuova data YYYY-MM-DD (default: oggi)" validate:"omitempty,datetime=2006-01-02"`
	DescriptionReplace *TextReplacement `json:"description_replace,omitempty" jsonschema_description:"Sostituzioni testo nella descrizione (es. 2025->2026)"`
}

type SendToSDIArgs struct {
	DocumentID int64 `json:"document_id" jsonschema:"required" jsonschema_description:"ID fattura da inviare" validate:"required,gt=0"`
}

type InvoiceStatusArgs struct {
	DocumentID int64 `json:"document_id" jsonschema:"required" jsonschema_description:"ID fattura" validate:"required,gt=0"`
}

type SendEmailArgs struct {
	DocumentID     int64  `json:"document_id" jsonschema:"required" jsonschema_description:"ID fattura" validate:"required,gt=0"`
	RecipientEmail string `json:"recipient_email,omitempty" jsonschema_description:"Email destinatario (opzionale, usa email cliente se omesso)" validate:"omitempty,email"`
	Subject        string `json:"subject,omitempty" jsonschema_description:"Oggetto email (opzionale)"`
	Body           string `json:"body,omitempty" jsonschema_description:"Corpo email (opzionale)"`
}

type ListReceivedDocumentsArgs struct {
	Year  int    `json:"year" jsonschema:"required" jsonschema_description:"Anno" validate:"required,min=1"`
	Month *int   `json:"month,omitempty" jsonschema_description:"Mese 1-12 (opzionale, 0 = tutto l'anno)" validate:"omitempty,min=0,max=12"`
	Type  string `json:"type,omitempty" jsonschema_description:"Tipo: expense, credit_note (default: expense)"`
	Query string `json:"query,omitempty" jsonschema_description:"Filtro testuale (opzionale)"`
}

type SituationArgs struct {
	Year *int `json:"year,omitempty" jsonschema_description:"Anno (default: corrente)" validate:"omitempty,min=1"`
}

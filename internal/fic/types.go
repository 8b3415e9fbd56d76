package fic

import (
	"github.com/shopspring/decimal"
)

// Document types and fieldsets understood by the list/get endpoints.
const (
	DocumentTypeInvoice = "invoice"
	DocumentTypeExpense = "expense"

	FieldsetBasic    = "basic"
	FieldsetDetailed = "detailed"

	// PaymentMethodTransfer is the SDI code for a bank transfer (MP05).
	PaymentMethodTransfer = "MP05"

	PaymentTermsStandard = "standard"
)

func init() {
	// Amounts travel as JSON numbers in both directions.
	decimal.MarshalJSONWithoutQuotes = true
}

// ListParams filters a document listing.
type ListParams struct {
	// Type is the document type, e.g. DocumentTypeInvoice.
	Type string
	// Query is a predicate in the API filter syntax, e.g. "date >= '2024-01-01'".
	Query    string
	PerPage  int
	Fieldset string
}

// Entity is the counterparty embedded in a document.
type Entity struct {
	ID                int64  `json:"id,omitempty"`
	Name              string `json:"name,omitempty"`
	VatNumber         string `json:"vat_number,omitempty"`
	TaxCode           string `json:"tax_code,omitempty"`
	AddressStreet     string `json:"address_street,omitempty"`
	AddressPostalCode string `json:"address_postal_code,omitempty"`
	AddressCity       string `json:"address_city,omitempty"`
	AddressProvince   string `json:"address_province,omitempty"`
	Country           string `json:"country,omitempty"`
	Email             string `json:"email,omitempty"`
}

// VatType is the VAT rate applied to a line item.
type VatType struct {
	ID    int             `json:"id"`
	Value decimal.Decimal `json:"value"`
}

// LineItem is one invoice line.
type LineItem struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Qty         decimal.Decimal  `json:"qty"`
	NetPrice    decimal.Decimal  `json:"net_price"`
	GrossPrice  *decimal.Decimal `json:"gross_price,omitempty"`
	Vat         *VatType         `json:"vat,omitempty"`
}

// PaymentTerms describes how the due date of a payment was derived. Days is
// nil when the API omits it.
type PaymentTerms struct {
	Days *int   `json:"days,omitempty"`
	Type string `json:"type"`
}

// Payment is one installment of a document's payment schedule.
type Payment struct {
	Amount       decimal.Decimal `json:"amount"`
	DueDate      string          `json:"due_date"`
	Status       PaymentStatus   `json:"status,omitempty"`
	PaidDate     string          `json:"paid_date,omitempty"`
	PaymentTerms *PaymentTerms   `json:"payment_terms,omitempty"`
}

// EInvoiceData holds the e-invoice specific fields of a document.
type EInvoiceData struct {
	PaymentMethod string `json:"payment_method,omitempty"`
}

// IssuedDocument is a sales document created by the company.
type IssuedDocument struct {
	ID             int64          `json:"id,omitempty"`
	Type           string         `json:"type,omitempty"`
	Number         int            `json:"number,omitempty"`
	Date           string         `json:"date,omitempty"`
	Subject        string         `json:"subject,omitempty"`
	VisibleSubject string         `json:"visible_subject"`
	Entity         *Entity        `json:"entity,omitempty"`
	EInvoice       bool           `json:"e_invoice"`
	EIData         *EInvoiceData  `json:"ei_data,omitempty"`
	EIStatus       EInvoiceStatus `json:"ei_status,omitempty"`
	ItemsList      []LineItem     `json:"items_list,omitempty"`
	PaymentsList   []Payment      `json:"payments_list,omitempty"`
}

// Total returns the document total: the sum of the payment schedule when one
// exists, otherwise the sum of qty * gross price over the line items.
func (d *IssuedDocument) Total() decimal.Decimal {
	total := decimal.Zero
	if len(d.PaymentsList) > 0 {
		for _, p := range d.PaymentsList {
			total = total.Add(p.Amount)
		}
		return total
	}
	for _, item := range d.ItemsList {
		if item.GrossPrice == nil {
			continue
		}
		total = total.Add(item.Qty.Mul(*item.GrossPrice))
	}
	return total
}

// EntityName returns the counterparty name, empty when the document has none.
func (d *IssuedDocument) EntityName() string {
	if d.Entity == nil {
		return ""
	}
	return d.Entity.Name
}

// ReceivedDocument is a purchase or expense document from a supplier.
type ReceivedDocument struct {
	ID          int64           `json:"id"`
	Type        string          `json:"type,omitempty"`
	Number      string          `json:"invoice_number,omitempty"`
	Date        string          `json:"date,omitempty"`
	Description string          `json:"description,omitempty"`
	Entity      *Entity         `json:"entity,omitempty"`
	AmountNet   decimal.Decimal `json:"amount_net"`
	AmountGross decimal.Decimal `json:"amount_gross"`
}

// Amount returns the gross amount, falling back to the net amount when the
// gross one is missing or zero.
func (d *ReceivedDocument) Amount() decimal.Decimal {
	if !d.AmountGross.IsZero() {
		return d.AmountGross
	}
	return d.AmountNet
}

// SupplierName returns the supplier name, empty when the document has none.
func (d *ReceivedDocument) SupplierName() string {
	if d.Entity == nil {
		return ""
	}
	return d.Entity.Name
}

// ClientEntity is a customer record.
type ClientEntity struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	VatNumber         string `json:"vat_number,omitempty"`
	TaxCode           string `json:"tax_code,omitempty"`
	AddressStreet     string `json:"address_street,omitempty"`
	AddressPostalCode string `json:"address_postal_code,omitempty"`
	AddressCity       string `json:"address_city,omitempty"`
	AddressProvince   string `json:"address_province,omitempty"`
	Country           string `json:"country,omitempty"`
	Email             string `json:"email,omitempty"`
}

// CompanyProfile is the flat set of company fields the adapter exposes.
type CompanyProfile struct {
	Name            string `json:"name"`
	VatNumber       string `json:"vat_number,omitempty"`
	Email           string `json:"email,omitempty"`
	AddressStreet   string `json:"address_street,omitempty"`
	AddressCity     string `json:"address_city,omitempty"`
	AddressProvince string `json:"address_province,omitempty"`
}

// CompanyInfo is the company info payload. Depending on the account type the
// profile fields are either top level or nested under "info".
type CompanyInfo struct {
	CompanyProfile
	Info *CompanyProfile `json:"info,omitempty"`
}

// Profile returns the nested profile when present, else the top-level one.
func (c *CompanyInfo) Profile() CompanyProfile {
	if c.Info != nil {
		return *c.Info
	}
	return c.CompanyProfile
}

// SendEInvoiceOptions are the options of an e-invoice submission.
type SendEInvoiceOptions struct {
	WithholdingTaxCausal *string `json:"withholding_tax_causal"`
}

// SendEInvoiceResult is the API confirmation of a submission.
type SendEInvoiceResult struct {
	Name string `json:"name,omitempty"`
	Date string `json:"date,omitempty"`
}

// EmailInclude selects the documents attached to a scheduled email.
type EmailInclude struct {
	Document            bool `json:"document"`
	DeliveryNote        bool `json:"delivery_note"`
	Attachment          bool `json:"attachment"`
	AccompanyingInvoice bool `json:"accompanying_invoice"`
}

// ScheduleEmail is the payload of an outbound document email.
type ScheduleEmail struct {
	SenderEmail    string       `json:"sender_email"`
	RecipientEmail string       `json:"recipient_email"`
	CcEmail        string       `json:"cc_email"`
	Subject        string       `json:"subject"`
	Body           string       `json:"body"`
	Include        EmailInclude `json:"include"`
	AttachPDF      bool         `json:"attach_pdf"`
	SendCopy       bool         `json:"send_copy"`
}

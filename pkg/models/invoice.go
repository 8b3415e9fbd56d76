// Package models holds the simplified payloads the tools return. Field names
// follow the JSON the assistant sees; money is rounded to cents.
package models

import "github.com/shopspring/decimal"

// InvoiceSummary is one row of list_invoices.
type InvoiceSummary struct {
	ID          int64           `json:"id"`
	Number      int             `json:"number"`
	Date        string          `json:"date"`
	Client      *string         `json:"client"`
	Total       decimal.Decimal `json:"total"`
	Subject     string          `json:"subject"`
	Description string          `json:"description"` // visible subject
}

// InvoiceItem is a line item of get_invoice.
type InvoiceItem struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Qty         decimal.Decimal  `json:"qty"`
	NetPrice    decimal.Decimal  `json:"net_price"`
	GrossPrice  decimal.Decimal  `json:"gross_price"`
	Vat         *decimal.Decimal `json:"vat"`
}

// InvoicePayment is an installment of get_invoice.
type InvoicePayment struct {
	Amount   decimal.Decimal `json:"amount"`
	DueDate  string          `json:"due_date"`
	Status   string          `json:"status"`
	PaidDate *string         `json:"paid_date"`
}

// InvoiceDetail is the result of get_invoice.
type InvoiceDetail struct {
	ID          int64            `json:"id"`
	Number      int              `json:"number"`
	Date        string           `json:"date"`
	ClientID    *int64           `json:"client_id"`
	Client      *string          `json:"client"`
	Total       decimal.Decimal  `json:"total"`
	Subject     string           `json:"subject"`
	Description string           `json:"description"`
	Items       []InvoiceItem    `json:"items"`
	Payments    []InvoicePayment `json:"payments"`
	EIStatus    *string          `json:"ei_status"`
}

// CreatedInvoice is the result of create_invoice and duplicate_invoice.
type CreatedInvoice struct {
	Success       bool            `json:"success"`
	ID            int64           `json:"id"`
	Number        int             `json:"number"`
	Date          string          `json:"date"`
	Client        string          `json:"client"`
	Total         decimal.Decimal `json:"total"`
	SourceInvoice *int            `json:"source_invoice,omitempty"`
	Status        string          `json:"status"`
	Message       string          `json:"message"`
}

// SDISubmission is the result of send_to_sdi.
type SDISubmission struct {
	Success    bool   `json:"success"`
	DocumentID int64  `json:"document_id"`
	Number     int    `json:"number"`
	Client     string `json:"client"`
	Message    string `json:"message"`
}

// InvoiceStatus is the result of get_invoice_status.
type InvoiceStatus struct {
	ID                  int64   `json:"id"`
	Number              int     `json:"number"`
	Client              string  `json:"client"`
	EIStatus            *string `json:"ei_status"`
	EIStatusDescription string  `json:"ei_status_description"`
	Date                string  `json:"date"`
}

// EmailDelivery is the result of send_email.
type EmailDelivery struct {
	Success    bool   `json:"success"`
	DocumentID int64  `json:"document_id"`
	Number     int    `json:"number"`
	Recipient  string `json:"recipient"`
	Message    string `json:"message"`
}

// Failure is the payload of a business failure the assistant should act on.
type Failure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Kind    string `json:"kind"`
}

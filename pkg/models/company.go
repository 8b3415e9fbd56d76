package models

import "github.com/shopspring/decimal"

// ClientSummary is one row of list_clients.
type ClientSummary struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Vat     string `json:"vat"`
	TaxCode string `json:"tax_code"`
	Email   string `json:"email"`
}

// CompanyInfo is the result of get_company_info.
type CompanyInfo struct {
	Name     string `json:"name"`
	Vat      string `json:"vat"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Province string `json:"province"`
}

// ReceivedDocument is one row of list_received_documents.
type ReceivedDocument struct {
	ID          int64           `json:"id"`
	Number      string          `json:"number"`
	Date        string          `json:"date"`
	Supplier    string          `json:"supplier"`
	Description string          `json:"description"`
	Total       decimal.Decimal `json:"total"`
}

// UpcomingPayment is an unpaid installment listed by get_situation.
type UpcomingPayment struct {
	Number  int             `json:"number"`
	Client  string          `json:"client"`
	Amount  decimal.Decimal `json:"amount"`
	DueDate string          `json:"due_date"`
}

// Situation is the yearly dashboard of get_situation.
type Situation struct {
	Year        int               `json:"anno"`
	Invoiced    decimal.Decimal   `json:"fatturato_totale"`
	Collected   decimal.Decimal   `json:"incassato"`
	Outstanding decimal.Decimal   `json:"da_incassare"`
	Costs       decimal.Decimal   `json:"costi_totali"`
	GrossMargin decimal.Decimal   `json:"margine_lordo"`
	Upcoming    []UpcomingPayment `json:"prossime_scadenze"`
}

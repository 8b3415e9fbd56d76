package fic

import (
	"encoding/json"
	"strings"
)

// PaymentStatus is the state of a single installment.
type PaymentStatus string

const (
	PaymentNotPaid  PaymentStatus = "not_paid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentReversed PaymentStatus = "reversed"
	PaymentUnknown  PaymentStatus = "unknown"
)

// UnmarshalJSON keeps the status code as sent, without its enum namespace.
// Enum-qualified spellings such as "IssuedDocumentStatus.PAID" are lowercased;
// other codes are kept verbatim.
func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*s = ""
		return nil
	}
	*s = PaymentStatus(normalizeCode(*raw))
	return nil
}

// Known maps the status onto the closed set of values the reports reason
// about. Codes outside it become PaymentUnknown.
func (s PaymentStatus) Known() PaymentStatus {
	return ParsePaymentStatus(string(s))
}

// ParsePaymentStatus normalizes a raw status code into the closed set.
func ParsePaymentStatus(raw string) PaymentStatus {
	code := strings.ToLower(unqualify(raw))
	switch PaymentStatus(code) {
	case "":
		return ""
	case PaymentNotPaid, PaymentPaid, PaymentReversed:
		return PaymentStatus(code)
	}
	return PaymentUnknown
}

// EInvoiceStatus is the lifecycle state of a document at the exchange system.
// The empty value means the document was never submitted.
type EInvoiceStatus string

const (
	EInvoiceNone         EInvoiceStatus = ""
	EInvoiceNotSent      EInvoiceStatus = "not_sent"
	EInvoicePending      EInvoiceStatus = "pending"
	EInvoiceSent         EInvoiceStatus = "sent"
	EInvoiceDelivered    EInvoiceStatus = "delivered"
	EInvoiceAccepted     EInvoiceStatus = "accepted"
	EInvoiceRejected     EInvoiceStatus = "rejected"
	EInvoiceNotDelivered EInvoiceStatus = "not_delivered"
)

var eInvoiceDescriptions = map[EInvoiceStatus]string{
	EInvoiceNone:         "Bozza (non inviata)",
	EInvoiceNotSent:      "Bozza (non inviata)",
	EInvoicePending:      "In attesa di invio",
	EInvoiceSent:         "Inviata, in attesa di risposta SDI",
	EInvoiceDelivered:    "Consegnata al destinatario",
	EInvoiceAccepted:     "Accettata",
	EInvoiceRejected:     "Rifiutata",
	EInvoiceNotDelivered: "Non consegnata (messa a disposizione)",
}

// UnmarshalJSON treats null and the literal string "null" as EInvoiceNone.
// Enum-qualified spellings are lowercased; other codes are kept verbatim.
func (s *EInvoiceStatus) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || *raw == "null" {
		*s = EInvoiceNone
		return nil
	}
	*s = EInvoiceStatus(normalizeCode(*raw))
	return nil
}

// Description returns the Italian description of the status; codes without
// one are returned as they are.
func (s EInvoiceStatus) Description() string {
	if d, ok := eInvoiceDescriptions[s]; ok {
		return d
	}
	return string(s)
}

// CanSubmit reports whether a document in this state may be sent to the
// exchange system.
func (s EInvoiceStatus) CanSubmit() bool {
	switch s {
	case EInvoiceNone, EInvoiceNotSent, EInvoiceRejected:
		return true
	}
	return false
}

// unqualify drops an enum namespace such as "IssuedDocumentStatus.".
func unqualify(raw string) string {
	if i := strings.LastIndexByte(raw, '.'); i >= 0 {
		return raw[i+1:]
	}
	return raw
}

// normalizeCode strips the enum namespace, lowercasing the code only when a
// namespace was present.
func normalizeCode(raw string) string {
	code := unqualify(raw)
	if code != raw {
		code = strings.ToLower(code)
	}
	return code
}

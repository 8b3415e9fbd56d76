package fic

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestParsePaymentStatus(t *testing.T) {
	tests := map[string]PaymentStatus{
		"paid":                          PaymentPaid,
		"NOT_PAID":                      PaymentNotPaid,
		"IssuedDocumentStatus.REVERSED": PaymentReversed,
		"partially_paid":                PaymentUnknown,
		"":                              "",
	}
	for raw, want := range tests {
		assert.Equal(t, want, ParsePaymentStatus(raw), raw)
	}
}

func TestPaymentStatus_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		raw  string
		want PaymentStatus
	}{
		{`null`, ""},
		{`"paid"`, PaymentPaid},
		{`"IssuedDocumentStatus.NOT_PAID"`, PaymentNotPaid},
		{`"partially_paid"`, PaymentStatus("partially_paid")},
		{`"IssuedDocumentStatus.PARTIALLY_PAID"`, PaymentStatus("partially_paid")},
	}
	for _, tt := range tests {
		var got PaymentStatus
		require.NoError(t, json.Unmarshal([]byte(tt.raw), &got))
		assert.Equal(t, tt.want, got, tt.raw)
	}
}

func TestPaymentStatus_Known(t *testing.T) {
	assert.Equal(t, PaymentPaid, PaymentStatus("paid").Known())
	assert.Equal(t, PaymentReversed, PaymentStatus("reversed").Known())
	assert.Equal(t, PaymentUnknown, PaymentStatus("partially_paid").Known())
	assert.Equal(t, PaymentStatus(""), PaymentStatus("").Known())
}

func TestEInvoiceStatus_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		raw  string
		want EInvoiceStatus
	}{
		{`null`, EInvoiceNone},
		{`"null"`, EInvoiceNone},
		{`"sent"`, EInvoiceSent},
		{`"IssuedDocumentEiStatus.rejected"`, EInvoiceRejected},
		{`"processing"`, EInvoiceStatus("processing")},
	}
	for _, tt := range tests {
		var got EInvoiceStatus
		require.NoError(t, json.Unmarshal([]byte(tt.raw), &got))
		assert.Equal(t, tt.want, got, tt.raw)
	}
}

func TestEInvoiceStatus_Description(t *testing.T) {
	assert.Equal(t, "Bozza (non inviata)", EInvoiceNone.Description())
	assert.Equal(t, "Consegnata al destinatario", EInvoiceDelivered.Description())
	assert.Equal(t, "Non consegnata (messa a disposizione)", EInvoiceNotDelivered.Description())
	assert.Equal(t, "processing", EInvoiceStatus("processing").Description())
}

func TestEInvoiceStatus_CanSubmit(t *testing.T) {
	for _, s := range []EInvoiceStatus{EInvoiceNone, EInvoiceNotSent, EInvoiceRejected} {
		assert.True(t, s.CanSubmit(), string(s))
	}
	for _, s := range []EInvoiceStatus{EInvoicePending, EInvoiceSent, EInvoiceDelivered, EInvoiceAccepted, EInvoiceNotDelivered, "processing"} {
		assert.False(t, s.CanSubmit(), string(s))
	}
}

func TestAmountsEncodeAsNumbers(t *testing.T) {
	out, err := json.Marshal(Payment{Amount: decimalFromString(t, "244.00"), DueDate: "2026-02-09", Status: PaymentNotPaid})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":244,"due_date":"2026-02-09","status":"not_paid"}`, string(out))
}

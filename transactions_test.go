package shopbook

import (
	"errors"
	"testing"
	"time"
)

func TestParseTransactionType(t *testing.T) {
	tests := []struct {
		in   string
		want TransactionType
		ok   bool
	}{
		{"sale", Sale, true},
		{"SALE", Sale, true},
		{"Expense", Expense, true},
		{"", "", false},
		{"refund", "", false},
	}
	for _, test := range tests {
		got, err := ParseTransactionType(test.in)
		if test.ok && (err != nil || got != test.want) {
			t.Errorf("ParseTransactionType(%q) = %v, %v, want %v", test.in, got, err, test.want)
		}
		if !test.ok && err == nil {
			t.Errorf("ParseTransactionType(%q) succeeded, want error", test.in)
		}
	}
}

func TestParsePaymentMethod(t *testing.T) {
	tests := []struct {
		in   string
		want PaymentMethod
		ok   bool
	}{
		{"", Cash, true}, // the paper book default
		{"cash", Cash, true},
		{"pos", POS, true},
		{"CREDIT", Credit, true},
		{"cheque", "", false},
	}
	for _, test := range tests {
		got, err := ParsePaymentMethod(test.in)
		if test.ok && (err != nil || got != test.want) {
			t.Errorf("ParsePaymentMethod(%q) = %v, %v, want %v", test.in, got, err, test.want)
		}
		if !test.ok && err == nil {
			t.Errorf("ParsePaymentMethod(%q) succeeded, want error", test.in)
		}
	}
}

func TestValidate(t *testing.T) {
	at := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	valid := NewTransaction("1", Sale, "Sold Milk", M(12.50, DefaultCurrency), at, Cash, "")
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid transaction rejected: %v", err)
	}

	tests := []struct {
		name  string
		tx    Transaction
		field string
	}{
		{"missing id", NewTransaction("", Sale, "x", M(1, DefaultCurrency), at, Cash, ""), "id"},
		{"bad type", NewTransaction("1", "REFUND", "x", M(1, DefaultCurrency), at, Cash, ""), "type"},
		{"blank description", NewTransaction("1", Sale, " ", M(1, DefaultCurrency), at, Cash, ""), "description"},
		{"negative amount", NewTransaction("1", Sale, "x", M(-1, DefaultCurrency), at, Cash, ""), "amount"},
		{"bad method", NewTransaction("1", Sale, "x", M(1, DefaultCurrency), at, "IOU", ""), "method"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.tx.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("got error %v, want a ValidationError", err)
			}
			if verr.Field != test.field {
				t.Errorf("ValidationError.Field = %q, want %q", verr.Field, test.field)
			}
		})
	}

	// Zero amounts are fine: a free sample is still a sale.
	free := NewTransaction("1", Sale, "Free sample", M(0, DefaultCurrency), at, Cash, "")
	if err := free.Validate(); err != nil {
		t.Errorf("zero-amount transaction rejected: %v", err)
	}

	if err := NewInventoryItem("1", "Milk", 0, M(2.50, DefaultCurrency)).Validate(); err != nil {
		t.Errorf("sold-out stock line rejected: %v", err)
	}
	if err := NewInventoryItem("1", "Milk", -1, M(2.50, DefaultCurrency)).Validate(); err == nil {
		t.Errorf("negative stock quantity accepted")
	}
	if err := NewDebt("1", "  ", M(50, DefaultCurrency), at).Validate(); err == nil {
		t.Errorf("blank customer name accepted")
	}
}

func TestNewTransaction_TruncatesToMillis(t *testing.T) {
	at := time.Date(2025, 6, 15, 9, 0, 0, 123456789, time.UTC)
	tx := NewTransaction("1", Sale, "Sold Milk", M(12.50, DefaultCurrency), at, Cash, "")
	if got := tx.Timestamp.Nanosecond(); got != 123000000 {
		t.Errorf("timestamp nanoseconds = %d, want 123000000", got)
	}
	// The persisted precision: round-tripping through epoch millis is lossless.
	if !time.UnixMilli(tx.Timestamp.UnixMilli()).Equal(tx.Timestamp) {
		t.Errorf("timestamp does not survive the epoch-millis round trip")
	}
}

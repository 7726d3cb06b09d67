package shopbook

import (
	"testing"
	"time"
)

func TestSeed(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	b := Seed(now)

	txs, items, debts := b.Counts()
	if txs != 3 || items != 3 || debts != 1 {
		t.Fatalf("seed counts = (%d, %d, %d), want (3, 3, 1)", txs, items, debts)
	}

	wantTxs := []struct {
		typ         TransactionType
		description string
		amount      Money
		age         time.Duration
		method      PaymentMethod
		category    string
	}{
		{Sale, "Sold Milk & Bread", M(12.50, DefaultCurrency), time.Hour, Cash, ""},
		{Sale, "Customer: John Doe", M(24.00, DefaultCurrency), 2 * time.Hour, POS, ""},
		{Expense, "Electricity Bill", M(35.00, DefaultCurrency), 3 * time.Hour, Cash, "Utility"},
	}
	for i, tx := range b.transactions {
		want := wantTxs[i]
		if tx.Type != want.typ || tx.Description != want.description || !tx.Amount.Equal(want.amount) {
			t.Errorf("transaction %d = %+v, want %+v", i, tx, want)
		}
		if tx.Method != want.method || tx.Category != want.category {
			t.Errorf("transaction %d method/category = %s/%q, want %s/%q", i, tx.Method, tx.Category, want.method, want.category)
		}
		if got := now.Sub(tx.Timestamp); got != want.age {
			t.Errorf("transaction %d is %s old, want %s", i, got, want.age)
		}
		if err := tx.Validate(); err != nil {
			t.Errorf("seed transaction %d does not validate: %v", i, err)
		}
	}

	wantItems := []struct {
		name     string
		quantity int
		price    Money
	}{
		{"Milk", 24, M(2.50, DefaultCurrency)},
		{"Bread", 15, M(1.50, DefaultCurrency)},
		{"Eggs", 120, M(0.20, DefaultCurrency)},
	}
	for i, item := range b.inventory {
		want := wantItems[i]
		if item.Name != want.name || item.Quantity != want.quantity || !item.Price.Equal(want.price) {
			t.Errorf("stock line %d = %+v, want %+v", i, item, want)
		}
	}

	d := b.debts[0]
	if d.CustomerName != "Mark Smith" || !d.Amount.Equal(M(50.00, DefaultCurrency)) {
		t.Errorf("seed debt = %+v", d)
	}
	if got := now.Sub(d.Timestamp); got != 24*time.Hour {
		t.Errorf("seed debt is %s old, want 24h", got)
	}
}

package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/kande/shopbook"
	"github.com/kande/shopbook/date"
)

func usd(v float64) shopbook.Money { return shopbook.M(v, shopbook.DefaultCurrency) }

func TestTransactions(t *testing.T) {
	at := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	got := Transactions([]shopbook.Transaction{
		shopbook.NewTransaction("1", shopbook.Expense, "Electricity Bill", usd(35.00), at, shopbook.Cash, "Utility"),
		shopbook.NewTransaction("2", shopbook.Sale, "Sold Milk", usd(12.50), at, shopbook.POS, ""),
	})

	for _, want := range []string{
		"# Transactions",
		"Electricity Bill (Utility)",
		"Sold Milk",
		"$35.00",
		"$12.50",
		"POS",
		"2025-06-15 14:30",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("listing does not contain %q:\n%s", want, got)
		}
	}
}

func TestTransactions_Empty(t *testing.T) {
	if got := Transactions(nil); got != "No transactions recorded.\n" {
		t.Errorf("empty listing = %q", got)
	}
}

func TestStock_ComputesLineValue(t *testing.T) {
	got := Stock([]shopbook.InventoryItem{
		shopbook.NewInventoryItem("1", "Milk", 24, usd(2.50)),
	})
	if !strings.Contains(got, "$60.00") {
		t.Errorf("stock listing does not show the line value:\n%s", got)
	}
}

func TestDebts_Total(t *testing.T) {
	at := time.Date(2025, 6, 14, 14, 30, 0, 0, time.UTC)
	got := Debts([]shopbook.Debt{
		shopbook.NewDebt("a", "Mark Smith", usd(50.00), at),
		shopbook.NewDebt("b", "Jane Doe", usd(20.00), at),
	})
	if !strings.Contains(got, "Total outstanding: $70.00 across 2 debts.") {
		t.Errorf("debt listing does not total:\n%s", got)
	}
}

func TestSummary(t *testing.T) {
	m := shopbook.Metrics{
		Day:                  date.New(2025, 6, 15),
		SalesToday:           usd(36.50),
		ExpensesToday:        usd(35.00),
		ProfitToday:          usd(1.50),
		DebtCount:            1,
		TotalDebtOutstanding: usd(50.00),
	}

	got := Summary(m, "Keep more eggs in stock.")
	for _, want := range []string{
		"Shop Book - 2025-06-15",
		"$1.50",
		"$36.50",
		"$50.00 (1)",
		"## Business Insight",
		"Keep more eggs in stock.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary does not contain %q:\n%s", want, got)
		}
	}

	if plain := Summary(m, ""); strings.Contains(plain, "Business Insight") {
		t.Errorf("summary without a tip still shows the insight section:\n%s", plain)
	}
}

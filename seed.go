package shopbook

import "time"

// Seed returns the example dataset a fresh book starts from: three
// transactions, three stock lines and one debt, with timestamps placed
// relative to now so the sales show up in today's metrics.
func Seed(now time.Time) *Book {
	b := NewBook()
	b.transactions = []Transaction{
		NewTransaction("1", Sale, "Sold Milk & Bread", M(12.50, DefaultCurrency), now.Add(-1*time.Hour), Cash, ""),
		NewTransaction("2", Sale, "Customer: John Doe", M(24.00, DefaultCurrency), now.Add(-2*time.Hour), POS, ""),
		NewTransaction("3", Expense, "Electricity Bill", M(35.00, DefaultCurrency), now.Add(-3*time.Hour), Cash, "Utility"),
	}
	b.inventory = []InventoryItem{
		NewInventoryItem("1", "Milk", 24, M(2.50, DefaultCurrency)),
		NewInventoryItem("2", "Bread", 15, M(1.50, DefaultCurrency)),
		NewInventoryItem("3", "Eggs", 120, M(0.20, DefaultCurrency)),
	}
	b.debts = []Debt{
		NewDebt("1", "Mark Smith", M(50.00, DefaultCurrency), now.Add(-24*time.Hour)),
	}
	return b
}

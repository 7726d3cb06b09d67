package shopbook

import (
	"iter"
	"slices"

	"github.com/kande/shopbook/date"
)

// Book is the aggregate record of the shop: transactions, inventory and
// debts. Collections are kept most-recent-first (new records are prepended),
// which is both the display order and the persisted order. The whole book is
// the sole unit of persistence; a single collection is never written alone.
type Book struct {
	transactions []Transaction
	inventory    []InventoryItem
	debts        []Debt
}

// NewBook creates an empty book.
func NewBook() *Book {
	return &Book{
		transactions: make([]Transaction, 0),
		inventory:    make([]InventoryItem, 0),
		debts:        make([]Debt, 0),
	}
}

func (b *Book) prependTransaction(tx Transaction) {
	b.transactions = slices.Insert(b.transactions, 0, tx)
}

func (b *Book) prependInventoryItem(item InventoryItem) {
	b.inventory = slices.Insert(b.inventory, 0, item)
}

func (b *Book) prependDebt(d Debt) {
	b.debts = slices.Insert(b.debts, 0, d)
}

// removeDebt removes the debt with the given id.
// It reports whether a debt was removed.
func (b *Book) removeDebt(id string) bool {
	for i, d := range b.debts {
		if d.ID == id {
			b.debts = slices.Delete(b.debts, i, i+1)
			return true
		}
	}
	return false
}

// Transactions returns an iterator over transactions in book order
// (most-recent-first). A transaction is yielded if any filter accepts it.
func (b *Book) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range b.transactions {
			accept := false
			for _, filter := range filters {
				if filter(tx) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// Inventory returns an iterator over stock lines in book order.
func (b *Book) Inventory() iter.Seq2[int, InventoryItem] {
	return func(yield func(int, InventoryItem) bool) {
		for i, item := range b.inventory {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Debts returns an iterator over outstanding debts in book order.
func (b *Book) Debts() iter.Seq2[int, Debt] {
	return func(yield func(int, Debt) bool) {
		for i, d := range b.debts {
			if !yield(i, d) {
				return
			}
		}
	}
}

// Counts returns the sizes of the three collections.
func (b *Book) Counts() (transactions, inventory, debts int) {
	return len(b.transactions), len(b.inventory), len(b.debts)
}

// Equal reports whether two books hold the same records in the same order.
func (b *Book) Equal(o *Book) bool {
	return slices.EqualFunc(b.transactions, o.transactions, Transaction.Equal) &&
		slices.EqualFunc(b.inventory, o.inventory, InventoryItem.Equal) &&
		slices.EqualFunc(b.debts, o.debts, Debt.Equal)
}

// AcceptAll is a transaction predicate that accepts every transaction.
func AcceptAll(Transaction) bool { return true }

// ByType returns a predicate that filters transactions by type.
func ByType(typ TransactionType) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Type == typ }
}

// ByDay returns a predicate that keeps transactions recorded on the given
// calendar day.
func ByDay(day date.Date) func(Transaction) bool {
	return func(tx Transaction) bool { return date.Of(tx.Timestamp) == day }
}

// ByRange returns a predicate that keeps transactions recorded within the
// given day range, bounds included.
func ByRange(r date.Range) func(Transaction) bool {
	return func(tx Transaction) bool { return r.Contains(date.Of(tx.Timestamp)) }
}

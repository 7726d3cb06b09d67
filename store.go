package shopbook

import (
	"errors"
	"io/fs"
	"log"
	"time"

	"github.com/google/uuid"
)

// Storage is the persistence port of the store: one durable slot holding the
// whole book. Load returns an error wrapping fs.ErrNotExist when the slot
// has never been written.
type Storage interface {
	Load() (*Book, error)
	Save(*Book) error
}

// Store owns the in-memory book, applies mutations to it and writes the
// whole aggregate through to its Storage after every change. All mutations
// happen on the single control goroutine of the CLI, so the store itself
// does no locking.
type Store struct {
	book    *Book
	storage Storage
	newID   func() string
	now     func() time.Time

	// seeded is set when Open fell back to the example dataset instead of
	// loading a saved book.
	seeded bool
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithIDGenerator replaces the record identifier generator (random UUIDs by
// default) so tests can supply deterministic IDs.
func WithIDGenerator(newID func() string) StoreOption {
	return func(s *Store) { s.newID = newID }
}

// WithClock replaces the store's clock so tests can pin record timestamps.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// NewStore creates a store over an already loaded book.
func NewStore(book *Book, storage Storage, opts ...StoreOption) *Store {
	s := &Store{
		book:    book,
		storage: storage,
		newID:   uuid.NewString,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open loads the book from storage and wraps it in a Store. A slot that was
// never written, or one that no longer parses, falls back to the seed
// dataset; the seed is not written back until the first mutation.
func Open(storage Storage, opts ...StoreOption) *Store {
	s := NewStore(nil, storage, opts...)
	book, err := storage.Load()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Println("no saved book found, starting from the example dataset")
		book = Seed(s.now())
		s.seeded = true
	case err != nil:
		log.Printf("warning: saved book is unreadable (%v), starting from the example dataset", err)
		book = Seed(s.now())
		s.seeded = true
	}
	s.book = book
	return s
}

// Book returns the in-memory aggregate, for read-only projections such as
// rendering and insight snapshots.
func (s *Store) Book() *Book { return s.book }

// persist writes the whole book through to storage. On failure the mutation
// that triggered the write stays applied in memory and the error is returned
// as a recoverable PersistenceError.
func (s *Store) persist(op string) error {
	if err := s.storage.Save(s.book); err != nil {
		return &PersistenceError{Op: op, Err: err}
	}
	return nil
}

// AddTransaction records a sale or an expense and prepends it to the book.
// The record carries a fresh identifier and the current time. A returned
// PersistenceError means the record is in the book but not yet durable.
func (s *Store) AddTransaction(typ TransactionType, description string, amount Money, method PaymentMethod, category string) (Transaction, error) {
	tx := NewTransaction(s.newID(), typ, description, amount, s.now(), method, category)
	if err := tx.Validate(); err != nil {
		return Transaction{}, err
	}
	s.book.prependTransaction(tx)
	return tx, s.persist("add-transaction")
}

// AddDebt records an amount a customer owes the shop.
func (s *Store) AddDebt(customerName string, amount Money) (Debt, error) {
	d := NewDebt(s.newID(), customerName, amount, s.now())
	if err := d.Validate(); err != nil {
		return Debt{}, err
	}
	s.book.prependDebt(d)
	return d, s.persist("add-debt")
}

// SettleDebt removes the debt with the given id from the book. An unknown id
// is a no-op, not an error, so settling twice is idempotent; the returned
// bool tells the caller whether anything was removed.
func (s *Store) SettleDebt(id string) (bool, error) {
	if !s.book.removeDebt(id) {
		return false, nil
	}
	return true, s.persist("settle-debt")
}

// Reseed makes the example dataset durable. It only applies when Open fell
// back to the seed; a saved book is never overwritten.
func (s *Store) Reseed() error {
	if !s.seeded {
		return errors.New("the book already holds saved records")
	}
	return s.persist("reseed")
}

// AddInventoryItem records a new stock line. Lines are never merged: adding
// "Milk" twice yields two independent entries, the way a paper book is kept.
func (s *Store) AddInventoryItem(name string, quantity int, price Money) (InventoryItem, error) {
	item := NewInventoryItem(s.newID(), name, quantity, price)
	if err := item.Validate(); err != nil {
		return InventoryItem{}, err
	}
	s.book.prependInventoryItem(item)
	return item, s.persist("add-inventory-item")
}

// Package sqlite persists the shop book in a single key-value slot of a
// local SQLite database. The whole serialized book is the value; there is
// one fixed key. SQLite is opened in WAL mode and the schema is migrated on
// open.
package sqlite

import (
	"bytes"
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/mattn/go-sqlite3"

	"github.com/kande/shopbook"
)

// slotKey is the fixed key of the slot holding the book, kept identical to
// the original storage key so an exported value remains recognizable.
const slotKey = "digital_shop_book_data"

// Store implements shopbook.Storage backed by SQLite.
type Store struct {
	db *sql.DB
}

// New creates a store on the database at the given path.
// Use ":memory:" for an in-memory database.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("cannot open database %q: %w", path, err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot migrate database %q: %w", path, err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS slots (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	);`
	_, err := s.db.Exec(schema)
	return err
}

// Load reads and decodes the book from the slot. It returns an error
// wrapping fs.ErrNotExist when the slot was never written.
func (s *Store) Load() (*shopbook.Book, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM slots WHERE key = ?`, slotKey).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("slot %q: %w", slotKey, fs.ErrNotExist)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read slot %q: %w", slotKey, err)
	}

	book, err := shopbook.DecodeBook(bytes.NewReader(value))
	if err != nil {
		return nil, fmt.Errorf("cannot decode slot %q: %w", slotKey, err)
	}
	return book, nil
}

// Save encodes the whole book and writes it to the slot, replacing the
// previous value.
func (s *Store) Save(book *shopbook.Book) error {
	var buf bytes.Buffer
	if err := shopbook.EncodeBook(&buf, book); err != nil {
		return fmt.Errorf("cannot encode book: %w", err)
	}

	_, err := s.db.Exec(
		`INSERT INTO slots (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		slotKey, buf.Bytes(),
	)
	if err != nil {
		return fmt.Errorf("cannot write slot %q: %w", slotKey, err)
	}
	return nil
}

var _ shopbook.Storage = (*Store)(nil)

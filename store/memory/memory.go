// Package memory provides an in-memory shopbook.Storage for tests. It keeps
// the encoded bytes rather than the live book, so every Load/Save pair also
// exercises the codec the way the durable backend does.
package memory

import (
	"bytes"
	"fmt"
	"io/fs"

	"github.com/kande/shopbook"
)

// Store implements shopbook.Storage in memory.
type Store struct {
	slot    []byte
	saves   int
	SaveErr error // when set, Save fails with this error
}

// New creates an empty in-memory store.
func New() *Store { return &Store{} }

// Load decodes the stored slot, or reports fs.ErrNotExist if nothing was
// ever saved.
func (s *Store) Load() (*shopbook.Book, error) {
	if s.slot == nil {
		return nil, fmt.Errorf("empty slot: %w", fs.ErrNotExist)
	}
	return shopbook.DecodeBook(bytes.NewReader(s.slot))
}

// Save encodes the book into the slot.
func (s *Store) Save(book *shopbook.Book) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	var buf bytes.Buffer
	if err := shopbook.EncodeBook(&buf, book); err != nil {
		return err
	}
	s.slot = buf.Bytes()
	s.saves++
	return nil
}

// Saves returns how many successful writes the store has seen.
func (s *Store) Saves() int { return s.saves }

// Corrupt overwrites the slot with bytes that do not decode, to simulate an
// unparseable saved book.
func (s *Store) Corrupt() { s.slot = []byte("{\"record\":\"transaction\",broken\n") }

var _ shopbook.Storage = (*Store)(nil)

package sqlite

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kande/shopbook"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "book.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoad_MissingSlot(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Load()
	require.Error(t, err)
	require.True(t, errors.Is(err, fs.ErrNotExist), "a never-written slot must report fs.ErrNotExist, got %v", err)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	book := shopbook.Seed(now)

	require.NoError(t, s.Save(book))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.True(t, loaded.Equal(book), "loaded book differs from the saved one")
}

func TestSave_ReplacesSlot(t *testing.T) {
	s := newTestStore(t)
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	require.NoError(t, s.Save(shopbook.Seed(now)))
	require.NoError(t, s.Save(shopbook.NewBook()))

	loaded, err := s.Load()
	require.NoError(t, err)
	txs, items, debts := loaded.Counts()
	require.Zero(t, txs+items+debts, "second save did not replace the slot")
}

func TestStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.db")
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	book := shopbook.Seed(now)

	s, err := New(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(book))
	require.NoError(t, s.Close())

	reopened, err := New(path)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.Load()
	require.NoError(t, err)
	require.True(t, loaded.Equal(book), "book did not survive a reopen")
}

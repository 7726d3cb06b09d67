package insight

import (
	"context"
	"sync"

	"github.com/kande/shopbook"
)

// FetchFunc produces a tip for a snapshot of the book. It must not fail;
// implementations degrade to a fallback string instead (see
// Service.BusinessTip).
type FetchFunc func(ctx context.Context, book *shopbook.Book) string

// Fetcher is a single-slot asynchronous tip holder. Every state change may
// launch a new fetch; a generation counter guards the slot so that only the
// response of the most recently issued request is published. A slow stale
// response can no longer overwrite a fresh one.
type Fetcher struct {
	fetch FetchFunc

	mu  sync.Mutex
	gen int
	tip string
}

// NewFetcher creates a fetcher around the given fetch function.
func NewFetcher(fetch FetchFunc) *Fetcher {
	return &Fetcher{fetch: fetch}
}

// Launch issues a fetch for a snapshot of the book and returns a channel
// that delivers the published tip once this fetch completes. The request it
// issues supersedes all earlier ones.
func (f *Fetcher) Launch(ctx context.Context, book *shopbook.Book) <-chan string {
	f.mu.Lock()
	f.gen++
	gen := f.gen
	f.mu.Unlock()

	done := make(chan string, 1)
	go func() {
		tip := f.fetch(ctx, book)

		f.mu.Lock()
		if gen == f.gen {
			f.tip = tip
		}
		current := f.tip
		f.mu.Unlock()

		done <- current
	}()
	return done
}

// Latest returns the most recently published tip, or "" when no fetch has
// completed yet.
func (f *Fetcher) Latest() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tip
}

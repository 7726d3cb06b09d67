package insight

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/kande/shopbook"
	"github.com/kande/shopbook/store/memory"
)

func TestBusinessTip_NoKey(t *testing.T) {
	// A service without a client answers with the no-key fallback.
	s := &Service{Model: DefaultModel}
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	if got := s.BusinessTip(context.Background(), shopbook.Seed(now)); got != FallbackNoKey {
		t.Errorf("BusinessTip = %q, want %q", got, FallbackNoKey)
	}
}

func TestPrompt(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	got := Prompt(shopbook.Seed(now))

	for _, want := range []string{
		`"totalSales":36.5`,
		`"totalExpenses":35`,
		`"inventoryCount":3`,
		`"totalDebt":50`,
		"SALE: Sold Milk & Bread ($12.50)",
		"EXPENSE: Electricity Bill ($35.00)",
		"Milk (24 left)",
		"Eggs (120 left)",
		"As a business consultant for a small retail shop",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt does not contain %q:\n%s", want, got)
		}
	}

	// Customer names on debts stay local.
	if strings.Contains(got, "Mark Smith") {
		t.Errorf("prompt leaks a debtor name:\n%s", got)
	}
}

func TestPrompt_KeepsFiveActivities(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	s := shopbook.NewStore(shopbook.NewBook(), memory.New(),
		shopbook.WithClock(func() time.Time { return now }),
	)
	for _, desc := range []string{"one", "two", "three", "four", "five", "six", "seven"} {
		if _, err := s.AddTransaction(shopbook.Sale, desc, shopbook.M(1, shopbook.DefaultCurrency), shopbook.Cash, ""); err != nil {
			t.Fatal(err)
		}
	}

	got := Prompt(s.Book())
	if strings.Contains(got, "SALE: six") || strings.Contains(got, "SALE: seven") {
		t.Errorf("prompt contains more than the five bottom entries:\n%s", got)
	}
	for _, want := range []string{"SALE: one", "SALE: five"} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt does not contain %q:\n%s", want, got)
		}
	}
}

func TestFetcher_PublishesTip(t *testing.T) {
	f := NewFetcher(func(context.Context, *shopbook.Book) string { return "keep more eggs in stock" })

	tip := <-f.Launch(context.Background(), shopbook.NewBook())
	if tip != "keep more eggs in stock" {
		t.Errorf("Launch delivered %q", tip)
	}
	if got := f.Latest(); got != "keep more eggs in stock" {
		t.Errorf("Latest() = %q", got)
	}
}

func TestFetcher_StaleResponseDoesNotOverwrite(t *testing.T) {
	// The first fetch is slow; the second completes immediately. The slow
	// response must not overwrite the fresh one once it finally lands.
	release := make(chan struct{})
	slowBook, fastBook := shopbook.NewBook(), shopbook.NewBook()

	f := NewFetcher(func(_ context.Context, book *shopbook.Book) string {
		if book == slowBook {
			<-release
			return "stale"
		}
		return "fresh"
	})

	first := f.Launch(context.Background(), slowBook)
	second := f.Launch(context.Background(), fastBook)

	if tip := <-second; tip != "fresh" {
		t.Fatalf("second fetch delivered %q, want %q", tip, "fresh")
	}

	close(release)
	if tip := <-first; tip != "fresh" {
		t.Errorf("stale fetch delivered %q, want the published %q", tip, "fresh")
	}
	if got := f.Latest(); got != "fresh" {
		t.Errorf("Latest() = %q, want %q", got, "fresh")
	}
}

func TestFetcher_LatestBeforeAnyFetch(t *testing.T) {
	f := NewFetcher(func(context.Context, *shopbook.Book) string { return "tip" })
	if got := f.Latest(); got != "" {
		t.Errorf("Latest() before any fetch = %q, want empty", got)
	}
}

// Package insight produces the short business tip shown on the home view.
// It summarizes the book and asks Gemini for a couple of sentences of
// advice. The call is strictly best-effort: any failure degrades to a fixed
// fallback string and never blocks a ledger operation.
package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/kande/shopbook"
)

// Fallback strings, kept identical to the original product copy.
const (
	FallbackNoKey = "AI insights are unavailable without an API key."
	FallbackEmpty = "No insights available at the moment."
	FallbackError = "Failed to fetch business insights. Please try again later."
)

// DefaultModel is the text model asked for the tip.
const DefaultModel = "gemini-3-flash-preview"

// Timeout bounds the single attempt; expiry counts as a failure.
const Timeout = 10 * time.Second

// ServiceError reports a failed insight call. It is logged and swallowed
// into a fallback string, never surfaced as a blocking error.
type ServiceError struct {
	Err error
}

func (e *ServiceError) Error() string { return fmt.Sprintf("insight service: %v", e.Err) }
func (e *ServiceError) Unwrap() error { return e.Err }

// Service fetches business tips from Gemini.
type Service struct {
	client *genai.Client
	Model  string
}

// NewService creates the insight service. Without a GEMINI_API_KEY in the
// environment the service still works, answering every request with the
// no-key fallback.
func NewService(ctx context.Context) (*Service, error) {
	s := &Service{Model: DefaultModel}
	if os.Getenv("GEMINI_API_KEY") == "" {
		return s, nil
	}
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot initialize Gemini client: %w", err)
	}
	s.client = client
	return s, nil
}

// BusinessTip asks Gemini for a short advisory string over a snapshot of the
// book. It never fails: a single attempt, bounded by Timeout, degrading to a
// fixed fallback on any error.
func (s *Service) BusinessTip(ctx context.Context, book *shopbook.Book) string {
	if s.client == nil {
		return FallbackNoKey
	}

	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()

	resp, err := s.client.Models.GenerateContent(ctx, s.Model, genai.Text(Prompt(book)), nil)
	if err != nil {
		log.Print(&ServiceError{Err: err})
		return FallbackError
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return FallbackEmpty
	}
	return text
}

// summary is the figures handed to the model, mirroring the shape the shop
// owner sees on the home view.
type summary struct {
	TotalSales       float64  `json:"totalSales"`
	TotalExpenses    float64  `json:"totalExpenses"`
	InventoryCount   int      `json:"inventoryCount"`
	TotalDebt        float64  `json:"totalDebt"`
	RecentActivities []string `json:"recentActivities"`
}

// Prompt builds the consultant prompt for the given book.
func Prompt(book *shopbook.Book) string {
	var sum summary
	var recent []string
	for _, tx := range book.Transactions(shopbook.AcceptAll) {
		switch tx.Type {
		case shopbook.Sale:
			sum.TotalSales += tx.Amount.Decimal().InexactFloat64()
		case shopbook.Expense:
			sum.TotalExpenses += tx.Amount.Decimal().InexactFloat64()
		}
		recent = append(recent, fmt.Sprintf("%s: %s (%s)", tx.Type, tx.Description, tx.Amount))
	}
	// The five oldest entries sit at the bottom of the prepend-ordered book.
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	sum.RecentActivities = recent

	var stock []string
	for _, item := range book.Inventory() {
		sum.InventoryCount++
		stock = append(stock, fmt.Sprintf("%s (%d left)", item.Name, item.Quantity))
	}
	for _, d := range book.Debts() {
		sum.TotalDebt += d.Amount.Decimal().InexactFloat64()
	}

	sumJSON, err := json.Marshal(sum)
	if err != nil {
		// summary only holds numbers and strings; this cannot happen.
		sumJSON = []byte("{}")
	}

	return fmt.Sprintf(`As a business consultant for a small retail shop, analyze the following data:
Summary: %s
Inventory Status: %s

Provide a concise (2-3 sentences) business advice for the shop owner.
Be encouraging and highlight one specific area of improvement based on the data.
Don't use markdown headers, just plain text.`, sumJSON, strings.Join(stock, ", "))
}

package shopbook

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency used for every amount in the book.
// The book is single-currency: records persist the bare amount and are
// rehydrated with this currency.
const DefaultCurrency = "USD"

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case decimal.Decimal:
		return v
	}
	return decimal.Zero
}

// ParseMoney parses a decimal amount string (e.g. "12.50") into a Money in
// the book's currency. Non-numeric input (including "NaN" or "Inf") is
// rejected by the decimal parser.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return M(d, DefaultCurrency), nil
}

// currency returns the money's full currency definition.
func (m Money) currency() money.Currency {
	// to get a never nil currency we go through the money constructor.
	return *money.New(0, m.cur).Currency()
}

// String returns the formatted representation of the money value, e.g. "$12.50".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString is like String but keeps an explicit sign, and renders zero as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string   { return m.cur }
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) IsPositive() bool   { return m.value.IsPositive() }
func (m Money) IsNegative() bool   { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool {
	return m.value.LessThan(n.value)
}

// Decimal returns the amount as a decimal in major units.
func (m Money) Decimal() decimal.Decimal { return m.value }

// MulInt returns the money multiplied by an integer count (e.g. unit price
// times quantity on hand).
func (m Money) MulInt(n int) Money {
	return Money{value: m.value.Mul(decimal.NewFromInt(int64(n))), cur: m.cur}
}

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

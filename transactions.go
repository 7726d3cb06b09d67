package shopbook

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// TransactionType identifies the direction of a transaction.
type TransactionType string

const (
	Sale    TransactionType = "SALE"
	Expense TransactionType = "EXPENSE"
)

// ParseTransactionType parses a string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(strings.ToUpper(s)) {
	case Sale:
		return Sale, nil
	case Expense:
		return Expense, nil
	default:
		return "", &ValidationError{Field: "type", Reason: "must be SALE or EXPENSE"}
	}
}

// PaymentMethod identifies how a transaction was settled.
type PaymentMethod string

const (
	Cash   PaymentMethod = "CASH"
	POS    PaymentMethod = "POS"
	Credit PaymentMethod = "CREDIT"
)

// ParsePaymentMethod parses a string into a PaymentMethod. The empty string
// defaults to Cash, the method the paper book assumes.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToUpper(s)) {
	case "":
		return Cash, nil
	case Cash:
		return Cash, nil
	case POS:
		return POS, nil
	case Credit:
		return Credit, nil
	default:
		return "", &ValidationError{Field: "method", Reason: "must be CASH, POS or CREDIT"}
	}
}

// Transaction is a single sale or expense. Transactions are immutable once
// recorded: they are only ever appended to the book, never updated.
type Transaction struct {
	ID          string
	Type        TransactionType
	Description string
	Amount      Money
	Timestamp   time.Time
	Method      PaymentMethod
	Category    string // optional, mostly used on expenses
}

// NewTransaction creates a transaction record. The timestamp is truncated to
// milliseconds, the precision of the persisted form, so that a record always
// round-trips to a deep-equal value.
func NewTransaction(id string, typ TransactionType, description string, amount Money, at time.Time, method PaymentMethod, category string) Transaction {
	return Transaction{
		ID:          id,
		Type:        typ,
		Description: description,
		Amount:      amount,
		Timestamp:   at.Truncate(time.Millisecond),
		Method:      method,
		Category:    category,
	}
}

// Validate checks the transaction's fields before it enters the book.
func (t Transaction) Validate() error {
	if t.ID == "" {
		return &ValidationError{Field: "id", Reason: "is missing"}
	}
	if t.Type != Sale && t.Type != Expense {
		return &ValidationError{Field: "type", Reason: "must be SALE or EXPENSE"}
	}
	if strings.TrimSpace(t.Description) == "" {
		return &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if t.Amount.IsNegative() {
		return &ValidationError{Field: "amount", Reason: "must not be negative"}
	}
	if t.Method != Cash && t.Method != POS && t.Method != Credit {
		return &ValidationError{Field: "method", Reason: "must be CASH, POS or CREDIT"}
	}
	return nil
}

func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID && t.Type == o.Type && t.Description == o.Description &&
		t.Amount.Equal(o.Amount) && t.Timestamp.Equal(o.Timestamp) &&
		t.Method == o.Method && t.Category == o.Category
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", recordTransaction)
	w.Append("id", t.ID)
	w.Append("type", t.Type)
	w.Append("description", t.Description)
	w.Append("amount", t.Amount.value)
	w.Append("timestamp", t.Timestamp.UnixMilli())
	w.Append("method", t.Method)
	w.Optional("category", t.Category)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
// The amount is a bare number in the book's currency, the timestamp epoch millis.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID          string          `json:"id"`
		Type        TransactionType `json:"type"`
		Description string          `json:"description"`
		Amount      decimal.Decimal `json:"amount"`
		Timestamp   int64           `json:"timestamp"`
		Method      PaymentMethod   `json:"method"`
		Category    string          `json:"category"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.ID = temp.ID
	t.Type = temp.Type
	t.Description = temp.Description
	t.Amount = M(temp.Amount, DefaultCurrency)
	t.Timestamp = time.UnixMilli(temp.Timestamp)
	t.Method = temp.Method
	t.Category = temp.Category
	return nil
}

// InventoryItem is a stock line. Adding the same name twice yields two
// independent lines: there is no merge on name.
type InventoryItem struct {
	ID       string
	Name     string
	Quantity int   // units on hand
	Price    Money // per unit
}

// NewInventoryItem creates a stock line record.
func NewInventoryItem(id, name string, quantity int, price Money) InventoryItem {
	return InventoryItem{ID: id, Name: name, Quantity: quantity, Price: price}
}

// Validate checks the item's fields before it enters the book.
func (i InventoryItem) Validate() error {
	if i.ID == "" {
		return &ValidationError{Field: "id", Reason: "is missing"}
	}
	if strings.TrimSpace(i.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if i.Quantity < 0 {
		return &ValidationError{Field: "quantity", Reason: "must not be negative"}
	}
	if i.Price.IsNegative() {
		return &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	return nil
}

func (i InventoryItem) Equal(o InventoryItem) bool {
	return i.ID == o.ID && i.Name == o.Name && i.Quantity == o.Quantity && i.Price.Equal(o.Price)
}

// MarshalJSON implements the json.Marshaler interface for InventoryItem.
func (i InventoryItem) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", recordInventory)
	w.Append("id", i.ID)
	w.Append("name", i.Name)
	w.Append("quantity", i.Quantity)
	w.Append("price", i.Price.value)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for InventoryItem.
func (i *InventoryItem) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID       string          `json:"id"`
		Name     string          `json:"name"`
		Quantity int             `json:"quantity"`
		Price    decimal.Decimal `json:"price"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	i.ID = temp.ID
	i.Name = temp.Name
	i.Quantity = temp.Quantity
	i.Price = M(temp.Price, DefaultCurrency)
	return nil
}

// Debt is an amount a named customer owes the shop. It stays in the book
// until it is settled, which removes it; there is no partial payment.
type Debt struct {
	ID           string
	CustomerName string
	Amount       Money
	Timestamp    time.Time
}

// NewDebt creates a debt record, truncating the timestamp to the persisted
// millisecond precision.
func NewDebt(id, customerName string, amount Money, at time.Time) Debt {
	return Debt{ID: id, CustomerName: customerName, Amount: amount, Timestamp: at.Truncate(time.Millisecond)}
}

// Validate checks the debt's fields before it enters the book.
func (d Debt) Validate() error {
	if d.ID == "" {
		return &ValidationError{Field: "id", Reason: "is missing"}
	}
	if strings.TrimSpace(d.CustomerName) == "" {
		return &ValidationError{Field: "customerName", Reason: "must not be empty"}
	}
	if d.Amount.IsNegative() {
		return &ValidationError{Field: "amount", Reason: "must not be negative"}
	}
	return nil
}

func (d Debt) Equal(o Debt) bool {
	return d.ID == o.ID && d.CustomerName == o.CustomerName &&
		d.Amount.Equal(o.Amount) && d.Timestamp.Equal(o.Timestamp)
}

// MarshalJSON implements the json.Marshaler interface for Debt.
func (d Debt) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", recordDebt)
	w.Append("id", d.ID)
	w.Append("customerName", d.CustomerName)
	w.Append("amount", d.Amount.value)
	w.Append("timestamp", d.Timestamp.UnixMilli())
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Debt.
func (d *Debt) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID           string          `json:"id"`
		CustomerName string          `json:"customerName"`
		Amount       decimal.Decimal `json:"amount"`
		Timestamp    int64           `json:"timestamp"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	d.ID = temp.ID
	d.CustomerName = temp.CustomerName
	d.Amount = M(temp.Amount, DefaultCurrency)
	d.Timestamp = time.UnixMilli(temp.Timestamp)
	return nil
}

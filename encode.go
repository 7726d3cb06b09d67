package shopbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// recordKind is a typed string identifying the kind of a persisted record.
type recordKind string

const (
	recordTransaction recordKind = "transaction"
	recordInventory   recordKind = "inventory"
	recordDebt        recordKind = "debt"
)

// The book is persisted as JSONL: one record per line, each line a JSON
// object whose "record" property names its kind. Lines appear in book order
// (transactions, then inventory, then debts, each most-recent-first), so the
// encoded form is canonical and the decoded book preserves display order.

// EncodeBook writes the whole book to w in JSONL format.
func EncodeBook(w io.Writer, b *Book) error {
	for _, tx := range b.transactions {
		if err := encodeRecord(w, tx); err != nil {
			return err
		}
	}
	for _, item := range b.inventory {
		if err := encodeRecord(w, item); err != nil {
			return err
		}
	}
	for _, d := range b.debts {
		if err := encodeRecord(w, d); err != nil {
			return err
		}
	}
	return nil
}

// encodeRecord marshals a single record and writes it to w followed by a
// newline.
func encodeRecord(w io.Writer, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// DecodeBook reads a JSONL stream and rebuilds the book. Records keep their
// stream order, which is the book order. Empty lines are skipped; a line
// that is not a known record is an error, which callers treat as an
// unparseable slot and fall back to the seed dataset.
func DecodeBook(r io.Reader) (*Book, error) {
	book := NewBook()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(strings.TrimSpace(string(lineBytes))) == 0 {
			continue
		}

		var identifier struct {
			Record recordKind `json:"record"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(lineBytes), err)
		}

		switch identifier.Record {
		case recordTransaction:
			var tx Transaction
			if err := json.Unmarshal(lineBytes, &tx); err != nil {
				return nil, fmt.Errorf("invalid transaction record %q: %w", string(lineBytes), err)
			}
			book.transactions = append(book.transactions, tx)
		case recordInventory:
			var item InventoryItem
			if err := json.Unmarshal(lineBytes, &item); err != nil {
				return nil, fmt.Errorf("invalid inventory record %q: %w", string(lineBytes), err)
			}
			book.inventory = append(book.inventory, item)
		case recordDebt:
			var d Debt
			if err := json.Unmarshal(lineBytes, &d); err != nil {
				return nil, fmt.Errorf("invalid debt record %q: %w", string(lineBytes), err)
			}
			book.debts = append(book.debts, d)
		default:
			return nil, fmt.Errorf("unknown record kind %q in line %q", identifier.Record, string(lineBytes))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	return book, nil
}

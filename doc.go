// Package shopbook implements the record book of a small retail shop.
//
// The book holds three prepend-ordered collections: transactions (sales and
// expenses), inventory items, and customer debts. A Store applies mutations
// to the in-memory book and writes the whole aggregate through to a durable
// key-value slot after every change. Derived daily metrics (sales, expenses
// and profit for the current calendar day, plus the all-time debt total) are
// recomputed on read.
//
// Persistence is a canonical JSONL encoding, one tagged record per line, so
// the saved book stays human-readable and diff-friendly.
package shopbook

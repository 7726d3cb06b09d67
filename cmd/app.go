// Package cmd implements the CLI application to keep the shop book.
package cmd

import (
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/kande/shopbook"
	"github.com/kande/shopbook/store/sqlite"
)

// Register registers all shopbook subcommands on the commander.
func Register(c *subcommands.Commander) {
	c.Register(&saleCmd{}, "recording")
	c.Register(&expenseCmd{}, "recording")
	c.Register(&debtCmd{}, "recording")
	c.Register(&paidCmd{}, "recording")
	c.Register(&stockAddCmd{}, "recording")

	c.Register(&txCmd{}, "viewing")
	c.Register(&stockCmd{}, "viewing")
	c.Register(&debtsCmd{}, "viewing")
	c.Register(&summaryCmd{}, "viewing")

	c.Register(&insightCmd{}, "insight")

	c.Register(&seedCmd{}, "maintenance")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dbPath = flag.String("db", "shopbook.db", "Path to the shop book database file")

// OpenStore opens the durable slot and loads the book, seeding a fresh one
// on first run. The returned close function must be called before exit.
func OpenStore() (*shopbook.Store, func() error, error) {
	storage, err := sqlite.New(*dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open shop book at %q: %w", *dbPath, err)
	}
	return shopbook.Open(storage), storage.Close, nil
}

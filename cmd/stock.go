package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"

	"github.com/kande/shopbook"
	"github.com/kande/shopbook/renderer"
)

type stockCmd struct{}

func (*stockCmd) Name() string     { return "stock" }
func (*stockCmd) Synopsis() string { return "list the stock lines in the book" }
func (*stockCmd) Usage() string {
	return `sbk stock

  Lists all stock lines, most recent first, with the value of each line.
`
}

func (*stockCmd) SetFlags(_ *flag.FlagSet) {}

func (c *stockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	var items []shopbook.InventoryItem
	for _, item := range store.Book().Inventory() {
		items = append(items, item)
	}
	printMarkdown(renderer.Stock(items))
	return subcommands.ExitSuccess
}

type stockAddCmd struct{}

func (*stockAddCmd) Name() string     { return "restock" }
func (*stockAddCmd) Synopsis() string { return "add a stock line" }
func (*stockAddCmd) Usage() string {
	return `sbk restock <quantity> <unit-price> <item name>

  Adds a new stock line to the book. Lines with the same name are kept as
  independent entries; quantities are never merged.

Usage Examples:
$ sbk restock 24 2.50 Milk
`
}

func (*stockAddCmd) SetFlags(_ *flag.FlagSet) {}

func (c *stockAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 3 {
		fmt.Fprintln(os.Stderr, "Error: a quantity, a unit price and an item name are required.")
		return subcommands.ExitUsageError
	}

	quantity, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing quantity: %v\n", err)
		return subcommands.ExitUsageError
	}
	price, err := shopbook.ParseMoney(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing unit price: %v\n", err)
		return subcommands.ExitUsageError
	}
	name := strings.Join(f.Args()[2:], " ")

	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	item, err := store.AddInventoryItem(name, quantity, price)
	var verr *shopbook.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintln(os.Stderr, "Error:", verr)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning:", err)
	}
	fmt.Printf("Added stock line %s: %d x %s at %s\n", item.ID, item.Quantity, item.Name, item.Price)
	return subcommands.ExitSuccess
}

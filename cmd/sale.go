package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/kande/shopbook"
)

type saleCmd struct {
	method string
}

func (*saleCmd) Name() string     { return "sale" }
func (*saleCmd) Synopsis() string { return "log a sale" }
func (*saleCmd) Usage() string {
	return `sbk sale [-m <method>] <amount> <description>

  Logs a sale for the given amount. The description is the rest of the
  command line.

Usage Examples:
$ sbk sale 12.50 Sold Milk & Bread
$ sbk sale -m pos 24.00 Customer: John Doe
`
}

func (c *saleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.method, "m", "cash", "Payment method (cash, pos, credit).")
}

func (c *saleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, status := recordTransaction(shopbook.Sale, c.method, "", f)
	if status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Logged sale %s: %s %s\n", tx.ID, tx.Amount, tx.Description)
	return subcommands.ExitSuccess
}

// recordTransaction parses <amount> <description...> from the remaining
// arguments and records the transaction. Shared by sale and expense.
func recordTransaction(typ shopbook.TransactionType, method, category string, f *flag.FlagSet) (shopbook.Transaction, subcommands.ExitStatus) {
	if f.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Error: an amount and a description are required.")
		return shopbook.Transaction{}, subcommands.ExitUsageError
	}

	amount, err := shopbook.ParseMoney(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return shopbook.Transaction{}, subcommands.ExitUsageError
	}
	description := strings.Join(f.Args()[1:], " ")

	m, err := shopbook.ParsePaymentMethod(method)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return shopbook.Transaction{}, subcommands.ExitUsageError
	}

	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return shopbook.Transaction{}, subcommands.ExitFailure
	}
	defer closeStore()

	tx, err := store.AddTransaction(typ, description, amount, m, category)
	var verr *shopbook.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintln(os.Stderr, "Error:", verr)
		return shopbook.Transaction{}, subcommands.ExitUsageError
	}
	if err != nil {
		// The record is in the book but the durable write failed.
		fmt.Fprintln(os.Stderr, "Warning:", err)
	}
	return tx, subcommands.ExitSuccess
}

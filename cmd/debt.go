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

type debtCmd struct{}

func (*debtCmd) Name() string     { return "debt" }
func (*debtCmd) Synopsis() string { return "record a customer debt" }
func (*debtCmd) Usage() string {
	return `sbk debt <amount> <customer name>

  Records an amount a customer owes the shop. The debt stays in the book
  until it is marked paid with 'sbk paid'.

Usage Examples:
$ sbk debt 50.00 Mark Smith
`
}

func (*debtCmd) SetFlags(_ *flag.FlagSet) {}

func (c *debtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Error: an amount and a customer name are required.")
		return subcommands.ExitUsageError
	}

	amount, err := shopbook.ParseMoney(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	customer := strings.Join(f.Args()[1:], " ")

	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	d, err := store.AddDebt(customer, amount)
	var verr *shopbook.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintln(os.Stderr, "Error:", verr)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning:", err)
	}
	fmt.Printf("Recorded debt %s: %s owes %s\n", d.ID, d.CustomerName, d.Amount)
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type paidCmd struct{}

func (*paidCmd) Name() string     { return "paid" }
func (*paidCmd) Synopsis() string { return "mark a debt as paid" }
func (*paidCmd) Usage() string {
	return `sbk paid <debt-id>

  Removes the debt with the given id from the book. Settling an id that is
  not in the book is a no-op: running the command twice is harmless.
  Use 'sbk debts' to find the id.
`
}

func (*paidCmd) SetFlags(_ *flag.FlagSet) {}

func (c *paidCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one debt id is required.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	removed, err := store.SettleDebt(id)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning:", err)
	}
	if !removed {
		fmt.Printf("No outstanding debt with id %q.\n", id)
		return subcommands.ExitSuccess
	}
	fmt.Printf("Debt %s marked paid.\n", id)
	return subcommands.ExitSuccess
}

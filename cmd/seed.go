package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type seedCmd struct{}

func (*seedCmd) Name() string     { return "seed" }
func (*seedCmd) Synopsis() string { return "fill an empty book with the example dataset" }
func (*seedCmd) Usage() string {
	return `sbk seed

  Fills an empty book with the example dataset and saves it, useful to try
  the commands out before recording real data. A book that already holds
  records is left untouched.
`
}

func (*seedCmd) SetFlags(_ *flag.FlagSet) {}

func (c *seedCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	if err := store.Reseed(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	t, i, d := store.Book().Counts()
	fmt.Printf("Seeded the book with %d transactions, %d stock lines and %d debts.\n", t, i, d)
	return subcommands.ExitSuccess
}

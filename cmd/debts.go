package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/kande/shopbook"
	"github.com/kande/shopbook/renderer"
)

type debtsCmd struct{}

func (*debtsCmd) Name() string     { return "debts" }
func (*debtsCmd) Synopsis() string { return "list outstanding debts" }
func (*debtsCmd) Usage() string {
	return `sbk debts

  Lists all outstanding debts, most recent first, with the total owed.
`
}

func (*debtsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *debtsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	var debts []shopbook.Debt
	for _, d := range store.Book().Debts() {
		debts = append(debts, d)
	}
	printMarkdown(renderer.Debts(debts))
	return subcommands.ExitSuccess
}

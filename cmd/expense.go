package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/kande/shopbook"
)

type expenseCmd struct {
	method   string
	category string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "log an expense" }
func (*expenseCmd) Usage() string {
	return `sbk expense [-m <method>] [-c <category>] <amount> <description>

  Logs an expense for the given amount. The description is the rest of the
  command line.

Usage Examples:
$ sbk expense -c Utility 35.00 Electricity Bill
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.method, "m", "cash", "Payment method (cash, pos, credit).")
	f.StringVar(&c.category, "c", "", "Expense category (e.g. Utility, Restock).")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, status := recordTransaction(shopbook.Expense, c.method, c.category, f)
	if status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Logged expense %s: %s %s\n", tx.ID, tx.Amount, tx.Description)
	return subcommands.ExitSuccess
}

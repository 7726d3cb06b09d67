package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/kande/shopbook"
	"github.com/kande/shopbook/date"
	"github.com/kande/shopbook/renderer"
)

type txCmd struct {
	typ   string
	start string
	end   string
	head  int
	tail  int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions in the book" }
func (*txCmd) Usage() string {
	return `sbk tx [-type <sale|expense>] [-s <start_date>] [-d <end_date>] [-head <n>] [-tail <n>]

  Lists transactions from the book, most recent first, with options for
  filtering by type and day range and limiting the output.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "type", "", "Only list this transaction type (sale, expense).")
	f.StringVar(&c.start, "s", "", "The start date of the range.")
	f.StringVar(&c.end, "d", "", "The end date of the range (defaults to today when -s is set).")
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	filter := shopbook.AcceptAll
	if c.typ != "" {
		typ, err := shopbook.ParseTransactionType(c.typ)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		filter = shopbook.ByType(typ)
	}

	// A date range narrows the listing further.
	inRange := func(shopbook.Transaction) bool { return true }
	if c.start != "" || c.end != "" {
		endStr := c.end
		if endStr == "" {
			endStr = date.Today().String()
		}
		end, err := date.Parse(endStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitUsageError
		}
		start := end
		if c.start != "" {
			start, err = date.Parse(c.start)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
				return subcommands.ExitUsageError
			}
		}
		inRange = shopbook.ByRange(date.NewRange(start, end))
	}

	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	var transactions []shopbook.Transaction
	for _, tx := range store.Book().Transactions(filter) {
		if inRange(tx) {
			transactions = append(transactions, tx)
		}
	}

	if c.head > 0 && len(transactions) > c.head {
		transactions = transactions[:c.head]
	}
	if c.tail > 0 && len(transactions) > c.tail {
		transactions = transactions[len(transactions)-c.tail:]
	}

	printMarkdown(renderer.Transactions(transactions))
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/kande/shopbook/date"
	"github.com/kande/shopbook/insight"
	"github.com/kande/shopbook/renderer"
)

type summaryCmd struct {
	day     string
	insight bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show the daily metrics for the shop" }
func (*summaryCmd) Usage() string {
	return `sbk summary [-d <date>] [-insight]

  Shows sales, expenses and profit for the day, together with the number
  of outstanding debts and the total owed. With -insight the summary ends
  with an AI-generated business tip.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.day, "d", date.Today().String(), "The day to summarize.")
	f.BoolVar(&c.insight, "insight", false, "Append an AI business insight to the summary.")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := date.Parse(c.day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	ref := time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, time.Local)
	metrics := store.DailyMetrics(ref)

	var tip string
	if c.insight {
		service, err := insight.NewService(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Warning:", err)
		} else {
			tip = service.BusinessTip(ctx, store.Book())
		}
	}

	printMarkdown(renderer.Summary(metrics, tip))
	return subcommands.ExitSuccess
}

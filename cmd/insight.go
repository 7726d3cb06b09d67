package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/kande/shopbook/insight"
)

type insightCmd struct{}

func (*insightCmd) Name() string     { return "insight" }
func (*insightCmd) Synopsis() string { return "ask for an AI business tip" }
func (*insightCmd) Usage() string {
	return `sbk insight

  Summarizes the book and asks Gemini for a short business tip. Requires a
  GEMINI_API_KEY in the environment; without one a fixed message is printed
  instead.
`
}

func (*insightCmd) SetFlags(_ *flag.FlagSet) {}

func (c *insightCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, closeStore, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	service, err := insight.NewService(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fetcher := insight.NewFetcher(service.BusinessTip)
	tip := <-fetcher.Launch(ctx, store.Book())
	printMarkdown(tip)
	return subcommands.ExitSuccess
}

package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown report on the terminal. When rendering
// fails (e.g. a dumb terminal), the raw markdown is printed instead.
func printMarkdown(doc string) {
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		fmt.Print(doc)
		return
	}
	fmt.Print(out)
}

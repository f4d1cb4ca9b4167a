package commands

import (
	"io"

	"aocfetch/lib/fetcher"

	"github.com/jedib0t/go-pretty/v6/table"
)

func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(out)
	return t
}

func renderSummary(out io.Writer, results []fetcher.Result) {
	t := newTable(out)
	t.AppendHeader(table.Row{"Day", "Prompt", "Input"})
	for _, r := range results {
		t.AppendRow(table.Row{r.Day, r.Outcome.PromptState(), r.Outcome.InputState()})
	}
	t.Render()
}

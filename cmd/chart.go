package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/greenstar/chart"
	"github.com/google/subcommands"
)

type chartCmd struct {
	kind   string
	title  string
	output string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render a chart of all projects" }
func (*chartCmd) Usage() string {
	return `gstar chart -type <bar|line|pie|scatter> [-title <title>] [-o <file>]

  Renders a chart of the projects of the snapshot file:
  - bar: rating per project, a rating not available counts as 0.
  - line: registered and certified dates per project.
  - pie: share of projects per rating tool.
  - scatter: certified date per project.

  The chart is saved as an image (jpg, png, svg, pdf, from the file extension),
  by default into a file named after the chart type (e.g. barChart.jpg).
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "type", "bar", "Chart type: bar, line, pie or scatter")
	f.StringVar(&c.title, "title", "", "Chart title, defaults to the chart type title")
	f.StringVar(&c.output, "o", "", "Image file, defaults to the chart type file")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := chart.ParseKind(c.kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	opts := chart.Options{Title: c.title, SavePath: c.output}
	if opts.Title == "" {
		opts.Title = kind.Title()
	}
	if opts.SavePath == "" {
		opts.SavePath = kind.File()
	}

	store, err := DecodeStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading projects: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := chart.New(kind, store.Projects(), opts).Render(stdout, terminal); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

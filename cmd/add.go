package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/greenstar"
	"github.com/google/subcommands"
)

type addCmd struct {
	name       string
	location   string
	registered string
	certified  string
	ratingTool string
	rating     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a project to the snapshot file" }
func (*addCmd) Usage() string {
	return `gstar add -n <name> [-l <location>] -r <dd/mm/yyyy> -c <dd/mm/yyyy> [-t <rating tool>] [-rating <n|NA>]

  Appends a new project to the snapshot file, creating it if needed.
  Dates use the dd/mm/yyyy format. The rating is a non-negative integer,
  or NA when not available.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Project name (required)")
	f.StringVar(&c.location, "l", "", "Project location")
	f.StringVar(&c.registered, "r", "", "Registered date dd/mm/yyyy (required)")
	f.StringVar(&c.certified, "c", "", "Certified date dd/mm/yyyy (required)")
	f.StringVar(&c.ratingTool, "t", "", "Rating tool")
	f.StringVar(&c.rating, "rating", greenstar.NotAvailable, "Rating, or NA if not available")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -n is required.")
		return subcommands.ExitUsageError
	}
	rating, err := greenstar.ParseRating(c.rating)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing rating: %v\n", err)
		return subcommands.ExitUsageError
	}
	p := greenstar.NewProject(c.name, c.location, c.registered, c.certified, c.ratingTool, rating)
	if err := p.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing dates: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := DecodeStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading projects: %v\n", err)
		return subcommands.ExitFailure
	}
	store.Add(p)
	if err := EncodeStore(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving projects: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(stdout, "✅ Successfully added project %q to %s.\n", c.name, *snapshotFile)
	return subcommands.ExitSuccess
}

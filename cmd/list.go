package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/greenstar/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display all projects" }
func (*listCmd) Usage() string {
	return `gstar list

  Displays the projects of the snapshot file, in the order they were added.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := DecodeStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading projects: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderProjects(store.Projects()))
	return subcommands.ExitSuccess
}

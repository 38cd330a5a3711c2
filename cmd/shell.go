package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/greenstar"
	"github.com/etnz/greenstar/shell"
	"github.com/google/subcommands"
)

type shellCmd struct {
	charts string
	load   bool
}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "record and chart projects from an interactive menu" }
func (*shellCmd) Usage() string {
	return `gstar shell [-charts <folder>] [-load]

  Starts the interactive menu. This is the default command.
  Projects are kept in memory: use the menu to save them to a .gob file
  and to load them back.
`
}

func (c *shellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.charts, "charts", ".", "Folder where charts are saved")
	f.BoolVar(&c.load, "load", false, "Start with the projects of the snapshot file")
}

func (c *shellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := new(greenstar.Store)
	if c.load {
		var err error
		store, err = DecodeStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading projects: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	s := shell.New(stdout, os.Stdin, store, terminal)
	s.ChartDir = c.charts
	if err := s.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

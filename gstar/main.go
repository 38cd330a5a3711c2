// Command gstar records Green Star certified projects and charts them.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"path"

	"github.com/etnz/greenstar/cmd"
	"github.com/google/subcommands"
)

func main() {
	cmd.Completion().Complete("gstar")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	if !*cmd.Verbose {
		log.SetOutput(io.Discard)
	}

	// the interactive menu is the default command.
	if flag.NArg() == 0 {
		flag.CommandLine.Parse([]string{"shell"})
	}
	os.Exit(int(commander.Execute(context.Background())))
}

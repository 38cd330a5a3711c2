// Package cmd implements the gstar command line application to record and chart Green Star projects.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/greenstar"
	"github.com/etnz/greenstar/chart"
	"github.com/etnz/greenstar/renderer"
	"github.com/google/subcommands"
)

// EnvSnapshotFile overrides the default snapshot file.
const EnvSnapshotFile = "GSTAR_SNAPSHOT_FILE"

// Commands lists all gstar subcommands.
var Commands = []subcommands.Command{
	&shellCmd{},
	&addCmd{},
	&listCmd{},
	&chartCmd{},
	&queryCmd{},
	&exportCmd{},
	&importCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var snapshotFile = flag.String("snapshot-file", defaultSnapshotFile(), "Path to the projects snapshot file (.gob)")

// Verbose enables logging.
var Verbose = flag.Bool("v", false, "Verbose logging")

// stdout is where commands print their results.
var stdout io.Writer = os.Stdout

func defaultSnapshotFile() string {
	if f := os.Getenv(EnvSnapshotFile); f != "" {
		return f
	}
	return "projects" + greenstar.SnapshotExt
}

// DecodeStore loads the projects from the app snapshot file.
// A missing file is an empty store.
func DecodeStore() (*greenstar.Store, error) {
	store := new(greenstar.Store)
	if _, err := os.Stat(*snapshotFile); errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, snapshot %q does not exist, starting with no projects", *snapshotFile)
		return store, nil
	}
	if err := store.Restore(*snapshotFile); err != nil {
		return nil, err
	}
	return store, nil
}

// EncodeStore saves the projects into the app snapshot file.
func EncodeStore(s *greenstar.Store) error {
	return s.Snapshot(*snapshotFile)
}

// printMarkdown prints md, styled for the terminal.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		log.Printf("cannot style markdown: %v", err)
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Printf("cannot style markdown: %v", err)
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

// terminal displays figures as markdown tables in the terminal.
var terminal = chart.DisplayFunc(func(f *chart.Figure) error {
	printMarkdown(renderer.RenderFigure(f))
	return nil
})

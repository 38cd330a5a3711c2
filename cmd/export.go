package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/greenstar"
	"github.com/google/subcommands"
)

// --- Export Command ---

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write projects as JSONL" }
func (*exportCmd) Usage() string {
	return `gstar export [-o <file.jsonl>]

  Writes all projects, one JSON object per line, to the standard output or
  to a file.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file, the standard output by default")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := DecodeStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading projects: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.output == "" {
		if err := greenstar.EncodeJSONL(stdout, store.Projects()); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing projects: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating file %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	defer out.Close()
	if err := greenstar.EncodeJSONL(out, store.Projects()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Successfully exported %d projects to %s\n", store.Len(), c.output)
	return subcommands.ExitSuccess
}

// --- Import Command ---

type importCmd struct {
	replace bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "read projects from JSONL files" }
func (*importCmd) Usage() string {
	return `gstar import [-replace] <file.jsonl>...

  Appends the projects of JSONL files (as written by export) to the snapshot
  file. Every project is validated before anything is saved.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.replace, "replace", false, "Replace the projects instead of appending")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one file is required.")
		return subcommands.ExitUsageError
	}

	var imported []greenstar.Project
	for _, file := range f.Args() {
		projects, err := decodeJSONLFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", file, err)
			return subcommands.ExitFailure
		}
		imported = append(imported, projects...)
	}

	store := new(greenstar.Store)
	if !c.replace {
		var err error
		if store, err = DecodeStore(); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading projects: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	for _, p := range imported {
		store.Add(p)
	}
	if err := EncodeStore(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving projects: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Successfully imported %d projects into %s\n", len(imported), *snapshotFile)
	return subcommands.ExitSuccess
}

func decodeJSONLFile(file string) ([]greenstar.Project, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return greenstar.DecodeJSONL(f)
}

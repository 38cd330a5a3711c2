package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/greenstar"
	"github.com/google/go-cmp/cmp"
	"github.com/google/subcommands"
)

var projectCmp = cmp.AllowUnexported(greenstar.Project{}, greenstar.Rating{})

func twoProjects() []greenstar.Project {
	return []greenstar.Project{
		greenstar.NewProject("Project 1", "Location 1", "01/01/2022", "01/01/2023", "Tool 1", greenstar.R(5)),
		greenstar.NewProject("Project 2", "Location 2", "01/01/2021", "01/01/2022", "Tool 2", greenstar.R(6)),
	}
}

// useSnapshot points the app to a temporary snapshot file holding projects.
func useSnapshot(t *testing.T, projects ...greenstar.Project) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "projects.gob")
	if len(projects) > 0 {
		if err := greenstar.NewStore(projects...).Snapshot(file); err != nil {
			t.Fatal(err)
		}
	}
	old := snapshotFile
	snapshotFile = &file
	t.Cleanup(func() { snapshotFile = old })
	return file
}

// captureStdout redirects the command output for the duration of the test.
func captureStdout(t *testing.T) *strings.Builder {
	t.Helper()
	var b strings.Builder
	old := stdout
	stdout = &b
	t.Cleanup(func() { stdout = old })
	return &b
}

// execute parses args for c and executes it.
func execute(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("parsing %v: %v", args, err)
	}
	return c.Execute(context.Background(), f)
}

func TestDecodeStore_Missing(t *testing.T) {
	useSnapshot(t)
	store, err := DecodeStore()
	if err != nil {
		t.Fatalf("DecodeStore() unexpected error: %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("Len() = %d, want 0", store.Len())
	}
}

func TestDecodeStore_Corrupt(t *testing.T) {
	file := useSnapshot(t)
	if err := os.WriteFile(file, []byte("garbage"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeStore(); err == nil {
		t.Error("DecodeStore() of a corrupt file should fail")
	}
}

func TestAddCommand(t *testing.T) {
	useSnapshot(t)
	out := captureStdout(t)

	status := execute(t, &addCmd{}, "-n", "Project 1", "-l", "Location 1", "-r", "01/01/2022", "-c", "01/01/2023", "-t", "Tool 1", "-rating", "5")
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	status = execute(t, &addCmd{}, "-n", "Project 2", "-l", "Location 2", "-r", "01/01/2021", "-c", "01/01/2022", "-t", "Tool 2", "-rating", "6")
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}

	store, err := DecodeStore()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(twoProjects(), store.Projects(), projectCmp); diff != "" {
		t.Errorf("projects mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(out.String(), `Successfully added project "Project 2"`) {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestAddCommand_UsageErrors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "missing name", args: []string{"-r", "01/01/2022", "-c", "01/01/2023"}},
		{name: "bad registered date", args: []string{"-n", "P", "-r", "2022-01-01", "-c", "01/01/2023"}},
		{name: "missing certified date", args: []string{"-n", "P", "-r", "01/01/2022"}},
		{name: "bad rating", args: []string{"-n", "P", "-r", "01/01/2022", "-c", "01/01/2023", "-rating", "4.5"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			file := useSnapshot(t)
			captureStdout(t)
			if status := execute(t, &addCmd{}, tc.args...); status != subcommands.ExitUsageError {
				t.Errorf("Expected ExitUsageError, got %v", status)
			}
			if _, err := os.Stat(file); !os.IsNotExist(err) {
				t.Errorf("snapshot file should not be created: %v", err)
			}
		})
	}
}

func TestAddCommand_DefaultRatingIsNotAvailable(t *testing.T) {
	useSnapshot(t)
	captureStdout(t)
	if status := execute(t, &addCmd{}, "-n", "P", "-r", "01/01/2022", "-c", "01/01/2023"); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	store, err := DecodeStore()
	if err != nil {
		t.Fatal(err)
	}
	if store.Len() != 1 || !store.Projects()[0].Rating().IsNA() {
		t.Errorf("projects = %v, want one project rated NA", store.Projects())
	}
}

func TestListCommand(t *testing.T) {
	useSnapshot(t, twoProjects()...)
	out := captureStdout(t)
	if status := execute(t, &listCmd{}); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	for _, want := range []string{"Project 1", "Location 2", "Tool 1"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output should contain %q:\n%s", want, out.String())
		}
	}
}

func TestChartCommand(t *testing.T) {
	useSnapshot(t, twoProjects()...)
	out := captureStdout(t)
	file := filepath.Join(t.TempDir(), "pie.png")

	if status := execute(t, &chartCmd{}, "-type", "pie", "-o", file); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	if _, err := os.Stat(file); err != nil {
		t.Errorf("chart not saved: %v", err)
	}
	if !strings.Contains(out.String(), "Chart saved as "+file) {
		t.Errorf("missing save announcement:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "50.0%") {
		t.Errorf("missing shares in the displayed figure:\n%s", out.String())
	}
}

func TestChartCommand_Errors(t *testing.T) {
	t.Run("unknown type", func(t *testing.T) {
		useSnapshot(t, twoProjects()...)
		captureStdout(t)
		if status := execute(t, &chartCmd{}, "-type", "histogram"); status != subcommands.ExitUsageError {
			t.Errorf("Expected ExitUsageError, got %v", status)
		}
	})
	t.Run("no projects", func(t *testing.T) {
		useSnapshot(t)
		captureStdout(t)
		file := filepath.Join(t.TempDir(), "bar.png")
		if status := execute(t, &chartCmd{}, "-type", "bar", "-o", file); status != subcommands.ExitFailure {
			t.Errorf("Expected ExitFailure, got %v", status)
		}
	})
}

func TestQueryCommand(t *testing.T) {
	useSnapshot(t, twoProjects()...)
	out := captureStdout(t)
	if status := execute(t, &queryCmd{}, "$[*].name"); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	want := "[\n  \"Project 1\",\n  \"Project 2\"\n]\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
	if status := execute(t, &queryCmd{}); status != subcommands.ExitUsageError {
		t.Errorf("Expected ExitUsageError without expression, got %v", status)
	}
}

func TestQueryCommand_Filter(t *testing.T) {
	useSnapshot(t, twoProjects()...)
	out := captureStdout(t)
	if status := execute(t, &queryCmd{}, "$[?(@.rating >= 6)].name"); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	want := "[\n  \"Project 2\"\n]\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestExportImport(t *testing.T) {
	useSnapshot(t, twoProjects()...)
	captureStdout(t)
	jsonl := filepath.Join(t.TempDir(), "projects.jsonl")
	if status := execute(t, &exportCmd{}, "-o", jsonl); status != subcommands.ExitSuccess {
		t.Fatalf("export: Expected ExitSuccess, got %v", status)
	}

	// import twice in a new snapshot: the second import appends.
	useSnapshot(t)
	if status := execute(t, &importCmd{}, jsonl); status != subcommands.ExitSuccess {
		t.Fatalf("import: Expected ExitSuccess, got %v", status)
	}
	if status := execute(t, &importCmd{}, jsonl); status != subcommands.ExitSuccess {
		t.Fatalf("import: Expected ExitSuccess, got %v", status)
	}
	store, err := DecodeStore()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(append(twoProjects(), twoProjects()...), store.Projects(), projectCmp); diff != "" {
		t.Errorf("projects mismatch (-want +got):\n%s", diff)
	}

	if status := execute(t, &importCmd{}, "-replace", jsonl); status != subcommands.ExitSuccess {
		t.Fatalf("import -replace: Expected ExitSuccess, got %v", status)
	}
	if store, err = DecodeStore(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(twoProjects(), store.Projects(), projectCmp); diff != "" {
		t.Errorf("projects mismatch after replace (-want +got):\n%s", diff)
	}
}

func TestExportStdout(t *testing.T) {
	useSnapshot(t, twoProjects()[:1]...)
	out := captureStdout(t)
	if status := execute(t, &exportCmd{}); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	want := `{"name":"Project 1","location":"Location 1","registered":"01/01/2022","certified":"01/01/2023","ratingTool":"Tool 1","rating":5}` + "\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestCompletion(t *testing.T) {
	c := Completion()
	for _, command := range Commands {
		if _, ok := c.Sub[command.Name()]; !ok {
			t.Errorf("command %q has no completion", command.Name())
		}
	}
}

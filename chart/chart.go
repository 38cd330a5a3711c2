// Package chart renders project lists as bar, line, pie and scatter charts.
package chart

import (
	"errors"
	"fmt"
	"io"
	"log"
	"slices"

	"github.com/etnz/greenstar"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// ErrNoProjects is returned when rendering an empty list of projects.
var ErrNoProjects = errors.New("no projects to chart")

// Default image size.
const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 6 * vg.Inch
)

// Options configures a Chart. All fields are optional.
type Options struct {
	Title    string
	SavePath string // image file to write, format from the extension.
	Width    vg.Length
	Height   vg.Length
}

// Figure is one rendered chart: the plot itself and a table of the plotted values.
type Figure struct {
	Kind    Kind
	Title   string
	Plot    *plot.Plot
	Columns []string
	Rows    [][]string
}

// Displayer shows a figure to the user.
type Displayer interface {
	Display(f *Figure) error
}

// DisplayFunc adapts a function to the Displayer interface.
type DisplayFunc func(f *Figure) error

func (fn DisplayFunc) Display(f *Figure) error { return fn(f) }

// Chart is one chart variant bound to its projects.
type Chart struct {
	kind     Kind
	projects []greenstar.Project
	opts     Options
}

// New creates a chart of kind k over a copy of projects.
func New(k Kind, projects []greenstar.Project, opts Options) *Chart {
	if opts.Width == 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height == 0 {
		opts.Height = DefaultHeight
	}
	return &Chart{kind: k, projects: slices.Clone(projects), opts: opts}
}

// Kind returns the chart kind.
func (c *Chart) Kind() Kind { return c.kind }

// builders maps each kind to the function building its figure.
var builders = map[Kind]func([]greenstar.Project) (*Figure, error){
	Bar:     bar,
	Line:    line,
	Pie:     pie,
	Scatter: scatter,
}

// Figure builds the figure, with the title applied.
func (c *Chart) Figure() (*Figure, error) {
	if len(c.projects) == 0 {
		return nil, ErrNoProjects
	}
	build, ok := builders[c.kind]
	if !ok {
		return nil, fmt.Errorf("unknown chart kind %d", c.kind)
	}
	f, err := build(c.projects)
	if err != nil {
		return nil, fmt.Errorf("%s chart: %w", c.kind, err)
	}
	f.Kind = c.kind
	if c.opts.Title != "" {
		f.Title = c.opts.Title
		f.Plot.Title.Text = c.opts.Title
	}
	return f, nil
}

// Render builds the figure, saves it if a SavePath was set, announcing it on w,
// and hands it to d.
func (c *Chart) Render(w io.Writer, d Displayer) error {
	f, err := c.Figure()
	if err != nil {
		return err
	}
	if c.opts.SavePath != "" {
		if err := f.Plot.Save(c.opts.Width, c.opts.Height, c.opts.SavePath); err != nil {
			return fmt.Errorf("saving %s chart to %q: %w", c.kind, c.opts.SavePath, err)
		}
		fmt.Fprintf(w, "Chart saved as %s\n", c.opts.SavePath)
	}
	if d == nil {
		log.Printf("no display for the %s chart", c.kind)
		return nil
	}
	return d.Display(f)
}

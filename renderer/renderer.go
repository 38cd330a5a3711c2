// Package renderer renders projects and chart figures as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/greenstar"
	"github.com/etnz/greenstar/chart"
)

//go:embed templates/*.md
var templatesFS embed.FS

// templates is the folder of templates.
var templates, _ = fs.Sub(templatesFS, "templates")

// Table is a markdown table.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ProjectsTable returns the table of projects, in order.
func ProjectsTable(projects []greenstar.Project) Table {
	t := Table{Columns: []string{"Name", "Location", "Registered", "Certified", "Rating tool", "Rating"}}
	for _, p := range projects {
		t.Rows = append(t.Rows, []string{p.Name(), p.Location(), p.Registered(), p.Certified(), p.RatingTool(), p.Rating().String()})
	}
	return t
}

// RenderProjects renders the list of projects to a markdown string.
func RenderProjects(projects []greenstar.Project) string {
	partials := map[string]string{
		"table": "table.md",
	}
	return renderTemplate("projects", "projects.md", partials, ProjectsTable(projects))
}

// figureView is the data of the figure template.
type figureView struct {
	Title string
	Table Table
}

// RenderFigure renders the values plotted in a figure to a markdown string.
func RenderFigure(f *chart.Figure) string {
	view := figureView{
		Title: f.Title,
		Table: Table{Columns: f.Columns, Rows: f.Rows},
	}
	if view.Title == "" {
		view.Title = f.Kind.Label()
	}
	partials := map[string]string{
		"table": "table.md",
	}
	return renderTemplate("figure", "figure.md", partials, view)
}

var funcs = template.FuncMap{
	// cell escapes the pipe character in a table cell.
	"cell": func(s string) string { return strings.ReplaceAll(s, "|", `\|`) },
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

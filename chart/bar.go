package chart

import (
	"github.com/etnz/greenstar"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// bar plots one horizontal bar per project, its length is the rating.
// A rating not available is drawn as 0.
func bar(projects []greenstar.Project) (*Figure, error) {
	values := make(plotter.Values, len(projects))
	names := make([]string, len(projects))
	rows := make([][]string, len(projects))
	for i, p := range projects {
		values[i] = float64(p.Rating().OrZero())
		names[i] = p.Name()
		rows[i] = []string{p.Name(), p.Rating().String()}
	}

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return nil, err
	}
	bars.Horizontal = true
	bars.Color = plotutil.Color(0)
	bars.LineStyle.Width = 0

	p := plot.New()
	p.X.Label.Text = "Rating"
	p.Y.Label.Text = "Project"
	p.X.Min = 0
	p.Add(bars)
	p.NominalY(names...)

	return &Figure{
		Plot:    p,
		Columns: []string{"Project", "Rating"},
		Rows:    rows,
	}, nil
}

package chart

import (
	"math"

	"github.com/etnz/greenstar"
	"github.com/etnz/greenstar/date"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// scatter plots the certified date of each project.
func scatter(projects []greenstar.Project) (*Figure, error) {
	xys := make(plotter.XYs, len(projects))
	names := make([]string, len(projects))
	rows := make([][]string, len(projects))
	for i, pr := range projects {
		on, err := pr.CertifiedOn()
		if err != nil {
			return nil, err
		}
		xys[i].X = float64(on.Unix())
		xys[i].Y = float64(i)
		names[i] = pr.Name()
		rows[i] = []string{pr.Name(), on.String()}
	}

	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Color = plotutil.Color(0)
	s.GlyphStyle.Radius = vg.Points(4)

	p := plot.New()
	p.X.Label.Text = "Certified Date"
	p.Y.Label.Text = "Project"
	dateAxis(p)
	p.Add(s)
	p.NominalY(names...)

	return &Figure{
		Plot:    p,
		Columns: []string{"Project", "Certified"},
		Rows:    rows,
	}, nil
}

// dateAxis formats the X axis of p as dd/mm/yyyy dates, rotated.
func dateAxis(p *plot.Plot) {
	p.X.Tick.Marker = plot.TimeTicks{Format: date.DateFormat}
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
}

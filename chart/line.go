package chart

import (
	"image/color"

	"github.com/etnz/greenstar"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Series colors: green for registered, cyan for certified.
var (
	registeredColor = color.RGBA{G: 128, A: 255}
	certifiedColor  = color.RGBA{G: 191, B: 191, A: 255}
)

// line plots the registered and certified dates of each project as two series.
func line(projects []greenstar.Project) (*Figure, error) {
	registered := make(plotter.XYs, len(projects))
	certified := make(plotter.XYs, len(projects))
	names := make([]string, len(projects))
	rows := make([][]string, len(projects))
	for i, pr := range projects {
		reg, err := pr.RegisteredOn()
		if err != nil {
			return nil, err
		}
		cert, err := pr.CertifiedOn()
		if err != nil {
			return nil, err
		}
		registered[i] = plotter.XY{X: float64(reg.Unix()), Y: float64(i)}
		certified[i] = plotter.XY{X: float64(cert.Unix()), Y: float64(i)}
		names[i] = pr.Name()
		rows[i] = []string{pr.Name(), reg.String(), cert.String()}
	}

	p := plot.New()
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Project"
	dateAxis(p)

	regLine, regPoints, err := plotter.NewLinePoints(registered)
	if err != nil {
		return nil, err
	}
	regLine.LineStyle.Color = registeredColor
	regPoints.GlyphStyle.Color = registeredColor
	regPoints.GlyphStyle.Shape = draw.CrossGlyph{}
	regPoints.GlyphStyle.Radius = vg.Points(4)

	certLine, certPoints, err := plotter.NewLinePoints(certified)
	if err != nil {
		return nil, err
	}
	certLine.LineStyle.Color = certifiedColor
	certPoints.GlyphStyle.Color = certifiedColor
	certPoints.GlyphStyle.Shape = draw.CircleGlyph{}
	certPoints.GlyphStyle.Radius = vg.Points(3)

	p.Add(regLine, regPoints, certLine, certPoints)
	p.Legend.Add("Registered Date", regLine, regPoints)
	p.Legend.Add("Certified Date", certLine, certPoints)
	p.Legend.Top = true
	p.NominalY(names...)

	return &Figure{
		Plot:    p,
		Columns: []string{"Project", "Registered", "Certified"},
		Rows:    rows,
	}, nil
}

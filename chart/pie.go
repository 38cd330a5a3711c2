package chart

import (
	"math"
	"strconv"

	"github.com/etnz/greenstar"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// pie plots the share of each rating tool.
func pie(projects []greenstar.Project) (*Figure, error) {
	shares := Shares(projects)
	rows := make([][]string, len(shares))
	for i, s := range shares {
		rows[i] = []string{s.Label, strconv.Itoa(s.Count), s.PercentString()}
	}

	p := plot.New()
	p.HideAxes()
	p.Add(&pieSlices{shares: shares})

	return &Figure{
		Plot:    p,
		Columns: []string{"Rating tool", "Projects", "Share"},
		Rows:    rows,
	}, nil
}

// pieSlices implements plot.Plotter, drawing one wedge per share,
// counterclockwise from the east.
type pieSlices struct {
	shares []Share
}

// Plot implements the plot.Plotter interface.
func (ps *pieSlices) Plot(c draw.Canvas, plt *plot.Plot) {
	center := vg.Point{X: (c.Min.X + c.Max.X) / 2, Y: (c.Min.Y + c.Max.Y) / 2}
	radius := min(c.Max.X-c.Min.X, c.Max.Y-c.Min.Y) * 0.35

	sty := plt.Legend.TextStyle
	sty.XAlign = text.XCenter
	sty.YAlign = text.YCenter

	start := 0.0
	for i, s := range ps.shares {
		sweep := 2 * math.Pi * s.Fraction()

		var wedge vg.Path
		wedge.Move(center)
		wedge.Arc(center, radius, start, sweep)
		wedge.Close()
		c.SetColor(plotutil.Color(i))
		c.Fill(wedge)

		mid := start + sweep/2
		at := vg.Point{
			X: center.X + radius*1.25*vg.Length(math.Cos(mid)),
			Y: center.Y + radius*1.25*vg.Length(math.Sin(mid)),
		}
		c.FillText(sty, at, s.String())
		start += sweep
	}
}

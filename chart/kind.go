package chart

import (
	"fmt"
	"strings"
)

// Kind selects one of the chart variants.
type Kind int

const (
	Bar Kind = iota
	Line
	Pie
	Scatter
)

// Kinds returns all chart kinds, in menu order.
func Kinds() []Kind { return []Kind{Bar, Line, Pie, Scatter} }

func (k Kind) String() string {
	switch k {
	case Bar:
		return "bar"
	case Line:
		return "line"
	case Pie:
		return "pie"
	case Scatter:
		return "scatter"
	default:
		panic(fmt.Sprintf("unknown chart kind %d", k))
	}
}

// ParseKind parses a chart kind name.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "bar":
		return Bar, nil
	case "line":
		return Line, nil
	case "pie":
		return Pie, nil
	case "scatter":
		return Scatter, nil
	default:
		return Bar, fmt.Errorf("unknown chart type %q want one of bar, line, pie, scatter", s)
	}
}

// Title returns the default title for this kind of chart.
func (k Kind) Title() string {
	switch k {
	case Bar:
		return "Project - Green Star Ratings"
	case Line:
		return "Registered and Certified Dates of Green Star Projects"
	case Pie:
		return "Distribution of Rating Tools Used"
	case Scatter:
		return "Certified Date vs Project"
	default:
		panic(fmt.Sprintf("unknown chart kind %d", k))
	}
}

// File returns the default export file name for this kind of chart.
func (k Kind) File() string {
	switch k {
	case Bar:
		return "barChart.jpg"
	case Line:
		return "lineChart.jpg"
	case Pie:
		return "pieChart.jpg"
	case Scatter:
		return "scatterPlot.jpg"
	default:
		panic(fmt.Sprintf("unknown chart kind %d", k))
	}
}

// Label returns the menu label of the chart kind.
func (k Kind) Label() string {
	switch k {
	case Bar:
		return "Bar Chart"
	case Line:
		return "Line Chart"
	case Pie:
		return "Pie Chart"
	case Scatter:
		return "Scatter Plot"
	default:
		panic(fmt.Sprintf("unknown chart kind %d", k))
	}
}

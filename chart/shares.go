package chart

import (
	"fmt"

	"github.com/etnz/greenstar"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Share is the part of projects using one rating tool.
type Share struct {
	Label   string
	Count   int
	Percent decimal.Decimal // exact share in percent of all projects.
}

// Fraction returns the share as a fraction of 1.
func (s Share) Fraction() float64 { return s.Percent.Div(hundred).InexactFloat64() }

// PercentString returns the percentage with one decimal, e.g. "50.0%".
func (s Share) PercentString() string { return s.Percent.StringFixed(1) + "%" }

func (s Share) String() string { return fmt.Sprintf("%s (%s)", s.Label, s.PercentString()) }

// Shares counts projects per rating tool, in order of first appearance.
func Shares(projects []greenstar.Project) []Share {
	if len(projects) == 0 {
		return nil
	}
	var shares []Share
	index := make(map[string]int)
	for _, p := range projects {
		i, ok := index[p.RatingTool()]
		if !ok {
			i = len(shares)
			index[p.RatingTool()] = i
			shares = append(shares, Share{Label: p.RatingTool()})
		}
		shares[i].Count++
	}
	total := decimal.NewFromInt(int64(len(projects)))
	for i := range shares {
		shares[i].Percent = decimal.NewFromInt(int64(shares[i].Count)).Mul(hundred).Div(total)
	}
	return shares
}

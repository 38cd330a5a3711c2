package cmd

import (
	"github.com/etnz/greenstar/chart"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the gstar command line.
func Completion() *complete.Command {
	kinds := predict.Set{}
	for _, k := range chart.Kinds() {
		kinds = append(kinds, k.String())
	}
	jsonl := predict.Files("*.jsonl")

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"snapshot-file": predict.Files("*.gob"),
			"v":             predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"shell": {
				Flags: map[string]complete.Predictor{
					"charts": predict.Dirs("*"),
					"load":   predict.Nothing,
				},
			},
			"add": {
				Flags: map[string]complete.Predictor{
					"n":      predict.Something,
					"l":      predict.Something,
					"r":      predict.Something,
					"c":      predict.Something,
					"t":      predict.Something,
					"rating": predict.Something,
				},
			},
			"list": {},
			"chart": {
				Flags: map[string]complete.Predictor{
					"type":  kinds,
					"title": predict.Something,
					"o":     predict.Files("*"),
				},
			},
			"query": {Args: predict.Something},
			"export": {
				Flags: map[string]complete.Predictor{"o": jsonl},
			},
			"import": {
				Flags: map[string]complete.Predictor{"replace": predict.Nothing},
				Args:  jsonl,
			},
			"topic": {Args: predict.Something},
		},
	}
}

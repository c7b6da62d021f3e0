package cmd

import (
	"github.com/etnz/percentage/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion description of pcalc.
func Completion() *complete.Command {
	topics, err := docs.GetAllTopics()
	if err != nil {
		topics = nil
	}
	topics = append(topics, "readme", "*")

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"currency": predict.Set{"EUR", "USD", "GBP", "CHF", "JPY"},
			"v":        predict.Nothing,
			"plain":    predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"calc": {
				Flags: map[string]complete.Predictor{
					"base":  predict.Something,
					"table": predict.Nothing,
				},
			},
			"session": {
				Flags: map[string]complete.Predictor{
					"f":    predict.Files("*"),
					"base": predict.Something,
					"show": predict.Nothing,
				},
			},
			"topic":    {Args: predict.Set(topics)},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
	}
}

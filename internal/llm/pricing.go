package llm

import (
	"regexp"
	"strings"
)

// Price is USD per million tokens.
type Price struct {
	Input  float64
	Output float64
}

// USD returns the cost of a call with the given token counts.
func (p Price) USD(inputTokens, outputTokens int) float64 {
	return (float64(inputTokens)*p.Input + float64(outputTokens)*p.Output) / 1e6
}

// prices covers the models the tutor is likely to be pointed at. Dated
// snapshots resolve to their base entry through PriceFor.
var prices = map[string]Price{
	"claude-haiku-4-5":  {1, 5},
	"claude-sonnet-4-5": {3, 15},
	"claude-sonnet-4":   {3, 15},
	"claude-opus-4-5":   {5, 25},
	"claude-3-5-haiku":  {0.8, 4},

	"gpt-4o":       {2.5, 10},
	"gpt-4o-mini":  {0.15, 0.6},
	"gpt-4.1":      {2, 8},
	"gpt-4.1-mini": {0.4, 1.6},
	"gpt-4.1-nano": {0.1, 0.4},
	"gpt-5":        {1.25, 10},
	"gpt-5-mini":   {0.25, 2},
	"gpt-5-nano":   {0.05, 0.4},
	"o4-mini":      {1.1, 4.4},

	"gemini-2.0-flash":      {0.1, 0.4},
	"gemini-2.0-flash-lite": {0.075, 0.3},
	"gemini-2.5-flash":      {0.3, 2.5},
	"gemini-2.5-flash-lite": {0.1, 0.4},
	"gemini-2.5-pro":        {1.25, 10},
}

// Matches "-20251001", "-2024-07-18" and "-001" style snapshot suffixes.
var snapshotSuffix = regexp.MustCompile(`-(\d{8}|\d{4}-\d{2}-\d{2}|\d{3})$`)

// PriceFor returns the price of model. OpenRouter ids like
// "google/gemini-2.0-flash-001" are matched on the part after the slash.
func PriceFor(model string) (Price, bool) {
	for _, m := range []string{model, stripVendor(model)} {
		if p, ok := prices[m]; ok {
			return p, true
		}
		if p, ok := prices[snapshotSuffix.ReplaceAllString(m, "")]; ok {
			return p, true
		}
	}
	return Price{}, false
}

func stripVendor(model string) string {
	return model[strings.LastIndex(model, "/")+1:]
}

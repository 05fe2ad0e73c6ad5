package llm

import "strings"

// ModelCost is a list price in USD per million tokens.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost prices one request.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return (float64(inputTokens)*c.InputPerMTok + float64(outputTokens)*c.OutputPerMTok) / 1e6
}

// LookupCost returns the list price of a model id, or nil when it is not
// known. OpenRouter ids are matched without their vendor prefix, and dated
// snapshots fall back to their base id.
func LookupCost(modelID string) *ModelCost {
	id := modelID
	if _, after, ok := strings.Cut(id, "/"); ok {
		id = after
	}
	for id != "" {
		if c, ok := modelCosts[id]; ok {
			return &c
		}
		i := strings.LastIndexByte(id, '-')
		if i < 0 {
			break
		}
		id = id[:i]
	}
	return nil
}

// modelCosts covers the models elan's aliases resolve to plus their close
// neighbours. Prices as of 2026-02.
var modelCosts = map[string]ModelCost{
	"gemini-2.0-flash":      {0.1, 0.4},
	"gemini-2.5-flash":      {0.3, 2.5},
	"gemini-2.5-flash-lite": {0.1, 0.4},
	"gemini-2.5-pro":        {1.25, 10},
	"gemini-3-flash":        {0.5, 3},
	"gemini-3-pro":          {2, 12},

	"gpt-4o":       {2.5, 10},
	"gpt-4o-mini":  {0.15, 0.6},
	"gpt-4.1":      {2, 8},
	"gpt-4.1-mini": {0.4, 1.6},
	"gpt-4.1-nano": {0.1, 0.4},
	"gpt-5":        {1.25, 10},
	"gpt-5-mini":   {0.25, 2},
	"gpt-5-nano":   {0.05, 0.4},

	"claude-haiku-4-5":  {1, 5},
	"claude-sonnet-4":   {3, 15},
	"claude-sonnet-4-5": {3, 15},
	"claude-opus-4-5":   {5, 25},

	"mistral-small": {0.1, 0.3},
	"mistral-large": {2, 6},
}

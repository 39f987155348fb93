package explain

import "github.com/abhisek/hearwise/internal/llm"

// Schema is the structured output requested from the model.
var Schema = &llm.Schema{
	Name:        "hearing-explanation",
	Description: "Plain-language, non-diagnostic explanation of a hearing screening result",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline": map[string]any{
				"type":        "string",
				"description": "One sentence overall takeaway (at most 15 words)",
			},
			"summary": map[string]any{
				"type":        "string",
				"description": "2-4 sentences describing the result in everyday language",
			},
			"per_ear": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"right": map[string]any{
						"type":        "string",
						"description": "1-2 sentences about the right ear",
					},
					"left": map[string]any{
						"type":        "string",
						"description": "1-2 sentences about the left ear",
					},
				},
				"required":             []any{"right", "left"},
				"additionalProperties": false,
			},
			"next_steps": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-3 practical suggestions (at most 15 words each)",
			},
		},
		"required":             []any{"headline", "summary", "per_ear", "next_steps"},
		"additionalProperties": false,
	},
}

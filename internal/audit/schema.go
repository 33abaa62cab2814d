package audit

import "github.com/learncheck/learncheck/internal/llm"

// VerdictSchema defines the JSON schema for audit responses.
var VerdictSchema = &llm.Schema{
	Name:        "audit-verdict",
	Description: "A relevance verdict for a generated quiz",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"relevance_score": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     100,
				"description": "How well the quiz is grounded in the material, 0-100",
			},
			"pass": map[string]any{
				"type":        "boolean",
				"description": "true when the quiz may be released to the learner",
			},
			"reason": map[string]any{
				"type":        "string",
				"description": "Short justification for the verdict",
			},
		},
		"required": []any{"relevance_score", "pass", "reason"},
	},
}

package quizgen

import "github.com/learncheck/learncheck/internal/llm"

// QuizSchema defines the JSON schema for quiz generation responses.
// It mirrors the quiz.Question contract; cardinality rules that JSON Schema
// cannot express (answers ⊆ options, per-mode answer counts) are enforced
// after parsing.
var QuizSchema = &llm.Schema{
	Name:        "quiz-questions",
	Description: "A short multiple-choice quiz generated from instructional material",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "integer",
							"description": "Sequential question number starting at 1",
						},
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"single", "multiple"},
							"description": "single: exactly one correct answer. multiple: two or more correct answers.",
						},
						"topic": map[string]any{
							"type":        "string",
							"description": "Short topic label for the question, 1-3 words",
						},
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt shown to the learner",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 distinct answer options",
						},
						"answer": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Every correct option, copied verbatim from options",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correct answer is correct, grounded in the material",
						},
						"hint": map[string]any{
							"type":        "string",
							"description": "A one-sentence hint that does not give the answer away",
						},
					},
					"required": []any{"id", "type", "topic", "question", "options", "answer", "explanation"},
				},
			},
		},
		"required": []any{"questions"},
	},
}

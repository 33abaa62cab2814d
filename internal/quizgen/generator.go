// Package quizgen produces candidate quizzes from instructional material
// using the generation capability. It enforces the question contract on
// everything the model returns; a violating response is reported as a
// failed generation, never patched up. Retrying is the pipeline's job.
package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/learncheck/learncheck/internal/llm"
	"github.com/learncheck/learncheck/internal/quiz"
)

// Generator produces candidate quizzes from source material.
type Generator interface {
	// Generate produces a quiz for the material at the given difficulty.
	// The returned quiz satisfies the full question contract. Any failure
	// of the underlying capability, and any contract violation in its
	// output, is returned as an error.
	Generate(ctx context.Context, material string, difficulty quiz.Difficulty) (*quiz.Quiz, error)
}

// LLMGenerator implements Generator using the generation capability.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// quizOutput is the raw model response before contract validation.
type quizOutput struct {
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	ID          int      `json:"id"`
	Type        string   `json:"type"`
	Topic       string   `json:"topic"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      []string `json:"answer"`
	Explanation string   `json:"explanation"`
	Hint        string   `json:"hint"`
}

// Generate produces a quiz for the material at the given difficulty.
func (g *LLMGenerator) Generate(ctx context.Context, material string, difficulty quiz.Difficulty) (*quiz.Quiz, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	material = truncateMaterial(material, g.config.MaxMaterialChars)

	req := llm.Request{
		System: buildSystemPrompt(difficulty, g.config),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(material)},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("quiz generation failed: %w", err)
	}

	var raw quizOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse quiz response: %w", err)
	}

	if len(raw.Questions) == 0 {
		return nil, fmt.Errorf("model returned no questions")
	}
	if len(raw.Questions) != g.config.QuestionCount {
		return nil, fmt.Errorf("expected %d questions, model returned %d",
			g.config.QuestionCount, len(raw.Questions))
	}

	out := &quiz.Quiz{
		Questions: make([]quiz.Question, len(raw.Questions)),
	}
	for i, rq := range raw.Questions {
		out.Questions[i] = quiz.Question{
			// IDs are renumbered sequentially; the model's numbering is
			// not trusted to be unique.
			ID:          i + 1,
			Mode:        quiz.AnswerMode(rq.Type),
			Topic:       rq.Topic,
			Prompt:      rq.Question,
			Options:     rq.Options,
			Answers:     rq.Answer,
			Explanation: rq.Explanation,
			Hint:        rq.Hint,
		}
		if out.Questions[i].Hint == "" {
			out.Questions[i].Hint = fallbackHint(rq.Topic)
		}
	}

	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("malformed quiz from model: %w", err)
	}

	return out, nil
}

// fallbackHint derives a deterministic hint when the model omits one. The
// schema declares hints required on released quizzes, so they are never
// left empty.
func fallbackHint(topic string) string {
	if topic == "" {
		topic = "this topic"
	}
	return fmt.Sprintf("Recall the fundamentals of %s.", topic)
}

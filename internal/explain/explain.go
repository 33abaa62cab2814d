// Package explain produces conversational follow-up explanations for
// questions a learner answered incorrectly.
package explain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/learncheck/learncheck/internal/llm"
	"github.com/learncheck/learncheck/internal/quiz"
)

const systemPrompt = `You are a patient tutor. A learner just answered a quiz question incorrectly.
Explain in two or three short paragraphs why their answer is wrong and why the correct answer is right.
Be encouraging and concrete. Refer to the learner's actual choice. Plain text only, no markdown.`

// Config controls explanation generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns settings tuned for short conversational output.
func DefaultConfig() Config {
	return Config{MaxTokens: 1024, Temperature: 0.6}
}

// Input identifies the question and what the learner chose.
type Input struct {
	Question quiz.Question
	Selected []string
}

// Service generates follow-up explanations.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an explanation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Explain returns a free-form explanation of the learner's mistake. Unlike
// quiz generation there is no schema: the output is prose for direct
// display.
func (s *Service) Explain(ctx context.Context, input Input) (string, error) {
	ctx = llm.WithPurpose(ctx, "explain")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("explanation generation: %w", err)
	}

	text := strings.TrimSpace(string(resp.Content))
	if text == "" {
		return "", fmt.Errorf("explanation generation: %w", &llm.ErrInvalidResponse{Err: errors.New("empty completion")})
	}
	return text, nil
}

func buildUserMessage(input Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n", input.Question.Prompt)
	fmt.Fprintf(&b, "Options: %s\n", strings.Join(input.Question.Options, "; "))
	fmt.Fprintf(&b, "Correct answer: %s\n", strings.Join(input.Question.Answers, "; "))
	if len(input.Selected) == 0 {
		b.WriteString("The learner did not select any option.\n")
	} else {
		fmt.Fprintf(&b, "The learner selected: %s\n", strings.Join(input.Selected, "; "))
	}
	if input.Question.Explanation != "" {
		fmt.Fprintf(&b, "Reference explanation: %s\n", input.Question.Explanation)
	}
	return b.String()
}

// Package audit scores a candidate quiz for relevance to its source
// material before the pipeline releases it. The auditor shares the
// generation capability with the quiz generator but uses its own prompt
// and output schema.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/learncheck/learncheck/internal/llm"
	"github.com/learncheck/learncheck/internal/quiz"
)

// Verdict is the auditor's judgment of one candidate quiz. Consumed once
// per generation attempt, never persisted.
type Verdict struct {
	// Score is the relevance score, 0-100.
	Score float64 `json:"relevance_score"`

	// Pass reports whether the quiz may be released.
	Pass bool `json:"pass"`

	// Reason is a short free-text justification.
	Reason string `json:"reason"`
}

// BypassScore is the neutral score reported when the audit call fails and
// the permissive default verdict is substituted.
const BypassScore = 50

// Config controls auditor behavior.
type Config struct {
	// StrictOnFailure, when true, turns an audit capability failure into a
	// rejecting verdict instead of the permissive bypass. The default
	// (false) favors availability: a transient auditor outage never blocks
	// quiz delivery.
	StrictOnFailure bool

	// MaxTokens is the token budget for the verdict response.
	MaxTokens int

	// Temperature controls model output randomness. Auditing wants
	// determinism, so the default is 0.
	Temperature float64
}

// DefaultConfig returns the availability-first configuration.
func DefaultConfig() Config {
	return Config{
		StrictOnFailure: false,
		MaxTokens:       512,
		Temperature:     0,
	}
}

// Auditor judges candidate quizzes against their source material.
type Auditor interface {
	// Audit returns a verdict for the quiz. It never returns an error in
	// the permissive configuration; capability failures produce a bypass
	// verdict so the pipeline is not blocked by auditor outages.
	Audit(ctx context.Context, material string, q *quiz.Quiz) Verdict
}

// LLMAuditor implements Auditor using the generation capability.
type LLMAuditor struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMAuditor with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMAuditor {
	return &LLMAuditor{provider: provider, config: cfg}
}

// Audit judges the quiz against the material.
func (a *LLMAuditor) Audit(ctx context.Context, material string, q *quiz.Quiz) Verdict {
	ctx = llm.WithPurpose(ctx, "audit")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(material, q)},
		},
		Schema:      VerdictSchema,
		MaxTokens:   a.config.MaxTokens,
		Temperature: a.config.Temperature,
	}

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		return a.failureVerdict(err)
	}

	var verdict Verdict
	if err := json.Unmarshal(resp.Content, &verdict); err != nil {
		return a.failureVerdict(fmt.Errorf("parse verdict: %w", err))
	}

	return verdict
}

// failureVerdict implements the audit failure policy. Availability over
// strictness: by default a failed audit call passes the quiz through with
// a neutral score rather than blocking delivery on evaluator outages.
func (a *LLMAuditor) failureVerdict(err error) Verdict {
	if a.config.StrictOnFailure {
		return Verdict{
			Score:  0,
			Pass:   false,
			Reason: fmt.Sprintf("auditor unavailable, rejecting under strict policy: %v", err),
		}
	}
	return Verdict{
		Score:  BypassScore,
		Pass:   true,
		Reason: "auditor unavailable, bypassed",
	}
}

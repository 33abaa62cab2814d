// Package pipeline drives quiz production: generate a candidate, audit it
// for relevance, and retry a bounded number of times until a candidate is
// accepted. The loop is a plain state machine; logging happens through an
// injected observer, never inside the control flow.
package pipeline

import (
	"context"
	"fmt"

	"github.com/learncheck/learncheck/internal/audit"
	"github.com/learncheck/learncheck/internal/quiz"
	"github.com/learncheck/learncheck/internal/quizgen"
)

// Config controls the orchestration loop.
type Config struct {
	// MaxAttempts bounds generation attempts. The generation capability is
	// metered and slow, so this is a hard policy constant, not a tunable
	// the loop may exceed.
	MaxAttempts int
}

// DefaultConfig returns the canonical two-attempt budget.
func DefaultConfig() Config {
	return Config{MaxAttempts: 2}
}

// Observer receives loop events for logging and metrics. All methods are
// notifications only; they cannot influence the loop.
type Observer interface {
	GenerationFailed(attempt int, err error)
	AuditCompleted(attempt int, verdict audit.Verdict)
	QuizAccepted(attempt int, verdict audit.Verdict)
}

// QualityError is the terminal failure: no candidate was accepted within
// the attempt budget. The caller never receives a partially valid quiz.
type QualityError struct {
	Attempts int
	LastErr  error
}

func (e *QualityError) Error() string {
	if e.LastErr != nil {
		return fmt.Sprintf("no valid quiz could be produced after %d attempts: %v", e.Attempts, e.LastErr)
	}
	return fmt.Sprintf("no valid quiz could be produced after %d attempts", e.Attempts)
}

func (e *QualityError) Unwrap() error { return e.LastErr }

// Service orchestrates generation and audit.
type Service struct {
	generator quizgen.Generator
	auditor   audit.Auditor
	config    Config
	observer  Observer
}

// New creates a pipeline Service. Observer may be nil.
func New(generator quizgen.Generator, auditor audit.Auditor, cfg Config, obs Observer) *Service {
	return &Service{
		generator: generator,
		auditor:   auditor,
		config:    cfg,
		observer:  obs,
	}
}

// ProduceQuiz runs the generate-audit loop and returns an accepted quiz
// carrying audit metadata, or a terminal error once the attempt budget is
// exhausted. Attempts are strictly sequential: each audit decision gates
// whether another attempt happens at all.
func (s *Service) ProduceQuiz(ctx context.Context, material string, difficulty quiz.Difficulty) (*quiz.Quiz, error) {
	var lastErr error

	for attempt := 1; attempt <= s.config.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		candidate, err := s.generator.Generate(ctx, material, difficulty)
		if err != nil {
			// A failed generation consumes an attempt and retries; it is
			// only fatal once the budget runs out.
			lastErr = err
			if s.observer != nil {
				s.observer.GenerationFailed(attempt, err)
			}
			continue
		}

		verdict := s.auditor.Audit(ctx, material, candidate)
		if s.observer != nil {
			s.observer.AuditCompleted(attempt, verdict)
		}

		if verdict.Pass {
			candidate.Audit = &quiz.AuditInfo{
				Score:    verdict.Score,
				Attempts: attempt,
				Verified: true,
			}
			if s.observer != nil {
				s.observer.QuizAccepted(attempt, verdict)
			}
			return candidate, nil
		}

		lastErr = fmt.Errorf("audit rejected quiz: %s", verdict.Reason)
	}

	return nil, &QualityError{Attempts: s.config.MaxAttempts, LastErr: lastErr}
}

package pipeline

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/learncheck/learncheck/internal/audit"
	"github.com/learncheck/learncheck/internal/llm"
	"github.com/learncheck/learncheck/internal/quiz"
	"github.com/learncheck/learncheck/internal/quizgen"
)

func quizJSON() string {
	return `{
		"questions": [
			{
				"id": 1,
				"type": "single",
				"topic": "Indexes",
				"question": "Which index type suits range scans?",
				"options": ["B-tree", "Hash", "Bitmap", "Bloom"],
				"answer": ["B-tree"],
				"explanation": "B-trees keep keys ordered.",
				"hint": "Ordering matters."
			},
			{
				"id": 2,
				"type": "multiple",
				"topic": "Transactions",
				"question": "Which are ACID properties?",
				"options": ["Atomicity", "Latency", "Isolation", "Sharding"],
				"answer": ["Atomicity", "Isolation"],
				"explanation": "ACID stands for atomicity, consistency, isolation, durability.",
				"hint": "Expand the acronym."
			},
			{
				"id": 3,
				"type": "single",
				"topic": "Joins",
				"question": "Which join keeps unmatched left rows?",
				"options": ["LEFT JOIN", "INNER JOIN", "CROSS JOIN", "SELF JOIN"],
				"answer": ["LEFT JOIN"],
				"explanation": "LEFT JOIN preserves the left side.",
				"hint": "The name says which side survives."
			}
		]
	}`
}

func passVerdict(score int) string {
	return `{"relevance_score": ` + strconv.Itoa(score) + `, "pass": true, "reason": "questions match the material"}`
}

func failVerdict() string {
	return `{"relevance_score": 12, "pass": false, "reason": "questions drift off topic"}`
}

type recordingObserver struct {
	genFailures int
	audits      []audit.Verdict
	accepted    int
}

func (r *recordingObserver) GenerationFailed(attempt int, err error) { r.genFailures++ }
func (r *recordingObserver) AuditCompleted(attempt int, v audit.Verdict) {
	r.audits = append(r.audits, v)
}
func (r *recordingObserver) QuizAccepted(attempt int, v audit.Verdict) { r.accepted++ }

func newService(gen, aud *llm.MockProvider, obs Observer) *Service {
	return New(
		quizgen.New(gen, quizgen.DefaultConfig()),
		audit.New(aud, audit.DefaultConfig()),
		DefaultConfig(),
		obs,
	)
}

func TestProduceQuiz_FirstAttemptAccepted(t *testing.T) {
	gen := llm.NewMockProvider(llm.Canned(quizJSON()))
	aud := llm.NewMockProvider(llm.Canned(passVerdict(88)))
	obs := &recordingObserver{}

	got, err := newService(gen, aud, obs).ProduceQuiz(context.Background(), "database material", quiz.DifficultyMedium)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Audit == nil {
		t.Fatal("expected audit metadata on accepted quiz")
	}
	if got.Audit.Score != 88 || got.Audit.Attempts != 1 || !got.Audit.Verified {
		t.Errorf("unexpected audit metadata: %+v", got.Audit)
	}
	if obs.accepted != 1 {
		t.Errorf("expected 1 accepted event, got %d", obs.accepted)
	}
	if len(gen.Purposes) != 1 || gen.Purposes[0] != "quiz-gen" {
		t.Errorf("generator purposes = %v, want [quiz-gen]", gen.Purposes)
	}
	if len(aud.Purposes) != 1 || aud.Purposes[0] != "audit" {
		t.Errorf("auditor purposes = %v, want [audit]", aud.Purposes)
	}
}

func TestProduceQuiz_GeneratorFailureRetries(t *testing.T) {
	gen := llm.NewMockProvider(
		llm.Failure(&llm.ErrProviderUnavailable{Err: errors.New("upstream 503")}),
		llm.Canned(quizJSON()),
	)
	aud := llm.NewMockProvider(llm.Canned(passVerdict(75)))
	obs := &recordingObserver{}

	got, err := newService(gen, aud, obs).ProduceQuiz(context.Background(), "database material", quiz.DifficultyEasy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Audit.Attempts != 2 {
		t.Errorf("expected attempts 2, got %d", got.Audit.Attempts)
	}
	if !got.Audit.Verified {
		t.Error("expected verified quiz")
	}
	if obs.genFailures != 1 {
		t.Errorf("expected 1 generation failure event, got %d", obs.genFailures)
	}
}

func TestProduceQuiz_AuditRejectionRetries(t *testing.T) {
	gen := llm.NewMockProvider(
		llm.Canned(quizJSON()),
		llm.Canned(quizJSON()),
	)
	aud := llm.NewMockProvider(
		llm.Canned(failVerdict()),
		llm.Canned(passVerdict(91)),
	)
	obs := &recordingObserver{}

	got, err := newService(gen, aud, obs).ProduceQuiz(context.Background(), "database material", quiz.DifficultyHard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Audit.Attempts != 2 || got.Audit.Score != 91 {
		t.Errorf("unexpected audit metadata: %+v", got.Audit)
	}
	if len(obs.audits) != 2 {
		t.Fatalf("expected 2 audit events, got %d", len(obs.audits))
	}
	if obs.audits[0].Pass || !obs.audits[1].Pass {
		t.Errorf("unexpected audit sequence: %+v", obs.audits)
	}
}

func TestProduceQuiz_ExhaustedBudgetIsQualityError(t *testing.T) {
	gen := llm.NewMockProvider(
		llm.Canned(quizJSON()),
		llm.Canned(quizJSON()),
	)
	aud := llm.NewMockProvider(
		llm.Canned(failVerdict()),
		llm.Canned(failVerdict()),
	)

	_, err := newService(gen, aud, nil).ProduceQuiz(context.Background(), "database material", quiz.DifficultyMedium)
	if err == nil {
		t.Fatal("expected quality error")
	}

	var qe *QualityError
	if !errors.As(err, &qe) {
		t.Fatalf("expected QualityError, got %T: %v", err, err)
	}
	if qe.Attempts != 2 {
		t.Errorf("expected 2 attempts, got %d", qe.Attempts)
	}
	if !strings.Contains(err.Error(), "no valid quiz could be produced") {
		t.Errorf("unexpected message: %v", err)
	}
	if gen.CallCount() != 2 {
		t.Errorf("expected exactly 2 generation calls, got %d", gen.CallCount())
	}
}

func TestProduceQuiz_AllGenerationsFail(t *testing.T) {
	gen := llm.NewMockProvider(
		llm.Failure(errors.New("boom")),
		llm.Failure(errors.New("boom again")),
	)
	aud := llm.NewMockProvider()
	obs := &recordingObserver{}

	_, err := newService(gen, aud, obs).ProduceQuiz(context.Background(), "database material", quiz.DifficultyMedium)

	var qe *QualityError
	if !errors.As(err, &qe) {
		t.Fatalf("expected QualityError, got %v", err)
	}
	if obs.genFailures != 2 {
		t.Errorf("expected 2 generation failure events, got %d", obs.genFailures)
	}
	if aud.CallCount() != 0 {
		t.Errorf("auditor must not run without a candidate, got %d calls", aud.CallCount())
	}
}

func TestProduceQuiz_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gen := llm.NewMockProvider(llm.Canned(quizJSON()))
	aud := llm.NewMockProvider(llm.Canned(passVerdict(80)))

	_, err := newService(gen, aud, nil).ProduceQuiz(ctx, "database material", quiz.DifficultyMedium)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if gen.CallCount() != 0 {
		t.Errorf("expected no generation calls after cancellation, got %d", gen.CallCount())
	}
}

package audit

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/learncheck/learncheck/internal/llm"
	"github.com/learncheck/learncheck/internal/quiz"
)

func candidateQuiz() *quiz.Quiz {
	return &quiz.Quiz{
		Questions: []quiz.Question{
			{
				ID:          1,
				Mode:        quiz.ModeSingle,
				Topic:       "Goroutines",
				Prompt:      "What starts a goroutine?",
				Options:     []string{"go", "run", "spawn", "fork"},
				Answers:     []string{"go"},
				Explanation: "The go statement starts a goroutine.",
				Hint:        "It is a keyword.",
			},
		},
	}
}

func TestAudit_ParsesVerdict(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"relevance_score": 92, "pass": true, "reason": "well grounded"}`),
	})
	a := New(mock, DefaultConfig())

	v := a.Audit(context.Background(), "material about goroutines", candidateQuiz())
	if !v.Pass {
		t.Fatal("expected pass")
	}
	if v.Score != 92 {
		t.Errorf("expected score 92, got %v", v.Score)
	}
	if v.Reason != "well grounded" {
		t.Errorf("unexpected reason: %q", v.Reason)
	}
}

func TestAudit_RejectingVerdict(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"relevance_score": 20, "pass": false, "reason": "off topic"}`),
	})
	a := New(mock, DefaultConfig())

	v := a.Audit(context.Background(), "material", candidateQuiz())
	if v.Pass {
		t.Fatal("expected fail verdict")
	}
}

func TestAudit_BypassOnCapabilityFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("timeout")},
	})
	a := New(mock, DefaultConfig())

	v := a.Audit(context.Background(), "material", candidateQuiz())
	if !v.Pass {
		t.Fatal("expected permissive bypass verdict on failure")
	}
	if v.Score != BypassScore {
		t.Errorf("expected neutral score %d, got %v", BypassScore, v.Score)
	}
	if !strings.Contains(v.Reason, "bypassed") {
		t.Errorf("expected bypass reason, got %q", v.Reason)
	}
}

func TestAudit_StrictPolicyRejectsOnFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("timeout")},
	})
	cfg := DefaultConfig()
	cfg.StrictOnFailure = true
	a := New(mock, cfg)

	v := a.Audit(context.Background(), "material", candidateQuiz())
	if v.Pass {
		t.Fatal("expected rejecting verdict under strict policy")
	}
}

func TestAudit_BypassOnMalformedVerdict(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json at all`),
	})
	a := New(mock, DefaultConfig())

	v := a.Audit(context.Background(), "material", candidateQuiz())
	if !v.Pass {
		t.Fatal("expected bypass verdict for unparseable response")
	}
}

func TestAudit_PromptEmbedsMaterialAndQuiz(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"relevance_score": 80, "pass": true, "reason": "ok"}`),
	})
	a := New(mock, DefaultConfig())

	a.Audit(context.Background(), "THE MATERIAL TEXT", candidateQuiz())

	sent := mock.Calls[0].Messages[0].Content
	if !strings.Contains(sent, "THE MATERIAL TEXT") {
		t.Error("prompt missing material text")
	}
	if !strings.Contains(sent, "What starts a goroutine?") {
		t.Error("prompt missing serialized question")
	}
	// Correct options are marked for consistency checking.
	if !strings.Contains(sent, "* A) go") {
		t.Errorf("prompt missing answer marker, got:\n%s", sent)
	}
}

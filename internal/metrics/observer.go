package metrics

import "github.com/learncheck/learncheck/internal/audit"

// PipelineObserver feeds quiz pipeline events into the Prometheus
// collectors.
type PipelineObserver struct{}

func (PipelineObserver) GenerationFailed(attempt int, err error) {
	QuizAttempts.WithLabelValues("generation_error").Inc()
}

func (PipelineObserver) AuditCompleted(attempt int, verdict audit.Verdict) {
	AuditScore.Observe(float64(verdict.Score))
	if !verdict.Pass {
		QuizAttempts.WithLabelValues("audit_reject").Inc()
	}
}

func (PipelineObserver) QuizAccepted(attempt int, verdict audit.Verdict) {
	QuizAttempts.WithLabelValues("accepted").Inc()
}

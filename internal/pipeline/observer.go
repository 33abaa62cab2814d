package pipeline

import (
	"go.uber.org/zap"

	"github.com/learncheck/learncheck/internal/audit"
)

// MultiObserver fans events out to several observers in order.
type MultiObserver []Observer

func (m MultiObserver) GenerationFailed(attempt int, err error) {
	for _, o := range m {
		o.GenerationFailed(attempt, err)
	}
}

func (m MultiObserver) AuditCompleted(attempt int, verdict audit.Verdict) {
	for _, o := range m {
		o.AuditCompleted(attempt, verdict)
	}
}

func (m MultiObserver) QuizAccepted(attempt int, verdict audit.Verdict) {
	for _, o := range m {
		o.QuizAccepted(attempt, verdict)
	}
}

// LogObserver logs pipeline events through zap.
type LogObserver struct {
	log *zap.Logger
}

// NewLogObserver wraps a zap logger as a pipeline Observer.
func NewLogObserver(log *zap.Logger) *LogObserver {
	return &LogObserver{log: log}
}

func (o *LogObserver) GenerationFailed(attempt int, err error) {
	o.log.Warn("quiz generation failed",
		zap.Int("attempt", attempt),
		zap.Error(err),
	)
}

func (o *LogObserver) AuditCompleted(attempt int, verdict audit.Verdict) {
	o.log.Info("quiz audit completed",
		zap.Int("attempt", attempt),
		zap.Float64("score", verdict.Score),
		zap.Bool("pass", verdict.Pass),
		zap.String("reason", verdict.Reason),
	)
}

func (o *LogObserver) QuizAccepted(attempt int, verdict audit.Verdict) {
	o.log.Info("quiz accepted",
		zap.Int("attempt", attempt),
		zap.Float64("score", verdict.Score),
	)
}

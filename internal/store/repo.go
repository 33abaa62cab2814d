package store

import (
	"context"
	"time"
)

// LLMRequestEventData captures the data for a single model call event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a persisted model call event.
type LLMRequestEvent struct {
	ID        int64
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates token usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit   int    // max results, newest first (0 = default 50)
	Purpose string // filter by purpose label, empty = all
}

// EventRepo provides append and query access to model call events.
// The quiz service records every generation-capability call here; the log is
// telemetry about the capability, not learner history.
type EventRepo interface {
	// AppendLLMRequest records a model call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recent events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns one event with full request/response bodies,
	// or nil when the ID is unknown.
	GetLLMEvent(ctx context.Context, id int64) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
}

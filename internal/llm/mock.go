package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// MockResponse is one canned reply in a MockProvider's queue: either
// Content (raw quiz, verdict, or explanation JSON/text) or Err.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// Canned builds a successful canned response from a raw payload string.
func Canned(raw string) MockResponse {
	return MockResponse{Content: json.RawMessage(raw)}
}

// Failure builds a canned response that fails with err.
func Failure(err error) MockResponse {
	return MockResponse{Err: err}
}

// MockProvider is a deterministic Provider for tests. It replays canned
// responses in FIFO order and records every request along with the purpose
// it was made under, so tests can assert which stage of the quiz pipeline
// (quiz-gen, audit, explain) issued each call.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse

	Calls    []Request
	Purposes []string
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// Generate replays the next canned response. An exhausted queue fails
// with ErrProviderUnavailable, mirroring a real capability outage.
func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)
	m.Purposes = append(m.Purposes, PurposeFrom(ctx))

	if len(m.responses) == 0 {
		return nil, &ErrProviderUnavailable{Err: errors.New("mock response queue exhausted")}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}

	return &Response{
		Content:    resp.Content,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// LastCall returns the most recent request, or false when no call was
// made.
func (m *MockProvider) LastCall() (Request, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Calls) == 0 {
		return Request{}, false
	}
	return m.Calls[len(m.Calls)-1], true
}

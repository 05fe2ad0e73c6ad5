package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one canned reply. A non-nil Err is returned instead of
// the content.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider replays canned replies in order and records every request.
// It backs the "mock" provider and the content tests.
type MockProvider struct {
	mu      sync.Mutex
	queue   []MockResponse
	Calls   []Request
	Timeout bool // block until ctx is done instead of replying
}

// NewMockProvider queues responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{queue: responses}
}

// Generate pops the next reply. An empty queue reports the provider as
// unavailable; a done context fails without consuming anything.
func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, req)
	block := m.Timeout
	m.mu.Unlock()

	if block {
		<-ctx.Done()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.queue) == 0 {
		return nil, &Error{Kind: KindUnavailable}
	}
	next := m.queue[0]
	m.queue = m.queue[1:]
	if next.Err != nil {
		return nil, next.Err
	}
	return &Response{Content: next.Content, Usage: next.Usage, Model: "mock", Stop: StopEnd}, nil
}

func (m *MockProvider) ModelID() string { return "mock" }

// Queue appends replies.
func (m *MockProvider) Queue(responses ...MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, responses...)
}

// CallCount is the number of Generate calls so far.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// LastCall returns the latest request.
func (m *MockProvider) LastCall() (Request, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Calls) == 0 {
		return Request{}, false
	}
	return m.Calls[len(m.Calls)-1], true
}

// Pending is the number of replies not yet served.
func (m *MockProvider) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}

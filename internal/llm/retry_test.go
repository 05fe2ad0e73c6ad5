package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{MaxAttempts: attempts, InitialWait: time.Millisecond, MaxWait: 5 * time.Millisecond, Multiplier: 2}
}

var okReply = MockResponse{Content: json.RawMessage(`{"title":"ok"}`)}

func fail(k Kind) MockResponse {
	return MockResponse{Err: &Error{Kind: k, Err: errors.New(k.String())}}
}

func TestRetryPolicy(t *testing.T) {
	tests := []struct {
		name      string
		replies   []MockResponse
		wantCalls int
		wantErr   bool
	}{
		{"first try", []MockResponse{okReply}, 1, false},
		{"outage then ok", []MockResponse{fail(KindUnavailable), okReply}, 2, false},
		{"rate limit then ok", []MockResponse{fail(KindRateLimit), fail(KindRateLimit), okReply}, 3, false},
		{"gives up", []MockResponse{fail(KindUnavailable), fail(KindUnavailable), fail(KindUnavailable), okReply}, 3, true},
		{"invalid retried once", []MockResponse{fail(KindInvalid), okReply}, 2, false},
		{"invalid twice", []MockResponse{fail(KindInvalid), fail(KindInvalid), okReply}, 2, true},
		{"rejected", []MockResponse{fail(KindRejected), okReply}, 1, true},
		{"blocked", []MockResponse{fail(KindBlocked), okReply}, 1, true},
		{"truncated", []MockResponse{fail(KindTruncated), okReply}, 1, true},
		{"unclassified", []MockResponse{{Err: errors.New("connection reset")}, okReply}, 2, false},
		{"canceled", []MockResponse{{Err: context.Canceled}, okReply}, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.replies...)
			_, err := WithRetry(mock, fastRetry(3), nil).Generate(context.Background(), Request{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if mock.CallCount() != tt.wantCalls {
				t.Errorf("calls = %d, want %d", mock.CallCount(), tt.wantCalls)
			}
		})
	}
}

func TestRetryReturnsLastError(t *testing.T) {
	mock := NewMockProvider(fail(KindUnavailable), fail(KindRejected))
	_, err := WithRetry(mock, fastRetry(3), nil).Generate(context.Background(), Request{})
	if !IsKind(err, KindRejected) {
		t.Fatalf("err = %v, want the rejected error", err)
	}
}

func TestRetryZeroAttemptsStillTriesOnce(t *testing.T) {
	mock := NewMockProvider(fail(KindUnavailable), okReply)
	if _, err := WithRetry(mock, fastRetry(0), nil).Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected the first failure")
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d", mock.CallCount())
	}
}

func TestRetryStopsWhenContextEnds(t *testing.T) {
	mock := NewMockProvider(fail(KindUnavailable), okReply)
	cfg := RetryConfig{MaxAttempts: 3, InitialWait: time.Hour, MaxWait: time.Hour, Multiplier: 1}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := WithRetry(mock, cfg, nil).Generate(ctx, Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
	if mock.Pending() != 1 {
		t.Errorf("the second reply should not have been used")
	}
}

func TestBackoff(t *testing.T) {
	r := &RetryProvider{cfg: RetryConfig{InitialWait: 100 * time.Millisecond, MaxWait: time.Second, Multiplier: 2}}
	down := &Error{Kind: KindUnavailable}

	within := func(d, want time.Duration) bool {
		return d >= want*8/10 && d <= want*12/10
	}
	for attempt, want := range map[int]time.Duration{
		1: 100 * time.Millisecond,
		2: 200 * time.Millisecond,
		3: 400 * time.Millisecond,
		6: time.Second,
	} {
		if got := r.backoff(attempt, down); !within(got, want) {
			t.Errorf("backoff(%d) = %v, want about %v", attempt, got, want)
		}
	}

	limited := &Error{Kind: KindRateLimit, RetryAfter: 7 * time.Second}
	if got := r.backoff(1, limited); got != 7*time.Second {
		t.Errorf("Retry-After ignored: %v", got)
	}
}

func TestRetryModelID(t *testing.T) {
	if got := WithRetry(NewMockProvider(), fastRetry(1), nil).ModelID(); got != "mock" {
		t.Errorf("ModelID = %q", got)
	}
}

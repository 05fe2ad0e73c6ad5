package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/elan/internal/store"
)

// eventSink records LLM request events and the state of the context each
// one was appended with.
type eventSink struct {
	store.EventRepo
	mu      sync.Mutex
	events  []store.LLMRequestEventData
	ctxErrs []error
}

func (s *eventSink) AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, data)
	s.ctxErrs = append(s.ctxErrs, ctx.Err())
	return nil
}

func TestLoggingRecordsRequest(t *testing.T) {
	sink := &eventSink{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"title":"Le subjonctif"}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 34},
	})
	p := WithLogging(mock, ProviderGemini, sink, nil)

	ctx := WithPurpose(context.Background(), "grammar")
	if _, err := p.Generate(ctx, Request{System: "sys", Prompt: "Une règle B1.", Schema: titleSchema()}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(sink.events) != 1 {
		t.Fatalf("events = %d", len(sink.events))
	}
	e := sink.events[0]
	if e.Provider != "gemini" || e.Model != "mock" || e.Purpose != "grammar" || !e.Success {
		t.Errorf("event = %+v", e)
	}
	if e.InputTokens != 12 || e.OutputTokens != 34 {
		t.Errorf("tokens = %d/%d", e.InputTokens, e.OutputTokens)
	}
	if e.ResponseBody != `{"title":"Le subjonctif"}` {
		t.Errorf("response body = %q", e.ResponseBody)
	}
	for _, part := range []string{"[system]\nsys", "[user]\nUne règle B1.", "[schema: test-title]"} {
		if !strings.Contains(e.RequestBody, part) {
			t.Errorf("request body missing %q:\n%s", part, e.RequestBody)
		}
	}
}

func TestLoggingKeepsRejectedReply(t *testing.T) {
	sink := &eventSink{}
	mock := NewMockProvider(MockResponse{Err: &Error{
		Kind:    KindInvalid,
		Content: json.RawMessage(`{"heading":"x"}`),
		Err:     errors.New("missing title"),
	}})
	p := WithLogging(mock, ProviderOpenAI, sink, nil)

	_, err := p.Generate(context.Background(), Request{Prompt: "x"})
	if !IsKind(err, KindInvalid) {
		t.Fatalf("err = %v", err)
	}
	e := sink.events[0]
	if e.Success || e.Purpose != "unknown" {
		t.Errorf("event = %+v", e)
	}
	if e.ResponseBody != `{"heading":"x"}` || !strings.Contains(e.ErrorMessage, "missing title") {
		t.Errorf("failure not kept: body %q error %q", e.ResponseBody, e.ErrorMessage)
	}
}

func TestLoggingSurvivesCancelledCaller(t *testing.T) {
	sink := &eventSink{}
	p := WithLogging(NewMockProvider(okReply), ProviderGemini, sink, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Generate(ctx, Request{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
	if len(sink.events) != 1 || sink.events[0].Success {
		t.Fatalf("events = %+v", sink.events)
	}
	if sink.ctxErrs[0] != nil {
		t.Errorf("event appended with a dead context: %v", sink.ctxErrs[0])
	}
}

func TestLoggingWithoutRepo(t *testing.T) {
	p := WithLogging(NewMockProvider(okReply), ProviderMock, nil, nil)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
}

func TestTimeoutCutsOffHungProvider(t *testing.T) {
	mock := NewMockProvider(okReply)
	mock.Timeout = true
	p := WithTimeout(mock, 20*time.Millisecond)

	start := time.Now()
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v", err)
	}
	if time.Since(start) > time.Second {
		t.Error("deadline not applied")
	}
	if mock.Pending() != 1 {
		t.Error("a timed-out call must not consume a reply")
	}
}

func TestTimeoutDisabled(t *testing.T) {
	mock := NewMockProvider()
	if WithTimeout(mock, 0) != Provider(mock) {
		t.Error("a zero timeout should not wrap")
	}
	if WithTimeout(mock, -time.Second) != Provider(mock) {
		t.Error("a negative timeout should not wrap")
	}
}

func TestNewProvider(t *testing.T) {
	t.Run("mock is bare", func(t *testing.T) {
		p, err := NewProvider(context.Background(), Config{Provider: ProviderMock}, nil, nil)
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := p.(*MockProvider); !ok {
			t.Errorf("provider = %T", p)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if _, err := NewProvider(context.Background(), Config{Provider: "palm"}, nil, nil); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("missing key", func(t *testing.T) {
		if _, err := NewProvider(context.Background(), Config{Provider: ProviderAnthropic}, nil, nil); err == nil {
			t.Fatal("expected an error")
		}
	})

	t.Run("middleware order", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Provider = ProviderOpenRouter
		cfg.OpenRouter.APIKey = "sk-or"

		p, err := NewProvider(context.Background(), cfg, nil, nil)
		if err != nil {
			t.Fatal(err)
		}
		timeout, ok := p.(*TimeoutProvider)
		if !ok {
			t.Fatalf("outer = %T", p)
		}
		retry, ok := timeout.inner.(*RetryProvider)
		if !ok {
			t.Fatalf("second = %T", timeout.inner)
		}
		if _, ok := retry.inner.(*LoggingProvider); !ok {
			t.Fatalf("third = %T", retry.inner)
		}
		if p.ModelID() != "google/gemini-2.5-flash" {
			t.Errorf("ModelID = %q", p.ModelID())
		}
	})
}

package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/abhisek/elan/internal/logger"
	"github.com/abhisek/elan/internal/store"
)

type purposeKey struct{}

// WithPurpose labels requests made with ctx, e.g. "vocabulary" or "exam".
// The label ends up in the request log and in `elan llm stats`.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok && v != "" {
		return v
	}
	return "unknown"
}

// LoggingProvider records every request in the event store and the log.
type LoggingProvider struct {
	inner    Provider
	provider string
	events   store.EventRepo
	log      *logger.Logger
}

// WithLogging wraps p. A nil repo only logs.
func WithLogging(p Provider, providerName string, events store.EventRepo, log *logger.Logger) Provider {
	if log == nil {
		log = logger.Nop()
	}
	return &LoggingProvider{inner: p, provider: providerName, events: events, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	ev := store.LLMRequestEventData{
		Provider:    l.provider,
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(req),
	}
	if resp != nil {
		ev.Model = resp.Model
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.ResponseBody = string(resp.Content)
	}

	log := l.log.With("provider", l.provider, "model", ev.Model, "purpose", ev.Purpose, "latency_ms", ev.LatencyMs)
	if err != nil {
		ev.ErrorMessage = err.Error()
		// Keep the rejected reply so `elan llm view` can show what the
		// model actually said.
		var e *Error
		if errors.As(err, &e) && len(e.Content) > 0 {
			ev.ResponseBody = string(e.Content)
		}
		log.Warn("llm request failed", "error", err)
	} else {
		log.Debug("llm request", "input_tokens", ev.InputTokens, "output_tokens", ev.OutputTokens)
	}

	if l.events != nil {
		// A superseded fetch cancels ctx; its call still counts.
		if recErr := l.events.AppendLLMRequest(context.WithoutCancel(ctx), ev); recErr != nil {
			log.Warn("record llm request", "error", recErr)
		}
	}
	return resp, err
}

func (l *LoggingProvider) ModelID() string { return l.inner.ModelID() }

// transcript renders a request the way `elan llm view` shows it.
func transcript(req Request) string {
	var b strings.Builder
	if req.System != "" {
		b.WriteString("[system]\n" + req.System + "\n\n")
	}
	b.WriteString("[user]\n" + req.Prompt + "\n")
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			b.WriteString("\n[schema: " + req.Schema.Name + "]\n" + string(def) + "\n")
		}
	}
	return b.String()
}

package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Kind classifies provider failures for the retry policy.
type Kind int

const (
	KindUnavailable Kind = iota // network failure, 5xx or an empty reply
	KindRateLimit               // 429
	KindRejected                // other 4xx: bad key, unknown model
	KindInvalid                 // reply does not match the schema
	KindTruncated               // structured reply cut off at MaxTokens
	KindBlocked                 // refused by the provider's safety filter
)

func (k Kind) String() string {
	switch k {
	case KindUnavailable:
		return "unavailable"
	case KindRateLimit:
		return "rate limited"
	case KindRejected:
		return "rejected"
	case KindInvalid:
		return "invalid reply"
	case KindTruncated:
		return "truncated reply"
	case KindBlocked:
		return "blocked"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is a classified provider failure.
type Error struct {
	Kind       Kind
	RetryAfter time.Duration   // rate limits only; zero when not advertised
	Content    json.RawMessage // the offending reply, when there was one
	Err        error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return "llm: " + e.Kind.String()
	}
	return fmt.Sprintf("llm: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsKind reports whether err is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	got, ok := KindOf(err)
	return ok && got == k
}

// fromStatus classifies an HTTP failure from any of the SDKs. A request
// timeout is treated like a server fault.
func fromStatus(status int, err error) error {
	switch {
	case status == http.StatusTooManyRequests:
		return &Error{Kind: KindRateLimit, Err: err}
	case status == http.StatusRequestTimeout:
		return &Error{Kind: KindUnavailable, Err: err}
	case status >= 400 && status < 500:
		return &Error{Kind: KindRejected, Err: err}
	default:
		return &Error{Kind: KindUnavailable, Err: err}
	}
}

package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Kind classifies provider failures for retry decisions.
type Kind int

const (
	// KindUnavailable covers network failures and 5xx responses.
	KindUnavailable Kind = iota
	// KindRateLimited is a 429.
	KindRateLimited
	// KindRejected is any other 4xx, typically a bad key or model name.
	KindRejected
	// KindInvalid means the output did not match the requested schema.
	KindInvalid
	// KindTruncated means generation stopped at MaxTokens.
	KindTruncated
)

func (k Kind) String() string {
	switch k {
	case KindRateLimited:
		return "rate limited"
	case KindRejected:
		return "rejected"
	case KindInvalid:
		return "invalid response"
	case KindTruncated:
		return "truncated"
	default:
		return "unavailable"
	}
}

// Error is returned by every provider for failures it can classify.
type Error struct {
	Kind       Kind
	RetryAfter time.Duration   // KindRateLimited only, when the server sent one
	Raw        json.RawMessage // KindInvalid and KindTruncated: what came back
	Err        error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return "llm: " + e.Kind.String()
	}
	return fmt.Sprintf("llm: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// statusError classifies an HTTP status returned by a provider SDK.
func statusError(status int, err error) *Error {
	switch {
	case status == http.StatusTooManyRequests:
		return &Error{Kind: KindRateLimited, Err: err}
	case status >= 400 && status < 500:
		return &Error{Kind: KindRejected, Err: err}
	default:
		return &Error{Kind: KindUnavailable, Err: err}
	}
}

package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// RetryPolicy is exponential backoff with jitter.
type RetryPolicy struct {
	Attempts int           // total tries, including the first
	Base     time.Duration // wait after the first failure
	Max      time.Duration // cap on any single wait
}

// DefaultRetryPolicy tries three times, waiting about 1s then 2s.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{Attempts: 3, Base: time.Second, Max: 10 * time.Second}
}

// wait returns the pause before try n+1 (n counts from 0), with up to
// 20% jitter either way.
func (rp RetryPolicy) wait(n int) time.Duration {
	d := rp.Base << n
	if d <= 0 || d > rp.Max {
		d = rp.Max
	}
	jitter := time.Duration((rand.Float64()*0.4 - 0.2) * float64(d))
	return d + jitter
}

type retrying struct {
	Provider
	policy RetryPolicy
	log    *zap.Logger
}

// Retry wraps p so transient failures are retried. Rejected and truncated
// requests fail at once; an invalid response is retried once since models
// occasionally ignore the schema.
func Retry(p Provider, policy RetryPolicy, log *zap.Logger) Provider {
	if log == nil {
		log = zap.NewNop()
	}
	if policy.Attempts < 1 {
		policy.Attempts = 1
	}
	return &retrying{Provider: p, policy: policy, log: log}
}

func (r *retrying) Complete(ctx context.Context, pr Prompt) (*Completion, error) {
	invalidSeen := false
	for n := 0; ; n++ {
		c, err := r.Provider.Complete(ctx, pr)
		if err == nil {
			return c, nil
		}
		if n == r.policy.Attempts-1 || !retryable(err, &invalidSeen) {
			return nil, err
		}

		d := r.policy.wait(n)
		var e *Error
		if errors.As(err, &e) && e.RetryAfter > 0 {
			d = e.RetryAfter
		}
		r.log.Debug("retrying LLM request",
			zap.String("purpose", PurposeFrom(ctx)),
			zap.Int("attempt", n+1),
			zap.Duration("wait", d),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(d):
		}
	}
}

func retryable(err error, invalidSeen *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	kind, ok := KindOf(err)
	if !ok {
		return true
	}
	switch kind {
	case KindRejected, KindTruncated:
		return false
	case KindInvalid:
		if *invalidSeen {
			return false
		}
		*invalidSeen = true
	}
	return true
}

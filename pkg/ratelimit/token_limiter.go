package ratelimit

import (
	"context"
	"sync"
	"time"
)

// TokenLimiter enforces a tokens-per-minute budget for LLM API usage. It
// complements a request-per-minute rate.Limiter: each call consumes a
// variable number of tokens, and the budget refills once per minute window.
type TokenLimiter struct {
	mu          sync.Mutex
	maxPerMin   int
	remaining   int
	windowStart time.Time
}

// NewTokenLimiter creates a TokenLimiter with the given per-minute budget.
func NewTokenLimiter(maxPerMinute int) *TokenLimiter {
	return &TokenLimiter{
		maxPerMin:   maxPerMinute,
		remaining:   maxPerMinute,
		windowStart: time.Now(),
	}
}

// GetRemaining returns the tokens left in the current window.
func (t *TokenLimiter) GetRemaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.refill()
	return t.remaining
}

// Wait consumes the given number of tokens, sleeping until the next window
// if the current budget is exhausted.
func (t *TokenLimiter) Wait(ctx context.Context, tokens int) error {
	for {
		t.mu.Lock()
		t.refill()
		if t.remaining >= tokens || tokens > t.maxPerMin {
			t.remaining -= tokens
			t.mu.Unlock()
			return nil
		}
		wait := time.Until(t.windowStart.Add(time.Minute))
		t.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

func (t *TokenLimiter) refill() {
	if time.Since(t.windowStart) >= time.Minute {
		t.remaining = t.maxPerMin
		t.windowStart = time.Now()
	}
}

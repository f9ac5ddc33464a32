package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// Limiter bounds API calls to a per-minute budget.
type Limiter struct {
	rl *rate.Limiter
}

// NewPerMinute returns a limiter allowing maxCalls requests per minute,
// with a burst of maxCalls.
func NewPerMinute(maxCalls int) *Limiter {
	if maxCalls <= 0 {
		return &Limiter{rl: rate.NewLimiter(rate.Inf, 1)}
	}
	return &Limiter{rl: rate.NewLimiter(rate.Limit(float64(maxCalls)/60.0), maxCalls)}
}

// Allow reports whether a call may proceed right now.
func (l *Limiter) Allow() bool {
	return l.rl.Allow()
}

// Wait blocks until a call may proceed or the context is cancelled.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.rl.Wait(ctx)
}

// Pricing per 1K tokens in USD.
var modelPricing = map[string]struct{ Prompt, Completion float64 }{
	"gpt-4o-mini":            {Prompt: 0.00015, Completion: 0.0006},
	"gpt-4o":                 {Prompt: 0.005, Completion: 0.015},
	"text-embedding-3-small": {Prompt: 0.00002},
}

// TokenUsageTracker accumulates token consumption and estimated cost
// across completion and embedding calls.
type TokenUsageTracker struct {
	mu                    sync.Mutex
	totalPromptTokens     int
	totalCompletionTokens int
	totalEmbeddingTokens  int
	costUSD               float64
}

func NewTokenUsageTracker() *TokenUsageTracker {
	return &TokenUsageTracker{}
}

// AddUsage records tokens from a completion call against the given model.
func (t *TokenUsageTracker) AddUsage(model string, promptTokens, completionTokens int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.totalPromptTokens += promptTokens
	t.totalCompletionTokens += completionTokens
	if p, ok := modelPricing[model]; ok {
		t.costUSD += float64(promptTokens)/1000*p.Prompt + float64(completionTokens)/1000*p.Completion
	}
}

// AddEmbeddingTokens records tokens from an embedding call.
func (t *TokenUsageTracker) AddEmbeddingTokens(tokens int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.totalEmbeddingTokens += tokens
	if p, ok := modelPricing["text-embedding-3-small"]; ok {
		t.costUSD += float64(tokens) / 1000 * p.Prompt
	}
}

// TotalCost returns the estimated spend in USD so far.
func (t *TokenUsageTracker) TotalCost() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.costUSD
}

// Summary reports accumulated token counts and cost.
type Summary struct {
	PromptTokens     int     `json:"prompt_tokens"`
	CompletionTokens int     `json:"completion_tokens"`
	EmbeddingTokens  int     `json:"embedding_tokens"`
	CostUSD          float64 `json:"cost_usd"`
}

func (t *TokenUsageTracker) Summary() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Summary{
		PromptTokens:     t.totalPromptTokens,
		CompletionTokens: t.totalCompletionTokens,
		EmbeddingTokens:  t.totalEmbeddingTokens,
		CostUSD:          t.costUSD,
	}
}

// Reset clears all accumulated usage.
func (t *TokenUsageTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.totalPromptTokens = 0
	t.totalCompletionTokens = 0
	t.totalEmbeddingTokens = 0
	t.costUSD = 0
}

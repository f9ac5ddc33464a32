package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimiterExhaustsBurst(t *testing.T) {
	l := NewPerMinute(3)
	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow(), "call %d should pass", i+1)
	}
	assert.False(t, l.Allow(), "burst exhausted, 4th call should be denied")
}

func TestLimiterZeroIsUnlimited(t *testing.T) {
	l := NewPerMinute(0)
	for i := 0; i < 100; i++ {
		assert.True(t, l.Allow())
	}
}

func TestTokenUsageTrackerCost(t *testing.T) {
	tr := NewTokenUsageTracker()
	tr.AddUsage("gpt-4o-mini", 1000, 1000)
	tr.AddEmbeddingTokens(1000)

	// 1K prompt @ 0.00015 + 1K completion @ 0.0006 + 1K embedding @ 0.00002
	assert.InDelta(t, 0.00077, tr.TotalCost(), 1e-9)

	s := tr.Summary()
	assert.Equal(t, 1000, s.PromptTokens)
	assert.Equal(t, 1000, s.CompletionTokens)
	assert.Equal(t, 1000, s.EmbeddingTokens)

	tr.Reset()
	assert.Zero(t, tr.TotalCost())
	assert.Zero(t, tr.Summary().PromptTokens)
}

func TestTokenUsageTrackerUnknownModel(t *testing.T) {
	tr := NewTokenUsageTracker()
	tr.AddUsage("some-custom-deployment", 500, 500)
	assert.Zero(t, tr.TotalCost())
	assert.Equal(t, 500, tr.Summary().PromptTokens)
}

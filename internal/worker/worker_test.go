package worker

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetrySucceedsAfterFailures(t *testing.T) {
	calls := 0
	result, err := retry(3, func() (string, error) {
		calls++
		if calls < 3 {
			return "", fmt.Errorf("transient failure %d", calls)
		}
		return "done", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "done", result)
	assert.Equal(t, 3, calls)
}

func TestRetryExhaustsAttempts(t *testing.T) {
	calls := 0
	_, err := retry(2, func() (int, error) {
		calls++
		return 0, fmt.Errorf("always fails")
	})
	require.Error(t, err)
	assert.Equal(t, 2, calls)
	assert.ErrorContains(t, err, "after 2 attempts")
}

func TestRetryNoRetryOnSuccess(t *testing.T) {
	calls := 0
	v, err := retry(5, func() (int, error) {
		calls++
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, calls)
}

func TestTargetDomains(t *testing.T) {
	assert.Equal(t, []string{"FinTech"}, targetDomains([]string{"FinTech"}, "Technology"))
	assert.Equal(t, []string{"FinTech", "Consulting"}, targetDomains(nil, "FinTech, Consulting"))
	assert.Empty(t, targetDomains(nil, "  "))
	assert.Empty(t, targetDomains(nil, ""))
}

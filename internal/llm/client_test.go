package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteWithRetryRetriesTransportFailureOnce(t *testing.T) {
	calls := 0
	_, err := completeWithRetry(context.Background(), "gemini-test", func() (string, error) {
		calls++
		return "", &transportError{cause: errors.New("connection reset")}
	})

	assert.Equal(t, 2, calls)
	var unavailable *UnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Contains(t, unavailable.Error(), "gemini-test")
}

func TestCompleteWithRetrySucceedsOnSecondAttempt(t *testing.T) {
	calls := 0
	text, err := completeWithRetry(context.Background(), "gemini-test", func() (string, error) {
		calls++
		if calls == 1 {
			return "", &transportError{cause: errors.New("timeout")}
		}
		return "recovered", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "recovered", text)
	assert.Equal(t, 2, calls)
}

func TestCompleteWithRetryNeverRetriesDeliveredResponse(t *testing.T) {
	delivered := errors.New("no candidates in response")
	calls := 0
	_, err := completeWithRetry(context.Background(), "gemini-test", func() (string, error) {
		calls++
		return "", delivered
	})

	assert.Equal(t, 1, calls)
	assert.Equal(t, delivered, err)
	var unavailable *UnavailableError
	assert.False(t, errors.As(err, &unavailable))
}

func TestCompleteWithRetryStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	_, err := completeWithRetry(ctx, "gemini-test", func() (string, error) {
		calls++
		cancel()
		return "", &transportError{cause: errors.New("connection reset")}
	})

	assert.Equal(t, 1, calls)
	var unavailable *UnavailableError
	require.ErrorAs(t, err, &unavailable)
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient(context.Background(), DefaultConfig(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestIsTransportError(t *testing.T) {
	assert.True(t, isTransportError(&transportError{cause: errors.New("reset")}))
	assert.True(t, isTransportError(context.DeadlineExceeded))
	assert.False(t, isTransportError(errors.New("no candidates in response")))
}

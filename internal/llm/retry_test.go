package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2,
	}
}

var okReply = MockResponse{Content: json.RawMessage(`{"ok":true}`)}

func unavailable() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
}

func invalid() MockResponse {
	return MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`bad`), Err: errors.New("bad")}}
}

func TestRetryProvider(t *testing.T) {
	tests := []struct {
		name      string
		responses []MockResponse
		wantCalls int
		wantErr   bool
	}{
		{"first attempt", []MockResponse{okReply}, 1, false},
		{"transient then success", []MockResponse{unavailable(), okReply}, 2, false},
		{"all attempts fail", []MockResponse{unavailable(), unavailable(), unavailable()}, 3, true},
		{"invalid response retried once", []MockResponse{invalid(), invalid(), okReply}, 2, true},
		{"invalid then valid", []MockResponse{invalid(), okReply}, 2, false},
		{
			"rate limit honours retry-after",
			[]MockResponse{{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}}, okReply},
			2, false,
		},
		{
			"truncation not retried",
			[]MockResponse{{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{`)}}, okReply},
			1, true,
		},
		{
			"bad credentials not retried",
			[]MockResponse{{Err: &ErrUnauthorized{Err: errors.New("401")}}, okReply},
			1, true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.responses...)
			resp, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})

			assert.Equal(t, tt.wantCalls, mock.CallCount())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, `{"ok":true}`, string(resp.Content))
		})
	}
}

func TestRetryProvider_KeepsLastError(t *testing.T) {
	mock := NewMockProvider(
		unavailable(),
		MockResponse{Err: &ErrUnauthorized{Err: errors.New("401")}},
	)
	_, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})

	var unauth *ErrUnauthorized
	require.ErrorAs(t, err, &unauth)
}

func TestRetryProvider_ContextCancelled(t *testing.T) {
	mock := NewMockProvider(unavailable(), unavailable(), okReply)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := WithRetry(mock, fastRetry()).Generate(ctx, Request{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, mock.CallCount())
}

func TestRetryProvider_ZeroAttemptsStillCalls(t *testing.T) {
	mock := NewMockProvider(okReply)
	_, err := WithRetry(mock, RetryConfig{}).Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, 1, mock.CallCount())
}

func TestRetryProvider_BackoffCapped(t *testing.T) {
	r := &RetryProvider{config: RetryConfig{InitialWait: time.Second, MaxWait: 2 * time.Second, Multiplier: 10}}
	for attempt := range 4 {
		wait := r.backoff(attempt, errors.New("x"))
		assert.LessOrEqual(t, wait, 2400*time.Millisecond)
		assert.GreaterOrEqual(t, wait, 800*time.Millisecond)
	}
	assert.Equal(t, "mock", WithRetry(NewMockProvider(), fastRetry()).ModelID())
}

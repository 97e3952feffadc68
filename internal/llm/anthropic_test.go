package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func anthropicServer(t *testing.T, status int, body any) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(server.Close)

	p, err := NewAnthropicProvider(
		AnthropicConfig{APIKey: "test-key", Model: "claude-haiku"},
		option.WithBaseURL(server.URL),
		option.WithMaxRetries(0),
	)
	require.NoError(t, err)
	return p
}

func anthropicMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
	}
}

func anthropicError(kind, msg string) map[string]any {
	return map[string]any{
		"type":  "error",
		"error": map[string]any{"type": kind, "message": msg},
	}
}

func TestAnthropicProvider_Generate(t *testing.T) {
	p := anthropicServer(t, http.StatusOK, anthropicMessage(`{"concept":"js-loops","minutes":45}`, "end_turn"))

	resp, err := p.Generate(context.Background(), Request{
		System:   "You are a programming tutor.",
		Messages: []Message{{Role: RoleUser, Content: "Outline the loops lesson."}},
		Schema:   outlineSchema(),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"concept":"js-loops","minutes":45}`, string(resp.Content))
	assert.Equal(t, Usage{InputTokens: 50, OutputTokens: 30, TotalTokens: 80}, resp.Usage)
	assert.Equal(t, StopEnd, resp.StopReason)
	assert.Equal(t, "claude-haiku-4-5-20251001", resp.Model)
}

func TestAnthropicProvider_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   any
		check  func(t *testing.T, err error)
	}{
		{
			name:   "rate limit",
			status: http.StatusTooManyRequests,
			body:   anthropicError("rate_limit_error", "Rate limit exceeded"),
			check: func(t *testing.T, err error) {
				var target *ErrRateLimit
				assert.ErrorAs(t, err, &target)
			},
		},
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			body:   anthropicError("api_error", "Internal server error"),
			check: func(t *testing.T, err error) {
				var target *ErrProviderUnavailable
				assert.ErrorAs(t, err, &target)
			},
		},
		{
			name:   "bad key",
			status: http.StatusUnauthorized,
			body:   anthropicError("authentication_error", "invalid x-api-key"),
			check: func(t *testing.T, err error) {
				var target *ErrUnauthorized
				assert.ErrorAs(t, err, &target)
			},
		},
		{
			name:   "truncated structured reply",
			status: http.StatusOK,
			body:   anthropicMessage(`{"concept":"js-lo`, "max_tokens"),
			check: func(t *testing.T, err error) {
				var target *ErrMaxTokensExceeded
				assert.ErrorAs(t, err, &target)
			},
		},
		{
			name:   "reply violates schema",
			status: http.StatusOK,
			body:   anthropicMessage(`{"concept":"js-loops"}`, "end_turn"),
			check: func(t *testing.T, err error) {
				var target *ErrInvalidResponse
				assert.ErrorAs(t, err, &target)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := anthropicServer(t, tt.status, tt.body)
			_, err := p.Generate(context.Background(), Request{
				Messages:  []Message{{Role: RoleUser, Content: "test"}},
				Schema:    outlineSchema(),
				MaxTokens: 100,
			})
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestAnthropicProvider_RequiresKey(t *testing.T) {
	_, err := NewAnthropicProvider(AnthropicConfig{Model: "claude-haiku"})
	assert.Error(t, err)
}

func TestResolveModel(t *testing.T) {
	tests := []struct {
		models map[string]string
		input  string
		want   string
	}{
		{anthropicModels, "claude-sonnet", "claude-sonnet-4-5"},
		{anthropicModels, "claude-haiku", "claude-haiku-4-5"},
		{anthropicModels, "claude-haiku-4-5-20251001", "claude-haiku-4-5-20251001"},
		{openaiModels, "gpt-mini", "gpt-4.1-mini"},
		{openaiModels, "gpt-4o-mini", "gpt-4o-mini"},
		{geminiModels, "gemini-flash", "gemini-2.5-flash"},
		{geminiModels, "gemini-pro", "gemini-2.5-pro"},
		{geminiModels, "gemini-2.0-flash", "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, resolveModel(tt.input, tt.models), tt.input)
		assert.NotNil(t, LookupCost(resolveModel(tt.input, tt.models)), "no price for %s", tt.input)
	}
}

package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/devpath/internal/store"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ProviderAnthropic, cfg.Provider)
	assert.Equal(t, "claude-haiku", cfg.Anthropic.Model)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, "gemini-flash", cfg.Gemini.Model)
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
	assert.Equal(t, time.Second, cfg.Retry.InitialWait)
	assert.Equal(t, 2.0, cfg.Retry.Multiplier)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestParseConfig_Overrides(t *testing.T) {
	cfg, err := parseConfig(map[string]string{
		"DEVPATH_LLM_PROVIDER":           "openrouter",
		"DEVPATH_OPENROUTER_API_KEY":     "or-key",
		"DEVPATH_OPENROUTER_MODEL":       "openai/gpt-4o-mini",
		"DEVPATH_LLM_RETRY_MAX_ATTEMPTS": "5",
		"DEVPATH_LLM_TIMEOUT":            "1m",
	})
	require.NoError(t, err)

	assert.Equal(t, ProviderOpenRouter, cfg.Provider)
	assert.Equal(t, "or-key", cfg.OpenRouter.APIKey)
	assert.Equal(t, "openai/gpt-4o-mini", cfg.OpenRouter.Model)
	assert.Equal(t, 5, cfg.Retry.MaxAttempts)
	assert.Equal(t, time.Minute, cfg.Timeout)
	assert.NoError(t, cfg.Validate())
}

func TestParseConfig_BadDuration(t *testing.T) {
	_, err := parseConfig(map[string]string{"DEVPATH_LLM_TIMEOUT": "soon"})
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		cfg     Config
		wantErr string
	}{
		{Config{Provider: ProviderAnthropic}, "DEVPATH_ANTHROPIC_API_KEY"},
		{Config{Provider: ProviderAnthropic, Anthropic: AnthropicConfig{APIKey: "sk-test"}}, ""},
		{Config{Provider: ProviderOpenAI}, "DEVPATH_OPENAI_API_KEY"},
		{Config{Provider: ProviderGemini}, "DEVPATH_GEMINI_API_KEY"},
		{Config{Provider: ProviderOpenRouter, OpenRouter: OpenRouterConfig{APIKey: "sk-or"}}, ""},
		{Config{Provider: ProviderMock}, ""},
		{Config{Provider: "watson"}, "unknown LLM provider"},
	}
	for _, tt := range tests {
		err := tt.cfg.Validate()
		if tt.wantErr == "" {
			assert.NoError(t, err, tt.cfg.Provider)
			continue
		}
		assert.ErrorContains(t, err, tt.wantErr, tt.cfg.Provider)
	}
}

func TestDiscoverConfig(t *testing.T) {
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
	_, ok := DiscoverConfig()
	assert.False(t, ok)

	t.Setenv("ANTHROPIC_API_KEY", "a-key")
	t.Setenv("OPENAI_API_KEY", "o-key")
	cfg, ok := DiscoverConfig()
	require.True(t, ok)
	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "o-key", cfg.OpenAI.APIKey)
}

func TestNewProvider_Mock(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: ProviderMock}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())

	_, err = NewProvider(context.Background(), Config{Provider: ProviderOpenAI}, nil, nil)
	assert.Error(t, err)
}

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model string
		want  *ModelCost
	}{
		{"gpt-4o-mini", &ModelCost{0.15, 0.6}},
		{"claude-haiku-4-5-20251001", &ModelCost{1, 5}},
		{"openai/gpt-4o-mini", &ModelCost{0.15, 0.6}},
		{"google/gemini-2.0-flash-exp", &ModelCost{0.1, 0.4}},
		{"mock", nil},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			assert.Equal(t, tt.want, LookupCost(tt.model))
		})
	}

	assert.InDelta(t, 0.00075, ModelCost{1, 5}.Cost(250, 100), 1e-9)
}

func TestLoggingProvider_RecordsEvent(t *testing.T) {
	s, err := store.Open(t.TempDir() + "/llm.db")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"answer":"use a for loop"}`), Usage: Usage{InputTokens: 12, OutputTokens: 7}},
		MockResponse{Err: errors.New("boom")},
	)
	p := WithLogging(mock, s.EventRepo(), nil)

	ctx := WithPurpose(context.Background(), PurposeTutorAnswer)
	req := Request{
		System:   "You are a programming tutor.",
		Messages: []Message{{Role: RoleUser, Content: "How do I loop?"}},
		Schema:   outlineSchema(),
	}
	_, err = p.Generate(ctx, req)
	require.NoError(t, err)
	_, err = p.Generate(ctx, req)
	require.Error(t, err)

	events, err := s.EventRepo().QueryLLMEvents(ctx, store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)

	failed, ok := events[0], events[1]
	assert.False(t, failed.Success)
	assert.Equal(t, "boom", failed.ErrorMessage)
	assert.True(t, ok.Success)
	assert.Equal(t, PurposeTutorAnswer, ok.Purpose)
	assert.Equal(t, ProviderMock, ok.Provider)
	assert.Equal(t, "mock", ok.Model)
	assert.Equal(t, 12, ok.InputTokens)
	assert.Contains(t, ok.RequestBody, "[system]\nYou are a programming tutor.")
	assert.Contains(t, ok.RequestBody, "[user]\nHow do I loop?")
	assert.Contains(t, ok.RequestBody, "[schema: lesson-outline]")
	assert.Equal(t, `{"answer":"use a for loop"}`, ok.ResponseBody)
}

package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, ProviderGemini, config.Provider)
	assert.Equal(t, "gemini-2.5-flash-lite", config.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-pro", config.GetModel(TierAdvanced))
}

func TestGetModel_Fallback(t *testing.T) {
	config := &Config{Provider: ProviderGemini, Models: map[ModelTier]string{TierLite: "fallback-model"}}
	assert.Equal(t, "fallback-model", config.GetModel(TierAdvanced))

	empty := &Config{Provider: ProviderGemini, Models: map[ModelTier]string{}}
	assert.Equal(t, "", empty.GetModel(TierAdvanced))
}

func TestWithModel_CopiesConfig(t *testing.T) {
	config := DefaultConfig()
	custom := config.WithModel(TierAdvanced, "custom-model")

	assert.Equal(t, "gemini-2.5-pro", config.GetModel(TierAdvanced))
	assert.Equal(t, "custom-model", custom.GetModel(TierAdvanced))
	assert.Equal(t, "gemini-2.5-flash-lite", custom.GetModel(TierLite))
}

func TestParseProvider(t *testing.T) {
	tests := []struct {
		input   string
		want    Provider
		wantErr bool
	}{
		{"", ProviderNone, false},
		{"none", ProviderNone, false},
		{"Fake", ProviderFake, false},
		{" gemini ", ProviderGemini, false},
		{"openai", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseProvider(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewClient_Providers(t *testing.T) {
	ctx := context.Background()

	client, err := NewClient(ctx, &Config{Provider: ProviderNone}, "")
	assert.ErrorIs(t, err, ErrDisabled)
	assert.Nil(t, client)

	client, err = NewClient(ctx, &Config{}, "")
	assert.ErrorIs(t, err, ErrDisabled)
	assert.Nil(t, client)

	client, err = NewClient(ctx, &Config{Provider: ProviderFake}, "")
	require.NoError(t, err)
	assert.IsType(t, &FakeClient{}, client)

	client, err = NewClient(ctx, &Config{Provider: ProviderGemini}, "")
	assert.Nil(t, client)
	var providerErr *ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.Equal(t, ProviderGemini, providerErr.Provider)
}

func TestFakeClient(t *testing.T) {
	ctx := context.Background()
	fake := NewFakeClient()

	first, err := fake.GenerateContent(ctx, "prompt", TierLite)
	require.NoError(t, err)
	second, err := fake.GenerateContent(ctx, "prompt", TierLite)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	doc, err := fake.GenerateJSON(ctx, "other", TierStandard)
	require.NoError(t, err)
	assert.Contains(t, doc, `"recommendation":"review"`)
	assert.Equal(t, []string{"prompt", "prompt", "other"}, fake.Prompts())

	fake.Err = errors.New("quota")
	_, err = fake.GenerateJSON(ctx, "x", TierLite)
	assert.ErrorContains(t, err, "quota")

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = NewFakeClient().GenerateContent(cancelled, "x", TierLite)
	assert.ErrorIs(t, err, context.Canceled)
}

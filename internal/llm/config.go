// Package llm holds the optional language model layer used for narrative screening
// summaries. Scores never depend on it.
package llm

import (
	"fmt"
	"strings"
)

// ModelTier represents the capability level of a model
type ModelTier string

const (
	// TierLite is for short summaries
	TierLite ModelTier = "lite"
	// TierStandard is for structured summaries
	TierStandard ModelTier = "standard"
	// TierAdvanced is for longer comparative write-ups
	TierAdvanced ModelTier = "advanced"
)

// Provider names an LLM backend
type Provider string

// Supported providers
const (
	// ProviderNone disables the LLM layer
	ProviderNone Provider = "none"
	// ProviderFake returns deterministic canned output, for tests and offline use
	ProviderFake Provider = "fake"
	// ProviderGemini is Google Gemini
	ProviderGemini Provider = "gemini"
)

// ParseProvider parses a provider name. An empty name means ProviderNone.
func ParseProvider(name string) (Provider, error) {
	switch p := Provider(strings.ToLower(strings.TrimSpace(name))); p {
	case "", ProviderNone:
		return ProviderNone, nil
	case ProviderFake, ProviderGemini:
		return p, nil
	default:
		return "", fmt.Errorf("unknown llm provider %q", name)
	}
}

// Config holds the provider and per-tier model names
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default Gemini configuration
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a tier, falling back to standard then lite
func (c *Config) GetModel(tier ModelTier) string {
	for _, t := range []ModelTier{tier, TierStandard, TierLite} {
		if model, ok := c.Models[t]; ok && model != "" {
			return model
		}
	}
	return ""
}

// WithModel returns a copy of c with model set for tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	out := &Config{Provider: c.Provider, Models: make(map[ModelTier]string, len(c.Models)+1)}
	for k, v := range c.Models {
		out.Models[k] = v
	}
	out.Models[tier] = model
	return out
}

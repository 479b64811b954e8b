package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"sync"
)

// FakeClient returns deterministic output derived from the prompt. It records every
// prompt it receives.
type FakeClient struct {
	mu      sync.Mutex
	prompts []string

	// Response, when set, is returned verbatim by both Generate methods
	Response string
	// Err, when set, is returned instead of a response
	Err error
}

// NewFakeClient creates a FakeClient with canned output
func NewFakeClient() *FakeClient {
	return &FakeClient{}
}

// GenerateContent returns Response or a short text keyed by the prompt hash
func (f *FakeClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	if err := f.record(ctx, prompt); err != nil {
		return "", err
	}
	if f.Response != "" {
		return f.Response, nil
	}
	return fmt.Sprintf("Summary %08x (%s)", promptHash(prompt), tier), nil
}

// GenerateJSON returns Response or a canned screening summary document
func (f *FakeClient) GenerateJSON(ctx context.Context, prompt string, _ ModelTier) (string, error) {
	if err := f.record(ctx, prompt); err != nil {
		return "", err
	}
	if f.Response != "" {
		return f.Response, nil
	}
	doc, err := json.Marshal(map[string]any{
		"summary":        fmt.Sprintf("Candidate summary %08x", promptHash(prompt)),
		"strengths":      []string{"Relevant experience"},
		"concerns":       []string{},
		"recommendation": "review",
	})
	if err != nil {
		return "", err
	}
	return string(doc), nil
}

// Prompts returns the prompts received so far
func (f *FakeClient) Prompts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.prompts...)
}

// Close is a no-op
func (f *FakeClient) Close() error { return nil }

func (f *FakeClient) record(ctx context.Context, prompt string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()
	if f.Err != nil {
		return &ProviderError{Provider: ProviderFake, Message: "generate content", Cause: f.Err}
	}
	return nil
}

func promptHash(prompt string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(prompt))
	return h.Sum32()
}

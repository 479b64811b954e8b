package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("screening.json", "match-summary")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.JobDescription}}")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.ErrorContains(t, err, "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get("screening.json", "nonexistent-key")
	assert.ErrorContains(t, err, "not found")
}

func TestMustGet(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() { MustGet("nonexistent.json", "some-key") })
	assert.NotPanics(t, func() { assert.NotEmpty(t, MustGet("interview.json", "intro")) })
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		template string
		data     map[string]string
		expected string
	}{
		{"fills placeholders", "Hello {{.Name}}, welcome to {{.Company}}!", map[string]string{"Name": "Alice", "Company": "Acme Corp"}, "Hello Alice, welcome to Acme Corp!"},
		{"no placeholders", "No placeholders here", map[string]string{"Key": "Value"}, "No placeholders here"},
		{"unknown placeholder stays", "Hello {{.Name}}", map[string]string{}, "Hello {{.Name}}"},
		{"repeated placeholder", "{{.X}}-{{.X}}", map[string]string{"X": "y"}, "y-y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.template, tt.data))
		})
	}
}

func TestRender(t *testing.T) {
	prompt, err := Render("interview.json", "skill", map[string]string{"Skill": "Kubernetes"})
	require.NoError(t, err)
	assert.Equal(t, "Tell me about a project where you used Kubernetes.", prompt)
}

func TestList_Sorted(t *testing.T) {
	ClearCache()

	keys, err := List("interview.json")
	require.NoError(t, err)
	assert.Equal(t, []string{"behavioral", "closing", "experience", "intro", "intro-titled", "skill"}, keys)
}

func TestCaching(t *testing.T) {
	ClearCache()

	first, err := Get("screening.json", "evaluation-summary")
	require.NoError(t, err)
	second, err := Get("screening.json", "evaluation-summary")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

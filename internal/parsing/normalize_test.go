package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplaySkillName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"go", "go", "Go"},
		{"javascript", "javascript", "JavaScript"},
		{"nodejs", "nodejs", "Node.js"},
		{"aws upper", "AWS", "AWS"},
		{"symbols", "c++", "C++"},
		{"python", "python", "Python"},
		{"PYTHON", "PYTHON", "Python"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"multi-word stays as-is", "data science", "data science"},
		{"mixed case kept", "SvelteKit", "SvelteKit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DisplaySkillName(tt.input))
		})
	}
}

func TestDisplaySkillNames_DropsEmpty(t *testing.T) {
	assert.Equal(t, []string{"Go", "Docker"}, DisplaySkillNames([]string{"go", " ", "docker"}))
}

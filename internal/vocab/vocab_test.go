package vocab

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsSharedAndPopulated(t *testing.T) {
	v := Default()
	assert.Same(t, v, Default())
	assert.Contains(t, v.TechnicalSkills(), "python")
	assert.Contains(t, v.SoftSkills(), "leadership")
	assert.Contains(t, v.SeniorityLevels(), "senior")
	assert.True(t, v.IsStopWord("the"))
	assert.True(t, v.IsNonCompanyWord("Present"))
}

func TestVocabulary_AccessorsReturnCopies(t *testing.T) {
	v := Default()
	skills := v.TechnicalSkills()
	skills[0] = "cobol"
	assert.NotEqual(t, "cobol", v.TechnicalSkills()[0])

	stop := v.StopWordSet()
	stop["python"] = true
	assert.False(t, v.IsStopWord("python"))
}

func TestVocabulary_Canonical(t *testing.T) {
	v := Default()
	assert.Equal(t, "go", v.Canonical("Golang"))
	assert.Equal(t, "kubernetes", v.Canonical(" k8s "))
	assert.Equal(t, "python", v.Canonical("Python"))
}

func TestNew_NormalizesAndMergesDefaults(t *testing.T) {
	v, err := New(File{TechnicalSkills: []string{"Go", " go ", "Rust", "Machine   Learning"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "rust", "machine learning"}, v.TechnicalSkills())
	assert.Empty(t, v.Aliases(), "default aliases only apply to the default technical list")
	assert.Equal(t, Default().SoftSkills(), v.SoftSkills())
}

func TestNew_RejectsAliasToUnknownSkill(t *testing.T) {
	_, err := New(File{TechnicalSkills: []string{"go"}, SkillAliases: map[string]string{"py": "python"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown technical skill")
}

func TestAliases_SortedByAlias(t *testing.T) {
	pairs := Default().Aliases()
	require.NotEmpty(t, pairs)
	for i := 1; i < len(pairs); i++ {
		assert.Less(t, pairs[i-1][0], pairs[i][0])
	}
}

func TestLoad_EmptyPathUsesDefault(t *testing.T) {
	v, err := Load("")
	require.NoError(t, err)
	assert.Same(t, Default(), v)
}

func TestLoad_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.json")
	content := `{"technical_skills": ["go", "kubernetes"], "skill_aliases": {"k8s": "kubernetes"}, "seniority_levels": ["senior"]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	v, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "kubernetes"}, v.TechnicalSkills())
	assert.Equal(t, []string{"senior"}, v.SeniorityLevels())
	assert.Equal(t, "kubernetes", v.Canonical("k8s"))
}

func TestLoad_SchemaViolation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"technical_skills": [1, 2]}`), 0644))

	_, err := Load(path)
	require.Error(t, err)
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "schema validation failed", loadErr.Message)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read failed")
}

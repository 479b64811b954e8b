package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_VocabularyValid(t *testing.T) {
	doc := []byte(`{"technical_skills": ["go", "rust"], "skill_aliases": {"golang": "go"}}`)
	assert.NoError(t, Validate(VocabularySchema, doc))
}

func TestValidate_VocabularyUnknownSection(t *testing.T) {
	err := Validate(VocabularySchema, []byte(`{"languages": ["go"]}`))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidate_VocabularyWrongType(t *testing.T) {
	err := Validate(VocabularySchema, []byte(`{"technical_skills": "go"}`))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Equal(t, "technical_skills", validationErr.Errors[0].Field)
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("missing.schema.json", []byte(`{}`))
	require.Error(t, err)

	_, ok := err.(*SchemaLoadError)
	assert.True(t, ok, "error should be SchemaLoadError type")
}

func TestValidate_MalformedDocument(t *testing.T) {
	err := Validate(VocabularySchema, []byte(`{not json`))
	require.Error(t, err)
	_, ok := err.(*SchemaLoadError)
	assert.True(t, ok)
}

func TestValidateFile_AnswerEvaluation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "evaluation.json")
	doc := `{
		"question_type": "technical",
		"relevance_score": 0.8, "depth_score": 0.5, "clarity_score": 0.6,
		"overall_score": 0.67, "overall_score_percent": 67,
		"explanation": "ok", "strengths": [], "weaknesses": [], "suggestions": []
	}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))
	assert.NoError(t, ValidateFile(AnswerEvaluationSchema, path))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"relevance_score": 2}`), 0644))
	assert.Error(t, ValidateFile(AnswerEvaluationSchema, bad))
}

func TestValidateFile_NonExistent(t *testing.T) {
	err := ValidateFile(MatchResultSchema, filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSONString(t *testing.T) {
	schema := `{"type": "object", "required": ["name"]}`
	assert.NoError(t, ValidateJSONString(schema, `{"name": "x"}`))
	assert.Error(t, ValidateJSONString(schema, `{}`))
}

func TestValidateValue(t *testing.T) {
	assert.NoError(t, ValidateValue(VocabularySchema, map[string]any{
		"technical_skills": []string{"go"},
	}))

	err := ValidateValue(VocabularySchema, map[string]any{"technical_skills": 3})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "technical_skills", ve.Errors[0].Field)
}

func TestValidate_CachesCompiledSchema(t *testing.T) {
	require.NoError(t, Validate(VocabularySchema, []byte(`{}`)))
	first, err := embedded(VocabularySchema)
	require.NoError(t, err)
	second, err := embedded(VocabularySchema)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

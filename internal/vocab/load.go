package vocab

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/candidate-screener/internal/schemas"
)

// LoadError reports a vocabulary file that could not be read or is invalid
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load vocabulary %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load vocabulary %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Load reads a JSON vocabulary file, validates it against the vocabulary schema and
// builds a Vocabulary. An empty path returns the built-in vocabulary.
func Load(path string) (*Vocabulary, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "read failed", Cause: err}
	}
	return Parse(path, data)
}

// Parse validates and builds a Vocabulary from JSON bytes. name is used in errors only.
func Parse(name string, data []byte) (*Vocabulary, error) {
	if err := schemas.Validate(schemas.VocabularySchema, data); err != nil {
		return nil, &LoadError{Path: name, Message: "schema validation failed", Cause: err}
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, &LoadError{Path: name, Message: "invalid JSON", Cause: err}
	}

	v, err := New(f)
	if err != nil {
		return nil, &LoadError{Path: name, Message: "invalid vocabulary", Cause: err}
	}
	return v, nil
}

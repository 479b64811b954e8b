// Package schemas validates vocabulary files, API payloads and screening outputs
// against the JSON Schemas embedded in the binary.
package schemas

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	schemafiles "github.com/jonathan/candidate-screener/schemas"
	"github.com/xeipuuv/gojsonschema"
)

// Embedded schema names
const (
	VocabularySchema       = "vocabulary.schema.json"
	MatchResultSchema      = "match_result.schema.json"
	AnswerEvaluationSchema = "answer_evaluation.schema.json"
)

// FieldError is one schema violation. Field is "(root)" for the document itself.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every violation found in a document
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, fe := range ve.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, fe.Field, fe.Message)
	}
	return sb.String()
}

// SchemaLoadError is returned when the schema or the document cannot be loaded
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("schema %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("schema %s: %s: %v", e.Path, e.Message, e.Cause)
}

func (e *SchemaLoadError) Unwrap() error { return e.Cause }

// compiled caches embedded schemas by name
var compiled sync.Map

func embedded(name string) (*gojsonschema.Schema, error) {
	if s, ok := compiled.Load(name); ok {
		return s.(*gojsonschema.Schema), nil
	}
	raw, err := schemafiles.FS.ReadFile(name)
	if err != nil {
		return nil, &SchemaLoadError{Path: name, Message: "not embedded", Cause: err}
	}
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, &SchemaLoadError{Path: name, Message: "invalid schema", Cause: err}
	}
	actual, _ := compiled.LoadOrStore(name, s)
	return actual.(*gojsonschema.Schema), nil
}

// Validate checks a JSON document against an embedded schema
func Validate(schemaName string, document []byte) error {
	s, err := embedded(schemaName)
	if err != nil {
		return err
	}
	return check(schemaName, s, gojsonschema.NewBytesLoader(document))
}

// ValidateValue checks a Go value, as it would marshal to JSON, against an embedded
// schema
func ValidateValue(schemaName string, v any) error {
	s, err := embedded(schemaName)
	if err != nil {
		return err
	}
	return check(schemaName, s, gojsonschema.NewGoLoader(v))
}

// ValidateFile checks the JSON file at path against an embedded schema
func ValidateFile(schemaName, path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("JSON file not found: %s", path)
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return Validate(schemaName, data)
}

// ValidateJSONString checks a JSON document against a schema given as text
func ValidateJSONString(schemaContent, jsonContent string) error {
	const name = "(inline)"
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaContent))
	if err != nil {
		return &SchemaLoadError{Path: name, Message: "invalid schema", Cause: err}
	}
	return check(name, s, gojsonschema.NewStringLoader(jsonContent))
}

func check(name string, s *gojsonschema.Schema, doc gojsonschema.JSONLoader) error {
	result, err := s.Validate(doc)
	if err != nil {
		return &SchemaLoadError{Path: name, Message: "document could not be loaded", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		ve.Errors = append(ve.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return ve
}

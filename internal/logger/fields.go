package logger

import (
	"strings"

	"go.uber.org/zap"
)

// Structured field keys shared across the service
const (
	FieldOperation = "operation"
	FieldCandidate = "candidate"
	FieldJobHash   = "job_hash"
	FieldSessionID = "session_id"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields attaches fields to logger. A nil logger becomes a no-op logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// ScreeningFields returns the standard fields describing a screening call. Empty
// values are left out.
func ScreeningFields(operation, candidate, jobHash string) []zap.Field {
	return StringFields(
		StringField{Key: FieldOperation, Value: operation},
		StringField{Key: FieldCandidate, Value: candidate},
		StringField{Key: FieldJobHash, Value: jobHash},
	)
}

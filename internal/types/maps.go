package types

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// toMap converts a record to a plain map through its JSON representation.
func toMap(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %T: %w", v, err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %T into map: %w", v, err)
	}
	return m, nil
}

// fromMap decodes a plain map into out using the json field names.
func fromMap(m map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.TextUnmarshallerHookFunc(),
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(m); err != nil {
		return fmt.Errorf("failed to decode %T: %w", out, err)
	}
	return nil
}

// nonNil replaces a nil slice with an empty one so JSON output uses [] rather than null.
func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

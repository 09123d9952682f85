package llm

import (
	"encoding/json"
	"strings"
)

// SchemaValidator validates a parsed struct after JSON decoding.
// Returns nil if valid, or a descriptive error if invalid.
type SchemaValidator[T any] func(T) error

// DecodeJSON parses raw message content as a JSON document of type T.
// Surrounding code fences (``` or ```json) are removed first; any other
// stray text makes the payload malformed. If validator is non-nil the
// decoded value must also pass it. All failures are MalformedResponseError.
func DecodeJSON[T any](raw string, validator SchemaValidator[T]) (T, error) {
	var zero T

	cleaned := StripCodeFences(raw)
	if cleaned == "" {
		return zero, malformed(raw, "empty response")
	}

	var result T
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return zero, malformed(raw, "%v", err)
	}

	if validator != nil {
		if err := validator(result); err != nil {
			return zero, malformed(raw, "validation failed: %v", err)
		}
	}

	return result, nil
}

// StripCodeFences removes a leading markdown fence (with or without a
// language tag) and a trailing fence. Text without fences is returned
// trimmed but otherwise unchanged.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimLeft(s, languageTagChars)
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// languageTagChars may follow an opening fence, e.g. "json" or "JSON".
// A JSON document never starts with one of these.
const languageTagChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Package extractor coerces raw text-completion output into validated JSON
// payloads. Models are prompted to answer with a single JSON object but
// routinely wrap it in commentary or code fences; this package owns the
// cleanup heuristic so callers only ever see a parsed, shape-checked
// document or a typed error.
package extractor

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Nishitha-lab/StudyStreak-AI/internal/domain"
)

// Kind is the expected JSON container type for a required key.
type Kind int

const (
	// KindAny only requires the key to be present.
	KindAny Kind = iota
	// KindList requires a JSON array.
	KindList
	// KindNumber requires a JSON number.
	KindNumber
	// KindString requires a JSON string.
	KindString
)

// Field names a required key and its expected container type.
type Field struct {
	Name string
	Kind Kind
}

// Lists is a convenience constructor for fields that must all be arrays.
func Lists(names ...string) []Field {
	fields := make([]Field, len(names))
	for i, name := range names {
		fields[i] = Field{Name: name, Kind: KindList}
	}
	return fields
}

// Extract locates the JSON object embedded in raw model output and validates
// it against the required fields. It returns the sliced payload so callers
// can unmarshal it into their own types, or a MalformedResponse /
// SchemaViolation error. It never returns partially validated data and never
// panics on malformed input.
//
// The payload is found by stripping code-fence markers and slicing from the
// first '{' to the last '}'. This assumes the payload is the outermost
// object; nested braces inside string values are tolerated, but a stray
// closing brace in trailing commentary is not. A stricter balanced-brace
// parser can replace this without touching callers.
func Extract(raw string, required []Field) (json.RawMessage, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return nil, domain.NewMalformedResponseError("no JSON object found in AI response", raw)
	}

	payload := json.RawMessage(cleaned[start : end+1])

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, domain.NewMalformedResponseError("AI response is not a valid JSON object", raw)
	}

	for _, f := range required {
		value, ok := doc[f.Name]
		if !ok {
			return nil, domain.NewSchemaViolationError(fmt.Sprintf("AI response is missing required key %q", f.Name))
		}
		if !matchesKind(value, f.Kind) {
			return nil, domain.NewSchemaViolationError(fmt.Sprintf("AI response key %q has the wrong type", f.Name))
		}
	}

	return payload, nil
}

// ExtractInto extracts and validates the payload, then unmarshals it into v.
// A payload that passes key validation but has scalar fields of the wrong
// type is reported as a SchemaViolation.
func ExtractInto(raw string, required []Field, v interface{}) error {
	payload, err := Extract(raw, required)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return domain.NewSchemaViolationError(fmt.Sprintf("AI response does not match the expected shape: %v", err))
	}
	return nil
}

func matchesKind(value json.RawMessage, kind Kind) bool {
	trimmed := strings.TrimSpace(string(value))
	if trimmed == "" || trimmed == "null" {
		return kind == KindAny
	}
	switch kind {
	case KindList:
		return trimmed[0] == '['
	case KindString:
		return trimmed[0] == '"'
	case KindNumber:
		c := trimmed[0]
		return c == '-' || (c >= '0' && c <= '9')
	default:
		return true
	}
}

package ai

import (
	"encoding/json"
	"strings"
)

// StripFences removes markdown code-fence wrapping if present
// (e.g. ```json ... ```). One leading and one trailing marker at most;
// fence markers inside the body are left alone.
func StripFences(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}

// DecodeStructured strips fence markers from raw and unmarshals the result
// into v. Failures come back as *ParseError carrying a response snippet.
func DecodeStructured(raw string, v any) error {
	clean := StripFences(raw)
	if err := json.Unmarshal([]byte(clean), v); err != nil {
		return newParseError(err, clean)
	}
	return nil
}

package llm

import "strings"

// ExtractJSON pulls the JSON object or array out of raw model output.
// Providers are asked for JSON mode, but not all of them honor it strictly:
// the payload may arrive wrapped in markdown code fences or surrounded by
// commentary. The extraction is two-stage: strip fences, then cut the text
// down to the first opening brace/bracket and its matching last close.
// Returns the input unchanged if no JSON-looking region is found, so the
// subsequent parse fails with the original content in the error.
func ExtractJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
		s = strings.TrimSpace(s)
	}

	objStart := strings.Index(s, "{")
	arrStart := strings.Index(s, "[")

	start, closer := objStart, "}"
	if objStart < 0 || (arrStart >= 0 && arrStart < objStart) {
		start, closer = arrStart, "]"
	}
	if start < 0 {
		return s
	}

	end := strings.LastIndex(s, closer)
	if end <= start {
		return s
	}
	return s[start : end+1]
}

// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// CleanJSONBlock normalizes an LLM response down to its JSON payload.
// LLMs often wrap JSON in ```json ... ``` blocks or conversational text even
// when instructed not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	// Handle ```json ... ``` blocks
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	// Handle generic ``` ... ``` blocks
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip potential language identifier on first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			// If first line looks like a language identifier (no spaces, short), skip it
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	// No fences. Strip preamble and trailing chatter by extracting the first
	// balanced JSON object or array.
	objStart := strings.Index(text, "{")
	arrStart := strings.Index(text, "[")

	start := objStart
	extract := extractJSONObject
	if objStart == -1 || (arrStart != -1 && arrStart < objStart) {
		start = arrStart
		extract = extractJSONArray
	}
	if start == -1 {
		return text
	}
	if payload := extract(text[start:]); payload != "" {
		return payload
	}
	return text
}

// extractJSONObject returns the balanced JSON object at the start of text,
// honoring string literals and escapes. Returns "" when text does not begin
// with an object or the braces never balance.
func extractJSONObject(text string) string {
	return extractBalanced(text, '{', '}')
}

// extractJSONArray is the array counterpart of extractJSONObject.
func extractJSONArray(text string) string {
	return extractBalanced(text, '[', ']')
}

func extractBalanced(text string, opener, closer byte) string {
	if len(text) == 0 || text[0] != opener {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
			// Delimiters inside string literals do not affect nesting.
		case c == opener:
			depth++
		case c == closer:
			depth--
			if depth == 0 {
				return text[:i+1]
			}
		}
	}
	return ""
}

package utils

import "strings"

// StripCodeFences removes markdown code-block markers a model may wrap around
// JSON even when asked not to. Text without fences is returned trimmed.
func StripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```JSON", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

package planner

import (
	"fmt"
	"strings"
)

// ExtractJSON pulls a JSON object out of LLM output that may wrap it in
// markdown fences or prose. Returns the text from the first '{' to the last
// '}' after stripping any ``` fences.
func ExtractJSON(text string) (string, error) {
	cleaned := text
	if idx := strings.Index(cleaned, "```"); idx >= 0 {
		cleaned = cleaned[idx+3:]
		cleaned = strings.TrimPrefix(cleaned, "json")
		if end := strings.Index(cleaned, "```"); end >= 0 {
			cleaned = cleaned[:end]
		}
	}

	start := strings.IndexByte(cleaned, '{')
	end := strings.LastIndexByte(cleaned, '}')
	if start < 0 || end < start {
		return "", fmt.Errorf("no JSON object found in model output")
	}
	return cleaned[start : end+1], nil
}

package aiquiz

import "strings"

// ExtractJSONObject returns the widest brace-delimited span of text: from
// the first '{' to the last '}' after it. Models wrap JSON in prose or code
// fences despite instructions, so this is a tolerance heuristic, not a
// scanner; it can be fooled by braces in the surrounding prose. When no '}'
// follows the first '{' the span runs to the end of the text and decoding
// reports the damage. ok is false only when text contains no '{' at all.
func ExtractJSONObject(text string) (span string, ok bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}
	end := strings.LastIndexByte(text, '}')
	if end < start {
		return text[start:], true
	}
	return text[start : end+1], true
}

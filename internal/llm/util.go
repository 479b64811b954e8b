package llm

import "strings"

// CleanJSONBlock strips markdown fences and any text around the outermost JSON
// object or array. Models wrap JSON in ```json blocks even when told not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// drop a language tag on the fence line
		if nl := strings.IndexByte(text, '\n'); nl >= 0 {
			tag := strings.TrimSpace(text[:nl])
			if !strings.ContainsAny(tag, " {[") {
				text = text[nl+1:]
			}
		}
		if end := strings.LastIndex(text, "```"); end >= 0 {
			text = text[:end]
		}
		text = strings.TrimSpace(text)
	}

	start := strings.IndexAny(text, "{[")
	if start < 0 {
		return text
	}
	closer := byte('}')
	if text[start] == '[' {
		closer = ']'
	}
	if end := strings.LastIndexByte(text, closer); end > start {
		return text[start : end+1]
	}
	return text
}

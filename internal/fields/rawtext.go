package fields

import "strings"

// ExtractRawText reconstructs a best-effort OCR text for audit and
// category sniffing from the inference and surrounding response.
// The first non-empty candidate wins; "" means no text survived.
func ExtractRawText(inference, response map[string]any) string {
	candidates := []any{
		dig(inference, "result", "rawText"),
		dig(inference, "result", "raw_text"),
		dig(response, "inference", "result", "raw_text"),
		dig(response, "document", "inference", "result", "raw_text"),
		dig(response, "rawHttp", "inference", "result", "raw_text"),
		dig(response, "rawHttp", "document", "inference", "result", "raw_text"),
	}
	for _, c := range candidates {
		if text := normalizeRawText(c); text != "" {
			return text
		}
	}
	return ""
}

func normalizeRawText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case map[string]any:
		if pages, ok := t["pages"].([]any); ok {
			if joined := joinPages(pages); joined != "" {
				return joined
			}
		}
		if content, ok := t["content"].(string); ok {
			return strings.TrimSpace(content)
		}
		return ""
	default:
		return ""
	}
}

func joinPages(pages []any) string {
	parts := make([]string, 0, len(pages))
	for _, p := range pages {
		var content string
		switch page := p.(type) {
		case string:
			content = page
		case map[string]any:
			content, _ = page["content"].(string)
		}
		if strings.TrimSpace(content) != "" {
			parts = append(parts, content)
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}

// dig walks nested maps; nil when any step is missing.
func dig(m map[string]any, keys ...string) any {
	var cur any = m
	for _, k := range keys {
		node, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = node[k]
	}
	return cur
}

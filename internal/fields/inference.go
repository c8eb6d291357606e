package fields

import "sort"

// ExtractInference pulls the inference object out of a raw backend
// response, tolerating the documented nesting variants.
func ExtractInference(response map[string]any) map[string]any {
	paths := [][]string{
		{"inference"},
		{"document", "inference"},
		{"rawHttp", "inference"},
		{"rawHttp", "document", "inference"},
	}
	for _, path := range paths {
		if m, ok := dig(response, path...).(map[string]any); ok {
			return m
		}
	}
	return nil
}

// ExtractFieldBag locates the field bag within an inference, falling
// back to raw response nestings. The backend's schema is not fixed
// across document types, hence the candidate walk.
func ExtractFieldBag(inference, response map[string]any) Bag {
	if inference != nil {
		if m, ok := dig(inference, "result", "fields").(map[string]any); ok {
			return m
		}
		if m, ok := dig(inference, "prediction", "fields").(map[string]any); ok {
			return m
		}
		if m, ok := inference["fields"].(map[string]any); ok {
			return m
		}
		if preds, ok := inference["predictions"].([]any); ok && len(preds) > 0 {
			if p, ok := preds[0].(map[string]any); ok {
				return ExtractFieldBag(p, response)
			}
		}
	}

	paths := [][]string{
		{"rawHttp", "inference", "result", "fields"},
		{"rawHttp", "document", "inference", "result", "fields"},
		{"rawHttp", "result", "fields"},
		{"result", "fields"},
	}
	for _, path := range paths {
		if m, ok := dig(response, path...).(map[string]any); ok {
			return m
		}
	}
	return nil
}

// FieldKeys lists the bag's keys sorted, for diagnostics on anomalous
// payloads.
func FieldKeys(bag Bag) []string {
	keys := make([]string, 0, len(bag))
	for k := range bag {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

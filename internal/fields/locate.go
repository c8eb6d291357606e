package fields

// Bag is the top-level mapping of named fields the structured backend
// returns for one document.
type Bag = map[string]any

// RawField returns the raw, non-unwrapped node for name, or nil.
func RawField(bag Bag, name string) any {
	if bag == nil || name == "" {
		return nil
	}
	return bag[name]
}

// FirstRawField returns the first present raw node among names.
// Line-item normalization needs the wrapper itself, not its plain form.
func FirstRawField(bag Bag, names ...string) any {
	for _, name := range names {
		if v := RawField(bag, name); v != nil {
			return v
		}
	}
	return nil
}

// Locate walks candidate names in order, unwraps each present node and
// returns the first usable value. An unwrapped array contributes its
// first non-empty element. The candidate order encodes priority policy
// and must be preserved by callers.
func Locate(bag Bag, names ...string) any {
	if bag == nil {
		return nil
	}
	for _, name := range names {
		if name == "" {
			continue
		}
		v := Unwrap(bag[name])
		if arr, ok := v.([]any); ok {
			for _, e := range arr {
				if !isEmpty(e) {
					return e
				}
			}
			continue
		}
		if !isEmpty(v) {
			return v
		}
	}
	return nil
}

// isEmpty treats nil and the empty string as unusable.
func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

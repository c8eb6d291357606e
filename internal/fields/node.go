// Package fields is the normalization engine that turns either raw OCR
// text heuristics or a structured document-understanding payload into
// one canonical expense record. Every function is total: malformed or
// partially absent input yields a defined default, never an error.
package fields

// Kind classifies one decoded node from the structured backend's
// payload. Decode performs all shape probing in one place so Unwrap
// can switch exhaustively.
type Kind int

const (
	// KindAbsent covers nil and shapes that carry nothing usable.
	KindAbsent Kind = iota
	// KindScalar is a primitive value passed through unchanged.
	KindScalar
	// KindSequence is a plain JSON array.
	KindSequence
	// KindValueWrap is a container exposing value, content or raw.
	KindValueWrap
	// KindItemsWrap is a container exposing an items or values array.
	KindItemsWrap
	// KindObjectWrap is an object-of-fields container (a "fields" sub-map).
	KindObjectWrap
	// KindMapping is a plain key->value object with no wrapper keys.
	KindMapping
)

// Node is the tagged form of one raw field tree node.
type Node struct {
	Kind   Kind
	Scalar any
	Seq    []any
	Inner  any
	Fields map[string]any
}

// valueKeys are probed in order; the first present key wins.
var valueKeys = []string{"value", "content", "raw"}

// itemsKeys are probed in order for list-shaped containers.
var itemsKeys = []string{"items", "values"}

// Decode classifies an arbitrarily shaped node. It never fails; shapes
// it does not recognize decode to KindAbsent.
func Decode(v any) Node {
	switch t := v.(type) {
	case nil:
		return Node{Kind: KindAbsent}
	case []any:
		return Node{Kind: KindSequence, Seq: t}
	case map[string]any:
		if len(t) == 0 {
			return Node{Kind: KindAbsent}
		}
		for _, k := range valueKeys {
			if inner, ok := t[k]; ok {
				return Node{Kind: KindValueWrap, Inner: inner}
			}
		}
		for _, k := range itemsKeys {
			if arr, ok := t[k].([]any); ok {
				return Node{Kind: KindItemsWrap, Seq: arr}
			}
		}
		if sub, ok := t["fields"].(map[string]any); ok {
			return Node{Kind: KindObjectWrap, Fields: sub}
		}
		return Node{Kind: KindMapping, Fields: t}
	default:
		return Node{Kind: KindScalar, Scalar: v}
	}
}

package fields

// Unwrap reduces a raw field node to a plain value: a scalar, a []any
// of plain values, a map[string]any of plain values, or nil when
// nothing usable remains. It is pure and terminates on any finite tree.
func Unwrap(v any) any {
	n := Decode(v)
	switch n.Kind {
	case KindAbsent:
		return nil
	case KindScalar:
		return n.Scalar
	case KindSequence, KindItemsWrap:
		return unwrapSeq(n.Seq)
	case KindValueWrap:
		return Unwrap(n.Inner)
	case KindObjectWrap, KindMapping:
		return unwrapMap(n.Fields)
	default:
		return nil
	}
}

func unwrapSeq(elems []any) any {
	out := make([]any, 0, len(elems))
	for _, e := range elems {
		if u := Unwrap(e); u != nil {
			out = append(out, u)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func unwrapMap(m map[string]any) any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if u := Unwrap(v); u != nil {
			out[k] = u
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

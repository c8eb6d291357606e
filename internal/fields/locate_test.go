package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocate_CandidateOrder(t *testing.T) {
	bag := Bag{
		"merchant_name": map[string]any{"value": "Second"},
		"supplier_name": map[string]any{"value": "First"},
	}
	assert.Equal(t, "First", Locate(bag, "supplier_name", "merchant_name"))
	assert.Equal(t, "Second", Locate(bag, "merchant_name", "supplier_name"))
}

func TestLocate_SkipsMissingAndEmpty(t *testing.T) {
	bag := Bag{
		"empty":    "",
		"wrapped":  map[string]any{"value": ""},
		"usable":   map[string]any{"value": "ok"},
		"nilfield": nil,
	}
	assert.Equal(t, "ok", Locate(bag, "missing", "empty", "nilfield", "wrapped", "usable"))
}

func TestLocate_ArrayTakesFirstUsableElement(t *testing.T) {
	bag := Bag{
		"candidates": []any{"", "first", "second"},
	}
	assert.Equal(t, "first", Locate(bag, "candidates"))
}

func TestLocate_ArrayWithNoUsableElementFallsThrough(t *testing.T) {
	bag := Bag{
		"all_blank": []any{"", ""},
		"fallback":  "value",
	}
	assert.Equal(t, "value", Locate(bag, "all_blank", "fallback"))
}

func TestLocate_NoCandidateYieldsNil(t *testing.T) {
	assert.Nil(t, Locate(Bag{}, "a", "b"))
	assert.Nil(t, Locate(nil, "a"))
	assert.Nil(t, Locate(Bag{"a": 1.0}))
}

func TestFirstRawField_DoesNotUnwrap(t *testing.T) {
	wrapped := map[string]any{"items": []any{map[string]any{"value": "x"}}}
	bag := Bag{"line_items": wrapped}
	assert.Equal(t, wrapped, FirstRawField(bag, "line_items", "items"))
	assert.Nil(t, FirstRawField(bag, "products"))
}

package fields

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAmount_Strings(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"19,99€", 19.99},
		{"19.99", 19.99},
		{"EUR 42,00", 42.0},
		{"1 234,56", 1234.56},
		{"-5,25", -5.25},
		{"total", 0},
		{"", 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, NormalizeAmount(tt.in), 1e-9, "input %q", tt.in)
	}
}

func TestNormalizeAmount_Numbers(t *testing.T) {
	assert.Equal(t, 12.34, NormalizeAmount(12.34))
	assert.Equal(t, 7.0, NormalizeAmount(7))
	assert.Equal(t, 0.0, NormalizeAmount(math.NaN()))
	assert.Equal(t, 0.0, NormalizeAmount(math.Inf(1)))
}

func TestNormalizeAmount_Absent(t *testing.T) {
	assert.Equal(t, 0.0, NormalizeAmount(nil))
	assert.Equal(t, 0.0, NormalizeAmount(true))
	assert.Equal(t, 0.0, NormalizeAmount(map[string]any{}))
	assert.Equal(t, 0.0, NormalizeAmount([]any{}))
}

func TestNormalizeAmount_Arrays(t *testing.T) {
	assert.Equal(t, 9.5, NormalizeAmount([]any{nil, 9.5, 1.0}))
	assert.Equal(t, 0.0, NormalizeAmount([]any{nil, nil}))
}

func TestNormalizeAmount_WrappedObjects(t *testing.T) {
	assert.InDelta(t, 5.5, NormalizeAmount(map[string]any{"value": "5.50"}), 1e-9)
	assert.InDelta(t, 8.25, NormalizeAmount(map[string]any{"amount": 8.25}), 1e-9)
	// amount wins over value
	assert.InDelta(t, 1.0, NormalizeAmount(map[string]any{"amount": 1.0, "value": 2.0}), 1e-9)
	// nested wrapping
	assert.InDelta(t, 3.3, NormalizeAmount(map[string]any{"value": map[string]any{"amount": "3,30"}}), 1e-9)
}

func TestNormalizeAmount_TrailingJunkParsesPrefix(t *testing.T) {
	// a second separator ends the number, like a lenient float parse
	assert.InDelta(t, 19.99, NormalizeAmount("19.99.50"), 1e-9)
}

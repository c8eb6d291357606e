package fields

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/edenbergel/SmartReceiptApp/internal/entity"
)

var descriptionKeys = []string{"description", "product", "name", "title", "label"}
var quantityKeys = []string{"quantity", "qty", "count", "quantity_value"}
var unitPriceKeys = []string{"unit_price", "unitPrice", "price_unit", "price"}
var totalKeys = []string{"total_incl", "total_excl", "total", "amount", "value"}

// NormalizeLineItems maps a heterogeneous line-item field into
// canonical entries. Entries that are not objects are skipped; a field
// that holds no array at all yields an empty slice.
func NormalizeLineItems(field any) []entity.LineItem {
	items, ok := Unwrap(field).([]any)
	if !ok {
		switch t := field.(type) {
		case []any:
			items = t
		case map[string]any:
			if arr, isArr := t["items"].([]any); isArr {
				items = arr
			} else if arr, isArr := t["value"].([]any); isArr {
				items = arr
			} else {
				return []entity.LineItem{}
			}
		default:
			return []entity.LineItem{}
		}
	}

	out := make([]entity.LineItem, 0, len(items))
	for _, raw := range items {
		item, isObj := raw.(map[string]any)
		if !isObj {
			continue
		}
		out = append(out, normalizeItem(item))
	}
	return out
}

func normalizeItem(item map[string]any) entity.LineItem {
	description := entity.DefaultItemLabel
	if s := firstItemString(item, descriptionKeys); s != "" {
		description = s
	} else if s, ok := Unwrap(item).(string); ok && strings.TrimSpace(s) != "" {
		description = strings.TrimSpace(s)
	}

	quantity := optionalNumber(Unwrap(firstKey(item, quantityKeys...)))
	unitPrice := optionalNumber(Unwrap(firstKey(item, unitPriceKeys...)))

	total := optionalNumber(Unwrap(firstKey(item, totalKeys...)))
	if total == nil && quantity != nil && unitPrice != nil {
		total = derivedTotal(*quantity, *unitPrice)
	}

	return entity.LineItem{
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Total:       total,
	}
}

func firstItemString(item map[string]any, keys []string) string {
	for _, k := range keys {
		v, ok := item[k]
		if !ok || v == nil {
			continue
		}
		if s, isStr := Unwrap(v).(string); isStr && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// derivedTotal computes quantity x unit price with banker's rounding
// to two decimals. The unit price is assumed tax-exclusive.
func derivedTotal(quantity, unitPrice float64) *float64 {
	total := decimal.NewFromFloat(quantity).
		Mul(decimal.NewFromFloat(unitPrice)).
		RoundBank(2).
		InexactFloat64()
	return &total
}

// optionalNumber coerces a scalar to a number by stripping non-numeric
// characters before a strict parse; nil when not finite.
func optionalNumber(v any) *float64 {
	switch t := v.(type) {
	case nil:
		return nil
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil
		}
		return &t
	case float32:
		return optionalNumber(float64(t))
	case int:
		f := float64(t)
		return &f
	case int64:
		f := float64(t)
		return &f
	case string:
		var b strings.Builder
		for _, r := range t {
			if (r >= '0' && r <= '9') || r == '.' || r == '-' {
				b.WriteRune(r)
			}
		}
		d, err := decimal.NewFromString(b.String())
		if err != nil {
			return nil
		}
		f := d.InexactFloat64()
		return &f
	default:
		return nil
	}
}

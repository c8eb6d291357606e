package fields

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edenbergel/SmartReceiptApp/internal/entity"
)

func TestMapPrediction_MindeeStylePayload(t *testing.T) {
	response := map[string]any{
		"inference": map[string]any{
			"result": map[string]any{
				"raw_text": map[string]any{
					"pages": []any{
						map[string]any{"content": "Cafe du Marche"},
						map[string]any{"content": "Total 24,50 EUR"},
					},
				},
				"fields": map[string]any{
					"supplier_name": map[string]any{"value": "Cafe du Marche"},
					"total_amount":  map[string]any{"value": "24,50"},
					"date":          map[string]any{"value": "2025-04-02"},
					"locale":        map[string]any{"language": "fr", "country": "FR"},
					"line_items": map[string]any{
						"items": []any{
							map[string]any{"description": "Coffee", "quantity": 2, "unit_price": 2.5},
						},
					},
				},
			},
		},
	}

	inference := ExtractInference(response)
	require.NotNil(t, inference)
	bag := ExtractFieldBag(inference, response)
	require.NotNil(t, bag)

	got := MapPrediction(bag, inference, response)

	assert.Equal(t, "Cafe du Marche", got.Merchant)
	assert.InDelta(t, 24.50, got.Amount, 1e-9)
	assert.Equal(t, "02/04/2025", got.Date)
	assert.Equal(t, "Food", got.Category)
	assert.Equal(t, "Cafe du Marche\nTotal 24,50 EUR", got.RawText)
	require.Len(t, got.LineItems, 1)
	assert.Equal(t, "Coffee", got.LineItems[0].Description)
	require.NotNil(t, got.LineItems[0].Total)
	assert.Equal(t, 5.0, *got.LineItems[0].Total)
}

func TestMapPrediction_EmptyBagYieldsDefaults(t *testing.T) {
	stubNow(t, time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC))

	got := MapPrediction(Bag{}, nil, nil)

	assert.Equal(t, entity.UnknownMerchant, got.Merchant)
	assert.Equal(t, 0.0, got.Amount)
	assert.Equal(t, "15/06/2025", got.Date)
	assert.Equal(t, "Other", got.Category)
	assert.Empty(t, got.RawText)
	assert.Empty(t, got.LineItems)
}

func TestMapPrediction_CategoryHintWins(t *testing.T) {
	bag := Bag{
		"supplier_name":    "ACME Corp",
		"expense_category": map[string]any{"value": "groceries"},
	}

	got := MapPrediction(bag, nil, nil)
	assert.Equal(t, "Food", got.Category)
}

func TestMapPrediction_MerchantKeyPriority(t *testing.T) {
	bag := Bag{
		"supplier":      "Fallback Shop",
		"supplier_name": map[string]any{"value": "Primary Shop"},
	}

	got := MapPrediction(bag, nil, nil)
	assert.Equal(t, "Primary Shop", got.Merchant)
}

func TestExtractInference_NestingVariants(t *testing.T) {
	inner := map[string]any{"result": map[string]any{}}

	assert.Equal(t, inner, ExtractInference(map[string]any{"inference": inner}))
	assert.Equal(t, inner, ExtractInference(map[string]any{"document": map[string]any{"inference": inner}}))
	assert.Equal(t, inner, ExtractInference(map[string]any{"rawHttp": map[string]any{"inference": inner}}))
	assert.Nil(t, ExtractInference(map[string]any{"unrelated": true}))
	assert.Nil(t, ExtractInference(nil))
}

func TestExtractFieldBag_PredictionVariants(t *testing.T) {
	fields := map[string]any{"supplier_name": "X"}

	bag := ExtractFieldBag(map[string]any{"prediction": map[string]any{"fields": fields}}, nil)
	assert.Equal(t, Bag(fields), bag)

	bag = ExtractFieldBag(map[string]any{"predictions": []any{map[string]any{"fields": fields}}}, nil)
	assert.Equal(t, Bag(fields), bag)

	bag = ExtractFieldBag(nil, map[string]any{"result": map[string]any{"fields": fields}})
	assert.Equal(t, Bag(fields), bag)

	assert.Nil(t, ExtractFieldBag(nil, nil))
}

func TestExtractRawText_StringAndPageForms(t *testing.T) {
	assert.Equal(t, "plain text", ExtractRawText(map[string]any{"result": map[string]any{"rawText": " plain text "}}, nil))

	resp := map[string]any{"document": map[string]any{"inference": map[string]any{"result": map[string]any{
		"raw_text": "from response",
	}}}}
	assert.Equal(t, "from response", ExtractRawText(nil, resp))

	assert.Empty(t, ExtractRawText(nil, nil))
}

func TestMapPrediction_OutputValidatesAgainstSchema(t *testing.T) {
	bag := Bag{
		"supplier_name": "Cafe du Marche",
		"total_amount":  "24,50",
		"date":          "2025-04-02",
	}

	got := MapPrediction(bag, nil, nil)
	payload, err := json.Marshal(got)
	require.NoError(t, err)

	require.NoError(t, ValidateJSONAgainstSchema(BuildExpenseJSONSchema(), payload))
}

package fields

import (
	"github.com/edenbergel/SmartReceiptApp/internal/entity"
)

// Candidate key names per target field. Order encodes priority and
// must not be reshuffled.
var (
	merchantKeys     = []string{"supplier_name", "merchant_name", "company_name", "supplier"}
	amountKeys       = []string{"total_amount", "total_incl", "grand_total", "amount", "total"}
	categoryHintKeys = []string{"expense_category", "purchase_category", "category"}
	dateKeys         = []string{"date", "purchase_date", "invoice_date", "datetime"}
	lineItemKeys     = []string{"line_items", "items", "products"}
)

// MapPrediction assembles the canonical expense record from a located
// field bag plus the surrounding inference and response objects. It is
// total: any combination of missing fields still yields a complete,
// well-typed record.
func MapPrediction(bag Bag, inference, response map[string]any) entity.ExtractedExpense {
	merchant := asString(Locate(bag, merchantKeys...))
	if merchant == "" {
		merchant = entity.UnknownMerchant
	}

	rawText := ExtractRawText(inference, response)

	amount := NormalizeAmount(Locate(bag, amountKeys...))

	hint := Locate(bag, categoryHintKeys...)
	category := InferCategory(merchant, rawText, hint)

	rawDate := Locate(bag, dateKeys...)
	locale := ResolveLocale(Locate(bag, "locale"))
	date := NormalizeDate(rawDate, locale)

	lineItems := NormalizeLineItems(FirstRawField(bag, lineItemKeys...))

	return entity.ExtractedExpense{
		Merchant:  merchant,
		Date:      date,
		Amount:    amount,
		Category:  category,
		RawText:   rawText,
		LineItems: lineItems,
	}
}

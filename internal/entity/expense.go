package entity

import (
	"time"

	"github.com/google/uuid"
)

// UnknownMerchant is the merchant sentinel used when no merchant name
// could be extracted.
const UnknownMerchant = "Unknown Merchant"

// DefaultItemLabel is the line-item description used when an item
// carries no usable label.
const DefaultItemLabel = "Article"

// LineItem is one normalized receipt line. Quantity, unit price and
// total stay nil when the backend did not produce them and they could
// not be derived.
type LineItem struct {
	Description string   `json:"description"`
	Quantity    *float64 `json:"quantity,omitempty"`
	UnitPrice   *float64 `json:"unitPrice,omitempty"`
	Total       *float64 `json:"total,omitempty"`
}

// ExtractedExpense is the canonical record both extraction pipelines
// produce: always complete and well-typed, independent of which OCR
// backend supplied the input.
type ExtractedExpense struct {
	Merchant  string     `json:"merchant"`
	Date      string     `json:"date"` // DD/MM/YYYY
	Amount    float64    `json:"amount"`
	Category  string     `json:"category"`
	RawText   string     `json:"rawText,omitempty"`
	LineItems []LineItem `json:"lineItems,omitempty"`
}

// Expense is an accepted expense as persisted by the store.
type Expense struct {
	ID        uuid.UUID  `json:"id"`
	Merchant  string     `json:"merchant"`
	Date      string     `json:"date"`
	Amount    float64    `json:"amount"`
	Category  string     `json:"category"`
	RawText   string     `json:"rawText,omitempty"`
	LineItems []LineItem `json:"lineItems,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// FromExtracted seeds a storable expense from a reviewed canonical record.
func FromExtracted(e ExtractedExpense) Expense {
	return Expense{
		Merchant:  e.Merchant,
		Date:      e.Date,
		Amount:    e.Amount,
		Category:  e.Category,
		RawText:   e.RawText,
		LineItems: e.LineItems,
	}
}

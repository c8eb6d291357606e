// Package textextract parses raw OCR text into the canonical expense
// record using positional and regex heuristics. It shares the category
// rule table and free-text date scan with the structured pipeline so
// both backends classify identically.
package textextract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/edenbergel/SmartReceiptApp/internal/entity"
	"github.com/edenbergel/SmartReceiptApp/internal/fields"
)

// amountRe matches money-looking substrings with a two-digit
// fractional part, either separator.
var amountRe = regexp.MustCompile(`\d+[.,]\d{2}`)

// digitRe spots lines that carry any digit at all.
var digitRe = regexp.MustCompile(`\d`)

// Extract parses recognized text into merchant, date, amount and
// category. It never fails: missing signals fall back to the canonical
// defaults.
func Extract(text string) entity.ExtractedExpense {
	lines := splitLines(text)

	merchant := inferMerchant(lines)
	date := fields.InferDate(text)
	amount := inferAmount(text)
	category := fields.InferCategory(merchant, text, nil)

	return entity.ExtractedExpense{
		Merchant: merchant,
		Date:     date,
		Amount:   amount,
		Category: category,
		RawText:  text,
	}
}

func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// inferMerchant scans the first lines for the first digit-free one
// longer than two characters; receipts open with the merchant banner.
func inferMerchant(lines []string) string {
	if len(lines) == 0 {
		return entity.UnknownMerchant
	}
	head := lines
	if len(head) > 5 {
		head = head[:5]
	}
	for _, line := range head {
		if !digitRe.MatchString(line) && utf8.RuneCountInString(line) > 2 {
			return line
		}
	}
	return lines[0]
}

// inferAmount takes the last money-looking match in document order:
// receipts list the grand total last.
func inferAmount(text string) float64 {
	matches := amountRe.FindAllString(text, -1)
	if len(matches) == 0 {
		return 0
	}
	normalized := strings.Replace(matches[len(matches)-1], ",", ".", 1)
	amount, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0
	}
	return amount
}

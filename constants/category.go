package constants

import (
	"strings"
)

type Category string

const (
	Food          Category = "Food"
	Transport     Category = "Transport"
	Office        Category = "Office"
	Travel        Category = "Travel"
	Healthcare    Category = "Healthcare"
	Shopping      Category = "Shopping"
	Entertainment Category = "Entertainment"
	Other         Category = "Other"
)

var allCategories = []Category{
	Food,
	Transport,
	Office,
	Travel,
	Healthcare,
	Shopping,
	Entertainment,
	Other,
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Other, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Category{
		"groceries":  Food,
		"restaurant": Food,
		"meals":      Food,
		"commute":    Transport,
		"rideshare":  Transport,
		"stationery": Office,
		"lodging":    Travel,
		"hotel":      Travel,
		"flights":    Travel,
		"pharmacy":   Healthcare,
		"medical":    Healthcare,
		"retail":     Shopping,
		"leisure":    Entertainment,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	// check if it matches any category string
	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Other, false
}

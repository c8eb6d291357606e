package fields

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/edenbergel/SmartReceiptApp/constants"
)

// CategoryRule pairs a keyword pattern with the label it assigns.
// Rule order is significant: the first match wins, so the table stays
// data rather than control flow.
type CategoryRule struct {
	Pattern *regexp.Regexp
	Label   constants.Category
}

// categoryRules is shared by both pipelines so either OCR backend
// yields identical category assignment.
var categoryRules = []CategoryRule{
	{regexp.MustCompile(`grocery|groceries|grocer|supermarket|supermarch|food|restaurant|cafe|meal|resto|snack`), constants.Food},
	{regexp.MustCompile(`uber|taxi|transport|bus|train|metro|cab|ride|parking|fuel|car rental|rent a car`), constants.Transport},
	{regexp.MustCompile(`office|supplies|stationery|printer|ink|bureau`), constants.Office},
	{regexp.MustCompile(`hotel|airbnb|voyage|travel|flight|airline|ticket|booking|lodging|hebergement`), constants.Travel},
	{regexp.MustCompile(`clinic|pharma|pharmacie|health|medical|doctor|dentist|opticien|hospital`), constants.Healthcare},
	{regexp.MustCompile(`shopping|retail|boutique|clothing|apparel|mall|store`), constants.Shopping},
	{regexp.MustCompile(`entertainment|movie|cinema|concert|theatre|show|loisirs`), constants.Entertainment},
}

var miscWordRe = regexp.MustCompile(`(?i)\bmisc\w*\b`)
var spaceRunRe = regexp.MustCompile(`\s+`)

// InferCategory assigns a category label by testing an ordered source
// list against the rule table: explicit hint first, then the merchant
// name, then the full text. An explicit hint is higher-confidence than
// keyword sniffing, but sniffing still runs as a safety net when the
// hint is absent or unmatched.
func InferCategory(merchant, text string, hint any) string {
	sources := []string{NormalizeCategoryHint(hint), merchant, text}
	for _, src := range sources {
		if label, ok := matchCategory(src); ok {
			return string(label)
		}
	}
	return string(constants.Other)
}

func matchCategory(source string) (constants.Category, bool) {
	if source == "" {
		return "", false
	}
	lower := strings.ToLower(source)
	for _, rule := range categoryRules {
		if rule.Pattern.MatchString(lower) {
			return rule.Label, true
		}
	}
	return "", false
}

// NormalizeCategoryHint cleans a backend category hint: wrapped and
// list shapes are flattened, "misc*" words removed, whitespace
// collapsed. An empty result counts as absent.
func NormalizeCategoryHint(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case []any:
		for _, e := range t {
			if s := NormalizeCategoryHint(e); s != "" {
				return s
			}
		}
		return ""
	case map[string]any:
		if primary := firstKey(t, "value", "content", "label", "name"); primary != nil {
			if s := NormalizeCategoryHint(primary); s != "" {
				return s
			}
		}
		// deterministic sweep of remaining values
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if s := NormalizeCategoryHint(t[k]); s != "" {
				return s
			}
		}
		return ""
	case string:
		return cleanHint(t)
	default:
		return cleanHint(fmt.Sprint(t))
	}
}

func cleanHint(s string) string {
	cleaned := miscWordRe.ReplaceAllString(s, "")
	cleaned = spaceRunRe.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

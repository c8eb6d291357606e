package fields

import (
	"fmt"
	"regexp"
	"time"
)

// now is stubbed in tests.
var now = time.Now

// maxEpochMillis mirrors the ECMAScript time range; timestamps beyond
// it do not form a valid calendar date.
const maxEpochMillis = 8.64e15

var (
	isoDateRe  = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)
	freeDateRe = regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})\b`)
)

// NormalizeDate converts any backend date representation to the fixed
// DD/MM/YYYY form. Absent or unusable input yields today's date.
//
// The locale parameter is accepted for future day/month-order
// disambiguation; the current policy always assumes day-first input
// when parsing ambiguous numeric strings. Known limitation: a backend
// resolving an explicit month-first locale is still parsed day-first.
func NormalizeDate(raw any, locale string) string {
	_ = locale

	switch t := raw.(type) {
	case nil:
		return todayDate()
	case time.Time:
		return t.UTC().Format("02/01/2006")
	case float64:
		return dateFromMillis(t)
	case int:
		return dateFromMillis(float64(t))
	case int64:
		return dateFromMillis(float64(t))
	case map[string]any:
		day := firstKey(t, "day", "day_numeric")
		month := firstKey(t, "month", "month_numeric")
		year := firstKey(t, "year", "year_numeric")
		if day != nil && month != nil && year != nil {
			y := numString(year)
			if len(y) == 2 {
				y = "20" + y
			}
			return fmt.Sprintf("%s/%s/%s", pad2(numString(day)), pad2(numString(month)), y)
		}
		if v, ok := t["value"]; ok {
			return NormalizeDate(v, locale)
		}
		if v, ok := t["content"]; ok {
			return NormalizeDate(v, locale)
		}
		return InferDate(fmt.Sprint(t))
	case string:
		if m := isoDateRe.FindStringSubmatch(t); m != nil {
			return fmt.Sprintf("%s/%s/%s", m[3], m[2], m[1])
		}
		return InferDate(t)
	default:
		return InferDate(fmt.Sprint(t))
	}
}

// InferDate scans free text for the first D/M/Y or D-M-Y pattern,
// assuming day-first order. No match yields today's date.
func InferDate(text string) string {
	m := freeDateRe.FindStringSubmatch(text)
	if m == nil {
		return todayDate()
	}
	year := m[3]
	if len(year) == 2 {
		year = "20" + year
	}
	return fmt.Sprintf("%s/%s/%s", pad2(m[1]), pad2(m[2]), year)
}

func todayDate() string {
	return now().UTC().Format("02/01/2006")
}

func dateFromMillis(ms float64) string {
	if ms != ms || ms > maxEpochMillis || ms < -maxEpochMillis {
		return todayDate()
	}
	return time.UnixMilli(int64(ms)).UTC().Format("02/01/2006")
}

func firstKey(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

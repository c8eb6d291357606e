package fields

// ResolveLocale flattens a backend locale field to a "lang-COUNTRY"
// style string, or "" when nothing usable is present.
func ResolveLocale(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []any:
		if len(t) == 0 {
			return ""
		}
		return ResolveLocale(t[0])
	case map[string]any:
		language := asString(firstKey(t, "language", "lang", "locale"))
		country := asString(firstKey(t, "country", "country_code", "region"))
		switch {
		case language != "" && country != "":
			return language + "-" + country
		case language != "":
			return language
		default:
			return country
		}
	default:
		return ""
	}
}

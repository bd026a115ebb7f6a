package analytics

import (
	"sort"
	"strings"
)

// Categories is the fixed courier enumeration, in display and ranking order.
// Dashboard series and top-category scans iterate in this order.
var Categories = []string{
	"Australia Post",
	"Direct Freight",
	"Jet",
	"Toll",
	"StarTrack",
	"Couriers Please",
	"Allied Express",
	"TNT",
}

// synonyms maps normalized abbreviations seen in historic imports to their
// canonical courier. Hand-maintained; extend when a new alias shows up in the
// delivery sheets.
var synonyms = map[string]string{
	"auspost":          "Australia Post",
	"df":               "Direct Freight",
	"dfe":              "Direct Freight",
	"cpl":              "Couriers Please",
	"jetcouriers":      "Jet",
	"startrackexpress": "StarTrack",
}

var (
	byNormal = map[string]string{}
	byTokens = map[string]string{}
)

func init() {
	for _, c := range Categories {
		byNormal[normalizeCategory(c)] = c
		byTokens[sortedTokenKey(c)] = c
	}
}

// normalizeCategory strips everything but letters and digits and lower-cases
// the rest, giving a punctuation- and case-insensitive join key.
func normalizeCategory(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// sortedTokenKey normalizes each whitespace-separated token and joins them in
// sorted order, so "Freight Direct" and "Direct Freight" collide.
func sortedTokenKey(s string) string {
	fields := strings.Fields(strings.ToLower(s))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if t := normalizeCategory(f); t != "" {
			tokens = append(tokens, t)
		}
	}
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// CanonicalCategory maps a raw category string from storage onto the fixed
// courier enumeration. Matching is tried strictest-first: exact normalized
// match, then order-insensitive token match, then the synonym table. Unknown
// values pass through trimmed so a new courier still renders rather than
// vanishing. Applied once at ingestion; the result is stable under
// re-application.
func CanonicalCategory(raw string) string {
	n := normalizeCategory(raw)
	if c, ok := byNormal[n]; ok {
		return c
	}
	if c, ok := byTokens[sortedTokenKey(raw)]; ok {
		return c
	}
	if c, ok := synonyms[n]; ok {
		return c
	}
	return strings.TrimSpace(raw)
}

package analysis

import "strings"

// ExtractState returns the state component of a region string for
// aggregation: the trimmed substring after the LAST comma, or the whole
// trimmed string when there is no comma.
func ExtractState(region string) string {
	if i := strings.LastIndex(region, ","); i >= 0 {
		return strings.TrimSpace(region[i+1:])
	}
	return strings.TrimSpace(region)
}

// SplitCityState splits a region string into city and state for display,
// using the FIRST comma: "Mumbai, Maharashtra, India" becomes
// ("Mumbai", "Maharashtra, India"). With no comma, city and state are both
// the trimmed region.
//
// This is deliberately a different split policy from ExtractState — the
// aggregator keys on the last comma, the enricher displays on the first —
// and the two must not be unified.
func SplitCityState(region string) (city, state string) {
	if i := strings.Index(region, ","); i >= 0 {
		return strings.TrimSpace(region[:i]), strings.TrimSpace(region[i+1:])
	}
	r := strings.TrimSpace(region)
	return r, r
}

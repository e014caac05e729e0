// Package analysis contains the pure classification and aggregation logic for
// transport tweets. Every function in this package is stateless and
// side-effect-free, so they are safe to call concurrently across requests.
package analysis

import (
	"strings"

	"github.com/anmolairi03/transport-sentiment-app/internal/domain"
)

// transportKeywords maps transport types to the keywords that identify them,
// in priority order: the first set with any match wins. The Devanagari terms
// come from the upstream data source and are kept as opaque literals.
// Matching is substring-based, so a keyword inside a longer word still counts.
var transportKeywords = []struct {
	Type     domain.TransportType
	Keywords []string
}{
	{domain.TransportMetro, []string{"metro", "मेट्रो", "subway", "dmrc"}},
	{domain.TransportTrain, []string{"train", "ट्रेन", "railway", "irctc", "local train"}},
	{domain.TransportAuto, []string{"auto", "ऑटो", "rickshaw", "three wheeler"}},
	{domain.TransportTaxi, []string{"taxi", "टैक्सी", "cab", "ola", "uber"}},
}

// ClassifyTransport derives the transport mode mentioned in text.
// Case-insensitive; returns bus when no keyword matches, so it never fails.
func ClassifyTransport(text string) domain.TransportType {
	lower := strings.ToLower(text)
	for _, set := range transportKeywords {
		for _, kw := range set.Keywords {
			if strings.Contains(lower, kw) {
				return set.Type
			}
		}
	}
	return domain.TransportBus
}

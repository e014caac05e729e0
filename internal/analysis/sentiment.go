package analysis

import "strings"

// SentimentScore converts an upstream sentiment label into a signed polarity.
// Unrecognized labels score 0 rather than erroring; the label is data, not input
// we control.
func SentimentScore(label string) float64 {
	switch strings.ToLower(label) {
	case "positive":
		return 0.5
	case "negative":
		return -0.5
	default:
		return 0
	}
}

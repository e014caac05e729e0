package analysis

import (
	"time"

	"github.com/anmolairi03/transport-sentiment-app/internal/domain"
)

// enrichConfidence is reported on every enriched tweet until the upstream
// sentiment pipeline starts emitting a per-tweet confidence.
const enrichConfidence = 0.85

// Enrich transforms a stored tweet into its API-facing form: classifies the
// transport mode, scores the sentiment label, and splits the region into
// city and state. Missing fields are defaulted rather than rejected, so
// Enrich never fails: empty region becomes "India", empty sentiment becomes
// "neutral", and a zero timestamp becomes the current time.
func Enrich(t domain.Tweet) domain.EnrichedTweet {
	region := t.Region
	if region == "" {
		region = "India"
	}
	label := t.Sentiment
	if label == "" {
		label = "neutral"
	}
	createdAt := t.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	city, state := SplitCityState(region)

	return domain.EnrichedTweet{
		ID:            t.ID,
		Text:          t.Text,
		Timestamp:     createdAt.Format(time.RFC3339),
		Location:      region,
		State:         state,
		City:          city,
		TransportType: ClassifyTransport(t.Text),
		Sentiment: domain.Sentiment{
			Polarity:   SentimentScore(label),
			Label:      label,
			Confidence: enrichConfidence,
		},
	}
}

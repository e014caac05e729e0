// Package domain contains the core data types for the transport sentiment API.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (analysis, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tweet is a stored social-media post about urban transport as it comes out
// of the database. Records are immutable once fetched; all derived fields
// live on EnrichedTweet instead.
type Tweet struct {
	ID        uuid.UUID
	Text      string
	Region    string // raw location field, either a bare name or "City, State[, ...]"
	Sentiment string // precomputed upstream label: positive, negative, or neutral
	CreatedAt time.Time
}

// Sentiment carries the scored sentiment of a single tweet.
// Confidence is a fixed value until the upstream model starts providing one.
type Sentiment struct {
	Polarity   float64 `json:"polarity"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// EnrichedTweet is the API-facing view of a Tweet with derived fields filled
// in. It is constructed per request and discarded after serialization.
// JSON field names match what the dashboard frontend expects.
type EnrichedTweet struct {
	ID            uuid.UUID     `json:"id"`
	Text          string        `json:"text"`
	Timestamp     string        `json:"timestamp"` // RFC 3339
	Location      string        `json:"location"`  // the raw region string
	State         string        `json:"state"`
	City          string        `json:"city"`
	TransportType TransportType `json:"transportType"`
	Sentiment     Sentiment     `json:"sentiment"`
}

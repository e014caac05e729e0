package domain

// StateSummaryRow is a pre-aggregated per-region sentiment summary as
// produced by the database GROUP BY query. The region string is not
// guaranteed to be a canonical state name; state extraction happens during
// aggregation.
type StateSummaryRow struct {
	Region        string
	TotalMessages int
	PositiveCount int
	NegativeCount int
	NeutralCount  int
}

// SentimentBreakdown is the per-state count of tweets by sentiment label.
type SentimentBreakdown struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// StateReport is the per-state aggregate served by GET /api/states.
// SentimentScore is (positive - negative) / total and therefore always in
// [-1, 1]; states with zero total messages are never reported.
type StateReport struct {
	State              string                `json:"state"`
	SentimentScore     float64               `json:"sentimentScore"`
	TotalMessages      int                   `json:"totalMessages"`
	TransportBreakdown map[TransportType]int `json:"transportBreakdown"`
	SentimentBreakdown SentimentBreakdown    `json:"sentimentBreakdown"`
}

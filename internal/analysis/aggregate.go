package analysis

import (
	"github.com/anmolairi03/transport-sentiment-app/internal/domain"
)

// stateBucket accumulates transport and sentiment counts for one state while
// AggregateStates runs. Buckets are keyed by the exact extracted state string:
// no normalization beyond trimming is applied, so differently formatted names
// count as distinct states.
type stateBucket struct {
	transport map[domain.TransportType]int
	total     int
	positive  int
	negative  int
	neutral   int
}

// AggregateStates merges per-tweet derived transport counts with the
// database-precomputed per-region sentiment summaries into one report per
// state.
//
// Two passes: first every tweet is classified and counted into its state's
// transport breakdown; then every summary row's counts are added into the
// same bucket (creating it if the state only appears in summaries). Reports
// are emitted in insertion order of first appearance across the two passes,
// and states whose total message count is zero are excluded.
func AggregateStates(tweets []domain.Tweet, summaries []domain.StateSummaryRow) []domain.StateReport {
	buckets := make(map[string]*stateBucket)
	var order []string

	bucketFor := func(state string) *stateBucket {
		b, ok := buckets[state]
		if !ok {
			b = &stateBucket{transport: make(map[domain.TransportType]int, len(domain.AllTransportTypes))}
			for _, tt := range domain.AllTransportTypes {
				b.transport[tt] = 0
			}
			buckets[state] = b
			order = append(order, state)
		}
		return b
	}

	for _, t := range tweets {
		b := bucketFor(ExtractState(t.Region))
		b.transport[ClassifyTransport(t.Text)]++
	}

	for _, row := range summaries {
		b := bucketFor(ExtractState(row.Region))
		b.total += row.TotalMessages
		b.positive += row.PositiveCount
		b.negative += row.NegativeCount
		b.neutral += row.NeutralCount
	}

	reports := make([]domain.StateReport, 0, len(order))
	for _, state := range order {
		b := buckets[state]
		if b.total <= 0 {
			continue
		}
		reports = append(reports, domain.StateReport{
			State:              state,
			SentimentScore:     float64(b.positive-b.negative) / float64(b.total),
			TotalMessages:      b.total,
			TransportBreakdown: b.transport,
			SentimentBreakdown: domain.SentimentBreakdown{
				Positive: b.positive,
				Negative: b.negative,
				Neutral:  b.neutral,
			},
		})
	}
	return reports
}

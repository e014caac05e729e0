package service

import (
	"context"
	"fmt"

	"github.com/anmolairi03/transport-sentiment-app/internal/analysis"
	"github.com/anmolairi03/transport-sentiment-app/internal/domain"
	"github.com/anmolairi03/transport-sentiment-app/internal/repo"
)

// aggregateTweetLimit bounds how many tweets are re-scanned to build the
// per-state transport breakdown. Wide enough to cover the full recent window.
const aggregateTweetLimit = 10000

// StateService builds per-state sentiment reports.
type StateService struct {
	repo repo.TweetRepo
}

// NewStateService constructs a StateService backed by the provided TweetRepo.
func NewStateService(r repo.TweetRepo) *StateService {
	return &StateService{repo: r}
}

// Reports fetches the recent tweet set and the database sentiment summary and
// merges them into one report per state. A failure of either fetch discards
// the whole response — no partial results. Always returns a non-nil slice on
// success.
func (s *StateService) Reports(ctx context.Context) ([]domain.StateReport, error) {
	summaries, err := s.repo.StateSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.StateService.Reports: %w", err)
	}

	tweets, err := s.repo.RecentTweets(ctx, aggregateTweetLimit)
	if err != nil {
		return nil, fmt.Errorf("service.StateService.Reports: %w", err)
	}

	return analysis.AggregateStates(tweets, summaries), nil
}

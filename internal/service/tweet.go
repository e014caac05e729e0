// Package service contains the business logic for the transport sentiment API.
// Services orchestrate repo calls and run the analysis transforms.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"

	"github.com/anmolairi03/transport-sentiment-app/internal/analysis"
	"github.com/anmolairi03/transport-sentiment-app/internal/domain"
	"github.com/anmolairi03/transport-sentiment-app/internal/repo"
)

// recentTweetLimit bounds the GET /api/tweets response size.
const recentTweetLimit = 100

// TweetService implements business logic for tweet operations.
type TweetService struct {
	repo repo.TweetRepo
}

// NewTweetService constructs a TweetService backed by the provided TweetRepo.
func NewTweetService(r repo.TweetRepo) *TweetService {
	return &TweetService{repo: r}
}

// Recent returns up to 100 recent tweets with derived transport and sentiment
// fields filled in. Always returns a non-nil slice on success so callers can
// safely range over and serialize it.
func (s *TweetService) Recent(ctx context.Context) ([]domain.EnrichedTweet, error) {
	tweets, err := s.repo.RecentTweets(ctx, recentTweetLimit)
	if err != nil {
		return nil, fmt.Errorf("service.TweetService.Recent: %w", err)
	}

	enriched := make([]domain.EnrichedTweet, 0, len(tweets))
	for _, t := range tweets {
		enriched = append(enriched, analysis.Enrich(t))
	}
	return enriched, nil
}

// Count returns the total number of stored tweets.
func (s *TweetService) Count(ctx context.Context) (int64, error) {
	total, err := s.repo.CountTweets(ctx)
	if err != nil {
		return 0, fmt.Errorf("service.TweetService.Count: %w", err)
	}
	return total, nil
}

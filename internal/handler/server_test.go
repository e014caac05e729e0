package handler_test

import (
	"context"
	"net/http"

	"github.com/anmolairi03/transport-sentiment-app/internal/domain"
	"github.com/anmolairi03/transport-sentiment-app/internal/handler"
)

// ---- test doubles ------------------------------------------------------------

// mockTweetServicer is a test double for handler.TweetServicer.
// Set only the method fields your test needs.
type mockTweetServicer struct {
	recent func(ctx context.Context) ([]domain.EnrichedTweet, error)
	count  func(ctx context.Context) (int64, error)
}

func (m *mockTweetServicer) Recent(ctx context.Context) ([]domain.EnrichedTweet, error) {
	return m.recent(ctx)
}
func (m *mockTweetServicer) Count(ctx context.Context) (int64, error) {
	return m.count(ctx)
}

// mockStateServicer is a test double for handler.StateServicer.
type mockStateServicer struct {
	reports func(ctx context.Context) ([]domain.StateReport, error)
}

func (m *mockStateServicer) Reports(ctx context.Context) ([]domain.StateReport, error) {
	return m.reports(ctx)
}

// pingFunc adapts a function to handler.Pinger.
type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

// compile-time checks against the consumer interfaces.
var (
	_ handler.TweetServicer = (*mockTweetServicer)(nil)
	_ handler.StateServicer = (*mockStateServicer)(nil)
	_ handler.Pinger        = (pingFunc)(nil)
)

// newTestHandler wires a Server with the given mocks and returns its router.
// Pass nil for collaborators the test does not exercise.
func newTestHandler(tweets handler.TweetServicer, states handler.StateServicer, db handler.Pinger) http.Handler {
	return handler.NewServer(tweets, states, db).Routes()
}

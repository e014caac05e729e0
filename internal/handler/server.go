// Package handler implements the HTTP handlers for the transport sentiment API.
// All handlers are methods on Server. Methods are split into endpoint-specific
// files (health.go, tweet.go, state.go) but all share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/anmolairi03/transport-sentiment-app/internal/domain"
)

// TweetServicer defines the business operations the tweet endpoints depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TweetServicer interface {
	Recent(ctx context.Context) ([]domain.EnrichedTweet, error)
	Count(ctx context.Context) (int64, error)
}

// StateServicer defines the aggregation operation the states endpoint depends on.
type StateServicer interface {
	Reports(ctx context.Context) ([]domain.StateReport, error)
}

// Pinger reports database reachability for the health endpoint.
// *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server holds the dependencies for all API endpoints.
type Server struct {
	tweets TweetServicer
	states StateServicer
	db     Pinger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(tweets TweetServicer, states StateServicer, db Pinger) *Server {
	return &Server{tweets: tweets, states: states, db: db}
}

// Routes returns a chi router with every API endpoint registered.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/api/health", s.GetHealth)
	r.Get("/api/status", s.GetStatus)
	r.Get("/api/tweets", s.GetTweets)
	r.Get("/api/states", s.GetStates)
	return r
}

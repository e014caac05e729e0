// Package repo contains all database access logic for the transport sentiment
// API. No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/anmolairi03/transport-sentiment-app/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TweetRepo defines the read operations the service layer depends on.
// The service depends on this interface, not the Postgres implementation,
// so it can be unit-tested with a mock.
type TweetRepo interface {
	// RecentTweets returns up to limit tweets ordered newest first.
	RecentTweets(ctx context.Context, limit int) ([]domain.Tweet, error)

	// CountTweets returns the total number of stored tweets.
	CountTweets(ctx context.Context) (int64, error)

	// StateSummary returns per-region sentiment counts aggregated in the
	// database: one row per distinct region string.
	StateSummary(ctx context.Context) ([]domain.StateSummaryRow, error)
}

// pgTweetRepo is the Postgres implementation of TweetRepo.
type pgTweetRepo struct {
	db db
}

// NewTweetRepo constructs a TweetRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTweetRepo(db db) TweetRepo {
	return &pgTweetRepo{db: db}
}

// RecentTweets returns the most recent tweets, newest first.
func (r *pgTweetRepo) RecentTweets(ctx context.Context, limit int) ([]domain.Tweet, error) {
	const q = `
		SELECT id, text, region, sentiment, created_at
		FROM tweets
		ORDER BY created_at DESC
		LIMIT @limit`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("repo.TweetRepo.RecentTweets: %w", err)
	}
	defer rows.Close()

	var tweets []domain.Tweet
	for rows.Next() {
		t, err := scanTweet(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TweetRepo.RecentTweets: scan: %w", err)
		}
		tweets = append(tweets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TweetRepo.RecentTweets: rows: %w", err)
	}

	return tweets, nil
}

// CountTweets returns the total row count of the tweets table.
func (r *pgTweetRepo) CountTweets(ctx context.Context) (int64, error) {
	const q = `SELECT count(*) FROM tweets`

	var total int64
	if err := r.db.QueryRow(ctx, q).Scan(&total); err != nil {
		return 0, fmt.Errorf("repo.TweetRepo.CountTweets: %w", err)
	}
	return total, nil
}

// StateSummary aggregates sentiment counts per region string in SQL.
// State extraction from the region happens later in the aggregator; the
// database groups by the raw region value only.
func (r *pgTweetRepo) StateSummary(ctx context.Context) ([]domain.StateSummaryRow, error) {
	const q = `
		SELECT region,
		       count(*)                                        AS total_messages,
		       count(*) FILTER (WHERE sentiment = 'positive')  AS positive_count,
		       count(*) FILTER (WHERE sentiment = 'negative')  AS negative_count,
		       count(*) FILTER (WHERE sentiment = 'neutral')   AS neutral_count
		FROM tweets
		GROUP BY region`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TweetRepo.StateSummary: %w", err)
	}
	defer rows.Close()

	var summaries []domain.StateSummaryRow
	for rows.Next() {
		var s domain.StateSummaryRow
		err := rows.Scan(&s.Region, &s.TotalMessages, &s.PositiveCount, &s.NegativeCount, &s.NeutralCount)
		if err != nil {
			return nil, fmt.Errorf("repo.TweetRepo.StateSummary: scan: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TweetRepo.StateSummary: rows: %w", err)
	}

	return summaries, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanTweet to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTweet maps a single database row into a domain.Tweet.
func scanTweet(s scanner) (domain.Tweet, error) {
	var (
		t  domain.Tweet
		id pgtype.UUID
	)

	if err := s.Scan(&id, &t.Text, &t.Region, &t.Sentiment, &t.CreatedAt); err != nil {
		return domain.Tweet{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	return t, nil
}

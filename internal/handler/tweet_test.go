package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anmolairi03/transport-sentiment-app/internal/domain"
)

func enrichedFixture() domain.EnrichedTweet {
	return domain.EnrichedTweet{
		ID:            uuid.New(),
		Text:          "metro delayed at peak hour",
		Timestamp:     time.Date(2025, 4, 10, 9, 0, 0, 0, time.UTC).Format(time.RFC3339),
		Location:      "New Delhi, Delhi",
		State:         "Delhi",
		City:          "New Delhi",
		TransportType: domain.TransportMetro,
		Sentiment: domain.Sentiment{
			Polarity:   -0.5,
			Label:      "negative",
			Confidence: 0.85,
		},
	}
}

func TestGetTweets_200(t *testing.T) {
	fixture := enrichedFixture()
	svc := &mockTweetServicer{
		recent: func(_ context.Context) ([]domain.EnrichedTweet, error) {
			return []domain.EnrichedTweet{fixture}, nil
		},
	}
	h := newTestHandler(svc, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/tweets", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, fixture.Text, body[0]["text"])
	assert.Equal(t, "metro", body[0]["transportType"])
	assert.Equal(t, "Delhi", body[0]["state"])
	assert.Equal(t, "New Delhi", body[0]["city"])

	sentiment, ok := body[0]["sentiment"].(map[string]any)
	require.True(t, ok, "sentiment should be a nested object")
	assert.EqualValues(t, -0.5, sentiment["polarity"])
	assert.Equal(t, "negative", sentiment["label"])
	assert.EqualValues(t, 0.85, sentiment["confidence"])
}

func TestGetTweets_EmptyList(t *testing.T) {
	svc := &mockTweetServicer{
		recent: func(_ context.Context) ([]domain.EnrichedTweet, error) {
			return []domain.EnrichedTweet{}, nil
		},
	}
	h := newTestHandler(svc, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/tweets", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetTweets_FetchError_500(t *testing.T) {
	svc := &mockTweetServicer{
		recent: func(_ context.Context) ([]domain.EnrichedTweet, error) {
			return nil, errors.New("fetch failed")
		},
	}
	h := newTestHandler(svc, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/tweets", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Contains(t, body["error"], "Server error: ")
	assert.Contains(t, body["error"], "fetch failed")
}

package handler

import "net/http"

// statusResponse is the body for GET /api/status. Error is only set on the
// 500 path, where Database is "error".
type statusResponse struct {
	Status      string `json:"status"`
	Database    string `json:"database"`
	TotalTweets *int64 `json:"total_tweets,omitempty"`
	Error       string `json:"error,omitempty"`
}

// GetStatus handles GET /api/status.
// Unlike /api/health, a query failure here is surfaced as HTTP 500 so the
// dashboard can tell "service up, database broken" apart from plain downtime.
func (s *Server) GetStatus(w http.ResponseWriter, r *http.Request) {
	total, err := s.tweets.Count(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, statusResponse{
			Status:   "API is running!",
			Database: "error",
			Error:    err.Error(),
		})
		return
	}

	database := "connected"
	if total == 0 {
		database = "no data"
	}

	writeJSON(w, http.StatusOK, statusResponse{
		Status:      "API is running!",
		Database:    database,
		TotalTweets: &total,
	})
}

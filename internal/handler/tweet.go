package handler

import "net/http"

// GetTweets handles GET /api/tweets.
// Returns the recent tweet window (at most 100) with derived transport and
// sentiment fields. Any data-access failure discards the whole response.
func (s *Server) GetTweets(w http.ResponseWriter, r *http.Request) {
	tweets, err := s.tweets.Recent(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, serverErrorBody(err))
		return
	}

	writeJSON(w, http.StatusOK, tweets)
}

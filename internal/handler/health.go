package handler

import "net/http"

// healthResponse is the body for GET /api/health.
type healthResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Database string `json:"database"`
}

// GetHealth handles GET /api/health.
// Returns 200 whenever the process is up; the database field reports
// reachability ("connected" or "disconnected") without failing the check,
// so load balancers keep routing while the DB recovers.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	database := "connected"
	if err := s.db.Ping(r.Context()); err != nil {
		database = "disconnected"
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status:   "healthy",
		Service:  "transport-sentiment-api",
		Database: database,
	})
}

package handler

import "net/http"

// GetStates handles GET /api/states.
// Returns one aggregated sentiment report per Indian state, in order of
// first appearance in the underlying data.
func (s *Server) GetStates(w http.ResponseWriter, r *http.Request) {
	reports, err := s.states.Reports(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, serverErrorBody(err))
		return
	}

	writeJSON(w, http.StatusOK, reports)
}
